package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/orbitcam/orbit"
)

func main() {
	configPath := flag.String("config", "", "Camera settings YAML file. Defaults are used when empty.")
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	interval := flag.Duration("interval", time.Millisecond, "Scheduler tick interval.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the scripted mouse input.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	settings, err := orbit.LoadSettings(*configPath)
	if err != nil {
		log.Fatalf("Failed to load camera settings: %v", err)
	}

	log.Println("Starting orbit camera soak...")

	app, err := orbit.NewApp(settings)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	probe := NewProbe()
	app.Scheduler.Register(probe)
	app.Scheduler.Register(NewScriptedInput(*seed))

	report := &Report{
		Duration:       *duration,
		Interval:       *interval,
		Seed:           *seed,
		Settings:       settings,
		Probe:          probe,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s with seed %d...\n", *duration, *seed)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	app.Scheduler.Run(ctx, *interval)
	report.TotalTime = time.Since(startTime)

	runtime.ReadMemStats(&report.MemStatsEnd)
	probe.FrameTime.Finalize()
	report.Scheduler = app.Scheduler.GetStats()
	report.Violations = probe.Violations(settings)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if len(report.Violations) > 0 {
		log.Fatalf("Soak failed: %d invariant violation(s)", len(report.Violations))
	}
	log.Println("Soak complete.")
}
