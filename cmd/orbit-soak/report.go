package main

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/orbitcam/ecs"
	"github.com/plus3/orbitcam/orbit"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Interval time.Duration
	Seed     uint64
	Settings orbit.CameraSettings

	// Results
	TotalTime      time.Duration
	Probe          *Probe
	Scheduler      *ecs.SchedulerStats
	Violations     []string
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Orbit Camera Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Tick Interval:** {{.Interval}}
- **Input Seed:** {{.Seed}}
- **Orbit Distance:** {{.Settings.OrbitDistance}}
- **Pitch Range:** [{{deg .Settings.PitchRange.Min}}°, {{deg .Settings.PitchRange.Max}}°]

## Camera Invariants
- **Frames Sampled:** {{.Probe.Frames}}
- **Max Radius Error:** {{printf "%.3g" .Probe.MaxRadiusError}}
- **Observed Pitch:** [{{deg .Probe.MinPitch}}°, {{deg .Probe.MaxPitch}}°]
- **Observed Roll:** [{{deg .Probe.MinRoll}}°, {{deg .Probe.MaxRoll}}°]
- **Commanded Roll:** {{printf "%.2f" .Probe.CommandedRoll}} rad ({{printf "%.1f" (turns .Probe.CommandedRoll)}} turns)
- **Non-finite Frames:** {{.Probe.NonFinite}}
{{- if .Violations}}

## Violations
{{- range .Violations}}
- {{.}}
{{- end}}
{{- else}}
- **Result:** all invariants held
{{- end}}

## Timing
- **Total Time:** {{.TotalTime}}
- **Frame Interval:** avg {{.Probe.FrameTime.Avg}}, min {{.Probe.FrameTime.Min}}, max {{.Probe.FrameTime.Max}}
{{- range .Scheduler.Systems}}
- **{{.Stage}}/{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"deg": func(rad float32) string {
			return fmt.Sprintf("%.2f", float64(rad)*180/math.Pi)
		},
		"turns": func(rad float64) float64 {
			return rad / (2 * math.Pi)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
