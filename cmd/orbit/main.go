package main

import (
	"flag"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitcam/orbit"
)

func main() {
	configPath := flag.String("config", "", "Camera settings YAML file. Defaults are used when empty.")
	width := flag.Int("width", 800, "Window width in pixels.")
	height := flag.Int("height", 800, "Window height in pixels.")
	fps := flag.Int("fps", 60, "Target frames per second.")
	showFPS := flag.Bool("show-fps", false, "Draw the frame rate in the bottom left corner.")
	flag.Parse()

	settings, err := orbit.LoadSettings(*configPath)
	if err != nil {
		log.Fatalf("Failed to load camera settings: %v", err)
	}

	app, err := orbit.NewApp(settings)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}
	app.Scheduler.Register(&RenderSystem{ShowFPS: *showFPS})

	log.Printf("Orbit distance %.1f, pitch range [%.3f, %.3f]\n",
		settings.OrbitDistance, settings.PitchRange.Min, settings.PitchRange.Max)

	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(*width), int32(*height), "Orbit Camera - ECS Example")
	rl.SetTargetFPS(int32(*fps))
	defer rl.CloseWindow()

	for !rl.WindowShouldClose() {
		app.Frame(float64(rl.GetFrameTime()), readMouse())
	}
}

// readMouse samples the pointer once per frame. GetMouseDelta is the motion
// since the previous frame, which is what the orbit update expects.
func readMouse() orbit.MouseInput {
	delta := rl.GetMouseDelta()
	return orbit.MouseInput{
		Motion: mgl32.Vec2{delta.X, delta.Y},
		Left:   rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Right:  rl.IsMouseButtonDown(rl.MouseButtonRight),
	}
}
