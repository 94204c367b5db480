package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/orbitcam/ecs"
	"github.com/plus3/orbitcam/ecs/debugui"
	debugui_ebiten "github.com/plus3/orbitcam/ecs/debugui/ebiten"
	"github.com/plus3/orbitcam/orbit"
)

func main() {
	configPath := flag.String("config", "", "Camera settings YAML file. Defaults are used when empty.")
	width := flag.Int("width", 1280, "Window width in pixels.")
	height := flag.Int("height", 800, "Window height in pixels.")
	flag.Parse()

	settings, err := orbit.LoadSettings(*configPath)
	if err != nil {
		log.Fatalf("Failed to load camera settings: %v", err)
	}

	app, err := orbit.NewApp(settings, func(registry *ecs.ComponentRegistry) {
		ecs.RegisterComponent[debugui_ebiten.ImguiBackend](registry)
		debugui.RegisterDebugUIComponents(registry)
	})
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	backend := ecs.NewSingleton(app.Storage, debugui_ebiten.NewImguiBackend("Orbit Camera - Debug", *width, *height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	panels := debugui.SpawnDebugUI(app.Storage, app.Scheduler, nameLabel)
	spawnOrbitPanel(app, panels)

	game := NewGame(app, backend)

	log.Println("Starting orbit debug viewer...")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}

func nameLabel(storage *ecs.Storage, id ecs.EntityId) string {
	if name := ecs.ReadComponent[orbit.Name](storage, id); name != nil {
		return string(*name)
	}
	return ""
}
