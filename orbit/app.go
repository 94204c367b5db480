package orbit

import (
	"github.com/plus3/orbitcam/ecs"
)

// App bundles the world, scheduler and input resource for one running scene.
// Hosts call Frame once per rendered frame and may register extra systems
// (rendering, debug UI) on Scheduler before the first frame.
type App struct {
	Registry  *ecs.ComponentRegistry
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler

	Settings *ecs.Singleton[CameraSettings]
	Mouse    *ecs.Singleton[MouseInput]
}

// NewApp validates settings and builds the orbit scene: setup and instructions
// at startup, then the orbit camera and the rotating cube every update.
// register runs before the storage is created so hosts can add their own components.
func NewApp(settings CameraSettings, register ...func(*ecs.ComponentRegistry)) (*App, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	for _, fn := range register {
		fn(registry)
	}

	storage := ecs.NewStorage(registry)
	app := &App{
		Registry:  registry,
		Storage:   storage,
		Scheduler: ecs.NewScheduler(storage),
		Settings:  ecs.NewSingleton(storage, settings),
		Mouse:     ecs.NewSingleton(storage, MouseInput{}),
	}

	app.Scheduler.RegisterStartup(&SetupSystem{})
	app.Scheduler.RegisterStartup(&InstructionsSystem{})
	app.Scheduler.Register(&OrbitSystem{})
	app.Scheduler.Register(&RotateSystem{Target: NameSpinner})

	return app, nil
}

// Frame publishes input for this frame and runs one scheduler step.
func (a *App) Frame(dt float64, input MouseInput) {
	a.Mouse.Set(input)
	a.Scheduler.Once(dt)
}

// CameraTransform returns the scene camera's transform, or nil before the
// startup stage has run.
func (a *App) CameraTransform() *Transform {
	single := ecs.NewSingle[struct {
		*Camera
		*Transform
	}](a.Storage)
	single.Execute()

	camera, ok := single.Get()
	if !ok {
		return nil
	}
	return camera.Transform
}

// Lookup returns the first entity with the given name.
func (a *App) Lookup(name Name) (ecs.EntityId, bool) {
	view := ecs.NewView[struct{ *Name }](a.Storage)
	for id, entity := range view.Iter() {
		if *entity.Name == name {
			return id, true
		}
	}
	return 0, false
}
