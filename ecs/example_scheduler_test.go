package ecs_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/orbitcam/ecs"
)

type Transform struct {
	X, Y float32
}

type Speed struct {
	DX, DY float32
}

type Label string

type SpawnWorldSystem struct{}

func (s *SpawnWorldSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(Label("left"), Transform{X: 0, Y: 0}, Speed{DX: 10, DY: 5})
	frame.Commands.Spawn(Label("right"), Transform{X: 100, Y: 100}, Speed{DX: -5, DY: -5})
}

type PhysicsSystem struct {
	Entities ecs.Query[struct {
		*Transform
		*Speed
	}]
}

func (s *PhysicsSystem) Execute(frame *ecs.UpdateFrame) {
	for entity := range s.Entities.Values() {
		entity.Transform.X += entity.Speed.DX * float32(frame.DeltaTime)
		entity.Transform.Y += entity.Speed.DY * float32(frame.DeltaTime)
	}
}

// ExampleScheduler demonstrates a startup system that builds the world and an
// update system that moves it. Startup systems run once, before the first
// update, and their spawned entities are visible to that update.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Label](registry)
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Speed](registry)
	storage := ecs.NewStorage(registry)

	scheduler := ecs.NewScheduler(storage)
	scheduler.RegisterStartup(&SpawnWorldSystem{})
	scheduler.Register(&PhysicsSystem{})

	scheduler.Once(1.0)

	view := ecs.NewView[struct {
		*Label
		*Transform
	}](storage)

	for item := range view.Values() {
		fmt.Printf("%s: (%.0f, %.0f)\n", *item.Label, item.Transform.X, item.Transform.Y)
	}

	// Output:
	// left: (10, 5)
	// right: (95, 95)
}

type Clock struct {
	Frames  int
	Elapsed float64
}

type ClockSystem struct {
	Clock ecs.Singleton[Clock]
}

func (s *ClockSystem) Execute(frame *ecs.UpdateFrame) {
	clock := s.Clock.Get()
	clock.Frames++
	clock.Elapsed = frame.Elapsed
}

// ExampleScheduler_withSingletons shows Singleton fields being bound by the
// Scheduler, just like Query fields.
func ExampleScheduler_withSingletons() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	ecs.NewSingleton[Clock](storage)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&ClockSystem{})

	scheduler.Once(0.25)
	scheduler.Once(0.25)
	scheduler.Once(0.5)

	var clock *Clock
	storage.ReadSingleton(&clock)
	fmt.Printf("Frames: %d, Elapsed: %.2f\n", clock.Frames, clock.Elapsed)

	// Output:
	// Frames: 3, Elapsed: 1.00
}

// ExampleScheduler_Run demonstrates running a continuous loop until the
// context is cancelled.
func ExampleScheduler_Run() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Speed](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Transform{X: 0, Y: 0}, Speed{DX: 1, DY: 1})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&PhysicsSystem{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	scheduler.Run(ctx, 16*time.Millisecond)

	fmt.Println("Scheduler stopped")
	// Output:
	// Scheduler stopped
}
