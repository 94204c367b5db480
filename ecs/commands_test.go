package ecs_test

import (
	"testing"

	"github.com/plus3/orbitcam/ecs"
)

type testDeleteSystem struct {
	Entities ecs.Query[struct {
		ecs.EntityId
		*Position
	}]
}

func (s *testDeleteSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Entities.Values() {
		if item.Position.X > 2 {
			frame.Commands.Delete(item.EntityId)
		}
	}
}

type testCountSystem struct {
	Entities ecs.Query[struct{ *Position }]
	Seen     int
}

func (s *testCountSystem) Execute(frame *ecs.UpdateFrame) {
	s.Seen = s.Entities.Len()
	frame.Commands.Spawn(Position{X: 100})
}

func TestCommands(t *testing.T) {
	t.Run("flush applies deletes, spawns then defers", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		doomed := storage.Spawn(Position{X: 1})

		var order []string
		commands := &ecs.Commands{}
		commands.Defer(func() {
			order = append(order, "defer")
			if storage.Alive(doomed) {
				t.Error("expected delete to be applied before defers")
			}
			if storage.EntityCount() != 1 {
				t.Errorf("expected spawn to be applied before defers, got %d entities", storage.EntityCount())
			}
		})
		commands.Spawn(Position{X: 2})
		commands.Delete(doomed)

		if commands.Len() != 3 {
			t.Errorf("expected 3 queued commands, got %d", commands.Len())
		}

		commands.Flush(storage)

		if len(order) != 1 {
			t.Errorf("expected defer to run once, got %v", order)
		}
		if commands.Len() != 0 {
			t.Errorf("expected empty buffer after flush, got %d", commands.Len())
		}
	})

	t.Run("structural changes wait for the end of the stage", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		scheduler := ecs.NewScheduler(storage)

		storage.Spawn(Position{X: 1})
		storage.Spawn(Position{X: 3})
		storage.Spawn(Position{X: 5})

		counter := &testCountSystem{}
		scheduler.Register(&testDeleteSystem{})
		scheduler.Register(counter)

		scheduler.Once(0)
		// Deletes were queued, not applied, when the counter ran.
		if counter.Seen != 3 {
			t.Errorf("expected counter to see 3 entities, got %d", counter.Seen)
		}

		// After flush: X=1 survives, X=100 was spawned.
		if storage.EntityCount() != 2 {
			t.Errorf("expected 2 entities after flush, got %d", storage.EntityCount())
		}
	})
}
