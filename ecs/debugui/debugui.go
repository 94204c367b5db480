// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// It manages ImGui rendering and input state through ECS components and systems.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/orbitcam/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton component.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem queries all ImguiItem components and defers their render functions.
// It also updates the ImguiInputState singleton with current input capture state.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if state := i.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for item := range i.Items.Values() {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}

// RegisterDebugUIComponents registers the component types this package spawns.
func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.RegisterComponent[ImguiInputState](registry)
}

// Panels holds the state of the built-in debug windows.
type Panels struct {
	Browser   *EntityBrowser
	Inspector *ComponentInspector
	Stats     *PerformanceStats
}

// SpawnDebugUI adds the entity browser, component inspector and performance
// windows to storage, and registers ImguiSystem and a FrameRecorder on
// scheduler. The browser's selection feeds the inspector. label may be nil.
func SpawnDebugUI(storage *ecs.Storage, scheduler *ecs.Scheduler, label Labeler) *Panels {
	ecs.NewSingleton(storage, ImguiInputState{})

	panels := &Panels{
		Browser:   NewEntityBrowser(100, label),
		Inspector: NewComponentInspector(),
		Stats:     NewPerformanceStats(120),
	}

	storage.Spawn(ImguiItem{Render: func() {
		panels.Browser.Render(storage)
	}})
	storage.Spawn(ImguiItem{Render: func() {
		id, ok := panels.Browser.Selected()
		panels.Inspector.Render(storage, id, ok)
	}})
	storage.Spawn(ImguiItem{Render: func() {
		panels.Stats.Render(storage, scheduler)
	}})

	scheduler.Register(&FrameRecorder{Stats: panels.Stats})
	scheduler.Register(&ImguiSystem{})

	return panels
}
