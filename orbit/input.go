package orbit

import "github.com/go-gl/mathgl/mgl32"

//go:generate go run golang.org/x/tools/cmd/stringer -type=MouseButton -trimprefix=MouseButton

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

// MouseButtons lists every button MouseInput tracks.
var MouseButtons = []MouseButton{MouseButtonLeft, MouseButtonRight}

// MouseInput is the pointer state for one frame. The host rewrites it before
// each update; systems only read it.
type MouseInput struct {
	// Motion is the pointer displacement accumulated since the previous frame,
	// in screen pixels with +Y down. It is a distance, not a rate.
	Motion mgl32.Vec2
	Left   bool
	Right  bool
}

// Pressed reports whether the button is held this frame.
func (m MouseInput) Pressed(button MouseButton) bool {
	switch button {
	case MouseButtonLeft:
		return m.Left
	case MouseButtonRight:
		return m.Right
	default:
		return false
	}
}

// Held lists the buttons held this frame.
func (m MouseInput) Held() []MouseButton {
	var held []MouseButton
	for _, b := range MouseButtons {
		if m.Pressed(b) {
			held = append(held, b)
		}
	}
	return held
}
