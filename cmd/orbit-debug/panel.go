package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitcam/ecs/debugui"
	"github.com/plus3/orbitcam/orbit"
)

// spawnOrbitPanel adds a window showing the camera angles, the settings and
// this frame's mouse input.
func spawnOrbitPanel(app *orbit.App, panels *debugui.Panels) {
	home := orbit.TransformFromXYZ(10, 12, 16).LookingAt(orbit.OrbitTarget, orbit.AxisY)

	app.Storage.Spawn(debugui.ImguiItem{
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(10, 80), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(300, 260), imgui.CondOnce)

			if !imgui.BeginV("Orbit Camera", nil, 0) {
				imgui.End()
				return
			}
			defer imgui.End()

			camera := app.CameraTransform()
			if camera == nil {
				imgui.Text("No camera")
				return
			}

			yaw, pitch, roll := orbit.EulerYXZ(camera.Rotation)
			imgui.Text(fmt.Sprintf("Yaw:   %7.2f°", mgl32.RadToDeg(yaw)))
			imgui.Text(fmt.Sprintf("Pitch: %7.2f°", mgl32.RadToDeg(pitch)))
			imgui.Text(fmt.Sprintf("Roll:  %7.2f°", mgl32.RadToDeg(roll)))
			p := camera.Translation
			imgui.Text(fmt.Sprintf("Position: (%.2f, %.2f, %.2f)", p.X(), p.Y(), p.Z()))
			imgui.Text(fmt.Sprintf("Radius: %.4f", p.Len()))

			if imgui.Button("Reset") {
				*camera = home
			}
			imgui.SameLine()
			if imgui.Button("Inspect") {
				if id, ok := app.Lookup(orbit.NameCamera); ok {
					panels.Browser.Select(id)
				}
			}

			imgui.Separator()
			if s := app.Settings.Get(); s != nil {
				imgui.Text(fmt.Sprintf("Distance: %.1f", s.OrbitDistance))
				imgui.Text(fmt.Sprintf("Speeds: pitch %.4f  yaw %.4f  roll %.2f", s.PitchSpeed, s.YawSpeed, s.RollSpeed))
				imgui.Text(fmt.Sprintf("Pitch range: [%.1f°, %.1f°]",
					mgl32.RadToDeg(s.PitchRange.Min), mgl32.RadToDeg(s.PitchRange.Max)))
			}

			imgui.Separator()
			if m := app.Mouse.Get(); m != nil {
				imgui.Text(fmt.Sprintf("Motion: (%.0f, %.0f)", m.Motion.X(), m.Motion.Y()))
				imgui.Text(fmt.Sprintf("Held: %v", m.Held()))
			}
		},
	})
}
