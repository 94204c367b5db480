package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitcam/ecs"
	"github.com/plus3/orbitcam/orbit"
)

const (
	pointLightRadius float32 = 0.1
	sunArrowLength   float32 = 1.5
)

var background = rl.NewColor(24, 24, 28, 255)

// RenderSystem draws the scene from the orbit camera. It runs last in the
// update stage so it sees this frame's transforms.
type RenderSystem struct {
	ShowFPS bool

	Camera ecs.Single[struct {
		*orbit.Camera
		*orbit.Transform
	}]
	Meshes ecs.Query[struct {
		*orbit.Mesh
		*orbit.Transform
		Material *orbit.Material `ecs:"optional"`
	}]
	PointLights ecs.Query[struct {
		*orbit.PointLight
		*orbit.Transform
	}]
	Suns ecs.Query[struct {
		*orbit.DirectionalLight
		*orbit.Transform
	}]
	Texts ecs.Query[struct {
		*orbit.TextOverlay
	}]
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(background)

	if camera, ok := s.Camera.Get(); ok {
		rl.BeginMode3D(camera3D(*camera.Camera, *camera.Transform))
		s.drawMeshes()
		s.drawLights()
		rl.EndMode3D()
	}

	for item := range s.Texts.Values() {
		text := item.TextOverlay
		rl.DrawText(text.Text, int32(text.Left), int32(text.Top), int32(text.FontSize), toColor(text.Color))
	}

	if s.ShowFPS {
		rl.DrawFPS(10, int32(rl.GetScreenHeight())-24)
	}
}

func (s *RenderSystem) drawMeshes() {
	for item := range s.Meshes.Values() {
		c := orbit.White
		doubleSided := false
		if item.Material != nil {
			c = item.Material.BaseColor
			doubleSided = item.Material.DoubleSided
		}
		color := toColor(c)

		rl.PushMatrix()
		applyTransform(*item.Transform)

		switch item.Mesh.Kind {
		case orbit.MeshCuboid:
			size := item.Mesh.Size
			rl.DrawCube(rl.NewVector3(0, 0, 0), size.X(), size.Y(), size.Z(), color)
			rl.DrawCubeWires(rl.NewVector3(0, 0, 0), size.X(), size.Y(), size.Z(), rl.Black)
		case orbit.MeshPlane:
			if doubleSided {
				rl.DisableBackfaceCulling()
			}
			rl.DrawPlane(rl.NewVector3(0, 0, 0), rl.NewVector2(item.Mesh.Size.X(), item.Mesh.Size.Z()), color)
			if doubleSided {
				rl.EnableBackfaceCulling()
			}
		}

		rl.PopMatrix()
	}
}

func (s *RenderSystem) drawLights() {
	for item := range s.PointLights.Values() {
		rl.DrawSphere(toVector3(item.Transform.Translation), pointLightRadius, toColor(item.PointLight.Color))
	}

	for item := range s.Suns.Values() {
		dir := item.Transform.Forward()
		tail := orbit.OrbitTarget.Sub(dir.Mul(3))
		rl.DrawLine3D(toVector3(tail), toVector3(tail.Add(dir.Mul(sunArrowLength))), toColor(item.DirectionalLight.Color))
	}
}

// camera3D mirrors the ECS camera into raylib. Up follows the transform so roll is visible.
func camera3D(camera orbit.Camera, transform orbit.Transform) rl.Camera3D {
	c := rl.Camera3D{
		Position: toVector3(transform.Translation),
		Target:   toVector3(transform.Translation.Add(transform.Forward())),
		Up:       toVector3(transform.Up()),
	}

	if camera.Projection == orbit.ProjectionOrthographic {
		// raylib sizes orthographic views by height; width follows the window aspect.
		c.Projection = rl.CameraOrthographic
		c.Fovy = camera.ViewHeight
	} else {
		c.Projection = rl.CameraPerspective
		c.Fovy = mgl32.RadToDeg(camera.FovY)
	}
	return c
}

func applyTransform(t orbit.Transform) {
	rl.Translatef(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	axis, angle := t.AxisAngle()
	rl.Rotatef(mgl32.RadToDeg(angle), axis.X(), axis.Y(), axis.Z())
	rl.Scalef(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

func toColor(c orbit.Color) rl.Color {
	rgba := c.RGBA()
	return rl.NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
}
