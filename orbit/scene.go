package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitcam/ecs"
)

const (
	NameCamera       Name = "Camera"
	NamePlane        Name = "Plane"
	NameLight        Name = "Light"
	NameSun          Name = "Sun"
	NameInstructions Name = "Instructions"

	// NameSpinner is the cube RotateSystem turns by default.
	NameSpinner Name = "Cube4"
)

const Instructions = "Mouse up or down: pitch\nMouse left or right: yaw\nMouse buttons: roll"

// CubeY rests the unit cubes just above the ground plane.
const CubeY float32 = 0.51

// RegisterComponents registers every component type the scene spawns.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Name](registry)
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Camera](registry)
	ecs.RegisterComponent[Mesh](registry)
	ecs.RegisterComponent[Material](registry)
	ecs.RegisterComponent[PointLight](registry)
	ecs.RegisterComponent[DirectionalLight](registry)
	ecs.RegisterComponent[TextOverlay](registry)
}

// SetupSystem spawns the camera, ground, cubes and lights. Register it as a startup system.
type SetupSystem struct{}

func (s *SetupSystem) Execute(frame *ecs.UpdateFrame) {
	cmd := frame.Commands

	cmd.Spawn(
		NameCamera,
		Camera{
			Projection: ProjectionOrthographic,
			ViewWidth:  8,
			ViewHeight: 8,
			Near:       0.1,
			Far:        1000,
		},
		TransformFromXYZ(10, 12, 16).LookingAt(OrbitTarget, AxisY),
	)

	cmd.Spawn(
		NamePlane,
		Plane(5, 5),
		Material{BaseColor: SRGB(0.3, 0.5, 0.3), DoubleSided: true},
		IdentityTransform(),
	)

	cubes := []struct {
		name  Name
		color Color
		pos   mgl32.Vec3
	}{
		{"Cube", SRGB(0.8, 0.7, 0.6), mgl32.Vec3{1.5, CubeY, 1.5}},
		{"Cube2", SRGB(0.8, 0.7, 0.1), mgl32.Vec3{-2.5, CubeY, 2.5}},
		{"Cube3", SRGB(0.8, 0.1, 0.6), mgl32.Vec3{1.5, CubeY, -1.5}},
		{NameSpinner, SRGB(0.1, 0.8, 0.6), mgl32.Vec3{-1.5, CubeY, -1.5}},
	}
	for _, c := range cubes {
		cmd.Spawn(
			c.name,
			Cuboid(),
			Material{BaseColor: c.color},
			TransformFromXYZ(c.pos.X(), c.pos.Y(), c.pos.Z()),
		)
	}

	cmd.Spawn(NameLight, DefaultPointLight(), TransformFromXYZ(3, 2, 5))

	cascades := DefaultCascadeShadowConfig()
	cascades.FirstCascadeFarBound = 7
	cascades.MaximumDistance = 25
	cmd.Spawn(
		NameSun,
		DirectionalLight{
			Color:          White,
			Illuminance:    LuxOvercastDay,
			ShadowsEnabled: true,
			Cascades:       cascades,
		},
		TransformFromRotation(QuatFromEulerZYX(0, math.Pi/2, -math.Pi/4)),
	)
}

// InstructionsSystem spawns the control help text. Register it as a startup system.
type InstructionsSystem struct {
	FontSize float32
}

func (s *InstructionsSystem) Execute(frame *ecs.UpdateFrame) {
	size := s.FontSize
	if size == 0 {
		size = 20
	}

	frame.Commands.Spawn(NameInstructions, TextOverlay{
		Text:     Instructions,
		Left:     12,
		Top:      12,
		FontSize: size,
		Color:    White,
	})
}
