package orbit

import (
	"github.com/plus3/orbitcam/ecs"
)

// OrbitSystem drives the scene camera from the MouseInput singleton.
type OrbitSystem struct {
	Settings ecs.Singleton[CameraSettings]
	Mouse    ecs.Singleton[MouseInput]
	Camera   ecs.Single[struct {
		*Camera
		*Transform
	}]
}

func (s *OrbitSystem) Execute(frame *ecs.UpdateFrame) {
	camera, ok := s.Camera.Get()
	if !ok {
		return
	}

	settings := s.Settings.Get()
	if settings == nil {
		return
	}

	var input MouseInput
	if mouse := s.Mouse.Get(); mouse != nil {
		input = *mouse
	}

	UpdateOrbit(camera.Transform, *settings, input, float32(frame.DeltaTime))
}

// RotatorSpeed is the yaw rate of RotateSystem in radians per second.
const RotatorSpeed float32 = 1.0

// RotateSystem spins the entity called Target about world up.
type RotateSystem struct {
	Target   Name
	Entities ecs.Query[struct {
		*Name
		*Transform
	}]
}

func (s *RotateSystem) Execute(frame *ecs.UpdateFrame) {
	angle := RotatorSpeed * float32(frame.DeltaTime)
	for entity := range s.Entities.Values() {
		if *entity.Name != s.Target {
			continue
		}
		SpinYaw(entity.Transform, angle)
	}
}
