package orbit

import "github.com/go-gl/mathgl/mgl32"

// OrbitTarget is the point the camera circles and faces.
var OrbitTarget = mgl32.Vec3{0, 0, 0}

// rollImpulse is the roll delta per second of right-button hold, before RollSpeed.
const rollImpulse float32 = 1.0

// UpdateOrbit rotates and repositions transform from one frame of mouse input.
//
// Motion while the left button is held turns the camera: horizontal motion
// yaws, vertical motion pitches. Motion is a per-frame displacement and is not
// scaled by dt. Holding the right button rolls at RollSpeed radians per second.
// Pitch is clamped to settings.PitchRange; yaw and roll accumulate freely.
// Afterwards the camera sits settings.OrbitDistance from OrbitTarget, facing it.
func UpdateOrbit(transform *Transform, settings CameraSettings, input MouseInput, dt float32) {
	var look mgl32.Vec2
	if input.Left {
		look = input.Motion.Mul(-1)
	}

	var roll float32
	if input.Right {
		roll = rollImpulse
	}

	deltaPitch := look.Y() * settings.PitchSpeed
	deltaYaw := look.X() * settings.YawSpeed
	deltaRoll := roll * settings.RollSpeed * dt

	yaw, pitch, r := EulerYXZ(transform.Rotation)
	pitch = settings.PitchRange.Clamp(pitch + deltaPitch)
	r += deltaRoll
	yaw += deltaYaw

	transform.Rotation = QuatFromEulerYXZ(yaw, pitch, r)
	transform.Translation = OrbitTarget.Sub(transform.Forward().Mul(settings.OrbitDistance))
}

// SpinYaw turns transform about world up by angle radians, keeping its pitch and roll.
func SpinYaw(transform *Transform, angle float32) {
	yaw, pitch, roll := EulerYXZ(transform.Rotation)
	transform.Rotation = QuatFromEulerYXZ(yaw+angle, pitch, roll)
}
