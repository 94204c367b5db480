package orbit_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitcam/orbit"
	"github.com/stretchr/testify/assert"
)

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], epsilon, "component %d of %v", i, got)
	}
}

func TestIdentityAxes(t *testing.T) {
	tr := orbit.IdentityTransform()

	assertVec3(t, mgl32.Vec3{0, 0, -1}, tr.Forward())
	assertVec3(t, orbit.AxisX, tr.Right())
	assertVec3(t, orbit.AxisY, tr.Up())
	assertVec3(t, mgl32.Vec3{1, 1, 1}, tr.Scale)
}

func TestLookingAt(t *testing.T) {
	tr := orbit.TransformFromXYZ(10, 12, 16).LookingAt(mgl32.Vec3{}, orbit.AxisY)

	want := mgl32.Vec3{-10, -12, -16}.Normalize()
	assertVec3(t, want, tr.Forward())
	assert.InDelta(t, 0, tr.Right().Y(), epsilon, "right stays horizontal")
	assert.Greater(t, tr.Up().Y(), float32(0))
	assertVec3(t, mgl32.Vec3{10, 12, 16}, tr.Translation)

	t.Run("straight down", func(t *testing.T) {
		tr := orbit.TransformFromXYZ(0, 5, 0).LookingAt(mgl32.Vec3{}, orbit.AxisY)
		assertVec3(t, mgl32.Vec3{0, -1, 0}, tr.Forward())
	})

	t.Run("at target is a no-op", func(t *testing.T) {
		tr := orbit.IdentityTransform().LookingAt(mgl32.Vec3{}, orbit.AxisY)
		assert.Equal(t, mgl32.QuatIdent(), tr.Rotation)
	})
}

func TestTransformPoint(t *testing.T) {
	tr := orbit.TransformFromRotation(mgl32.QuatRotate(math.Pi/2, orbit.AxisY))
	tr.Translation = mgl32.Vec3{1, 2, 3}
	tr.Scale = mgl32.Vec3{2, 2, 2}

	// (1,0,0) scales to (2,0,0), turns to (0,0,-2), then moves.
	assertVec3(t, mgl32.Vec3{1, 2, 1}, tr.TransformPoint(orbit.AxisX))
}

func TestAxisAngle(t *testing.T) {
	axis, angle := orbit.IdentityTransform().AxisAngle()
	assert.Equal(t, orbit.AxisY, axis)
	assert.Equal(t, float32(0), angle)

	tr := orbit.TransformFromRotation(mgl32.QuatRotate(1.25, orbit.AxisX))
	axis, angle = tr.AxisAngle()
	assertVec3(t, orbit.AxisX, axis)
	assert.InDelta(t, 1.25, angle, epsilon)
}
