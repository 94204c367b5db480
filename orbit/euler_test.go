package orbit_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitcam/orbit"
	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-4

func TestEulerYXZRoundTrip(t *testing.T) {
	cases := []struct {
		name             string
		yaw, pitch, roll float32
	}{
		{"identity", 0, 0, 0},
		{"yaw only", 1.2, 0, 0},
		{"pitch only", 0, -0.7, 0},
		{"roll only", 0, 0, 2.5},
		{"mixed", -2.1, 0.4, 0.9},
		{"near limit", 0.3, orbit.PitchLimit, -0.2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := orbit.QuatFromEulerYXZ(tc.yaw, tc.pitch, tc.roll)
			yaw, pitch, roll := orbit.EulerYXZ(q)

			assert.InDelta(t, tc.pitch, pitch, epsilon)
			assert.InDelta(t, tc.yaw, yaw, 1e-3)
			assert.InDelta(t, tc.roll, roll, 1e-3)
		})
	}
}

func TestEulerYXZPitchAtLimits(t *testing.T) {
	for _, limit := range []float32{-orbit.PitchLimit, orbit.PitchLimit} {
		for yaw := float32(-3); yaw <= 3; yaw += 0.25 {
			for roll := float32(-3); roll <= 3; roll += 0.25 {
				_, pitch, _ := orbit.EulerYXZ(orbit.QuatFromEulerYXZ(yaw, limit, roll))
				assert.InDelta(t, limit, pitch, float64(orbit.PitchTolerance), "yaw=%v roll=%v", yaw, roll)
			}
		}
	}
}

func TestQuatFromEulerYXZOrder(t *testing.T) {
	yaw, pitch := float32(0.5), float32(0.25)
	q := orbit.QuatFromEulerYXZ(yaw, pitch, 0)

	// Yaw about world up, then pitch about the yawed right axis.
	want := mgl32.QuatRotate(yaw, orbit.AxisY).Mul(mgl32.QuatRotate(pitch, orbit.AxisX))
	assert.True(t, q.ApproxEqualThreshold(want, epsilon), "got %v want %v", q, want)

	forward := q.Rotate(mgl32.Vec3{0, 0, -1})
	assert.InDelta(t, math.Sin(float64(pitch)), forward.Y(), epsilon)
}

func TestEulerYXZWrapsRoll(t *testing.T) {
	q := orbit.QuatFromEulerYXZ(0, 0, 3*math.Pi/2)
	_, _, roll := orbit.EulerYXZ(q)
	assert.InDelta(t, -math.Pi/2, roll, epsilon)
}
