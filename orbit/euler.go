package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// QuatFromEulerYXZ composes intrinsic rotations: yaw about Y, then pitch about
// the rotated X, then roll about the twice-rotated Z.
func QuatFromEulerYXZ(yaw, pitch, roll float32) mgl32.Quat {
	return mgl32.QuatRotate(yaw, AxisY).
		Mul(mgl32.QuatRotate(pitch, AxisX)).
		Mul(mgl32.QuatRotate(roll, AxisZ)).
		Normalize()
}

// QuatFromEulerZYX composes intrinsic rotations about Z, then Y, then X.
func QuatFromEulerZYX(z, y, x float32) mgl32.Quat {
	return mgl32.QuatRotate(z, AxisZ).
		Mul(mgl32.QuatRotate(y, AxisY)).
		Mul(mgl32.QuatRotate(x, AxisX)).
		Normalize()
}

// EulerYXZ is the inverse of QuatFromEulerYXZ. Yaw and roll are in (-π, π],
// pitch in [-π/2, π/2].
func EulerYXZ(q mgl32.Quat) (yaw, pitch, roll float32) {
	q = q.Normalize()
	w, x, y, z := float64(q.W), float64(q.V[0]), float64(q.V[1]), float64(q.V[2])

	// Rotation matrix terms for R = Ry * Rx * Rz:
	//   m12 = -sin(pitch)
	//   hypot(m02, m22) = cos(pitch)
	//   m02/m22 = tan(yaw)
	//   m10/m11 = tan(roll)
	m12 := 2 * (y*z - w*x)
	m02 := 2 * (x*z + w*y)
	m22 := 1 - 2*(x*x+y*y)
	m10 := 2 * (x*y + w*z)
	m11 := 1 - 2*(x*x+z*z)

	// atan2 stays accurate near ±π/2 where asin loses precision.
	pitch = float32(math.Atan2(-m12, math.Hypot(m02, m22)))
	yaw = float32(math.Atan2(m02, m22))
	roll = float32(math.Atan2(m10, m11))
	return yaw, pitch, roll
}
