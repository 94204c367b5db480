package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// Transform places an entity in world space. Rotation is kept a unit quaternion.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func TransformFromXYZ(x, y, z float32) Transform {
	t := IdentityTransform()
	t.Translation = mgl32.Vec3{x, y, z}
	return t
}

func TransformFromRotation(rotation mgl32.Quat) Transform {
	t := IdentityTransform()
	t.Rotation = rotation
	return t
}

// LookingAt returns a copy of t rotated so Forward points at target and Up
// lies in the plane spanned by Forward and up. If up is parallel to the view
// direction another perpendicular axis is used instead.
func (t Transform) LookingAt(target, up mgl32.Vec3) Transform {
	back := t.Translation.Sub(target)
	if back.Len() == 0 {
		return t
	}
	back = back.Normalize()

	right := up.Cross(back)
	if right.Len() < 1e-6 {
		right = AxisX.Cross(back)
		if right.Len() < 1e-6 {
			right = AxisZ.Cross(back)
		}
	}
	right = right.Normalize()
	trueUp := back.Cross(right)

	basis := mgl32.Mat3FromCols(right, trueUp, back)
	t.Rotation = mgl32.Mat4ToQuat(basis.Mat4()).Normalize()
	return t
}

// Forward is the local -Z axis in world space.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Right is the local +X axis in world space.
func (t Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(AxisX)
}

// Up is the local +Y axis in world space.
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(AxisY)
}

// Matrix returns the local-to-world matrix: translate * rotate * scale.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// TransformPoint maps a local-space point to world space.
func (t Transform) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	return t.Matrix().Mul4x1(p.Vec4(1)).Vec3()
}

// AxisAngle decomposes the rotation into a unit axis and an angle in radians.
// The identity rotation reports AxisY and zero.
func (t Transform) AxisAngle() (mgl32.Vec3, float32) {
	q := t.Rotation.Normalize()
	if q.W < 0 {
		q = q.Scale(-1)
	}

	w := math.Min(1, float64(q.W))
	angle := 2 * math.Acos(w)
	s := math.Sqrt(1 - w*w)
	if s < 1e-6 {
		return AxisY, 0
	}
	return q.V.Mul(float32(1 / s)), float32(angle)
}
