// Package wire turns the orbit scene into screen-space line segments, for
// hosts that draw with a 2D vector API.
package wire

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitcam/ecs"
	"github.com/plus3/orbitcam/orbit"
)

// Segment is a screen-space line in pixels, origin top left.
type Segment struct {
	A, B  mgl32.Vec2
	Color orbit.Color
}

// Projector maps world points to pixels for one camera and viewport.
type Projector struct {
	viewProj      mgl32.Mat4
	width, height float32
}

// NewProjector builds the view from the camera transform, including roll, and
// the projection from the camera settings.
func NewProjector(camera orbit.Camera, transform orbit.Transform, width, height int) Projector {
	eye := transform.Translation
	view := mgl32.LookAtV(eye, eye.Add(transform.Forward()), transform.Up())

	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}

	return Projector{
		viewProj: camera.ProjectionMatrix(aspect).Mul4(view),
		width:    float32(width),
		height:   float32(height),
	}
}

// FromStorage returns a projector for the scene's only camera. ok is false
// when there is no camera or more than one.
func FromStorage(storage *ecs.Storage, width, height int) (Projector, bool) {
	single := ecs.NewSingle[struct {
		*orbit.Camera
		*orbit.Transform
	}](storage)
	single.Execute()

	camera, ok := single.Get()
	if !ok {
		return Projector{}, false
	}
	return NewProjector(*camera.Camera, *camera.Transform, width, height), true
}

// Project returns the pixel position of a world point. ok is false for points
// outside the depth range or behind a perspective camera.
func (p Projector) Project(world mgl32.Vec3) (mgl32.Vec2, bool) {
	clip := p.viewProj.Mul4x1(world.Vec4(1))
	if clip.W() <= 0 {
		return mgl32.Vec2{}, false
	}

	ndc := clip.Vec3().Mul(1 / clip.W())
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return mgl32.Vec2{}, false
	}

	return mgl32.Vec2{
		(ndc.X() + 1) / 2 * p.width,
		(1 - ndc.Y()) / 2 * p.height,
	}, true
}

// Line projects a world-space line. Lines with an unprojectable end are dropped.
func (p Projector) Line(a, b mgl32.Vec3, c orbit.Color) (Segment, bool) {
	sa, ok := p.Project(a)
	if !ok {
		return Segment{}, false
	}
	sb, ok := p.Project(b)
	if !ok {
		return Segment{}, false
	}
	return Segment{A: sa, B: sb, Color: c}, true
}

// Edge is a pair of local-space points.
type Edge [2]mgl32.Vec3

// MeshEdges returns the outline of a mesh in its local space.
func MeshEdges(mesh orbit.Mesh) []Edge {
	h := mesh.Size.Mul(0.5)

	switch mesh.Kind {
	case orbit.MeshCuboid:
		var corners [8]mgl32.Vec3
		for i := range corners {
			corners[i] = mgl32.Vec3{
				sign(i&1) * h.X(),
				sign(i&2) * h.Y(),
				sign(i&4) * h.Z(),
			}
		}

		var edges []Edge
		for i := range corners {
			for _, bit := range []int{1, 2, 4} {
				if i&bit == 0 {
					edges = append(edges, Edge{corners[i], corners[i|bit]})
				}
			}
		}
		return edges

	case orbit.MeshPlane:
		a := mgl32.Vec3{-h.X(), 0, -h.Z()}
		b := mgl32.Vec3{h.X(), 0, -h.Z()}
		c := mgl32.Vec3{h.X(), 0, h.Z()}
		d := mgl32.Vec3{-h.X(), 0, h.Z()}
		return []Edge{{a, b}, {b, c}, {c, d}, {d, a}}
	}

	return nil
}

func sign(bit int) float32 {
	if bit == 0 {
		return -1
	}
	return 1
}

// gizmoSize is the half-length of light markers in world units.
const gizmoSize float32 = 0.25

// Scene collects segments for every mesh and light in storage.
// Meshes come first, in archetype order, then point lights, then directional lights.
func Scene(storage *ecs.Storage, p Projector) []Segment {
	var segments []Segment
	add := func(a, b mgl32.Vec3, c orbit.Color) {
		if s, ok := p.Line(a, b, c); ok {
			segments = append(segments, s)
		}
	}

	meshes := ecs.NewView[struct {
		*orbit.Mesh
		*orbit.Transform
		Material *orbit.Material `ecs:"optional"`
	}](storage)
	for item := range meshes.Values() {
		c := orbit.White
		if item.Material != nil {
			c = item.Material.BaseColor
		}
		for _, e := range MeshEdges(*item.Mesh) {
			add(item.Transform.TransformPoint(e[0]), item.Transform.TransformPoint(e[1]), c)
		}
	}

	points := ecs.NewView[struct {
		*orbit.PointLight
		*orbit.Transform
	}](storage)
	for item := range points.Values() {
		center := item.Transform.Translation
		for _, axis := range []mgl32.Vec3{orbit.AxisX, orbit.AxisY, orbit.AxisZ} {
			d := axis.Mul(gizmoSize)
			add(center.Sub(d), center.Add(d), item.PointLight.Color)
		}
	}

	suns := ecs.NewView[struct {
		*orbit.DirectionalLight
		*orbit.Transform
	}](storage)
	for item := range suns.Values() {
		dir := item.Transform.Forward()
		tail := orbit.OrbitTarget.Sub(dir.Mul(3))
		add(tail, tail.Add(dir.Mul(1.5)), item.DirectionalLight.Color)
	}

	return segments
}
