package orbit

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Name labels an entity for lookup by systems and debug tooling.
type Name string

// Projection selects how a Camera maps view space to the screen.
type Projection int

const (
	ProjectionPerspective Projection = iota
	ProjectionOrthographic
)

// Camera marks the entity whose Transform is the viewpoint.
//
// For ProjectionOrthographic, ViewWidth and ViewHeight are the fixed extent of
// the visible area in world units, independent of window size. For
// ProjectionPerspective, FovY is the vertical field of view in radians.
type Camera struct {
	Projection Projection
	ViewWidth  float32
	ViewHeight float32
	FovY       float32
	Near       float32
	Far        float32
}

// ProjectionMatrix returns the clip-space projection for the given viewport aspect ratio.
func (c Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if c.Projection == ProjectionOrthographic {
		hw, hh := c.ViewWidth/2, c.ViewHeight/2
		return mgl32.Ortho(-hw, hw, -hh, hh, c.Near, c.Far)
	}
	return mgl32.Perspective(c.FovY, aspect, c.Near, c.Far)
}

type MeshKind int

const (
	MeshCuboid MeshKind = iota
	MeshPlane
)

// Mesh describes primitive geometry centred on the entity origin. Plane meshes
// lie in the XZ plane and ignore Size.Y.
type Mesh struct {
	Kind MeshKind
	Size mgl32.Vec3
}

func Cuboid() Mesh {
	return Mesh{Kind: MeshCuboid, Size: mgl32.Vec3{1, 1, 1}}
}

func Plane(width, depth float32) Mesh {
	return Mesh{Kind: MeshPlane, Size: mgl32.Vec3{width, 0, depth}}
}

// Color is an sRGB color with alpha, each channel in [0,1].
type Color struct {
	R, G, B, A float32
}

func SRGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA converts to 8-bit channels.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

func channel(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}

var White = SRGB(1, 1, 1)

// Material is the surface appearance of a Mesh.
type Material struct {
	BaseColor Color
	// DoubleSided disables back-face culling, keeping planes visible from beneath.
	DoubleSided bool
}

// PointLight emits in all directions from the entity position.
type PointLight struct {
	Color          Color
	Intensity      float32 // lumens
	Range          float32
	Radius         float32
	ShadowsEnabled bool
}

func DefaultPointLight() PointLight {
	return PointLight{
		Color:     White,
		Intensity: 1_000_000,
		Range:     20,
	}
}

// Illuminance presets in lux.
const (
	LuxOvercastDay  float32 = 1000
	LuxAmbientDay   float32 = 10_000
	LuxFullDaylight float32 = 20_000
)

// DirectionalLight shines along the entity's forward axis.
type DirectionalLight struct {
	Color          Color
	Illuminance    float32 // lux
	ShadowsEnabled bool
	Cascades       CascadeShadowConfig
}

// CascadeShadowConfig splits the shadow frustum into cascades for a directional light.
type CascadeShadowConfig struct {
	NumCascades          int
	MinimumDistance      float32
	MaximumDistance      float32
	FirstCascadeFarBound float32
	Overlap              float32
}

func DefaultCascadeShadowConfig() CascadeShadowConfig {
	return CascadeShadowConfig{
		NumCascades:          4,
		MinimumDistance:      0.1,
		MaximumDistance:      1000,
		FirstCascadeFarBound: 5,
		Overlap:              0.2,
	}
}

// Bounds returns the far bound of each cascade. The first bound is fixed and
// the rest are spaced geometrically up to MaximumDistance.
func (c CascadeShadowConfig) Bounds() []float32 {
	if c.NumCascades <= 0 {
		return nil
	}
	if c.NumCascades == 1 {
		return []float32{c.MaximumDistance}
	}

	bounds := make([]float32, c.NumCascades)
	base := float64(c.MaximumDistance / c.FirstCascadeFarBound)
	for i := range bounds {
		t := float64(i) / float64(c.NumCascades-1)
		bounds[i] = c.FirstCascadeFarBound * float32(math.Pow(base, t))
	}
	return bounds
}

// TextOverlay is screen-space text anchored at Left/Top pixels.
type TextOverlay struct {
	Text     string
	Left     float32
	Top      float32
	FontSize float32
	Color    Color
}
