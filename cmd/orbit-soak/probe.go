package main

import (
	"math"
	"time"

	"github.com/plus3/orbitcam/ecs"
	"github.com/plus3/orbitcam/orbit"
)

// radiusTolerance is the largest accepted gap between the camera's distance
// from the target and the configured orbit distance.
const radiusTolerance = 1e-3

// Probe samples the camera after each update and tracks the orbit invariants.
type Probe struct {
	Settings ecs.Singleton[orbit.CameraSettings]
	Mouse    ecs.Singleton[orbit.MouseInput]
	Camera   ecs.Single[struct {
		*orbit.Camera
		*orbit.Transform
	}]

	Frames         int64
	MaxRadiusError float64
	MinPitch       float32
	MaxPitch       float32
	MinRoll        float32
	MaxRoll        float32
	// CommandedRoll sums every roll delta requested, without wrapping.
	CommandedRoll float64
	NonFinite     int64
	FrameTime     Stats

	last time.Time
}

func NewProbe() *Probe {
	return &Probe{
		MinPitch: math.MaxFloat32,
		MaxPitch: -math.MaxFloat32,
		MinRoll:  math.MaxFloat32,
		MaxRoll:  -math.MaxFloat32,
	}
}

func (p *Probe) Execute(frame *ecs.UpdateFrame) {
	now := time.Now()
	if !p.last.IsZero() {
		p.FrameTime.Samples = append(p.FrameTime.Samples, now.Sub(p.last))
	}
	p.last = now

	camera, ok := p.Camera.Get()
	settings := p.Settings.Get()
	if !ok || settings == nil {
		return
	}
	p.Frames++

	t := camera.Transform
	if !finiteVec(t.Translation[:]) || !finiteVec([]float32{t.Rotation.W, t.Rotation.V[0], t.Rotation.V[1], t.Rotation.V[2]}) {
		p.NonFinite++
		return
	}

	radiusErr := math.Abs(float64(t.Translation.Len() - settings.OrbitDistance))
	p.MaxRadiusError = max(p.MaxRadiusError, radiusErr)

	_, pitch, roll := orbit.EulerYXZ(t.Rotation)
	p.MinPitch = min(p.MinPitch, pitch)
	p.MaxPitch = max(p.MaxPitch, pitch)
	p.MinRoll = min(p.MinRoll, roll)
	p.MaxRoll = max(p.MaxRoll, roll)

	if m := p.Mouse.Get(); m != nil && m.Right {
		p.CommandedRoll += float64(settings.RollSpeed) * frame.DeltaTime
	}
}

// Violations lists every invariant the run broke, empty when it held.
func (p *Probe) Violations(settings orbit.CameraSettings) []string {
	var out []string
	if p.NonFinite > 0 {
		out = append(out, "camera transform became NaN or infinite")
	}
	if p.MaxRadiusError > radiusTolerance {
		out = append(out, "camera left the orbit sphere")
	}
	if p.Frames > 0 && (p.MinPitch < settings.PitchRange.Min-orbit.PitchTolerance || p.MaxPitch > settings.PitchRange.Max+orbit.PitchTolerance) {
		out = append(out, "pitch escaped the configured range")
	}
	const slack = 1e-4
	if p.Frames > 0 && (p.MinRoll < -math.Pi-slack || p.MaxRoll > math.Pi+slack) {
		out = append(out, "roll read back outside (-π, π]")
	}
	return out
}

func finiteVec(v []float32) bool {
	for _, f := range v {
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return false
		}
	}
	return true
}
