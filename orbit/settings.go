package orbit

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// PitchLimit keeps the default pitch range just inside vertical. Past ±90°
// the yaw axis flips sign and the camera jumps.
const PitchLimit float32 = math.Pi/2 - 0.01

var (
	ErrInvalidPitchRange = errors.New("invalid pitch range")
	ErrInvalidDistance   = errors.New("invalid orbit distance")
	ErrInvalidSpeed      = errors.New("invalid speed")
)

// PitchRange is an inclusive clamp on camera pitch, in radians.
type PitchRange struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

// PitchTolerance bounds how far pitch read back from a rotation built at a
// clamp limit may land outside the range, after float32 rounding.
const PitchTolerance float32 = 1e-5

// Clamp limits pitch to [Min, Max]. Reading the angle back out of the rebuilt
// rotation is exact to within PitchTolerance.
func (r PitchRange) Clamp(pitch float32) float32 {
	return min(max(pitch, r.Min), r.Max)
}

// CameraSettings configures the orbit camera. Install it once as a singleton;
// systems only read it.
type CameraSettings struct {
	OrbitDistance float32    `yaml:"orbit_distance"`
	PitchSpeed    float32    `yaml:"pitch_speed"`
	PitchRange    PitchRange `yaml:"pitch_range"`
	RollSpeed     float32    `yaml:"roll_speed"`
	YawSpeed      float32    `yaml:"yaw_speed"`
}

// DefaultCameraSettings returns values tuned for the example scene.
func DefaultCameraSettings() CameraSettings {
	return CameraSettings{
		OrbitDistance: 20,
		PitchSpeed:    0.003,
		PitchRange:    PitchRange{Min: -PitchLimit, Max: PitchLimit},
		RollSpeed:     1.0,
		YawSpeed:      0.004,
	}
}

// Validate checks that the pitch range lies strictly inside (-π/2, π/2) with
// Min < Max, that the orbit distance is positive, and that speeds are finite.
func (c CameraSettings) Validate() error {
	const vertical = math.Pi / 2

	r := c.PitchRange
	if !finite(r.Min) || !finite(r.Max) || r.Min >= r.Max || r.Min <= -vertical || r.Max >= vertical {
		return fmt.Errorf("%w: [%g, %g] must satisfy -π/2 < min < max < π/2", ErrInvalidPitchRange, r.Min, r.Max)
	}

	if !finite(c.OrbitDistance) || c.OrbitDistance <= 0 {
		return fmt.Errorf("%w: %g must be positive", ErrInvalidDistance, c.OrbitDistance)
	}

	speeds := []struct {
		name  string
		value float32
	}{
		{"pitch_speed", c.PitchSpeed},
		{"roll_speed", c.RollSpeed},
		{"yaw_speed", c.YawSpeed},
	}
	for _, s := range speeds {
		if !finite(s.value) {
			return fmt.Errorf("%w: %s is %g", ErrInvalidSpeed, s.name, s.value)
		}
	}

	return nil
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ParseSettings overlays YAML onto DefaultCameraSettings and validates the result.
func ParseSettings(data []byte) (CameraSettings, error) {
	settings := DefaultCameraSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return CameraSettings{}, fmt.Errorf("parse camera settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return CameraSettings{}, err
	}
	return settings, nil
}

// LoadSettings reads camera settings from a YAML file. An empty path yields the defaults.
func LoadSettings(path string) (CameraSettings, error) {
	if path == "" {
		return DefaultCameraSettings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return CameraSettings{}, fmt.Errorf("read camera settings: %w", err)
	}
	return ParseSettings(data)
}
