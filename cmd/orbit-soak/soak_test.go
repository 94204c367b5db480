package main

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/plus3/orbitcam/orbit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSoak(t *testing.T, settings orbit.CameraSettings, seed uint64, frames int) (*orbit.App, *Probe) {
	t.Helper()

	app, err := orbit.NewApp(settings)
	require.NoError(t, err)

	probe := NewProbe()
	app.Scheduler.Register(probe)
	app.Scheduler.Register(NewScriptedInput(seed))

	for range frames {
		app.Scheduler.Once(1.0 / 60)
	}
	return app, probe
}

func TestSoakHoldsInvariants(t *testing.T) {
	settings := orbit.DefaultCameraSettings()
	_, probe := runSoak(t, settings, 42, 20_000)

	assert.Equal(t, int64(20_000), probe.Frames)
	assert.Empty(t, probe.Violations(settings))
	assert.Zero(t, probe.NonFinite)
	assert.Less(t, probe.MaxRadiusError, radiusTolerance)
	assert.GreaterOrEqual(t, probe.MinPitch, settings.PitchRange.Min-orbit.PitchTolerance)
	assert.LessOrEqual(t, probe.MaxPitch, settings.PitchRange.Max+orbit.PitchTolerance)
}

func TestSoakRollAccumulatesWithoutBlowUp(t *testing.T) {
	settings := orbit.DefaultCameraSettings()
	settings.RollSpeed = 25
	_, probe := runSoak(t, settings, 7, 20_000)

	// Many full turns are commanded, yet the stored rotation stays a plain
	// quaternion and roll reads back inside one turn.
	assert.Greater(t, probe.CommandedRoll, 10*math.Pi)
	assert.Empty(t, probe.Violations(settings))
	assert.GreaterOrEqual(t, float64(probe.MinRoll), -math.Pi-1e-4)
	assert.LessOrEqual(t, float64(probe.MaxRoll), math.Pi+1e-4)
}

func TestScriptedInputIsDeterministic(t *testing.T) {
	settings := orbit.DefaultCameraSettings()
	a, _ := runSoak(t, settings, 99, 500)
	b, _ := runSoak(t, settings, 99, 500)

	assert.Equal(t, *a.CameraTransform(), *b.CameraTransform())
}

func TestProbeViolations(t *testing.T) {
	settings := orbit.DefaultCameraSettings()

	probe := NewProbe()
	assert.Empty(t, probe.Violations(settings), "no frames, nothing to report")

	probe.Frames = 1
	probe.MinPitch, probe.MaxPitch = 0, 2
	probe.MinRoll, probe.MaxRoll = 0, 0
	probe.MaxRadiusError = 0.5
	probe.NonFinite = 1

	assert.Len(t, probe.Violations(settings), 3)
}

func TestReportGenerate(t *testing.T) {
	settings := orbit.DefaultCameraSettings()
	app, probe := runSoak(t, settings, 1, 120)
	probe.FrameTime.Finalize()

	report := &Report{
		Settings:   settings,
		Probe:      probe,
		Scheduler:  app.Scheduler.GetStats(),
		Violations: probe.Violations(settings),
	}

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Orbit Camera Soak Report")
	assert.Contains(t, out, "**Frames Sampled:** 120")
	assert.Contains(t, out, "all invariants held")
	assert.Contains(t, out, "Update/OrbitSystem")
	assert.Contains(t, out, "Startup/SetupSystem")
}

func TestStatsFinalize(t *testing.T) {
	var s Stats
	s.Finalize()
	assert.Zero(t, s.Avg)

	s.Samples = []time.Duration{3, 1, 2}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)
}
