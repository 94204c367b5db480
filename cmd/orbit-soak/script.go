package main

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitcam/ecs"
	"github.com/plus3/orbitcam/orbit"
)

// ScriptedInput replays a seeded stream of mouse gestures: drags of varying
// length and speed, right-button roll holds, and idle stretches. It writes
// the input for the next frame, since it runs after OrbitSystem.
type ScriptedInput struct {
	Mouse ecs.Singleton[orbit.MouseInput]

	rng       *rand.Rand
	gesture   orbit.MouseInput
	remaining int
}

func NewScriptedInput(seed uint64) *ScriptedInput {
	return &ScriptedInput{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *ScriptedInput) Execute(frame *ecs.UpdateFrame) {
	if s.remaining == 0 {
		s.gesture = s.nextGesture()
		s.remaining = 1 + s.rng.IntN(90)
	}
	s.remaining--

	input := s.gesture
	if input.Left {
		// Jitter so consecutive frames of a drag are not identical.
		input.Motion = input.Motion.Add(mgl32.Vec2{
			float32(s.rng.NormFloat64()),
			float32(s.rng.NormFloat64()),
		})
	}
	s.Mouse.Set(input)
}

func (s *ScriptedInput) nextGesture() orbit.MouseInput {
	switch s.rng.IntN(5) {
	case 0:
		return orbit.MouseInput{}
	case 1:
		return orbit.MouseInput{Right: true}
	case 2:
		// Fast vertical drag that runs into the pitch clamp.
		return orbit.MouseInput{Left: true, Motion: mgl32.Vec2{0, float32(s.rng.NormFloat64() * 200)}}
	case 3:
		return orbit.MouseInput{Left: true, Right: true, Motion: s.randomMotion(40)}
	default:
		return orbit.MouseInput{Left: true, Motion: s.randomMotion(20)}
	}
}

func (s *ScriptedInput) randomMotion(scale float64) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(s.rng.NormFloat64() * scale),
		float32(s.rng.NormFloat64() * scale),
	}
}
