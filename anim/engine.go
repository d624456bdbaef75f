package anim

import (
	"goki.dev/mat32/v2"

	"github.com/lixenwraith/gyre/core"
	"github.com/lixenwraith/gyre/field"
	"github.com/lixenwraith/gyre/parameter"
)

// Engine applies the active animation mode to every ring once per frame.
// Each Step first restores the rest pose, then applies the mode's delta,
// so the visible state is a pure function of (mode, elapsed, ring data)
// with no carry-over between frames. Never blocks; runs on the frame
// thread's critical path.
type Engine struct {
	store *field.Store
	mode  core.AnimMode
}

// NewEngine creates an engine over the store, starting in ModeNone
func NewEngine(store *field.Store) *Engine {
	return &Engine{store: store}
}

// Mode returns the active animation mode
func (e *Engine) Mode() core.AnimMode {
	return e.mode
}

// SetMode switches the active mode, effective on the next Step.
// The previous mode's visible state is discarded, not blended.
// Setting the already-active mode is a no-op; returns false for it.
func (e *Engine) SetMode(m core.AnimMode) bool {
	if m == e.mode {
		return false
	}
	e.mode = m
	return true
}

// Step computes every ring's transform for the given elapsed seconds.
// No-op before the store has built.
func (e *Engine) Step(elapsed float64) {
	if !e.store.Built() {
		return
	}

	t := float32(elapsed)
	axisCount := e.store.AxisCount()

	for _, r := range e.store.Rings() {
		r.ResetTransform()

		switch e.mode {
		case core.ModeBreathe:
			applyBreathe(r, t)
		case core.ModeSweep:
			applySweep(r, t, axisCount)
		case core.ModeSwarm:
			applySwarm(r, t)
		}
	}
}

// tiltLocal applies an extra rotation about a ring-local axis on top of
// the rest pose
func tiltLocal(r *field.Ring, axis mat32.Vec3, angle float32) {
	q := r.Rot
	r.Rot = q.Mul(mat32.NewQuatAxisAngle(axis, angle))
}

// applyBreathe tilts all rings with one shared oscillation about local
// X, phase-offset per plane when the table is grouped
func applyBreathe(r *field.Ring, t float32) {
	var phase float32
	if r.PlaneIndex >= 0 {
		phase = float32(r.PlaneIndex) * parameter.BreathePlanePhase
	}
	angle := parameter.BreatheTiltDeg * mat32.DegToRadFactor * mat32.Sin(parameter.BreatheOmega*t+phase)
	tiltLocal(r, mat32.V3(1, 0, 0), angle)
}

// applySweep runs a traveling wave along each axis line: a scan
// position crosses the line once per window and rings near it tilt and
// swell by a triangular bell influence. Axes start staggered across the
// loop. Outside the active window the rest pose stands.
func applySweep(r *field.Ring, t float32, axisCount int) {
	const loop = float32(parameter.SweepLoopSeconds)

	start := float32(r.AxisIndex) * loop / float32(axisCount)
	local := mat32.Mod(t-start, loop)
	if local < 0 {
		local += loop
	}
	if local >= parameter.SweepWaveSeconds {
		return
	}

	scan := float32(parameter.SweepScanStart) +
		local/parameter.SweepWaveSeconds*(parameter.SweepScanEnd-parameter.SweepScanStart)
	influence := 1 - mat32.Abs(r.LineProgress-scan)*parameter.SweepBellSlope
	if influence <= 0 {
		return
	}

	tiltLocal(r, mat32.V3(1, 0, 0), parameter.SweepTiltDeg*mat32.DegToRadFactor*influence)
	r.Scale = r.BaseScale * (1 + parameter.SweepScaleBoost*influence)
}

// applySwarm tilts each ring about its own varying in-plane axis with a
// per-ring phase, giving the field an uncoordinated drift
func applySwarm(r *field.Ring, t float32) {
	phase := float32(r.Index) * parameter.SwarmPhaseStep
	angle := parameter.SwarmTiltDeg * mat32.DegToRadFactor * mat32.Sin(parameter.SwarmOmega*t+phase)

	a := float32(r.Index)*parameter.SwarmAxisStep + float32(r.Step)
	axis := mat32.V3(mat32.Cos(a), mat32.Sin(a), 0)
	tiltLocal(r, axis, angle)
}
