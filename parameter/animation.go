package parameter

import "math"

// Breathe Mode
const (
	// BreathePeriod is the oscillation period in seconds
	BreathePeriod = 8.0

	// BreatheOmega is the angular frequency
	BreatheOmega = 2 * math.Pi / BreathePeriod

	// BreatheTiltDeg is peak tilt about the ring-local X axis
	BreatheTiltDeg = 35.0

	// BreathePlanePhase offsets the shared oscillation per plane id
	BreathePlanePhase = 0.5
)

// Sweep Mode (traveling wave)
const (
	// SweepLoopSeconds is the full cycle over all axes
	SweepLoopSeconds = 10.0

	// SweepWaveSeconds is the active scan window within the loop
	SweepWaveSeconds = 2.5

	// SweepScanStart and SweepScanEnd bound the scan position so the
	// bell fully enters and exits the 0..1 line-progress span
	SweepScanStart = -0.5
	SweepScanEnd   = 1.5

	// SweepBellSlope shapes the triangular influence falloff
	SweepBellSlope = 2.5

	// SweepTiltDeg is peak tilt at full influence
	SweepTiltDeg = 60.0

	// SweepScaleBoost is the extra scale at full influence (1.3x total)
	SweepScaleBoost = 0.3
)

// Swarm Mode
const (
	// SwarmPhaseStep is the per-ring phase offset
	SwarmPhaseStep = math.Pi / 12

	// SwarmOmega is the oscillation angular frequency
	SwarmOmega = 2.0

	// SwarmTiltDeg is peak tilt about the per-ring varying axis
	SwarmTiltDeg = 30.0

	// SwarmAxisStep spreads the varying rotation axis across rings
	// axis = (cos a, sin a, 0), a = ringIndex*SwarmAxisStep + step
	SwarmAxisStep = 0.5
)
