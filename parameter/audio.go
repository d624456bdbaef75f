package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 48000
	AudioBufferDuration = 100 * time.Millisecond
)

// Volume
const (
	// VolumeDefault is the initial linear volume level [0,1]
	VolumeDefault = 0.7

	// VolumeStep is the increment for volume commands
	VolumeStep = 0.1

	// VolumeRange maps linear level to exponential gain:
	// gain exponent = (level - 1) * VolumeRange, base 2
	VolumeRange = 5.0
)

// Mode Drones
const (
	// DroneDetune separates paired oscillators for a slow beat (Hz)
	DroneDetune = 0.7

	// DroneGain keeps generated drones below clipping with two voices
	DroneGain = 0.35

	// BreatheDroneHz, SweepDroneHz, SwarmDroneHz are fundamental
	// frequencies for the per-mode tracks
	BreatheDroneHz = 110.0
	SweepDroneHz   = 146.83
	SwarmDroneHz   = 196.0
)
