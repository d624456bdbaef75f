package parameter

import "time"

// Frame Timing
const (
	// DefaultFPS drives the frame scheduler when config is absent
	DefaultFPS = 30

	// MinFPS and MaxFPS clamp configured frame rates
	MinFPS = 10
	MaxFPS = 120

	// TickCatchupLimit resets the tick deadline when the loop falls
	// more than this many intervals behind
	TickCatchupLimit = 2
)

// Ring Geometry
const (
	// RingRadius is the major radius of the torus in world units
	RingRadius = 0.55

	// RingTube is the minor (tube) radius
	RingTube = 0.10

	// RingMajorSegments and RingTubeSegments set mesh sampling density
	RingMajorSegments = 48
	RingTubeSegments  = 6
)

// Projection
const (
	// FocalLength for the perspective divide
	FocalLength = 10.0

	// NearClip floors the perspective denominator
	NearClip = 0.5

	// CellAspect doubles X to compensate terminal cell height/width
	CellAspect = 2.0

	// ViewScale maps normalized projection to screen rows
	ViewScale = 0.16
)

// Camera Poses
const (
	// TunnelDistance places the camera on +Z looking at the origin
	TunnelDistance = 7.5

	// FlowerHeight places the camera above the field looking down
	FlowerHeight = 8.5

	// CameraDamping is the per-second return rate toward the pose
	CameraDamping = 4.0
)

// HUD
const (
	HUDRows = 2

	// FPSSampleWindow smooths the displayed frame rate
	FPSSampleWindow = 500 * time.Millisecond
)
