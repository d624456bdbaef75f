package parameter

// Ring Field Layout
const (
	// StepsPerAxis is rings per axis line (steps -2..2)
	StepsPerAxis = 5

	// StepMin and StepMax bound the signed step range
	StepMin = -2
	StepMax = 2

	// StepDistanceNear is radial distance for |step| == 1
	StepDistanceNear = 1.0

	// StepDistanceFar is radial distance for |step| == 2
	StepDistanceFar = 2.5

	// PhaseStepWeight and PhaseAxisWeight derive a ring's oscillation phase
	// phase = |step|*PhaseStepWeight + axisIndex*PhaseAxisWeight
	PhaseStepWeight = 0.5
	PhaseAxisWeight = 0.2

	// AxisScaleIncrement separates coincident ring surfaces
	// Base scale = 1 + axisIndex*AxisScaleIncrement
	AxisScaleIncrement = 0.002
)

// Star variant (ungrouped)
const (
	// StarAxisCount is 3 cardinals + 6 face diagonals
	StarAxisCount = 9
)

// Rosette variant (grouped)
const (
	// RosettePlaneCount is the number of vertical fan planes
	RosettePlaneCount = 4

	// RosetteAxesPerPlane includes the shared vertical axis in every plane
	RosetteAxesPerPlane = 4

	// RosettePlaneAzimuthDeg is the azimuth increment between planes
	RosettePlaneAzimuthDeg = 45.0
)

// Orientation Derivation
const (
	// ForwardAlignEpsilon triggers the parallel/anti-parallel branches
	// when |forward . direction| exceeds it
	ForwardAlignEpsilon = 0.999

	// UpAlignLimit triggers the fallback tangent axis when
	// |direction . up| exceeds it
	UpAlignLimit = 0.9
)
