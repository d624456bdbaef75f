package field

import (
	"goki.dev/mat32/v2"

	"github.com/lixenwraith/gyre/core"
	"github.com/lixenwraith/gyre/parameter"
)

// Axis is one fixed unit direction rings are placed along.
// Each axis line is bidirectional via signed steps, so opposite vectors
// are never listed separately.
type Axis struct {
	Dir   mat32.Vec3
	Index int

	// Plane groups axes in the rosette variant, -1 when ungrouped
	Plane int
}

// Axes returns the ordered axis table for the variant.
// Ordering is fixed: it determines color and timing assignment.
func Axes(variant core.FieldVariant) []Axis {
	switch variant {
	case core.VariantRosette:
		return rosetteAxes()
	default:
		return starAxes()
	}
}

// starAxes builds the ungrouped table: the 3 cardinal axes plus the
// 6 face diagonals, one sign representative per axis line
func starAxes() []Axis {
	dirs := []mat32.Vec3{
		mat32.V3(1, 0, 0),
		mat32.V3(0, 1, 0),
		mat32.V3(0, 0, 1),
		mat32.V3(1, 1, 0).Normal(),
		mat32.V3(1, -1, 0).Normal(),
		mat32.V3(1, 0, 1).Normal(),
		mat32.V3(1, 0, -1).Normal(),
		mat32.V3(0, 1, 1).Normal(),
		mat32.V3(0, 1, -1).Normal(),
	}
	axes := make([]Axis, len(dirs))
	for i, d := range dirs {
		axes[i] = Axis{Dir: d, Index: i, Plane: -1}
	}
	return axes
}

// rosetteAxes builds the grouped table: 4 vertical fan planes at 45°
// azimuth increments. Every plane holds the shared vertical axis, its
// in-plane horizontal axis, and the two 45°-elevation diagonals.
// The vertical axis is intentionally repeated in every plane; the
// overlap produces visual density along it.
func rosetteAxes() []Axis {
	up := mat32.V3(0, 1, 0)
	axes := make([]Axis, 0, parameter.RosettePlaneCount*parameter.RosetteAxesPerPlane)

	for p := 0; p < parameter.RosettePlaneCount; p++ {
		azimuth := float32(p) * parameter.RosettePlaneAzimuthDeg * mat32.DegToRadFactor
		horiz := mat32.V3(mat32.Cos(azimuth), 0, mat32.Sin(azimuth))

		dirs := []mat32.Vec3{
			up,
			horiz,
			horiz.Add(up).Normal(),
			horiz.Sub(up).Normal(),
		}
		for _, d := range dirs {
			axes = append(axes, Axis{Dir: d, Index: len(axes), Plane: p})
		}
	}
	return axes
}
