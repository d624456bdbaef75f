package field

import (
	"testing"

	"goki.dev/mat32/v2"

	"github.com/lixenwraith/gyre/core"
)

const epsilon = 1e-5

func TestStarAxisCount(t *testing.T) {
	axes := Axes(core.VariantStar)
	if len(axes) != 9 {
		t.Fatalf("star table has %d axes, want 9", len(axes))
	}
}

func TestRosetteAxisCount(t *testing.T) {
	axes := Axes(core.VariantRosette)
	if len(axes) != 16 {
		t.Fatalf("rosette table has %d axes, want 16", len(axes))
	}
}

func TestAxesUnitLength(t *testing.T) {
	for _, variant := range []core.FieldVariant{core.VariantStar, core.VariantRosette} {
		for _, ax := range Axes(variant) {
			if l := ax.Dir.Length(); mat32.Abs(l-1) > epsilon {
				t.Errorf("%s axis %d has length %v, want 1", variant, ax.Index, l)
			}
		}
	}
}

func TestAxisIndicesStable(t *testing.T) {
	for _, variant := range []core.FieldVariant{core.VariantStar, core.VariantRosette} {
		first := Axes(variant)
		second := Axes(variant)
		for i := range first {
			if first[i].Index != i {
				t.Errorf("%s axis %d carries index %d", variant, i, first[i].Index)
			}
			if first[i].Dir != second[i].Dir {
				t.Errorf("%s axis %d direction not stable across builds", variant, i)
			}
		}
	}
}

func TestStarAxesUngrouped(t *testing.T) {
	for _, ax := range Axes(core.VariantStar) {
		if ax.Plane != -1 {
			t.Errorf("star axis %d has plane %d, want -1", ax.Index, ax.Plane)
		}
	}
}

func TestRosetteVerticalSharedAcrossPlanes(t *testing.T) {
	axes := Axes(core.VariantRosette)
	up := mat32.V3(0, 1, 0)

	planes := map[int]int{}
	vertical := 0
	for _, ax := range axes {
		if ax.Plane < 0 || ax.Plane > 3 {
			t.Fatalf("axis %d has plane %d, want 0..3", ax.Index, ax.Plane)
		}
		planes[ax.Plane]++
		if ax.Dir.Sub(up).Length() < epsilon {
			vertical++
		}
	}

	// Deliberately duplicated, never deduplicated
	if vertical != 4 {
		t.Errorf("vertical axis appears %d times, want 4", vertical)
	}
	for p := 0; p < 4; p++ {
		if planes[p] != 4 {
			t.Errorf("plane %d holds %d axes, want 4", p, planes[p])
		}
	}
}

func TestRosettePlaneAzimuths(t *testing.T) {
	axes := Axes(core.VariantRosette)

	// Horizontal axis of each plane, at 45 degree azimuth increments
	// from +X through the XZ plane
	half := mat32.Sqrt(2) / 2
	horizontals := []mat32.Vec3{
		mat32.V3(1, 0, 0),
		mat32.V3(half, 0, half),
		mat32.V3(0, 0, 1),
		mat32.V3(-half, 0, half),
	}
	for p, want := range horizontals {
		got := axes[p*4+1].Dir
		if got.Sub(want).Length() > epsilon {
			t.Errorf("plane %d horizontal %v, want %v", p, got, want)
		}
	}
}

func TestRosetteNoOppositePairs(t *testing.T) {
	axes := Axes(core.VariantRosette)
	for i, a := range axes {
		for _, b := range axes[i+1:] {
			if a.Dir.Add(b.Dir).Length() < epsilon {
				t.Errorf("axes %d and %d are opposite vectors; lines are bidirectional via step sign", a.Index, b.Index)
			}
		}
	}
}
