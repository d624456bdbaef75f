package field

import (
	"goki.dev/mat32/v2"

	"github.com/lixenwraith/gyre/parameter"
)

// Geometry is the shared torus resource referenced by every ring.
// The store releases it exactly once on rebuild or teardown.
type Geometry interface {
	Release()
}

// Material is a ring's releasable surface resource.
// SetMaterial releases the previous one; rings never leak materials
// across style switches.
type Material interface {
	Release()
}

// Ring is the basic animated entity, owned exclusively by its Store.
// Everything except BaseQuat, the material, and the per-frame transform
// is derived once at build time and never mutated.
type Ring struct {
	// Identity
	Dir        mat32.Vec3
	Step       int
	AxisIndex  int
	PlaneIndex int // -1 when the table is ungrouped
	Index      int // position in store order

	// Build-time derived state
	BasePos      mat32.Vec3
	QuatPerp     mat32.Quat
	QuatCop      mat32.Quat
	Phase        float32
	LineProgress float32
	BaseScale    float32

	// BaseQuat is the animation rest pose. It is only ever reassigned
	// as a full copy of QuatPerp, QuatCop, or identity (single writer:
	// the view controller), never interpolated.
	BaseQuat mat32.Quat

	// Per-frame transform: written by the animation engine each tick,
	// read by the renderer
	Pos   mat32.Vec3
	Rot   mat32.Quat
	Scale float32

	Geo Geometry
	mat Material
}

// SignedDistance maps a step to its radial offset along the axis
func SignedDistance(step int) float32 {
	var d float32
	switch step {
	case -2, 2:
		d = parameter.StepDistanceFar
	case -1, 1:
		d = parameter.StepDistanceNear
	default:
		return 0
	}
	if step < 0 {
		return -d
	}
	return d
}

// newRing derives a ring from its axis and step
func newRing(ax Axis, step, index int) *Ring {
	absStep := step
	if absStep < 0 {
		absStep = -absStep
	}

	r := &Ring{
		Dir:          ax.Dir,
		Step:         step,
		AxisIndex:    ax.Index,
		PlaneIndex:   ax.Plane,
		Index:        index,
		BasePos:      ax.Dir.MulScalar(SignedDistance(step)),
		QuatPerp:     Perpendicular(ax.Dir),
		QuatCop:      Coplanar(ax.Dir),
		Phase:        float32(absStep)*parameter.PhaseStepWeight + float32(ax.Index)*parameter.PhaseAxisWeight,
		LineProgress: float32(step+2) / 4,
		BaseScale:    1 + float32(ax.Index)*parameter.AxisScaleIncrement,
	}
	r.BaseQuat = r.QuatPerp
	r.ResetTransform()
	return r
}

// ResetTransform restores the rest pose, undoing the previous frame's
// animation so each mode is a pure function of elapsed time
func (r *Ring) ResetTransform() {
	r.Pos = r.BasePos
	r.Rot = r.BaseQuat
	r.Scale = r.BaseScale
}

// Material returns the current material, nil before styling
func (r *Ring) Material() Material {
	return r.mat
}

// SetMaterial swaps the ring's material, releasing the previous one
func (r *Ring) SetMaterial(m Material) {
	if r.mat != nil {
		r.mat.Release()
	}
	r.mat = m
}

// releaseMaterial drops the material on dispose
func (r *Ring) releaseMaterial() {
	if r.mat != nil {
		r.mat.Release()
		r.mat = nil
	}
}
