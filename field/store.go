package field

import (
	"github.com/lixenwraith/gyre/core"
	"github.com/lixenwraith/gyre/parameter"
)

// BuildConfig is the tagged configuration for a build pass.
// The variant plus group metadata keeps ring derivation singular: there
// is one code path regardless of table shape.
type BuildConfig struct {
	Variant core.FieldVariant

	// Geometry is the shared torus resource, owned by the store after
	// Build. May be nil (headless tests).
	Geometry Geometry

	// NewMaterial creates the initial material for a ring. May be nil.
	NewMaterial func(*Ring) Material
}

// Store owns the ordered collection of all generated rings.
// All rings are created together in one build pass; nothing is created
// or destroyed outside Build/Rebuild/Dispose.
type Store struct {
	variant core.FieldVariant
	axes    []Axis
	rings   []*Ring
	geo     Geometry
	built   bool
}

// NewStore returns an empty store; call Build before animating
func NewStore() *Store {
	return &Store{}
}

// Build generates 5 rings per axis, steps -2..2 in order
func (s *Store) Build(cfg BuildConfig) {
	s.variant = cfg.Variant
	s.axes = Axes(cfg.Variant)
	s.geo = cfg.Geometry
	s.rings = make([]*Ring, 0, len(s.axes)*parameter.StepsPerAxis)

	for _, ax := range s.axes {
		for step := parameter.StepMin; step <= parameter.StepMax; step++ {
			r := newRing(ax, step, len(s.rings))
			r.Geo = cfg.Geometry
			if cfg.NewMaterial != nil {
				r.SetMaterial(cfg.NewMaterial(r))
			}
			s.rings = append(s.rings, r)
		}
	}
	s.built = true
}

// Rebuild disposes every prior ring and resource, then builds fresh
func (s *Store) Rebuild(cfg BuildConfig) {
	s.Dispose()
	s.Build(cfg)
}

// Dispose releases all ring materials and the shared geometry exactly
// once. Safe to call on an empty or already disposed store.
func (s *Store) Dispose() {
	for _, r := range s.rings {
		r.releaseMaterial()
		r.Geo = nil
	}
	if s.geo != nil {
		s.geo.Release()
		s.geo = nil
	}
	s.rings = nil
	s.axes = nil
	s.built = false
}

// Rings returns the ordered ring collection
func (s *Store) Rings() []*Ring {
	return s.rings
}

// Axes returns the axis table the store was built from
func (s *Store) Axes() []Axis {
	return s.axes
}

// AxisCount returns the number of axes in the active table
func (s *Store) AxisCount() int {
	return len(s.axes)
}

// Variant returns the active table variant
func (s *Store) Variant() core.FieldVariant {
	return s.variant
}

// Built reports whether a build pass has completed
func (s *Store) Built() bool {
	return s.built
}
