package render

import (
	"sync/atomic"

	"goki.dev/mat32/v2"

	"github.com/lixenwraith/gyre/parameter"
)

// Mesh is the shared torus surface sampling referenced by every ring.
// One instance serves the whole field; only per-ring transforms differ.
// Points and normals are in ring-local space: the torus lies in the
// local XY plane facing +Z.
type Mesh struct {
	Points  []mat32.Vec3
	Normals []mat32.Vec3

	released atomic.Bool
}

// NewTorusMesh samples the torus surface once for the whole build
func NewTorusMesh() *Mesh {
	major := parameter.RingMajorSegments
	tube := parameter.RingTubeSegments

	m := &Mesh{
		Points:  make([]mat32.Vec3, 0, major*tube),
		Normals: make([]mat32.Vec3, 0, major*tube),
	}

	for i := 0; i < major; i++ {
		theta := 2 * mat32.Pi * float32(i) / float32(major)
		ct, st := mat32.Cos(theta), mat32.Sin(theta)

		for j := 0; j < tube; j++ {
			phi := 2 * mat32.Pi * float32(j) / float32(tube)
			cp, sp := mat32.Cos(phi), mat32.Sin(phi)

			ring := float32(parameter.RingRadius) + float32(parameter.RingTube)*cp
			m.Points = append(m.Points, mat32.V3(ring*ct, ring*st, float32(parameter.RingTube)*sp))
			m.Normals = append(m.Normals, mat32.V3(cp*ct, cp*st, sp))
		}
	}
	return m
}

// Release marks the shared geometry dropped. The store calls this
// exactly once per build; a second call is a lifecycle defect and is
// surfaced by Released in tests rather than tolerated silently.
func (m *Mesh) Release() {
	m.released.Store(true)
}

// Released reports whether the geometry has been dropped
func (m *Mesh) Released() bool {
	return m.released.Load()
}
