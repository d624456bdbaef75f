package style

import (
	"sync/atomic"

	"github.com/lucasb-eyer/go-colorful"
)

// Material holds the surface properties the renderer shades rings with.
// Color is the lit base; Emissive glows independent of shading.
type Material struct {
	Color    colorful.Color
	Emissive colorful.Color

	// Metallic sharpens the specular response in the renderer
	Metallic float64

	// EmissiveIntensity scales Emissive into the final color
	EmissiveIntensity float64

	pool     *Pool
	released atomic.Bool
}

// Release returns the material to the pool accounting.
// Idempotent: a second release is ignored rather than double-counted.
func (m *Material) Release() {
	if m.released.CompareAndSwap(false, true) {
		m.pool.live.Add(-1)
	}
}

// Pool tracks live material count so leaks across style switches are
// observable. One live material per ring is the steady state.
type Pool struct {
	live atomic.Int64
}

// New allocates a tracked material
func (p *Pool) New(color, emissive colorful.Color, metallic, intensity float64) *Material {
	p.live.Add(1)
	return &Material{
		Color:             color,
		Emissive:          emissive,
		Metallic:          metallic,
		EmissiveIntensity: intensity,
		pool:              p,
	}
}

// Live returns the current live material count
func (p *Pool) Live() int {
	return int(p.live.Load())
}
