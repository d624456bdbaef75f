package style

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/gyre/core"
	"github.com/lixenwraith/gyre/field"
	"github.com/lixenwraith/gyre/parameter"
)

// Applicator assigns a material scheme to every ring.
// Applying a style always swaps materials through Ring.SetMaterial so
// the previous resource is released before the new one is live.
type Applicator struct {
	pool    Pool
	palette []colorful.Color
	current core.StyleID
}

// NewApplicator builds the fixed neon palette up front
func NewApplicator() *Applicator {
	palette := make([]colorful.Color, parameter.NeonPaletteSize)
	for i := range palette {
		palette[i] = colorful.Hsv(float64(i)*parameter.NeonHueStepDeg,
			parameter.NeonSaturation, parameter.NeonValue)
	}
	return &Applicator{palette: palette}
}

// Current returns the active style
func (a *Applicator) Current() core.StyleID {
	return a.current
}

// Pool exposes live-material accounting
func (a *Applicator) Pool() *Pool {
	return &a.pool
}

// Material creates the material a ring gets under the given style
func (a *Applicator) Material(id core.StyleID, r *field.Ring) *Material {
	switch id {
	case core.StyleChrome:
		c := colorful.Hsv(parameter.ChromeHueDeg, parameter.ChromeSaturation, parameter.ChromeValue)
		return a.pool.New(c, c, parameter.ChromeMetallic, parameter.ChromeEmissive)
	case core.StyleNeon:
		c := a.palette[r.AxisIndex%len(a.palette)]
		return a.pool.New(c, c, 0, parameter.NeonEmissive)
	default:
		g := parameter.MatteGray
		return a.pool.New(colorful.Color{R: g, G: g, B: g}, colorful.Color{}, 0, 0)
	}
}

// Apply replaces every ring's material with the style's scheme.
// An empty collection is a no-op; an undefined style is rejected at
// this boundary rather than inside the frame loop.
func (a *Applicator) Apply(id core.StyleID, rings []*field.Ring) error {
	if !id.Valid() {
		return fmt.Errorf("invalid style %d", id)
	}
	a.current = id
	for _, r := range rings {
		r.SetMaterial(a.Material(id, r))
	}
	return nil
}
