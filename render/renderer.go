package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"goki.dev/mat32/v2"

	"github.com/lixenwraith/gyre/core"
	"github.com/lixenwraith/gyre/field"
	"github.com/lixenwraith/gyre/parameter"
	"github.com/lixenwraith/gyre/style"
)

// Status is the HUD state drawn under the field each frame
type Status struct {
	Mode        core.AnimMode
	Style       core.StyleID
	Variant     core.FieldVariant
	Orientation core.Orientation
	Volume      float64
	Muted       bool
	FPS         float64
	Rings       int
}

// shadeRunes ramp from dim to bright surface intensity
var shadeRunes = []rune{'.', ':', '+', '*', '#', '@'}

// lightDir is the fixed world-space light for surface shading
var lightDir = mat32.V3(0.4, 0.7, 0.6).Normal()

// Renderer projects the ring field onto the terminal cell grid through
// the camera: transform, perspective divide, depth-tested point splat.
type Renderer struct {
	buf *Buffer
	cam *Camera
}

// NewRenderer creates a renderer over a fresh buffer
func NewRenderer(width, height int, cam *Camera) *Renderer {
	return &Renderer{
		buf: NewBuffer(width, height),
		cam: cam,
	}
}

// Resize tracks terminal size changes
func (rd *Renderer) Resize(width, height int) {
	rd.buf.Resize(width, height)
}

// Frame composes one full frame and flushes it to the screen
func (rd *Renderer) Frame(screen tcell.Screen, rings []*field.Ring, st Status) {
	rd.buf.Clear()

	width, height := rd.buf.Size()
	viewH := height - parameter.HUDRows
	if viewH > 0 {
		right, up, fwd := rd.cam.Basis()
		for _, r := range rings {
			rd.drawRing(r, right, up, fwd, width, viewH)
		}
	}

	rd.drawHUD(st)
	rd.buf.Flush(screen)
}

// drawRing splats every mesh sample of one ring
func (rd *Renderer) drawRing(r *field.Ring, right, up, fwd mat32.Vec3, width, viewH int) {
	mesh, ok := r.Geo.(*Mesh)
	if !ok || mesh == nil {
		return
	}

	var mr, mg, mb float64 = 0.7, 0.7, 0.7
	var er, eg, eb, intensity, metallic float64
	if m, ok := r.Material().(*style.Material); ok && m != nil {
		mr, mg, mb = m.Color.R, m.Color.G, m.Color.B
		er, eg, eb = m.Emissive.R, m.Emissive.G, m.Emissive.B
		intensity = m.EmissiveIntensity
		metallic = m.Metallic
	}

	scale := float32(viewH) * parameter.ViewScale

	for i, p := range mesh.Points {
		world := p.MulScalar(r.Scale).MulQuat(r.Rot).Add(r.Pos)
		normal := mesh.Normals[i].MulQuat(r.Rot)

		// Camera space
		d := world.Sub(rd.cam.Pos)
		cz := d.Dot(fwd)
		if cz < parameter.NearClip {
			continue
		}
		cx := d.Dot(right)
		cy := d.Dot(up)

		invZ := float32(parameter.FocalLength) / cz
		sx := float32(width)/2 + cx*invZ*scale*parameter.CellAspect
		sy := float32(viewH)/2 - cy*invZ*scale

		// The HUD rows below the view area are off limits
		if int(sy) >= viewH {
			continue
		}

		// Lambert term plus a specular kick for metallic surfaces
		diff := float64(normal.Dot(lightDir))
		if diff < 0 {
			diff = 0
		}
		shade := 0.25 + 0.75*diff
		if metallic > 0 {
			spec := diff * diff * diff * diff
			shade += metallic * spec
		}

		cr := clampColor(mr*shade + er*intensity)
		cg := clampColor(mg*shade + eg*intensity)
		cb := clampColor(mb*shade + eb*intensity)

		idx := int(shade * float64(len(shadeRunes)))
		if idx >= len(shadeRunes) {
			idx = len(shadeRunes) - 1
		}

		rd.buf.SetPoint(int(sx), int(sy), cz, cr, cg, cb, shadeRunes[idx])
	}
}

// drawHUD writes the two status rows under the field
func (rd *Renderer) drawHUD(st Status) {
	_, height := rd.buf.Size()
	statusY := height - 2
	keysY := height - 1

	mute := ""
	if st.Muted {
		mute = " [muted]"
	}
	line := fmt.Sprintf(" %s | mode:%s style:%s view:%s | vol:%.0f%%%s | %d rings | %.0f fps",
		st.Variant, st.Mode, st.Style, st.Orientation, st.Volume*100, mute, st.Rings, st.FPS)
	rd.buf.WriteString(0, statusY, line, 160, 160, 170)

	keys := " 0-3:mode  s:style  v/V:view  +/-:vol  m:mute  q:quit"
	rd.buf.WriteString(0, keysY, keys, 100, 100, 110)
}

func clampColor(v float64) uint8 {
	if v >= 1 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v * 255)
}
