package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Cell is one screen cell with the depth that claimed it
type Cell struct {
	Ch      rune
	R, G, B uint8
	Depth   float32
	Set     bool
}

// Buffer is a depth-buffered cell compositor flushed to a tcell screen.
// Reused across frames; reallocates only when capacity grows.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, keeping capacity where possible
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Size returns current dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets every cell to empty at infinite depth
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Depth: math.MaxFloat32}
	}
}

// SetPoint composites a depth-tested point; nearer depth wins the cell
func (b *Buffer) SetPoint(x, y int, depth float32, r, g, bl uint8, ch rune) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	c := &b.cells[y*b.width+x]
	if c.Set && depth >= c.Depth {
		return
	}
	*c = Cell{Ch: ch, R: r, G: g, B: bl, Depth: depth, Set: true}
}

// WriteString writes HUD text, ignoring depth
func (b *Buffer) WriteString(x, y int, s string, r, g, bl uint8) {
	for _, ch := range s {
		if x >= b.width {
			return
		}
		if x >= 0 && y >= 0 && y < b.height {
			b.cells[y*b.width+x] = Cell{Ch: ch, R: r, G: g, B: bl, Set: true}
		}
		x++
	}
}

// Flush pushes the composed frame to the screen. The caller shows it.
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if !c.Set {
				screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
				continue
			}
			style := tcell.StyleDefault.Foreground(
				tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			screen.SetContent(x, y, c.Ch, nil, style)
		}
	}
}
