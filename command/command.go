package command

import "github.com/lixenwraith/gyre/core"

// Kind discriminates commands crossing from the input thread to the
// frame loop
type Kind uint8

const (
	KindNone Kind = iota
	KindSetMode
	KindSetStyle
	KindCycleStyle
	KindResetView
	KindCycleView
	KindVolumeDelta
	KindToggleMute
	KindResize
	KindQuit
)

// Command is one external request. Mutation of shared state happens
// only when the frame loop applies these; producers never touch the
// field directly.
type Command struct {
	Kind        Kind
	Mode        core.AnimMode
	Style       core.StyleID
	Orientation core.Orientation

	// Delta is the volume increment for KindVolumeDelta
	Delta float64

	// Width, Height for KindResize
	Width, Height int
}
