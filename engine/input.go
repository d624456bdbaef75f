package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gyre/command"
	"github.com/lixenwraith/gyre/core"
	"github.com/lixenwraith/gyre/parameter"
)

// PollInput translates terminal events into commands until the screen
// closes. Runs on its own goroutine; the queue is the only shared
// state it touches.
func PollInput(screen tcell.Screen, q *command.Queue) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			q.Push(command.Command{Kind: command.KindQuit})
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			q.Push(command.Command{Kind: command.KindResize, Width: w, Height: h})

		case *tcell.EventKey:
			if cmd, ok := keyCommand(ev); ok {
				q.Push(cmd)
				if cmd.Kind == command.KindQuit {
					return
				}
			}
		}
	}
}

// keyCommand maps one key event to its command
func keyCommand(ev *tcell.EventKey) (command.Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return command.Command{Kind: command.KindQuit}, true
	case tcell.KeyRune:
	default:
		return command.Command{}, false
	}

	switch ev.Rune() {
	case 'q':
		return command.Command{Kind: command.KindQuit}, true
	case '0':
		return command.Command{Kind: command.KindSetMode, Mode: core.ModeNone}, true
	case '1':
		return command.Command{Kind: command.KindSetMode, Mode: core.ModeBreathe}, true
	case '2':
		return command.Command{Kind: command.KindSetMode, Mode: core.ModeSweep}, true
	case '3':
		return command.Command{Kind: command.KindSetMode, Mode: core.ModeSwarm}, true
	case 's':
		return command.Command{Kind: command.KindCycleStyle}, true
	case 'v':
		return command.Command{Kind: command.KindCycleView}, true
	case 'V':
		return command.Command{Kind: command.KindResetView, Orientation: core.OrientPerpendicular}, true
	case '+', '=':
		return command.Command{Kind: command.KindVolumeDelta, Delta: parameter.VolumeStep}, true
	case '-', '_':
		return command.Command{Kind: command.KindVolumeDelta, Delta: -parameter.VolumeStep}, true
	case 'm':
		return command.Command{Kind: command.KindToggleMute}, true
	}
	return command.Command{}, false
}
