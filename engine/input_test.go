package engine

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gyre/command"
	"github.com/lixenwraith/gyre/core"
	"github.com/lixenwraith/gyre/parameter"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeyCommandMap(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want command.Command
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), command.Command{Kind: command.KindQuit}},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), command.Command{Kind: command.KindQuit}},
		{"q", runeKey('q'), command.Command{Kind: command.KindQuit}},
		{"mode-0", runeKey('0'), command.Command{Kind: command.KindSetMode, Mode: core.ModeNone}},
		{"mode-1", runeKey('1'), command.Command{Kind: command.KindSetMode, Mode: core.ModeBreathe}},
		{"mode-2", runeKey('2'), command.Command{Kind: command.KindSetMode, Mode: core.ModeSweep}},
		{"mode-3", runeKey('3'), command.Command{Kind: command.KindSetMode, Mode: core.ModeSwarm}},
		{"style", runeKey('s'), command.Command{Kind: command.KindCycleStyle}},
		{"view-cycle", runeKey('v'), command.Command{Kind: command.KindCycleView}},
		{"view-reset", runeKey('V'), command.Command{Kind: command.KindResetView, Orientation: core.OrientPerpendicular}},
		{"vol-up", runeKey('+'), command.Command{Kind: command.KindVolumeDelta, Delta: parameter.VolumeStep}},
		{"vol-up-alt", runeKey('='), command.Command{Kind: command.KindVolumeDelta, Delta: parameter.VolumeStep}},
		{"vol-down", runeKey('-'), command.Command{Kind: command.KindVolumeDelta, Delta: -parameter.VolumeStep}},
		{"mute", runeKey('m'), command.Command{Kind: command.KindToggleMute}},
	}
	for _, tc := range cases {
		got, ok := keyCommand(tc.ev)
		if !ok {
			t.Errorf("%s: key not mapped", tc.name)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestKeyCommandIgnoresUnmapped(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		runeKey('x'),
		runeKey('9'),
		tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
	} {
		if cmd, ok := keyCommand(ev); ok {
			t.Errorf("unmapped key produced %+v", cmd)
		}
	}
}

func TestPollInputTranslatesEvents(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	q := command.NewQueue()
	done := make(chan struct{})
	go func() {
		PollInput(screen, q)
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, '1', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'm', tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	<-done

	got := q.Consume()
	if len(got) < 3 {
		t.Fatalf("queued %d commands, want at least 3", len(got))
	}
	last := got[len(got)-1]
	if last.Kind != command.KindQuit {
		t.Errorf("last command %+v, want quit", last)
	}
}
