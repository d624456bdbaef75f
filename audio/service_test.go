package audio

import (
	"math"
	"testing"

	"github.com/lixenwraith/gyre/core"
	"github.com/lixenwraith/gyre/parameter"
)

func TestModeFrequencies(t *testing.T) {
	if f := modeFrequency(core.ModeNone); f != 0 {
		t.Errorf("mode none frequency %v, want silence", f)
	}
	seen := map[float64]bool{}
	for _, m := range []core.AnimMode{core.ModeBreathe, core.ModeSweep, core.ModeSwarm} {
		f := modeFrequency(m)
		if f <= 0 {
			t.Errorf("%v has no track frequency", m)
		}
		if seen[f] {
			t.Errorf("%v shares a frequency with another mode", m)
		}
		seen[f] = true
	}
}

func TestDroneStreamBounded(t *testing.T) {
	d := newDrone(sampleRate, parameter.BreatheDroneHz)

	var samples [512][2]float64
	n, ok := d.Stream(samples[:])
	if !ok || n != len(samples) {
		t.Fatalf("Stream = %d, %v", n, ok)
	}

	var peak float64
	for _, s := range samples {
		if s[0] != s[1] {
			t.Fatal("drone channels diverge; pad is mono")
		}
		if a := math.Abs(s[0]); a > peak {
			peak = a
		}
	}
	// Two voices at DroneGain each; headroom below clipping
	if peak > 2*parameter.DroneGain {
		t.Errorf("peak %v exceeds voice sum", peak)
	}
	if peak == 0 {
		t.Error("drone produced silence")
	}
	if err := d.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestDroneIsEndless(t *testing.T) {
	d := newDrone(sampleRate, parameter.SwarmDroneHz)
	var samples [64][2]float64
	for i := 0; i < 100; i++ {
		if n, ok := d.Stream(samples[:]); !ok || n != len(samples) {
			t.Fatalf("stream ended at block %d", i)
		}
	}
}

func TestServiceInertWithoutSpeaker(t *testing.T) {
	s := NewService()

	if s.Name() != "audio" {
		t.Errorf("name %q", s.Name())
	}
	if err := s.Start(); err != nil {
		t.Errorf("start without init: %v", err)
	}
	s.PlayMode(core.ModeBreathe) // must not touch the speaker
	if err := s.Stop(); err != nil {
		t.Errorf("stop without init: %v", err)
	}
}

func TestServiceVolumeClamped(t *testing.T) {
	s := NewService()

	s.SetVolume(1.7)
	if s.Level() != 1 {
		t.Errorf("level %v, want clamp to 1", s.Level())
	}
	s.SetVolume(-0.2)
	if s.Level() != 0 {
		t.Errorf("level %v, want clamp to 0", s.Level())
	}

	s.SetVolume(0.5)
	s.AdjustVolume(parameter.VolumeStep)
	if math.Abs(s.Level()-0.6) > 1e-9 {
		t.Errorf("level %v after adjust, want 0.6", s.Level())
	}
	s.AdjustVolume(10)
	if s.Level() != 1 {
		t.Errorf("level %v after large adjust, want 1", s.Level())
	}
}

func TestServiceMuteToggle(t *testing.T) {
	s := NewService()
	if s.Muted() {
		t.Fatal("fresh service muted")
	}
	if !s.ToggleMute() || !s.Muted() {
		t.Error("first toggle did not mute")
	}
	if s.ToggleMute() || s.Muted() {
		t.Error("second toggle did not unmute")
	}
	s.SetMuted(true)
	if !s.Muted() {
		t.Error("SetMuted(true) ignored")
	}
}
