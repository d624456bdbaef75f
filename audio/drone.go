package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/gyre/core"
	"github.com/lixenwraith/gyre/parameter"
)

// drone is an endless two-voice sine pad. The detuned pair beats
// slowly, which reads as movement without any sequencing.
type drone struct {
	sr     beep.SampleRate
	f1, f2 float64
	p1, p2 float64
}

// newDrone creates the looping pad for one fundamental frequency
func newDrone(sr beep.SampleRate, freq float64) beep.Streamer {
	return &drone{
		sr: sr,
		f1: freq,
		f2: freq + parameter.DroneDetune,
	}
}

func (d *drone) Stream(samples [][2]float64) (n int, ok bool) {
	step1 := d.f1 / float64(d.sr)
	step2 := d.f2 / float64(d.sr)

	for i := range samples {
		v := (math.Sin(2*math.Pi*d.p1) + math.Sin(2*math.Pi*d.p2)) * parameter.DroneGain

		d.p1 += step1
		if d.p1 >= 1 {
			d.p1 -= 1
		}
		d.p2 += step2
		if d.p2 >= 1 {
			d.p2 -= 1
		}

		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (d *drone) Err() error {
	return nil
}

// modeFrequency maps an animation mode to its track fundamental;
// 0 means silence (no track)
func modeFrequency(m core.AnimMode) float64 {
	switch m {
	case core.ModeBreathe:
		return parameter.BreatheDroneHz
	case core.ModeSweep:
		return parameter.SweepDroneHz
	case core.ModeSwarm:
		return parameter.SwarmDroneHz
	default:
		return 0
	}
}
