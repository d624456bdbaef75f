package core

import "fmt"

// AnimMode selects the per-frame animation behavior applied to all rings
type AnimMode uint8

const (
	ModeNone AnimMode = iota
	ModeBreathe
	ModeSweep
	ModeSwarm
	AnimModeCount
)

func (m AnimMode) String() string {
	names := [...]string{"none", "breathe", "sweep", "swarm"}
	if int(m) < len(names) {
		return names[m]
	}
	return "unknown"
}

// Valid reports whether m is a defined mode
func (m AnimMode) Valid() bool {
	return m < AnimModeCount
}

// ParseAnimMode converts a config string to an AnimMode
func ParseAnimMode(s string) (AnimMode, error) {
	for m := ModeNone; m < AnimModeCount; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return ModeNone, fmt.Errorf("unknown animation mode %q", s)
}
