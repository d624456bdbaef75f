package core

import "fmt"

// StyleID selects the material scheme applied to all rings
type StyleID uint8

const (
	StyleMatte StyleID = iota
	StyleChrome
	StyleNeon
	StyleCount
)

func (s StyleID) String() string {
	names := [...]string{"matte", "chrome", "neon"}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// Valid reports whether s is a defined style
func (s StyleID) Valid() bool {
	return s < StyleCount
}

// Next cycles to the following style, wrapping at the end
func (s StyleID) Next() StyleID {
	return (s + 1) % StyleCount
}

// ParseStyleID converts a config string to a StyleID
func ParseStyleID(s string) (StyleID, error) {
	for id := StyleMatte; id < StyleCount; id++ {
		if id.String() == s {
			return id, nil
		}
	}
	return StyleMatte, fmt.Errorf("unknown style %q", s)
}
