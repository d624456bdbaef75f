package core

import "fmt"

// Orientation names the canonical rest pose a ring's plane takes
// relative to its axis direction
type Orientation uint8

const (
	// OrientPerpendicular faces the ring plane across its axis
	OrientPerpendicular Orientation = iota

	// OrientCoplanar lays the ring plane along its axis
	OrientCoplanar

	// OrientFaceOn leaves every ring in the identity orientation
	OrientFaceOn

	OrientationCount
)

func (o Orientation) String() string {
	names := [...]string{"perpendicular", "coplanar", "faceon"}
	if int(o) < len(names) {
		return names[o]
	}
	return "unknown"
}

// Valid reports whether o is a defined orientation
func (o Orientation) Valid() bool {
	return o < OrientationCount
}

// Next cycles to the following orientation, wrapping at the end
func (o Orientation) Next() Orientation {
	return (o + 1) % OrientationCount
}

// ParseOrientation converts a config string to an Orientation
func ParseOrientation(s string) (Orientation, error) {
	for o := OrientPerpendicular; o < OrientationCount; o++ {
		if o.String() == s {
			return o, nil
		}
	}
	return OrientPerpendicular, fmt.Errorf("unknown orientation %q", s)
}
