package core

import "fmt"

// FieldVariant selects the axis table the composition is built from
type FieldVariant uint8

const (
	// VariantStar is the ungrouped 9-axis table
	VariantStar FieldVariant = iota

	// VariantRosette is the grouped 16-axis table (4 planes of 4,
	// vertical axis repeated in every plane)
	VariantRosette

	FieldVariantCount
)

func (v FieldVariant) String() string {
	names := [...]string{"star", "rosette"}
	if int(v) < len(names) {
		return names[v]
	}
	return "unknown"
}

// Valid reports whether v is a defined variant
func (v FieldVariant) Valid() bool {
	return v < FieldVariantCount
}

// ParseFieldVariant converts a config string to a FieldVariant
func ParseFieldVariant(s string) (FieldVariant, error) {
	for v := VariantStar; v < FieldVariantCount; v++ {
		if v.String() == s {
			return v, nil
		}
	}
	return VariantStar, fmt.Errorf("unknown field variant %q", s)
}
