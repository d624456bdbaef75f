package parameter

// Neon Palette
const (
	// NeonPaletteSize is the number of distinct axis colors
	NeonPaletteSize = 8

	// NeonHueStepDeg spaces palette hues around the color wheel
	NeonHueStepDeg = 360.0 / NeonPaletteSize

	// NeonSaturation and NeonValue fix the HSV palette shape
	NeonSaturation = 0.85
	NeonValue      = 1.0

	// NeonEmissive is the fixed glow intensity
	NeonEmissive = 0.6
)

// Matte Style
const (
	MatteGray = 0.62
)

// Chrome Style
const (
	// ChromeHueDeg is the wet-metal accent hue
	ChromeHueDeg     = 205.0
	ChromeSaturation = 0.35
	ChromeValue      = 0.92
	ChromeMetallic   = 0.9
	ChromeEmissive   = 0.12
)
