package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/gyre/core"
	"github.com/lixenwraith/gyre/parameter"
)

// Config is the user-facing settings file. Tuning constants stay in
// package parameter; only choices a user would change live here.
type Config struct {
	Field  Field  `toml:"field"`
	Render Render `toml:"render"`
	Audio  Audio  `toml:"audio"`
}

type Field struct {
	// Variant selects the axis table: "star" or "rosette"
	Variant string `toml:"variant"`

	// Style is the initial material scheme: "matte", "chrome", "neon"
	Style string `toml:"style"`

	// Orientation is the initial base orientation:
	// "perpendicular", "coplanar", "faceon"
	Orientation string `toml:"orientation"`
}

type Render struct {
	FPS int `toml:"fps"`
}

type Audio struct {
	Volume float64 `toml:"volume"`
	Muted  bool    `toml:"muted"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Field: Field{
			Variant:     core.VariantStar.String(),
			Style:       core.StyleNeon.String(),
			Orientation: core.OrientPerpendicular.String(),
		},
		Render: Render{FPS: parameter.DefaultFPS},
		Audio:  Audio{Volume: parameter.VolumeDefault},
	}
}

// Load reads the TOML file at path over the defaults.
// An empty path or missing file yields the defaults; a malformed file
// is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Resolve validates the enum fields into their typed values
func (c Config) Resolve() (core.FieldVariant, core.StyleID, core.Orientation, error) {
	variant, err := core.ParseFieldVariant(c.Field.Variant)
	if err != nil {
		return 0, 0, 0, err
	}
	styleID, err := core.ParseStyleID(c.Field.Style)
	if err != nil {
		return 0, 0, 0, err
	}
	orient, err := core.ParseOrientation(c.Field.Orientation)
	if err != nil {
		return 0, 0, 0, err
	}
	return variant, styleID, orient, nil
}
