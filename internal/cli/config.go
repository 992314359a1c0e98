package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	rough "github.com/resengi/hand-drawn-toolkit"
)

// Preset is one named parameter set in a TOML config file. All fields are
// optional; absent fields keep their flag or default values. Explicit
// command-line flags always win over preset values.
//
//	[presets.whiteboard]
//	seed = 7
//	segments = 32
//	irregularity = 3.5
//	stroke_width = 2.5
//	color = "#2b4a6f"
type Preset struct {
	Seed         *int64   `toml:"seed"`
	Segments     *int     `toml:"segments"`
	Irregularity *float64 `toml:"irregularity"`
	StrokeWidth  *float64 `toml:"stroke_width"`
	Color        *string  `toml:"color"`
}

type presetFile struct {
	Presets map[string]Preset `toml:"presets"`
}

// LoadPresets reads named presets from a TOML file.
func LoadPresets(path string) (map[string]Preset, error) {
	var f presetFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("loading presets from %s: %w", path, err)
	}
	if len(f.Presets) == 0 {
		return nil, fmt.Errorf("no presets defined in %s", path)
	}
	return f.Presets, nil
}

// apply copies preset values into the effective config and CLI style
// state, skipping any field the user set explicitly on the command line.
func (p Preset) apply(cmd *cobra.Command, cfg *rough.Config, c *CLI) {
	changed := cmd.Root().PersistentFlags().Changed
	if p.Seed != nil && !changed("seed") {
		cfg.Seed = *p.Seed
	}
	if p.Segments != nil && !changed("segments") {
		cfg.Segments = *p.Segments
	}
	if p.Irregularity != nil && !changed("irregularity") {
		cfg.Irregularity = *p.Irregularity
	}
	if p.StrokeWidth != nil && !changed("stroke-width") {
		c.strokeWidth = *p.StrokeWidth
	}
	if p.Color != nil && !changed("color") {
		c.colorHex = *p.Color
	}
}
