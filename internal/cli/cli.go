// Package cli implements the roughgen command-line interface.
//
// roughgen generates hand-drawn looking lines and borders and writes them
// as SVG or PNG files. It exists as a demo and debugging surface for the
// rough library; GUI applications consume the library directly.
//
// # Commands
//
//   - line: horizontal jittered line
//   - vline: vertical jittered line
//   - border: closed jittered rectangle border
//   - offsets: print one smoothed offset sequence (debugging)
//
// All commands accept --seed, --segments and --irregularity, or a named
// preset from a TOML file (--config/--preset). The output format follows
// the --out extension (.svg or .png).
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	rough "github.com/resengi/hand-drawn-toolkit"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// flag targets, bound by RootCommand
	seed         int64
	segments     int
	irregularity float64
	width        float64
	height       float64
	strokeWidth  float64
	colorHex     string
	out          string
	configPath   string
	preset       string
}

// New creates a new CLI instance with a logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "roughgen",
		Short:        "roughgen draws deterministic hand-drawn lines and borders",
		Long:         `roughgen generates organic, hand-drawn looking stroke paths (jittered lines and rectangle borders) and writes them as SVG or PNG. Identical inputs always produce identical output.`,
		Version:      rough.Version,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.Int64Var(&c.seed, "seed", 0, "random seed; fully determines the jitter")
	pf.IntVar(&c.segments, "segments", 24, "number of straight sub-intervals per edge")
	pf.Float64Var(&c.irregularity, "irregularity", 2.0, "maximum jitter magnitude before smoothing")
	pf.Float64Var(&c.width, "width", 200, "target width in pixels")
	pf.Float64Var(&c.height, "height", 100, "target height in pixels")
	pf.Float64Var(&c.strokeWidth, "stroke-width", 2, "stroke width in pixels")
	pf.StringVar(&c.colorHex, "color", "#1a1a1a", "stroke color as hex (#rgb, #rrggbb, #rrggbbaa)")
	pf.StringVarP(&c.out, "out", "o", "rough.svg", "output file (.svg or .png)")
	pf.StringVar(&c.configPath, "config", "", "TOML preset file")
	pf.StringVar(&c.preset, "preset", "", "preset name from the config file")

	root.AddCommand(
		c.shapeCommand("line", "Generate a horizontal hand-drawn line",
			func(g *rough.Generator, size rough.Size) *rough.Path { return g.LineHorizontal(size) }),
		c.shapeCommand("vline", "Generate a vertical hand-drawn line",
			func(g *rough.Generator, size rough.Size) *rough.Path { return g.LineVertical(size) }),
		c.shapeCommand("border", "Generate a closed hand-drawn rectangle border",
			func(g *rough.Generator, size rough.Size) *rough.Path { return g.RectBorder(size) }),
		c.offsetsCommand(),
	)
	return root
}

// config resolves the effective generator config, applying a preset from
// the TOML file when one is selected.
func (c *CLI) config(cmd *cobra.Command) (rough.Config, error) {
	cfg := rough.Config{
		Seed:         c.seed,
		Segments:     c.segments,
		Irregularity: c.irregularity,
	}
	if c.preset == "" {
		return cfg, nil
	}
	if c.configPath == "" {
		return rough.Config{}, fmt.Errorf("--preset %q requires --config", c.preset)
	}
	presets, err := LoadPresets(c.configPath)
	if err != nil {
		return rough.Config{}, err
	}
	p, ok := presets[c.preset]
	if !ok {
		names := make([]string, 0, len(presets))
		for name := range presets {
			names = append(names, name)
		}
		return rough.Config{}, fmt.Errorf("preset %q not found in %s (have: %s)",
			c.preset, c.configPath, strings.Join(names, ", "))
	}
	c.Logger.Debug("applying preset", "name", c.preset)
	p.apply(cmd, &cfg, c)
	return cfg, nil
}

func (c *CLI) shapeCommand(name, short string, build func(*rough.Generator, rough.Size) *rough.Path) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config(cmd)
			if err != nil {
				return err
			}
			g, err := rough.New(cfg)
			if err != nil {
				return err
			}
			size := rough.Size{W: c.width, H: c.height}
			p := build(g, size)
			c.Logger.Debug("generated path", "shape", name, "points", p.Len(), "closed", p.Closed())

			if err := c.writeOutput(p, size); err != nil {
				return err
			}
			c.Logger.Info("wrote output", "file", c.out, "shape", name,
				"seed", cfg.Seed, "segments", cfg.Segments)
			return nil
		},
	}
}

func (c *CLI) offsetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "offsets",
		Short: "Print one smoothed offset sequence",
		Long:  "Prints the Segments+1 smoothed perpendicular offsets a generator would apply, one value per line. Useful for inspecting seeds and irregularity settings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config(cmd)
			if err != nil {
				return err
			}
			g, err := rough.New(cfg)
			if err != nil {
				return err
			}
			for i, off := range g.SmoothedOffsets() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%.6f\n", i, off)
			}
			return nil
		},
	}
}
