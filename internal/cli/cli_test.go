package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestCLI() (*CLI, *bytes.Buffer) {
	logBuf := &bytes.Buffer{}
	return New(logBuf, LogInfo), logBuf
}

func TestOffsetsCommand(t *testing.T) {
	c, _ := newTestCLI()
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"offsets", "--seed", "1", "--segments", "4", "--irregularity", "2"})

	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d offset lines, want segments+1 = 5:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "0\t0.000000") {
		t.Errorf("first offset not pinned to zero: %q", lines[0])
	}
	if !strings.HasPrefix(lines[4], "4\t0.000000") {
		t.Errorf("last offset not pinned to zero: %q", lines[4])
	}
}

func TestOffsetsCommandInvalidConfig(t *testing.T) {
	c, _ := newTestCLI()
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"offsets", "--segments", "0"})

	if err := root.Execute(); err == nil {
		t.Error("expected error for segments=0")
	}
}

func TestLineCommandWritesSVG(t *testing.T) {
	c, _ := newTestCLI()
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	out := filepath.Join(t.TempDir(), "line.svg")
	root.SetArgs([]string{"line", "--seed", "42", "--segments", "24", "-o", out})

	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<path d=\"M") {
		t.Errorf("output does not look like an SVG path: %s", data)
	}
}

func TestBorderCommandWritesPNG(t *testing.T) {
	c, _ := newTestCLI()
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	out := filepath.Join(t.TempDir(), "border.png")
	root.SetArgs([]string{"border", "--seed", "7", "-o", out})

	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("output is not a PNG file")
	}
}

func TestUnsupportedOutputFormat(t *testing.T) {
	c, _ := newTestCLI()
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"line", "-o", filepath.Join(t.TempDir(), "line.bmp")})

	if err := root.Execute(); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestPresetApplied(t *testing.T) {
	cfgPath := writePresetFile(t, `
[presets.wild]
seed = 99
segments = 6
irregularity = 8.0
`)

	c, _ := newTestCLI()
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	// --seed on the command line must win over the preset's seed.
	root.SetArgs([]string{"offsets", "--config", cfgPath, "--preset", "wild", "--seed", "1"})

	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("preset segments=6 not applied: got %d lines", len(lines))
	}
}

func TestPresetMissing(t *testing.T) {
	cfgPath := writePresetFile(t, "[presets.a]\nseed = 1\n")

	c, _ := newTestCLI()
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"offsets", "--config", cfgPath, "--preset", "nope"})

	if err := root.Execute(); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestPresetRequiresConfig(t *testing.T) {
	c, _ := newTestCLI()
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"offsets", "--preset", "any"})

	if err := root.Execute(); err == nil {
		t.Error("expected error when --preset is used without --config")
	}
}
