package cli

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{name: "short", input: "#f0a", want: color.NRGBA{R: 0xff, G: 0x00, B: 0xaa, A: 0xff}},
		{name: "full", input: "#1a2b3c", want: color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}},
		{name: "with alpha", input: "#11223344", want: color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
		{name: "no hash", input: "ffffff", want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{name: "uppercase", input: "#ABCDEF", want: color.NRGBA{R: 0xab, G: 0xcd, B: 0xef, A: 0xff}},
		{name: "bad digit", input: "#12345g", wantErr: true},
		{name: "bad length", input: "#12345", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHexColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseHexColor(%q): expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseHexColor(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
