package cli

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	rough "github.com/resengi/hand-drawn-toolkit"
	"github.com/resengi/hand-drawn-toolkit/raster"
	"github.com/resengi/hand-drawn-toolkit/svg"
)

// writeOutput renders the path to c.out. The format follows the file
// extension: .svg or .png. The viewport gets a margin so jitter and
// stroke width never clip at the edges.
func (c *CLI) writeOutput(p *rough.Path, size rough.Size) error {
	col, err := parseHexColor(c.colorHex)
	if err != nil {
		return err
	}

	margin := c.strokeWidth + c.irregularity
	w := size.W + 2*margin
	h := size.H + 2*margin

	switch strings.ToLower(filepath.Ext(c.out)) {
	case ".svg":
		doc := svg.New(w, h)
		doc.Stroke(p.Translate(margin, margin), col, c.strokeWidth)
		f, err := os.Create(c.out)
		if err != nil {
			return err
		}
		if _, err := doc.WriteTo(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".png":
		img := raster.NewImage(int(math.Ceil(w)), int(math.Ceil(h)))
		raster.Stroke(img, p, margin, margin, raster.Style{Color: col, Width: c.strokeWidth})
		return raster.SavePNG(c.out, img)
	default:
		return fmt.Errorf("unsupported output format %q (want .svg or .png)", filepath.Ext(c.out))
	}
}

// parseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa", with or without
// the leading '#'.
func parseHexColor(s string) (color.Color, error) {
	hexPart := strings.TrimPrefix(s, "#")

	var digits [8]uint8
	for i := 0; i < len(hexPart) && i < len(digits); i++ {
		ch := hexPart[i]
		switch {
		case '0' <= ch && ch <= '9':
			digits[i] = ch - '0'
		case 'a' <= ch && ch <= 'f':
			digits[i] = ch - 'a' + 10
		case 'A' <= ch && ch <= 'F':
			digits[i] = ch - 'A' + 10
		default:
			return nil, fmt.Errorf("invalid color %q: bad hex digit %q", s, ch)
		}
	}

	switch len(hexPart) {
	case 3:
		return color.NRGBA{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: 0xff}, nil
	case 6:
		return color.NRGBA{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: 0xff,
		}, nil
	case 8:
		return color.NRGBA{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: digits[6]<<4 | digits[7],
		}, nil
	default:
		return nil, fmt.Errorf("invalid color %q: want #rgb, #rrggbb or #rrggbbaa", s)
	}
}
