// Package svg writes rough paths as minimal standalone SVG documents.
// It covers the toolkit's own examples and CLI; applications embedding
// the paths in a larger scene should use [rough.Path.String], which is
// already SVG path data.
package svg

import (
	"encoding/hex"
	"io"
	"strconv"

	"image/color"

	rough "github.com/resengi/hand-drawn-toolkit"
)

type element struct {
	path   *rough.Path
	stroke color.Color
	fill   color.Color
	width  float64
}

// Document accumulates styled paths and serializes them as one SVG.
// The zero value is not usable; construct with New.
type Document struct {
	w, h     float64
	elements []element
}

// New creates an empty document with the given viewport size in pixels.
func New(w, h float64) *Document {
	return &Document{w: w, h: h}
}

// Stroke adds a path drawn as an outline of the given color and width.
func (d *Document) Stroke(p *rough.Path, c color.Color, width float64) {
	if width <= 0 {
		width = 1
	}
	d.elements = append(d.elements, element{path: p, stroke: c, width: width})
}

// Fill adds a closed path drawn filled with the given color.
func (d *Document) Fill(p *rough.Path, c color.Color) {
	d.elements = append(d.elements, element{path: p, fill: c})
}

// WriteTo serializes the document. It implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, 256+128*len(d.elements))
	buf = append(buf, `<svg xmlns="http://www.w3.org/2000/svg" width="`...)
	buf = appendFloat(buf, d.w)
	buf = append(buf, `" height="`...)
	buf = appendFloat(buf, d.h)
	buf = append(buf, `" viewBox="0 0 `...)
	buf = appendFloat(buf, d.w)
	buf = append(buf, ' ')
	buf = appendFloat(buf, d.h)
	buf = append(buf, `">`...)

	for _, e := range d.elements {
		buf = append(buf, `<path d="`...)
		buf = append(buf, e.path.String()...)
		if e.stroke != nil {
			buf = append(buf, `" fill="none" stroke="`...)
			buf = appendCSSColor(buf, e.stroke)
			buf = append(buf, `" stroke-width="`...)
			buf = appendFloat(buf, e.width)
		} else {
			buf = append(buf, `" fill="`...)
			buf = appendCSSColor(buf, e.fill)
		}
		buf = append(buf, `"/>`...)
	}
	buf = append(buf, `</svg>`...)

	n, err := w.Write(buf)
	return int64(n), err
}

func appendFloat(buf []byte, f float64) []byte {
	return strconv.AppendFloat(buf, f, 'g', 8, 64)
}

// appendCSSColor writes a color as #rrggbb, or rgba(...) when it has
// transparency.
func appendCSSColor(buf []byte, c color.Color) []byte {
	if c == nil {
		return append(buf, "#000000"...)
	}
	r, g, b, a := c.RGBA()
	rgba := [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	if rgba[3] == 0xff {
		buf = append(buf, '#')
		dst := make([]byte, 6)
		hex.Encode(dst, rgba[:3])
		return append(buf, dst...)
	}
	buf = append(buf, "rgba("...)
	buf = strconv.AppendInt(buf, int64(rgba[0]), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(rgba[1]), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(rgba[2]), 10)
	buf = append(buf, ',')
	buf = strconv.AppendFloat(buf, float64(rgba[3])/0xff, 'g', 4, 64)
	return append(buf, ')')
}
