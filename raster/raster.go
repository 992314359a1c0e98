// Package raster renders rough paths on the CPU.
//
// It is a reference implementation of the rendering collaborator the core
// is designed for: it strokes and fills [rough.Path] values into any
// draw.Image using golang.org/x/image/vector. GUI frameworks with their
// own canvas should instead consume paths through [rough.PathSink].
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"

	rough "github.com/resengi/hand-drawn-toolkit"
)

// Style describes how a path is stroked.
type Style struct {
	// Color is the stroke color. A nil Color strokes opaque black.
	Color color.Color

	// Width is the stroke width in pixels. Values <= 0 stroke a
	// one-pixel hairline.
	Width float64
}

func (s Style) color() color.Color {
	if s.Color == nil {
		return color.Black
	}
	return s.Color
}

func (s Style) width() float64 {
	if s.Width <= 0 {
		return 1
	}
	return s.Width
}

// Stroke draws the path outline into dst, translated by (dx, dy) in image
// coordinates. Each polyline segment is expanded to a quad of the stroke
// width; square patches at interior joints fill the notches left between
// angled segments. Caps are butt caps.
func Stroke(dst draw.Image, p *rough.Path, dx, dy float64, style Style) {
	pts := p.Points()
	if len(pts) < 2 {
		return
	}
	half := style.width() / 2
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	n := len(pts)
	segments := n - 1
	if p.Closed() {
		segments = n
	}
	for i := 0; i < segments; i++ {
		a := pts[i]
		c := pts[(i+1)%n]
		dir := c.Sub(a).Normalize()
		if dir == (rough.Point{}) {
			continue // coincident points, e.g. zero-area geometry
		}
		nrm := dir.Perp().Mul(half)
		quad(z, dx, dy, a.Add(nrm), c.Add(nrm), c.Sub(nrm), a.Sub(nrm))
	}
	for i := 0; i < n; i++ {
		if !p.Closed() && (i == 0 || i == n-1) {
			continue
		}
		j := pts[i]
		quad(z, dx, dy,
			rough.Pt(j.X-half, j.Y-half),
			rough.Pt(j.X+half, j.Y-half),
			rough.Pt(j.X+half, j.Y+half),
			rough.Pt(j.X-half, j.Y+half))
	}

	z.Draw(dst, b, image.NewUniform(style.color()), image.Point{})
}

// Fill fills a closed path into dst, translated by (dx, dy). Open paths
// and paths with fewer than three points fill nothing.
func Fill(dst draw.Image, p *rough.Path, dx, dy float64, c color.Color) {
	pts := p.Points()
	if !p.Closed() || len(pts) < 3 {
		return
	}
	if c == nil {
		c = color.Black
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0].X+dx), float32(pts[0].Y+dy))
	for _, pt := range pts[1:] {
		z.LineTo(float32(pt.X+dx), float32(pt.Y+dy))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// quad adds one convex quad contour to the rasterizer. Winding is
// canonicalized so overlapping quads saturate instead of cancelling.
func quad(z *vector.Rasterizer, dx, dy float64, a, b, c, d rough.Point) {
	if signedArea(a, b, c, d) < 0 {
		a, b, c, d = d, c, b, a
	}
	z.MoveTo(float32(a.X+dx), float32(a.Y+dy))
	z.LineTo(float32(b.X+dx), float32(b.Y+dy))
	z.LineTo(float32(c.X+dx), float32(c.Y+dy))
	z.LineTo(float32(d.X+dx), float32(d.Y+dy))
	z.ClosePath()
}

// signedArea is the shoelace sum of a quad, positive for one winding
// direction and negative for the other.
func signedArea(a, b, c, d rough.Point) float64 {
	return (a.X*b.Y - b.X*a.Y) + (b.X*c.Y - c.X*b.Y) +
		(c.X*d.Y - d.X*c.Y) + (d.X*a.Y - a.X*d.Y)
}

// NewImage returns a white RGBA image of the given pixel size, ready to
// be drawn into.
func NewImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// SavePNG writes img to a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
