package rough

import "strconv"

// PathSink receives path geometry in drawing order. Rendering layers
// implement it to consume a Path without depending on its representation.
type PathSink interface {
	// MoveTo starts a new contour at (x, y).
	MoveTo(x, y float64)

	// LineTo draws a straight segment to (x, y).
	LineTo(x, y float64)

	// Close closes the current contour back to its starting point.
	Close()
}

// Path is an ordered sequence of 2D points forming an open polyline or,
// when closed, a polygon. Paths are produced by a Generator and consumed
// immediately by a rendering layer; they hold no reference back to the
// generator that built them.
type Path struct {
	points []Point
	closed bool
}

// Polyline constructs an open path from explicit points.
// It exists for callers assembling custom shapes from raw offsets.
func Polyline(points ...Point) *Path {
	return &Path{points: points}
}

// Polygon constructs a closed path from explicit points. The closing
// segment from the last point back to the first is implicit.
func Polygon(points ...Point) *Path {
	return &Path{points: points, closed: true}
}

// Len returns the number of points.
func (p *Path) Len() int {
	return len(p.points)
}

// At returns the i-th point in drawing order.
func (p *Path) At(i int) Point {
	return p.points[i]
}

// Points returns the underlying point slice in drawing order.
// Callers must not modify the returned slice.
func (p *Path) Points() []Point {
	return p.points
}

// Closed reports whether the path is a closed polygon.
func (p *Path) Closed() bool {
	return p.closed
}

// Copy returns an independent copy of the path.
func (p *Path) Copy() *Path {
	points := make([]Point, len(p.points))
	copy(points, p.points)
	return &Path{points: points, closed: p.closed}
}

// Translate returns a new path with every point shifted by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	points := make([]Point, len(p.points))
	for i, pt := range p.points {
		points[i] = Point{X: pt.X + dx, Y: pt.Y + dy}
	}
	return &Path{points: points, closed: p.closed}
}

// Bounds returns the axis-aligned bounding box of the path.
// The bounds of an empty path are the zero Rect.
func (p *Path) Bounds() Rect {
	if len(p.points) == 0 {
		return Rect{}
	}
	r := Rect{Min: p.points[0], Max: p.points[0]}
	for _, pt := range p.points[1:] {
		r = r.Include(pt)
	}
	return r
}

// Trace replays the path into a sink in drawing order: one MoveTo, a
// LineTo per remaining point, and a final Close for closed paths.
// An empty path produces no calls.
func (p *Path) Trace(sink PathSink) {
	if len(p.points) == 0 {
		return
	}
	sink.MoveTo(p.points[0].X, p.points[0].Y)
	for _, pt := range p.points[1:] {
		sink.LineTo(pt.X, pt.Y)
	}
	if p.closed {
		sink.Close()
	}
}

// String returns the path as SVG path data ("M x y L x y ... Z").
func (p *Path) String() string {
	if len(p.points) == 0 {
		return ""
	}
	buf := make([]byte, 0, 16*len(p.points))
	buf = append(buf, 'M')
	buf = appendCoords(buf, p.points[0])
	for _, pt := range p.points[1:] {
		buf = append(buf, 'L')
		buf = appendCoords(buf, pt)
	}
	if p.closed {
		buf = append(buf, 'Z')
	}
	return string(buf)
}

func appendCoords(buf []byte, pt Point) []byte {
	buf = strconv.AppendFloat(buf, pt.X, 'g', 8, 64)
	buf = append(buf, ' ')
	buf = strconv.AppendFloat(buf, pt.Y, 'g', 8, 64)
	return buf
}
