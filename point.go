package rough

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Size is a target rectangle size in the caller's length units.
// Zero-area sizes are valid and produce degenerate but well-defined paths.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle, used for path bounds.
type Rect struct {
	Min, Max Point
}

// W returns the rectangle width.
func (r Rect) W() float64 {
	return r.Max.X - r.Min.X
}

// H returns the rectangle height.
func (r Rect) H() float64 {
	return r.Max.Y - r.Min.Y
}

// Include returns the smallest rectangle containing both r and pt.
func (r Rect) Include(pt Point) Rect {
	if pt.X < r.Min.X {
		r.Min.X = pt.X
	}
	if pt.Y < r.Min.Y {
		r.Min.Y = pt.Y
	}
	if pt.X > r.Max.X {
		r.Max.X = pt.X
	}
	if pt.Y > r.Max.Y {
		r.Max.Y = pt.Y
	}
	return r
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(s Rect) Rect {
	return r.Include(s.Min).Include(s.Max)
}
