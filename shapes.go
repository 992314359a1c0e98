package rough

// Shape assembly: maps offset sequences onto concrete geometry. All
// methods are pure functions of the generator's stream position and the
// target size; zero-area sizes produce degenerate but valid paths.

// LineHorizontal returns an open polyline spanning [0, size.W]
// horizontally, jittered vertically around y = size.H/2. The walk takes
// Segments equal steps of size.W/Segments. The final point is pinned to
// (size.W, midY) explicitly rather than trusting the offset invariant,
// so the stroke always meets the far edge exactly.
func (g *Generator) LineHorizontal(size Size) *Path {
	offsets := g.SmoothedOffsets()
	segments := g.cfg.Segments
	step := size.W / float64(segments)
	midY := size.H / 2

	points := make([]Point, 0, segments+1)
	for i := 0; i < segments; i++ {
		points = append(points, Point{X: float64(i) * step, Y: midY + offsets[i]})
	}
	points = append(points, Point{X: size.W, Y: midY})
	return &Path{points: points}
}

// LineVertical returns an open polyline spanning [0, size.H] vertically,
// jittered horizontally around x = size.W/2. Symmetric to LineHorizontal.
func (g *Generator) LineVertical(size Size) *Path {
	offsets := g.SmoothedOffsets()
	segments := g.cfg.Segments
	step := size.H / float64(segments)
	midX := size.W / 2

	points := make([]Point, 0, segments+1)
	for i := 0; i < segments; i++ {
		points = append(points, Point{X: midX + offsets[i], Y: float64(i) * step})
	}
	points = append(points, Point{X: midX, Y: size.H})
	return &Path{points: points}
}

// RectBorder returns a single closed path tracing the border of a
// size.W x size.H rectangle with jittered edges. Four independent offset
// sequences are drawn from the shared stream in the fixed order top,
// right, bottom, left, so the stream advances reproducibly.
//
// Each edge contributes its first Segments samples; the sample at an
// edge's far corner is pinned to zero and coincides with the next edge's
// first point, so it is not re-emitted. Adjacent edges jitter
// independently near a shared corner, leaving corners intentionally
// imperfect.
func (g *Generator) RectBorder(size Size) *Path {
	top := g.SmoothedOffsets()
	right := g.SmoothedOffsets()
	bottom := g.SmoothedOffsets()
	left := g.SmoothedOffsets()

	segments := g.cfg.Segments
	stepX := size.W / float64(segments)
	stepY := size.H / float64(segments)

	points := make([]Point, 0, 4*segments)
	for i := 0; i < segments; i++ { // left to right along y=0
		points = append(points, Point{X: float64(i) * stepX, Y: top[i]})
	}
	for i := 0; i < segments; i++ { // top to bottom along x=W
		points = append(points, Point{X: size.W + right[i], Y: float64(i) * stepY})
	}
	for i := 0; i < segments; i++ { // right to left along y=H
		points = append(points, Point{X: size.W - float64(i)*stepX, Y: size.H + bottom[i]})
	}
	for i := 0; i < segments; i++ { // bottom to top along x=0
		points = append(points, Point{X: left[i], Y: size.H - float64(i)*stepY})
	}
	return &Path{points: points, closed: true}
}

// ShapeFunc assembles a custom shape from a generator's offset stream.
// It is the escape hatch for geometry the built-in shapes don't cover
// (diagonals, curves): combine SmoothedOffsets with your own
// interpolation and return the result as a Path.
type ShapeFunc func(size Size, g *Generator) *Path

// Build constructs a fresh generator for cfg and hands it to fn together
// with the target size. It returns ErrInvalidConfig without calling fn if
// cfg is invalid.
func Build(cfg Config, size Size, fn ShapeFunc) (*Path, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return fn(size, g), nil
}
