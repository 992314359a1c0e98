// Package rough generates deterministic, hand-drawn looking stroke paths
// for lines, borders and dividers.
//
// # Overview
//
// rough is a small geometry core for GUI rendering pipelines. Given a seed,
// a segment count and an irregularity magnitude it produces a reproducible
// jittered polyline, and stitches such polylines into composite shapes:
// horizontal and vertical lines, and closed rectangle borders. The package
// never touches pixels; it only produces ordered point sequences that a
// rendering layer strokes or fills.
//
// # Quick Start
//
//	import rough "github.com/resengi/hand-drawn-toolkit"
//
//	g, err := rough.New(rough.Config{Seed: 42, Segments: 24, Irregularity: 1.5})
//	if err != nil {
//	    // Segments < 1 or Irregularity < 0
//	}
//	border := g.RectBorder(rough.Size{W: 200, H: 100})
//	border.Trace(myRenderer) // any rough.PathSink
//
// # Determinism
//
// All randomness is owned by Config.Seed. Two generators constructed with
// identical configs produce bit-identical output, across process restarts
// and platforms. A single Generator carries an advancing random stream and
// is not safe for concurrent use; construct one Generator per path
// generation call. Independent generators are safe to use from any number
// of goroutines.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Architecture
//
// The module is organized into:
//   - Public API: Config, Generator, Path, Point, Size, Painter
//   - cache: sharded memoization backing Painter
//   - raster: CPU reference renderer (golang.org/x/image/vector)
//   - svg: SVG document writer
//   - cmd/roughgen: command line demo
package rough

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
