package rough

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/resengi/hand-drawn-toolkit/cache"
)

// shapeKind distinguishes the built-in shapes inside a Painter's cache.
type shapeKind uint8

const (
	horizontalLine shapeKind = iota
	verticalLine
	rectangleBorder
)

func (k shapeKind) String() string {
	switch k {
	case horizontalLine:
		return "line_horizontal"
	case verticalLine:
		return "line_vertical"
	case rectangleBorder:
		return "rect_border"
	default:
		return "unknown"
	}
}

// pathKey identifies one generated path. Any change to the config or the
// target size produces a different key, which is what invalidates a
// previously cached path.
type pathKey struct {
	cfg  Config
	size Size
	kind shapeKind
}

// hashPathKey computes an FNV-1a hash over the key's fixed-size binary
// encoding, for cache shard selection.
func hashPathKey(k pathKey) uint64 {
	var buf [41]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(k.cfg.Seed))
	binary.LittleEndian.PutUint64(buf[8:], uint64(k.cfg.Segments))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(k.cfg.Irregularity))
	binary.LittleEndian.PutUint64(buf[24:], math.Float64bits(k.size.W))
	binary.LittleEndian.PutUint64(buf[32:], math.Float64bits(k.size.H))
	buf[40] = byte(k.kind)

	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// Painter memoizes generated paths keyed by (Config, Size, shape). The
// core generator is referentially transparent, so a Painter only decides
// when to regenerate: a path is rebuilt exactly when its key was never
// seen or has been evicted. Callers that change config or size simply
// miss the old key; no manual invalidation is required.
//
// A Painter is safe for concurrent use. Cached paths are shared; callers
// must treat them as immutable.
type Painter struct {
	paths *cache.Sharded[pathKey, *Path]
}

// NewPainter creates a Painter holding up to perShard entries per cache
// shard. perShard <= 0 selects a default suitable for a screenful of
// widgets.
func NewPainter(perShard int) *Painter {
	return &Painter{paths: cache.New[pathKey, *Path](perShard, hashPathKey)}
}

// Line returns the memoized horizontal hand-drawn line for (cfg, size).
func (pt *Painter) Line(cfg Config, size Size) (*Path, error) {
	return pt.shape(cfg, size, horizontalLine)
}

// VLine returns the memoized vertical hand-drawn line for (cfg, size).
func (pt *Painter) VLine(cfg Config, size Size) (*Path, error) {
	return pt.shape(cfg, size, verticalLine)
}

// Border returns the memoized closed rectangle border for (cfg, size).
func (pt *Painter) Border(cfg Config, size Size) (*Path, error) {
	return pt.shape(cfg, size, rectangleBorder)
}

func (pt *Painter) shape(cfg Config, size Size, kind shapeKind) (*Path, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	key := pathKey{cfg: cfg, size: size, kind: kind}
	if p, ok := pt.paths.Get(key); ok {
		logger().Debug("rough: path cache hit", "shape", kind.String(), "seed", cfg.Seed)
		return p, nil
	}

	g, _ := New(cfg) // cfg validated above
	var p *Path
	switch kind {
	case horizontalLine:
		p = g.LineHorizontal(size)
	case verticalLine:
		p = g.LineVertical(size)
	case rectangleBorder:
		p = g.RectBorder(size)
	}
	pt.paths.Set(key, p)
	logger().Debug("rough: path cache miss", "shape", kind.String(), "seed", cfg.Seed,
		"segments", cfg.Segments, "points", p.Len())
	return p, nil
}

// Invalidate drops any cached shapes for (cfg, size).
func (pt *Painter) Invalidate(cfg Config, size Size) {
	for _, kind := range []shapeKind{horizontalLine, verticalLine, rectangleBorder} {
		pt.paths.Delete(pathKey{cfg: cfg, size: size, kind: kind})
	}
}

// Reset drops every cached path.
func (pt *Painter) Reset() {
	pt.paths.Clear()
}

// CacheStats returns hit/miss statistics of the underlying cache.
func (pt *Painter) CacheStats() cache.Stats {
	return pt.paths.Stats()
}
