package rough

import "math/rand/v2"

// Generator produces seeded, smoothed perpendicular offset sequences and
// assembles them into hand-drawn path shapes.
//
// A Generator carries an advancing pseudo-random stream: successive calls
// to SmoothedOffsets continue where the previous call left off, so
// composite shapes like RectBorder consume a well-defined number of draws
// in a fixed order. Because of that stream a single Generator must not be
// shared between goroutines; construct one per path generation call.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New constructs a Generator, seeding its random stream fresh from
// cfg.Seed. It returns ErrInvalidConfig if cfg violates the generator
// contract.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, rng: newStream(cfg.Seed)}, nil
}

// Config returns the configuration the generator was constructed with.
func (g *Generator) Config() Config {
	return g.cfg
}

// SmoothedOffsets returns Segments+1 perpendicular displacement values
// for one jittered edge. Elements 0 and Segments are always exactly 0,
// pinning the stroke endpoints to the true edge.
//
// Interior elements start as one uniform draw each, mapped to
// (draw-0.5)*Irregularity, then pass through a single 3-point moving
// average over a copy of the raw values. Averaging against the raw
// pinned zeros tapers the jitter toward the endpoints; that taper is
// part of the contract, not an artifact.
//
// One uniform draw is consumed per interior index even when Irregularity
// is zero, so the stream advances identically for any magnitude.
func (g *Generator) SmoothedOffsets() []float64 {
	n := g.cfg.Segments + 1
	raw := make([]float64, n)
	for i := 1; i < n-1; i++ {
		raw[i] = (g.rng.Float64() - 0.5) * g.cfg.Irregularity
	}
	smoothed := make([]float64, n)
	for i := 1; i < n-1; i++ {
		smoothed[i] = (raw[i-1] + raw[i] + raw[i+1]) / 3
	}
	return smoothed
}
