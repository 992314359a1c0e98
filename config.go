package rough

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a Config violates the generator
// contract. Use errors.Is to test for it.
var ErrInvalidConfig = errors.New("rough: invalid configuration")

// Config fully determines one path generation call.
//
// Seed owns all randomness: the same Config always produces the same
// output. Segments is the number of straight sub-intervals a jittered
// edge is divided into (Segments+1 offset samples per edge). Irregularity
// is the maximum magnitude of per-point perpendicular displacement before
// smoothing, in the caller's length units.
type Config struct {
	Seed         int64
	Segments     int
	Irregularity float64
}

// Validate checks the generator contract. Segments must be at least 1 and
// Irregularity must not be negative. Invalid values are rejected, never
// clamped.
func (c Config) Validate() error {
	if c.Segments < 1 {
		return fmt.Errorf("%w: segments must be >= 1, got %d", ErrInvalidConfig, c.Segments)
	}
	if c.Irregularity < 0 {
		return fmt.Errorf("%w: irregularity must be >= 0, got %g", ErrInvalidConfig, c.Irregularity)
	}
	return nil
}
