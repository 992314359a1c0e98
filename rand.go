package rough

import "math/rand/v2"

const goldenGamma = 0x9e3779b97f4a7c15

// newStream returns a rand.Rand seeded deterministically from a single
// int64 seed. PCG needs two 64-bit seed words; both are derived with a
// splitmix64-style finalizer so that nearby seeds map to unrelated
// streams. PCG output is versioned and identical on every platform,
// which the determinism contract depends on.
func newStream(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix64(u), mix64(u+goldenGamma)))
}

// mix64 is the splitmix64 finalizer.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
