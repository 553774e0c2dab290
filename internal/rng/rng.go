package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// New returns a Generator seeded with seed. The same seed always produces
// the same sequence. The returned Generator is not safe for concurrent use.
func New(seed int64) Generator {
	return rand.New(rand.NewSource(seed)) // nolint:gosec
}
