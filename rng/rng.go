// Package rng provides the random source used by every stochastic path in
// the simulation. Callers inject a Rand so tests can supply deterministic
// sequences; production code uses a PCG seeded from the clock.
package rng

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// Rand is the capability the engine and catalog need from a random source.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// New returns a Rand seeded from the current time.
func New() Rand {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a deterministic Rand for the given seed.
func NewSeeded(seed int64) Rand {
	// Non-cryptographic PRNG is intentional for simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
