package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededIsDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestSeedsDiverge(t *testing.T) {
	a := NewSeeded(1)
	b := NewSeeded(2)

	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
		}
	}
	assert.False(t, same, "different seeds should produce different streams")
}
