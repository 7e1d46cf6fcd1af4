package app

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"trip_planner/internal/domain"
)

// NewRand returns a PCG-backed source. Seed 0 draws a seed from the
// runtime generator.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// clampCount caps a requested count at what is available and never
// goes below zero.
func clampCount(available, requested int) int {
	return max(0, min(available, requested))
}

// Sample picks up to duration distinct items uniformly at random. The
// result order is random and items is left untouched.
func Sample(r domain.Rand, items []string, duration int) []string {
	// the count is clamped, so sampleN cannot fail here
	out, _ := sampleN(r, items, clampCount(len(items), duration))
	return out
}

// sampleN is a partial Fisher-Yates shuffle over a copy of items.
func sampleN(r domain.Rand, items []string, n int) ([]string, error) {
	if n < 0 || n > len(items) {
		return nil, fmt.Errorf("%w: sample of %d from %d items", domain.ErrSampling, n, len(items))
	}
	pool := slices.Clone(items)
	for i := 0; i < n; i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n:n], nil
}
