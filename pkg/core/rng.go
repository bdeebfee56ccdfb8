package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed. A zero seed
// selects a time-based seed.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value with probability 0.5.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// FillBool sets every entry of buf to an independent coin flip.
func (r *RNG) FillBool(buf []bool) {
	for i := range buf {
		buf[i] = r.Bool()
	}
}
