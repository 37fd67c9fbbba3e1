package main

import "math/rand/v2"

// Rand is a deterministic random number generator. It is a plain value, so
// copying a Rand produces an independent generator with the same state.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed uint64) (r Rand) {
	r.pcg.Seed(seed, seed^0x9e3779b97f4a7c15)
	return
}

// RInt returns a random integer in [min, max].
func (r *Rand) RInt(min, max int64) int64 {
	if min > max {
		min, max = max, min
	}
	span := uint64(max-min) + 1
	return min + int64(r.pcg.Uint64()%span)
}
