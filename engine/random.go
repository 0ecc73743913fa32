package engine

import (
	"math/rand/v2"
	"time"
)

//go:generate go tool mockgen -destination=./mocks/rand_mock.go -package=mocks . Rand

// Rand is the single random source of a match
// Every gameplay roll goes through it so tests can script outcomes
type Rand interface {
	// Float64 returns a value in [0,1)
	Float64() float64
}

// NewRand returns a PCG-backed source; seed 0 derives one from the wall clock
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandRange returns a value in [lo, hi)
func RandRange(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// RandSign returns +1 or -1 with equal odds
func RandSign(r Rand) float64 {
	if r.Float64() > 0.5 {
		return 1
	}
	return -1
}

// RandJitter returns a value in [-width/2, width/2)
func RandJitter(r Rand, width float64) float64 {
	return (r.Float64() - 0.5) * width
}
