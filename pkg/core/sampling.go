package core

import (
	"math/rand"
)

// Vec2 is a pair of sample coordinates, each in [0, 1)
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// StratifiedSample maps sample into sub-cell (sx, sy) of a grid×grid lattice over the unit square
func StratifiedSample(sx, sy, grid int, sample Vec2) Vec2 {
	cell := 1.0 / float64(grid)
	return Vec2{
		X: (float64(sx) + sample.X) * cell,
		Y: (float64(sy) + sample.Y) * cell,
	}
}
