// Package noise provides a small deterministic Perlin noise sampler. It is
// a standalone collaborator of the walk engine: the walk package does not
// depend on it, and nothing here feeds back into path generation.
package noise

import "github.com/aquilax/go-perlin"

// Standard Perlin parameters.
const (
	alpha = 2.0
	beta  = 2.0
	n     = 3
)

// defaultFrequency is the coordinate scale applied before sampling.
const defaultFrequency = 0.01

// Sampler draws smooth pseudo-random values in roughly [-1, 1] from a
// seeded Perlin field. Identical seeds produce identical fields.
type Sampler struct {
	field *perlin.Perlin
	freq  float64
}

// NewSampler creates a sampler over a field seeded with the given value.
func NewSampler(seed int64) *Sampler {
	return &Sampler{
		field: perlin.NewPerlin(alpha, beta, n, seed),
		freq:  defaultFrequency,
	}
}

// SetFrequency sets the coordinate scale. Higher frequencies produce faster
// spatial variation.
func (s *Sampler) SetFrequency(freq float64) {
	s.freq = freq
}

// At samples the field at the given 2D coordinate.
func (s *Sampler) At(x, y float64) float64 {
	return s.field.Noise2D(x*s.freq, y*s.freq)
}

// At1D samples the field along a single axis, useful for time-indexed
// drift signals.
func (s *Sampler) At1D(t float64) float64 {
	return s.field.Noise1D(t * s.freq)
}
