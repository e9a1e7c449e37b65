package core

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

// DefaultDensity is the fill probability used for soups when none is given.
const DefaultDensity = 0.5

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Noise produces clustered binary soups. Perlin noise decides which regions
// may hold life and the RNG thins those regions to the requested density.
type Noise struct {
	p     *perlin.Perlin
	rng   *RNG
	scale float64
}

// NewNoise creates a deterministic soup generator.
func NewNoise(seed int64) *Noise {
	return &Noise{
		p:     perlin.NewPerlin(2, 2, 3, seed),
		rng:   NewRNG(seed),
		scale: 8,
	}
}

// FillBinary fills a row-major w*h buffer with 0/1 values.
func (n *Noise) FillBinary(buf []uint8, w, h int, density float64) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if i >= len(buf) {
				return
			}
			buf[i] = 0
			v := n.p.Noise2D(float64(x)/n.scale, float64(y)/n.scale)
			if v > -0.1 && n.rng.Float64() < density {
				buf[i] = 1
			}
		}
	}
}
