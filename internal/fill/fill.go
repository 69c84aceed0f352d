// Package fill seeds a board with deterministic starting populations.
// The same seed always reproduces the same board.
package fill

import (
	"math/rand/v2"
	"sort"

	"github.com/aquilax/go-perlin"

	"lifepad/pkg/life"
)

// Perlin parameters. Scale is the board distance, in cells, covered by one
// unit of noise space; larger values make larger blobs.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	noiseScale   = 10.0
)

// Soup replaces the board with a uniform random soup where each cell is
// alive with probability density.
func Soup(s *life.Simulation, seed int64, density float64) {
	s.Clear()
	if density <= 0 {
		return
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	w, h := s.Dimensions()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < density {
				s.SetCell(x, y, true)
			}
		}
	}
}

// Noise replaces the board with clumpy islands sampled from Perlin noise.
// The threshold is chosen from the noise values themselves so that the
// density fraction of the board comes up alive, in connected blobs rather
// than uniform static.
func Noise(s *life.Simulation, seed int64, density float64) {
	s.Clear()
	if density <= 0 {
		return
	}

	w, h := s.Dimensions()
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	values := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			values[y*w+x] = p.Noise2D(float64(x)/noiseScale, float64(y)/noiseScale)
		}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	cut := int(float64(len(sorted)) * (1 - density))
	if cut >= len(sorted) {
		cut = len(sorted) - 1
	}
	if cut < 0 {
		cut = 0
	}
	threshold := sorted[cut]

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if values[y*w+x] >= threshold {
				s.SetCell(x, y, true)
			}
		}
	}
}
