package mapgen

import (
	"math"

	perlin "github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Height field parameters: a 6-octave fractal shaped by edge falloff,
// so landmasses sit island-like inside the grid.
const (
	heightOctaves   = 6
	heightFrequency = 0.02

	moistureOctaves   = 4
	moistureFrequency = 0.03

	lacunarity  = 2.0
	persistence = 0.5

	// Temperature perturbation: one noise octave scaled to +/- 0.2 on
	// top of the latitude gradient.
	tempNoiseFrequency = 0.05
	tempNoiseScale     = 0.2

	// Seed stream offsets keeping the three fields independent.
	tempSeedOffset     = 1000
	moistureSeedOffset = 2000
)

// Fields below a min-max spread of this size are considered uniform and
// left unscaled instead of dividing by (almost) zero.
const normalizeEpsilon = 1e-12

// noiseSeed truncates the config seed to 32 bits, the width the noise
// generators are seeded with, then applies a per-field stream offset.
func (g *Generator) noiseSeed(offset int64) int64 {
	return int64(uint32(g.config.Seed)) + offset
}

// HeightField generates the elevation grid: fractal noise attenuated by
// edge falloff, min-max normalized to [0, 1].
func (g *Generator) HeightField() [][]float64 {
	width, height := g.config.Size.Dimensions()
	noise := opensimplex.NewNormalized(g.noiseSeed(0))

	field := newField(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			h := fractalNoise(noise, float64(x), float64(y),
				heightOctaves, heightFrequency)

			// Radial falloff toward the border produces islands.
			ex := math.Abs(float64(x)/float64(width)-0.5) * 2
			ey := math.Abs(float64(y)/float64(height)-0.5) * 2
			falloff := 1 - math.Min(1, math.Sqrt(ex*ex+ey*ey))

			field[x][y] = h * falloff
		}
	}

	normalizeField(field)
	return field
}

// TemperatureField generates the temperature grid: a latitude gradient
// (1.0 at the equator row, 0.0 at the poles) perturbed by a single
// noise octave scaled to at most +/- tempNoiseScale, then clamped to
// [0, 1]. No post-hoc normalization is needed; the clamp already
// bounds the field.
func (g *Generator) TemperatureField() [][]float64 {
	width, height := g.config.Size.Dimensions()
	noise := perlin.NewPerlin(2, 2, 1, g.noiseSeed(tempSeedOffset))

	field := newField(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			latitude := math.Abs(float64(y)/float64(height)-0.5) * 2
			base := 1 - latitude

			perturb := noise.Noise2D(float64(x)*tempNoiseFrequency,
				float64(y)*tempNoiseFrequency) * tempNoiseScale

			field[x][y] = clamp01(base + perturb)
		}
	}

	return field
}

// MoistureField generates the moisture grid: 4-octave fractal noise,
// min-max normalized to [0, 1].
func (g *Generator) MoistureField() [][]float64 {
	width, height := g.config.Size.Dimensions()
	noise := opensimplex.NewNormalized(g.noiseSeed(moistureSeedOffset))

	field := newField(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			field[x][y] = fractalNoise(noise, float64(x), float64(y),
				moistureOctaves, moistureFrequency)
		}
	}

	normalizeField(field)
	return field
}

// fractalNoise layers octaves of noise, doubling frequency and halving
// amplitude each octave, and rescales the sum by the accumulated
// amplitude so the result stays in the source's output range.
func fractalNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxAmplitude := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	return total / maxAmplitude
}

// normalizeField rescales every cell to [0, 1] by the field's min-max
// range. A uniform field is left unscaled rather than divided by zero.
func normalizeField(field [][]float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)

	for _, col := range field {
		for _, v := range col {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}

	spread := maxVal - minVal
	if spread <= normalizeEpsilon {
		return
	}

	for _, col := range field {
		for y, v := range col {
			col[y] = (v - minVal) / spread
		}
	}
}

func newField(width, height int) [][]float64 {
	field := make([][]float64, width)
	for x := range field {
		field[x] = make([]float64, height)
	}
	return field
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
