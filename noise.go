package fx

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/xwave/fx/internal/kernel"
)

// NoiseType selects how the base noise field turns into per-channel
// noise.
type NoiseType uint8

const (
	// NoiseFilmGrain modulates red-channel noise by a mid-tone
	// luminance mask, with weaker independent green/blue grain.
	NoiseFilmGrain NoiseType = iota

	// NoiseDigital thresholds the field into sharp binary speckle.
	NoiseDigital

	// NoiseColored tints the field by a base color per channel.
	NoiseColored

	// NoiseSaltPepper sets random pixels to full white or full black.
	NoiseSaltPepper

	// NoiseGaussian draws independent normal samples per channel.
	NoiseGaussian
)

// ParseNoiseType maps a noise type name to its value.
func ParseNoiseType(name string) (NoiseType, error) {
	switch name {
	case "film_grain":
		return NoiseFilmGrain, nil
	case "digital":
		return NoiseDigital, nil
	case "colored":
		return NoiseColored, nil
	case "salt_pepper":
		return NoiseSaltPepper, nil
	case "gaussian":
		return NoiseGaussian, nil
	}
	return 0, fmt.Errorf("%w: noise type %q", ErrInvalidParameter, name)
}

// NoisePattern selects the base noise field generator.
type NoisePattern uint8

const (
	// NoiseRandom is uniform white noise.
	NoiseRandom NoisePattern = iota

	// NoisePerlin sums three octaves of sin*cos waves.
	NoisePerlin

	// NoiseCellular binarizes box-blurred white noise into clumps.
	NoiseCellular
)

// ParseNoisePattern maps a pattern name to its value.
func ParseNoisePattern(name string) (NoisePattern, error) {
	switch name {
	case "random":
		return NoiseRandom, nil
	case "perlin":
		return NoisePerlin, nil
	case "cellular":
		return NoiseCellular, nil
	}
	return 0, fmt.Errorf("%w: noise pattern %q", ErrInvalidParameter, name)
}

// NoiseBlend selects how noise combines with the image. These formulas
// are particular to the noise filter and operate on signed noise in the
// [-255, 255] byte domain.
type NoiseBlend uint8

const (
	NoiseBlendOverlay NoiseBlend = iota
	NoiseBlendAdd
	NoiseBlendMultiply
	NoiseBlendScreen
)

// ParseNoiseBlend maps a blend name to its value.
func ParseNoiseBlend(name string) (NoiseBlend, error) {
	switch name {
	case "overlay":
		return NoiseBlendOverlay, nil
	case "add":
		return NoiseBlendAdd, nil
	case "multiply":
		return NoiseBlendMultiply, nil
	case "screen":
		return NoiseBlendScreen, nil
	}
	return 0, fmt.Errorf("%w: noise blend %q", ErrInvalidParameter, name)
}

// NoiseEffectConfig configures the noise filter.
type NoiseEffectConfig struct {
	// Type selects the noise model.
	Type NoiseType

	// Intensity is the overall noise strength, 0 to 1.
	Intensity float64

	// GrainSize scales the noise particles, 0.5 to 5. Values other than
	// 1 generate the field at reduced resolution and upsample.
	GrainSize float64

	// ColorVariation is the amount of independent per-channel
	// variation, 0 to 1.
	ColorVariation float64

	// NoiseColor tints NoiseColored.
	NoiseColor Color

	// Blend selects the combination formula.
	Blend NoiseBlend

	// Pattern selects the base field generator.
	Pattern NoisePattern

	// Seed makes the noise reproducible when nonzero.
	Seed int64
}

// DefaultNoiseEffectConfig returns film grain at intensity 0.3.
func DefaultNoiseEffectConfig() NoiseEffectConfig {
	return NoiseEffectConfig{
		Type:           NoiseFilmGrain,
		Intensity:      0.3,
		GrainSize:      1,
		ColorVariation: 0.2,
		NoiseColor:     Color{R: 255, G: 255, B: 255},
		Blend:          NoiseBlendOverlay,
		Pattern:        NoiseRandom,
	}
}

// Validate clamps numeric fields to their documented ranges and rejects
// unknown enum values.
func (c *NoiseEffectConfig) Validate() error {
	if c.Type > NoiseGaussian {
		return fmt.Errorf("%w: noise type %d", ErrInvalidParameter, c.Type)
	}
	if c.Pattern > NoiseCellular {
		return fmt.Errorf("%w: noise pattern %d", ErrInvalidParameter, c.Pattern)
	}
	if c.Blend > NoiseBlendScreen {
		return fmt.Errorf("%w: noise blend %d", ErrInvalidParameter, c.Blend)
	}
	c.Intensity = clamp01(c.Intensity)
	c.GrainSize = clampF(c.GrainSize, 0.5, 5)
	c.ColorVariation = clamp01(c.ColorVariation)
	return nil
}

// NoiseEffect generates a noise field and blends it with the image.
// With a nonzero seed two calls produce byte-identical output.
func NoiseEffect(src *Raster, cfg NoiseEffectConfig) (*Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w, h := src.width, src.height
	n := w * h
	rng := newRand(cfg.Seed)

	base := baseNoiseField(rng, w, h, cfg.Pattern, cfg.GrainSize)

	// Noise planes are signed offsets in the [-255, 255] byte domain.
	var noise [3][]float64
	for c := range noise {
		noise[c] = make([]float64, n)
	}

	switch cfg.Type {
	case NoiseFilmGrain:
		red := src.plane(0)
		green := src.plane(1)
		blue := src.plane(2)
		gPlane := uniformPlane(rng, n)
		bPlane := uniformPlane(rng, n)
		for i := 0; i < n; i++ {
			l := luma(red[i], green[i], blue[i]) / 255
			mask := 4 * l * (1 - l) // peaks in the mid-tones
			noise[0][i] = (base[i] - 0.5) * cfg.Intensity * mask * 255
			noise[1][i] = (gPlane[i] - 0.5) * cfg.Intensity * mask * cfg.ColorVariation * 255
			noise[2][i] = (bPlane[i] - 0.5) * cfg.Intensity * mask * cfg.ColorVariation * 255
		}

	case NoiseDigital:
		for i := 0; i < n; i++ {
			var v float64
			if base[i] > 1-cfg.Intensity {
				v = 255
			}
			noise[0][i] = v
			noise[1][i] = v
			noise[2][i] = v
		}
		if cfg.ColorVariation > 0 {
			for c := 0; c < 3; c++ {
				for i := 0; i < n; i++ {
					noise[c][i] += (rng.Float64() - 0.5) * cfg.ColorVariation * 255
				}
			}
		}

	case NoiseColored:
		tint := [3]float64{
			float64(cfg.NoiseColor.R) / 255,
			float64(cfg.NoiseColor.G) / 255,
			float64(cfg.NoiseColor.B) / 255,
		}
		for c := 0; c < 3; c++ {
			for i := 0; i < n; i++ {
				noise[c][i] = (base[i] - 0.5) * cfg.Intensity * tint[c] * 255
			}
		}
		if cfg.ColorVariation > 0 {
			for c := 0; c < 3; c++ {
				for i := 0; i < n; i++ {
					noise[c][i] += (rng.Float64() - 0.5) * cfg.ColorVariation * 255
				}
			}
		}

	case NoiseSaltPepper:
		for i := 0; i < n; i++ {
			sp := rng.Float64()
			var v float64
			if sp > 1-cfg.Intensity/2 {
				v = 255 // salt
			} else if sp < cfg.Intensity/2 {
				v = -255 // pepper
			}
			noise[0][i] = v
			noise[1][i] = v
			noise[2][i] = v
		}

	case NoiseGaussian:
		sigma := [3]float64{
			cfg.Intensity * 255,
			cfg.Intensity * 255 * cfg.ColorVariation,
			cfg.Intensity * 255 * cfg.ColorVariation,
		}
		for c := 0; c < 3; c++ {
			for i := 0; i < n; i++ {
				noise[c][i] = rng.NormFloat64() * sigma[c]
			}
		}
	}

	out := src.Clone()
	for c := 0; c < 3; c++ {
		for i := 0; i < n; i++ {
			img := float64(src.data[i*3+c])
			var v float64
			switch cfg.Blend {
			case NoiseBlendAdd:
				v = img + noise[c][i]
			case NoiseBlendMultiply:
				v = img * (noise[c][i] + 255) / 510
			case NoiseBlendScreen:
				v = (1 - (1-img/255)*(1-(noise[c][i]+255)/510)) * 255
			default: // overlay
				in := img / 255
				nn := noise[c][i] / 255
				if in < 0.5 {
					v = 2 * in * (nn + 0.5) * 255
				} else {
					v = (1 - 2*(1-in)*(0.5-nn)) * 255
				}
			}
			out.data[i*3+c] = uint8(clamp255(v))
		}
	}
	return out, nil
}

// baseNoiseField generates the base [0, 1] noise field at grain-size
// adjusted resolution.
func baseNoiseField(rng *rand.Rand, w, h int, pattern NoisePattern, grainSize float64) []float64 {
	base := noisePattern(rng, w, h, pattern, grainSize)

	if grainSize == 1 {
		return base
	}

	// Coarser grain: build the field small and blow it up.
	scale := 1 / grainSize
	sw := max(1, int(float64(w)*scale))
	sh := max(1, int(float64(h)*scale))
	var small []float64
	if pattern == NoiseRandom {
		small = uniformPlane(rng, sw*sh)
	} else {
		small = make([]float64, sw*sh)
		for y := 0; y < sh; y++ {
			copy(small[y*sw:(y+1)*sw], base[y*w:y*w+sw])
		}
	}
	return resizePlaneBilinear(small, sw, sh, w, h)
}

// noisePattern generates the full-resolution base field.
func noisePattern(rng *rand.Rand, w, h int, pattern NoisePattern, grainSize float64) []float64 {
	n := w * h
	switch pattern {
	case NoisePerlin:
		base := make([]float64, n)
		for octave := 0; octave < 3; octave++ {
			scale := 0.1 * float64(int(1)<<octave) * grainSize
			amp := 1 / float64(int(1)<<octave)
			for y := 0; y < h; y++ {
				cy := math.Cos(float64(y) * scale)
				for x := 0; x < w; x++ {
					base[y*w+x] += math.Sin(float64(x)*scale) * cy * amp
				}
			}
		}
		for i := range base {
			base[i] = (base[i] + 1) / 2
		}
		return base
	case NoiseCellular:
		base := uniformPlane(rng, n)
		for iter := 0; iter < 2; iter++ {
			base = kernel.Convolve3(base, w, h, kernel.Box3, kernel.BorderWrap)
			for i := range base {
				if base[i] > 0.5 {
					base[i] = 1
				} else {
					base[i] = 0
				}
			}
		}
		return base
	default:
		return uniformPlane(rng, n)
	}
}

// uniformPlane draws n uniform samples in [0, 1).
func uniformPlane(rng *rand.Rand, n int) []float64 {
	p := make([]float64, n)
	for i := range p {
		p[i] = rng.Float64()
	}
	return p
}
