package fx

import (
	"fmt"
	"math"

	"github.com/xwave/fx/internal/colorspace"
)

// PosterizeSpace selects the colorspace in which quantization happens.
type PosterizeSpace uint8

const (
	SpaceRGB PosterizeSpace = iota
	SpaceHSV
	SpaceLab
)

// ParsePosterizeSpace maps a colorspace name to its value.
func ParsePosterizeSpace(name string) (PosterizeSpace, error) {
	switch name {
	case "rgb":
		return SpaceRGB, nil
	case "hsv":
		return SpaceHSV, nil
	case "lab":
		return SpaceLab, nil
	}
	return 0, fmt.Errorf("%w: posterize colorspace %q", ErrInvalidParameter, name)
}

// DitherMode selects the quantization dithering method.
type DitherMode uint8

const (
	DitherNone DitherMode = iota
	DitherFloydSteinberg
	DitherAtkinson
	DitherOrdered
)

// ParseDitherMode maps a dither name to its value.
func ParseDitherMode(name string) (DitherMode, error) {
	switch name {
	case "none":
		return DitherNone, nil
	case "floyd-steinberg":
		return DitherFloydSteinberg, nil
	case "atkinson":
		return DitherAtkinson, nil
	case "ordered":
		return DitherOrdered, nil
	}
	return 0, fmt.Errorf("%w: dither mode %q", ErrInvalidParameter, name)
}

// bayer4 is the 4x4 ordered-dither threshold matrix, tiled across the
// image and applied as a signed offset before quantization.
var bayer4 = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// PosterizeConfig configures the quantization filter.
type PosterizeConfig struct {
	// Levels is the number of discrete steps per channel, 2 to 256.
	Levels int

	// Dither selects the error-diffusion or ordered method.
	Dither DitherMode

	// Space is the colorspace quantization operates in.
	Space PosterizeSpace
}

// DefaultPosterizeConfig returns 8 levels in RGB without dithering.
func DefaultPosterizeConfig() PosterizeConfig {
	return PosterizeConfig{Levels: 8}
}

// Validate clamps levels and rejects unknown enum values.
func (c *PosterizeConfig) Validate() error {
	if c.Dither > DitherOrdered {
		return fmt.Errorf("%w: dither mode %d", ErrInvalidParameter, c.Dither)
	}
	if c.Space > SpaceLab {
		return fmt.Errorf("%w: posterize colorspace %d", ErrInvalidParameter, c.Space)
	}
	c.Levels = clampI(c.Levels, 2, 256)
	return nil
}

// Posterize quantizes each channel to the configured number of levels,
// optionally in HSV or Lab space and with dithering. Dithering operates
// on a private working buffer in the chosen colorspace; the caller's
// raster is never touched.
func Posterize(src *Raster, cfg PosterizeConfig) (*Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w, h := src.width, src.height
	n := w * h

	// Working buffer in the chosen colorspace, every channel scaled to
	// the [0, 255] domain so one quantization step size applies.
	var work [3][]float64
	for c := range work {
		work[c] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		r := float64(src.data[i*3]) / 255
		g := float64(src.data[i*3+1]) / 255
		b := float64(src.data[i*3+2]) / 255
		var c0, c1, c2 float64
		switch cfg.Space {
		case SpaceHSV:
			hh, s, v := colorspace.RGBToHSV(r, g, b)
			c0, c1, c2 = hh*255, s*255, v*255
		case SpaceLab:
			l, a, bb := colorspace.RGBToLab(r, g, b)
			c0 = l * 255 / 100
			c1 = a + 128
			c2 = bb + 128
		default:
			c0, c1, c2 = r*255, g*255, b*255
		}
		work[0][i] = c0
		work[1][i] = c1
		work[2][i] = c2
	}

	step := 255 / float64(cfg.Levels-1)
	quantize := func(v float64) float64 {
		return clamp255(math.Round(v/step) * step)
	}

	switch cfg.Dither {
	case DitherFloydSteinberg:
		for c := 0; c < 3; c++ {
			ditherFloydSteinberg(work[c], w, h, quantize)
		}
	case DitherAtkinson:
		for c := 0; c < 3; c++ {
			ditherAtkinson(work[c], w, h, quantize)
		}
	case DitherOrdered:
		for c := 0; c < 3; c++ {
			p := work[c]
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					offset := (bayer4[y%4][x%4]/16 - 0.5) * step
					p[y*w+x] = quantize(p[y*w+x] + offset)
				}
			}
		}
	default:
		for c := 0; c < 3; c++ {
			p := work[c]
			for i := range p {
				p[i] = quantize(p[i])
			}
		}
	}

	out, err := NewRaster(w, h)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		var r, g, b float64
		switch cfg.Space {
		case SpaceHSV:
			r, g, b = colorspace.HSVToRGB(work[0][i]/255, work[1][i]/255, work[2][i]/255)
		case SpaceLab:
			r, g, b = colorspace.LabToRGB(work[0][i]*100/255, work[1][i]-128, work[2][i]-128)
		default:
			r, g, b = work[0][i]/255, work[1][i]/255, work[2][i]/255
		}
		out.data[i*3] = uint8(clamp01(r)*255 + 0.5)
		out.data[i*3+1] = uint8(clamp01(g)*255 + 0.5)
		out.data[i*3+2] = uint8(clamp01(b)*255 + 0.5)
	}
	return out, nil
}

// ditherFloydSteinberg quantizes the plane in place, pushing each
// pixel's error onto four forward neighbors (7/16, 3/16, 5/16, 1/16).
func ditherFloydSteinberg(p []float64, w, h int, quantize func(float64) float64) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			old := p[i]
			q := quantize(old)
			p[i] = q
			err := old - q

			if x+1 < w {
				p[i+1] += err * 7 / 16
			}
			if y+1 < h {
				if x > 0 {
					p[i+w-1] += err * 3 / 16
				}
				p[i+w] += err * 5 / 16
				if x+1 < w {
					p[i+w+1] += err * 1 / 16
				}
			}
		}
	}
}

// ditherAtkinson quantizes the plane in place, spreading 1/8 of the
// error to each of six neighbors (and deliberately losing 2/8).
func ditherAtkinson(p []float64, w, h int, quantize func(float64) float64) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			old := p[i]
			q := quantize(old)
			p[i] = q
			err := old - q
			e := err / 8

			if x+1 < w {
				p[i+1] += e
			}
			if x+2 < w {
				p[i+2] += e
			}
			if y+1 < h {
				if x > 0 {
					p[i+w-1] += e
				}
				p[i+w] += e
				if x+1 < w {
					p[i+w+1] += e
				}
			}
			if y+2 < h {
				p[i+2*w] += e
			}
		}
	}
}
