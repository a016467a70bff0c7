package fx

import (
	"fmt"
	"math"
	"sort"
)

// PixelateAttribute selects how a block's fill color is chosen.
type PixelateAttribute uint8

const (
	// AttrColor fills each block with its most common exact color.
	AttrColor PixelateAttribute = iota

	// AttrBrightness picks the pixel whose channel mean is closest to
	// the block average.
	AttrBrightness

	// AttrHue picks the pixel whose hue in degrees is closest to the
	// block average.
	AttrHue

	// AttrSaturation picks the pixel whose saturation is closest to
	// the block average.
	AttrSaturation

	// AttrLuminance picks the pixel whose Rec. 601 luma is closest to
	// the block average.
	AttrLuminance
)

// ParsePixelateAttribute maps an attribute name to its value.
func ParsePixelateAttribute(name string) (PixelateAttribute, error) {
	switch name {
	case "color":
		return AttrColor, nil
	case "brightness":
		return AttrBrightness, nil
	case "hue":
		return AttrHue, nil
	case "saturation":
		return AttrSaturation, nil
	case "luminance":
		return AttrLuminance, nil
	}
	return 0, fmt.Errorf("%w: pixelate attribute %q", ErrInvalidParameter, name)
}

// PixelateConfig configures block pixelation.
type PixelateConfig struct {
	// PixelWidth and PixelHeight set the block size, 1 to 256 each.
	PixelWidth  int
	PixelHeight int

	// Attribute selects the fill color strategy.
	Attribute PixelateAttribute
}

// DefaultPixelateConfig returns 8x8 most-common-color blocks.
func DefaultPixelateConfig() PixelateConfig {
	return PixelateConfig{PixelWidth: 8, PixelHeight: 8, Attribute: AttrColor}
}

// Validate clamps block dimensions and rejects unknown attributes.
func (c *PixelateConfig) Validate() error {
	if c.Attribute > AttrLuminance {
		return fmt.Errorf("%w: pixelate attribute %d", ErrInvalidParameter, c.Attribute)
	}
	c.PixelWidth = clampI(c.PixelWidth, 1, 256)
	c.PixelHeight = clampI(c.PixelHeight, 1, 256)
	return nil
}

// Pixelate replaces each block with a single representative color drawn
// from the block's own pixels.
func Pixelate(src *Raster, cfg PixelateConfig) (*Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w, h := src.width, src.height
	out, err := NewRaster(w, h)
	if err != nil {
		return nil, err
	}

	for y0 := 0; y0 < h; y0 += cfg.PixelHeight {
		for x0 := 0; x0 < w; x0 += cfg.PixelWidth {
			y1 := min(y0+cfg.PixelHeight, h)
			x1 := min(x0+cfg.PixelWidth, w)

			var fill Color
			if cfg.Attribute == AttrColor {
				fill = dominantColor(src, x0, y0, x1, y1)
			} else {
				fill = nearestAverage(src, x0, y0, x1, y1, cfg.Attribute)
			}

			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					i := (y*w + x) * 3
					out.data[i] = fill.R
					out.data[i+1] = fill.G
					out.data[i+2] = fill.B
				}
			}
		}
	}
	return out, nil
}

// dominantColor returns the most frequent color in the block. Ties go
// to the smallest color in (R, G, B) order.
func dominantColor(src *Raster, x0, y0, x1, y1 int) Color {
	counts := make(map[Color]int)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := (y*src.width + x) * 3
			c := Color{src.data[i], src.data[i+1], src.data[i+2]}
			counts[c]++
		}
	}

	colors := make([]Color, 0, len(counts))
	for c := range counts {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool {
		a, b := colors[i], colors[j]
		if a.R != b.R {
			return a.R < b.R
		}
		if a.G != b.G {
			return a.G < b.G
		}
		return a.B < b.B
	})

	best := colors[0]
	bestCount := counts[best]
	for _, c := range colors[1:] {
		if counts[c] > bestCount {
			best = c
			bestCount = counts[c]
		}
	}
	return best
}

// nearestAverage returns the first block pixel, in row-major order,
// whose attribute value is closest to the block's average.
func nearestAverage(src *Raster, x0, y0, x1, y1 int, attr PixelateAttribute) Color {
	n := (y1 - y0) * (x1 - x0)
	values := make([]float64, 0, n)
	pixels := make([]Color, 0, n)

	sum := 0.0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := (y*src.width + x) * 3
			c := Color{src.data[i], src.data[i+1], src.data[i+2]}
			v := pixelAttribute(c, attr)
			values = append(values, v)
			pixels = append(pixels, c)
			sum += v
		}
	}
	avg := sum / float64(len(values))

	best := 0
	bestDiff := math.Abs(values[0] - avg)
	for i := 1; i < len(values); i++ {
		if d := math.Abs(values[i] - avg); d < bestDiff {
			best = i
			bestDiff = d
		}
	}
	return pixels[best]
}

// pixelAttribute computes one pixel's scalar attribute value.
func pixelAttribute(c Color, attr PixelateAttribute) float64 {
	switch attr {
	case AttrHue:
		r := float64(c.R) / 255
		g := float64(c.G) / 255
		b := float64(c.B) / 255
		maxV := math.Max(r, math.Max(g, b))
		minV := math.Min(r, math.Min(g, b))
		diff := maxV - minV
		var hue float64
		switch {
		case diff == 0:
			hue = 0
		case maxV == r:
			hue = math.Mod((g-b)/diff, 6)
			if hue < 0 {
				hue += 6
			}
		case maxV == g:
			hue = (b-r)/diff + 2
		default:
			hue = (r-g)/diff + 4
		}
		return hue * 60
	case AttrSaturation:
		r := float64(c.R) / 255
		g := float64(c.G) / 255
		b := float64(c.B) / 255
		maxV := math.Max(r, math.Max(g, b))
		if maxV == 0 {
			return 0
		}
		minV := math.Min(r, math.Min(g, b))
		return (maxV - minV) / maxV
	case AttrLuminance:
		return luma(float64(c.R), float64(c.G), float64(c.B))
	default: // brightness
		return (float64(c.R) + float64(c.G) + float64(c.B)) / 3
	}
}
