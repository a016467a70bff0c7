// Package colorspace implements the color conversions shared by the fx
// filters: RGB/HSV and a fixed-matrix RGB/Lab round trip.
package colorspace

import "math"

// RGBToHSV converts an RGB triple in [0,1] to HSV.
// Hue is returned normalized to [0,1); saturation and value are in [0,1].
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	v = maxC
	d := maxC - minC

	if maxC > 0 {
		s = d / maxC
	}
	if d == 0 {
		return 0, s, v
	}

	switch maxC {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6
	if h < 0 {
		h += 1
	}
	return h, s, v
}

// HSVToRGB converts an HSV triple (hue normalized to [0,1)) to RGB in
// [0,1].
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	h = math.Mod(h, 1)
	if h < 0 {
		h += 1
	}

	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
