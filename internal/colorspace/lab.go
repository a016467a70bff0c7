package colorspace

import "math"

// The Lab conversion intentionally skips the sRGB transfer function and
// applies the RGB/XYZ matrices directly to the [0,1] samples. The exact
// constants below are load-bearing: quantization in Lab space relies on
// this pair of functions inverting each other, not on colorimetric
// accuracy.

const (
	labWhiteX = 0.950456
	labWhiteY = 1.0
	labWhiteZ = 1.088754

	labEpsilon = 0.008856
	labKappa   = 7.787
)

// RGBToLab converts an RGB triple in [0,1] to Lab with L in [0,100] and
// a, b roughly in [-128, 127].
func RGBToLab(r, g, b float64) (l, a, bb float64) {
	x := 0.412453*r + 0.357580*g + 0.180423*b
	y := 0.212671*r + 0.715160*g + 0.072169*b
	z := 0.019334*r + 0.119193*g + 0.950227*b

	fx := labF(x / labWhiteX)
	fy := labF(y / labWhiteY)
	fz := labF(z / labWhiteZ)

	l = 116*fy - 16
	a = 500 * (fx - fy)
	bb = 200 * (fy - fz)
	return l, a, bb
}

// LabToRGB inverts RGBToLab. Output components are clamped to [0,1].
func LabToRGB(l, a, bb float64) (r, g, b float64) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - bb/200

	x := labWhiteX * labFInv(fx)
	y := labWhiteY * labFInv(fy)
	z := labWhiteZ * labFInv(fz)

	r = 3.240479*x - 1.537150*y - 0.498535*z
	g = -0.969256*x + 1.875992*y + 0.041556*z
	b = 0.055648*x - 0.204043*y + 1.057311*z
	return clamp01(r), clamp01(g), clamp01(b)
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa*t + 16.0/116.0
}

func labFInv(t float64) float64 {
	t3 := t * t * t
	if t3 > labEpsilon {
		return t3
	}
	return (t - 16.0/116.0) / labKappa
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
