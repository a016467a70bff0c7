package fx

import "math"

// displacePlane resamples a scalar channel through per-pixel (dx, dy)
// displacement fields using bilinear interpolation. Sample coordinates
// are clamped to the image bounds, never wrapped, so the output always
// has the same shape as the input.
func displacePlane(src []float64, w, h int, dispX, dispY []float64) []float64 {
	dst := make([]float64, len(src))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			nx := clampF(float64(x)+dispX[i], 0, float64(w-1))
			ny := clampF(float64(y)+dispY[i], 0, float64(h-1))

			x0 := int(math.Floor(nx))
			y0 := int(math.Floor(ny))
			x1 := min(x0+1, w-1)
			y1 := min(y0+1, h-1)

			wx := nx - float64(x0)
			wy := ny - float64(y0)

			dst[i] = src[y0*w+x0]*(1-wx)*(1-wy) +
				src[y0*w+x1]*wx*(1-wy) +
				src[y1*w+x0]*(1-wx)*wy +
				src[y1*w+x1]*wx*wy
		}
	}
	return dst
}

// resizePlaneBilinear resamples a scalar plane to new dimensions with
// corner-aligned bilinear interpolation. Used to blow small noise fields
// up to image size when simulating grain.
func resizePlaneBilinear(src []float64, sw, sh, dw, dh int) []float64 {
	dst := make([]float64, dw*dh)
	sx := scaleFactor(sw, dw)
	sy := scaleFactor(sh, dh)
	for y := 0; y < dh; y++ {
		fy := float64(y) * sy
		y0 := int(fy)
		y1 := min(y0+1, sh-1)
		wy := fy - float64(y0)
		for x := 0; x < dw; x++ {
			fx := float64(x) * sx
			x0 := int(fx)
			x1 := min(x0+1, sw-1)
			wx := fx - float64(x0)

			dst[y*dw+x] = src[y0*sw+x0]*(1-wx)*(1-wy) +
				src[y0*sw+x1]*wx*(1-wy) +
				src[y1*sw+x0]*(1-wx)*wy +
				src[y1*sw+x1]*wx*wy
		}
	}
	return dst
}

// scaleFactor maps destination index space onto source index space with
// the corners aligned.
func scaleFactor(src, dst int) float64 {
	if dst <= 1 {
		return 0
	}
	return float64(src-1) / float64(dst-1)
}
