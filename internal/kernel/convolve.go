package kernel

// BorderMode selects how out-of-bounds samples are produced during
// convolution.
type BorderMode uint8

const (
	// BorderReflect mirrors the image about its edge, duplicating the
	// edge sample (a b c -> a | a b c | c).
	BorderReflect BorderMode = iota

	// BorderWrap tiles the image periodically.
	BorderWrap
)

// resolve maps coordinate x into [0, n-1] under the border mode.
func (m BorderMode) resolve(x, n int) int {
	switch m {
	case BorderWrap:
		x %= n
		if x < 0 {
			x += n
		}
		return x
	default: // reflect
		for x < 0 || x >= n {
			if x < 0 {
				x = -x - 1
			}
			if x >= n {
				x = 2*n - x - 1
			}
		}
		return x
	}
}

// Convolve3 convolves a scalar plane with a 3x3 kernel and returns a new
// plane. The kernel's Scale divides the accumulated sum.
func Convolve3(src []float64, w, h int, k Kernel3, mode BorderMode) []float64 {
	scale := k.Scale
	if scale == 0 {
		scale = 1
	}
	dst := make([]float64, len(src))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			ki := 0
			for dy := -1; dy <= 1; dy++ {
				sy := mode.resolve(y+dy, h)
				row := sy * w
				for dx := -1; dx <= 1; dx++ {
					sx := mode.resolve(x+dx, w)
					sum += src[row+sx] * k.W[ki]
					ki++
				}
			}
			dst[y*w+x] = sum / scale
		}
	}
	return dst
}

// ConvolveSeparable applies a 1-D kernel horizontally then vertically
// with edge-clamped sampling, returning a new plane. This is the
// separable Gaussian path: O(w*h*len(k)) per pass.
func ConvolveSeparable(src []float64, w, h int, k []float64) []float64 {
	half := len(k) / 2

	tmp := make([]float64, len(src))
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			var sum float64
			for i, kv := range k {
				sx := clampInt(x+i-half, 0, w-1)
				sum += src[row+sx] * kv
			}
			tmp[row+x] = sum
		}
	}

	dst := make([]float64, len(src))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for i, kv := range k {
				sy := clampInt(y+i-half, 0, h-1)
				sum += tmp[sy*w+x] * kv
			}
			dst[y*w+x] = sum
		}
	}
	return dst
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
