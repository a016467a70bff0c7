// Package kernel provides the 1-D and 3x3 convolution primitives used by
// the blur, sharpen, noise and aberration filters.
package kernel

import "math"

// Gaussian1D generates a normalized 1-D Gaussian kernel for the given
// sigma. The kernel half-width is ceil(3*sigma), covering 99.7% of the
// distribution.
//
// For sigma <= 0, returns a single-element identity kernel.
func Gaussian1D(sigma float64) []float64 {
	if sigma <= 0 {
		return []float64{1}
	}

	half := int(math.Ceil(sigma * 3))
	size := half*2 + 1
	k := make([]float64, size)

	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := 0; i < size; i++ {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		k[i] = v
		sum += v
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// Kernel3 is a 3x3 convolution kernel. The convolution result is divided
// by Scale (PIL-style); a Scale of 0 is treated as 1.
type Kernel3 struct {
	W     [9]float64
	Scale float64
}

// Predefined 3x3 kernels.
var (
	// Laplacian4 is the 4-connected Laplacian used for sharpen-style
	// edge extraction.
	Laplacian4 = Kernel3{W: [9]float64{
		0, -1, 0,
		-1, 4, -1,
		0, -1, 0,
	}}

	// Laplacian8 is the 8-connected Laplacian used by the chromatic
	// aberration edge-enhancement pass.
	Laplacian8 = Kernel3{W: [9]float64{
		-1, -1, -1,
		-1, 8, -1,
		-1, -1, -1,
	}}

	// SobelCombined is the sum of the horizontal and vertical Sobel
	// operators.
	SobelCombined = Kernel3{W: [9]float64{
		-2, -2, 0,
		-2, 0, 2,
		0, 2, 2,
	}}

	// PrewittCombined is the sum of the horizontal and vertical Prewitt
	// operators.
	PrewittCombined = Kernel3{W: [9]float64{
		-2, -1, 0,
		-1, 0, 1,
		0, 1, 2,
	}}

	// SharpenDefault is the classic center-5 sharpening kernel.
	SharpenDefault = Kernel3{W: [9]float64{
		0, -1, 0,
		-1, 5, -1,
		0, -1, 0,
	}}

	// EdgeEnhance matches PIL's EDGE_ENHANCE filter (scale 2).
	EdgeEnhance = Kernel3{W: [9]float64{
		-1, -1, -1,
		-1, 10, -1,
		-1, -1, -1,
	}, Scale: 2}

	// EdgeEnhanceMore matches PIL's EDGE_ENHANCE_MORE filter.
	EdgeEnhanceMore = Kernel3{W: [9]float64{
		-1, -1, -1,
		-1, 9, -1,
		-1, -1, -1,
	}}

	// Box3 is a uniform 3x3 averaging kernel.
	Box3 = Kernel3{W: [9]float64{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	}, Scale: 9}
)
