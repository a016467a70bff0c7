package fx

import (
	"fmt"
	"math"

	"github.com/xwave/fx/internal/kernel"
)

// SharpenMethod selects the sharpening algorithm.
type SharpenMethod uint8

const (
	// SharpenUnsharpMask adds the difference between the image and a
	// blurred copy, optionally gated by a magnitude threshold.
	SharpenUnsharpMask SharpenMethod = iota

	// SharpenHighPass adds a high-pass residual built from a wider blur.
	SharpenHighPass

	// SharpenEdgeEnhance blends toward an edge-enhanced copy, with an
	// extra unsharp pass above intensity 1.
	SharpenEdgeEnhance

	// SharpenCustom convolves with a selectable 3x3 kernel and adds the
	// scaled result.
	SharpenCustom
)

// ParseSharpenMethod maps a method name to its value.
func ParseSharpenMethod(name string) (SharpenMethod, error) {
	switch name {
	case "unsharp_mask":
		return SharpenUnsharpMask, nil
	case "high_pass":
		return SharpenHighPass, nil
	case "edge_enhance":
		return SharpenEdgeEnhance, nil
	case "custom":
		return SharpenCustom, nil
	}
	return 0, fmt.Errorf("%w: sharpen method %q", ErrInvalidParameter, name)
}

// SharpenKernel selects the 3x3 kernel for SharpenCustom.
type SharpenKernel uint8

const (
	// KernelLaplacian is the 4-connected Laplacian.
	KernelLaplacian SharpenKernel = iota

	// KernelSobel is the combined horizontal+vertical Sobel operator.
	KernelSobel

	// KernelPrewitt is the combined horizontal+vertical Prewitt
	// operator.
	KernelPrewitt

	// KernelSharpen is the classic center-5 sharpening kernel.
	KernelSharpen
)

// ParseSharpenKernel maps a kernel name to its value.
func ParseSharpenKernel(name string) (SharpenKernel, error) {
	switch name {
	case "laplacian":
		return KernelLaplacian, nil
	case "sobel":
		return KernelSobel, nil
	case "prewitt":
		return KernelPrewitt, nil
	case "sharpen":
		return KernelSharpen, nil
	}
	return 0, fmt.Errorf("%w: sharpen kernel %q", ErrInvalidParameter, name)
}

func (k SharpenKernel) kernel3() kernel.Kernel3 {
	switch k {
	case KernelSobel:
		return kernel.SobelCombined
	case KernelPrewitt:
		return kernel.PrewittCombined
	case KernelSharpen:
		return kernel.SharpenDefault
	default:
		return kernel.Laplacian4
	}
}

// SharpenConfig configures the sharpening filter.
type SharpenConfig struct {
	// Method selects the algorithm.
	Method SharpenMethod

	// Intensity is the sharpening amount, 0 to 5.
	Intensity float64

	// Radius drives the blur used by SharpenUnsharpMask, 0.1 to 10.
	Radius float64

	// Threshold gates the unsharp mask: pixels whose mask magnitude is
	// at or below it are left unchanged. 0 to 255.
	Threshold int

	// EdgeEnhancement adds a final Laplacian pass scaled by this value,
	// 0 to 2, on top of any method's result.
	EdgeEnhancement float64

	// HighPassRadius drives the blur used by SharpenHighPass, 1 to 10.
	HighPassRadius float64

	// Kernel selects the 3x3 kernel for SharpenCustom.
	Kernel SharpenKernel
}

// DefaultSharpenConfig returns an unsharp mask at intensity 1.
func DefaultSharpenConfig() SharpenConfig {
	return SharpenConfig{
		Method:         SharpenUnsharpMask,
		Intensity:      1,
		Radius:         1,
		HighPassRadius: 3,
	}
}

// Validate clamps numeric fields to their documented ranges and rejects
// unknown enum values.
func (c *SharpenConfig) Validate() error {
	if c.Method > SharpenCustom {
		return fmt.Errorf("%w: sharpen method %d", ErrInvalidParameter, c.Method)
	}
	if c.Kernel > KernelSharpen {
		return fmt.Errorf("%w: sharpen kernel %d", ErrInvalidParameter, c.Kernel)
	}
	c.Intensity = clampF(c.Intensity, 0, 5)
	c.Radius = clampF(c.Radius, 0.1, 10)
	c.Threshold = clampI(c.Threshold, 0, 255)
	c.EdgeEnhancement = clampF(c.EdgeEnhancement, 0, 2)
	c.HighPassRadius = clampF(c.HighPassRadius, 1, 10)
	return nil
}

// Sharpen enhances image detail using the configured method. All
// intermediate math runs in the float byte domain; the result is clamped
// to [0, 255] once at the end.
func Sharpen(src *Raster, cfg SharpenConfig) (*Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w, h := src.width, src.height
	planes := [3][]float64{src.plane(0), src.plane(1), src.plane(2)}
	var result [3][]float64

	switch cfg.Method {
	case SharpenUnsharpMask:
		blurred := blurPlanes(planes, w, h, cfg.Radius/3)
		result = addMask(planes, blurred, w, h, cfg.Intensity, cfg.Threshold)

	case SharpenHighPass:
		blurred := blurPlanes(planes, w, h, cfg.HighPassRadius/3)
		result = addMask(planes, blurred, w, h, cfg.Intensity, 0)

	case SharpenEdgeEnhance:
		k := kernel.EdgeEnhance
		if cfg.Intensity > 1 {
			k = kernel.EdgeEnhanceMore
		}
		blendFactor := math.Min(1, cfg.Intensity)
		for c := 0; c < 3; c++ {
			enhanced := kernel.Convolve3(planes[c], w, h, k, kernel.BorderReflect)
			res := make([]float64, len(planes[c]))
			for i := range res {
				res[i] = planes[c][i]*(1-blendFactor) + enhanced[i]*blendFactor
			}
			result[c] = res
		}
		if cfg.Intensity > 1 {
			extra := cfg.Intensity - 1
			blurred := blurPlanes(result, w, h, 1.0/3)
			for c := 0; c < 3; c++ {
				for i := range result[c] {
					result[c][i] += (result[c][i] - blurred[c][i]) * extra
				}
			}
		}

	case SharpenCustom:
		k := cfg.Kernel.kernel3()
		for c := 0; c < 3; c++ {
			conv := kernel.Convolve3(planes[c], w, h, k, kernel.BorderReflect)
			res := make([]float64, len(planes[c]))
			for i := range res {
				res[i] = planes[c][i] + conv[i]*cfg.Intensity
			}
			result[c] = res
		}
	}

	if cfg.EdgeEnhancement > 0 {
		for c := 0; c < 3; c++ {
			edges := kernel.Convolve3(result[c], w, h, kernel.Laplacian4, kernel.BorderReflect)
			for i := range result[c] {
				result[c][i] += edges[i] * cfg.EdgeEnhancement
			}
		}
	}

	out, err := NewRaster(w, h)
	if err != nil {
		return nil, err
	}
	for c := 0; c < 3; c++ {
		out.setPlane(c, result[c])
	}
	return out, nil
}

// addMask implements orig + (orig - blurred) * intensity with an
// optional per-pixel magnitude threshold across the three channels.
func addMask(planes, blurred [3][]float64, w, h int, intensity float64, threshold int) [3][]float64 {
	n := w * h
	var out [3][]float64
	for c := 0; c < 3; c++ {
		out[c] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		m0 := planes[0][i] - blurred[0][i]
		m1 := planes[1][i] - blurred[1][i]
		m2 := planes[2][i] - blurred[2][i]
		if threshold > 0 {
			mag := math.Sqrt(m0*m0 + m1*m1 + m2*m2)
			if mag <= float64(threshold) {
				m0, m1, m2 = 0, 0, 0
			}
		}
		out[0][i] = planes[0][i] + m0*intensity
		out[1][i] = planes[1][i] + m1*intensity
		out[2][i] = planes[2][i] + m2*intensity
	}
	return out
}
