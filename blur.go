package fx

import "github.com/xwave/fx/internal/kernel"

// GaussianBlurConfig configures the separable Gaussian blur.
type GaussianBlurConfig struct {
	// Radius is the blur radius in pixels, 0.1 to 50.
	Radius float64

	// Sigma is the Gaussian standard deviation. Zero or negative means
	// Radius/3, the common approximation.
	Sigma float64
}

// DefaultGaussianBlurConfig returns a 5 pixel radius with derived sigma.
func DefaultGaussianBlurConfig() GaussianBlurConfig {
	return GaussianBlurConfig{Radius: 5}
}

// Validate applies the minimum radius/sigma floor of 0.1 to avoid
// degenerate kernels.
func (c *GaussianBlurConfig) Validate() error {
	c.Radius = clampF(c.Radius, 0.1, 50)
	if c.Sigma <= 0 {
		c.Sigma = c.Radius / 3
	}
	if c.Sigma < 0.1 {
		c.Sigma = 0.1
	}
	return nil
}

// GaussianBlur convolves each channel with a separable Gaussian kernel.
func GaussianBlur(src *Raster, cfg GaussianBlurConfig) (*Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out, err := NewRaster(src.width, src.height)
	if err != nil {
		return nil, err
	}
	k := kernel.Gaussian1D(cfg.Sigma)
	for c := 0; c < 3; c++ {
		p := kernel.ConvolveSeparable(src.plane(c), src.width, src.height, k)
		out.setPlane(c, p)
	}
	return out, nil
}

// blurPlanes is the shared helper for filters that need a blurred copy
// of all three channels (unsharp mask, high pass).
func blurPlanes(planes [3][]float64, w, h int, sigma float64) [3][]float64 {
	k := kernel.Gaussian1D(sigma)
	var out [3][]float64
	for c := 0; c < 3; c++ {
		out[c] = kernel.ConvolveSeparable(planes[c], w, h, k)
	}
	return out
}
