package fx

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// FilterType selects what the color filter overlays onto the image.
type FilterType uint8

const (
	// FilterSolid overlays a constant color.
	FilterSolid FilterType = iota

	// FilterGradient overlays a two-color linear gradient at an angle.
	FilterGradient

	// FilterCustom overlays a caller-supplied raster, resized to match.
	FilterCustom
)

// ParseFilterType maps a filter type name to its value.
func ParseFilterType(name string) (FilterType, error) {
	switch name {
	case "solid":
		return FilterSolid, nil
	case "gradient":
		return FilterGradient, nil
	case "custom":
		return FilterCustom, nil
	}
	return 0, fmt.Errorf("%w: filter type %q", ErrInvalidParameter, name)
}

// ColorFilterConfig configures the solid/gradient overlay filter.
type ColorFilterConfig struct {
	// Type selects the overlay source.
	Type FilterType

	// Color is the primary filter color (gradient start for
	// FilterGradient).
	Color Color

	// Mode is the blend mode used to combine the overlay.
	Mode BlendMode

	// Opacity is the filter opacity in [0, 1].
	Opacity float64

	// GradientColor2 is the gradient end color.
	GradientColor2 Color

	// GradientAngle rotates the gradient, in degrees 0 to 360.
	GradientAngle float64

	// Overlay is the custom overlay raster for FilterCustom. It is
	// resized to the input dimensions and never mutated.
	Overlay *Raster
}

// DefaultColorFilterConfig returns a red overlay at half opacity.
func DefaultColorFilterConfig() ColorFilterConfig {
	return ColorFilterConfig{
		Type:           FilterSolid,
		Color:          Color{R: 255},
		Mode:           BlendOverlay,
		Opacity:        0.5,
		GradientColor2: Color{B: 255},
	}
}

// Validate clamps numeric fields and checks enum and overlay presence.
func (c *ColorFilterConfig) Validate() error {
	if c.Type > FilterCustom {
		return fmt.Errorf("%w: filter type %d", ErrInvalidParameter, c.Type)
	}
	if _, ok := blendModeNames[c.Mode]; !ok {
		return fmt.Errorf("%w: blend mode %d", ErrInvalidParameter, c.Mode)
	}
	if c.Type == FilterCustom && c.Overlay == nil {
		return ErrMissingOverlay
	}
	c.Opacity = clamp01(c.Opacity)
	c.GradientAngle = clampF(c.GradientAngle, 0, 360)
	return nil
}

// ColorFilter builds a filter raster (solid color, linear gradient, or
// resized custom overlay) and blends it onto the input at the configured
// opacity.
func ColorFilter(src *Raster, cfg ColorFilterConfig) (*Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var overlay *Raster
	var err error
	switch cfg.Type {
	case FilterSolid:
		overlay, err = NewRaster(src.width, src.height)
		if err != nil {
			return nil, err
		}
		for i := 0; i < len(overlay.data); i += 3 {
			overlay.data[i] = cfg.Color.R
			overlay.data[i+1] = cfg.Color.G
			overlay.data[i+2] = cfg.Color.B
		}
	case FilterGradient:
		overlay, err = linearGradient(src.width, src.height, cfg.Color, cfg.GradientColor2, cfg.GradientAngle)
		if err != nil {
			return nil, err
		}
	case FilterCustom:
		overlay = resizeRaster(cfg.Overlay, src.width, src.height)
	}

	return Blend(src, overlay, cfg.Mode, cfg.Opacity)
}

// linearGradient builds a start-to-end gradient by projecting each
// pixel's centered coordinate onto the angle's unit vector. The start
// color dominates where the projection is largest.
func linearGradient(w, h int, start, end Color, angleDeg float64) (*Raster, error) {
	out, err := NewRaster(w, h)
	if err != nil {
		return nil, err
	}

	angle := angleDeg * math.Pi / 180
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	halfW := float64(w) / 2
	halfH := float64(h) / 2

	sr := float64(start.R)
	sg := float64(start.G)
	sb := float64(start.B)
	er := float64(end.R)
	eg := float64(end.G)
	eb := float64(end.B)

	i := 0
	for y := 0; y < h; y++ {
		yn := (float64(y) - halfH) / halfH
		for x := 0; x < w; x++ {
			xn := (float64(x) - halfW) / halfW
			v := clamp01((xn*cos - yn*sin + 1) / 2)

			out.data[i] = uint8(v*sr + (1-v)*er + 0.5)
			out.data[i+1] = uint8(v*sg + (1-v)*eg + 0.5)
			out.data[i+2] = uint8(v*sb + (1-v)*eb + 0.5)
			i += 3
		}
	}
	return out, nil
}

// resizeRaster scales a raster to new dimensions with Catmull-Rom
// resampling.
func resizeRaster(src *Raster, w, h int) *Raster {
	if src.width == w && src.height == h {
		return src.Clone()
	}
	img := src.ToImage()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	out, _ := FromImage(dst)
	return out
}
