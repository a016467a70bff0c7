package fx

import (
	"fmt"
	"math"

	"github.com/xwave/fx/internal/colorspace"
)

// CurvedHueShiftConfig configures the non-linear hue warp.
type CurvedHueShiftConfig struct {
	// CurveValue shapes the exponential curve, 1 to 360. 180 is a flat
	// (uniform) shift.
	CurveValue float64

	// ShiftAmount is the base hue shift in degrees, -180 to 180.
	ShiftAmount float64
}

// DefaultCurvedHueShiftConfig returns a 30 degree shift on a flat curve.
func DefaultCurvedHueShiftConfig() CurvedHueShiftConfig {
	return CurvedHueShiftConfig{CurveValue: 180, ShiftAmount: 30}
}

// Validate rejects an out-of-range curve value and clamps the shift.
func (c *CurvedHueShiftConfig) Validate() error {
	if c.CurveValue < 1 || c.CurveValue > 360 {
		return fmt.Errorf("%w: curve value %v not in [1, 360]", ErrInvalidParameter, c.CurveValue)
	}
	c.ShiftAmount = clampF(c.ShiftAmount, -180, 180)
	return nil
}

// CurvedHueShift rotates each pixel's hue by an amount that depends
// exponentially on the pixel's own hue:
//
//	shift = ShiftAmount * exp(p * (h - 0.5)),  p = (CurveValue-180)/180
//
// where h is the normalized hue in [0, 1). Saturation and value are
// untouched, so the warp only redistributes hues.
func CurvedHueShift(src *Raster, cfg CurvedHueShiftConfig) (*Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := (cfg.CurveValue - 180) / 180
	out := src.Clone()
	d := out.data

	for i := 0; i < len(d); i += 3 {
		r := float64(d[i]) / 255
		g := float64(d[i+1]) / 255
		b := float64(d[i+2]) / 255

		h, s, v := colorspace.RGBToHSV(r, g, b)

		shiftDeg := cfg.ShiftAmount * math.Exp(p*(h-0.5))
		newHue := math.Mod(h*360+shiftDeg, 360)
		if newHue < 0 {
			newHue += 360
		}

		r, g, b = colorspace.HSVToRGB(newHue/360, s, v)
		d[i] = uint8(clamp01(r)*255 + 0.5)
		d[i+1] = uint8(clamp01(g)*255 + 0.5)
		d[i+2] = uint8(clamp01(b)*255 + 0.5)
	}
	return out, nil
}
