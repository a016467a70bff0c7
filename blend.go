package fx

import (
	"fmt"
	"math"
)

// BlendMode selects the elementwise formula used to combine two
// normalized rasters.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendSoftLight
	BlendHardLight
	BlendColorDodge
	BlendColorBurn
	BlendLinearDodge
	BlendLinearBurn
	BlendVividLight
	BlendDifference
)

// blendEpsilon guards the dodge/burn divisions. The exact value only
// needs to keep the quotient finite.
const blendEpsilon = 1e-6

var blendModeNames = map[BlendMode]string{
	BlendNormal:      "normal",
	BlendMultiply:    "multiply",
	BlendScreen:      "screen",
	BlendOverlay:     "overlay",
	BlendSoftLight:   "soft_light",
	BlendHardLight:   "hard_light",
	BlendColorDodge:  "color_dodge",
	BlendColorBurn:   "color_burn",
	BlendLinearDodge: "linear_dodge",
	BlendLinearBurn:  "linear_burn",
	BlendVividLight:  "vivid_light",
	BlendDifference:  "difference",
}

// String returns the canonical name of the blend mode.
func (m BlendMode) String() string {
	if s, ok := blendModeNames[m]; ok {
		return s
	}
	return "unknown"
}

// ParseBlendMode maps a mode name to its BlendMode. Unknown names are a
// construction-time error rather than a silent fallback.
func ParseBlendMode(name string) (BlendMode, error) {
	for m, s := range blendModeNames {
		if s == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: blend mode %q", ErrInvalidParameter, name)
}

// blendValue combines one pair of normalized samples. Both inputs and
// the output are in [0, 1].
func (m BlendMode) blendValue(b, o float64) float64 {
	switch m {
	case BlendNormal:
		return o
	case BlendMultiply:
		return b * o
	case BlendScreen:
		return 1 - (1-b)*(1-o)
	case BlendOverlay:
		if b < 0.5 {
			return 2 * b * o
		}
		return 1 - 2*(1-b)*(1-o)
	case BlendSoftLight:
		if o <= 0.5 {
			return b - (1-2*o)*b*(1-b)
		}
		var d float64
		if b <= 0.25 {
			d = ((16*b-12)*b + 4) * b
		} else {
			d = math.Sqrt(b)
		}
		return b + (2*o-1)*(d-b)
	case BlendHardLight:
		// Overlay with the operands swapped.
		if o > 0.5 {
			return 1 - 2*(1-b)*(1-o)
		}
		return 2 * b * o
	case BlendColorDodge:
		return math.Min(1, b/(1-o+blendEpsilon))
	case BlendColorBurn:
		return 1 - math.Min(1, (1-b)/(o+blendEpsilon))
	case BlendLinearDodge:
		return math.Min(1, b+o)
	case BlendLinearBurn:
		return math.Max(0, b+o-1)
	case BlendVividLight:
		// Dodge above the midpoint, burn below, each halved.
		if o > 0.5 {
			return math.Min(1, b/(2*(1-o)+blendEpsilon))
		}
		return 1 - math.Min(1, (1-b)/(2*o+blendEpsilon))
	case BlendDifference:
		return math.Abs(b - o)
	default:
		return o
	}
}

// Blend combines overlay onto base with the given mode, then applies
// the scalar opacity: out = base*(1-opacity) + blended*opacity.
// Both rasters must share dimensions; opacity is clamped to [0, 1].
func Blend(base, overlay *Raster, mode BlendMode, opacity float64) (*Raster, error) {
	if base == nil || overlay == nil {
		return nil, ErrNilRaster
	}
	if !base.sameShape(overlay) {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch,
			base.width, base.height, overlay.width, overlay.height)
	}
	if _, ok := blendModeNames[mode]; !ok {
		return nil, fmt.Errorf("%w: blend mode %d", ErrInvalidParameter, mode)
	}
	opacity = clamp01(opacity)

	out := base.Clone()
	for i := range out.data {
		b := float64(base.data[i]) / 255
		o := float64(overlay.data[i]) / 255
		v := clamp01(mode.blendValue(b, o))
		v = b*(1-opacity) + v*opacity
		out.data[i] = uint8(clamp01(v)*255 + 0.5)
	}
	return out, nil
}
