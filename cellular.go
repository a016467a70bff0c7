package fx

import (
	"fmt"
	"math"
	"math/rand"
)

// CellLayout selects how cells tile the image.
type CellLayout uint8

const (
	// LayoutGrid places one cell per circle-sized square block.
	LayoutGrid CellLayout = iota

	// LayoutHex staggers alternating rows for hexagonal packing, with
	// overlapping blocks so no pixel is left uncovered.
	LayoutHex
)

// ParseCellLayout maps a layout name to its value.
func ParseCellLayout(name string) (CellLayout, error) {
	switch name {
	case "grid":
		return LayoutGrid, nil
	case "hex":
		return LayoutHex, nil
	}
	return 0, fmt.Errorf("%w: cell layout %q", ErrInvalidParameter, name)
}

// CellNoiseType selects what fills each cell.
type CellNoiseType uint8

const (
	CellNoiseRGB CellNoiseType = iota
	CellNoiseGrayscale
	CellNoisePalette
	CellNoiseGaussian
)

// ParseCellNoiseType maps a noise type name to its value.
func ParseCellNoiseType(name string) (CellNoiseType, error) {
	switch name {
	case "rgb":
		return CellNoiseRGB, nil
	case "grayscale":
		return CellNoiseGrayscale, nil
	case "palette":
		return CellNoisePalette, nil
	case "gaussian":
		return CellNoiseGaussian, nil
	}
	return 0, fmt.Errorf("%w: cell noise type %q", ErrInvalidParameter, name)
}

// CellBlendMode selects how cell noise combines with the image. These
// modes blend through the per-cell gradient mask and use formulas
// distinct from the overlay compositing in Blend.
type CellBlendMode uint8

const (
	CellBlendOverlay CellBlendMode = iota
	CellBlendAdd
	CellBlendMultiply
	CellBlendScreen
	CellBlendSoftLight
	CellBlendHardLight
	CellBlendColorDodge
	CellBlendColorBurn
	CellBlendLinearDodge
	CellBlendLinearBurn
	CellBlendDifference
)

var cellBlendNames = map[CellBlendMode]string{
	CellBlendOverlay:     "overlay",
	CellBlendAdd:         "add",
	CellBlendMultiply:    "multiply",
	CellBlendScreen:      "screen",
	CellBlendSoftLight:   "soft_light",
	CellBlendHardLight:   "hard_light",
	CellBlendColorDodge:  "color_dodge",
	CellBlendColorBurn:   "color_burn",
	CellBlendLinearDodge: "linear_dodge",
	CellBlendLinearBurn:  "linear_burn",
	CellBlendDifference:  "difference",
}

// String returns the mode's name.
func (m CellBlendMode) String() string {
	if s, ok := cellBlendNames[m]; ok {
		return s
	}
	return fmt.Sprintf("CellBlendMode(%d)", m)
}

// ParseCellBlendMode maps a mode name to its value.
func ParseCellBlendMode(name string) (CellBlendMode, error) {
	for m, s := range cellBlendNames {
		if s == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: cell blend mode %q", ErrInvalidParameter, name)
}

// CellularNoiseConfig configures the cellular noise overlay.
type CellularNoiseConfig struct {
	// CircleSize is the cell diameter in pixels, 8 to 128.
	CircleSize int

	// Layout selects grid or hex cell placement.
	Layout CellLayout

	// Noise selects the cell fill.
	Noise CellNoiseType

	// Mode selects the masked blend formula.
	Mode CellBlendMode

	// CenterNoise and EdgeNoise set the mask strength at the cell
	// center and at its radius, 0 to 1 each. The mask interpolates
	// linearly between them and fades to zero over an extra half
	// radius beyond the cell edge.
	CenterNoise float64
	EdgeNoise   float64

	// ReverseGradient swaps the center-to-edge direction.
	ReverseGradient bool

	// Opacity mixes the blended result with the input, 0 to 1.
	Opacity float64

	// Palette holds the colors for CellNoisePalette. When empty,
	// PalettePath is loaded; if that also yields nothing the filter
	// falls back to RGB noise.
	Palette []Color

	// PalettePath names a file of "R G B" lines for LoadPalette.
	PalettePath string

	// Seed makes the noise reproducible when nonzero.
	Seed int64
}

// DefaultCellularNoiseConfig returns a 32px grid of RGB overlay cells.
func DefaultCellularNoiseConfig() CellularNoiseConfig {
	return CellularNoiseConfig{
		CircleSize:  32,
		Layout:      LayoutGrid,
		Noise:       CellNoiseRGB,
		Mode:        CellBlendOverlay,
		CenterNoise: 0,
		EdgeNoise:   1,
		Opacity:     1,
	}
}

// Validate clamps numeric fields and rejects unknown enum values.
func (c *CellularNoiseConfig) Validate() error {
	if c.Layout > LayoutHex {
		return fmt.Errorf("%w: cell layout %d", ErrInvalidParameter, c.Layout)
	}
	if c.Noise > CellNoiseGaussian {
		return fmt.Errorf("%w: cell noise type %d", ErrInvalidParameter, c.Noise)
	}
	if _, ok := cellBlendNames[c.Mode]; !ok {
		return fmt.Errorf("%w: cell blend mode %d", ErrInvalidParameter, c.Mode)
	}
	c.CircleSize = clampI(c.CircleSize, 8, 128)
	c.CenterNoise = clamp01(c.CenterNoise)
	c.EdgeNoise = clamp01(c.EdgeNoise)
	c.Opacity = clamp01(c.Opacity)
	return nil
}

// cellWork carries the per-image state shared by every cell block.
type cellWork struct {
	planes  [3][]float64
	w, h    int
	rng     *rand.Rand
	noise   CellNoiseType
	palette []Color
	cfg     *CellularNoiseConfig
}

// CellularNoise fills circular cells with random noise and blends them
// into the image through a radial gradient mask. Hex cells overlap, so
// later cells compound on the output of earlier ones.
func CellularNoise(src *Raster, cfg CellularNoiseConfig) (*Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	noiseType := cfg.Noise
	palette := cfg.Palette
	if noiseType == CellNoisePalette {
		if len(palette) == 0 {
			palette = LoadPalette(cfg.PalettePath)
		}
		if len(palette) == 0 {
			Logger().Warn("empty palette, falling back to rgb noise",
				"path", cfg.PalettePath)
			noiseType = CellNoiseRGB
		}
	}

	w, h := src.width, src.height
	work := &cellWork{
		w: w, h: h,
		rng:     newRand(cfg.Seed),
		noise:   noiseType,
		palette: palette,
		cfg:     &cfg,
	}
	for c := 0; c < 3; c++ {
		work.planes[c] = src.plane(c)
	}

	size := cfg.CircleSize
	radius := size / 2
	if radius <= 0 {
		radius = 1
	}

	if cfg.Layout == LayoutGrid {
		for y0 := 0; y0 < h; y0 += size {
			for x0 := 0; x0 < w; x0 += size {
				work.processBlock(x0, y0, min(w, x0+size), min(h, y0+size),
					x0+radius, y0+radius, radius)
			}
		}
	} else {
		rowHeight := hexRowPitch(size)
		row := 0
		for y0 := 0; y0 < h+size; y0 += rowHeight {
			xOffset := 0
			if row%2 == 1 {
				xOffset = size / 2
			}
			for x0 := -xOffset - radius; x0 < w+radius; x0 += size {
				bx0 := max(0, x0-radius/2)
				by0 := max(0, y0-radius/2)
				bx1 := min(w, x0+size+radius/2)
				by1 := min(h, y0+size+radius/2)
				if bx0 >= bx1 || by0 >= by1 {
					continue
				}
				work.processBlock(bx0, by0, bx1, by1, x0+radius, y0+radius, radius)
			}
			row++
		}
	}

	out := src.Clone()
	for c := 0; c < 3; c++ {
		out.setPlane(c, work.planes[c])
	}
	return out, nil
}

// hexRowPitch is the vertical spacing between hexagonal rows: the
// sqrt(3)/2 pitch truncated to an int, then shrunk 10% and truncated
// again so rows overlap.
func hexRowPitch(size int) int {
	rh := int(float64(size) * 0.866)
	return max(1, int(float64(rh)*0.9))
}

// processBlock blends one cell's noise into the block [x0,x1)x[y0,y1),
// masked by the distance gradient around the cell center (cx, cy).
func (cw *cellWork) processBlock(x0, y0, x1, y1, cx, cy, radius int) {
	bw := x1 - x0
	bh := y1 - y0
	noise := cw.generateNoise(bw, bh)

	cfg := cw.cfg
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := float64(x - cx)
			dy := float64(y - cy)
			dist := math.Hypot(dx, dy)
			mask := gradientProfile(dist, float64(radius),
				cfg.CenterNoise, cfg.EdgeNoise, cfg.ReverseGradient)

			ni := ((y-y0)*bw + (x - x0)) * 3
			idx := y*cw.w + x
			for c := 0; c < 3; c++ {
				orig := cw.planes[c][idx]
				blended := cellBlendValue(orig, noise[ni+c], mask, cfg.Mode)
				cw.planes[c][idx] = orig*(1-cfg.Opacity) + blended*cfg.Opacity
			}
		}
	}
}

// gradientProfile returns the mask strength at dist from a cell center:
// centerVal at zero distance, edgeVal at the radius, then a linear fade
// to zero over an extra half radius.
func gradientProfile(dist, radius, centerVal, edgeVal float64, reverse bool) float64 {
	if radius == 0 {
		if reverse {
			return edgeVal
		}
		return centerVal
	}
	factor := clamp01(dist / radius)
	if reverse {
		factor = 1 - factor
	}
	profile := centerVal + (edgeVal-centerVal)*factor
	if dist > radius {
		fade := math.Max(0, 1-(dist-radius)/(radius*0.5))
		profile *= fade
	}
	return profile
}

// generateNoise fills a bw-by-bh block with interleaved RGB noise in
// the 0-255 domain.
func (cw *cellWork) generateNoise(bw, bh int) []float64 {
	n := make([]float64, bw*bh*3)
	switch cw.noise {
	case CellNoiseGrayscale:
		for i := 0; i < bw*bh; i++ {
			v := float64(cw.rng.Intn(256))
			n[i*3] = v
			n[i*3+1] = v
			n[i*3+2] = v
		}
	case CellNoisePalette:
		for i := 0; i < bw*bh; i++ {
			c := cw.palette[cw.rng.Intn(len(cw.palette))]
			n[i*3] = float64(c.R)
			n[i*3+1] = float64(c.G)
			n[i*3+2] = float64(c.B)
		}
	case CellNoiseGaussian:
		for i := range n {
			n[i] = clamp255(127 + 40*cw.rng.NormFloat64())
		}
	default: // rgb
		for i := range n {
			n[i] = float64(cw.rng.Intn(256))
		}
	}
	return n
}

// cellBlendValue combines one original and noise sample through the
// gradient mask. Values are in the 0-255 domain; the mask is 0 to 1.
// Overlay, multiply, screen and the light modes blend at full strength
// and then mix through the mask; the dodge, burn and linear modes fold
// the mask into the noise term instead.
func cellBlendValue(orig, noise, mask float64, mode CellBlendMode) float64 {
	on := orig / 255
	nn := noise / 255
	switch mode {
	case CellBlendOverlay:
		var v float64
		if on < 0.5 {
			v = 2 * on * nn
		} else {
			v = 1 - 2*(1-on)*(1-nn)
		}
		return orig*(1-mask) + clamp255(v*255)*mask
	case CellBlendAdd, CellBlendLinearDodge:
		return clamp255(orig + noise*mask)
	case CellBlendMultiply:
		return orig*(1-mask) + clamp255(on*nn*255)*mask
	case CellBlendScreen:
		return orig*(1-mask) + clamp255((1-(1-on)*(1-nn))*255)*mask
	case CellBlendSoftLight:
		var v float64
		if nn < 0.5 {
			v = (2*on-1)*(nn-nn*nn) + on
		} else {
			v = (2*on-1)*(math.Sqrt(nn)-nn) + on
		}
		return orig*(1-mask) + clamp255(v*255)*mask
	case CellBlendHardLight:
		var v float64
		if nn < 0.5 {
			v = 2 * on * nn
		} else {
			v = 1 - 2*(1-on)*(1-nn)
		}
		return orig*(1-mask) + clamp255(v*255)*mask
	case CellBlendColorDodge:
		factor := noise * mask / 255
		return clamp255(orig / (1 - factor + 1e-7))
	case CellBlendColorBurn:
		factor := noise * mask / 255
		return clamp255(255 - (255-orig)/(factor+1e-7))
	case CellBlendLinearBurn:
		return clamp255(orig + noise*mask - 255)
	default: // difference
		return clamp255(math.Abs(orig - noise*mask))
	}
}
