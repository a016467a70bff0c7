package fx

import (
	"fmt"
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ExpansionShape selects the distance metric used to grow color regions
// from the seed points.
type ExpansionShape uint8

const (
	// ShapeSquare grows square regions (Chebyshev distance).
	ShapeSquare ExpansionShape = iota

	// ShapeCircle grows circular regions (Euclidean distance).
	ShapeCircle

	// ShapeDiamond grows diamond regions (Manhattan distance).
	ShapeDiamond
)

// ParseExpansionShape maps a shape name to its value.
func ParseExpansionShape(name string) (ExpansionShape, error) {
	switch name {
	case "square":
		return ShapeSquare, nil
	case "circle":
		return ShapeCircle, nil
	case "diamond":
		return ShapeDiamond, nil
	}
	return 0, fmt.Errorf("%w: expansion shape %q", ErrInvalidParameter, name)
}

// distance computes the metric between a pixel and a seed point.
func (s ExpansionShape) distance(dx, dy float64) float64 {
	switch s {
	case ShapeSquare:
		return math.Max(math.Abs(dx), math.Abs(dy))
	case ShapeDiamond:
		return math.Abs(dx) + math.Abs(dy)
	default:
		return math.Hypot(dx, dy)
	}
}

// PointPattern selects how seed points are placed.
type PointPattern uint8

const (
	PointsRandom PointPattern = iota
	PointsGrid
	PointsEdges
)

// ParsePointPattern maps a pattern name to its value.
func ParsePointPattern(name string) (PointPattern, error) {
	switch name {
	case "random":
		return PointsRandom, nil
	case "grid":
		return PointsGrid, nil
	case "edges":
		return PointsEdges, nil
	}
	return 0, fmt.Errorf("%w: point pattern %q", ErrInvalidParameter, name)
}

// ColorTheme selects the HSV ranges seed colors are sampled from.
type ColorTheme uint8

const (
	ThemeFullSpectrum ColorTheme = iota
	ThemeWarm
	ThemeCool
	ThemePastel
)

// ParseColorTheme maps a theme name to its value.
func ParseColorTheme(name string) (ColorTheme, error) {
	switch name {
	case "full-spectrum":
		return ThemeFullSpectrum, nil
	case "warm":
		return ThemeWarm, nil
	case "cool":
		return ThemeCool, nil
	case "pastel":
		return ThemePastel, nil
	}
	return 0, fmt.Errorf("%w: color theme %q", ErrInvalidParameter, name)
}

// ColorShiftExpansionConfig configures the seeded color expansion.
type ColorShiftExpansionConfig struct {
	// NumPoints is the number of seed points, 1 to 50.
	NumPoints int

	// ShiftAmount sets how strongly seed colors pull pixels toward
	// them, 1 to 20. The mix weight is min(0.85, ShiftAmount/12).
	ShiftAmount int

	// Shape selects the distance metric.
	Shape ExpansionShape

	// SaturationBoost and ValueBoost are added to the blended color's
	// saturation/value before mixing, 0 to 1 each.
	SaturationBoost float64
	ValueBoost      float64

	// Pattern selects seed point placement.
	Pattern PointPattern

	// Theme selects the seed color sampling ranges.
	Theme ColorTheme

	// DecayFactor controls linear influence falloff with distance;
	// zero switches to inverse-square falloff. 0 to 1.
	DecayFactor float64

	// Seed makes point placement and colors reproducible when nonzero.
	Seed int64
}

// DefaultColorShiftExpansionConfig returns five full-spectrum points.
func DefaultColorShiftExpansionConfig() ColorShiftExpansionConfig {
	return ColorShiftExpansionConfig{
		NumPoints:   5,
		ShiftAmount: 5,
		Shape:       ShapeSquare,
		Pattern:     PointsRandom,
		Theme:       ThemeFullSpectrum,
	}
}

// Validate clamps numeric fields and rejects unknown enum values.
func (c *ColorShiftExpansionConfig) Validate() error {
	if c.Shape > ShapeDiamond {
		return fmt.Errorf("%w: expansion shape %d", ErrInvalidParameter, c.Shape)
	}
	if c.Pattern > PointsEdges {
		return fmt.Errorf("%w: point pattern %d", ErrInvalidParameter, c.Pattern)
	}
	if c.Theme > ThemePastel {
		return fmt.Errorf("%w: color theme %d", ErrInvalidParameter, c.Theme)
	}
	c.NumPoints = clampI(c.NumPoints, 1, 50)
	c.ShiftAmount = clampI(c.ShiftAmount, 1, 20)
	c.SaturationBoost = clamp01(c.SaturationBoost)
	c.ValueBoost = clamp01(c.ValueBoost)
	c.DecayFactor = clamp01(c.DecayFactor)
	return nil
}

type seedPoint struct {
	x, y int
}

// ColorShiftExpansion grows themed color regions from seed points and
// pulls each pixel's HSV toward the blended seed color, weighted by the
// seeds' distance-based influence. Hue is mixed by plain linear
// interpolation, not around the hue circle.
func ColorShiftExpansion(src *Raster, cfg ColorShiftExpansionConfig) (*Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w, h := src.width, src.height
	rng := newRand(cfg.Seed)

	points := seedPoints(rng, w, h, cfg.Pattern, cfg.NumPoints)
	colors := seedColors(rng, cfg.Theme, cfg.NumPoints)
	if len(colors) > len(points) {
		colors = colors[:len(points)]
	}

	maxDist := math.Hypot(float64(w), float64(h))
	shiftWeight := math.Min(0.85, float64(cfg.ShiftAmount)/12)

	out := src.Clone()
	d := out.data
	influences := make([]float64, len(points))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 3

			total := 0.0
			for pi, pt := range points {
				dist := cfg.Shape.distance(float64(x-pt.x), float64(y-pt.y))
				var inf float64
				if cfg.DecayFactor > 0 {
					inf = math.Max(0, 1-cfg.DecayFactor*dist/maxDist)
				} else {
					// Inverse-square falloff; 50 px is the
					// sensitivity scale.
					inf = 1 / (1 + (dist/50)*(dist/50))
				}
				influences[pi] = inf
				total += inf
			}
			if total < 0.001 {
				continue // pixel keeps its original color
			}

			var br, bg, bb float64
			for pi, c := range colors {
				wgt := influences[pi] / total
				br += wgt * float64(c.R)
				bg += wgt * float64(c.G)
				bb += wgt * float64(c.B)
			}

			orig := colorful.Color{
				R: float64(d[i]) / 255,
				G: float64(d[i+1]) / 255,
				B: float64(d[i+2]) / 255,
			}
			blend := colorful.Color{
				R: clamp01(br / 255),
				G: clamp01(bg / 255),
				B: clamp01(bb / 255),
			}
			oh, os, ov := orig.Hsv()
			bh, bs, bv := blend.Hsv()

			fh := (oh/360)*(1-shiftWeight) + (bh/360)*shiftWeight
			fs := os*(1-shiftWeight) + (bs+cfg.SaturationBoost)*shiftWeight
			fv := ov*(1-shiftWeight) + (bv+cfg.ValueBoost)*shiftWeight

			fh = math.Mod(fh, 1)
			if fh < 0 {
				fh += 1
			}
			final := colorful.Hsv(fh*360, clamp01(fs), clamp01(fv))
			d[i] = uint8(clamp01(final.R) * 255)
			d[i+1] = uint8(clamp01(final.G) * 255)
			d[i+2] = uint8(clamp01(final.B) * 255)
		}
	}
	return out, nil
}

// seedPoints places expansion points per the pattern.
func seedPoints(rng *rand.Rand, w, h int, pattern PointPattern, n int) []seedPoint {
	var points []seedPoint
	switch pattern {
	case PointsGrid:
		cols := max(2, int(math.Sqrt(float64(n))))
		rows := max(2, n/cols)
		xStep := w / cols
		yStep := h / rows
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				x := j*xStep + xStep/2
				y := i*yStep + yStep/2
				if x < w && y < h {
					points = append(points, seedPoint{x, y})
				}
			}
		}
	case PointsEdges:
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n)
			switch i % 4 {
			case 0: // top
				points = append(points, seedPoint{int(float64(w) * t), 0})
			case 1: // right
				points = append(points, seedPoint{w - 1, int(float64(h) * t)})
			case 2: // bottom
				points = append(points, seedPoint{int(float64(w) * (1 - t)), h - 1})
			case 3: // left
				points = append(points, seedPoint{0, int(float64(h) * (1 - t))})
			}
		}
	default:
		for i := 0; i < n; i++ {
			points = append(points, seedPoint{rng.Intn(w), rng.Intn(h)})
		}
	}
	return points
}

// seedColors samples one themed color per seed point.
func seedColors(rng *rand.Rand, theme ColorTheme, n int) []Color {
	uniform := func(lo, hi float64) float64 {
		return lo + rng.Float64()*(hi-lo)
	}
	colors := make([]Color, 0, n)
	for i := 0; i < n; i++ {
		var c colorful.Color
		switch theme {
		case ThemeWarm:
			c = colorful.Hsv(uniform(0, 60), uniform(0.6, 1), uniform(0.7, 1))
		case ThemeCool:
			var hue float64
			if rng.Float64() < 0.5 {
				hue = uniform(180, 300)
			} else {
				hue = uniform(90, 180)
			}
			c = colorful.Hsv(hue, uniform(0.5, 1), uniform(0.6, 1))
		case ThemePastel:
			c = colorful.Hsv(uniform(0, 360), uniform(0.1, 0.5), uniform(0.8, 1))
		default: // full spectrum, evenly spaced hues
			c = colorful.Hsv(360*float64(i)/float64(n), uniform(0.7, 1), uniform(0.7, 1))
		}
		colors = append(colors, Color{
			R: uint8(clamp01(c.R) * 255),
			G: uint8(clamp01(c.G) * 255),
			B: uint8(clamp01(c.B) * 255),
		})
	}
	return colors
}
