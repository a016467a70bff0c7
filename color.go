package fx

import (
	"fmt"
	"image/color"
)

// Color represents an 8-bit RGB color as used by palette files, noise
// tinting, and the color filter.
type Color struct {
	R, G, B uint8
}

// Color converts Color to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// HexColor parses a hex color string into a Color.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
func HexColor(hex string) (Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	var ok bool

	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	}
	if !ok {
		return Color{}, fmt.Errorf("%w: hex color %q", ErrInvalidParameter, hex)
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// parseHex accumulates hex digits into val, reporting whether all
// characters were valid.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 restricts a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clampF restricts x to [lo, hi].
func clampF(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// clampI restricts x to [lo, hi].
func clampI(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// luma returns the Rec.601 luminance of an RGB triple in the byte domain.
func luma(r, g, b float64) float64 {
	return 0.299*r + 0.587*g + 0.114*b
}
