package fx

import "fmt"

// ShiftMode selects how the non-centered channels are transformed.
type ShiftMode uint8

const (
	// ModeShift translates the two outer channels in opposite
	// directions, filling vacated pixels with zero.
	ModeShift ShiftMode = iota

	// ModeMirror flips one outer channel horizontally and the other
	// vertically.
	ModeMirror
)

// ParseShiftMode maps a mode name to its value.
func ParseShiftMode(name string) (ShiftMode, error) {
	switch name {
	case "shift":
		return ModeShift, nil
	case "mirror":
		return ModeMirror, nil
	}
	return 0, fmt.Errorf("%w: shift mode %q", ErrInvalidParameter, name)
}

// ShiftDirection is the axis for ModeShift.
type ShiftDirection uint8

const (
	DirHorizontal ShiftDirection = iota
	DirVertical
)

// ParseShiftDirection maps a direction name to its value.
func ParseShiftDirection(name string) (ShiftDirection, error) {
	switch name {
	case "horizontal":
		return DirHorizontal, nil
	case "vertical":
		return DirVertical, nil
	}
	return 0, fmt.Errorf("%w: shift direction %q", ErrInvalidParameter, name)
}

// ChannelShiftConfig configures the channel split filter.
type ChannelShiftConfig struct {
	// Mode selects shifting or mirroring.
	Mode ShiftMode

	// ShiftAmount is the translation distance in pixels, 1 to 100.
	// Ignored by ModeMirror.
	ShiftAmount int

	// Direction is the shift axis. Ignored by ModeMirror.
	Direction ShiftDirection

	// Centered is the channel left untouched.
	Centered Channel
}

// DefaultChannelShiftConfig returns a 10 pixel horizontal shift around
// a centered green channel.
func DefaultChannelShiftConfig() ChannelShiftConfig {
	return ChannelShiftConfig{
		Mode:        ModeShift,
		ShiftAmount: 10,
		Direction:   DirHorizontal,
		Centered:    ChannelG,
	}
}

// Validate clamps the shift amount and rejects unknown enum values.
func (c *ChannelShiftConfig) Validate() error {
	if c.Mode > ModeMirror {
		return fmt.Errorf("%w: shift mode %d", ErrInvalidParameter, c.Mode)
	}
	if c.Direction > DirVertical {
		return fmt.Errorf("%w: shift direction %d", ErrInvalidParameter, c.Direction)
	}
	if c.Centered > ChannelB {
		return fmt.Errorf("%w: channel %d", ErrInvalidParameter, c.Centered)
	}
	c.ShiftAmount = clampI(c.ShiftAmount, 1, 100)
	return nil
}

// ChannelShift splits the image into its channels and shifts or mirrors
// the two channels that are not centered. Which outer channel moves in
// which direction is fixed by channel identity: reading R, G, B in
// order, the earlier outer channel takes the negative shift.
func ChannelShift(src *Raster, cfg ChannelShiftConfig) (*Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w, h := src.width, src.height
	out, err := NewRaster(w, h)
	if err != nil {
		return nil, err
	}

	switch cfg.Mode {
	case ModeShift:
		shifts := [3]int{}
		switch cfg.Centered {
		case ChannelR:
			shifts = [3]int{0, -cfg.ShiftAmount, cfg.ShiftAmount}
		case ChannelG:
			shifts = [3]int{-cfg.ShiftAmount, 0, cfg.ShiftAmount}
		case ChannelB:
			shifts = [3]int{-cfg.ShiftAmount, cfg.ShiftAmount, 0}
		}
		for c := 0; c < 3; c++ {
			shiftChannel(src, out, c, shifts[c], cfg.Direction)
		}

	case ModeMirror:
		// The first outer channel mirrors horizontally, the second
		// vertically, regardless of the direction parameter.
		var horiz, vert Channel
		switch cfg.Centered {
		case ChannelR:
			horiz, vert = ChannelG, ChannelB
		case ChannelG:
			horiz, vert = ChannelR, ChannelB
		case ChannelB:
			horiz, vert = ChannelR, ChannelG
		}
		copyChannel(src, out, int(cfg.Centered))
		mirrorChannel(src, out, int(horiz), DirHorizontal)
		mirrorChannel(src, out, int(vert), DirVertical)
	}
	return out, nil
}

// shiftChannel translates one channel by shift pixels along the axis,
// leaving a zero band at the vacated edge.
func shiftChannel(src, dst *Raster, c, shift int, dir ShiftDirection) {
	w, h := src.width, src.height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := x, y
			if dir == DirHorizontal {
				sx = x - shift
			} else {
				sy = y - shift
			}
			if sx < 0 || sx >= w || sy < 0 || sy >= h {
				continue // zero fill
			}
			dst.data[(y*w+x)*3+c] = src.data[(sy*w+sx)*3+c]
		}
	}
}

// mirrorChannel flips one channel along the axis.
func mirrorChannel(src, dst *Raster, c int, dir ShiftDirection) {
	w, h := src.width, src.height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := x, y
			if dir == DirHorizontal {
				sx = w - 1 - x
			} else {
				sy = h - 1 - y
			}
			dst.data[(y*w+x)*3+c] = src.data[(sy*w+sx)*3+c]
		}
	}
}

// copyChannel copies one channel unchanged.
func copyChannel(src, dst *Raster, c int) {
	for i := c; i < len(src.data); i += 3 {
		dst.data[i] = src.data[i]
	}
}
