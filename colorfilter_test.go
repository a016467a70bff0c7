package fx

import (
	"errors"
	"testing"
)

func TestColorFilterSolidNormalFullOpacity(t *testing.T) {
	src := gradientRaster(8, 8)
	cfg := ColorFilterConfig{
		Type:    FilterSolid,
		Color:   Color{R: 10, G: 200, B: 30},
		Mode:    BlendNormal,
		Opacity: 1,
	}

	out, err := ColorFilter(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := solidRaster(8, 8, cfg.Color)
	if d := maxByteDiff(t, want, out); d != 0 {
		t.Fatalf("full-opacity normal solid max diff %d", d)
	}
}

func TestColorFilterZeroOpacityIdentity(t *testing.T) {
	src := gradientRaster(8, 8)
	cfg := DefaultColorFilterConfig()
	cfg.Opacity = 0

	out, err := ColorFilter(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d := maxByteDiff(t, src, out); d != 0 {
		t.Fatalf("zero opacity changed pixels, max diff %d", d)
	}
}

func TestColorFilterGradientEndpoints(t *testing.T) {
	src := solidRaster(9, 3, Color{R: 128, G: 128, B: 128})
	cfg := ColorFilterConfig{
		Type:           FilterGradient,
		Color:          Color{R: 255},
		GradientColor2: Color{B: 255},
		Mode:           BlendNormal,
		Opacity:        1,
		GradientAngle:  0,
	}

	out, err := ColorFilter(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	left := out.At(0, 1)
	right := out.At(8, 1)
	// At angle 0 the start color dominates one edge, the end color the
	// other.
	if left.B <= left.R {
		t.Fatalf("left edge %v, want blue heavy", left)
	}
	if right.R <= right.B {
		t.Fatalf("right edge %v, want red heavy", right)
	}
}

func TestColorFilterCustomRequiresOverlay(t *testing.T) {
	cfg := ColorFilterConfig{Type: FilterCustom, Mode: BlendNormal, Opacity: 1}
	if _, err := ColorFilter(gradientRaster(4, 4), cfg); !errors.Is(err, ErrMissingOverlay) {
		t.Fatalf("error = %v, want ErrMissingOverlay", err)
	}
}

func TestColorFilterCustomOverlayResized(t *testing.T) {
	src := gradientRaster(10, 10)
	overlay := solidRaster(3, 3, Color{G: 255})
	cfg := ColorFilterConfig{
		Type:    FilterCustom,
		Mode:    BlendNormal,
		Opacity: 1,
		Overlay: overlay,
	}

	out, err := ColorFilter(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	checkShape(t, src, out)
	if got := out.At(5, 5); got.G < 250 {
		t.Fatalf("resized overlay not applied: %v", got)
	}
}

func TestColorFilterBlendModes(t *testing.T) {
	src := gradientRaster(8, 8)
	for mode := range blendModeNames {
		cfg := DefaultColorFilterConfig()
		cfg.Mode = mode
		out, err := ColorFilter(src, cfg)
		if err != nil {
			t.Fatalf("%v: %v", mode, err)
		}
		checkShape(t, src, out)
	}
}
