package fx

import (
	"errors"
	"testing"
)

func TestGaussianBlurConstantUnchanged(t *testing.T) {
	src := solidRaster(10, 10, Color{R: 80, G: 120, B: 160})
	out, err := GaussianBlur(src, GaussianBlurConfig{Radius: 5})
	if err != nil {
		t.Fatal(err)
	}
	if d := maxByteDiff(t, src, out); d != 0 {
		t.Fatalf("blurring a constant image changed it, max diff %d", d)
	}
}

func TestGaussianBlurTinyRadiusNearIdentity(t *testing.T) {
	src := gradientRaster(12, 12)
	out, err := GaussianBlur(src, GaussianBlurConfig{Radius: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if d := maxByteDiff(t, src, out); d > 1 {
		t.Fatalf("tiny radius max diff %d, want <= 1", d)
	}
}

func TestGaussianBlurSmooths(t *testing.T) {
	// Single white pixel on black: blurring must spread the energy.
	src := solidRaster(9, 9, Color{})
	src.Set(4, 4, Color{R: 255, G: 255, B: 255})

	out, err := GaussianBlur(src, GaussianBlurConfig{Radius: 3})
	if err != nil {
		t.Fatal(err)
	}
	center := out.At(4, 4)
	neighbor := out.At(5, 4)
	if center.R >= 255 {
		t.Fatalf("center not attenuated: %d", center.R)
	}
	if neighbor.R == 0 {
		t.Fatal("neighbor received no energy")
	}
	if neighbor.R > center.R {
		t.Fatalf("neighbor %d brighter than center %d", neighbor.R, center.R)
	}
}

func TestGaussianBlurSigmaOverride(t *testing.T) {
	src := gradientRaster(16, 16)
	wide, err := GaussianBlur(src, GaussianBlurConfig{Radius: 1, Sigma: 8})
	if err != nil {
		t.Fatal(err)
	}
	narrow, err := GaussianBlur(src, GaussianBlurConfig{Radius: 1})
	if err != nil {
		t.Fatal(err)
	}
	if maxByteDiff(t, wide, narrow) == 0 {
		t.Fatal("explicit sigma had no effect")
	}
}

func TestGaussianBlurRadiusClamped(t *testing.T) {
	cfg := GaussianBlurConfig{Radius: 900}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Radius != 50 {
		t.Fatalf("radius clamped to %v, want 50", cfg.Radius)
	}
}

func TestGaussianBlurNilRaster(t *testing.T) {
	if _, err := GaussianBlur(nil, GaussianBlurConfig{Radius: 1}); !errors.Is(err, ErrNilRaster) {
		t.Fatalf("error = %v, want ErrNilRaster", err)
	}
}
