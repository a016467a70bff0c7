package fx

import (
	"errors"
	"testing"
)

func TestNoiseEffectShape(t *testing.T) {
	src := gradientRaster(13, 7)
	for _, typ := range []NoiseType{
		NoiseFilmGrain, NoiseDigital, NoiseColored, NoiseSaltPepper, NoiseGaussian,
	} {
		cfg := DefaultNoiseEffectConfig()
		cfg.Type = typ
		cfg.Seed = 1
		out, err := NoiseEffect(src, cfg)
		if err != nil {
			t.Fatalf("%v: %v", typ, err)
		}
		checkShape(t, src, out)
	}
}

func TestNoiseEffectZeroIntensityOverlayIdentity(t *testing.T) {
	src := gradientRaster(16, 16)
	cfg := DefaultNoiseEffectConfig()
	cfg.Intensity = 0
	cfg.ColorVariation = 0
	cfg.Blend = NoiseBlendOverlay
	cfg.Seed = 7

	out, err := NoiseEffect(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d := maxByteDiff(t, src, out); d != 0 {
		t.Fatalf("zero intensity changed pixels, max diff %d", d)
	}
}

func TestNoiseEffectSeedDeterminism(t *testing.T) {
	src := gradientRaster(20, 14)
	cfg := DefaultNoiseEffectConfig()
	cfg.Type = NoiseGaussian
	cfg.Intensity = 0.5
	cfg.Seed = 42

	a, err := NoiseEffect(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NoiseEffect(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d := maxByteDiff(t, a, b); d != 0 {
		t.Fatalf("same seed produced different output, max diff %d", d)
	}
}

func TestNoiseEffectDoesNotMutateInput(t *testing.T) {
	src := gradientRaster(10, 10)
	before := src.Clone()
	cfg := DefaultNoiseEffectConfig()
	cfg.Intensity = 1
	cfg.Seed = 3
	if _, err := NoiseEffect(src, cfg); err != nil {
		t.Fatal(err)
	}
	if d := maxByteDiff(t, src, before); d != 0 {
		t.Fatalf("input was mutated, max diff %d", d)
	}
}

func TestNoiseEffectSaltPepperExtremes(t *testing.T) {
	src := solidRaster(32, 32, Color{R: 128, G: 128, B: 128})
	cfg := DefaultNoiseEffectConfig()
	cfg.Type = NoiseSaltPepper
	cfg.Intensity = 1
	cfg.Blend = NoiseBlendAdd
	cfg.Seed = 5

	out, err := NoiseEffect(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	// At full intensity every pixel is pushed to an extreme.
	sawLow, sawHigh := false, false
	for _, v := range out.data {
		switch v {
		case 0:
			sawLow = true
		case 255:
			sawHigh = true
		default:
			t.Fatalf("pixel value %d, want 0 or 255", v)
		}
	}
	if !sawLow || !sawHigh {
		t.Fatal("expected both salt and pepper pixels")
	}
}

func TestNoiseEffectConfigValidate(t *testing.T) {
	cfg := DefaultNoiseEffectConfig()
	cfg.Intensity = 3
	cfg.GrainSize = 100
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Intensity != 1 {
		t.Fatalf("intensity clamped to %v, want 1", cfg.Intensity)
	}
	if cfg.GrainSize != 5 {
		t.Fatalf("grain size clamped to %v, want 5", cfg.GrainSize)
	}

	bad := DefaultNoiseEffectConfig()
	bad.Type = NoiseType(99)
	if err := bad.Validate(); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("error = %v, want ErrInvalidParameter", err)
	}
}

func TestNoiseEffectGrainSizePatterns(t *testing.T) {
	src := gradientRaster(24, 18)
	for _, pattern := range []NoisePattern{NoiseRandom, NoisePerlin, NoiseCellular} {
		cfg := DefaultNoiseEffectConfig()
		cfg.Pattern = pattern
		cfg.GrainSize = 2.5
		cfg.Seed = 11
		out, err := NoiseEffect(src, cfg)
		if err != nil {
			t.Fatalf("%v: %v", pattern, err)
		}
		checkShape(t, src, out)
	}
}

func TestNoiseEffectNilRaster(t *testing.T) {
	if _, err := NoiseEffect(nil, DefaultNoiseEffectConfig()); !errors.Is(err, ErrNilRaster) {
		t.Fatalf("error = %v, want ErrNilRaster", err)
	}
}
