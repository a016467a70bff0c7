package fx

import (
	"errors"
	"testing"
)

func TestHistogramGlitchIdentityCurves(t *testing.T) {
	src := gradientRaster(16, 16)
	cfg := HistogramGlitchConfig{
		Red:   ChannelCurve{Mode: CurveIdentity, Freq: 1},
		Green: ChannelCurve{Mode: CurveIdentity, Freq: 1},
		Blue:  ChannelCurve{Mode: CurveIdentity, Freq: 1},
		Gamma: 1,
	}

	out, err := HistogramGlitch(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d := maxByteDiff(t, src, out); d != 0 {
		t.Fatalf("identity curves changed pixels, max diff %d", d)
	}
}

func TestHistogramGlitchGammaEndpoints(t *testing.T) {
	src, _ := NewRaster(2, 1)
	src.Set(0, 0, Color{})
	src.Set(1, 0, Color{R: 255, G: 255, B: 255})

	cfg := HistogramGlitchConfig{
		Red:   ChannelCurve{Mode: CurveGamma, Freq: 1},
		Green: ChannelCurve{Mode: CurveGamma, Freq: 1},
		Blue:  ChannelCurve{Mode: CurveGamma, Freq: 1},
		Gamma: 0.5,
	}

	out, err := HistogramGlitch(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	// Gamma fixes the endpoints and brightens midtones for gamma < 1.
	if got := out.At(0, 0); got != (Color{}) {
		t.Fatalf("black moved: %v", got)
	}
	if got := out.At(1, 0); got != (Color{R: 255, G: 255, B: 255}) {
		t.Fatalf("white moved: %v", got)
	}
}

func TestHistogramGlitchGammaBrightensMidtones(t *testing.T) {
	src := solidRaster(2, 2, Color{R: 64, G: 64, B: 64})
	cfg := HistogramGlitchConfig{
		Red:   ChannelCurve{Mode: CurveGamma, Freq: 1},
		Green: ChannelCurve{Mode: CurveGamma, Freq: 1},
		Blue:  ChannelCurve{Mode: CurveGamma, Freq: 1},
		Gamma: 0.5,
	}
	out, err := HistogramGlitch(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	// (64/255)^0.5 * 255 = 127.7...
	if got := out.At(0, 0).R; got != 128 {
		t.Fatalf("gamma 0.5 of 64 = %d, want 128", got)
	}
}

func TestHistogramGlitchLogCurve(t *testing.T) {
	src := solidRaster(2, 2, Color{R: 255, G: 0, B: 255})
	cfg := HistogramGlitchConfig{
		Red:   ChannelCurve{Mode: CurveLog, Freq: 1},
		Green: ChannelCurve{Mode: CurveLog, Freq: 1},
		Blue:  ChannelCurve{Mode: CurveIdentity, Freq: 1},
		Gamma: 1,
	}
	out, err := HistogramGlitch(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	got := out.At(1, 1)
	// log2(1+1) = 1 keeps white at white; log2(1+0) = 0 keeps black.
	if got.R != 255 || got.G != 0 || got.B != 255 {
		t.Fatalf("log endpoints moved: %v", got)
	}
}

func TestHistogramGlitchSolarizeInRange(t *testing.T) {
	src := gradientRaster(16, 16)
	cfg := DefaultHistogramGlitchConfig()
	cfg.Red.Freq = 5
	cfg.Red.Phase = 1.5

	out, err := HistogramGlitch(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	checkShape(t, src, out)
}

func TestHistogramGlitchBadMode(t *testing.T) {
	cfg := DefaultHistogramGlitchConfig()
	cfg.Green.Mode = CurveMode(8)
	if _, err := HistogramGlitch(gradientRaster(4, 4), cfg); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("error = %v, want ErrInvalidParameter", err)
	}
}
