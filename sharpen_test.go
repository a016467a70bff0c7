package fx

import (
	"errors"
	"testing"
)

func TestSharpenConstantUnchanged(t *testing.T) {
	src := solidRaster(10, 10, Color{R: 90, G: 90, B: 90})
	for _, method := range []SharpenMethod{
		SharpenUnsharpMask, SharpenHighPass, SharpenEdgeEnhance, SharpenCustom,
	} {
		cfg := DefaultSharpenConfig()
		cfg.Method = method
		out, err := Sharpen(src, cfg)
		if err != nil {
			t.Fatalf("%v: %v", method, err)
		}
		if d := maxByteDiff(t, src, out); d > 1 {
			t.Fatalf("%v on constant image max diff %d", method, d)
		}
	}
}

func TestSharpenIncreasesEdgeContrast(t *testing.T) {
	// Vertical step edge.
	src, _ := NewRaster(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			v := uint8(80)
			if x >= 5 {
				v = 170
			}
			src.Set(x, y, Color{R: v, G: v, B: v})
		}
	}

	cfg := DefaultSharpenConfig()
	cfg.Intensity = 2
	out, err := Sharpen(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	// Unsharp masking overshoots on both sides of the edge.
	if out.At(4, 5).R >= src.At(4, 5).R {
		t.Fatalf("dark side not darkened: %d", out.At(4, 5).R)
	}
	if out.At(5, 5).R <= src.At(5, 5).R {
		t.Fatalf("bright side not brightened: %d", out.At(5, 5).R)
	}
}

func TestSharpenZeroIntensityUnsharpIdentity(t *testing.T) {
	src := gradientRaster(12, 12)
	cfg := DefaultSharpenConfig()
	cfg.Intensity = 0

	out, err := Sharpen(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d := maxByteDiff(t, src, out); d > 1 {
		t.Fatalf("zero intensity max diff %d", d)
	}
}

func TestSharpenThresholdSuppressesFlatAreas(t *testing.T) {
	src := gradientRaster(16, 16)
	cfg := DefaultSharpenConfig()
	cfg.Intensity = 3
	cfg.Threshold = 255

	out, err := Sharpen(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	// A maximal threshold rejects every mask contribution.
	if d := maxByteDiff(t, src, out); d > 1 {
		t.Fatalf("threshold 255 max diff %d", d)
	}
}

func TestSharpenCustomKernels(t *testing.T) {
	src := gradientRaster(9, 9)
	for _, k := range []SharpenKernel{
		KernelLaplacian, KernelSobel, KernelPrewitt, KernelSharpen,
	} {
		cfg := DefaultSharpenConfig()
		cfg.Method = SharpenCustom
		cfg.Kernel = k
		out, err := Sharpen(src, cfg)
		if err != nil {
			t.Fatalf("%v: %v", k, err)
		}
		checkShape(t, src, out)
	}
}

func TestSharpenBadMethod(t *testing.T) {
	cfg := DefaultSharpenConfig()
	cfg.Method = SharpenMethod(9)
	if _, err := Sharpen(gradientRaster(4, 4), cfg); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("error = %v, want ErrInvalidParameter", err)
	}
}
