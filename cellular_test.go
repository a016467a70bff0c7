package fx

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestCellularNoiseShape(t *testing.T) {
	src := gradientRaster(40, 30)
	for _, layout := range []CellLayout{LayoutGrid, LayoutHex} {
		cfg := DefaultCellularNoiseConfig()
		cfg.Layout = layout
		cfg.CircleSize = 16
		cfg.Seed = 2
		out, err := CellularNoise(src, cfg)
		if err != nil {
			t.Fatalf("layout %v: %v", layout, err)
		}
		checkShape(t, src, out)
	}
}

func TestCellularNoiseZeroOpacityIdentity(t *testing.T) {
	src := gradientRaster(32, 32)
	cfg := DefaultCellularNoiseConfig()
	cfg.Opacity = 0
	cfg.Seed = 4

	out, err := CellularNoise(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d := maxByteDiff(t, src, out); d != 0 {
		t.Fatalf("zero opacity changed pixels, max diff %d", d)
	}
}

func TestCellularNoiseSeedDeterminism(t *testing.T) {
	src := gradientRaster(48, 48)
	cfg := DefaultCellularNoiseConfig()
	cfg.Seed = 99

	a, err := CellularNoise(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := CellularNoise(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d := maxByteDiff(t, a, b); d != 0 {
		t.Fatalf("same seed produced different output, max diff %d", d)
	}
}

func TestCellularNoiseBlendModes(t *testing.T) {
	src := gradientRaster(24, 24)
	for mode := range cellBlendNames {
		cfg := DefaultCellularNoiseConfig()
		cfg.Mode = mode
		cfg.CircleSize = 8
		cfg.Seed = 1
		out, err := CellularNoise(src, cfg)
		if err != nil {
			t.Fatalf("%v: %v", mode, err)
		}
		checkShape(t, src, out)
	}
}

func TestCellularNoisePaletteColors(t *testing.T) {
	src := solidRaster(16, 16, Color{})
	cfg := DefaultCellularNoiseConfig()
	cfg.Noise = CellNoisePalette
	cfg.Palette = []Color{{R: 255}, {B: 255}}
	cfg.Mode = CellBlendAdd
	cfg.CenterNoise = 1
	cfg.EdgeNoise = 1
	cfg.Seed = 3

	out, err := CellularNoise(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	// On black with add blend, green can only come from the palette,
	// which has none.
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if out.At(x, y).G != 0 {
				t.Fatalf("green at (%d,%d) outside palette", x, y)
			}
		}
	}
}

func TestCellularNoisePaletteFallback(t *testing.T) {
	src := gradientRaster(16, 16)
	cfg := DefaultCellularNoiseConfig()
	cfg.Noise = CellNoisePalette
	cfg.PalettePath = filepath.Join(t.TempDir(), "missing.txt")
	cfg.Seed = 6

	out, err := CellularNoise(src, cfg)
	if err != nil {
		t.Fatal(err)
	}
	checkShape(t, src, out)
}

func TestCellularNoisePaletteFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.txt")
	content := "255 0 0\nnot a color\n0 0 255\n1 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	palette := LoadPalette(path)
	if len(palette) != 2 {
		t.Fatalf("loaded %d colors, want 2", len(palette))
	}
	if palette[0] != (Color{R: 255}) || palette[1] != (Color{B: 255}) {
		t.Fatalf("palette = %v", palette)
	}
}

func TestGradientProfile(t *testing.T) {
	tests := []struct {
		name         string
		dist, radius float64
		center, edge float64
		reverse      bool
		want         float64
	}{
		{name: "center", dist: 0, radius: 10, center: 0.2, edge: 0.8, want: 0.2},
		{name: "edge", dist: 10, radius: 10, center: 0.2, edge: 0.8, want: 0.8},
		{name: "midpoint", dist: 5, radius: 10, center: 0, edge: 1, want: 0.5},
		{name: "reversed center", dist: 0, radius: 10, center: 0.2, edge: 0.8, reverse: true, want: 0.8},
		{name: "faded out", dist: 15, radius: 10, center: 0, edge: 1, want: 0},
		{name: "half fade", dist: 12.5, radius: 10, center: 1, edge: 1, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gradientProfile(tt.dist, tt.radius, tt.center, tt.edge, tt.reverse)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("gradientProfile = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHexRowPitch(t *testing.T) {
	// Truncation happens in two stages: floor(size*0.866), then
	// floor(rh*0.9), which differs from a single floor(size*0.866*0.9)
	// for many sizes.
	tests := []struct {
		size int
		want int
	}{
		{size: 1, want: 1},
		{size: 8, want: 5},
		{size: 9, want: 6},
		{size: 16, want: 11},
		{size: 64, want: 49},
		{size: 128, want: 99},
	}

	for _, tt := range tests {
		if got := hexRowPitch(tt.size); got != tt.want {
			t.Errorf("hexRowPitch(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestCellularNoiseBadLayout(t *testing.T) {
	cfg := DefaultCellularNoiseConfig()
	cfg.Layout = CellLayout(5)
	if _, err := CellularNoise(gradientRaster(8, 8), cfg); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("error = %v, want ErrInvalidParameter", err)
	}
}
