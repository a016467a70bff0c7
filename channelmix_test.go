package fx

import (
	"errors"
	"testing"
)

func TestChannelMixSwap(t *testing.T) {
	src := solidRaster(4, 4, Color{R: 10, G: 20, B: 30})
	tests := []struct {
		name string
		pair SwapPair
		want Color
	}{
		{name: "red-green", pair: SwapRedGreen, want: Color{R: 20, G: 10, B: 30}},
		{name: "red-blue", pair: SwapRedBlue, want: Color{R: 30, G: 20, B: 10}},
		{name: "green-blue", pair: SwapGreenBlue, want: Color{R: 10, G: 30, B: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ChannelMix(src, ChannelMixConfig{Op: OpSwap, Pair: tt.pair})
			if err != nil {
				t.Fatal(err)
			}
			if got := out.At(2, 2); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChannelMixInvertIsolation(t *testing.T) {
	src := solidRaster(4, 4, Color{R: 100, G: 150, B: 200})
	out, err := ChannelMix(src, ChannelMixConfig{Op: OpInvert, Channel: ChannelG})
	if err != nil {
		t.Fatal(err)
	}
	want := Color{R: 100, G: 105, B: 200}
	if got := out.At(0, 0); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestChannelMixAdjust(t *testing.T) {
	src := solidRaster(4, 4, Color{R: 100, G: 100, B: 100})
	tests := []struct {
		name   string
		factor float64
		want   uint8
	}{
		{name: "identity", factor: 1, want: 100},
		{name: "half", factor: 0.5, want: 50},
		{name: "double", factor: 2, want: 200},
		{name: "saturates", factor: 3, want: 255},
		{name: "negative clamped to zero", factor: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ChannelMix(src, ChannelMixConfig{
				Op: OpAdjust, Channel: ChannelR, Factor: tt.factor,
			})
			if err != nil {
				t.Fatal(err)
			}
			got := out.At(1, 1)
			if got.R != tt.want {
				t.Fatalf("R = %d, want %d", got.R, tt.want)
			}
			if got.G != 100 || got.B != 100 {
				t.Fatalf("untouched channels changed: %v", got)
			}
		})
	}
}

func TestChannelMixAdjustIdentityExact(t *testing.T) {
	src := gradientRaster(16, 16)
	out, err := ChannelMix(src, ChannelMixConfig{Op: OpAdjust, Channel: ChannelB, Factor: 1})
	if err != nil {
		t.Fatal(err)
	}
	if d := maxByteDiff(t, src, out); d != 0 {
		t.Fatalf("factor 1 changed pixels, max diff %d", d)
	}
}

func TestChannelMixNegative(t *testing.T) {
	src := solidRaster(4, 4, Color{R: 0, G: 128, B: 255})
	out, err := ChannelMix(src, ChannelMixConfig{Op: OpNegative})
	if err != nil {
		t.Fatal(err)
	}
	want := Color{R: 255, G: 127, B: 0}
	if got := out.At(3, 3); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestChannelMixUnknownOp(t *testing.T) {
	cfg := ChannelMixConfig{Op: ChannelOp(42)}
	if _, err := ChannelMix(gradientRaster(2, 2), cfg); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("error = %v, want ErrInvalidParameter", err)
	}
}
