// Package fx provides a library of raster image filters for glitch and
// photographic effects.
//
// # Overview
//
// fx operates on dense RGB pixel buffers (the [Raster] type) and exposes
// each effect as an independent, stateless filter. A filter is configured
// through a typed config struct with validated ranges, and applied with a
// single call:
//
//	r, err := fx.FromImage(img)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg := fx.DefaultGaussianBlurConfig()
//	cfg.Radius = 4
//	out, err := fx.GaussianBlur(r, cfg)
//
// Every filter returns a new Raster of the same dimensions; the input is
// never mutated. Filters hold no state across calls, so independent calls
// are safe to run concurrently.
//
// # Filters
//
// The filter set covers noise synthesis (NoiseEffect, CellularNoise),
// channel surgery (ChannelMix, ChannelShift), lens simulation
// (ChromaticAberration), color grading (ColorFilter, CurvedHueShift,
// HistogramGlitch, ColorShiftExpansion), convolution (GaussianBlur,
// Sharpen), quantization (Posterize with optional dithering), block
// pixelation (Pixelate), and compression artifacts (JPEGArtifacts).
//
// # Randomness
//
// Filters that draw random numbers take a Seed parameter. A nonzero seed
// produces byte-identical output across calls; a zero seed draws a fresh
// seed per call. Filters never touch the global math/rand source.
//
// # Logging
//
// By default fx produces no log output. Call [SetLogger] to receive
// warnings such as a palette file falling back to RGB noise.
package fx
