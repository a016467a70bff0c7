package fx

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"math"
)

// JPEGArtifactsConfig configures the compression artifact simulation.
type JPEGArtifactsConfig struct {
	// Intensity scales the artifact strength, 0 to 1. Zero encodes
	// once at high quality; one encodes three times at the lowest
	// quality the codec allows.
	Intensity float64
}

// DefaultJPEGArtifactsConfig returns a medium artifact strength.
func DefaultJPEGArtifactsConfig() JPEGArtifactsConfig {
	return JPEGArtifactsConfig{Intensity: 0.5}
}

// Validate clamps the intensity.
func (c *JPEGArtifactsConfig) Validate() error {
	c.Intensity = clamp01(c.Intensity)
	return nil
}

// JPEGArtifacts simulates lossy compression damage by re-encoding the
// image through the JPEG codec one or more times at reduced quality.
func JPEGArtifacts(src *Raster, cfg JPEGArtifactsConfig) (*Raster, error) {
	if src == nil {
		return nil, ErrNilRaster
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	quality := int(math.Round(90 - cfg.Intensity*89))
	if quality < 1 {
		quality = 1
	}
	iterations := 1 + int(math.Round(cfg.Intensity*2))

	cur := src
	for i := 0; i < iterations; i++ {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, cur.ToImage(), &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("fx: jpeg encode: %w", err)
		}
		img, err := jpeg.Decode(&buf)
		if err != nil {
			return nil, fmt.Errorf("fx: jpeg decode: %w", err)
		}
		next, err := FromImage(img)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	if cur == src {
		cur = src.Clone()
	}
	return cur, nil
}
