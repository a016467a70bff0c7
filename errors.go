package fx

import "errors"

// Package errors for fx filters.
var (
	// ErrNilRaster is returned when a filter receives a nil input raster.
	ErrNilRaster = errors.New("fx: nil input raster")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("fx: invalid dimensions")

	// ErrInvalidParameter is returned when a config value is outside its
	// documented range and cannot be clamped, or an enum value is unknown.
	ErrInvalidParameter = errors.New("fx: invalid parameter")

	// ErrShapeMismatch is returned when two rasters that must share
	// dimensions do not.
	ErrShapeMismatch = errors.New("fx: raster shape mismatch")

	// ErrMissingOverlay is returned by ColorFilter when the custom filter
	// type is selected without an overlay raster.
	ErrMissingOverlay = errors.New("fx: custom filter type requires an overlay raster")

	// ErrEmptyPalette is returned when palette noise is requested with no
	// palette loaded.
	ErrEmptyPalette = errors.New("fx: palette noise requires a non-empty palette")
)
