package fx

import (
	"image"
	"image/png"
	"os"
)

// Raster represents a rectangular RGB pixel buffer. The origin is the
// top-left corner; samples are stored row-major, three bytes per pixel.
//
// Filters treat their input Raster as immutable: every filter allocates
// a fresh output buffer and never writes to the input.
type Raster struct {
	width  int
	height int
	data   []uint8 // RGB format, 3 bytes per pixel
}

// NewRaster creates a new zeroed raster with the given dimensions.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Raster{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*3),
	}, nil
}

// Width returns the width of the raster.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the height of the raster.
func (r *Raster) Height() int {
	return r.height
}

// Data returns the raw pixel data (RGB format).
func (r *Raster) Data() []uint8 {
	return r.data
}

// At returns the color of a single pixel. Out-of-bounds coordinates
// return black.
func (r *Raster) At(x, y int) Color {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return Color{}
	}
	i := (y*r.width + x) * 3
	return Color{R: r.data[i], G: r.data[i+1], B: r.data[i+2]}
}

// Set sets the color of a single pixel. Out-of-bounds coordinates are
// ignored.
func (r *Raster) Set(x, y int, c Color) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	i := (y*r.width + x) * 3
	r.data[i] = c.R
	r.data[i+1] = c.G
	r.data[i+2] = c.B
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	out := &Raster{
		width:  r.width,
		height: r.height,
		data:   make([]uint8, len(r.data)),
	}
	copy(out.data, r.data)
	return out
}

// sameShape reports whether two rasters have identical dimensions.
func (r *Raster) sameShape(o *Raster) bool {
	return r.width == o.width && r.height == o.height
}

// plane extracts one channel (0=R, 1=G, 2=B) as a float64 plane in the
// [0, 255] byte domain. The plane is a fresh allocation owned by the
// caller.
func (r *Raster) plane(c int) []float64 {
	p := make([]float64, r.width*r.height)
	for i := range p {
		p[i] = float64(r.data[i*3+c])
	}
	return p
}

// setPlane writes a float64 plane back into one channel, clamping each
// sample to [0, 255].
func (r *Raster) setPlane(c int, p []float64) {
	for i, v := range p {
		r.data[i*3+c] = uint8(clamp255(v) + 0.5)
	}
}

// FromImage converts a standard image.Image into a Raster, normalizing
// the channel layout to RGB. Alpha is dropped; grayscale images are
// triplicated across R, G, B.
func FromImage(img image.Image) (*Raster, error) {
	if img == nil {
		return nil, ErrNilRaster
	}
	b := img.Bounds()
	out, err := NewRaster(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			out.data[i] = uint8(cr >> 8)
			out.data[i+1] = uint8(cg >> 8)
			out.data[i+2] = uint8(cb >> 8)
			i += 3
		}
	}
	return out, nil
}

// ToImage converts the raster to a standard *image.NRGBA with full
// opacity.
func (r *Raster) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	for i := 0; i < r.width*r.height; i++ {
		img.Pix[i*4] = r.data[i*3]
		img.Pix[i*4+1] = r.data[i*3+1]
		img.Pix[i*4+2] = r.data[i*3+2]
		img.Pix[i*4+3] = 255
	}
	return img
}

// SavePNG writes the raster to a PNG file.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, r.ToImage())
}
