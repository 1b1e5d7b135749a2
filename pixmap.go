package paintmate

import (
	"bytes"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer of straight-alpha RGBA8
// samples, row-major with the origin at the top-left corner.
//
// len(Data()) == Width()*Height()*4 always holds; a Pixmap is never resized
// in place.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions, filled with
// zero samples. Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// NewPixmapFilled creates a pixmap with every pixel set to c.
func NewPixmapFilled(width, height int, c color.NRGBA) *Pixmap {
	p := NewPixmap(width, height)
	p.Clear(c)
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// InBounds reports whether (x, y) addresses a pixel of p.
func (p *Pixmap) InBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	if !p.InBounds(x, y) {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (p *Pixmap) GetPixel(x, y int) color.NRGBA {
	if !p.InBounds(x, y) {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.NRGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// Clone returns an independent copy of p.
func (p *Pixmap) Clone() *Pixmap {
	c := &Pixmap{width: p.width, height: p.height, data: make([]uint8, len(p.data))}
	copy(c.data, p.data)
	return c
}

// SameSize reports whether p and o have identical dimensions.
func (p *Pixmap) SameSize(o *Pixmap) bool {
	return p.width == o.width && p.height == o.height
}

// Equal reports whether p and o have the same size and samples.
func (p *Pixmap) Equal(o *Pixmap) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.SameSize(o) && bytes.Equal(p.data, o.data)
}

// ToImage converts the pixmap to an *image.NRGBA. The result does not share
// memory with p.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image, converting to straight alpha.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())

	// Fast path for NRGBA images with matching stride.
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == pm.width*4 {
		start := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y)
		copy(pm.data, nrgba.Pix[start:])
		return pm
	}

	dst := &image.NRGBA{Pix: pm.data, Stride: pm.width * 4, Rect: image.Rect(0, 0, pm.width, pm.height)}
	xdraw.Copy(dst, image.Point{}, img, bounds, xdraw.Src, nil)
	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, color.NRGBAModel.Convert(c).(color.NRGBA))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
