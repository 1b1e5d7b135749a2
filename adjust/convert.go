package adjust

import (
	"image"

	"github.com/anthonynsimon/bild/clone"

	"github.com/gogpu/paintmate"
)

// opaque copies the color channels of pm into an opaque RGBA image.
func opaque(pm *paintmate.Pixmap) *image.RGBA {
	img := image.NewRGBA(pm.Bounds())
	src := pm.Data()
	for i := 0; i < len(src); i += 4 {
		img.Pix[i+0] = src[i+0]
		img.Pix[i+1] = src[i+1]
		img.Pix[i+2] = src[i+2]
		img.Pix[i+3] = 0xff
	}
	return img
}

// withAlpha combines the color channels of an opaque result with the
// alpha channel of the source pixmap.
func withAlpha(img image.Image, src *paintmate.Pixmap) *paintmate.Pixmap {
	out := paintmate.NewPixmap(src.Width(), src.Height())
	dst, alpha := out.Data(), src.Data()
	b := img.Bounds()

	if rgba, ok := img.(*image.RGBA); ok && b.Dx() == src.Width() && b.Dy() == src.Height() {
		for y := range src.Height() {
			row := rgba.Pix[rgba.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := range src.Width() {
				i := (y*src.Width() + x) * 4
				copy(dst[i:i+3], row[x*4:x*4+3])
				dst[i+3] = alpha[i+3]
			}
		}
		return out
	}

	for y := range src.Height() {
		for x := range src.Width() {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := (y*src.Width() + x) * 4
			dst[i+0] = uint8(r >> 8)
			dst[i+1] = uint8(g >> 8)
			dst[i+2] = uint8(bl >> 8)
			dst[i+3] = alpha[i+3]
		}
	}
	return out
}

// colorOp runs fn on the color channels of pm, preserving alpha exactly.
func colorOp(pm *paintmate.Pixmap, fn func(image.Image) image.Image) *paintmate.Pixmap {
	if pm.Width() == 0 || pm.Height() == 0 {
		return pm.Clone()
	}
	return withAlpha(fn(opaque(pm)), pm)
}

// premultiplied converts pm to a premultiplied RGBA image.
func premultiplied(pm *paintmate.Pixmap) *image.RGBA {
	return clone.AsRGBA(pm)
}

// straight converts a premultiplied result back to a pixmap. Color values
// exceeding alpha, which sharpening kernels can produce, are clamped.
func straight(img *image.RGBA) *paintmate.Pixmap {
	b := img.Bounds()
	out := paintmate.NewPixmap(b.Dx(), b.Dy())
	dst := out.Data()
	for y := range b.Dy() {
		row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := range b.Dx() {
			s := row[x*4 : x*4+4]
			d := dst[(y*b.Dx()+x)*4:]
			a := uint32(s[3])
			if a == 0 {
				continue
			}
			for c := range 3 {
				v := min(uint32(s[c]), a)
				d[c] = uint8((v*0xff + a/2) / a)
			}
			d[3] = s[3]
		}
	}
	return out
}

// spatialOp runs fn on the premultiplied form of pm.
func spatialOp(pm *paintmate.Pixmap, fn func(image.Image) *image.RGBA) *paintmate.Pixmap {
	if pm.Width() == 0 || pm.Height() == 0 {
		return pm.Clone()
	}
	return straight(fn(premultiplied(pm)))
}
