package adjust

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/transform"

	"github.com/gogpu/paintmate"
)

// Resize resamples pm to width x height with a Lanczos filter.
// Non-positive dimensions return an empty pixmap.
func Resize(pm *paintmate.Pixmap, width, height int) *paintmate.Pixmap {
	if width <= 0 || height <= 0 {
		return paintmate.NewPixmap(0, 0)
	}
	if width == pm.Width() && height == pm.Height() {
		return pm.Clone()
	}
	return spatialOp(pm, func(img image.Image) *image.RGBA {
		return transform.Resize(img, width, height, transform.Lanczos)
	})
}

// Rotate rotates pm clockwise by angle degrees around its center, growing
// the canvas to fit. Quarter turns are exact.
func Rotate(pm *paintmate.Pixmap, angle float64) *paintmate.Pixmap {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return pm.Clone()
	}
	if math.Mod(angle, 90) == 0 {
		switch wrapDegrees(angle) {
		case 0:
			return pm.Clone()
		case 90:
			return Rotate90(pm)
		case 180:
			return Rotate180(pm)
		case 270:
			return Rotate270(pm)
		}
	}
	return spatialOp(pm, func(img image.Image) *image.RGBA {
		return transform.Rotate(img, angle, &transform.RotationOptions{ResizeBounds: true})
	})
}

// Crop returns the part of pm inside r, clipped to the pixmap bounds.
func Crop(pm *paintmate.Pixmap, r image.Rectangle) *paintmate.Pixmap {
	r = r.Intersect(pm.Bounds())
	out := paintmate.NewPixmap(r.Dx(), r.Dy())
	src, dst := pm.Data(), out.Data()
	for y := range r.Dy() {
		s := ((r.Min.Y+y)*pm.Width() + r.Min.X) * 4
		copy(dst[y*r.Dx()*4:(y+1)*r.Dx()*4], src[s:s+r.Dx()*4])
	}
	return out
}

// Rotate90 rotates pm a quarter turn clockwise.
func Rotate90(pm *paintmate.Pixmap) *paintmate.Pixmap {
	w, h := pm.Width(), pm.Height()
	return remap(pm, h, w, func(x, y int) (int, int) {
		return y, h - 1 - x
	})
}

// Rotate180 rotates pm a half turn.
func Rotate180(pm *paintmate.Pixmap) *paintmate.Pixmap {
	w, h := pm.Width(), pm.Height()
	return remap(pm, w, h, func(x, y int) (int, int) {
		return w - 1 - x, h - 1 - y
	})
}

// Rotate270 rotates pm a quarter turn counter-clockwise.
func Rotate270(pm *paintmate.Pixmap) *paintmate.Pixmap {
	w, h := pm.Width(), pm.Height()
	return remap(pm, h, w, func(x, y int) (int, int) {
		return w - 1 - y, x
	})
}

// FlipHorizontal mirrors pm left to right.
func FlipHorizontal(pm *paintmate.Pixmap) *paintmate.Pixmap {
	w, h := pm.Width(), pm.Height()
	return remap(pm, w, h, func(x, y int) (int, int) {
		return w - 1 - x, y
	})
}

// FlipVertical mirrors pm top to bottom.
func FlipVertical(pm *paintmate.Pixmap) *paintmate.Pixmap {
	w, h := pm.Width(), pm.Height()
	return remap(pm, w, h, func(x, y int) (int, int) {
		return x, h - 1 - y
	})
}

// remap builds a width x height pixmap whose pixel (x, y) is the source
// pixel at src(x, y). Pixels are moved without resampling, so straight
// alpha values survive unchanged.
func remap(pm *paintmate.Pixmap, width, height int, src func(x, y int) (int, int)) *paintmate.Pixmap {
	out := paintmate.NewPixmap(width, height)
	in, dst := pm.Data(), out.Data()
	for y := range height {
		for x := range width {
			sx, sy := src(x, y)
			s := (sy*pm.Width() + sx) * 4
			d := (y*width + x) * 4
			copy(dst[d:d+4], in[s:s+4])
		}
	}
	return out
}
