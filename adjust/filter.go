package adjust

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"

	"github.com/gogpu/paintmate"
)

// Blur applies a Gaussian blur with the given radius in pixels. A
// non-positive radius returns an unchanged copy.
func Blur(pm *paintmate.Pixmap, radius float64) *paintmate.Pixmap {
	if !(radius > 0) {
		return pm.Clone()
	}
	return spatialOp(pm, func(img image.Image) *image.RGBA {
		return blur.Gaussian(img, radius)
	})
}

// BoxBlur applies a box blur with the given radius in pixels.
func BoxBlur(pm *paintmate.Pixmap, radius float64) *paintmate.Pixmap {
	if !(radius > 0) {
		return pm.Clone()
	}
	return spatialOp(pm, func(img image.Image) *image.RGBA {
		return blur.Box(img, radius)
	})
}

// Sharpen applies a 3x3 sharpening kernel.
func Sharpen(pm *paintmate.Pixmap) *paintmate.Pixmap {
	return spatialOp(pm, effect.Sharpen)
}

// EdgeDetect highlights edges using a Laplacian kernel of radius 1.
func EdgeDetect(pm *paintmate.Pixmap) *paintmate.Pixmap {
	return spatialOp(pm, func(img image.Image) *image.RGBA {
		return effect.EdgeDetection(img, 1)
	})
}

// Emboss applies a 3x3 emboss kernel.
func Emboss(pm *paintmate.Pixmap) *paintmate.Pixmap {
	return spatialOp(pm, effect.Emboss)
}

// Median replaces each pixel with the median of its neighbourhood.
func Median(pm *paintmate.Pixmap, radius float64) *paintmate.Pixmap {
	if !(radius > 0) {
		return pm.Clone()
	}
	return spatialOp(pm, func(img image.Image) *image.RGBA {
		return effect.Median(img, radius)
	})
}
