package adjust

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"

	"github.com/gogpu/paintmate"
)

// Brightness scales the color channels by 1+change. change is clamped to
// [-1, 1]; -1 yields black and 0 leaves the image unchanged.
func Brightness(pm *paintmate.Pixmap, change float64) *paintmate.Pixmap {
	change = clampSigned(change)
	if change == 0 {
		return pm.Clone()
	}
	return colorOp(pm, func(img image.Image) image.Image {
		return adjust.Brightness(img, change)
	})
}

// Contrast stretches (change > 0) or compresses (change < 0) the color
// channels around mid-grey. change is clamped to [-1, 1].
func Contrast(pm *paintmate.Pixmap, change float64) *paintmate.Pixmap {
	change = clampSigned(change)
	if change == 0 {
		return pm.Clone()
	}
	return colorOp(pm, func(img image.Image) image.Image {
		return adjust.Contrast(img, change)
	})
}

// HueSaturation rotates the hue by hue degrees and multiplies the
// saturation by saturation. The hue shift wraps modulo 360, so -90 and 270
// are the same rotation. Grey pixels have hue 0 and no saturation, which
// leaves them unchanged. A saturation factor of 0 produces greyscale.
func HueSaturation(pm *paintmate.Pixmap, hue, saturation float64) *paintmate.Pixmap {
	shift := wrapDegrees(hue)
	saturation = max(saturation, 0)
	if shift == 0 && saturation == 1 {
		return pm.Clone()
	}
	return colorOp(pm, func(img image.Image) image.Image {
		if shift != 0 {
			img = adjust.Hue(img, shift)
		}
		if saturation != 1 {
			img = adjust.Saturation(img, saturation-1)
		}
		return img
	})
}

// Gamma applies gamma correction; values above 1 brighten mid-tones.
// Non-positive values leave the image unchanged.
func Gamma(pm *paintmate.Pixmap, gamma float64) *paintmate.Pixmap {
	if !(gamma > 0) || gamma == 1 {
		return pm.Clone()
	}
	return colorOp(pm, func(img image.Image) image.Image {
		return adjust.Gamma(img, gamma)
	})
}

// Invert replaces every color channel c with 255-c.
func Invert(pm *paintmate.Pixmap) *paintmate.Pixmap {
	return colorOp(pm, func(img image.Image) image.Image {
		return effect.Invert(img)
	})
}

// Grayscale replaces each color with its luminance.
func Grayscale(pm *paintmate.Pixmap) *paintmate.Pixmap {
	return colorOp(pm, func(img image.Image) image.Image {
		return effect.Grayscale(img)
	})
}

// Sepia applies a sepia tone.
func Sepia(pm *paintmate.Pixmap) *paintmate.Pixmap {
	return colorOp(pm, func(img image.Image) image.Image {
		return effect.Sepia(img)
	})
}

func clampSigned(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(v, -1), 1)
}

// wrapDegrees rounds d to whole degrees in [0, 360).
func wrapDegrees(d float64) int {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	w := int(math.Round(math.Mod(d, 360)))
	if w < 0 {
		w += 360
	}
	return w % 360
}
