package blend

import (
	"errors"
	"image/color"
)

// ErrLengthMismatch is returned by Over when the buffers differ in length or
// are not a whole number of RGBA pixels.
var ErrLengthMismatch = errors.New("blend: buffer length mismatch")

// Pixel composites one overlay pixel onto a base pixel using straight-alpha
// source-over with the blend term of mode m. The overlay alpha is scaled by
// opacity, which is clamped to [0, 1].
//
//	base_a   = base.A/255
//	ov_a     = overlay.A/255 * opacity
//	result_a = ov_a + base_a*(1-ov_a)
//	final_c  = (B(base_c, ov_c)*ov_a + base_c*base_a*(1-ov_a)) / result_a
//
// A fully transparent overlay leaves the base unchanged.
func Pixel(base, overlay color.NRGBA, m Mode, opacity float64) color.NRGBA {
	dst := [4]byte{base.R, base.G, base.B, base.A}
	src := [4]byte{overlay.R, overlay.G, overlay.B, overlay.A}
	compositePixel(dst[:], src[:], m, clamp01(opacity))
	return color.NRGBA{R: dst[0], G: dst[1], B: dst[2], A: dst[3]}
}

// Over composites src onto dst in place, pixel by pixel. Both slices hold
// tightly packed straight-alpha RGBA8 samples of the same image size.
func Over(dst, src []byte, m Mode, opacity float64) error {
	if len(dst) != len(src) || len(dst)%4 != 0 {
		return ErrLengthMismatch
	}
	opacity = clamp01(opacity)
	if opacity == 0 {
		return nil
	}
	for i := 0; i < len(dst); i += 4 {
		compositePixel(dst[i:i+4:i+4], src[i:i+4:i+4], m, opacity)
	}
	return nil
}

// compositePixel writes the composite of src over dst into dst.
// Both slices must have length 4.
func compositePixel(dst, src []byte, m Mode, opacity float64) {
	ovA := unit(src[3]) * opacity
	if ovA == 0 {
		return
	}
	baseA := unit(dst[3])

	outA := ovA + baseA*(1-ovA)
	if outA == 0 {
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 0
		return
	}

	baseWeight := baseA * (1 - ovA)
	for c := 0; c < 3; c++ {
		baseC := unit(dst[c])
		ovC := unit(src[c])
		blended := Channel(m, baseC, ovC)
		dst[c] = toByte((blended*ovA + baseC*baseWeight) / outA)
	}
	dst[3] = toByte(outA)
}
