package paintmate

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrInvalidColor is returned by ParseHex for malformed color strings.
var ErrInvalidColor = errors.New("paintmate: invalid color")

// Common colors. Samples are straight (non-premultiplied) RGBA8.
var (
	Black   = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Red     = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	Green   = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	Blue    = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	Yellow  = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	Cyan    = color.NRGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta = color.NRGBA{R: 255, G: 0, B: 255, A: 255}

	// Transparent is the eraser color.
	Transparent = color.NRGBA{}

	// TransparentWhite fills new layers and the flatten accumulator.
	TransparentWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 0}
)

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", each with an
// optional leading '#'.
func ParseHex(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	var v [4]uint32
	v[3] = 255

	switch len(s) {
	case 3, 4: // RGB, RGBA
		for i := 0; i < len(s); i++ {
			n, ok := parseHex(s[i : i+1])
			if !ok {
				return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
			}
			v[i] = n * 17
		}
	case 6, 8: // RRGGBB, RRGGBBAA
		for i := 0; i < len(s)/2; i++ {
			n, ok := parseHex(s[i*2 : i*2+2])
			if !ok {
				return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
			}
			v[i] = n
		}
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	return color.NRGBA{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: uint8(v[3])}, nil
}

// Hex formats c as "#RRGGBBAA".
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// WithOpacity scales the alpha of c by opacity, clamped to [0, 1].
func WithOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(float64(c.A) * clampUnit(opacity))
	return c
}

// parseHex decodes a one- or two-digit hex number.
func parseHex(s string) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}

// clampUnit restricts x to [0, 1]. NaN maps to 0.
func clampUnit(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
