// Package blend implements the separable blend modes and the straight-alpha
// source-over compositing used to flatten a layer stack.
//
// All blend functions operate on normalized channel values in [0, 1].
// Pixel data is 8-bit RGBA with straight (non-premultiplied) alpha.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
//   - Porter-Duff: "Compositing Digital Images" (1984)
package blend

import (
	"fmt"
	"strings"
)

// Mode selects the per-channel blend function B(a, o) applied when a layer
// is composited onto the layers beneath it.
//
// Mode is a closed enumeration: every value in [ModeNormal, ModeExclusion]
// has a case in Channel, and no other values are valid.
type Mode uint8

const (
	// ModeNormal shows the overlay color. B(a, o) = o
	ModeNormal Mode = iota
	// ModeMultiply darkens. B(a, o) = a * o
	ModeMultiply
	// ModeScreen lightens. B(a, o) = 1 - (1-a)(1-o)
	ModeScreen
	// ModeOverlay multiplies or screens depending on the base.
	ModeOverlay
	// ModeSoftLight darkens or lightens depending on the overlay, softly.
	ModeSoftLight
	// ModeHardLight is Overlay with the operands swapped.
	ModeHardLight
	// ModeColorDodge brightens the base to reflect the overlay.
	ModeColorDodge
	// ModeColorBurn darkens the base to reflect the overlay.
	ModeColorBurn
	// ModeDarken keeps the darker channel. B(a, o) = min(a, o)
	ModeDarken
	// ModeLighten keeps the lighter channel. B(a, o) = max(a, o)
	ModeLighten
	// ModeDifference subtracts the darker channel. B(a, o) = |a - o|
	ModeDifference
	// ModeExclusion is a lower-contrast Difference. B(a, o) = a + o - 2ao
	ModeExclusion

	modeCount
)

var modeNames = [modeCount]string{
	ModeNormal:     "Normal",
	ModeMultiply:   "Multiply",
	ModeScreen:     "Screen",
	ModeOverlay:    "Overlay",
	ModeSoftLight:  "SoftLight",
	ModeHardLight:  "HardLight",
	ModeColorDodge: "ColorDodge",
	ModeColorBurn:  "ColorBurn",
	ModeDarken:     "Darken",
	ModeLighten:    "Lighten",
	ModeDifference: "Difference",
	ModeExclusion:  "Exclusion",
}

const unknownMode = "Unknown"

// String returns the canonical name of the mode.
func (m Mode) String() string {
	if !m.IsValid() {
		return unknownMode
	}
	return modeNames[m]
}

// IsValid reports whether m is one of the defined modes.
func (m Mode) IsValid() bool {
	return m < modeCount
}

// Modes returns every defined mode in declaration order.
func Modes() []Mode {
	modes := make([]Mode, 0, modeCount)
	for m := ModeNormal; m < modeCount; m++ {
		modes = append(modes, m)
	}
	return modes
}

// ParseMode looks up a mode by name. Matching ignores case, spaces, dashes
// and underscores, so "soft-light", "Soft Light" and "softlight" all parse.
func ParseMode(name string) (Mode, error) {
	key := normalizeName(name)
	for m, n := range modeNames {
		if strings.ToLower(n) == key {
			return Mode(m), nil
		}
	}
	return ModeNormal, fmt.Errorf("blend: unknown mode %q", name)
}

func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch r {
		case ' ', '-', '_':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("blend: invalid mode %d", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
