package paintmate

import "github.com/gogpu/paintmate/internal/blend"

// BlendMode selects how a layer's colors combine with the layers beneath it.
// The set of modes is closed; see the constants below.
type BlendMode = blend.Mode

// Blend modes. Each applies a per-channel function B(a, o) of the base
// channel a and the overlay channel o, both in [0, 1].
const (
	// BlendNormal shows the overlay. B = o
	BlendNormal = blend.ModeNormal
	// BlendMultiply darkens. B = a*o
	BlendMultiply = blend.ModeMultiply
	// BlendScreen lightens. B = 1-(1-a)(1-o)
	BlendScreen = blend.ModeScreen
	// BlendOverlay multiplies dark bases and screens light ones.
	BlendOverlay = blend.ModeOverlay
	// BlendSoftLight is the W3C soft light.
	BlendSoftLight = blend.ModeSoftLight
	// BlendHardLight multiplies or screens depending on the overlay.
	BlendHardLight = blend.ModeHardLight
	// BlendColorDodge brightens the base. B = min(1, a/(1-o))
	BlendColorDodge = blend.ModeColorDodge
	// BlendColorBurn darkens the base. B = 1-min(1, (1-a)/o)
	BlendColorBurn = blend.ModeColorBurn
	// BlendDarken keeps the darker channel.
	BlendDarken = blend.ModeDarken
	// BlendLighten keeps the lighter channel.
	BlendLighten = blend.ModeLighten
	// BlendDifference is |a-o|.
	BlendDifference = blend.ModeDifference
	// BlendExclusion is a+o-2ao.
	BlendExclusion = blend.ModeExclusion
)

// BlendModes returns all blend modes in declaration order.
func BlendModes() []BlendMode {
	return blend.Modes()
}

// ParseBlendMode looks up a blend mode by name, ignoring case and
// separators ("soft-light", "SoftLight").
func ParseBlendMode(name string) (BlendMode, error) {
	return blend.ParseMode(name)
}
