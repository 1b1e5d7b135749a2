package blend

import "math"

// Channel evaluates the blend function B(a, o) for one normalized channel,
// where a is the base (backdrop) value and o is the overlay value.
// Invalid modes behave like ModeNormal.
func Channel(m Mode, a, o float64) float64 {
	switch m {
	case ModeNormal:
		return o
	case ModeMultiply:
		return a * o
	case ModeScreen:
		return screen(a, o)
	case ModeOverlay:
		return hardLight(o, a)
	case ModeSoftLight:
		return softLight(a, o)
	case ModeHardLight:
		return hardLight(a, o)
	case ModeColorDodge:
		return colorDodge(a, o)
	case ModeColorBurn:
		return colorBurn(a, o)
	case ModeDarken:
		return math.Min(a, o)
	case ModeLighten:
		return math.Max(a, o)
	case ModeDifference:
		return math.Abs(a - o)
	case ModeExclusion:
		return a + o - 2*a*o
	default:
		return o
	}
}

// screen: 1 - (1-a)(1-o)
func screen(a, o float64) float64 {
	return 1 - (1-a)*(1-o)
}

// hardLight multiplies or screens depending on o.
// Overlay is hardLight with the operands swapped, so the branch is on the
// base value there.
func hardLight(a, o float64) float64 {
	if o < 0.5 {
		return 2 * a * o
	}
	return 1 - 2*(1-a)*(1-o)
}

// softLight follows the W3C definition.
func softLight(a, o float64) float64 {
	if o < 0.5 {
		return a - (1-2*o)*a*(1-a)
	}
	return a + (2*o-1)*(softLightG(a)-a)
}

func softLightG(a float64) float64 {
	if a <= 0.25 {
		return ((16*a-12)*a + 4) * a
	}
	return math.Sqrt(a)
}

func colorDodge(a, o float64) float64 {
	if o >= 1 {
		return 1
	}
	return math.Min(1, a/(1-o))
}

func colorBurn(a, o float64) float64 {
	if o <= 0 {
		return 0
	}
	return 1 - math.Min(1, (1-a)/o)
}
