package blend

import "math"

// unit normalizes an 8-bit sample to [0, 1].
func unit(v byte) float64 {
	return float64(v) / 255
}

// toByte rounds a normalized value to the nearest 8-bit sample,
// clamping to [0, 255].
func toByte(v float64) byte {
	v = math.Round(v * 255)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}

// clamp01 restricts v to [0, 1]. NaN maps to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
