// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a normalized sample to 16-bit PCM.
//
// x is clamped to [-1, 1]. Negative values are scaled by 32768 and the rest
// by 32767, so -1 maps to math.MinInt16 and 1 to math.MaxInt16 without
// overflow. The result is truncated toward zero, not rounded. NaN maps to 0.
func Float32ToInt16(x float32) int16 {
	switch {
	case math.IsNaN(float64(x)):
		return 0
	case x > 1:
		x = 1
	case x < -1:
		x = -1
	}

	if x < 0 {
		return int16(x * 32768.0)
	}

	return int16(x * 32767.0)
}

// Int16ToFloat32 converts a 16-bit PCM sample to a float in [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// IntToFloat32 normalizes a signed integer sample of the given bit depth.
// Unknown bit depths are treated as 16-bit.
func IntToFloat32(v int, bitDepth int) float32 {
	return float32(v) / FullScale(bitDepth)
}

// FullScale is the magnitude of the most negative sample at bitDepth.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}
