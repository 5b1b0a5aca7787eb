// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Clamp limits x to [-1, 1].
func Clamp(x float32) float32 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}

// FloatToPCM scales a normalized sample to a signed integer of bitDepth bits.
// The positive maximum is used for both signs to avoid overflow.
func FloatToPCM(x float32, bitDepth int) int {
	scale := float64(int64(1)<<(bitDepth-1) - 1)
	return int(math.Round(float64(Clamp(x)) * scale))
}

// PCMToFloat normalizes a signed integer sample of bitDepth bits to [-1, 1).
func PCMToFloat(v int, bitDepth int) float32 {
	return float32(float64(v) / float64(int64(1)<<(bitDepth-1)))
}
