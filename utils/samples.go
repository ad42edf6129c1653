// SPDX-License-Identifier: EPL-2.0

// Package utils holds sample format conversions shared by the codecs.
package utils

import "math"

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// FullScale returns the magnitude that maps to 1.0 for signed PCM of the
// given bit depth, e.g. 32768 for 16-bit.
func FullScale(bitDepth int) float32 {
	if bitDepth <= 0 || bitDepth > 32 {
		return 32768.0
	}

	return float32(uint64(1) << (bitDepth - 1))
}

// IntToFloat32 converts a signed PCM integer sample to [-1, 1).
func IntToFloat32(v, bitDepth int) float32 {
	return float32(float64(v) / float64(FullScale(bitDepth)))
}

// Float32Bits stores the IEEE-754 bits of f in an int, the form go-audio's
// 32-bit encoder writes verbatim.
func Float32Bits(f float32) int {
	return int(int32(math.Float32bits(f)))
}

// Float32FromBits is the inverse of Float32Bits.
func Float32FromBits(v int) float32 {
	return math.Float32frombits(uint32(int32(v)))
}
