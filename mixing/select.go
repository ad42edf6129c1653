// SPDX-License-Identifier: EPL-2.0

package mixing

import "github.com/doyosae/speechprep/audio"

// Rand is the random source the mixing stage draws crop offsets and indices
// from. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// Select returns a new slice of exactly length samples.
//
// Shorter input is copied and zero-padded at the tail. Longer input is
// cropped at an offset drawn uniformly from [0, len(samples)-length], a fresh
// draw on every call. rng is only consulted when cropping. A non-positive
// length yields an empty slice.
func Select(rng Rand, samples []float64, length int) []float64 {
	if length <= 0 {
		return []float64{}
	}

	out := make([]float64, length)
	if len(samples) <= length {
		copy(out, samples)
		return out
	}

	offset := rng.IntN(len(samples) - length + 1)
	copy(out, samples[offset:offset+length])

	return out
}

// SelectBuffer applies Select to buf and keeps its sample rate.
func SelectBuffer(rng Rand, buf audio.Buffer, length int) audio.Buffer {
	return audio.NewBuffer(buf.SampleRate(), Select(rng, buf.Samples(), length))
}
