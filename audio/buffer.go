// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// Buffer is a mono block of samples at a fixed sample rate.
//
// Buffer is value-like: the rate cannot change after construction and none of
// the packages in this module mutate the samples of a Buffer they receive.
type Buffer struct {
	samples []float64
	rate    int
}

// NewBuffer wraps samples without copying. The caller hands over ownership.
func NewBuffer(rate int, samples []float64) Buffer {
	return Buffer{samples: samples, rate: rate}
}

func (b Buffer) SampleRate() int { return b.rate }
func (b Buffer) Len() int        { return len(b.samples) }

// Samples exposes the underlying slice. Treat it as read-only.
func (b Buffer) Samples() []float64 { return b.samples }

// Duration of the buffer at its sample rate.
func (b Buffer) Duration() time.Duration {
	if b.rate <= 0 {
		return 0
	}

	return time.Duration(len(b.samples)) * time.Second / time.Duration(b.rate)
}

// Float32 returns a float32 copy of the samples, the on-disk representation
// used for dataset output.
func (b Buffer) Float32() []float32 {
	out := make([]float32, len(b.samples))
	for i, s := range b.samples {
		out[i] = float32(s)
	}

	return out
}
