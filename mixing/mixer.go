// SPDX-License-Identifier: EPL-2.0

package mixing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/doyosae/speechprep/audio"
)

// Result is one training pair. Both buffers have the clean segment's length
// and sample rate.
type Result struct {
	Noisy audio.Buffer
	Clean audio.Buffer
}

// Option configures a Mixer.
type Option func(*Mixer)

// WithReferenceLevel overrides ReferenceDBFS.
func WithReferenceLevel(dbfs float64) Option {
	return func(m *Mixer) { m.reference = dbfs }
}

// Mixer combines clean speech and noise at a requested SNR.
//
// A Mixer owns its random source and is not safe for concurrent use; give
// each worker its own.
type Mixer struct {
	rng       Rand
	reference float64
}

// NewMixer returns a Mixer drawing noise crop offsets from rng and
// normalizing to ReferenceDBFS unless WithReferenceLevel says otherwise.
func NewMixer(rng Rand, opts ...Option) *Mixer {
	m := &Mixer{rng: rng, reference: ReferenceDBFS}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Mix returns (clean' + k*noise', clean') where clean' and noise' are both
// normalized to the reference level and
//
//	k = sqrt(rms(clean) / rms(noise) / 10^(snrDB/20))
//
// uses the RMS values measured before normalization. noise is aligned to the
// length of clean first: padded with zeros when shorter, cropped at a random
// offset when longer.
//
// Silent clean input fails with ErrSilentSegment. Silent noise adds nothing,
// so Noisy equals Clean.
func (m *Mixer) Mix(clean, noise audio.Buffer, snrDB float64) (Result, error) {
	if clean.SampleRate() != noise.SampleRate() {
		return Result{}, fmt.Errorf("%w: clean %d Hz, noise %d Hz",
			ErrSampleRateMismatch, clean.SampleRate(), noise.SampleRate())
	}

	rate := clean.SampleRate()
	aligned := Select(m.rng, noise.Samples(), clean.Len())

	cleanNorm, rmsClean, err := Normalize(clean.Samples(), m.reference)
	if err != nil {
		return Result{}, fmt.Errorf("clean: %w", err)
	}

	noisy := make([]float64, len(cleanNorm))
	rmsNoise := RMS(aligned)
	if rmsNoise == 0 {
		copy(noisy, cleanNorm)
		return Result{
			Noisy: audio.NewBuffer(rate, noisy),
			Clean: audio.NewBuffer(rate, cleanNorm),
		}, nil
	}

	floats.Scale(Gain(m.reference)/rmsNoise, aligned)
	k := math.Sqrt(rmsClean / rmsNoise / Gain(snrDB))
	floats.AddScaledTo(noisy, cleanNorm, k, aligned)

	return Result{
		Noisy: audio.NewBuffer(rate, noisy),
		Clean: audio.NewBuffer(rate, cleanNorm),
	}, nil
}
