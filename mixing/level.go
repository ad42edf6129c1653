// SPDX-License-Identifier: EPL-2.0

package mixing

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ReferenceDBFS is the loudness both streams are normalized to before mixing.
const ReferenceDBFS = -25.0

// Gain converts a dBFS level to a linear amplitude.
func Gain(dbfs float64) float64 {
	return math.Pow(10, dbfs/20)
}

// RMS returns sqrt(sum(x^2)/N), or 0 for an empty slice.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	return math.Sqrt(floats.Dot(samples, samples) / float64(len(samples)))
}

// Normalize scales samples so their RMS equals targetDBFS. It returns the
// scaled copy together with the RMS of the input.
func Normalize(samples []float64, targetDBFS float64) ([]float64, float64, error) {
	rms := RMS(samples)
	if rms == 0 {
		return nil, 0, ErrSilentSegment
	}

	out := make([]float64, len(samples))
	floats.ScaleTo(out, Gain(targetDBFS)/rms, samples)

	return out, rms, nil
}
