// SPDX-License-Identifier: EPL-2.0

package mixing

import (
	"errors"
	"math"
	"testing"

	"github.com/doyosae/speechprep/internal/audiotest"
)

func TestRMS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"zeros", []float64{0, 0, 0}, 0},
		{"constant", []float64{0.5, -0.5, 0.5, -0.5}, 0.5},
		{"3-4", []float64{3, 4}, math.Sqrt(12.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RMS(tt.in); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("RMS() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize_ReachesTarget(t *testing.T) {
	t.Parallel()

	inputs := map[string][]float64{
		"sine":       audiotest.Sine(16000, 16000, 440, 0.8),
		"quiet sine": audiotest.Sine(1000, 8000, 100, 1e-4),
		"ramp":       audiotest.Ramp(333, 0.01),
		"impulse":    {0, 0, 1, 0},
		"single":     {-0.3},
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out, rms, err := Normalize(in, ReferenceDBFS)
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if want := audiotest.RMS(in); math.Abs(rms-want) > 1e-12 {
				t.Errorf("returned rms = %v, want input rms %v", rms, want)
			}
			if got, want := audiotest.RMS(out), math.Pow(10, -25.0/20); math.Abs(got-want) > 1e-9 {
				t.Errorf("output rms = %v, want %v", got, want)
			}
		})
	}
}

func TestNormalize_Silent(t *testing.T) {
	t.Parallel()

	for _, in := range [][]float64{nil, {}, make([]float64, 100)} {
		if _, _, err := Normalize(in, ReferenceDBFS); !errors.Is(err, ErrSilentSegment) {
			t.Errorf("Normalize(%d zeros) error = %v, want ErrSilentSegment", len(in), err)
		}
	}
}

func TestNormalize_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	in := []float64{0.1, 0.2, 0.3}
	if _, _, err := Normalize(in, -10); err != nil {
		t.Fatal(err)
	}
	if in[0] != 0.1 || in[1] != 0.2 || in[2] != 0.3 {
		t.Errorf("input modified: %v", in)
	}
}

func TestGain(t *testing.T) {
	t.Parallel()

	if g := Gain(0); g != 1 {
		t.Errorf("Gain(0) = %v, want 1", g)
	}
	if g := Gain(-20); math.Abs(g-0.1) > 1e-15 {
		t.Errorf("Gain(-20) = %v, want 0.1", g)
	}
}
