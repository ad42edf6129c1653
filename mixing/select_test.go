// SPDX-License-Identifier: EPL-2.0

package mixing

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/doyosae/speechprep/audio"
	"github.com/doyosae/speechprep/internal/audiotest"
)

// scriptedRand returns queued values, clamped to [0, n).
type scriptedRand struct {
	values []int
	calls  []int
}

func (r *scriptedRand) IntN(n int) int {
	r.calls = append(r.calls, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]

	return min(v, n-1)
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func TestSelect_Length(t *testing.T) {
	t.Parallel()

	const target = 64
	rng := newRand(1)

	for _, n := range []int{0, 1, target - 1, target, target + 1, 10 * target, 100_000} {
		got := Select(rng, audiotest.Ramp(n, 0.001), target)
		if len(got) != target {
			t.Errorf("len(Select(len=%d)) = %d, want %d", n, len(got), target)
		}
	}
}

func TestSelect_ZeroPadding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		n      int
		target int
	}{
		{"empty", 0, 8},
		{"one short", 7, 8},
		{"half", 4, 8},
		{"equal", 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := audiotest.Ramp(tt.n, 0.5)
			rng := &scriptedRand{}
			got := Select(rng, in, tt.target)

			if !slices.Equal(got[:tt.n], in) {
				t.Errorf("head = %v, want %v", got[:tt.n], in)
			}
			for i, v := range got[tt.n:] {
				if v != 0 {
					t.Errorf("tail[%d] = %v, want 0", i, v)
				}
			}
			if len(rng.calls) != 0 {
				t.Errorf("rng consulted %d times, want 0", len(rng.calls))
			}
		})
	}
}

func TestSelect_CropIsContiguous(t *testing.T) {
	t.Parallel()

	const n, target = 100, 10
	in := audiotest.Ramp(n, 1)
	rng := newRand(7)
	offsets := map[int]bool{}

	for range 500 {
		got := Select(rng, in, target)

		start := int(got[0]) - 1
		if start < 0 || start > n-target {
			t.Fatalf("crop starts at %d, outside [0, %d]", start, n-target)
		}
		if !slices.Equal(got, in[start:start+target]) {
			t.Fatalf("crop %v is not a contiguous run of the input", got)
		}
		offsets[start] = true
	}

	if len(offsets) < 20 {
		t.Errorf("saw %d distinct offsets in 500 draws, want a spread", len(offsets))
	}
}

func TestSelect_CropOffsetRangeIsInclusive(t *testing.T) {
	t.Parallel()

	in := audiotest.Ramp(12, 1)
	rng := &scriptedRand{values: []int{0, 1 << 30}}

	first := Select(rng, in, 10)
	last := Select(rng, in, 10)

	if first[0] != 1 {
		t.Errorf("lowest offset crop starts with %v, want 1", first[0])
	}
	if last[len(last)-1] != 12 {
		t.Errorf("highest offset crop ends with %v, want 12", last[len(last)-1])
	}
	if !slices.Equal(rng.calls, []int{3, 3}) {
		t.Errorf("IntN called with %v, want [3 3]", rng.calls)
	}
}

func TestSelect_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	in := audiotest.Ramp(4, 1)
	got := Select(&scriptedRand{}, in, 4)
	got[0] = 99

	if in[0] != 1 {
		t.Errorf("input modified through result: %v", in)
	}
}

func TestSelectBuffer_KeepsRate(t *testing.T) {
	t.Parallel()

	buf := audio.NewBuffer(16000, audiotest.Ramp(10, 1))
	got := SelectBuffer(newRand(1), buf, 32)

	if got.SampleRate() != 16000 || got.Len() != 32 {
		t.Errorf("SelectBuffer() = %d samples at %d Hz, want 32 at 16000", got.Len(), got.SampleRate())
	}
}

func BenchmarkSelect(b *testing.B) {
	rng := newRand(1)
	in := audiotest.Sine(48000, 16000, 440, 0.5)

	b.ReportAllocs()
	for b.Loop() {
		_ = Select(rng, in, 16384)
	}
}
