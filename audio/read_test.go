// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/doyosae/speechprep/internal/audiotest"
)

// stallSource never produces data and never ends.
type stallSource struct{}

func (stallSource) SampleRate() int                    { return 8000 }
func (stallSource) Channels() int                      { return 1 }
func (stallSource) ReadSamples([]float32) (int, error) { return 0, nil }
func (stallSource) Close() error                       { return nil }

func TestReadMono_SameRateKeepsLength(t *testing.T) {
	t.Parallel()

	buf, err := ReadMono(audiotest.NewSineSource(16000, 1, 32000, 220), 16000)
	if err != nil {
		t.Fatalf("ReadMono() error = %v", err)
	}
	if buf.Len() != 32000 {
		t.Errorf("Len() = %d, want 32000", buf.Len())
	}
	if buf.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", buf.SampleRate())
	}
}

func TestReadMono_NativeRate(t *testing.T) {
	t.Parallel()

	buf, err := ReadMono(audiotest.NewSilentSource(22050, 2, 500), 0)
	if err != nil {
		t.Fatalf("ReadMono() error = %v", err)
	}
	if buf.SampleRate() != 22050 || buf.Len() != 500 {
		t.Errorf("got rate %d len %d, want 22050 / 500", buf.SampleRate(), buf.Len())
	}
}

func TestReadMono_StereoResampled(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(48000, 2, 48000, func(_, ch int) float32 {
		return float32(ch) * 0.5
	})

	buf, err := ReadMono(src, 16000)
	if err != nil {
		t.Fatalf("ReadMono() error = %v", err)
	}
	if buf.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", buf.SampleRate())
	}
	if buf.Len() < 15990 || buf.Len() > 16000 {
		t.Errorf("Len() = %d, want ≈16000", buf.Len())
	}
	for i, s := range buf.Samples() {
		if math.Abs(s-0.25) > 1e-5 {
			t.Fatalf("sample[%d] = %v, want 0.25", i, s)
		}
	}
}

func TestReadMono_Errors(t *testing.T) {
	t.Parallel()

	if _, err := ReadMono(audiotest.NewSilentSource(8000, 1, 10), -1); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("negative rate error = %v, want ErrInvalidRate", err)
	}
	if _, err := ReadMono(audiotest.NewSilentSource(0, 1, 10), 8000); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("zero source rate error = %v, want ErrInvalidRate", err)
	}
	if _, err := ReadMono(stallSource{}, 8000); !errors.Is(err, ErrNoProgress) {
		t.Errorf("stalled source error = %v, want ErrNoProgress", err)
	}
}
