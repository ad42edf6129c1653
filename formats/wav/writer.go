// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/doyosae/speechprep/utils"
)

// SampleFormat selects the on-disk sample encoding.
type SampleFormat int

const (
	// Float32 writes 32-bit IEEE float samples (WAVE format 3).
	Float32 SampleFormat = iota
	// PCM16 writes clamped 16-bit signed integer samples.
	PCM16
)

func (f SampleFormat) String() string {
	switch f {
	case Float32:
		return "float32"
	case PCM16:
		return "pcm16"
	default:
		return fmt.Sprintf("SampleFormat(%d)", int(f))
	}
}

// Write encodes mono samples as a WAV stream at rate Hz.
func Write(w io.WriteSeeker, rate int, samples []float32, format SampleFormat) error {
	if rate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}
	if len(samples) == 0 {
		return ErrEmptyData
	}

	data := make([]int, len(samples))
	var enc *gowav.Encoder

	switch format {
	case Float32:
		enc = gowav.NewEncoder(w, rate, 32, 1, formatIEEEFloat)
		for i, s := range samples {
			data[i] = utils.Float32Bits(s)
		}
	case PCM16:
		enc = gowav.NewEncoder(w, rate, 16, 1, formatPCM)
		for i, s := range samples {
			data[i] = int(utils.Float32ToInt16(s))
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedSampleFormat, format)
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: enc.BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}

// WriteFile writes samples to path. The file appears under its final name
// only once it is complete.
func WriteFile(path string, rate int, samples []float32, format SampleFormat) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".partial-*.wav")
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, rate, samples, format); err != nil {
		return errors.Join(err, tmp.Close())
	}
	if err = tmp.Chmod(0o644); err != nil {
		return errors.Join(fmt.Errorf("%w", err), tmp.Close())
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
