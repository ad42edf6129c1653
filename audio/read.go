// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const (
	readChunk = 4096
	// maxIdleReads bounds how many (0, nil) reads ReadMono tolerates in a row.
	maxIdleReads = 64
)

// ReadMono drains src into a mono Buffer at rate Hz.
//
// The pipeline is resample -> mono. The resampler is skipped when src already
// runs at rate, so same-rate sources keep their exact sample count. A rate of
// 0 keeps the native rate of src. ReadMono does not close src.
func ReadMono(src Source, rate int) (Buffer, error) {
	if rate < 0 {
		return Buffer{}, fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}
	if src.SampleRate() <= 0 {
		return Buffer{}, fmt.Errorf("%w: source reports %d", ErrInvalidRate, src.SampleRate())
	}

	var stream Source = src
	if rate > 0 && rate != src.SampleRate() {
		stream = NewResampler(stream, rate)
	}
	stream = NewMonoMixer(stream)

	out := make([]float64, 0, stream.SampleRate())
	buf := make([]float32, readChunk)
	idle := 0

	for {
		n, err := stream.ReadSamples(buf)
		for _, s := range buf[:n] {
			out = append(out, float64(s))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Buffer{}, fmt.Errorf("read samples: %w", err)
		}

		if n == 0 {
			idle++
			if idle >= maxIdleReads {
				return Buffer{}, ErrNoProgress
			}
			continue
		}
		idle = 0
	}

	return NewBuffer(stream.SampleRate(), out), nil
}
