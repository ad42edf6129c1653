// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/doyosae/speechprep/audio"
	"github.com/doyosae/speechprep/utils"
)

const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatExtensible = 0xFFFE
)

// wavSource serves samples decoded up front.
type wavSource struct {
	samples    []float32
	pos        int
	sampleRate int
	channels   int
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.samples[s.pos:])
	s.pos += n

	return n, nil
}

// Decoder reads PCM (8, 16, 24, 32-bit) and IEEE float32 WAV files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	bits := int(dec.BitDepth)
	format := dec.WavAudioFormat
	convert, err := converter(format, bits)
	if err != nil {
		return nil, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav samples: %w", err)
	}

	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = convert(v)
	}

	return &wavSource{
		samples:    samples,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
	}, nil
}

func converter(format uint16, bits int) (func(int) float32, error) {
	switch {
	case format == formatIEEEFloat && bits == 32:
		return utils.Float32FromBits, nil
	case format != formatPCM && format != formatExtensible:
	case bits == 8:
		// 8-bit WAV is unsigned with a 128 midpoint.
		return func(v int) float32 { return utils.IntToFloat32(v-128, 8) }, nil
	case bits == 16 || bits == 24 || bits == 32:
		return func(v int) float32 { return utils.IntToFloat32(v, bits) }, nil
	}

	return nil, fmt.Errorf("%w: format %d, %d-bit", ErrUnsupportedSampleFormat, format, bits)
}
