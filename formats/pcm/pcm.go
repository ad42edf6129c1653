// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

const (
	formatPCM = 1

	// framesPerChunk bounds memory use while streaming.
	framesPerChunk = 4096
)

// Format describes headerless little-endian PCM.
type Format struct {
	Channels   int
	BitDepth   int
	SampleRate int
}

// Validate reports the first problem with f.
func (f Format) Validate() error {
	switch {
	case f.BitDepth <= 0 || f.BitDepth%8 != 0:
		return fmt.Errorf("%w: %d", ErrInvalidBitDepth, f.BitDepth)
	case f.BitDepth > 32:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, f.BitDepth)
	case f.Channels <= 0:
		return fmt.Errorf("%w: %d", ErrInvalidChannels, f.Channels)
	case f.SampleRate <= 0:
		return fmt.Errorf("%w: %d", ErrInvalidRate, f.SampleRate)
	}

	return nil
}

func (f Format) frameSize() int { return f.Channels * f.BitDepth / 8 }

// ToWAV copies raw PCM from r into a WAV container on w and returns the
// number of frames written. A trailing partial frame is dropped. Input
// without a single complete frame fails with ErrNoFrames and leaves w
// without a header.
func ToWAV(r io.Reader, w io.WriteSeeker, f Format) (int, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}

	enc := gowav.NewEncoder(w, f.SampleRate, f.BitDepth, f.Channels, formatPCM)
	width := f.BitDepth / 8
	raw := make([]byte, framesPerChunk*f.frameSize())
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: f.Channels, SampleRate: f.SampleRate},
		SourceBitDepth: f.BitDepth,
	}

	frames := 0
	for {
		n, err := io.ReadFull(r, raw)
		n -= n % f.frameSize()

		if n > 0 {
			buf.Data = decodeInts(buf.Data[:0], raw[:n], width)
			if werr := enc.Write(buf); werr != nil {
				return frames, fmt.Errorf("encoding pcm: %w", werr)
			}
			frames += n / f.frameSize()
		}

		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return frames, fmt.Errorf("reading pcm: %w", err)
		}
	}

	if frames == 0 {
		return 0, ErrNoFrames
	}

	if err := enc.Close(); err != nil {
		return frames, fmt.Errorf("finalizing wav: %w", err)
	}

	return frames, nil
}

// ConvertFile wraps the PCM file at src into a WAV file at dst. dst is
// removed when the conversion fails.
func ConvertFile(src, dst string, f Format) (frames int, err error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w", cerr)
		}
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	return ToWAV(in, out, f)
}

// decodeInts appends the little-endian samples in raw to dst. 8-bit samples
// stay unsigned, which is how WAV stores them.
func decodeInts(dst []int, raw []byte, width int) []int {
	for i := 0; i+width <= len(raw); i += width {
		var v int
		switch width {
		case 1:
			v = int(raw[i])
		case 2:
			v = int(int16(binary.LittleEndian.Uint16(raw[i:])))
		case 3:
			u := uint32(raw[i]) | uint32(raw[i+1])<<8 | uint32(raw[i+2])<<16
			v = int(int32(u<<8) >> 8)
		case 4:
			v = int(int32(binary.LittleEndian.Uint32(raw[i:])))
		}
		dst = append(dst, v)
	}

	return dst
}
