// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// downsampleAlpha is the coefficient of the one-pole low-pass applied to
// every input frame when the output rate is lower than the input rate.
const downsampleAlpha = 0.5

// Resampler streams from src to a target sample rate using Catmull-Rom cubic
// interpolation. Works on interleaved samples and preserves channel count.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames consumed per output frame
	channels int

	// window[1] and window[2] bracket the current position; window[0] and
	// window[3] are the outer taps. Missing taps repeat the nearest edge.
	window [4][]float32
	valid  [4]bool
	pos    float64

	frame  []float32
	primed bool
	eof    bool
	done   bool

	lowpass []float32 // filter state per channel, nil when upsampling
	warm    bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		ratio:    ratio,
		channels: channels,
		frame:    make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}
	if ratio > 1 {
		r.lowpass = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// readFrame pulls one interleaved frame into dst. ok reports whether a full
// frame was read; err may be io.EOF together with ok == true.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	n, err := r.src.ReadSamples(r.frame)
	if n < r.channels {
		return false, err
	}
	copy(dst, r.frame)

	if r.lowpass != nil {
		if !r.warm {
			// Seed with the first frame so the filter does not ramp up from zero.
			copy(r.lowpass, dst)
			r.warm = true
		}
		for c := range dst {
			dst[c] = downsampleAlpha*dst[c] + (1-downsampleAlpha)*r.lowpass[c]
			r.lowpass[c] = dst[c]
		}
	}

	return true, err
}

func (r *Resampler) prime() error {
	r.primed = true
	for i := 1; i < len(r.window); i++ {
		ok, err := r.readFrame(r.window[i])
		r.valid[i] = ok
		if errors.Is(err, io.EOF) {
			r.eof = true
			break
		}
		if err != nil {
			return fmt.Errorf("resampler: %w", err)
		}
	}

	if !r.valid[1] {
		return io.EOF
	}

	return nil
}

// advance slides the window one source frame forward.
func (r *Resampler) advance() error {
	oldest := r.window[0]
	copy(r.window[:3], r.window[1:])
	r.window[3] = oldest
	copy(r.valid[:3], r.valid[1:])
	r.valid[3] = false

	if !r.eof {
		ok, err := r.readFrame(r.window[3])
		r.valid[3] = ok
		if errors.Is(err, io.EOF) {
			r.eof = true
		} else if err != nil {
			return fmt.Errorf("resampler: %w", err)
		}
	}

	if !r.valid[1] || !r.valid[2] {
		return io.EOF
	}

	return nil
}

// ReadSamples produces samples at the target rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.done {
		return 0, io.EOF
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			r.done = errors.Is(err, io.EOF)
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if errors.Is(err, io.EOF) {
					r.done = true
				}
				return written * r.channels, err
			}
		}

		if !r.valid[1] || !r.valid[2] {
			r.done = true
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		for c := range r.channels {
			y1 := r.window[1][c]
			y2 := r.window[2][c]
			y0, y3 := y1, y2
			if r.valid[0] {
				y0 = r.window[0][c]
			}
			if r.valid[3] {
				y3 = r.window[3][c]
			}
			dst[written*r.channels+c] = catmullRom(y0, y1, y2, y3, x)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}

// catmullRom interpolates between y1 (x=0) and y2 (x=1).
func catmullRom(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}
