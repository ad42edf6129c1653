// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-level building blocks used to turn
// decoded files into mono training buffers.
//
// # Overview
//
// The package holds:
//   - Source and Decoder interfaces, implemented by the formats/ packages
//   - Registry for picking a decoder from a file extension
//   - Resampler for sample rate conversion (Catmull-Rom cubic interpolation)
//   - MonoMixer for channel averaging
//   - Buffer, a block of float64 mono samples tagged with its rate
//   - ReadMono, which drains a Source through resample -> mono into a Buffer
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 in [-1, 1]. io.EOF marks the end of the
// stream and may be returned together with the final samples. A Source that
// keeps returning (0, nil) is treated as stuck: ReadMono gives up with
// ErrNoProgress instead of spinning.
//
// # Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.Register("mp3", mp3.Decoder{})
//
//	dec, err := registry.ForPath("speech/0001.WAV")
//	if err != nil {
//	    return err // wraps ErrUnsupportedFormat
//	}
//
// Format names are case-insensitive and a leading dot is ignored, so
// "WAV", ".wav" and "wav" are the same entry. Formats lists what is
// registered, sorted.
//
// # Loading
//
//	src, err := dec.Decode(file)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	buf, err := audio.ReadMono(src, 16000)
//	fmt.Println(buf.SampleRate(), buf.Len(), buf.Duration())
//
// When the source already runs at the requested rate the resampler is not
// inserted, so sample counts are preserved exactly. A rate of 0 keeps the
// native rate.
//
// # Resampling
//
// Resampler works on interleaved frames and keeps a four-frame window per
// channel for the cubic interpolation. Output length is close to
// inputFrames * dstRate / srcRate.
//
//	res := audio.NewResampler(src, 8000)
//	mono := audio.NewMonoMixer(res)
//
// When downsampling, each input frame passes through a one-pole low-pass
// before interpolation. This is a light anti-aliasing stage, not a
// band-limited FIR, which is adequate for speech at 8 to 48 kHz.
//
// # Mono Mixing
//
// MonoMixer averages all channels of each frame. A stereo frame (0.5, -0.5)
// becomes 0. Mono sources pass through untouched. The destination slice
// only needs room for the mono output; the mixer sizes its own scratch
// buffer for the source's channel count.
//
// # Buffers
//
// Buffer is what the mixing package consumes. Samples returns the backing
// slice, which callers treat as read-only; mixing code always writes into
// fresh slices. Float32 converts for the WAV writer.
package audio
