// SPDX-License-Identifier: EPL-2.0

// Package pcm wraps headerless PCM recordings in a WAV container.
//
// Raw corpora ship as *.pcm files whose channel count, bit depth and rate
// are known out of band. ToWAV copies the samples unchanged behind a
// canonical header:
//
//	f := pcm.Format{Channels: 1, BitDepth: 16, SampleRate: 16000}
//	frames, err := pcm.ConvertFile("corpus/a.pcm", "clean/a.wav", f)
//
// Bit depths must be multiples of 8 up to 32. Samples are little-endian;
// 8-bit data is unsigned, as WAV stores it.
//
// A trailing partial frame is dropped. Input without a single complete
// frame fails with ErrNoFrames, and ConvertFile removes the destination so
// no headerless file is left behind.
package pcm
