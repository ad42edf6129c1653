// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes WAV files on top of github.com/go-audio/wav.
//
// # Supported Formats
//
// Decoder accepts:
//   - integer PCM at 8 (unsigned), 16, 24 and 32 bits
//   - IEEE float at 32 bits (WAVE format 3)
//   - WAVE_FORMAT_EXTENSIBLE headers that carry integer PCM
//   - mono or interleaved multi-channel data
//
// Other layouts fail with ErrUnsupportedSampleFormat. Input that is not a
// RIFF/WAVE file fails with ErrNotWavFile.
//
// # Decoding
//
//	file, err := os.Open("clean/0001.wav")
//	if err != nil {
//	    return err
//	}
//	defer file.Close()
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	buf, err := audio.ReadMono(src, 16000)
//
// The whole data chunk is decoded when Decode is called. Readers that are
// not io.ReadSeeker are buffered in memory first. Integer samples are scaled
// by their full scale, so 16-bit 16384 reads back as 0.5.
//
// # Encoding
//
// Write and WriteFile produce mono files in one of two sample formats:
//
//	err := wav.WriteFile("datasets/test_noisy/test_noisy000001.wav", 16000, samples, wav.Float32)
//	err = wav.WriteFile("preview.wav", 16000, samples, wav.PCM16)
//
// Float32 keeps the mixer output unclamped. A mixed sample of 1.3 is stored
// as 1.3 and training code sees the true signal. PCM16 clamps to [-1, 1]
// and rounds toward zero, which suits listening copies.
//
// go-audio's encoder only takes integer buffers, so float samples travel
// through it as their IEEE bit patterns and land on disk unchanged.
//
// # Atomic Writes
//
// WriteFile writes to a temporary file in the destination directory and
// renames it into place. An interrupted run never leaves a truncated file
// under a final name, and a failed write removes the temporary file.
//
// # Errors
//
//   - ErrEmptyData: no samples to write
//   - ErrInvalidRate: rate is not positive
//   - ErrUnsupportedSampleFormat: unknown SampleFormat, or an unsupported
//     header when decoding
package wav
