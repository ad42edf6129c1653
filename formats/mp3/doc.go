// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// # Supported Formats
//
// Anything go-mp3 accepts:
//   - MPEG Audio Layer III
//   - constant and variable bitrate streams
//   - mono and stereo recordings
//
// # Decoding MP3 Files
//
//	file, err := os.Open("noise/street.mp3")
//	if err != nil {
//	    return err
//	}
//	defer file.Close()
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    return err // wraps ErrInvalidStream
//	}
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// Decode fails with ErrInvalidStream when go-mp3 cannot find a frame header.
// Errors met while streaming are wrapped and returned from ReadSamples.
//
// # Output Format
//
//   - Sample format: float32 in [-1, 1)
//   - Channels: always 2, because go-mp3 always produces 16-bit stereo
//   - Sample rate: the rate of the first frame (usually 44.1 or 48 kHz)
//
// Mono recordings come out with both channels equal, so audio.MonoMixer
// folds them back without loss. To get a training buffer:
//
//	buf, err := audio.ReadMono(src, 16000)
//
// or, for a path, speechprep.Load("noise/street.mp3", 16000).
//
// # Streaming
//
// go-mp3 hands out bytes, not samples. A read that ends in the middle of a
// 16-bit sample keeps the odd byte and completes the sample on the next
// call, so ReadSamples never splits or drops a sample whatever the size of
// dst.
//
// # Limitations
//
//   - Decoding only; speechprep writes WAV
//   - Seeking is not exposed
//   - The whole stream is decoded sequentially, which suits batch dataset
//     building but not random access
package mp3
