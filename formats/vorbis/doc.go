// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// # Decoding Ogg Files
//
//	file, err := os.Open("noise/rain.ogg")
//	if err != nil {
//	    return err
//	}
//	defer file.Close()
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    return err // wraps ErrInvalidStream
//	}
//
//	buf, err := audio.ReadMono(src, 16000)
//
// # Output Format
//
//   - Sample format: float32 in [-1, 1], as produced by the Vorbis decoder
//   - Channels: as stored in the identification header
//   - Sample rate: as stored in the identification header
//
// No conversion is applied. Samples come straight from oggvorbis into the
// caller's slice.
//
// # Frame Alignment
//
// ReadSamples only reads whole frames. With a stereo stream and a dst of 7
// samples it fills 6. A dst shorter than one frame returns (0, nil), so
// callers should size buffers as a multiple of Channels(). audio.ReadMono
// already does.
//
// # Errors
//
// Decode wraps header problems in ErrInvalidStream. Later corruption is
// wrapped and returned from ReadSamples together with the samples read
// before it. io.EOF marks a clean end of stream.
package vorbis
