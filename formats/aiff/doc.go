// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files through github.com/go-audio/aiff.
//
// # Supported Formats
//
//   - Signed big-endian PCM at 8, 16, 24 and 32 bits
//   - Any channel count, interleaved
//   - Any sample rate stored in the COMM chunk
//
// AIFF-C compressed files are rejected with ErrUnsupportedAiffLayout,
// ErrUnsupportedBitDepth or ErrNotAiffFile depending on how far the header
// parses.
//
// # Decoding AIFF Files
//
//	file, err := os.Open("clean/take1.aiff")
//	if err != nil {
//	    return err
//	}
//	defer file.Close()
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//
//	buf := make([]float32, 4096)
//	for {
//	    n, err := src.ReadSamples(buf)
//	    process(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// go-aiff needs an io.ReadSeeker. Other readers are read into memory first.
//
// # Output Format
//
// Samples are scaled by the full scale of the stored bit depth, so they fall
// in [-1, 1). A 16-bit value of 16384 becomes 0.5 and a 24-bit value of
// -8388608 becomes -1.
//
// # Registration
//
// The decoder is registered for the "aiff" and "aif" extensions in
// speechprep.DefaultRegistry.
package aiff
