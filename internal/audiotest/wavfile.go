// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// WAVFile is a minimally parsed WAV file, read without go-audio so tests can
// check what the encoders produced.
type WAVFile struct {
	Format     uint16 // 1 = PCM, 3 = IEEE float
	Channels   int
	SampleRate int
	BitDepth   int
	Data       []byte
}

// Float32 decodes Data as little-endian IEEE float32 samples.
func (w WAVFile) Float32() []float32 {
	out := make([]float32, len(w.Data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(w.Data[4*i:]))
	}

	return out
}

// Int16 decodes Data as little-endian int16 samples.
func (w WAVFile) Int16() []int16 {
	out := make([]int16, len(w.Data)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(w.Data[2*i:]))
	}

	return out
}

// ParseWAV walks the RIFF chunks of raw.
func ParseWAV(tb testing.TB, raw []byte) WAVFile {
	tb.Helper()

	if len(raw) < 12 || string(raw[0:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		tb.Fatalf("not a RIFF/WAVE file (%d bytes)", len(raw))
	}

	var out WAVFile
	var haveFmt, haveData bool
	for off := 12; off+8 <= len(raw); {
		id := string(raw[off : off+4])
		size := int(binary.LittleEndian.Uint32(raw[off+4 : off+8]))
		body := raw[off+8 : min(off+8+size, len(raw))]

		switch id {
		case "fmt ":
			out.Format = binary.LittleEndian.Uint16(body[0:2])
			out.Channels = int(binary.LittleEndian.Uint16(body[2:4]))
			out.SampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			out.BitDepth = int(binary.LittleEndian.Uint16(body[14:16]))
			haveFmt = true
		case "data":
			out.Data = body
			haveData = true
		}

		off += 8 + size + size%2
	}

	if !haveFmt || !haveData {
		tb.Fatalf("missing chunks: fmt=%v data=%v", haveFmt, haveData)
	}

	return out
}

// ReadWAV reads and parses a WAV file from disk.
func ReadWAV(tb testing.TB, path string) WAVFile {
	tb.Helper()

	raw, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read %s: %v", path, err)
	}

	return ParseWAV(tb, raw)
}

// PCM16WAV builds a canonical 44-byte-header PCM16 WAV in memory.
func PCM16WAV(sampleRate, channels int, samples []int16) []byte {
	buf := new(bytes.Buffer)
	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate*channels*2))
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels*2))
	_ = binary.Write(buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, dataSize)
	for _, s := range samples {
		_ = binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

// WriteToneWAV writes n frames of a mono PCM16 sine tone to path, creating
// parent directories as needed.
func WriteToneWAV(tb testing.TB, path string, rate, n int, frequency float64) {
	tb.Helper()

	samples := make([]int16, n)
	for i, v := range Sine(n, rate, frequency, 0.5) {
		samples[i] = int16(v * 32767)
	}
	WriteFile(tb, path, PCM16WAV(rate, 1, samples))
}

// WriteFile writes raw bytes to path, creating parent directories.
func WriteFile(tb testing.TB, path string, raw []byte) {
	tb.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
}
