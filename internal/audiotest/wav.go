// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// WAV16 builds a canonical 44-byte header PCM 16-bit WAV file holding
// interleaved samples.
func WAV16(sampleRate, channels int, samples []int16) []byte {
	bitsPerSample := uint16(16)
	byteRate := uint32(sampleRate) * uint32(channels) * uint32(bitsPerSample/8)
	blockAlign := uint16(channels) * (bitsPerSample / 8)
	dataSize := uint32(len(samples) * 2)

	out := make([]byte, 44+len(samples)*2)

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], 36+dataSize)
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(out[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], byteRate)
	binary.LittleEndian.PutUint16(out[32:34], blockAlign)
	binary.LittleEndian.PutUint16(out[34:36], bitsPerSample)

	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], dataSize)

	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[44+i*2:], uint16(s))
	}

	return out
}

// WAV16Extensible encodes samples like WAV16 but with a 40-byte
// WAVE_FORMAT_EXTENSIBLE fmt chunk carrying the integer PCM sub-format.
func WAV16Extensible(sampleRate, channels int, samples []int16) []byte {
	dataSize := uint32(len(samples) * 2)
	out := make([]byte, 68+len(samples)*2)

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], 60+dataSize)
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 40)
	binary.LittleEndian.PutUint16(out[20:22], 0xFFFE)
	binary.LittleEndian.PutUint16(out[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(sampleRate*channels*2))
	binary.LittleEndian.PutUint16(out[32:34], uint16(channels*2))
	binary.LittleEndian.PutUint16(out[34:36], 16)
	binary.LittleEndian.PutUint16(out[36:38], 22) // extension size
	binary.LittleEndian.PutUint16(out[38:40], 16) // valid bits
	binary.LittleEndian.PutUint32(out[40:44], 1<<channels-1)
	// KSDATAFORMAT_SUBTYPE_PCM
	copy(out[44:60], []byte{
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
		0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71,
	})

	copy(out[60:64], "data")
	binary.LittleEndian.PutUint32(out[64:68], dataSize)

	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[68+i*2:], uint16(s))
	}

	return out
}

// Ramp16 produces frames frames of interleaved 16-bit samples following Ramp.
func Ramp16(channels, frames int) []int16 {
	out := make([]int16, 0, channels*frames)
	for i := range frames {
		for c := range channels {
			out = append(out, int16(Ramp(i, c)*32767))
		}
	}
	return out
}

// WriteWAV16 writes a WAV16 fixture named name into a per-test temp dir and
// returns its path.
func WriteWAV16(t testing.TB, name string, sampleRate, channels int, samples []int16) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, WAV16(sampleRate, channels, samples), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}

	return path
}
