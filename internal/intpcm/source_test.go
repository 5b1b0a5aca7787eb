// SPDX-License-Identifier: EPL-2.0

package intpcm

import (
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audclip/audio"
)

// stubReader serves samples the way go-audio decoders do: short reads at the
// end, then zero.
type stubReader struct {
	samples []int
	err     error
	calls   int
}

func (r *stubReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	r.calls++
	if r.err != nil {
		return 0, r.err
	}
	n := copy(buf.Data, r.samples)
	r.samples = r.samples[n:]
	return n, nil
}

func TestSource_Normalizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		samples  []int
		want     []float32
	}{
		{"16-bit", 16, []int{16384, -32768, 0}, []float32{0.5, -1, 0}},
		{"24-bit", 24, []int{1 << 22, -(1 << 23), 1 << 21}, []float32{0.5, -1, 0.25}},
		{"32-bit", 32, []int{1 << 30, -(1 << 31)}, []float32{0.5, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := NewSource(&stubReader{samples: tt.samples}, 8000, 1, tt.bitDepth, int64(len(tt.samples)))

			dst := make([]float32, 8)
			n, err := src.ReadSamples(dst)
			if err != nil || n != len(tt.want) {
				t.Fatalf("ReadSamples() = %d, %v; want %d, nil", n, err, len(tt.want))
			}
			for i := range tt.want {
				if math.Abs(float64(dst[i]-tt.want[i])) > 1e-6 {
					t.Errorf("dst[%d] = %v, want %v", i, dst[i], tt.want[i])
				}
			}

			if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
				t.Errorf("ReadSamples() at end = %d, %v; want 0, io.EOF", n, err)
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := NewSource(&stubReader{}, 44100, 2, 24, 1234)

	if src.SampleRate() != 44100 || src.Channels() != 2 || src.BitDepth() != 24 {
		t.Errorf("metadata = %d Hz / %d ch / %d bit", src.SampleRate(), src.Channels(), src.BitDepth())
	}
	if src.Frames() != 1234 {
		t.Errorf("Frames() = %d, want 1234", src.Frames())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() before first read = %d, want 4096", src.BufSize())
	}
}

func TestSource_ReadAll(t *testing.T) {
	t.Parallel()

	samples := make([]int, 10000)
	for i := range samples {
		samples[i] = i % 3000
	}

	buf, err := audio.ReadAll(NewSource(&stubReader{samples: samples}, 8000, 2, 16, 5000))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if buf.Frames() != 5000 || buf.Channels() != 2 {
		t.Errorf("ReadAll() = %d frames / %d ch, want 5000 / 2", buf.Frames(), buf.Channels())
	}
	if want := float32(2999) / 32768; buf.Data[1][1499] != want {
		t.Errorf("Data[1][1499] = %v, want %v", buf.Data[1][1499], want)
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	src := NewSource(&stubReader{err: io.ErrUnexpectedEOF}, 8000, 1, 16, -1)
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	r := &stubReader{samples: []int{1}}
	src := NewSource(r, 8000, 1, 16, 1)

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
	if r.calls != 0 {
		t.Errorf("reader called %d times for an empty dst", r.calls)
	}
}
