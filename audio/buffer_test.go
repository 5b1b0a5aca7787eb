// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	"github.com/ik5/audclip/internal/audiotest"
)

func rampBuffer(t *testing.T, sampleRate, channels, frames int) *Buffer {
	t.Helper()

	buf, err := ReadAll(audiotest.NewRampSource(sampleRate, channels, frames))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	return buf
}

func TestReadAll_Deinterleaves(t *testing.T) {
	t.Parallel()

	buf := rampBuffer(t, 8000, 2, 3000)

	if buf.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", buf.SampleRate)
	}
	if buf.Channels() != 2 {
		t.Fatalf("Channels() = %d, want 2", buf.Channels())
	}
	if buf.Frames() != 3000 {
		t.Fatalf("Frames() = %d, want 3000", buf.Frames())
	}

	for _, f := range []int{0, 1, 999, 2999} {
		for c := range 2 {
			if got, want := buf.Data[c][f], audiotest.Ramp(f, c); got != want {
				t.Errorf("Data[%d][%d] = %v, want %v", c, f, got, want)
			}
		}
	}
}

func TestReadAll_SmallReads(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(8000, 3, 100).WithChunk(7)
	buf, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if buf.Frames() != 100 {
		t.Fatalf("Frames() = %d, want 100", buf.Frames())
	}
	if got, want := buf.Data[2][57], audiotest.Ramp(57, 2); got != want {
		t.Errorf("Data[2][57] = %v, want %v", got, want)
	}
}

func TestReadAll_Empty(t *testing.T) {
	t.Parallel()

	buf, err := ReadAll(audiotest.NewSilentSource(48000, 1, 0))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if buf.Frames() != 0 || buf.Channels() != 1 {
		t.Errorf("got %d frames / %d channels, want 0 / 1", buf.Frames(), buf.Channels())
	}
	if buf.Duration() != 0 {
		t.Errorf("Duration() = %v, want 0", buf.Duration())
	}
}

func TestReadAll_NoChannels(t *testing.T) {
	t.Parallel()

	_, err := ReadAll(audiotest.NewSilentSource(48000, 0, 10))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("ReadAll() error = %v, want ErrDecode", err)
	}
}

func TestBuffer_Duration(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(48000, 1, 480000)
	if buf.Duration() != 10.0 {
		t.Errorf("Duration() = %v, want 10", buf.Duration())
	}
}

func TestBuffer_Slice(t *testing.T) {
	t.Parallel()

	buf := rampBuffer(t, 1000, 2, 500)

	tests := []struct {
		name    string
		start   int
		count   int
		wantErr bool
	}{
		{"whole", 0, 500, false},
		{"middle", 100, 50, false},
		{"empty at end", 500, 0, false},
		{"empty", 10, 0, false},
		{"over read", 450, 51, true},
		{"negative start", -1, 10, true},
		{"negative count", 0, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := buf.Slice(tt.start, tt.count)
			if tt.wantErr {
				if !errors.Is(err, ErrFrameRange) {
					t.Errorf("Slice() error = %v, want ErrFrameRange", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Slice() error = %v", err)
			}
			if got.Frames() != tt.count || got.Channels() != 2 {
				t.Fatalf("Slice() = %d frames / %d channels", got.Frames(), got.Channels())
			}
			for f := range tt.count {
				if got.Data[1][f] != buf.Data[1][tt.start+f] {
					t.Fatalf("Slice() frame %d differs from source frame %d", f, tt.start+f)
				}
			}
		})
	}
}

func TestBuffer_SliceCopies(t *testing.T) {
	t.Parallel()

	buf := rampBuffer(t, 1000, 1, 10)
	part, _ := buf.Slice(0, 5)
	part.Data[0][0] = 42

	if buf.Data[0][0] == 42 {
		t.Error("Slice() shares memory with the source buffer")
	}
}

func TestConcat(t *testing.T) {
	t.Parallel()

	buf := rampBuffer(t, 1000, 2, 300)
	head, _ := buf.Slice(0, 100)
	tail, _ := buf.Slice(200, 100)
	empty, _ := buf.Slice(300, 0)

	got, err := Concat(head, tail, empty)
	if err != nil {
		t.Fatalf("Concat() error = %v", err)
	}
	if got.Frames() != 200 {
		t.Fatalf("Frames() = %d, want 200", got.Frames())
	}
	if got.Data[0][99] != buf.Data[0][99] || got.Data[0][100] != buf.Data[0][200] {
		t.Error("Concat() did not join head then tail")
	}
}

func TestConcat_Mismatch(t *testing.T) {
	t.Parallel()

	_, err := Concat(NewBuffer(1000, 1, 1), NewBuffer(1000, 2, 1))
	if !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("Concat() error = %v, want ErrChannelMismatch", err)
	}

	if _, err := Concat(NewBuffer(1000, 1, 1), NewBuffer(2000, 1, 1)); err == nil {
		t.Error("Concat() error = nil for mismatched sample rates")
	}
}

func TestBuffer_Interleave(t *testing.T) {
	t.Parallel()

	buf := rampBuffer(t, 1000, 2, 5)
	dst := make([]float32, 6)

	n, err := buf.Interleave(dst, 3)
	if err != nil {
		t.Fatalf("Interleave() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("Interleave() = %d frames, want 2", n)
	}
	if dst[0] != buf.Data[0][3] || dst[1] != buf.Data[1][3] || dst[3] != buf.Data[1][4] {
		t.Errorf("Interleave() wrote %v", dst[:4])
	}

	if _, err := buf.Interleave(make([]float32, 3), 0); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("Interleave() error = %v, want ErrInvalidDstSize", err)
	}
}
