// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"

	"github.com/ik5/audclip/internal/audiotest"
)

func TestRemix_MonoToStereo(t *testing.T) {
	t.Parallel()

	buf := rampBuffer(t, 48000, 1, 100)
	out := Remix(buf, 2)

	if out.Channels() != 2 || out.Frames() != 100 {
		t.Fatalf("Remix() = %d channels / %d frames", out.Channels(), out.Frames())
	}
	for f := range 100 {
		if out.Data[0][f] != buf.Data[0][f] || out.Data[1][f] != buf.Data[0][f] {
			t.Fatalf("frame %d not duplicated", f)
		}
	}
}

func TestRemix_StereoToMono(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 10, func(_ int, ch int) float32 {
		if ch == 0 {
			return 0.8
		}
		return 0.2
	})
	buf, _ := ReadAll(src)
	out := Remix(buf, 1)

	for f, v := range out.Data[0] {
		if math.Abs(float64(v-0.5)) > 1e-6 {
			t.Errorf("frame %d = %v, want 0.5", f, v)
		}
	}
}

func TestRemix_Generic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   int
		out  int
	}{
		{"same", 2, 2},
		{"quad to mono", 4, 1},
		{"5.1 to stereo", 6, 2},
		{"stereo to quad", 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := rampBuffer(t, 8000, tt.in, 50)
			got := Remix(buf, tt.out)

			if got.Channels() != tt.out || got.Frames() != 50 {
				t.Fatalf("Remix() = %d channels / %d frames", got.Channels(), got.Frames())
			}

			if tt.out > 1 {
				for c := range tt.out {
					src := min(c, tt.in-1)
					if got.Data[c][10] != buf.Data[src][10] {
						t.Errorf("channel %d does not follow input channel %d", c, src)
					}
				}
			}
		})
	}
}
