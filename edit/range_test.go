// SPDX-License-Identifier: EPL-2.0

package edit

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/internal/audiotest"
)

func rampBuffer(sampleRate, channels, frames int) *audio.Buffer {
	buf := audio.NewBuffer(sampleRate, channels, frames)
	for c := range channels {
		for i := range frames {
			buf.Data[c][i] = audiotest.Ramp(i, c)
		}
	}
	return buf
}

func assertSamples(t *testing.T, got, want *audio.Buffer, tolerance float64) {
	t.Helper()

	if got.Channels() != want.Channels() || got.Frames() != want.Frames() {
		t.Fatalf("shape = %dch/%d frames, want %dch/%d frames",
			got.Channels(), got.Frames(), want.Channels(), want.Frames())
	}
	for c := range want.Data {
		for i := range want.Data[c] {
			if d := math.Abs(float64(got.Data[c][i] - want.Data[c][i])); d > tolerance {
				t.Fatalf("ch %d frame %d = %v, want %v", c, i, got.Data[c][i], want.Data[c][i])
			}
		}
	}
}

func TestTrim(t *testing.T) {
	t.Parallel()

	src := rampBuffer(48000, 1, 480000)

	tests := []struct {
		name       string
		r          audio.TimeRange
		wantStart  int
		wantFrames int
	}{
		{"middle", audio.TimeRange{Start: 2, End: 5}, 96000, 144000},
		{"whole", audio.TimeRange{Start: 0, End: 10}, 0, 480000},
		{"to the end", audio.TimeRange{Start: 9.5, End: 10}, 456000, 24000},
		{"zero length", audio.TimeRange{Start: 3, End: 3}, 144000, 0},
		{"zero length at end", audio.TimeRange{Start: 10, End: 10}, 480000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Trim(src, tt.r)
			if err != nil {
				t.Fatalf("Trim() error = %v", err)
			}
			want, _ := src.Slice(tt.wantStart, tt.wantFrames)
			assertSamples(t, got, want, 0)
		})
	}
}

func TestTrim_DurationMatchesRange(t *testing.T) {
	t.Parallel()

	src := rampBuffer(44100, 2, 44100*3)
	frame := 1.0 / 44100

	for _, r := range []audio.TimeRange{
		{Start: 0.1, End: 0.2},
		{Start: 0.333, End: 2.777},
		{Start: 1.00001, End: 2.99999},
		{Start: 0, End: 3},
	} {
		got, err := Trim(src, r)
		if err != nil {
			t.Fatalf("Trim(%v) error = %v", r, err)
		}
		if d := math.Abs(got.Duration() - r.Length()); d > frame {
			t.Errorf("Trim(%v) duration = %v, want %v within one frame", r, got.Duration(), r.Length())
		}
	}
}

func TestTrim_ClampsRoundingOvershoot(t *testing.T) {
	t.Parallel()

	// 3 frames at 4 Hz: start rounds to frame 1, length rounds up to 3
	src := rampBuffer(4, 1, 3)

	got, err := Trim(src, audio.TimeRange{Start: 0.125, End: 0.75})
	if err != nil {
		t.Fatalf("Trim() error = %v", err)
	}
	want, _ := src.Slice(1, 2)
	assertSamples(t, got, want, 0)
}

func TestCut(t *testing.T) {
	t.Parallel()

	src := rampBuffer(48000, 2, 480000)

	tests := []struct {
		name       string
		r          audio.TimeRange
		wantHead   int
		wantTail   int
		tailOffset int
	}{
		{"middle", audio.TimeRange{Start: 2, End: 5}, 96000, 240000, 240000},
		{"from start", audio.TimeRange{Start: 0, End: 1}, 0, 432000, 48000},
		{"to end", audio.TimeRange{Start: 8, End: 10}, 384000, 0, 480000},
		{"zero length", audio.TimeRange{Start: 4, End: 4}, 192000, 288000, 192000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			head, tail, err := Cut(src, tt.r)
			if err != nil {
				t.Fatalf("Cut() error = %v", err)
			}

			wantHead, _ := src.Slice(0, tt.wantHead)
			wantTail, _ := src.Slice(tt.tailOffset, tt.wantTail)
			assertSamples(t, head, wantHead, 0)
			assertSamples(t, tail, wantTail, 0)

			joined, err := Join(head, tail)
			if err != nil {
				t.Fatalf("Join() error = %v", err)
			}
			wantDuration := src.Duration() - tt.r.Length()
			if d := math.Abs(joined.Duration() - wantDuration); d > 1.0/48000 {
				t.Errorf("joined duration = %v, want %v", joined.Duration(), wantDuration)
			}
		})
	}
}

func TestCutThenTrim_RoundTrip(t *testing.T) {
	t.Parallel()

	src := rampBuffer(8000, 1, 80000)
	r := audio.TimeRange{Start: 2.5, End: 6}

	head, tail, err := Cut(src, r)
	if err != nil {
		t.Fatalf("Cut() error = %v", err)
	}
	out, err := Join(head, tail)
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}

	gotHead, err := Trim(out, audio.TimeRange{Start: 0, End: r.Start})
	if err != nil {
		t.Fatalf("Trim(head) error = %v", err)
	}
	gotTail, err := Trim(out, audio.TimeRange{Start: r.Start, End: out.Duration()})
	if err != nil {
		t.Fatalf("Trim(tail) error = %v", err)
	}

	wantHead, _ := Trim(src, audio.TimeRange{Start: 0, End: r.Start})
	wantTail, _ := Trim(src, audio.TimeRange{Start: r.End, End: src.Duration()})
	assertSamples(t, gotHead, wantHead, 0)
	assertSamples(t, gotTail, wantTail, 0)
}

func TestRangeErrors(t *testing.T) {
	t.Parallel()

	src := rampBuffer(48000, 1, 48000)

	for _, r := range []audio.TimeRange{
		{Start: -0.5, End: 0.5},
		{Start: 0.5, End: 0.25},
		{Start: 0.5, End: 1.5},
		{Start: 2, End: 3},
		{Start: math.NaN(), End: 0.5},
	} {
		if _, err := Trim(src, r); !errors.Is(err, audio.ErrRangeOutOfBounds) {
			t.Errorf("Trim(%v) error = %v, want ErrRangeOutOfBounds", r, err)
		}
		if _, _, err := Cut(src, r); !errors.Is(err, audio.ErrRangeOutOfBounds) {
			t.Errorf("Cut(%v) error = %v, want ErrRangeOutOfBounds", r, err)
		}
	}
}

func TestJoin_Mismatch(t *testing.T) {
	t.Parallel()

	_, err := Join(rampBuffer(8000, 1, 10), rampBuffer(8000, 2, 10))
	if !errors.Is(err, audio.ErrChannelMismatch) {
		t.Errorf("Join() error = %v, want ErrChannelMismatch", err)
	}
}
