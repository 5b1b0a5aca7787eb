// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer is decoded PCM audio held in memory, one slice per channel.
// All channel slices have the same length, which is the frame count.
// A Buffer is owned by whoever decoded it and is not safe for concurrent
// mutation.
type Buffer struct {
	SampleRate int
	Data       [][]float32
}

// NewBuffer allocates a zeroed buffer of frames frames per channel.
func NewBuffer(sampleRate, channels, frames int) *Buffer {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}

	return &Buffer{SampleRate: sampleRate, Data: data}
}

func (b *Buffer) Channels() int { return len(b.Data) }

func (b *Buffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Duration in seconds.
func (b *Buffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.SampleRate)
}

// Slice copies count frames starting at frame start into a new buffer.
// It returns ErrFrameRange when the range does not fit.
func (b *Buffer) Slice(start, count int) (*Buffer, error) {
	if start < 0 || count < 0 || start+count > b.Frames() {
		return nil, fmt.Errorf("%w: start %d count %d total %d",
			ErrFrameRange, start, count, b.Frames())
	}

	out := NewBuffer(b.SampleRate, b.Channels(), count)
	for c := range b.Data {
		copy(out.Data[c], b.Data[c][start:start+count])
	}

	return out, nil
}

// Concat returns a new buffer holding the frames of bufs in order.
// Every buffer must share the sample rate and channel count of the first one.
func Concat(bufs ...*Buffer) (*Buffer, error) {
	if len(bufs) == 0 {
		return &Buffer{}, nil
	}

	first := bufs[0]
	total := 0
	for _, b := range bufs {
		if b.Channels() != first.Channels() {
			return nil, fmt.Errorf("%w: %d != %d", ErrChannelMismatch, b.Channels(), first.Channels())
		}
		if b.SampleRate != first.SampleRate {
			return nil, fmt.Errorf("sample rate mismatch: %d != %d", b.SampleRate, first.SampleRate)
		}
		total += b.Frames()
	}

	out := NewBuffer(first.SampleRate, first.Channels(), total)
	offset := 0
	for _, b := range bufs {
		for c := range b.Data {
			copy(out.Data[c][offset:], b.Data[c])
		}
		offset += b.Frames()
	}

	return out, nil
}

// Interleave writes frames starting at frame start into dst as interleaved
// samples and returns the number of frames written.
// len(dst) must be a multiple of the channel count.
func (b *Buffer) Interleave(dst []float32, start int) (int, error) {
	channels := b.Channels()
	if channels == 0 {
		return 0, nil
	}
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := min(len(dst)/channels, b.Frames()-start)
	if frames <= 0 {
		return 0, nil
	}

	for f := range frames {
		base := f * channels
		for c := range channels {
			dst[base+c] = b.Data[c][start+f]
		}
	}

	return frames, nil
}

// ReadAll drains src into a new Buffer. A FrameCounter hint, when present,
// is used to size the channel slices up front.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: source reports %d channels", ErrDecode, channels)
	}

	hint := 0
	if fc, ok := src.(FrameCounter); ok && fc.Frames() > 0 {
		hint = int(fc.Frames())
	}

	out := &Buffer{SampleRate: src.SampleRate(), Data: make([][]float32, channels)}
	for c := range out.Data {
		out.Data[c] = make([]float32, 0, hint)
	}

	bufSize := src.BufSize()
	if bufSize < channels {
		bufSize = 4096
	}
	bufSize -= bufSize % channels
	buf := make([]float32, bufSize)

	// carry holds samples of a frame split across two reads
	var carry []float32
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples := buf[:n]
			if len(carry) > 0 {
				samples = append(carry, samples...)
				carry = nil
			}

			frames := len(samples) / channels
			for f := range frames {
				base := f * channels
				for c := range channels {
					out.Data[c] = append(out.Data[c], samples[base+c])
				}
			}

			if rest := len(samples) - frames*channels; rest > 0 {
				carry = append([]float32(nil), samples[frames*channels:]...)
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// no progress and no error: treat as end of stream
			break
		}
	}

	return out, nil
}
