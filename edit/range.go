// SPDX-License-Identifier: EPL-2.0

package edit

import (
	"fmt"

	"github.com/ik5/audclip/audio"
)

// Trim returns the frames of buf inside r.
//
// The start frame is round(r.Start*rate) and the frame count is
// round(r.Length()*rate), clamped so the slice never runs past the last
// frame. A zero-length range yields an empty buffer.
func Trim(buf *audio.Buffer, r audio.TimeRange) (*audio.Buffer, error) {
	if err := r.Validate(buf.Duration()); err != nil {
		return nil, err
	}

	start, count := trimFrames(r, buf.SampleRate, buf.Frames())

	return buf.Slice(start, count)
}

// Cut returns the frames of buf before and after r. Either part may be
// empty; a range ending at the last frame yields an empty tail.
func Cut(buf *audio.Buffer, r audio.TimeRange) (head, tail *audio.Buffer, err error) {
	if err := r.Validate(buf.Duration()); err != nil {
		return nil, nil, err
	}

	total := buf.Frames()
	start, end := cutFrames(r, buf.SampleRate, total)

	if head, err = buf.Slice(0, start); err != nil {
		return nil, nil, err
	}
	if tail, err = buf.Slice(end, total-end); err != nil {
		return nil, nil, err
	}

	return head, tail, nil
}

func trimFrames(r audio.TimeRange, sampleRate, total int) (start, count int) {
	start = min(audio.FrameIndex(r.Start, sampleRate), total)
	count = min(audio.FrameIndex(r.Length(), sampleRate), total-start)
	return start, count
}

func cutFrames(r audio.TimeRange, sampleRate, total int) (start, end int) {
	start, end = r.Frames(sampleRate)
	return min(start, total), min(end, total)
}

// Join concatenates parts in order.
func Join(parts ...*audio.Buffer) (*audio.Buffer, error) {
	out, err := audio.Concat(parts...)
	if err != nil {
		return nil, fmt.Errorf("joining %d parts: %w", len(parts), err)
	}
	return out, nil
}
