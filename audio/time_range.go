// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// rangeEpsilon absorbs float noise when comparing an end time with a
// duration computed from a frame count.
const rangeEpsilon = 1e-9

// TimeRange is a [Start, End) span in seconds.
type TimeRange struct {
	Start float64
	End   float64
}

// FrameIndex converts seconds to a frame offset: round(seconds * sampleRate).
func FrameIndex(seconds float64, sampleRate int) int {
	return int(math.Round(seconds * float64(sampleRate)))
}

// Length in seconds.
func (r TimeRange) Length() float64 { return r.End - r.Start }

// Validate checks 0 <= Start <= End <= duration.
func (r TimeRange) Validate(duration float64) error {
	// negated comparisons reject NaN
	if !(r.Start >= 0) || !(r.End >= r.Start) || !(r.End <= duration+rangeEpsilon) {
		return fmt.Errorf("%w: [%g, %g] against duration %g",
			ErrRangeOutOfBounds, r.Start, r.End, duration)
	}
	return nil
}

// Frames returns the start and end frame indexes of r at sampleRate.
func (r TimeRange) Frames(sampleRate int) (start, end int) {
	return FrameIndex(r.Start, sampleRate), FrameIndex(r.End, sampleRate)
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%.3fs...%.3fs", r.Start, r.End)
}
