// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrDecode reports a source that is missing, corrupt, in an unsupported
	// format, or a frame range beyond the decoded data.
	ErrDecode = errors.New("decode error")

	// ErrEncode reports a destination that could not be written.
	ErrEncode = errors.New("encode error")

	// ErrRangeOutOfBounds reports a TimeRange outside [0, duration].
	ErrRangeOutOfBounds = errors.New("time range out of bounds")

	// ErrFrameRange reports start+count beyond the frames of a buffer.
	ErrFrameRange = errors.New("frame range exceeds available frames")

	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrInvalidFormat     = errors.New("invalid output format")
	ErrChannelMismatch   = errors.New("channel count mismatch")
)
