// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
	ErrUnsupportedChannels = errors.New("FLAC writer supports mono and stereo only")
	ErrSampleRateMismatch  = errors.New("buffer sample rate does not match the writer")
)
