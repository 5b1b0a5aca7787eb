// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/internal/intpcm"
	"github.com/ik5/audclip/internal/seekable"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, err := seekable.Reader(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	if bitDepth != 16 && bitDepth != 24 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return intpcm.NewSource(dec, format.SampleRate, format.NumChannels, bitDepth, int64(dec.NumSampleFrames)), nil
}
