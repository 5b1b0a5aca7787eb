// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/internal/intpcm"
	"github.com/ik5/audclip/internal/seekable"
)

// fmt chunk format tags read as integer PCM
const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := seekable.Reader(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	// Header fields are checked directly so a file with an empty data chunk
	// (the output of a zero-length edit) still decodes.
	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrNotWavFile
	}

	switch dec.WavAudioFormat {
	case formatPCM, formatExtensible:
	default:
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	// PCMLen is only known once the data chunk has been located
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	channels := int(dec.NumChans)
	frames := int64(-1)
	if blockAlign := int64(channels * bitDepth / 8); blockAlign > 0 {
		frames = dec.PCMLen() / blockAlign
	}

	return intpcm.NewSource(dec, int(dec.SampleRate), channels, bitDepth, frames), nil
}
