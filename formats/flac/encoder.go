// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/utils"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
)

// blockSize is the number of frames per FLAC frame; the last one may be shorter.
const blockSize = 4096

// Encoder writes FLAC containers with verbatim subframes.
type Encoder struct{}

func (Encoder) NewWriter(w io.WriteSeeker, f audio.Format) (audio.FrameWriter, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if f.BitDepth > 24 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, f.BitDepth)
	}

	var layout frame.Channels
	switch f.Channels {
	case 1:
		layout = frame.ChannelsMono
	case 2:
		layout = frame.ChannelsLR
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, f.Channels)
	}

	info := &meta.StreamInfo{
		BlockSizeMin:  16,
		BlockSizeMax:  blockSize,
		SampleRate:    uint32(f.SampleRate),
		NChannels:     uint8(f.Channels),
		BitsPerSample: uint8(f.BitDepth),
	}

	enc, err := flac.NewEncoder(w, info)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &frameWriter{enc: enc, format: f, layout: layout}, nil
}

// frameWriter converts samples as they arrive and emits a FLAC frame each
// time blockSize frames are pending, so only the final frame is short.
type frameWriter struct {
	enc     *flac.Encoder
	format  audio.Format
	layout  frame.Channels
	num     uint64
	pending [][]int32
}

func (fw *frameWriter) WriteFrames(buf *audio.Buffer) error {
	if buf.Channels() != fw.format.Channels {
		return fmt.Errorf("%w: got %d, writer has %d", audio.ErrChannelMismatch, buf.Channels(), fw.format.Channels)
	}
	if buf.SampleRate != fw.format.SampleRate {
		return fmt.Errorf("%w: got %d, writer has %d", ErrSampleRateMismatch, buf.SampleRate, fw.format.SampleRate)
	}

	if fw.pending == nil {
		fw.pending = make([][]int32, fw.format.Channels)
	}
	for c, data := range buf.Data {
		for _, x := range data {
			fw.pending[c] = append(fw.pending[c], int32(utils.FloatToPCM(x, fw.format.BitDepth)))
		}
	}

	for len(fw.pending[0]) >= blockSize {
		if err := fw.flush(blockSize); err != nil {
			return err
		}
	}

	return nil
}

// flush encodes the first n pending frames.
func (fw *frameWriter) flush(n int) error {
	subframes := make([]*frame.Subframe, len(fw.pending))
	for c := range fw.pending {
		samples := make([]int32, n)
		copy(samples, fw.pending[c][:n])
		fw.pending[c] = append(fw.pending[c][:0], fw.pending[c][n:]...)

		subframes[c] = &frame.Subframe{
			SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
			Samples:   samples,
			NSamples:  n,
		}
	}

	f := &frame.Frame{
		Header: frame.Header{
			HasFixedBlockSize: true,
			BlockSize:         uint16(n),
			SampleRate:        uint32(fw.format.SampleRate),
			Channels:          fw.layout,
			BitsPerSample:     uint8(fw.format.BitDepth),
			Num:               fw.num,
		},
		Subframes: subframes,
	}
	if err := fw.enc.WriteFrame(f); err != nil {
		return fmt.Errorf("%w", err)
	}
	fw.num++

	return nil
}

// Close writes the last short frame and finalizes the stream; the encoder
// rewrites STREAMINFO with the final sample count because the destination
// can seek.
func (fw *frameWriter) Close() error {
	if len(fw.pending) > 0 && len(fw.pending[0]) > 0 {
		if err := fw.flush(len(fw.pending[0])); err != nil {
			return err
		}
	}

	if err := fw.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
