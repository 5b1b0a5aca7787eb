// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/utils"
)

// chunkFrames bounds the interleaved scratch buffer used per Write.
const chunkFrames = 8192

// Encoder writes integer PCM WAV containers.
type Encoder struct{}

func (Encoder) NewWriter(w io.WriteSeeker, f audio.Format) (audio.FrameWriter, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	enc := gowav.NewEncoder(w, f.SampleRate, f.BitDepth, f.Channels, formatPCM)
	fw := &frameWriter{
		enc:    enc,
		format: f,
		intBuf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: f.Channels, SampleRate: f.SampleRate},
			SourceBitDepth: f.BitDepth,
		},
	}

	// The header is only emitted with the first buffer. Writing an empty one
	// keeps a zero-frame file valid.
	fw.intBuf.Data = fw.intBuf.Data[:0]
	if err := enc.Write(fw.intBuf); err != nil {
		return nil, fmt.Errorf("writing wav header: %w", err)
	}

	return fw, nil
}

type frameWriter struct {
	enc    *gowav.Encoder
	format audio.Format
	intBuf *goaudio.IntBuffer
}

func (fw *frameWriter) WriteFrames(buf *audio.Buffer) error {
	if buf.Channels() != fw.format.Channels {
		return fmt.Errorf("%w: got %d, writer has %d", audio.ErrChannelMismatch, buf.Channels(), fw.format.Channels)
	}
	if buf.SampleRate != fw.format.SampleRate {
		return fmt.Errorf("%w: got %d, writer has %d", ErrSampleRateMismatch, buf.SampleRate, fw.format.SampleRate)
	}

	channels := fw.format.Channels
	scratch := make([]float32, min(buf.Frames(), chunkFrames)*channels)

	for start := 0; start < buf.Frames(); {
		n, err := buf.Interleave(scratch, start)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		fw.intBuf.Data = fw.intBuf.Data[:0]
		for _, x := range scratch[:n*channels] {
			fw.intBuf.Data = append(fw.intBuf.Data, utils.FloatToPCM(x, fw.format.BitDepth))
		}

		if err := fw.enc.Write(fw.intBuf); err != nil {
			return fmt.Errorf("%w", err)
		}
		start += n
	}

	return nil
}

func (fw *frameWriter) Close() error {
	if err := fw.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
