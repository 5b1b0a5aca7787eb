// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/utils"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameParser is an interface for flac.Stream to allow testing
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	stream     frameParser
	closer     io.Closer
	sampleRate int
	channels   int
	bitDepth   int
	frames     int64

	// interleaved samples of the last parsed frame not yet returned
	pending []float32
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 * s.channels }
func (s *source) Frames() int64   { return s.frames }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	written := 0
	for written < len(dst) {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.next(); err != nil {
				return written, err
			}
			continue
		}

		n := copy(dst[written:], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	if written == 0 && s.eof && len(dst) > 0 {
		return 0, io.EOF
	}
	return written, nil
}

// next parses one FLAC frame into pending.
func (s *source) next() error {
	f, err := s.stream.ParseNext()
	if err == io.EOF {
		s.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: frame has %d subframes, stream has %d channels",
			audio.ErrChannelMismatch, len(f.Subframes), s.channels)
	}

	blockSize := int(f.BlockSize)
	s.pending = s.pending[:0]
	for i := range blockSize {
		for _, sub := range f.Subframes {
			s.pending = append(s.pending, utils.PCMToFloat(int(sub.Samples[i]), s.bitDepth))
		}
	}

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := stream.Info
	frames := int64(info.NSamples)
	if frames == 0 {
		// zero means unknown in STREAMINFO
		frames = -1
	}

	return &source{
		stream:     stream,
		closer:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
		frames:     frames,
	}, nil
}
