// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audclip/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 - 4096%s.channels }

// Frames is the per-channel length declared by the last Ogg page, or -1.
func (s *source) Frames() int64 {
	if n := s.dec.Length(); n > 0 {
		return n
	}
	return -1
}

// ReadSamples decodes straight into dst. oggvorbis reads interleaved values
// and reports how many values it wrote.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	n, err := s.dec.Read(dst)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	if n == 0 && err == nil {
		return 0, io.EOF
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if dec.Channels() <= 0 {
		return nil, fmt.Errorf("%w: vorbis stream has no channels", audio.ErrDecode)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
