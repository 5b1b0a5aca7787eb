// SPDX-License-Identifier: EPL-2.0

// Package intpcm turns the integer PCM readers of go-audio's wav and aiff
// decoders into audio.Source values.
package intpcm

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audclip/utils"
)

// Reader is the PCM half of wav.Decoder and aiff.Decoder.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source normalizes integer samples of a fixed bit depth to float32.
type Source struct {
	r          Reader
	sampleRate int
	channels   int
	bitDepth   int
	frames     int64
	buf        *goaudio.IntBuffer
}

// NewSource wraps r. frames is the length hint reported by Frames; pass a
// negative value when the container does not declare it.
func NewSource(r Reader, sampleRate, channels, bitDepth int, frames int64) *Source {
	return &Source{
		r:          r,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		frames:     frames,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Frames() int64   { return s.frames }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}
	return 4096
}

// ReadSamples returns io.EOF once the reader yields no more samples.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: s.channels, SampleRate: s.sampleRate},
			SourceBitDepth: s.bitDepth,
			Data:           make([]int, len(dst)),
		}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.r.PCMBuffer(s.buf)
	for i, v := range s.buf.Data[:n] {
		dst[i] = utils.PCMToFloat(v, s.bitDepth)
	}

	switch {
	case err != nil && err != io.EOF:
		return n, fmt.Errorf("%w", err)
	case n == 0:
		return 0, io.EOF
	default:
		return n, nil
	}
}
