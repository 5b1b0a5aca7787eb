// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audclip/audio"
)

// go-mp3 always produces 16-bit little-endian stereo
const (
	channels       = 2
	bytesPerSample = 2
	bytesPerFrame  = channels * bytesPerSample
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// odd trailing byte of a previous read, completed by the next one
	partial []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

// Frames is derived from the decoded byte length, known only when the input
// could seek.
func (s *source) Frames() int64 {
	length := s.dec.Length()
	if length < 0 {
		return -1
	}
	return length / bytesPerFrame
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst) * bytesPerSample
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n := copy(s.buf, s.partial)
	s.partial = s.partial[:0]

	var err error
	for n < bytesPerSample && err == nil {
		var m int
		m, err = s.dec.Read(s.buf[n:])
		n += m
	}

	if n < bytesPerSample {
		// a lone byte at the end of the stream cannot form a sample
		if err == io.EOF {
			return 0, io.EOF
		}
		s.partial = append(s.partial, s.buf[:n]...)
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / bytesPerSample
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:]))
		dst[i] = float32(v) / 32768.0
	}
	if rest := n - samples*bytesPerSample; rest > 0 {
		s.partial = append(s.partial, s.buf[samples*bytesPerSample:n]...)
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("%w", err)
	}
	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
