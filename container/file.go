// SPDX-License-Identifier: EPL-2.0

package container

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audclip/audio"
)

// File is a fully decoded audio container. The file on disk is closed once
// Open returns, so the same path may be rewritten while a File is in use.
type File struct {
	path string
	buf  *audio.Buffer
}

// Open decodes the container at path using the decoder registered for its
// extension. Every failure is reported as audio.ErrDecode.
func Open(reg *audio.Registry, path string) (*File, error) {
	ext := filepath.Ext(path)
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %s: %w %q", audio.ErrDecode, path, audio.ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecode, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", audio.ErrDecode, path, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", audio.ErrDecode, path, err)
	}
	if buf.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: %s: sample rate %d", audio.ErrDecode, path, buf.SampleRate)
	}

	return &File{path: path, buf: buf}, nil
}

func (f *File) Path() string          { return f.path }
func (f *File) SampleRate() int       { return f.buf.SampleRate }
func (f *File) Channels() int         { return f.buf.Channels() }
func (f *File) TotalFrames() int      { return f.buf.Frames() }
func (f *File) Duration() float64     { return f.buf.Duration() }
func (f *File) Buffer() *audio.Buffer { return f.buf }

// ReadFrames copies count frames starting at start. A range past the end of
// the decoded data is an audio.ErrDecode wrapping audio.ErrFrameRange.
func (f *File) ReadFrames(start, count int) (*audio.Buffer, error) {
	out, err := f.buf.Slice(start, count)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", audio.ErrDecode, f.path, err)
	}
	return out, nil
}
