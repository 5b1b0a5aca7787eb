// SPDX-License-Identifier: EPL-2.0

package container

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/audclip/audio"
)

// newFilePerm is the mode given to an output that did not exist before.
const newFilePerm os.FileMode = 0o644

// Writer encodes into a temporary file next to its destination. Commit
// atomically renames the temporary file over the destination, so the
// previous contents stay intact until the new container is complete.
type Writer struct {
	path   string
	format audio.Format
	tmp    *os.File
	fw     audio.FrameWriter
	frames int
	done   bool
}

// Create prepares a Writer for path. Every failure is reported as
// audio.ErrEncode.
func Create(reg *audio.Registry, path string, format audio.Format) (*Writer, error) {
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrEncode, err)
	}

	enc, ok := reg.Encoder(format.Codec)
	if !ok {
		return nil, fmt.Errorf("%w: %w %q", audio.ErrEncode, audio.ErrUnsupportedFormat, format.Codec)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrEncode, err)
	}

	// CreateTemp uses 0600 and the rename keeps it.
	if err := tmp.Chmod(outputPerm(path)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("%w: %w", audio.ErrEncode, err)
	}

	// Encoders only see Write and Seek; closing the file is ours to do.
	fw, err := enc.NewWriter(struct{ io.WriteSeeker }{tmp}, format)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("%w: %w", audio.ErrEncode, err)
	}

	return &Writer{path: path, format: format, tmp: tmp, fw: fw}, nil
}

// outputPerm is the mode of an existing destination, or newFilePerm.
func outputPerm(path string) os.FileMode {
	if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
		return fi.Mode().Perm()
	}
	return newFilePerm
}

// Frames written so far, at the output sample rate.
func (w *Writer) Frames() int { return w.frames }

// Write converts buf to the writer's channel count and sample rate and
// appends it. Empty buffers are a no-op.
func (w *Writer) Write(buf *audio.Buffer) error {
	if w.done {
		return fmt.Errorf("%w: writer for %s already finished", audio.ErrEncode, w.path)
	}
	if buf.Frames() == 0 {
		return nil
	}

	out := buf
	if out.Channels() != w.format.Channels {
		out = audio.Remix(out, w.format.Channels)
	}
	if out.SampleRate != w.format.SampleRate {
		out = audio.Resample(out, w.format.SampleRate)
	}

	if err := w.fw.WriteFrames(out); err != nil {
		return fmt.Errorf("%w: %s: %w", audio.ErrEncode, w.path, err)
	}
	w.frames += out.Frames()

	return nil
}

// Commit finalizes the container and renames it over the destination.
func (w *Writer) Commit() error {
	if w.done {
		return fmt.Errorf("%w: writer for %s already finished", audio.ErrEncode, w.path)
	}
	w.done = true

	err := w.fw.Close()
	if err == nil {
		err = w.tmp.Sync()
	}
	if cerr := w.tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(w.tmp.Name(), w.path)
	}

	if err != nil {
		os.Remove(w.tmp.Name())
		return fmt.Errorf("%w: %s: %w", audio.ErrEncode, w.path, err)
	}

	return nil
}

// Abort discards the temporary file. The destination is left untouched.
// Calling Abort after Commit is a no-op.
func (w *Writer) Abort() error {
	if w.done {
		return nil
	}
	w.done = true

	err := errors.Join(w.fw.Close(), w.tmp.Close())
	if rerr := os.Remove(w.tmp.Name()); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
		err = errors.Join(err, rerr)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrEncode, err)
	}
	return nil
}
