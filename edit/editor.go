// SPDX-License-Identifier: EPL-2.0

package edit

import (
	"fmt"
	"path/filepath"

	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/container"
)

// Result describes a committed output container.
type Result struct {
	Path       string
	SampleRate int
	Channels   int
	Frames     int
}

// Duration in seconds.
func (r Result) Duration() float64 {
	if r.SampleRate <= 0 {
		return 0
	}
	return float64(r.Frames) / float64(r.SampleRate)
}

// Editor applies range edits to containers on disk. The zero value uses
// container.DefaultRegistry and audio.DefaultOutputFormat.
//
// Each edit decodes the source fully before writing, and the output is
// written to a temporary file that replaces dst only once it is complete.
// dst may therefore equal src. Edits targeting the same dst are run one at
// a time; edits on different paths proceed in parallel.
type Editor struct {
	Registry *audio.Registry
	Format   audio.Format

	locks pathLocks
}

// NewEditor returns an Editor that decodes through the default container
// registry and writes audio.DefaultOutputFormat.
func NewEditor() *Editor {
	return &Editor{
		Registry: container.DefaultRegistry(),
		Format:   audio.DefaultOutputFormat(),
	}
}

// Trim writes the part of src inside r to dst.
func (e *Editor) Trim(src string, r audio.TimeRange, dst string) (Result, error) {
	unlock := e.lock(dst)
	defer unlock()

	f, err := container.Open(e.registry(), src)
	if err != nil {
		return Result{}, err
	}

	if err := r.Validate(f.Duration()); err != nil {
		return Result{}, fmt.Errorf("trimming %s: %w", src, err)
	}

	start, count := trimFrames(r, f.SampleRate(), f.TotalFrames())
	kept, err := f.ReadFrames(start, count)
	if err != nil {
		return Result{}, err
	}

	return e.write(dst, kept)
}

// Cut writes src with r removed to dst. The part before r is written first,
// followed by the part after it.
func (e *Editor) Cut(src string, r audio.TimeRange, dst string) (Result, error) {
	unlock := e.lock(dst)
	defer unlock()

	f, err := container.Open(e.registry(), src)
	if err != nil {
		return Result{}, err
	}

	if err := r.Validate(f.Duration()); err != nil {
		return Result{}, fmt.Errorf("cutting %s: %w", src, err)
	}

	total := f.TotalFrames()
	start, end := cutFrames(r, f.SampleRate(), total)

	head, err := f.ReadFrames(0, start)
	if err != nil {
		return Result{}, err
	}
	tail, err := f.ReadFrames(end, total-end)
	if err != nil {
		return Result{}, err
	}

	return e.write(dst, head, tail)
}

func (e *Editor) write(dst string, parts ...*audio.Buffer) (Result, error) {
	format := e.format()

	w, err := container.Create(e.registry(), dst, format)
	if err != nil {
		return Result{}, err
	}
	defer w.Abort()

	for _, p := range parts {
		if err := w.Write(p); err != nil {
			return Result{}, err
		}
	}

	if err := w.Commit(); err != nil {
		return Result{}, err
	}

	return Result{
		Path:       dst,
		SampleRate: format.SampleRate,
		Channels:   format.Channels,
		Frames:     w.Frames(),
	}, nil
}

func (e *Editor) registry() *audio.Registry {
	if e.Registry == nil {
		return container.DefaultRegistry()
	}
	return e.Registry
}

func (e *Editor) format() audio.Format {
	if e.Format == (audio.Format{}) {
		return audio.DefaultOutputFormat()
	}
	return e.Format
}

func (e *Editor) lock(path string) func() {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return e.locks.lock(path)
}
