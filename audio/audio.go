// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// FrameCounter is implemented by sources whose container declares its length
// up front. Frames returns a negative value when the length is unknown.
type FrameCounter interface {
	Frames() int64
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// FrameWriter appends decoded frames to an encoded container.
// Successive WriteFrames calls append in call order.
type FrameWriter interface {
	WriteFrames(buf *Buffer) error
	// Close finalizes the container. The underlying writer is not closed.
	Close() error
}

// Encoder creates a FrameWriter that encodes into w using format f.
type Encoder interface {
	NewWriter(w io.WriteSeeker, f Format) (FrameWriter, error)
}

// Registry for decoders by file extension (e.g., "wav", "mp3", "ogg") and
// encoders by codec name. Keys are case insensitive and a leading dot is ignored.
type Registry struct {
	codecs   map[string]Decoder
	encoders map[string]Encoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs:   make(map[string]Decoder),
		encoders: make(map[string]Encoder),
		mtx:      &sync.Mutex{},
	}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimPrefix(key, "."))
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeKey(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[normalizeKey(format)]
	return d, ok
}

func (r *Registry) RegisterEncoder(codec string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[normalizeKey(codec)] = e
}

func (r *Registry) Encoder(codec string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.encoders[normalizeKey(codec)]
	return e, ok
}
