// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the package tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource synthesizes interleaved samples from a function of frame index
// and channel. It satisfies audio.Source and audio.FrameCounter without
// importing the audio package.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	chunk      int
	sample     func(frame, channel int) float32
}

// NewMockSource returns a source of frames frames whose values come from
// sample.
func NewMockSource(sampleRate, channels, frames int, sample func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		sample:     sample,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

// NewSineSource plays the same sine on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(i, _ int) float32 {
		return Sine(i, sampleRate, frequency)
	})
}

// NewRampSource yields Ramp(i, c). Neighbouring frames always differ, so an
// off-by-one slice shows up in comparisons.
func NewRampSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, Ramp)
}

// WithChunk caps every read at frames frames.
func (m *MockSource) WithChunk(frames int) *MockSource {
	m.chunk = frames
	return m
}

// Sine is the value of a unit sine at frequency Hz for frame i.
func Sine(i, sampleRate int, frequency float64) float32 {
	t := float64(i) / float64(sampleRate)
	return float32(math.Sin(2 * math.Pi * frequency * t))
}

// Ramp maps a frame index onto a repeating sawtooth in [-0.9, 0.9), offset per channel.
func Ramp(i, channel int) float32 {
	const period = 1000
	return float32((i+channel*7)%period)/period*1.8 - 0.9
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }
func (m *MockSource) Frames() int64   { return int64(m.frames) }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.pos)
	if m.chunk > 0 {
		n = min(n, m.chunk)
	}

	for f := range n {
		for c := range m.channels {
			dst[f*m.channels+c] = m.sample(m.pos+f, c)
		}
	}
	m.pos += n

	if m.pos >= m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}
