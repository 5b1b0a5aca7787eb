// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/container"
)

// Summary is a waveform together with the stream properties needed to lay
// it out on a time axis.
type Summary struct {
	Path       string    `json:"path"`
	SampleRate int       `json:"sample_rate"`
	Channels   int       `json:"channels"`
	Frames     int       `json:"frames"`
	Duration   float64   `json:"duration"`
	Resolution int       `json:"resolution"`
	Peaks      []float32 `json:"peaks"`
}

// Summarize decodes path and builds its Summary. Resolution is the number of
// frames behind each peak.
func Summarize(reg *audio.Registry, path string, points int) (*Summary, error) {
	f, err := container.Open(reg, path)
	if err != nil {
		return nil, err
	}

	peaks := Generate(f.Buffer(), points)

	resolution := 0
	if f.TotalFrames() > 0 && f.Channels() > 0 {
		resolution = bucketSize(f.TotalFrames(), points)
	}

	return &Summary{
		Path:       path,
		SampleRate: f.SampleRate(),
		Channels:   f.Channels(),
		Frames:     f.TotalFrames(),
		Duration:   f.Duration(),
		Resolution: resolution,
		Peaks:      peaks,
	}, nil
}
