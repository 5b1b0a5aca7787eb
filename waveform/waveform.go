// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	"github.com/ik5/audclip/audio"
	"github.com/ik5/audclip/container"
)

// DefaultPoints is the resolution used when a caller asks for fewer than one
// point.
const DefaultPoints = 100

// Generate reduces the first channel of buf to peak amplitudes.
//
// Frames are grouped into consecutive buckets of max(1, frames/points)
// frames and each bucket yields max(|sample|), clamped to 1. The last bucket
// may be shorter, so the result holds ceil(frames/bucket) points: usually
// points, sometimes points+1.
//
// The result is capped at points+1. On short buffers this departs from
// ceil(frames/bucket): 250 frames at 100 points give 101 peaks, not 125,
// and the last point covers every remaining frame.
//
// A buffer without frames yields points zeros. A buffer without channels
// yields an empty slice.
func Generate(buf *audio.Buffer, points int) []float32 {
	points = pointsOrDefault(points)

	if buf == nil || buf.Channels() == 0 {
		return []float32{}
	}

	samples := buf.Data[0]
	frames := len(samples)
	if frames == 0 {
		return make([]float32, points)
	}

	bucket := bucketSize(frames, points)
	n := min((frames+bucket-1)/bucket, points+1)
	out := make([]float32, n)

	for i := range out {
		start := i * bucket
		end := min(start+bucket, frames)
		if i == n-1 {
			end = frames
		}
		out[i] = peak(samples[start:end])
	}

	return out
}

func peak(samples []float32) float32 {
	var p float32
	for _, s := range samples {
		if a := float32(math.Abs(float64(s))); a > p {
			p = a
		}
	}
	return min(p, 1)
}

func pointsOrDefault(points int) int {
	if points < 1 {
		return DefaultPoints
	}
	return points
}

func bucketSize(frames, points int) int {
	return max(1, frames/pointsOrDefault(points))
}

// FromFile decodes path and returns Generate of its contents. Decode
// failures wrap audio.ErrDecode.
func FromFile(reg *audio.Registry, path string, points int) ([]float32, error) {
	f, err := container.Open(reg, path)
	if err != nil {
		return nil, err
	}

	return Generate(f.Buffer(), points), nil
}
