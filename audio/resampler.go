// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/ik5/audclip/utils"
)

// lowPassAlpha is the coefficient of the one-pole filter applied before
// downsampling: y[n] = alpha*x[n] + (1-alpha)*y[n-1].
const lowPassAlpha float32 = 0.5

// ResampledFrames is the number of frames Resample produces for frames
// source frames: round(frames * dstRate / srcRate).
func ResampledFrames(frames, srcRate, dstRate int) int {
	if srcRate <= 0 || dstRate <= 0 {
		return 0
	}
	return int(math.Round(float64(frames) * float64(dstRate) / float64(srcRate)))
}

// Resample converts buf to dstRate using cubic (Catmull-Rom) interpolation.
// Channel count is preserved. When the rates already match a copy is returned.
func Resample(buf *Buffer, dstRate int) *Buffer {
	if buf.SampleRate == dstRate || buf.Frames() == 0 || buf.SampleRate <= 0 {
		out := NewBuffer(dstRate, buf.Channels(), buf.Frames())
		for c := range buf.Data {
			copy(out.Data[c], buf.Data[c])
		}
		return out
	}

	// source frames consumed per output frame
	ratio := float64(buf.SampleRate) / float64(dstRate)
	outFrames := ResampledFrames(buf.Frames(), buf.SampleRate, dstRate)
	out := NewBuffer(dstRate, buf.Channels(), outFrames)

	for c, in := range buf.Data {
		if ratio > 1.0 {
			in = lowPass(in)
		}
		resampleChannel(out.Data[c], in, ratio)
	}

	return out
}

func resampleChannel(dst, src []float32, ratio float64) {
	last := len(src) - 1
	at := func(i int) float32 {
		if i < 0 {
			return src[0]
		}
		if i > last {
			return src[last]
		}
		return src[i]
	}

	for i := range dst {
		pos := float64(i) * ratio
		idx := int(pos)
		frac := float32(pos - float64(idx))

		dst[i] = utils.CubicInterpolate(at(idx-1), at(idx), at(idx+1), at(idx+2), frac)
	}
}

func lowPass(src []float32) []float32 {
	out := make([]float32, len(src))
	if len(src) == 0 {
		return out
	}

	// seed with the first sample to avoid a warm-up transient
	state := src[0]
	for i, x := range src {
		state = lowPassAlpha*x + (1-lowPassAlpha)*state
		out[i] = state
	}

	return out
}
