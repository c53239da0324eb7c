// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/window"
)

const (
	sincZeroCrossings = 16  // kernel half-width in zero crossings
	sincPhaseSteps    = 512 // table resolution per zero crossing
)

// sincTable is the full symmetric windowed-sinc kernel, sampled at
// sincPhaseSteps points per zero crossing.
var sincTable = buildSincTable()

func buildSincTable() []float64 {
	n := 2*sincZeroCrossings*sincPhaseSteps + 1
	tbl := make([]float64, n)
	center := n / 2
	for i := range tbl {
		x := float64(i-center) / sincPhaseSteps
		tbl[i] = sinc(x)
	}
	// A Blackman window over the kernel span tames the truncation lobes.
	return window.Blackman(tbl)
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}

// kernelAt evaluates the windowed kernel at x (in zero-crossing units) by
// linear interpolation between table entries.
func kernelAt(x float64) float64 {
	pos := x*sincPhaseSteps + float64(len(sincTable)/2)
	if pos <= 0 || pos >= float64(len(sincTable)-1) {
		return 0
	}
	i := int(pos)
	frac := pos - float64(i)
	return sincTable[i]*(1-frac) + sincTable[i+1]*frac
}

// SincResample converts one channel of samples from srcRate to dstRate using
// band-limited windowed-sinc interpolation. The output holds
// round(len(in) × dstRate/srcRate) samples. The result is deterministic:
// identical inputs always produce identical output.
//
// This is the export-quality converter; the streaming audition path uses
// Resampler instead.
func SincResample(in []float32, srcRate, dstRate int) ([]float32, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("%w: %d Hz -> %d Hz", ErrSampleRate, srcRate, dstRate)
	}
	if srcRate == dstRate {
		out := make([]float32, len(in))
		copy(out, in)
		return out, nil
	}
	if len(in) == 0 {
		return []float32{}, nil
	}

	ratio := float64(srcRate) / float64(dstRate)
	outLen := int(math.Round(float64(len(in)) / ratio))
	out := make([]float32, outLen)

	// When downsampling the kernel is stretched by 1/cutoff so the pass band
	// stops at the destination Nyquist.
	cutoff := 1.0
	if ratio > 1 {
		cutoff = 1.0 / ratio
	}
	halfWidth := int(math.Ceil(float64(sincZeroCrossings) / cutoff))

	for i := range out {
		center := float64(i) * ratio
		base := int(math.Floor(center))

		var sum, weight float64
		for j := base - halfWidth + 1; j <= base+halfWidth; j++ {
			w := kernelAt((float64(j) - center) * cutoff)
			if w == 0 {
				continue
			}
			weight += w

			// Clamp taps that reach past the buffer to the edge samples.
			idx := j
			if idx < 0 {
				idx = 0
			} else if idx >= len(in) {
				idx = len(in) - 1
			}
			sum += w * float64(in[idx])
		}
		if weight != 0 {
			out[i] = float32(sum / weight)
		}
	}

	return out, nil
}

// SincResampleClip applies SincResample to every channel of clip and returns
// a new clip declared at dstRate.
func SincResampleClip(clip *Clip, dstRate int) (*Clip, error) {
	channels := make([][]float32, clip.NumChannels())
	for i, ch := range clip.Channels {
		out, err := SincResample(ch, clip.Rate, dstRate)
		if err != nil {
			return nil, err
		}
		channels[i] = out
	}
	return NewClip(channels, dstRate)
}
