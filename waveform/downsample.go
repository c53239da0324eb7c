// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"math"
)

// Method selects the downsampling strategy. String method names from
// configuration files are decoded into this closed set exactly once, at the
// config boundary.
type Method int

const (
	// Simple emits one sample per window (the window-start sample).
	Simple Method = iota
	// MaxMin emits each window's maximum and minimum in temporal order,
	// preserving the true peak envelope.
	MaxMin
)

// Request describes one downsampling run. TargetLength is the number of
// windows; callers derive it from viewport width via ClampTarget. MinLength
// and MaxLength document the caller's clamp range and travel with the
// request for that purpose only.
type Request struct {
	TargetLength int
	MinLength    int
	MaxLength    int
	Method       Method
}

// Point is one output sample of the visual envelope: the frame index it
// represents and its value. Frames are monotonically non-decreasing across
// a result.
type Point struct {
	Frame int
	Value float32
}

// ClampTarget clamps a viewport-derived target length into [min, max].
func ClampTarget(target, min, max int) int {
	if target < min {
		return min
	}
	if max > 0 && target > max {
		return max
	}
	return target
}

// Downsample reduces samples to a bounded-length visual envelope. The output
// is for display only, never for audio computation.
//
// If len(samples) <= TargetLength the input is returned as points unchanged.
// Otherwise the input is partitioned into TargetLength windows with
// floating-point boundaries, so window widths never drift across the array.
// Simple emits one point per window; MaxMin emits up to two, in the order
// the extremes occur, so max(output) == max(input) and
// min(output) == min(input) always hold.
//
// The result is deterministic: identical inputs and requests produce
// identical output.
func Downsample(samples []float32, req Request) ([]Point, error) {
	if req.TargetLength <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrTargetLength, req.TargetLength)
	}

	n := len(samples)
	if n <= req.TargetLength {
		out := make([]Point, n)
		for i, v := range samples {
			out[i] = Point{Frame: i, Value: v}
		}
		return out, nil
	}

	switch req.Method {
	case Simple:
		return downsampleSimple(samples, req.TargetLength), nil
	case MaxMin:
		return downsampleMaxMin(samples, req.TargetLength), nil
	default:
		return nil, fmt.Errorf("%w: method %d", ErrUnknownMethod, req.Method)
	}
}

func downsampleSimple(samples []float32, target int) []Point {
	width := float64(len(samples)) / float64(target)
	out := make([]Point, 0, target)
	for w := 0; w < target; w++ {
		lo := int(math.Floor(float64(w) * width))
		out = append(out, Point{Frame: lo, Value: samples[lo]})
	}
	return out
}

func downsampleMaxMin(samples []float32, target int) []Point {
	width := float64(len(samples)) / float64(target)
	out := make([]Point, 0, 2*target)

	for w := 0; w < target; w++ {
		lo := int(math.Floor(float64(w) * width))
		hi := int(math.Floor(float64(w+1) * width))
		if w == target-1 {
			hi = len(samples)
		}

		maxVal, minVal := samples[lo], samples[lo]
		maxAt, minAt := lo, lo
		for i := lo + 1; i < hi; i++ {
			if samples[i] > maxVal {
				maxVal, maxAt = samples[i], i
			}
			if samples[i] < minVal {
				minVal, minAt = samples[i], i
			}
		}

		// Emit in order of occurrence; a tie (constant window) keeps max
		// first by position.
		if minAt < maxAt {
			out = append(out, Point{Frame: minAt, Value: minVal}, Point{Frame: maxAt, Value: maxVal})
		} else {
			out = append(out, Point{Frame: maxAt, Value: maxVal}, Point{Frame: minAt, Value: minVal})
		}
	}
	return out
}
