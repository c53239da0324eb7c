// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"fmt"
	"math"

	"github.com/ezahn/breakslice/audio"
)

// Process runs one segment through the full chain:
//
//	extract → reverse → tempo → export resample → tail fade
//
// It is a pure function of its arguments: no shared state, no IO, and two
// calls with identical arguments produce byte-identical output. The playback
// and export paths share every stage except the export resample, so what is
// auditioned is sample-for-sample what lands in the file (save for that one
// final conversion).
func Process(clip *audio.Clip, start, end int, cfg Config, forExport bool) (*audio.Clip, error) {
	out, err := Extract(clip, start, end)
	if err != nil {
		return nil, err
	}

	if cfg.Reverse {
		reverse(out)
	}

	rate, err := AdjustedRate(out.Rate, cfg.Tempo)
	if err != nil {
		return nil, err
	}
	out.Rate = rate

	if forExport && cfg.Export.ResampleOnExport {
		if cfg.Export.TargetRate <= 0 {
			return nil, fmt.Errorf("%w: %d Hz", ErrExportRate, cfg.Export.TargetRate)
		}
		if out, err = audio.SincResampleClip(out, cfg.Export.TargetRate); err != nil {
			return nil, err
		}
	}

	if err := tailFade(out, cfg.TailFade); err != nil {
		return nil, err
	}

	return out, nil
}

// Extract copies the sample range [start, end) of every channel into a new
// clip at the source's declared rate.
func Extract(clip *audio.Clip, start, end int) (*audio.Clip, error) {
	if start < 0 || end > clip.Frames() || start >= end {
		return nil, fmt.Errorf("%w: [%d, %d) of %d frames", ErrSegmentRange, start, end, clip.Frames())
	}

	channels := make([][]float32, clip.NumChannels())
	for i, ch := range clip.Channels {
		channels[i] = make([]float32, end-start)
		copy(channels[i], ch[start:end])
	}
	return audio.NewClip(channels, clip.Rate)
}

// AdjustedRate returns the declared rate after the tempo stage: the original
// rate scaled by TargetBPM/SourceBPM, rounded to the nearest Hz. With the
// stage disabled the rate passes through untouched. Sample data is never
// modified either way — that is the whole point of rate-based pitch shift.
func AdjustedRate(rate int, cfg TempoConfig) (int, error) {
	if !cfg.Enabled {
		return rate, nil
	}
	if cfg.SourceBPM <= 0 || cfg.TargetBPM <= 0 {
		return 0, fmt.Errorf("%w: source %.3f, target %.3f", ErrTempoBPM, cfg.SourceBPM, cfg.TargetBPM)
	}
	return int(math.Round(float64(rate) * cfg.TargetBPM / cfg.SourceBPM)), nil
}

// reverse flips every channel in place.
func reverse(clip *audio.Clip) {
	for _, ch := range clip.Channels {
		for i, j := 0, len(ch)-1; i < j; i, j = i+1, j-1 {
			ch[i], ch[j] = ch[j], ch[i]
		}
	}
}

// tailFade multiplies the final DurationMS of the clip by a 1→0 envelope,
// identically and independently per channel. Fade length is measured at the
// clip's current declared rate, so a tempo-adjusted segment fades over the
// same wall-clock time it plays in.
func tailFade(clip *audio.Clip, cfg FadeConfig) error {
	if !cfg.Enabled {
		return nil
	}

	n := int(math.Round(cfg.DurationMS / 1000 * float64(clip.Rate)))
	if frames := clip.Frames(); n > frames {
		n = frames
	}
	if n < 2 {
		return nil
	}

	power := cfg.Power
	if power <= 0 {
		power = DefaultFadePower
	}

	for _, ch := range clip.Channels {
		offset := len(ch) - n
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n-1)

			var mult float64
			switch cfg.Curve {
			case Linear:
				mult = 1 - t
			case Exponential:
				mult = 1 - math.Pow(t, power)
			default:
				return fmt.Errorf("%w: %d", ErrFadeCurve, cfg.Curve)
			}

			ch[offset+i] = float32(float64(ch[offset+i]) * mult)
		}
	}
	return nil
}
