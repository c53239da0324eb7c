// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Clip is a fully decoded audio buffer: one sample slice per channel plus a
// declared sample rate. A Clip is treated as immutable once built; processing
// stages that change sample data work on copies.
//
// The declared rate is exactly that: a declaration. Reinterpreting it (as the
// tempo stage does) changes perceived pitch and duration on playback without
// touching the samples, the way rate-based hardware samplers shift pitch.
type Clip struct {
	Channels [][]float32
	Rate     int
}

// NewClip builds a Clip from per-channel sample slices. All channels must
// have the same length; only mono and stereo layouts are supported.
func NewClip(channels [][]float32, rate int) (*Clip, error) {
	if len(channels) < 1 || len(channels) > 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrChannelCount, len(channels))
	}
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d Hz", ErrSampleRate, rate)
	}
	for i := 1; i < len(channels); i++ {
		if len(channels[i]) != len(channels[0]) {
			return nil, fmt.Errorf("%w: channel 0 has %d frames, channel %d has %d",
				ErrChannelLength, len(channels[0]), i, len(channels[i]))
		}
	}

	return &Clip{Channels: channels, Rate: rate}, nil
}

// Frames returns the per-channel sample count.
func (c *Clip) Frames() int {
	if len(c.Channels) == 0 {
		return 0
	}
	return len(c.Channels[0])
}

// NumChannels returns the channel count (1 or 2).
func (c *Clip) NumChannels() int { return len(c.Channels) }

// Stereo reports whether the clip has two channels.
func (c *Clip) Stereo() bool { return len(c.Channels) == 2 }

// Duration returns the clip length in seconds at its declared rate.
func (c *Clip) Duration() float64 {
	return float64(c.Frames()) / float64(c.Rate)
}

// FrameAt converts a time in seconds to the nearest frame index, clamped
// into [0, Frames()].
func (c *Clip) FrameAt(seconds float64) int {
	frame := int(math.Round(seconds * float64(c.Rate)))
	if frame < 0 {
		return 0
	}
	if frames := c.Frames(); frame > frames {
		return frames
	}
	return frame
}

// Clone returns a deep copy. The copy may be mutated freely.
func (c *Clip) Clone() *Clip {
	channels := make([][]float32, len(c.Channels))
	for i, ch := range c.Channels {
		channels[i] = make([]float32, len(ch))
		copy(channels[i], ch)
	}
	return &Clip{Channels: channels, Rate: c.Rate}
}
