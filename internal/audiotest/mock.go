// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates deterministic audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates interleaved samples from a waveform function.
// It satisfies audio.Source without importing it, to stay usable from
// any package.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame, channel int) float32
}

// NewMockSource returns a source producing totalFrames frames, each
// sample computed by waveform from its frame index and channel.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource returns a source of all zeros.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return 0
	})
}

// NewSineSource returns a source producing a sine wave at the given
// frequency on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource returns a source where every sample equals value.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

// NewRampSource returns a source rising linearly from 0 toward 1 over
// its length, offset slightly per channel so channels stay
// distinguishable after deinterleaving.
func NewRampSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return float32(frame+channel) / float32(totalFrames+channels)
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if remaining := m.totalFrames - m.generated; frames > remaining {
		frames = remaining
	}

	for frame := 0; frame < frames; frame++ {
		idx := m.generated + frame
		for ch := 0; ch < m.channels; ch++ {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += frames
	samples := frames * m.channels

	if m.generated >= m.totalFrames {
		return samples, io.EOF
	}
	return samples, nil
}
