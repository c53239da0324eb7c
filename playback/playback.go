package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/ezahn/breakslice/audio"
)

// clipStreamer adapts an audio.Clip to a beep.Streamer. Mono clips are
// duplicated to both output channels.
type clipStreamer struct {
	clip *audio.Clip
	pos  int
}

func (s *clipStreamer) Stream(samples [][2]float64) (int, bool) {
	frames := s.clip.Frames()
	if s.pos >= frames {
		return 0, false
	}

	left := s.clip.Channels[0]
	right := left
	if s.clip.Stereo() {
		right = s.clip.Channels[1]
	}

	n := 0
	for n < len(samples) && s.pos < frames {
		samples[n][0] = float64(left[s.pos])
		samples[n][1] = float64(right[s.pos])
		s.pos++
		n++
	}

	return n, true
}

func (s *clipStreamer) Err() error { return nil }

// DeviceRate is the sample rate the output device is opened at. Clips
// whose declared rate differs are resampled on the fly, which is how
// tempo adjustment becomes audible without touching the stored samples.
const DeviceRate = 44100

// contextBufferDuration sizes the device buffer. Shorter means lower
// latency but more underrun risk.
const contextBufferDuration = 100 * time.Millisecond

var initOnce sync.Once

// Player plays clips through the system audio device.
type Player struct {
	initErr error
}

// NewPlayer opens the audio device. The device is initialized once per
// process; subsequent players share it.
func NewPlayer() (*Player, error) {
	p := &Player{}
	initOnce.Do(func() {
		sr := beep.SampleRate(DeviceRate)
		p.initErr = speaker.Init(sr, sr.N(contextBufferDuration))
	})
	if p.initErr != nil {
		return nil, fmt.Errorf("opening audio device: %w", p.initErr)
	}
	return p, nil
}

// Play blocks until the clip finishes or ctx is canceled.
func (p *Player) Play(ctx context.Context, clip *audio.Clip) error {
	if clip == nil || clip.Frames() == 0 {
		return ErrNothingToPlay
	}

	var stream beep.Streamer = &clipStreamer{clip: clip}
	if clip.Rate != DeviceRate {
		stream = beep.Resample(4, beep.SampleRate(clip.Rate), beep.SampleRate(DeviceRate), stream)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return fmt.Errorf("playback canceled: %w", ctx.Err())
	}
}
