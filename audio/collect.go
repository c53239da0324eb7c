// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Collect drains src into a Clip, deinterleaving its channels. The whole
// stream is loaded into memory; slicing and preview work on in-memory
// buffers, so this is the load step of a session.
func Collect(src Source) (*Clip, error) {
	channels := src.Channels()
	if channels < 1 || channels > 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrChannelCount, channels)
	}

	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}
	// Keep whole frames per read so deinterleaving never splits a frame.
	bufSize -= bufSize % channels
	if bufSize == 0 {
		bufSize = channels
	}

	data := make([][]float32, channels)
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			frames := n / channels
			for f := 0; f < frames; f++ {
				for c := 0; c < channels; c++ {
					data[c] = append(data[c], buf[f*channels+c])
				}
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return NewClip(data, src.SampleRate())
}

// CollectMono is Collect with a MonoMixer in front of the source, for
// sessions that want a single-channel clip regardless of the input layout.
func CollectMono(src Source) (*Clip, error) {
	return Collect(NewMonoMixer(src))
}
