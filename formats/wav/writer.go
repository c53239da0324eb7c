// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ezahn/breakslice/audio"
	"github.com/ezahn/breakslice/utils"
)

// WriteClip writes clip as 16-bit PCM WAV at its declared sample rate. Mono
// and stereo clips are supported; the declared rate goes into the header
// verbatim, which is how tempo-adjusted segments keep their pitch character
// on disk when export resampling is off.
func WriteClip(w io.WriteSeeker, clip *audio.Clip) error {
	enc := gowav.NewEncoder(w, clip.Rate, 16, clip.NumChannels(), 1)

	frames := clip.Frames()
	channels := clip.NumChannels()

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  clip.Rate,
		},
		Data:           make([]int, frames*channels),
		SourceBitDepth: 16,
	}

	for f := 0; f < frames; f++ {
		for c := 0; c < channels; c++ {
			buf.Data[f*channels+c] = int(utils.Float32ToInt16(clip.Channels[c][f]))
		}
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
