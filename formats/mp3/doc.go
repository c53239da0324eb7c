// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio into an audio.Source.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 streams.
// Output is always stereo 16-bit PCM converted to normalized float32.
package mp3
