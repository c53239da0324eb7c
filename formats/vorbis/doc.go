// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio into an audio.Source.
//
// This package uses github.com/jfreymuth/oggvorbis. Vorbis already decodes
// to normalized float32, so samples pass through unscaled.
package vorbis
