// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio into an audio.Source.
//
// This package uses github.com/go-audio/aiff. Only 16-bit PCM files are
// supported; samples are normalized to float32 in [-1, 1).
package aiff
