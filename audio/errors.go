// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrChannelCount   = errors.New("clip must have one or two channels")
	ErrChannelLength  = errors.New("clip channels must have equal length")
	ErrSampleRate     = errors.New("sample rate must be positive")
)
