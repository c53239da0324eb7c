// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	ErrTargetLength  = errors.New("target length must be positive")
	ErrUnknownMethod = errors.New("unknown downsampling method")
)
