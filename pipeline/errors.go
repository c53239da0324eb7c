// SPDX-License-Identifier: EPL-2.0

package pipeline

import "errors"

var (
	ErrSegmentRange = errors.New("segment range outside clip")
	ErrTempoBPM     = errors.New("tempo adjustment needs positive BPM values")
	ErrExportRate   = errors.New("export resample needs a positive target rate")
	ErrFadeCurve    = errors.New("unknown tail fade curve")
)
