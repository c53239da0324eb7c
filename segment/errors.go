// SPDX-License-Identifier: EPL-2.0

package segment

import "errors"

var (
	ErrBoundaryOutOfRange = errors.New("boundary outside clip interior")
	ErrSegmentIndex       = errors.New("segment index out of range")
)
