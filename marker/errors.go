// SPDX-License-Identifier: EPL-2.0

package marker

import "errors"

var ErrMarkerOrder = errors.New("start marker must not pass end marker")
