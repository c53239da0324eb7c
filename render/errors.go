package render

import "errors"

// ErrUnknownBackend indicates New was asked for a backend it does not know.
var ErrUnknownBackend = errors.New("unknown render backend")
