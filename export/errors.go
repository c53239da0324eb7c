package export

import "errors"

// ErrNoAudio indicates there is no loaded audio to export.
var ErrNoAudio = errors.New("no audio to export")
