package playback

import "errors"

// ErrNothingToPlay indicates an empty or missing clip was passed to Play.
var ErrNothingToPlay = errors.New("nothing to play")
