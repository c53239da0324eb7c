package breakslice

import "errors"

var (
	// ErrNoClip indicates a session operation was attempted before any
	// audio was loaded.
	ErrNoClip = errors.New("no audio loaded")

	// ErrBarCount indicates a non-positive bar or beat count.
	ErrBarCount = errors.New("invalid bar count")
)
