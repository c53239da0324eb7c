package config

import "errors"

var (
	// ErrUnknownCurve indicates an unrecognized fade curve name.
	ErrUnknownCurve = errors.New("unknown fade curve")

	// ErrUnknownMethod indicates an unrecognized downsampling method name.
	ErrUnknownMethod = errors.New("unknown downsampling method")
)
