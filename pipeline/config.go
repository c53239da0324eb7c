// SPDX-License-Identifier: EPL-2.0

package pipeline

// Curve selects the tail-fade envelope shape. String curve names from
// configuration files are decoded into this closed set once, at the config
// boundary.
type Curve int

const (
	// Linear ramps the multiplier 1→0 evenly across the fade window.
	Linear Curve = iota
	// Exponential applies a power-curve decay (1 − t^p): slow start, fast
	// drop at the very end.
	Exponential
)

// DefaultFadePower is the exponent used for the Exponential curve when the
// config leaves Power unset.
const DefaultFadePower = 2.0

// TempoConfig drives the sampler-style tempo stage. The stage never
// resamples: it reinterprets the clip's declared rate by TargetBPM/SourceBPM,
// shifting pitch and duration together on playback.
type TempoConfig struct {
	Enabled   bool
	SourceBPM float64
	TargetBPM float64
}

// FadeConfig drives the tail-fade stage.
type FadeConfig struct {
	Enabled    bool
	DurationMS float64
	Curve      Curve
	Power      float64 // Exponential exponent; DefaultFadePower when <= 0
}

// ExportConfig drives the export-only resample stage.
type ExportConfig struct {
	ResampleOnExport bool
	TargetRate       int
}

// Config is the full, immutable per-call pipeline configuration. It is
// passed by value into every Process call; the pipeline reads no shared
// mutable state.
type Config struct {
	Tempo    TempoConfig
	TailFade FadeConfig
	Export   ExportConfig
	Reverse  bool
}
