// SPDX-License-Identifier: EPL-2.0

// Package pipeline turns a slice of a clip into an output buffer for
// audition or export.
//
// The chain runs in a strict order: extraction, optional reverse, tempo
// reinterpretation, export-only band-limited resample, tail fade. Tempo
// adjustment deliberately reproduces obsolete hardware-sampler behavior:
// it rewrites the clip's declared sample rate instead of time-stretching,
// so pitch and duration move together. The export resample then converts
// the adjusted clip back to a standard rate, changing the sample count but
// not the pitch/duration character.
//
// Everything before the export resample is byte-identical between the
// audition and export paths. That parity is the package's core contract:
// what the user hears when previewing a slice is exactly what the exported
// file contains, modulo the one final rate conversion.
//
// Process is pure: configuration arrives as an immutable value per call and
// the input clip is never mutated.
package pipeline
