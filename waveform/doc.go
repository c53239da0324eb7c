// SPDX-License-Identifier: EPL-2.0

// Package waveform summarizes sample arrays into bounded-length visual
// envelopes for display.
//
// The engine guarantees that the MaxMin method never loses a transient peak:
// the global maximum and minimum of the input always appear in the output,
// which is what makes the on-screen waveform a faithful summary of the
// signal. Output is a (frame, value) series per channel with monotone frame
// positions, cheap enough to recompute on every viewport resize.
//
// Downsampling is display-only. Audio computation always runs on the full
// sample data.
package waveform
