// SPDX-License-Identifier: EPL-2.0

// Package export writes processed segments to disk as a sampler kit.
//
// Batch runs each segment through the audio pipeline with export
// semantics enabled and writes one 16-bit WAV file per segment, named
// segment_1.wav through segment_N.wav. Alongside the files it returns
// the sequential key map a sampler would use to trigger them.
package export
