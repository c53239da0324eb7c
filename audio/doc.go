// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio primitives for breakslice.
//
// This package contains the building blocks the rest of the library is
// assembled from:
//   - Clip: a fully decoded, immutable per-channel sample buffer
//   - Source interface for streaming audio input
//   - Collect for draining a Source into a Clip
//   - Resampler for streaming sample rate conversion (audition path)
//   - SincResample for band-limited buffer conversion (export path)
//   - MonoMixer for channel mixing
//   - Registry for decoder registration
//
// # Clips
//
// A Clip holds one float32 slice per channel plus a declared sample rate:
//
//	clip, err := audio.Collect(src)
//	frames := clip.Frames()
//
// Clips are treated as immutable once built. The declared rate is load
// bearing: the processing pipeline shifts pitch by reinterpreting it, so two
// clips with identical samples and different rates sound different.
//
// # Source Interface
//
// The Source interface is the streaming side of the package:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders and streaming processors implement it, so they can be
// chained before a Collect call.
//
// # Two resamplers
//
// There are deliberately two rate converters with different trade-offs.
// Resampler streams with cubic interpolation and is cheap enough for live
// audition. SincResample is a windowed-sinc converter over a whole buffer:
// slower, band-limited, and used only on the export path where its output
// sample count (round(n × dst/src)) is part of the contract.
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]:
//   - 0.0 is silence
//   - ±1.0 is full scale
//
// The normalized format keeps intermediate processing free of bit-depth
// concerns; conversion to int16 PCM happens only at the WAV boundary.
//
// # Error Handling
//
// Streaming functions return io.EOF when no more data is available. Other
// errors indicate problems with the source or with invalid construction
// arguments, reported through the package sentinel errors.
package audio
