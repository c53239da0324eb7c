// SPDX-License-Identifier: EPL-2.0

// Package breakslice cuts breakbeat loops into sampler-ready segments.
//
// A Session owns a loaded clip, the boundaries that slice it, and an
// optional start/end marker pair. Segments are auditioned and exported
// through a shared deterministic pipeline: extract, optional reverse,
// optional tempo adjustment, and an optional tail fade. Tempo
// adjustment works the way a hardware sampler does, by reinterpreting
// the clip's declared sample rate, so content is never resampled for
// playback and pitch shifts together with speed. Export adds a single
// high-quality resample stage so files land at a standard rate.
//
// # Supported Formats
//
// Audio is loaded through the decoders in formats/:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
//	f, _ := os.Open("break.wav")
//	src, _ := wav.Decoder{}.Decode(f)
//
//	sess := breakslice.NewSession(nil)
//	_ = sess.Load(src)
//	_ = sess.SplitEven(4, 4) // 4 bars, 4 slices per bar
//
//	keys, _ := sess.ExportAll(context.Background(), "kit/", 60)
//
// Each exported file is a 16-bit WAV named segment_N.wav, and keys
// maps segments to sequential sampler keys starting at the base key.
//
// The waveform package downsamples channels for display, and the
// render package defines the backend a frontend plugs in to receive
// waveform, boundary, and marker updates.
package breakslice
