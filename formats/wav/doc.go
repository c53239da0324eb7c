// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV audio.
//
// The decoder handles canonical-layout 16-bit PCM files and produces an
// audio.Source. The writer persists clips through the github.com/go-audio
// encoder, honoring each clip's declared sample rate, which is what the
// export path relies on to keep sampler-style tempo adjustment intact in
// the output files.
package wav
