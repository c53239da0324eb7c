// SPDX-License-Identifier: EPL-2.0

// Package playback plays clips through the system audio device.
//
// This package uses github.com/faiface/beep for device output. The
// device runs at a fixed rate; clips with a different declared rate are
// resampled during streaming, so a clip whose rate was reinterpreted
// for tempo adjustment plays back faster or slower with the matching
// pitch shift.
package playback
