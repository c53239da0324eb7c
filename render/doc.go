// SPDX-License-Identifier: EPL-2.0

// Package render defines the display backend a session pushes updates
// to. The session owns the data model; a Backend only receives already
// downsampled waveform points, boundary positions, and marker state.
package render
