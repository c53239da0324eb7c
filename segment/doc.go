// SPDX-License-Identifier: EPL-2.0

// Package segment owns slice boundaries and derives segments from them.
//
// A boundary is a sample index splitting a clip in two; segment i spans
// [B(i-1), B(i)) with the clip edges implied at both ends. The model is the
// only owner of the boundary set: replacement via SetBoundaries is
// all-or-nothing, and incremental edits go through AddBoundary and
// RemoveNearestBoundary with a proximity tolerance that keeps near-identical
// slices from accumulating.
//
// The package is deliberately ignorant of playback markers. Segment edges
// come from clip extent alone.
package segment
