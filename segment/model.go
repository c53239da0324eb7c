// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"fmt"
	"sort"
)

// DefaultTolerance is the window, in samples, within which two boundaries
// are considered the same split point.
const DefaultTolerance = 5

// Model owns the ordered set of boundary sample indices for one clip and
// derives segments from them. Boundaries are strictly inside (0, frames);
// the clip edges 0 and frames are implicit, so a model with no boundaries
// still has one segment spanning the whole clip.
//
// The model knows nothing about markers. Features that need both compose the
// two APIs explicitly.
type Model struct {
	frames int
	tol    int
	bounds []int
}

// NewModel creates an empty model for a clip of frames samples, using
// DefaultTolerance for add/remove proximity checks.
func NewModel(frames int) *Model {
	return &Model{frames: frames, tol: DefaultTolerance}
}

// SetTolerance overrides the proximity window for AddBoundary and
// RemoveNearestBoundary. Callers driving the model from on-screen click
// coordinates typically widen it to match their hit area.
func (m *Model) SetTolerance(samples int) {
	if samples < 0 {
		samples = 0
	}
	m.tol = samples
}

// Frames returns the clip length this model was built for.
func (m *Model) Frames() int { return m.frames }

// SetBoundaries replaces the boundary set wholesale. The input need not be
// sorted and may contain duplicates; it is sorted and deduplicated here. If
// any value lies outside (0, frames) nothing is changed and a boundary
// error naming the value is returned.
func (m *Model) SetBoundaries(bounds []int) error {
	next := make([]int, len(bounds))
	copy(next, bounds)
	sort.Ints(next)

	// Validate before touching state: replacement is all-or-nothing.
	for _, b := range next {
		if b <= 0 || b >= m.frames {
			return fmt.Errorf("%w: %d not in (0, %d)", ErrBoundaryOutOfRange, b, m.frames)
		}
	}

	dedup := next[:0]
	for i, b := range next {
		if i == 0 || b != next[i-1] {
			dedup = append(dedup, b)
		}
	}

	m.bounds = dedup
	return nil
}

// AddBoundary inserts a boundary at the given sample index. Adding within
// the tolerance window of an existing boundary is a silent no-op, so
// repeated clicks never pile up near-identical slices.
func (m *Model) AddBoundary(at int) error {
	if at <= 0 || at >= m.frames {
		return fmt.Errorf("%w: %d not in (0, %d)", ErrBoundaryOutOfRange, at, m.frames)
	}

	idx := sort.SearchInts(m.bounds, at)
	if idx < len(m.bounds) && abs(m.bounds[idx]-at) <= m.tol {
		return nil
	}
	if idx > 0 && abs(m.bounds[idx-1]-at) <= m.tol {
		return nil
	}

	m.bounds = append(m.bounds, 0)
	copy(m.bounds[idx+1:], m.bounds[idx:])
	m.bounds[idx] = at
	return nil
}

// RemoveNearestBoundary removes the boundary closest to the given sample
// index if it lies within the tolerance window, and reports whether a
// boundary was removed. The implicit clip edges are never removed.
func (m *Model) RemoveNearestBoundary(at int) bool {
	if len(m.bounds) == 0 {
		return false
	}

	best := 0
	for i, b := range m.bounds {
		if abs(b-at) < abs(m.bounds[best]-at) {
			best = i
		}
	}
	if abs(m.bounds[best]-at) > m.tol {
		return false
	}

	m.bounds = append(m.bounds[:best], m.bounds[best+1:]...)
	return true
}

// Boundaries returns a copy of the current boundary set, ascending.
func (m *Model) Boundaries() []int {
	out := make([]int, len(m.bounds))
	copy(out, m.bounds)
	return out
}

// SegmentCount returns the number of segments, always at least one.
func (m *Model) SegmentCount() int { return len(m.bounds) + 1 }

// SegmentBounds returns the [start, end) sample range of segment index.
// Segment 0 always starts at 0 and the last segment always ends at the clip
// length: the edges are defined by clip extent, never by marker positions.
func (m *Model) SegmentBounds(index int) (start, end int, err error) {
	if index < 0 || index >= m.SegmentCount() {
		return 0, 0, fmt.Errorf("%w: %d of %d segments", ErrSegmentIndex, index, m.SegmentCount())
	}

	if index > 0 {
		start = m.bounds[index-1]
	}
	if index < len(m.bounds) {
		end = m.bounds[index]
	} else {
		end = m.frames
	}
	return start, end, nil
}

// SegmentContaining returns the index of the segment containing the given
// sample. Samples before the clip belong to segment 0 and samples at or
// past the end (including frames-1) belong to the last segment.
func (m *Model) SegmentContaining(at int) int {
	if at < 0 {
		return 0
	}
	if at >= m.frames {
		return len(m.bounds)
	}
	// First boundary strictly greater than at marks the containing segment.
	return sort.SearchInts(m.bounds, at+1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
