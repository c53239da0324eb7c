// SPDX-License-Identifier: EPL-2.0

package marker

import "fmt"

// Markers holds the optional start/end playback range for one clip. The pair
// is entirely independent of slice boundaries: segment edges never move a
// marker and markers never move a boundary.
//
// Writes clamp into [0, frames]. A write that would put start after end is
// rejected with ErrMarkerOrder, so when both markers are set the invariant
// start ≤ end always holds.
type Markers struct {
	frames   int
	start    int
	end      int
	hasStart bool
	hasEnd   bool
}

// NewMarkers creates an unset marker pair for a clip of frames samples.
func NewMarkers(frames int) *Markers {
	return &Markers{frames: frames}
}

// SetStart places the start marker at the given sample index, clamped into
// the clip. Fails if the end marker is set and would end up before it.
func (m *Markers) SetStart(at int) error {
	at = m.clamp(at)
	if m.hasEnd && at > m.end {
		return fmt.Errorf("%w: start %d after end %d", ErrMarkerOrder, at, m.end)
	}
	m.start = at
	m.hasStart = true
	return nil
}

// SetEnd places the end marker at the given sample index, clamped into the
// clip. Fails if the start marker is set and would end up after it.
func (m *Markers) SetEnd(at int) error {
	at = m.clamp(at)
	if m.hasStart && at < m.start {
		return fmt.Errorf("%w: end %d before start %d", ErrMarkerOrder, at, m.start)
	}
	m.end = at
	m.hasEnd = true
	return nil
}

// Clear unsets both markers.
func (m *Markers) Clear() {
	m.hasStart = false
	m.hasEnd = false
	m.start = 0
	m.end = 0
}

// Start returns the start marker position and whether it is set.
func (m *Markers) Start() (int, bool) { return m.start, m.hasStart }

// End returns the end marker position and whether it is set.
func (m *Markers) End() (int, bool) { return m.end, m.hasEnd }

// Range returns both marker positions when both are set.
func (m *Markers) Range() (start, end int, ok bool) {
	if !m.hasStart || !m.hasEnd {
		return 0, 0, false
	}
	return m.start, m.end, true
}

func (m *Markers) clamp(at int) int {
	if at < 0 {
		return 0
	}
	if at > m.frames {
		return m.frames
	}
	return at
}
