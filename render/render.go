package render

import (
	"fmt"

	"github.com/ezahn/breakslice/waveform"
)

// DragHandler is called while a boundary or marker is being dragged.
// frame is the current position snapped into the valid range.
type DragHandler func(frame int)

// Backend receives display updates from a session. Implementations
// draw the waveform, segment boundaries, and markers however they
// like; the session pushes updates whenever the model changes.
type Backend interface {
	// UpdateWaveform replaces the displayed points for one channel.
	UpdateWaveform(channel int, points []waveform.Point)

	// UpdateSegments replaces the displayed boundary positions.
	UpdateSegments(bounds []int)

	// UpdateMarkers replaces the displayed start and end markers.
	// hasStart and hasEnd report whether each marker is set.
	UpdateMarkers(start, end int, hasStart, hasEnd bool)
}

// Null discards all updates. It is the backend for headless use.
type Null struct{}

func (Null) UpdateWaveform(int, []waveform.Point) {}
func (Null) UpdateSegments([]int)                 {}
func (Null) UpdateMarkers(int, int, bool, bool)   {}

// Memory records the most recent update of each kind, for tests and
// for frontends that poll instead of subscribing.
type Memory struct {
	Waveforms map[int][]waveform.Point
	Bounds    []int
	Start     int
	End       int
	HasStart  bool
	HasEnd    bool
}

func NewMemory() *Memory {
	return &Memory{Waveforms: make(map[int][]waveform.Point)}
}

func (m *Memory) UpdateWaveform(channel int, points []waveform.Point) {
	m.Waveforms[channel] = points
}

func (m *Memory) UpdateSegments(bounds []int) {
	m.Bounds = bounds
}

func (m *Memory) UpdateMarkers(start, end int, hasStart, hasEnd bool) {
	m.Start = start
	m.End = end
	m.HasStart = hasStart
	m.HasEnd = hasEnd
}

// New returns the named backend. Known names are "null" and "memory".
func New(name string) (Backend, error) {
	switch name {
	case "null":
		return Null{}, nil
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, name)
	}
}
