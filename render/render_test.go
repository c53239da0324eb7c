package render

import (
	"errors"
	"testing"

	"github.com/ezahn/breakslice/waveform"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		backend string
		wantErr error
	}{
		{name: "null", backend: "null"},
		{name: "memory", backend: "memory"},
		{name: "unknown", backend: "opengl", wantErr: ErrUnknownBackend},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := New(tt.backend)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New(%q) error = %v, want %v", tt.backend, err, tt.wantErr)
			}
			if tt.wantErr == nil && b == nil {
				t.Errorf("New(%q) returned nil backend", tt.backend)
			}
		})
	}
}

func TestMemory(t *testing.T) {
	t.Parallel()

	m := NewMemory()

	pts := []waveform.Point{{Frame: 0, Value: 0.5}, {Frame: 10, Value: -0.5}}
	m.UpdateWaveform(0, pts)
	m.UpdateSegments([]int{100, 200})
	m.UpdateMarkers(50, 250, true, true)

	if len(m.Waveforms[0]) != 2 {
		t.Errorf("Waveforms[0] has %d points, want 2", len(m.Waveforms[0]))
	}
	if len(m.Bounds) != 2 || m.Bounds[0] != 100 {
		t.Errorf("Bounds = %v, want [100 200]", m.Bounds)
	}
	if !m.HasStart || !m.HasEnd || m.Start != 50 || m.End != 250 {
		t.Errorf("markers = (%d, %d, %v, %v)", m.Start, m.End, m.HasStart, m.HasEnd)
	}
}
