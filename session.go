package breakslice

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/ezahn/breakslice/audio"
	"github.com/ezahn/breakslice/export"
	"github.com/ezahn/breakslice/marker"
	"github.com/ezahn/breakslice/pipeline"
	"github.com/ezahn/breakslice/render"
	"github.com/ezahn/breakslice/segment"
	"github.com/ezahn/breakslice/waveform"
)

// Sink plays a processed clip. playback.Player is the device-backed
// implementation; tests substitute their own.
type Sink interface {
	Play(ctx context.Context, clip *audio.Clip) error
}

// Session owns a loaded clip together with its segment model and
// markers, and pushes display updates to a render backend. All methods
// are safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	clip    *audio.Clip
	model   *segment.Model
	marks   *marker.Markers
	cfg     pipeline.Config
	backend render.Backend
}

// NewSession returns an empty session. A nil backend is replaced with
// render.Null.
func NewSession(backend render.Backend) *Session {
	if backend == nil {
		backend = render.Null{}
	}
	return &Session{backend: backend}
}

// Load decodes src in full and makes it the session's clip. Any
// previous clip, boundaries, and markers are discarded.
func (s *Session) Load(src audio.Source) error {
	clip, err := audio.Collect(src)
	if err != nil {
		return fmt.Errorf("loading audio: %w", err)
	}
	return s.LoadClip(clip)
}

// LoadClip makes clip the session's audio, resetting boundaries and
// markers.
func (s *Session) LoadClip(clip *audio.Clip) error {
	if clip == nil || clip.Frames() == 0 {
		return ErrNoClip
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clip = clip
	s.model = segment.NewModel(clip.Frames())
	s.marks = marker.NewMarkers(clip.Frames())
	s.pushSegments()
	s.pushMarkers()
	return nil
}

// SetConfig replaces the processing configuration used for playback
// and export.
func (s *Session) SetConfig(cfg pipeline.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

// Config returns the current processing configuration.
func (s *Session) Config() pipeline.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Frames reports the length of the loaded clip, 0 when nothing is
// loaded.
func (s *Session) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clip == nil {
		return 0
	}
	return s.clip.Frames()
}

// SourceTempo derives the clip's tempo in BPM from its duration, given
// how many bars the loop spans and the meter. A four bar loop of 4/4
// lasting 7.06 seconds comes out near 136 BPM.
func (s *Session) SourceTempo(numBars int, beatsPerBar int) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clip == nil {
		return 0, ErrNoClip
	}
	if numBars <= 0 || beatsPerBar <= 0 {
		return 0, fmt.Errorf("%w: %d bars of %d beats", ErrBarCount, numBars, beatsPerBar)
	}

	beats := float64(numBars * beatsPerBar)
	return beats * 60 / s.clip.Duration(), nil
}

// SplitEven replaces all boundaries with an even grid. The clip is cut
// into numBars*perBar segments of equal length; perBar is the number of
// slices per bar, typically a power of two.
func (s *Session) SplitEven(numBars, perBar int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clip == nil {
		return ErrNoClip
	}
	if numBars <= 0 || perBar <= 0 {
		return fmt.Errorf("%w: %d bars, %d per bar", ErrBarCount, numBars, perBar)
	}

	total := numBars * perBar
	frames := s.clip.Frames()

	bounds := make([]int, 0, total-1)
	for i := 1; i < total; i++ {
		b := int(math.Round(float64(i) * float64(frames) / float64(total)))
		if b > 0 && b < frames {
			bounds = append(bounds, b)
		}
	}

	if err := s.model.SetBoundaries(bounds); err != nil {
		return err
	}
	s.pushSegments()
	return nil
}

// SetBoundaries replaces all boundaries at once. On error no boundary
// changes.
func (s *Session) SetBoundaries(bounds []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clip == nil {
		return ErrNoClip
	}
	if err := s.model.SetBoundaries(bounds); err != nil {
		return err
	}
	s.pushSegments()
	return nil
}

// AddBoundary inserts a boundary at the given frame.
func (s *Session) AddBoundary(at int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clip == nil {
		return ErrNoClip
	}
	if err := s.model.AddBoundary(at); err != nil {
		return err
	}
	s.pushSegments()
	return nil
}

// RemoveBoundary removes the boundary nearest to the given frame, if
// one lies within the model's tolerance. It reports whether a boundary
// was removed.
func (s *Session) RemoveBoundary(at int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clip == nil {
		return false
	}
	removed := s.model.RemoveNearestBoundary(at)
	if removed {
		s.pushSegments()
	}
	return removed
}

// Boundaries returns the current boundary positions in ascending order.
func (s *Session) Boundaries() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.model == nil {
		return nil
	}
	return s.model.Boundaries()
}

// SegmentCount reports the number of segments the clip is cut into.
func (s *Session) SegmentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.model == nil {
		return 0
	}
	return s.model.SegmentCount()
}

// SetBoundaryTolerance widens or narrows the proximity window used by
// AddBoundary and RemoveBoundary. Frontends driving from click
// coordinates typically set this from their zoom level.
func (s *Session) SetBoundaryTolerance(samples int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.model != nil {
		s.model.SetTolerance(samples)
	}
}

// SegmentContaining returns the index of the segment holding the given
// frame, clamping out-of-range positions to the first or last segment.
func (s *Session) SegmentContaining(at int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.model == nil {
		return 0
	}
	return s.model.SegmentContaining(at)
}

// SetStartMarker places the start marker, clamped into the clip.
func (s *Session) SetStartMarker(at int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clip == nil {
		return ErrNoClip
	}
	if err := s.marks.SetStart(at); err != nil {
		return err
	}
	s.pushMarkers()
	return nil
}

// SetEndMarker places the end marker, clamped into the clip.
func (s *Session) SetEndMarker(at int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clip == nil {
		return ErrNoClip
	}
	if err := s.marks.SetEnd(at); err != nil {
		return err
	}
	s.pushMarkers()
	return nil
}

// ClearMarkers removes both markers.
func (s *Session) ClearMarkers() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.marks == nil {
		return
	}
	s.marks.Clear()
	s.pushMarkers()
}

// PlaySegment processes the indexed segment with playback semantics
// and plays it through sink. The export-only resample stage is never
// applied here; tempo adjustment is audible through the clip's
// reinterpreted rate.
func (s *Session) PlaySegment(ctx context.Context, sink Sink, index int) error {
	s.mu.Lock()
	if s.clip == nil {
		s.mu.Unlock()
		return ErrNoClip
	}
	start, end, err := s.model.SegmentBounds(index)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	clip, cfg := s.clip, s.cfg
	s.mu.Unlock()

	out, err := pipeline.Process(clip, start, end, cfg, false)
	if err != nil {
		return err
	}
	return sink.Play(ctx, out)
}

// PlayRange plays the region between the start and end markers. With
// no markers set, the whole clip plays.
func (s *Session) PlayRange(ctx context.Context, sink Sink) error {
	s.mu.Lock()
	if s.clip == nil {
		s.mu.Unlock()
		return ErrNoClip
	}
	start, end := s.markerRange()
	clip, cfg := s.clip, s.cfg
	s.mu.Unlock()

	out, err := pipeline.Process(clip, start, end, cfg, false)
	if err != nil {
		return err
	}
	return sink.Play(ctx, out)
}

// ExportAll writes every segment into dir as WAV files and returns the
// key map, assigning sequential keys from baseKey upward.
func (s *Session) ExportAll(ctx context.Context, dir string, baseKey int) ([]export.KeyAssignment, error) {
	s.mu.Lock()
	if s.clip == nil {
		s.mu.Unlock()
		return nil, ErrNoClip
	}
	clip, bounds, cfg := s.clip, s.model.Boundaries(), s.cfg
	s.mu.Unlock()

	return export.Batch(ctx, clip, bounds, cfg, dir, baseKey)
}

// Trim cuts the clip down to the marker range and reloads the result,
// discarding boundaries and markers like a fresh load.
func (s *Session) Trim() error {
	s.mu.Lock()

	if s.clip == nil {
		s.mu.Unlock()
		return ErrNoClip
	}
	start, end := s.markerRange()
	trimmed, err := pipeline.Extract(s.clip, start, end)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	return s.LoadClip(trimmed)
}

// Waveform downsamples each channel for display and pushes the points
// to the render backend. The returned slice has one entry per channel.
func (s *Session) Waveform(req waveform.Request) ([][]waveform.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clip == nil {
		return nil, ErrNoClip
	}

	req.TargetLength = waveform.ClampTarget(req.TargetLength, req.MinLength, req.MaxLength)

	out := make([][]waveform.Point, s.clip.NumChannels())
	for ch := range s.clip.Channels {
		pts, err := waveform.Downsample(s.clip.Channels[ch], req)
		if err != nil {
			return nil, err
		}
		out[ch] = pts
		s.backend.UpdateWaveform(ch, pts)
	}
	return out, nil
}

// markerRange resolves the playback region. An unset start means the
// beginning of the clip, an unset end means its last frame. Callers
// must hold s.mu.
func (s *Session) markerRange() (int, int) {
	start, end := 0, s.clip.Frames()
	if at, ok := s.marks.Start(); ok {
		start = at
	}
	if at, ok := s.marks.End(); ok {
		end = at
	}
	return start, end
}

func (s *Session) pushSegments() {
	s.backend.UpdateSegments(s.model.Boundaries())
}

func (s *Session) pushMarkers() {
	start, hasStart := s.marks.Start()
	end, hasEnd := s.marks.End()
	s.backend.UpdateMarkers(start, end, hasStart, hasEnd)
}
