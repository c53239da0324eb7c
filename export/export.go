package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ezahn/breakslice/audio"
	"github.com/ezahn/breakslice/formats/wav"
	"github.com/ezahn/breakslice/pipeline"
)

// KeyAssignment records the key assigned to one exported segment file.
type KeyAssignment struct {
	Segment int
	Key     int
	Name    string
}

// Batch exports every segment of clip into dir as 16-bit WAV files.
//
// bounds holds the segment boundaries in ascending frame order, not
// including the implicit edges at 0 and clip.Frames(). Segments are
// processed in ascending order through the same pipeline stages used
// for playback, plus the export-only resample stage when enabled.
// Keys are assigned sequentially starting at baseKey.
//
// Each file is written to a temporary name and renamed into place, so a
// failed write never leaves a partial segment file. On the first
// failure, files already renamed stay on disk, the temporary file is
// removed, and Batch returns a nil assignment list with the error.
func Batch(ctx context.Context, clip *audio.Clip, bounds []int, cfg pipeline.Config, dir string, baseKey int) ([]KeyAssignment, error) {
	if clip == nil || clip.Frames() == 0 {
		return nil, ErrNoAudio
	}

	edges := make([]int, 0, len(bounds)+2)
	edges = append(edges, 0)
	edges = append(edges, bounds...)
	edges = append(edges, clip.Frames())

	assignments := make([]KeyAssignment, 0, len(edges)-1)

	for i := 0; i < len(edges)-1; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("export canceled: %w", err)
		}

		out, err := pipeline.Process(clip, edges[i], edges[i+1], cfg, true)
		if err != nil {
			return nil, fmt.Errorf("processing segment %d: %w", i+1, err)
		}

		name := fmt.Sprintf("segment_%d.wav", i+1)
		if err := writeSegment(dir, name, out); err != nil {
			return nil, fmt.Errorf("writing segment %d: %w", i+1, err)
		}

		assignments = append(assignments, KeyAssignment{
			Segment: i + 1,
			Key:     baseKey + i,
			Name:    name,
		})
	}

	return assignments, nil
}

func writeSegment(dir, name string, clip *audio.Clip) error {
	tmp, err := os.CreateTemp(dir, name+".tmp*")
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := wav.WriteClip(tmp, clip); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w", err)
	}

	return nil
}
