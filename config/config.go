package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ezahn/breakslice/pipeline"
	"github.com/ezahn/breakslice/waveform"
)

// Settings is the on-disk configuration, stored as JSON.
type Settings struct {
	Tempo        TempoSettings        `json:"tempo"`
	TailFade     TailFadeSettings     `json:"tailFade"`
	Downsampling DownsamplingSettings `json:"downsampling"`
	Export       ExportSettings       `json:"export"`
}

type TempoSettings struct {
	Enabled   bool    `json:"enabled"`
	TargetBPM float64 `json:"targetBpm"`
}

type TailFadeSettings struct {
	Enabled    bool    `json:"enabled"`
	DurationMS float64 `json:"durationMs"`
	Curve      string  `json:"curve"`
}

type DownsamplingSettings struct {
	Enabled      bool   `json:"enabled"`
	Method       string `json:"method"`
	TargetLength int    `json:"targetLength"`
	MinLength    int    `json:"minLength"`
	MaxLength    int    `json:"maxLength"`
}

type ExportSettings struct {
	ResampleOnExport bool `json:"resampleOnExport"`
	TargetSampleRate int  `json:"targetSampleRate"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Tempo: TempoSettings{
			Enabled:   false,
			TargetBPM: 120,
		},
		TailFade: TailFadeSettings{
			Enabled:    false,
			DurationMS: 10,
			Curve:      "exponential",
		},
		Downsampling: DownsamplingSettings{
			Enabled:      true,
			Method:       "max_min",
			TargetLength: 2000,
			MinLength:    1000,
			MaxLength:    5000,
		},
		Export: ExportSettings{
			ResampleOnExport: true,
			TargetSampleRate: 44100,
		},
	}
}

// Load reads settings from path. A missing file is not an error; the
// defaults are returned instead. A file that exists but does not parse
// is an error, so a typo never silently reverts every setting.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("reading config: %w", err)
	}

	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing config: %w", err)
	}

	return s, nil
}

// Save writes settings to path as indented JSON.
func Save(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// PipelineConfig converts the settings into a pipeline configuration.
// sourceBPM is the detected or declared tempo of the loaded audio and
// pairs with the configured target tempo.
func (s Settings) PipelineConfig(sourceBPM float64) (pipeline.Config, error) {
	curve, err := parseCurve(s.TailFade.Curve)
	if err != nil {
		return pipeline.Config{}, err
	}

	return pipeline.Config{
		Tempo: pipeline.TempoConfig{
			Enabled:   s.Tempo.Enabled,
			SourceBPM: sourceBPM,
			TargetBPM: s.Tempo.TargetBPM,
		},
		TailFade: pipeline.FadeConfig{
			Enabled:    s.TailFade.Enabled,
			DurationMS: s.TailFade.DurationMS,
			Curve:      curve,
			Power:      pipeline.DefaultFadePower,
		},
		Export: pipeline.ExportConfig{
			ResampleOnExport: s.Export.ResampleOnExport,
			TargetRate:       s.Export.TargetSampleRate,
		},
	}, nil
}

// WaveformRequest converts the settings into a downsampling request.
func (s Settings) WaveformRequest() (waveform.Request, error) {
	method, err := parseMethod(s.Downsampling.Method)
	if err != nil {
		return waveform.Request{}, err
	}

	return waveform.Request{
		TargetLength: s.Downsampling.TargetLength,
		MinLength:    s.Downsampling.MinLength,
		MaxLength:    s.Downsampling.MaxLength,
		Method:       method,
	}, nil
}

func parseCurve(name string) (pipeline.Curve, error) {
	switch name {
	case "linear":
		return pipeline.Linear, nil
	case "exponential":
		return pipeline.Exponential, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurve, name)
	}
}

func parseMethod(name string) (waveform.Method, error) {
	switch name {
	case "simple":
		return waveform.Simple, nil
	case "max_min":
		return waveform.MaxMin, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownMethod, name)
	}
}
