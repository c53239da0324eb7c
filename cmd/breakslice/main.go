// Command breakslice cuts a breakbeat loop into sampler-ready WAV
// segments and prints the resulting key map.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezahn/breakslice"
	"github.com/ezahn/breakslice/audio"
	"github.com/ezahn/breakslice/config"
	"github.com/ezahn/breakslice/formats/aiff"
	"github.com/ezahn/breakslice/formats/mp3"
	"github.com/ezahn/breakslice/formats/vorbis"
	"github.com/ezahn/breakslice/formats/wav"
	"github.com/ezahn/breakslice/playback"
)

func main() {
	var (
		inPath     = flag.String("in", "", "input audio file (wav, mp3, ogg, aiff)")
		outDir     = flag.String("out", ".", "output directory for segment files")
		bars       = flag.Int("bars", 4, "number of bars the loop spans")
		perBar     = flag.Int("per-bar", 4, "slices per bar")
		beats      = flag.Int("beats-per-bar", 4, "beats per bar, for tempo detection")
		baseKey    = flag.Int("base-key", 60, "key assigned to the first segment")
		targetBPM  = flag.Float64("target-bpm", 0, "adjust tempo to this BPM (0 disables)")
		inputRate  = flag.Int("input-rate", 0, "resample the input to this rate before slicing (0 keeps native)")
		play       = flag.Bool("play", false, "audition the loop before exporting")
		configPath = flag.String("config", "", "settings file (JSON)")
	)
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*inPath, *outDir, *configPath, *bars, *perBar, *beats, *baseKey, *inputRate, *targetBPM, *play); err != nil {
		fmt.Fprintln(os.Stderr, "breakslice:", err)
		os.Exit(1)
	}
}

func run(inPath, outDir, configPath string, bars, perBar, beats, baseKey, inputRate int, targetBPM float64, play bool) error {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	ext := strings.TrimPrefix(filepath.Ext(inPath), ".")
	dec, ok := reg.Get(strings.ToLower(ext))
	if !ok {
		return fmt.Errorf("unsupported format: %q", ext)
	}

	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}
	defer src.Close()

	var in audio.Source = src
	if inputRate > 0 && inputRate != src.SampleRate() {
		in = audio.NewResampler(src, inputRate)
	}

	sess := breakslice.NewSession(nil)
	if err := sess.Load(in); err != nil {
		return err
	}

	settings := config.DefaultSettings()
	if configPath != "" {
		settings, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	if targetBPM > 0 {
		settings.Tempo.Enabled = true
		settings.Tempo.TargetBPM = targetBPM
	}

	sourceBPM, err := sess.SourceTempo(bars, beats)
	if err != nil {
		return err
	}

	cfg, err := settings.PipelineConfig(sourceBPM)
	if err != nil {
		return err
	}
	sess.SetConfig(cfg)

	if err := sess.SplitEven(bars, perBar); err != nil {
		return err
	}

	if play {
		player, err := playback.NewPlayer()
		if err != nil {
			return err
		}
		if err := sess.PlayRange(context.Background(), player); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	keys, err := sess.ExportAll(context.Background(), outDir, baseKey)
	if err != nil {
		return err
	}

	fmt.Printf("source tempo: %.2f BPM\n", sourceBPM)
	if settings.Tempo.Enabled {
		fmt.Printf("target tempo: %.2f BPM\n", settings.Tempo.TargetBPM)
	}
	fmt.Printf("exported %d segments to %s\n", len(keys), outDir)
	for _, k := range keys {
		fmt.Printf("  key %3d  %s\n", k.Key, k.Name)
	}

	return nil
}
