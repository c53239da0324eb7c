package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ezahn/breakslice/audio"
)

// buildWAV assembles a canonical 44-byte-header PCM16 WAV in memory.
func buildWAV(t *testing.T, sampleRate, channels int, samples []int16) []byte {
	t.Helper()

	var buf bytes.Buffer
	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*channels*2))
	binary.Write(&buf, binary.LittleEndian, uint16(channels*2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	binary.Write(&buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

func TestDecoder_Metadata(t *testing.T) {
	t.Parallel()

	data := buildWAV(t, 22050, 2, []int16{100, -100, 200, -200})
	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestDecoder_Samples(t *testing.T) {
	t.Parallel()

	data := buildWAV(t, 44100, 1, []int16{0, 16384, -16384, 32767})
	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() = %d samples, want 4", n)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
		}
	}
}

func TestDecoder_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mangle  func([]byte)
		wantErr error
	}{
		{
			name:    "not riff",
			mangle:  func(b []byte) { copy(b[0:4], "JUNK") },
			wantErr: ErrNotWavFile,
		},
		{
			name:    "wrong format tag",
			mangle:  func(b []byte) { b[20] = 3 }, // float PCM
			wantErr: ErrOnlyPCM16bitSupported,
		},
		{
			name:    "no fmt chunk",
			mangle:  func(b []byte) { copy(b[12:16], "LIST") },
			wantErr: ErrUnsupportedWavLayout,
		},
		{
			name:    "no data chunk",
			mangle:  func(b []byte) { copy(b[36:40], "LIST") },
			wantErr: ErrUnsupportedWavChunks,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := buildWAV(t, 44100, 1, []int16{1, 2, 3})
			tt.mangle(data)

			_, err := Decoder{}.Decode(bytes.NewReader(data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWriteClip_RoundTrip(t *testing.T) {
	t.Parallel()

	left := []float32{0, 0.5, -0.5, 0.25}
	right := []float32{0.25, -0.25, 0.5, -0.5}
	clip, err := audio.NewClip([][]float32{left, right}, 55125)
	if err != nil {
		t.Fatalf("NewClip() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "roundtrip.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := WriteClip(f, clip); err != nil {
		t.Fatalf("WriteClip() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer in.Close()

	src, err := Decoder{}.Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	// The odd declared rate must survive the trip: it carries the tempo
	// adjustment when export resampling is off.
	if src.SampleRate() != 55125 {
		t.Errorf("SampleRate() = %d, want 55125", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	got, err := audio.Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if got.Frames() != 4 {
		t.Fatalf("Frames() = %d, want 4", got.Frames())
	}
	for c := range clip.Channels {
		for i := range clip.Channels[c] {
			diff := float64(got.Channels[c][i] - clip.Channels[c][i])
			if diff > 2.0/32768 || diff < -2.0/32768 {
				t.Errorf("channel %d sample %d = %v, want ≈%v",
					c, i, got.Channels[c][i], clip.Channels[c][i])
			}
		}
	}
}
