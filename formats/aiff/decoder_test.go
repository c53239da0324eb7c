package aiff

import (
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// fakeAiff feeds canned int samples through the aiffReader seam.
type fakeAiff struct {
	data     []int
	pos      int
	rate     int
	channels int
}

func (f *fakeAiff) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: f.rate, NumChannels: f.channels}
}

func (f *fakeAiff) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &fakeAiff{data: []int{16384, -16384, 16384, -16384}, rate: 44100, channels: 2},
		sampleRate: 44100,
		channels:   2,
	}

	dst := make([]float32, 4)
	n, err := s.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() = %d samples, want 4", n)
	}

	want := []float32{0.5, -0.5, 0.5, -0.5}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
		}
	}
}

func TestSource_ShortReadReportsEOF(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &fakeAiff{data: []int{100, 200}, rate: 44100, channels: 1},
		sampleRate: 44100,
		channels:   1,
	}

	dst := make([]float32, 8)
	n, err := s.ReadSamples(dst)
	if n != 2 {
		t.Fatalf("ReadSamples() = %d samples, want 2", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &fakeAiff{data: nil, rate: 44100, channels: 1},
		sampleRate: 44100,
		channels:   1,
	}

	dst := make([]float32, 4)
	n, err := s.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestDecode_NotAiff(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(&readSeeker{data: []byte("not an aiff file at all")})
	if err != ErrNotAiffFile {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}
