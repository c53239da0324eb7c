package mp3

import (
	"io"
	"testing"
)

// fakeMP3 feeds canned 16-bit PCM bytes through the mp3Reader seam.
type fakeMP3 struct {
	data []byte
	pos  int
	rate int
}

func (f *fakeMP3) SampleRate() int { return f.rate }

func (f *fakeMP3) Read(p []byte) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += n
	if f.pos >= len(f.data) {
		return n, io.EOF
	}
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	// Two frames of stereo PCM: 0x4000 = 16384 -> 0.5, 0xC000 = -16384 -> -0.5.
	s := &source{
		dec:        &fakeMP3{data: []byte{0x00, 0x40, 0x00, 0xC0, 0x00, 0x40, 0x00, 0xC0}, rate: 44100},
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 16),
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

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := &source{dec: &fakeMP3{rate: 48000}, sampleRate: 48000, channels: 2, buf: make([]byte, 16)}

	if s.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", s.SampleRate())
	}
	if s.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", s.Channels())
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	s := &source{dec: &fakeMP3{data: nil, rate: 44100}, sampleRate: 44100, channels: 2, buf: make([]byte, 16)}

	dst := make([]float32, 4)
	n, err := s.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}
