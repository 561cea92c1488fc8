package playback

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/ik5/entrain/synth"
)

func TestBufferReader_StreamsInOrder(t *testing.T) {
	t.Parallel()

	buf := &synth.Buffer{
		Data:       []float32{0.1, 0.2, 0.3, 0.4},
		SampleRate: 8000,
		Channels:   2,
	}
	r := newBufferReader(buf)

	out := make([]byte, 8) // two samples per read
	for i := 0; i < 2; i++ {
		n, err := r.Read(out)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if n != 8 {
			t.Fatalf("Read() n = %d, want 8", n)
		}

		for j := 0; j < 2; j++ {
			got := math.Float32frombits(binary.LittleEndian.Uint32(out[4*j:]))
			want := buf.Data[i*2+j]
			if got != want {
				t.Errorf("sample %d = %v, want %v", i*2+j, got, want)
			}
		}
	}

	if _, err := r.Read(out); err != io.EOF {
		t.Errorf("Read() past the end = %v, want io.EOF", err)
	}
	if !r.finished() {
		t.Error("finished() = false after draining")
	}
}

func TestBufferReader_CancelDropsRemainder(t *testing.T) {
	t.Parallel()

	buf := &synth.Buffer{
		Data:       make([]float32, 1024),
		SampleRate: 8000,
		Channels:   1,
	}
	r := newBufferReader(buf)

	out := make([]byte, 16)
	if _, err := r.Read(out); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	r.cancel()

	if _, err := r.Read(out); err != io.EOF {
		t.Errorf("Read() after cancel = %v, want io.EOF", err)
	}
	if !r.cancelled() {
		t.Error("cancelled() = false after cancel")
	}
	if r.position(1) != 4 {
		t.Errorf("position = %d, want 4 (cursor frozen at the cancel boundary)", r.position(1))
	}
}
