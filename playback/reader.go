package playback

import (
	"encoding/binary"
	"io"
	"math"
	"sync/atomic"

	"github.com/ik5/entrain/synth"
)

// bufferReader streams a rendered buffer as little-endian float32 bytes, in
// strict frame order. Cancelling drops all remaining samples: the next Read
// returns io.EOF. pos is the streaming cursor, the index of the next sample
// to emit.
type bufferReader struct {
	data    []float32
	pos     atomic.Int64
	stopped atomic.Bool
}

func newBufferReader(buf *synth.Buffer) *bufferReader {
	return &bufferReader{data: buf.Data}
}

func (r *bufferReader) Read(p []byte) (int, error) {
	if r.stopped.Load() {
		return 0, io.EOF
	}

	pos := int(r.pos.Load())
	if pos >= len(r.data) {
		return 0, io.EOF
	}

	samples := len(p) / 4
	if remaining := len(r.data) - pos; samples > remaining {
		samples = remaining
	}
	if samples == 0 {
		return 0, nil
	}

	for i := 0; i < samples; i++ {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(r.data[pos+i]))
	}

	r.pos.Store(int64(pos + samples))
	return samples * 4, nil
}

// cancel makes every subsequent Read return io.EOF.
func (r *bufferReader) cancel() {
	r.stopped.Store(true)
}

func (r *bufferReader) cancelled() bool {
	return r.stopped.Load()
}

// finished reports whether every sample has been handed to the device.
func (r *bufferReader) finished() bool {
	return int(r.pos.Load()) >= len(r.data)
}

// position reports the streaming cursor in frames.
func (r *bufferReader) position(channels int) int {
	return int(r.pos.Load()) / channels
}
