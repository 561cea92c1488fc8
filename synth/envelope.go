// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// Envelope computes a per-sample gain in [0, 1]: a linear ramp 0→1 over the
// fade-in window, constant 1 in the middle, and a linear ramp 1→0 over the
// fade-out window. The same gain is applied to every channel of a frame.
type Envelope struct {
	frames  int
	fadeIn  int // frames
	fadeOut int // frames
}

// NewEnvelope builds an envelope for frames samples at sampleRate. fadeIn and
// fadeOut are in seconds. When the two windows together would exceed the
// buffer, both shrink proportionally so they meet at a single point and the
// gain stays monotonic (non-decreasing, then non-increasing).
func NewEnvelope(frames, sampleRate int, fadeIn, fadeOut float64) (*Envelope, error) {
	if fadeIn < 0 || fadeOut < 0 {
		return nil, fmt.Errorf("%w: fade durations must not be negative, got %v/%v", ErrInvalidParameter, fadeIn, fadeOut)
	}

	in := int(fadeIn * float64(sampleRate))
	out := int(fadeOut * float64(sampleRate))

	if total := in + out; total > frames && total > 0 {
		scale := float64(frames) / float64(total)
		in = int(math.Round(float64(in) * scale))
		out = frames - in
	}

	return &Envelope{frames: frames, fadeIn: in, fadeOut: out}, nil
}

// Gain returns the multiplier for frame i.
func (e *Envelope) Gain(i int) float32 {
	if i < e.fadeIn {
		if e.fadeIn <= 1 {
			return 0
		}
		return float32(i) / float32(e.fadeIn-1)
	}

	if tail := i - (e.frames - e.fadeOut); tail >= 0 {
		if e.fadeOut <= 1 {
			return 0
		}
		return 1 - float32(tail)/float32(e.fadeOut-1)
	}

	return 1
}

// Apply multiplies every frame of buf by the envelope gain, across all
// channels. The buffer length must match the envelope's frame count.
func (e *Envelope) Apply(buf *Buffer) error {
	if buf.Frames() != e.frames {
		return fmt.Errorf("%w: envelope covers %d frames, buffer has %d", ErrInvalidParameter, e.frames, buf.Frames())
	}

	for i := 0; i < e.frames; i++ {
		g := e.Gain(i)
		if g == 1 {
			continue
		}
		base := i * buf.Channels
		for c := 0; c < buf.Channels; c++ {
			buf.Data[base+c] *= g
		}
	}

	return nil
}
