// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

const twoPi = 2 * math.Pi

// Oscillator produces a phase-continuous sine stream. The phase accumulator
// is carried across every call to Next, so changing the frequency mid-stream
// never introduces a discontinuity. Wrapping the phase modulo 2π keeps the
// accumulator numerically stable over sessions of millions of samples.
type Oscillator struct {
	phase float64
	step  float64 // 2π / sampleRate
}

// NewOscillator creates an oscillator for the given sample rate.
func NewOscillator(sampleRate int) *Oscillator {
	return &Oscillator{
		step: twoPi / float64(sampleRate),
	}
}

// Next returns the next sine sample for freq and advances the phase by
// 2π·freq/sampleRate.
func (o *Oscillator) Next(freq float64) float32 {
	s := float32(math.Sin(o.phase))

	o.phase += o.step * freq
	if o.phase >= twoPi {
		o.phase = math.Mod(o.phase, twoPi)
	}

	return s
}

// Phase reports the current accumulator value in [0, 2π).
func (o *Oscillator) Phase() float64 {
	return o.phase
}
