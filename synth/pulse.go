// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// PulseGate computes the per-sample multiplier that turns a steady carrier
// into isochronic pulses. Each pulse period (1/pulseRate seconds) starts with
// an "on" window of dutyCycle×period shaped as a half-sine, so the gate rises
// from and returns to zero smoothly instead of stepping and clicking.
type PulseGate struct {
	periodFrames float64
	onFrames     float64
}

// NewPulseGate builds a gate for the given sample rate, pulse rate in Hz and
// duty cycle in (0, 1].
func NewPulseGate(sampleRate int, pulseRate, dutyCycle float64) (*PulseGate, error) {
	if pulseRate <= 0 {
		return nil, fmt.Errorf("%w: pulse rate must be positive, got %v", ErrInvalidParameter, pulseRate)
	}
	if dutyCycle <= 0 || dutyCycle > 1 {
		return nil, fmt.Errorf("%w: duty cycle must be in (0, 1], got %v", ErrInvalidParameter, dutyCycle)
	}

	period := float64(sampleRate) / pulseRate

	return &PulseGate{
		periodFrames: period,
		onFrames:     period * dutyCycle,
	}, nil
}

// Gain returns the gate multiplier for frame i.
func (g *PulseGate) Gain(i int) float32 {
	pos := math.Mod(float64(i), g.periodFrames)
	if pos >= g.onFrames {
		return 0
	}
	return float32(math.Sin(math.Pi * pos / g.onFrames))
}
