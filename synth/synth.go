// SPDX-License-Identifier: EPL-2.0

package synth

import "fmt"

// DefaultSampleRate is the sample rate used when callers have no reason to
// pick another one.
const DefaultSampleRate = 44100

// ToneSpec describes one entrainment tone layer. A spec is binaural when
// BeatFreq is set (PulseRate zero) and isochronic when PulseRate is set.
// Specs are plain values; build one and hand it to Layered or RenderPreset.
type ToneSpec struct {
	// BaseFreq is the carrier frequency in Hz. 100-400 works well for
	// binaural carriers.
	BaseFreq float64
	// BeatFreq is the perceived binaural beat frequency in Hz.
	BeatFreq float64
	// PulseRate is the isochronic pulse rate in Hz.
	PulseRate float64
	// Amplitude is the mixing weight of this layer.
	Amplitude float64
	// DutyCycle is the audible fraction of each pulse period, in (0, 1].
	// Only meaningful for isochronic specs; DefaultDutyCycle when zero.
	DutyCycle float64
}

// DefaultDutyCycle is used for isochronic specs that leave DutyCycle unset.
const DefaultDutyCycle = 0.5

func (ts ToneSpec) isochronic() bool { return ts.PulseRate > 0 }

// Synth renders entrainment tone buffers at a fixed sample rate.
// A Synth is stateless between calls and safe for concurrent use.
type Synth struct {
	sampleRate int
}

// New creates a synthesizer rendering at sampleRate Hz.
func New(sampleRate int) (*Synth, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidParameter, sampleRate)
	}
	return &Synth{sampleRate: sampleRate}, nil
}

// SampleRate reports the configured output rate in Hz.
func (s *Synth) SampleRate() int { return s.sampleRate }

func (s *Synth) frameCount(duration float64) (int, error) {
	if duration <= 0 {
		return 0, fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidParameter, duration)
	}
	return int(duration * float64(s.sampleRate)), nil
}

// BinauralBeat renders a stereo buffer of duration seconds. The left channel
// carries baseFreq, the right channel baseFreq+beatFreq; the brain perceives
// the difference as a beat at beatFreq. fade seconds of fade-in and fade-out
// are applied to both channels identically.
func (s *Synth) BinauralBeat(baseFreq, beatFreq, duration, fade float64) (*Buffer, error) {
	if baseFreq <= 0 {
		return nil, fmt.Errorf("%w: base frequency must be positive, got %v", ErrInvalidParameter, baseFreq)
	}
	if beatFreq < 0 {
		return nil, fmt.Errorf("%w: beat frequency must not be negative, got %v", ErrInvalidParameter, beatFreq)
	}

	frames, err := s.frameCount(duration)
	if err != nil {
		return nil, err
	}

	env, err := NewEnvelope(frames, s.sampleRate, fade, fade)
	if err != nil {
		return nil, err
	}

	buf, err := NewBuffer(s.sampleRate, 2, frames)
	if err != nil {
		return nil, err
	}

	left := NewOscillator(s.sampleRate)
	right := NewOscillator(s.sampleRate)

	for i := 0; i < frames; i++ {
		g := env.Gain(i)
		buf.Data[2*i] = g * left.Next(baseFreq)
		buf.Data[2*i+1] = g * right.Next(baseFreq+beatFreq)
	}

	return buf, nil
}

// IsochronicTone renders a mono buffer of duration seconds: a carrier at freq
// pulsed on and off pulseRate times per second. Unlike binaural beats,
// isochronic tones work through a single speaker.
func (s *Synth) IsochronicTone(freq, pulseRate, duration, dutyCycle, fade float64) (*Buffer, error) {
	if freq <= 0 {
		return nil, fmt.Errorf("%w: tone frequency must be positive, got %v", ErrInvalidParameter, freq)
	}

	gate, err := NewPulseGate(s.sampleRate, pulseRate, dutyCycle)
	if err != nil {
		return nil, err
	}

	frames, err := s.frameCount(duration)
	if err != nil {
		return nil, err
	}

	env, err := NewEnvelope(frames, s.sampleRate, fade, fade)
	if err != nil {
		return nil, err
	}

	buf, err := NewBuffer(s.sampleRate, 1, frames)
	if err != nil {
		return nil, err
	}

	osc := NewOscillator(s.sampleRate)

	for i := 0; i < frames; i++ {
		buf.Data[i] = env.Gain(i) * gate.Gain(i) * osc.Next(freq)
	}

	return buf, nil
}

// Layered renders each spec without a fade, mixes them with their amplitude
// weights (see Mix for broadcast and normalization rules), then applies a
// single fade envelope to the combined result.
func (s *Synth) Layered(specs []ToneSpec, duration, fade float64) (*Buffer, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: at least one tone layer is required", ErrInvalidParameter)
	}

	layers := make([]Layer, 0, len(specs))

	for i, ts := range specs {
		if ts.Amplitude <= 0 {
			return nil, fmt.Errorf("%w: layer %d amplitude must be positive, got %v", ErrInvalidParameter, i, ts.Amplitude)
		}

		var (
			buf *Buffer
			err error
		)
		if ts.isochronic() {
			duty := ts.DutyCycle
			if duty == 0 {
				duty = DefaultDutyCycle
			}
			buf, err = s.IsochronicTone(ts.BaseFreq, ts.PulseRate, duration, duty, 0)
		} else {
			buf, err = s.BinauralBeat(ts.BaseFreq, ts.BeatFreq, duration, 0)
		}
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}

		layers = append(layers, Layer{Buffer: buf, Amplitude: ts.Amplitude})
	}

	mixed, err := Mix(layers)
	if err != nil {
		return nil, err
	}

	env, err := NewEnvelope(mixed.Frames(), s.sampleRate, fade, fade)
	if err != nil {
		return nil, err
	}
	if err := env.Apply(mixed); err != nil {
		return nil, err
	}

	return mixed, nil
}
