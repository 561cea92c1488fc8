// SPDX-License-Identifier: EPL-2.0

// Package synth generates brainwave entrainment audio: binaural beats and
// isochronic tones, rendered into float32 sample buffers.
//
// # Binaural Beats
//
// A binaural beat plays two slightly different frequencies, one per ear. The
// brain perceives a third frequency equal to the difference:
//
//	s, _ := synth.New(44100)
//	buf, err := s.BinauralBeat(200, 6, 600, 2) // 10 minutes of 6 Hz Theta
//
// The left channel carries the base frequency, the right channel
// base + beat. Binaural beats require headphones.
//
// # Isochronic Tones
//
// An isochronic tone pulses a single carrier on and off at the target rate,
// so it works through any speaker:
//
//	buf, err := s.IsochronicTone(300, 10, 600, 0.5, 2)
//
// The pulse edges are shaped as half-sines rather than hard steps to avoid
// audible clicking.
//
// # Layers and Mixing
//
// Multiple tones can be stacked with per-layer weights. The mix is
// peak-normalized so the result never clips, while the balance between
// layers is preserved:
//
//	buf, err := s.Layered([]synth.ToneSpec{
//	    {BaseFreq: 150, BeatFreq: 2, Amplitude: 0.6},
//	    {BaseFreq: 300, PulseRate: 4, Amplitude: 0.4},
//	}, 600, 2)
//
// # Presets
//
// The catalog maps meditation states to ready-made layer bundles:
//
//	buf, err := s.RenderPreset("meditation", 600, 2)
//
// See Presets for the available names and descriptions.
//
// # Brainwave Bands
//
//   - Delta (0.5-4 Hz): deep sleep, healing
//   - Theta (4-8 Hz): meditation, creativity, REM sleep
//   - Alpha (8-14 Hz): relaxation, calm focus
//   - Beta (14-30 Hz): active concentration, alertness
//
// # Errors
//
// Every validation failure wraps ErrInvalidParameter and is reported before
// any sample is generated; a failed call never returns a partial buffer.
// Unknown preset names wrap ErrUnknownPreset.
//
// All synthesis is purely computational and side-effect free. A Synth may be
// used from multiple goroutines; independent buffers share no state.
package synth
