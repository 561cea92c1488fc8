// SPDX-License-Identifier: EPL-2.0

// Package entrain generates brainwave entrainment audio - binaural beats and
// isochronic tones - and plays it back or writes it to audio files.
//
// # Quick Start
//
// Render a preset and play it:
//
//	s, _ := synth.New(synth.DefaultSampleRate)
//	buf, err := s.RenderPreset("meditation", 600, 2)
//	if err != nil {
//	    // Handle error
//	}
//
//	ctl := playback.NewController(nil)
//	err = ctl.Play(buf, true) // blocks until done; ctl.Stop() cancels
//
// Or write it to a WAV file instead:
//
//	err = wav.EncodeFile("meditation.wav", buf)
//
// # Synthesis
//
// The synth subpackage renders tone buffers: single binaural beats,
// isochronic tones, and weighted multi-layer stacks with automatic clipping
// control. See the synth package documentation for the full surface.
//
// # Ambient Mixing
//
// An entrainment tone can be laid over an ambient recording (rain, waves,
// noise). This package wires the decode pipeline together:
//
//	registry := entrain.NewRegistry()
//	src, err := entrain.DecodeFile(registry, "rain.ogg")
//	if err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
//	// Bring the recording to the session's rate and layout
//	ambient, err := entrain.Collect(src, buf.SampleRate, buf.Channels)
//
//	// Tone in front, ambient bed at 30%
//	mixed, err := entrain.MixAmbient(buf, ambient, 0.3)
//
// Supported input formats: WAV, MP3, Ogg Vorbis and AIFF, via the formats
// subpackages. Decoders are looked up by file extension through a
// stream.Registry, so applications can register their own.
//
// # Playback
//
// The playback subpackage owns the output device: a single controller
// streams one buffer at a time on its own goroutine, with non-blocking
// start, blocking wait and immediate cancellation. The default backend uses
// github.com/ebitengine/oto/v3.
//
// # Errors
//
// Synthesis parameter problems wrap synth.ErrInvalidParameter, unknown
// presets wrap synth.ErrUnknownPreset, and device failures wrap
// playback.ErrDevice. All are classified with errors.Is.
package entrain
