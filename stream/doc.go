// SPDX-License-Identifier: EPL-2.0

// Package stream provides pull-based audio processing primitives used to
// bring decoded audio files into an entrainment session.
//
// # Source Interface
//
// The Source interface is the foundation:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All format decoders and processors implement it, so they chain freely.
// io.EOF with zero samples means the stream is finished.
//
// # Resampling
//
// Ambient recordings rarely match the synthesis sample rate. The Resampler
// converts with cubic interpolation:
//
//	resampled := stream.NewResampler(source, 44100)
//
// # Downmixing
//
// A stereo ambient track feeding a mono isochronic session is folded to mono
// by averaging:
//
//	mono := stream.NewDownmixer(source)
//
// # Decoder Registry
//
// The registry maps format keys to decoders so callers can pick one at
// runtime, typically from a file extension:
//
//	registry := stream.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, ok := registry.Get("wav")
//
// The root entrain package ships a registry with every built-in format
// already registered.
package stream
