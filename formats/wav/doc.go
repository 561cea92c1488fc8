// SPDX-License-Identifier: EPL-2.0

// Package wav encodes rendered entrainment buffers as WAV files and decodes
// WAV files for ambient mixing.
//
// # Encoding
//
// Encode writes a synth.Buffer as 16-bit PCM using github.com/go-audio/wav:
//
//	buf, _ := s.RenderPreset("meditation", 600, 2)
//	err := wav.EncodeFile("meditation.wav", buf)
//
// Mono and stereo buffers at any sample rate are supported. Float samples
// are clamped to [-1, 1] and scaled to int16.
//
// # Decoding
//
// The Decoder handles canonical PCM 16-bit WAV files and returns a
// stream.Source:
//
//	file, _ := os.Open("rain.wav")
//	source, err := wav.Decoder{}.Decode(file)
//
// Decoding failures use the package's sentinel errors (ErrNotWavFile,
// ErrOnlyPCM16bitSupported, ...).
package wav
