// SPDX-License-Identifier: EPL-2.0

package playback

import "io"

// DeviceInfo describes one output device as reported by an Opener.
// Index is stable for the lifetime of the process.
type DeviceInfo struct {
	Index int
	Name  string
}

// Device is an open output device streaming PCM from the reader it was
// opened with. The device paces reads in real time.
type Device interface {
	// Play starts consuming the reader. Non-blocking.
	Play()
	// IsPlaying reports whether the device is still draining samples.
	IsPlaying() bool
	// Err returns the first streaming error, if any.
	Err() error
	// Close releases the device handle.
	Close() error
}

// Opener abstracts the audio backend. Open connects r, a stream of
// little-endian float32 PCM frames, to the output device previously selected
// with UseDevice (or the default).
type Opener interface {
	Open(sampleRate, channels int, r io.Reader) (Device, error)
	// Devices enumerates the available output devices.
	Devices() []DeviceInfo
	// UseDevice selects the output device for subsequent Open calls.
	UseDevice(index int) error
}
