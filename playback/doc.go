// SPDX-License-Identifier: EPL-2.0

// Package playback streams rendered buffers to an audio output device.
//
// # Controller
//
// The Controller is the single owner of playback state. It runs a streaming
// worker on its own goroutine, because the device paces output in real time
// while the caller has to stay responsive:
//
//	ctl := playback.NewController(nil) // default oto backend
//
//	// Fire and forget:
//	err := ctl.Play(buf, false)
//
//	// ... later:
//	ctl.Stop()
//
// Play with blocking=true suspends the caller until the buffer finishes or
// another goroutine calls Stop:
//
//	err := ctl.Play(buf, true)
//
// At most one session plays at a time. Starting a new session while another
// is playing stops the old one first, synchronously, so two sessions never
// stream concurrently.
//
// # Cancellation
//
// Stop takes effect within a few milliseconds, not eventually: the streaming
// reader drops all remaining samples at the next read and the device handle
// is released before Stop returns. Stop is idempotent; with no active
// session it does nothing.
//
// # Errors
//
// Device failures wrap ErrDevice. An open failure leaves the controller
// idle; a mid-stream failure cancels the session, surfaces through Wait (or
// the blocking Play), and still releases the device. After any error a new
// Play can proceed.
//
// # Backends
//
// The Opener interface is the device boundary. The default backend uses
// github.com/ebitengine/oto/v3 and exposes the system default device only;
// backends with real device enumeration implement Opener themselves.
package playback
