// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/ik5/entrain/synth"
)

// Status is the controller's state machine position.
type Status int

const (
	// StatusIdle means no session exists.
	StatusIdle Status = iota
	// StatusPlaying means a session is streaming to the device.
	StatusPlaying
	// StatusStopped means a session was cancelled and is releasing the
	// device; it returns to idle on its own.
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusStopped:
		return "stopped"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// pollInterval bounds the latency of cancellation and of error detection in
// the streaming worker.
const pollInterval = 5 * time.Millisecond

// session is the single active playback instance: the streaming reader (which
// owns the cursor), the open device handle, and the worker's completion
// signal. err is only written before done is closed.
type session struct {
	reader   *bufferReader
	device   Device
	channels int
	done     chan struct{}
	err      error
}

// Controller owns playback state and streams rendered buffers to an output
// device on a dedicated goroutine. At most one session plays at a time;
// starting a new one stops the previous one first. All methods are safe for
// concurrent use.
type Controller struct {
	opener Opener

	mu      sync.Mutex
	session *session
}

// NewController creates a controller on the given backend. A nil opener
// selects the default oto backend; the device context itself is not touched
// until the first Play.
func NewController(opener Opener) *Controller {
	if opener == nil {
		opener = NewOtoOpener()
	}
	return &Controller{opener: opener}
}

// Devices enumerates the backend's output devices.
func (c *Controller) Devices() []DeviceInfo {
	return c.opener.Devices()
}

// UseDevice selects the output device for subsequent sessions.
func (c *Controller) UseDevice(index int) error {
	return c.opener.UseDevice(index)
}

// Play streams buf to the output device. Any session already playing is
// stopped first, synchronously. With blocking=false Play returns as soon as
// the streaming worker is running; with blocking=true it waits for natural
// completion or a concurrent Stop and returns the session's error.
//
// A device-open failure returns an error wrapping ErrDevice and leaves the
// controller idle.
func (c *Controller) Play(buf *synth.Buffer, blocking bool) error {
	if err := validateBuffer(buf); err != nil {
		return err
	}

	for {
		c.mu.Lock()
		if c.session == nil {
			break
		}
		c.mu.Unlock()
		c.Stop()
	}

	reader := newBufferReader(buf)

	device, err := c.opener.Open(buf.SampleRate, buf.Channels, reader)
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("opening output device: %w", err)
	}

	s := &session{
		reader:   reader,
		device:   device,
		channels: buf.Channels,
		done:     make(chan struct{}),
	}
	c.session = s
	c.mu.Unlock()

	go c.stream(s)

	if blocking {
		return c.wait(s)
	}
	return nil
}

// Wait blocks until the current session completes or is stopped, returning
// the session's error. It returns nil immediately when nothing is playing.
func (c *Controller) Wait() error {
	c.mu.Lock()
	s := c.session
	c.mu.Unlock()

	if s == nil {
		return nil
	}
	return c.wait(s)
}

// Stop cancels the active session at the next sample boundary, waits for the
// device handle to be released and returns the controller to idle. Calling
// Stop with no active session is a no-op.
func (c *Controller) Stop() {
	c.mu.Lock()
	s := c.session
	c.mu.Unlock()

	if s == nil {
		return
	}

	s.reader.cancel()
	<-s.done

	c.mu.Lock()
	if c.session == s {
		c.session = nil
	}
	c.mu.Unlock()
}

// Status reports the state machine position.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.session == nil:
		return StatusIdle
	case c.session.reader.cancelled():
		return StatusStopped
	default:
		return StatusPlaying
	}
}

// Position reports the streaming cursor of the active session in frames, or
// zero when idle.
func (c *Controller) Position() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return 0
	}
	return c.session.reader.position(c.session.channels)
}

func (c *Controller) wait(s *session) error {
	<-s.done

	c.mu.Lock()
	if c.session == s {
		c.session = nil
	}
	c.mu.Unlock()

	return s.err
}

// stream is the worker: it owns the device handle for the session's lifetime
// and guarantees release on every exit path.
func (c *Controller) stream(s *session) {
	s.device.Play()

	for {
		if s.reader.cancelled() {
			break
		}
		if err := s.device.Err(); err != nil {
			s.err = fmt.Errorf("streaming: %w: %v", ErrDevice, err)
			s.reader.cancel()
			break
		}
		if s.reader.finished() && !s.device.IsPlaying() {
			break
		}
		time.Sleep(pollInterval)
	}

	if err := s.device.Close(); err != nil && s.err == nil {
		s.err = err
	}

	close(s.done)

	c.mu.Lock()
	if c.session == s {
		c.session = nil
	}
	c.mu.Unlock()
}

func validateBuffer(buf *synth.Buffer) error {
	if buf == nil || len(buf.Data) == 0 {
		return fmt.Errorf("%w: empty buffer", synth.ErrInvalidParameter)
	}
	if buf.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", synth.ErrInvalidParameter, buf.SampleRate)
	}
	if buf.Channels != 1 && buf.Channels != 2 {
		return fmt.Errorf("%w: channels must be 1 or 2, got %d", synth.ErrInvalidParameter, buf.Channels)
	}
	return nil
}
