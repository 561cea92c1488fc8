// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"io"
	"sync"
	"time"
)

// mockDevice drains its reader on a goroutine, like a real device would,
// just without pacing to wall-clock time.
type mockDevice struct {
	r        io.Reader
	streamEr error

	mu      sync.Mutex
	playing bool
	closed  bool
}

func (d *mockDevice) Play() {
	d.mu.Lock()
	d.playing = true
	d.mu.Unlock()

	go func() {
		buf := make([]byte, 1024)
		for {
			_, err := d.r.Read(buf)
			if err != nil {
				break
			}
			time.Sleep(time.Millisecond)
		}

		d.mu.Lock()
		d.playing = false
		d.mu.Unlock()
	}()
}

func (d *mockDevice) IsPlaying() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.playing
}

func (d *mockDevice) Err() error { return d.streamEr }

func (d *mockDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.playing = false
	return nil
}

func (d *mockDevice) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// mockOpener hands out mockDevices and records the open/close order.
type mockOpener struct {
	openErr  error
	deviceEr error

	mu      sync.Mutex
	devices []*mockDevice
	log     []string
}

func (o *mockOpener) Open(sampleRate, channels int, r io.Reader) (Device, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.openErr != nil {
		return nil, o.openErr
	}

	d := &mockDevice{r: r, streamEr: o.deviceEr}
	o.devices = append(o.devices, d)
	o.log = append(o.log, "open")

	return &loggedDevice{mockDevice: d, opener: o}, nil
}

func (o *mockOpener) Devices() []DeviceInfo {
	return []DeviceInfo{{Index: 0, Name: "mock"}}
}

func (o *mockOpener) UseDevice(index int) error { return nil }

func (o *mockOpener) events() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.log...)
}

type loggedDevice struct {
	*mockDevice
	opener *mockOpener
}

func (d *loggedDevice) Close() error {
	d.opener.mu.Lock()
	d.opener.log = append(d.opener.log, "close")
	d.opener.mu.Unlock()
	return d.mockDevice.Close()
}
