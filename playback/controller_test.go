// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"errors"
	"testing"
	"time"

	"github.com/ik5/entrain/synth"
)

func testBuffer(frames int) *synth.Buffer {
	buf := &synth.Buffer{
		Data:       make([]float32, frames*2),
		SampleRate: 8000,
		Channels:   2,
	}
	for i := range buf.Data {
		buf.Data[i] = 0.1
	}
	return buf
}

func TestController_BlockingPlayCompletes(t *testing.T) {
	t.Parallel()

	opener := &mockOpener{}
	ctl := NewController(opener)

	if err := ctl.Play(testBuffer(512), true); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if got := ctl.Status(); got != StatusIdle {
		t.Errorf("Status() after completion = %v, want idle", got)
	}
	if len(opener.devices) != 1 || !opener.devices[0].isClosed() {
		t.Error("device was not released after natural completion")
	}
}

func TestController_NonBlockingPlayAndStop(t *testing.T) {
	t.Parallel()

	opener := &mockOpener{}
	ctl := NewController(opener)

	// Large buffer so it is still streaming when we stop.
	if err := ctl.Play(testBuffer(1<<20), false); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if got := ctl.Status(); got != StatusPlaying {
		t.Fatalf("Status() = %v, want playing", got)
	}

	ctl.Stop()

	if got := ctl.Status(); got != StatusIdle {
		t.Errorf("Status() after Stop = %v, want idle", got)
	}
	if !opener.devices[0].isClosed() {
		t.Error("Stop returned before the device was released")
	}
}

func TestController_StopIsIdempotent(t *testing.T) {
	t.Parallel()

	ctl := NewController(&mockOpener{})

	// No session at all: both calls are no-ops.
	ctl.Stop()
	if got := ctl.Status(); got != StatusIdle {
		t.Fatalf("Status() = %v, want idle", got)
	}
	ctl.Stop()
	if got := ctl.Status(); got != StatusIdle {
		t.Fatalf("Status() after second Stop = %v, want idle", got)
	}
}

func TestController_PlayStopsPreviousSession(t *testing.T) {
	t.Parallel()

	opener := &mockOpener{}
	ctl := NewController(opener)

	if err := ctl.Play(testBuffer(1<<20), false); err != nil {
		t.Fatalf("Play(A) error = %v", err)
	}
	if err := ctl.Play(testBuffer(1<<20), false); err != nil {
		t.Fatalf("Play(B) error = %v", err)
	}

	// A's device must be fully released before B's device opens: no two
	// sessions ever stream concurrently.
	events := opener.events()
	want := []string{"open", "close", "open"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}

	ctl.Stop()
}

func TestController_OpenFailureLeavesIdle(t *testing.T) {
	t.Parallel()

	opener := &mockOpener{openErr: errors.New("no such device")}
	ctl := NewController(opener)

	err := ctl.Play(testBuffer(512), true)
	if err == nil {
		t.Fatal("Play() succeeded, want device error")
	}
	if got := ctl.Status(); got != StatusIdle {
		t.Errorf("Status() = %v, want idle after open failure", got)
	}
}

func TestController_StreamErrorSurfacesAndRecovers(t *testing.T) {
	t.Parallel()

	opener := &mockOpener{deviceEr: errors.New("underrun")}
	ctl := NewController(opener)

	err := ctl.Play(testBuffer(1<<20), true)
	if !errors.Is(err, ErrDevice) {
		t.Fatalf("Play() error = %v, want ErrDevice", err)
	}

	if got := ctl.Status(); got != StatusIdle {
		t.Fatalf("Status() = %v, want idle after stream error", got)
	}
	if !opener.devices[0].isClosed() {
		t.Error("device leaked after stream error")
	}

	// The controller must be usable again.
	opener.deviceEr = nil
	if err := ctl.Play(testBuffer(256), true); err != nil {
		t.Errorf("Play() after error = %v, want success", err)
	}
}

func TestController_WaitWithoutSession(t *testing.T) {
	t.Parallel()

	ctl := NewController(&mockOpener{})

	if err := ctl.Wait(); err != nil {
		t.Errorf("Wait() with no session = %v, want nil", err)
	}
}

func TestController_ConcurrentStopDuringBlockingPlay(t *testing.T) {
	t.Parallel()

	opener := &mockOpener{}
	ctl := NewController(opener)

	go func() {
		time.Sleep(20 * time.Millisecond)
		ctl.Stop()
	}()

	start := time.Now()
	if err := ctl.Play(testBuffer(1<<22), true); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	// The buffer would stream for much longer; Stop must cut it short.
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("blocking Play returned after %v, want prompt cancellation", elapsed)
	}
	if got := ctl.Status(); got != StatusIdle {
		t.Errorf("Status() = %v, want idle", got)
	}
}

func TestController_Validation(t *testing.T) {
	t.Parallel()

	ctl := NewController(&mockOpener{})

	tests := []struct {
		name string
		buf  *synth.Buffer
	}{
		{"nil buffer", nil},
		{"empty buffer", &synth.Buffer{SampleRate: 8000, Channels: 1}},
		{"zero sample rate", &synth.Buffer{Data: []float32{0}, Channels: 1}},
		{"bad channels", &synth.Buffer{Data: []float32{0}, SampleRate: 8000, Channels: 5}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := ctl.Play(tt.buf, false); !errors.Is(err, synth.ErrInvalidParameter) {
				t.Errorf("Play() error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestController_Devices(t *testing.T) {
	t.Parallel()

	ctl := NewController(&mockOpener{})

	devices := ctl.Devices()
	if len(devices) != 1 || devices[0].Name != "mock" {
		t.Errorf("Devices() = %v, want the mock backend's single device", devices)
	}
}
