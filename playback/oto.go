// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// otoOpener drives the system default output device through oto. The oto
// context is process-wide and its format is fixed on first use, so the first
// Open pins the sample rate and channel count for the rest of the process.
type otoOpener struct {
	mu       sync.Mutex
	ctx      *oto.Context
	rate     int
	channels int
}

// NewOtoOpener returns the default audio backend, built on
// github.com/ebitengine/oto/v3.
func NewOtoOpener() Opener {
	return &otoOpener{}
}

func (o *otoOpener) Open(sampleRate, channels int, r io.Reader) (Device, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.ctx == nil {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatFloat32LE,
		}

		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDevice, err)
		}
		<-ready

		o.ctx = ctx
		o.rate = sampleRate
		o.channels = channels
	}

	if sampleRate != o.rate || channels != o.channels {
		return nil, fmt.Errorf("%w: device initialized at %d Hz/%d ch, cannot open at %d Hz/%d ch",
			ErrDevice, o.rate, o.channels, sampleRate, channels)
	}

	return &otoDevice{player: o.ctx.NewPlayer(r)}, nil
}

// Devices reports the single system default device; oto does not expose
// device enumeration, so richer backends must provide their own Opener.
func (o *otoOpener) Devices() []DeviceInfo {
	return []DeviceInfo{{Index: 0, Name: "system default"}}
}

func (o *otoOpener) UseDevice(index int) error {
	if index != 0 {
		return fmt.Errorf("%w: no output device with index %d", ErrDevice, index)
	}
	return nil
}

type otoDevice struct {
	player *oto.Player
}

func (d *otoDevice) Play()           { d.player.Play() }
func (d *otoDevice) IsPlaying() bool { return d.player.IsPlaying() }
func (d *otoDevice) Err() error      { return d.player.Err() }

func (d *otoDevice) Close() error {
	if err := d.player.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrDevice, err)
	}
	return nil
}
