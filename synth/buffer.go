// SPDX-License-Identifier: EPL-2.0

package synth

import "fmt"

// Buffer holds interleaved float32 PCM samples in [-1, 1].
// Channels is 1 (mono) or 2 (stereo); len(Data) is always a multiple of Channels.
//
// A Buffer is owned by whoever produced it. Pipeline stages (synthesizer,
// mixer, playback) take ownership of their input and never alias it.
type Buffer struct {
	Data       []float32
	SampleRate int
	Channels   int
}

// NewBuffer allocates a silent buffer of the given size.
func NewBuffer(sampleRate, channels, frames int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidParameter, sampleRate)
	}
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: channels must be 1 or 2, got %d", ErrInvalidParameter, channels)
	}
	if frames < 0 {
		return nil, fmt.Errorf("%w: frame count must not be negative, got %d", ErrInvalidParameter, frames)
	}

	return &Buffer{
		Data:       make([]float32, frames*channels),
		SampleRate: sampleRate,
		Channels:   channels,
	}, nil
}

// Frames reports the number of sample frames per channel.
func (b *Buffer) Frames() int {
	if b.Channels == 0 {
		return 0
	}
	return len(b.Data) / b.Channels
}

// Duration reports the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	if b.SampleRate == 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.SampleRate)
}

// Sample returns the sample at the given frame and channel.
func (b *Buffer) Sample(frame, channel int) float32 {
	return b.Data[frame*b.Channels+channel]
}

// Peak returns the maximum absolute sample value in the buffer.
func (b *Buffer) Peak() float32 {
	var peak float32
	for _, v := range b.Data {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}

func (b *Buffer) validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidParameter)
	}
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidParameter, b.SampleRate)
	}
	if b.Channels != 1 && b.Channels != 2 {
		return fmt.Errorf("%w: channels must be 1 or 2, got %d", ErrInvalidParameter, b.Channels)
	}
	if len(b.Data)%b.Channels != 0 {
		return fmt.Errorf("%w: sample count %d is not a multiple of %d channels", ErrInvalidParameter, len(b.Data), b.Channels)
	}
	return nil
}
