// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"
	"io"

	"github.com/ik5/entrain/utils"
)

// Resampler converts src to a target sample rate using cubic interpolation
// over a four-frame window, preserving the channel count. A one-pole
// low-pass filter tames aliasing when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// window[0..3] hold frames t-1, t0, t+1, t+2 for interpolation.
	window [4][]float32
	filled [4]bool

	// pos is the fractional position between window[1] and window[2].
	pos float64

	readBuf []float32
	eof     bool

	lowpass     bool
	filterAlpha float32
	filterState []float32
}

// NewResampler wraps src so it reads back at dstRate Hz.
func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		step:        step,
		channels:    channels,
		readBuf:     make([]float32, channels),
		lowpass:     step > 1.0,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// prime fills the interpolation window with the first frames of the source.
func (r *Resampler) prime() error {
	for i := 0; i < len(r.window); i++ {
		n, err := r.src.ReadSamples(r.readBuf)
		if n > 0 {
			copy(r.window[i], r.readBuf[:n])
			r.filled[i] = true

			if i == 0 && r.lowpass {
				copy(r.filterState, r.readBuf[:n])
			}
		}

		if err == io.EOF {
			r.eof = true
			if i == 0 {
				return io.EOF
			}
			// Pad the window with the last real frame.
			for j := i; j < len(r.window); j++ {
				copy(r.window[j], r.window[i-1])
				r.filled[j] = true
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

// shift advances the window by one source frame.
func (r *Resampler) shift() error {
	if r.eof {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.filled[0], r.filled[1], r.filled[2] = r.filled[1], r.filled[2], r.filled[3]

	n, err := r.src.ReadSamples(r.readBuf)
	if n > 0 {
		copy(r.window[3], r.readBuf[:n])
		r.filled[3] = true

		if r.lowpass {
			for c := 0; c < r.channels; c++ {
				r.window[3][c] = r.filterAlpha*r.window[3][c] + (1-r.filterAlpha)*r.filterState[c]
				r.filterState[c] = r.window[3][c]
			}
		}
	} else {
		r.filled[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.filled[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces samples at the target rate. len(dst) must be a
// multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.filled[1] {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.shift(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.filled[1] || !r.filled[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)

		for c := 0; c < r.channels; c++ {
			y0 := r.window[1][c]
			if r.filled[0] {
				y0 = r.window[0][c]
			}
			y3 := r.window[2][c]
			if r.filled[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, r.window[1][c], r.window[2][c], y3, alpha)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
