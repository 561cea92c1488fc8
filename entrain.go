// SPDX-License-Identifier: EPL-2.0

package entrain

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/entrain/formats/aiff"
	"github.com/ik5/entrain/formats/mp3"
	"github.com/ik5/entrain/formats/vorbis"
	"github.com/ik5/entrain/formats/wav"
	"github.com/ik5/entrain/stream"
	"github.com/ik5/entrain/synth"
)

// ErrUnsupportedFormat is returned when no decoder is registered for a
// file's extension.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// NewRegistry returns a decoder registry with every built-in format
// registered: wav, mp3, ogg (Vorbis) and aiff.
func NewRegistry() *stream.Registry {
	r := stream.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	return r
}

// fileSource closes the backing file together with the decoded stream.
type fileSource struct {
	stream.Source
	f *os.File
}

func (fs *fileSource) Close() error {
	serr := fs.Source.Close()
	ferr := fs.f.Close()
	if serr != nil {
		return serr
	}
	if ferr != nil {
		return fmt.Errorf("%w", ferr)
	}
	return nil
}

// DecodeFile opens path and decodes it with the registry decoder matching
// its file extension. Closing the returned source also closes the file.
func DecodeFile(registry *stream.Registry, path string) (stream.Source, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "aif" {
		ext = "aiff"
	}

	dec, ok := registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}

// Collect drains src into a buffer at targetRate with the requested channel
// count, resampling and down- or upmixing as needed. It builds the pipeline:
//
//  1. Resample to targetRate (cubic interpolation), if the rates differ
//  2. Downmix to mono, if src is multi-channel and channels is 1
//  3. Read everything, duplicating mono frames when channels is 2
func Collect(src stream.Source, targetRate, channels int) (*synth.Buffer, error) {
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: channels must be 1 or 2, got %d", synth.ErrInvalidParameter, channels)
	}
	if targetRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %d", synth.ErrInvalidParameter, targetRate)
	}

	pipe := src
	if pipe.SampleRate() != targetRate {
		pipe = stream.NewResampler(pipe, targetRate)
	}
	if pipe.Channels() > channels {
		pipe = stream.NewDownmixer(pipe)
	}

	data := make([]float32, 0, targetRate*channels) // assume about a second up front
	buf := make([]float32, 4096)

	for {
		n, err := pipe.ReadSamples(buf)

		switch {
		case n > 0 && pipe.Channels() == channels:
			data = append(data, buf[:n]...)
		case n > 0:
			// Mono pipeline feeding a stereo buffer: duplicate frames.
			for _, v := range buf[:n] {
				data = append(data, v, v)
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return &synth.Buffer{
		Data:       data,
		SampleRate: targetRate,
		Channels:   channels,
	}, nil
}

// MixAmbient lays an entrainment buffer over an ambient bed. The ambient
// buffer is looped (or truncated) to the tone's length, weighted by gain and
// mixed under the tone at full weight; the result is peak-normalized by
// synth.Mix. Both buffers must share a sample rate.
func MixAmbient(tone, ambient *synth.Buffer, gain float64) (*synth.Buffer, error) {
	if gain <= 0 {
		return nil, fmt.Errorf("%w: ambient gain must be positive, got %v", synth.ErrInvalidParameter, gain)
	}
	if tone.SampleRate != ambient.SampleRate {
		return nil, fmt.Errorf("%w: tone at %d Hz, ambient at %d Hz", synth.ErrInvalidParameter, tone.SampleRate, ambient.SampleRate)
	}
	if ambient.Frames() == 0 {
		return nil, fmt.Errorf("%w: empty ambient buffer", synth.ErrInvalidParameter)
	}

	bed, err := synth.NewBuffer(ambient.SampleRate, ambient.Channels, tone.Frames())
	if err != nil {
		return nil, err
	}

	srcFrames := ambient.Frames()
	toneFrames := tone.Frames()
	for f := 0; f < toneFrames; f++ {
		srcBase := (f % srcFrames) * ambient.Channels
		dstBase := f * ambient.Channels
		for c := 0; c < ambient.Channels; c++ {
			bed.Data[dstBase+c] = ambient.Data[srcBase+c]
		}
	}

	return synth.Mix([]synth.Layer{
		{Buffer: tone, Amplitude: 1},
		{Buffer: bed, Amplitude: gain},
	})
}
