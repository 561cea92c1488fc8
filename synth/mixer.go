package synth

import "fmt"

// Layer pairs a rendered buffer with its mixing weight.
type Layer struct {
	Buffer    *Buffer
	Amplitude float64
}

// Mix sums the layers sample by sample, weighted by amplitude. All layers
// must share a sample rate and frame count. When mono and stereo layers are
// combined the output is stereo and mono layers feed both channels.
//
// After summation the mix is peak-normalized: if any sample exceeds 1.0 in
// magnitude the whole buffer is scaled by 1/peak. Scaling uniformly keeps the
// relative layer balance intact, which per-layer clamping would not.
func Mix(layers []Layer) (*Buffer, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: no layers to mix", ErrInvalidParameter)
	}

	sampleRate := layers[0].Buffer.SampleRate
	frames := layers[0].Buffer.Frames()
	channels := 1

	for i, l := range layers {
		if err := l.Buffer.validate(); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if l.Amplitude <= 0 {
			return nil, fmt.Errorf("%w: layer %d amplitude must be positive, got %v", ErrInvalidParameter, i, l.Amplitude)
		}
		if l.Buffer.SampleRate != sampleRate {
			return nil, fmt.Errorf("%w: layer %d sample rate %d differs from %d", ErrInvalidParameter, i, l.Buffer.SampleRate, sampleRate)
		}
		if l.Buffer.Frames() != frames {
			return nil, fmt.Errorf("%w: layer %d has %d frames, expected %d", ErrInvalidParameter, i, l.Buffer.Frames(), frames)
		}
		if l.Buffer.Channels > channels {
			channels = l.Buffer.Channels
		}
	}

	out, err := NewBuffer(sampleRate, channels, frames)
	if err != nil {
		return nil, err
	}

	for _, l := range layers {
		amp := float32(l.Amplitude)
		src := l.Buffer

		if src.Channels == channels {
			for i, v := range src.Data {
				out.Data[i] += amp * v
			}
			continue
		}

		// Mono layer into a stereo mix: broadcast to every output channel.
		for f := 0; f < frames; f++ {
			v := amp * src.Data[f]
			base := f * channels
			for c := 0; c < channels; c++ {
				out.Data[base+c] += v
			}
		}
	}

	if peak := out.Peak(); peak > 1 {
		scale := 1 / peak
		for i := range out.Data {
			out.Data[i] *= scale
		}
	}

	return out, nil
}
