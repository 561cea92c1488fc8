// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"math"
	"testing"
)

func constantBuffer(sampleRate, channels, frames int, value float32) *Buffer {
	buf, err := NewBuffer(sampleRate, channels, frames)
	if err != nil {
		panic(err)
	}
	for i := range buf.Data {
		buf.Data[i] = value
	}
	return buf
}

func TestMix_WeightedSum(t *testing.T) {
	t.Parallel()

	out, err := Mix([]Layer{
		{Buffer: constantBuffer(8000, 1, 100, 0.4), Amplitude: 0.5},
		{Buffer: constantBuffer(8000, 1, 100, 0.6), Amplitude: 0.5},
	})
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	// 0.5*0.4 + 0.5*0.6 = 0.5, below the clipping threshold: untouched.
	for i, v := range out.Data {
		if math.Abs(float64(v)-0.5) > 1e-6 {
			t.Fatalf("out[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestMix_NormalizesUniformly(t *testing.T) {
	t.Parallel()

	// Two layers that each peak at 0.9 alone, mixed at half weight:
	// peak 0.9 before normalization, nothing to scale.
	out, err := Mix([]Layer{
		{Buffer: constantBuffer(8000, 1, 10, 0.9), Amplitude: 0.5},
		{Buffer: constantBuffer(8000, 1, 10, 0.9), Amplitude: 0.5},
	})
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}
	if peak := out.Peak(); peak > 1.0001 {
		t.Errorf("Peak() = %v, want <= 1", peak)
	}
	if v := out.Data[0]; math.Abs(float64(v)-0.9) > 1e-6 {
		t.Errorf("out[0] = %v, want 0.9 (no normalization below the threshold)", v)
	}

	// Deliberately clipping input: everything at maximum amplitude.
	loud, err := Mix([]Layer{
		{Buffer: constantBuffer(8000, 1, 10, 1), Amplitude: 1},
		{Buffer: constantBuffer(8000, 1, 10, 0.5), Amplitude: 1},
	})
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}
	if peak := loud.Peak(); peak > 1.0001 {
		t.Errorf("Peak() after normalization = %v, want <= 1", peak)
	}

	// Uniform 1/peak scaling preserves the relative balance; here every
	// sample was 1.5, so every sample becomes exactly 1.
	for i, v := range loud.Data {
		if math.Abs(float64(v)-1) > 1e-6 {
			t.Fatalf("loud[%d] = %v, want 1", i, v)
		}
	}
}

func TestMix_BroadcastsMonoIntoStereo(t *testing.T) {
	t.Parallel()

	stereo := constantBuffer(8000, 2, 50, 0.2)
	mono := constantBuffer(8000, 1, 50, 0.4)

	out, err := Mix([]Layer{
		{Buffer: stereo, Amplitude: 1},
		{Buffer: mono, Amplitude: 1},
	})
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	if out.Channels != 2 {
		t.Fatalf("Channels = %d, want 2", out.Channels)
	}

	// Mono feeds both channels: 0.2 + 0.4 on each side.
	for f := 0; f < out.Frames(); f++ {
		for c := 0; c < 2; c++ {
			if v := out.Sample(f, c); math.Abs(float64(v)-0.6) > 1e-6 {
				t.Fatalf("Sample(%d, %d) = %v, want 0.6", f, c, v)
			}
		}
	}
}

func TestMix_Validation(t *testing.T) {
	t.Parallel()

	base := constantBuffer(8000, 1, 100, 0.1)

	tests := []struct {
		name   string
		layers []Layer
	}{
		{"no layers", nil},
		{"mismatched frames", []Layer{
			{Buffer: base, Amplitude: 1},
			{Buffer: constantBuffer(8000, 1, 50, 0.1), Amplitude: 1},
		}},
		{"mismatched sample rate", []Layer{
			{Buffer: base, Amplitude: 1},
			{Buffer: constantBuffer(16000, 1, 100, 0.1), Amplitude: 1},
		}},
		{"zero amplitude", []Layer{
			{Buffer: base, Amplitude: 0},
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Mix(tt.layers); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Mix() error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}
