// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float32
		want int16
	}{
		{"silence", 0, 0},
		{"positive max", 1, 32767},
		{"negative max", -1, -32767},
		{"half", 0.5, 16383},
		{"clamps above", 2.5, 32767},
		{"clamps below", -2.5, -32767},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.in); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestCubicInterpolate_HitsKnownPoints(t *testing.T) {
	t.Parallel()

	// Catmull-Rom passes through y1 at x=0 and y2 at x=1.
	y0, y1, y2, y3 := float32(0.1), float32(0.4), float32(0.8), float32(0.6)

	if got := CubicInterpolate(y0, y1, y2, y3, 0); got != y1 {
		t.Errorf("CubicInterpolate(x=0) = %v, want %v", got, y1)
	}
	if got := CubicInterpolate(y0, y1, y2, y3, 1); math.Abs(float64(got-y2)) > 1e-6 {
		t.Errorf("CubicInterpolate(x=1) = %v, want %v", got, y2)
	}
}

func TestCubicInterpolate_LinearSegment(t *testing.T) {
	t.Parallel()

	// Four collinear points interpolate linearly.
	for _, x := range []float32{0.25, 0.5, 0.75} {
		got := CubicInterpolate(0, 1, 2, 3, x)
		want := 1 + x
		if math.Abs(float64(got-want)) > 1e-5 {
			t.Errorf("CubicInterpolate(x=%v) = %v, want %v", x, got, want)
		}
	}
}

func TestCubicInterpolate_Constant(t *testing.T) {
	t.Parallel()

	for _, x := range []float32{0, 0.3, 0.7, 1} {
		if got := CubicInterpolate(0.5, 0.5, 0.5, 0.5, x); math.Abs(float64(got-0.5)) > 1e-6 {
			t.Errorf("CubicInterpolate(constant, x=%v) = %v, want 0.5", x, got)
		}
	}
}
