// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"sort"
	"strings"
)

// Preset is a named bundle of tone layers targeting a brainwave band.
// The catalog is read-only after process start.
type Preset struct {
	Description string
	Band        Band
	Layers      []ToneSpec
}

var presets = map[string]Preset{
	"deep_sleep": {
		Description: "Delta waves for deep sleep",
		Band:        BandDelta,
		Layers: []ToneSpec{
			{BaseFreq: 150, BeatFreq: 2.0, Amplitude: 1},
		},
	},
	"meditation": {
		Description: "Theta waves for deep meditation",
		Band:        BandTheta,
		Layers: []ToneSpec{
			{BaseFreq: 200, BeatFreq: 6.0, Amplitude: 1},
		},
	},
	"relaxation": {
		Description: "Alpha waves for relaxation",
		Band:        BandAlpha,
		Layers: []ToneSpec{
			{BaseFreq: 200, BeatFreq: 10.0, Amplitude: 1},
		},
	},
	"focus": {
		Description: "Beta waves for concentration",
		Band:        BandBeta,
		Layers: []ToneSpec{
			{BaseFreq: 250, BeatFreq: 18.0, Amplitude: 1},
		},
	},
	"creativity": {
		Description: "Theta-Alpha border for creativity",
		Band:        BandTheta,
		Layers: []ToneSpec{
			{BaseFreq: 180, BeatFreq: 7.5, Amplitude: 1},
		},
	},
}

// PresetNames returns the catalog names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Presets returns a name to description mapping for discoverability.
func Presets() map[string]string {
	out := make(map[string]string, len(presets))
	for name, p := range presets {
		out[name] = p.Description
	}
	return out
}

// LookupPreset resolves a preset name. Unknown names fail with
// ErrUnknownPreset; the message lists the valid names.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w %q, available: %s", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return p, nil
}

// RenderPreset resolves name and renders its layers over duration seconds
// with fade seconds of fade-in and fade-out.
func (s *Synth) RenderPreset(name string, duration, fade float64) (*Buffer, error) {
	p, err := LookupPreset(name)
	if err != nil {
		return nil, err
	}
	return s.Layered(p.Layers, duration, fade)
}
