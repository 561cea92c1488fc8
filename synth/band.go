// SPDX-License-Identifier: EPL-2.0

package synth

// Band names a brainwave frequency range.
type Band string

const (
	// BandDelta covers 0.5-4 Hz: deep sleep, healing.
	BandDelta Band = "delta"
	// BandTheta covers 4-8 Hz: meditation, creativity, REM sleep.
	BandTheta Band = "theta"
	// BandAlpha covers 8-14 Hz: relaxation, calm focus.
	BandAlpha Band = "alpha"
	// BandBeta covers 14-30 Hz: active concentration, alertness.
	BandBeta Band = "beta"
)

// BandFor maps an entrainment frequency (a beat or pulse rate, not a carrier)
// to its brainwave band.
func BandFor(freq float64) Band {
	switch {
	case freq < 4:
		return BandDelta
	case freq < 8:
		return BandTheta
	case freq < 14:
		return BandAlpha
	default:
		return BandBeta
	}
}
