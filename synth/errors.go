// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	// ErrInvalidParameter is wrapped by every synthesis validation failure.
	// Check with errors.Is.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnknownPreset is returned when a preset name is not in the catalog.
	ErrUnknownPreset = errors.New("unknown preset")
)
