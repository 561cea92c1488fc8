// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	// ErrDevice is wrapped by every device open or streaming failure.
	// Check with errors.Is; the controller is always back at idle when a
	// call returns it, so retrying Play is safe.
	ErrDevice = errors.New("audio device error")
)
