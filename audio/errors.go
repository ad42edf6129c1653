// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNoProgress        = errors.New("source returned no samples without reaching EOF")
	ErrInvalidRate       = errors.New("sample rate must be positive")
)
