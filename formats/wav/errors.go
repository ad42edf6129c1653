// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile              = errors.New("not a WAV file")
	ErrUnsupportedSampleFormat = errors.New("unsupported WAV sample format")
	ErrEmptyData               = errors.New("no samples to write")
	ErrInvalidRate             = errors.New("sample rate must be positive")
)
