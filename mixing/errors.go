// SPDX-License-Identifier: EPL-2.0

package mixing

import "errors"

var (
	// ErrSilentSegment indicates a segment with zero RMS, which cannot be
	// normalized to a reference level.
	ErrSilentSegment = errors.New("silent source segment")

	// ErrSampleRateMismatch indicates clean and noise buffers at different rates.
	ErrSampleRateMismatch = errors.New("sample rate mismatch")

	// ErrInvalidSNRMode indicates an SNR mode name that is not recognized.
	ErrInvalidSNRMode = errors.New("invalid SNR mode")
)
