// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	// ErrInvalidBitDepth indicates a bit depth that is not a positive multiple of 8.
	ErrInvalidBitDepth = errors.New("bit depth must be a multiple of 8")

	// ErrUnsupportedBitDepth indicates a bit depth above 32.
	ErrUnsupportedBitDepth = errors.New("bit depth above 32 is not supported")

	// ErrInvalidChannels indicates a channel count below 1.
	ErrInvalidChannels = errors.New("channel count must be positive")

	// ErrInvalidRate indicates a sample rate below 1.
	ErrInvalidRate = errors.New("sample rate must be positive")

	// ErrNoFrames indicates input shorter than one frame.
	ErrNoFrames = errors.New("pcm input holds no complete frame")
)
