// SPDX-License-Identifier: EPL-2.0

// Package mixing turns clean speech and noise buffers into training pairs.
//
// The pipeline for one item is:
//
//	segment := mixing.SelectBuffer(rng, clean, 16384)
//	res, err := mixing.NewMixer(rng).Mix(segment, noise, snr)
//
// Select pads or crops to a fixed length, Normalize brings a buffer to a
// dBFS reference by RMS, and Mixer.Mix normalizes both streams to
// ReferenceDBFS and adds the noise scaled by the pre-normalization RMS ratio
// and the requested SNR.
//
// All randomness comes from the Rand passed in, so a seeded *rand.Rand gives
// reproducible crops. Input buffers are never modified.
package mixing
