// SPDX-License-Identifier: EPL-2.0

// Package dataset runs the batch jobs that turn source recordings into a
// training set.
//
// Builder is the main job. It scans a clean and a noise tree, loads every
// noise file into memory at the target rate and then, for each output slot,
// cuts a segment from a clean file, picks a noise file at random and mixes
// the two at the configured SNR:
//
//	b, err := dataset.NewBuilder(dataset.Options{
//		CleanDir: "source/clean", NoiseDir: "source/noise", OutputDir: "datasets",
//		NoisyName: "train_noisy", CleanName: "train_clean",
//		TargetRate: 16000, SegmentLength: 16384, Iterations: 1, Seed: 42,
//	})
//	sum, err := b.Run(ctx)
//
// Slot i writes <noisy>/<noisy>%06d.wav and <clean>/<clean>%06d.wav with
// index i+1. Every slot draws from its own generator seeded with (Seed, i),
// so a fixed seed reproduces the same files whatever the worker count.
// Items that fail to load or are silent are skipped and counted; the run
// only fails when nothing at all is written.
//
// Resampler and ConvertPCM are the preprocessing jobs that feed Builder:
// bulk resampling to mono float32 and wrapping raw PCM in WAV.
package dataset
