// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"

	"github.com/doyosae/speechprep/dataset"
	"github.com/doyosae/speechprep/internal/config"
)

type MixCmd struct {
	CleanPath    string  `name:"clean-path" type:"path" default:"${mix_clean_path}" help:"Directory of clean speech"`
	NoisePath    string  `name:"noise-path" type:"path" default:"${mix_noise_path}" help:"Directory of noise recordings"`
	SavePath     string  `name:"save-path" type:"path" default:"${mix_save_path}" help:"Dataset root"`
	NoisyName    string  `name:"noisy-name" default:"${mix_noisy_name}" help:"Subdirectory for noisy files"`
	CleanName    string  `name:"clean-name" default:"${mix_clean_name}" help:"Subdirectory for clean files"`
	SNRMode      string  `name:"snr-mode" default:"${mix_snr_mode}" help:"SNR policy: fixed, low, mid or high"`
	SNR          float64 `name:"snr" default:"${mix_snr}" help:"SNR in dB for --snr-mode=fixed"`
	PerItem      bool    `name:"per-item" default:"${mix_snr_per_item}" help:"Draw the SNR for every item instead of once per run"`
	OriginalRate int     `name:"original-rate" default:"${mix_original_rate}" help:"Expected sample rate of the sources"`
	TargetRate   int     `name:"target-rate" default:"${mix_target_rate}" help:"Output sample rate"`
	Length       int     `short:"l" default:"${mix_length}" help:"Segment length in samples"`
	Iterations   int     `default:"${mix_iterations}" help:"Passes over the clean catalog"`
	Subset       int     `default:"${mix_subset}" help:"Use only the first N clean files (0 for all)"`
	Workers      int     `short:"j" default:"${mix_workers}" help:"Parallel workers"`
	Seed         uint64  `default:"${mix_seed}" help:"Random seed (0 picks one)"`
}

func (c *MixCmd) config() config.Mix {
	return config.Mix{
		CleanPath:    c.CleanPath,
		NoisePath:    c.NoisePath,
		SavePath:     c.SavePath,
		NoisyName:    c.NoisyName,
		CleanName:    c.CleanName,
		SNRMode:      c.SNRMode,
		SNR:          c.SNR,
		SNRPerItem:   c.PerItem,
		OriginalRate: c.OriginalRate,
		TargetRate:   c.TargetRate,
		Length:       c.Length,
		Iterations:   c.Iterations,
		Subset:       c.Subset,
		Workers:      c.Workers,
		Seed:         c.Seed,
	}
}

func (c *MixCmd) Run(rt *runtime) error {
	opts, err := c.config().Options()
	if err != nil {
		return err
	}

	return rt.run("Mixing dataset", func(ctx context.Context, progress dataset.ProgressFunc) (dataset.Summary, error) {
		b, err := dataset.NewBuilder(opts, dataset.WithLogger(rt.log), dataset.WithProgress(progress))
		if err != nil {
			return dataset.Summary{}, err
		}

		return b.Run(ctx)
	})
}

type ResampleCmd struct {
	LoadPath     string `name:"load-path" type:"path" default:"${resample_load_path}" help:"Directory of source audio"`
	SavePath     string `name:"save-path" type:"path" default:"${resample_save_path}" help:"Output root"`
	Name         string `default:"${resample_name}" help:"Output subdirectory"`
	OriginalRate int    `name:"original-rate" default:"${resample_original_rate}" help:"Expected sample rate of the sources"`
	TargetRate   int    `name:"target-rate" default:"${resample_target_rate}" help:"Output sample rate"`
	Workers      int    `short:"j" default:"${resample_workers}" help:"Parallel workers"`
}

func (c *ResampleCmd) Run(rt *runtime) error {
	opts, err := config.Resample{
		LoadPath:     c.LoadPath,
		SavePath:     c.SavePath,
		Name:         c.Name,
		OriginalRate: c.OriginalRate,
		TargetRate:   c.TargetRate,
		Workers:      c.Workers,
	}.Options()
	if err != nil {
		return err
	}

	return rt.run("Resampling", func(ctx context.Context, progress dataset.ProgressFunc) (dataset.Summary, error) {
		r, err := dataset.NewResampler(opts,
			dataset.ResampleWithLogger(rt.log),
			dataset.ResampleWithProgress(progress),
		)
		if err != nil {
			return dataset.Summary{}, err
		}

		return r.Run(ctx)
	})
}

type PCMCmd struct {
	LoadPath string `name:"load-path" type:"path" default:"${pcm_load_path}" help:"Directory of .pcm files"`
	SavePath string `name:"save-path" type:"path" default:"${pcm_save_path}" help:"Output directory"`
	Channels int    `default:"${pcm_channels}" help:"Interleaved channels"`
	BitDepth int    `name:"bit-depth" default:"${pcm_bit_depth}" help:"Bits per sample (8, 16, 24 or 32)"`
	Rate     int    `default:"${pcm_rate}" help:"Sample rate"`
}

func (c *PCMCmd) Run(rt *runtime) error {
	opts, err := config.PCM{
		LoadPath: c.LoadPath,
		SavePath: c.SavePath,
		Channels: c.Channels,
		BitDepth: c.BitDepth,
		Rate:     c.Rate,
	}.Options()
	if err != nil {
		return err
	}

	return rt.run("Converting PCM", func(ctx context.Context, progress dataset.ProgressFunc) (dataset.Summary, error) {
		return dataset.ConvertPCM(ctx, opts, rt.log, progress)
	})
}
