// SPDX-License-Identifier: EPL-2.0

// Package config reads speechprep settings from the environment and an
// optional .env file. The values become the defaults of the command line
// flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/doyosae/speechprep/dataset"
	"github.com/doyosae/speechprep/formats/pcm"
	"github.com/doyosae/speechprep/mixing"
)

// Prefix is prepended to every environment variable, e.g.
// SPEECHPREP_MIX_TARGET_RATE.
const Prefix = "SPEECHPREP"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogJSON  bool   `envconfig:"LOG_JSON"`

	Mix      Mix      `envconfig:"MIX"`
	Resample Resample `envconfig:"RESAMPLE"`
	PCM      PCM      `envconfig:"PCM"`
}

// Mix configures the dataset builder.
type Mix struct {
	CleanPath  string  `envconfig:"CLEAN_PATH" default:"./datasets_source/test_clean"`
	NoisePath  string  `envconfig:"NOISE_PATH" default:"./datasets_source/test_noise"`
	SavePath   string  `envconfig:"SAVE_PATH" default:"./datasets"`
	NoisyName  string  `envconfig:"NOISY_NAME" default:"test_noisy"`
	CleanName  string  `envconfig:"CLEAN_NAME" default:"test_clean"`
	SNRMode    string  `envconfig:"SNR_MODE" default:"low"`
	SNR        float64 `envconfig:"SNR" default:"0"`
	SNRPerItem bool    `envconfig:"SNR_PER_ITEM"`

	OriginalRate int    `envconfig:"ORIGINAL_RATE" default:"16000"`
	TargetRate   int    `envconfig:"TARGET_RATE" default:"16000"`
	Length       int    `envconfig:"LENGTH" default:"16384"`
	Iterations   int    `envconfig:"ITERATIONS" default:"1"`
	Subset       int    `envconfig:"SUBSET" default:"0"`
	Workers      int    `envconfig:"WORKERS" default:"1"`
	Seed         uint64 `envconfig:"SEED" default:"0"`
}

// Resample configures the bulk resampling job.
type Resample struct {
	LoadPath     string `envconfig:"LOAD_PATH" default:"./original"`
	SavePath     string `envconfig:"SAVE_PATH" default:"./datasets/clean"`
	Name         string `envconfig:"NAME" default:"test_clean"`
	OriginalRate int    `envconfig:"ORIGINAL_RATE" default:"16000"`
	TargetRate   int    `envconfig:"TARGET_RATE" default:"16000"`
	Workers      int    `envconfig:"WORKERS" default:"1"`
}

// PCM configures raw PCM conversion.
type PCM struct {
	LoadPath string `envconfig:"LOAD_PATH" default:"./korean_corpus"`
	SavePath string `envconfig:"SAVE_PATH" default:"./datasets/clean"`
	Channels int    `envconfig:"CHANNELS" default:"1"`
	BitDepth int    `envconfig:"BIT_DEPTH" default:"16"`
	Rate     int    `envconfig:"RATE" default:"16000"`
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. Missing .env files are not an error; variables
// already set in the environment win over .env values.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Vars flattens the configuration into kong interpolation variables such
// as ${mix_target_rate}.
func (c Config) Vars() map[string]string {
	itoa := strconv.Itoa
	return map[string]string{
		"log_level": c.LogLevel,
		"log_json":  strconv.FormatBool(c.LogJSON),

		"mix_clean_path":    c.Mix.CleanPath,
		"mix_noise_path":    c.Mix.NoisePath,
		"mix_save_path":     c.Mix.SavePath,
		"mix_noisy_name":    c.Mix.NoisyName,
		"mix_clean_name":    c.Mix.CleanName,
		"mix_snr_mode":      c.Mix.SNRMode,
		"mix_snr":           strconv.FormatFloat(c.Mix.SNR, 'g', -1, 64),
		"mix_snr_per_item":  strconv.FormatBool(c.Mix.SNRPerItem),
		"mix_original_rate": itoa(c.Mix.OriginalRate),
		"mix_target_rate":   itoa(c.Mix.TargetRate),
		"mix_length":        itoa(c.Mix.Length),
		"mix_iterations":    itoa(c.Mix.Iterations),
		"mix_subset":        itoa(c.Mix.Subset),
		"mix_workers":       itoa(c.Mix.Workers),
		"mix_seed":          strconv.FormatUint(c.Mix.Seed, 10),

		"resample_load_path":     c.Resample.LoadPath,
		"resample_save_path":     c.Resample.SavePath,
		"resample_name":          c.Resample.Name,
		"resample_original_rate": itoa(c.Resample.OriginalRate),
		"resample_target_rate":   itoa(c.Resample.TargetRate),
		"resample_workers":       itoa(c.Resample.Workers),

		"pcm_load_path": c.PCM.LoadPath,
		"pcm_save_path": c.PCM.SavePath,
		"pcm_channels":  itoa(c.PCM.Channels),
		"pcm_bit_depth": itoa(c.PCM.BitDepth),
		"pcm_rate":      itoa(c.PCM.Rate),
	}
}

// Options converts m into builder options.
func (m Mix) Options() (dataset.Options, error) {
	mode, err := mixing.ParseSNRMode(m.SNRMode)
	if err != nil {
		return dataset.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	opts := dataset.Options{
		CleanDir:      m.CleanPath,
		NoiseDir:      m.NoisePath,
		OutputDir:     m.SavePath,
		NoisyName:     m.NoisyName,
		CleanName:     m.CleanName,
		SNR:           mixing.SNRSource{Mode: mode, Fixed: m.SNR, PerItem: m.SNRPerItem},
		OriginalRate:  m.OriginalRate,
		TargetRate:    m.TargetRate,
		SegmentLength: m.Length,
		Iterations:    m.Iterations,
		SubsetSize:    m.Subset,
		Workers:       m.Workers,
		Seed:          m.Seed,
	}
	if err := opts.Validate(); err != nil {
		return dataset.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return opts, nil
}

// Options converts r into resampler options. Output goes to
// SavePath/Name.
func (r Resample) Options() (dataset.ResampleOptions, error) {
	if r.TargetRate <= 0 {
		return dataset.ResampleOptions{}, fmt.Errorf("%w: target rate %d must be positive", ErrInvalidConfig, r.TargetRate)
	}
	if r.OriginalRate < 0 {
		return dataset.ResampleOptions{}, fmt.Errorf("%w: original rate %d is negative", ErrInvalidConfig, r.OriginalRate)
	}
	if r.Workers < 0 {
		return dataset.ResampleOptions{}, fmt.Errorf("%w: workers %d is negative", ErrInvalidConfig, r.Workers)
	}

	return dataset.ResampleOptions{
		InputDir:     r.LoadPath,
		OutputDir:    filepath.Join(r.SavePath, r.Name),
		Rate:         r.TargetRate,
		ExpectedRate: r.OriginalRate,
		Workers:      r.Workers,
	}, nil
}

// Options converts p into conversion options.
func (p PCM) Options() (dataset.ConvertOptions, error) {
	f := pcm.Format{Channels: p.Channels, BitDepth: p.BitDepth, SampleRate: p.Rate}
	if err := f.Validate(); err != nil {
		return dataset.ConvertOptions{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return dataset.ConvertOptions{InputDir: p.LoadPath, OutputDir: p.SavePath, Format: f}, nil
}
