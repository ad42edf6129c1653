// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/doyosae/speechprep"
	"github.com/doyosae/speechprep/formats/wav"
)

// ResampleOptions configures a Resampler.
type ResampleOptions struct {
	InputDir  string
	OutputDir string
	// Rate is the output sample rate.
	Rate int
	// ExpectedRate is the rate the sources should have. A file whose header
	// says otherwise is logged and decoded at its header rate. 0 disables
	// the check.
	ExpectedRate int
	Workers      int
}

// Resampler converts a source tree to mono float32 WAV files at one rate,
// named by their position in the sorted tree: 0000001.wav, 0000002.wav, ...
type Resampler struct {
	opts     ResampleOptions
	log      *zap.Logger
	progress ProgressFunc
	loader   *speechprep.Loader
}

// ResamplerOption configures a Resampler.
type ResamplerOption func(*Resampler)

// ResampleWithLogger sets the logger, zap.NewNop by default.
func ResampleWithLogger(log *zap.Logger) ResamplerOption {
	return func(r *Resampler) { r.log = log }
}

// ResampleWithProgress installs a progress callback.
func ResampleWithProgress(fn ProgressFunc) ResamplerOption {
	return func(r *Resampler) { r.progress = fn }
}

// NewResampler validates opts and returns a Resampler that has not started.
// Workers defaults to 1.
func NewResampler(opts ResampleOptions, ropts ...ResamplerOption) (*Resampler, error) {
	switch {
	case opts.InputDir == "" || opts.OutputDir == "":
		return nil, fmt.Errorf("%w: input and output paths are required", ErrInvalidOptions)
	case opts.Rate <= 0:
		return nil, fmt.Errorf("%w: rate %d must be positive", ErrInvalidOptions, opts.Rate)
	case opts.ExpectedRate < 0:
		return nil, fmt.Errorf("%w: expected rate %d is negative", ErrInvalidOptions, opts.ExpectedRate)
	case opts.Workers < 0:
		return nil, fmt.Errorf("%w: workers %d is negative", ErrInvalidOptions, opts.Workers)
	}
	if opts.Workers == 0 {
		opts.Workers = 1
	}

	r := &Resampler{opts: opts, log: zap.NewNop()}
	for _, o := range ropts {
		o(r)
	}
	r.loader = speechprep.NewLoader(opts.Rate,
		speechprep.WithExpectedRate(opts.ExpectedRate),
		speechprep.WithLogger(r.log),
	)

	return r, nil
}

// OutputPath returns the file written for the index-th input (0-based).
func (r *Resampler) OutputPath(index int) string {
	return filepath.Join(r.opts.OutputDir, fmt.Sprintf("%07d.wav", index+1))
}

// Run converts every file under InputDir. Files that fail to decode are
// skipped and reported in the summary.
func (r *Resampler) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	var sum Summary

	r.progress.report(PhaseScan, 0, 0)
	paths, err := Scan(r.opts.InputDir)
	if err != nil {
		return sum, err
	}
	if len(paths) == 0 {
		return sum, fmt.Errorf("%w: %s", ErrEmptyCatalog, r.opts.InputDir)
	}
	r.progress.report(PhaseScan, 1, 1)

	if err := os.MkdirAll(r.opts.OutputDir, 0o755); err != nil {
		return sum, fmt.Errorf("%w", err)
	}

	var (
		mu       sync.Mutex
		failures error
		written  atomic.Int64
		done     atomic.Int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)
	r.progress.report(PhaseResample, 0, len(paths))

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}

			if err := r.convert(path, r.OutputPath(i)); err != nil {
				r.log.Warn("skipping file", zap.String("path", path), zap.Error(err))
				mu.Lock()
				failures = multierr.Append(failures, err)
				mu.Unlock()
			} else {
				written.Add(1)
			}
			r.progress.report(PhaseResample, int(done.Add(1)), len(paths))

			return nil
		})
	}
	_ = g.Wait()

	sum.Written = int(written.Load())
	sum.Failures = failures
	sum.Skipped = len(multierr.Errors(failures))
	sum.Elapsed = time.Since(start)

	if err := ctx.Err(); err != nil {
		return sum, err
	}
	if sum.Written == 0 {
		return sum, fmt.Errorf("%w: all %d files skipped", ErrNoDataProduced, sum.Skipped)
	}
	r.log.Info("resample finished", zap.Int("written", sum.Written), zap.Int("skipped", sum.Skipped))

	return sum, nil
}

func (r *Resampler) convert(src, dst string) error {
	buf, err := r.loader.Load(src)
	if err != nil {
		return err
	}

	return wav.WriteFile(dst, buf.SampleRate(), buf.Float32(), wav.Float32)
}
