// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/doyosae/speechprep/formats/pcm"
)

// ConvertOptions configures ConvertPCM.
type ConvertOptions struct {
	InputDir  string
	OutputDir string
	Format    pcm.Format
}

// ConvertPCM wraps every *.pcm file under InputDir as <OutputDir>/<stem>.wav.
// An invalid format fails before any file is touched.
//
// Output names are flat. When two inputs share a stem, the first one
// converted in natural order keeps the name and later ones are skipped with
// ErrOutputCollision. Inputs without a complete frame are skipped with
// pcm.ErrNoFrames.
func ConvertPCM(ctx context.Context, opts ConvertOptions, log *zap.Logger, progress ProgressFunc) (Summary, error) {
	start := time.Now()
	var sum Summary

	if log == nil {
		log = zap.NewNop()
	}
	if err := opts.Format.Validate(); err != nil {
		return sum, err
	}

	paths, err := ScanExt(opts.InputDir, ".pcm")
	if err != nil {
		return sum, err
	}
	if len(paths) == 0 {
		return sum, fmt.Errorf("%w: no .pcm files in %s", ErrEmptyCatalog, opts.InputDir)
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return sum, fmt.Errorf("creating output directory: %w", err)
	}

	claimed := make(map[string]string, len(paths))
	progress.report(PhaseConvert, 0, len(paths))
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			sum.Elapsed = time.Since(start)
			return sum, err
		}

		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		dst := filepath.Join(opts.OutputDir, stem+".wav")

		var err error
		if first, ok := claimed[dst]; ok {
			err = fmt.Errorf("%w: %s already written from %s", ErrOutputCollision, dst, first)
		} else if _, err = pcm.ConvertFile(path, dst, opts.Format); err == nil {
			claimed[dst] = path
		}

		if err != nil {
			log.Warn("skipping file", zap.String("path", path), zap.Error(err))
			sum.Failures = multierr.Append(sum.Failures, fmt.Errorf("%s: %w", path, err))
			sum.Skipped++
		} else {
			sum.Written++
		}
		progress.report(PhaseConvert, i+1, len(paths))
	}
	sum.Elapsed = time.Since(start)

	if sum.Written == 0 {
		return sum, fmt.Errorf("%w: all %d files skipped", ErrNoDataProduced, sum.Skipped)
	}
	log.Info("conversion finished", zap.Int("written", sum.Written), zap.Int("skipped", sum.Skipped))

	return sum, nil
}
