// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/doyosae/speechprep"
	"github.com/doyosae/speechprep/audio"
	"github.com/doyosae/speechprep/mixing"
)

// State is the lifecycle stage of a Builder.
type State int32

const (
	StateIdle State = iota
	StateScanning
	StateMixing
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScanning:
		return "scanning"
	case StateMixing:
		return "mixing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// snrStream is the PCG stream reserved for the per-run SNR draw. Slot
// streams use the slot index, so this never collides with a real slot.
const snrStream = ^uint64(0)

// Options configures a mixing run.
type Options struct {
	CleanDir  string
	NoiseDir  string
	OutputDir string
	NoisyName string
	CleanName string

	SNR mixing.SNRSource
	// OriginalRate is the rate the sources are expected to have. Files whose
	// header says otherwise are decoded at their header rate with a warning.
	OriginalRate  int
	TargetRate    int
	SegmentLength int
	Iterations    int
	// SubsetSize caps the clean catalog before it is repeated. 0 disables it.
	SubsetSize int
	Workers    int
	// Seed makes a run reproducible. 0 picks a random seed, reported in the
	// Summary.
	Seed uint64
}

// Validate reports options that would make the run meaningless.
func (o Options) Validate() error {
	var err error
	if o.CleanDir == "" || o.NoiseDir == "" || o.OutputDir == "" {
		err = multierr.Append(err, errors.New("clean, noise and output paths are required"))
	}
	if o.NoisyName == "" || o.CleanName == "" {
		err = multierr.Append(err, errors.New("noisy and clean names are required"))
	}
	if o.NoisyName != "" && o.NoisyName == o.CleanName {
		err = multierr.Append(err, fmt.Errorf("noisy and clean names are both %q", o.NoisyName))
	}
	if o.TargetRate <= 0 {
		err = multierr.Append(err, fmt.Errorf("target rate %d must be positive", o.TargetRate))
	}
	if o.OriginalRate < 0 {
		err = multierr.Append(err, fmt.Errorf("original rate %d is negative", o.OriginalRate))
	}
	if o.SegmentLength <= 0 {
		err = multierr.Append(err, fmt.Errorf("segment length %d must be positive", o.SegmentLength))
	}
	if o.Iterations <= 0 {
		err = multierr.Append(err, fmt.Errorf("iterations %d must be positive", o.Iterations))
	}
	if o.SubsetSize < 0 {
		err = multierr.Append(err, fmt.Errorf("subset size %d is negative", o.SubsetSize))
	}
	if o.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("workers %d is negative", o.Workers))
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return nil
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger, zap.NewNop by default.
func WithLogger(log *zap.Logger) BuilderOption {
	return func(b *Builder) { b.log = log }
}

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) BuilderOption {
	return func(b *Builder) { b.progress = fn }
}

// WithLoader replaces the default loader built from the options.
func WithLoader(l *speechprep.Loader) BuilderOption {
	return func(b *Builder) { b.loader = l }
}

// Builder produces a noisy/clean dataset from two source trees.
//
// A Builder runs once: Idle -> Scanning -> Mixing -> Done, or Failed on a
// fatal error.
type Builder struct {
	opts     Options
	log      *zap.Logger
	progress ProgressFunc
	loader   *speechprep.Loader
	state    atomic.Int32
}

// NewBuilder validates opts and returns an idle Builder. Invalid options
// fail with ErrInvalidOptions listing every problem. Workers defaults to 1,
// and without WithLoader the builder decodes at TargetRate and warns about
// files whose header rate differs from OriginalRate.
func NewBuilder(opts Options, bopts ...BuilderOption) (*Builder, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Workers == 0 {
		opts.Workers = 1
	}

	b := &Builder{opts: opts, log: zap.NewNop()}
	for _, o := range bopts {
		o(b)
	}
	if b.loader == nil {
		b.loader = speechprep.NewLoader(opts.TargetRate,
			speechprep.WithExpectedRate(opts.OriginalRate),
			speechprep.WithLogger(b.log),
		)
	}

	return b, nil
}

// State returns the current lifecycle stage. It is safe to call while Run
// is in progress.
func (b *Builder) State() State { return State(b.state.Load()) }

func (b *Builder) setState(s State) {
	b.state.Store(int32(s))
	b.log.Info("builder state", zap.Stringer("state", s))
}

// Run scans, preloads the noise pool and writes one pair per slot.
//
// Per-item failures are logged, counted in Summary.Skipped and collected in
// Summary.Failures. Run fails with ErrNoDataProduced when nothing was
// written, and with ctx.Err() when cancelled between items; files already
// written stay complete.
func (b *Builder) Run(ctx context.Context) (Summary, error) {
	if !b.state.CompareAndSwap(int32(StateIdle), int32(StateScanning)) {
		return Summary{}, fmt.Errorf("builder already %s", b.State())
	}
	b.log.Info("builder state", zap.Stringer("state", StateScanning))

	start := time.Now()
	sum, err := b.run(ctx)
	sum.Elapsed = time.Since(start)

	if err != nil {
		b.setState(StateFailed)
		return sum, err
	}
	b.setState(StateDone)

	return sum, nil
}

func (b *Builder) run(ctx context.Context) (Summary, error) {
	seed := b.opts.Seed
	if seed == 0 {
		seed = rand.Uint64() | 1
	}
	sum := Summary{Seed: seed}
	b.log.Info("starting run", zap.Uint64("seed", seed), zap.Stringer("snr", b.opts.SNR))

	b.progress.report(PhaseScan, 0, 0)
	cat, err := ScanCatalog(b.opts.CleanDir, b.opts.NoiseDir)
	if err != nil {
		return sum, err
	}
	b.progress.report(PhaseScan, 1, 1)
	b.log.Info("scanned sources", zap.Int("clean", len(cat.Clean)), zap.Int("noise", len(cat.Noise)))

	pool, loadErrs := b.loadNoise(ctx, cat.Noise)
	if err := ctx.Err(); err != nil {
		return sum, err
	}
	if len(pool) == 0 {
		sum.Failures = loadErrs
		return sum, fmt.Errorf("%w: %d files tried", ErrEmptyNoisePool, len(cat.Noise))
	}

	store := NewStore(b.opts.OutputDir, b.opts.NoisyName, b.opts.CleanName, b.opts.TargetRate)
	if err := store.Prepare(); err != nil {
		return sum, err
	}

	snr := b.opts.SNR
	runSNR := snr.Resolve(rand.New(rand.NewPCG(seed, snrStream)))
	if snr.PerItem {
		sum.SNR = snr.String()
	} else {
		sum.SNR = strconv.FormatFloat(runSNR, 'g', -1, 64) + " dB"
	}

	b.setState(StateMixing)
	slots := cat.Slots(b.opts.SubsetSize, b.opts.Iterations)

	var (
		mu       sync.Mutex
		failures error
		written  atomic.Int64
		finished atomic.Int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.Workers)
	b.progress.report(PhaseMix, 0, len(slots))

	for slot, path := range slots {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}

			rng := rand.New(rand.NewPCG(seed, uint64(slot)))
			itemSNR := runSNR
			if snr.PerItem {
				itemSNR = snr.Resolve(rng)
			}

			if err := b.mixSlot(rng, store, pool, slot, path, itemSNR); err != nil {
				b.log.Warn("skipping item", zap.Int("slot", slot), zap.String("path", path), zap.Error(err))
				mu.Lock()
				failures = multierr.Append(failures, fmt.Errorf("slot %d: %w", slot, err))
				mu.Unlock()
			} else {
				written.Add(1)
			}

			b.progress.report(PhaseMix, int(finished.Add(1)), len(slots))

			return nil
		})
	}
	_ = g.Wait()

	sum.Written = int(written.Load())
	sum.Skipped = len(multierr.Errors(failures))
	sum.Failures = multierr.Append(loadErrs, failures)

	if err := ctx.Err(); err != nil {
		return sum, err
	}
	if sum.Written == 0 {
		return sum, fmt.Errorf("%w: all %d items skipped", ErrNoDataProduced, sum.Skipped)
	}

	b.log.Info("run finished",
		zap.Int("written", sum.Written),
		zap.Int("skipped", sum.Skipped),
		zap.String("snr", sum.SNR),
	)

	return sum, nil
}

// loadNoise decodes every noise file at the target rate. Unreadable or
// all-silent files are logged and left out of the pool.
func (b *Builder) loadNoise(ctx context.Context, paths []string) ([]audio.Buffer, error) {
	loaded := make([]audio.Buffer, len(paths))
	ok := make([]bool, len(paths))

	var (
		mu       sync.Mutex
		failures error
		done     atomic.Int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.Workers)
	b.progress.report(PhaseLoadNoise, 0, len(paths))

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			buf, err := b.loader.Load(path)
			if err == nil && mixing.RMS(buf.Samples()) == 0 {
				err = mixing.ErrSilentSegment
			}

			if err != nil {
				b.log.Warn("dropping noise file", zap.String("path", path), zap.Error(err))
				mu.Lock()
				failures = multierr.Append(failures, fmt.Errorf("noise %s: %w", path, err))
				mu.Unlock()
			} else {
				loaded[i], ok[i] = buf, true
			}

			b.progress.report(PhaseLoadNoise, int(done.Add(1)), len(paths))

			return nil
		})
	}
	_ = g.Wait()

	pool := make([]audio.Buffer, 0, len(paths))
	for i := range loaded {
		if ok[i] {
			pool = append(pool, loaded[i])
		}
	}
	b.log.Info("noise pool loaded", zap.Int("files", len(pool)), zap.Int("dropped", len(paths)-len(pool)))

	return pool, failures
}

// mixSlot produces and stores one pair. Draw order on rng is fixed: SNR
// (when per item), clean crop, noise index, noise crop.
func (b *Builder) mixSlot(rng *rand.Rand, store *Store, pool []audio.Buffer, slot int, path string, snr float64) error {
	clean, err := b.loader.Load(path)
	if err != nil {
		return err
	}

	segment := mixing.SelectBuffer(rng, clean, b.opts.SegmentLength)
	noise := pool[rng.IntN(len(pool))]

	res, err := mixing.NewMixer(rng).Mix(segment, noise, snr)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return store.Write(slot, res)
}
