// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/doyosae/speechprep/dataset"
	"github.com/doyosae/speechprep/internal/config"
	"github.com/doyosae/speechprep/mixing"
)

func parse(t *testing.T, args ...string) (*CLI, func(rt *runtime) error) {
	t.Helper()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "none.env"))
	require.NoError(t, err)

	cli := &CLI{}
	parser, err := newParser(cli, cfg)
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	require.NoError(t, err)

	return cli, func(rt *runtime) error { return kctx.Run(rt) }
}

func plainRuntime(t *testing.T) (*runtime, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	return &runtime{ctx: context.Background(), log: zaptest.NewLogger(t), out: &out}, &out
}

func TestParse_MixDefaults(t *testing.T) {
	cli, _ := parse(t, "mix")

	assert.Equal(t, "info", cli.LogLevel)
	assert.Equal(t, 16384, cli.Mix.Length)
	assert.Equal(t, "low", cli.Mix.SNRMode)

	opts, err := cli.Mix.config().Options()
	require.NoError(t, err)
	assert.Equal(t, mixing.SNRLow, opts.SNR.Mode)
	assert.Equal(t, 16000, opts.TargetRate)
	assert.Equal(t, "test_noisy", opts.NoisyName)
}

func TestParse_MixFlags(t *testing.T) {
	cli, _ := parse(t, "--plain", "mix", "--snr-mode", "mid", "--per-item", "--seed", "9", "-l", "8000", "-j", "4")

	assert.True(t, cli.Plain)

	opts, err := cli.Mix.config().Options()
	require.NoError(t, err)
	assert.Equal(t, mixing.SNRSource{Mode: mixing.SNRMid, PerItem: true}, opts.SNR)
	assert.Equal(t, uint64(9), opts.Seed)
	assert.Equal(t, 8000, opts.SegmentLength)
	assert.Equal(t, 4, opts.Workers)
}

func TestParse_EnvironmentDefaults(t *testing.T) {
	t.Setenv("SPEECHPREP_PCM_BIT_DEPTH", "24")

	cli, _ := parse(t, "pcm2wav")
	assert.Equal(t, 24, cli.PCM2WAV.BitDepth)
}

func TestMixCmd_InvalidMode(t *testing.T) {
	_, run := parse(t, "mix", "--snr-mode", "loud")
	rt, out := plainRuntime(t)

	err := run(rt)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Empty(t, out.String())
}

func TestPCMCmd_Run(t *testing.T) {
	root := t.TempDir()
	in := filepath.Join(root, "in")
	outDir := filepath.Join(root, "out")
	require.NoError(t, os.MkdirAll(in, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(in, "a.pcm"), []byte{0, 0, 0, 64, 0, 192, 255, 127}, 0o644))

	_, run := parse(t, "pcm2wav", "--load-path", in, "--save-path", outDir)
	rt, out := plainRuntime(t)

	require.NoError(t, run(rt))
	assert.FileExists(t, filepath.Join(outDir, "a.wav"))
	assert.Contains(t, out.String(), "Converting PCM")
	assert.Contains(t, out.String(), "Written:")
}

func TestRuntime_Run(t *testing.T) {
	rt, out := plainRuntime(t)

	err := rt.run("Job", func(ctx context.Context, progress dataset.ProgressFunc) (dataset.Summary, error) {
		require.NotNil(t, progress)
		progress(dataset.Progress{Phase: dataset.PhaseMix, Done: 1, Total: 2})
		return dataset.Summary{Written: 2, SNR: "3 dB"}, nil
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "3 dB")
}

func TestRuntime_RunFailure(t *testing.T) {
	rt, out := plainRuntime(t)

	err := rt.run("Job", func(context.Context, dataset.ProgressFunc) (dataset.Summary, error) {
		return dataset.Summary{}, dataset.ErrNoDataProduced
	})

	assert.ErrorIs(t, err, dataset.ErrNoDataProduced)
	assert.Empty(t, out.String())
}

func TestRuntime_PartialSummaryOnCancel(t *testing.T) {
	rt, out := plainRuntime(t)

	err := rt.run("Job", func(context.Context, dataset.ProgressFunc) (dataset.Summary, error) {
		return dataset.Summary{Written: 4}, context.Canceled
	})

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Contains(t, out.String(), "Written:")
}

func TestNewRuntime_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speechprep.log")
	cli := &CLI{LogLevel: "info", LogFile: path}

	rt, err := newRuntime(context.Background(), cli, true)
	require.NoError(t, err)
	assert.Nil(t, rt.held)

	rt.log.Info("hello")
	rt.close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestNewRuntime_HoldsLogsWhileInteractive(t *testing.T) {
	rt, err := newRuntime(context.Background(), &CLI{LogLevel: "warn"}, true)
	require.NoError(t, err)
	require.NotNil(t, rt.held)

	rt.log.Warn("held back")
	assert.Contains(t, rt.held.String(), "held back")

	rt.flushHeld()
	assert.Zero(t, rt.held.Len())
}
