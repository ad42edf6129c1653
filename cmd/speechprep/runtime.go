// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/doyosae/speechprep/dataset"
	"github.com/doyosae/speechprep/internal/logging"
	"github.com/doyosae/speechprep/internal/ui"
)

// job runs one command, reporting progress through progress.
type job func(ctx context.Context, progress dataset.ProgressFunc) (dataset.Summary, error)

// runtime is bound into every command's Run method.
type runtime struct {
	ctx         context.Context
	log         *zap.Logger
	interactive bool
	out         io.Writer

	// held collects log lines while the TUI owns the terminal.
	held    *bytes.Buffer
	logFile *os.File
}

func newRuntime(ctx context.Context, cli *CLI, interactive bool) (*runtime, error) {
	rt := &runtime{ctx: ctx, interactive: interactive, out: os.Stdout}

	opts := []logging.Option{
		logging.WithLevel(cli.LogLevel),
		logging.WithJSON(cli.JSON),
		logging.WithDevelopment(logging.ParseLevel(cli.LogLevel) == zap.DebugLevel),
	}

	switch {
	case cli.LogFile != "":
		f, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		rt.logFile = f
		opts = append(opts, logging.WithOutput(f))
	case interactive:
		rt.held = &bytes.Buffer{}
		opts = append(opts, logging.WithOutput(rt.held))
	}

	rt.log = logging.New(opts...)

	return rt, nil
}

func (rt *runtime) close() {
	_ = logging.Sync(rt.log)
	rt.flushHeld()
	if rt.logFile != nil {
		rt.logFile.Close()
	}
}

func (rt *runtime) flushHeld() {
	if rt.held != nil && rt.held.Len() > 0 {
		os.Stderr.Write(rt.held.Bytes())
		rt.held.Reset()
	}
}

// run executes j, behind the progress screen when interactive, and prints
// its summary.
func (rt *runtime) run(title string, j job) error {
	var (
		sum dataset.Summary
		err error
	)

	if rt.interactive {
		sum, err = rt.runInteractive(title, j)
	} else {
		sum, err = j(rt.ctx, func(p dataset.Progress) {
			rt.log.Debug("progress",
				zap.Stringer("phase", p.Phase),
				zap.Int("done", p.Done),
				zap.Int("total", p.Total),
			)
		})
	}

	rt.flushHeld()
	if err == nil || sum.Written > 0 {
		fmt.Fprint(rt.out, ui.RenderSummary(title, sum))
	}

	return err
}

func (rt *runtime) runInteractive(title string, j job) (dataset.Summary, error) {
	ctx, cancel := context.WithCancel(rt.ctx)
	defer cancel()

	p := tea.NewProgram(ui.NewModel(title, cancel), tea.WithContext(ctx), tea.WithOutput(rt.out))

	done := make(chan ui.DoneMsg, 1)
	go func() {
		sum, err := j(ctx, func(pr dataset.Progress) {
			p.Send(ui.ProgressMsg{Progress: pr})
		})
		msg := ui.DoneMsg{Summary: sum, Err: err}
		done <- msg
		p.Send(msg)
	}()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		cancel()
		<-done
		return dataset.Summary{}, fmt.Errorf("ui: %w", err)
	}

	res := <-done
	return res.Summary, res.Err
}
