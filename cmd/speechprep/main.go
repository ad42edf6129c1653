// SPDX-License-Identifier: EPL-2.0

// Command speechprep builds paired noisy/clean speech datasets and prepares
// their sources.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/doyosae/speechprep/internal/config"
	"github.com/doyosae/speechprep/internal/ui"
)

var (
	version = "0.1.0"
)

// CLI defines the command-line interface
type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version information"`
	LogLevel string           `name:"log-level" default:"${log_level}" help:"Log level (debug, info, warn, error)"`
	JSON     bool             `name:"json" default:"${log_json}" help:"Log JSON lines instead of console text"`
	LogFile  string           `name:"log-file" type:"path" help:"Append logs to this file"`
	Plain    bool             `help:"Disable the interactive progress display"`

	Mix      MixCmd      `cmd:"" help:"Mix clean speech with noise into a paired dataset"`
	Resample ResampleCmd `cmd:"" help:"Resample a directory of audio files to mono WAV"`
	PCM2WAV  PCMCmd      `cmd:"" name:"pcm2wav" help:"Wrap headerless PCM files into WAV"`
}

func newParser(cli *CLI, cfg config.Config) (*kong.Kong, error) {
	vars := kong.Vars(cfg.Vars())
	vars["version"] = version

	return kong.New(cli,
		kong.Name("speechprep"),
		kong.Description("Speech enhancement dataset preparation"),
		kong.UsageOnError(),
		vars,
	)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}

	cli := &CLI{}
	parser, err := newParser(cli, cfg)
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := newRuntime(ctx, cli, !cli.Plain && isatty.IsTerminal(os.Stdout.Fd()))
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}

	err = kctx.Run(rt)
	rt.close()
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}
