// SPDX-License-Identifier: EPL-2.0

// Package logging builds the zap loggers used by the command line tool.
package logging

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type settings struct {
	level       zapcore.Level
	development bool
	json        bool
	output      zapcore.WriteSyncer
}

// Option configures New.
type Option func(*settings)

// WithLevel sets the minimum level by name ("debug", "info", "warn", ...).
// Unknown names fall back to info.
func WithLevel(name string) Option {
	return func(s *settings) {
		s.level = ParseLevel(name)
	}
}

// WithDevelopment enables caller annotations and stack traces on warnings.
func WithDevelopment(dev bool) Option {
	return func(s *settings) { s.development = dev }
}

// WithJSON switches from the console encoder to JSON lines.
func WithJSON(json bool) Option {
	return func(s *settings) { s.json = json }
}

// WithOutput redirects log lines, stderr by default.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.output = zapcore.Lock(zapcore.AddSync(w)) }
}

// ParseLevel converts a level name to a zap level, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(name)))); err != nil {
		return zapcore.InfoLevel
	}

	return lvl
}

// New returns a logger writing to stderr at info level unless configured
// otherwise.
func New(opts ...Option) *zap.Logger {
	s := settings{level: zapcore.InfoLevel, output: zapcore.Lock(os.Stderr)}
	for _, opt := range opts {
		opt(&s)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if s.json {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	zopts := []zap.Option{zap.ErrorOutput(s.output)}
	if s.development {
		zopts = append(zopts, zap.Development(), zap.AddCaller(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	return zap.New(zapcore.NewCore(enc, s.output, s.level), zopts...)
}

// Sync flushes l. Errors from syncing a terminal are ignored.
func Sync(l *zap.Logger) error {
	err := l.Sync()
	if err == nil || errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) {
		return nil
	}

	return err
}
