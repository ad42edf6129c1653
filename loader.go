// SPDX-License-Identifier: EPL-2.0

package speechprep

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/doyosae/speechprep/audio"
	"github.com/doyosae/speechprep/formats/aiff"
	"github.com/doyosae/speechprep/formats/mp3"
	"github.com/doyosae/speechprep/formats/vorbis"
	"github.com/doyosae/speechprep/formats/wav"
)

// DefaultRegistry returns a registry with every decoder in formats/,
// keyed by file extension.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})

	return r
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithRegistry replaces DefaultRegistry.
func WithRegistry(r *audio.Registry) LoaderOption {
	return func(l *Loader) { l.registry = r }
}

// WithExpectedRate logs a warning for files whose header rate differs from
// rate. The header rate is still used for decoding.
func WithExpectedRate(rate int) LoaderOption {
	return func(l *Loader) { l.expectedRate = rate }
}

// WithLogger sets the logger, zap.NewNop by default.
func WithLogger(log *zap.Logger) LoaderOption {
	return func(l *Loader) { l.log = log }
}

// Loader decodes audio files into mono buffers at a fixed rate.
// It is safe for concurrent use.
type Loader struct {
	registry     *audio.Registry
	rate         int
	expectedRate int
	log          *zap.Logger
}

// NewLoader returns a Loader producing buffers at rate Hz. A rate of 0 keeps
// each file's native rate.
func NewLoader(rate int, opts ...LoaderOption) *Loader {
	l := &Loader{rate: rate, log: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	if l.registry == nil {
		l.registry = DefaultRegistry()
	}

	return l
}

// Rate is the output sample rate, 0 for native.
func (l *Loader) Rate() int { return l.rate }

// Load decodes path, resamples it and folds it down to mono.
func (l *Loader) Load(path string) (audio.Buffer, error) {
	dec, err := l.registry.ForPath(path)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("decode %s: %w", path, err)
	}
	defer src.Close()

	if l.expectedRate > 0 && src.SampleRate() != l.expectedRate {
		l.log.Warn("header sample rate differs from configured original rate",
			zap.String("path", path),
			zap.Int("header_rate", src.SampleRate()),
			zap.Int("configured_rate", l.expectedRate),
		)
	}

	buf, err := audio.ReadMono(src, l.rate)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("read %s: %w", path, err)
	}

	return buf, nil
}

// Load decodes path with the default registry into a mono buffer at rate Hz.
func Load(path string, rate int) (audio.Buffer, error) {
	return NewLoader(rate).Load(path)
}
