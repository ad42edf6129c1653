// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/doyosae/speechprep/formats/wav"
	"github.com/doyosae/speechprep/mixing"
)

// Store writes noisy/clean pairs as float32 WAV files under
// <root>/<noisyName>/<noisyName>NNNNNN.wav and the clean equivalent.
type Store struct {
	noisyDir, cleanDir   string
	noisyName, cleanName string
	rate                 int
}

// NewStore lays out pairs under root. Nothing touches the disk until
// Prepare or Write.
func NewStore(root, noisyName, cleanName string, rate int) *Store {
	return &Store{
		noisyDir:  filepath.Join(root, noisyName),
		cleanDir:  filepath.Join(root, cleanName),
		noisyName: noisyName,
		cleanName: cleanName,
		rate:      rate,
	}
}

// Prepare creates both output directories.
func (s *Store) Prepare() error {
	for _, dir := range []string{s.noisyDir, s.cleanDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// Paths returns the noisy and clean file names for slot (0-based).
func (s *Store) Paths(slot int) (noisy, clean string) {
	return filepath.Join(s.noisyDir, fmt.Sprintf("%s%06d.wav", s.noisyName, slot+1)),
		filepath.Join(s.cleanDir, fmt.Sprintf("%s%06d.wav", s.cleanName, slot+1))
}

// Write stores res under slot. A failure leaves no file under either name.
func (s *Store) Write(slot int, res mixing.Result) error {
	noisyPath, cleanPath := s.Paths(slot)

	if err := wav.WriteFile(noisyPath, s.rate, res.Noisy.Float32(), wav.Float32); err != nil {
		return fmt.Errorf("write %s: %w", noisyPath, err)
	}
	if err := wav.WriteFile(cleanPath, s.rate, res.Clean.Float32(), wav.Float32); err != nil {
		_ = os.Remove(noisyPath)
		return fmt.Errorf("write %s: %w", cleanPath, err)
	}

	return nil
}
