// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/maruel/natural"
)

// ignoredNames are OS metadata files that never hold audio.
var ignoredNames = map[string]bool{
	"desktop.ini": true,
	".DS_Store":   true,
}

// Scan walks root recursively and returns every regular file in natural
// order of the full path, so "a2.wav" sorts before "a10.wav".
func Scan(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() || ignoredNames[d.Name()] {
			return nil
		}
		paths = append(paths, path)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	sort.Sort(natural.StringSlice(paths))

	return paths, nil
}

// ScanExt is Scan restricted to files with extension ext (".pcm").
func ScanExt(root, ext string) ([]string, error) {
	all, err := Scan(root)
	if err != nil {
		return nil, err
	}

	out := all[:0]
	for _, p := range all {
		if filepath.Ext(p) == ext {
			out = append(out, p)
		}
	}

	return out, nil
}

// Catalog holds the clean and noise file lists of a run.
type Catalog struct {
	Clean []string
	Noise []string
}

// ScanCatalog scans both source trees. Either one being empty is an error.
func ScanCatalog(cleanDir, noiseDir string) (Catalog, error) {
	clean, err := Scan(cleanDir)
	if err != nil {
		return Catalog{}, err
	}
	if len(clean) == 0 {
		return Catalog{}, fmt.Errorf("%w: clean source %s", ErrEmptyCatalog, cleanDir)
	}

	noise, err := Scan(noiseDir)
	if err != nil {
		return Catalog{}, err
	}
	if len(noise) == 0 {
		return Catalog{}, fmt.Errorf("%w: noise source %s", ErrEmptyCatalog, noiseDir)
	}

	return Catalog{Clean: clean, Noise: noise}, nil
}

// Slots returns the clean path processed at each output slot: the catalog
// capped to subset entries (when subset > 0), repeated iterations times.
func (c Catalog) Slots(subset, iterations int) []string {
	base := c.Clean
	if subset > 0 && subset < len(base) {
		base = base[:subset]
	}

	out := make([]string, 0, len(base)*max(iterations, 0))
	for range iterations {
		out = append(out, base...)
	}

	return out
}
