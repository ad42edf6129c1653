// SPDX-License-Identifier: EPL-2.0

package dataset

import "errors"

var (
	// ErrEmptyCatalog indicates a source directory without usable files.
	ErrEmptyCatalog = errors.New("empty source catalog")

	// ErrEmptyNoisePool indicates that no noise file could be loaded.
	ErrEmptyNoisePool = errors.New("no usable noise files")

	// ErrNoDataProduced indicates a run that wrote no output at all.
	ErrNoDataProduced = errors.New("no data produced")

	// ErrOutputCollision indicates two inputs that map to the same output file.
	ErrOutputCollision = errors.New("output file already claimed by another input")

	// ErrInvalidOptions indicates options rejected before any work starts.
	ErrInvalidOptions = errors.New("invalid options")
)
