// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"time"

	"go.uber.org/multierr"
)

// Summary reports the outcome of a job.
type Summary struct {
	Written int
	Skipped int
	// Failures joins the per-item errors; use multierr.Errors to list them.
	Failures error
	// SNR is the value used for every item, or the policy when drawn per item.
	SNR     string
	Seed    uint64
	Elapsed time.Duration
}

// FailureList returns the individual per-item errors.
func (s Summary) FailureList() []error {
	return multierr.Errors(s.Failures)
}
