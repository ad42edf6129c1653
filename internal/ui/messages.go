// SPDX-License-Identifier: EPL-2.0

package ui

import "github.com/doyosae/speechprep/dataset"

// ProgressMsg carries a progress report from the running job.
type ProgressMsg struct {
	dataset.Progress
}

// DoneMsg indicates the job has returned.
type DoneMsg struct {
	Summary dataset.Summary
	Err     error
}
