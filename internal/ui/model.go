// SPDX-License-Identifier: EPL-2.0

// Package ui provides the Bubbletea terminal user interface for speechprep
// jobs.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/doyosae/speechprep/dataset"
)

// Model is the Bubbletea model showing the progress of one job.
type Model struct {
	Title    string
	Progress dataset.Progress

	// Set once DoneMsg arrives.
	Done    bool
	Summary dataset.Summary
	Err     error

	// Cancelled is set when the user quit before the job finished.
	Cancelled bool

	Width int

	started   bool
	startTime time.Time
	cancel    context.CancelFunc
	now       func() time.Time
}

// NewModel returns a model for a job titled title. cancel is called when
// the user quits early and may be nil.
func NewModel(title string, cancel context.CancelFunc) Model {
	return Model{
		Title:     title,
		startTime: time.Now(),
		cancel:    cancel,
		now:       time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if !m.Done {
				m.Cancelled = true
				if m.cancel != nil {
					m.cancel()
				}
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width

	case ProgressMsg:
		m.started = true
		m.Progress = msg.Progress

	case DoneMsg:
		m.Done = true
		m.Summary = msg.Summary
		m.Err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// View renders the progress screen. Once the job is done the summary is
// printed by the caller after the program exits.
func (m Model) View() string {
	if m.Done {
		return ""
	}

	return renderProgressView(m)
}

func (m Model) elapsed() time.Duration {
	if m.now == nil {
		return 0
	}

	return m.now().Sub(m.startTime)
}
