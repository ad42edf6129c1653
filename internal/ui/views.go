// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/doyosae/speechprep/dataset"
)

const barWidth = 30

// maxListedFailures bounds the failures shown in a summary.
const maxListedFailures = 5

func renderProgressView(m Model) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.Title))
	b.WriteString("\n")

	if !m.started {
		b.WriteString(KeyStyle.Render("starting..."))
		b.WriteString("\n")
		return b.String()
	}

	p := m.Progress
	b.WriteString(fmt.Sprintf("%s %s\n", KeyStyle.Render("Phase:"), ValueStyle.Render(p.Phase.String())))
	b.WriteString(renderBar(p.Fraction()))
	if p.Total > 0 {
		b.WriteString(fmt.Sprintf(" %d/%d", p.Done, p.Total))
	}
	b.WriteString("\n")
	b.WriteString(KeyStyle.Render(fmt.Sprintf("elapsed %s  (q to cancel)", m.elapsed().Round(time.Second))))
	b.WriteString("\n")

	return b.String()
}

func renderBar(fraction float64) string {
	filled := int(fraction * barWidth)
	filled = max(0, min(filled, barWidth))

	return barFilled.Render(strings.Repeat("█", filled)) +
		barEmpty.Render(strings.Repeat("░", barWidth-filled)) +
		fmt.Sprintf(" %3.0f%%", fraction*100)
}

// RenderSummary formats a finished job for printing.
func RenderSummary(title string, s dataset.Summary) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n")

	row := func(key, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", KeyStyle.Render(key), ValueStyle.Render(value)))
	}

	row("Written:", fmt.Sprint(s.Written))
	row("Skipped:", fmt.Sprint(s.Skipped))
	if s.SNR != "" {
		row("SNR:", s.SNR)
	}
	if s.Seed != 0 {
		row("Seed:", fmt.Sprint(s.Seed))
	}
	row("Elapsed:", s.Elapsed.Round(time.Millisecond).String())

	failures := s.FailureList()
	for i, err := range failures {
		if i == maxListedFailures {
			b.WriteString(KeyStyle.Render(fmt.Sprintf("  ... and %d more", len(failures)-maxListedFailures)))
			b.WriteString("\n")
			break
		}
		b.WriteString(fmt.Sprintf("  %s %v\n", ErrorStyle.Render("✗"), err))
	}

	return b.String()
}
