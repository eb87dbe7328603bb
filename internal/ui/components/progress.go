package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/examprep/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for a 0-100 percentage.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
	Style       lipgloss.Style
}

// NewProgressBar creates a new progress bar filled in the secondary colour.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
		Style:       lipgloss.NewStyle().Foreground(theme.Secondary),
	}
}

// Filled returns the number of filled cells for the bar width.
func (p ProgressBar) Filled() int {
	filled := int(float64(p.Width) * p.Percent / 100)
	if filled > p.Width {
		filled = p.Width
	}
	if filled < 0 {
		filled = 0
	}
	return filled
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(theme.Body.Render(p.Label))
		b.WriteString("  ")
	}

	filled := p.Filled()
	b.WriteString(p.Style.Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", p.Width-filled)))

	if p.ShowPercent {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  %.1f%%", p.Percent)))
	}
	return b.String()
}
