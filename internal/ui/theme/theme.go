package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#3B82F6") // Blue
	Secondary = lipgloss.Color("#06B6D4") // Cyan
	Warning   = lipgloss.Color("#EAB308") // Yellow
	Caution   = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Key = lipgloss.NewStyle().
		Foreground(Secondary)
)

// Layout
var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Secondary).
		Padding(0, 1)

	Answer = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Success).
		Padding(0, 1)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Done = lipgloss.NewStyle().
		Foreground(Success)

	Current = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Notice = lipgloss.NewStyle().
		Foreground(Warning)
)

// Readiness bands, strongest first.
var (
	BandReady     = lipgloss.NewStyle().Foreground(Success).Bold(true)
	BandLikely    = lipgloss.NewStyle().Foreground(Warning).Bold(true)
	BandNeedsWork = lipgloss.NewStyle().Foreground(Caution).Bold(true)
	BandNotReady  = lipgloss.NewStyle().Foreground(Error).Bold(true)
)
