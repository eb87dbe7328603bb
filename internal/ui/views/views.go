// Package views renders the status, plan and weak-area screens as styled
// text for the command line.
package views

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/examprep/internal/readiness"
	"github.com/abhisek/examprep/internal/session"
	"github.com/abhisek/examprep/internal/ui/components"
	"github.com/abhisek/examprep/internal/ui/theme"
	"github.com/abhisek/examprep/internal/weakarea"
)

const barWidth = 20

// BandStyle returns the style for a readiness label.
func BandStyle(l readiness.Label) lipgloss.Style {
	switch l {
	case readiness.Ready:
		return theme.BandReady
	case readiness.Likely:
		return theme.BandLikely
	case readiness.NeedsWork:
		return theme.BandNeedsWork
	}
	return theme.BandNotReady
}

// Dashboard is everything shown by the status screen.
type Dashboard struct {
	State          *session.StudyPlanState
	CalendarDays   int
	Score          float64
	Breakdown      readiness.Breakdown
	Domains        []readiness.DomainScore
	Stats          *readiness.Stats
	Recommendation *readiness.DomainScore
}

// Header renders "Session Day N of M", with the calendar day once started.
func Header(state *session.StudyPlanState, calendarDays int) string {
	day := state.CurrentDay
	if state.Finished() {
		day = state.TotalDays
	}
	h := fmt.Sprintf("Session Day %d of %d", day, state.TotalDays)
	if calendarDays > 0 {
		h += fmt.Sprintf(" (Calendar Day %d)", calendarDays)
	}
	return h
}

// RenderDashboard renders the readiness dashboard.
func RenderDashboard(d Dashboard) string {
	var b strings.Builder

	b.WriteString(theme.Panel.Render(theme.Title.Render(Header(d.State, d.CalendarDays))))
	b.WriteString("\n\n")

	label := readiness.LabelFor(d.Score)
	bar := components.NewProgressBar("Overall Readiness", d.Score, true, barWidth)
	bar.Style = BandStyle(label)
	b.WriteString("  " + bar.View() + "  " + BandStyle(label).Render(string(label)) + "\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  quiz %.1f%%  retention %.1f%%  completion %.1f%%",
		d.Breakdown.QuizAccuracy, d.Breakdown.FlashcardRetention, d.Breakdown.StudyCompletion)))
	b.WriteString("\n\n")

	if len(d.Domains) > 0 {
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
			Headers("Domain", "Score", "Status")
		for _, ds := range d.Domains {
			t.Row(
				fmt.Sprintf("%d. %s", ds.SectionNumber, ds.Name),
				fmt.Sprintf("%.1f%%", ds.Score),
				BandStyle(ds.Label).Render(string(ds.Label)),
			)
		}
		b.WriteString(t.String())
		b.WriteString("\n\n")
	}

	if d.Stats != nil {
		b.WriteString(fmt.Sprintf("  Sessions: %s  |  Flashcards: %s  |  Quizzes: %s  |  Avg Quiz: %s\n",
			theme.Heading.Render(fmt.Sprint(d.Stats.SessionsCompleted)),
			theme.Heading.Render(fmt.Sprint(d.Stats.FlashcardsReviewed)),
			theme.Heading.Render(fmt.Sprint(d.Stats.QuizzesTaken)),
			theme.Heading.Render(fmt.Sprintf("%.1f%%", d.Stats.AvgQuizScore)),
		))
	}

	if d.Recommendation != nil {
		b.WriteString("\n  " + theme.Notice.Render("Recommendation: Focus on "+d.Recommendation.Name) + "\n")
	}
	return b.String()
}

// RenderPlan renders the study plan listing.
func RenderPlan(entries []session.PlanEntry) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Day", "Domain", "Status")
	for _, e := range entries {
		status := ""
		switch {
		case e.Done:
			status = theme.Done.Render("Done")
		case e.Current:
			status = theme.Current.Render("Current ←")
		}
		t.Row(fmt.Sprint(e.Day), e.DomainName, status)
	}
	return theme.Title.Render(fmt.Sprintf("%d-Day Study Plan", len(entries))) + "\n" + t.String() + "\n"
}

// maxSubtopics is the number of weak subtopics listed.
const maxSubtopics = 5

// RenderWeakAreas renders the weak-area report.
func RenderWeakAreas(domains []weakarea.WeakDomain, subtopics []weakarea.WeakSubtopic) string {
	if len(domains) == 0 && len(subtopics) == 0 {
		return theme.Correct.Render("No weak areas detected! Keep up the good work.") + "\n"
	}

	var b strings.Builder
	if len(domains) > 0 {
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
			Headers("Domain", "Score", "Questions Attempted")
		for _, d := range domains {
			t.Row(d.Name, fmt.Sprintf("%.1f%%", d.Score), fmt.Sprint(d.Total))
		}
		b.WriteString(theme.Title.Render("Weak Domains") + "\n" + t.String() + "\n")
	}

	if len(subtopics) > 0 {
		b.WriteString("\n" + theme.Heading.Render("Weakest Subtopics:") + "\n")
		for i, s := range subtopics {
			if i == maxSubtopics {
				break
			}
			b.WriteString(fmt.Sprintf("  %s  %s (%s)\n",
				theme.Incorrect.Render(fmt.Sprintf("%.1f%% errors", s.ErrorRate)),
				s.Name, s.DomainName))
		}
	}
	return b.String()
}
