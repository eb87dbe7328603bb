package views

import (
	"strings"
	"testing"

	"github.com/abhisek/examprep/internal/readiness"
	"github.com/abhisek/examprep/internal/session"
	"github.com/abhisek/examprep/internal/weakarea"
)

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestHeader(t *testing.T) {
	tests := []struct {
		state *session.StudyPlanState
		cal   int
		want  string
	}{
		{&session.StudyPlanState{CurrentDay: 1, TotalDays: 30}, 0, "Session Day 1 of 30"},
		{&session.StudyPlanState{CurrentDay: 4, TotalDays: 30}, 6, "Session Day 4 of 30 (Calendar Day 6)"},
		{&session.StudyPlanState{CurrentDay: 31, TotalDays: 30}, 40, "Session Day 30 of 30 (Calendar Day 40)"},
	}
	for _, tt := range tests {
		if got := Header(tt.state, tt.cal); got != tt.want {
			t.Errorf("Header = %q, want %q", got, tt.want)
		}
	}
}

func TestRenderDashboard(t *testing.T) {
	out := RenderDashboard(Dashboard{
		State: &session.StudyPlanState{CurrentDay: 2, TotalDays: 30},
		Score: 72.5,
		Domains: []readiness.DomainScore{
			{Name: "Compute", SectionNumber: 3, Score: 55, Label: readiness.NeedsWork},
		},
		Stats:          &readiness.Stats{SessionsCompleted: 1, FlashcardsReviewed: 12, QuizzesTaken: 1, AvgQuizScore: 62.5},
		Recommendation: &readiness.DomainScore{Name: "Compute"},
	})
	assertContains(t, out,
		"Session Day 2 of 30",
		"72.5%",
		"LIKELY",
		"3. Compute",
		"NEEDS WORK",
		"62.5%",
		"Recommendation: Focus on Compute",
	)
}

func TestRenderPlan(t *testing.T) {
	out := RenderPlan([]session.PlanEntry{
		{Day: 1, DomainName: "Compute", Done: true},
		{Day: 2, DomainName: "Compute", Current: true},
		{Day: 3, DomainName: session.MixedDomainName},
	})
	assertContains(t, out, "3-Day Study Plan", "Done", "Current", "Mixed Review")
}

func TestRenderWeakAreas(t *testing.T) {
	out := RenderWeakAreas(nil, nil)
	assertContains(t, out, "No weak areas detected")

	subs := make([]weakarea.WeakSubtopic, 7)
	for i := range subs {
		subs[i] = weakarea.WeakSubtopic{Name: "sub", DomainName: "Compute", ErrorRate: 50}
	}
	subs[6].Name = "hidden"
	out = RenderWeakAreas([]weakarea.WeakDomain{{Name: "Compute", Score: 40, Total: 5}}, subs)
	assertContains(t, out, "Weak Domains", "40.0%", "50.0% errors")
	if strings.Contains(out, "hidden") {
		t.Error("only the first five subtopics should be listed")
	}
}
