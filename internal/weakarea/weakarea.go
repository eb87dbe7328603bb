// Package weakarea finds the domains and subtopics the learner struggles
// with, based on quiz history.
package weakarea

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/abhisek/examprep/internal/store"
)

// DefaultThreshold is the accuracy percentage below which an area is weak.
const DefaultThreshold = 70.0

// WeakDomain is a domain whose quiz accuracy is below the threshold.
type WeakDomain struct {
	DomainID      int
	Name          string
	SectionNumber int
	Total         int
	Correct       int
	Score         float64 // accuracy, rounded to one decimal
}

// WeakSubtopic is a subtopic whose quiz error rate is above 100-threshold.
type WeakSubtopic struct {
	SubtopicID int
	Name       string
	DomainID   int
	DomainName string
	Total      int
	Errors     int
	ErrorRate  float64 // percent, rounded to one decimal
}

// Analyzer aggregates quiz history into weak areas.
type Analyzer struct {
	store *store.Store
}

// NewAnalyzer creates an analyzer reading from st.
func NewAnalyzer(st *store.Store) *Analyzer {
	return &Analyzer{store: st}
}

// WeakDomains returns the domains with accuracy strictly below threshold,
// weakest first. Domains without answers are not reported.
func (a *Analyzer) WeakDomains(ctx context.Context, threshold float64) ([]WeakDomain, error) {
	domains, err := a.store.Content().Domains(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		WeakDomain
		accuracy float64
	}
	var weak []scored
	for _, d := range domains {
		tally, err := a.store.Events().QuizTally(ctx, store.EventScope{DomainID: &d.ID})
		if err != nil {
			return nil, fmt.Errorf("tally domain %q: %w", d.Name, err)
		}
		if tally.Total == 0 {
			continue
		}
		acc := tally.Percent()
		if acc >= threshold {
			continue
		}
		weak = append(weak, scored{
			WeakDomain: WeakDomain{
				DomainID:      d.ID,
				Name:          d.Name,
				SectionNumber: d.SectionNumber,
				Total:         tally.Total,
				Correct:       tally.Hits,
				Score:         round1(acc),
			},
			accuracy: acc,
		})
	}

	sort.SliceStable(weak, func(i, j int) bool { return weak[i].accuracy < weak[j].accuracy })

	out := make([]WeakDomain, len(weak))
	for i, w := range weak {
		out[i] = w.WeakDomain
	}
	return out, nil
}

// WeakSubtopics returns the subtopics whose error rate exceeds
// 100-threshold, highest error rate first. Subtopics without answers are
// not reported.
func (a *Analyzer) WeakSubtopics(ctx context.Context, threshold float64) ([]WeakSubtopic, error) {
	subtopics, err := a.store.Content().Subtopics(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		WeakSubtopic
		rate float64
	}
	var weak []scored
	for _, st := range subtopics {
		tally, err := a.store.Events().QuizTally(ctx, store.EventScope{SubtopicID: &st.ID})
		if err != nil {
			return nil, fmt.Errorf("tally subtopic %q: %w", st.Name, err)
		}
		if tally.Total == 0 {
			continue
		}
		errs := tally.Total - tally.Hits
		rate := float64(errs) * 100 / float64(tally.Total)
		if rate <= 100-threshold {
			continue
		}

		ws := WeakSubtopic{
			SubtopicID: st.ID,
			Name:       st.Name,
			DomainID:   st.DomainID,
			Total:      tally.Total,
			Errors:     errs,
			ErrorRate:  round1(rate),
		}
		if st.Edges.Domain != nil {
			ws.DomainName = st.Edges.Domain.Name
		}
		weak = append(weak, scored{WeakSubtopic: ws, rate: rate})
	}

	sort.SliceStable(weak, func(i, j int) bool { return weak[i].rate > weak[j].rate })

	out := make([]WeakSubtopic, len(weak))
	for i, w := range weak {
		out[i] = w.WeakSubtopic
	}
	return out, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
