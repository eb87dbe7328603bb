package session

import (
	"context"

	"github.com/abhisek/examprep/ent"
)

// MixedDomainName is shown for plan days without a focus domain.
const MixedDomainName = "Mixed Review"

// PlanEntry is one line of the study plan listing.
type PlanEntry struct {
	Day        int
	DomainName string
	Done       bool
	Current    bool
}

// TodaysPlan returns the plan entry for the current day with its domain
// loaded, or nil when the plan is finished or empty.
func (s *Service) TodaysPlan(ctx context.Context) (*ent.StudyDay, error) {
	current, err := s.currentDay(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.Content().StudyDay(ctx, current)
}

// DomainName returns the focus domain name of sd, or MixedDomainName.
func DomainName(sd *ent.StudyDay) string {
	if sd == nil || sd.Edges.Domain == nil {
		return MixedDomainName
	}
	return sd.Edges.Domain.Name
}

// Plan lists every plan day with its completion and current markers.
func (s *Service) Plan(ctx context.Context) ([]PlanEntry, error) {
	days, err := s.store.Content().StudyDays(ctx)
	if err != nil {
		return nil, err
	}
	done, err := s.store.Progress().CompletedDays(ctx)
	if err != nil {
		return nil, err
	}
	current, err := s.currentDay(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]PlanEntry, 0, len(days))
	for _, sd := range days {
		entries = append(entries, PlanEntry{
			Day:        sd.DayNumber,
			DomainName: DomainName(sd),
			Done:       done[sd.DayNumber],
			Current:    sd.DayNumber == current,
		})
	}
	return entries, nil
}
