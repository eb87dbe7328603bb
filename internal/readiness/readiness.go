// Package readiness scores how prepared the learner is for the exam.
//
// The overall score blends three percentages:
//
//	score = quiz accuracy*0.5 + flashcard retention*0.3 + study completion*0.2
//
// Each term is 0 when it has no data. Quiz accuracy counts every logged
// answer, so answering the same question repeatedly moves it each time.
package readiness

import (
	"context"
	"fmt"
	"math"

	"github.com/abhisek/examprep/internal/store"
)

// Label is a readiness band.
type Label string

const (
	Ready     Label = "READY"
	Likely    Label = "LIKELY"
	NeedsWork Label = "NEEDS WORK"
	NotReady  Label = "NOT READY"
)

// Band lower bounds, inclusive.
const (
	ReadyAt     = 80.0
	LikelyAt    = 65.0
	NeedsWorkAt = 50.0
)

// Term weights of the overall and per-domain scores.
const (
	quizWeight       = 0.5
	retentionWeight  = 0.3
	completionWeight = 0.2

	domainQuizWeight  = 0.6
	domainFlashWeight = 0.4
)

// RecommendBelow is the domain score under which the weakest domain is
// recommended for focus.
const RecommendBelow = 70.0

// LabelFor returns the band score falls into.
func LabelFor(score float64) Label {
	switch {
	case score >= ReadyAt:
		return Ready
	case score >= LikelyAt:
		return Likely
	case score >= NeedsWorkAt:
		return NeedsWork
	}
	return NotReady
}

// Breakdown holds the three unweighted, unrounded terms of the overall
// score as percentages.
type Breakdown struct {
	QuizAccuracy       float64
	FlashcardRetention float64
	StudyCompletion    float64
}

// Score combines the terms and rounds to one decimal.
func (b Breakdown) Score() float64 {
	return round1(b.QuizAccuracy*quizWeight +
		b.FlashcardRetention*retentionWeight +
		b.StudyCompletion*completionWeight)
}

// DomainScore is the readiness of one exam domain.
type DomainScore struct {
	DomainID      int
	Name          string
	SectionNumber int
	Score         float64
	Label         Label
}

// Stats summarises study activity.
type Stats struct {
	SessionsCompleted  int
	FlashcardsReviewed int
	QuizzesTaken       int
	AvgQuizScore       float64
}

// Scorer computes readiness from logged history.
type Scorer struct {
	store *store.Store
}

// NewScorer creates a scorer reading from st.
func NewScorer(st *store.Store) *Scorer {
	return &Scorer{store: st}
}

// Breakdown computes the three terms of the overall score.
func (s *Scorer) Breakdown(ctx context.Context) (Breakdown, error) {
	quiz, err := s.store.Events().QuizTally(ctx, store.EventScope{})
	if err != nil {
		return Breakdown{}, fmt.Errorf("quiz accuracy: %w", err)
	}
	reviews, err := s.store.Events().ReviewTally(ctx, store.EventScope{})
	if err != nil {
		return Breakdown{}, fmt.Errorf("flashcard retention: %w", err)
	}
	completed, err := s.store.Progress().CountCompleted(ctx)
	if err != nil {
		return Breakdown{}, fmt.Errorf("study completion: %w", err)
	}
	total, err := s.store.Content().CountStudyDays(ctx)
	if err != nil {
		return Breakdown{}, fmt.Errorf("study completion: %w", err)
	}

	return Breakdown{
		QuizAccuracy:       quiz.Percent(),
		FlashcardRetention: reviews.Percent(),
		StudyCompletion:    store.Tally{Total: total, Hits: completed}.Percent(),
	}, nil
}

// OverallScore returns the overall readiness score in [0, 100].
func (s *Scorer) OverallScore(ctx context.Context) (float64, error) {
	b, err := s.Breakdown(ctx)
	if err != nil {
		return 0, err
	}
	return b.Score(), nil
}

// DomainScores scores every domain in section order. A domain without any
// history scores 0.
func (s *Scorer) DomainScores(ctx context.Context) ([]DomainScore, error) {
	domains, err := s.store.Content().Domains(ctx)
	if err != nil {
		return nil, err
	}

	scores := make([]DomainScore, 0, len(domains))
	for _, d := range domains {
		scope := store.EventScope{DomainID: &d.ID}
		quiz, err := s.store.Events().QuizTally(ctx, scope)
		if err != nil {
			return nil, fmt.Errorf("score domain %q: %w", d.Name, err)
		}
		flash, err := s.store.Events().ReviewTally(ctx, scope)
		if err != nil {
			return nil, fmt.Errorf("score domain %q: %w", d.Name, err)
		}

		combined := quiz.Percent()*domainQuizWeight + flash.Percent()*domainFlashWeight
		scores = append(scores, DomainScore{
			DomainID:      d.ID,
			Name:          d.Name,
			SectionNumber: d.SectionNumber,
			Score:         round1(combined),
			Label:         LabelFor(combined),
		})
	}
	return scores, nil
}

// Stats counts completed sessions, reviews and quiz runs, and averages quiz
// accuracy over every answer.
func (s *Scorer) Stats(ctx context.Context) (*Stats, error) {
	sessions, err := s.store.Progress().CountCompleted(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := s.store.Events().ReviewTally(ctx, store.EventScope{})
	if err != nil {
		return nil, err
	}
	answers, err := s.store.Events().QuizTally(ctx, store.EventScope{})
	if err != nil {
		return nil, err
	}
	batches, err := s.store.Events().QuizBatches(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		SessionsCompleted:  sessions,
		FlashcardsReviewed: reviews.Total,
		QuizzesTaken:       batches,
		AvgQuizScore:       round1(answers.Percent()),
	}, nil
}

// Recommendation returns the lowest-scoring domain when its score is below
// RecommendBelow, or nil. Ties go to the earlier section.
func (s *Scorer) Recommendation(ctx context.Context) (*DomainScore, error) {
	scores, err := s.DomainScores(ctx)
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, nil
	}
	weakest := scores[0]
	for _, ds := range scores[1:] {
		if ds.Score < weakest.Score {
			weakest = ds
		}
	}
	if weakest.Score >= RecommendBelow {
		return nil, nil
	}
	return &weakest, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
