package spacedrep

import (
	"context"
	"time"

	"github.com/abhisek/examprep/internal/logger"
	"github.com/abhisek/examprep/internal/store"
)

// ReviewResult is the outcome of rating one flashcard.
type ReviewResult struct {
	CardID     int
	Before     State
	After      State
	NextReview time.Time
}

// Reviewer records flashcard ratings and reschedules cards.
type Reviewer struct {
	store *store.Store
	log   *logger.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewReviewer creates a reviewer backed by st.
func NewReviewer(st *store.Store, log *logger.Logger) *Reviewer {
	return &Reviewer{store: st, log: logger.OrNop(log), Now: time.Now}
}

// Review applies rating to the card and appends a review event. The new
// scheduling state and the event are written in one transaction. batchID
// tags the drill the rating belongs to and may be empty.
func (r *Reviewer) Review(ctx context.Context, cardID, rating int, batchID string) (*ReviewResult, error) {
	// Reject bad ratings before touching the store.
	if _, err := Update(rating, NewState()); err != nil {
		return nil, err
	}

	today := store.CalendarDay(r.Now())
	var res *ReviewResult
	err := r.store.InTx(ctx, func(ctx context.Context) error {
		card, err := r.store.Content().Flashcard(ctx, cardID)
		if err != nil {
			return err
		}

		before := State{
			EaseFactor:  card.EaseFactor,
			Interval:    card.Interval,
			Repetitions: card.Repetitions,
		}
		after, err := Update(rating, before)
		if err != nil {
			return err
		}
		next := NextReview(today, after.Interval)

		if err := r.store.Content().UpdateSchedule(ctx, cardID, store.Schedule{
			EaseFactor:  after.EaseFactor,
			Interval:    after.Interval,
			Repetitions: after.Repetitions,
			NextReview:  &next,
		}); err != nil {
			return err
		}
		if err := r.store.Events().AppendReview(ctx, store.ReviewEventData{
			FlashcardID: cardID,
			Rating:      rating,
			BatchID:     batchID,
		}); err != nil {
			return err
		}

		res = &ReviewResult{CardID: cardID, Before: before, After: after, NextReview: next}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.log.Debug("card reviewed",
		"card", cardID,
		"rating", rating,
		"interval", res.After.Interval,
		"ease", res.After.EaseFactor,
	)
	return res, nil
}
