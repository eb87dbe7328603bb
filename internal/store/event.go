package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/abhisek/examprep/ent/answerevent"
	"github.com/abhisek/examprep/ent/flashcard"
	"github.com/abhisek/examprep/ent/predicate"
	"github.com/abhisek/examprep/ent/quizquestion"
	"github.com/abhisek/examprep/ent/reviewevent"
)

// sequenceKey is the settings key holding the next global event sequence.
//
// Review and answer events live in separate tables, so per-table IDs cannot
// order them against each other. Every append draws the next value from this
// single counter inside the appending transaction. The counter is not reset
// when history is deleted.
const sequenceKey = "event_sequence"

// passingRating is the lowest review rating counted as a successful recall.
const passingRating = 3

// eventRepo implements EventRepo.
type eventRepo struct {
	s *Store
}

// nextSequence returns the next sequence number and advances the counter.
// It must run inside a transaction.
func (r *eventRepo) nextSequence(ctx context.Context) (int64, error) {
	settings := &settingsRepo{s: r.s}
	raw, ok, err := settings.Get(ctx, sequenceKey)
	if err != nil {
		return 0, err
	}
	seq := int64(1)
	if ok {
		seq, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse %s %q: %w", sequenceKey, raw, err)
		}
	}
	if err := settings.Set(ctx, sequenceKey, strconv.FormatInt(seq+1, 10)); err != nil {
		return 0, err
	}
	return seq, nil
}

func (r *eventRepo) AppendReview(ctx context.Context, data ReviewEventData) error {
	return r.s.InTx(ctx, func(ctx context.Context) error {
		seq, err := r.nextSequence(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		create := r.s.clientFor(ctx).ReviewEvent.Create().
			SetSequence(seq).
			SetFlashcardID(data.FlashcardID).
			SetRating(data.Rating).
			SetBatchID(data.BatchID)
		if !data.Timestamp.IsZero() {
			create = create.SetTimestamp(data.Timestamp)
		}
		if err := create.Exec(ctx); err != nil {
			return fmt.Errorf("save review event: %w", err)
		}
		return nil
	})
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	return r.s.InTx(ctx, func(ctx context.Context) error {
		seq, err := r.nextSequence(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		create := r.s.clientFor(ctx).AnswerEvent.Create().
			SetSequence(seq).
			SetQuestionID(data.QuestionID).
			SetUserAnswer(data.UserAnswer).
			SetCorrect(data.Correct).
			SetBatchID(data.BatchID)
		if !data.Timestamp.IsZero() {
			create = create.SetTimestamp(data.Timestamp)
		}
		if err := create.Exec(ctx); err != nil {
			return fmt.Errorf("save answer event: %w", err)
		}
		return nil
	})
}

func (r *eventRepo) QuizTally(ctx context.Context, scope EventScope) (Tally, error) {
	var where []predicate.AnswerEvent
	if scope.DomainID != nil {
		where = append(where, answerevent.HasQuestionWith(quizquestion.DomainID(*scope.DomainID)))
	}
	if scope.SubtopicID != nil {
		where = append(where, answerevent.HasQuestionWith(quizquestion.SubtopicID(*scope.SubtopicID)))
	}

	base := r.s.clientFor(ctx).AnswerEvent.Query().Where(where...)
	total, err := base.Clone().Count(ctx)
	if err != nil {
		return Tally{}, fmt.Errorf("count answers: %w", err)
	}
	if total == 0 {
		return Tally{}, nil
	}
	correct, err := base.Clone().Where(answerevent.Correct(true)).Count(ctx)
	if err != nil {
		return Tally{}, fmt.Errorf("count correct answers: %w", err)
	}
	return Tally{Total: total, Hits: correct}, nil
}

func (r *eventRepo) ReviewTally(ctx context.Context, scope EventScope) (Tally, error) {
	var where []predicate.ReviewEvent
	if scope.DomainID != nil {
		where = append(where, reviewevent.HasFlashcardWith(flashcard.DomainID(*scope.DomainID)))
	}
	if scope.SubtopicID != nil {
		where = append(where, reviewevent.HasFlashcardWith(flashcard.SubtopicID(*scope.SubtopicID)))
	}

	base := r.s.clientFor(ctx).ReviewEvent.Query().Where(where...)
	total, err := base.Clone().Count(ctx)
	if err != nil {
		return Tally{}, fmt.Errorf("count reviews: %w", err)
	}
	if total == 0 {
		return Tally{}, nil
	}
	passed, err := base.Clone().Where(reviewevent.RatingGTE(passingRating)).Count(ctx)
	if err != nil {
		return Tally{}, fmt.Errorf("count passing reviews: %w", err)
	}
	return Tally{Total: total, Hits: passed}, nil
}

func (r *eventRepo) QuizBatches(ctx context.Context) (int, error) {
	batches, err := r.s.clientFor(ctx).AnswerEvent.Query().
		Where(answerevent.BatchIDNEQ("")).
		Unique(true).
		Select(answerevent.FieldBatchID).
		Strings(ctx)
	if err != nil {
		return 0, fmt.Errorf("query quiz batches: %w", err)
	}
	return len(batches), nil
}

func (r *eventRepo) DeleteAll(ctx context.Context) error {
	return r.s.InTx(ctx, func(ctx context.Context) error {
		client := r.s.clientFor(ctx)
		if _, err := client.ReviewEvent.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete review events: %w", err)
		}
		if _, err := client.AnswerEvent.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete answer events: %w", err)
		}
		return nil
	})
}
