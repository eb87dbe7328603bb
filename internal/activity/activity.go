// Package activity runs flashcard and quiz batches item by item. Every item
// the learner finishes is committed, together with its session ledger entry,
// before the next one is shown, so an abandoned batch can be resumed.
package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/examprep/ent"
	"github.com/abhisek/examprep/internal/logger"
	"github.com/abhisek/examprep/internal/quiz"
	"github.com/abhisek/examprep/internal/session"
	"github.com/abhisek/examprep/internal/spacedrep"
	"github.com/abhisek/examprep/internal/store"
)

// Outcome tells the runner what to do after a presenter returns.
type Outcome int

const (
	// Continue commits the item and moves on.
	Continue Outcome = iota

	// SkipToEnd stops the batch without committing the current item.
	SkipToEnd
)

// Batch identifies one run of flashcards or questions.
type Batch struct {
	ID string

	// Day is the session day the batch belongs to, or 0 for a free drill.
	// Items of a day batch are recorded in that day's ledger.
	Day int
}

// NewBatch returns a batch with a fresh id.
func NewBatch(day int) Batch {
	return Batch{ID: uuid.NewString(), Day: day}
}

// Position is the 1-based place of an item in its batch.
type Position struct {
	Index int
	Total int
}

// FlashcardPresenter shows cards and collects self-ratings.
type FlashcardPresenter interface {
	// Rate shows card and returns the learner's 0-5 rating.
	Rate(ctx context.Context, pos Position, card *ent.Flashcard) (int, Outcome, error)
}

// QuizPresenter shows questions and collects answers.
type QuizPresenter interface {
	// Answer shows q and returns the chosen letter.
	Answer(ctx context.Context, pos Position, q *ent.QuizQuestion) (string, Outcome, error)

	// Feedback is called after an answer was committed.
	Feedback(ctx context.Context, q *ent.QuizQuestion, correct bool) error
}

// Result summarises a batch run.
type Result struct {
	Presented int
	Committed int

	// Passed counts ratings of 3 or more, or correct answers.
	Passed int

	// Abandoned is set when the learner chose SkipToEnd.
	Abandoned bool
}

// Runner drives batches through the review, quiz and session services.
type Runner struct {
	store    *store.Store
	reviewer *spacedrep.Reviewer
	quiz     *quiz.Service
	session  *session.Service
	log      *logger.Logger
}

// NewRunner wires a runner from its collaborators.
func NewRunner(st *store.Store, reviewer *spacedrep.Reviewer, quizSvc *quiz.Service, sessionSvc *session.Service, log *logger.Logger) *Runner {
	return &Runner{
		store:    st,
		reviewer: reviewer,
		quiz:     quizSvc,
		session:  sessionSvc,
		log:      logger.OrNop(log),
	}
}

// RunFlashcards reviews cards in order.
func (r *Runner) RunFlashcards(ctx context.Context, batch Batch, cards []*ent.Flashcard, p FlashcardPresenter) (*Result, error) {
	res := &Result{}
	for i, card := range cards {
		rating, outcome, err := p.Rate(ctx, Position{Index: i + 1, Total: len(cards)}, card)
		if err != nil {
			return res, err
		}
		res.Presented++
		if outcome == SkipToEnd {
			res.Abandoned = true
			break
		}

		err = r.store.InTx(ctx, func(ctx context.Context) error {
			if _, err := r.reviewer.Review(ctx, card.ID, rating, batch.ID); err != nil {
				return err
			}
			if batch.Day > 0 {
				return r.session.RecordSessionItem(ctx, batch.Day, session.FlashcardItem, card.ID)
			}
			return nil
		})
		if err != nil {
			r.log.Error("card commit failed", "batch", batch.ID, "card", card.ID, "error", err)
			return res, fmt.Errorf("commit card %d: %w", card.ID, err)
		}
		res.Committed++
		if rating >= spacedrep.PassingQuality {
			res.Passed++
		}
	}

	r.log.Debug("flashcard batch finished",
		"batch", batch.ID,
		"day", batch.Day,
		"committed", res.Committed,
		"abandoned", res.Abandoned,
	)
	return res, nil
}

// RunQuiz asks questions in order.
func (r *Runner) RunQuiz(ctx context.Context, batch Batch, questions []*ent.QuizQuestion, p QuizPresenter) (*Result, error) {
	res := &Result{}
	for i, q := range questions {
		answer, outcome, err := p.Answer(ctx, Position{Index: i + 1, Total: len(questions)}, q)
		if err != nil {
			return res, err
		}
		res.Presented++
		if outcome == SkipToEnd {
			res.Abandoned = true
			break
		}

		var correct bool
		err = r.store.InTx(ctx, func(ctx context.Context) error {
			var err error
			correct, err = r.quiz.RecordAnswer(ctx, q.ID, answer, batch.ID)
			if err != nil {
				return err
			}
			if batch.Day > 0 {
				return r.session.RecordSessionItem(ctx, batch.Day, session.QuizItem, q.ID)
			}
			return nil
		})
		if err != nil {
			r.log.Error("answer commit failed", "batch", batch.ID, "question", q.ID, "error", err)
			return res, fmt.Errorf("commit question %d: %w", q.ID, err)
		}
		res.Committed++
		if correct {
			res.Passed++
		}
		if err := p.Feedback(ctx, q, correct); err != nil {
			return res, err
		}
	}

	r.log.Debug("quiz batch finished",
		"batch", batch.ID,
		"day", batch.Day,
		"committed", res.Committed,
		"abandoned", res.Abandoned,
	)
	return res, nil
}

// RemainingCards drops the cards already recorded for day.
func (r *Runner) RemainingCards(ctx context.Context, day int, cards []*ent.Flashcard) ([]*ent.Flashcard, error) {
	done, err := r.session.CompletedItems(ctx, day, session.FlashcardItem)
	if err != nil {
		return nil, err
	}
	out := make([]*ent.Flashcard, 0, len(cards))
	for _, c := range cards {
		if !done[c.ID] {
			out = append(out, c)
		}
	}
	return out, nil
}
