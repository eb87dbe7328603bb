package activity

import (
	"context"
	"time"

	"github.com/abhisek/examprep/ent"
	"github.com/abhisek/examprep/internal/quiz"
	"github.com/abhisek/examprep/internal/session"
	"github.com/abhisek/examprep/internal/spacedrep"
)

// DayPresenter drives all three components of a study day.
type DayPresenter interface {
	FlashcardPresenter
	QuizPresenter

	// Read shows the reading material of the day.
	Read(ctx context.Context, sd *ent.StudyDay) (Outcome, error)

	// Begin is called before a component that still has work to do.
	Begin(ctx context.Context, c session.Component, items int) error
}

// DaySizes caps the number of items per day.
type DaySizes struct {
	Flashcards int
	Questions  int
}

// DayResult summarises a study day run.
type DayResult struct {
	// Day is 0 when the plan is already finished.
	Day        int
	Resumed    bool
	Flashcards *Result
	Quiz       *Result
	Completed  bool
	Abandoned  bool
}

// RunDay starts or resumes the current day and works through the components
// not yet done. Each finished component is marked complete; completing the
// last one advances the plan.
func (r *Runner) RunDay(ctx context.Context, selector *spacedrep.Selector, sizes DaySizes, now time.Time, p DayPresenter) (*DayResult, error) {
	sd, err := r.session.TodaysPlan(ctx)
	if err != nil {
		return nil, err
	}
	if sd == nil {
		return &DayResult{}, nil
	}
	day := sd.DayNumber
	res := &DayResult{Day: day}

	resumed, err := r.session.IsIncomplete(ctx)
	if err != nil {
		return nil, err
	}
	res.Resumed = resumed

	progress, err := r.session.Start(ctx, day)
	if err != nil {
		return nil, err
	}

	if !progress.ReadingDone {
		if err := p.Begin(ctx, session.Reading, 1); err != nil {
			return res, err
		}
		outcome, err := p.Read(ctx, sd)
		if err != nil {
			return res, err
		}
		if outcome == SkipToEnd {
			res.Abandoned = true
			return res, nil
		}
		if res.Completed, err = r.session.CompleteComponent(ctx, day, session.Reading); err != nil {
			return res, err
		}
	}

	if !progress.FlashcardsDone {
		cards, err := r.dayCards(ctx, selector, sd, sizes.Flashcards, now)
		if err != nil {
			return res, err
		}
		if err := p.Begin(ctx, session.Flashcards, len(cards)); err != nil {
			return res, err
		}
		res.Flashcards, err = r.RunFlashcards(ctx, NewBatch(day), cards, p)
		if err != nil {
			return res, err
		}
		if res.Flashcards.Abandoned {
			res.Abandoned = true
			return res, nil
		}
		if res.Completed, err = r.session.CompleteComponent(ctx, day, session.Flashcards); err != nil {
			return res, err
		}
	}

	if !progress.QuizDone {
		questions, err := r.dayQuestions(ctx, sd, sizes.Questions)
		if err != nil {
			return res, err
		}
		if err := p.Begin(ctx, session.Quiz, len(questions)); err != nil {
			return res, err
		}
		res.Quiz, err = r.RunQuiz(ctx, NewBatch(day), questions, p)
		if err != nil {
			return res, err
		}
		if res.Quiz.Abandoned {
			res.Abandoned = true
			return res, nil
		}
		if res.Completed, err = r.session.CompleteComponent(ctx, day, session.Quiz); err != nil {
			return res, err
		}
	}

	return res, nil
}

// dayCards picks the due cards of the day's domain, leaving out those
// already reviewed for this day so a resumed day keeps its total size.
func (r *Runner) dayCards(ctx context.Context, selector *spacedrep.Selector, sd *ent.StudyDay, size int, now time.Time) ([]*ent.Flashcard, error) {
	done, err := r.session.CompletedItems(ctx, sd.DayNumber, session.FlashcardItem)
	if err != nil {
		return nil, err
	}
	want := size - len(done)
	if want <= 0 {
		return nil, nil
	}
	cards, err := selector.SelectDue(ctx, now, spacedrep.DueFilter{DomainID: sd.DomainID}, want+len(done))
	if err != nil {
		return nil, err
	}
	cards, err = r.RemainingCards(ctx, sd.DayNumber, cards)
	if err != nil {
		return nil, err
	}
	if len(cards) > want {
		cards = cards[:want]
	}
	return cards, nil
}

// dayQuestions picks random questions of the day's domain, leaving out those
// already answered for this day.
func (r *Runner) dayQuestions(ctx context.Context, sd *ent.StudyDay, size int) ([]*ent.QuizQuestion, error) {
	done, err := r.session.CompletedItems(ctx, sd.DayNumber, session.QuizItem)
	if err != nil {
		return nil, err
	}
	want := size - len(done)
	if want <= 0 {
		return nil, nil
	}
	return r.quiz.Questions(ctx, quiz.Filter{DomainID: sd.DomainID, Exclude: done}, want)
}
