package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/examprep/ent"
	"github.com/abhisek/examprep/ent/sessionitem"
	"github.com/abhisek/examprep/ent/sessionprogress"
	"github.com/abhisek/examprep/internal/apperr"
)

// progressRepo implements ProgressRepo.
type progressRepo struct {
	s *Store
}

func (r *progressRepo) Progress(ctx context.Context, day int) (*ent.SessionProgress, error) {
	sp, err := r.s.clientFor(ctx).SessionProgress.Query().
		Where(sessionprogress.SessionDay(day)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get progress for day %d: %w", day, err)
	}
	return sp, nil
}

func (r *progressRepo) CreateProgress(ctx context.Context, day int, calendarDate time.Time) (*ent.SessionProgress, error) {
	sp, err := r.s.clientFor(ctx).SessionProgress.Create().
		SetSessionDay(day).
		SetCalendarDate(calendarDate).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create progress for day %d: %w", day, err)
	}
	return sp, nil
}

func (r *progressRepo) MarkDone(ctx context.Context, day int, flag ProgressFlag) error {
	upd := r.s.clientFor(ctx).SessionProgress.Update().
		Where(sessionprogress.SessionDay(day))
	switch flag {
	case FlagReading:
		upd = upd.SetReadingDone(true)
	case FlagFlashcards:
		upd = upd.SetFlashcardsDone(true)
	case FlagQuiz:
		upd = upd.SetQuizDone(true)
	default:
		return apperr.Invalid("component", flag, "unknown progress flag")
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("mark %s for day %d: %w", flag, day, err)
	}
	if n == 0 {
		return apperr.NotFound("session progress", day)
	}
	return nil
}

func (r *progressRepo) StampCompleted(ctx context.Context, day int, at time.Time) error {
	n, err := r.s.clientFor(ctx).SessionProgress.Update().
		Where(sessionprogress.SessionDay(day)).
		SetCompletedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("stamp completion for day %d: %w", day, err)
	}
	if n == 0 {
		return apperr.NotFound("session progress", day)
	}
	return nil
}

func (r *progressRepo) ClearProgress(ctx context.Context, day int) error {
	_, err := r.s.clientFor(ctx).SessionProgress.Update().
		Where(sessionprogress.SessionDay(day)).
		SetReadingDone(false).
		SetFlashcardsDone(false).
		SetQuizDone(false).
		ClearCompletedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("clear progress for day %d: %w", day, err)
	}
	return nil
}

func (r *progressRepo) CompletedDays(ctx context.Context) (map[int]bool, error) {
	days, err := r.s.clientFor(ctx).SessionProgress.Query().
		Where(sessionprogress.CompletedAtNotNil()).
		Select(sessionprogress.FieldSessionDay).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completed days: %w", err)
	}
	out := make(map[int]bool, len(days))
	for _, d := range days {
		out[d] = true
	}
	return out, nil
}

func (r *progressRepo) CountCompleted(ctx context.Context) (int, error) {
	n, err := r.s.clientFor(ctx).SessionProgress.Query().
		Where(sessionprogress.CompletedAtNotNil()).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count completed days: %w", err)
	}
	return n, nil
}

func (r *progressRepo) AddItem(ctx context.Context, day int, component sessionitem.Component, itemID int) (bool, error) {
	added := false
	err := r.s.InTx(ctx, func(ctx context.Context) error {
		client := r.s.clientFor(ctx)
		exists, err := client.SessionItem.Query().
			Where(
				sessionitem.SessionDay(day),
				sessionitem.ComponentEQ(component),
				sessionitem.ItemID(itemID),
			).
			Exist(ctx)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		if err := client.SessionItem.Create().
			SetSessionDay(day).
			SetComponent(component).
			SetItemID(itemID).
			Exec(ctx); err != nil {
			return err
		}
		added = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("record %s item %d for day %d: %w", component, itemID, day, err)
	}
	return added, nil
}

func (r *progressRepo) Items(ctx context.Context, day int, component sessionitem.Component) ([]int, error) {
	ids, err := r.s.clientFor(ctx).SessionItem.Query().
		Where(
			sessionitem.SessionDay(day),
			sessionitem.ComponentEQ(component),
		).
		Order(ent.Asc(sessionitem.FieldID)).
		Select(sessionitem.FieldItemID).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("query %s items for day %d: %w", component, day, err)
	}
	return ids, nil
}

func (r *progressRepo) DeleteItems(ctx context.Context, day int) (int, error) {
	n, err := r.s.clientFor(ctx).SessionItem.Delete().
		Where(sessionitem.SessionDay(day)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete items for day %d: %w", day, err)
	}
	return n, nil
}

func (r *progressRepo) DeleteAll(ctx context.Context) error {
	return r.s.InTx(ctx, func(ctx context.Context) error {
		client := r.s.clientFor(ctx)
		if _, err := client.SessionItem.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete session items: %w", err)
		}
		if _, err := client.SessionProgress.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete session progress: %w", err)
		}
		return nil
	})
}
