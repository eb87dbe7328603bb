package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/abhisek/examprep/ent"
	"github.com/abhisek/examprep/internal/apperr"
	"github.com/abhisek/examprep/internal/logger"
	"github.com/abhisek/examprep/internal/store"
)

// Service drives the per-day study state machine: NotStarted, InProgress
// (any subset of the three component flags), Completed.
type Service struct {
	store *store.Store
	log   *logger.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewService creates a session service backed by st.
func NewService(st *store.Store, log *logger.Logger) *Service {
	return &Service{store: st, log: logger.OrNop(log), Now: time.Now}
}

// State loads the learner's position in the plan.
func (s *Service) State(ctx context.Context) (*StudyPlanState, error) {
	current, err := s.currentDay(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.store.Content().CountStudyDays(ctx)
	if err != nil {
		return nil, err
	}

	state := &StudyPlanState{CurrentDay: current, TotalDays: total}
	raw, ok, err := s.store.Settings().Get(ctx, keyStartDate)
	if err != nil {
		return nil, err
	}
	if ok {
		start, err := parseDate(raw)
		if err != nil {
			return nil, err
		}
		state.StartDate = &start
	}
	return state, nil
}

func (s *Service) currentDay(ctx context.Context) (int, error) {
	raw, ok, err := s.store.Settings().Get(ctx, keyCurrentDay)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 1, nil
	}
	day, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", keyCurrentDay, raw, err)
	}
	return day, nil
}

func (s *Service) setCurrentDay(ctx context.Context, day int) error {
	return s.store.Settings().Set(ctx, keyCurrentDay, strconv.Itoa(day))
}

// requirePlanDay returns a NotFoundError when day is not part of the plan.
func (s *Service) requirePlanDay(ctx context.Context, day int) error {
	sd, err := s.store.Content().StudyDay(ctx, day)
	if err != nil {
		return err
	}
	if sd == nil {
		return apperr.NotFound("study day", day)
	}
	return nil
}

// Start begins day and returns its progress. Starting a day that already has
// progress returns it unchanged. The first session ever also records the
// study start date.
func (s *Service) Start(ctx context.Context, day int) (*ent.SessionProgress, error) {
	if err := s.requirePlanDay(ctx, day); err != nil {
		return nil, err
	}

	today := store.CalendarDay(s.Now())
	var progress *ent.SessionProgress
	created := false
	err := s.store.InTx(ctx, func(ctx context.Context) error {
		existing, err := s.store.Progress().Progress(ctx, day)
		if err != nil {
			return err
		}
		if existing != nil {
			progress = existing
			return nil
		}

		current, err := s.currentDay(ctx)
		if err != nil {
			return err
		}
		if day > current {
			return apperr.Conflict("start", "day %d is ahead of current day %d", day, current)
		}

		if _, ok, err := s.store.Settings().Get(ctx, keyStartDate); err != nil {
			return err
		} else if !ok {
			if err := s.store.Settings().Set(ctx, keyStartDate, today.Format(dateLayout)); err != nil {
				return err
			}
		}

		progress, err = s.store.Progress().CreateProgress(ctx, day, today)
		if err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if created {
		s.log.Info("session day started", "day", day)
	}
	return progress, nil
}

// CompleteComponent marks one component of day as done. When that leaves
// all three done and the day was not already completed, the day is stamped
// complete and, if it is the current day, the current day moves to day+1.
// It reports whether this call completed the day.
func (s *Service) CompleteComponent(ctx context.Context, day int, c Component) (bool, error) {
	flag, err := c.flag()
	if err != nil {
		return false, err
	}
	if err := s.requirePlanDay(ctx, day); err != nil {
		return false, err
	}

	completed := false
	advanced := false
	err = s.store.InTx(ctx, func(ctx context.Context) error {
		progress := s.store.Progress()
		if err := progress.MarkDone(ctx, day, flag); err != nil {
			return err
		}
		sp, err := progress.Progress(ctx, day)
		if err != nil {
			return err
		}
		if !(sp.ReadingDone && sp.FlashcardsDone && sp.QuizDone) || sp.CompletedAt != nil {
			return nil
		}

		current, err := s.currentDay(ctx)
		if err != nil {
			return err
		}
		if day > current {
			return apperr.Conflict("complete day", "day %d is ahead of current day %d", day, current)
		}
		if err := progress.StampCompleted(ctx, day, s.Now()); err != nil {
			return err
		}
		completed = true

		// Re-completing an earlier restarted day leaves the pointer alone.
		if day == current {
			if err := s.setCurrentDay(ctx, day+1); err != nil {
				return err
			}
			advanced = true
		}
		return nil
	})
	if apperr.IsConflict(err) {
		s.log.Warn("out of order completion rejected", "day", day, "component", string(c))
	}
	if err != nil {
		return false, err
	}

	s.log.Debug("component completed", "day", day, "component", string(c))
	if completed {
		s.log.Info("session day completed", "day", day, "advanced", advanced)
	}
	return completed, nil
}

// RecordSessionItem adds an item to the resumability ledger of day.
// Recording the same item twice is a no-op.
func (s *Service) RecordSessionItem(ctx context.Context, day int, kind ItemKind, itemID int) error {
	comp, err := kind.component()
	if err != nil {
		return err
	}
	_, err = s.store.Progress().AddItem(ctx, day, comp, itemID)
	return err
}

// CompletedItems returns the ids already recorded for (day, kind).
func (s *Service) CompletedItems(ctx context.Context, day int, kind ItemKind) (map[int]bool, error) {
	comp, err := kind.component()
	if err != nil {
		return nil, err
	}
	ids, err := s.store.Progress().Items(ctx, day, comp)
	if err != nil {
		return nil, err
	}
	done := make(map[int]bool, len(ids))
	for _, id := range ids {
		done[id] = true
	}
	return done, nil
}

// Restart clears the component flags, completion time and ledger of day.
// The current day, other days, card schedules and history are untouched.
func (s *Service) Restart(ctx context.Context, day int) error {
	err := s.store.InTx(ctx, func(ctx context.Context) error {
		if err := s.store.Progress().ClearProgress(ctx, day); err != nil {
			return err
		}
		_, err := s.store.Progress().DeleteItems(ctx, day)
		return err
	})
	if err != nil {
		return fmt.Errorf("restart day %d: %w", day, err)
	}
	s.log.Info("session day restarted", "day", day)
	return nil
}

// ResetAll wipes all progress, the ledger, review and answer history, and
// every card schedule, then puts the learner back on day 1.
func (s *Service) ResetAll(ctx context.Context) error {
	var cards int
	err := s.store.InTx(ctx, func(ctx context.Context) error {
		if err := s.store.Progress().DeleteAll(ctx); err != nil {
			return err
		}
		if err := s.store.Events().DeleteAll(ctx); err != nil {
			return err
		}
		n, err := s.store.Content().ResetSchedules(ctx)
		if err != nil {
			return err
		}
		cards = n
		if err := s.setCurrentDay(ctx, 1); err != nil {
			return err
		}
		return s.store.Settings().Delete(ctx, keyStartDate)
	})
	if err != nil {
		return fmt.Errorf("reset all progress: %w", err)
	}
	s.log.Info("study progress reset", "cards", cards)
	return nil
}

// CalendarDaysElapsed returns the number of calendar days since the first
// session, counting the start day itself, or 0 before any session.
func (s *Service) CalendarDaysElapsed(ctx context.Context) (int, error) {
	state, err := s.State(ctx)
	if err != nil {
		return 0, err
	}
	if state.StartDate == nil {
		return 0, nil
	}
	today := store.CalendarDay(s.Now())
	days := int(today.Sub(*state.StartDate).Hours()/24) + 1
	return days, nil
}

// IsIncomplete reports whether the current day was started and left with
// some but not all components done.
func (s *Service) IsIncomplete(ctx context.Context) (bool, error) {
	current, err := s.currentDay(ctx)
	if err != nil {
		return false, err
	}
	sp, err := s.store.Progress().Progress(ctx, current)
	if err != nil || sp == nil {
		return false, err
	}
	done := 0
	for _, f := range []bool{sp.ReadingDone, sp.FlashcardsDone, sp.QuizDone} {
		if f {
			done++
		}
	}
	return done > 0 && done < len(Components), nil
}

// Progress returns the progress row of day, or nil if it was never started.
func (s *Service) Progress(ctx context.Context, day int) (*ent.SessionProgress, error) {
	return s.store.Progress().Progress(ctx, day)
}
