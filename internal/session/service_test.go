package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examprep/internal/apperr"
	"github.com/abhisek/examprep/internal/logger"
	"github.com/abhisek/examprep/internal/spacedrep"
	"github.com/abhisek/examprep/internal/store"
	"github.com/abhisek/examprep/internal/store/storetest"
)

type fixture struct {
	st     *store.Store
	b      *storetest.Builder
	svc    *Service
	domain int
	now    time.Time
}

func newFixture(t *testing.T, days int) *fixture {
	t.Helper()
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	d := b.Domain("Compute", 1)
	for i := 1; i <= days; i++ {
		b.StudyDay(i, &d)
	}
	f := &fixture{
		st:     st,
		b:      b,
		svc:    NewService(st, logger.Nop()),
		domain: d,
		now:    time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
	}
	f.svc.Now = func() time.Time { return f.now }
	return f
}

func (f *fixture) completeAll(t *testing.T, day int) bool {
	t.Helper()
	var completed bool
	for _, c := range Components {
		var err error
		completed, err = f.svc.CompleteComponent(context.Background(), day, c)
		require.NoError(t, err)
	}
	return completed
}

func TestInitialState(t *testing.T) {
	f := newFixture(t, 3)
	state, err := f.svc.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentDay)
	assert.Equal(t, 3, state.TotalDays)
	assert.Nil(t, state.StartDate)
	assert.False(t, state.Finished())
}

func TestStartIsIdempotent(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	first, err := f.svc.Start(ctx, 1)
	require.NoError(t, err)
	assert.False(t, first.ReadingDone)
	assert.True(t, first.CalendarDate.Equal(store.CalendarDay(f.now)))

	_, err = f.svc.CompleteComponent(ctx, 1, Reading)
	require.NoError(t, err)

	f.now = f.now.AddDate(0, 0, 2)
	again, err := f.svc.Start(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.True(t, again.ReadingDone, "existing progress must be returned unchanged")
	assert.True(t, again.CalendarDate.Equal(first.CalendarDate))

	state, err := f.svc.State(ctx)
	require.NoError(t, err)
	require.NotNil(t, state.StartDate)
	assert.Equal(t, "2026-03-10", state.StartDate.Format(dateLayout))
}

func TestCompleteAdvancesExactlyOnce(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()
	_, err := f.svc.Start(ctx, 1)
	require.NoError(t, err)

	done, err := f.svc.CompleteComponent(ctx, 1, Reading)
	require.NoError(t, err)
	assert.False(t, done)
	done, err = f.svc.CompleteComponent(ctx, 1, Flashcards)
	require.NoError(t, err)
	assert.False(t, done)

	state, _ := f.svc.State(ctx)
	assert.Equal(t, 1, state.CurrentDay, "day must not advance before all components")

	done, err = f.svc.CompleteComponent(ctx, 1, Quiz)
	require.NoError(t, err)
	assert.True(t, done)

	sp, err := f.svc.Progress(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, sp.CompletedAt)
	stamped := *sp.CompletedAt

	// Repeating every component is a no-op.
	f.now = f.now.Add(time.Hour)
	assert.False(t, f.completeAll(t, 1))

	state, _ = f.svc.State(ctx)
	assert.Equal(t, 2, state.CurrentDay)
	sp, _ = f.svc.Progress(ctx, 1)
	assert.True(t, sp.CompletedAt.Equal(stamped), "completed_at must be set once")
}

func TestCompleteComponentValidation(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	_, err := f.svc.CompleteComponent(ctx, 1, Component("lecture"))
	assert.True(t, apperr.IsValidation(err), "err = %v", err)

	_, err = f.svc.CompleteComponent(ctx, 1, Reading)
	assert.True(t, apperr.IsNotFound(err), "no progress row: err = %v", err)

	_, err = f.svc.CompleteComponent(ctx, 9, Reading)
	assert.True(t, apperr.IsNotFound(err), "day outside plan: err = %v", err)
}

func TestParseComponent(t *testing.T) {
	c, err := ParseComponent("quiz")
	require.NoError(t, err)
	assert.Equal(t, Quiz, c)

	_, err = ParseComponent("Quiz ")
	assert.True(t, apperr.IsValidation(err))
}

func TestStartRejectsOutOfOrderDay(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 2)
	assert.True(t, apperr.IsConflict(err), "err = %v", err)

	sp, err := f.svc.Progress(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, sp)

	state, _ := f.svc.State(ctx)
	assert.Nil(t, state.StartDate, "rejected start must not stamp the start date")

	_, err = f.svc.Start(ctx, 4)
	assert.True(t, apperr.IsNotFound(err), "err = %v", err)
}

func TestCompleteComponentRejectsDayAheadOfCurrent(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()

	_, err := f.st.Progress().CreateProgress(ctx, 2, store.CalendarDay(f.now))
	require.NoError(t, err)

	_, err = f.svc.CompleteComponent(ctx, 2, Reading)
	require.NoError(t, err)
	_, err = f.svc.CompleteComponent(ctx, 2, Flashcards)
	require.NoError(t, err)

	completed, err := f.svc.CompleteComponent(ctx, 2, Quiz)
	assert.True(t, apperr.IsConflict(err), "err = %v", err)
	assert.False(t, completed)

	sp, err := f.svc.Progress(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, sp)
	assert.True(t, sp.ReadingDone)
	assert.True(t, sp.FlashcardsDone)
	assert.False(t, sp.QuizDone, "the rejected flag must be rolled back")
	assert.Nil(t, sp.CompletedAt)

	state, err := f.svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentDay)
}

func TestRecordSessionItemIsIdempotent(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	require.NoError(t, f.svc.RecordSessionItem(ctx, 1, FlashcardItem, 7))
	require.NoError(t, f.svc.RecordSessionItem(ctx, 1, FlashcardItem, 7))

	items, err := f.svc.CompletedItems(ctx, 1, FlashcardItem)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{7: true}, items)

	items, err = f.svc.CompletedItems(ctx, 1, QuizItem)
	require.NoError(t, err)
	assert.Empty(t, items)

	err = f.svc.RecordSessionItem(ctx, 1, ItemKind("reading"), 7)
	assert.True(t, apperr.IsValidation(err))
}

func TestRestartClearsOnlyThatDay(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, 1)
	require.NoError(t, err)
	f.completeAll(t, 1)
	_, err = f.svc.Start(ctx, 2)
	require.NoError(t, err)
	_, err = f.svc.CompleteComponent(ctx, 2, Reading)
	require.NoError(t, err)
	require.NoError(t, f.svc.RecordSessionItem(ctx, 1, QuizItem, 3))
	require.NoError(t, f.svc.RecordSessionItem(ctx, 2, QuizItem, 4))

	require.NoError(t, f.svc.Restart(ctx, 1))

	sp1, _ := f.svc.Progress(ctx, 1)
	assert.False(t, sp1.ReadingDone || sp1.FlashcardsDone || sp1.QuizDone)
	assert.Nil(t, sp1.CompletedAt)
	items, _ := f.svc.CompletedItems(ctx, 1, QuizItem)
	assert.Empty(t, items)

	sp2, _ := f.svc.Progress(ctx, 2)
	assert.True(t, sp2.ReadingDone)
	items, _ = f.svc.CompletedItems(ctx, 2, QuizItem)
	assert.Len(t, items, 1)

	state, _ := f.svc.State(ctx)
	assert.Equal(t, 2, state.CurrentDay)

	// Completing the restarted day again does not move the pointer.
	assert.True(t, f.completeAll(t, 1))
	state, _ = f.svc.State(ctx)
	assert.Equal(t, 2, state.CurrentDay)
}

func TestResetAll(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	card := f.b.Flashcard(f.domain, nil)
	q := f.b.Question(f.domain, nil, "a")

	_, err := f.svc.Start(ctx, 1)
	require.NoError(t, err)
	reviewer := spacedrep.NewReviewer(f.st, nil)
	_, err = reviewer.Review(ctx, card, 5, "")
	require.NoError(t, err)
	f.b.Answer(q, true)
	require.NoError(t, f.svc.RecordSessionItem(ctx, 1, FlashcardItem, card))
	f.completeAll(t, 1)

	require.NoError(t, f.svc.ResetAll(ctx))

	state, err := f.svc.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentDay)
	assert.Nil(t, state.StartDate)

	fc, err := f.st.Content().Flashcard(ctx, card)
	require.NoError(t, err)
	assert.Equal(t, 2.5, fc.EaseFactor)
	assert.Zero(t, fc.Interval)
	assert.Zero(t, fc.Repetitions)
	assert.Nil(t, fc.NextReview)

	n, _ := f.st.Client().SessionProgress.Query().Count(ctx)
	assert.Zero(t, n)
	n, _ = f.st.Client().SessionItem.Query().Count(ctx)
	assert.Zero(t, n)
	n, _ = f.st.Client().ReviewEvent.Query().Count(ctx)
	assert.Zero(t, n)
	n, _ = f.st.Client().AnswerEvent.Query().Count(ctx)
	assert.Zero(t, n)
}

func TestCalendarDaysElapsed(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	n, err := f.svc.CalendarDaysElapsed(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = f.svc.Start(ctx, 1)
	require.NoError(t, err)
	n, _ = f.svc.CalendarDaysElapsed(ctx)
	assert.Equal(t, 1, n)

	f.now = f.now.AddDate(0, 0, 4)
	n, _ = f.svc.CalendarDaysElapsed(ctx)
	assert.Equal(t, 5, n)
}

func TestIsIncomplete(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	incomplete, err := f.svc.IsIncomplete(ctx)
	require.NoError(t, err)
	assert.False(t, incomplete, "not started")

	_, err = f.svc.Start(ctx, 1)
	require.NoError(t, err)
	incomplete, _ = f.svc.IsIncomplete(ctx)
	assert.False(t, incomplete, "started, nothing done")

	_, err = f.svc.CompleteComponent(ctx, 1, Flashcards)
	require.NoError(t, err)
	incomplete, _ = f.svc.IsIncomplete(ctx)
	assert.True(t, incomplete)

	f.completeAll(t, 1)
	incomplete, _ = f.svc.IsIncomplete(ctx)
	assert.False(t, incomplete, "day 2 has no progress yet")
}

func TestPlanListing(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	f.b.StudyDay(3, nil)

	_, err := f.svc.Start(ctx, 1)
	require.NoError(t, err)
	f.completeAll(t, 1)

	entries, err := f.svc.Plan(ctx)
	require.NoError(t, err)
	assert.Equal(t, []PlanEntry{
		{Day: 1, DomainName: "Compute", Done: true},
		{Day: 2, DomainName: "Compute", Current: true},
		{Day: 3, DomainName: MixedDomainName},
	}, entries)

	today, err := f.svc.TodaysPlan(ctx)
	require.NoError(t, err)
	require.NotNil(t, today)
	assert.Equal(t, 2, today.DayNumber)
	assert.Equal(t, "Compute", DomainName(today))
}

func TestTodaysPlanAfterLastDay(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	_, err := f.svc.Start(ctx, 1)
	require.NoError(t, err)
	f.completeAll(t, 1)

	today, err := f.svc.TodaysPlan(ctx)
	require.NoError(t, err)
	assert.Nil(t, today)

	state, _ := f.svc.State(ctx)
	assert.True(t, state.Finished())
}
