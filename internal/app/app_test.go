package app

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examprep/internal/config"
	"github.com/abhisek/examprep/internal/store/storetest"
	"github.com/abhisek/examprep/internal/ui/console"
)

func newTestApp(t *testing.T) (*App, *storetest.Builder) {
	t.Helper()
	st := storetest.Open(t)
	a := New(st, config.DefaultConfig(), nil)
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	a.SetClock(func() time.Time { return now })
	return a, storetest.NewBuilder(t, st)
}

func TestStudy_CompletesDayThroughConsole(t *testing.T) {
	ctx := context.Background()
	a, b := newTestApp(t)
	d := b.Domain("Compute", 1)
	b.Flashcard(d, nil)
	b.Flashcard(d, nil)
	b.Question(d, nil, "a")
	b.StudyDay(1, &d)
	b.StudyDay(2, &d)

	seeded, err := a.Seeded(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	var out bytes.Buffer
	input := "\n" + "\n5\n" + "\n4\n" + "a\n"
	res, err := a.Study(ctx, console.New(strings.NewReader(input), &out))
	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.Equal(t, 2, res.Flashcards.Committed)
	assert.Equal(t, 1, res.Quiz.Passed)

	dash, err := a.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, dash.State.CurrentDay)
	assert.Equal(t, 1, dash.CalendarDays)
	assert.Equal(t, 100.0, dash.Breakdown.QuizAccuracy)
	assert.Equal(t, 50.0, dash.Breakdown.StudyCompletion)
	assert.Equal(t, 1, dash.Stats.SessionsCompleted)
	assert.Nil(t, dash.Recommendation)
}

func TestDashboard_Empty(t *testing.T) {
	a, _ := newTestApp(t)
	dash, err := a.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, dash.State.TotalDays)
	assert.Equal(t, 0.0, dash.Score)
	assert.Empty(t, dash.Domains)
}

func TestReviewWeakest(t *testing.T) {
	ctx := context.Background()
	a, b := newTestApp(t)
	weak := b.Domain("Networking", 2)
	strong := b.Domain("Compute", 1)
	b.Flashcard(strong, nil)
	card := b.Flashcard(weak, nil)
	wq := b.Question(weak, nil, "a")
	sq := b.Question(strong, nil, "a")
	b.Answer(wq, true)
	b.Answer(wq, false)
	b.Answer(wq, false)
	b.Answer(sq, true)

	w, err := a.WeakAreas(ctx)
	require.NoError(t, err)
	require.Len(t, w.Domains, 1)
	assert.Equal(t, "Networking", w.Weakest().Name)

	var out bytes.Buffer
	input := "\n2\n" + "b\n"
	res, err := a.ReviewWeakest(ctx, w, console.New(strings.NewReader(input), &out))
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 1, res.Flashcards.Committed)
	require.NotNil(t, res.Quiz)
	assert.Equal(t, 1, res.Quiz.Committed)
	assert.Equal(t, 0, res.Quiz.Passed)

	fc, err := a.Store.Content().Flashcard(ctx, card)
	require.NoError(t, err)
	assert.Equal(t, 0, fc.Repetitions)
	assert.Equal(t, 1, fc.Interval)
}

func TestReviewWeakest_QuitSkipsQuiz(t *testing.T) {
	ctx := context.Background()
	a, b := newTestApp(t)
	d := b.Domain("Networking", 2)
	b.Flashcard(d, nil)
	q := b.Question(d, nil, "a")
	b.Answer(q, false)

	w, err := a.WeakAreas(ctx)
	require.NoError(t, err)

	var out bytes.Buffer
	res, err := a.ReviewWeakest(ctx, w, console.New(strings.NewReader("q\n"), &out))
	require.NoError(t, err)
	assert.True(t, res.Flashcards.Abandoned)
	assert.Nil(t, res.Quiz)
}

func TestReviewWeakest_NothingWeak(t *testing.T) {
	a, _ := newTestApp(t)
	w, err := a.WeakAreas(context.Background())
	require.NoError(t, err)
	res, err := a.ReviewWeakest(context.Background(), w, nil)
	require.NoError(t, err)
	assert.Nil(t, res)
}
