package activity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/examprep/ent"
	"github.com/abhisek/examprep/internal/logger"
	"github.com/abhisek/examprep/internal/quiz"
	"github.com/abhisek/examprep/internal/readiness"
	"github.com/abhisek/examprep/internal/session"
	"github.com/abhisek/examprep/internal/spacedrep"
	"github.com/abhisek/examprep/internal/store"
	"github.com/abhisek/examprep/internal/store/storetest"
)

// scripted answers prompts from fixed scripts and remembers what it saw.
type scripted struct {
	ratings  []int    // -1 means SkipToEnd
	answers  []string // "" means SkipToEnd
	skipRead bool

	cards     []int
	questions []int
	feedback  []bool
	reads     int
	begun     []session.Component
}

func (s *scripted) Rate(_ context.Context, _ Position, card *ent.Flashcard) (int, Outcome, error) {
	s.cards = append(s.cards, card.ID)
	r := s.ratings[0]
	s.ratings = s.ratings[1:]
	if r < 0 {
		return 0, SkipToEnd, nil
	}
	return r, Continue, nil
}

func (s *scripted) Answer(_ context.Context, _ Position, q *ent.QuizQuestion) (string, Outcome, error) {
	s.questions = append(s.questions, q.ID)
	a := s.answers[0]
	s.answers = s.answers[1:]
	if a == "" {
		return "", SkipToEnd, nil
	}
	return a, Continue, nil
}

func (s *scripted) Feedback(_ context.Context, _ *ent.QuizQuestion, correct bool) error {
	s.feedback = append(s.feedback, correct)
	return nil
}

func (s *scripted) Read(context.Context, *ent.StudyDay) (Outcome, error) {
	s.reads++
	if s.skipRead {
		return SkipToEnd, nil
	}
	return Continue, nil
}

func (s *scripted) Begin(_ context.Context, c session.Component, _ int) error {
	s.begun = append(s.begun, c)
	return nil
}

type harness struct {
	st       *store.Store
	b        *storetest.Builder
	runner   *Runner
	session  *session.Service
	selector *spacedrep.Selector
	now      time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	st := storetest.Open(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	reviewer := spacedrep.NewReviewer(st, logger.Nop())
	reviewer.Now = clock
	sess := session.NewService(st, logger.Nop())
	sess.Now = clock

	return &harness{
		st:       st,
		b:        storetest.NewBuilder(t, st),
		runner:   NewRunner(st, reviewer, quiz.NewService(st, nil), sess, logger.Nop()),
		session:  sess,
		selector: spacedrep.NewSelector(st.Content()),
		now:      now,
	}
}

func (h *harness) cards(t *testing.T, ids ...int) []*ent.Flashcard {
	t.Helper()
	out := make([]*ent.Flashcard, 0, len(ids))
	for _, id := range ids {
		fc, err := h.st.Content().Flashcard(context.Background(), id)
		require.NoError(t, err)
		out = append(out, fc)
	}
	return out
}

func (h *harness) questions(t *testing.T, ids ...int) []*ent.QuizQuestion {
	t.Helper()
	out := make([]*ent.QuizQuestion, 0, len(ids))
	for _, id := range ids {
		q, err := h.st.Content().Question(context.Background(), id)
		require.NoError(t, err)
		out = append(out, q)
	}
	return out
}

func TestInterruptedFlashcardBatchResumes(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	d := h.b.Domain("Compute", 1)
	h.b.StudyDay(1, &d)
	c1, c2, c3 := h.b.Flashcard(d, nil), h.b.Flashcard(d, nil), h.b.Flashcard(d, nil)

	_, err := h.session.Start(ctx, 1)
	require.NoError(t, err)
	batch := h.cards(t, c1, c2, c3)

	p := &scripted{ratings: []int{4, -1}}
	res, err := h.runner.RunFlashcards(ctx, NewBatch(1), batch, p)
	require.NoError(t, err)
	assert.True(t, res.Abandoned)
	assert.Equal(t, 1, res.Committed)
	assert.Equal(t, 2, res.Presented)

	done, err := h.session.CompletedItems(ctx, 1, session.FlashcardItem)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{c1: true}, done)

	// The skipped card was not rescheduled.
	fc, err := h.st.Content().Flashcard(ctx, c2)
	require.NoError(t, err)
	assert.Nil(t, fc.NextReview)

	rest, err := h.runner.RemainingCards(ctx, 1, batch)
	require.NoError(t, err)
	p = &scripted{ratings: []int{3, 5}}
	res, err = h.runner.RunFlashcards(ctx, NewBatch(1), rest, p)
	require.NoError(t, err)
	assert.False(t, res.Abandoned)
	assert.Equal(t, []int{c2, c3}, p.cards)

	done, err = h.session.CompletedItems(ctx, 1, session.FlashcardItem)
	require.NoError(t, err)
	assert.Len(t, done, 3)
}

func TestQuizBatchThreeOfFour(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	d := h.b.Domain("Compute", 1)
	ids := []int{
		h.b.Question(d, nil, "a"),
		h.b.Question(d, nil, "b"),
		h.b.Question(d, nil, "c"),
		h.b.Question(d, nil, "d"),
	}

	p := &scripted{answers: []string{"a", "b", "c", "a"}}
	res, err := h.runner.RunQuiz(ctx, NewBatch(0), h.questions(t, ids...), p)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Committed)
	assert.Equal(t, 3, res.Passed)
	assert.Equal(t, []bool{true, true, true, false}, p.feedback)

	br, err := readiness.NewScorer(h.st).Breakdown(ctx)
	require.NoError(t, err)
	assert.Equal(t, 75.0, br.QuizAccuracy)

	// Free drills do not touch the session ledger.
	n, err := h.st.Client().SessionItem.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	stats, err := readiness.NewScorer(h.st).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.QuizzesTaken)
}

func TestQuizSkipDoesNotCommit(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	d := h.b.Domain("Compute", 1)
	q1, q2 := h.b.Question(d, nil, "a"), h.b.Question(d, nil, "a")

	p := &scripted{answers: []string{""}}
	res, err := h.runner.RunQuiz(ctx, NewBatch(0), h.questions(t, q1, q2), p)
	require.NoError(t, err)
	assert.True(t, res.Abandoned)
	assert.Zero(t, res.Committed)
	assert.Empty(t, p.feedback)

	n, err := h.st.Client().AnswerEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRunDayEndToEnd(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	d := h.b.Domain("Compute", 1)
	h.b.StudyDay(1, &d)
	h.b.StudyDay(2, nil)
	card := h.b.Flashcard(d, nil)
	h.b.Question(d, nil, "b")

	p := &scripted{ratings: []int{4}, answers: []string{"b"}}
	res, err := h.runner.RunDay(ctx, h.selector, DaySizes{Flashcards: 12, Questions: 8}, h.now, p)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Day)
	assert.True(t, res.Completed)
	assert.False(t, res.Abandoned)
	assert.Equal(t, []session.Component{session.Reading, session.Flashcards, session.Quiz}, p.begun)

	fc, err := h.st.Content().Flashcard(ctx, card)
	require.NoError(t, err)
	assert.Equal(t, 1, fc.Interval)
	assert.Equal(t, 1, fc.Repetitions)

	state, err := h.session.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, state.CurrentDay)

	scorer := readiness.NewScorer(h.st)
	score, err := scorer.OverallScore(ctx)
	require.NoError(t, err)
	assert.Greater(t, score, 0.0)

	domains, err := scorer.DomainScores(ctx)
	require.NoError(t, err)
	require.Len(t, domains, 1)
	assert.Equal(t, 100.0, domains[0].Score)
}

func TestRunDayResumesAfterAbandon(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	d := h.b.Domain("Compute", 1)
	h.b.StudyDay(1, &d)
	h.b.Flashcard(d, nil)
	q1, q2 := h.b.Question(d, nil, "a"), h.b.Question(d, nil, "a")
	sizes := DaySizes{Flashcards: 5, Questions: 2}

	p := &scripted{ratings: []int{4}, answers: []string{"a", ""}}
	res, err := h.runner.RunDay(ctx, h.selector, sizes, h.now, p)
	require.NoError(t, err)
	assert.True(t, res.Abandoned)
	assert.False(t, res.Completed)
	require.Len(t, p.questions, 2)
	answered := p.questions[0]

	incomplete, err := h.session.IsIncomplete(ctx)
	require.NoError(t, err)
	assert.True(t, incomplete)

	p2 := &scripted{answers: []string{"a"}}
	res, err = h.runner.RunDay(ctx, h.selector, sizes, h.now, p2)
	require.NoError(t, err)
	assert.True(t, res.Resumed)
	assert.True(t, res.Completed)
	assert.Zero(t, p2.reads, "reading is already done")
	assert.Equal(t, []session.Component{session.Quiz}, p2.begun)
	require.Len(t, p2.questions, 1)
	assert.NotEqual(t, answered, p2.questions[0])
	assert.Contains(t, []int{q1, q2}, p2.questions[0])
}

func TestRunDaySkipReading(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	d := h.b.Domain("Compute", 1)
	h.b.StudyDay(1, &d)

	res, err := h.runner.RunDay(ctx, h.selector, DaySizes{Flashcards: 1, Questions: 1}, h.now, &scripted{skipRead: true})
	require.NoError(t, err)
	assert.True(t, res.Abandoned)

	sp, err := h.session.Progress(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, sp)
	assert.False(t, sp.ReadingDone)
}

func TestRunDayPlanFinished(t *testing.T) {
	h := newHarness(t)
	res, err := h.runner.RunDay(context.Background(), h.selector, DaySizes{}, h.now, &scripted{})
	require.NoError(t, err)
	assert.Zero(t, res.Day)
}

func TestFlashcardCommitFailureIsLogged(t *testing.T) {
	h := newHarness(t)
	core, logs := observer.New(zap.ErrorLevel)
	h.runner.log = &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	d := h.b.Domain("Compute", 1)
	c := h.b.Flashcard(d, nil)

	p := &scripted{ratings: []int{7}}
	res, err := h.runner.RunFlashcards(context.Background(), NewBatch(0), h.cards(t, c), p)
	require.Error(t, err)
	assert.Equal(t, 0, res.Committed)

	entries := logs.FilterMessage("card commit failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(c), entries[0].ContextMap()["card"])
}
