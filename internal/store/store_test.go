package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/examprep/ent/sessionitem"
	"github.com/abhisek/examprep/internal/apperr"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// seedDomain creates a domain with one subtopic, one card and one question.
func seedDomain(t *testing.T, s *Store, section int) (domainID, subtopicID, cardID, questionID int) {
	t.Helper()
	ctx := context.Background()
	c := s.Content()

	d, err := c.CreateDomain(ctx, DomainInput{Name: "Domain", SectionNumber: section, ExamWeight: 0.25})
	if err != nil {
		t.Fatalf("create domain: %v", err)
	}
	st, err := c.CreateSubtopic(ctx, SubtopicInput{DomainID: d.ID, Name: "Sub"})
	if err != nil {
		t.Fatalf("create subtopic: %v", err)
	}
	fc, err := c.CreateFlashcard(ctx, FlashcardInput{DomainID: d.ID, SubtopicID: &st.ID, Front: "Q", Back: "A"})
	if err != nil {
		t.Fatalf("create flashcard: %v", err)
	}
	q, err := c.CreateQuestion(ctx, QuestionInput{
		DomainID:      d.ID,
		SubtopicID:    &st.ID,
		Stem:          "Which?",
		Choices:       [4]string{"one", "two", "three", "four"},
		CorrectAnswer: "b",
	})
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	return d.ID, st.ID, fc.ID, q.ID
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Fatalf("query %s: %v", tt.pragma, err)
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestNewFlashcardHasDefaultSchedule(t *testing.T) {
	s := openTestStore(t)
	_, _, cardID, _ := seedDomain(t, s, 1)

	fc, err := s.Content().Flashcard(context.Background(), cardID)
	if err != nil {
		t.Fatalf("get flashcard: %v", err)
	}
	if fc.EaseFactor != 2.5 || fc.Interval != 0 || fc.Repetitions != 0 || fc.NextReview != nil {
		t.Errorf("schedule = (%v, %d, %d, %v), want (2.5, 0, 0, nil)",
			fc.EaseFactor, fc.Interval, fc.Repetitions, fc.NextReview)
	}
	if fc.Source != "seeded" {
		t.Errorf("source = %q, want seeded", fc.Source)
	}
}

func TestFlashcardNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Content().Flashcard(context.Background(), 999)
	if !apperr.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestDueFlashcards(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	c := s.Content()
	domainID, _, _, _ := seedDomain(t, s, 1)

	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	for _, next := range []*time.Time{&yesterday, &today, &tomorrow} {
		fc, err := c.CreateFlashcard(ctx, FlashcardInput{DomainID: domainID, Front: "f", Back: "b"})
		if err != nil {
			t.Fatalf("create flashcard: %v", err)
		}
		if err := c.UpdateSchedule(ctx, fc.ID, Schedule{EaseFactor: 2.5, Interval: 1, Repetitions: 1, NextReview: next}); err != nil {
			t.Fatalf("update schedule: %v", err)
		}
	}

	due, err := c.DueFlashcards(ctx, today, nil)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	// Seeded card (never reviewed) + yesterday + today.
	if len(due) != 3 {
		t.Errorf("due count = %d, want 3", len(due))
	}

	other := domainID + 100
	due, err = c.DueFlashcards(ctx, today, &other)
	if err != nil {
		t.Fatalf("due other domain: %v", err)
	}
	if len(due) != 0 {
		t.Errorf("due for unknown domain = %d, want 0", len(due))
	}
}

func TestResetSchedules(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, _, cardID, _ := seedDomain(t, s, 1)

	next := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	if err := s.Content().UpdateSchedule(ctx, cardID, Schedule{EaseFactor: 2.7, Interval: 6, Repetitions: 2, NextReview: &next}); err != nil {
		t.Fatalf("update schedule: %v", err)
	}
	n, err := s.Content().ResetSchedules(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if n != 1 {
		t.Errorf("reset count = %d, want 1", n)
	}
	fc, _ := s.Content().Flashcard(ctx, cardID)
	if fc.EaseFactor != 2.5 || fc.Interval != 0 || fc.Repetitions != 0 || fc.NextReview != nil {
		t.Errorf("schedule not reset: %+v", fc)
	}
}

func TestStudyDayMissingReturnsNil(t *testing.T) {
	s := openTestStore(t)
	sd, err := s.Content().StudyDay(context.Background(), 7)
	if err != nil {
		t.Fatalf("study day: %v", err)
	}
	if sd != nil {
		t.Errorf("expected nil study day, got %+v", sd)
	}
}

func TestStudyDaysOrdered(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	domainID, _, _, _ := seedDomain(t, s, 1)

	for _, n := range []int{3, 1, 2} {
		if _, err := s.Content().CreateStudyDay(ctx, StudyDayInput{DayNumber: n, DomainID: &domainID}); err != nil {
			t.Fatalf("create day %d: %v", n, err)
		}
	}
	days, err := s.Content().StudyDays(ctx)
	if err != nil {
		t.Fatalf("study days: %v", err)
	}
	for i, d := range days {
		if d.DayNumber != i+1 {
			t.Errorf("days[%d] = %d, want %d", i, d.DayNumber, i+1)
		}
		if d.Edges.Domain == nil {
			t.Errorf("day %d: domain not loaded", d.DayNumber)
		}
	}
}

func TestAddItemIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := s.Progress()

	added, err := p.AddItem(ctx, 1, sessionitem.ComponentFlashcard, 42)
	if err != nil || !added {
		t.Fatalf("first add = (%v, %v), want (true, nil)", added, err)
	}
	added, err = p.AddItem(ctx, 1, sessionitem.ComponentFlashcard, 42)
	if err != nil || added {
		t.Fatalf("second add = (%v, %v), want (false, nil)", added, err)
	}

	ids, err := p.Items(ctx, 1, sessionitem.ComponentFlashcard)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(ids) != 1 || ids[0] != 42 {
		t.Errorf("items = %v, want [42]", ids)
	}

	quiz, _ := p.Items(ctx, 1, sessionitem.ComponentQuiz)
	if len(quiz) != 0 {
		t.Errorf("quiz items = %v, want none", quiz)
	}
}

func TestProgressLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := s.Progress()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	if _, err := p.CreateProgress(ctx, 1, date); err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, f := range []ProgressFlag{FlagReading, FlagFlashcards, FlagQuiz} {
		if err := p.MarkDone(ctx, 1, f); err != nil {
			t.Fatalf("mark %s: %v", f, err)
		}
	}
	if err := p.StampCompleted(ctx, 1, date.Add(time.Hour)); err != nil {
		t.Fatalf("stamp: %v", err)
	}

	n, _ := p.CountCompleted(ctx)
	if n != 1 {
		t.Errorf("completed = %d, want 1", n)
	}

	if err := p.ClearProgress(ctx, 1); err != nil {
		t.Fatalf("clear: %v", err)
	}
	sp, _ := p.Progress(ctx, 1)
	if sp.ReadingDone || sp.FlashcardsDone || sp.QuizDone || sp.CompletedAt != nil {
		t.Errorf("progress not cleared: %+v", sp)
	}
	if !sp.CalendarDate.Equal(date) {
		t.Errorf("calendar date = %v, want %v", sp.CalendarDate, date)
	}
}

func TestMarkDoneWithoutProgress(t *testing.T) {
	s := openTestStore(t)
	err := s.Progress().MarkDone(context.Background(), 5, FlagReading)
	if !apperr.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestEventSequenceIsMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, _, cardID, questionID := seedDomain(t, s, 1)
	ev := s.Events()

	for i := 0; i < 3; i++ {
		if err := ev.AppendReview(ctx, ReviewEventData{FlashcardID: cardID, Rating: 4}); err != nil {
			t.Fatalf("append review: %v", err)
		}
		if err := ev.AppendAnswer(ctx, AnswerEventData{QuestionID: questionID, UserAnswer: "a"}); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	reviews, _ := s.Client().ReviewEvent.Query().All(ctx)
	answers, _ := s.Client().AnswerEvent.Query().All(ctx)
	seen := map[int64]bool{}
	for _, r := range reviews {
		seen[r.Sequence] = true
	}
	for _, a := range answers {
		seen[a.Sequence] = true
	}
	for want := int64(1); want <= 6; want++ {
		if !seen[want] {
			t.Errorf("sequence %d missing", want)
		}
	}
}

func TestTallies(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	d1, st1, card1, q1 := seedDomain(t, s, 1)
	d2, _, _, q2 := seedDomain(t, s, 2)
	ev := s.Events()

	answers := []AnswerEventData{
		{QuestionID: q1, UserAnswer: "b", Correct: true, BatchID: "run-1"},
		{QuestionID: q1, UserAnswer: "a", Correct: false, BatchID: "run-1"},
		{QuestionID: q1, UserAnswer: "b", Correct: true, BatchID: "run-2"},
		{QuestionID: q2, UserAnswer: "b", Correct: true, BatchID: "run-2"},
	}
	for _, a := range answers {
		if err := ev.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}
	for _, rating := range []int{5, 2} {
		if err := ev.AppendReview(ctx, ReviewEventData{FlashcardID: card1, Rating: rating}); err != nil {
			t.Fatalf("append review: %v", err)
		}
	}

	all, err := ev.QuizTally(ctx, EventScope{})
	if err != nil {
		t.Fatalf("quiz tally: %v", err)
	}
	if all != (Tally{Total: 4, Hits: 3}) {
		t.Errorf("overall tally = %+v, want {4 3}", all)
	}
	if got := all.Percent(); got != 75 {
		t.Errorf("percent = %v, want 75", got)
	}

	dom, _ := ev.QuizTally(ctx, EventScope{DomainID: &d1})
	if dom != (Tally{Total: 3, Hits: 2}) {
		t.Errorf("domain 1 tally = %+v, want {3 2}", dom)
	}
	sub, _ := ev.QuizTally(ctx, EventScope{SubtopicID: &st1})
	if sub != dom {
		t.Errorf("subtopic tally = %+v, want %+v", sub, dom)
	}

	rev, _ := ev.ReviewTally(ctx, EventScope{DomainID: &d1})
	if rev != (Tally{Total: 2, Hits: 1}) {
		t.Errorf("review tally = %+v, want {2 1}", rev)
	}
	none, _ := ev.ReviewTally(ctx, EventScope{DomainID: &d2})
	if none != (Tally{}) {
		t.Errorf("domain 2 review tally = %+v, want zero", none)
	}

	batches, err := ev.QuizBatches(ctx)
	if err != nil {
		t.Fatalf("batches: %v", err)
	}
	if batches != 2 {
		t.Errorf("batches = %d, want 2", batches)
	}
}

func TestInTxRollsBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, _, cardID, _ := seedDomain(t, s, 1)
	boom := errors.New("boom")

	err := s.InTx(ctx, func(ctx context.Context) error {
		if err := s.Events().AppendReview(ctx, ReviewEventData{FlashcardID: cardID, Rating: 4}); err != nil {
			return err
		}
		if _, err := s.Progress().AddItem(ctx, 1, sessionitem.ComponentFlashcard, cardID); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	n, _ := s.Client().ReviewEvent.Query().Count(ctx)
	if n != 0 {
		t.Errorf("review events = %d, want 0 after rollback", n)
	}
	ids, _ := s.Progress().Items(ctx, 1, sessionitem.ComponentFlashcard)
	if len(ids) != 0 {
		t.Errorf("ledger = %v, want empty after rollback", ids)
	}
}

func TestSettingsUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	st := s.Settings()

	if _, ok, _ := st.Get(ctx, "start_date"); ok {
		t.Fatal("expected unset key")
	}
	if err := st.Set(ctx, "start_date", "2026-03-01"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := st.Set(ctx, "start_date", "2026-03-02"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := st.Get(ctx, "start_date")
	if err != nil || !ok || v != "2026-03-02" {
		t.Errorf("get = (%q, %v, %v), want (2026-03-02, true, nil)", v, ok, err)
	}
	if err := st.Delete(ctx, "start_date"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := st.Get(ctx, "start_date"); ok {
		t.Error("expected key to be deleted")
	}
}
