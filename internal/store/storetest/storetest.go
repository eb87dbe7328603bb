// Package storetest provides helpers for tests that need a real store.
package storetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abhisek/examprep/internal/store"
)

// Open returns a store backed by a fresh SQLite file in t's temp dir.
func Open(t testing.TB) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "examprep.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// Builder creates content rows, failing the test on any error.
type Builder struct {
	t testing.TB
	s *store.Store
}

// NewBuilder returns a builder writing to s.
func NewBuilder(t testing.TB, s *store.Store) *Builder {
	return &Builder{t: t, s: s}
}

// Domain creates a domain with the given name and section number.
func (b *Builder) Domain(name string, section int) int {
	b.t.Helper()
	d, err := b.s.Content().CreateDomain(context.Background(), store.DomainInput{
		Name:          name,
		SectionNumber: section,
	})
	if err != nil {
		b.t.Fatalf("create domain: %v", err)
	}
	return d.ID
}

// Subtopic creates a subtopic under domainID.
func (b *Builder) Subtopic(domainID int, name string) int {
	b.t.Helper()
	st, err := b.s.Content().CreateSubtopic(context.Background(), store.SubtopicInput{
		DomainID: domainID,
		Name:     name,
	})
	if err != nil {
		b.t.Fatalf("create subtopic: %v", err)
	}
	return st.ID
}

// Flashcard creates a never-reviewed card in domainID.
func (b *Builder) Flashcard(domainID int, subtopicID *int) int {
	b.t.Helper()
	fc, err := b.s.Content().CreateFlashcard(context.Background(), store.FlashcardInput{
		DomainID:   domainID,
		SubtopicID: subtopicID,
		Front:      "front",
		Back:       "back",
	})
	if err != nil {
		b.t.Fatalf("create flashcard: %v", err)
	}
	return fc.ID
}

// Question creates a question in domainID whose correct answer is correct.
func (b *Builder) Question(domainID int, subtopicID *int, correct string) int {
	b.t.Helper()
	q, err := b.s.Content().CreateQuestion(context.Background(), store.QuestionInput{
		DomainID:      domainID,
		SubtopicID:    subtopicID,
		Stem:          "stem",
		Choices:       [4]string{"A", "B", "C", "D"},
		CorrectAnswer: correct,
	})
	if err != nil {
		b.t.Fatalf("create question: %v", err)
	}
	return q.ID
}

// StudyDay adds day n to the plan. A nil domainID makes a mixed day.
func (b *Builder) StudyDay(n int, domainID *int) {
	b.t.Helper()
	_, err := b.s.Content().CreateStudyDay(context.Background(), store.StudyDayInput{
		DayNumber:      n,
		DomainID:       domainID,
		ReadingContent: "read this",
	})
	if err != nil {
		b.t.Fatalf("create study day %d: %v", n, err)
	}
}

// Answer appends a quiz answer event for questionID.
func (b *Builder) Answer(questionID int, correct bool) {
	b.t.Helper()
	answer := "a"
	if !correct {
		answer = "b"
	}
	err := b.s.Events().AppendAnswer(context.Background(), store.AnswerEventData{
		QuestionID: questionID,
		UserAnswer: answer,
		Correct:    correct,
	})
	if err != nil {
		b.t.Fatalf("append answer: %v", err)
	}
}

// Review appends a review event for cardID without rescheduling it.
func (b *Builder) Review(cardID, rating int) {
	b.t.Helper()
	err := b.s.Events().AppendReview(context.Background(), store.ReviewEventData{
		FlashcardID: cardID,
		Rating:      rating,
	})
	if err != nil {
		b.t.Fatalf("append review: %v", err)
	}
}
