// Package quiz selects practice questions and records answers.
package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/examprep/ent"
	"github.com/abhisek/examprep/internal/apperr"
	"github.com/abhisek/examprep/internal/logger"
	"github.com/abhisek/examprep/internal/store"
)

// Letters are the valid answer letters, in choice order.
var Letters = []string{"a", "b", "c", "d"}

// Filter narrows question selection. Nil fields match all questions.
type Filter struct {
	DomainID   *int
	SubtopicID *int

	// Exclude holds question ids never to return.
	Exclude map[int]bool
}

// Choice is one labelled answer option.
type Choice struct {
	Letter string
	Text   string
}

// Choices returns the four options of q in letter order.
func Choices(q *ent.QuizQuestion) []Choice {
	return []Choice{
		{Letter: "a", Text: q.ChoiceA},
		{Letter: "b", Text: q.ChoiceB},
		{Letter: "c", Text: q.ChoiceC},
		{Letter: "d", Text: q.ChoiceD},
	}
}

// NormalizeAnswer lower-cases and trims a typed answer and checks it is one
// of the four letters.
func NormalizeAnswer(answer string) (string, error) {
	a := strings.ToLower(strings.TrimSpace(answer))
	for _, l := range Letters {
		if a == l {
			return a, nil
		}
	}
	return "", apperr.Invalid("answer", answer, "must be one of a, b, c or d")
}

// Service serves quiz questions and logs answers.
type Service struct {
	store *store.Store
	log   *logger.Logger

	// shuffle reorders n items via swap.
	shuffle func(n int, swap func(i, j int))
}

// NewService creates a quiz service backed by st.
func NewService(st *store.Store, log *logger.Logger) *Service {
	return &Service{store: st, log: logger.OrNop(log), shuffle: rand.Shuffle}
}

// Questions returns up to count questions matching filter in random order.
func (s *Service) Questions(ctx context.Context, filter Filter, count int) ([]*ent.QuizQuestion, error) {
	if count <= 0 {
		return []*ent.QuizQuestion{}, nil
	}
	qs, err := s.store.Content().Questions(ctx, store.QuestionFilter{
		DomainID:   filter.DomainID,
		SubtopicID: filter.SubtopicID,
	})
	if err != nil {
		return nil, fmt.Errorf("select questions: %w", err)
	}
	if len(filter.Exclude) > 0 {
		kept := qs[:0]
		for _, q := range qs {
			if !filter.Exclude[q.ID] {
				kept = append(kept, q)
			}
		}
		qs = kept
	}
	s.shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
	if len(qs) > count {
		qs = qs[:count]
	}
	return qs, nil
}

// RecordAnswer checks answer against the question and appends an answer
// event. It reports whether the answer was correct. batchID tags the quiz
// run and may be empty.
func (s *Service) RecordAnswer(ctx context.Context, questionID int, answer, batchID string) (bool, error) {
	letter, err := NormalizeAnswer(answer)
	if err != nil {
		return false, err
	}

	var correct bool
	err = s.store.InTx(ctx, func(ctx context.Context) error {
		q, err := s.store.Content().Question(ctx, questionID)
		if err != nil {
			return err
		}
		correct = letter == strings.ToLower(strings.TrimSpace(q.CorrectAnswer))
		return s.store.Events().AppendAnswer(ctx, store.AnswerEventData{
			QuestionID: questionID,
			UserAnswer: letter,
			Correct:    correct,
			BatchID:    batchID,
		})
	})
	if err != nil {
		return false, err
	}

	s.log.Debug("answer recorded", "question", questionID, "correct", correct)
	return correct, nil
}
