package session

import (
	"fmt"
	"time"

	"github.com/abhisek/examprep/ent/sessionitem"
	"github.com/abhisek/examprep/internal/apperr"
	"github.com/abhisek/examprep/internal/store"
)

// Settings keys owned by the session package.
const (
	keyCurrentDay = "current_session_day"
	keyStartDate  = "start_date"
)

const dateLayout = "2006-01-02"

// Component is one of the three parts of a study day.
type Component string

const (
	Reading    Component = "reading"
	Flashcards Component = "flashcards"
	Quiz       Component = "quiz"
)

// Components lists every component in study order.
var Components = []Component{Reading, Flashcards, Quiz}

// ParseComponent validates a component name.
func ParseComponent(name string) (Component, error) {
	switch c := Component(name); c {
	case Reading, Flashcards, Quiz:
		return c, nil
	}
	return "", apperr.Invalid("component", name, "must be reading, flashcards or quiz")
}

func (c Component) flag() (store.ProgressFlag, error) {
	switch c {
	case Reading:
		return store.FlagReading, nil
	case Flashcards:
		return store.FlagFlashcards, nil
	case Quiz:
		return store.FlagQuiz, nil
	}
	return "", apperr.Invalid("component", string(c), "must be reading, flashcards or quiz")
}

// ItemKind names the kind of item tracked in the resumability ledger.
type ItemKind string

const (
	FlashcardItem ItemKind = "flashcard"
	QuizItem      ItemKind = "quiz"
)

func (k ItemKind) component() (sessionitem.Component, error) {
	switch k {
	case FlashcardItem:
		return sessionitem.ComponentFlashcard, nil
	case QuizItem:
		return sessionitem.ComponentQuiz, nil
	}
	return "", apperr.Invalid("item kind", string(k), "must be flashcard or quiz")
}

// StudyPlanState is the learner's position in the study plan.
type StudyPlanState struct {
	// CurrentDay is the next day to study. It only moves forward, one day
	// at a time, when a day is completed.
	CurrentDay int

	// TotalDays is the number of days in the plan.
	TotalDays int

	// StartDate is the calendar day of the first session, nil before it.
	StartDate *time.Time
}

// Finished reports whether every plan day has been completed.
func (s *StudyPlanState) Finished() bool {
	return s.TotalDays > 0 && s.CurrentDay > s.TotalDays
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", raw, err)
	}
	return t, nil
}
