package store

import (
	"context"
	"time"

	"github.com/abhisek/examprep/ent"
	"github.com/abhisek/examprep/ent/sessionitem"
)

// DomainInput describes a domain to create.
type DomainInput struct {
	Name          string
	SectionNumber int
	ExamWeight    float64
	Description   string
}

// SubtopicInput describes a subtopic to create.
type SubtopicInput struct {
	DomainID    int
	Name        string
	Description string
}

// FlashcardInput describes a flashcard to create. New cards always start
// with the default scheduling state.
type FlashcardInput struct {
	DomainID   int
	SubtopicID *int
	Front      string
	Back       string
	Source     string
}

// QuestionInput describes a quiz question to create.
type QuestionInput struct {
	DomainID      int
	SubtopicID    *int
	Stem          string
	Choices       [4]string
	CorrectAnswer string
	Explanation   string
	Source        string
}

// StudyDayInput describes a plan day to create.
type StudyDayInput struct {
	DayNumber      int
	DomainID       *int
	ReadingContent string
}

// Schedule is the SM-2 scheduling state persisted on a flashcard.
type Schedule struct {
	EaseFactor  float64
	Interval    int
	Repetitions int
	NextReview  *time.Time
}

// QuestionFilter narrows quiz question selection. Nil fields match all.
type QuestionFilter struct {
	DomainID   *int
	SubtopicID *int
}

// ProgressFlag names one of the three component flags of a session day.
type ProgressFlag string

const (
	FlagReading    ProgressFlag = "reading_done"
	FlagFlashcards ProgressFlag = "flashcards_done"
	FlagQuiz       ProgressFlag = "quiz_done"
)

// ReviewEventData captures a single flashcard rating.
type ReviewEventData struct {
	FlashcardID int
	Rating      int
	BatchID     string
	Timestamp   time.Time // zero means now
}

// AnswerEventData captures a single quiz answer.
type AnswerEventData struct {
	QuestionID int
	UserAnswer string
	Correct    bool
	BatchID    string
	Timestamp  time.Time // zero means now
}

// Tally counts events and how many of them were hits (correct answers or
// passing ratings).
type Tally struct {
	Total int
	Hits  int
}

// Percent returns Hits/Total as a percentage, or 0 when Total is zero.
func (t Tally) Percent() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Hits) * 100 / float64(t.Total)
}

// EventScope narrows history tallies to a domain or subtopic.
type EventScope struct {
	DomainID   *int
	SubtopicID *int
}

// ContentRepo provides access to the taxonomy, cards, questions and plan.
type ContentRepo interface {
	CreateDomain(ctx context.Context, in DomainInput) (*ent.Domain, error)
	CreateSubtopic(ctx context.Context, in SubtopicInput) (*ent.Subtopic, error)
	CreateFlashcard(ctx context.Context, in FlashcardInput) (*ent.Flashcard, error)
	CreateQuestion(ctx context.Context, in QuestionInput) (*ent.QuizQuestion, error)
	CreateStudyDay(ctx context.Context, in StudyDayInput) (*ent.StudyDay, error)

	// HasDomains reports whether any content has been seeded.
	HasDomains(ctx context.Context) (bool, error)

	// Domains returns all domains ordered by section number.
	Domains(ctx context.Context) ([]*ent.Domain, error)

	// Subtopics returns all subtopics with their domain loaded.
	Subtopics(ctx context.Context) ([]*ent.Subtopic, error)

	// Flashcard returns the card with id, or a NotFoundError.
	Flashcard(ctx context.Context, id int) (*ent.Flashcard, error)

	// DueFlashcards returns cards never reviewed or due on or before day,
	// optionally limited to one domain. Order is unspecified.
	DueFlashcards(ctx context.Context, day time.Time, domainID *int) ([]*ent.Flashcard, error)

	// UpdateSchedule writes the scheduling state of a card.
	UpdateSchedule(ctx context.Context, id int, sched Schedule) error

	// ResetSchedules restores every card to the default scheduling state.
	ResetSchedules(ctx context.Context) (int, error)

	// Question returns the question with id, or a NotFoundError.
	Question(ctx context.Context, id int) (*ent.QuizQuestion, error)

	// Questions returns the questions matching filter. Order is unspecified.
	Questions(ctx context.Context, filter QuestionFilter) ([]*ent.QuizQuestion, error)

	// StudyDay returns the plan entry for dayNumber with its domain loaded,
	// or nil if the plan has no such day.
	StudyDay(ctx context.Context, dayNumber int) (*ent.StudyDay, error)

	// StudyDays returns the full plan ordered by day number.
	StudyDays(ctx context.Context) ([]*ent.StudyDay, error)

	// CountStudyDays returns the number of days in the plan.
	CountStudyDays(ctx context.Context) (int, error)
}

// ProgressRepo manages session progress rows and the resumability ledger.
type ProgressRepo interface {
	// Progress returns the progress row for day, or nil if not started.
	Progress(ctx context.Context, day int) (*ent.SessionProgress, error)
	CreateProgress(ctx context.Context, day int, calendarDate time.Time) (*ent.SessionProgress, error)
	MarkDone(ctx context.Context, day int, flag ProgressFlag) error
	StampCompleted(ctx context.Context, day int, at time.Time) error

	// ClearProgress resets the flags and completion time of day.
	ClearProgress(ctx context.Context, day int) error

	// CompletedDays returns the set of day numbers with completed_at set.
	CompletedDays(ctx context.Context) (map[int]bool, error)
	CountCompleted(ctx context.Context) (int, error)

	// AddItem records an item in the ledger. It reports false if the
	// (day, component, item) triple was already present.
	AddItem(ctx context.Context, day int, component sessionitem.Component, itemID int) (bool, error)
	Items(ctx context.Context, day int, component sessionitem.Component) ([]int, error)
	DeleteItems(ctx context.Context, day int) (int, error)

	// DeleteAll removes every progress row and ledger entry.
	DeleteAll(ctx context.Context) error
}

// EventRepo provides append access to review and answer history plus the
// aggregate counts used for scoring.
type EventRepo interface {
	AppendReview(ctx context.Context, data ReviewEventData) error
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// QuizTally counts answers (Hits = correct) within scope.
	QuizTally(ctx context.Context, scope EventScope) (Tally, error)

	// ReviewTally counts reviews (Hits = rating >= 3) within scope.
	// SubtopicID is honoured the same way as for QuizTally.
	ReviewTally(ctx context.Context, scope EventScope) (Tally, error)

	// QuizBatches returns the number of distinct quiz runs answered.
	QuizBatches(ctx context.Context) (int, error)

	// DeleteAll removes every review and answer event.
	DeleteAll(ctx context.Context) error
}

// SettingsRepo stores single-valued settings keyed by name.
type SettingsRepo interface {
	// Get returns the value for key and whether it was set.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set inserts or updates key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key if present.
	Delete(ctx context.Context, key string) error
}

// CalendarDay returns the UTC midnight of t's calendar day in t's own
// location. All stored calendar dates use this form.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
