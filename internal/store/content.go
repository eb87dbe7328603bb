package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/examprep/ent"
	"github.com/abhisek/examprep/ent/domain"
	"github.com/abhisek/examprep/ent/flashcard"
	"github.com/abhisek/examprep/ent/quizquestion"
	"github.com/abhisek/examprep/ent/studyday"
	"github.com/abhisek/examprep/internal/apperr"
)

const (
	defaultEaseFactor = 2.5
	defaultSource     = "seeded"
)

// contentRepo implements ContentRepo.
type contentRepo struct {
	s *Store
}

func (r *contentRepo) CreateDomain(ctx context.Context, in DomainInput) (*ent.Domain, error) {
	d, err := r.s.clientFor(ctx).Domain.Create().
		SetName(in.Name).
		SetSectionNumber(in.SectionNumber).
		SetExamWeight(in.ExamWeight).
		SetDescription(in.Description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create domain %q: %w", in.Name, err)
	}
	return d, nil
}

func (r *contentRepo) CreateSubtopic(ctx context.Context, in SubtopicInput) (*ent.Subtopic, error) {
	st, err := r.s.clientFor(ctx).Subtopic.Create().
		SetDomainID(in.DomainID).
		SetName(in.Name).
		SetDescription(in.Description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create subtopic %q: %w", in.Name, err)
	}
	return st, nil
}

func (r *contentRepo) CreateFlashcard(ctx context.Context, in FlashcardInput) (*ent.Flashcard, error) {
	source := in.Source
	if source == "" {
		source = defaultSource
	}
	fc, err := r.s.clientFor(ctx).Flashcard.Create().
		SetDomainID(in.DomainID).
		SetNillableSubtopicID(in.SubtopicID).
		SetFront(in.Front).
		SetBack(in.Back).
		SetSource(source).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create flashcard: %w", err)
	}
	return fc, nil
}

func (r *contentRepo) CreateQuestion(ctx context.Context, in QuestionInput) (*ent.QuizQuestion, error) {
	source := in.Source
	if source == "" {
		source = defaultSource
	}
	q, err := r.s.clientFor(ctx).QuizQuestion.Create().
		SetDomainID(in.DomainID).
		SetNillableSubtopicID(in.SubtopicID).
		SetStem(in.Stem).
		SetChoiceA(in.Choices[0]).
		SetChoiceB(in.Choices[1]).
		SetChoiceC(in.Choices[2]).
		SetChoiceD(in.Choices[3]).
		SetCorrectAnswer(in.CorrectAnswer).
		SetExplanation(in.Explanation).
		SetSource(source).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return q, nil
}

func (r *contentRepo) CreateStudyDay(ctx context.Context, in StudyDayInput) (*ent.StudyDay, error) {
	sd, err := r.s.clientFor(ctx).StudyDay.Create().
		SetDayNumber(in.DayNumber).
		SetNillableDomainID(in.DomainID).
		SetReadingContent(in.ReadingContent).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create study day %d: %w", in.DayNumber, err)
	}
	return sd, nil
}

func (r *contentRepo) HasDomains(ctx context.Context) (bool, error) {
	ok, err := r.s.clientFor(ctx).Domain.Query().Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check domains: %w", err)
	}
	return ok, nil
}

func (r *contentRepo) Domains(ctx context.Context) ([]*ent.Domain, error) {
	ds, err := r.s.clientFor(ctx).Domain.Query().
		Order(ent.Asc(domain.FieldSectionNumber), ent.Asc(domain.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query domains: %w", err)
	}
	return ds, nil
}

func (r *contentRepo) Subtopics(ctx context.Context) ([]*ent.Subtopic, error) {
	sts, err := r.s.clientFor(ctx).Subtopic.Query().
		WithDomain().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subtopics: %w", err)
	}
	return sts, nil
}

func (r *contentRepo) Flashcard(ctx context.Context, id int) (*ent.Flashcard, error) {
	fc, err := r.s.clientFor(ctx).Flashcard.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperr.NotFound("flashcard", id)
		}
		return nil, fmt.Errorf("get flashcard %d: %w", id, err)
	}
	return fc, nil
}

func (r *contentRepo) DueFlashcards(ctx context.Context, day time.Time, domainID *int) ([]*ent.Flashcard, error) {
	q := r.s.clientFor(ctx).Flashcard.Query().
		Where(flashcard.Or(
			flashcard.NextReviewIsNil(),
			flashcard.NextReviewLTE(day),
		))
	if domainID != nil {
		q = q.Where(flashcard.DomainID(*domainID))
	}
	fcs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due flashcards: %w", err)
	}
	return fcs, nil
}

func (r *contentRepo) UpdateSchedule(ctx context.Context, id int, sched Schedule) error {
	upd := r.s.clientFor(ctx).Flashcard.UpdateOneID(id).
		SetEaseFactor(sched.EaseFactor).
		SetInterval(sched.Interval).
		SetRepetitions(sched.Repetitions)
	if sched.NextReview != nil {
		upd = upd.SetNextReview(*sched.NextReview)
	} else {
		upd = upd.ClearNextReview()
	}
	if err := upd.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return apperr.NotFound("flashcard", id)
		}
		return fmt.Errorf("update flashcard %d schedule: %w", id, err)
	}
	return nil
}

func (r *contentRepo) ResetSchedules(ctx context.Context) (int, error) {
	n, err := r.s.clientFor(ctx).Flashcard.Update().
		SetEaseFactor(defaultEaseFactor).
		SetInterval(0).
		SetRepetitions(0).
		ClearNextReview().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset flashcard schedules: %w", err)
	}
	return n, nil
}

func (r *contentRepo) Question(ctx context.Context, id int) (*ent.QuizQuestion, error) {
	q, err := r.s.clientFor(ctx).QuizQuestion.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperr.NotFound("question", id)
		}
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	return q, nil
}

func (r *contentRepo) Questions(ctx context.Context, filter QuestionFilter) ([]*ent.QuizQuestion, error) {
	q := r.s.clientFor(ctx).QuizQuestion.Query()
	if filter.DomainID != nil {
		q = q.Where(quizquestion.DomainID(*filter.DomainID))
	}
	if filter.SubtopicID != nil {
		q = q.Where(quizquestion.SubtopicID(*filter.SubtopicID))
	}
	qs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	return qs, nil
}

func (r *contentRepo) StudyDay(ctx context.Context, dayNumber int) (*ent.StudyDay, error) {
	sd, err := r.s.clientFor(ctx).StudyDay.Query().
		Where(studyday.DayNumber(dayNumber)).
		WithDomain().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get study day %d: %w", dayNumber, err)
	}
	return sd, nil
}

func (r *contentRepo) StudyDays(ctx context.Context) ([]*ent.StudyDay, error) {
	sds, err := r.s.clientFor(ctx).StudyDay.Query().
		WithDomain().
		Order(ent.Asc(studyday.FieldDayNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query study days: %w", err)
	}
	return sds, nil
}

func (r *contentRepo) CountStudyDays(ctx context.Context) (int, error) {
	n, err := r.s.clientFor(ctx).StudyDay.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count study days: %w", err)
	}
	return n, nil
}
