// Code generated by ent, DO NOT EDIT.

package sessionprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldLTE(FieldID, id))
}

// SessionDay applies equality check predicate on the "session_day" field. It's identical to SessionDayEQ.
func SessionDay(v int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldEQ(FieldSessionDay, v))
}

// CalendarDate applies equality check predicate on the "calendar_date" field. It's identical to CalendarDateEQ.
func CalendarDate(v time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldEQ(FieldCalendarDate, v))
}

// ReadingDone applies equality check predicate on the "reading_done" field. It's identical to ReadingDoneEQ.
func ReadingDone(v bool) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldEQ(FieldReadingDone, v))
}

// FlashcardsDone applies equality check predicate on the "flashcards_done" field. It's identical to FlashcardsDoneEQ.
func FlashcardsDone(v bool) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldEQ(FieldFlashcardsDone, v))
}

// QuizDone applies equality check predicate on the "quiz_done" field. It's identical to QuizDoneEQ.
func QuizDone(v bool) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldEQ(FieldQuizDone, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// SessionDayEQ applies the EQ predicate on the "session_day" field.
func SessionDayEQ(v int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldEQ(FieldSessionDay, v))
}

// SessionDayNEQ applies the NEQ predicate on the "session_day" field.
func SessionDayNEQ(v int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldNEQ(FieldSessionDay, v))
}

// SessionDayIn applies the In predicate on the "session_day" field.
func SessionDayIn(vs ...int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldIn(FieldSessionDay, vs...))
}

// SessionDayNotIn applies the NotIn predicate on the "session_day" field.
func SessionDayNotIn(vs ...int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldNotIn(FieldSessionDay, vs...))
}

// SessionDayGT applies the GT predicate on the "session_day" field.
func SessionDayGT(v int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldGT(FieldSessionDay, v))
}

// SessionDayGTE applies the GTE predicate on the "session_day" field.
func SessionDayGTE(v int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldGTE(FieldSessionDay, v))
}

// SessionDayLT applies the LT predicate on the "session_day" field.
func SessionDayLT(v int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldLT(FieldSessionDay, v))
}

// SessionDayLTE applies the LTE predicate on the "session_day" field.
func SessionDayLTE(v int) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldLTE(FieldSessionDay, v))
}

// CalendarDateEQ applies the EQ predicate on the "calendar_date" field.
func CalendarDateEQ(v time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldEQ(FieldCalendarDate, v))
}

// CalendarDateNEQ applies the NEQ predicate on the "calendar_date" field.
func CalendarDateNEQ(v time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldNEQ(FieldCalendarDate, v))
}

// CalendarDateIn applies the In predicate on the "calendar_date" field.
func CalendarDateIn(vs ...time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldIn(FieldCalendarDate, vs...))
}

// CalendarDateNotIn applies the NotIn predicate on the "calendar_date" field.
func CalendarDateNotIn(vs ...time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldNotIn(FieldCalendarDate, vs...))
}

// CalendarDateGT applies the GT predicate on the "calendar_date" field.
func CalendarDateGT(v time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldGT(FieldCalendarDate, v))
}

// CalendarDateGTE applies the GTE predicate on the "calendar_date" field.
func CalendarDateGTE(v time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldGTE(FieldCalendarDate, v))
}

// CalendarDateLT applies the LT predicate on the "calendar_date" field.
func CalendarDateLT(v time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldLT(FieldCalendarDate, v))
}

// CalendarDateLTE applies the LTE predicate on the "calendar_date" field.
func CalendarDateLTE(v time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldLTE(FieldCalendarDate, v))
}

// ReadingDoneEQ applies the EQ predicate on the "reading_done" field.
func ReadingDoneEQ(v bool) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldEQ(FieldReadingDone, v))
}

// ReadingDoneNEQ applies the NEQ predicate on the "reading_done" field.
func ReadingDoneNEQ(v bool) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldNEQ(FieldReadingDone, v))
}

// FlashcardsDoneEQ applies the EQ predicate on the "flashcards_done" field.
func FlashcardsDoneEQ(v bool) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldEQ(FieldFlashcardsDone, v))
}

// FlashcardsDoneNEQ applies the NEQ predicate on the "flashcards_done" field.
func FlashcardsDoneNEQ(v bool) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldNEQ(FieldFlashcardsDone, v))
}

// QuizDoneEQ applies the EQ predicate on the "quiz_done" field.
func QuizDoneEQ(v bool) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldEQ(FieldQuizDone, v))
}

// QuizDoneNEQ applies the NEQ predicate on the "quiz_done" field.
func QuizDoneNEQ(v bool) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldNEQ(FieldQuizDone, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.SessionProgress {
	return predicate.SessionProgress(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionProgress) predicate.SessionProgress {
	return predicate.SessionProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionProgress) predicate.SessionProgress {
	return predicate.SessionProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionProgress) predicate.SessionProgress {
	return predicate.SessionProgress(sql.NotPredicates(p))
}
