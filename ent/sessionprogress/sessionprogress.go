// Code generated by ent, DO NOT EDIT.

package sessionprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionprogress type in the database.
	Label = "session_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionDay holds the string denoting the session_day field in the database.
	FieldSessionDay = "session_day"
	// FieldCalendarDate holds the string denoting the calendar_date field in the database.
	FieldCalendarDate = "calendar_date"
	// FieldReadingDone holds the string denoting the reading_done field in the database.
	FieldReadingDone = "reading_done"
	// FieldFlashcardsDone holds the string denoting the flashcards_done field in the database.
	FieldFlashcardsDone = "flashcards_done"
	// FieldQuizDone holds the string denoting the quiz_done field in the database.
	FieldQuizDone = "quiz_done"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the sessionprogress in the database.
	Table = "session_progresses"
)

// Columns holds all SQL columns for sessionprogress fields.
var Columns = []string{
	FieldID,
	FieldSessionDay,
	FieldCalendarDate,
	FieldReadingDone,
	FieldFlashcardsDone,
	FieldQuizDone,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionDayValidator is a validator for the "session_day" field. It is called by the builders before save.
	SessionDayValidator func(int) error
	// DefaultReadingDone holds the default value on creation for the "reading_done" field.
	DefaultReadingDone bool
	// DefaultFlashcardsDone holds the default value on creation for the "flashcards_done" field.
	DefaultFlashcardsDone bool
	// DefaultQuizDone holds the default value on creation for the "quiz_done" field.
	DefaultQuizDone bool
)

// OrderOption defines the ordering options for the SessionProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionDay orders the results by the session_day field.
func BySessionDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionDay, opts...).ToFunc()
}

// ByCalendarDate orders the results by the calendar_date field.
func ByCalendarDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalendarDate, opts...).ToFunc()
}

// ByReadingDone orders the results by the reading_done field.
func ByReadingDone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadingDone, opts...).ToFunc()
}

// ByFlashcardsDone orders the results by the flashcards_done field.
func ByFlashcardsDone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlashcardsDone, opts...).ToFunc()
}

// ByQuizDone orders the results by the quiz_done field.
func ByQuizDone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizDone, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
