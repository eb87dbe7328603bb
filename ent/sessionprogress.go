// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examprep/ent/sessionprogress"
)

// SessionProgress is the model entity for the SessionProgress schema.
type SessionProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionDay holds the value of the "session_day" field.
	SessionDay int `json:"session_day,omitempty"`
	// Calendar day the session day was first started
	CalendarDate time.Time `json:"calendar_date,omitempty"`
	// ReadingDone holds the value of the "reading_done" field.
	ReadingDone bool `json:"reading_done,omitempty"`
	// FlashcardsDone holds the value of the "flashcards_done" field.
	FlashcardsDone bool `json:"flashcards_done,omitempty"`
	// QuizDone holds the value of the "quiz_done" field.
	QuizDone bool `json:"quiz_done,omitempty"`
	// Set once, when all three components are done
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionprogress.FieldReadingDone, sessionprogress.FieldFlashcardsDone, sessionprogress.FieldQuizDone:
			values[i] = new(sql.NullBool)
		case sessionprogress.FieldID, sessionprogress.FieldSessionDay:
			values[i] = new(sql.NullInt64)
		case sessionprogress.FieldCalendarDate, sessionprogress.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionProgress fields.
func (_m *SessionProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionprogress.FieldSessionDay:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_day", values[i])
			} else if value.Valid {
				_m.SessionDay = int(value.Int64)
			}
		case sessionprogress.FieldCalendarDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field calendar_date", values[i])
			} else if value.Valid {
				_m.CalendarDate = value.Time
			}
		case sessionprogress.FieldReadingDone:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field reading_done", values[i])
			} else if value.Valid {
				_m.ReadingDone = value.Bool
			}
		case sessionprogress.FieldFlashcardsDone:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field flashcards_done", values[i])
			} else if value.Valid {
				_m.FlashcardsDone = value.Bool
			}
		case sessionprogress.FieldQuizDone:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_done", values[i])
			} else if value.Valid {
				_m.QuizDone = value.Bool
			}
		case sessionprogress.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionProgress.
// This includes values selected through modifiers, order, etc.
func (_m *SessionProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionProgress.
// Note that you need to call SessionProgress.Unwrap() before calling this method if this SessionProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionProgress) Update() *SessionProgressUpdateOne {
	return NewSessionProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionProgress) Unwrap() *SessionProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionProgress) String() string {
	var builder strings.Builder
	builder.WriteString("SessionProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_day=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionDay))
	builder.WriteString(", ")
	builder.WriteString("calendar_date=")
	builder.WriteString(_m.CalendarDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("reading_done=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReadingDone))
	builder.WriteString(", ")
	builder.WriteString("flashcards_done=")
	builder.WriteString(fmt.Sprintf("%v", _m.FlashcardsDone))
	builder.WriteString(", ")
	builder.WriteString("quiz_done=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizDone))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SessionProgresses is a parsable slice of SessionProgress.
type SessionProgresses []*SessionProgress
