// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examprep/ent/domain"
	"github.com/abhisek/examprep/ent/flashcard"
	"github.com/abhisek/examprep/ent/subtopic"
)

// Flashcard is the model entity for the Flashcard schema.
type Flashcard struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DomainID holds the value of the "domain_id" field.
	DomainID int `json:"domain_id,omitempty"`
	// SubtopicID holds the value of the "subtopic_id" field.
	SubtopicID *int `json:"subtopic_id,omitempty"`
	// Front holds the value of the "front" field.
	Front string `json:"front,omitempty"`
	// Back holds the value of the "back" field.
	Back string `json:"back,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// EaseFactor holds the value of the "ease_factor" field.
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// Current review interval in days
	Interval int `json:"interval,omitempty"`
	// Consecutive passing reviews
	Repetitions int `json:"repetitions,omitempty"`
	// Calendar day the card is next due; nil means due now
	NextReview *time.Time `json:"next_review,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FlashcardQuery when eager-loading is set.
	Edges        FlashcardEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FlashcardEdges holds the relations/edges for other nodes in the graph.
type FlashcardEdges struct {
	// Domain holds the value of the domain edge.
	Domain *Domain `json:"domain,omitempty"`
	// Subtopic holds the value of the subtopic edge.
	Subtopic *Subtopic `json:"subtopic,omitempty"`
	// Reviews holds the value of the reviews edge.
	Reviews []*ReviewEvent `json:"reviews,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// DomainOrErr returns the Domain value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FlashcardEdges) DomainOrErr() (*Domain, error) {
	if e.Domain != nil {
		return e.Domain, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: domain.Label}
	}
	return nil, &NotLoadedError{edge: "domain"}
}

// SubtopicOrErr returns the Subtopic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FlashcardEdges) SubtopicOrErr() (*Subtopic, error) {
	if e.Subtopic != nil {
		return e.Subtopic, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: subtopic.Label}
	}
	return nil, &NotLoadedError{edge: "subtopic"}
}

// ReviewsOrErr returns the Reviews value or an error if the edge
// was not loaded in eager-loading.
func (e FlashcardEdges) ReviewsOrErr() ([]*ReviewEvent, error) {
	if e.loadedTypes[2] {
		return e.Reviews, nil
	}
	return nil, &NotLoadedError{edge: "reviews"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Flashcard) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case flashcard.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case flashcard.FieldID, flashcard.FieldDomainID, flashcard.FieldSubtopicID, flashcard.FieldInterval, flashcard.FieldRepetitions:
			values[i] = new(sql.NullInt64)
		case flashcard.FieldFront, flashcard.FieldBack, flashcard.FieldSource:
			values[i] = new(sql.NullString)
		case flashcard.FieldNextReview:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Flashcard fields.
func (_m *Flashcard) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case flashcard.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case flashcard.FieldDomainID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field domain_id", values[i])
			} else if value.Valid {
				_m.DomainID = int(value.Int64)
			}
		case flashcard.FieldSubtopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic_id", values[i])
			} else if value.Valid {
				_m.SubtopicID = new(int)
				*_m.SubtopicID = int(value.Int64)
			}
		case flashcard.FieldFront:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field front", values[i])
			} else if value.Valid {
				_m.Front = value.String
			}
		case flashcard.FieldBack:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field back", values[i])
			} else if value.Valid {
				_m.Back = value.String
			}
		case flashcard.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case flashcard.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				_m.EaseFactor = value.Float64
			}
		case flashcard.FieldInterval:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval", values[i])
			} else if value.Valid {
				_m.Interval = int(value.Int64)
			}
		case flashcard.FieldRepetitions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetitions", values[i])
			} else if value.Valid {
				_m.Repetitions = int(value.Int64)
			}
		case flashcard.FieldNextReview:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review", values[i])
			} else if value.Valid {
				_m.NextReview = new(time.Time)
				*_m.NextReview = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Flashcard.
// This includes values selected through modifiers, order, etc.
func (_m *Flashcard) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDomain queries the "domain" edge of the Flashcard entity.
func (_m *Flashcard) QueryDomain() *DomainQuery {
	return NewFlashcardClient(_m.config).QueryDomain(_m)
}

// QuerySubtopic queries the "subtopic" edge of the Flashcard entity.
func (_m *Flashcard) QuerySubtopic() *SubtopicQuery {
	return NewFlashcardClient(_m.config).QuerySubtopic(_m)
}

// QueryReviews queries the "reviews" edge of the Flashcard entity.
func (_m *Flashcard) QueryReviews() *ReviewEventQuery {
	return NewFlashcardClient(_m.config).QueryReviews(_m)
}

// Update returns a builder for updating this Flashcard.
// Note that you need to call Flashcard.Unwrap() before calling this method if this Flashcard
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Flashcard) Update() *FlashcardUpdateOne {
	return NewFlashcardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Flashcard entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Flashcard) Unwrap() *Flashcard {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Flashcard is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Flashcard) String() string {
	var builder strings.Builder
	builder.WriteString("Flashcard(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("domain_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DomainID))
	builder.WriteString(", ")
	if v := _m.SubtopicID; v != nil {
		builder.WriteString("subtopic_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("front=")
	builder.WriteString(_m.Front)
	builder.WriteString(", ")
	builder.WriteString("back=")
	builder.WriteString(_m.Back)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("interval=")
	builder.WriteString(fmt.Sprintf("%v", _m.Interval))
	builder.WriteString(", ")
	builder.WriteString("repetitions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Repetitions))
	builder.WriteString(", ")
	if v := _m.NextReview; v != nil {
		builder.WriteString("next_review=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Flashcards is a parsable slice of Flashcard.
type Flashcards []*Flashcard
