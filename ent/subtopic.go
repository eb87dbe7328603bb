// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examprep/ent/domain"
	"github.com/abhisek/examprep/ent/subtopic"
)

// Subtopic is the model entity for the Subtopic schema.
type Subtopic struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DomainID holds the value of the "domain_id" field.
	DomainID int `json:"domain_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubtopicQuery when eager-loading is set.
	Edges        SubtopicEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubtopicEdges holds the relations/edges for other nodes in the graph.
type SubtopicEdges struct {
	// Domain holds the value of the domain edge.
	Domain *Domain `json:"domain,omitempty"`
	// Flashcards holds the value of the flashcards edge.
	Flashcards []*Flashcard `json:"flashcards,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*QuizQuestion `json:"questions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// DomainOrErr returns the Domain value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubtopicEdges) DomainOrErr() (*Domain, error) {
	if e.Domain != nil {
		return e.Domain, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: domain.Label}
	}
	return nil, &NotLoadedError{edge: "domain"}
}

// FlashcardsOrErr returns the Flashcards value or an error if the edge
// was not loaded in eager-loading.
func (e SubtopicEdges) FlashcardsOrErr() ([]*Flashcard, error) {
	if e.loadedTypes[1] {
		return e.Flashcards, nil
	}
	return nil, &NotLoadedError{edge: "flashcards"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e SubtopicEdges) QuestionsOrErr() ([]*QuizQuestion, error) {
	if e.loadedTypes[2] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Subtopic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subtopic.FieldID, subtopic.FieldDomainID:
			values[i] = new(sql.NullInt64)
		case subtopic.FieldName, subtopic.FieldDescription:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Subtopic fields.
func (_m *Subtopic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subtopic.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case subtopic.FieldDomainID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field domain_id", values[i])
			} else if value.Valid {
				_m.DomainID = int(value.Int64)
			}
		case subtopic.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case subtopic.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Subtopic.
// This includes values selected through modifiers, order, etc.
func (_m *Subtopic) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDomain queries the "domain" edge of the Subtopic entity.
func (_m *Subtopic) QueryDomain() *DomainQuery {
	return NewSubtopicClient(_m.config).QueryDomain(_m)
}

// QueryFlashcards queries the "flashcards" edge of the Subtopic entity.
func (_m *Subtopic) QueryFlashcards() *FlashcardQuery {
	return NewSubtopicClient(_m.config).QueryFlashcards(_m)
}

// QueryQuestions queries the "questions" edge of the Subtopic entity.
func (_m *Subtopic) QueryQuestions() *QuizQuestionQuery {
	return NewSubtopicClient(_m.config).QueryQuestions(_m)
}

// Update returns a builder for updating this Subtopic.
// Note that you need to call Subtopic.Unwrap() before calling this method if this Subtopic
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Subtopic) Update() *SubtopicUpdateOne {
	return NewSubtopicClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Subtopic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Subtopic) Unwrap() *Subtopic {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Subtopic is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Subtopic) String() string {
	var builder strings.Builder
	builder.WriteString("Subtopic(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("domain_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DomainID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteByte(')')
	return builder.String()
}

// Subtopics is a parsable slice of Subtopic.
type Subtopics []*Subtopic
