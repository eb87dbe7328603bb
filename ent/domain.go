// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examprep/ent/domain"
)

// Domain is the model entity for the Domain schema.
type Domain struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Exam section number, used for display ordering
	SectionNumber int `json:"section_number,omitempty"`
	// Share of the exam, as a percentage
	ExamWeight float64 `json:"exam_weight,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DomainQuery when eager-loading is set.
	Edges        DomainEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DomainEdges holds the relations/edges for other nodes in the graph.
type DomainEdges struct {
	// Subtopics holds the value of the subtopics edge.
	Subtopics []*Subtopic `json:"subtopics,omitempty"`
	// Flashcards holds the value of the flashcards edge.
	Flashcards []*Flashcard `json:"flashcards,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*QuizQuestion `json:"questions,omitempty"`
	// StudyDays holds the value of the study_days edge.
	StudyDays []*StudyDay `json:"study_days,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// SubtopicsOrErr returns the Subtopics value or an error if the edge
// was not loaded in eager-loading.
func (e DomainEdges) SubtopicsOrErr() ([]*Subtopic, error) {
	if e.loadedTypes[0] {
		return e.Subtopics, nil
	}
	return nil, &NotLoadedError{edge: "subtopics"}
}

// FlashcardsOrErr returns the Flashcards value or an error if the edge
// was not loaded in eager-loading.
func (e DomainEdges) FlashcardsOrErr() ([]*Flashcard, error) {
	if e.loadedTypes[1] {
		return e.Flashcards, nil
	}
	return nil, &NotLoadedError{edge: "flashcards"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e DomainEdges) QuestionsOrErr() ([]*QuizQuestion, error) {
	if e.loadedTypes[2] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// StudyDaysOrErr returns the StudyDays value or an error if the edge
// was not loaded in eager-loading.
func (e DomainEdges) StudyDaysOrErr() ([]*StudyDay, error) {
	if e.loadedTypes[3] {
		return e.StudyDays, nil
	}
	return nil, &NotLoadedError{edge: "study_days"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Domain) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case domain.FieldExamWeight:
			values[i] = new(sql.NullFloat64)
		case domain.FieldID, domain.FieldSectionNumber:
			values[i] = new(sql.NullInt64)
		case domain.FieldName, domain.FieldDescription:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Domain fields.
func (_m *Domain) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case domain.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case domain.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case domain.FieldSectionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field section_number", values[i])
			} else if value.Valid {
				_m.SectionNumber = int(value.Int64)
			}
		case domain.FieldExamWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field exam_weight", values[i])
			} else if value.Valid {
				_m.ExamWeight = value.Float64
			}
		case domain.FieldDescription:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Domain.
// This includes values selected through modifiers, order, etc.
func (_m *Domain) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubtopics queries the "subtopics" edge of the Domain entity.
func (_m *Domain) QuerySubtopics() *SubtopicQuery {
	return NewDomainClient(_m.config).QuerySubtopics(_m)
}

// QueryFlashcards queries the "flashcards" edge of the Domain entity.
func (_m *Domain) QueryFlashcards() *FlashcardQuery {
	return NewDomainClient(_m.config).QueryFlashcards(_m)
}

// QueryQuestions queries the "questions" edge of the Domain entity.
func (_m *Domain) QueryQuestions() *QuizQuestionQuery {
	return NewDomainClient(_m.config).QueryQuestions(_m)
}

// QueryStudyDays queries the "study_days" edge of the Domain entity.
func (_m *Domain) QueryStudyDays() *StudyDayQuery {
	return NewDomainClient(_m.config).QueryStudyDays(_m)
}

// Update returns a builder for updating this Domain.
// Note that you need to call Domain.Unwrap() before calling this method if this Domain
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Domain) Update() *DomainUpdateOne {
	return NewDomainClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Domain entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Domain) Unwrap() *Domain {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Domain is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Domain) String() string {
	var builder strings.Builder
	builder.WriteString("Domain(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("section_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SectionNumber))
	builder.WriteString(", ")
	builder.WriteString("exam_weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExamWeight))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteByte(')')
	return builder.String()
}

// Domains is a parsable slice of Domain.
type Domains []*Domain
