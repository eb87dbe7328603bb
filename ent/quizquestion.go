// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examprep/ent/domain"
	"github.com/abhisek/examprep/ent/quizquestion"
	"github.com/abhisek/examprep/ent/subtopic"
)

// QuizQuestion is the model entity for the QuizQuestion schema.
type QuizQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DomainID holds the value of the "domain_id" field.
	DomainID int `json:"domain_id,omitempty"`
	// SubtopicID holds the value of the "subtopic_id" field.
	SubtopicID *int `json:"subtopic_id,omitempty"`
	// Stem holds the value of the "stem" field.
	Stem string `json:"stem,omitempty"`
	// ChoiceA holds the value of the "choice_a" field.
	ChoiceA string `json:"choice_a,omitempty"`
	// ChoiceB holds the value of the "choice_b" field.
	ChoiceB string `json:"choice_b,omitempty"`
	// ChoiceC holds the value of the "choice_c" field.
	ChoiceC string `json:"choice_c,omitempty"`
	// ChoiceD holds the value of the "choice_d" field.
	ChoiceD string `json:"choice_d,omitempty"`
	// Letter of the correct choice
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation string `json:"explanation,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuizQuestionQuery when eager-loading is set.
	Edges        QuizQuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuizQuestionEdges holds the relations/edges for other nodes in the graph.
type QuizQuestionEdges struct {
	// Domain holds the value of the domain edge.
	Domain *Domain `json:"domain,omitempty"`
	// Subtopic holds the value of the subtopic edge.
	Subtopic *Subtopic `json:"subtopic,omitempty"`
	// Answers holds the value of the answers edge.
	Answers []*AnswerEvent `json:"answers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// DomainOrErr returns the Domain value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuizQuestionEdges) DomainOrErr() (*Domain, error) {
	if e.Domain != nil {
		return e.Domain, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: domain.Label}
	}
	return nil, &NotLoadedError{edge: "domain"}
}

// SubtopicOrErr returns the Subtopic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuizQuestionEdges) SubtopicOrErr() (*Subtopic, error) {
	if e.Subtopic != nil {
		return e.Subtopic, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: subtopic.Label}
	}
	return nil, &NotLoadedError{edge: "subtopic"}
}

// AnswersOrErr returns the Answers value or an error if the edge
// was not loaded in eager-loading.
func (e QuizQuestionEdges) AnswersOrErr() ([]*AnswerEvent, error) {
	if e.loadedTypes[2] {
		return e.Answers, nil
	}
	return nil, &NotLoadedError{edge: "answers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizquestion.FieldID, quizquestion.FieldDomainID, quizquestion.FieldSubtopicID:
			values[i] = new(sql.NullInt64)
		case quizquestion.FieldStem, quizquestion.FieldChoiceA, quizquestion.FieldChoiceB, quizquestion.FieldChoiceC, quizquestion.FieldChoiceD, quizquestion.FieldCorrectAnswer, quizquestion.FieldExplanation, quizquestion.FieldSource:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizQuestion fields.
func (_m *QuizQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizquestion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizquestion.FieldDomainID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field domain_id", values[i])
			} else if value.Valid {
				_m.DomainID = int(value.Int64)
			}
		case quizquestion.FieldSubtopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic_id", values[i])
			} else if value.Valid {
				_m.SubtopicID = new(int)
				*_m.SubtopicID = int(value.Int64)
			}
		case quizquestion.FieldStem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stem", values[i])
			} else if value.Valid {
				_m.Stem = value.String
			}
		case quizquestion.FieldChoiceA:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field choice_a", values[i])
			} else if value.Valid {
				_m.ChoiceA = value.String
			}
		case quizquestion.FieldChoiceB:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field choice_b", values[i])
			} else if value.Valid {
				_m.ChoiceB = value.String
			}
		case quizquestion.FieldChoiceC:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field choice_c", values[i])
			} else if value.Valid {
				_m.ChoiceC = value.String
			}
		case quizquestion.FieldChoiceD:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field choice_d", values[i])
			} else if value.Valid {
				_m.ChoiceD = value.String
			}
		case quizquestion.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.String
			}
		case quizquestion.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		case quizquestion.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *QuizQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDomain queries the "domain" edge of the QuizQuestion entity.
func (_m *QuizQuestion) QueryDomain() *DomainQuery {
	return NewQuizQuestionClient(_m.config).QueryDomain(_m)
}

// QuerySubtopic queries the "subtopic" edge of the QuizQuestion entity.
func (_m *QuizQuestion) QuerySubtopic() *SubtopicQuery {
	return NewQuizQuestionClient(_m.config).QuerySubtopic(_m)
}

// QueryAnswers queries the "answers" edge of the QuizQuestion entity.
func (_m *QuizQuestion) QueryAnswers() *AnswerEventQuery {
	return NewQuizQuestionClient(_m.config).QueryAnswers(_m)
}

// Update returns a builder for updating this QuizQuestion.
// Note that you need to call QuizQuestion.Unwrap() before calling this method if this QuizQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizQuestion) Update() *QuizQuestionUpdateOne {
	return NewQuizQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizQuestion) Unwrap() *QuizQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("QuizQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("domain_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DomainID))
	builder.WriteString(", ")
	if v := _m.SubtopicID; v != nil {
		builder.WriteString("subtopic_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("stem=")
	builder.WriteString(_m.Stem)
	builder.WriteString(", ")
	builder.WriteString("choice_a=")
	builder.WriteString(_m.ChoiceA)
	builder.WriteString(", ")
	builder.WriteString("choice_b=")
	builder.WriteString(_m.ChoiceB)
	builder.WriteString(", ")
	builder.WriteString("choice_c=")
	builder.WriteString(_m.ChoiceC)
	builder.WriteString(", ")
	builder.WriteString("choice_d=")
	builder.WriteString(_m.ChoiceD)
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(_m.CorrectAnswer)
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteByte(')')
	return builder.String()
}

// QuizQuestions is a parsable slice of QuizQuestion.
type QuizQuestions []*QuizQuestion
