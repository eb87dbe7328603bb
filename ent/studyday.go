// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examprep/ent/domain"
	"github.com/abhisek/examprep/ent/studyday"
)

// StudyDay is the model entity for the StudyDay schema.
type StudyDay struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DayNumber holds the value of the "day_number" field.
	DayNumber int `json:"day_number,omitempty"`
	// Focus domain; nil for mixed review and practice exam days
	DomainID *int `json:"domain_id,omitempty"`
	// ReadingContent holds the value of the "reading_content" field.
	ReadingContent string `json:"reading_content,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StudyDayQuery when eager-loading is set.
	Edges        StudyDayEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StudyDayEdges holds the relations/edges for other nodes in the graph.
type StudyDayEdges struct {
	// Domain holds the value of the domain edge.
	Domain *Domain `json:"domain,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DomainOrErr returns the Domain value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StudyDayEdges) DomainOrErr() (*Domain, error) {
	if e.Domain != nil {
		return e.Domain, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: domain.Label}
	}
	return nil, &NotLoadedError{edge: "domain"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudyDay) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studyday.FieldID, studyday.FieldDayNumber, studyday.FieldDomainID:
			values[i] = new(sql.NullInt64)
		case studyday.FieldReadingContent:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudyDay fields.
func (_m *StudyDay) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studyday.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case studyday.FieldDayNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_number", values[i])
			} else if value.Valid {
				_m.DayNumber = int(value.Int64)
			}
		case studyday.FieldDomainID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field domain_id", values[i])
			} else if value.Valid {
				_m.DomainID = new(int)
				*_m.DomainID = int(value.Int64)
			}
		case studyday.FieldReadingContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reading_content", values[i])
			} else if value.Valid {
				_m.ReadingContent = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudyDay.
// This includes values selected through modifiers, order, etc.
func (_m *StudyDay) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDomain queries the "domain" edge of the StudyDay entity.
func (_m *StudyDay) QueryDomain() *DomainQuery {
	return NewStudyDayClient(_m.config).QueryDomain(_m)
}

// Update returns a builder for updating this StudyDay.
// Note that you need to call StudyDay.Unwrap() before calling this method if this StudyDay
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudyDay) Update() *StudyDayUpdateOne {
	return NewStudyDayClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudyDay entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudyDay) Unwrap() *StudyDay {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudyDay is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudyDay) String() string {
	var builder strings.Builder
	builder.WriteString("StudyDay(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("day_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayNumber))
	builder.WriteString(", ")
	if v := _m.DomainID; v != nil {
		builder.WriteString("domain_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("reading_content=")
	builder.WriteString(_m.ReadingContent)
	builder.WriteByte(')')
	return builder.String()
}

// StudyDays is a parsable slice of StudyDay.
type StudyDays []*StudyDay
