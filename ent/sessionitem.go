// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examprep/ent/sessionitem"
)

// SessionItem is the model entity for the SessionItem schema.
type SessionItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionDay holds the value of the "session_day" field.
	SessionDay int `json:"session_day,omitempty"`
	// Component holds the value of the "component" field.
	Component sessionitem.Component `json:"component,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID       int `json:"item_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionitem.FieldID, sessionitem.FieldSessionDay, sessionitem.FieldItemID:
			values[i] = new(sql.NullInt64)
		case sessionitem.FieldComponent:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionItem fields.
func (_m *SessionItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionitem.FieldSessionDay:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_day", values[i])
			} else if value.Valid {
				_m.SessionDay = int(value.Int64)
			}
		case sessionitem.FieldComponent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field component", values[i])
			} else if value.Valid {
				_m.Component = sessionitem.Component(value.String)
			}
		case sessionitem.FieldItemID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionItem.
// This includes values selected through modifiers, order, etc.
func (_m *SessionItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionItem.
// Note that you need to call SessionItem.Unwrap() before calling this method if this SessionItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionItem) Update() *SessionItemUpdateOne {
	return NewSessionItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionItem) Unwrap() *SessionItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionItem) String() string {
	var builder strings.Builder
	builder.WriteString("SessionItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_day=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionDay))
	builder.WriteString(", ")
	builder.WriteString("component=")
	builder.WriteString(fmt.Sprintf("%v", _m.Component))
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemID))
	builder.WriteByte(')')
	return builder.String()
}

// SessionItems is a parsable slice of SessionItem.
type SessionItems []*SessionItem
