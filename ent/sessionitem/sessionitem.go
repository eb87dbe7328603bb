// Code generated by ent, DO NOT EDIT.

package sessionitem

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionitem type in the database.
	Label = "session_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionDay holds the string denoting the session_day field in the database.
	FieldSessionDay = "session_day"
	// FieldComponent holds the string denoting the component field in the database.
	FieldComponent = "component"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// Table holds the table name of the sessionitem in the database.
	Table = "session_items"
)

// Columns holds all SQL columns for sessionitem fields.
var Columns = []string{
	FieldID,
	FieldSessionDay,
	FieldComponent,
	FieldItemID,
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
)

// Component defines the type for the "component" enum field.
type Component string

// Component values.
const (
	ComponentFlashcard Component = "flashcard"
	ComponentQuiz      Component = "quiz"
)

func (c Component) String() string {
	return string(c)
}

// ComponentValidator is a validator for the "component" field enum values. It is called by the builders before save.
func ComponentValidator(c Component) error {
	switch c {
	case ComponentFlashcard, ComponentQuiz:
		return nil
	default:
		return fmt.Errorf("sessionitem: invalid enum value for component field: %q", c)
	}
}

// OrderOption defines the ordering options for the SessionItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionDay orders the results by the session_day field.
func BySessionDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionDay, opts...).ToFunc()
}

// ByComponent orders the results by the component field.
func ByComponent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComponent, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}
