// Code generated by ent, DO NOT EDIT.

package reviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the reviewevent type in the database.
	Label = "review_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldBatchID holds the string denoting the batch_id field in the database.
	FieldBatchID = "batch_id"
	// FieldFlashcardID holds the string denoting the flashcard_id field in the database.
	FieldFlashcardID = "flashcard_id"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// EdgeFlashcard holds the string denoting the flashcard edge name in mutations.
	EdgeFlashcard = "flashcard"
	// Table holds the table name of the reviewevent in the database.
	Table = "review_events"
	// FlashcardTable is the table that holds the flashcard relation/edge.
	FlashcardTable = "review_events"
	// FlashcardInverseTable is the table name for the Flashcard entity.
	// It exists in this package in order to avoid circular dependency with the "flashcard" package.
	FlashcardInverseTable = "flashcards"
	// FlashcardColumn is the table column denoting the flashcard relation/edge.
	FlashcardColumn = "flashcard_id"
)

// Columns holds all SQL columns for reviewevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldBatchID,
	FieldFlashcardID,
	FieldRating,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultBatchID holds the default value on creation for the "batch_id" field.
	DefaultBatchID string
	// RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	RatingValidator func(int) error
)

// OrderOption defines the ordering options for the ReviewEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByBatchID orders the results by the batch_id field.
func ByBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchID, opts...).ToFunc()
}

// ByFlashcardID orders the results by the flashcard_id field.
func ByFlashcardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlashcardID, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByFlashcardField orders the results by flashcard field.
func ByFlashcardField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFlashcardStep(), sql.OrderByField(field, opts...))
	}
}
func newFlashcardStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FlashcardInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FlashcardTable, FlashcardColumn),
	)
}
