// Code generated by ent, DO NOT EDIT.

package quizquestion

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the quizquestion type in the database.
	Label = "quiz_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDomainID holds the string denoting the domain_id field in the database.
	FieldDomainID = "domain_id"
	// FieldSubtopicID holds the string denoting the subtopic_id field in the database.
	FieldSubtopicID = "subtopic_id"
	// FieldStem holds the string denoting the stem field in the database.
	FieldStem = "stem"
	// FieldChoiceA holds the string denoting the choice_a field in the database.
	FieldChoiceA = "choice_a"
	// FieldChoiceB holds the string denoting the choice_b field in the database.
	FieldChoiceB = "choice_b"
	// FieldChoiceC holds the string denoting the choice_c field in the database.
	FieldChoiceC = "choice_c"
	// FieldChoiceD holds the string denoting the choice_d field in the database.
	FieldChoiceD = "choice_d"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// EdgeDomain holds the string denoting the domain edge name in mutations.
	EdgeDomain = "domain"
	// EdgeSubtopic holds the string denoting the subtopic edge name in mutations.
	EdgeSubtopic = "subtopic"
	// EdgeAnswers holds the string denoting the answers edge name in mutations.
	EdgeAnswers = "answers"
	// Table holds the table name of the quizquestion in the database.
	Table = "quiz_questions"
	// DomainTable is the table that holds the domain relation/edge.
	DomainTable = "quiz_questions"
	// DomainInverseTable is the table name for the Domain entity.
	// It exists in this package in order to avoid circular dependency with the "domain" package.
	DomainInverseTable = "domains"
	// DomainColumn is the table column denoting the domain relation/edge.
	DomainColumn = "domain_id"
	// SubtopicTable is the table that holds the subtopic relation/edge.
	SubtopicTable = "quiz_questions"
	// SubtopicInverseTable is the table name for the Subtopic entity.
	// It exists in this package in order to avoid circular dependency with the "subtopic" package.
	SubtopicInverseTable = "subtopics"
	// SubtopicColumn is the table column denoting the subtopic relation/edge.
	SubtopicColumn = "subtopic_id"
	// AnswersTable is the table that holds the answers relation/edge.
	AnswersTable = "answer_events"
	// AnswersInverseTable is the table name for the AnswerEvent entity.
	// It exists in this package in order to avoid circular dependency with the "answerevent" package.
	AnswersInverseTable = "answer_events"
	// AnswersColumn is the table column denoting the answers relation/edge.
	AnswersColumn = "question_id"
)

// Columns holds all SQL columns for quizquestion fields.
var Columns = []string{
	FieldID,
	FieldDomainID,
	FieldSubtopicID,
	FieldStem,
	FieldChoiceA,
	FieldChoiceB,
	FieldChoiceC,
	FieldChoiceD,
	FieldCorrectAnswer,
	FieldExplanation,
	FieldSource,
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
	// StemValidator is a validator for the "stem" field. It is called by the builders before save.
	StemValidator func(string) error
	// ChoiceAValidator is a validator for the "choice_a" field. It is called by the builders before save.
	ChoiceAValidator func(string) error
	// ChoiceBValidator is a validator for the "choice_b" field. It is called by the builders before save.
	ChoiceBValidator func(string) error
	// ChoiceCValidator is a validator for the "choice_c" field. It is called by the builders before save.
	ChoiceCValidator func(string) error
	// ChoiceDValidator is a validator for the "choice_d" field. It is called by the builders before save.
	ChoiceDValidator func(string) error
	// CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	CorrectAnswerValidator func(string) error
	// DefaultExplanation holds the default value on creation for the "explanation" field.
	DefaultExplanation string
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
)

// OrderOption defines the ordering options for the QuizQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDomainID orders the results by the domain_id field.
func ByDomainID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomainID, opts...).ToFunc()
}

// BySubtopicID orders the results by the subtopic_id field.
func BySubtopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtopicID, opts...).ToFunc()
}

// ByStem orders the results by the stem field.
func ByStem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStem, opts...).ToFunc()
}

// ByChoiceA orders the results by the choice_a field.
func ByChoiceA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChoiceA, opts...).ToFunc()
}

// ByChoiceB orders the results by the choice_b field.
func ByChoiceB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChoiceB, opts...).ToFunc()
}

// ByChoiceC orders the results by the choice_c field.
func ByChoiceC(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChoiceC, opts...).ToFunc()
}

// ByChoiceD orders the results by the choice_d field.
func ByChoiceD(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChoiceD, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByDomainField orders the results by domain field.
func ByDomainField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDomainStep(), sql.OrderByField(field, opts...))
	}
}

// BySubtopicField orders the results by subtopic field.
func BySubtopicField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubtopicStep(), sql.OrderByField(field, opts...))
	}
}

// ByAnswersCount orders the results by answers count.
func ByAnswersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnswersStep(), opts...)
	}
}

// ByAnswers orders the results by answers terms.
func ByAnswers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnswersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDomainStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DomainInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DomainTable, DomainColumn),
	)
}
func newSubtopicStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubtopicInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubtopicTable, SubtopicColumn),
	)
}
func newAnswersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnswersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
	)
}
