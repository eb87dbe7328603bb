// Code generated by ent, DO NOT EDIT.

package domain

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the domain type in the database.
	Label = "domain"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSectionNumber holds the string denoting the section_number field in the database.
	FieldSectionNumber = "section_number"
	// FieldExamWeight holds the string denoting the exam_weight field in the database.
	FieldExamWeight = "exam_weight"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// EdgeSubtopics holds the string denoting the subtopics edge name in mutations.
	EdgeSubtopics = "subtopics"
	// EdgeFlashcards holds the string denoting the flashcards edge name in mutations.
	EdgeFlashcards = "flashcards"
	// EdgeQuestions holds the string denoting the questions edge name in mutations.
	EdgeQuestions = "questions"
	// EdgeStudyDays holds the string denoting the study_days edge name in mutations.
	EdgeStudyDays = "study_days"
	// Table holds the table name of the domain in the database.
	Table = "domains"
	// SubtopicsTable is the table that holds the subtopics relation/edge.
	SubtopicsTable = "subtopics"
	// SubtopicsInverseTable is the table name for the Subtopic entity.
	// It exists in this package in order to avoid circular dependency with the "subtopic" package.
	SubtopicsInverseTable = "subtopics"
	// SubtopicsColumn is the table column denoting the subtopics relation/edge.
	SubtopicsColumn = "domain_id"
	// FlashcardsTable is the table that holds the flashcards relation/edge.
	FlashcardsTable = "flashcards"
	// FlashcardsInverseTable is the table name for the Flashcard entity.
	// It exists in this package in order to avoid circular dependency with the "flashcard" package.
	FlashcardsInverseTable = "flashcards"
	// FlashcardsColumn is the table column denoting the flashcards relation/edge.
	FlashcardsColumn = "domain_id"
	// QuestionsTable is the table that holds the questions relation/edge.
	QuestionsTable = "quiz_questions"
	// QuestionsInverseTable is the table name for the QuizQuestion entity.
	// It exists in this package in order to avoid circular dependency with the "quizquestion" package.
	QuestionsInverseTable = "quiz_questions"
	// QuestionsColumn is the table column denoting the questions relation/edge.
	QuestionsColumn = "domain_id"
	// StudyDaysTable is the table that holds the study_days relation/edge.
	StudyDaysTable = "study_days"
	// StudyDaysInverseTable is the table name for the StudyDay entity.
	// It exists in this package in order to avoid circular dependency with the "studyday" package.
	StudyDaysInverseTable = "study_days"
	// StudyDaysColumn is the table column denoting the study_days relation/edge.
	StudyDaysColumn = "domain_id"
)

// Columns holds all SQL columns for domain fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldSectionNumber,
	FieldExamWeight,
	FieldDescription,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultExamWeight holds the default value on creation for the "exam_weight" field.
	DefaultExamWeight float64
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
)

// OrderOption defines the ordering options for the Domain queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySectionNumber orders the results by the section_number field.
func BySectionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectionNumber, opts...).ToFunc()
}

// ByExamWeight orders the results by the exam_weight field.
func ByExamWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamWeight, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySubtopicsCount orders the results by subtopics count.
func BySubtopicsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubtopicsStep(), opts...)
	}
}

// BySubtopics orders the results by subtopics terms.
func BySubtopics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubtopicsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFlashcardsCount orders the results by flashcards count.
func ByFlashcardsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFlashcardsStep(), opts...)
	}
}

// ByFlashcards orders the results by flashcards terms.
func ByFlashcards(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFlashcardsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByQuestionsCount orders the results by questions count.
func ByQuestionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuestionsStep(), opts...)
	}
}

// ByQuestions orders the results by questions terms.
func ByQuestions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStudyDaysCount orders the results by study_days count.
func ByStudyDaysCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStudyDaysStep(), opts...)
	}
}

// ByStudyDays orders the results by study_days terms.
func ByStudyDays(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStudyDaysStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubtopicsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubtopicsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubtopicsTable, SubtopicsColumn),
	)
}
func newFlashcardsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FlashcardsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FlashcardsTable, FlashcardsColumn),
	)
}
func newQuestionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
	)
}
func newStudyDaysStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StudyDaysInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StudyDaysTable, StudyDaysColumn),
	)
}
