// Code generated by ent, DO NOT EDIT.

package domain

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/examprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Domain {
	return predicate.Domain(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Domain {
	return predicate.Domain(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Domain {
	return predicate.Domain(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Domain {
	return predicate.Domain(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Domain {
	return predicate.Domain(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Domain {
	return predicate.Domain(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Domain {
	return predicate.Domain(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Domain {
	return predicate.Domain(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Domain {
	return predicate.Domain(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Domain {
	return predicate.Domain(sql.FieldEQ(FieldName, v))
}

// SectionNumber applies equality check predicate on the "section_number" field. It's identical to SectionNumberEQ.
func SectionNumber(v int) predicate.Domain {
	return predicate.Domain(sql.FieldEQ(FieldSectionNumber, v))
}

// ExamWeight applies equality check predicate on the "exam_weight" field. It's identical to ExamWeightEQ.
func ExamWeight(v float64) predicate.Domain {
	return predicate.Domain(sql.FieldEQ(FieldExamWeight, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Domain {
	return predicate.Domain(sql.FieldEQ(FieldDescription, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Domain {
	return predicate.Domain(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Domain {
	return predicate.Domain(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Domain {
	return predicate.Domain(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Domain {
	return predicate.Domain(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Domain {
	return predicate.Domain(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Domain {
	return predicate.Domain(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Domain {
	return predicate.Domain(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Domain {
	return predicate.Domain(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Domain {
	return predicate.Domain(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Domain {
	return predicate.Domain(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Domain {
	return predicate.Domain(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Domain {
	return predicate.Domain(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Domain {
	return predicate.Domain(sql.FieldContainsFold(FieldName, v))
}

// SectionNumberEQ applies the EQ predicate on the "section_number" field.
func SectionNumberEQ(v int) predicate.Domain {
	return predicate.Domain(sql.FieldEQ(FieldSectionNumber, v))
}

// SectionNumberNEQ applies the NEQ predicate on the "section_number" field.
func SectionNumberNEQ(v int) predicate.Domain {
	return predicate.Domain(sql.FieldNEQ(FieldSectionNumber, v))
}

// SectionNumberIn applies the In predicate on the "section_number" field.
func SectionNumberIn(vs ...int) predicate.Domain {
	return predicate.Domain(sql.FieldIn(FieldSectionNumber, vs...))
}

// SectionNumberNotIn applies the NotIn predicate on the "section_number" field.
func SectionNumberNotIn(vs ...int) predicate.Domain {
	return predicate.Domain(sql.FieldNotIn(FieldSectionNumber, vs...))
}

// SectionNumberGT applies the GT predicate on the "section_number" field.
func SectionNumberGT(v int) predicate.Domain {
	return predicate.Domain(sql.FieldGT(FieldSectionNumber, v))
}

// SectionNumberGTE applies the GTE predicate on the "section_number" field.
func SectionNumberGTE(v int) predicate.Domain {
	return predicate.Domain(sql.FieldGTE(FieldSectionNumber, v))
}

// SectionNumberLT applies the LT predicate on the "section_number" field.
func SectionNumberLT(v int) predicate.Domain {
	return predicate.Domain(sql.FieldLT(FieldSectionNumber, v))
}

// SectionNumberLTE applies the LTE predicate on the "section_number" field.
func SectionNumberLTE(v int) predicate.Domain {
	return predicate.Domain(sql.FieldLTE(FieldSectionNumber, v))
}

// ExamWeightEQ applies the EQ predicate on the "exam_weight" field.
func ExamWeightEQ(v float64) predicate.Domain {
	return predicate.Domain(sql.FieldEQ(FieldExamWeight, v))
}

// ExamWeightNEQ applies the NEQ predicate on the "exam_weight" field.
func ExamWeightNEQ(v float64) predicate.Domain {
	return predicate.Domain(sql.FieldNEQ(FieldExamWeight, v))
}

// ExamWeightIn applies the In predicate on the "exam_weight" field.
func ExamWeightIn(vs ...float64) predicate.Domain {
	return predicate.Domain(sql.FieldIn(FieldExamWeight, vs...))
}

// ExamWeightNotIn applies the NotIn predicate on the "exam_weight" field.
func ExamWeightNotIn(vs ...float64) predicate.Domain {
	return predicate.Domain(sql.FieldNotIn(FieldExamWeight, vs...))
}

// ExamWeightGT applies the GT predicate on the "exam_weight" field.
func ExamWeightGT(v float64) predicate.Domain {
	return predicate.Domain(sql.FieldGT(FieldExamWeight, v))
}

// ExamWeightGTE applies the GTE predicate on the "exam_weight" field.
func ExamWeightGTE(v float64) predicate.Domain {
	return predicate.Domain(sql.FieldGTE(FieldExamWeight, v))
}

// ExamWeightLT applies the LT predicate on the "exam_weight" field.
func ExamWeightLT(v float64) predicate.Domain {
	return predicate.Domain(sql.FieldLT(FieldExamWeight, v))
}

// ExamWeightLTE applies the LTE predicate on the "exam_weight" field.
func ExamWeightLTE(v float64) predicate.Domain {
	return predicate.Domain(sql.FieldLTE(FieldExamWeight, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Domain {
	return predicate.Domain(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Domain {
	return predicate.Domain(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Domain {
	return predicate.Domain(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Domain {
	return predicate.Domain(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Domain {
	return predicate.Domain(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Domain {
	return predicate.Domain(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Domain {
	return predicate.Domain(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Domain {
	return predicate.Domain(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Domain {
	return predicate.Domain(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Domain {
	return predicate.Domain(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Domain {
	return predicate.Domain(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Domain {
	return predicate.Domain(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Domain {
	return predicate.Domain(sql.FieldContainsFold(FieldDescription, v))
}

// HasSubtopics applies the HasEdge predicate on the "subtopics" edge.
func HasSubtopics() predicate.Domain {
	return predicate.Domain(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubtopicsTable, SubtopicsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubtopicsWith applies the HasEdge predicate on the "subtopics" edge with a given conditions (other predicates).
func HasSubtopicsWith(preds ...predicate.Subtopic) predicate.Domain {
	return predicate.Domain(func(s *sql.Selector) {
		step := newSubtopicsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFlashcards applies the HasEdge predicate on the "flashcards" edge.
func HasFlashcards() predicate.Domain {
	return predicate.Domain(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FlashcardsTable, FlashcardsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFlashcardsWith applies the HasEdge predicate on the "flashcards" edge with a given conditions (other predicates).
func HasFlashcardsWith(preds ...predicate.Flashcard) predicate.Domain {
	return predicate.Domain(func(s *sql.Selector) {
		step := newFlashcardsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.Domain {
	return predicate.Domain(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.QuizQuestion) predicate.Domain {
	return predicate.Domain(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStudyDays applies the HasEdge predicate on the "study_days" edge.
func HasStudyDays() predicate.Domain {
	return predicate.Domain(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StudyDaysTable, StudyDaysColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStudyDaysWith applies the HasEdge predicate on the "study_days" edge with a given conditions (other predicates).
func HasStudyDaysWith(preds ...predicate.StudyDay) predicate.Domain {
	return predicate.Domain(func(s *sql.Selector) {
		step := newStudyDaysStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Domain) predicate.Domain {
	return predicate.Domain(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Domain) predicate.Domain {
	return predicate.Domain(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Domain) predicate.Domain {
	return predicate.Domain(sql.NotPredicates(p))
}
