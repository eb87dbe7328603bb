// Code generated by ent, DO NOT EDIT.

package quizquestion

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/examprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldID, id))
}

// DomainID applies equality check predicate on the "domain_id" field. It's identical to DomainIDEQ.
func DomainID(v int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldDomainID, v))
}

// SubtopicID applies equality check predicate on the "subtopic_id" field. It's identical to SubtopicIDEQ.
func SubtopicID(v int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldSubtopicID, v))
}

// Stem applies equality check predicate on the "stem" field. It's identical to StemEQ.
func Stem(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldStem, v))
}

// ChoiceA applies equality check predicate on the "choice_a" field. It's identical to ChoiceAEQ.
func ChoiceA(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldChoiceA, v))
}

// ChoiceB applies equality check predicate on the "choice_b" field. It's identical to ChoiceBEQ.
func ChoiceB(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldChoiceB, v))
}

// ChoiceC applies equality check predicate on the "choice_c" field. It's identical to ChoiceCEQ.
func ChoiceC(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldChoiceC, v))
}

// ChoiceD applies equality check predicate on the "choice_d" field. It's identical to ChoiceDEQ.
func ChoiceD(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldChoiceD, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldCorrectAnswer, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldExplanation, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldSource, v))
}

// DomainIDEQ applies the EQ predicate on the "domain_id" field.
func DomainIDEQ(v int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldDomainID, v))
}

// DomainIDNEQ applies the NEQ predicate on the "domain_id" field.
func DomainIDNEQ(v int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldDomainID, v))
}

// DomainIDIn applies the In predicate on the "domain_id" field.
func DomainIDIn(vs ...int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldDomainID, vs...))
}

// DomainIDNotIn applies the NotIn predicate on the "domain_id" field.
func DomainIDNotIn(vs ...int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldDomainID, vs...))
}

// SubtopicIDEQ applies the EQ predicate on the "subtopic_id" field.
func SubtopicIDEQ(v int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldSubtopicID, v))
}

// SubtopicIDNEQ applies the NEQ predicate on the "subtopic_id" field.
func SubtopicIDNEQ(v int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldSubtopicID, v))
}

// SubtopicIDIn applies the In predicate on the "subtopic_id" field.
func SubtopicIDIn(vs ...int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldSubtopicID, vs...))
}

// SubtopicIDNotIn applies the NotIn predicate on the "subtopic_id" field.
func SubtopicIDNotIn(vs ...int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldSubtopicID, vs...))
}

// SubtopicIDIsNil applies the IsNil predicate on the "subtopic_id" field.
func SubtopicIDIsNil() predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIsNull(FieldSubtopicID))
}

// SubtopicIDNotNil applies the NotNil predicate on the "subtopic_id" field.
func SubtopicIDNotNil() predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotNull(FieldSubtopicID))
}

// StemEQ applies the EQ predicate on the "stem" field.
func StemEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldStem, v))
}

// StemNEQ applies the NEQ predicate on the "stem" field.
func StemNEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldStem, v))
}

// StemIn applies the In predicate on the "stem" field.
func StemIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldStem, vs...))
}

// StemNotIn applies the NotIn predicate on the "stem" field.
func StemNotIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldStem, vs...))
}

// StemGT applies the GT predicate on the "stem" field.
func StemGT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldStem, v))
}

// StemGTE applies the GTE predicate on the "stem" field.
func StemGTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldStem, v))
}

// StemLT applies the LT predicate on the "stem" field.
func StemLT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldStem, v))
}

// StemLTE applies the LTE predicate on the "stem" field.
func StemLTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldStem, v))
}

// StemContains applies the Contains predicate on the "stem" field.
func StemContains(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContains(FieldStem, v))
}

// StemHasPrefix applies the HasPrefix predicate on the "stem" field.
func StemHasPrefix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasPrefix(FieldStem, v))
}

// StemHasSuffix applies the HasSuffix predicate on the "stem" field.
func StemHasSuffix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasSuffix(FieldStem, v))
}

// StemEqualFold applies the EqualFold predicate on the "stem" field.
func StemEqualFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEqualFold(FieldStem, v))
}

// StemContainsFold applies the ContainsFold predicate on the "stem" field.
func StemContainsFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContainsFold(FieldStem, v))
}

// ChoiceAEQ applies the EQ predicate on the "choice_a" field.
func ChoiceAEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldChoiceA, v))
}

// ChoiceANEQ applies the NEQ predicate on the "choice_a" field.
func ChoiceANEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldChoiceA, v))
}

// ChoiceAIn applies the In predicate on the "choice_a" field.
func ChoiceAIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldChoiceA, vs...))
}

// ChoiceANotIn applies the NotIn predicate on the "choice_a" field.
func ChoiceANotIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldChoiceA, vs...))
}

// ChoiceAGT applies the GT predicate on the "choice_a" field.
func ChoiceAGT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldChoiceA, v))
}

// ChoiceAGTE applies the GTE predicate on the "choice_a" field.
func ChoiceAGTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldChoiceA, v))
}

// ChoiceALT applies the LT predicate on the "choice_a" field.
func ChoiceALT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldChoiceA, v))
}

// ChoiceALTE applies the LTE predicate on the "choice_a" field.
func ChoiceALTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldChoiceA, v))
}

// ChoiceAContains applies the Contains predicate on the "choice_a" field.
func ChoiceAContains(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContains(FieldChoiceA, v))
}

// ChoiceAHasPrefix applies the HasPrefix predicate on the "choice_a" field.
func ChoiceAHasPrefix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasPrefix(FieldChoiceA, v))
}

// ChoiceAHasSuffix applies the HasSuffix predicate on the "choice_a" field.
func ChoiceAHasSuffix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasSuffix(FieldChoiceA, v))
}

// ChoiceAEqualFold applies the EqualFold predicate on the "choice_a" field.
func ChoiceAEqualFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEqualFold(FieldChoiceA, v))
}

// ChoiceAContainsFold applies the ContainsFold predicate on the "choice_a" field.
func ChoiceAContainsFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContainsFold(FieldChoiceA, v))
}

// ChoiceBEQ applies the EQ predicate on the "choice_b" field.
func ChoiceBEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldChoiceB, v))
}

// ChoiceBNEQ applies the NEQ predicate on the "choice_b" field.
func ChoiceBNEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldChoiceB, v))
}

// ChoiceBIn applies the In predicate on the "choice_b" field.
func ChoiceBIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldChoiceB, vs...))
}

// ChoiceBNotIn applies the NotIn predicate on the "choice_b" field.
func ChoiceBNotIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldChoiceB, vs...))
}

// ChoiceBGT applies the GT predicate on the "choice_b" field.
func ChoiceBGT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldChoiceB, v))
}

// ChoiceBGTE applies the GTE predicate on the "choice_b" field.
func ChoiceBGTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldChoiceB, v))
}

// ChoiceBLT applies the LT predicate on the "choice_b" field.
func ChoiceBLT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldChoiceB, v))
}

// ChoiceBLTE applies the LTE predicate on the "choice_b" field.
func ChoiceBLTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldChoiceB, v))
}

// ChoiceBContains applies the Contains predicate on the "choice_b" field.
func ChoiceBContains(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContains(FieldChoiceB, v))
}

// ChoiceBHasPrefix applies the HasPrefix predicate on the "choice_b" field.
func ChoiceBHasPrefix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasPrefix(FieldChoiceB, v))
}

// ChoiceBHasSuffix applies the HasSuffix predicate on the "choice_b" field.
func ChoiceBHasSuffix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasSuffix(FieldChoiceB, v))
}

// ChoiceBEqualFold applies the EqualFold predicate on the "choice_b" field.
func ChoiceBEqualFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEqualFold(FieldChoiceB, v))
}

// ChoiceBContainsFold applies the ContainsFold predicate on the "choice_b" field.
func ChoiceBContainsFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContainsFold(FieldChoiceB, v))
}

// ChoiceCEQ applies the EQ predicate on the "choice_c" field.
func ChoiceCEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldChoiceC, v))
}

// ChoiceCNEQ applies the NEQ predicate on the "choice_c" field.
func ChoiceCNEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldChoiceC, v))
}

// ChoiceCIn applies the In predicate on the "choice_c" field.
func ChoiceCIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldChoiceC, vs...))
}

// ChoiceCNotIn applies the NotIn predicate on the "choice_c" field.
func ChoiceCNotIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldChoiceC, vs...))
}

// ChoiceCGT applies the GT predicate on the "choice_c" field.
func ChoiceCGT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldChoiceC, v))
}

// ChoiceCGTE applies the GTE predicate on the "choice_c" field.
func ChoiceCGTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldChoiceC, v))
}

// ChoiceCLT applies the LT predicate on the "choice_c" field.
func ChoiceCLT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldChoiceC, v))
}

// ChoiceCLTE applies the LTE predicate on the "choice_c" field.
func ChoiceCLTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldChoiceC, v))
}

// ChoiceCContains applies the Contains predicate on the "choice_c" field.
func ChoiceCContains(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContains(FieldChoiceC, v))
}

// ChoiceCHasPrefix applies the HasPrefix predicate on the "choice_c" field.
func ChoiceCHasPrefix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasPrefix(FieldChoiceC, v))
}

// ChoiceCHasSuffix applies the HasSuffix predicate on the "choice_c" field.
func ChoiceCHasSuffix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasSuffix(FieldChoiceC, v))
}

// ChoiceCEqualFold applies the EqualFold predicate on the "choice_c" field.
func ChoiceCEqualFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEqualFold(FieldChoiceC, v))
}

// ChoiceCContainsFold applies the ContainsFold predicate on the "choice_c" field.
func ChoiceCContainsFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContainsFold(FieldChoiceC, v))
}

// ChoiceDEQ applies the EQ predicate on the "choice_d" field.
func ChoiceDEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldChoiceD, v))
}

// ChoiceDNEQ applies the NEQ predicate on the "choice_d" field.
func ChoiceDNEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldChoiceD, v))
}

// ChoiceDIn applies the In predicate on the "choice_d" field.
func ChoiceDIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldChoiceD, vs...))
}

// ChoiceDNotIn applies the NotIn predicate on the "choice_d" field.
func ChoiceDNotIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldChoiceD, vs...))
}

// ChoiceDGT applies the GT predicate on the "choice_d" field.
func ChoiceDGT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldChoiceD, v))
}

// ChoiceDGTE applies the GTE predicate on the "choice_d" field.
func ChoiceDGTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldChoiceD, v))
}

// ChoiceDLT applies the LT predicate on the "choice_d" field.
func ChoiceDLT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldChoiceD, v))
}

// ChoiceDLTE applies the LTE predicate on the "choice_d" field.
func ChoiceDLTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldChoiceD, v))
}

// ChoiceDContains applies the Contains predicate on the "choice_d" field.
func ChoiceDContains(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContains(FieldChoiceD, v))
}

// ChoiceDHasPrefix applies the HasPrefix predicate on the "choice_d" field.
func ChoiceDHasPrefix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasPrefix(FieldChoiceD, v))
}

// ChoiceDHasSuffix applies the HasSuffix predicate on the "choice_d" field.
func ChoiceDHasSuffix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasSuffix(FieldChoiceD, v))
}

// ChoiceDEqualFold applies the EqualFold predicate on the "choice_d" field.
func ChoiceDEqualFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEqualFold(FieldChoiceD, v))
}

// ChoiceDContainsFold applies the ContainsFold predicate on the "choice_d" field.
func ChoiceDContainsFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContainsFold(FieldChoiceD, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContainsFold(FieldExplanation, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContainsFold(FieldSource, v))
}

// HasDomain applies the HasEdge predicate on the "domain" edge.
func HasDomain() predicate.QuizQuestion {
	return predicate.QuizQuestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DomainTable, DomainColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDomainWith applies the HasEdge predicate on the "domain" edge with a given conditions (other predicates).
func HasDomainWith(preds ...predicate.Domain) predicate.QuizQuestion {
	return predicate.QuizQuestion(func(s *sql.Selector) {
		step := newDomainStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubtopic applies the HasEdge predicate on the "subtopic" edge.
func HasSubtopic() predicate.QuizQuestion {
	return predicate.QuizQuestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubtopicTable, SubtopicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubtopicWith applies the HasEdge predicate on the "subtopic" edge with a given conditions (other predicates).
func HasSubtopicWith(preds ...predicate.Subtopic) predicate.QuizQuestion {
	return predicate.QuizQuestion(func(s *sql.Selector) {
		step := newSubtopicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnswers applies the HasEdge predicate on the "answers" edge.
func HasAnswers() predicate.QuizQuestion {
	return predicate.QuizQuestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswersWith applies the HasEdge predicate on the "answers" edge with a given conditions (other predicates).
func HasAnswersWith(preds ...predicate.AnswerEvent) predicate.QuizQuestion {
	return predicate.QuizQuestion(func(s *sql.Selector) {
		step := newAnswersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizQuestion) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizQuestion) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizQuestion) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.NotPredicates(p))
}
