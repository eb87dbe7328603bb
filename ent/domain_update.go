// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examprep/ent/domain"
	"github.com/abhisek/examprep/ent/flashcard"
	"github.com/abhisek/examprep/ent/predicate"
	"github.com/abhisek/examprep/ent/quizquestion"
	"github.com/abhisek/examprep/ent/studyday"
	"github.com/abhisek/examprep/ent/subtopic"
)

// DomainUpdate is the builder for updating Domain entities.
type DomainUpdate struct {
	config
	hooks    []Hook
	mutation *DomainMutation
}

// Where appends a list predicates to the DomainUpdate builder.
func (_u *DomainUpdate) Where(ps ...predicate.Domain) *DomainUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *DomainUpdate) SetName(v string) *DomainUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DomainUpdate) SetNillableName(v *string) *DomainUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSectionNumber sets the "section_number" field.
func (_u *DomainUpdate) SetSectionNumber(v int) *DomainUpdate {
	_u.mutation.ResetSectionNumber()
	_u.mutation.SetSectionNumber(v)
	return _u
}

// SetNillableSectionNumber sets the "section_number" field if the given value is not nil.
func (_u *DomainUpdate) SetNillableSectionNumber(v *int) *DomainUpdate {
	if v != nil {
		_u.SetSectionNumber(*v)
	}
	return _u
}

// AddSectionNumber adds value to the "section_number" field.
func (_u *DomainUpdate) AddSectionNumber(v int) *DomainUpdate {
	_u.mutation.AddSectionNumber(v)
	return _u
}

// SetExamWeight sets the "exam_weight" field.
func (_u *DomainUpdate) SetExamWeight(v float64) *DomainUpdate {
	_u.mutation.ResetExamWeight()
	_u.mutation.SetExamWeight(v)
	return _u
}

// SetNillableExamWeight sets the "exam_weight" field if the given value is not nil.
func (_u *DomainUpdate) SetNillableExamWeight(v *float64) *DomainUpdate {
	if v != nil {
		_u.SetExamWeight(*v)
	}
	return _u
}

// AddExamWeight adds value to the "exam_weight" field.
func (_u *DomainUpdate) AddExamWeight(v float64) *DomainUpdate {
	_u.mutation.AddExamWeight(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *DomainUpdate) SetDescription(v string) *DomainUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DomainUpdate) SetNillableDescription(v *string) *DomainUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// AddSubtopicIDs adds the "subtopics" edge to the Subtopic entity by IDs.
func (_u *DomainUpdate) AddSubtopicIDs(ids ...int) *DomainUpdate {
	_u.mutation.AddSubtopicIDs(ids...)
	return _u
}

// AddSubtopics adds the "subtopics" edges to the Subtopic entity.
func (_u *DomainUpdate) AddSubtopics(v ...*Subtopic) *DomainUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubtopicIDs(ids...)
}

// AddFlashcardIDs adds the "flashcards" edge to the Flashcard entity by IDs.
func (_u *DomainUpdate) AddFlashcardIDs(ids ...int) *DomainUpdate {
	_u.mutation.AddFlashcardIDs(ids...)
	return _u
}

// AddFlashcards adds the "flashcards" edges to the Flashcard entity.
func (_u *DomainUpdate) AddFlashcards(v ...*Flashcard) *DomainUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFlashcardIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the QuizQuestion entity by IDs.
func (_u *DomainUpdate) AddQuestionIDs(ids ...int) *DomainUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the QuizQuestion entity.
func (_u *DomainUpdate) AddQuestions(v ...*QuizQuestion) *DomainUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddStudyDayIDs adds the "study_days" edge to the StudyDay entity by IDs.
func (_u *DomainUpdate) AddStudyDayIDs(ids ...int) *DomainUpdate {
	_u.mutation.AddStudyDayIDs(ids...)
	return _u
}

// AddStudyDays adds the "study_days" edges to the StudyDay entity.
func (_u *DomainUpdate) AddStudyDays(v ...*StudyDay) *DomainUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStudyDayIDs(ids...)
}

// Mutation returns the DomainMutation object of the builder.
func (_u *DomainUpdate) Mutation() *DomainMutation {
	return _u.mutation
}

// ClearSubtopics clears all "subtopics" edges to the Subtopic entity.
func (_u *DomainUpdate) ClearSubtopics() *DomainUpdate {
	_u.mutation.ClearSubtopics()
	return _u
}

// RemoveSubtopicIDs removes the "subtopics" edge to Subtopic entities by IDs.
func (_u *DomainUpdate) RemoveSubtopicIDs(ids ...int) *DomainUpdate {
	_u.mutation.RemoveSubtopicIDs(ids...)
	return _u
}

// RemoveSubtopics removes "subtopics" edges to Subtopic entities.
func (_u *DomainUpdate) RemoveSubtopics(v ...*Subtopic) *DomainUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubtopicIDs(ids...)
}

// ClearFlashcards clears all "flashcards" edges to the Flashcard entity.
func (_u *DomainUpdate) ClearFlashcards() *DomainUpdate {
	_u.mutation.ClearFlashcards()
	return _u
}

// RemoveFlashcardIDs removes the "flashcards" edge to Flashcard entities by IDs.
func (_u *DomainUpdate) RemoveFlashcardIDs(ids ...int) *DomainUpdate {
	_u.mutation.RemoveFlashcardIDs(ids...)
	return _u
}

// RemoveFlashcards removes "flashcards" edges to Flashcard entities.
func (_u *DomainUpdate) RemoveFlashcards(v ...*Flashcard) *DomainUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFlashcardIDs(ids...)
}

// ClearQuestions clears all "questions" edges to the QuizQuestion entity.
func (_u *DomainUpdate) ClearQuestions() *DomainUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to QuizQuestion entities by IDs.
func (_u *DomainUpdate) RemoveQuestionIDs(ids ...int) *DomainUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to QuizQuestion entities.
func (_u *DomainUpdate) RemoveQuestions(v ...*QuizQuestion) *DomainUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearStudyDays clears all "study_days" edges to the StudyDay entity.
func (_u *DomainUpdate) ClearStudyDays() *DomainUpdate {
	_u.mutation.ClearStudyDays()
	return _u
}

// RemoveStudyDayIDs removes the "study_days" edge to StudyDay entities by IDs.
func (_u *DomainUpdate) RemoveStudyDayIDs(ids ...int) *DomainUpdate {
	_u.mutation.RemoveStudyDayIDs(ids...)
	return _u
}

// RemoveStudyDays removes "study_days" edges to StudyDay entities.
func (_u *DomainUpdate) RemoveStudyDays(v ...*StudyDay) *DomainUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStudyDayIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DomainUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DomainUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DomainUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := domain.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Domain.name": %w`, err)}
		}
	}
	return nil
}

func (_u *DomainUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(domain.Table, domain.Columns, sqlgraph.NewFieldSpec(domain.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(domain.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionNumber(); ok {
		_spec.SetField(domain.FieldSectionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionNumber(); ok {
		_spec.AddField(domain.FieldSectionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamWeight(); ok {
		_spec.SetField(domain.FieldExamWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExamWeight(); ok {
		_spec.AddField(domain.FieldExamWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(domain.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.SubtopicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.SubtopicsTable,
			Columns: []string{domain.SubtopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubtopicsIDs(); len(nodes) > 0 && !_u.mutation.SubtopicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.SubtopicsTable,
			Columns: []string{domain.SubtopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubtopicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.SubtopicsTable,
			Columns: []string{domain.SubtopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FlashcardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.FlashcardsTable,
			Columns: []string{domain.FlashcardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFlashcardsIDs(); len(nodes) > 0 && !_u.mutation.FlashcardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.FlashcardsTable,
			Columns: []string{domain.FlashcardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FlashcardsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.FlashcardsTable,
			Columns: []string{domain.FlashcardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.QuestionsTable,
			Columns: []string{domain.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.QuestionsTable,
			Columns: []string{domain.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.QuestionsTable,
			Columns: []string{domain.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudyDaysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.StudyDaysTable,
			Columns: []string{domain.StudyDaysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studyday.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStudyDaysIDs(); len(nodes) > 0 && !_u.mutation.StudyDaysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.StudyDaysTable,
			Columns: []string{domain.StudyDaysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studyday.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudyDaysIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.StudyDaysTable,
			Columns: []string{domain.StudyDaysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studyday.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domain.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DomainUpdateOne is the builder for updating a single Domain entity.
type DomainUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DomainMutation
}

// SetName sets the "name" field.
func (_u *DomainUpdateOne) SetName(v string) *DomainUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DomainUpdateOne) SetNillableName(v *string) *DomainUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSectionNumber sets the "section_number" field.
func (_u *DomainUpdateOne) SetSectionNumber(v int) *DomainUpdateOne {
	_u.mutation.ResetSectionNumber()
	_u.mutation.SetSectionNumber(v)
	return _u
}

// SetNillableSectionNumber sets the "section_number" field if the given value is not nil.
func (_u *DomainUpdateOne) SetNillableSectionNumber(v *int) *DomainUpdateOne {
	if v != nil {
		_u.SetSectionNumber(*v)
	}
	return _u
}

// AddSectionNumber adds value to the "section_number" field.
func (_u *DomainUpdateOne) AddSectionNumber(v int) *DomainUpdateOne {
	_u.mutation.AddSectionNumber(v)
	return _u
}

// SetExamWeight sets the "exam_weight" field.
func (_u *DomainUpdateOne) SetExamWeight(v float64) *DomainUpdateOne {
	_u.mutation.ResetExamWeight()
	_u.mutation.SetExamWeight(v)
	return _u
}

// SetNillableExamWeight sets the "exam_weight" field if the given value is not nil.
func (_u *DomainUpdateOne) SetNillableExamWeight(v *float64) *DomainUpdateOne {
	if v != nil {
		_u.SetExamWeight(*v)
	}
	return _u
}

// AddExamWeight adds value to the "exam_weight" field.
func (_u *DomainUpdateOne) AddExamWeight(v float64) *DomainUpdateOne {
	_u.mutation.AddExamWeight(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *DomainUpdateOne) SetDescription(v string) *DomainUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DomainUpdateOne) SetNillableDescription(v *string) *DomainUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// AddSubtopicIDs adds the "subtopics" edge to the Subtopic entity by IDs.
func (_u *DomainUpdateOne) AddSubtopicIDs(ids ...int) *DomainUpdateOne {
	_u.mutation.AddSubtopicIDs(ids...)
	return _u
}

// AddSubtopics adds the "subtopics" edges to the Subtopic entity.
func (_u *DomainUpdateOne) AddSubtopics(v ...*Subtopic) *DomainUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubtopicIDs(ids...)
}

// AddFlashcardIDs adds the "flashcards" edge to the Flashcard entity by IDs.
func (_u *DomainUpdateOne) AddFlashcardIDs(ids ...int) *DomainUpdateOne {
	_u.mutation.AddFlashcardIDs(ids...)
	return _u
}

// AddFlashcards adds the "flashcards" edges to the Flashcard entity.
func (_u *DomainUpdateOne) AddFlashcards(v ...*Flashcard) *DomainUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFlashcardIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the QuizQuestion entity by IDs.
func (_u *DomainUpdateOne) AddQuestionIDs(ids ...int) *DomainUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the QuizQuestion entity.
func (_u *DomainUpdateOne) AddQuestions(v ...*QuizQuestion) *DomainUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddStudyDayIDs adds the "study_days" edge to the StudyDay entity by IDs.
func (_u *DomainUpdateOne) AddStudyDayIDs(ids ...int) *DomainUpdateOne {
	_u.mutation.AddStudyDayIDs(ids...)
	return _u
}

// AddStudyDays adds the "study_days" edges to the StudyDay entity.
func (_u *DomainUpdateOne) AddStudyDays(v ...*StudyDay) *DomainUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStudyDayIDs(ids...)
}

// Mutation returns the DomainMutation object of the builder.
func (_u *DomainUpdateOne) Mutation() *DomainMutation {
	return _u.mutation
}

// ClearSubtopics clears all "subtopics" edges to the Subtopic entity.
func (_u *DomainUpdateOne) ClearSubtopics() *DomainUpdateOne {
	_u.mutation.ClearSubtopics()
	return _u
}

// RemoveSubtopicIDs removes the "subtopics" edge to Subtopic entities by IDs.
func (_u *DomainUpdateOne) RemoveSubtopicIDs(ids ...int) *DomainUpdateOne {
	_u.mutation.RemoveSubtopicIDs(ids...)
	return _u
}

// RemoveSubtopics removes "subtopics" edges to Subtopic entities.
func (_u *DomainUpdateOne) RemoveSubtopics(v ...*Subtopic) *DomainUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubtopicIDs(ids...)
}

// ClearFlashcards clears all "flashcards" edges to the Flashcard entity.
func (_u *DomainUpdateOne) ClearFlashcards() *DomainUpdateOne {
	_u.mutation.ClearFlashcards()
	return _u
}

// RemoveFlashcardIDs removes the "flashcards" edge to Flashcard entities by IDs.
func (_u *DomainUpdateOne) RemoveFlashcardIDs(ids ...int) *DomainUpdateOne {
	_u.mutation.RemoveFlashcardIDs(ids...)
	return _u
}

// RemoveFlashcards removes "flashcards" edges to Flashcard entities.
func (_u *DomainUpdateOne) RemoveFlashcards(v ...*Flashcard) *DomainUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFlashcardIDs(ids...)
}

// ClearQuestions clears all "questions" edges to the QuizQuestion entity.
func (_u *DomainUpdateOne) ClearQuestions() *DomainUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to QuizQuestion entities by IDs.
func (_u *DomainUpdateOne) RemoveQuestionIDs(ids ...int) *DomainUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to QuizQuestion entities.
func (_u *DomainUpdateOne) RemoveQuestions(v ...*QuizQuestion) *DomainUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearStudyDays clears all "study_days" edges to the StudyDay entity.
func (_u *DomainUpdateOne) ClearStudyDays() *DomainUpdateOne {
	_u.mutation.ClearStudyDays()
	return _u
}

// RemoveStudyDayIDs removes the "study_days" edge to StudyDay entities by IDs.
func (_u *DomainUpdateOne) RemoveStudyDayIDs(ids ...int) *DomainUpdateOne {
	_u.mutation.RemoveStudyDayIDs(ids...)
	return _u
}

// RemoveStudyDays removes "study_days" edges to StudyDay entities.
func (_u *DomainUpdateOne) RemoveStudyDays(v ...*StudyDay) *DomainUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStudyDayIDs(ids...)
}

// Where appends a list predicates to the DomainUpdate builder.
func (_u *DomainUpdateOne) Where(ps ...predicate.Domain) *DomainUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DomainUpdateOne) Select(field string, fields ...string) *DomainUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Domain entity.
func (_u *DomainUpdateOne) Save(ctx context.Context) (*Domain, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainUpdateOne) SaveX(ctx context.Context) *Domain {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DomainUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DomainUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := domain.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Domain.name": %w`, err)}
		}
	}
	return nil
}

func (_u *DomainUpdateOne) sqlSave(ctx context.Context) (_node *Domain, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(domain.Table, domain.Columns, sqlgraph.NewFieldSpec(domain.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Domain.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, domain.FieldID)
		for _, f := range fields {
			if !domain.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != domain.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(domain.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionNumber(); ok {
		_spec.SetField(domain.FieldSectionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionNumber(); ok {
		_spec.AddField(domain.FieldSectionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamWeight(); ok {
		_spec.SetField(domain.FieldExamWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExamWeight(); ok {
		_spec.AddField(domain.FieldExamWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(domain.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.SubtopicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.SubtopicsTable,
			Columns: []string{domain.SubtopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubtopicsIDs(); len(nodes) > 0 && !_u.mutation.SubtopicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.SubtopicsTable,
			Columns: []string{domain.SubtopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubtopicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.SubtopicsTable,
			Columns: []string{domain.SubtopicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FlashcardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.FlashcardsTable,
			Columns: []string{domain.FlashcardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFlashcardsIDs(); len(nodes) > 0 && !_u.mutation.FlashcardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.FlashcardsTable,
			Columns: []string{domain.FlashcardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FlashcardsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.FlashcardsTable,
			Columns: []string{domain.FlashcardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.QuestionsTable,
			Columns: []string{domain.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.QuestionsTable,
			Columns: []string{domain.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.QuestionsTable,
			Columns: []string{domain.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudyDaysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.StudyDaysTable,
			Columns: []string{domain.StudyDaysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studyday.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStudyDaysIDs(); len(nodes) > 0 && !_u.mutation.StudyDaysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.StudyDaysTable,
			Columns: []string{domain.StudyDaysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studyday.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudyDaysIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   domain.StudyDaysTable,
			Columns: []string{domain.StudyDaysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studyday.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Domain{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domain.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
