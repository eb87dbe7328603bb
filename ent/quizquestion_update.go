// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examprep/ent/answerevent"
	"github.com/abhisek/examprep/ent/domain"
	"github.com/abhisek/examprep/ent/predicate"
	"github.com/abhisek/examprep/ent/quizquestion"
	"github.com/abhisek/examprep/ent/subtopic"
)

// QuizQuestionUpdate is the builder for updating QuizQuestion entities.
type QuizQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuizQuestionMutation
}

// Where appends a list predicates to the QuizQuestionUpdate builder.
func (_u *QuizQuestionUpdate) Where(ps ...predicate.QuizQuestion) *QuizQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDomainID sets the "domain_id" field.
func (_u *QuizQuestionUpdate) SetDomainID(v int) *QuizQuestionUpdate {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableDomainID(v *int) *QuizQuestionUpdate {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *QuizQuestionUpdate) SetSubtopicID(v int) *QuizQuestionUpdate {
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableSubtopicID(v *int) *QuizQuestionUpdate {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// ClearSubtopicID clears the value of the "subtopic_id" field.
func (_u *QuizQuestionUpdate) ClearSubtopicID() *QuizQuestionUpdate {
	_u.mutation.ClearSubtopicID()
	return _u
}

// SetStem sets the "stem" field.
func (_u *QuizQuestionUpdate) SetStem(v string) *QuizQuestionUpdate {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableStem(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetChoiceA sets the "choice_a" field.
func (_u *QuizQuestionUpdate) SetChoiceA(v string) *QuizQuestionUpdate {
	_u.mutation.SetChoiceA(v)
	return _u
}

// SetNillableChoiceA sets the "choice_a" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableChoiceA(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetChoiceA(*v)
	}
	return _u
}

// SetChoiceB sets the "choice_b" field.
func (_u *QuizQuestionUpdate) SetChoiceB(v string) *QuizQuestionUpdate {
	_u.mutation.SetChoiceB(v)
	return _u
}

// SetNillableChoiceB sets the "choice_b" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableChoiceB(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetChoiceB(*v)
	}
	return _u
}

// SetChoiceC sets the "choice_c" field.
func (_u *QuizQuestionUpdate) SetChoiceC(v string) *QuizQuestionUpdate {
	_u.mutation.SetChoiceC(v)
	return _u
}

// SetNillableChoiceC sets the "choice_c" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableChoiceC(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetChoiceC(*v)
	}
	return _u
}

// SetChoiceD sets the "choice_d" field.
func (_u *QuizQuestionUpdate) SetChoiceD(v string) *QuizQuestionUpdate {
	_u.mutation.SetChoiceD(v)
	return _u
}

// SetNillableChoiceD sets the "choice_d" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableChoiceD(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetChoiceD(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuizQuestionUpdate) SetCorrectAnswer(v string) *QuizQuestionUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableCorrectAnswer(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuizQuestionUpdate) SetExplanation(v string) *QuizQuestionUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableExplanation(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *QuizQuestionUpdate) SetSource(v string) *QuizQuestionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableSource(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDomain sets the "domain" edge to the Domain entity.
func (_u *QuizQuestionUpdate) SetDomain(v *Domain) *QuizQuestionUpdate {
	return _u.SetDomainID(v.ID)
}

// SetSubtopic sets the "subtopic" edge to the Subtopic entity.
func (_u *QuizQuestionUpdate) SetSubtopic(v *Subtopic) *QuizQuestionUpdate {
	return _u.SetSubtopicID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the AnswerEvent entity by IDs.
func (_u *QuizQuestionUpdate) AddAnswerIDs(ids ...int) *QuizQuestionUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the AnswerEvent entity.
func (_u *QuizQuestionUpdate) AddAnswers(v ...*AnswerEvent) *QuizQuestionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the QuizQuestionMutation object of the builder.
func (_u *QuizQuestionUpdate) Mutation() *QuizQuestionMutation {
	return _u.mutation
}

// ClearDomain clears the "domain" edge to the Domain entity.
func (_u *QuizQuestionUpdate) ClearDomain() *QuizQuestionUpdate {
	_u.mutation.ClearDomain()
	return _u
}

// ClearSubtopic clears the "subtopic" edge to the Subtopic entity.
func (_u *QuizQuestionUpdate) ClearSubtopic() *QuizQuestionUpdate {
	_u.mutation.ClearSubtopic()
	return _u
}

// ClearAnswers clears all "answers" edges to the AnswerEvent entity.
func (_u *QuizQuestionUpdate) ClearAnswers() *QuizQuestionUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to AnswerEvent entities by IDs.
func (_u *QuizQuestionUpdate) RemoveAnswerIDs(ids ...int) *QuizQuestionUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to AnswerEvent entities.
func (_u *QuizQuestionUpdate) RemoveAnswers(v ...*AnswerEvent) *QuizQuestionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizQuestionUpdate) check() error {
	if v, ok := _u.mutation.Stem(); ok {
		if err := quizquestion.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.stem": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChoiceA(); ok {
		if err := quizquestion.ChoiceAValidator(v); err != nil {
			return &ValidationError{Name: "choice_a", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.choice_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChoiceB(); ok {
		if err := quizquestion.ChoiceBValidator(v); err != nil {
			return &ValidationError{Name: "choice_b", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.choice_b": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChoiceC(); ok {
		if err := quizquestion.ChoiceCValidator(v); err != nil {
			return &ValidationError{Name: "choice_c", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.choice_c": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChoiceD(); ok {
		if err := quizquestion.ChoiceDValidator(v); err != nil {
			return &ValidationError{Name: "choice_d", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.choice_d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := quizquestion.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.correct_answer": %w`, err)}
		}
	}
	if _u.mutation.DomainCleared() && len(_u.mutation.DomainIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizQuestion.domain"`)
	}
	return nil
}

func (_u *QuizQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizquestion.Table, quizquestion.Columns, sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(quizquestion.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChoiceA(); ok {
		_spec.SetField(quizquestion.FieldChoiceA, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChoiceB(); ok {
		_spec.SetField(quizquestion.FieldChoiceB, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChoiceC(); ok {
		_spec.SetField(quizquestion.FieldChoiceC, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChoiceD(); ok {
		_spec.SetField(quizquestion.FieldChoiceD, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(quizquestion.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(quizquestion.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(quizquestion.FieldSource, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizquestion.DomainTable,
			Columns: []string{quizquestion.DomainColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(domain.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DomainIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizquestion.DomainTable,
			Columns: []string{quizquestion.DomainColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(domain.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubtopicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizquestion.SubtopicTable,
			Columns: []string{quizquestion.SubtopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubtopicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizquestion.SubtopicTable,
			Columns: []string{quizquestion.SubtopicColumn},
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
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quizquestion.AnswersTable,
			Columns: []string{quizquestion.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quizquestion.AnswersTable,
			Columns: []string{quizquestion.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quizquestion.AnswersTable,
			Columns: []string{quizquestion.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizQuestionUpdateOne is the builder for updating a single QuizQuestion entity.
type QuizQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizQuestionMutation
}

// SetDomainID sets the "domain_id" field.
func (_u *QuizQuestionUpdateOne) SetDomainID(v int) *QuizQuestionUpdateOne {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableDomainID(v *int) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *QuizQuestionUpdateOne) SetSubtopicID(v int) *QuizQuestionUpdateOne {
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableSubtopicID(v *int) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// ClearSubtopicID clears the value of the "subtopic_id" field.
func (_u *QuizQuestionUpdateOne) ClearSubtopicID() *QuizQuestionUpdateOne {
	_u.mutation.ClearSubtopicID()
	return _u
}

// SetStem sets the "stem" field.
func (_u *QuizQuestionUpdateOne) SetStem(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableStem(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetChoiceA sets the "choice_a" field.
func (_u *QuizQuestionUpdateOne) SetChoiceA(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetChoiceA(v)
	return _u
}

// SetNillableChoiceA sets the "choice_a" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableChoiceA(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetChoiceA(*v)
	}
	return _u
}

// SetChoiceB sets the "choice_b" field.
func (_u *QuizQuestionUpdateOne) SetChoiceB(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetChoiceB(v)
	return _u
}

// SetNillableChoiceB sets the "choice_b" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableChoiceB(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetChoiceB(*v)
	}
	return _u
}

// SetChoiceC sets the "choice_c" field.
func (_u *QuizQuestionUpdateOne) SetChoiceC(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetChoiceC(v)
	return _u
}

// SetNillableChoiceC sets the "choice_c" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableChoiceC(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetChoiceC(*v)
	}
	return _u
}

// SetChoiceD sets the "choice_d" field.
func (_u *QuizQuestionUpdateOne) SetChoiceD(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetChoiceD(v)
	return _u
}

// SetNillableChoiceD sets the "choice_d" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableChoiceD(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetChoiceD(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuizQuestionUpdateOne) SetCorrectAnswer(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableCorrectAnswer(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuizQuestionUpdateOne) SetExplanation(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableExplanation(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *QuizQuestionUpdateOne) SetSource(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableSource(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDomain sets the "domain" edge to the Domain entity.
func (_u *QuizQuestionUpdateOne) SetDomain(v *Domain) *QuizQuestionUpdateOne {
	return _u.SetDomainID(v.ID)
}

// SetSubtopic sets the "subtopic" edge to the Subtopic entity.
func (_u *QuizQuestionUpdateOne) SetSubtopic(v *Subtopic) *QuizQuestionUpdateOne {
	return _u.SetSubtopicID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the AnswerEvent entity by IDs.
func (_u *QuizQuestionUpdateOne) AddAnswerIDs(ids ...int) *QuizQuestionUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the AnswerEvent entity.
func (_u *QuizQuestionUpdateOne) AddAnswers(v ...*AnswerEvent) *QuizQuestionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the QuizQuestionMutation object of the builder.
func (_u *QuizQuestionUpdateOne) Mutation() *QuizQuestionMutation {
	return _u.mutation
}

// ClearDomain clears the "domain" edge to the Domain entity.
func (_u *QuizQuestionUpdateOne) ClearDomain() *QuizQuestionUpdateOne {
	_u.mutation.ClearDomain()
	return _u
}

// ClearSubtopic clears the "subtopic" edge to the Subtopic entity.
func (_u *QuizQuestionUpdateOne) ClearSubtopic() *QuizQuestionUpdateOne {
	_u.mutation.ClearSubtopic()
	return _u
}

// ClearAnswers clears all "answers" edges to the AnswerEvent entity.
func (_u *QuizQuestionUpdateOne) ClearAnswers() *QuizQuestionUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to AnswerEvent entities by IDs.
func (_u *QuizQuestionUpdateOne) RemoveAnswerIDs(ids ...int) *QuizQuestionUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to AnswerEvent entities.
func (_u *QuizQuestionUpdateOne) RemoveAnswers(v ...*AnswerEvent) *QuizQuestionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Where appends a list predicates to the QuizQuestionUpdate builder.
func (_u *QuizQuestionUpdateOne) Where(ps ...predicate.QuizQuestion) *QuizQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizQuestionUpdateOne) Select(field string, fields ...string) *QuizQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizQuestion entity.
func (_u *QuizQuestionUpdateOne) Save(ctx context.Context) (*QuizQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizQuestionUpdateOne) SaveX(ctx context.Context) *QuizQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Stem(); ok {
		if err := quizquestion.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.stem": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChoiceA(); ok {
		if err := quizquestion.ChoiceAValidator(v); err != nil {
			return &ValidationError{Name: "choice_a", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.choice_a": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChoiceB(); ok {
		if err := quizquestion.ChoiceBValidator(v); err != nil {
			return &ValidationError{Name: "choice_b", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.choice_b": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChoiceC(); ok {
		if err := quizquestion.ChoiceCValidator(v); err != nil {
			return &ValidationError{Name: "choice_c", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.choice_c": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChoiceD(); ok {
		if err := quizquestion.ChoiceDValidator(v); err != nil {
			return &ValidationError{Name: "choice_d", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.choice_d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := quizquestion.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.correct_answer": %w`, err)}
		}
	}
	if _u.mutation.DomainCleared() && len(_u.mutation.DomainIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizQuestion.domain"`)
	}
	return nil
}

func (_u *QuizQuestionUpdateOne) sqlSave(ctx context.Context) (_node *QuizQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizquestion.Table, quizquestion.Columns, sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizquestion.FieldID)
		for _, f := range fields {
			if !quizquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizquestion.FieldID {
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
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(quizquestion.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChoiceA(); ok {
		_spec.SetField(quizquestion.FieldChoiceA, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChoiceB(); ok {
		_spec.SetField(quizquestion.FieldChoiceB, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChoiceC(); ok {
		_spec.SetField(quizquestion.FieldChoiceC, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChoiceD(); ok {
		_spec.SetField(quizquestion.FieldChoiceD, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(quizquestion.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(quizquestion.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(quizquestion.FieldSource, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizquestion.DomainTable,
			Columns: []string{quizquestion.DomainColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(domain.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DomainIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizquestion.DomainTable,
			Columns: []string{quizquestion.DomainColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(domain.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubtopicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizquestion.SubtopicTable,
			Columns: []string{quizquestion.SubtopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubtopicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizquestion.SubtopicTable,
			Columns: []string{quizquestion.SubtopicColumn},
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
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quizquestion.AnswersTable,
			Columns: []string{quizquestion.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quizquestion.AnswersTable,
			Columns: []string{quizquestion.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quizquestion.AnswersTable,
			Columns: []string{quizquestion.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuizQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
