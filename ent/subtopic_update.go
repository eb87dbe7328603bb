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
	"github.com/abhisek/examprep/ent/subtopic"
)

// SubtopicUpdate is the builder for updating Subtopic entities.
type SubtopicUpdate struct {
	config
	hooks    []Hook
	mutation *SubtopicMutation
}

// Where appends a list predicates to the SubtopicUpdate builder.
func (_u *SubtopicUpdate) Where(ps ...predicate.Subtopic) *SubtopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDomainID sets the "domain_id" field.
func (_u *SubtopicUpdate) SetDomainID(v int) *SubtopicUpdate {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableDomainID(v *int) *SubtopicUpdate {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SubtopicUpdate) SetName(v string) *SubtopicUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableName(v *string) *SubtopicUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SubtopicUpdate) SetDescription(v string) *SubtopicUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableDescription(v *string) *SubtopicUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDomain sets the "domain" edge to the Domain entity.
func (_u *SubtopicUpdate) SetDomain(v *Domain) *SubtopicUpdate {
	return _u.SetDomainID(v.ID)
}

// AddFlashcardIDs adds the "flashcards" edge to the Flashcard entity by IDs.
func (_u *SubtopicUpdate) AddFlashcardIDs(ids ...int) *SubtopicUpdate {
	_u.mutation.AddFlashcardIDs(ids...)
	return _u
}

// AddFlashcards adds the "flashcards" edges to the Flashcard entity.
func (_u *SubtopicUpdate) AddFlashcards(v ...*Flashcard) *SubtopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFlashcardIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the QuizQuestion entity by IDs.
func (_u *SubtopicUpdate) AddQuestionIDs(ids ...int) *SubtopicUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the QuizQuestion entity.
func (_u *SubtopicUpdate) AddQuestions(v ...*QuizQuestion) *SubtopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the SubtopicMutation object of the builder.
func (_u *SubtopicUpdate) Mutation() *SubtopicMutation {
	return _u.mutation
}

// ClearDomain clears the "domain" edge to the Domain entity.
func (_u *SubtopicUpdate) ClearDomain() *SubtopicUpdate {
	_u.mutation.ClearDomain()
	return _u
}

// ClearFlashcards clears all "flashcards" edges to the Flashcard entity.
func (_u *SubtopicUpdate) ClearFlashcards() *SubtopicUpdate {
	_u.mutation.ClearFlashcards()
	return _u
}

// RemoveFlashcardIDs removes the "flashcards" edge to Flashcard entities by IDs.
func (_u *SubtopicUpdate) RemoveFlashcardIDs(ids ...int) *SubtopicUpdate {
	_u.mutation.RemoveFlashcardIDs(ids...)
	return _u
}

// RemoveFlashcards removes "flashcards" edges to Flashcard entities.
func (_u *SubtopicUpdate) RemoveFlashcards(v ...*Flashcard) *SubtopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFlashcardIDs(ids...)
}

// ClearQuestions clears all "questions" edges to the QuizQuestion entity.
func (_u *SubtopicUpdate) ClearQuestions() *SubtopicUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to QuizQuestion entities by IDs.
func (_u *SubtopicUpdate) RemoveQuestionIDs(ids ...int) *SubtopicUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to QuizQuestion entities.
func (_u *SubtopicUpdate) RemoveQuestions(v ...*QuizQuestion) *SubtopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubtopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubtopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtopicUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subtopic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subtopic.name": %w`, err)}
		}
	}
	if _u.mutation.DomainCleared() && len(_u.mutation.DomainIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subtopic.domain"`)
	}
	return nil
}

func (_u *SubtopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtopic.Table, subtopic.Columns, sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subtopic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(subtopic.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subtopic.DomainTable,
			Columns: []string{subtopic.DomainColumn},
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
			Table:   subtopic.DomainTable,
			Columns: []string{subtopic.DomainColumn},
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
	if _u.mutation.FlashcardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subtopic.FlashcardsTable,
			Columns: []string{subtopic.FlashcardsColumn},
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
			Table:   subtopic.FlashcardsTable,
			Columns: []string{subtopic.FlashcardsColumn},
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
			Table:   subtopic.FlashcardsTable,
			Columns: []string{subtopic.FlashcardsColumn},
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
			Table:   subtopic.QuestionsTable,
			Columns: []string{subtopic.QuestionsColumn},
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
			Table:   subtopic.QuestionsTable,
			Columns: []string{subtopic.QuestionsColumn},
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
			Table:   subtopic.QuestionsTable,
			Columns: []string{subtopic.QuestionsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubtopicUpdateOne is the builder for updating a single Subtopic entity.
type SubtopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubtopicMutation
}

// SetDomainID sets the "domain_id" field.
func (_u *SubtopicUpdateOne) SetDomainID(v int) *SubtopicUpdateOne {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableDomainID(v *int) *SubtopicUpdateOne {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SubtopicUpdateOne) SetName(v string) *SubtopicUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableName(v *string) *SubtopicUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SubtopicUpdateOne) SetDescription(v string) *SubtopicUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableDescription(v *string) *SubtopicUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDomain sets the "domain" edge to the Domain entity.
func (_u *SubtopicUpdateOne) SetDomain(v *Domain) *SubtopicUpdateOne {
	return _u.SetDomainID(v.ID)
}

// AddFlashcardIDs adds the "flashcards" edge to the Flashcard entity by IDs.
func (_u *SubtopicUpdateOne) AddFlashcardIDs(ids ...int) *SubtopicUpdateOne {
	_u.mutation.AddFlashcardIDs(ids...)
	return _u
}

// AddFlashcards adds the "flashcards" edges to the Flashcard entity.
func (_u *SubtopicUpdateOne) AddFlashcards(v ...*Flashcard) *SubtopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFlashcardIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the QuizQuestion entity by IDs.
func (_u *SubtopicUpdateOne) AddQuestionIDs(ids ...int) *SubtopicUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the QuizQuestion entity.
func (_u *SubtopicUpdateOne) AddQuestions(v ...*QuizQuestion) *SubtopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the SubtopicMutation object of the builder.
func (_u *SubtopicUpdateOne) Mutation() *SubtopicMutation {
	return _u.mutation
}

// ClearDomain clears the "domain" edge to the Domain entity.
func (_u *SubtopicUpdateOne) ClearDomain() *SubtopicUpdateOne {
	_u.mutation.ClearDomain()
	return _u
}

// ClearFlashcards clears all "flashcards" edges to the Flashcard entity.
func (_u *SubtopicUpdateOne) ClearFlashcards() *SubtopicUpdateOne {
	_u.mutation.ClearFlashcards()
	return _u
}

// RemoveFlashcardIDs removes the "flashcards" edge to Flashcard entities by IDs.
func (_u *SubtopicUpdateOne) RemoveFlashcardIDs(ids ...int) *SubtopicUpdateOne {
	_u.mutation.RemoveFlashcardIDs(ids...)
	return _u
}

// RemoveFlashcards removes "flashcards" edges to Flashcard entities.
func (_u *SubtopicUpdateOne) RemoveFlashcards(v ...*Flashcard) *SubtopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFlashcardIDs(ids...)
}

// ClearQuestions clears all "questions" edges to the QuizQuestion entity.
func (_u *SubtopicUpdateOne) ClearQuestions() *SubtopicUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to QuizQuestion entities by IDs.
func (_u *SubtopicUpdateOne) RemoveQuestionIDs(ids ...int) *SubtopicUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to QuizQuestion entities.
func (_u *SubtopicUpdateOne) RemoveQuestions(v ...*QuizQuestion) *SubtopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Where appends a list predicates to the SubtopicUpdate builder.
func (_u *SubtopicUpdateOne) Where(ps ...predicate.Subtopic) *SubtopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubtopicUpdateOne) Select(field string, fields ...string) *SubtopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subtopic entity.
func (_u *SubtopicUpdateOne) Save(ctx context.Context) (*Subtopic, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtopicUpdateOne) SaveX(ctx context.Context) *Subtopic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubtopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtopicUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subtopic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subtopic.name": %w`, err)}
		}
	}
	if _u.mutation.DomainCleared() && len(_u.mutation.DomainIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subtopic.domain"`)
	}
	return nil
}

func (_u *SubtopicUpdateOne) sqlSave(ctx context.Context) (_node *Subtopic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtopic.Table, subtopic.Columns, sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subtopic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subtopic.FieldID)
		for _, f := range fields {
			if !subtopic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subtopic.FieldID {
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
		_spec.SetField(subtopic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(subtopic.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subtopic.DomainTable,
			Columns: []string{subtopic.DomainColumn},
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
			Table:   subtopic.DomainTable,
			Columns: []string{subtopic.DomainColumn},
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
	if _u.mutation.FlashcardsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subtopic.FlashcardsTable,
			Columns: []string{subtopic.FlashcardsColumn},
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
			Table:   subtopic.FlashcardsTable,
			Columns: []string{subtopic.FlashcardsColumn},
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
			Table:   subtopic.FlashcardsTable,
			Columns: []string{subtopic.FlashcardsColumn},
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
			Table:   subtopic.QuestionsTable,
			Columns: []string{subtopic.QuestionsColumn},
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
			Table:   subtopic.QuestionsTable,
			Columns: []string{subtopic.QuestionsColumn},
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
			Table:   subtopic.QuestionsTable,
			Columns: []string{subtopic.QuestionsColumn},
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
	_node = &Subtopic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
