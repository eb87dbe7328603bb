// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examprep/ent/domain"
	"github.com/abhisek/examprep/ent/flashcard"
	"github.com/abhisek/examprep/ent/quizquestion"
	"github.com/abhisek/examprep/ent/studyday"
	"github.com/abhisek/examprep/ent/subtopic"
)

// DomainCreate is the builder for creating a Domain entity.
type DomainCreate struct {
	config
	mutation *DomainMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *DomainCreate) SetName(v string) *DomainCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSectionNumber sets the "section_number" field.
func (_c *DomainCreate) SetSectionNumber(v int) *DomainCreate {
	_c.mutation.SetSectionNumber(v)
	return _c
}

// SetExamWeight sets the "exam_weight" field.
func (_c *DomainCreate) SetExamWeight(v float64) *DomainCreate {
	_c.mutation.SetExamWeight(v)
	return _c
}

// SetNillableExamWeight sets the "exam_weight" field if the given value is not nil.
func (_c *DomainCreate) SetNillableExamWeight(v *float64) *DomainCreate {
	if v != nil {
		_c.SetExamWeight(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *DomainCreate) SetDescription(v string) *DomainCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *DomainCreate) SetNillableDescription(v *string) *DomainCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// AddSubtopicIDs adds the "subtopics" edge to the Subtopic entity by IDs.
func (_c *DomainCreate) AddSubtopicIDs(ids ...int) *DomainCreate {
	_c.mutation.AddSubtopicIDs(ids...)
	return _c
}

// AddSubtopics adds the "subtopics" edges to the Subtopic entity.
func (_c *DomainCreate) AddSubtopics(v ...*Subtopic) *DomainCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubtopicIDs(ids...)
}

// AddFlashcardIDs adds the "flashcards" edge to the Flashcard entity by IDs.
func (_c *DomainCreate) AddFlashcardIDs(ids ...int) *DomainCreate {
	_c.mutation.AddFlashcardIDs(ids...)
	return _c
}

// AddFlashcards adds the "flashcards" edges to the Flashcard entity.
func (_c *DomainCreate) AddFlashcards(v ...*Flashcard) *DomainCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFlashcardIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the QuizQuestion entity by IDs.
func (_c *DomainCreate) AddQuestionIDs(ids ...int) *DomainCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the QuizQuestion entity.
func (_c *DomainCreate) AddQuestions(v ...*QuizQuestion) *DomainCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// AddStudyDayIDs adds the "study_days" edge to the StudyDay entity by IDs.
func (_c *DomainCreate) AddStudyDayIDs(ids ...int) *DomainCreate {
	_c.mutation.AddStudyDayIDs(ids...)
	return _c
}

// AddStudyDays adds the "study_days" edges to the StudyDay entity.
func (_c *DomainCreate) AddStudyDays(v ...*StudyDay) *DomainCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStudyDayIDs(ids...)
}

// Mutation returns the DomainMutation object of the builder.
func (_c *DomainCreate) Mutation() *DomainMutation {
	return _c.mutation
}

// Save creates the Domain in the database.
func (_c *DomainCreate) Save(ctx context.Context) (*Domain, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DomainCreate) SaveX(ctx context.Context) *Domain {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DomainCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DomainCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DomainCreate) defaults() {
	if _, ok := _c.mutation.ExamWeight(); !ok {
		v := domain.DefaultExamWeight
		_c.mutation.SetExamWeight(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := domain.DefaultDescription
		_c.mutation.SetDescription(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DomainCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Domain.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := domain.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Domain.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SectionNumber(); !ok {
		return &ValidationError{Name: "section_number", err: errors.New(`ent: missing required field "Domain.section_number"`)}
	}
	if _, ok := _c.mutation.ExamWeight(); !ok {
		return &ValidationError{Name: "exam_weight", err: errors.New(`ent: missing required field "Domain.exam_weight"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Domain.description"`)}
	}
	return nil
}

func (_c *DomainCreate) sqlSave(ctx context.Context) (*Domain, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DomainCreate) createSpec() (*Domain, *sqlgraph.CreateSpec) {
	var (
		_node = &Domain{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(domain.Table, sqlgraph.NewFieldSpec(domain.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(domain.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.SectionNumber(); ok {
		_spec.SetField(domain.FieldSectionNumber, field.TypeInt, value)
		_node.SectionNumber = value
	}
	if value, ok := _c.mutation.ExamWeight(); ok {
		_spec.SetField(domain.FieldExamWeight, field.TypeFloat64, value)
		_node.ExamWeight = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(domain.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if nodes := _c.mutation.SubtopicsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FlashcardsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StudyDaysIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DomainCreateBulk is the builder for creating many Domain entities in bulk.
type DomainCreateBulk struct {
	config
	err      error
	builders []*DomainCreate
}

// Save creates the Domain entities in the database.
func (_c *DomainCreateBulk) Save(ctx context.Context) ([]*Domain, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Domain, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DomainMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DomainCreateBulk) SaveX(ctx context.Context) []*Domain {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DomainCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DomainCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
