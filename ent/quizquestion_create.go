// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examprep/ent/answerevent"
	"github.com/abhisek/examprep/ent/domain"
	"github.com/abhisek/examprep/ent/quizquestion"
	"github.com/abhisek/examprep/ent/subtopic"
)

// QuizQuestionCreate is the builder for creating a QuizQuestion entity.
type QuizQuestionCreate struct {
	config
	mutation *QuizQuestionMutation
	hooks    []Hook
}

// SetDomainID sets the "domain_id" field.
func (_c *QuizQuestionCreate) SetDomainID(v int) *QuizQuestionCreate {
	_c.mutation.SetDomainID(v)
	return _c
}

// SetSubtopicID sets the "subtopic_id" field.
func (_c *QuizQuestionCreate) SetSubtopicID(v int) *QuizQuestionCreate {
	_c.mutation.SetSubtopicID(v)
	return _c
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_c *QuizQuestionCreate) SetNillableSubtopicID(v *int) *QuizQuestionCreate {
	if v != nil {
		_c.SetSubtopicID(*v)
	}
	return _c
}

// SetStem sets the "stem" field.
func (_c *QuizQuestionCreate) SetStem(v string) *QuizQuestionCreate {
	_c.mutation.SetStem(v)
	return _c
}

// SetChoiceA sets the "choice_a" field.
func (_c *QuizQuestionCreate) SetChoiceA(v string) *QuizQuestionCreate {
	_c.mutation.SetChoiceA(v)
	return _c
}

// SetChoiceB sets the "choice_b" field.
func (_c *QuizQuestionCreate) SetChoiceB(v string) *QuizQuestionCreate {
	_c.mutation.SetChoiceB(v)
	return _c
}

// SetChoiceC sets the "choice_c" field.
func (_c *QuizQuestionCreate) SetChoiceC(v string) *QuizQuestionCreate {
	_c.mutation.SetChoiceC(v)
	return _c
}

// SetChoiceD sets the "choice_d" field.
func (_c *QuizQuestionCreate) SetChoiceD(v string) *QuizQuestionCreate {
	_c.mutation.SetChoiceD(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *QuizQuestionCreate) SetCorrectAnswer(v string) *QuizQuestionCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *QuizQuestionCreate) SetExplanation(v string) *QuizQuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *QuizQuestionCreate) SetNillableExplanation(v *string) *QuizQuestionCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *QuizQuestionCreate) SetSource(v string) *QuizQuestionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *QuizQuestionCreate) SetNillableSource(v *string) *QuizQuestionCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetDomain sets the "domain" edge to the Domain entity.
func (_c *QuizQuestionCreate) SetDomain(v *Domain) *QuizQuestionCreate {
	return _c.SetDomainID(v.ID)
}

// SetSubtopic sets the "subtopic" edge to the Subtopic entity.
func (_c *QuizQuestionCreate) SetSubtopic(v *Subtopic) *QuizQuestionCreate {
	return _c.SetSubtopicID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the AnswerEvent entity by IDs.
func (_c *QuizQuestionCreate) AddAnswerIDs(ids ...int) *QuizQuestionCreate {
	_c.mutation.AddAnswerIDs(ids...)
	return _c
}

// AddAnswers adds the "answers" edges to the AnswerEvent entity.
func (_c *QuizQuestionCreate) AddAnswers(v ...*AnswerEvent) *QuizQuestionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnswerIDs(ids...)
}

// Mutation returns the QuizQuestionMutation object of the builder.
func (_c *QuizQuestionCreate) Mutation() *QuizQuestionMutation {
	return _c.mutation
}

// Save creates the QuizQuestion in the database.
func (_c *QuizQuestionCreate) Save(ctx context.Context) (*QuizQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizQuestionCreate) SaveX(ctx context.Context) *QuizQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizQuestionCreate) defaults() {
	if _, ok := _c.mutation.Explanation(); !ok {
		v := quizquestion.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := quizquestion.DefaultSource
		_c.mutation.SetSource(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizQuestionCreate) check() error {
	if _, ok := _c.mutation.DomainID(); !ok {
		return &ValidationError{Name: "domain_id", err: errors.New(`ent: missing required field "QuizQuestion.domain_id"`)}
	}
	if _, ok := _c.mutation.Stem(); !ok {
		return &ValidationError{Name: "stem", err: errors.New(`ent: missing required field "QuizQuestion.stem"`)}
	}
	if v, ok := _c.mutation.Stem(); ok {
		if err := quizquestion.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.stem": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChoiceA(); !ok {
		return &ValidationError{Name: "choice_a", err: errors.New(`ent: missing required field "QuizQuestion.choice_a"`)}
	}
	if v, ok := _c.mutation.ChoiceA(); ok {
		if err := quizquestion.ChoiceAValidator(v); err != nil {
			return &ValidationError{Name: "choice_a", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.choice_a": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChoiceB(); !ok {
		return &ValidationError{Name: "choice_b", err: errors.New(`ent: missing required field "QuizQuestion.choice_b"`)}
	}
	if v, ok := _c.mutation.ChoiceB(); ok {
		if err := quizquestion.ChoiceBValidator(v); err != nil {
			return &ValidationError{Name: "choice_b", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.choice_b": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChoiceC(); !ok {
		return &ValidationError{Name: "choice_c", err: errors.New(`ent: missing required field "QuizQuestion.choice_c"`)}
	}
	if v, ok := _c.mutation.ChoiceC(); ok {
		if err := quizquestion.ChoiceCValidator(v); err != nil {
			return &ValidationError{Name: "choice_c", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.choice_c": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChoiceD(); !ok {
		return &ValidationError{Name: "choice_d", err: errors.New(`ent: missing required field "QuizQuestion.choice_d"`)}
	}
	if v, ok := _c.mutation.ChoiceD(); ok {
		if err := quizquestion.ChoiceDValidator(v); err != nil {
			return &ValidationError{Name: "choice_d", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.choice_d": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "QuizQuestion.correct_answer"`)}
	}
	if v, ok := _c.mutation.CorrectAnswer(); ok {
		if err := quizquestion.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.correct_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "QuizQuestion.explanation"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "QuizQuestion.source"`)}
	}
	if len(_c.mutation.DomainIDs()) == 0 {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required edge "QuizQuestion.domain"`)}
	}
	return nil
}

func (_c *QuizQuestionCreate) sqlSave(ctx context.Context) (*QuizQuestion, error) {
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

func (_c *QuizQuestionCreate) createSpec() (*QuizQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizquestion.Table, sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Stem(); ok {
		_spec.SetField(quizquestion.FieldStem, field.TypeString, value)
		_node.Stem = value
	}
	if value, ok := _c.mutation.ChoiceA(); ok {
		_spec.SetField(quizquestion.FieldChoiceA, field.TypeString, value)
		_node.ChoiceA = value
	}
	if value, ok := _c.mutation.ChoiceB(); ok {
		_spec.SetField(quizquestion.FieldChoiceB, field.TypeString, value)
		_node.ChoiceB = value
	}
	if value, ok := _c.mutation.ChoiceC(); ok {
		_spec.SetField(quizquestion.FieldChoiceC, field.TypeString, value)
		_node.ChoiceC = value
	}
	if value, ok := _c.mutation.ChoiceD(); ok {
		_spec.SetField(quizquestion.FieldChoiceD, field.TypeString, value)
		_node.ChoiceD = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(quizquestion.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(quizquestion.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(quizquestion.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if nodes := _c.mutation.DomainIDs(); len(nodes) > 0 {
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
		_node.DomainID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubtopicIDs(); len(nodes) > 0 {
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
		_node.SubtopicID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuizQuestionCreateBulk is the builder for creating many QuizQuestion entities in bulk.
type QuizQuestionCreateBulk struct {
	config
	err      error
	builders []*QuizQuestionCreate
}

// Save creates the QuizQuestion entities in the database.
func (_c *QuizQuestionCreateBulk) Save(ctx context.Context) ([]*QuizQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizQuestionMutation)
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
func (_c *QuizQuestionCreateBulk) SaveX(ctx context.Context) []*QuizQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
