// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examprep/ent/domain"
	"github.com/abhisek/examprep/ent/flashcard"
	"github.com/abhisek/examprep/ent/reviewevent"
	"github.com/abhisek/examprep/ent/subtopic"
)

// FlashcardCreate is the builder for creating a Flashcard entity.
type FlashcardCreate struct {
	config
	mutation *FlashcardMutation
	hooks    []Hook
}

// SetDomainID sets the "domain_id" field.
func (_c *FlashcardCreate) SetDomainID(v int) *FlashcardCreate {
	_c.mutation.SetDomainID(v)
	return _c
}

// SetSubtopicID sets the "subtopic_id" field.
func (_c *FlashcardCreate) SetSubtopicID(v int) *FlashcardCreate {
	_c.mutation.SetSubtopicID(v)
	return _c
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableSubtopicID(v *int) *FlashcardCreate {
	if v != nil {
		_c.SetSubtopicID(*v)
	}
	return _c
}

// SetFront sets the "front" field.
func (_c *FlashcardCreate) SetFront(v string) *FlashcardCreate {
	_c.mutation.SetFront(v)
	return _c
}

// SetBack sets the "back" field.
func (_c *FlashcardCreate) SetBack(v string) *FlashcardCreate {
	_c.mutation.SetBack(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *FlashcardCreate) SetSource(v string) *FlashcardCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableSource(v *string) *FlashcardCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *FlashcardCreate) SetEaseFactor(v float64) *FlashcardCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableEaseFactor(v *float64) *FlashcardCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetInterval sets the "interval" field.
func (_c *FlashcardCreate) SetInterval(v int) *FlashcardCreate {
	_c.mutation.SetInterval(v)
	return _c
}

// SetNillableInterval sets the "interval" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableInterval(v *int) *FlashcardCreate {
	if v != nil {
		_c.SetInterval(*v)
	}
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *FlashcardCreate) SetRepetitions(v int) *FlashcardCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableRepetitions(v *int) *FlashcardCreate {
	if v != nil {
		_c.SetRepetitions(*v)
	}
	return _c
}

// SetNextReview sets the "next_review" field.
func (_c *FlashcardCreate) SetNextReview(v time.Time) *FlashcardCreate {
	_c.mutation.SetNextReview(v)
	return _c
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_c *FlashcardCreate) SetNillableNextReview(v *time.Time) *FlashcardCreate {
	if v != nil {
		_c.SetNextReview(*v)
	}
	return _c
}

// SetDomain sets the "domain" edge to the Domain entity.
func (_c *FlashcardCreate) SetDomain(v *Domain) *FlashcardCreate {
	return _c.SetDomainID(v.ID)
}

// SetSubtopic sets the "subtopic" edge to the Subtopic entity.
func (_c *FlashcardCreate) SetSubtopic(v *Subtopic) *FlashcardCreate {
	return _c.SetSubtopicID(v.ID)
}

// AddReviewIDs adds the "reviews" edge to the ReviewEvent entity by IDs.
func (_c *FlashcardCreate) AddReviewIDs(ids ...int) *FlashcardCreate {
	_c.mutation.AddReviewIDs(ids...)
	return _c
}

// AddReviews adds the "reviews" edges to the ReviewEvent entity.
func (_c *FlashcardCreate) AddReviews(v ...*ReviewEvent) *FlashcardCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReviewIDs(ids...)
}

// Mutation returns the FlashcardMutation object of the builder.
func (_c *FlashcardCreate) Mutation() *FlashcardMutation {
	return _c.mutation
}

// Save creates the Flashcard in the database.
func (_c *FlashcardCreate) Save(ctx context.Context) (*Flashcard, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlashcardCreate) SaveX(ctx context.Context) *Flashcard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlashcardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlashcardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FlashcardCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := flashcard.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := flashcard.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.Interval(); !ok {
		v := flashcard.DefaultInterval
		_c.mutation.SetInterval(v)
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		v := flashcard.DefaultRepetitions
		_c.mutation.SetRepetitions(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlashcardCreate) check() error {
	if _, ok := _c.mutation.DomainID(); !ok {
		return &ValidationError{Name: "domain_id", err: errors.New(`ent: missing required field "Flashcard.domain_id"`)}
	}
	if _, ok := _c.mutation.Front(); !ok {
		return &ValidationError{Name: "front", err: errors.New(`ent: missing required field "Flashcard.front"`)}
	}
	if v, ok := _c.mutation.Front(); ok {
		if err := flashcard.FrontValidator(v); err != nil {
			return &ValidationError{Name: "front", err: fmt.Errorf(`ent: validator failed for field "Flashcard.front": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Back(); !ok {
		return &ValidationError{Name: "back", err: errors.New(`ent: missing required field "Flashcard.back"`)}
	}
	if v, ok := _c.mutation.Back(); ok {
		if err := flashcard.BackValidator(v); err != nil {
			return &ValidationError{Name: "back", err: fmt.Errorf(`ent: validator failed for field "Flashcard.back": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Flashcard.source"`)}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "Flashcard.ease_factor"`)}
	}
	if v, ok := _c.mutation.EaseFactor(); ok {
		if err := flashcard.EaseFactorValidator(v); err != nil {
			return &ValidationError{Name: "ease_factor", err: fmt.Errorf(`ent: validator failed for field "Flashcard.ease_factor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Interval(); !ok {
		return &ValidationError{Name: "interval", err: errors.New(`ent: missing required field "Flashcard.interval"`)}
	}
	if v, ok := _c.mutation.Interval(); ok {
		if err := flashcard.IntervalValidator(v); err != nil {
			return &ValidationError{Name: "interval", err: fmt.Errorf(`ent: validator failed for field "Flashcard.interval": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "Flashcard.repetitions"`)}
	}
	if v, ok := _c.mutation.Repetitions(); ok {
		if err := flashcard.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "Flashcard.repetitions": %w`, err)}
		}
	}
	if len(_c.mutation.DomainIDs()) == 0 {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required edge "Flashcard.domain"`)}
	}
	return nil
}

func (_c *FlashcardCreate) sqlSave(ctx context.Context) (*Flashcard, error) {
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

func (_c *FlashcardCreate) createSpec() (*Flashcard, *sqlgraph.CreateSpec) {
	var (
		_node = &Flashcard{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flashcard.Table, sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Front(); ok {
		_spec.SetField(flashcard.FieldFront, field.TypeString, value)
		_node.Front = value
	}
	if value, ok := _c.mutation.Back(); ok {
		_spec.SetField(flashcard.FieldBack, field.TypeString, value)
		_node.Back = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(flashcard.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(flashcard.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.Interval(); ok {
		_spec.SetField(flashcard.FieldInterval, field.TypeInt, value)
		_node.Interval = value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(flashcard.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.NextReview(); ok {
		_spec.SetField(flashcard.FieldNextReview, field.TypeTime, value)
		_node.NextReview = &value
	}
	if nodes := _c.mutation.DomainIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   flashcard.DomainTable,
			Columns: []string{flashcard.DomainColumn},
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
			Table:   flashcard.SubtopicTable,
			Columns: []string{flashcard.SubtopicColumn},
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
	if nodes := _c.mutation.ReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   flashcard.ReviewsTable,
			Columns: []string{flashcard.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FlashcardCreateBulk is the builder for creating many Flashcard entities in bulk.
type FlashcardCreateBulk struct {
	config
	err      error
	builders []*FlashcardCreate
}

// Save creates the Flashcard entities in the database.
func (_c *FlashcardCreateBulk) Save(ctx context.Context) ([]*Flashcard, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Flashcard, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlashcardMutation)
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
func (_c *FlashcardCreateBulk) SaveX(ctx context.Context) []*Flashcard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlashcardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlashcardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
