// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examprep/ent/domain"
	"github.com/abhisek/examprep/ent/studyday"
)

// StudyDayCreate is the builder for creating a StudyDay entity.
type StudyDayCreate struct {
	config
	mutation *StudyDayMutation
	hooks    []Hook
}

// SetDayNumber sets the "day_number" field.
func (_c *StudyDayCreate) SetDayNumber(v int) *StudyDayCreate {
	_c.mutation.SetDayNumber(v)
	return _c
}

// SetDomainID sets the "domain_id" field.
func (_c *StudyDayCreate) SetDomainID(v int) *StudyDayCreate {
	_c.mutation.SetDomainID(v)
	return _c
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_c *StudyDayCreate) SetNillableDomainID(v *int) *StudyDayCreate {
	if v != nil {
		_c.SetDomainID(*v)
	}
	return _c
}

// SetReadingContent sets the "reading_content" field.
func (_c *StudyDayCreate) SetReadingContent(v string) *StudyDayCreate {
	_c.mutation.SetReadingContent(v)
	return _c
}

// SetNillableReadingContent sets the "reading_content" field if the given value is not nil.
func (_c *StudyDayCreate) SetNillableReadingContent(v *string) *StudyDayCreate {
	if v != nil {
		_c.SetReadingContent(*v)
	}
	return _c
}

// SetDomain sets the "domain" edge to the Domain entity.
func (_c *StudyDayCreate) SetDomain(v *Domain) *StudyDayCreate {
	return _c.SetDomainID(v.ID)
}

// Mutation returns the StudyDayMutation object of the builder.
func (_c *StudyDayCreate) Mutation() *StudyDayMutation {
	return _c.mutation
}

// Save creates the StudyDay in the database.
func (_c *StudyDayCreate) Save(ctx context.Context) (*StudyDay, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudyDayCreate) SaveX(ctx context.Context) *StudyDay {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyDayCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyDayCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudyDayCreate) defaults() {
	if _, ok := _c.mutation.ReadingContent(); !ok {
		v := studyday.DefaultReadingContent
		_c.mutation.SetReadingContent(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudyDayCreate) check() error {
	if _, ok := _c.mutation.DayNumber(); !ok {
		return &ValidationError{Name: "day_number", err: errors.New(`ent: missing required field "StudyDay.day_number"`)}
	}
	if v, ok := _c.mutation.DayNumber(); ok {
		if err := studyday.DayNumberValidator(v); err != nil {
			return &ValidationError{Name: "day_number", err: fmt.Errorf(`ent: validator failed for field "StudyDay.day_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReadingContent(); !ok {
		return &ValidationError{Name: "reading_content", err: errors.New(`ent: missing required field "StudyDay.reading_content"`)}
	}
	return nil
}

func (_c *StudyDayCreate) sqlSave(ctx context.Context) (*StudyDay, error) {
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

func (_c *StudyDayCreate) createSpec() (*StudyDay, *sqlgraph.CreateSpec) {
	var (
		_node = &StudyDay{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studyday.Table, sqlgraph.NewFieldSpec(studyday.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DayNumber(); ok {
		_spec.SetField(studyday.FieldDayNumber, field.TypeInt, value)
		_node.DayNumber = value
	}
	if value, ok := _c.mutation.ReadingContent(); ok {
		_spec.SetField(studyday.FieldReadingContent, field.TypeString, value)
		_node.ReadingContent = value
	}
	if nodes := _c.mutation.DomainIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studyday.DomainTable,
			Columns: []string{studyday.DomainColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(domain.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DomainID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StudyDayCreateBulk is the builder for creating many StudyDay entities in bulk.
type StudyDayCreateBulk struct {
	config
	err      error
	builders []*StudyDayCreate
}

// Save creates the StudyDay entities in the database.
func (_c *StudyDayCreateBulk) Save(ctx context.Context) ([]*StudyDay, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudyDay, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyDayMutation)
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
func (_c *StudyDayCreateBulk) SaveX(ctx context.Context) []*StudyDay {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyDayCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyDayCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
