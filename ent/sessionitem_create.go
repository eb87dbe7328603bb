// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examprep/ent/sessionitem"
)

// SessionItemCreate is the builder for creating a SessionItem entity.
type SessionItemCreate struct {
	config
	mutation *SessionItemMutation
	hooks    []Hook
}

// SetSessionDay sets the "session_day" field.
func (_c *SessionItemCreate) SetSessionDay(v int) *SessionItemCreate {
	_c.mutation.SetSessionDay(v)
	return _c
}

// SetComponent sets the "component" field.
func (_c *SessionItemCreate) SetComponent(v sessionitem.Component) *SessionItemCreate {
	_c.mutation.SetComponent(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *SessionItemCreate) SetItemID(v int) *SessionItemCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// Mutation returns the SessionItemMutation object of the builder.
func (_c *SessionItemCreate) Mutation() *SessionItemMutation {
	return _c.mutation
}

// Save creates the SessionItem in the database.
func (_c *SessionItemCreate) Save(ctx context.Context) (*SessionItem, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionItemCreate) SaveX(ctx context.Context) *SessionItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionItemCreate) check() error {
	if _, ok := _c.mutation.SessionDay(); !ok {
		return &ValidationError{Name: "session_day", err: errors.New(`ent: missing required field "SessionItem.session_day"`)}
	}
	if v, ok := _c.mutation.SessionDay(); ok {
		if err := sessionitem.SessionDayValidator(v); err != nil {
			return &ValidationError{Name: "session_day", err: fmt.Errorf(`ent: validator failed for field "SessionItem.session_day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Component(); !ok {
		return &ValidationError{Name: "component", err: errors.New(`ent: missing required field "SessionItem.component"`)}
	}
	if v, ok := _c.mutation.Component(); ok {
		if err := sessionitem.ComponentValidator(v); err != nil {
			return &ValidationError{Name: "component", err: fmt.Errorf(`ent: validator failed for field "SessionItem.component": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "SessionItem.item_id"`)}
	}
	return nil
}

func (_c *SessionItemCreate) sqlSave(ctx context.Context) (*SessionItem, error) {
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

func (_c *SessionItemCreate) createSpec() (*SessionItem, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionitem.Table, sqlgraph.NewFieldSpec(sessionitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionDay(); ok {
		_spec.SetField(sessionitem.FieldSessionDay, field.TypeInt, value)
		_node.SessionDay = value
	}
	if value, ok := _c.mutation.Component(); ok {
		_spec.SetField(sessionitem.FieldComponent, field.TypeEnum, value)
		_node.Component = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(sessionitem.FieldItemID, field.TypeInt, value)
		_node.ItemID = value
	}
	return _node, _spec
}

// SessionItemCreateBulk is the builder for creating many SessionItem entities in bulk.
type SessionItemCreateBulk struct {
	config
	err      error
	builders []*SessionItemCreate
}

// Save creates the SessionItem entities in the database.
func (_c *SessionItemCreateBulk) Save(ctx context.Context) ([]*SessionItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionItemMutation)
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
func (_c *SessionItemCreateBulk) SaveX(ctx context.Context) []*SessionItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
