// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examprep/ent/predicate"
	"github.com/abhisek/examprep/ent/sessionitem"
)

// SessionItemUpdate is the builder for updating SessionItem entities.
type SessionItemUpdate struct {
	config
	hooks    []Hook
	mutation *SessionItemMutation
}

// Where appends a list predicates to the SessionItemUpdate builder.
func (_u *SessionItemUpdate) Where(ps ...predicate.SessionItem) *SessionItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionDay sets the "session_day" field.
func (_u *SessionItemUpdate) SetSessionDay(v int) *SessionItemUpdate {
	_u.mutation.ResetSessionDay()
	_u.mutation.SetSessionDay(v)
	return _u
}

// SetNillableSessionDay sets the "session_day" field if the given value is not nil.
func (_u *SessionItemUpdate) SetNillableSessionDay(v *int) *SessionItemUpdate {
	if v != nil {
		_u.SetSessionDay(*v)
	}
	return _u
}

// AddSessionDay adds value to the "session_day" field.
func (_u *SessionItemUpdate) AddSessionDay(v int) *SessionItemUpdate {
	_u.mutation.AddSessionDay(v)
	return _u
}

// SetComponent sets the "component" field.
func (_u *SessionItemUpdate) SetComponent(v sessionitem.Component) *SessionItemUpdate {
	_u.mutation.SetComponent(v)
	return _u
}

// SetNillableComponent sets the "component" field if the given value is not nil.
func (_u *SessionItemUpdate) SetNillableComponent(v *sessionitem.Component) *SessionItemUpdate {
	if v != nil {
		_u.SetComponent(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *SessionItemUpdate) SetItemID(v int) *SessionItemUpdate {
	_u.mutation.ResetItemID()
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *SessionItemUpdate) SetNillableItemID(v *int) *SessionItemUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// AddItemID adds value to the "item_id" field.
func (_u *SessionItemUpdate) AddItemID(v int) *SessionItemUpdate {
	_u.mutation.AddItemID(v)
	return _u
}

// Mutation returns the SessionItemMutation object of the builder.
func (_u *SessionItemUpdate) Mutation() *SessionItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionItemUpdate) check() error {
	if v, ok := _u.mutation.SessionDay(); ok {
		if err := sessionitem.SessionDayValidator(v); err != nil {
			return &ValidationError{Name: "session_day", err: fmt.Errorf(`ent: validator failed for field "SessionItem.session_day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Component(); ok {
		if err := sessionitem.ComponentValidator(v); err != nil {
			return &ValidationError{Name: "component", err: fmt.Errorf(`ent: validator failed for field "SessionItem.component": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionitem.Table, sessionitem.Columns, sqlgraph.NewFieldSpec(sessionitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionDay(); ok {
		_spec.SetField(sessionitem.FieldSessionDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionDay(); ok {
		_spec.AddField(sessionitem.FieldSessionDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Component(); ok {
		_spec.SetField(sessionitem.FieldComponent, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(sessionitem.FieldItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemID(); ok {
		_spec.AddField(sessionitem.FieldItemID, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionItemUpdateOne is the builder for updating a single SessionItem entity.
type SessionItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionItemMutation
}

// SetSessionDay sets the "session_day" field.
func (_u *SessionItemUpdateOne) SetSessionDay(v int) *SessionItemUpdateOne {
	_u.mutation.ResetSessionDay()
	_u.mutation.SetSessionDay(v)
	return _u
}

// SetNillableSessionDay sets the "session_day" field if the given value is not nil.
func (_u *SessionItemUpdateOne) SetNillableSessionDay(v *int) *SessionItemUpdateOne {
	if v != nil {
		_u.SetSessionDay(*v)
	}
	return _u
}

// AddSessionDay adds value to the "session_day" field.
func (_u *SessionItemUpdateOne) AddSessionDay(v int) *SessionItemUpdateOne {
	_u.mutation.AddSessionDay(v)
	return _u
}

// SetComponent sets the "component" field.
func (_u *SessionItemUpdateOne) SetComponent(v sessionitem.Component) *SessionItemUpdateOne {
	_u.mutation.SetComponent(v)
	return _u
}

// SetNillableComponent sets the "component" field if the given value is not nil.
func (_u *SessionItemUpdateOne) SetNillableComponent(v *sessionitem.Component) *SessionItemUpdateOne {
	if v != nil {
		_u.SetComponent(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *SessionItemUpdateOne) SetItemID(v int) *SessionItemUpdateOne {
	_u.mutation.ResetItemID()
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *SessionItemUpdateOne) SetNillableItemID(v *int) *SessionItemUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// AddItemID adds value to the "item_id" field.
func (_u *SessionItemUpdateOne) AddItemID(v int) *SessionItemUpdateOne {
	_u.mutation.AddItemID(v)
	return _u
}

// Mutation returns the SessionItemMutation object of the builder.
func (_u *SessionItemUpdateOne) Mutation() *SessionItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionItemUpdate builder.
func (_u *SessionItemUpdateOne) Where(ps ...predicate.SessionItem) *SessionItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionItemUpdateOne) Select(field string, fields ...string) *SessionItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionItem entity.
func (_u *SessionItemUpdateOne) Save(ctx context.Context) (*SessionItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionItemUpdateOne) SaveX(ctx context.Context) *SessionItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionItemUpdateOne) check() error {
	if v, ok := _u.mutation.SessionDay(); ok {
		if err := sessionitem.SessionDayValidator(v); err != nil {
			return &ValidationError{Name: "session_day", err: fmt.Errorf(`ent: validator failed for field "SessionItem.session_day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Component(); ok {
		if err := sessionitem.ComponentValidator(v); err != nil {
			return &ValidationError{Name: "component", err: fmt.Errorf(`ent: validator failed for field "SessionItem.component": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionItemUpdateOne) sqlSave(ctx context.Context) (_node *SessionItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionitem.Table, sessionitem.Columns, sqlgraph.NewFieldSpec(sessionitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionitem.FieldID)
		for _, f := range fields {
			if !sessionitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionitem.FieldID {
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
	if value, ok := _u.mutation.SessionDay(); ok {
		_spec.SetField(sessionitem.FieldSessionDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionDay(); ok {
		_spec.AddField(sessionitem.FieldSessionDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Component(); ok {
		_spec.SetField(sessionitem.FieldComponent, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(sessionitem.FieldItemID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemID(); ok {
		_spec.AddField(sessionitem.FieldItemID, field.TypeInt, value)
	}
	_node = &SessionItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
