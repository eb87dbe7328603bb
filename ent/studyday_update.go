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
	"github.com/abhisek/examprep/ent/predicate"
	"github.com/abhisek/examprep/ent/studyday"
)

// StudyDayUpdate is the builder for updating StudyDay entities.
type StudyDayUpdate struct {
	config
	hooks    []Hook
	mutation *StudyDayMutation
}

// Where appends a list predicates to the StudyDayUpdate builder.
func (_u *StudyDayUpdate) Where(ps ...predicate.StudyDay) *StudyDayUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDayNumber sets the "day_number" field.
func (_u *StudyDayUpdate) SetDayNumber(v int) *StudyDayUpdate {
	_u.mutation.ResetDayNumber()
	_u.mutation.SetDayNumber(v)
	return _u
}

// SetNillableDayNumber sets the "day_number" field if the given value is not nil.
func (_u *StudyDayUpdate) SetNillableDayNumber(v *int) *StudyDayUpdate {
	if v != nil {
		_u.SetDayNumber(*v)
	}
	return _u
}

// AddDayNumber adds value to the "day_number" field.
func (_u *StudyDayUpdate) AddDayNumber(v int) *StudyDayUpdate {
	_u.mutation.AddDayNumber(v)
	return _u
}

// SetDomainID sets the "domain_id" field.
func (_u *StudyDayUpdate) SetDomainID(v int) *StudyDayUpdate {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *StudyDayUpdate) SetNillableDomainID(v *int) *StudyDayUpdate {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// ClearDomainID clears the value of the "domain_id" field.
func (_u *StudyDayUpdate) ClearDomainID() *StudyDayUpdate {
	_u.mutation.ClearDomainID()
	return _u
}

// SetReadingContent sets the "reading_content" field.
func (_u *StudyDayUpdate) SetReadingContent(v string) *StudyDayUpdate {
	_u.mutation.SetReadingContent(v)
	return _u
}

// SetNillableReadingContent sets the "reading_content" field if the given value is not nil.
func (_u *StudyDayUpdate) SetNillableReadingContent(v *string) *StudyDayUpdate {
	if v != nil {
		_u.SetReadingContent(*v)
	}
	return _u
}

// SetDomain sets the "domain" edge to the Domain entity.
func (_u *StudyDayUpdate) SetDomain(v *Domain) *StudyDayUpdate {
	return _u.SetDomainID(v.ID)
}

// Mutation returns the StudyDayMutation object of the builder.
func (_u *StudyDayUpdate) Mutation() *StudyDayMutation {
	return _u.mutation
}

// ClearDomain clears the "domain" edge to the Domain entity.
func (_u *StudyDayUpdate) ClearDomain() *StudyDayUpdate {
	_u.mutation.ClearDomain()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudyDayUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyDayUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudyDayUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyDayUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyDayUpdate) check() error {
	if v, ok := _u.mutation.DayNumber(); ok {
		if err := studyday.DayNumberValidator(v); err != nil {
			return &ValidationError{Name: "day_number", err: fmt.Errorf(`ent: validator failed for field "StudyDay.day_number": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyDayUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyday.Table, studyday.Columns, sqlgraph.NewFieldSpec(studyday.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DayNumber(); ok {
		_spec.SetField(studyday.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayNumber(); ok {
		_spec.AddField(studyday.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReadingContent(); ok {
		_spec.SetField(studyday.FieldReadingContent, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DomainIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyday.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudyDayUpdateOne is the builder for updating a single StudyDay entity.
type StudyDayUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyDayMutation
}

// SetDayNumber sets the "day_number" field.
func (_u *StudyDayUpdateOne) SetDayNumber(v int) *StudyDayUpdateOne {
	_u.mutation.ResetDayNumber()
	_u.mutation.SetDayNumber(v)
	return _u
}

// SetNillableDayNumber sets the "day_number" field if the given value is not nil.
func (_u *StudyDayUpdateOne) SetNillableDayNumber(v *int) *StudyDayUpdateOne {
	if v != nil {
		_u.SetDayNumber(*v)
	}
	return _u
}

// AddDayNumber adds value to the "day_number" field.
func (_u *StudyDayUpdateOne) AddDayNumber(v int) *StudyDayUpdateOne {
	_u.mutation.AddDayNumber(v)
	return _u
}

// SetDomainID sets the "domain_id" field.
func (_u *StudyDayUpdateOne) SetDomainID(v int) *StudyDayUpdateOne {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *StudyDayUpdateOne) SetNillableDomainID(v *int) *StudyDayUpdateOne {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// ClearDomainID clears the value of the "domain_id" field.
func (_u *StudyDayUpdateOne) ClearDomainID() *StudyDayUpdateOne {
	_u.mutation.ClearDomainID()
	return _u
}

// SetReadingContent sets the "reading_content" field.
func (_u *StudyDayUpdateOne) SetReadingContent(v string) *StudyDayUpdateOne {
	_u.mutation.SetReadingContent(v)
	return _u
}

// SetNillableReadingContent sets the "reading_content" field if the given value is not nil.
func (_u *StudyDayUpdateOne) SetNillableReadingContent(v *string) *StudyDayUpdateOne {
	if v != nil {
		_u.SetReadingContent(*v)
	}
	return _u
}

// SetDomain sets the "domain" edge to the Domain entity.
func (_u *StudyDayUpdateOne) SetDomain(v *Domain) *StudyDayUpdateOne {
	return _u.SetDomainID(v.ID)
}

// Mutation returns the StudyDayMutation object of the builder.
func (_u *StudyDayUpdateOne) Mutation() *StudyDayMutation {
	return _u.mutation
}

// ClearDomain clears the "domain" edge to the Domain entity.
func (_u *StudyDayUpdateOne) ClearDomain() *StudyDayUpdateOne {
	_u.mutation.ClearDomain()
	return _u
}

// Where appends a list predicates to the StudyDayUpdate builder.
func (_u *StudyDayUpdateOne) Where(ps ...predicate.StudyDay) *StudyDayUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudyDayUpdateOne) Select(field string, fields ...string) *StudyDayUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudyDay entity.
func (_u *StudyDayUpdateOne) Save(ctx context.Context) (*StudyDay, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyDayUpdateOne) SaveX(ctx context.Context) *StudyDay {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudyDayUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyDayUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyDayUpdateOne) check() error {
	if v, ok := _u.mutation.DayNumber(); ok {
		if err := studyday.DayNumberValidator(v); err != nil {
			return &ValidationError{Name: "day_number", err: fmt.Errorf(`ent: validator failed for field "StudyDay.day_number": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyDayUpdateOne) sqlSave(ctx context.Context) (_node *StudyDay, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyday.Table, studyday.Columns, sqlgraph.NewFieldSpec(studyday.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudyDay.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studyday.FieldID)
		for _, f := range fields {
			if !studyday.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studyday.FieldID {
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
	if value, ok := _u.mutation.DayNumber(); ok {
		_spec.SetField(studyday.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayNumber(); ok {
		_spec.AddField(studyday.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReadingContent(); ok {
		_spec.SetField(studyday.FieldReadingContent, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DomainIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StudyDay{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyday.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
