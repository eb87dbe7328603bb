// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examprep/ent/sessionprogress"
)

// SessionProgressCreate is the builder for creating a SessionProgress entity.
type SessionProgressCreate struct {
	config
	mutation *SessionProgressMutation
	hooks    []Hook
}

// SetSessionDay sets the "session_day" field.
func (_c *SessionProgressCreate) SetSessionDay(v int) *SessionProgressCreate {
	_c.mutation.SetSessionDay(v)
	return _c
}

// SetCalendarDate sets the "calendar_date" field.
func (_c *SessionProgressCreate) SetCalendarDate(v time.Time) *SessionProgressCreate {
	_c.mutation.SetCalendarDate(v)
	return _c
}

// SetReadingDone sets the "reading_done" field.
func (_c *SessionProgressCreate) SetReadingDone(v bool) *SessionProgressCreate {
	_c.mutation.SetReadingDone(v)
	return _c
}

// SetNillableReadingDone sets the "reading_done" field if the given value is not nil.
func (_c *SessionProgressCreate) SetNillableReadingDone(v *bool) *SessionProgressCreate {
	if v != nil {
		_c.SetReadingDone(*v)
	}
	return _c
}

// SetFlashcardsDone sets the "flashcards_done" field.
func (_c *SessionProgressCreate) SetFlashcardsDone(v bool) *SessionProgressCreate {
	_c.mutation.SetFlashcardsDone(v)
	return _c
}

// SetNillableFlashcardsDone sets the "flashcards_done" field if the given value is not nil.
func (_c *SessionProgressCreate) SetNillableFlashcardsDone(v *bool) *SessionProgressCreate {
	if v != nil {
		_c.SetFlashcardsDone(*v)
	}
	return _c
}

// SetQuizDone sets the "quiz_done" field.
func (_c *SessionProgressCreate) SetQuizDone(v bool) *SessionProgressCreate {
	_c.mutation.SetQuizDone(v)
	return _c
}

// SetNillableQuizDone sets the "quiz_done" field if the given value is not nil.
func (_c *SessionProgressCreate) SetNillableQuizDone(v *bool) *SessionProgressCreate {
	if v != nil {
		_c.SetQuizDone(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SessionProgressCreate) SetCompletedAt(v time.Time) *SessionProgressCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SessionProgressCreate) SetNillableCompletedAt(v *time.Time) *SessionProgressCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the SessionProgressMutation object of the builder.
func (_c *SessionProgressCreate) Mutation() *SessionProgressMutation {
	return _c.mutation
}

// Save creates the SessionProgress in the database.
func (_c *SessionProgressCreate) Save(ctx context.Context) (*SessionProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionProgressCreate) SaveX(ctx context.Context) *SessionProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionProgressCreate) defaults() {
	if _, ok := _c.mutation.ReadingDone(); !ok {
		v := sessionprogress.DefaultReadingDone
		_c.mutation.SetReadingDone(v)
	}
	if _, ok := _c.mutation.FlashcardsDone(); !ok {
		v := sessionprogress.DefaultFlashcardsDone
		_c.mutation.SetFlashcardsDone(v)
	}
	if _, ok := _c.mutation.QuizDone(); !ok {
		v := sessionprogress.DefaultQuizDone
		_c.mutation.SetQuizDone(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionProgressCreate) check() error {
	if _, ok := _c.mutation.SessionDay(); !ok {
		return &ValidationError{Name: "session_day", err: errors.New(`ent: missing required field "SessionProgress.session_day"`)}
	}
	if v, ok := _c.mutation.SessionDay(); ok {
		if err := sessionprogress.SessionDayValidator(v); err != nil {
			return &ValidationError{Name: "session_day", err: fmt.Errorf(`ent: validator failed for field "SessionProgress.session_day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CalendarDate(); !ok {
		return &ValidationError{Name: "calendar_date", err: errors.New(`ent: missing required field "SessionProgress.calendar_date"`)}
	}
	if _, ok := _c.mutation.ReadingDone(); !ok {
		return &ValidationError{Name: "reading_done", err: errors.New(`ent: missing required field "SessionProgress.reading_done"`)}
	}
	if _, ok := _c.mutation.FlashcardsDone(); !ok {
		return &ValidationError{Name: "flashcards_done", err: errors.New(`ent: missing required field "SessionProgress.flashcards_done"`)}
	}
	if _, ok := _c.mutation.QuizDone(); !ok {
		return &ValidationError{Name: "quiz_done", err: errors.New(`ent: missing required field "SessionProgress.quiz_done"`)}
	}
	return nil
}

func (_c *SessionProgressCreate) sqlSave(ctx context.Context) (*SessionProgress, error) {
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

func (_c *SessionProgressCreate) createSpec() (*SessionProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionprogress.Table, sqlgraph.NewFieldSpec(sessionprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionDay(); ok {
		_spec.SetField(sessionprogress.FieldSessionDay, field.TypeInt, value)
		_node.SessionDay = value
	}
	if value, ok := _c.mutation.CalendarDate(); ok {
		_spec.SetField(sessionprogress.FieldCalendarDate, field.TypeTime, value)
		_node.CalendarDate = value
	}
	if value, ok := _c.mutation.ReadingDone(); ok {
		_spec.SetField(sessionprogress.FieldReadingDone, field.TypeBool, value)
		_node.ReadingDone = value
	}
	if value, ok := _c.mutation.FlashcardsDone(); ok {
		_spec.SetField(sessionprogress.FieldFlashcardsDone, field.TypeBool, value)
		_node.FlashcardsDone = value
	}
	if value, ok := _c.mutation.QuizDone(); ok {
		_spec.SetField(sessionprogress.FieldQuizDone, field.TypeBool, value)
		_node.QuizDone = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(sessionprogress.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// SessionProgressCreateBulk is the builder for creating many SessionProgress entities in bulk.
type SessionProgressCreateBulk struct {
	config
	err      error
	builders []*SessionProgressCreate
}

// Save creates the SessionProgress entities in the database.
func (_c *SessionProgressCreateBulk) Save(ctx context.Context) ([]*SessionProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionProgressMutation)
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
func (_c *SessionProgressCreateBulk) SaveX(ctx context.Context) []*SessionProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
