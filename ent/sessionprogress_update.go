// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examprep/ent/predicate"
	"github.com/abhisek/examprep/ent/sessionprogress"
)

// SessionProgressUpdate is the builder for updating SessionProgress entities.
type SessionProgressUpdate struct {
	config
	hooks    []Hook
	mutation *SessionProgressMutation
}

// Where appends a list predicates to the SessionProgressUpdate builder.
func (_u *SessionProgressUpdate) Where(ps ...predicate.SessionProgress) *SessionProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionDay sets the "session_day" field.
func (_u *SessionProgressUpdate) SetSessionDay(v int) *SessionProgressUpdate {
	_u.mutation.ResetSessionDay()
	_u.mutation.SetSessionDay(v)
	return _u
}

// SetNillableSessionDay sets the "session_day" field if the given value is not nil.
func (_u *SessionProgressUpdate) SetNillableSessionDay(v *int) *SessionProgressUpdate {
	if v != nil {
		_u.SetSessionDay(*v)
	}
	return _u
}

// AddSessionDay adds value to the "session_day" field.
func (_u *SessionProgressUpdate) AddSessionDay(v int) *SessionProgressUpdate {
	_u.mutation.AddSessionDay(v)
	return _u
}

// SetCalendarDate sets the "calendar_date" field.
func (_u *SessionProgressUpdate) SetCalendarDate(v time.Time) *SessionProgressUpdate {
	_u.mutation.SetCalendarDate(v)
	return _u
}

// SetNillableCalendarDate sets the "calendar_date" field if the given value is not nil.
func (_u *SessionProgressUpdate) SetNillableCalendarDate(v *time.Time) *SessionProgressUpdate {
	if v != nil {
		_u.SetCalendarDate(*v)
	}
	return _u
}

// SetReadingDone sets the "reading_done" field.
func (_u *SessionProgressUpdate) SetReadingDone(v bool) *SessionProgressUpdate {
	_u.mutation.SetReadingDone(v)
	return _u
}

// SetNillableReadingDone sets the "reading_done" field if the given value is not nil.
func (_u *SessionProgressUpdate) SetNillableReadingDone(v *bool) *SessionProgressUpdate {
	if v != nil {
		_u.SetReadingDone(*v)
	}
	return _u
}

// SetFlashcardsDone sets the "flashcards_done" field.
func (_u *SessionProgressUpdate) SetFlashcardsDone(v bool) *SessionProgressUpdate {
	_u.mutation.SetFlashcardsDone(v)
	return _u
}

// SetNillableFlashcardsDone sets the "flashcards_done" field if the given value is not nil.
func (_u *SessionProgressUpdate) SetNillableFlashcardsDone(v *bool) *SessionProgressUpdate {
	if v != nil {
		_u.SetFlashcardsDone(*v)
	}
	return _u
}

// SetQuizDone sets the "quiz_done" field.
func (_u *SessionProgressUpdate) SetQuizDone(v bool) *SessionProgressUpdate {
	_u.mutation.SetQuizDone(v)
	return _u
}

// SetNillableQuizDone sets the "quiz_done" field if the given value is not nil.
func (_u *SessionProgressUpdate) SetNillableQuizDone(v *bool) *SessionProgressUpdate {
	if v != nil {
		_u.SetQuizDone(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionProgressUpdate) SetCompletedAt(v time.Time) *SessionProgressUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionProgressUpdate) SetNillableCompletedAt(v *time.Time) *SessionProgressUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionProgressUpdate) ClearCompletedAt() *SessionProgressUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the SessionProgressMutation object of the builder.
func (_u *SessionProgressUpdate) Mutation() *SessionProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionProgressUpdate) check() error {
	if v, ok := _u.mutation.SessionDay(); ok {
		if err := sessionprogress.SessionDayValidator(v); err != nil {
			return &ValidationError{Name: "session_day", err: fmt.Errorf(`ent: validator failed for field "SessionProgress.session_day": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionprogress.Table, sessionprogress.Columns, sqlgraph.NewFieldSpec(sessionprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionDay(); ok {
		_spec.SetField(sessionprogress.FieldSessionDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionDay(); ok {
		_spec.AddField(sessionprogress.FieldSessionDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CalendarDate(); ok {
		_spec.SetField(sessionprogress.FieldCalendarDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReadingDone(); ok {
		_spec.SetField(sessionprogress.FieldReadingDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FlashcardsDone(); ok {
		_spec.SetField(sessionprogress.FieldFlashcardsDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuizDone(); ok {
		_spec.SetField(sessionprogress.FieldQuizDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sessionprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sessionprogress.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionProgressUpdateOne is the builder for updating a single SessionProgress entity.
type SessionProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionProgressMutation
}

// SetSessionDay sets the "session_day" field.
func (_u *SessionProgressUpdateOne) SetSessionDay(v int) *SessionProgressUpdateOne {
	_u.mutation.ResetSessionDay()
	_u.mutation.SetSessionDay(v)
	return _u
}

// SetNillableSessionDay sets the "session_day" field if the given value is not nil.
func (_u *SessionProgressUpdateOne) SetNillableSessionDay(v *int) *SessionProgressUpdateOne {
	if v != nil {
		_u.SetSessionDay(*v)
	}
	return _u
}

// AddSessionDay adds value to the "session_day" field.
func (_u *SessionProgressUpdateOne) AddSessionDay(v int) *SessionProgressUpdateOne {
	_u.mutation.AddSessionDay(v)
	return _u
}

// SetCalendarDate sets the "calendar_date" field.
func (_u *SessionProgressUpdateOne) SetCalendarDate(v time.Time) *SessionProgressUpdateOne {
	_u.mutation.SetCalendarDate(v)
	return _u
}

// SetNillableCalendarDate sets the "calendar_date" field if the given value is not nil.
func (_u *SessionProgressUpdateOne) SetNillableCalendarDate(v *time.Time) *SessionProgressUpdateOne {
	if v != nil {
		_u.SetCalendarDate(*v)
	}
	return _u
}

// SetReadingDone sets the "reading_done" field.
func (_u *SessionProgressUpdateOne) SetReadingDone(v bool) *SessionProgressUpdateOne {
	_u.mutation.SetReadingDone(v)
	return _u
}

// SetNillableReadingDone sets the "reading_done" field if the given value is not nil.
func (_u *SessionProgressUpdateOne) SetNillableReadingDone(v *bool) *SessionProgressUpdateOne {
	if v != nil {
		_u.SetReadingDone(*v)
	}
	return _u
}

// SetFlashcardsDone sets the "flashcards_done" field.
func (_u *SessionProgressUpdateOne) SetFlashcardsDone(v bool) *SessionProgressUpdateOne {
	_u.mutation.SetFlashcardsDone(v)
	return _u
}

// SetNillableFlashcardsDone sets the "flashcards_done" field if the given value is not nil.
func (_u *SessionProgressUpdateOne) SetNillableFlashcardsDone(v *bool) *SessionProgressUpdateOne {
	if v != nil {
		_u.SetFlashcardsDone(*v)
	}
	return _u
}

// SetQuizDone sets the "quiz_done" field.
func (_u *SessionProgressUpdateOne) SetQuizDone(v bool) *SessionProgressUpdateOne {
	_u.mutation.SetQuizDone(v)
	return _u
}

// SetNillableQuizDone sets the "quiz_done" field if the given value is not nil.
func (_u *SessionProgressUpdateOne) SetNillableQuizDone(v *bool) *SessionProgressUpdateOne {
	if v != nil {
		_u.SetQuizDone(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionProgressUpdateOne) SetCompletedAt(v time.Time) *SessionProgressUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionProgressUpdateOne) SetNillableCompletedAt(v *time.Time) *SessionProgressUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionProgressUpdateOne) ClearCompletedAt() *SessionProgressUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the SessionProgressMutation object of the builder.
func (_u *SessionProgressUpdateOne) Mutation() *SessionProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionProgressUpdate builder.
func (_u *SessionProgressUpdateOne) Where(ps ...predicate.SessionProgress) *SessionProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionProgressUpdateOne) Select(field string, fields ...string) *SessionProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionProgress entity.
func (_u *SessionProgressUpdateOne) Save(ctx context.Context) (*SessionProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionProgressUpdateOne) SaveX(ctx context.Context) *SessionProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionProgressUpdateOne) check() error {
	if v, ok := _u.mutation.SessionDay(); ok {
		if err := sessionprogress.SessionDayValidator(v); err != nil {
			return &ValidationError{Name: "session_day", err: fmt.Errorf(`ent: validator failed for field "SessionProgress.session_day": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionProgressUpdateOne) sqlSave(ctx context.Context) (_node *SessionProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionprogress.Table, sessionprogress.Columns, sqlgraph.NewFieldSpec(sessionprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionprogress.FieldID)
		for _, f := range fields {
			if !sessionprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionprogress.FieldID {
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
		_spec.SetField(sessionprogress.FieldSessionDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionDay(); ok {
		_spec.AddField(sessionprogress.FieldSessionDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CalendarDate(); ok {
		_spec.SetField(sessionprogress.FieldCalendarDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReadingDone(); ok {
		_spec.SetField(sessionprogress.FieldReadingDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FlashcardsDone(); ok {
		_spec.SetField(sessionprogress.FieldFlashcardsDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuizDone(); ok {
		_spec.SetField(sessionprogress.FieldQuizDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sessionprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sessionprogress.FieldCompletedAt, field.TypeTime)
	}
	_node = &SessionProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
