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
	"github.com/abhisek/examprep/ent/domain"
	"github.com/abhisek/examprep/ent/flashcard"
	"github.com/abhisek/examprep/ent/predicate"
	"github.com/abhisek/examprep/ent/reviewevent"
	"github.com/abhisek/examprep/ent/subtopic"
)

// FlashcardUpdate is the builder for updating Flashcard entities.
type FlashcardUpdate struct {
	config
	hooks    []Hook
	mutation *FlashcardMutation
}

// Where appends a list predicates to the FlashcardUpdate builder.
func (_u *FlashcardUpdate) Where(ps ...predicate.Flashcard) *FlashcardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDomainID sets the "domain_id" field.
func (_u *FlashcardUpdate) SetDomainID(v int) *FlashcardUpdate {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableDomainID(v *int) *FlashcardUpdate {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *FlashcardUpdate) SetSubtopicID(v int) *FlashcardUpdate {
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableSubtopicID(v *int) *FlashcardUpdate {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// ClearSubtopicID clears the value of the "subtopic_id" field.
func (_u *FlashcardUpdate) ClearSubtopicID() *FlashcardUpdate {
	_u.mutation.ClearSubtopicID()
	return _u
}

// SetFront sets the "front" field.
func (_u *FlashcardUpdate) SetFront(v string) *FlashcardUpdate {
	_u.mutation.SetFront(v)
	return _u
}

// SetNillableFront sets the "front" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableFront(v *string) *FlashcardUpdate {
	if v != nil {
		_u.SetFront(*v)
	}
	return _u
}

// SetBack sets the "back" field.
func (_u *FlashcardUpdate) SetBack(v string) *FlashcardUpdate {
	_u.mutation.SetBack(v)
	return _u
}

// SetNillableBack sets the "back" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableBack(v *string) *FlashcardUpdate {
	if v != nil {
		_u.SetBack(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *FlashcardUpdate) SetSource(v string) *FlashcardUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableSource(v *string) *FlashcardUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *FlashcardUpdate) SetEaseFactor(v float64) *FlashcardUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableEaseFactor(v *float64) *FlashcardUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *FlashcardUpdate) AddEaseFactor(v float64) *FlashcardUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetInterval sets the "interval" field.
func (_u *FlashcardUpdate) SetInterval(v int) *FlashcardUpdate {
	_u.mutation.ResetInterval()
	_u.mutation.SetInterval(v)
	return _u
}

// SetNillableInterval sets the "interval" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableInterval(v *int) *FlashcardUpdate {
	if v != nil {
		_u.SetInterval(*v)
	}
	return _u
}

// AddInterval adds value to the "interval" field.
func (_u *FlashcardUpdate) AddInterval(v int) *FlashcardUpdate {
	_u.mutation.AddInterval(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *FlashcardUpdate) SetRepetitions(v int) *FlashcardUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableRepetitions(v *int) *FlashcardUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *FlashcardUpdate) AddRepetitions(v int) *FlashcardUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *FlashcardUpdate) SetNextReview(v time.Time) *FlashcardUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *FlashcardUpdate) SetNillableNextReview(v *time.Time) *FlashcardUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// ClearNextReview clears the value of the "next_review" field.
func (_u *FlashcardUpdate) ClearNextReview() *FlashcardUpdate {
	_u.mutation.ClearNextReview()
	return _u
}

// SetDomain sets the "domain" edge to the Domain entity.
func (_u *FlashcardUpdate) SetDomain(v *Domain) *FlashcardUpdate {
	return _u.SetDomainID(v.ID)
}

// SetSubtopic sets the "subtopic" edge to the Subtopic entity.
func (_u *FlashcardUpdate) SetSubtopic(v *Subtopic) *FlashcardUpdate {
	return _u.SetSubtopicID(v.ID)
}

// AddReviewIDs adds the "reviews" edge to the ReviewEvent entity by IDs.
func (_u *FlashcardUpdate) AddReviewIDs(ids ...int) *FlashcardUpdate {
	_u.mutation.AddReviewIDs(ids...)
	return _u
}

// AddReviews adds the "reviews" edges to the ReviewEvent entity.
func (_u *FlashcardUpdate) AddReviews(v ...*ReviewEvent) *FlashcardUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewIDs(ids...)
}

// Mutation returns the FlashcardMutation object of the builder.
func (_u *FlashcardUpdate) Mutation() *FlashcardMutation {
	return _u.mutation
}

// ClearDomain clears the "domain" edge to the Domain entity.
func (_u *FlashcardUpdate) ClearDomain() *FlashcardUpdate {
	_u.mutation.ClearDomain()
	return _u
}

// ClearSubtopic clears the "subtopic" edge to the Subtopic entity.
func (_u *FlashcardUpdate) ClearSubtopic() *FlashcardUpdate {
	_u.mutation.ClearSubtopic()
	return _u
}

// ClearReviews clears all "reviews" edges to the ReviewEvent entity.
func (_u *FlashcardUpdate) ClearReviews() *FlashcardUpdate {
	_u.mutation.ClearReviews()
	return _u
}

// RemoveReviewIDs removes the "reviews" edge to ReviewEvent entities by IDs.
func (_u *FlashcardUpdate) RemoveReviewIDs(ids ...int) *FlashcardUpdate {
	_u.mutation.RemoveReviewIDs(ids...)
	return _u
}

// RemoveReviews removes "reviews" edges to ReviewEvent entities.
func (_u *FlashcardUpdate) RemoveReviews(v ...*ReviewEvent) *FlashcardUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlashcardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlashcardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlashcardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlashcardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlashcardUpdate) check() error {
	if v, ok := _u.mutation.Front(); ok {
		if err := flashcard.FrontValidator(v); err != nil {
			return &ValidationError{Name: "front", err: fmt.Errorf(`ent: validator failed for field "Flashcard.front": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Back(); ok {
		if err := flashcard.BackValidator(v); err != nil {
			return &ValidationError{Name: "back", err: fmt.Errorf(`ent: validator failed for field "Flashcard.back": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EaseFactor(); ok {
		if err := flashcard.EaseFactorValidator(v); err != nil {
			return &ValidationError{Name: "ease_factor", err: fmt.Errorf(`ent: validator failed for field "Flashcard.ease_factor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Interval(); ok {
		if err := flashcard.IntervalValidator(v); err != nil {
			return &ValidationError{Name: "interval", err: fmt.Errorf(`ent: validator failed for field "Flashcard.interval": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := flashcard.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "Flashcard.repetitions": %w`, err)}
		}
	}
	if _u.mutation.DomainCleared() && len(_u.mutation.DomainIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Flashcard.domain"`)
	}
	return nil
}

func (_u *FlashcardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flashcard.Table, flashcard.Columns, sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Front(); ok {
		_spec.SetField(flashcard.FieldFront, field.TypeString, value)
	}
	if value, ok := _u.mutation.Back(); ok {
		_spec.SetField(flashcard.FieldBack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(flashcard.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(flashcard.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(flashcard.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Interval(); ok {
		_spec.SetField(flashcard.FieldInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInterval(); ok {
		_spec.AddField(flashcard.FieldInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(flashcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(flashcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(flashcard.FieldNextReview, field.TypeTime, value)
	}
	if _u.mutation.NextReviewCleared() {
		_spec.ClearField(flashcard.FieldNextReview, field.TypeTime)
	}
	if _u.mutation.DomainCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DomainIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubtopicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubtopicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReviewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewsIDs(); len(nodes) > 0 && !_u.mutation.ReviewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flashcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlashcardUpdateOne is the builder for updating a single Flashcard entity.
type FlashcardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlashcardMutation
}

// SetDomainID sets the "domain_id" field.
func (_u *FlashcardUpdateOne) SetDomainID(v int) *FlashcardUpdateOne {
	_u.mutation.SetDomainID(v)
	return _u
}

// SetNillableDomainID sets the "domain_id" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableDomainID(v *int) *FlashcardUpdateOne {
	if v != nil {
		_u.SetDomainID(*v)
	}
	return _u
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *FlashcardUpdateOne) SetSubtopicID(v int) *FlashcardUpdateOne {
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableSubtopicID(v *int) *FlashcardUpdateOne {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// ClearSubtopicID clears the value of the "subtopic_id" field.
func (_u *FlashcardUpdateOne) ClearSubtopicID() *FlashcardUpdateOne {
	_u.mutation.ClearSubtopicID()
	return _u
}

// SetFront sets the "front" field.
func (_u *FlashcardUpdateOne) SetFront(v string) *FlashcardUpdateOne {
	_u.mutation.SetFront(v)
	return _u
}

// SetNillableFront sets the "front" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableFront(v *string) *FlashcardUpdateOne {
	if v != nil {
		_u.SetFront(*v)
	}
	return _u
}

// SetBack sets the "back" field.
func (_u *FlashcardUpdateOne) SetBack(v string) *FlashcardUpdateOne {
	_u.mutation.SetBack(v)
	return _u
}

// SetNillableBack sets the "back" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableBack(v *string) *FlashcardUpdateOne {
	if v != nil {
		_u.SetBack(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *FlashcardUpdateOne) SetSource(v string) *FlashcardUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableSource(v *string) *FlashcardUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *FlashcardUpdateOne) SetEaseFactor(v float64) *FlashcardUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableEaseFactor(v *float64) *FlashcardUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *FlashcardUpdateOne) AddEaseFactor(v float64) *FlashcardUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetInterval sets the "interval" field.
func (_u *FlashcardUpdateOne) SetInterval(v int) *FlashcardUpdateOne {
	_u.mutation.ResetInterval()
	_u.mutation.SetInterval(v)
	return _u
}

// SetNillableInterval sets the "interval" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableInterval(v *int) *FlashcardUpdateOne {
	if v != nil {
		_u.SetInterval(*v)
	}
	return _u
}

// AddInterval adds value to the "interval" field.
func (_u *FlashcardUpdateOne) AddInterval(v int) *FlashcardUpdateOne {
	_u.mutation.AddInterval(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *FlashcardUpdateOne) SetRepetitions(v int) *FlashcardUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableRepetitions(v *int) *FlashcardUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *FlashcardUpdateOne) AddRepetitions(v int) *FlashcardUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *FlashcardUpdateOne) SetNextReview(v time.Time) *FlashcardUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *FlashcardUpdateOne) SetNillableNextReview(v *time.Time) *FlashcardUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// ClearNextReview clears the value of the "next_review" field.
func (_u *FlashcardUpdateOne) ClearNextReview() *FlashcardUpdateOne {
	_u.mutation.ClearNextReview()
	return _u
}

// SetDomain sets the "domain" edge to the Domain entity.
func (_u *FlashcardUpdateOne) SetDomain(v *Domain) *FlashcardUpdateOne {
	return _u.SetDomainID(v.ID)
}

// SetSubtopic sets the "subtopic" edge to the Subtopic entity.
func (_u *FlashcardUpdateOne) SetSubtopic(v *Subtopic) *FlashcardUpdateOne {
	return _u.SetSubtopicID(v.ID)
}

// AddReviewIDs adds the "reviews" edge to the ReviewEvent entity by IDs.
func (_u *FlashcardUpdateOne) AddReviewIDs(ids ...int) *FlashcardUpdateOne {
	_u.mutation.AddReviewIDs(ids...)
	return _u
}

// AddReviews adds the "reviews" edges to the ReviewEvent entity.
func (_u *FlashcardUpdateOne) AddReviews(v ...*ReviewEvent) *FlashcardUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewIDs(ids...)
}

// Mutation returns the FlashcardMutation object of the builder.
func (_u *FlashcardUpdateOne) Mutation() *FlashcardMutation {
	return _u.mutation
}

// ClearDomain clears the "domain" edge to the Domain entity.
func (_u *FlashcardUpdateOne) ClearDomain() *FlashcardUpdateOne {
	_u.mutation.ClearDomain()
	return _u
}

// ClearSubtopic clears the "subtopic" edge to the Subtopic entity.
func (_u *FlashcardUpdateOne) ClearSubtopic() *FlashcardUpdateOne {
	_u.mutation.ClearSubtopic()
	return _u
}

// ClearReviews clears all "reviews" edges to the ReviewEvent entity.
func (_u *FlashcardUpdateOne) ClearReviews() *FlashcardUpdateOne {
	_u.mutation.ClearReviews()
	return _u
}

// RemoveReviewIDs removes the "reviews" edge to ReviewEvent entities by IDs.
func (_u *FlashcardUpdateOne) RemoveReviewIDs(ids ...int) *FlashcardUpdateOne {
	_u.mutation.RemoveReviewIDs(ids...)
	return _u
}

// RemoveReviews removes "reviews" edges to ReviewEvent entities.
func (_u *FlashcardUpdateOne) RemoveReviews(v ...*ReviewEvent) *FlashcardUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewIDs(ids...)
}

// Where appends a list predicates to the FlashcardUpdate builder.
func (_u *FlashcardUpdateOne) Where(ps ...predicate.Flashcard) *FlashcardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlashcardUpdateOne) Select(field string, fields ...string) *FlashcardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Flashcard entity.
func (_u *FlashcardUpdateOne) Save(ctx context.Context) (*Flashcard, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlashcardUpdateOne) SaveX(ctx context.Context) *Flashcard {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlashcardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlashcardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlashcardUpdateOne) check() error {
	if v, ok := _u.mutation.Front(); ok {
		if err := flashcard.FrontValidator(v); err != nil {
			return &ValidationError{Name: "front", err: fmt.Errorf(`ent: validator failed for field "Flashcard.front": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Back(); ok {
		if err := flashcard.BackValidator(v); err != nil {
			return &ValidationError{Name: "back", err: fmt.Errorf(`ent: validator failed for field "Flashcard.back": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EaseFactor(); ok {
		if err := flashcard.EaseFactorValidator(v); err != nil {
			return &ValidationError{Name: "ease_factor", err: fmt.Errorf(`ent: validator failed for field "Flashcard.ease_factor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Interval(); ok {
		if err := flashcard.IntervalValidator(v); err != nil {
			return &ValidationError{Name: "interval", err: fmt.Errorf(`ent: validator failed for field "Flashcard.interval": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := flashcard.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "Flashcard.repetitions": %w`, err)}
		}
	}
	if _u.mutation.DomainCleared() && len(_u.mutation.DomainIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Flashcard.domain"`)
	}
	return nil
}

func (_u *FlashcardUpdateOne) sqlSave(ctx context.Context) (_node *Flashcard, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flashcard.Table, flashcard.Columns, sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Flashcard.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flashcard.FieldID)
		for _, f := range fields {
			if !flashcard.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != flashcard.FieldID {
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
	if value, ok := _u.mutation.Front(); ok {
		_spec.SetField(flashcard.FieldFront, field.TypeString, value)
	}
	if value, ok := _u.mutation.Back(); ok {
		_spec.SetField(flashcard.FieldBack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(flashcard.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(flashcard.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(flashcard.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Interval(); ok {
		_spec.SetField(flashcard.FieldInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInterval(); ok {
		_spec.AddField(flashcard.FieldInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(flashcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(flashcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(flashcard.FieldNextReview, field.TypeTime, value)
	}
	if _u.mutation.NextReviewCleared() {
		_spec.ClearField(flashcard.FieldNextReview, field.TypeTime)
	}
	if _u.mutation.DomainCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DomainIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubtopicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubtopicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReviewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewsIDs(); len(nodes) > 0 && !_u.mutation.ReviewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Flashcard{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flashcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
