// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examprep/ent/answerevent"
	"github.com/abhisek/examprep/ent/domain"
	"github.com/abhisek/examprep/ent/flashcard"
	"github.com/abhisek/examprep/ent/predicate"
	"github.com/abhisek/examprep/ent/quizquestion"
	"github.com/abhisek/examprep/ent/reviewevent"
	"github.com/abhisek/examprep/ent/sessionitem"
	"github.com/abhisek/examprep/ent/sessionprogress"
	"github.com/abhisek/examprep/ent/studyday"
	"github.com/abhisek/examprep/ent/subtopic"
	"github.com/abhisek/examprep/ent/usersetting"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswerEvent     = "AnswerEvent"
	TypeDomain          = "Domain"
	TypeFlashcard       = "Flashcard"
	TypeQuizQuestion    = "QuizQuestion"
	TypeReviewEvent     = "ReviewEvent"
	TypeSessionItem     = "SessionItem"
	TypeSessionProgress = "SessionProgress"
	TypeStudyDay        = "StudyDay"
	TypeSubtopic        = "Subtopic"
	TypeUserSetting     = "UserSetting"
)

// AnswerEventMutation represents an operation that mutates the AnswerEvent nodes in the graph.
type AnswerEventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	sequence        *int64
	addsequence     *int64
	timestamp       *time.Time
	batch_id        *string
	user_answer     *string
	correct         *bool
	clearedFields   map[string]struct{}
	question        *int
	clearedquestion bool
	done            bool
	oldValue        func(context.Context) (*AnswerEvent, error)
	predicates      []predicate.AnswerEvent
}

var _ ent.Mutation = (*AnswerEventMutation)(nil)

// answereventOption allows management of the mutation configuration using functional options.
type answereventOption func(*AnswerEventMutation)

// newAnswerEventMutation creates new mutation for the AnswerEvent entity.
func newAnswerEventMutation(c config, op Op, opts ...answereventOption) *AnswerEventMutation {
	m := &AnswerEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswerEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerEventID sets the ID field of the mutation.
func withAnswerEventID(id int) answereventOption {
	return func(m *AnswerEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AnswerEvent
		)
		m.oldValue = func(ctx context.Context) (*AnswerEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnswerEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswerEvent sets the old AnswerEvent of the mutation.
func withAnswerEvent(node *AnswerEvent) answereventOption {
	return func(m *AnswerEventMutation) {
		m.oldValue = func(context.Context) (*AnswerEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnswerEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AnswerEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AnswerEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AnswerEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AnswerEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AnswerEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AnswerEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AnswerEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AnswerEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetBatchID sets the "batch_id" field.
func (m *AnswerEventMutation) SetBatchID(s string) {
	m.batch_id = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *AnswerEventMutation) BatchID() (r string, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *AnswerEventMutation) ResetBatchID() {
	m.batch_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AnswerEventMutation) SetQuestionID(i int) {
	m.question = &i
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AnswerEventMutation) QuestionID() (r int, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldQuestionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AnswerEventMutation) ResetQuestionID() {
	m.question = nil
}

// SetUserAnswer sets the "user_answer" field.
func (m *AnswerEventMutation) SetUserAnswer(s string) {
	m.user_answer = &s
}

// UserAnswer returns the value of the "user_answer" field in the mutation.
func (m *AnswerEventMutation) UserAnswer() (r string, exists bool) {
	v := m.user_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAnswer returns the old "user_answer" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldUserAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAnswer: %w", err)
	}
	return oldValue.UserAnswer, nil
}

// ResetUserAnswer resets all changes to the "user_answer" field.
func (m *AnswerEventMutation) ResetUserAnswer() {
	m.user_answer = nil
}

// SetCorrect sets the "correct" field.
func (m *AnswerEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AnswerEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AnswerEventMutation) ResetCorrect() {
	m.correct = nil
}

// ClearQuestion clears the "question" edge to the QuizQuestion entity.
func (m *AnswerEventMutation) ClearQuestion() {
	m.clearedquestion = true
	m.clearedFields[answerevent.FieldQuestionID] = struct{}{}
}

// QuestionCleared reports if the "question" edge to the QuizQuestion entity was cleared.
func (m *AnswerEventMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *AnswerEventMutation) QuestionIDs() (ids []int) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *AnswerEventMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// Where appends a list predicates to the AnswerEventMutation builder.
func (m *AnswerEventMutation) Where(ps ...predicate.AnswerEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnswerEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnswerEvent).
func (m *AnswerEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, answerevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, answerevent.FieldTimestamp)
	}
	if m.batch_id != nil {
		fields = append(fields, answerevent.FieldBatchID)
	}
	if m.question != nil {
		fields = append(fields, answerevent.FieldQuestionID)
	}
	if m.user_answer != nil {
		fields = append(fields, answerevent.FieldUserAnswer)
	}
	if m.correct != nil {
		fields = append(fields, answerevent.FieldCorrect)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldSequence:
		return m.Sequence()
	case answerevent.FieldTimestamp:
		return m.Timestamp()
	case answerevent.FieldBatchID:
		return m.BatchID()
	case answerevent.FieldQuestionID:
		return m.QuestionID()
	case answerevent.FieldUserAnswer:
		return m.UserAnswer()
	case answerevent.FieldCorrect:
		return m.Correct()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answerevent.FieldSequence:
		return m.OldSequence(ctx)
	case answerevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case answerevent.FieldBatchID:
		return m.OldBatchID(ctx)
	case answerevent.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case answerevent.FieldUserAnswer:
		return m.OldUserAnswer(ctx)
	case answerevent.FieldCorrect:
		return m.OldCorrect(ctx)
	}
	return nil, fmt.Errorf("unknown AnswerEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case answerevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case answerevent.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case answerevent.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case answerevent.FieldUserAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAnswer(v)
		return nil
	case answerevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, answerevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnswerEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerEventMutation) ResetField(name string) error {
	switch name {
	case answerevent.FieldSequence:
		m.ResetSequence()
		return nil
	case answerevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case answerevent.FieldBatchID:
		m.ResetBatchID()
		return nil
	case answerevent.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case answerevent.FieldUserAnswer:
		m.ResetUserAnswer()
		return nil
	case answerevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.question != nil {
		edges = append(edges, answerevent.EdgeQuestion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case answerevent.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedquestion {
		edges = append(edges, answerevent.EdgeQuestion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerEventMutation) EdgeCleared(name string) bool {
	switch name {
	case answerevent.EdgeQuestion:
		return m.clearedquestion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerEventMutation) ClearEdge(name string) error {
	switch name {
	case answerevent.EdgeQuestion:
		m.ClearQuestion()
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerEventMutation) ResetEdge(name string) error {
	switch name {
	case answerevent.EdgeQuestion:
		m.ResetQuestion()
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent edge %s", name)
}

// DomainMutation represents an operation that mutates the Domain nodes in the graph.
type DomainMutation struct {
	config
	op                Op
	typ               string
	id                *int
	name              *string
	section_number    *int
	addsection_number *int
	exam_weight       *float64
	addexam_weight    *float64
	description       *string
	clearedFields     map[string]struct{}
	subtopics         map[int]struct{}
	removedsubtopics  map[int]struct{}
	clearedsubtopics  bool
	flashcards        map[int]struct{}
	removedflashcards map[int]struct{}
	clearedflashcards bool
	questions         map[int]struct{}
	removedquestions  map[int]struct{}
	clearedquestions  bool
	study_days        map[int]struct{}
	removedstudy_days map[int]struct{}
	clearedstudy_days bool
	done              bool
	oldValue          func(context.Context) (*Domain, error)
	predicates        []predicate.Domain
}

var _ ent.Mutation = (*DomainMutation)(nil)

// domainOption allows management of the mutation configuration using functional options.
type domainOption func(*DomainMutation)

// newDomainMutation creates new mutation for the Domain entity.
func newDomainMutation(c config, op Op, opts ...domainOption) *DomainMutation {
	m := &DomainMutation{
		config:        c,
		op:            op,
		typ:           TypeDomain,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDomainID sets the ID field of the mutation.
func withDomainID(id int) domainOption {
	return func(m *DomainMutation) {
		var (
			err   error
			once  sync.Once
			value *Domain
		)
		m.oldValue = func(ctx context.Context) (*Domain, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Domain.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDomain sets the old Domain of the mutation.
func withDomain(node *Domain) domainOption {
	return func(m *DomainMutation) {
		m.oldValue = func(context.Context) (*Domain, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DomainMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DomainMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DomainMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DomainMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Domain.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *DomainMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DomainMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Domain entity.
// If the Domain object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DomainMutation) ResetName() {
	m.name = nil
}

// SetSectionNumber sets the "section_number" field.
func (m *DomainMutation) SetSectionNumber(i int) {
	m.section_number = &i
	m.addsection_number = nil
}

// SectionNumber returns the value of the "section_number" field in the mutation.
func (m *DomainMutation) SectionNumber() (r int, exists bool) {
	v := m.section_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionNumber returns the old "section_number" field's value of the Domain entity.
// If the Domain object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainMutation) OldSectionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionNumber: %w", err)
	}
	return oldValue.SectionNumber, nil
}

// AddSectionNumber adds i to the "section_number" field.
func (m *DomainMutation) AddSectionNumber(i int) {
	if m.addsection_number != nil {
		*m.addsection_number += i
	} else {
		m.addsection_number = &i
	}
}

// AddedSectionNumber returns the value that was added to the "section_number" field in this mutation.
func (m *DomainMutation) AddedSectionNumber() (r int, exists bool) {
	v := m.addsection_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSectionNumber resets all changes to the "section_number" field.
func (m *DomainMutation) ResetSectionNumber() {
	m.section_number = nil
	m.addsection_number = nil
}

// SetExamWeight sets the "exam_weight" field.
func (m *DomainMutation) SetExamWeight(f float64) {
	m.exam_weight = &f
	m.addexam_weight = nil
}

// ExamWeight returns the value of the "exam_weight" field in the mutation.
func (m *DomainMutation) ExamWeight() (r float64, exists bool) {
	v := m.exam_weight
	if v == nil {
		return
	}
	return *v, true
}

// OldExamWeight returns the old "exam_weight" field's value of the Domain entity.
// If the Domain object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainMutation) OldExamWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamWeight: %w", err)
	}
	return oldValue.ExamWeight, nil
}

// AddExamWeight adds f to the "exam_weight" field.
func (m *DomainMutation) AddExamWeight(f float64) {
	if m.addexam_weight != nil {
		*m.addexam_weight += f
	} else {
		m.addexam_weight = &f
	}
}

// AddedExamWeight returns the value that was added to the "exam_weight" field in this mutation.
func (m *DomainMutation) AddedExamWeight() (r float64, exists bool) {
	v := m.addexam_weight
	if v == nil {
		return
	}
	return *v, true
}

// ResetExamWeight resets all changes to the "exam_weight" field.
func (m *DomainMutation) ResetExamWeight() {
	m.exam_weight = nil
	m.addexam_weight = nil
}

// SetDescription sets the "description" field.
func (m *DomainMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *DomainMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Domain entity.
// If the Domain object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DomainMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *DomainMutation) ResetDescription() {
	m.description = nil
}

// AddSubtopicIDs adds the "subtopics" edge to the Subtopic entity by ids.
func (m *DomainMutation) AddSubtopicIDs(ids ...int) {
	if m.subtopics == nil {
		m.subtopics = make(map[int]struct{})
	}
	for i := range ids {
		m.subtopics[ids[i]] = struct{}{}
	}
}

// ClearSubtopics clears the "subtopics" edge to the Subtopic entity.
func (m *DomainMutation) ClearSubtopics() {
	m.clearedsubtopics = true
}

// SubtopicsCleared reports if the "subtopics" edge to the Subtopic entity was cleared.
func (m *DomainMutation) SubtopicsCleared() bool {
	return m.clearedsubtopics
}

// RemoveSubtopicIDs removes the "subtopics" edge to the Subtopic entity by IDs.
func (m *DomainMutation) RemoveSubtopicIDs(ids ...int) {
	if m.removedsubtopics == nil {
		m.removedsubtopics = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.subtopics, ids[i])
		m.removedsubtopics[ids[i]] = struct{}{}
	}
}

// RemovedSubtopics returns the removed IDs of the "subtopics" edge to the Subtopic entity.
func (m *DomainMutation) RemovedSubtopicsIDs() (ids []int) {
	for id := range m.removedsubtopics {
		ids = append(ids, id)
	}
	return
}

// SubtopicsIDs returns the "subtopics" edge IDs in the mutation.
func (m *DomainMutation) SubtopicsIDs() (ids []int) {
	for id := range m.subtopics {
		ids = append(ids, id)
	}
	return
}

// ResetSubtopics resets all changes to the "subtopics" edge.
func (m *DomainMutation) ResetSubtopics() {
	m.subtopics = nil
	m.clearedsubtopics = false
	m.removedsubtopics = nil
}

// AddFlashcardIDs adds the "flashcards" edge to the Flashcard entity by ids.
func (m *DomainMutation) AddFlashcardIDs(ids ...int) {
	if m.flashcards == nil {
		m.flashcards = make(map[int]struct{})
	}
	for i := range ids {
		m.flashcards[ids[i]] = struct{}{}
	}
}

// ClearFlashcards clears the "flashcards" edge to the Flashcard entity.
func (m *DomainMutation) ClearFlashcards() {
	m.clearedflashcards = true
}

// FlashcardsCleared reports if the "flashcards" edge to the Flashcard entity was cleared.
func (m *DomainMutation) FlashcardsCleared() bool {
	return m.clearedflashcards
}

// RemoveFlashcardIDs removes the "flashcards" edge to the Flashcard entity by IDs.
func (m *DomainMutation) RemoveFlashcardIDs(ids ...int) {
	if m.removedflashcards == nil {
		m.removedflashcards = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.flashcards, ids[i])
		m.removedflashcards[ids[i]] = struct{}{}
	}
}

// RemovedFlashcards returns the removed IDs of the "flashcards" edge to the Flashcard entity.
func (m *DomainMutation) RemovedFlashcardsIDs() (ids []int) {
	for id := range m.removedflashcards {
		ids = append(ids, id)
	}
	return
}

// FlashcardsIDs returns the "flashcards" edge IDs in the mutation.
func (m *DomainMutation) FlashcardsIDs() (ids []int) {
	for id := range m.flashcards {
		ids = append(ids, id)
	}
	return
}

// ResetFlashcards resets all changes to the "flashcards" edge.
func (m *DomainMutation) ResetFlashcards() {
	m.flashcards = nil
	m.clearedflashcards = false
	m.removedflashcards = nil
}

// AddQuestionIDs adds the "questions" edge to the QuizQuestion entity by ids.
func (m *DomainMutation) AddQuestionIDs(ids ...int) {
	if m.questions == nil {
		m.questions = make(map[int]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the QuizQuestion entity.
func (m *DomainMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the QuizQuestion entity was cleared.
func (m *DomainMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the QuizQuestion entity by IDs.
func (m *DomainMutation) RemoveQuestionIDs(ids ...int) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the QuizQuestion entity.
func (m *DomainMutation) RemovedQuestionsIDs() (ids []int) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *DomainMutation) QuestionsIDs() (ids []int) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *DomainMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// AddStudyDayIDs adds the "study_days" edge to the StudyDay entity by ids.
func (m *DomainMutation) AddStudyDayIDs(ids ...int) {
	if m.study_days == nil {
		m.study_days = make(map[int]struct{})
	}
	for i := range ids {
		m.study_days[ids[i]] = struct{}{}
	}
}

// ClearStudyDays clears the "study_days" edge to the StudyDay entity.
func (m *DomainMutation) ClearStudyDays() {
	m.clearedstudy_days = true
}

// StudyDaysCleared reports if the "study_days" edge to the StudyDay entity was cleared.
func (m *DomainMutation) StudyDaysCleared() bool {
	return m.clearedstudy_days
}

// RemoveStudyDayIDs removes the "study_days" edge to the StudyDay entity by IDs.
func (m *DomainMutation) RemoveStudyDayIDs(ids ...int) {
	if m.removedstudy_days == nil {
		m.removedstudy_days = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.study_days, ids[i])
		m.removedstudy_days[ids[i]] = struct{}{}
	}
}

// RemovedStudyDays returns the removed IDs of the "study_days" edge to the StudyDay entity.
func (m *DomainMutation) RemovedStudyDaysIDs() (ids []int) {
	for id := range m.removedstudy_days {
		ids = append(ids, id)
	}
	return
}

// StudyDaysIDs returns the "study_days" edge IDs in the mutation.
func (m *DomainMutation) StudyDaysIDs() (ids []int) {
	for id := range m.study_days {
		ids = append(ids, id)
	}
	return
}

// ResetStudyDays resets all changes to the "study_days" edge.
func (m *DomainMutation) ResetStudyDays() {
	m.study_days = nil
	m.clearedstudy_days = false
	m.removedstudy_days = nil
}

// Where appends a list predicates to the DomainMutation builder.
func (m *DomainMutation) Where(ps ...predicate.Domain) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DomainMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DomainMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Domain, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DomainMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DomainMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Domain).
func (m *DomainMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DomainMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, domain.FieldName)
	}
	if m.section_number != nil {
		fields = append(fields, domain.FieldSectionNumber)
	}
	if m.exam_weight != nil {
		fields = append(fields, domain.FieldExamWeight)
	}
	if m.description != nil {
		fields = append(fields, domain.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DomainMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case domain.FieldName:
		return m.Name()
	case domain.FieldSectionNumber:
		return m.SectionNumber()
	case domain.FieldExamWeight:
		return m.ExamWeight()
	case domain.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DomainMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case domain.FieldName:
		return m.OldName(ctx)
	case domain.FieldSectionNumber:
		return m.OldSectionNumber(ctx)
	case domain.FieldExamWeight:
		return m.OldExamWeight(ctx)
	case domain.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown Domain field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainMutation) SetField(name string, value ent.Value) error {
	switch name {
	case domain.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case domain.FieldSectionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionNumber(v)
		return nil
	case domain.FieldExamWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamWeight(v)
		return nil
	case domain.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown Domain field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DomainMutation) AddedFields() []string {
	var fields []string
	if m.addsection_number != nil {
		fields = append(fields, domain.FieldSectionNumber)
	}
	if m.addexam_weight != nil {
		fields = append(fields, domain.FieldExamWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DomainMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case domain.FieldSectionNumber:
		return m.AddedSectionNumber()
	case domain.FieldExamWeight:
		return m.AddedExamWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DomainMutation) AddField(name string, value ent.Value) error {
	switch name {
	case domain.FieldSectionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSectionNumber(v)
		return nil
	case domain.FieldExamWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExamWeight(v)
		return nil
	}
	return fmt.Errorf("unknown Domain numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DomainMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DomainMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DomainMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Domain nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DomainMutation) ResetField(name string) error {
	switch name {
	case domain.FieldName:
		m.ResetName()
		return nil
	case domain.FieldSectionNumber:
		m.ResetSectionNumber()
		return nil
	case domain.FieldExamWeight:
		m.ResetExamWeight()
		return nil
	case domain.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown Domain field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DomainMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.subtopics != nil {
		edges = append(edges, domain.EdgeSubtopics)
	}
	if m.flashcards != nil {
		edges = append(edges, domain.EdgeFlashcards)
	}
	if m.questions != nil {
		edges = append(edges, domain.EdgeQuestions)
	}
	if m.study_days != nil {
		edges = append(edges, domain.EdgeStudyDays)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DomainMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case domain.EdgeSubtopics:
		ids := make([]ent.Value, 0, len(m.subtopics))
		for id := range m.subtopics {
			ids = append(ids, id)
		}
		return ids
	case domain.EdgeFlashcards:
		ids := make([]ent.Value, 0, len(m.flashcards))
		for id := range m.flashcards {
			ids = append(ids, id)
		}
		return ids
	case domain.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	case domain.EdgeStudyDays:
		ids := make([]ent.Value, 0, len(m.study_days))
		for id := range m.study_days {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DomainMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedsubtopics != nil {
		edges = append(edges, domain.EdgeSubtopics)
	}
	if m.removedflashcards != nil {
		edges = append(edges, domain.EdgeFlashcards)
	}
	if m.removedquestions != nil {
		edges = append(edges, domain.EdgeQuestions)
	}
	if m.removedstudy_days != nil {
		edges = append(edges, domain.EdgeStudyDays)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DomainMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case domain.EdgeSubtopics:
		ids := make([]ent.Value, 0, len(m.removedsubtopics))
		for id := range m.removedsubtopics {
			ids = append(ids, id)
		}
		return ids
	case domain.EdgeFlashcards:
		ids := make([]ent.Value, 0, len(m.removedflashcards))
		for id := range m.removedflashcards {
			ids = append(ids, id)
		}
		return ids
	case domain.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	case domain.EdgeStudyDays:
		ids := make([]ent.Value, 0, len(m.removedstudy_days))
		for id := range m.removedstudy_days {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DomainMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedsubtopics {
		edges = append(edges, domain.EdgeSubtopics)
	}
	if m.clearedflashcards {
		edges = append(edges, domain.EdgeFlashcards)
	}
	if m.clearedquestions {
		edges = append(edges, domain.EdgeQuestions)
	}
	if m.clearedstudy_days {
		edges = append(edges, domain.EdgeStudyDays)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DomainMutation) EdgeCleared(name string) bool {
	switch name {
	case domain.EdgeSubtopics:
		return m.clearedsubtopics
	case domain.EdgeFlashcards:
		return m.clearedflashcards
	case domain.EdgeQuestions:
		return m.clearedquestions
	case domain.EdgeStudyDays:
		return m.clearedstudy_days
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DomainMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Domain unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DomainMutation) ResetEdge(name string) error {
	switch name {
	case domain.EdgeSubtopics:
		m.ResetSubtopics()
		return nil
	case domain.EdgeFlashcards:
		m.ResetFlashcards()
		return nil
	case domain.EdgeQuestions:
		m.ResetQuestions()
		return nil
	case domain.EdgeStudyDays:
		m.ResetStudyDays()
		return nil
	}
	return fmt.Errorf("unknown Domain edge %s", name)
}

// FlashcardMutation represents an operation that mutates the Flashcard nodes in the graph.
type FlashcardMutation struct {
	config
	op              Op
	typ             string
	id              *int
	front           *string
	back            *string
	source          *string
	ease_factor     *float64
	addease_factor  *float64
	interval        *int
	addinterval     *int
	repetitions     *int
	addrepetitions  *int
	next_review     *time.Time
	clearedFields   map[string]struct{}
	domain          *int
	cleareddomain   bool
	subtopic        *int
	clearedsubtopic bool
	reviews         map[int]struct{}
	removedreviews  map[int]struct{}
	clearedreviews  bool
	done            bool
	oldValue        func(context.Context) (*Flashcard, error)
	predicates      []predicate.Flashcard
}

var _ ent.Mutation = (*FlashcardMutation)(nil)

// flashcardOption allows management of the mutation configuration using functional options.
type flashcardOption func(*FlashcardMutation)

// newFlashcardMutation creates new mutation for the Flashcard entity.
func newFlashcardMutation(c config, op Op, opts ...flashcardOption) *FlashcardMutation {
	m := &FlashcardMutation{
		config:        c,
		op:            op,
		typ:           TypeFlashcard,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFlashcardID sets the ID field of the mutation.
func withFlashcardID(id int) flashcardOption {
	return func(m *FlashcardMutation) {
		var (
			err   error
			once  sync.Once
			value *Flashcard
		)
		m.oldValue = func(ctx context.Context) (*Flashcard, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Flashcard.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFlashcard sets the old Flashcard of the mutation.
func withFlashcard(node *Flashcard) flashcardOption {
	return func(m *FlashcardMutation) {
		m.oldValue = func(context.Context) (*Flashcard, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FlashcardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FlashcardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FlashcardMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FlashcardMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Flashcard.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDomainID sets the "domain_id" field.
func (m *FlashcardMutation) SetDomainID(i int) {
	m.domain = &i
}

// DomainID returns the value of the "domain_id" field in the mutation.
func (m *FlashcardMutation) DomainID() (r int, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainID returns the old "domain_id" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldDomainID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainID: %w", err)
	}
	return oldValue.DomainID, nil
}

// ResetDomainID resets all changes to the "domain_id" field.
func (m *FlashcardMutation) ResetDomainID() {
	m.domain = nil
}

// SetSubtopicID sets the "subtopic_id" field.
func (m *FlashcardMutation) SetSubtopicID(i int) {
	m.subtopic = &i
}

// SubtopicID returns the value of the "subtopic_id" field in the mutation.
func (m *FlashcardMutation) SubtopicID() (r int, exists bool) {
	v := m.subtopic
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopicID returns the old "subtopic_id" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldSubtopicID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopicID: %w", err)
	}
	return oldValue.SubtopicID, nil
}

// ClearSubtopicID clears the value of the "subtopic_id" field.
func (m *FlashcardMutation) ClearSubtopicID() {
	m.subtopic = nil
	m.clearedFields[flashcard.FieldSubtopicID] = struct{}{}
}

// SubtopicIDCleared returns if the "subtopic_id" field was cleared in this mutation.
func (m *FlashcardMutation) SubtopicIDCleared() bool {
	_, ok := m.clearedFields[flashcard.FieldSubtopicID]
	return ok
}

// ResetSubtopicID resets all changes to the "subtopic_id" field.
func (m *FlashcardMutation) ResetSubtopicID() {
	m.subtopic = nil
	delete(m.clearedFields, flashcard.FieldSubtopicID)
}

// SetFront sets the "front" field.
func (m *FlashcardMutation) SetFront(s string) {
	m.front = &s
}

// Front returns the value of the "front" field in the mutation.
func (m *FlashcardMutation) Front() (r string, exists bool) {
	v := m.front
	if v == nil {
		return
	}
	return *v, true
}

// OldFront returns the old "front" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldFront(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFront is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFront requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFront: %w", err)
	}
	return oldValue.Front, nil
}

// ResetFront resets all changes to the "front" field.
func (m *FlashcardMutation) ResetFront() {
	m.front = nil
}

// SetBack sets the "back" field.
func (m *FlashcardMutation) SetBack(s string) {
	m.back = &s
}

// Back returns the value of the "back" field in the mutation.
func (m *FlashcardMutation) Back() (r string, exists bool) {
	v := m.back
	if v == nil {
		return
	}
	return *v, true
}

// OldBack returns the old "back" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldBack(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBack: %w", err)
	}
	return oldValue.Back, nil
}

// ResetBack resets all changes to the "back" field.
func (m *FlashcardMutation) ResetBack() {
	m.back = nil
}

// SetSource sets the "source" field.
func (m *FlashcardMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *FlashcardMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *FlashcardMutation) ResetSource() {
	m.source = nil
}

// SetEaseFactor sets the "ease_factor" field.
func (m *FlashcardMutation) SetEaseFactor(f float64) {
	m.ease_factor = &f
	m.addease_factor = nil
}

// EaseFactor returns the value of the "ease_factor" field in the mutation.
func (m *FlashcardMutation) EaseFactor() (r float64, exists bool) {
	v := m.ease_factor
	if v == nil {
		return
	}
	return *v, true
}

// OldEaseFactor returns the old "ease_factor" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldEaseFactor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEaseFactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEaseFactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEaseFactor: %w", err)
	}
	return oldValue.EaseFactor, nil
}

// AddEaseFactor adds f to the "ease_factor" field.
func (m *FlashcardMutation) AddEaseFactor(f float64) {
	if m.addease_factor != nil {
		*m.addease_factor += f
	} else {
		m.addease_factor = &f
	}
}

// AddedEaseFactor returns the value that was added to the "ease_factor" field in this mutation.
func (m *FlashcardMutation) AddedEaseFactor() (r float64, exists bool) {
	v := m.addease_factor
	if v == nil {
		return
	}
	return *v, true
}

// ResetEaseFactor resets all changes to the "ease_factor" field.
func (m *FlashcardMutation) ResetEaseFactor() {
	m.ease_factor = nil
	m.addease_factor = nil
}

// SetInterval sets the "interval" field.
func (m *FlashcardMutation) SetInterval(i int) {
	m.interval = &i
	m.addinterval = nil
}

// Interval returns the value of the "interval" field in the mutation.
func (m *FlashcardMutation) Interval() (r int, exists bool) {
	v := m.interval
	if v == nil {
		return
	}
	return *v, true
}

// OldInterval returns the old "interval" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldInterval(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterval is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterval requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterval: %w", err)
	}
	return oldValue.Interval, nil
}

// AddInterval adds i to the "interval" field.
func (m *FlashcardMutation) AddInterval(i int) {
	if m.addinterval != nil {
		*m.addinterval += i
	} else {
		m.addinterval = &i
	}
}

// AddedInterval returns the value that was added to the "interval" field in this mutation.
func (m *FlashcardMutation) AddedInterval() (r int, exists bool) {
	v := m.addinterval
	if v == nil {
		return
	}
	return *v, true
}

// ResetInterval resets all changes to the "interval" field.
func (m *FlashcardMutation) ResetInterval() {
	m.interval = nil
	m.addinterval = nil
}

// SetRepetitions sets the "repetitions" field.
func (m *FlashcardMutation) SetRepetitions(i int) {
	m.repetitions = &i
	m.addrepetitions = nil
}

// Repetitions returns the value of the "repetitions" field in the mutation.
func (m *FlashcardMutation) Repetitions() (r int, exists bool) {
	v := m.repetitions
	if v == nil {
		return
	}
	return *v, true
}

// OldRepetitions returns the old "repetitions" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldRepetitions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepetitions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepetitions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepetitions: %w", err)
	}
	return oldValue.Repetitions, nil
}

// AddRepetitions adds i to the "repetitions" field.
func (m *FlashcardMutation) AddRepetitions(i int) {
	if m.addrepetitions != nil {
		*m.addrepetitions += i
	} else {
		m.addrepetitions = &i
	}
}

// AddedRepetitions returns the value that was added to the "repetitions" field in this mutation.
func (m *FlashcardMutation) AddedRepetitions() (r int, exists bool) {
	v := m.addrepetitions
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepetitions resets all changes to the "repetitions" field.
func (m *FlashcardMutation) ResetRepetitions() {
	m.repetitions = nil
	m.addrepetitions = nil
}

// SetNextReview sets the "next_review" field.
func (m *FlashcardMutation) SetNextReview(t time.Time) {
	m.next_review = &t
}

// NextReview returns the value of the "next_review" field in the mutation.
func (m *FlashcardMutation) NextReview() (r time.Time, exists bool) {
	v := m.next_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReview returns the old "next_review" field's value of the Flashcard entity.
// If the Flashcard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlashcardMutation) OldNextReview(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReview: %w", err)
	}
	return oldValue.NextReview, nil
}

// ClearNextReview clears the value of the "next_review" field.
func (m *FlashcardMutation) ClearNextReview() {
	m.next_review = nil
	m.clearedFields[flashcard.FieldNextReview] = struct{}{}
}

// NextReviewCleared returns if the "next_review" field was cleared in this mutation.
func (m *FlashcardMutation) NextReviewCleared() bool {
	_, ok := m.clearedFields[flashcard.FieldNextReview]
	return ok
}

// ResetNextReview resets all changes to the "next_review" field.
func (m *FlashcardMutation) ResetNextReview() {
	m.next_review = nil
	delete(m.clearedFields, flashcard.FieldNextReview)
}

// ClearDomain clears the "domain" edge to the Domain entity.
func (m *FlashcardMutation) ClearDomain() {
	m.cleareddomain = true
	m.clearedFields[flashcard.FieldDomainID] = struct{}{}
}

// DomainCleared reports if the "domain" edge to the Domain entity was cleared.
func (m *FlashcardMutation) DomainCleared() bool {
	return m.cleareddomain
}

// DomainIDs returns the "domain" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DomainID instead. It exists only for internal usage by the builders.
func (m *FlashcardMutation) DomainIDs() (ids []int) {
	if id := m.domain; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDomain resets all changes to the "domain" edge.
func (m *FlashcardMutation) ResetDomain() {
	m.domain = nil
	m.cleareddomain = false
}

// ClearSubtopic clears the "subtopic" edge to the Subtopic entity.
func (m *FlashcardMutation) ClearSubtopic() {
	m.clearedsubtopic = true
	m.clearedFields[flashcard.FieldSubtopicID] = struct{}{}
}

// SubtopicCleared reports if the "subtopic" edge to the Subtopic entity was cleared.
func (m *FlashcardMutation) SubtopicCleared() bool {
	return m.SubtopicIDCleared() || m.clearedsubtopic
}

// SubtopicIDs returns the "subtopic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubtopicID instead. It exists only for internal usage by the builders.
func (m *FlashcardMutation) SubtopicIDs() (ids []int) {
	if id := m.subtopic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubtopic resets all changes to the "subtopic" edge.
func (m *FlashcardMutation) ResetSubtopic() {
	m.subtopic = nil
	m.clearedsubtopic = false
}

// AddReviewIDs adds the "reviews" edge to the ReviewEvent entity by ids.
func (m *FlashcardMutation) AddReviewIDs(ids ...int) {
	if m.reviews == nil {
		m.reviews = make(map[int]struct{})
	}
	for i := range ids {
		m.reviews[ids[i]] = struct{}{}
	}
}

// ClearReviews clears the "reviews" edge to the ReviewEvent entity.
func (m *FlashcardMutation) ClearReviews() {
	m.clearedreviews = true
}

// ReviewsCleared reports if the "reviews" edge to the ReviewEvent entity was cleared.
func (m *FlashcardMutation) ReviewsCleared() bool {
	return m.clearedreviews
}

// RemoveReviewIDs removes the "reviews" edge to the ReviewEvent entity by IDs.
func (m *FlashcardMutation) RemoveReviewIDs(ids ...int) {
	if m.removedreviews == nil {
		m.removedreviews = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.reviews, ids[i])
		m.removedreviews[ids[i]] = struct{}{}
	}
}

// RemovedReviews returns the removed IDs of the "reviews" edge to the ReviewEvent entity.
func (m *FlashcardMutation) RemovedReviewsIDs() (ids []int) {
	for id := range m.removedreviews {
		ids = append(ids, id)
	}
	return
}

// ReviewsIDs returns the "reviews" edge IDs in the mutation.
func (m *FlashcardMutation) ReviewsIDs() (ids []int) {
	for id := range m.reviews {
		ids = append(ids, id)
	}
	return
}

// ResetReviews resets all changes to the "reviews" edge.
func (m *FlashcardMutation) ResetReviews() {
	m.reviews = nil
	m.clearedreviews = false
	m.removedreviews = nil
}

// Where appends a list predicates to the FlashcardMutation builder.
func (m *FlashcardMutation) Where(ps ...predicate.Flashcard) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FlashcardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FlashcardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Flashcard, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FlashcardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FlashcardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Flashcard).
func (m *FlashcardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FlashcardMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.domain != nil {
		fields = append(fields, flashcard.FieldDomainID)
	}
	if m.subtopic != nil {
		fields = append(fields, flashcard.FieldSubtopicID)
	}
	if m.front != nil {
		fields = append(fields, flashcard.FieldFront)
	}
	if m.back != nil {
		fields = append(fields, flashcard.FieldBack)
	}
	if m.source != nil {
		fields = append(fields, flashcard.FieldSource)
	}
	if m.ease_factor != nil {
		fields = append(fields, flashcard.FieldEaseFactor)
	}
	if m.interval != nil {
		fields = append(fields, flashcard.FieldInterval)
	}
	if m.repetitions != nil {
		fields = append(fields, flashcard.FieldRepetitions)
	}
	if m.next_review != nil {
		fields = append(fields, flashcard.FieldNextReview)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FlashcardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case flashcard.FieldDomainID:
		return m.DomainID()
	case flashcard.FieldSubtopicID:
		return m.SubtopicID()
	case flashcard.FieldFront:
		return m.Front()
	case flashcard.FieldBack:
		return m.Back()
	case flashcard.FieldSource:
		return m.Source()
	case flashcard.FieldEaseFactor:
		return m.EaseFactor()
	case flashcard.FieldInterval:
		return m.Interval()
	case flashcard.FieldRepetitions:
		return m.Repetitions()
	case flashcard.FieldNextReview:
		return m.NextReview()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FlashcardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case flashcard.FieldDomainID:
		return m.OldDomainID(ctx)
	case flashcard.FieldSubtopicID:
		return m.OldSubtopicID(ctx)
	case flashcard.FieldFront:
		return m.OldFront(ctx)
	case flashcard.FieldBack:
		return m.OldBack(ctx)
	case flashcard.FieldSource:
		return m.OldSource(ctx)
	case flashcard.FieldEaseFactor:
		return m.OldEaseFactor(ctx)
	case flashcard.FieldInterval:
		return m.OldInterval(ctx)
	case flashcard.FieldRepetitions:
		return m.OldRepetitions(ctx)
	case flashcard.FieldNextReview:
		return m.OldNextReview(ctx)
	}
	return nil, fmt.Errorf("unknown Flashcard field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlashcardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case flashcard.FieldDomainID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainID(v)
		return nil
	case flashcard.FieldSubtopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopicID(v)
		return nil
	case flashcard.FieldFront:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFront(v)
		return nil
	case flashcard.FieldBack:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBack(v)
		return nil
	case flashcard.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case flashcard.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEaseFactor(v)
		return nil
	case flashcard.FieldInterval:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterval(v)
		return nil
	case flashcard.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepetitions(v)
		return nil
	case flashcard.FieldNextReview:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReview(v)
		return nil
	}
	return fmt.Errorf("unknown Flashcard field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FlashcardMutation) AddedFields() []string {
	var fields []string
	if m.addease_factor != nil {
		fields = append(fields, flashcard.FieldEaseFactor)
	}
	if m.addinterval != nil {
		fields = append(fields, flashcard.FieldInterval)
	}
	if m.addrepetitions != nil {
		fields = append(fields, flashcard.FieldRepetitions)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FlashcardMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case flashcard.FieldEaseFactor:
		return m.AddedEaseFactor()
	case flashcard.FieldInterval:
		return m.AddedInterval()
	case flashcard.FieldRepetitions:
		return m.AddedRepetitions()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlashcardMutation) AddField(name string, value ent.Value) error {
	switch name {
	case flashcard.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEaseFactor(v)
		return nil
	case flashcard.FieldInterval:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInterval(v)
		return nil
	case flashcard.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepetitions(v)
		return nil
	}
	return fmt.Errorf("unknown Flashcard numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FlashcardMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(flashcard.FieldSubtopicID) {
		fields = append(fields, flashcard.FieldSubtopicID)
	}
	if m.FieldCleared(flashcard.FieldNextReview) {
		fields = append(fields, flashcard.FieldNextReview)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FlashcardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FlashcardMutation) ClearField(name string) error {
	switch name {
	case flashcard.FieldSubtopicID:
		m.ClearSubtopicID()
		return nil
	case flashcard.FieldNextReview:
		m.ClearNextReview()
		return nil
	}
	return fmt.Errorf("unknown Flashcard nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FlashcardMutation) ResetField(name string) error {
	switch name {
	case flashcard.FieldDomainID:
		m.ResetDomainID()
		return nil
	case flashcard.FieldSubtopicID:
		m.ResetSubtopicID()
		return nil
	case flashcard.FieldFront:
		m.ResetFront()
		return nil
	case flashcard.FieldBack:
		m.ResetBack()
		return nil
	case flashcard.FieldSource:
		m.ResetSource()
		return nil
	case flashcard.FieldEaseFactor:
		m.ResetEaseFactor()
		return nil
	case flashcard.FieldInterval:
		m.ResetInterval()
		return nil
	case flashcard.FieldRepetitions:
		m.ResetRepetitions()
		return nil
	case flashcard.FieldNextReview:
		m.ResetNextReview()
		return nil
	}
	return fmt.Errorf("unknown Flashcard field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FlashcardMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.domain != nil {
		edges = append(edges, flashcard.EdgeDomain)
	}
	if m.subtopic != nil {
		edges = append(edges, flashcard.EdgeSubtopic)
	}
	if m.reviews != nil {
		edges = append(edges, flashcard.EdgeReviews)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FlashcardMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case flashcard.EdgeDomain:
		if id := m.domain; id != nil {
			return []ent.Value{*id}
		}
	case flashcard.EdgeSubtopic:
		if id := m.subtopic; id != nil {
			return []ent.Value{*id}
		}
	case flashcard.EdgeReviews:
		ids := make([]ent.Value, 0, len(m.reviews))
		for id := range m.reviews {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FlashcardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedreviews != nil {
		edges = append(edges, flashcard.EdgeReviews)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FlashcardMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case flashcard.EdgeReviews:
		ids := make([]ent.Value, 0, len(m.removedreviews))
		for id := range m.removedreviews {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FlashcardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddomain {
		edges = append(edges, flashcard.EdgeDomain)
	}
	if m.clearedsubtopic {
		edges = append(edges, flashcard.EdgeSubtopic)
	}
	if m.clearedreviews {
		edges = append(edges, flashcard.EdgeReviews)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FlashcardMutation) EdgeCleared(name string) bool {
	switch name {
	case flashcard.EdgeDomain:
		return m.cleareddomain
	case flashcard.EdgeSubtopic:
		return m.clearedsubtopic
	case flashcard.EdgeReviews:
		return m.clearedreviews
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FlashcardMutation) ClearEdge(name string) error {
	switch name {
	case flashcard.EdgeDomain:
		m.ClearDomain()
		return nil
	case flashcard.EdgeSubtopic:
		m.ClearSubtopic()
		return nil
	}
	return fmt.Errorf("unknown Flashcard unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FlashcardMutation) ResetEdge(name string) error {
	switch name {
	case flashcard.EdgeDomain:
		m.ResetDomain()
		return nil
	case flashcard.EdgeSubtopic:
		m.ResetSubtopic()
		return nil
	case flashcard.EdgeReviews:
		m.ResetReviews()
		return nil
	}
	return fmt.Errorf("unknown Flashcard edge %s", name)
}

// QuizQuestionMutation represents an operation that mutates the QuizQuestion nodes in the graph.
type QuizQuestionMutation struct {
	config
	op              Op
	typ             string
	id              *int
	stem            *string
	choice_a        *string
	choice_b        *string
	choice_c        *string
	choice_d        *string
	correct_answer  *string
	explanation     *string
	source          *string
	clearedFields   map[string]struct{}
	domain          *int
	cleareddomain   bool
	subtopic        *int
	clearedsubtopic bool
	answers         map[int]struct{}
	removedanswers  map[int]struct{}
	clearedanswers  bool
	done            bool
	oldValue        func(context.Context) (*QuizQuestion, error)
	predicates      []predicate.QuizQuestion
}

var _ ent.Mutation = (*QuizQuestionMutation)(nil)

// quizquestionOption allows management of the mutation configuration using functional options.
type quizquestionOption func(*QuizQuestionMutation)

// newQuizQuestionMutation creates new mutation for the QuizQuestion entity.
func newQuizQuestionMutation(c config, op Op, opts ...quizquestionOption) *QuizQuestionMutation {
	m := &QuizQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizQuestionID sets the ID field of the mutation.
func withQuizQuestionID(id int) quizquestionOption {
	return func(m *QuizQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizQuestion
		)
		m.oldValue = func(ctx context.Context) (*QuizQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizQuestion sets the old QuizQuestion of the mutation.
func withQuizQuestion(node *QuizQuestion) quizquestionOption {
	return func(m *QuizQuestionMutation) {
		m.oldValue = func(context.Context) (*QuizQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizQuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizQuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDomainID sets the "domain_id" field.
func (m *QuizQuestionMutation) SetDomainID(i int) {
	m.domain = &i
}

// DomainID returns the value of the "domain_id" field in the mutation.
func (m *QuizQuestionMutation) DomainID() (r int, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainID returns the old "domain_id" field's value of the QuizQuestion entity.
// If the QuizQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizQuestionMutation) OldDomainID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainID: %w", err)
	}
	return oldValue.DomainID, nil
}

// ResetDomainID resets all changes to the "domain_id" field.
func (m *QuizQuestionMutation) ResetDomainID() {
	m.domain = nil
}

// SetSubtopicID sets the "subtopic_id" field.
func (m *QuizQuestionMutation) SetSubtopicID(i int) {
	m.subtopic = &i
}

// SubtopicID returns the value of the "subtopic_id" field in the mutation.
func (m *QuizQuestionMutation) SubtopicID() (r int, exists bool) {
	v := m.subtopic
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopicID returns the old "subtopic_id" field's value of the QuizQuestion entity.
// If the QuizQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizQuestionMutation) OldSubtopicID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopicID: %w", err)
	}
	return oldValue.SubtopicID, nil
}

// ClearSubtopicID clears the value of the "subtopic_id" field.
func (m *QuizQuestionMutation) ClearSubtopicID() {
	m.subtopic = nil
	m.clearedFields[quizquestion.FieldSubtopicID] = struct{}{}
}

// SubtopicIDCleared returns if the "subtopic_id" field was cleared in this mutation.
func (m *QuizQuestionMutation) SubtopicIDCleared() bool {
	_, ok := m.clearedFields[quizquestion.FieldSubtopicID]
	return ok
}

// ResetSubtopicID resets all changes to the "subtopic_id" field.
func (m *QuizQuestionMutation) ResetSubtopicID() {
	m.subtopic = nil
	delete(m.clearedFields, quizquestion.FieldSubtopicID)
}

// SetStem sets the "stem" field.
func (m *QuizQuestionMutation) SetStem(s string) {
	m.stem = &s
}

// Stem returns the value of the "stem" field in the mutation.
func (m *QuizQuestionMutation) Stem() (r string, exists bool) {
	v := m.stem
	if v == nil {
		return
	}
	return *v, true
}

// OldStem returns the old "stem" field's value of the QuizQuestion entity.
// If the QuizQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizQuestionMutation) OldStem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStem: %w", err)
	}
	return oldValue.Stem, nil
}

// ResetStem resets all changes to the "stem" field.
func (m *QuizQuestionMutation) ResetStem() {
	m.stem = nil
}

// SetChoiceA sets the "choice_a" field.
func (m *QuizQuestionMutation) SetChoiceA(s string) {
	m.choice_a = &s
}

// ChoiceA returns the value of the "choice_a" field in the mutation.
func (m *QuizQuestionMutation) ChoiceA() (r string, exists bool) {
	v := m.choice_a
	if v == nil {
		return
	}
	return *v, true
}

// OldChoiceA returns the old "choice_a" field's value of the QuizQuestion entity.
// If the QuizQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizQuestionMutation) OldChoiceA(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChoiceA is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChoiceA requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChoiceA: %w", err)
	}
	return oldValue.ChoiceA, nil
}

// ResetChoiceA resets all changes to the "choice_a" field.
func (m *QuizQuestionMutation) ResetChoiceA() {
	m.choice_a = nil
}

// SetChoiceB sets the "choice_b" field.
func (m *QuizQuestionMutation) SetChoiceB(s string) {
	m.choice_b = &s
}

// ChoiceB returns the value of the "choice_b" field in the mutation.
func (m *QuizQuestionMutation) ChoiceB() (r string, exists bool) {
	v := m.choice_b
	if v == nil {
		return
	}
	return *v, true
}

// OldChoiceB returns the old "choice_b" field's value of the QuizQuestion entity.
// If the QuizQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizQuestionMutation) OldChoiceB(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChoiceB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChoiceB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChoiceB: %w", err)
	}
	return oldValue.ChoiceB, nil
}

// ResetChoiceB resets all changes to the "choice_b" field.
func (m *QuizQuestionMutation) ResetChoiceB() {
	m.choice_b = nil
}

// SetChoiceC sets the "choice_c" field.
func (m *QuizQuestionMutation) SetChoiceC(s string) {
	m.choice_c = &s
}

// ChoiceC returns the value of the "choice_c" field in the mutation.
func (m *QuizQuestionMutation) ChoiceC() (r string, exists bool) {
	v := m.choice_c
	if v == nil {
		return
	}
	return *v, true
}

// OldChoiceC returns the old "choice_c" field's value of the QuizQuestion entity.
// If the QuizQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizQuestionMutation) OldChoiceC(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChoiceC is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChoiceC requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChoiceC: %w", err)
	}
	return oldValue.ChoiceC, nil
}

// ResetChoiceC resets all changes to the "choice_c" field.
func (m *QuizQuestionMutation) ResetChoiceC() {
	m.choice_c = nil
}

// SetChoiceD sets the "choice_d" field.
func (m *QuizQuestionMutation) SetChoiceD(s string) {
	m.choice_d = &s
}

// ChoiceD returns the value of the "choice_d" field in the mutation.
func (m *QuizQuestionMutation) ChoiceD() (r string, exists bool) {
	v := m.choice_d
	if v == nil {
		return
	}
	return *v, true
}

// OldChoiceD returns the old "choice_d" field's value of the QuizQuestion entity.
// If the QuizQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizQuestionMutation) OldChoiceD(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChoiceD is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChoiceD requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChoiceD: %w", err)
	}
	return oldValue.ChoiceD, nil
}

// ResetChoiceD resets all changes to the "choice_d" field.
func (m *QuizQuestionMutation) ResetChoiceD() {
	m.choice_d = nil
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *QuizQuestionMutation) SetCorrectAnswer(s string) {
	m.correct_answer = &s
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *QuizQuestionMutation) CorrectAnswer() (r string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the QuizQuestion entity.
// If the QuizQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizQuestionMutation) OldCorrectAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *QuizQuestionMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
}

// SetExplanation sets the "explanation" field.
func (m *QuizQuestionMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *QuizQuestionMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the QuizQuestion entity.
// If the QuizQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizQuestionMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *QuizQuestionMutation) ResetExplanation() {
	m.explanation = nil
}

// SetSource sets the "source" field.
func (m *QuizQuestionMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *QuizQuestionMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the QuizQuestion entity.
// If the QuizQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizQuestionMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *QuizQuestionMutation) ResetSource() {
	m.source = nil
}

// ClearDomain clears the "domain" edge to the Domain entity.
func (m *QuizQuestionMutation) ClearDomain() {
	m.cleareddomain = true
	m.clearedFields[quizquestion.FieldDomainID] = struct{}{}
}

// DomainCleared reports if the "domain" edge to the Domain entity was cleared.
func (m *QuizQuestionMutation) DomainCleared() bool {
	return m.cleareddomain
}

// DomainIDs returns the "domain" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DomainID instead. It exists only for internal usage by the builders.
func (m *QuizQuestionMutation) DomainIDs() (ids []int) {
	if id := m.domain; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDomain resets all changes to the "domain" edge.
func (m *QuizQuestionMutation) ResetDomain() {
	m.domain = nil
	m.cleareddomain = false
}

// ClearSubtopic clears the "subtopic" edge to the Subtopic entity.
func (m *QuizQuestionMutation) ClearSubtopic() {
	m.clearedsubtopic = true
	m.clearedFields[quizquestion.FieldSubtopicID] = struct{}{}
}

// SubtopicCleared reports if the "subtopic" edge to the Subtopic entity was cleared.
func (m *QuizQuestionMutation) SubtopicCleared() bool {
	return m.SubtopicIDCleared() || m.clearedsubtopic
}

// SubtopicIDs returns the "subtopic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubtopicID instead. It exists only for internal usage by the builders.
func (m *QuizQuestionMutation) SubtopicIDs() (ids []int) {
	if id := m.subtopic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubtopic resets all changes to the "subtopic" edge.
func (m *QuizQuestionMutation) ResetSubtopic() {
	m.subtopic = nil
	m.clearedsubtopic = false
}

// AddAnswerIDs adds the "answers" edge to the AnswerEvent entity by ids.
func (m *QuizQuestionMutation) AddAnswerIDs(ids ...int) {
	if m.answers == nil {
		m.answers = make(map[int]struct{})
	}
	for i := range ids {
		m.answers[ids[i]] = struct{}{}
	}
}

// ClearAnswers clears the "answers" edge to the AnswerEvent entity.
func (m *QuizQuestionMutation) ClearAnswers() {
	m.clearedanswers = true
}

// AnswersCleared reports if the "answers" edge to the AnswerEvent entity was cleared.
func (m *QuizQuestionMutation) AnswersCleared() bool {
	return m.clearedanswers
}

// RemoveAnswerIDs removes the "answers" edge to the AnswerEvent entity by IDs.
func (m *QuizQuestionMutation) RemoveAnswerIDs(ids ...int) {
	if m.removedanswers == nil {
		m.removedanswers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.answers, ids[i])
		m.removedanswers[ids[i]] = struct{}{}
	}
}

// RemovedAnswers returns the removed IDs of the "answers" edge to the AnswerEvent entity.
func (m *QuizQuestionMutation) RemovedAnswersIDs() (ids []int) {
	for id := range m.removedanswers {
		ids = append(ids, id)
	}
	return
}

// AnswersIDs returns the "answers" edge IDs in the mutation.
func (m *QuizQuestionMutation) AnswersIDs() (ids []int) {
	for id := range m.answers {
		ids = append(ids, id)
	}
	return
}

// ResetAnswers resets all changes to the "answers" edge.
func (m *QuizQuestionMutation) ResetAnswers() {
	m.answers = nil
	m.clearedanswers = false
	m.removedanswers = nil
}

// Where appends a list predicates to the QuizQuestionMutation builder.
func (m *QuizQuestionMutation) Where(ps ...predicate.QuizQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizQuestion).
func (m *QuizQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizQuestionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.domain != nil {
		fields = append(fields, quizquestion.FieldDomainID)
	}
	if m.subtopic != nil {
		fields = append(fields, quizquestion.FieldSubtopicID)
	}
	if m.stem != nil {
		fields = append(fields, quizquestion.FieldStem)
	}
	if m.choice_a != nil {
		fields = append(fields, quizquestion.FieldChoiceA)
	}
	if m.choice_b != nil {
		fields = append(fields, quizquestion.FieldChoiceB)
	}
	if m.choice_c != nil {
		fields = append(fields, quizquestion.FieldChoiceC)
	}
	if m.choice_d != nil {
		fields = append(fields, quizquestion.FieldChoiceD)
	}
	if m.correct_answer != nil {
		fields = append(fields, quizquestion.FieldCorrectAnswer)
	}
	if m.explanation != nil {
		fields = append(fields, quizquestion.FieldExplanation)
	}
	if m.source != nil {
		fields = append(fields, quizquestion.FieldSource)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizquestion.FieldDomainID:
		return m.DomainID()
	case quizquestion.FieldSubtopicID:
		return m.SubtopicID()
	case quizquestion.FieldStem:
		return m.Stem()
	case quizquestion.FieldChoiceA:
		return m.ChoiceA()
	case quizquestion.FieldChoiceB:
		return m.ChoiceB()
	case quizquestion.FieldChoiceC:
		return m.ChoiceC()
	case quizquestion.FieldChoiceD:
		return m.ChoiceD()
	case quizquestion.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case quizquestion.FieldExplanation:
		return m.Explanation()
	case quizquestion.FieldSource:
		return m.Source()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizquestion.FieldDomainID:
		return m.OldDomainID(ctx)
	case quizquestion.FieldSubtopicID:
		return m.OldSubtopicID(ctx)
	case quizquestion.FieldStem:
		return m.OldStem(ctx)
	case quizquestion.FieldChoiceA:
		return m.OldChoiceA(ctx)
	case quizquestion.FieldChoiceB:
		return m.OldChoiceB(ctx)
	case quizquestion.FieldChoiceC:
		return m.OldChoiceC(ctx)
	case quizquestion.FieldChoiceD:
		return m.OldChoiceD(ctx)
	case quizquestion.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case quizquestion.FieldExplanation:
		return m.OldExplanation(ctx)
	case quizquestion.FieldSource:
		return m.OldSource(ctx)
	}
	return nil, fmt.Errorf("unknown QuizQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizquestion.FieldDomainID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainID(v)
		return nil
	case quizquestion.FieldSubtopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopicID(v)
		return nil
	case quizquestion.FieldStem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStem(v)
		return nil
	case quizquestion.FieldChoiceA:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChoiceA(v)
		return nil
	case quizquestion.FieldChoiceB:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChoiceB(v)
		return nil
	case quizquestion.FieldChoiceC:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChoiceC(v)
		return nil
	case quizquestion.FieldChoiceD:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChoiceD(v)
		return nil
	case quizquestion.FieldCorrectAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case quizquestion.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case quizquestion.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	}
	return fmt.Errorf("unknown QuizQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizQuestionMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizQuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown QuizQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizQuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quizquestion.FieldSubtopicID) {
		fields = append(fields, quizquestion.FieldSubtopicID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizQuestionMutation) ClearField(name string) error {
	switch name {
	case quizquestion.FieldSubtopicID:
		m.ClearSubtopicID()
		return nil
	}
	return fmt.Errorf("unknown QuizQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizQuestionMutation) ResetField(name string) error {
	switch name {
	case quizquestion.FieldDomainID:
		m.ResetDomainID()
		return nil
	case quizquestion.FieldSubtopicID:
		m.ResetSubtopicID()
		return nil
	case quizquestion.FieldStem:
		m.ResetStem()
		return nil
	case quizquestion.FieldChoiceA:
		m.ResetChoiceA()
		return nil
	case quizquestion.FieldChoiceB:
		m.ResetChoiceB()
		return nil
	case quizquestion.FieldChoiceC:
		m.ResetChoiceC()
		return nil
	case quizquestion.FieldChoiceD:
		m.ResetChoiceD()
		return nil
	case quizquestion.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case quizquestion.FieldExplanation:
		m.ResetExplanation()
		return nil
	case quizquestion.FieldSource:
		m.ResetSource()
		return nil
	}
	return fmt.Errorf("unknown QuizQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.domain != nil {
		edges = append(edges, quizquestion.EdgeDomain)
	}
	if m.subtopic != nil {
		edges = append(edges, quizquestion.EdgeSubtopic)
	}
	if m.answers != nil {
		edges = append(edges, quizquestion.EdgeAnswers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizQuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case quizquestion.EdgeDomain:
		if id := m.domain; id != nil {
			return []ent.Value{*id}
		}
	case quizquestion.EdgeSubtopic:
		if id := m.subtopic; id != nil {
			return []ent.Value{*id}
		}
	case quizquestion.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.answers))
		for id := range m.answers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedanswers != nil {
		edges = append(edges, quizquestion.EdgeAnswers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizQuestionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case quizquestion.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.removedanswers))
		for id := range m.removedanswers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddomain {
		edges = append(edges, quizquestion.EdgeDomain)
	}
	if m.clearedsubtopic {
		edges = append(edges, quizquestion.EdgeSubtopic)
	}
	if m.clearedanswers {
		edges = append(edges, quizquestion.EdgeAnswers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizQuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case quizquestion.EdgeDomain:
		return m.cleareddomain
	case quizquestion.EdgeSubtopic:
		return m.clearedsubtopic
	case quizquestion.EdgeAnswers:
		return m.clearedanswers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizQuestionMutation) ClearEdge(name string) error {
	switch name {
	case quizquestion.EdgeDomain:
		m.ClearDomain()
		return nil
	case quizquestion.EdgeSubtopic:
		m.ClearSubtopic()
		return nil
	}
	return fmt.Errorf("unknown QuizQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizQuestionMutation) ResetEdge(name string) error {
	switch name {
	case quizquestion.EdgeDomain:
		m.ResetDomain()
		return nil
	case quizquestion.EdgeSubtopic:
		m.ResetSubtopic()
		return nil
	case quizquestion.EdgeAnswers:
		m.ResetAnswers()
		return nil
	}
	return fmt.Errorf("unknown QuizQuestion edge %s", name)
}

// ReviewEventMutation represents an operation that mutates the ReviewEvent nodes in the graph.
type ReviewEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	batch_id         *string
	rating           *int
	addrating        *int
	clearedFields    map[string]struct{}
	flashcard        *int
	clearedflashcard bool
	done             bool
	oldValue         func(context.Context) (*ReviewEvent, error)
	predicates       []predicate.ReviewEvent
}

var _ ent.Mutation = (*ReviewEventMutation)(nil)

// revieweventOption allows management of the mutation configuration using functional options.
type revieweventOption func(*ReviewEventMutation)

// newReviewEventMutation creates new mutation for the ReviewEvent entity.
func newReviewEventMutation(c config, op Op, opts ...revieweventOption) *ReviewEventMutation {
	m := &ReviewEventMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewEventID sets the ID field of the mutation.
func withReviewEventID(id int) revieweventOption {
	return func(m *ReviewEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewEvent
		)
		m.oldValue = func(ctx context.Context) (*ReviewEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewEvent sets the old ReviewEvent of the mutation.
func withReviewEvent(node *ReviewEvent) revieweventOption {
	return func(m *ReviewEventMutation) {
		m.oldValue = func(context.Context) (*ReviewEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ReviewEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ReviewEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ReviewEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ReviewEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ReviewEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ReviewEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ReviewEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ReviewEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetBatchID sets the "batch_id" field.
func (m *ReviewEventMutation) SetBatchID(s string) {
	m.batch_id = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *ReviewEventMutation) BatchID() (r string, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *ReviewEventMutation) ResetBatchID() {
	m.batch_id = nil
}

// SetFlashcardID sets the "flashcard_id" field.
func (m *ReviewEventMutation) SetFlashcardID(i int) {
	m.flashcard = &i
}

// FlashcardID returns the value of the "flashcard_id" field in the mutation.
func (m *ReviewEventMutation) FlashcardID() (r int, exists bool) {
	v := m.flashcard
	if v == nil {
		return
	}
	return *v, true
}

// OldFlashcardID returns the old "flashcard_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldFlashcardID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlashcardID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlashcardID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlashcardID: %w", err)
	}
	return oldValue.FlashcardID, nil
}

// ResetFlashcardID resets all changes to the "flashcard_id" field.
func (m *ReviewEventMutation) ResetFlashcardID() {
	m.flashcard = nil
}

// SetRating sets the "rating" field.
func (m *ReviewEventMutation) SetRating(i int) {
	m.rating = &i
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *ReviewEventMutation) Rating() (r int, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldRating(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds i to the "rating" field.
func (m *ReviewEventMutation) AddRating(i int) {
	if m.addrating != nil {
		*m.addrating += i
	} else {
		m.addrating = &i
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *ReviewEventMutation) AddedRating() (r int, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *ReviewEventMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// ClearFlashcard clears the "flashcard" edge to the Flashcard entity.
func (m *ReviewEventMutation) ClearFlashcard() {
	m.clearedflashcard = true
	m.clearedFields[reviewevent.FieldFlashcardID] = struct{}{}
}

// FlashcardCleared reports if the "flashcard" edge to the Flashcard entity was cleared.
func (m *ReviewEventMutation) FlashcardCleared() bool {
	return m.clearedflashcard
}

// FlashcardIDs returns the "flashcard" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FlashcardID instead. It exists only for internal usage by the builders.
func (m *ReviewEventMutation) FlashcardIDs() (ids []int) {
	if id := m.flashcard; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFlashcard resets all changes to the "flashcard" edge.
func (m *ReviewEventMutation) ResetFlashcard() {
	m.flashcard = nil
	m.clearedflashcard = false
}

// Where appends a list predicates to the ReviewEventMutation builder.
func (m *ReviewEventMutation) Where(ps ...predicate.ReviewEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewEvent).
func (m *ReviewEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.sequence != nil {
		fields = append(fields, reviewevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, reviewevent.FieldTimestamp)
	}
	if m.batch_id != nil {
		fields = append(fields, reviewevent.FieldBatchID)
	}
	if m.flashcard != nil {
		fields = append(fields, reviewevent.FieldFlashcardID)
	}
	if m.rating != nil {
		fields = append(fields, reviewevent.FieldRating)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldSequence:
		return m.Sequence()
	case reviewevent.FieldTimestamp:
		return m.Timestamp()
	case reviewevent.FieldBatchID:
		return m.BatchID()
	case reviewevent.FieldFlashcardID:
		return m.FlashcardID()
	case reviewevent.FieldRating:
		return m.Rating()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewevent.FieldSequence:
		return m.OldSequence(ctx)
	case reviewevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case reviewevent.FieldBatchID:
		return m.OldBatchID(ctx)
	case reviewevent.FieldFlashcardID:
		return m.OldFlashcardID(ctx)
	case reviewevent.FieldRating:
		return m.OldRating(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case reviewevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case reviewevent.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case reviewevent.FieldFlashcardID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlashcardID(v)
		return nil
	case reviewevent.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, reviewevent.FieldSequence)
	}
	if m.addrating != nil {
		fields = append(fields, reviewevent.FieldRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldSequence:
		return m.AddedSequence()
	case reviewevent.FieldRating:
		return m.AddedRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case reviewevent.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReviewEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewEventMutation) ResetField(name string) error {
	switch name {
	case reviewevent.FieldSequence:
		m.ResetSequence()
		return nil
	case reviewevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case reviewevent.FieldBatchID:
		m.ResetBatchID()
		return nil
	case reviewevent.FieldFlashcardID:
		m.ResetFlashcardID()
		return nil
	case reviewevent.FieldRating:
		m.ResetRating()
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.flashcard != nil {
		edges = append(edges, reviewevent.EdgeFlashcard)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reviewevent.EdgeFlashcard:
		if id := m.flashcard; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedflashcard {
		edges = append(edges, reviewevent.EdgeFlashcard)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewEventMutation) EdgeCleared(name string) bool {
	switch name {
	case reviewevent.EdgeFlashcard:
		return m.clearedflashcard
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewEventMutation) ClearEdge(name string) error {
	switch name {
	case reviewevent.EdgeFlashcard:
		m.ClearFlashcard()
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewEventMutation) ResetEdge(name string) error {
	switch name {
	case reviewevent.EdgeFlashcard:
		m.ResetFlashcard()
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent edge %s", name)
}

// SessionItemMutation represents an operation that mutates the SessionItem nodes in the graph.
type SessionItemMutation struct {
	config
	op             Op
	typ            string
	id             *int
	session_day    *int
	addsession_day *int
	component      *sessionitem.Component
	item_id        *int
	additem_id     *int
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*SessionItem, error)
	predicates     []predicate.SessionItem
}

var _ ent.Mutation = (*SessionItemMutation)(nil)

// sessionitemOption allows management of the mutation configuration using functional options.
type sessionitemOption func(*SessionItemMutation)

// newSessionItemMutation creates new mutation for the SessionItem entity.
func newSessionItemMutation(c config, op Op, opts ...sessionitemOption) *SessionItemMutation {
	m := &SessionItemMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionItemID sets the ID field of the mutation.
func withSessionItemID(id int) sessionitemOption {
	return func(m *SessionItemMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionItem
		)
		m.oldValue = func(ctx context.Context) (*SessionItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionItem sets the old SessionItem of the mutation.
func withSessionItem(node *SessionItem) sessionitemOption {
	return func(m *SessionItemMutation) {
		m.oldValue = func(context.Context) (*SessionItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionDay sets the "session_day" field.
func (m *SessionItemMutation) SetSessionDay(i int) {
	m.session_day = &i
	m.addsession_day = nil
}

// SessionDay returns the value of the "session_day" field in the mutation.
func (m *SessionItemMutation) SessionDay() (r int, exists bool) {
	v := m.session_day
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionDay returns the old "session_day" field's value of the SessionItem entity.
// If the SessionItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionItemMutation) OldSessionDay(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionDay: %w", err)
	}
	return oldValue.SessionDay, nil
}

// AddSessionDay adds i to the "session_day" field.
func (m *SessionItemMutation) AddSessionDay(i int) {
	if m.addsession_day != nil {
		*m.addsession_day += i
	} else {
		m.addsession_day = &i
	}
}

// AddedSessionDay returns the value that was added to the "session_day" field in this mutation.
func (m *SessionItemMutation) AddedSessionDay() (r int, exists bool) {
	v := m.addsession_day
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionDay resets all changes to the "session_day" field.
func (m *SessionItemMutation) ResetSessionDay() {
	m.session_day = nil
	m.addsession_day = nil
}

// SetComponent sets the "component" field.
func (m *SessionItemMutation) SetComponent(s sessionitem.Component) {
	m.component = &s
}

// Component returns the value of the "component" field in the mutation.
func (m *SessionItemMutation) Component() (r sessionitem.Component, exists bool) {
	v := m.component
	if v == nil {
		return
	}
	return *v, true
}

// OldComponent returns the old "component" field's value of the SessionItem entity.
// If the SessionItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionItemMutation) OldComponent(ctx context.Context) (v sessionitem.Component, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComponent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComponent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComponent: %w", err)
	}
	return oldValue.Component, nil
}

// ResetComponent resets all changes to the "component" field.
func (m *SessionItemMutation) ResetComponent() {
	m.component = nil
}

// SetItemID sets the "item_id" field.
func (m *SessionItemMutation) SetItemID(i int) {
	m.item_id = &i
	m.additem_id = nil
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *SessionItemMutation) ItemID() (r int, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the SessionItem entity.
// If the SessionItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionItemMutation) OldItemID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// AddItemID adds i to the "item_id" field.
func (m *SessionItemMutation) AddItemID(i int) {
	if m.additem_id != nil {
		*m.additem_id += i
	} else {
		m.additem_id = &i
	}
}

// AddedItemID returns the value that was added to the "item_id" field in this mutation.
func (m *SessionItemMutation) AddedItemID() (r int, exists bool) {
	v := m.additem_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemID resets all changes to the "item_id" field.
func (m *SessionItemMutation) ResetItemID() {
	m.item_id = nil
	m.additem_id = nil
}

// Where appends a list predicates to the SessionItemMutation builder.
func (m *SessionItemMutation) Where(ps ...predicate.SessionItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionItem).
func (m *SessionItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionItemMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.session_day != nil {
		fields = append(fields, sessionitem.FieldSessionDay)
	}
	if m.component != nil {
		fields = append(fields, sessionitem.FieldComponent)
	}
	if m.item_id != nil {
		fields = append(fields, sessionitem.FieldItemID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionitem.FieldSessionDay:
		return m.SessionDay()
	case sessionitem.FieldComponent:
		return m.Component()
	case sessionitem.FieldItemID:
		return m.ItemID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionitem.FieldSessionDay:
		return m.OldSessionDay(ctx)
	case sessionitem.FieldComponent:
		return m.OldComponent(ctx)
	case sessionitem.FieldItemID:
		return m.OldItemID(ctx)
	}
	return nil, fmt.Errorf("unknown SessionItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionitem.FieldSessionDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionDay(v)
		return nil
	case sessionitem.FieldComponent:
		v, ok := value.(sessionitem.Component)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComponent(v)
		return nil
	case sessionitem.FieldItemID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	}
	return fmt.Errorf("unknown SessionItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionItemMutation) AddedFields() []string {
	var fields []string
	if m.addsession_day != nil {
		fields = append(fields, sessionitem.FieldSessionDay)
	}
	if m.additem_id != nil {
		fields = append(fields, sessionitem.FieldItemID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionitem.FieldSessionDay:
		return m.AddedSessionDay()
	case sessionitem.FieldItemID:
		return m.AddedItemID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionitem.FieldSessionDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionDay(v)
		return nil
	case sessionitem.FieldItemID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemID(v)
		return nil
	}
	return fmt.Errorf("unknown SessionItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionItemMutation) ResetField(name string) error {
	switch name {
	case sessionitem.FieldSessionDay:
		m.ResetSessionDay()
		return nil
	case sessionitem.FieldComponent:
		m.ResetComponent()
		return nil
	case sessionitem.FieldItemID:
		m.ResetItemID()
		return nil
	}
	return fmt.Errorf("unknown SessionItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionItem edge %s", name)
}

// SessionProgressMutation represents an operation that mutates the SessionProgress nodes in the graph.
type SessionProgressMutation struct {
	config
	op              Op
	typ             string
	id              *int
	session_day     *int
	addsession_day  *int
	calendar_date   *time.Time
	reading_done    *bool
	flashcards_done *bool
	quiz_done       *bool
	completed_at    *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*SessionProgress, error)
	predicates      []predicate.SessionProgress
}

var _ ent.Mutation = (*SessionProgressMutation)(nil)

// sessionprogressOption allows management of the mutation configuration using functional options.
type sessionprogressOption func(*SessionProgressMutation)

// newSessionProgressMutation creates new mutation for the SessionProgress entity.
func newSessionProgressMutation(c config, op Op, opts ...sessionprogressOption) *SessionProgressMutation {
	m := &SessionProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionProgressID sets the ID field of the mutation.
func withSessionProgressID(id int) sessionprogressOption {
	return func(m *SessionProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionProgress
		)
		m.oldValue = func(ctx context.Context) (*SessionProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionProgress sets the old SessionProgress of the mutation.
func withSessionProgress(node *SessionProgress) sessionprogressOption {
	return func(m *SessionProgressMutation) {
		m.oldValue = func(context.Context) (*SessionProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionDay sets the "session_day" field.
func (m *SessionProgressMutation) SetSessionDay(i int) {
	m.session_day = &i
	m.addsession_day = nil
}

// SessionDay returns the value of the "session_day" field in the mutation.
func (m *SessionProgressMutation) SessionDay() (r int, exists bool) {
	v := m.session_day
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionDay returns the old "session_day" field's value of the SessionProgress entity.
// If the SessionProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionProgressMutation) OldSessionDay(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionDay: %w", err)
	}
	return oldValue.SessionDay, nil
}

// AddSessionDay adds i to the "session_day" field.
func (m *SessionProgressMutation) AddSessionDay(i int) {
	if m.addsession_day != nil {
		*m.addsession_day += i
	} else {
		m.addsession_day = &i
	}
}

// AddedSessionDay returns the value that was added to the "session_day" field in this mutation.
func (m *SessionProgressMutation) AddedSessionDay() (r int, exists bool) {
	v := m.addsession_day
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionDay resets all changes to the "session_day" field.
func (m *SessionProgressMutation) ResetSessionDay() {
	m.session_day = nil
	m.addsession_day = nil
}

// SetCalendarDate sets the "calendar_date" field.
func (m *SessionProgressMutation) SetCalendarDate(t time.Time) {
	m.calendar_date = &t
}

// CalendarDate returns the value of the "calendar_date" field in the mutation.
func (m *SessionProgressMutation) CalendarDate() (r time.Time, exists bool) {
	v := m.calendar_date
	if v == nil {
		return
	}
	return *v, true
}

// OldCalendarDate returns the old "calendar_date" field's value of the SessionProgress entity.
// If the SessionProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionProgressMutation) OldCalendarDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalendarDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalendarDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalendarDate: %w", err)
	}
	return oldValue.CalendarDate, nil
}

// ResetCalendarDate resets all changes to the "calendar_date" field.
func (m *SessionProgressMutation) ResetCalendarDate() {
	m.calendar_date = nil
}

// SetReadingDone sets the "reading_done" field.
func (m *SessionProgressMutation) SetReadingDone(b bool) {
	m.reading_done = &b
}

// ReadingDone returns the value of the "reading_done" field in the mutation.
func (m *SessionProgressMutation) ReadingDone() (r bool, exists bool) {
	v := m.reading_done
	if v == nil {
		return
	}
	return *v, true
}

// OldReadingDone returns the old "reading_done" field's value of the SessionProgress entity.
// If the SessionProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionProgressMutation) OldReadingDone(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadingDone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadingDone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadingDone: %w", err)
	}
	return oldValue.ReadingDone, nil
}

// ResetReadingDone resets all changes to the "reading_done" field.
func (m *SessionProgressMutation) ResetReadingDone() {
	m.reading_done = nil
}

// SetFlashcardsDone sets the "flashcards_done" field.
func (m *SessionProgressMutation) SetFlashcardsDone(b bool) {
	m.flashcards_done = &b
}

// FlashcardsDone returns the value of the "flashcards_done" field in the mutation.
func (m *SessionProgressMutation) FlashcardsDone() (r bool, exists bool) {
	v := m.flashcards_done
	if v == nil {
		return
	}
	return *v, true
}

// OldFlashcardsDone returns the old "flashcards_done" field's value of the SessionProgress entity.
// If the SessionProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionProgressMutation) OldFlashcardsDone(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlashcardsDone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlashcardsDone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlashcardsDone: %w", err)
	}
	return oldValue.FlashcardsDone, nil
}

// ResetFlashcardsDone resets all changes to the "flashcards_done" field.
func (m *SessionProgressMutation) ResetFlashcardsDone() {
	m.flashcards_done = nil
}

// SetQuizDone sets the "quiz_done" field.
func (m *SessionProgressMutation) SetQuizDone(b bool) {
	m.quiz_done = &b
}

// QuizDone returns the value of the "quiz_done" field in the mutation.
func (m *SessionProgressMutation) QuizDone() (r bool, exists bool) {
	v := m.quiz_done
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizDone returns the old "quiz_done" field's value of the SessionProgress entity.
// If the SessionProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionProgressMutation) OldQuizDone(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizDone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizDone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizDone: %w", err)
	}
	return oldValue.QuizDone, nil
}

// ResetQuizDone resets all changes to the "quiz_done" field.
func (m *SessionProgressMutation) ResetQuizDone() {
	m.quiz_done = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *SessionProgressMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SessionProgressMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SessionProgress entity.
// If the SessionProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionProgressMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SessionProgressMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[sessionprogress.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SessionProgressMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[sessionprogress.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SessionProgressMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, sessionprogress.FieldCompletedAt)
}

// Where appends a list predicates to the SessionProgressMutation builder.
func (m *SessionProgressMutation) Where(ps ...predicate.SessionProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionProgress).
func (m *SessionProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionProgressMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session_day != nil {
		fields = append(fields, sessionprogress.FieldSessionDay)
	}
	if m.calendar_date != nil {
		fields = append(fields, sessionprogress.FieldCalendarDate)
	}
	if m.reading_done != nil {
		fields = append(fields, sessionprogress.FieldReadingDone)
	}
	if m.flashcards_done != nil {
		fields = append(fields, sessionprogress.FieldFlashcardsDone)
	}
	if m.quiz_done != nil {
		fields = append(fields, sessionprogress.FieldQuizDone)
	}
	if m.completed_at != nil {
		fields = append(fields, sessionprogress.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionprogress.FieldSessionDay:
		return m.SessionDay()
	case sessionprogress.FieldCalendarDate:
		return m.CalendarDate()
	case sessionprogress.FieldReadingDone:
		return m.ReadingDone()
	case sessionprogress.FieldFlashcardsDone:
		return m.FlashcardsDone()
	case sessionprogress.FieldQuizDone:
		return m.QuizDone()
	case sessionprogress.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionprogress.FieldSessionDay:
		return m.OldSessionDay(ctx)
	case sessionprogress.FieldCalendarDate:
		return m.OldCalendarDate(ctx)
	case sessionprogress.FieldReadingDone:
		return m.OldReadingDone(ctx)
	case sessionprogress.FieldFlashcardsDone:
		return m.OldFlashcardsDone(ctx)
	case sessionprogress.FieldQuizDone:
		return m.OldQuizDone(ctx)
	case sessionprogress.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionprogress.FieldSessionDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionDay(v)
		return nil
	case sessionprogress.FieldCalendarDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalendarDate(v)
		return nil
	case sessionprogress.FieldReadingDone:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadingDone(v)
		return nil
	case sessionprogress.FieldFlashcardsDone:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlashcardsDone(v)
		return nil
	case sessionprogress.FieldQuizDone:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizDone(v)
		return nil
	case sessionprogress.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionProgressMutation) AddedFields() []string {
	var fields []string
	if m.addsession_day != nil {
		fields = append(fields, sessionprogress.FieldSessionDay)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionprogress.FieldSessionDay:
		return m.AddedSessionDay()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionprogress.FieldSessionDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionDay(v)
		return nil
	}
	return fmt.Errorf("unknown SessionProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionprogress.FieldCompletedAt) {
		fields = append(fields, sessionprogress.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionProgressMutation) ClearField(name string) error {
	switch name {
	case sessionprogress.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionProgressMutation) ResetField(name string) error {
	switch name {
	case sessionprogress.FieldSessionDay:
		m.ResetSessionDay()
		return nil
	case sessionprogress.FieldCalendarDate:
		m.ResetCalendarDate()
		return nil
	case sessionprogress.FieldReadingDone:
		m.ResetReadingDone()
		return nil
	case sessionprogress.FieldFlashcardsDone:
		m.ResetFlashcardsDone()
		return nil
	case sessionprogress.FieldQuizDone:
		m.ResetQuizDone()
		return nil
	case sessionprogress.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionProgress edge %s", name)
}

// StudyDayMutation represents an operation that mutates the StudyDay nodes in the graph.
type StudyDayMutation struct {
	config
	op              Op
	typ             string
	id              *int
	day_number      *int
	addday_number   *int
	reading_content *string
	clearedFields   map[string]struct{}
	domain          *int
	cleareddomain   bool
	done            bool
	oldValue        func(context.Context) (*StudyDay, error)
	predicates      []predicate.StudyDay
}

var _ ent.Mutation = (*StudyDayMutation)(nil)

// studydayOption allows management of the mutation configuration using functional options.
type studydayOption func(*StudyDayMutation)

// newStudyDayMutation creates new mutation for the StudyDay entity.
func newStudyDayMutation(c config, op Op, opts ...studydayOption) *StudyDayMutation {
	m := &StudyDayMutation{
		config:        c,
		op:            op,
		typ:           TypeStudyDay,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudyDayID sets the ID field of the mutation.
func withStudyDayID(id int) studydayOption {
	return func(m *StudyDayMutation) {
		var (
			err   error
			once  sync.Once
			value *StudyDay
		)
		m.oldValue = func(ctx context.Context) (*StudyDay, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudyDay.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudyDay sets the old StudyDay of the mutation.
func withStudyDay(node *StudyDay) studydayOption {
	return func(m *StudyDayMutation) {
		m.oldValue = func(context.Context) (*StudyDay, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudyDayMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudyDayMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudyDayMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudyDayMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudyDay.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDayNumber sets the "day_number" field.
func (m *StudyDayMutation) SetDayNumber(i int) {
	m.day_number = &i
	m.addday_number = nil
}

// DayNumber returns the value of the "day_number" field in the mutation.
func (m *StudyDayMutation) DayNumber() (r int, exists bool) {
	v := m.day_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDayNumber returns the old "day_number" field's value of the StudyDay entity.
// If the StudyDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyDayMutation) OldDayNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayNumber: %w", err)
	}
	return oldValue.DayNumber, nil
}

// AddDayNumber adds i to the "day_number" field.
func (m *StudyDayMutation) AddDayNumber(i int) {
	if m.addday_number != nil {
		*m.addday_number += i
	} else {
		m.addday_number = &i
	}
}

// AddedDayNumber returns the value that was added to the "day_number" field in this mutation.
func (m *StudyDayMutation) AddedDayNumber() (r int, exists bool) {
	v := m.addday_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetDayNumber resets all changes to the "day_number" field.
func (m *StudyDayMutation) ResetDayNumber() {
	m.day_number = nil
	m.addday_number = nil
}

// SetDomainID sets the "domain_id" field.
func (m *StudyDayMutation) SetDomainID(i int) {
	m.domain = &i
}

// DomainID returns the value of the "domain_id" field in the mutation.
func (m *StudyDayMutation) DomainID() (r int, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainID returns the old "domain_id" field's value of the StudyDay entity.
// If the StudyDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyDayMutation) OldDomainID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainID: %w", err)
	}
	return oldValue.DomainID, nil
}

// ClearDomainID clears the value of the "domain_id" field.
func (m *StudyDayMutation) ClearDomainID() {
	m.domain = nil
	m.clearedFields[studyday.FieldDomainID] = struct{}{}
}

// DomainIDCleared returns if the "domain_id" field was cleared in this mutation.
func (m *StudyDayMutation) DomainIDCleared() bool {
	_, ok := m.clearedFields[studyday.FieldDomainID]
	return ok
}

// ResetDomainID resets all changes to the "domain_id" field.
func (m *StudyDayMutation) ResetDomainID() {
	m.domain = nil
	delete(m.clearedFields, studyday.FieldDomainID)
}

// SetReadingContent sets the "reading_content" field.
func (m *StudyDayMutation) SetReadingContent(s string) {
	m.reading_content = &s
}

// ReadingContent returns the value of the "reading_content" field in the mutation.
func (m *StudyDayMutation) ReadingContent() (r string, exists bool) {
	v := m.reading_content
	if v == nil {
		return
	}
	return *v, true
}

// OldReadingContent returns the old "reading_content" field's value of the StudyDay entity.
// If the StudyDay object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyDayMutation) OldReadingContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadingContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadingContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadingContent: %w", err)
	}
	return oldValue.ReadingContent, nil
}

// ResetReadingContent resets all changes to the "reading_content" field.
func (m *StudyDayMutation) ResetReadingContent() {
	m.reading_content = nil
}

// ClearDomain clears the "domain" edge to the Domain entity.
func (m *StudyDayMutation) ClearDomain() {
	m.cleareddomain = true
	m.clearedFields[studyday.FieldDomainID] = struct{}{}
}

// DomainCleared reports if the "domain" edge to the Domain entity was cleared.
func (m *StudyDayMutation) DomainCleared() bool {
	return m.DomainIDCleared() || m.cleareddomain
}

// DomainIDs returns the "domain" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DomainID instead. It exists only for internal usage by the builders.
func (m *StudyDayMutation) DomainIDs() (ids []int) {
	if id := m.domain; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDomain resets all changes to the "domain" edge.
func (m *StudyDayMutation) ResetDomain() {
	m.domain = nil
	m.cleareddomain = false
}

// Where appends a list predicates to the StudyDayMutation builder.
func (m *StudyDayMutation) Where(ps ...predicate.StudyDay) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudyDayMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudyDayMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudyDay, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudyDayMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudyDayMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudyDay).
func (m *StudyDayMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudyDayMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.day_number != nil {
		fields = append(fields, studyday.FieldDayNumber)
	}
	if m.domain != nil {
		fields = append(fields, studyday.FieldDomainID)
	}
	if m.reading_content != nil {
		fields = append(fields, studyday.FieldReadingContent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudyDayMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studyday.FieldDayNumber:
		return m.DayNumber()
	case studyday.FieldDomainID:
		return m.DomainID()
	case studyday.FieldReadingContent:
		return m.ReadingContent()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudyDayMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studyday.FieldDayNumber:
		return m.OldDayNumber(ctx)
	case studyday.FieldDomainID:
		return m.OldDomainID(ctx)
	case studyday.FieldReadingContent:
		return m.OldReadingContent(ctx)
	}
	return nil, fmt.Errorf("unknown StudyDay field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyDayMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studyday.FieldDayNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayNumber(v)
		return nil
	case studyday.FieldDomainID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainID(v)
		return nil
	case studyday.FieldReadingContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadingContent(v)
		return nil
	}
	return fmt.Errorf("unknown StudyDay field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudyDayMutation) AddedFields() []string {
	var fields []string
	if m.addday_number != nil {
		fields = append(fields, studyday.FieldDayNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudyDayMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studyday.FieldDayNumber:
		return m.AddedDayNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyDayMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studyday.FieldDayNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDayNumber(v)
		return nil
	}
	return fmt.Errorf("unknown StudyDay numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudyDayMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studyday.FieldDomainID) {
		fields = append(fields, studyday.FieldDomainID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudyDayMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudyDayMutation) ClearField(name string) error {
	switch name {
	case studyday.FieldDomainID:
		m.ClearDomainID()
		return nil
	}
	return fmt.Errorf("unknown StudyDay nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudyDayMutation) ResetField(name string) error {
	switch name {
	case studyday.FieldDayNumber:
		m.ResetDayNumber()
		return nil
	case studyday.FieldDomainID:
		m.ResetDomainID()
		return nil
	case studyday.FieldReadingContent:
		m.ResetReadingContent()
		return nil
	}
	return fmt.Errorf("unknown StudyDay field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudyDayMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.domain != nil {
		edges = append(edges, studyday.EdgeDomain)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudyDayMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case studyday.EdgeDomain:
		if id := m.domain; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudyDayMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudyDayMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudyDayMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddomain {
		edges = append(edges, studyday.EdgeDomain)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudyDayMutation) EdgeCleared(name string) bool {
	switch name {
	case studyday.EdgeDomain:
		return m.cleareddomain
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudyDayMutation) ClearEdge(name string) error {
	switch name {
	case studyday.EdgeDomain:
		m.ClearDomain()
		return nil
	}
	return fmt.Errorf("unknown StudyDay unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudyDayMutation) ResetEdge(name string) error {
	switch name {
	case studyday.EdgeDomain:
		m.ResetDomain()
		return nil
	}
	return fmt.Errorf("unknown StudyDay edge %s", name)
}

// SubtopicMutation represents an operation that mutates the Subtopic nodes in the graph.
type SubtopicMutation struct {
	config
	op                Op
	typ               string
	id                *int
	name              *string
	description       *string
	clearedFields     map[string]struct{}
	domain            *int
	cleareddomain     bool
	flashcards        map[int]struct{}
	removedflashcards map[int]struct{}
	clearedflashcards bool
	questions         map[int]struct{}
	removedquestions  map[int]struct{}
	clearedquestions  bool
	done              bool
	oldValue          func(context.Context) (*Subtopic, error)
	predicates        []predicate.Subtopic
}

var _ ent.Mutation = (*SubtopicMutation)(nil)

// subtopicOption allows management of the mutation configuration using functional options.
type subtopicOption func(*SubtopicMutation)

// newSubtopicMutation creates new mutation for the Subtopic entity.
func newSubtopicMutation(c config, op Op, opts ...subtopicOption) *SubtopicMutation {
	m := &SubtopicMutation{
		config:        c,
		op:            op,
		typ:           TypeSubtopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubtopicID sets the ID field of the mutation.
func withSubtopicID(id int) subtopicOption {
	return func(m *SubtopicMutation) {
		var (
			err   error
			once  sync.Once
			value *Subtopic
		)
		m.oldValue = func(ctx context.Context) (*Subtopic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subtopic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubtopic sets the old Subtopic of the mutation.
func withSubtopic(node *Subtopic) subtopicOption {
	return func(m *SubtopicMutation) {
		m.oldValue = func(context.Context) (*Subtopic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubtopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubtopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubtopicMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubtopicMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subtopic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDomainID sets the "domain_id" field.
func (m *SubtopicMutation) SetDomainID(i int) {
	m.domain = &i
}

// DomainID returns the value of the "domain_id" field in the mutation.
func (m *SubtopicMutation) DomainID() (r int, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainID returns the old "domain_id" field's value of the Subtopic entity.
// If the Subtopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtopicMutation) OldDomainID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainID: %w", err)
	}
	return oldValue.DomainID, nil
}

// ResetDomainID resets all changes to the "domain_id" field.
func (m *SubtopicMutation) ResetDomainID() {
	m.domain = nil
}

// SetName sets the "name" field.
func (m *SubtopicMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SubtopicMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Subtopic entity.
// If the Subtopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtopicMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SubtopicMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *SubtopicMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SubtopicMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Subtopic entity.
// If the Subtopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtopicMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *SubtopicMutation) ResetDescription() {
	m.description = nil
}

// ClearDomain clears the "domain" edge to the Domain entity.
func (m *SubtopicMutation) ClearDomain() {
	m.cleareddomain = true
	m.clearedFields[subtopic.FieldDomainID] = struct{}{}
}

// DomainCleared reports if the "domain" edge to the Domain entity was cleared.
func (m *SubtopicMutation) DomainCleared() bool {
	return m.cleareddomain
}

// DomainIDs returns the "domain" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DomainID instead. It exists only for internal usage by the builders.
func (m *SubtopicMutation) DomainIDs() (ids []int) {
	if id := m.domain; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDomain resets all changes to the "domain" edge.
func (m *SubtopicMutation) ResetDomain() {
	m.domain = nil
	m.cleareddomain = false
}

// AddFlashcardIDs adds the "flashcards" edge to the Flashcard entity by ids.
func (m *SubtopicMutation) AddFlashcardIDs(ids ...int) {
	if m.flashcards == nil {
		m.flashcards = make(map[int]struct{})
	}
	for i := range ids {
		m.flashcards[ids[i]] = struct{}{}
	}
}

// ClearFlashcards clears the "flashcards" edge to the Flashcard entity.
func (m *SubtopicMutation) ClearFlashcards() {
	m.clearedflashcards = true
}

// FlashcardsCleared reports if the "flashcards" edge to the Flashcard entity was cleared.
func (m *SubtopicMutation) FlashcardsCleared() bool {
	return m.clearedflashcards
}

// RemoveFlashcardIDs removes the "flashcards" edge to the Flashcard entity by IDs.
func (m *SubtopicMutation) RemoveFlashcardIDs(ids ...int) {
	if m.removedflashcards == nil {
		m.removedflashcards = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.flashcards, ids[i])
		m.removedflashcards[ids[i]] = struct{}{}
	}
}

// RemovedFlashcards returns the removed IDs of the "flashcards" edge to the Flashcard entity.
func (m *SubtopicMutation) RemovedFlashcardsIDs() (ids []int) {
	for id := range m.removedflashcards {
		ids = append(ids, id)
	}
	return
}

// FlashcardsIDs returns the "flashcards" edge IDs in the mutation.
func (m *SubtopicMutation) FlashcardsIDs() (ids []int) {
	for id := range m.flashcards {
		ids = append(ids, id)
	}
	return
}

// ResetFlashcards resets all changes to the "flashcards" edge.
func (m *SubtopicMutation) ResetFlashcards() {
	m.flashcards = nil
	m.clearedflashcards = false
	m.removedflashcards = nil
}

// AddQuestionIDs adds the "questions" edge to the QuizQuestion entity by ids.
func (m *SubtopicMutation) AddQuestionIDs(ids ...int) {
	if m.questions == nil {
		m.questions = make(map[int]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the QuizQuestion entity.
func (m *SubtopicMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the QuizQuestion entity was cleared.
func (m *SubtopicMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the QuizQuestion entity by IDs.
func (m *SubtopicMutation) RemoveQuestionIDs(ids ...int) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the QuizQuestion entity.
func (m *SubtopicMutation) RemovedQuestionsIDs() (ids []int) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *SubtopicMutation) QuestionsIDs() (ids []int) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *SubtopicMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// Where appends a list predicates to the SubtopicMutation builder.
func (m *SubtopicMutation) Where(ps ...predicate.Subtopic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubtopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubtopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subtopic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubtopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubtopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subtopic).
func (m *SubtopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubtopicMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.domain != nil {
		fields = append(fields, subtopic.FieldDomainID)
	}
	if m.name != nil {
		fields = append(fields, subtopic.FieldName)
	}
	if m.description != nil {
		fields = append(fields, subtopic.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubtopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subtopic.FieldDomainID:
		return m.DomainID()
	case subtopic.FieldName:
		return m.Name()
	case subtopic.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubtopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subtopic.FieldDomainID:
		return m.OldDomainID(ctx)
	case subtopic.FieldName:
		return m.OldName(ctx)
	case subtopic.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown Subtopic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubtopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subtopic.FieldDomainID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainID(v)
		return nil
	case subtopic.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case subtopic.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown Subtopic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubtopicMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubtopicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubtopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Subtopic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubtopicMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubtopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubtopicMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Subtopic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubtopicMutation) ResetField(name string) error {
	switch name {
	case subtopic.FieldDomainID:
		m.ResetDomainID()
		return nil
	case subtopic.FieldName:
		m.ResetName()
		return nil
	case subtopic.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown Subtopic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubtopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.domain != nil {
		edges = append(edges, subtopic.EdgeDomain)
	}
	if m.flashcards != nil {
		edges = append(edges, subtopic.EdgeFlashcards)
	}
	if m.questions != nil {
		edges = append(edges, subtopic.EdgeQuestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubtopicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subtopic.EdgeDomain:
		if id := m.domain; id != nil {
			return []ent.Value{*id}
		}
	case subtopic.EdgeFlashcards:
		ids := make([]ent.Value, 0, len(m.flashcards))
		for id := range m.flashcards {
			ids = append(ids, id)
		}
		return ids
	case subtopic.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubtopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedflashcards != nil {
		edges = append(edges, subtopic.EdgeFlashcards)
	}
	if m.removedquestions != nil {
		edges = append(edges, subtopic.EdgeQuestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubtopicMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case subtopic.EdgeFlashcards:
		ids := make([]ent.Value, 0, len(m.removedflashcards))
		for id := range m.removedflashcards {
			ids = append(ids, id)
		}
		return ids
	case subtopic.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubtopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddomain {
		edges = append(edges, subtopic.EdgeDomain)
	}
	if m.clearedflashcards {
		edges = append(edges, subtopic.EdgeFlashcards)
	}
	if m.clearedquestions {
		edges = append(edges, subtopic.EdgeQuestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubtopicMutation) EdgeCleared(name string) bool {
	switch name {
	case subtopic.EdgeDomain:
		return m.cleareddomain
	case subtopic.EdgeFlashcards:
		return m.clearedflashcards
	case subtopic.EdgeQuestions:
		return m.clearedquestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubtopicMutation) ClearEdge(name string) error {
	switch name {
	case subtopic.EdgeDomain:
		m.ClearDomain()
		return nil
	}
	return fmt.Errorf("unknown Subtopic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubtopicMutation) ResetEdge(name string) error {
	switch name {
	case subtopic.EdgeDomain:
		m.ResetDomain()
		return nil
	case subtopic.EdgeFlashcards:
		m.ResetFlashcards()
		return nil
	case subtopic.EdgeQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown Subtopic edge %s", name)
}

// UserSettingMutation represents an operation that mutates the UserSetting nodes in the graph.
type UserSettingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	key           *string
	val           *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserSetting, error)
	predicates    []predicate.UserSetting
}

var _ ent.Mutation = (*UserSettingMutation)(nil)

// usersettingOption allows management of the mutation configuration using functional options.
type usersettingOption func(*UserSettingMutation)

// newUserSettingMutation creates new mutation for the UserSetting entity.
func newUserSettingMutation(c config, op Op, opts ...usersettingOption) *UserSettingMutation {
	m := &UserSettingMutation{
		config:        c,
		op:            op,
		typ:           TypeUserSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserSettingID sets the ID field of the mutation.
func withUserSettingID(id int) usersettingOption {
	return func(m *UserSettingMutation) {
		var (
			err   error
			once  sync.Once
			value *UserSetting
		)
		m.oldValue = func(ctx context.Context) (*UserSetting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserSetting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserSetting sets the old UserSetting of the mutation.
func withUserSetting(node *UserSetting) usersettingOption {
	return func(m *UserSettingMutation) {
		m.oldValue = func(context.Context) (*UserSetting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserSettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserSettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserSettingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserSettingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserSetting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *UserSettingMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *UserSettingMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the UserSetting entity.
// If the UserSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSettingMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *UserSettingMutation) ResetKey() {
	m.key = nil
}

// SetVal sets the "val" field.
func (m *UserSettingMutation) SetVal(s string) {
	m.val = &s
}

// Val returns the value of the "val" field in the mutation.
func (m *UserSettingMutation) Val() (r string, exists bool) {
	v := m.val
	if v == nil {
		return
	}
	return *v, true
}

// OldVal returns the old "val" field's value of the UserSetting entity.
// If the UserSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSettingMutation) OldVal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVal: %w", err)
	}
	return oldValue.Val, nil
}

// ResetVal resets all changes to the "val" field.
func (m *UserSettingMutation) ResetVal() {
	m.val = nil
}

// Where appends a list predicates to the UserSettingMutation builder.
func (m *UserSettingMutation) Where(ps ...predicate.UserSetting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserSettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserSettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserSetting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserSettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserSettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserSetting).
func (m *UserSettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserSettingMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.key != nil {
		fields = append(fields, usersetting.FieldKey)
	}
	if m.val != nil {
		fields = append(fields, usersetting.FieldVal)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserSettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usersetting.FieldKey:
		return m.Key()
	case usersetting.FieldVal:
		return m.Val()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserSettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usersetting.FieldKey:
		return m.OldKey(ctx)
	case usersetting.FieldVal:
		return m.OldVal(ctx)
	}
	return nil, fmt.Errorf("unknown UserSetting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usersetting.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case usersetting.FieldVal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVal(v)
		return nil
	}
	return fmt.Errorf("unknown UserSetting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserSettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserSettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserSetting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserSettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserSettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserSettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserSetting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserSettingMutation) ResetField(name string) error {
	switch name {
	case usersetting.FieldKey:
		m.ResetKey()
		return nil
	case usersetting.FieldVal:
		m.ResetVal()
		return nil
	}
	return fmt.Errorf("unknown UserSetting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserSettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserSettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserSettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserSettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserSettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserSettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserSettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserSetting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserSettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserSetting edge %s", name)
}
