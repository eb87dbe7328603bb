// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examprep/ent/domain"
	"github.com/abhisek/examprep/ent/flashcard"
	"github.com/abhisek/examprep/ent/predicate"
	"github.com/abhisek/examprep/ent/quizquestion"
	"github.com/abhisek/examprep/ent/studyday"
	"github.com/abhisek/examprep/ent/subtopic"
)

// DomainQuery is the builder for querying Domain entities.
type DomainQuery struct {
	config
	ctx            *QueryContext
	order          []domain.OrderOption
	inters         []Interceptor
	predicates     []predicate.Domain
	withSubtopics  *SubtopicQuery
	withFlashcards *FlashcardQuery
	withQuestions  *QuizQuestionQuery
	withStudyDays  *StudyDayQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DomainQuery builder.
func (_q *DomainQuery) Where(ps ...predicate.Domain) *DomainQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DomainQuery) Limit(limit int) *DomainQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DomainQuery) Offset(offset int) *DomainQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DomainQuery) Unique(unique bool) *DomainQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DomainQuery) Order(o ...domain.OrderOption) *DomainQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySubtopics chains the current query on the "subtopics" edge.
func (_q *DomainQuery) QuerySubtopics() *SubtopicQuery {
	query := (&SubtopicClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(domain.Table, domain.FieldID, selector),
			sqlgraph.To(subtopic.Table, subtopic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, domain.SubtopicsTable, domain.SubtopicsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFlashcards chains the current query on the "flashcards" edge.
func (_q *DomainQuery) QueryFlashcards() *FlashcardQuery {
	query := (&FlashcardClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(domain.Table, domain.FieldID, selector),
			sqlgraph.To(flashcard.Table, flashcard.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, domain.FlashcardsTable, domain.FlashcardsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryQuestions chains the current query on the "questions" edge.
func (_q *DomainQuery) QueryQuestions() *QuizQuestionQuery {
	query := (&QuizQuestionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(domain.Table, domain.FieldID, selector),
			sqlgraph.To(quizquestion.Table, quizquestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, domain.QuestionsTable, domain.QuestionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStudyDays chains the current query on the "study_days" edge.
func (_q *DomainQuery) QueryStudyDays() *StudyDayQuery {
	query := (&StudyDayClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(domain.Table, domain.FieldID, selector),
			sqlgraph.To(studyday.Table, studyday.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, domain.StudyDaysTable, domain.StudyDaysColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Domain entity from the query.
// Returns a *NotFoundError when no Domain was found.
func (_q *DomainQuery) First(ctx context.Context) (*Domain, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{domain.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DomainQuery) FirstX(ctx context.Context) *Domain {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Domain ID from the query.
// Returns a *NotFoundError when no Domain ID was found.
func (_q *DomainQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{domain.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DomainQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Domain entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Domain entity is found.
// Returns a *NotFoundError when no Domain entities are found.
func (_q *DomainQuery) Only(ctx context.Context) (*Domain, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{domain.Label}
	default:
		return nil, &NotSingularError{domain.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DomainQuery) OnlyX(ctx context.Context) *Domain {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Domain ID in the query.
// Returns a *NotSingularError when more than one Domain ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DomainQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{domain.Label}
	default:
		err = &NotSingularError{domain.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DomainQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Domains.
func (_q *DomainQuery) All(ctx context.Context) ([]*Domain, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Domain, *DomainQuery]()
	return withInterceptors[[]*Domain](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DomainQuery) AllX(ctx context.Context) []*Domain {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Domain IDs.
func (_q *DomainQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(domain.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DomainQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DomainQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DomainQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DomainQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DomainQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *DomainQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DomainQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DomainQuery) Clone() *DomainQuery {
	if _q == nil {
		return nil
	}
	return &DomainQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]domain.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.Domain{}, _q.predicates...),
		withSubtopics:  _q.withSubtopics.Clone(),
		withFlashcards: _q.withFlashcards.Clone(),
		withQuestions:  _q.withQuestions.Clone(),
		withStudyDays:  _q.withStudyDays.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSubtopics tells the query-builder to eager-load the nodes that are connected to
// the "subtopics" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DomainQuery) WithSubtopics(opts ...func(*SubtopicQuery)) *DomainQuery {
	query := (&SubtopicClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSubtopics = query
	return _q
}

// WithFlashcards tells the query-builder to eager-load the nodes that are connected to
// the "flashcards" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DomainQuery) WithFlashcards(opts ...func(*FlashcardQuery)) *DomainQuery {
	query := (&FlashcardClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFlashcards = query
	return _q
}

// WithQuestions tells the query-builder to eager-load the nodes that are connected to
// the "questions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DomainQuery) WithQuestions(opts ...func(*QuizQuestionQuery)) *DomainQuery {
	query := (&QuizQuestionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQuestions = query
	return _q
}

// WithStudyDays tells the query-builder to eager-load the nodes that are connected to
// the "study_days" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DomainQuery) WithStudyDays(opts ...func(*StudyDayQuery)) *DomainQuery {
	query := (&StudyDayClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStudyDays = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Domain.Query().
//		GroupBy(domain.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DomainQuery) GroupBy(field string, fields ...string) *DomainGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DomainGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = domain.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Domain.Query().
//		Select(domain.FieldName).
//		Scan(ctx, &v)
func (_q *DomainQuery) Select(fields ...string) *DomainSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DomainSelect{DomainQuery: _q}
	sbuild.label = domain.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DomainSelect configured with the given aggregations.
func (_q *DomainQuery) Aggregate(fns ...AggregateFunc) *DomainSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DomainQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !domain.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *DomainQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Domain, error) {
	var (
		nodes       = []*Domain{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withSubtopics != nil,
			_q.withFlashcards != nil,
			_q.withQuestions != nil,
			_q.withStudyDays != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Domain).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Domain{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withSubtopics; query != nil {
		if err := _q.loadSubtopics(ctx, query, nodes,
			func(n *Domain) { n.Edges.Subtopics = []*Subtopic{} },
			func(n *Domain, e *Subtopic) { n.Edges.Subtopics = append(n.Edges.Subtopics, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFlashcards; query != nil {
		if err := _q.loadFlashcards(ctx, query, nodes,
			func(n *Domain) { n.Edges.Flashcards = []*Flashcard{} },
			func(n *Domain, e *Flashcard) { n.Edges.Flashcards = append(n.Edges.Flashcards, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withQuestions; query != nil {
		if err := _q.loadQuestions(ctx, query, nodes,
			func(n *Domain) { n.Edges.Questions = []*QuizQuestion{} },
			func(n *Domain, e *QuizQuestion) { n.Edges.Questions = append(n.Edges.Questions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStudyDays; query != nil {
		if err := _q.loadStudyDays(ctx, query, nodes,
			func(n *Domain) { n.Edges.StudyDays = []*StudyDay{} },
			func(n *Domain, e *StudyDay) { n.Edges.StudyDays = append(n.Edges.StudyDays, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DomainQuery) loadSubtopics(ctx context.Context, query *SubtopicQuery, nodes []*Domain, init func(*Domain), assign func(*Domain, *Subtopic)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Domain)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(subtopic.FieldDomainID)
	}
	query.Where(predicate.Subtopic(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(domain.SubtopicsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DomainID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "domain_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DomainQuery) loadFlashcards(ctx context.Context, query *FlashcardQuery, nodes []*Domain, init func(*Domain), assign func(*Domain, *Flashcard)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Domain)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(flashcard.FieldDomainID)
	}
	query.Where(predicate.Flashcard(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(domain.FlashcardsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DomainID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "domain_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DomainQuery) loadQuestions(ctx context.Context, query *QuizQuestionQuery, nodes []*Domain, init func(*Domain), assign func(*Domain, *QuizQuestion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Domain)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(quizquestion.FieldDomainID)
	}
	query.Where(predicate.QuizQuestion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(domain.QuestionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DomainID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "domain_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DomainQuery) loadStudyDays(ctx context.Context, query *StudyDayQuery, nodes []*Domain, init func(*Domain), assign func(*Domain, *StudyDay)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Domain)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(studyday.FieldDomainID)
	}
	query.Where(predicate.StudyDay(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(domain.StudyDaysColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DomainID
		if fk == nil {
			return fmt.Errorf(`foreign-key "domain_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "domain_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DomainQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DomainQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(domain.Table, domain.Columns, sqlgraph.NewFieldSpec(domain.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, domain.FieldID)
		for i := range fields {
			if fields[i] != domain.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *DomainQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(domain.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = domain.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DomainGroupBy is the group-by builder for Domain entities.
type DomainGroupBy struct {
	selector
	build *DomainQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DomainGroupBy) Aggregate(fns ...AggregateFunc) *DomainGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DomainGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DomainQuery, *DomainGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DomainGroupBy) sqlScan(ctx context.Context, root *DomainQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DomainSelect is the builder for selecting fields of Domain entities.
type DomainSelect struct {
	*DomainQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DomainSelect) Aggregate(fns ...AggregateFunc) *DomainSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DomainSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DomainQuery, *DomainSelect](ctx, _s.DomainQuery, _s, _s.inters, v)
}

func (_s *DomainSelect) sqlScan(ctx context.Context, root *DomainQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
