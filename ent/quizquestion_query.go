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
	"github.com/abhisek/examprep/ent/answerevent"
	"github.com/abhisek/examprep/ent/domain"
	"github.com/abhisek/examprep/ent/predicate"
	"github.com/abhisek/examprep/ent/quizquestion"
	"github.com/abhisek/examprep/ent/subtopic"
)

// QuizQuestionQuery is the builder for querying QuizQuestion entities.
type QuizQuestionQuery struct {
	config
	ctx          *QueryContext
	order        []quizquestion.OrderOption
	inters       []Interceptor
	predicates   []predicate.QuizQuestion
	withDomain   *DomainQuery
	withSubtopic *SubtopicQuery
	withAnswers  *AnswerEventQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the QuizQuestionQuery builder.
func (_q *QuizQuestionQuery) Where(ps ...predicate.QuizQuestion) *QuizQuestionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *QuizQuestionQuery) Limit(limit int) *QuizQuestionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *QuizQuestionQuery) Offset(offset int) *QuizQuestionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *QuizQuestionQuery) Unique(unique bool) *QuizQuestionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *QuizQuestionQuery) Order(o ...quizquestion.OrderOption) *QuizQuestionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDomain chains the current query on the "domain" edge.
func (_q *QuizQuestionQuery) QueryDomain() *DomainQuery {
	query := (&DomainClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(quizquestion.Table, quizquestion.FieldID, selector),
			sqlgraph.To(domain.Table, domain.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quizquestion.DomainTable, quizquestion.DomainColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySubtopic chains the current query on the "subtopic" edge.
func (_q *QuizQuestionQuery) QuerySubtopic() *SubtopicQuery {
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
			sqlgraph.From(quizquestion.Table, quizquestion.FieldID, selector),
			sqlgraph.To(subtopic.Table, subtopic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, quizquestion.SubtopicTable, quizquestion.SubtopicColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAnswers chains the current query on the "answers" edge.
func (_q *QuizQuestionQuery) QueryAnswers() *AnswerEventQuery {
	query := (&AnswerEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(quizquestion.Table, quizquestion.FieldID, selector),
			sqlgraph.To(answerevent.Table, answerevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, quizquestion.AnswersTable, quizquestion.AnswersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first QuizQuestion entity from the query.
// Returns a *NotFoundError when no QuizQuestion was found.
func (_q *QuizQuestionQuery) First(ctx context.Context) (*QuizQuestion, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{quizquestion.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *QuizQuestionQuery) FirstX(ctx context.Context) *QuizQuestion {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first QuizQuestion ID from the query.
// Returns a *NotFoundError when no QuizQuestion ID was found.
func (_q *QuizQuestionQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{quizquestion.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *QuizQuestionQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single QuizQuestion entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one QuizQuestion entity is found.
// Returns a *NotFoundError when no QuizQuestion entities are found.
func (_q *QuizQuestionQuery) Only(ctx context.Context) (*QuizQuestion, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{quizquestion.Label}
	default:
		return nil, &NotSingularError{quizquestion.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *QuizQuestionQuery) OnlyX(ctx context.Context) *QuizQuestion {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only QuizQuestion ID in the query.
// Returns a *NotSingularError when more than one QuizQuestion ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *QuizQuestionQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{quizquestion.Label}
	default:
		err = &NotSingularError{quizquestion.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *QuizQuestionQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of QuizQuestions.
func (_q *QuizQuestionQuery) All(ctx context.Context) ([]*QuizQuestion, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*QuizQuestion, *QuizQuestionQuery]()
	return withInterceptors[[]*QuizQuestion](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *QuizQuestionQuery) AllX(ctx context.Context) []*QuizQuestion {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of QuizQuestion IDs.
func (_q *QuizQuestionQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(quizquestion.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *QuizQuestionQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *QuizQuestionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*QuizQuestionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *QuizQuestionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *QuizQuestionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *QuizQuestionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the QuizQuestionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *QuizQuestionQuery) Clone() *QuizQuestionQuery {
	if _q == nil {
		return nil
	}
	return &QuizQuestionQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]quizquestion.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.QuizQuestion{}, _q.predicates...),
		withDomain:   _q.withDomain.Clone(),
		withSubtopic: _q.withSubtopic.Clone(),
		withAnswers:  _q.withAnswers.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDomain tells the query-builder to eager-load the nodes that are connected to
// the "domain" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuizQuestionQuery) WithDomain(opts ...func(*DomainQuery)) *QuizQuestionQuery {
	query := (&DomainClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDomain = query
	return _q
}

// WithSubtopic tells the query-builder to eager-load the nodes that are connected to
// the "subtopic" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuizQuestionQuery) WithSubtopic(opts ...func(*SubtopicQuery)) *QuizQuestionQuery {
	query := (&SubtopicClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSubtopic = query
	return _q
}

// WithAnswers tells the query-builder to eager-load the nodes that are connected to
// the "answers" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *QuizQuestionQuery) WithAnswers(opts ...func(*AnswerEventQuery)) *QuizQuestionQuery {
	query := (&AnswerEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnswers = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DomainID int `json:"domain_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.QuizQuestion.Query().
//		GroupBy(quizquestion.FieldDomainID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *QuizQuestionQuery) GroupBy(field string, fields ...string) *QuizQuestionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &QuizQuestionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = quizquestion.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DomainID int `json:"domain_id,omitempty"`
//	}
//
//	client.QuizQuestion.Query().
//		Select(quizquestion.FieldDomainID).
//		Scan(ctx, &v)
func (_q *QuizQuestionQuery) Select(fields ...string) *QuizQuestionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &QuizQuestionSelect{QuizQuestionQuery: _q}
	sbuild.label = quizquestion.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a QuizQuestionSelect configured with the given aggregations.
func (_q *QuizQuestionQuery) Aggregate(fns ...AggregateFunc) *QuizQuestionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *QuizQuestionQuery) prepareQuery(ctx context.Context) error {
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
		if !quizquestion.ValidColumn(f) {
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

func (_q *QuizQuestionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*QuizQuestion, error) {
	var (
		nodes       = []*QuizQuestion{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withDomain != nil,
			_q.withSubtopic != nil,
			_q.withAnswers != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*QuizQuestion).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &QuizQuestion{config: _q.config}
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
	if query := _q.withDomain; query != nil {
		if err := _q.loadDomain(ctx, query, nodes, nil,
			func(n *QuizQuestion, e *Domain) { n.Edges.Domain = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSubtopic; query != nil {
		if err := _q.loadSubtopic(ctx, query, nodes, nil,
			func(n *QuizQuestion, e *Subtopic) { n.Edges.Subtopic = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAnswers; query != nil {
		if err := _q.loadAnswers(ctx, query, nodes,
			func(n *QuizQuestion) { n.Edges.Answers = []*AnswerEvent{} },
			func(n *QuizQuestion, e *AnswerEvent) { n.Edges.Answers = append(n.Edges.Answers, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *QuizQuestionQuery) loadDomain(ctx context.Context, query *DomainQuery, nodes []*QuizQuestion, init func(*QuizQuestion), assign func(*QuizQuestion, *Domain)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*QuizQuestion)
	for i := range nodes {
		fk := nodes[i].DomainID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(domain.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "domain_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *QuizQuestionQuery) loadSubtopic(ctx context.Context, query *SubtopicQuery, nodes []*QuizQuestion, init func(*QuizQuestion), assign func(*QuizQuestion, *Subtopic)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*QuizQuestion)
	for i := range nodes {
		if nodes[i].SubtopicID == nil {
			continue
		}
		fk := *nodes[i].SubtopicID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(subtopic.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "subtopic_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *QuizQuestionQuery) loadAnswers(ctx context.Context, query *AnswerEventQuery, nodes []*QuizQuestion, init func(*QuizQuestion), assign func(*QuizQuestion, *AnswerEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*QuizQuestion)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(answerevent.FieldQuestionID)
	}
	query.Where(predicate.AnswerEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(quizquestion.AnswersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.QuestionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "question_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *QuizQuestionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *QuizQuestionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(quizquestion.Table, quizquestion.Columns, sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizquestion.FieldID)
		for i := range fields {
			if fields[i] != quizquestion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withDomain != nil {
			_spec.Node.AddColumnOnce(quizquestion.FieldDomainID)
		}
		if _q.withSubtopic != nil {
			_spec.Node.AddColumnOnce(quizquestion.FieldSubtopicID)
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

func (_q *QuizQuestionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(quizquestion.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = quizquestion.Columns
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

// QuizQuestionGroupBy is the group-by builder for QuizQuestion entities.
type QuizQuestionGroupBy struct {
	selector
	build *QuizQuestionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *QuizQuestionGroupBy) Aggregate(fns ...AggregateFunc) *QuizQuestionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *QuizQuestionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuizQuestionQuery, *QuizQuestionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *QuizQuestionGroupBy) sqlScan(ctx context.Context, root *QuizQuestionQuery, v any) error {
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

// QuizQuestionSelect is the builder for selecting fields of QuizQuestion entities.
type QuizQuestionSelect struct {
	*QuizQuestionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *QuizQuestionSelect) Aggregate(fns ...AggregateFunc) *QuizQuestionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *QuizQuestionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*QuizQuestionQuery, *QuizQuestionSelect](ctx, _s.QuizQuestionQuery, _s, _s.inters, v)
}

func (_s *QuizQuestionSelect) sqlScan(ctx context.Context, root *QuizQuestionQuery, v any) error {
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
