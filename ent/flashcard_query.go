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
	"github.com/abhisek/examprep/ent/reviewevent"
	"github.com/abhisek/examprep/ent/subtopic"
)

// FlashcardQuery is the builder for querying Flashcard entities.
type FlashcardQuery struct {
	config
	ctx          *QueryContext
	order        []flashcard.OrderOption
	inters       []Interceptor
	predicates   []predicate.Flashcard
	withDomain   *DomainQuery
	withSubtopic *SubtopicQuery
	withReviews  *ReviewEventQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the FlashcardQuery builder.
func (_q *FlashcardQuery) Where(ps ...predicate.Flashcard) *FlashcardQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *FlashcardQuery) Limit(limit int) *FlashcardQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *FlashcardQuery) Offset(offset int) *FlashcardQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *FlashcardQuery) Unique(unique bool) *FlashcardQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *FlashcardQuery) Order(o ...flashcard.OrderOption) *FlashcardQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDomain chains the current query on the "domain" edge.
func (_q *FlashcardQuery) QueryDomain() *DomainQuery {
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
			sqlgraph.From(flashcard.Table, flashcard.FieldID, selector),
			sqlgraph.To(domain.Table, domain.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, flashcard.DomainTable, flashcard.DomainColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySubtopic chains the current query on the "subtopic" edge.
func (_q *FlashcardQuery) QuerySubtopic() *SubtopicQuery {
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
			sqlgraph.From(flashcard.Table, flashcard.FieldID, selector),
			sqlgraph.To(subtopic.Table, subtopic.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, flashcard.SubtopicTable, flashcard.SubtopicColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryReviews chains the current query on the "reviews" edge.
func (_q *FlashcardQuery) QueryReviews() *ReviewEventQuery {
	query := (&ReviewEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(flashcard.Table, flashcard.FieldID, selector),
			sqlgraph.To(reviewevent.Table, reviewevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, flashcard.ReviewsTable, flashcard.ReviewsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Flashcard entity from the query.
// Returns a *NotFoundError when no Flashcard was found.
func (_q *FlashcardQuery) First(ctx context.Context) (*Flashcard, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{flashcard.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *FlashcardQuery) FirstX(ctx context.Context) *Flashcard {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Flashcard ID from the query.
// Returns a *NotFoundError when no Flashcard ID was found.
func (_q *FlashcardQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{flashcard.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *FlashcardQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Flashcard entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Flashcard entity is found.
// Returns a *NotFoundError when no Flashcard entities are found.
func (_q *FlashcardQuery) Only(ctx context.Context) (*Flashcard, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{flashcard.Label}
	default:
		return nil, &NotSingularError{flashcard.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *FlashcardQuery) OnlyX(ctx context.Context) *Flashcard {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Flashcard ID in the query.
// Returns a *NotSingularError when more than one Flashcard ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *FlashcardQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{flashcard.Label}
	default:
		err = &NotSingularError{flashcard.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *FlashcardQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Flashcards.
func (_q *FlashcardQuery) All(ctx context.Context) ([]*Flashcard, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Flashcard, *FlashcardQuery]()
	return withInterceptors[[]*Flashcard](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *FlashcardQuery) AllX(ctx context.Context) []*Flashcard {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Flashcard IDs.
func (_q *FlashcardQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(flashcard.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *FlashcardQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *FlashcardQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*FlashcardQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *FlashcardQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *FlashcardQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *FlashcardQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the FlashcardQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *FlashcardQuery) Clone() *FlashcardQuery {
	if _q == nil {
		return nil
	}
	return &FlashcardQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]flashcard.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.Flashcard{}, _q.predicates...),
		withDomain:   _q.withDomain.Clone(),
		withSubtopic: _q.withSubtopic.Clone(),
		withReviews:  _q.withReviews.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDomain tells the query-builder to eager-load the nodes that are connected to
// the "domain" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FlashcardQuery) WithDomain(opts ...func(*DomainQuery)) *FlashcardQuery {
	query := (&DomainClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDomain = query
	return _q
}

// WithSubtopic tells the query-builder to eager-load the nodes that are connected to
// the "subtopic" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FlashcardQuery) WithSubtopic(opts ...func(*SubtopicQuery)) *FlashcardQuery {
	query := (&SubtopicClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSubtopic = query
	return _q
}

// WithReviews tells the query-builder to eager-load the nodes that are connected to
// the "reviews" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FlashcardQuery) WithReviews(opts ...func(*ReviewEventQuery)) *FlashcardQuery {
	query := (&ReviewEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withReviews = query
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
//	client.Flashcard.Query().
//		GroupBy(flashcard.FieldDomainID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *FlashcardQuery) GroupBy(field string, fields ...string) *FlashcardGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &FlashcardGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = flashcard.Label
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
//	client.Flashcard.Query().
//		Select(flashcard.FieldDomainID).
//		Scan(ctx, &v)
func (_q *FlashcardQuery) Select(fields ...string) *FlashcardSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &FlashcardSelect{FlashcardQuery: _q}
	sbuild.label = flashcard.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a FlashcardSelect configured with the given aggregations.
func (_q *FlashcardQuery) Aggregate(fns ...AggregateFunc) *FlashcardSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *FlashcardQuery) prepareQuery(ctx context.Context) error {
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
		if !flashcard.ValidColumn(f) {
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

func (_q *FlashcardQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Flashcard, error) {
	var (
		nodes       = []*Flashcard{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withDomain != nil,
			_q.withSubtopic != nil,
			_q.withReviews != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Flashcard).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Flashcard{config: _q.config}
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
			func(n *Flashcard, e *Domain) { n.Edges.Domain = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSubtopic; query != nil {
		if err := _q.loadSubtopic(ctx, query, nodes, nil,
			func(n *Flashcard, e *Subtopic) { n.Edges.Subtopic = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withReviews; query != nil {
		if err := _q.loadReviews(ctx, query, nodes,
			func(n *Flashcard) { n.Edges.Reviews = []*ReviewEvent{} },
			func(n *Flashcard, e *ReviewEvent) { n.Edges.Reviews = append(n.Edges.Reviews, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *FlashcardQuery) loadDomain(ctx context.Context, query *DomainQuery, nodes []*Flashcard, init func(*Flashcard), assign func(*Flashcard, *Domain)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Flashcard)
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
func (_q *FlashcardQuery) loadSubtopic(ctx context.Context, query *SubtopicQuery, nodes []*Flashcard, init func(*Flashcard), assign func(*Flashcard, *Subtopic)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Flashcard)
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
func (_q *FlashcardQuery) loadReviews(ctx context.Context, query *ReviewEventQuery, nodes []*Flashcard, init func(*Flashcard), assign func(*Flashcard, *ReviewEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Flashcard)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(reviewevent.FieldFlashcardID)
	}
	query.Where(predicate.ReviewEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(flashcard.ReviewsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FlashcardID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "flashcard_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *FlashcardQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *FlashcardQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(flashcard.Table, flashcard.Columns, sqlgraph.NewFieldSpec(flashcard.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flashcard.FieldID)
		for i := range fields {
			if fields[i] != flashcard.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withDomain != nil {
			_spec.Node.AddColumnOnce(flashcard.FieldDomainID)
		}
		if _q.withSubtopic != nil {
			_spec.Node.AddColumnOnce(flashcard.FieldSubtopicID)
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

func (_q *FlashcardQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(flashcard.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = flashcard.Columns
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

// FlashcardGroupBy is the group-by builder for Flashcard entities.
type FlashcardGroupBy struct {
	selector
	build *FlashcardQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *FlashcardGroupBy) Aggregate(fns ...AggregateFunc) *FlashcardGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *FlashcardGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FlashcardQuery, *FlashcardGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *FlashcardGroupBy) sqlScan(ctx context.Context, root *FlashcardQuery, v any) error {
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

// FlashcardSelect is the builder for selecting fields of Flashcard entities.
type FlashcardSelect struct {
	*FlashcardQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *FlashcardSelect) Aggregate(fns ...AggregateFunc) *FlashcardSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *FlashcardSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FlashcardQuery, *FlashcardSelect](ctx, _s.FlashcardQuery, _s, _s.inters, v)
}

func (_s *FlashcardSelect) sqlScan(ctx context.Context, root *FlashcardQuery, v any) error {
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
