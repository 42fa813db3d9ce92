// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicPulseAPI/ent/comment"
	"CivicPulseAPI/ent/predicate"
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/ent/statusupdate"
	"CivicPulseAPI/ent/user"
	"CivicPulseAPI/ent/vote"
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ReportQuery is the builder for querying Report entities.
type ReportQuery struct {
	config
	ctx               *QueryContext
	order             []report.OrderOption
	inters            []Interceptor
	predicates        []predicate.Report
	withReporter      *UserQuery
	withDuplicateOf   *ReportQuery
	withDuplicates    *ReportQuery
	withVotes         *VoteQuery
	withStatusUpdates *StatusUpdateQuery
	withComments      *CommentQuery
	modifiers         []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ReportQuery builder.
func (_q *ReportQuery) Where(ps ...predicate.Report) *ReportQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ReportQuery) Limit(limit int) *ReportQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ReportQuery) Offset(offset int) *ReportQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ReportQuery) Unique(unique bool) *ReportQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ReportQuery) Order(o ...report.OrderOption) *ReportQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryReporter chains the current query on the "reporter" edge.
func (_q *ReportQuery) QueryReporter() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, report.ReporterTable, report.ReporterColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDuplicateOf chains the current query on the "duplicate_of" edge.
func (_q *ReportQuery) QueryDuplicateOf() *ReportQuery {
	query := (&ReportClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, selector),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, report.DuplicateOfTable, report.DuplicateOfColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDuplicates chains the current query on the "duplicates" edge.
func (_q *ReportQuery) QueryDuplicates() *ReportQuery {
	query := (&ReportClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, selector),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.DuplicatesTable, report.DuplicatesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVotes chains the current query on the "votes" edge.
func (_q *ReportQuery) QueryVotes() *VoteQuery {
	query := (&VoteClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, selector),
			sqlgraph.To(vote.Table, vote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.VotesTable, report.VotesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStatusUpdates chains the current query on the "status_updates" edge.
func (_q *ReportQuery) QueryStatusUpdates() *StatusUpdateQuery {
	query := (&StatusUpdateClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, selector),
			sqlgraph.To(statusupdate.Table, statusupdate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.StatusUpdatesTable, report.StatusUpdatesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryComments chains the current query on the "comments" edge.
func (_q *ReportQuery) QueryComments() *CommentQuery {
	query := (&CommentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, selector),
			sqlgraph.To(comment.Table, comment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.CommentsTable, report.CommentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Report entity from the query.
// Returns a *NotFoundError when no Report was found.
func (_q *ReportQuery) First(ctx context.Context) (*Report, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{report.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ReportQuery) FirstX(ctx context.Context) *Report {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Report ID from the query.
// Returns a *NotFoundError when no Report ID was found.
func (_q *ReportQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{report.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ReportQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Report entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Report entity is found.
// Returns a *NotFoundError when no Report entities are found.
func (_q *ReportQuery) Only(ctx context.Context) (*Report, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{report.Label}
	default:
		return nil, &NotSingularError{report.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ReportQuery) OnlyX(ctx context.Context) *Report {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Report ID in the query.
// Returns a *NotSingularError when more than one Report ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ReportQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{report.Label}
	default:
		err = &NotSingularError{report.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ReportQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Reports.
func (_q *ReportQuery) All(ctx context.Context) ([]*Report, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Report, *ReportQuery]()
	return withInterceptors[[]*Report](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ReportQuery) AllX(ctx context.Context) []*Report {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Report IDs.
func (_q *ReportQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(report.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ReportQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ReportQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ReportQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ReportQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ReportQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ReportQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ReportQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ReportQuery) Clone() *ReportQuery {
	if _q == nil {
		return nil
	}
	return &ReportQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]report.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.Report{}, _q.predicates...),
		withReporter:      _q.withReporter.Clone(),
		withDuplicateOf:   _q.withDuplicateOf.Clone(),
		withDuplicates:    _q.withDuplicates.Clone(),
		withVotes:         _q.withVotes.Clone(),
		withStatusUpdates: _q.withStatusUpdates.Clone(),
		withComments:      _q.withComments.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithReporter tells the query-builder to eager-load the nodes that are connected to
// the "reporter" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ReportQuery) WithReporter(opts ...func(*UserQuery)) *ReportQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withReporter = query
	return _q
}

// WithDuplicateOf tells the query-builder to eager-load the nodes that are connected to
// the "duplicate_of" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ReportQuery) WithDuplicateOf(opts ...func(*ReportQuery)) *ReportQuery {
	query := (&ReportClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDuplicateOf = query
	return _q
}

// WithDuplicates tells the query-builder to eager-load the nodes that are connected to
// the "duplicates" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ReportQuery) WithDuplicates(opts ...func(*ReportQuery)) *ReportQuery {
	query := (&ReportClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDuplicates = query
	return _q
}

// WithVotes tells the query-builder to eager-load the nodes that are connected to
// the "votes" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ReportQuery) WithVotes(opts ...func(*VoteQuery)) *ReportQuery {
	query := (&VoteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVotes = query
	return _q
}

// WithStatusUpdates tells the query-builder to eager-load the nodes that are connected to
// the "status_updates" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ReportQuery) WithStatusUpdates(opts ...func(*StatusUpdateQuery)) *ReportQuery {
	query := (&StatusUpdateClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStatusUpdates = query
	return _q
}

// WithComments tells the query-builder to eager-load the nodes that are connected to
// the "comments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ReportQuery) WithComments(opts ...func(*CommentQuery)) *ReportQuery {
	query := (&CommentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withComments = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Report.Query().
//		GroupBy(report.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ReportQuery) GroupBy(field string, fields ...string) *ReportGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ReportGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = report.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.Report.Query().
//		Select(report.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *ReportQuery) Select(fields ...string) *ReportSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ReportSelect{ReportQuery: _q}
	sbuild.label = report.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ReportSelect configured with the given aggregations.
func (_q *ReportQuery) Aggregate(fns ...AggregateFunc) *ReportSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ReportQuery) prepareQuery(ctx context.Context) error {
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
		if !report.ValidColumn(f) {
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

func (_q *ReportQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Report, error) {
	var (
		nodes       = []*Report{}
		_spec       = _q.querySpec()
		loadedTypes = [6]bool{
			_q.withReporter != nil,
			_q.withDuplicateOf != nil,
			_q.withDuplicates != nil,
			_q.withVotes != nil,
			_q.withStatusUpdates != nil,
			_q.withComments != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Report).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Report{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
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
	if query := _q.withReporter; query != nil {
		if err := _q.loadReporter(ctx, query, nodes, nil,
			func(n *Report, e *User) { n.Edges.Reporter = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDuplicateOf; query != nil {
		if err := _q.loadDuplicateOf(ctx, query, nodes, nil,
			func(n *Report, e *Report) { n.Edges.DuplicateOf = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDuplicates; query != nil {
		if err := _q.loadDuplicates(ctx, query, nodes,
			func(n *Report) { n.Edges.Duplicates = []*Report{} },
			func(n *Report, e *Report) { n.Edges.Duplicates = append(n.Edges.Duplicates, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withVotes; query != nil {
		if err := _q.loadVotes(ctx, query, nodes,
			func(n *Report) { n.Edges.Votes = []*Vote{} },
			func(n *Report, e *Vote) { n.Edges.Votes = append(n.Edges.Votes, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStatusUpdates; query != nil {
		if err := _q.loadStatusUpdates(ctx, query, nodes,
			func(n *Report) { n.Edges.StatusUpdates = []*StatusUpdate{} },
			func(n *Report, e *StatusUpdate) { n.Edges.StatusUpdates = append(n.Edges.StatusUpdates, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withComments; query != nil {
		if err := _q.loadComments(ctx, query, nodes,
			func(n *Report) { n.Edges.Comments = []*Comment{} },
			func(n *Report, e *Comment) { n.Edges.Comments = append(n.Edges.Comments, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ReportQuery) loadReporter(ctx context.Context, query *UserQuery, nodes []*Report, init func(*Report), assign func(*Report, *User)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Report)
	for i := range nodes {
		fk := nodes[i].ReporterID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "reporter_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ReportQuery) loadDuplicateOf(ctx context.Context, query *ReportQuery, nodes []*Report, init func(*Report), assign func(*Report, *Report)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Report)
	for i := range nodes {
		if nodes[i].DuplicateOfID == nil {
			continue
		}
		fk := *nodes[i].DuplicateOfID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(report.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "duplicate_of_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ReportQuery) loadDuplicates(ctx context.Context, query *ReportQuery, nodes []*Report, init func(*Report), assign func(*Report, *Report)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Report)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(report.FieldDuplicateOfID)
	}
	query.Where(predicate.Report(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(report.DuplicatesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DuplicateOfID
		if fk == nil {
			return fmt.Errorf(`foreign-key "duplicate_of_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "duplicate_of_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ReportQuery) loadVotes(ctx context.Context, query *VoteQuery, nodes []*Report, init func(*Report), assign func(*Report, *Vote)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Report)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(vote.FieldReportID)
	}
	query.Where(predicate.Vote(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(report.VotesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ReportID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "report_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ReportQuery) loadStatusUpdates(ctx context.Context, query *StatusUpdateQuery, nodes []*Report, init func(*Report), assign func(*Report, *StatusUpdate)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Report)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(statusupdate.FieldReportID)
	}
	query.Where(predicate.StatusUpdate(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(report.StatusUpdatesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ReportID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "report_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ReportQuery) loadComments(ctx context.Context, query *CommentQuery, nodes []*Report, init func(*Report), assign func(*Report, *Comment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Report)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(comment.FieldReportID)
	}
	query.Where(predicate.Comment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(report.CommentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ReportID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "report_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ReportQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ReportQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for i := range fields {
			if fields[i] != report.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withReporter != nil {
			_spec.Node.AddColumnOnce(report.FieldReporterID)
		}
		if _q.withDuplicateOf != nil {
			_spec.Node.AddColumnOnce(report.FieldDuplicateOfID)
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

func (_q *ReportQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(report.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = report.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
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

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *ReportQuery) ForUpdate(opts ...sql.LockOption) *ReportQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *ReportQuery) ForShare(opts ...sql.LockOption) *ReportQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ReportGroupBy is the group-by builder for Report entities.
type ReportGroupBy struct {
	selector
	build *ReportQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ReportGroupBy) Aggregate(fns ...AggregateFunc) *ReportGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ReportGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReportQuery, *ReportGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ReportGroupBy) sqlScan(ctx context.Context, root *ReportQuery, v any) error {
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

// ReportSelect is the builder for selecting fields of Report entities.
type ReportSelect struct {
	*ReportQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ReportSelect) Aggregate(fns ...AggregateFunc) *ReportSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ReportSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReportQuery, *ReportSelect](ctx, _s.ReportQuery, _s, _s.inters, v)
}

func (_s *ReportSelect) sqlScan(ctx context.Context, root *ReportQuery, v any) error {
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
