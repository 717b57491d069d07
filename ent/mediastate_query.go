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
	"github.com/ddevcap/watchsync/ent/guidpointer"
	"github.com/ddevcap/watchsync/ent/mediastate"
	"github.com/ddevcap/watchsync/ent/predicate"
)

// MediaStateQuery is the builder for querying MediaState entities.
type MediaStateQuery struct {
	config
	ctx          *QueryContext
	order        []mediastate.OrderOption
	inters       []Interceptor
	predicates   []predicate.MediaState
	withPointers *GuidPointerQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MediaStateQuery builder.
func (_q *MediaStateQuery) Where(ps ...predicate.MediaState) *MediaStateQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MediaStateQuery) Limit(limit int) *MediaStateQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MediaStateQuery) Offset(offset int) *MediaStateQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MediaStateQuery) Unique(unique bool) *MediaStateQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MediaStateQuery) Order(o ...mediastate.OrderOption) *MediaStateQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPointers chains the current query on the "pointers" edge.
func (_q *MediaStateQuery) QueryPointers() *GuidPointerQuery {
	query := (&GuidPointerClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(mediastate.Table, mediastate.FieldID, selector),
			sqlgraph.To(guidpointer.Table, guidpointer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, mediastate.PointersTable, mediastate.PointersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first MediaState entity from the query.
// Returns a *NotFoundError when no MediaState was found.
func (_q *MediaStateQuery) First(ctx context.Context) (*MediaState, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{mediastate.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MediaStateQuery) FirstX(ctx context.Context) *MediaState {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MediaState ID from the query.
// Returns a *NotFoundError when no MediaState ID was found.
func (_q *MediaStateQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{mediastate.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MediaStateQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MediaState entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MediaState entity is found.
// Returns a *NotFoundError when no MediaState entities are found.
func (_q *MediaStateQuery) Only(ctx context.Context) (*MediaState, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{mediastate.Label}
	default:
		return nil, &NotSingularError{mediastate.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MediaStateQuery) OnlyX(ctx context.Context) *MediaState {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MediaState ID in the query.
// Returns a *NotSingularError when more than one MediaState ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MediaStateQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{mediastate.Label}
	default:
		err = &NotSingularError{mediastate.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MediaStateQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MediaStates.
func (_q *MediaStateQuery) All(ctx context.Context) ([]*MediaState, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MediaState, *MediaStateQuery]()
	return withInterceptors[[]*MediaState](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MediaStateQuery) AllX(ctx context.Context) []*MediaState {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MediaState IDs.
func (_q *MediaStateQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(mediastate.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MediaStateQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MediaStateQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MediaStateQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MediaStateQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MediaStateQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *MediaStateQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MediaStateQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MediaStateQuery) Clone() *MediaStateQuery {
	if _q == nil {
		return nil
	}
	return &MediaStateQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]mediastate.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.MediaState{}, _q.predicates...),
		withPointers: _q.withPointers.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPointers tells the query-builder to eager-load the nodes that are connected to
// the "pointers" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MediaStateQuery) WithPointers(opts ...func(*GuidPointerQuery)) *MediaStateQuery {
	query := (&GuidPointerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPointers = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Type string `json:"type,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.MediaState.Query().
//		GroupBy(mediastate.FieldType).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *MediaStateQuery) GroupBy(field string, fields ...string) *MediaStateGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MediaStateGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = mediastate.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Type string `json:"type,omitempty"`
//	}
//
//	client.MediaState.Query().
//		Select(mediastate.FieldType).
//		Scan(ctx, &v)
func (_q *MediaStateQuery) Select(fields ...string) *MediaStateSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MediaStateSelect{MediaStateQuery: _q}
	sbuild.label = mediastate.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MediaStateSelect configured with the given aggregations.
func (_q *MediaStateQuery) Aggregate(fns ...AggregateFunc) *MediaStateSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MediaStateQuery) prepareQuery(ctx context.Context) error {
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
		if !mediastate.ValidColumn(f) {
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

func (_q *MediaStateQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MediaState, error) {
	var (
		nodes       = []*MediaState{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withPointers != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MediaState).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MediaState{config: _q.config}
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
	if query := _q.withPointers; query != nil {
		if err := _q.loadPointers(ctx, query, nodes,
			func(n *MediaState) { n.Edges.Pointers = []*GuidPointer{} },
			func(n *MediaState, e *GuidPointer) { n.Edges.Pointers = append(n.Edges.Pointers, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MediaStateQuery) loadPointers(ctx context.Context, query *GuidPointerQuery, nodes []*MediaState, init func(*MediaState), assign func(*MediaState, *GuidPointer)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*MediaState)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.GuidPointer(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(mediastate.PointersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.media_state_pointers
		if fk == nil {
			return fmt.Errorf(`foreign-key "media_state_pointers" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "media_state_pointers" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *MediaStateQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MediaStateQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(mediastate.Table, mediastate.Columns, sqlgraph.NewFieldSpec(mediastate.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mediastate.FieldID)
		for i := range fields {
			if fields[i] != mediastate.FieldID {
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

func (_q *MediaStateQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(mediastate.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = mediastate.Columns
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

// MediaStateGroupBy is the group-by builder for MediaState entities.
type MediaStateGroupBy struct {
	selector
	build *MediaStateQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MediaStateGroupBy) Aggregate(fns ...AggregateFunc) *MediaStateGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MediaStateGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MediaStateQuery, *MediaStateGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MediaStateGroupBy) sqlScan(ctx context.Context, root *MediaStateQuery, v any) error {
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

// MediaStateSelect is the builder for selecting fields of MediaState entities.
type MediaStateSelect struct {
	*MediaStateQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MediaStateSelect) Aggregate(fns ...AggregateFunc) *MediaStateSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MediaStateSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MediaStateQuery, *MediaStateSelect](ctx, _s.MediaStateQuery, _s, _s.inters, v)
}

func (_s *MediaStateSelect) sqlScan(ctx context.Context, root *MediaStateQuery, v any) error {
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
