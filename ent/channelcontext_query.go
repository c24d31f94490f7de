// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/channelcontext"
	"github.com/codeready-toolchain/warden/ent/permissionset"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// ChannelContextQuery is the builder for querying ChannelContext entities.
type ChannelContextQuery struct {
	config
	ctx               *QueryContext
	order             []channelcontext.OrderOption
	inters            []Interceptor
	predicates        []predicate.ChannelContext
	withPermissionSet *PermissionSetQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ChannelContextQuery builder.
func (_q *ChannelContextQuery) Where(ps ...predicate.ChannelContext) *ChannelContextQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ChannelContextQuery) Limit(limit int) *ChannelContextQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ChannelContextQuery) Offset(offset int) *ChannelContextQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ChannelContextQuery) Unique(unique bool) *ChannelContextQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ChannelContextQuery) Order(o ...channelcontext.OrderOption) *ChannelContextQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPermissionSet chains the current query on the "permission_set" edge.
func (_q *ChannelContextQuery) QueryPermissionSet() *PermissionSetQuery {
	query := (&PermissionSetClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(channelcontext.Table, channelcontext.FieldID, selector),
			sqlgraph.To(permissionset.Table, permissionset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, channelcontext.PermissionSetTable, channelcontext.PermissionSetColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ChannelContext entity from the query.
// Returns a *NotFoundError when no ChannelContext was found.
func (_q *ChannelContextQuery) First(ctx context.Context) (*ChannelContext, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{channelcontext.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ChannelContextQuery) FirstX(ctx context.Context) *ChannelContext {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ChannelContext ID from the query.
// Returns a *NotFoundError when no ChannelContext ID was found.
func (_q *ChannelContextQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{channelcontext.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ChannelContextQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ChannelContext entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ChannelContext entity is found.
// Returns a *NotFoundError when no ChannelContext entities are found.
func (_q *ChannelContextQuery) Only(ctx context.Context) (*ChannelContext, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{channelcontext.Label}
	default:
		return nil, &NotSingularError{channelcontext.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ChannelContextQuery) OnlyX(ctx context.Context) *ChannelContext {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ChannelContext ID in the query.
// Returns a *NotSingularError when more than one ChannelContext ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ChannelContextQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{channelcontext.Label}
	default:
		err = &NotSingularError{channelcontext.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ChannelContextQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ChannelContexts.
func (_q *ChannelContextQuery) All(ctx context.Context) ([]*ChannelContext, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ChannelContext, *ChannelContextQuery]()
	return withInterceptors[[]*ChannelContext](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ChannelContextQuery) AllX(ctx context.Context) []*ChannelContext {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ChannelContext IDs.
func (_q *ChannelContextQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(channelcontext.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ChannelContextQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ChannelContextQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ChannelContextQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ChannelContextQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ChannelContextQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ChannelContextQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ChannelContextQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ChannelContextQuery) Clone() *ChannelContextQuery {
	if _q == nil {
		return nil
	}
	return &ChannelContextQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]channelcontext.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.ChannelContext{}, _q.predicates...),
		withPermissionSet: _q.withPermissionSet.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPermissionSet tells the query-builder to eager-load the nodes that are connected to
// the "permission_set" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChannelContextQuery) WithPermissionSet(opts ...func(*PermissionSetQuery)) *ChannelContextQuery {
	query := (&PermissionSetClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPermissionSet = query
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
//	client.ChannelContext.Query().
//		GroupBy(channelcontext.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ChannelContextQuery) GroupBy(field string, fields ...string) *ChannelContextGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ChannelContextGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = channelcontext.Label
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
//	client.ChannelContext.Query().
//		Select(channelcontext.FieldName).
//		Scan(ctx, &v)
func (_q *ChannelContextQuery) Select(fields ...string) *ChannelContextSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ChannelContextSelect{ChannelContextQuery: _q}
	sbuild.label = channelcontext.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ChannelContextSelect configured with the given aggregations.
func (_q *ChannelContextQuery) Aggregate(fns ...AggregateFunc) *ChannelContextSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ChannelContextQuery) prepareQuery(ctx context.Context) error {
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
		if !channelcontext.ValidColumn(f) {
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

func (_q *ChannelContextQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ChannelContext, error) {
	var (
		nodes       = []*ChannelContext{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withPermissionSet != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ChannelContext).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ChannelContext{config: _q.config}
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
	if query := _q.withPermissionSet; query != nil {
		if err := _q.loadPermissionSet(ctx, query, nodes, nil,
			func(n *ChannelContext, e *PermissionSet) { n.Edges.PermissionSet = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ChannelContextQuery) loadPermissionSet(ctx context.Context, query *PermissionSetQuery, nodes []*ChannelContext, init func(*ChannelContext), assign func(*ChannelContext, *PermissionSet)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ChannelContext)
	for i := range nodes {
		if nodes[i].PermissionSetID == nil {
			continue
		}
		fk := *nodes[i].PermissionSetID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(permissionset.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "permission_set_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ChannelContextQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ChannelContextQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(channelcontext.Table, channelcontext.Columns, sqlgraph.NewFieldSpec(channelcontext.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, channelcontext.FieldID)
		for i := range fields {
			if fields[i] != channelcontext.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPermissionSet != nil {
			_spec.Node.AddColumnOnce(channelcontext.FieldPermissionSetID)
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

func (_q *ChannelContextQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(channelcontext.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = channelcontext.Columns
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

// ChannelContextGroupBy is the group-by builder for ChannelContext entities.
type ChannelContextGroupBy struct {
	selector
	build *ChannelContextQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ChannelContextGroupBy) Aggregate(fns ...AggregateFunc) *ChannelContextGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ChannelContextGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ChannelContextQuery, *ChannelContextGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ChannelContextGroupBy) sqlScan(ctx context.Context, root *ChannelContextQuery, v any) error {
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

// ChannelContextSelect is the builder for selecting fields of ChannelContext entities.
type ChannelContextSelect struct {
	*ChannelContextQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ChannelContextSelect) Aggregate(fns ...AggregateFunc) *ChannelContextSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ChannelContextSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ChannelContextQuery, *ChannelContextSelect](ctx, _s.ChannelContextQuery, _s, _s.inters, v)
}

func (_s *ChannelContextSelect) sqlScan(ctx context.Context, root *ChannelContextQuery, v any) error {
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
