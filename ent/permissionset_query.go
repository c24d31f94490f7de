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
	"github.com/codeready-toolchain/warden/ent/agent"
	"github.com/codeready-toolchain/warden/ent/grant"
	"github.com/codeready-toolchain/warden/ent/permissionset"
	"github.com/codeready-toolchain/warden/ent/predicate"
	"github.com/codeready-toolchain/warden/ent/user"
)

// PermissionSetQuery is the builder for querying PermissionSet entities.
type PermissionSetQuery struct {
	config
	ctx                   *QueryContext
	order                 []permissionset.OrderOption
	inters                []Interceptor
	predicates            []predicate.PermissionSet
	withGrants            *GrantQuery
	withWhitelistedUsers  *UserQuery
	withWhitelistedAgents *AgentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PermissionSetQuery builder.
func (_q *PermissionSetQuery) Where(ps ...predicate.PermissionSet) *PermissionSetQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PermissionSetQuery) Limit(limit int) *PermissionSetQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PermissionSetQuery) Offset(offset int) *PermissionSetQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PermissionSetQuery) Unique(unique bool) *PermissionSetQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PermissionSetQuery) Order(o ...permissionset.OrderOption) *PermissionSetQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryGrants chains the current query on the "grants" edge.
func (_q *PermissionSetQuery) QueryGrants() *GrantQuery {
	query := (&GrantClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(permissionset.Table, permissionset.FieldID, selector),
			sqlgraph.To(grant.Table, grant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, permissionset.GrantsTable, permissionset.GrantsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryWhitelistedUsers chains the current query on the "whitelisted_users" edge.
func (_q *PermissionSetQuery) QueryWhitelistedUsers() *UserQuery {
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
			sqlgraph.From(permissionset.Table, permissionset.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, permissionset.WhitelistedUsersTable, permissionset.WhitelistedUsersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryWhitelistedAgents chains the current query on the "whitelisted_agents" edge.
func (_q *PermissionSetQuery) QueryWhitelistedAgents() *AgentQuery {
	query := (&AgentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(permissionset.Table, permissionset.FieldID, selector),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, permissionset.WhitelistedAgentsTable, permissionset.WhitelistedAgentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PermissionSet entity from the query.
// Returns a *NotFoundError when no PermissionSet was found.
func (_q *PermissionSetQuery) First(ctx context.Context) (*PermissionSet, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{permissionset.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PermissionSetQuery) FirstX(ctx context.Context) *PermissionSet {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PermissionSet ID from the query.
// Returns a *NotFoundError when no PermissionSet ID was found.
func (_q *PermissionSetQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{permissionset.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PermissionSetQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PermissionSet entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PermissionSet entity is found.
// Returns a *NotFoundError when no PermissionSet entities are found.
func (_q *PermissionSetQuery) Only(ctx context.Context) (*PermissionSet, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{permissionset.Label}
	default:
		return nil, &NotSingularError{permissionset.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PermissionSetQuery) OnlyX(ctx context.Context) *PermissionSet {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PermissionSet ID in the query.
// Returns a *NotSingularError when more than one PermissionSet ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PermissionSetQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{permissionset.Label}
	default:
		err = &NotSingularError{permissionset.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PermissionSetQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PermissionSets.
func (_q *PermissionSetQuery) All(ctx context.Context) ([]*PermissionSet, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PermissionSet, *PermissionSetQuery]()
	return withInterceptors[[]*PermissionSet](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PermissionSetQuery) AllX(ctx context.Context) []*PermissionSet {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PermissionSet IDs.
func (_q *PermissionSetQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(permissionset.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PermissionSetQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PermissionSetQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PermissionSetQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PermissionSetQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PermissionSetQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PermissionSetQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PermissionSetQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PermissionSetQuery) Clone() *PermissionSetQuery {
	if _q == nil {
		return nil
	}
	return &PermissionSetQuery{
		config:                _q.config,
		ctx:                   _q.ctx.Clone(),
		order:                 append([]permissionset.OrderOption{}, _q.order...),
		inters:                append([]Interceptor{}, _q.inters...),
		predicates:            append([]predicate.PermissionSet{}, _q.predicates...),
		withGrants:            _q.withGrants.Clone(),
		withWhitelistedUsers:  _q.withWhitelistedUsers.Clone(),
		withWhitelistedAgents: _q.withWhitelistedAgents.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithGrants tells the query-builder to eager-load the nodes that are connected to
// the "grants" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PermissionSetQuery) WithGrants(opts ...func(*GrantQuery)) *PermissionSetQuery {
	query := (&GrantClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGrants = query
	return _q
}

// WithWhitelistedUsers tells the query-builder to eager-load the nodes that are connected to
// the "whitelisted_users" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PermissionSetQuery) WithWhitelistedUsers(opts ...func(*UserQuery)) *PermissionSetQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWhitelistedUsers = query
	return _q
}

// WithWhitelistedAgents tells the query-builder to eager-load the nodes that are connected to
// the "whitelisted_agents" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PermissionSetQuery) WithWhitelistedAgents(opts ...func(*AgentQuery)) *PermissionSetQuery {
	query := (&AgentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWhitelistedAgents = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DefaultClearance permissionset.DefaultClearance `json:"default_clearance,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PermissionSet.Query().
//		GroupBy(permissionset.FieldDefaultClearance).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PermissionSetQuery) GroupBy(field string, fields ...string) *PermissionSetGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PermissionSetGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = permissionset.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DefaultClearance permissionset.DefaultClearance `json:"default_clearance,omitempty"`
//	}
//
//	client.PermissionSet.Query().
//		Select(permissionset.FieldDefaultClearance).
//		Scan(ctx, &v)
func (_q *PermissionSetQuery) Select(fields ...string) *PermissionSetSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PermissionSetSelect{PermissionSetQuery: _q}
	sbuild.label = permissionset.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PermissionSetSelect configured with the given aggregations.
func (_q *PermissionSetQuery) Aggregate(fns ...AggregateFunc) *PermissionSetSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PermissionSetQuery) prepareQuery(ctx context.Context) error {
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
		if !permissionset.ValidColumn(f) {
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

func (_q *PermissionSetQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PermissionSet, error) {
	var (
		nodes       = []*PermissionSet{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withGrants != nil,
			_q.withWhitelistedUsers != nil,
			_q.withWhitelistedAgents != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PermissionSet).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PermissionSet{config: _q.config}
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
	if query := _q.withGrants; query != nil {
		if err := _q.loadGrants(ctx, query, nodes,
			func(n *PermissionSet) { n.Edges.Grants = []*Grant{} },
			func(n *PermissionSet, e *Grant) { n.Edges.Grants = append(n.Edges.Grants, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withWhitelistedUsers; query != nil {
		if err := _q.loadWhitelistedUsers(ctx, query, nodes,
			func(n *PermissionSet) { n.Edges.WhitelistedUsers = []*User{} },
			func(n *PermissionSet, e *User) { n.Edges.WhitelistedUsers = append(n.Edges.WhitelistedUsers, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withWhitelistedAgents; query != nil {
		if err := _q.loadWhitelistedAgents(ctx, query, nodes,
			func(n *PermissionSet) { n.Edges.WhitelistedAgents = []*Agent{} },
			func(n *PermissionSet, e *Agent) { n.Edges.WhitelistedAgents = append(n.Edges.WhitelistedAgents, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PermissionSetQuery) loadGrants(ctx context.Context, query *GrantQuery, nodes []*PermissionSet, init func(*PermissionSet), assign func(*PermissionSet, *Grant)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*PermissionSet)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(grant.FieldPermissionSetID)
	}
	query.Where(predicate.Grant(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(permissionset.GrantsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PermissionSetID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "permission_set_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PermissionSetQuery) loadWhitelistedUsers(ctx context.Context, query *UserQuery, nodes []*PermissionSet, init func(*PermissionSet), assign func(*PermissionSet, *User)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*PermissionSet)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.User(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(permissionset.WhitelistedUsersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.permission_set_whitelisted_users
		if fk == nil {
			return fmt.Errorf(`foreign-key "permission_set_whitelisted_users" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "permission_set_whitelisted_users" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PermissionSetQuery) loadWhitelistedAgents(ctx context.Context, query *AgentQuery, nodes []*PermissionSet, init func(*PermissionSet), assign func(*PermissionSet, *Agent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*PermissionSet)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Agent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(permissionset.WhitelistedAgentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.permission_set_whitelisted_agents
		if fk == nil {
			return fmt.Errorf(`foreign-key "permission_set_whitelisted_agents" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "permission_set_whitelisted_agents" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PermissionSetQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PermissionSetQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(permissionset.Table, permissionset.Columns, sqlgraph.NewFieldSpec(permissionset.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, permissionset.FieldID)
		for i := range fields {
			if fields[i] != permissionset.FieldID {
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

func (_q *PermissionSetQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(permissionset.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = permissionset.Columns
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

// PermissionSetGroupBy is the group-by builder for PermissionSet entities.
type PermissionSetGroupBy struct {
	selector
	build *PermissionSetQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PermissionSetGroupBy) Aggregate(fns ...AggregateFunc) *PermissionSetGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PermissionSetGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PermissionSetQuery, *PermissionSetGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PermissionSetGroupBy) sqlScan(ctx context.Context, root *PermissionSetQuery, v any) error {
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

// PermissionSetSelect is the builder for selecting fields of PermissionSet entities.
type PermissionSetSelect struct {
	*PermissionSetQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PermissionSetSelect) Aggregate(fns ...AggregateFunc) *PermissionSetSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PermissionSetSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PermissionSetQuery, *PermissionSetSelect](ctx, _s.PermissionSetQuery, _s, _s.inters, v)
}

func (_s *PermissionSetSelect) sqlScan(ctx context.Context, root *PermissionSetQuery, v any) error {
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
