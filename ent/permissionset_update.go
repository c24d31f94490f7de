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
	"github.com/codeready-toolchain/warden/ent/agent"
	"github.com/codeready-toolchain/warden/ent/grant"
	"github.com/codeready-toolchain/warden/ent/permissionset"
	"github.com/codeready-toolchain/warden/ent/predicate"
	"github.com/codeready-toolchain/warden/ent/user"
)

// PermissionSetUpdate is the builder for updating PermissionSet entities.
type PermissionSetUpdate struct {
	config
	hooks    []Hook
	mutation *PermissionSetMutation
}

// Where appends a list predicates to the PermissionSetUpdate builder.
func (_u *PermissionSetUpdate) Where(ps ...predicate.PermissionSet) *PermissionSetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDefaultClearance sets the "default_clearance" field.
func (_u *PermissionSetUpdate) SetDefaultClearance(v permissionset.DefaultClearance) *PermissionSetUpdate {
	_u.mutation.SetDefaultClearance(v)
	return _u
}

// SetNillableDefaultClearance sets the "default_clearance" field if the given value is not nil.
func (_u *PermissionSetUpdate) SetNillableDefaultClearance(v *permissionset.DefaultClearance) *PermissionSetUpdate {
	if v != nil {
		_u.SetDefaultClearance(*v)
	}
	return _u
}

// SetAllowCreateSubAgent sets the "allow_create_sub_agent" field.
func (_u *PermissionSetUpdate) SetAllowCreateSubAgent(v bool) *PermissionSetUpdate {
	_u.mutation.SetAllowCreateSubAgent(v)
	return _u
}

// SetNillableAllowCreateSubAgent sets the "allow_create_sub_agent" field if the given value is not nil.
func (_u *PermissionSetUpdate) SetNillableAllowCreateSubAgent(v *bool) *PermissionSetUpdate {
	if v != nil {
		_u.SetAllowCreateSubAgent(*v)
	}
	return _u
}

// SetAllowCreateContainer sets the "allow_create_container" field.
func (_u *PermissionSetUpdate) SetAllowCreateContainer(v bool) *PermissionSetUpdate {
	_u.mutation.SetAllowCreateContainer(v)
	return _u
}

// SetNillableAllowCreateContainer sets the "allow_create_container" field if the given value is not nil.
func (_u *PermissionSetUpdate) SetNillableAllowCreateContainer(v *bool) *PermissionSetUpdate {
	if v != nil {
		_u.SetAllowCreateContainer(*v)
	}
	return _u
}

// SetAllowRegisterInfoStore sets the "allow_register_info_store" field.
func (_u *PermissionSetUpdate) SetAllowRegisterInfoStore(v bool) *PermissionSetUpdate {
	_u.mutation.SetAllowRegisterInfoStore(v)
	return _u
}

// SetNillableAllowRegisterInfoStore sets the "allow_register_info_store" field if the given value is not nil.
func (_u *PermissionSetUpdate) SetNillableAllowRegisterInfoStore(v *bool) *PermissionSetUpdate {
	if v != nil {
		_u.SetAllowRegisterInfoStore(*v)
	}
	return _u
}

// SetAllowEditAnyTask sets the "allow_edit_any_task" field.
func (_u *PermissionSetUpdate) SetAllowEditAnyTask(v bool) *PermissionSetUpdate {
	_u.mutation.SetAllowEditAnyTask(v)
	return _u
}

// SetNillableAllowEditAnyTask sets the "allow_edit_any_task" field if the given value is not nil.
func (_u *PermissionSetUpdate) SetNillableAllowEditAnyTask(v *bool) *PermissionSetUpdate {
	if v != nil {
		_u.SetAllowEditAnyTask(*v)
	}
	return _u
}

// SetAllowLocalhostBrowser sets the "allow_localhost_browser" field.
func (_u *PermissionSetUpdate) SetAllowLocalhostBrowser(v bool) *PermissionSetUpdate {
	_u.mutation.SetAllowLocalhostBrowser(v)
	return _u
}

// SetNillableAllowLocalhostBrowser sets the "allow_localhost_browser" field if the given value is not nil.
func (_u *PermissionSetUpdate) SetNillableAllowLocalhostBrowser(v *bool) *PermissionSetUpdate {
	if v != nil {
		_u.SetAllowLocalhostBrowser(*v)
	}
	return _u
}

// SetAllowLocalhostCli sets the "allow_localhost_cli" field.
func (_u *PermissionSetUpdate) SetAllowLocalhostCli(v bool) *PermissionSetUpdate {
	_u.mutation.SetAllowLocalhostCli(v)
	return _u
}

// SetNillableAllowLocalhostCli sets the "allow_localhost_cli" field if the given value is not nil.
func (_u *PermissionSetUpdate) SetNillableAllowLocalhostCli(v *bool) *PermissionSetUpdate {
	if v != nil {
		_u.SetAllowLocalhostCli(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PermissionSetUpdate) SetUpdatedAt(v time.Time) *PermissionSetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddGrantIDs adds the "grants" edge to the Grant entity by IDs.
func (_u *PermissionSetUpdate) AddGrantIDs(ids ...string) *PermissionSetUpdate {
	_u.mutation.AddGrantIDs(ids...)
	return _u
}

// AddGrants adds the "grants" edges to the Grant entity.
func (_u *PermissionSetUpdate) AddGrants(v ...*Grant) *PermissionSetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGrantIDs(ids...)
}

// AddWhitelistedUserIDs adds the "whitelisted_users" edge to the User entity by IDs.
func (_u *PermissionSetUpdate) AddWhitelistedUserIDs(ids ...string) *PermissionSetUpdate {
	_u.mutation.AddWhitelistedUserIDs(ids...)
	return _u
}

// AddWhitelistedUsers adds the "whitelisted_users" edges to the User entity.
func (_u *PermissionSetUpdate) AddWhitelistedUsers(v ...*User) *PermissionSetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWhitelistedUserIDs(ids...)
}

// AddWhitelistedAgentIDs adds the "whitelisted_agents" edge to the Agent entity by IDs.
func (_u *PermissionSetUpdate) AddWhitelistedAgentIDs(ids ...string) *PermissionSetUpdate {
	_u.mutation.AddWhitelistedAgentIDs(ids...)
	return _u
}

// AddWhitelistedAgents adds the "whitelisted_agents" edges to the Agent entity.
func (_u *PermissionSetUpdate) AddWhitelistedAgents(v ...*Agent) *PermissionSetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWhitelistedAgentIDs(ids...)
}

// Mutation returns the PermissionSetMutation object of the builder.
func (_u *PermissionSetUpdate) Mutation() *PermissionSetMutation {
	return _u.mutation
}

// ClearGrants clears all "grants" edges to the Grant entity.
func (_u *PermissionSetUpdate) ClearGrants() *PermissionSetUpdate {
	_u.mutation.ClearGrants()
	return _u
}

// RemoveGrantIDs removes the "grants" edge to Grant entities by IDs.
func (_u *PermissionSetUpdate) RemoveGrantIDs(ids ...string) *PermissionSetUpdate {
	_u.mutation.RemoveGrantIDs(ids...)
	return _u
}

// RemoveGrants removes "grants" edges to Grant entities.
func (_u *PermissionSetUpdate) RemoveGrants(v ...*Grant) *PermissionSetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGrantIDs(ids...)
}

// ClearWhitelistedUsers clears all "whitelisted_users" edges to the User entity.
func (_u *PermissionSetUpdate) ClearWhitelistedUsers() *PermissionSetUpdate {
	_u.mutation.ClearWhitelistedUsers()
	return _u
}

// RemoveWhitelistedUserIDs removes the "whitelisted_users" edge to User entities by IDs.
func (_u *PermissionSetUpdate) RemoveWhitelistedUserIDs(ids ...string) *PermissionSetUpdate {
	_u.mutation.RemoveWhitelistedUserIDs(ids...)
	return _u
}

// RemoveWhitelistedUsers removes "whitelisted_users" edges to User entities.
func (_u *PermissionSetUpdate) RemoveWhitelistedUsers(v ...*User) *PermissionSetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWhitelistedUserIDs(ids...)
}

// ClearWhitelistedAgents clears all "whitelisted_agents" edges to the Agent entity.
func (_u *PermissionSetUpdate) ClearWhitelistedAgents() *PermissionSetUpdate {
	_u.mutation.ClearWhitelistedAgents()
	return _u
}

// RemoveWhitelistedAgentIDs removes the "whitelisted_agents" edge to Agent entities by IDs.
func (_u *PermissionSetUpdate) RemoveWhitelistedAgentIDs(ids ...string) *PermissionSetUpdate {
	_u.mutation.RemoveWhitelistedAgentIDs(ids...)
	return _u
}

// RemoveWhitelistedAgents removes "whitelisted_agents" edges to Agent entities.
func (_u *PermissionSetUpdate) RemoveWhitelistedAgents(v ...*Agent) *PermissionSetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWhitelistedAgentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PermissionSetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PermissionSetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PermissionSetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PermissionSetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PermissionSetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := permissionset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PermissionSetUpdate) check() error {
	if v, ok := _u.mutation.DefaultClearance(); ok {
		if err := permissionset.DefaultClearanceValidator(v); err != nil {
			return &ValidationError{Name: "default_clearance", err: fmt.Errorf(`ent: validator failed for field "PermissionSet.default_clearance": %w`, err)}
		}
	}
	return nil
}

func (_u *PermissionSetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(permissionset.Table, permissionset.Columns, sqlgraph.NewFieldSpec(permissionset.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DefaultClearance(); ok {
		_spec.SetField(permissionset.FieldDefaultClearance, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AllowCreateSubAgent(); ok {
		_spec.SetField(permissionset.FieldAllowCreateSubAgent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowCreateContainer(); ok {
		_spec.SetField(permissionset.FieldAllowCreateContainer, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowRegisterInfoStore(); ok {
		_spec.SetField(permissionset.FieldAllowRegisterInfoStore, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowEditAnyTask(); ok {
		_spec.SetField(permissionset.FieldAllowEditAnyTask, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowLocalhostBrowser(); ok {
		_spec.SetField(permissionset.FieldAllowLocalhostBrowser, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowLocalhostCli(); ok {
		_spec.SetField(permissionset.FieldAllowLocalhostCli, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(permissionset.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.GrantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.GrantsTable,
			Columns: []string{permissionset.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(grant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGrantsIDs(); len(nodes) > 0 && !_u.mutation.GrantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.GrantsTable,
			Columns: []string{permissionset.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(grant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GrantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.GrantsTable,
			Columns: []string{permissionset.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(grant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WhitelistedUsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.WhitelistedUsersTable,
			Columns: []string{permissionset.WhitelistedUsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWhitelistedUsersIDs(); len(nodes) > 0 && !_u.mutation.WhitelistedUsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.WhitelistedUsersTable,
			Columns: []string{permissionset.WhitelistedUsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WhitelistedUsersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.WhitelistedUsersTable,
			Columns: []string{permissionset.WhitelistedUsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WhitelistedAgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.WhitelistedAgentsTable,
			Columns: []string{permissionset.WhitelistedAgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWhitelistedAgentsIDs(); len(nodes) > 0 && !_u.mutation.WhitelistedAgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.WhitelistedAgentsTable,
			Columns: []string{permissionset.WhitelistedAgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WhitelistedAgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.WhitelistedAgentsTable,
			Columns: []string{permissionset.WhitelistedAgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{permissionset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PermissionSetUpdateOne is the builder for updating a single PermissionSet entity.
type PermissionSetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PermissionSetMutation
}

// SetDefaultClearance sets the "default_clearance" field.
func (_u *PermissionSetUpdateOne) SetDefaultClearance(v permissionset.DefaultClearance) *PermissionSetUpdateOne {
	_u.mutation.SetDefaultClearance(v)
	return _u
}

// SetNillableDefaultClearance sets the "default_clearance" field if the given value is not nil.
func (_u *PermissionSetUpdateOne) SetNillableDefaultClearance(v *permissionset.DefaultClearance) *PermissionSetUpdateOne {
	if v != nil {
		_u.SetDefaultClearance(*v)
	}
	return _u
}

// SetAllowCreateSubAgent sets the "allow_create_sub_agent" field.
func (_u *PermissionSetUpdateOne) SetAllowCreateSubAgent(v bool) *PermissionSetUpdateOne {
	_u.mutation.SetAllowCreateSubAgent(v)
	return _u
}

// SetNillableAllowCreateSubAgent sets the "allow_create_sub_agent" field if the given value is not nil.
func (_u *PermissionSetUpdateOne) SetNillableAllowCreateSubAgent(v *bool) *PermissionSetUpdateOne {
	if v != nil {
		_u.SetAllowCreateSubAgent(*v)
	}
	return _u
}

// SetAllowCreateContainer sets the "allow_create_container" field.
func (_u *PermissionSetUpdateOne) SetAllowCreateContainer(v bool) *PermissionSetUpdateOne {
	_u.mutation.SetAllowCreateContainer(v)
	return _u
}

// SetNillableAllowCreateContainer sets the "allow_create_container" field if the given value is not nil.
func (_u *PermissionSetUpdateOne) SetNillableAllowCreateContainer(v *bool) *PermissionSetUpdateOne {
	if v != nil {
		_u.SetAllowCreateContainer(*v)
	}
	return _u
}

// SetAllowRegisterInfoStore sets the "allow_register_info_store" field.
func (_u *PermissionSetUpdateOne) SetAllowRegisterInfoStore(v bool) *PermissionSetUpdateOne {
	_u.mutation.SetAllowRegisterInfoStore(v)
	return _u
}

// SetNillableAllowRegisterInfoStore sets the "allow_register_info_store" field if the given value is not nil.
func (_u *PermissionSetUpdateOne) SetNillableAllowRegisterInfoStore(v *bool) *PermissionSetUpdateOne {
	if v != nil {
		_u.SetAllowRegisterInfoStore(*v)
	}
	return _u
}

// SetAllowEditAnyTask sets the "allow_edit_any_task" field.
func (_u *PermissionSetUpdateOne) SetAllowEditAnyTask(v bool) *PermissionSetUpdateOne {
	_u.mutation.SetAllowEditAnyTask(v)
	return _u
}

// SetNillableAllowEditAnyTask sets the "allow_edit_any_task" field if the given value is not nil.
func (_u *PermissionSetUpdateOne) SetNillableAllowEditAnyTask(v *bool) *PermissionSetUpdateOne {
	if v != nil {
		_u.SetAllowEditAnyTask(*v)
	}
	return _u
}

// SetAllowLocalhostBrowser sets the "allow_localhost_browser" field.
func (_u *PermissionSetUpdateOne) SetAllowLocalhostBrowser(v bool) *PermissionSetUpdateOne {
	_u.mutation.SetAllowLocalhostBrowser(v)
	return _u
}

// SetNillableAllowLocalhostBrowser sets the "allow_localhost_browser" field if the given value is not nil.
func (_u *PermissionSetUpdateOne) SetNillableAllowLocalhostBrowser(v *bool) *PermissionSetUpdateOne {
	if v != nil {
		_u.SetAllowLocalhostBrowser(*v)
	}
	return _u
}

// SetAllowLocalhostCli sets the "allow_localhost_cli" field.
func (_u *PermissionSetUpdateOne) SetAllowLocalhostCli(v bool) *PermissionSetUpdateOne {
	_u.mutation.SetAllowLocalhostCli(v)
	return _u
}

// SetNillableAllowLocalhostCli sets the "allow_localhost_cli" field if the given value is not nil.
func (_u *PermissionSetUpdateOne) SetNillableAllowLocalhostCli(v *bool) *PermissionSetUpdateOne {
	if v != nil {
		_u.SetAllowLocalhostCli(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PermissionSetUpdateOne) SetUpdatedAt(v time.Time) *PermissionSetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddGrantIDs adds the "grants" edge to the Grant entity by IDs.
func (_u *PermissionSetUpdateOne) AddGrantIDs(ids ...string) *PermissionSetUpdateOne {
	_u.mutation.AddGrantIDs(ids...)
	return _u
}

// AddGrants adds the "grants" edges to the Grant entity.
func (_u *PermissionSetUpdateOne) AddGrants(v ...*Grant) *PermissionSetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGrantIDs(ids...)
}

// AddWhitelistedUserIDs adds the "whitelisted_users" edge to the User entity by IDs.
func (_u *PermissionSetUpdateOne) AddWhitelistedUserIDs(ids ...string) *PermissionSetUpdateOne {
	_u.mutation.AddWhitelistedUserIDs(ids...)
	return _u
}

// AddWhitelistedUsers adds the "whitelisted_users" edges to the User entity.
func (_u *PermissionSetUpdateOne) AddWhitelistedUsers(v ...*User) *PermissionSetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWhitelistedUserIDs(ids...)
}

// AddWhitelistedAgentIDs adds the "whitelisted_agents" edge to the Agent entity by IDs.
func (_u *PermissionSetUpdateOne) AddWhitelistedAgentIDs(ids ...string) *PermissionSetUpdateOne {
	_u.mutation.AddWhitelistedAgentIDs(ids...)
	return _u
}

// AddWhitelistedAgents adds the "whitelisted_agents" edges to the Agent entity.
func (_u *PermissionSetUpdateOne) AddWhitelistedAgents(v ...*Agent) *PermissionSetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWhitelistedAgentIDs(ids...)
}

// Mutation returns the PermissionSetMutation object of the builder.
func (_u *PermissionSetUpdateOne) Mutation() *PermissionSetMutation {
	return _u.mutation
}

// ClearGrants clears all "grants" edges to the Grant entity.
func (_u *PermissionSetUpdateOne) ClearGrants() *PermissionSetUpdateOne {
	_u.mutation.ClearGrants()
	return _u
}

// RemoveGrantIDs removes the "grants" edge to Grant entities by IDs.
func (_u *PermissionSetUpdateOne) RemoveGrantIDs(ids ...string) *PermissionSetUpdateOne {
	_u.mutation.RemoveGrantIDs(ids...)
	return _u
}

// RemoveGrants removes "grants" edges to Grant entities.
func (_u *PermissionSetUpdateOne) RemoveGrants(v ...*Grant) *PermissionSetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGrantIDs(ids...)
}

// ClearWhitelistedUsers clears all "whitelisted_users" edges to the User entity.
func (_u *PermissionSetUpdateOne) ClearWhitelistedUsers() *PermissionSetUpdateOne {
	_u.mutation.ClearWhitelistedUsers()
	return _u
}

// RemoveWhitelistedUserIDs removes the "whitelisted_users" edge to User entities by IDs.
func (_u *PermissionSetUpdateOne) RemoveWhitelistedUserIDs(ids ...string) *PermissionSetUpdateOne {
	_u.mutation.RemoveWhitelistedUserIDs(ids...)
	return _u
}

// RemoveWhitelistedUsers removes "whitelisted_users" edges to User entities.
func (_u *PermissionSetUpdateOne) RemoveWhitelistedUsers(v ...*User) *PermissionSetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWhitelistedUserIDs(ids...)
}

// ClearWhitelistedAgents clears all "whitelisted_agents" edges to the Agent entity.
func (_u *PermissionSetUpdateOne) ClearWhitelistedAgents() *PermissionSetUpdateOne {
	_u.mutation.ClearWhitelistedAgents()
	return _u
}

// RemoveWhitelistedAgentIDs removes the "whitelisted_agents" edge to Agent entities by IDs.
func (_u *PermissionSetUpdateOne) RemoveWhitelistedAgentIDs(ids ...string) *PermissionSetUpdateOne {
	_u.mutation.RemoveWhitelistedAgentIDs(ids...)
	return _u
}

// RemoveWhitelistedAgents removes "whitelisted_agents" edges to Agent entities.
func (_u *PermissionSetUpdateOne) RemoveWhitelistedAgents(v ...*Agent) *PermissionSetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWhitelistedAgentIDs(ids...)
}

// Where appends a list predicates to the PermissionSetUpdate builder.
func (_u *PermissionSetUpdateOne) Where(ps ...predicate.PermissionSet) *PermissionSetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PermissionSetUpdateOne) Select(field string, fields ...string) *PermissionSetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PermissionSet entity.
func (_u *PermissionSetUpdateOne) Save(ctx context.Context) (*PermissionSet, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PermissionSetUpdateOne) SaveX(ctx context.Context) *PermissionSet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PermissionSetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PermissionSetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PermissionSetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := permissionset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PermissionSetUpdateOne) check() error {
	if v, ok := _u.mutation.DefaultClearance(); ok {
		if err := permissionset.DefaultClearanceValidator(v); err != nil {
			return &ValidationError{Name: "default_clearance", err: fmt.Errorf(`ent: validator failed for field "PermissionSet.default_clearance": %w`, err)}
		}
	}
	return nil
}

func (_u *PermissionSetUpdateOne) sqlSave(ctx context.Context) (_node *PermissionSet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(permissionset.Table, permissionset.Columns, sqlgraph.NewFieldSpec(permissionset.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PermissionSet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, permissionset.FieldID)
		for _, f := range fields {
			if !permissionset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != permissionset.FieldID {
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
	if value, ok := _u.mutation.DefaultClearance(); ok {
		_spec.SetField(permissionset.FieldDefaultClearance, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AllowCreateSubAgent(); ok {
		_spec.SetField(permissionset.FieldAllowCreateSubAgent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowCreateContainer(); ok {
		_spec.SetField(permissionset.FieldAllowCreateContainer, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowRegisterInfoStore(); ok {
		_spec.SetField(permissionset.FieldAllowRegisterInfoStore, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowEditAnyTask(); ok {
		_spec.SetField(permissionset.FieldAllowEditAnyTask, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowLocalhostBrowser(); ok {
		_spec.SetField(permissionset.FieldAllowLocalhostBrowser, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AllowLocalhostCli(); ok {
		_spec.SetField(permissionset.FieldAllowLocalhostCli, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(permissionset.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.GrantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.GrantsTable,
			Columns: []string{permissionset.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(grant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGrantsIDs(); len(nodes) > 0 && !_u.mutation.GrantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.GrantsTable,
			Columns: []string{permissionset.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(grant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GrantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.GrantsTable,
			Columns: []string{permissionset.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(grant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WhitelistedUsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.WhitelistedUsersTable,
			Columns: []string{permissionset.WhitelistedUsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWhitelistedUsersIDs(); len(nodes) > 0 && !_u.mutation.WhitelistedUsersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.WhitelistedUsersTable,
			Columns: []string{permissionset.WhitelistedUsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WhitelistedUsersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.WhitelistedUsersTable,
			Columns: []string{permissionset.WhitelistedUsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WhitelistedAgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.WhitelistedAgentsTable,
			Columns: []string{permissionset.WhitelistedAgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWhitelistedAgentsIDs(); len(nodes) > 0 && !_u.mutation.WhitelistedAgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.WhitelistedAgentsTable,
			Columns: []string{permissionset.WhitelistedAgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WhitelistedAgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   permissionset.WhitelistedAgentsTable,
			Columns: []string{permissionset.WhitelistedAgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PermissionSet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{permissionset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
