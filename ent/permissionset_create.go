// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/agent"
	"github.com/codeready-toolchain/warden/ent/grant"
	"github.com/codeready-toolchain/warden/ent/permissionset"
	"github.com/codeready-toolchain/warden/ent/user"
)

// PermissionSetCreate is the builder for creating a PermissionSet entity.
type PermissionSetCreate struct {
	config
	mutation *PermissionSetMutation
	hooks    []Hook
}

// SetDefaultClearance sets the "default_clearance" field.
func (_c *PermissionSetCreate) SetDefaultClearance(v permissionset.DefaultClearance) *PermissionSetCreate {
	_c.mutation.SetDefaultClearance(v)
	return _c
}

// SetNillableDefaultClearance sets the "default_clearance" field if the given value is not nil.
func (_c *PermissionSetCreate) SetNillableDefaultClearance(v *permissionset.DefaultClearance) *PermissionSetCreate {
	if v != nil {
		_c.SetDefaultClearance(*v)
	}
	return _c
}

// SetAllowCreateSubAgent sets the "allow_create_sub_agent" field.
func (_c *PermissionSetCreate) SetAllowCreateSubAgent(v bool) *PermissionSetCreate {
	_c.mutation.SetAllowCreateSubAgent(v)
	return _c
}

// SetNillableAllowCreateSubAgent sets the "allow_create_sub_agent" field if the given value is not nil.
func (_c *PermissionSetCreate) SetNillableAllowCreateSubAgent(v *bool) *PermissionSetCreate {
	if v != nil {
		_c.SetAllowCreateSubAgent(*v)
	}
	return _c
}

// SetAllowCreateContainer sets the "allow_create_container" field.
func (_c *PermissionSetCreate) SetAllowCreateContainer(v bool) *PermissionSetCreate {
	_c.mutation.SetAllowCreateContainer(v)
	return _c
}

// SetNillableAllowCreateContainer sets the "allow_create_container" field if the given value is not nil.
func (_c *PermissionSetCreate) SetNillableAllowCreateContainer(v *bool) *PermissionSetCreate {
	if v != nil {
		_c.SetAllowCreateContainer(*v)
	}
	return _c
}

// SetAllowRegisterInfoStore sets the "allow_register_info_store" field.
func (_c *PermissionSetCreate) SetAllowRegisterInfoStore(v bool) *PermissionSetCreate {
	_c.mutation.SetAllowRegisterInfoStore(v)
	return _c
}

// SetNillableAllowRegisterInfoStore sets the "allow_register_info_store" field if the given value is not nil.
func (_c *PermissionSetCreate) SetNillableAllowRegisterInfoStore(v *bool) *PermissionSetCreate {
	if v != nil {
		_c.SetAllowRegisterInfoStore(*v)
	}
	return _c
}

// SetAllowEditAnyTask sets the "allow_edit_any_task" field.
func (_c *PermissionSetCreate) SetAllowEditAnyTask(v bool) *PermissionSetCreate {
	_c.mutation.SetAllowEditAnyTask(v)
	return _c
}

// SetNillableAllowEditAnyTask sets the "allow_edit_any_task" field if the given value is not nil.
func (_c *PermissionSetCreate) SetNillableAllowEditAnyTask(v *bool) *PermissionSetCreate {
	if v != nil {
		_c.SetAllowEditAnyTask(*v)
	}
	return _c
}

// SetAllowLocalhostBrowser sets the "allow_localhost_browser" field.
func (_c *PermissionSetCreate) SetAllowLocalhostBrowser(v bool) *PermissionSetCreate {
	_c.mutation.SetAllowLocalhostBrowser(v)
	return _c
}

// SetNillableAllowLocalhostBrowser sets the "allow_localhost_browser" field if the given value is not nil.
func (_c *PermissionSetCreate) SetNillableAllowLocalhostBrowser(v *bool) *PermissionSetCreate {
	if v != nil {
		_c.SetAllowLocalhostBrowser(*v)
	}
	return _c
}

// SetAllowLocalhostCli sets the "allow_localhost_cli" field.
func (_c *PermissionSetCreate) SetAllowLocalhostCli(v bool) *PermissionSetCreate {
	_c.mutation.SetAllowLocalhostCli(v)
	return _c
}

// SetNillableAllowLocalhostCli sets the "allow_localhost_cli" field if the given value is not nil.
func (_c *PermissionSetCreate) SetNillableAllowLocalhostCli(v *bool) *PermissionSetCreate {
	if v != nil {
		_c.SetAllowLocalhostCli(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PermissionSetCreate) SetCreatedAt(v time.Time) *PermissionSetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PermissionSetCreate) SetNillableCreatedAt(v *time.Time) *PermissionSetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PermissionSetCreate) SetUpdatedAt(v time.Time) *PermissionSetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PermissionSetCreate) SetNillableUpdatedAt(v *time.Time) *PermissionSetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PermissionSetCreate) SetID(v string) *PermissionSetCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddGrantIDs adds the "grants" edge to the Grant entity by IDs.
func (_c *PermissionSetCreate) AddGrantIDs(ids ...string) *PermissionSetCreate {
	_c.mutation.AddGrantIDs(ids...)
	return _c
}

// AddGrants adds the "grants" edges to the Grant entity.
func (_c *PermissionSetCreate) AddGrants(v ...*Grant) *PermissionSetCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGrantIDs(ids...)
}

// AddWhitelistedUserIDs adds the "whitelisted_users" edge to the User entity by IDs.
func (_c *PermissionSetCreate) AddWhitelistedUserIDs(ids ...string) *PermissionSetCreate {
	_c.mutation.AddWhitelistedUserIDs(ids...)
	return _c
}

// AddWhitelistedUsers adds the "whitelisted_users" edges to the User entity.
func (_c *PermissionSetCreate) AddWhitelistedUsers(v ...*User) *PermissionSetCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWhitelistedUserIDs(ids...)
}

// AddWhitelistedAgentIDs adds the "whitelisted_agents" edge to the Agent entity by IDs.
func (_c *PermissionSetCreate) AddWhitelistedAgentIDs(ids ...string) *PermissionSetCreate {
	_c.mutation.AddWhitelistedAgentIDs(ids...)
	return _c
}

// AddWhitelistedAgents adds the "whitelisted_agents" edges to the Agent entity.
func (_c *PermissionSetCreate) AddWhitelistedAgents(v ...*Agent) *PermissionSetCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWhitelistedAgentIDs(ids...)
}

// Mutation returns the PermissionSetMutation object of the builder.
func (_c *PermissionSetCreate) Mutation() *PermissionSetMutation {
	return _c.mutation
}

// Save creates the PermissionSet in the database.
func (_c *PermissionSetCreate) Save(ctx context.Context) (*PermissionSet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PermissionSetCreate) SaveX(ctx context.Context) *PermissionSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PermissionSetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PermissionSetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PermissionSetCreate) defaults() {
	if _, ok := _c.mutation.DefaultClearance(); !ok {
		v := permissionset.DefaultDefaultClearance
		_c.mutation.SetDefaultClearance(v)
	}
	if _, ok := _c.mutation.AllowCreateSubAgent(); !ok {
		v := permissionset.DefaultAllowCreateSubAgent
		_c.mutation.SetAllowCreateSubAgent(v)
	}
	if _, ok := _c.mutation.AllowCreateContainer(); !ok {
		v := permissionset.DefaultAllowCreateContainer
		_c.mutation.SetAllowCreateContainer(v)
	}
	if _, ok := _c.mutation.AllowRegisterInfoStore(); !ok {
		v := permissionset.DefaultAllowRegisterInfoStore
		_c.mutation.SetAllowRegisterInfoStore(v)
	}
	if _, ok := _c.mutation.AllowEditAnyTask(); !ok {
		v := permissionset.DefaultAllowEditAnyTask
		_c.mutation.SetAllowEditAnyTask(v)
	}
	if _, ok := _c.mutation.AllowLocalhostBrowser(); !ok {
		v := permissionset.DefaultAllowLocalhostBrowser
		_c.mutation.SetAllowLocalhostBrowser(v)
	}
	if _, ok := _c.mutation.AllowLocalhostCli(); !ok {
		v := permissionset.DefaultAllowLocalhostCli
		_c.mutation.SetAllowLocalhostCli(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := permissionset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := permissionset.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PermissionSetCreate) check() error {
	if _, ok := _c.mutation.DefaultClearance(); !ok {
		return &ValidationError{Name: "default_clearance", err: errors.New(`ent: missing required field "PermissionSet.default_clearance"`)}
	}
	if v, ok := _c.mutation.DefaultClearance(); ok {
		if err := permissionset.DefaultClearanceValidator(v); err != nil {
			return &ValidationError{Name: "default_clearance", err: fmt.Errorf(`ent: validator failed for field "PermissionSet.default_clearance": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AllowCreateSubAgent(); !ok {
		return &ValidationError{Name: "allow_create_sub_agent", err: errors.New(`ent: missing required field "PermissionSet.allow_create_sub_agent"`)}
	}
	if _, ok := _c.mutation.AllowCreateContainer(); !ok {
		return &ValidationError{Name: "allow_create_container", err: errors.New(`ent: missing required field "PermissionSet.allow_create_container"`)}
	}
	if _, ok := _c.mutation.AllowRegisterInfoStore(); !ok {
		return &ValidationError{Name: "allow_register_info_store", err: errors.New(`ent: missing required field "PermissionSet.allow_register_info_store"`)}
	}
	if _, ok := _c.mutation.AllowEditAnyTask(); !ok {
		return &ValidationError{Name: "allow_edit_any_task", err: errors.New(`ent: missing required field "PermissionSet.allow_edit_any_task"`)}
	}
	if _, ok := _c.mutation.AllowLocalhostBrowser(); !ok {
		return &ValidationError{Name: "allow_localhost_browser", err: errors.New(`ent: missing required field "PermissionSet.allow_localhost_browser"`)}
	}
	if _, ok := _c.mutation.AllowLocalhostCli(); !ok {
		return &ValidationError{Name: "allow_localhost_cli", err: errors.New(`ent: missing required field "PermissionSet.allow_localhost_cli"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PermissionSet.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PermissionSet.updated_at"`)}
	}
	return nil
}

func (_c *PermissionSetCreate) sqlSave(ctx context.Context) (*PermissionSet, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PermissionSet.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PermissionSetCreate) createSpec() (*PermissionSet, *sqlgraph.CreateSpec) {
	var (
		_node = &PermissionSet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(permissionset.Table, sqlgraph.NewFieldSpec(permissionset.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DefaultClearance(); ok {
		_spec.SetField(permissionset.FieldDefaultClearance, field.TypeEnum, value)
		_node.DefaultClearance = value
	}
	if value, ok := _c.mutation.AllowCreateSubAgent(); ok {
		_spec.SetField(permissionset.FieldAllowCreateSubAgent, field.TypeBool, value)
		_node.AllowCreateSubAgent = value
	}
	if value, ok := _c.mutation.AllowCreateContainer(); ok {
		_spec.SetField(permissionset.FieldAllowCreateContainer, field.TypeBool, value)
		_node.AllowCreateContainer = value
	}
	if value, ok := _c.mutation.AllowRegisterInfoStore(); ok {
		_spec.SetField(permissionset.FieldAllowRegisterInfoStore, field.TypeBool, value)
		_node.AllowRegisterInfoStore = value
	}
	if value, ok := _c.mutation.AllowEditAnyTask(); ok {
		_spec.SetField(permissionset.FieldAllowEditAnyTask, field.TypeBool, value)
		_node.AllowEditAnyTask = value
	}
	if value, ok := _c.mutation.AllowLocalhostBrowser(); ok {
		_spec.SetField(permissionset.FieldAllowLocalhostBrowser, field.TypeBool, value)
		_node.AllowLocalhostBrowser = value
	}
	if value, ok := _c.mutation.AllowLocalhostCli(); ok {
		_spec.SetField(permissionset.FieldAllowLocalhostCli, field.TypeBool, value)
		_node.AllowLocalhostCli = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(permissionset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(permissionset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.GrantsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WhitelistedUsersIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WhitelistedAgentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PermissionSetCreateBulk is the builder for creating many PermissionSet entities in bulk.
type PermissionSetCreateBulk struct {
	config
	err      error
	builders []*PermissionSetCreate
}

// Save creates the PermissionSet entities in the database.
func (_c *PermissionSetCreateBulk) Save(ctx context.Context) ([]*PermissionSet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PermissionSet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PermissionSetMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PermissionSetCreateBulk) SaveX(ctx context.Context) []*PermissionSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PermissionSetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PermissionSetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
