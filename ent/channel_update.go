// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/agent"
	"github.com/codeready-toolchain/warden/ent/channel"
	"github.com/codeready-toolchain/warden/ent/channelcontext"
	"github.com/codeready-toolchain/warden/ent/chatmessage"
	"github.com/codeready-toolchain/warden/ent/permissionset"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// ChannelUpdate is the builder for updating Channel entities.
type ChannelUpdate struct {
	config
	hooks    []Hook
	mutation *ChannelMutation
}

// Where appends a list predicates to the ChannelUpdate builder.
func (_u *ChannelUpdate) Where(ps ...predicate.Channel) *ChannelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ChannelUpdate) SetName(v string) *ChannelUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableName(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDefaultAgentID sets the "default_agent_id" field.
func (_u *ChannelUpdate) SetDefaultAgentID(v string) *ChannelUpdate {
	_u.mutation.SetDefaultAgentID(v)
	return _u
}

// SetNillableDefaultAgentID sets the "default_agent_id" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableDefaultAgentID(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetDefaultAgentID(*v)
	}
	return _u
}

// ClearDefaultAgentID clears the value of the "default_agent_id" field.
func (_u *ChannelUpdate) ClearDefaultAgentID() *ChannelUpdate {
	_u.mutation.ClearDefaultAgentID()
	return _u
}

// SetContextID sets the "context_id" field.
func (_u *ChannelUpdate) SetContextID(v string) *ChannelUpdate {
	_u.mutation.SetContextID(v)
	return _u
}

// SetNillableContextID sets the "context_id" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillableContextID(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetContextID(*v)
	}
	return _u
}

// ClearContextID clears the value of the "context_id" field.
func (_u *ChannelUpdate) ClearContextID() *ChannelUpdate {
	_u.mutation.ClearContextID()
	return _u
}

// SetPermissionSetID sets the "permission_set_id" field.
func (_u *ChannelUpdate) SetPermissionSetID(v string) *ChannelUpdate {
	_u.mutation.SetPermissionSetID(v)
	return _u
}

// SetNillablePermissionSetID sets the "permission_set_id" field if the given value is not nil.
func (_u *ChannelUpdate) SetNillablePermissionSetID(v *string) *ChannelUpdate {
	if v != nil {
		_u.SetPermissionSetID(*v)
	}
	return _u
}

// ClearPermissionSetID clears the value of the "permission_set_id" field.
func (_u *ChannelUpdate) ClearPermissionSetID() *ChannelUpdate {
	_u.mutation.ClearPermissionSetID()
	return _u
}

// SetDefaultAgent sets the "default_agent" edge to the Agent entity.
func (_u *ChannelUpdate) SetDefaultAgent(v *Agent) *ChannelUpdate {
	return _u.SetDefaultAgentID(v.ID)
}

// AddAllowedAgentIDs adds the "allowed_agents" edge to the Agent entity by IDs.
func (_u *ChannelUpdate) AddAllowedAgentIDs(ids ...string) *ChannelUpdate {
	_u.mutation.AddAllowedAgentIDs(ids...)
	return _u
}

// AddAllowedAgents adds the "allowed_agents" edges to the Agent entity.
func (_u *ChannelUpdate) AddAllowedAgents(v ...*Agent) *ChannelUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAllowedAgentIDs(ids...)
}

// SetContext sets the "context" edge to the ChannelContext entity.
func (_u *ChannelUpdate) SetContext(v *ChannelContext) *ChannelUpdate {
	return _u.SetContextID(v.ID)
}

// SetPermissionSet sets the "permission_set" edge to the PermissionSet entity.
func (_u *ChannelUpdate) SetPermissionSet(v *PermissionSet) *ChannelUpdate {
	return _u.SetPermissionSetID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_u *ChannelUpdate) AddMessageIDs(ids ...string) *ChannelUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_u *ChannelUpdate) AddMessages(v ...*ChatMessage) *ChannelUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the ChannelMutation object of the builder.
func (_u *ChannelUpdate) Mutation() *ChannelMutation {
	return _u.mutation
}

// ClearDefaultAgent clears the "default_agent" edge to the Agent entity.
func (_u *ChannelUpdate) ClearDefaultAgent() *ChannelUpdate {
	_u.mutation.ClearDefaultAgent()
	return _u
}

// ClearAllowedAgents clears all "allowed_agents" edges to the Agent entity.
func (_u *ChannelUpdate) ClearAllowedAgents() *ChannelUpdate {
	_u.mutation.ClearAllowedAgents()
	return _u
}

// RemoveAllowedAgentIDs removes the "allowed_agents" edge to Agent entities by IDs.
func (_u *ChannelUpdate) RemoveAllowedAgentIDs(ids ...string) *ChannelUpdate {
	_u.mutation.RemoveAllowedAgentIDs(ids...)
	return _u
}

// RemoveAllowedAgents removes "allowed_agents" edges to Agent entities.
func (_u *ChannelUpdate) RemoveAllowedAgents(v ...*Agent) *ChannelUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAllowedAgentIDs(ids...)
}

// ClearContext clears the "context" edge to the ChannelContext entity.
func (_u *ChannelUpdate) ClearContext() *ChannelUpdate {
	_u.mutation.ClearContext()
	return _u
}

// ClearPermissionSet clears the "permission_set" edge to the PermissionSet entity.
func (_u *ChannelUpdate) ClearPermissionSet() *ChannelUpdate {
	_u.mutation.ClearPermissionSet()
	return _u
}

// ClearMessages clears all "messages" edges to the ChatMessage entity.
func (_u *ChannelUpdate) ClearMessages() *ChannelUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ChatMessage entities by IDs.
func (_u *ChannelUpdate) RemoveMessageIDs(ids ...string) *ChannelUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ChatMessage entities.
func (_u *ChannelUpdate) RemoveMessages(v ...*ChatMessage) *ChannelUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChannelUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChannelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChannelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(channel.Table, channel.Columns, sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(channel.FieldName, field.TypeString, value)
	}
	if _u.mutation.DefaultAgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   channel.DefaultAgentTable,
			Columns: []string{channel.DefaultAgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DefaultAgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   channel.DefaultAgentTable,
			Columns: []string{channel.DefaultAgentColumn},
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
	if _u.mutation.AllowedAgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.AllowedAgentsTable,
			Columns: []string{channel.AllowedAgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAllowedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AllowedAgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.AllowedAgentsTable,
			Columns: []string{channel.AllowedAgentsColumn},
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
	if nodes := _u.mutation.AllowedAgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.AllowedAgentsTable,
			Columns: []string{channel.AllowedAgentsColumn},
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
	if _u.mutation.ContextCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   channel.ContextTable,
			Columns: []string{channel.ContextColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(channelcontext.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContextIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   channel.ContextTable,
			Columns: []string{channel.ContextColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(channelcontext.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PermissionSetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   channel.PermissionSetTable,
			Columns: []string{channel.PermissionSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(permissionset.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PermissionSetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   channel.PermissionSetTable,
			Columns: []string{channel.PermissionSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(permissionset.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.MessagesTable,
			Columns: []string{channel.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.MessagesTable,
			Columns: []string{channel.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.MessagesTable,
			Columns: []string{channel.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChannelUpdateOne is the builder for updating a single Channel entity.
type ChannelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChannelMutation
}

// SetName sets the "name" field.
func (_u *ChannelUpdateOne) SetName(v string) *ChannelUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableName(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDefaultAgentID sets the "default_agent_id" field.
func (_u *ChannelUpdateOne) SetDefaultAgentID(v string) *ChannelUpdateOne {
	_u.mutation.SetDefaultAgentID(v)
	return _u
}

// SetNillableDefaultAgentID sets the "default_agent_id" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableDefaultAgentID(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetDefaultAgentID(*v)
	}
	return _u
}

// ClearDefaultAgentID clears the value of the "default_agent_id" field.
func (_u *ChannelUpdateOne) ClearDefaultAgentID() *ChannelUpdateOne {
	_u.mutation.ClearDefaultAgentID()
	return _u
}

// SetContextID sets the "context_id" field.
func (_u *ChannelUpdateOne) SetContextID(v string) *ChannelUpdateOne {
	_u.mutation.SetContextID(v)
	return _u
}

// SetNillableContextID sets the "context_id" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillableContextID(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetContextID(*v)
	}
	return _u
}

// ClearContextID clears the value of the "context_id" field.
func (_u *ChannelUpdateOne) ClearContextID() *ChannelUpdateOne {
	_u.mutation.ClearContextID()
	return _u
}

// SetPermissionSetID sets the "permission_set_id" field.
func (_u *ChannelUpdateOne) SetPermissionSetID(v string) *ChannelUpdateOne {
	_u.mutation.SetPermissionSetID(v)
	return _u
}

// SetNillablePermissionSetID sets the "permission_set_id" field if the given value is not nil.
func (_u *ChannelUpdateOne) SetNillablePermissionSetID(v *string) *ChannelUpdateOne {
	if v != nil {
		_u.SetPermissionSetID(*v)
	}
	return _u
}

// ClearPermissionSetID clears the value of the "permission_set_id" field.
func (_u *ChannelUpdateOne) ClearPermissionSetID() *ChannelUpdateOne {
	_u.mutation.ClearPermissionSetID()
	return _u
}

// SetDefaultAgent sets the "default_agent" edge to the Agent entity.
func (_u *ChannelUpdateOne) SetDefaultAgent(v *Agent) *ChannelUpdateOne {
	return _u.SetDefaultAgentID(v.ID)
}

// AddAllowedAgentIDs adds the "allowed_agents" edge to the Agent entity by IDs.
func (_u *ChannelUpdateOne) AddAllowedAgentIDs(ids ...string) *ChannelUpdateOne {
	_u.mutation.AddAllowedAgentIDs(ids...)
	return _u
}

// AddAllowedAgents adds the "allowed_agents" edges to the Agent entity.
func (_u *ChannelUpdateOne) AddAllowedAgents(v ...*Agent) *ChannelUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAllowedAgentIDs(ids...)
}

// SetContext sets the "context" edge to the ChannelContext entity.
func (_u *ChannelUpdateOne) SetContext(v *ChannelContext) *ChannelUpdateOne {
	return _u.SetContextID(v.ID)
}

// SetPermissionSet sets the "permission_set" edge to the PermissionSet entity.
func (_u *ChannelUpdateOne) SetPermissionSet(v *PermissionSet) *ChannelUpdateOne {
	return _u.SetPermissionSetID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by IDs.
func (_u *ChannelUpdateOne) AddMessageIDs(ids ...string) *ChannelUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ChatMessage entity.
func (_u *ChannelUpdateOne) AddMessages(v ...*ChatMessage) *ChannelUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the ChannelMutation object of the builder.
func (_u *ChannelUpdateOne) Mutation() *ChannelMutation {
	return _u.mutation
}

// ClearDefaultAgent clears the "default_agent" edge to the Agent entity.
func (_u *ChannelUpdateOne) ClearDefaultAgent() *ChannelUpdateOne {
	_u.mutation.ClearDefaultAgent()
	return _u
}

// ClearAllowedAgents clears all "allowed_agents" edges to the Agent entity.
func (_u *ChannelUpdateOne) ClearAllowedAgents() *ChannelUpdateOne {
	_u.mutation.ClearAllowedAgents()
	return _u
}

// RemoveAllowedAgentIDs removes the "allowed_agents" edge to Agent entities by IDs.
func (_u *ChannelUpdateOne) RemoveAllowedAgentIDs(ids ...string) *ChannelUpdateOne {
	_u.mutation.RemoveAllowedAgentIDs(ids...)
	return _u
}

// RemoveAllowedAgents removes "allowed_agents" edges to Agent entities.
func (_u *ChannelUpdateOne) RemoveAllowedAgents(v ...*Agent) *ChannelUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAllowedAgentIDs(ids...)
}

// ClearContext clears the "context" edge to the ChannelContext entity.
func (_u *ChannelUpdateOne) ClearContext() *ChannelUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// ClearPermissionSet clears the "permission_set" edge to the PermissionSet entity.
func (_u *ChannelUpdateOne) ClearPermissionSet() *ChannelUpdateOne {
	_u.mutation.ClearPermissionSet()
	return _u
}

// ClearMessages clears all "messages" edges to the ChatMessage entity.
func (_u *ChannelUpdateOne) ClearMessages() *ChannelUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ChatMessage entities by IDs.
func (_u *ChannelUpdateOne) RemoveMessageIDs(ids ...string) *ChannelUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ChatMessage entities.
func (_u *ChannelUpdateOne) RemoveMessages(v ...*ChatMessage) *ChannelUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Where appends a list predicates to the ChannelUpdate builder.
func (_u *ChannelUpdateOne) Where(ps ...predicate.Channel) *ChannelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChannelUpdateOne) Select(field string, fields ...string) *ChannelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Channel entity.
func (_u *ChannelUpdateOne) Save(ctx context.Context) (*Channel, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelUpdateOne) SaveX(ctx context.Context) *Channel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChannelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChannelUpdateOne) sqlSave(ctx context.Context) (_node *Channel, err error) {
	_spec := sqlgraph.NewUpdateSpec(channel.Table, channel.Columns, sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Channel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, channel.FieldID)
		for _, f := range fields {
			if !channel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != channel.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(channel.FieldName, field.TypeString, value)
	}
	if _u.mutation.DefaultAgentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   channel.DefaultAgentTable,
			Columns: []string{channel.DefaultAgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DefaultAgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   channel.DefaultAgentTable,
			Columns: []string{channel.DefaultAgentColumn},
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
	if _u.mutation.AllowedAgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.AllowedAgentsTable,
			Columns: []string{channel.AllowedAgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAllowedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AllowedAgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.AllowedAgentsTable,
			Columns: []string{channel.AllowedAgentsColumn},
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
	if nodes := _u.mutation.AllowedAgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.AllowedAgentsTable,
			Columns: []string{channel.AllowedAgentsColumn},
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
	if _u.mutation.ContextCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   channel.ContextTable,
			Columns: []string{channel.ContextColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(channelcontext.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContextIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   channel.ContextTable,
			Columns: []string{channel.ContextColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(channelcontext.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PermissionSetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   channel.PermissionSetTable,
			Columns: []string{channel.PermissionSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(permissionset.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PermissionSetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   channel.PermissionSetTable,
			Columns: []string{channel.PermissionSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(permissionset.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.MessagesTable,
			Columns: []string{channel.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.MessagesTable,
			Columns: []string{channel.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.MessagesTable,
			Columns: []string{channel.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Channel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
