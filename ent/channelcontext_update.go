// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/channelcontext"
	"github.com/codeready-toolchain/warden/ent/permissionset"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// ChannelContextUpdate is the builder for updating ChannelContext entities.
type ChannelContextUpdate struct {
	config
	hooks    []Hook
	mutation *ChannelContextMutation
}

// Where appends a list predicates to the ChannelContextUpdate builder.
func (_u *ChannelContextUpdate) Where(ps ...predicate.ChannelContext) *ChannelContextUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ChannelContextUpdate) SetName(v string) *ChannelContextUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChannelContextUpdate) SetNillableName(v *string) *ChannelContextUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPermissionSetID sets the "permission_set_id" field.
func (_u *ChannelContextUpdate) SetPermissionSetID(v string) *ChannelContextUpdate {
	_u.mutation.SetPermissionSetID(v)
	return _u
}

// SetNillablePermissionSetID sets the "permission_set_id" field if the given value is not nil.
func (_u *ChannelContextUpdate) SetNillablePermissionSetID(v *string) *ChannelContextUpdate {
	if v != nil {
		_u.SetPermissionSetID(*v)
	}
	return _u
}

// ClearPermissionSetID clears the value of the "permission_set_id" field.
func (_u *ChannelContextUpdate) ClearPermissionSetID() *ChannelContextUpdate {
	_u.mutation.ClearPermissionSetID()
	return _u
}

// SetPermissionSet sets the "permission_set" edge to the PermissionSet entity.
func (_u *ChannelContextUpdate) SetPermissionSet(v *PermissionSet) *ChannelContextUpdate {
	return _u.SetPermissionSetID(v.ID)
}

// Mutation returns the ChannelContextMutation object of the builder.
func (_u *ChannelContextUpdate) Mutation() *ChannelContextMutation {
	return _u.mutation
}

// ClearPermissionSet clears the "permission_set" edge to the PermissionSet entity.
func (_u *ChannelContextUpdate) ClearPermissionSet() *ChannelContextUpdate {
	_u.mutation.ClearPermissionSet()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChannelContextUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelContextUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChannelContextUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelContextUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChannelContextUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(channelcontext.Table, channelcontext.Columns, sqlgraph.NewFieldSpec(channelcontext.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(channelcontext.FieldName, field.TypeString, value)
	}
	if _u.mutation.PermissionSetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   channelcontext.PermissionSetTable,
			Columns: []string{channelcontext.PermissionSetColumn},
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
			Table:   channelcontext.PermissionSetTable,
			Columns: []string{channelcontext.PermissionSetColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channelcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChannelContextUpdateOne is the builder for updating a single ChannelContext entity.
type ChannelContextUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChannelContextMutation
}

// SetName sets the "name" field.
func (_u *ChannelContextUpdateOne) SetName(v string) *ChannelContextUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChannelContextUpdateOne) SetNillableName(v *string) *ChannelContextUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPermissionSetID sets the "permission_set_id" field.
func (_u *ChannelContextUpdateOne) SetPermissionSetID(v string) *ChannelContextUpdateOne {
	_u.mutation.SetPermissionSetID(v)
	return _u
}

// SetNillablePermissionSetID sets the "permission_set_id" field if the given value is not nil.
func (_u *ChannelContextUpdateOne) SetNillablePermissionSetID(v *string) *ChannelContextUpdateOne {
	if v != nil {
		_u.SetPermissionSetID(*v)
	}
	return _u
}

// ClearPermissionSetID clears the value of the "permission_set_id" field.
func (_u *ChannelContextUpdateOne) ClearPermissionSetID() *ChannelContextUpdateOne {
	_u.mutation.ClearPermissionSetID()
	return _u
}

// SetPermissionSet sets the "permission_set" edge to the PermissionSet entity.
func (_u *ChannelContextUpdateOne) SetPermissionSet(v *PermissionSet) *ChannelContextUpdateOne {
	return _u.SetPermissionSetID(v.ID)
}

// Mutation returns the ChannelContextMutation object of the builder.
func (_u *ChannelContextUpdateOne) Mutation() *ChannelContextMutation {
	return _u.mutation
}

// ClearPermissionSet clears the "permission_set" edge to the PermissionSet entity.
func (_u *ChannelContextUpdateOne) ClearPermissionSet() *ChannelContextUpdateOne {
	_u.mutation.ClearPermissionSet()
	return _u
}

// Where appends a list predicates to the ChannelContextUpdate builder.
func (_u *ChannelContextUpdateOne) Where(ps ...predicate.ChannelContext) *ChannelContextUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChannelContextUpdateOne) Select(field string, fields ...string) *ChannelContextUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChannelContext entity.
func (_u *ChannelContextUpdateOne) Save(ctx context.Context) (*ChannelContext, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelContextUpdateOne) SaveX(ctx context.Context) *ChannelContext {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChannelContextUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelContextUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChannelContextUpdateOne) sqlSave(ctx context.Context) (_node *ChannelContext, err error) {
	_spec := sqlgraph.NewUpdateSpec(channelcontext.Table, channelcontext.Columns, sqlgraph.NewFieldSpec(channelcontext.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChannelContext.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, channelcontext.FieldID)
		for _, f := range fields {
			if !channelcontext.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != channelcontext.FieldID {
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
		_spec.SetField(channelcontext.FieldName, field.TypeString, value)
	}
	if _u.mutation.PermissionSetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   channelcontext.PermissionSetTable,
			Columns: []string{channelcontext.PermissionSetColumn},
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
			Table:   channelcontext.PermissionSetTable,
			Columns: []string{channelcontext.PermissionSetColumn},
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
	_node = &ChannelContext{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channelcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
