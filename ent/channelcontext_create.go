// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/channelcontext"
	"github.com/codeready-toolchain/warden/ent/permissionset"
)

// ChannelContextCreate is the builder for creating a ChannelContext entity.
type ChannelContextCreate struct {
	config
	mutation *ChannelContextMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ChannelContextCreate) SetName(v string) *ChannelContextCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPermissionSetID sets the "permission_set_id" field.
func (_c *ChannelContextCreate) SetPermissionSetID(v string) *ChannelContextCreate {
	_c.mutation.SetPermissionSetID(v)
	return _c
}

// SetNillablePermissionSetID sets the "permission_set_id" field if the given value is not nil.
func (_c *ChannelContextCreate) SetNillablePermissionSetID(v *string) *ChannelContextCreate {
	if v != nil {
		_c.SetPermissionSetID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChannelContextCreate) SetCreatedAt(v time.Time) *ChannelContextCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChannelContextCreate) SetNillableCreatedAt(v *time.Time) *ChannelContextCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChannelContextCreate) SetID(v string) *ChannelContextCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPermissionSet sets the "permission_set" edge to the PermissionSet entity.
func (_c *ChannelContextCreate) SetPermissionSet(v *PermissionSet) *ChannelContextCreate {
	return _c.SetPermissionSetID(v.ID)
}

// Mutation returns the ChannelContextMutation object of the builder.
func (_c *ChannelContextCreate) Mutation() *ChannelContextMutation {
	return _c.mutation
}

// Save creates the ChannelContext in the database.
func (_c *ChannelContextCreate) Save(ctx context.Context) (*ChannelContext, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChannelContextCreate) SaveX(ctx context.Context) *ChannelContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChannelContextCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChannelContextCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChannelContextCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := channelcontext.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChannelContextCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ChannelContext.name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChannelContext.created_at"`)}
	}
	return nil
}

func (_c *ChannelContextCreate) sqlSave(ctx context.Context) (*ChannelContext, error) {
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
			return nil, fmt.Errorf("unexpected ChannelContext.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChannelContextCreate) createSpec() (*ChannelContext, *sqlgraph.CreateSpec) {
	var (
		_node = &ChannelContext{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(channelcontext.Table, sqlgraph.NewFieldSpec(channelcontext.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(channelcontext.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(channelcontext.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PermissionSetIDs(); len(nodes) > 0 {
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
		_node.PermissionSetID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChannelContextCreateBulk is the builder for creating many ChannelContext entities in bulk.
type ChannelContextCreateBulk struct {
	config
	err      error
	builders []*ChannelContextCreate
}

// Save creates the ChannelContext entities in the database.
func (_c *ChannelContextCreateBulk) Save(ctx context.Context) ([]*ChannelContext, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChannelContext, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChannelContextMutation)
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
func (_c *ChannelContextCreateBulk) SaveX(ctx context.Context) []*ChannelContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChannelContextCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChannelContextCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
