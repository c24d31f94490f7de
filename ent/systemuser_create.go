// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/systemuser"
)

// SystemUserCreate is the builder for creating a SystemUser entity.
type SystemUserCreate struct {
	config
	mutation *SystemUserMutation
	hooks    []Hook
}

// SetUsername sets the "username" field.
func (_c *SystemUserCreate) SetUsername(v string) *SystemUserCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetWorkingDirectory sets the "working_directory" field.
func (_c *SystemUserCreate) SetWorkingDirectory(v string) *SystemUserCreate {
	_c.mutation.SetWorkingDirectory(v)
	return _c
}

// SetNillableWorkingDirectory sets the "working_directory" field if the given value is not nil.
func (_c *SystemUserCreate) SetNillableWorkingDirectory(v *string) *SystemUserCreate {
	if v != nil {
		_c.SetWorkingDirectory(*v)
	}
	return _c
}

// SetSandboxRoot sets the "sandbox_root" field.
func (_c *SystemUserCreate) SetSandboxRoot(v string) *SystemUserCreate {
	_c.mutation.SetSandboxRoot(v)
	return _c
}

// SetNillableSandboxRoot sets the "sandbox_root" field if the given value is not nil.
func (_c *SystemUserCreate) SetNillableSandboxRoot(v *string) *SystemUserCreate {
	if v != nil {
		_c.SetSandboxRoot(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SystemUserCreate) SetCreatedAt(v time.Time) *SystemUserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SystemUserCreate) SetNillableCreatedAt(v *time.Time) *SystemUserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SystemUserCreate) SetID(v string) *SystemUserCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SystemUserMutation object of the builder.
func (_c *SystemUserCreate) Mutation() *SystemUserMutation {
	return _c.mutation
}

// Save creates the SystemUser in the database.
func (_c *SystemUserCreate) Save(ctx context.Context) (*SystemUser, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SystemUserCreate) SaveX(ctx context.Context) *SystemUser {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SystemUserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SystemUserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SystemUserCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := systemuser.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SystemUserCreate) check() error {
	if _, ok := _c.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "SystemUser.username"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SystemUser.created_at"`)}
	}
	return nil
}

func (_c *SystemUserCreate) sqlSave(ctx context.Context) (*SystemUser, error) {
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
			return nil, fmt.Errorf("unexpected SystemUser.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SystemUserCreate) createSpec() (*SystemUser, *sqlgraph.CreateSpec) {
	var (
		_node = &SystemUser{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(systemuser.Table, sqlgraph.NewFieldSpec(systemuser.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(systemuser.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.WorkingDirectory(); ok {
		_spec.SetField(systemuser.FieldWorkingDirectory, field.TypeString, value)
		_node.WorkingDirectory = &value
	}
	if value, ok := _c.mutation.SandboxRoot(); ok {
		_spec.SetField(systemuser.FieldSandboxRoot, field.TypeString, value)
		_node.SandboxRoot = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(systemuser.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SystemUserCreateBulk is the builder for creating many SystemUser entities in bulk.
type SystemUserCreateBulk struct {
	config
	err      error
	builders []*SystemUserCreate
}

// Save creates the SystemUser entities in the database.
func (_c *SystemUserCreateBulk) Save(ctx context.Context) ([]*SystemUser, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SystemUser, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SystemUserMutation)
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
func (_c *SystemUserCreateBulk) SaveX(ctx context.Context) []*SystemUser {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SystemUserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SystemUserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
