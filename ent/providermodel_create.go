// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/providermodel"
)

// ProviderModelCreate is the builder for creating a ProviderModel entity.
type ProviderModelCreate struct {
	config
	mutation *ProviderModelMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ProviderModelCreate) SetName(v string) *ProviderModelCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ProviderModelCreate) SetProvider(v providermodel.Provider) *ProviderModelCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *ProviderModelCreate) SetModelName(v string) *ProviderModelCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetEncryptedAPIKey sets the "encrypted_api_key" field.
func (_c *ProviderModelCreate) SetEncryptedAPIKey(v string) *ProviderModelCreate {
	_c.mutation.SetEncryptedAPIKey(v)
	return _c
}

// SetNillableEncryptedAPIKey sets the "encrypted_api_key" field if the given value is not nil.
func (_c *ProviderModelCreate) SetNillableEncryptedAPIKey(v *string) *ProviderModelCreate {
	if v != nil {
		_c.SetEncryptedAPIKey(*v)
	}
	return _c
}

// SetBaseURL sets the "base_url" field.
func (_c *ProviderModelCreate) SetBaseURL(v string) *ProviderModelCreate {
	_c.mutation.SetBaseURL(v)
	return _c
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_c *ProviderModelCreate) SetNillableBaseURL(v *string) *ProviderModelCreate {
	if v != nil {
		_c.SetBaseURL(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProviderModelCreate) SetCreatedAt(v time.Time) *ProviderModelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProviderModelCreate) SetNillableCreatedAt(v *time.Time) *ProviderModelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProviderModelCreate) SetID(v string) *ProviderModelCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProviderModelMutation object of the builder.
func (_c *ProviderModelCreate) Mutation() *ProviderModelMutation {
	return _c.mutation
}

// Save creates the ProviderModel in the database.
func (_c *ProviderModelCreate) Save(ctx context.Context) (*ProviderModel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProviderModelCreate) SaveX(ctx context.Context) *ProviderModel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderModelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderModelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProviderModelCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := providermodel.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProviderModelCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ProviderModel.name"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ProviderModel.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := providermodel.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ProviderModel.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "ProviderModel.model_name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProviderModel.created_at"`)}
	}
	return nil
}

func (_c *ProviderModelCreate) sqlSave(ctx context.Context) (*ProviderModel, error) {
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
			return nil, fmt.Errorf("unexpected ProviderModel.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProviderModelCreate) createSpec() (*ProviderModel, *sqlgraph.CreateSpec) {
	var (
		_node = &ProviderModel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(providermodel.Table, sqlgraph.NewFieldSpec(providermodel.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(providermodel.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(providermodel.FieldProvider, field.TypeEnum, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(providermodel.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.EncryptedAPIKey(); ok {
		_spec.SetField(providermodel.FieldEncryptedAPIKey, field.TypeString, value)
		_node.EncryptedAPIKey = value
	}
	if value, ok := _c.mutation.BaseURL(); ok {
		_spec.SetField(providermodel.FieldBaseURL, field.TypeString, value)
		_node.BaseURL = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(providermodel.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ProviderModelCreateBulk is the builder for creating many ProviderModel entities in bulk.
type ProviderModelCreateBulk struct {
	config
	err      error
	builders []*ProviderModelCreate
}

// Save creates the ProviderModel entities in the database.
func (_c *ProviderModelCreateBulk) Save(ctx context.Context) ([]*ProviderModel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProviderModel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProviderModelMutation)
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
func (_c *ProviderModelCreateBulk) SaveX(ctx context.Context) []*ProviderModel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderModelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderModelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
