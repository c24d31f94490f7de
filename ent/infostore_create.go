// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/infostore"
)

// InfoStoreCreate is the builder for creating a InfoStore entity.
type InfoStoreCreate struct {
	config
	mutation *InfoStoreMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *InfoStoreCreate) SetName(v string) *InfoStoreCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *InfoStoreCreate) SetKind(v infostore.Kind) *InfoStoreCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *InfoStoreCreate) SetLocation(v string) *InfoStoreCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InfoStoreCreate) SetCreatedAt(v time.Time) *InfoStoreCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InfoStoreCreate) SetNillableCreatedAt(v *time.Time) *InfoStoreCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InfoStoreCreate) SetID(v string) *InfoStoreCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InfoStoreMutation object of the builder.
func (_c *InfoStoreCreate) Mutation() *InfoStoreMutation {
	return _c.mutation
}

// Save creates the InfoStore in the database.
func (_c *InfoStoreCreate) Save(ctx context.Context) (*InfoStore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InfoStoreCreate) SaveX(ctx context.Context) *InfoStore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InfoStoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InfoStoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InfoStoreCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := infostore.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InfoStoreCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "InfoStore.name"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "InfoStore.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := infostore.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "InfoStore.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Location(); !ok {
		return &ValidationError{Name: "location", err: errors.New(`ent: missing required field "InfoStore.location"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InfoStore.created_at"`)}
	}
	return nil
}

func (_c *InfoStoreCreate) sqlSave(ctx context.Context) (*InfoStore, error) {
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
			return nil, fmt.Errorf("unexpected InfoStore.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InfoStoreCreate) createSpec() (*InfoStore, *sqlgraph.CreateSpec) {
	var (
		_node = &InfoStore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(infostore.Table, sqlgraph.NewFieldSpec(infostore.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(infostore.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(infostore.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(infostore.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(infostore.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// InfoStoreCreateBulk is the builder for creating many InfoStore entities in bulk.
type InfoStoreCreateBulk struct {
	config
	err      error
	builders []*InfoStoreCreate
}

// Save creates the InfoStore entities in the database.
func (_c *InfoStoreCreateBulk) Save(ctx context.Context) ([]*InfoStore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InfoStore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InfoStoreMutation)
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
func (_c *InfoStoreCreateBulk) SaveX(ctx context.Context) []*InfoStore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InfoStoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InfoStoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
