// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/infostore"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// InfoStoreUpdate is the builder for updating InfoStore entities.
type InfoStoreUpdate struct {
	config
	hooks    []Hook
	mutation *InfoStoreMutation
}

// Where appends a list predicates to the InfoStoreUpdate builder.
func (_u *InfoStoreUpdate) Where(ps ...predicate.InfoStore) *InfoStoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *InfoStoreUpdate) SetName(v string) *InfoStoreUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InfoStoreUpdate) SetNillableName(v *string) *InfoStoreUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *InfoStoreUpdate) SetKind(v infostore.Kind) *InfoStoreUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *InfoStoreUpdate) SetNillableKind(v *infostore.Kind) *InfoStoreUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *InfoStoreUpdate) SetLocation(v string) *InfoStoreUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *InfoStoreUpdate) SetNillableLocation(v *string) *InfoStoreUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// Mutation returns the InfoStoreMutation object of the builder.
func (_u *InfoStoreUpdate) Mutation() *InfoStoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InfoStoreUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InfoStoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InfoStoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InfoStoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InfoStoreUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := infostore.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "InfoStore.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *InfoStoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(infostore.Table, infostore.Columns, sqlgraph.NewFieldSpec(infostore.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(infostore.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(infostore.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(infostore.FieldLocation, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{infostore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InfoStoreUpdateOne is the builder for updating a single InfoStore entity.
type InfoStoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InfoStoreMutation
}

// SetName sets the "name" field.
func (_u *InfoStoreUpdateOne) SetName(v string) *InfoStoreUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InfoStoreUpdateOne) SetNillableName(v *string) *InfoStoreUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *InfoStoreUpdateOne) SetKind(v infostore.Kind) *InfoStoreUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *InfoStoreUpdateOne) SetNillableKind(v *infostore.Kind) *InfoStoreUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *InfoStoreUpdateOne) SetLocation(v string) *InfoStoreUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *InfoStoreUpdateOne) SetNillableLocation(v *string) *InfoStoreUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// Mutation returns the InfoStoreMutation object of the builder.
func (_u *InfoStoreUpdateOne) Mutation() *InfoStoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the InfoStoreUpdate builder.
func (_u *InfoStoreUpdateOne) Where(ps ...predicate.InfoStore) *InfoStoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InfoStoreUpdateOne) Select(field string, fields ...string) *InfoStoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InfoStore entity.
func (_u *InfoStoreUpdateOne) Save(ctx context.Context) (*InfoStore, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InfoStoreUpdateOne) SaveX(ctx context.Context) *InfoStore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InfoStoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InfoStoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InfoStoreUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := infostore.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "InfoStore.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *InfoStoreUpdateOne) sqlSave(ctx context.Context) (_node *InfoStore, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(infostore.Table, infostore.Columns, sqlgraph.NewFieldSpec(infostore.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InfoStore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, infostore.FieldID)
		for _, f := range fields {
			if !infostore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != infostore.FieldID {
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
		_spec.SetField(infostore.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(infostore.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(infostore.FieldLocation, field.TypeString, value)
	}
	_node = &InfoStore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{infostore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
