// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/grant"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// GrantUpdate is the builder for updating Grant entities.
type GrantUpdate struct {
	config
	hooks    []Hook
	mutation *GrantMutation
}

// Where appends a list predicates to the GrantUpdate builder.
func (_u *GrantUpdate) Where(ps ...predicate.Grant) *GrantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *GrantUpdate) SetCategory(v grant.Category) *GrantUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *GrantUpdate) SetNillableCategory(v *grant.Category) *GrantUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetResourceID sets the "resource_id" field.
func (_u *GrantUpdate) SetResourceID(v string) *GrantUpdate {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *GrantUpdate) SetNillableResourceID(v *string) *GrantUpdate {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// SetClearance sets the "clearance" field.
func (_u *GrantUpdate) SetClearance(v grant.Clearance) *GrantUpdate {
	_u.mutation.SetClearance(v)
	return _u
}

// SetNillableClearance sets the "clearance" field if the given value is not nil.
func (_u *GrantUpdate) SetNillableClearance(v *grant.Clearance) *GrantUpdate {
	if v != nil {
		_u.SetClearance(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *GrantUpdate) SetIsDefault(v bool) *GrantUpdate {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *GrantUpdate) SetNillableIsDefault(v *bool) *GrantUpdate {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// Mutation returns the GrantMutation object of the builder.
func (_u *GrantUpdate) Mutation() *GrantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GrantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GrantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrantUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := grant.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Grant.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Clearance(); ok {
		if err := grant.ClearanceValidator(v); err != nil {
			return &ValidationError{Name: "clearance", err: fmt.Errorf(`ent: validator failed for field "Grant.clearance": %w`, err)}
		}
	}
	if _u.mutation.PermissionSetCleared() && len(_u.mutation.PermissionSetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Grant.permission_set"`)
	}
	return nil
}

func (_u *GrantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grant.Table, grant.Columns, sqlgraph.NewFieldSpec(grant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(grant.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResourceID(); ok {
		_spec.SetField(grant.FieldResourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Clearance(); ok {
		_spec.SetField(grant.FieldClearance, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(grant.FieldIsDefault, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GrantUpdateOne is the builder for updating a single Grant entity.
type GrantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GrantMutation
}

// SetCategory sets the "category" field.
func (_u *GrantUpdateOne) SetCategory(v grant.Category) *GrantUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *GrantUpdateOne) SetNillableCategory(v *grant.Category) *GrantUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetResourceID sets the "resource_id" field.
func (_u *GrantUpdateOne) SetResourceID(v string) *GrantUpdateOne {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *GrantUpdateOne) SetNillableResourceID(v *string) *GrantUpdateOne {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// SetClearance sets the "clearance" field.
func (_u *GrantUpdateOne) SetClearance(v grant.Clearance) *GrantUpdateOne {
	_u.mutation.SetClearance(v)
	return _u
}

// SetNillableClearance sets the "clearance" field if the given value is not nil.
func (_u *GrantUpdateOne) SetNillableClearance(v *grant.Clearance) *GrantUpdateOne {
	if v != nil {
		_u.SetClearance(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *GrantUpdateOne) SetIsDefault(v bool) *GrantUpdateOne {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *GrantUpdateOne) SetNillableIsDefault(v *bool) *GrantUpdateOne {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// Mutation returns the GrantMutation object of the builder.
func (_u *GrantUpdateOne) Mutation() *GrantMutation {
	return _u.mutation
}

// Where appends a list predicates to the GrantUpdate builder.
func (_u *GrantUpdateOne) Where(ps ...predicate.Grant) *GrantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GrantUpdateOne) Select(field string, fields ...string) *GrantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Grant entity.
func (_u *GrantUpdateOne) Save(ctx context.Context) (*Grant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrantUpdateOne) SaveX(ctx context.Context) *Grant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GrantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrantUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := grant.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Grant.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Clearance(); ok {
		if err := grant.ClearanceValidator(v); err != nil {
			return &ValidationError{Name: "clearance", err: fmt.Errorf(`ent: validator failed for field "Grant.clearance": %w`, err)}
		}
	}
	if _u.mutation.PermissionSetCleared() && len(_u.mutation.PermissionSetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Grant.permission_set"`)
	}
	return nil
}

func (_u *GrantUpdateOne) sqlSave(ctx context.Context) (_node *Grant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grant.Table, grant.Columns, sqlgraph.NewFieldSpec(grant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Grant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, grant.FieldID)
		for _, f := range fields {
			if !grant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != grant.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(grant.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResourceID(); ok {
		_spec.SetField(grant.FieldResourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Clearance(); ok {
		_spec.SetField(grant.FieldClearance, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(grant.FieldIsDefault, field.TypeBool, value)
	}
	_node = &Grant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
