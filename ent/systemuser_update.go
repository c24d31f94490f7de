// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/predicate"
	"github.com/codeready-toolchain/warden/ent/systemuser"
)

// SystemUserUpdate is the builder for updating SystemUser entities.
type SystemUserUpdate struct {
	config
	hooks    []Hook
	mutation *SystemUserMutation
}

// Where appends a list predicates to the SystemUserUpdate builder.
func (_u *SystemUserUpdate) Where(ps ...predicate.SystemUser) *SystemUserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUsername sets the "username" field.
func (_u *SystemUserUpdate) SetUsername(v string) *SystemUserUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *SystemUserUpdate) SetNillableUsername(v *string) *SystemUserUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetWorkingDirectory sets the "working_directory" field.
func (_u *SystemUserUpdate) SetWorkingDirectory(v string) *SystemUserUpdate {
	_u.mutation.SetWorkingDirectory(v)
	return _u
}

// SetNillableWorkingDirectory sets the "working_directory" field if the given value is not nil.
func (_u *SystemUserUpdate) SetNillableWorkingDirectory(v *string) *SystemUserUpdate {
	if v != nil {
		_u.SetWorkingDirectory(*v)
	}
	return _u
}

// ClearWorkingDirectory clears the value of the "working_directory" field.
func (_u *SystemUserUpdate) ClearWorkingDirectory() *SystemUserUpdate {
	_u.mutation.ClearWorkingDirectory()
	return _u
}

// SetSandboxRoot sets the "sandbox_root" field.
func (_u *SystemUserUpdate) SetSandboxRoot(v string) *SystemUserUpdate {
	_u.mutation.SetSandboxRoot(v)
	return _u
}

// SetNillableSandboxRoot sets the "sandbox_root" field if the given value is not nil.
func (_u *SystemUserUpdate) SetNillableSandboxRoot(v *string) *SystemUserUpdate {
	if v != nil {
		_u.SetSandboxRoot(*v)
	}
	return _u
}

// ClearSandboxRoot clears the value of the "sandbox_root" field.
func (_u *SystemUserUpdate) ClearSandboxRoot() *SystemUserUpdate {
	_u.mutation.ClearSandboxRoot()
	return _u
}

// Mutation returns the SystemUserMutation object of the builder.
func (_u *SystemUserUpdate) Mutation() *SystemUserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SystemUserUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SystemUserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SystemUserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SystemUserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SystemUserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(systemuser.Table, systemuser.Columns, sqlgraph.NewFieldSpec(systemuser.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(systemuser.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkingDirectory(); ok {
		_spec.SetField(systemuser.FieldWorkingDirectory, field.TypeString, value)
	}
	if _u.mutation.WorkingDirectoryCleared() {
		_spec.ClearField(systemuser.FieldWorkingDirectory, field.TypeString)
	}
	if value, ok := _u.mutation.SandboxRoot(); ok {
		_spec.SetField(systemuser.FieldSandboxRoot, field.TypeString, value)
	}
	if _u.mutation.SandboxRootCleared() {
		_spec.ClearField(systemuser.FieldSandboxRoot, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{systemuser.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SystemUserUpdateOne is the builder for updating a single SystemUser entity.
type SystemUserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SystemUserMutation
}

// SetUsername sets the "username" field.
func (_u *SystemUserUpdateOne) SetUsername(v string) *SystemUserUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *SystemUserUpdateOne) SetNillableUsername(v *string) *SystemUserUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetWorkingDirectory sets the "working_directory" field.
func (_u *SystemUserUpdateOne) SetWorkingDirectory(v string) *SystemUserUpdateOne {
	_u.mutation.SetWorkingDirectory(v)
	return _u
}

// SetNillableWorkingDirectory sets the "working_directory" field if the given value is not nil.
func (_u *SystemUserUpdateOne) SetNillableWorkingDirectory(v *string) *SystemUserUpdateOne {
	if v != nil {
		_u.SetWorkingDirectory(*v)
	}
	return _u
}

// ClearWorkingDirectory clears the value of the "working_directory" field.
func (_u *SystemUserUpdateOne) ClearWorkingDirectory() *SystemUserUpdateOne {
	_u.mutation.ClearWorkingDirectory()
	return _u
}

// SetSandboxRoot sets the "sandbox_root" field.
func (_u *SystemUserUpdateOne) SetSandboxRoot(v string) *SystemUserUpdateOne {
	_u.mutation.SetSandboxRoot(v)
	return _u
}

// SetNillableSandboxRoot sets the "sandbox_root" field if the given value is not nil.
func (_u *SystemUserUpdateOne) SetNillableSandboxRoot(v *string) *SystemUserUpdateOne {
	if v != nil {
		_u.SetSandboxRoot(*v)
	}
	return _u
}

// ClearSandboxRoot clears the value of the "sandbox_root" field.
func (_u *SystemUserUpdateOne) ClearSandboxRoot() *SystemUserUpdateOne {
	_u.mutation.ClearSandboxRoot()
	return _u
}

// Mutation returns the SystemUserMutation object of the builder.
func (_u *SystemUserUpdateOne) Mutation() *SystemUserMutation {
	return _u.mutation
}

// Where appends a list predicates to the SystemUserUpdate builder.
func (_u *SystemUserUpdateOne) Where(ps ...predicate.SystemUser) *SystemUserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SystemUserUpdateOne) Select(field string, fields ...string) *SystemUserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SystemUser entity.
func (_u *SystemUserUpdateOne) Save(ctx context.Context) (*SystemUser, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SystemUserUpdateOne) SaveX(ctx context.Context) *SystemUser {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SystemUserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SystemUserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SystemUserUpdateOne) sqlSave(ctx context.Context) (_node *SystemUser, err error) {
	_spec := sqlgraph.NewUpdateSpec(systemuser.Table, systemuser.Columns, sqlgraph.NewFieldSpec(systemuser.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SystemUser.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, systemuser.FieldID)
		for _, f := range fields {
			if !systemuser.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != systemuser.FieldID {
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
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(systemuser.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkingDirectory(); ok {
		_spec.SetField(systemuser.FieldWorkingDirectory, field.TypeString, value)
	}
	if _u.mutation.WorkingDirectoryCleared() {
		_spec.ClearField(systemuser.FieldWorkingDirectory, field.TypeString)
	}
	if value, ok := _u.mutation.SandboxRoot(); ok {
		_spec.SetField(systemuser.FieldSandboxRoot, field.TypeString, value)
	}
	if _u.mutation.SandboxRootCleared() {
		_spec.ClearField(systemuser.FieldSandboxRoot, field.TypeString)
	}
	_node = &SystemUser{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{systemuser.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
