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
	"github.com/codeready-toolchain/warden/ent/providermodel"
)

// ProviderModelUpdate is the builder for updating ProviderModel entities.
type ProviderModelUpdate struct {
	config
	hooks    []Hook
	mutation *ProviderModelMutation
}

// Where appends a list predicates to the ProviderModelUpdate builder.
func (_u *ProviderModelUpdate) Where(ps ...predicate.ProviderModel) *ProviderModelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProviderModelUpdate) SetName(v string) *ProviderModelUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProviderModelUpdate) SetNillableName(v *string) *ProviderModelUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ProviderModelUpdate) SetProvider(v providermodel.Provider) *ProviderModelUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ProviderModelUpdate) SetNillableProvider(v *providermodel.Provider) *ProviderModelUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ProviderModelUpdate) SetModelName(v string) *ProviderModelUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ProviderModelUpdate) SetNillableModelName(v *string) *ProviderModelUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetEncryptedAPIKey sets the "encrypted_api_key" field.
func (_u *ProviderModelUpdate) SetEncryptedAPIKey(v string) *ProviderModelUpdate {
	_u.mutation.SetEncryptedAPIKey(v)
	return _u
}

// SetNillableEncryptedAPIKey sets the "encrypted_api_key" field if the given value is not nil.
func (_u *ProviderModelUpdate) SetNillableEncryptedAPIKey(v *string) *ProviderModelUpdate {
	if v != nil {
		_u.SetEncryptedAPIKey(*v)
	}
	return _u
}

// ClearEncryptedAPIKey clears the value of the "encrypted_api_key" field.
func (_u *ProviderModelUpdate) ClearEncryptedAPIKey() *ProviderModelUpdate {
	_u.mutation.ClearEncryptedAPIKey()
	return _u
}

// SetBaseURL sets the "base_url" field.
func (_u *ProviderModelUpdate) SetBaseURL(v string) *ProviderModelUpdate {
	_u.mutation.SetBaseURL(v)
	return _u
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_u *ProviderModelUpdate) SetNillableBaseURL(v *string) *ProviderModelUpdate {
	if v != nil {
		_u.SetBaseURL(*v)
	}
	return _u
}

// ClearBaseURL clears the value of the "base_url" field.
func (_u *ProviderModelUpdate) ClearBaseURL() *ProviderModelUpdate {
	_u.mutation.ClearBaseURL()
	return _u
}

// Mutation returns the ProviderModelMutation object of the builder.
func (_u *ProviderModelUpdate) Mutation() *ProviderModelMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProviderModelUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderModelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProviderModelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderModelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProviderModelUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := providermodel.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ProviderModel.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *ProviderModelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(providermodel.Table, providermodel.Columns, sqlgraph.NewFieldSpec(providermodel.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(providermodel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(providermodel.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(providermodel.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EncryptedAPIKey(); ok {
		_spec.SetField(providermodel.FieldEncryptedAPIKey, field.TypeString, value)
	}
	if _u.mutation.EncryptedAPIKeyCleared() {
		_spec.ClearField(providermodel.FieldEncryptedAPIKey, field.TypeString)
	}
	if value, ok := _u.mutation.BaseURL(); ok {
		_spec.SetField(providermodel.FieldBaseURL, field.TypeString, value)
	}
	if _u.mutation.BaseURLCleared() {
		_spec.ClearField(providermodel.FieldBaseURL, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providermodel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProviderModelUpdateOne is the builder for updating a single ProviderModel entity.
type ProviderModelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProviderModelMutation
}

// SetName sets the "name" field.
func (_u *ProviderModelUpdateOne) SetName(v string) *ProviderModelUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProviderModelUpdateOne) SetNillableName(v *string) *ProviderModelUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *ProviderModelUpdateOne) SetProvider(v providermodel.Provider) *ProviderModelUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *ProviderModelUpdateOne) SetNillableProvider(v *providermodel.Provider) *ProviderModelUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ProviderModelUpdateOne) SetModelName(v string) *ProviderModelUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ProviderModelUpdateOne) SetNillableModelName(v *string) *ProviderModelUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetEncryptedAPIKey sets the "encrypted_api_key" field.
func (_u *ProviderModelUpdateOne) SetEncryptedAPIKey(v string) *ProviderModelUpdateOne {
	_u.mutation.SetEncryptedAPIKey(v)
	return _u
}

// SetNillableEncryptedAPIKey sets the "encrypted_api_key" field if the given value is not nil.
func (_u *ProviderModelUpdateOne) SetNillableEncryptedAPIKey(v *string) *ProviderModelUpdateOne {
	if v != nil {
		_u.SetEncryptedAPIKey(*v)
	}
	return _u
}

// ClearEncryptedAPIKey clears the value of the "encrypted_api_key" field.
func (_u *ProviderModelUpdateOne) ClearEncryptedAPIKey() *ProviderModelUpdateOne {
	_u.mutation.ClearEncryptedAPIKey()
	return _u
}

// SetBaseURL sets the "base_url" field.
func (_u *ProviderModelUpdateOne) SetBaseURL(v string) *ProviderModelUpdateOne {
	_u.mutation.SetBaseURL(v)
	return _u
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_u *ProviderModelUpdateOne) SetNillableBaseURL(v *string) *ProviderModelUpdateOne {
	if v != nil {
		_u.SetBaseURL(*v)
	}
	return _u
}

// ClearBaseURL clears the value of the "base_url" field.
func (_u *ProviderModelUpdateOne) ClearBaseURL() *ProviderModelUpdateOne {
	_u.mutation.ClearBaseURL()
	return _u
}

// Mutation returns the ProviderModelMutation object of the builder.
func (_u *ProviderModelUpdateOne) Mutation() *ProviderModelMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProviderModelUpdate builder.
func (_u *ProviderModelUpdateOne) Where(ps ...predicate.ProviderModel) *ProviderModelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProviderModelUpdateOne) Select(field string, fields ...string) *ProviderModelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProviderModel entity.
func (_u *ProviderModelUpdateOne) Save(ctx context.Context) (*ProviderModel, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderModelUpdateOne) SaveX(ctx context.Context) *ProviderModel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProviderModelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderModelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProviderModelUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := providermodel.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "ProviderModel.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *ProviderModelUpdateOne) sqlSave(ctx context.Context) (_node *ProviderModel, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(providermodel.Table, providermodel.Columns, sqlgraph.NewFieldSpec(providermodel.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProviderModel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, providermodel.FieldID)
		for _, f := range fields {
			if !providermodel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != providermodel.FieldID {
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
		_spec.SetField(providermodel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(providermodel.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(providermodel.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EncryptedAPIKey(); ok {
		_spec.SetField(providermodel.FieldEncryptedAPIKey, field.TypeString, value)
	}
	if _u.mutation.EncryptedAPIKeyCleared() {
		_spec.ClearField(providermodel.FieldEncryptedAPIKey, field.TypeString)
	}
	if value, ok := _u.mutation.BaseURL(); ok {
		_spec.SetField(providermodel.FieldBaseURL, field.TypeString, value)
	}
	if _u.mutation.BaseURLCleared() {
		_spec.ClearField(providermodel.FieldBaseURL, field.TypeString)
	}
	_node = &ProviderModel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{providermodel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
