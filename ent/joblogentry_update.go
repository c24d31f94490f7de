// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/joblogentry"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// JobLogEntryUpdate is the builder for updating JobLogEntry entities.
type JobLogEntryUpdate struct {
	config
	hooks    []Hook
	mutation *JobLogEntryMutation
}

// Where appends a list predicates to the JobLogEntryUpdate builder.
func (_u *JobLogEntryUpdate) Where(ps ...predicate.JobLogEntry) *JobLogEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *JobLogEntryUpdate) SetSeverity(v joblogentry.Severity) *JobLogEntryUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *JobLogEntryUpdate) SetNillableSeverity(v *joblogentry.Severity) *JobLogEntryUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *JobLogEntryUpdate) SetMessage(v string) *JobLogEntryUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *JobLogEntryUpdate) SetNillableMessage(v *string) *JobLogEntryUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *JobLogEntryUpdate) SetSequence(v int) *JobLogEntryUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *JobLogEntryUpdate) SetNillableSequence(v *int) *JobLogEntryUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *JobLogEntryUpdate) AddSequence(v int) *JobLogEntryUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// Mutation returns the JobLogEntryMutation object of the builder.
func (_u *JobLogEntryUpdate) Mutation() *JobLogEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobLogEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobLogEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobLogEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobLogEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobLogEntryUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := joblogentry.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "JobLogEntry.severity": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobLogEntry.job"`)
	}
	return nil
}

func (_u *JobLogEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(joblogentry.Table, joblogentry.Columns, sqlgraph.NewFieldSpec(joblogentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(joblogentry.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(joblogentry.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(joblogentry.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(joblogentry.FieldSequence, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{joblogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobLogEntryUpdateOne is the builder for updating a single JobLogEntry entity.
type JobLogEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobLogEntryMutation
}

// SetSeverity sets the "severity" field.
func (_u *JobLogEntryUpdateOne) SetSeverity(v joblogentry.Severity) *JobLogEntryUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *JobLogEntryUpdateOne) SetNillableSeverity(v *joblogentry.Severity) *JobLogEntryUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *JobLogEntryUpdateOne) SetMessage(v string) *JobLogEntryUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *JobLogEntryUpdateOne) SetNillableMessage(v *string) *JobLogEntryUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *JobLogEntryUpdateOne) SetSequence(v int) *JobLogEntryUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *JobLogEntryUpdateOne) SetNillableSequence(v *int) *JobLogEntryUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *JobLogEntryUpdateOne) AddSequence(v int) *JobLogEntryUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// Mutation returns the JobLogEntryMutation object of the builder.
func (_u *JobLogEntryUpdateOne) Mutation() *JobLogEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobLogEntryUpdate builder.
func (_u *JobLogEntryUpdateOne) Where(ps ...predicate.JobLogEntry) *JobLogEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobLogEntryUpdateOne) Select(field string, fields ...string) *JobLogEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobLogEntry entity.
func (_u *JobLogEntryUpdateOne) Save(ctx context.Context) (*JobLogEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobLogEntryUpdateOne) SaveX(ctx context.Context) *JobLogEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobLogEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobLogEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobLogEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := joblogentry.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "JobLogEntry.severity": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobLogEntry.job"`)
	}
	return nil
}

func (_u *JobLogEntryUpdateOne) sqlSave(ctx context.Context) (_node *JobLogEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(joblogentry.Table, joblogentry.Columns, sqlgraph.NewFieldSpec(joblogentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobLogEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, joblogentry.FieldID)
		for _, f := range fields {
			if !joblogentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != joblogentry.FieldID {
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
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(joblogentry.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(joblogentry.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(joblogentry.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(joblogentry.FieldSequence, field.TypeInt, value)
	}
	_node = &JobLogEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{joblogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
