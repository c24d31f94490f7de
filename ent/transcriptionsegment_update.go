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
	"github.com/codeready-toolchain/warden/ent/transcriptionsegment"
)

// TranscriptionSegmentUpdate is the builder for updating TranscriptionSegment entities.
type TranscriptionSegmentUpdate struct {
	config
	hooks    []Hook
	mutation *TranscriptionSegmentMutation
}

// Where appends a list predicates to the TranscriptionSegmentUpdate builder.
func (_u *TranscriptionSegmentUpdate) Where(ps ...predicate.TranscriptionSegment) *TranscriptionSegmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the TranscriptionSegmentMutation object of the builder.
func (_u *TranscriptionSegmentUpdate) Mutation() *TranscriptionSegmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptionSegmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptionSegmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptionSegmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptionSegmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptionSegmentUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TranscriptionSegment.job"`)
	}
	return nil
}

func (_u *TranscriptionSegmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptionsegment.Table, transcriptionsegment.Columns, sqlgraph.NewFieldSpec(transcriptionsegment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(transcriptionsegment.FieldConfidence, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptionsegment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptionSegmentUpdateOne is the builder for updating a single TranscriptionSegment entity.
type TranscriptionSegmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranscriptionSegmentMutation
}

// Mutation returns the TranscriptionSegmentMutation object of the builder.
func (_u *TranscriptionSegmentUpdateOne) Mutation() *TranscriptionSegmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the TranscriptionSegmentUpdate builder.
func (_u *TranscriptionSegmentUpdateOne) Where(ps ...predicate.TranscriptionSegment) *TranscriptionSegmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptionSegmentUpdateOne) Select(field string, fields ...string) *TranscriptionSegmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TranscriptionSegment entity.
func (_u *TranscriptionSegmentUpdateOne) Save(ctx context.Context) (*TranscriptionSegment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptionSegmentUpdateOne) SaveX(ctx context.Context) *TranscriptionSegment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptionSegmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptionSegmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptionSegmentUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TranscriptionSegment.job"`)
	}
	return nil
}

func (_u *TranscriptionSegmentUpdateOne) sqlSave(ctx context.Context) (_node *TranscriptionSegment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptionsegment.Table, transcriptionsegment.Columns, sqlgraph.NewFieldSpec(transcriptionsegment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TranscriptionSegment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcriptionsegment.FieldID)
		for _, f := range fields {
			if !transcriptionsegment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcriptionsegment.FieldID {
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
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(transcriptionsegment.FieldConfidence, field.TypeFloat64)
	}
	_node = &TranscriptionSegment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptionsegment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
