// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/predicate"
	"github.com/codeready-toolchain/warden/ent/transcriptionsegment"
)

// TranscriptionSegmentDelete is the builder for deleting a TranscriptionSegment entity.
type TranscriptionSegmentDelete struct {
	config
	hooks    []Hook
	mutation *TranscriptionSegmentMutation
}

// Where appends a list predicates to the TranscriptionSegmentDelete builder.
func (_d *TranscriptionSegmentDelete) Where(ps ...predicate.TranscriptionSegment) *TranscriptionSegmentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TranscriptionSegmentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TranscriptionSegmentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TranscriptionSegmentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(transcriptionsegment.Table, sqlgraph.NewFieldSpec(transcriptionsegment.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// TranscriptionSegmentDeleteOne is the builder for deleting a single TranscriptionSegment entity.
type TranscriptionSegmentDeleteOne struct {
	_d *TranscriptionSegmentDelete
}

// Where appends a list predicates to the TranscriptionSegmentDelete builder.
func (_d *TranscriptionSegmentDeleteOne) Where(ps ...predicate.TranscriptionSegment) *TranscriptionSegmentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TranscriptionSegmentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{transcriptionsegment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TranscriptionSegmentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
