// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/ent/transcriptionsegment"
)

// TranscriptionSegmentCreate is the builder for creating a TranscriptionSegment entity.
type TranscriptionSegmentCreate struct {
	config
	mutation *TranscriptionSegmentMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *TranscriptionSegmentCreate) SetJobID(v string) *TranscriptionSegmentCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetChunkIndex sets the "chunk_index" field.
func (_c *TranscriptionSegmentCreate) SetChunkIndex(v int) *TranscriptionSegmentCreate {
	_c.mutation.SetChunkIndex(v)
	return _c
}

// SetText sets the "text" field.
func (_c *TranscriptionSegmentCreate) SetText(v string) *TranscriptionSegmentCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetStartSeconds sets the "start_seconds" field.
func (_c *TranscriptionSegmentCreate) SetStartSeconds(v float64) *TranscriptionSegmentCreate {
	_c.mutation.SetStartSeconds(v)
	return _c
}

// SetEndSeconds sets the "end_seconds" field.
func (_c *TranscriptionSegmentCreate) SetEndSeconds(v float64) *TranscriptionSegmentCreate {
	_c.mutation.SetEndSeconds(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *TranscriptionSegmentCreate) SetConfidence(v float64) *TranscriptionSegmentCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *TranscriptionSegmentCreate) SetNillableConfidence(v *float64) *TranscriptionSegmentCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetCapturedAt sets the "captured_at" field.
func (_c *TranscriptionSegmentCreate) SetCapturedAt(v time.Time) *TranscriptionSegmentCreate {
	_c.mutation.SetCapturedAt(v)
	return _c
}

// SetNillableCapturedAt sets the "captured_at" field if the given value is not nil.
func (_c *TranscriptionSegmentCreate) SetNillableCapturedAt(v *time.Time) *TranscriptionSegmentCreate {
	if v != nil {
		_c.SetCapturedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TranscriptionSegmentCreate) SetID(v string) *TranscriptionSegmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *TranscriptionSegmentCreate) SetJob(v *Job) *TranscriptionSegmentCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the TranscriptionSegmentMutation object of the builder.
func (_c *TranscriptionSegmentCreate) Mutation() *TranscriptionSegmentMutation {
	return _c.mutation
}

// Save creates the TranscriptionSegment in the database.
func (_c *TranscriptionSegmentCreate) Save(ctx context.Context) (*TranscriptionSegment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptionSegmentCreate) SaveX(ctx context.Context) *TranscriptionSegment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptionSegmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptionSegmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranscriptionSegmentCreate) defaults() {
	if _, ok := _c.mutation.CapturedAt(); !ok {
		v := transcriptionsegment.DefaultCapturedAt()
		_c.mutation.SetCapturedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptionSegmentCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "TranscriptionSegment.job_id"`)}
	}
	if _, ok := _c.mutation.ChunkIndex(); !ok {
		return &ValidationError{Name: "chunk_index", err: errors.New(`ent: missing required field "TranscriptionSegment.chunk_index"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "TranscriptionSegment.text"`)}
	}
	if _, ok := _c.mutation.StartSeconds(); !ok {
		return &ValidationError{Name: "start_seconds", err: errors.New(`ent: missing required field "TranscriptionSegment.start_seconds"`)}
	}
	if _, ok := _c.mutation.EndSeconds(); !ok {
		return &ValidationError{Name: "end_seconds", err: errors.New(`ent: missing required field "TranscriptionSegment.end_seconds"`)}
	}
	if _, ok := _c.mutation.CapturedAt(); !ok {
		return &ValidationError{Name: "captured_at", err: errors.New(`ent: missing required field "TranscriptionSegment.captured_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "TranscriptionSegment.job"`)}
	}
	return nil
}

func (_c *TranscriptionSegmentCreate) sqlSave(ctx context.Context) (*TranscriptionSegment, error) {
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
			return nil, fmt.Errorf("unexpected TranscriptionSegment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TranscriptionSegmentCreate) createSpec() (*TranscriptionSegment, *sqlgraph.CreateSpec) {
	var (
		_node = &TranscriptionSegment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcriptionsegment.Table, sqlgraph.NewFieldSpec(transcriptionsegment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ChunkIndex(); ok {
		_spec.SetField(transcriptionsegment.FieldChunkIndex, field.TypeInt, value)
		_node.ChunkIndex = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(transcriptionsegment.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.StartSeconds(); ok {
		_spec.SetField(transcriptionsegment.FieldStartSeconds, field.TypeFloat64, value)
		_node.StartSeconds = value
	}
	if value, ok := _c.mutation.EndSeconds(); ok {
		_spec.SetField(transcriptionsegment.FieldEndSeconds, field.TypeFloat64, value)
		_node.EndSeconds = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(transcriptionsegment.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.CapturedAt(); ok {
		_spec.SetField(transcriptionsegment.FieldCapturedAt, field.TypeTime, value)
		_node.CapturedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transcriptionsegment.JobTable,
			Columns: []string{transcriptionsegment.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TranscriptionSegmentCreateBulk is the builder for creating many TranscriptionSegment entities in bulk.
type TranscriptionSegmentCreateBulk struct {
	config
	err      error
	builders []*TranscriptionSegmentCreate
}

// Save creates the TranscriptionSegment entities in the database.
func (_c *TranscriptionSegmentCreateBulk) Save(ctx context.Context) ([]*TranscriptionSegment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TranscriptionSegment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptionSegmentMutation)
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
func (_c *TranscriptionSegmentCreateBulk) SaveX(ctx context.Context) []*TranscriptionSegment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptionSegmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptionSegmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
