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
	"github.com/codeready-toolchain/warden/ent/joblogentry"
)

// JobLogEntryCreate is the builder for creating a JobLogEntry entity.
type JobLogEntryCreate struct {
	config
	mutation *JobLogEntryMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *JobLogEntryCreate) SetJobID(v string) *JobLogEntryCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *JobLogEntryCreate) SetSeverity(v joblogentry.Severity) *JobLogEntryCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *JobLogEntryCreate) SetNillableSeverity(v *joblogentry.Severity) *JobLogEntryCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *JobLogEntryCreate) SetMessage(v string) *JobLogEntryCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *JobLogEntryCreate) SetSequence(v int) *JobLogEntryCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobLogEntryCreate) SetCreatedAt(v time.Time) *JobLogEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobLogEntryCreate) SetNillableCreatedAt(v *time.Time) *JobLogEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobLogEntryCreate) SetID(v string) *JobLogEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *JobLogEntryCreate) SetJob(v *Job) *JobLogEntryCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the JobLogEntryMutation object of the builder.
func (_c *JobLogEntryCreate) Mutation() *JobLogEntryMutation {
	return _c.mutation
}

// Save creates the JobLogEntry in the database.
func (_c *JobLogEntryCreate) Save(ctx context.Context) (*JobLogEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobLogEntryCreate) SaveX(ctx context.Context) *JobLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobLogEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobLogEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobLogEntryCreate) defaults() {
	if _, ok := _c.mutation.Severity(); !ok {
		v := joblogentry.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := joblogentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobLogEntryCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobLogEntry.job_id"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "JobLogEntry.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := joblogentry.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "JobLogEntry.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "JobLogEntry.message"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "JobLogEntry.sequence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JobLogEntry.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobLogEntry.job"`)}
	}
	return nil
}

func (_c *JobLogEntryCreate) sqlSave(ctx context.Context) (*JobLogEntry, error) {
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
			return nil, fmt.Errorf("unexpected JobLogEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobLogEntryCreate) createSpec() (*JobLogEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &JobLogEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(joblogentry.Table, sqlgraph.NewFieldSpec(joblogentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(joblogentry.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(joblogentry.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(joblogentry.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(joblogentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   joblogentry.JobTable,
			Columns: []string{joblogentry.JobColumn},
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

// JobLogEntryCreateBulk is the builder for creating many JobLogEntry entities in bulk.
type JobLogEntryCreateBulk struct {
	config
	err      error
	builders []*JobLogEntryCreate
}

// Save creates the JobLogEntry entities in the database.
func (_c *JobLogEntryCreateBulk) Save(ctx context.Context) ([]*JobLogEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobLogEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobLogEntryMutation)
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
func (_c *JobLogEntryCreateBulk) SaveX(ctx context.Context) []*JobLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobLogEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobLogEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
