// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/agent"
	"github.com/codeready-toolchain/warden/ent/channel"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/ent/joblogentry"
	"github.com/codeready-toolchain/warden/ent/transcriptionsegment"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *JobCreate) SetAgentID(v string) *JobCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetChannelID sets the "channel_id" field.
func (_c *JobCreate) SetChannelID(v string) *JobCreate {
	_c.mutation.SetChannelID(v)
	return _c
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableChannelID(v *string) *JobCreate {
	if v != nil {
		_c.SetChannelID(*v)
	}
	return _c
}

// SetCallerUserID sets the "caller_user_id" field.
func (_c *JobCreate) SetCallerUserID(v string) *JobCreate {
	_c.mutation.SetCallerUserID(v)
	return _c
}

// SetNillableCallerUserID sets the "caller_user_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableCallerUserID(v *string) *JobCreate {
	if v != nil {
		_c.SetCallerUserID(*v)
	}
	return _c
}

// SetCallerAgentID sets the "caller_agent_id" field.
func (_c *JobCreate) SetCallerAgentID(v string) *JobCreate {
	_c.mutation.SetCallerAgentID(v)
	return _c
}

// SetNillableCallerAgentID sets the "caller_agent_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableCallerAgentID(v *string) *JobCreate {
	if v != nil {
		_c.SetCallerAgentID(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *JobCreate) SetAction(v job.Action) *JobCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetResourceID sets the "resource_id" field.
func (_c *JobCreate) SetResourceID(v string) *JobCreate {
	_c.mutation.SetResourceID(v)
	return _c
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableResourceID(v *string) *JobCreate {
	if v != nil {
		_c.SetResourceID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v job.Status) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *job.Status) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEffectiveClearance sets the "effective_clearance" field.
func (_c *JobCreate) SetEffectiveClearance(v job.EffectiveClearance) *JobCreate {
	_c.mutation.SetEffectiveClearance(v)
	return _c
}

// SetNillableEffectiveClearance sets the "effective_clearance" field if the given value is not nil.
func (_c *JobCreate) SetNillableEffectiveClearance(v *job.EffectiveClearance) *JobCreate {
	if v != nil {
		_c.SetEffectiveClearance(*v)
	}
	return _c
}

// SetApprovedByUserID sets the "approved_by_user_id" field.
func (_c *JobCreate) SetApprovedByUserID(v string) *JobCreate {
	_c.mutation.SetApprovedByUserID(v)
	return _c
}

// SetNillableApprovedByUserID sets the "approved_by_user_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableApprovedByUserID(v *string) *JobCreate {
	if v != nil {
		_c.SetApprovedByUserID(*v)
	}
	return _c
}

// SetApprovedByAgentID sets the "approved_by_agent_id" field.
func (_c *JobCreate) SetApprovedByAgentID(v string) *JobCreate {
	_c.mutation.SetApprovedByAgentID(v)
	return _c
}

// SetNillableApprovedByAgentID sets the "approved_by_agent_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableApprovedByAgentID(v *string) *JobCreate {
	if v != nil {
		_c.SetApprovedByAgentID(*v)
	}
	return _c
}

// SetResultData sets the "result_data" field.
func (_c *JobCreate) SetResultData(v string) *JobCreate {
	_c.mutation.SetResultData(v)
	return _c
}

// SetNillableResultData sets the "result_data" field if the given value is not nil.
func (_c *JobCreate) SetNillableResultData(v *string) *JobCreate {
	if v != nil {
		_c.SetResultData(*v)
	}
	return _c
}

// SetErrorLog sets the "error_log" field.
func (_c *JobCreate) SetErrorLog(v string) *JobCreate {
	_c.mutation.SetErrorLog(v)
	return _c
}

// SetNillableErrorLog sets the "error_log" field if the given value is not nil.
func (_c *JobCreate) SetNillableErrorLog(v *string) *JobCreate {
	if v != nil {
		_c.SetErrorLog(*v)
	}
	return _c
}

// SetShellKind sets the "shell_kind" field.
func (_c *JobCreate) SetShellKind(v job.ShellKind) *JobCreate {
	_c.mutation.SetShellKind(v)
	return _c
}

// SetNillableShellKind sets the "shell_kind" field if the given value is not nil.
func (_c *JobCreate) SetNillableShellKind(v *job.ShellKind) *JobCreate {
	if v != nil {
		_c.SetShellKind(*v)
	}
	return _c
}

// SetScript sets the "script" field.
func (_c *JobCreate) SetScript(v string) *JobCreate {
	_c.mutation.SetScript(v)
	return _c
}

// SetNillableScript sets the "script" field if the given value is not nil.
func (_c *JobCreate) SetNillableScript(v *string) *JobCreate {
	if v != nil {
		_c.SetScript(*v)
	}
	return _c
}

// SetWorkingDirectory sets the "working_directory" field.
func (_c *JobCreate) SetWorkingDirectory(v string) *JobCreate {
	_c.mutation.SetWorkingDirectory(v)
	return _c
}

// SetNillableWorkingDirectory sets the "working_directory" field if the given value is not nil.
func (_c *JobCreate) SetNillableWorkingDirectory(v *string) *JobCreate {
	if v != nil {
		_c.SetWorkingDirectory(*v)
	}
	return _c
}

// SetTranscriptionModelID sets the "transcription_model_id" field.
func (_c *JobCreate) SetTranscriptionModelID(v string) *JobCreate {
	_c.mutation.SetTranscriptionModelID(v)
	return _c
}

// SetNillableTranscriptionModelID sets the "transcription_model_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableTranscriptionModelID(v *string) *JobCreate {
	if v != nil {
		_c.SetTranscriptionModelID(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *JobCreate) SetLanguage(v string) *JobCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *JobCreate) SetNillableLanguage(v *string) *JobCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *JobCreate) SetPayload(v map[string]interface{}) *JobCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *JobCreate) SetStartedAt(v time.Time) *JobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableStartedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *JobCreate) SetCompletedAt(v time.Time) *JobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCompletedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *JobCreate) SetAgent(v *Agent) *JobCreate {
	return _c.SetAgentID(v.ID)
}

// SetChannel sets the "channel" edge to the Channel entity.
func (_c *JobCreate) SetChannel(v *Channel) *JobCreate {
	return _c.SetChannelID(v.ID)
}

// AddLogEntryIDs adds the "log_entries" edge to the JobLogEntry entity by IDs.
func (_c *JobCreate) AddLogEntryIDs(ids ...string) *JobCreate {
	_c.mutation.AddLogEntryIDs(ids...)
	return _c
}

// AddLogEntries adds the "log_entries" edges to the JobLogEntry entity.
func (_c *JobCreate) AddLogEntries(v ...*JobLogEntry) *JobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogEntryIDs(ids...)
}

// AddSegmentIDs adds the "segments" edge to the TranscriptionSegment entity by IDs.
func (_c *JobCreate) AddSegmentIDs(ids ...string) *JobCreate {
	_c.mutation.AddSegmentIDs(ids...)
	return _c
}

// AddSegments adds the "segments" edges to the TranscriptionSegment entity.
func (_c *JobCreate) AddSegments(v ...*TranscriptionSegment) *JobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSegmentIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Job.agent_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "Job.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := job.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "Job.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EffectiveClearance(); ok {
		if err := job.EffectiveClearanceValidator(v); err != nil {
			return &ValidationError{Name: "effective_clearance", err: fmt.Errorf(`ent: validator failed for field "Job.effective_clearance": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ShellKind(); ok {
		if err := job.ShellKindValidator(v); err != nil {
			return &ValidationError{Name: "shell_kind", err: fmt.Errorf(`ent: validator failed for field "Job.shell_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "Job.agent"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
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
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CallerUserID(); ok {
		_spec.SetField(job.FieldCallerUserID, field.TypeString, value)
		_node.CallerUserID = &value
	}
	if value, ok := _c.mutation.CallerAgentID(); ok {
		_spec.SetField(job.FieldCallerAgentID, field.TypeString, value)
		_node.CallerAgentID = &value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(job.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.ResourceID(); ok {
		_spec.SetField(job.FieldResourceID, field.TypeString, value)
		_node.ResourceID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EffectiveClearance(); ok {
		_spec.SetField(job.FieldEffectiveClearance, field.TypeEnum, value)
		_node.EffectiveClearance = value
	}
	if value, ok := _c.mutation.ApprovedByUserID(); ok {
		_spec.SetField(job.FieldApprovedByUserID, field.TypeString, value)
		_node.ApprovedByUserID = &value
	}
	if value, ok := _c.mutation.ApprovedByAgentID(); ok {
		_spec.SetField(job.FieldApprovedByAgentID, field.TypeString, value)
		_node.ApprovedByAgentID = &value
	}
	if value, ok := _c.mutation.ResultData(); ok {
		_spec.SetField(job.FieldResultData, field.TypeString, value)
		_node.ResultData = &value
	}
	if value, ok := _c.mutation.ErrorLog(); ok {
		_spec.SetField(job.FieldErrorLog, field.TypeString, value)
		_node.ErrorLog = &value
	}
	if value, ok := _c.mutation.ShellKind(); ok {
		_spec.SetField(job.FieldShellKind, field.TypeEnum, value)
		_node.ShellKind = value
	}
	if value, ok := _c.mutation.Script(); ok {
		_spec.SetField(job.FieldScript, field.TypeString, value)
		_node.Script = &value
	}
	if value, ok := _c.mutation.WorkingDirectory(); ok {
		_spec.SetField(job.FieldWorkingDirectory, field.TypeString, value)
		_node.WorkingDirectory = &value
	}
	if value, ok := _c.mutation.TranscriptionModelID(); ok {
		_spec.SetField(job.FieldTranscriptionModelID, field.TypeString, value)
		_node.TranscriptionModelID = &value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(job.FieldLanguage, field.TypeString, value)
		_node.Language = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(job.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   job.AgentTable,
			Columns: []string{job.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChannelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   job.ChannelTable,
			Columns: []string{job.ChannelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChannelID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LogEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.LogEntriesTable,
			Columns: []string{job.LogEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(joblogentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SegmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.SegmentsTable,
			Columns: []string{job.SegmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcriptionsegment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
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
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
