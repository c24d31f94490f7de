// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/ent/joblogentry"
	"github.com/codeready-toolchain/warden/ent/predicate"
	"github.com/codeready-toolchain/warden/ent/transcriptionsegment"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResourceID sets the "resource_id" field.
func (_u *JobUpdate) SetResourceID(v string) *JobUpdate {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableResourceID(v *string) *JobUpdate {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// ClearResourceID clears the value of the "resource_id" field.
func (_u *JobUpdate) ClearResourceID() *JobUpdate {
	_u.mutation.ClearResourceID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v job.Status) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *job.Status) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEffectiveClearance sets the "effective_clearance" field.
func (_u *JobUpdate) SetEffectiveClearance(v job.EffectiveClearance) *JobUpdate {
	_u.mutation.SetEffectiveClearance(v)
	return _u
}

// SetNillableEffectiveClearance sets the "effective_clearance" field if the given value is not nil.
func (_u *JobUpdate) SetNillableEffectiveClearance(v *job.EffectiveClearance) *JobUpdate {
	if v != nil {
		_u.SetEffectiveClearance(*v)
	}
	return _u
}

// ClearEffectiveClearance clears the value of the "effective_clearance" field.
func (_u *JobUpdate) ClearEffectiveClearance() *JobUpdate {
	_u.mutation.ClearEffectiveClearance()
	return _u
}

// SetApprovedByUserID sets the "approved_by_user_id" field.
func (_u *JobUpdate) SetApprovedByUserID(v string) *JobUpdate {
	_u.mutation.SetApprovedByUserID(v)
	return _u
}

// SetNillableApprovedByUserID sets the "approved_by_user_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableApprovedByUserID(v *string) *JobUpdate {
	if v != nil {
		_u.SetApprovedByUserID(*v)
	}
	return _u
}

// ClearApprovedByUserID clears the value of the "approved_by_user_id" field.
func (_u *JobUpdate) ClearApprovedByUserID() *JobUpdate {
	_u.mutation.ClearApprovedByUserID()
	return _u
}

// SetApprovedByAgentID sets the "approved_by_agent_id" field.
func (_u *JobUpdate) SetApprovedByAgentID(v string) *JobUpdate {
	_u.mutation.SetApprovedByAgentID(v)
	return _u
}

// SetNillableApprovedByAgentID sets the "approved_by_agent_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableApprovedByAgentID(v *string) *JobUpdate {
	if v != nil {
		_u.SetApprovedByAgentID(*v)
	}
	return _u
}

// ClearApprovedByAgentID clears the value of the "approved_by_agent_id" field.
func (_u *JobUpdate) ClearApprovedByAgentID() *JobUpdate {
	_u.mutation.ClearApprovedByAgentID()
	return _u
}

// SetResultData sets the "result_data" field.
func (_u *JobUpdate) SetResultData(v string) *JobUpdate {
	_u.mutation.SetResultData(v)
	return _u
}

// SetNillableResultData sets the "result_data" field if the given value is not nil.
func (_u *JobUpdate) SetNillableResultData(v *string) *JobUpdate {
	if v != nil {
		_u.SetResultData(*v)
	}
	return _u
}

// ClearResultData clears the value of the "result_data" field.
func (_u *JobUpdate) ClearResultData() *JobUpdate {
	_u.mutation.ClearResultData()
	return _u
}

// SetErrorLog sets the "error_log" field.
func (_u *JobUpdate) SetErrorLog(v string) *JobUpdate {
	_u.mutation.SetErrorLog(v)
	return _u
}

// SetNillableErrorLog sets the "error_log" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorLog(v *string) *JobUpdate {
	if v != nil {
		_u.SetErrorLog(*v)
	}
	return _u
}

// ClearErrorLog clears the value of the "error_log" field.
func (_u *JobUpdate) ClearErrorLog() *JobUpdate {
	_u.mutation.ClearErrorLog()
	return _u
}

// SetShellKind sets the "shell_kind" field.
func (_u *JobUpdate) SetShellKind(v job.ShellKind) *JobUpdate {
	_u.mutation.SetShellKind(v)
	return _u
}

// SetNillableShellKind sets the "shell_kind" field if the given value is not nil.
func (_u *JobUpdate) SetNillableShellKind(v *job.ShellKind) *JobUpdate {
	if v != nil {
		_u.SetShellKind(*v)
	}
	return _u
}

// ClearShellKind clears the value of the "shell_kind" field.
func (_u *JobUpdate) ClearShellKind() *JobUpdate {
	_u.mutation.ClearShellKind()
	return _u
}

// SetScript sets the "script" field.
func (_u *JobUpdate) SetScript(v string) *JobUpdate {
	_u.mutation.SetScript(v)
	return _u
}

// SetNillableScript sets the "script" field if the given value is not nil.
func (_u *JobUpdate) SetNillableScript(v *string) *JobUpdate {
	if v != nil {
		_u.SetScript(*v)
	}
	return _u
}

// ClearScript clears the value of the "script" field.
func (_u *JobUpdate) ClearScript() *JobUpdate {
	_u.mutation.ClearScript()
	return _u
}

// SetWorkingDirectory sets the "working_directory" field.
func (_u *JobUpdate) SetWorkingDirectory(v string) *JobUpdate {
	_u.mutation.SetWorkingDirectory(v)
	return _u
}

// SetNillableWorkingDirectory sets the "working_directory" field if the given value is not nil.
func (_u *JobUpdate) SetNillableWorkingDirectory(v *string) *JobUpdate {
	if v != nil {
		_u.SetWorkingDirectory(*v)
	}
	return _u
}

// ClearWorkingDirectory clears the value of the "working_directory" field.
func (_u *JobUpdate) ClearWorkingDirectory() *JobUpdate {
	_u.mutation.ClearWorkingDirectory()
	return _u
}

// SetTranscriptionModelID sets the "transcription_model_id" field.
func (_u *JobUpdate) SetTranscriptionModelID(v string) *JobUpdate {
	_u.mutation.SetTranscriptionModelID(v)
	return _u
}

// SetNillableTranscriptionModelID sets the "transcription_model_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTranscriptionModelID(v *string) *JobUpdate {
	if v != nil {
		_u.SetTranscriptionModelID(*v)
	}
	return _u
}

// ClearTranscriptionModelID clears the value of the "transcription_model_id" field.
func (_u *JobUpdate) ClearTranscriptionModelID() *JobUpdate {
	_u.mutation.ClearTranscriptionModelID()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *JobUpdate) SetLanguage(v string) *JobUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLanguage(v *string) *JobUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *JobUpdate) ClearLanguage() *JobUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *JobUpdate) SetPayload(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *JobUpdate) ClearPayload() *JobUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdate) SetStartedAt(v time.Time) *JobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStartedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdate) ClearStartedAt() *JobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdate) SetCompletedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompletedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdate) ClearCompletedAt() *JobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddLogEntryIDs adds the "log_entries" edge to the JobLogEntry entity by IDs.
func (_u *JobUpdate) AddLogEntryIDs(ids ...string) *JobUpdate {
	_u.mutation.AddLogEntryIDs(ids...)
	return _u
}

// AddLogEntries adds the "log_entries" edges to the JobLogEntry entity.
func (_u *JobUpdate) AddLogEntries(v ...*JobLogEntry) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogEntryIDs(ids...)
}

// AddSegmentIDs adds the "segments" edge to the TranscriptionSegment entity by IDs.
func (_u *JobUpdate) AddSegmentIDs(ids ...string) *JobUpdate {
	_u.mutation.AddSegmentIDs(ids...)
	return _u
}

// AddSegments adds the "segments" edges to the TranscriptionSegment entity.
func (_u *JobUpdate) AddSegments(v ...*TranscriptionSegment) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSegmentIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearLogEntries clears all "log_entries" edges to the JobLogEntry entity.
func (_u *JobUpdate) ClearLogEntries() *JobUpdate {
	_u.mutation.ClearLogEntries()
	return _u
}

// RemoveLogEntryIDs removes the "log_entries" edge to JobLogEntry entities by IDs.
func (_u *JobUpdate) RemoveLogEntryIDs(ids ...string) *JobUpdate {
	_u.mutation.RemoveLogEntryIDs(ids...)
	return _u
}

// RemoveLogEntries removes "log_entries" edges to JobLogEntry entities.
func (_u *JobUpdate) RemoveLogEntries(v ...*JobLogEntry) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogEntryIDs(ids...)
}

// ClearSegments clears all "segments" edges to the TranscriptionSegment entity.
func (_u *JobUpdate) ClearSegments() *JobUpdate {
	_u.mutation.ClearSegments()
	return _u
}

// RemoveSegmentIDs removes the "segments" edge to TranscriptionSegment entities by IDs.
func (_u *JobUpdate) RemoveSegmentIDs(ids ...string) *JobUpdate {
	_u.mutation.RemoveSegmentIDs(ids...)
	return _u
}

// RemoveSegments removes "segments" edges to TranscriptionSegment entities.
func (_u *JobUpdate) RemoveSegments(v ...*TranscriptionSegment) *JobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSegmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EffectiveClearance(); ok {
		if err := job.EffectiveClearanceValidator(v); err != nil {
			return &ValidationError{Name: "effective_clearance", err: fmt.Errorf(`ent: validator failed for field "Job.effective_clearance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ShellKind(); ok {
		if err := job.ShellKindValidator(v); err != nil {
			return &ValidationError{Name: "shell_kind", err: fmt.Errorf(`ent: validator failed for field "Job.shell_kind": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.agent"`)
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.CallerUserIDCleared() {
		_spec.ClearField(job.FieldCallerUserID, field.TypeString)
	}
	if _u.mutation.CallerAgentIDCleared() {
		_spec.ClearField(job.FieldCallerAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ResourceID(); ok {
		_spec.SetField(job.FieldResourceID, field.TypeString, value)
	}
	if _u.mutation.ResourceIDCleared() {
		_spec.ClearField(job.FieldResourceID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EffectiveClearance(); ok {
		_spec.SetField(job.FieldEffectiveClearance, field.TypeEnum, value)
	}
	if _u.mutation.EffectiveClearanceCleared() {
		_spec.ClearField(job.FieldEffectiveClearance, field.TypeEnum)
	}
	if value, ok := _u.mutation.ApprovedByUserID(); ok {
		_spec.SetField(job.FieldApprovedByUserID, field.TypeString, value)
	}
	if _u.mutation.ApprovedByUserIDCleared() {
		_spec.ClearField(job.FieldApprovedByUserID, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedByAgentID(); ok {
		_spec.SetField(job.FieldApprovedByAgentID, field.TypeString, value)
	}
	if _u.mutation.ApprovedByAgentIDCleared() {
		_spec.ClearField(job.FieldApprovedByAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ResultData(); ok {
		_spec.SetField(job.FieldResultData, field.TypeString, value)
	}
	if _u.mutation.ResultDataCleared() {
		_spec.ClearField(job.FieldResultData, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorLog(); ok {
		_spec.SetField(job.FieldErrorLog, field.TypeString, value)
	}
	if _u.mutation.ErrorLogCleared() {
		_spec.ClearField(job.FieldErrorLog, field.TypeString)
	}
	if value, ok := _u.mutation.ShellKind(); ok {
		_spec.SetField(job.FieldShellKind, field.TypeEnum, value)
	}
	if _u.mutation.ShellKindCleared() {
		_spec.ClearField(job.FieldShellKind, field.TypeEnum)
	}
	if value, ok := _u.mutation.Script(); ok {
		_spec.SetField(job.FieldScript, field.TypeString, value)
	}
	if _u.mutation.ScriptCleared() {
		_spec.ClearField(job.FieldScript, field.TypeString)
	}
	if value, ok := _u.mutation.WorkingDirectory(); ok {
		_spec.SetField(job.FieldWorkingDirectory, field.TypeString, value)
	}
	if _u.mutation.WorkingDirectoryCleared() {
		_spec.ClearField(job.FieldWorkingDirectory, field.TypeString)
	}
	if value, ok := _u.mutation.TranscriptionModelID(); ok {
		_spec.SetField(job.FieldTranscriptionModelID, field.TypeString, value)
	}
	if _u.mutation.TranscriptionModelIDCleared() {
		_spec.ClearField(job.FieldTranscriptionModelID, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(job.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(job.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(job.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(job.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.LogEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogEntriesIDs(); len(nodes) > 0 && !_u.mutation.LogEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SegmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetResourceID sets the "resource_id" field.
func (_u *JobUpdateOne) SetResourceID(v string) *JobUpdateOne {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableResourceID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// ClearResourceID clears the value of the "resource_id" field.
func (_u *JobUpdateOne) ClearResourceID() *JobUpdateOne {
	_u.mutation.ClearResourceID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v job.Status) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *job.Status) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEffectiveClearance sets the "effective_clearance" field.
func (_u *JobUpdateOne) SetEffectiveClearance(v job.EffectiveClearance) *JobUpdateOne {
	_u.mutation.SetEffectiveClearance(v)
	return _u
}

// SetNillableEffectiveClearance sets the "effective_clearance" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableEffectiveClearance(v *job.EffectiveClearance) *JobUpdateOne {
	if v != nil {
		_u.SetEffectiveClearance(*v)
	}
	return _u
}

// ClearEffectiveClearance clears the value of the "effective_clearance" field.
func (_u *JobUpdateOne) ClearEffectiveClearance() *JobUpdateOne {
	_u.mutation.ClearEffectiveClearance()
	return _u
}

// SetApprovedByUserID sets the "approved_by_user_id" field.
func (_u *JobUpdateOne) SetApprovedByUserID(v string) *JobUpdateOne {
	_u.mutation.SetApprovedByUserID(v)
	return _u
}

// SetNillableApprovedByUserID sets the "approved_by_user_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableApprovedByUserID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetApprovedByUserID(*v)
	}
	return _u
}

// ClearApprovedByUserID clears the value of the "approved_by_user_id" field.
func (_u *JobUpdateOne) ClearApprovedByUserID() *JobUpdateOne {
	_u.mutation.ClearApprovedByUserID()
	return _u
}

// SetApprovedByAgentID sets the "approved_by_agent_id" field.
func (_u *JobUpdateOne) SetApprovedByAgentID(v string) *JobUpdateOne {
	_u.mutation.SetApprovedByAgentID(v)
	return _u
}

// SetNillableApprovedByAgentID sets the "approved_by_agent_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableApprovedByAgentID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetApprovedByAgentID(*v)
	}
	return _u
}

// ClearApprovedByAgentID clears the value of the "approved_by_agent_id" field.
func (_u *JobUpdateOne) ClearApprovedByAgentID() *JobUpdateOne {
	_u.mutation.ClearApprovedByAgentID()
	return _u
}

// SetResultData sets the "result_data" field.
func (_u *JobUpdateOne) SetResultData(v string) *JobUpdateOne {
	_u.mutation.SetResultData(v)
	return _u
}

// SetNillableResultData sets the "result_data" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableResultData(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetResultData(*v)
	}
	return _u
}

// ClearResultData clears the value of the "result_data" field.
func (_u *JobUpdateOne) ClearResultData() *JobUpdateOne {
	_u.mutation.ClearResultData()
	return _u
}

// SetErrorLog sets the "error_log" field.
func (_u *JobUpdateOne) SetErrorLog(v string) *JobUpdateOne {
	_u.mutation.SetErrorLog(v)
	return _u
}

// SetNillableErrorLog sets the "error_log" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorLog(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetErrorLog(*v)
	}
	return _u
}

// ClearErrorLog clears the value of the "error_log" field.
func (_u *JobUpdateOne) ClearErrorLog() *JobUpdateOne {
	_u.mutation.ClearErrorLog()
	return _u
}

// SetShellKind sets the "shell_kind" field.
func (_u *JobUpdateOne) SetShellKind(v job.ShellKind) *JobUpdateOne {
	_u.mutation.SetShellKind(v)
	return _u
}

// SetNillableShellKind sets the "shell_kind" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableShellKind(v *job.ShellKind) *JobUpdateOne {
	if v != nil {
		_u.SetShellKind(*v)
	}
	return _u
}

// ClearShellKind clears the value of the "shell_kind" field.
func (_u *JobUpdateOne) ClearShellKind() *JobUpdateOne {
	_u.mutation.ClearShellKind()
	return _u
}

// SetScript sets the "script" field.
func (_u *JobUpdateOne) SetScript(v string) *JobUpdateOne {
	_u.mutation.SetScript(v)
	return _u
}

// SetNillableScript sets the "script" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableScript(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetScript(*v)
	}
	return _u
}

// ClearScript clears the value of the "script" field.
func (_u *JobUpdateOne) ClearScript() *JobUpdateOne {
	_u.mutation.ClearScript()
	return _u
}

// SetWorkingDirectory sets the "working_directory" field.
func (_u *JobUpdateOne) SetWorkingDirectory(v string) *JobUpdateOne {
	_u.mutation.SetWorkingDirectory(v)
	return _u
}

// SetNillableWorkingDirectory sets the "working_directory" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableWorkingDirectory(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetWorkingDirectory(*v)
	}
	return _u
}

// ClearWorkingDirectory clears the value of the "working_directory" field.
func (_u *JobUpdateOne) ClearWorkingDirectory() *JobUpdateOne {
	_u.mutation.ClearWorkingDirectory()
	return _u
}

// SetTranscriptionModelID sets the "transcription_model_id" field.
func (_u *JobUpdateOne) SetTranscriptionModelID(v string) *JobUpdateOne {
	_u.mutation.SetTranscriptionModelID(v)
	return _u
}

// SetNillableTranscriptionModelID sets the "transcription_model_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTranscriptionModelID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetTranscriptionModelID(*v)
	}
	return _u
}

// ClearTranscriptionModelID clears the value of the "transcription_model_id" field.
func (_u *JobUpdateOne) ClearTranscriptionModelID() *JobUpdateOne {
	_u.mutation.ClearTranscriptionModelID()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *JobUpdateOne) SetLanguage(v string) *JobUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLanguage(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *JobUpdateOne) ClearLanguage() *JobUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *JobUpdateOne) SetPayload(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *JobUpdateOne) ClearPayload() *JobUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdateOne) SetStartedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStartedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdateOne) ClearStartedAt() *JobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdateOne) SetCompletedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompletedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdateOne) ClearCompletedAt() *JobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddLogEntryIDs adds the "log_entries" edge to the JobLogEntry entity by IDs.
func (_u *JobUpdateOne) AddLogEntryIDs(ids ...string) *JobUpdateOne {
	_u.mutation.AddLogEntryIDs(ids...)
	return _u
}

// AddLogEntries adds the "log_entries" edges to the JobLogEntry entity.
func (_u *JobUpdateOne) AddLogEntries(v ...*JobLogEntry) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogEntryIDs(ids...)
}

// AddSegmentIDs adds the "segments" edge to the TranscriptionSegment entity by IDs.
func (_u *JobUpdateOne) AddSegmentIDs(ids ...string) *JobUpdateOne {
	_u.mutation.AddSegmentIDs(ids...)
	return _u
}

// AddSegments adds the "segments" edges to the TranscriptionSegment entity.
func (_u *JobUpdateOne) AddSegments(v ...*TranscriptionSegment) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSegmentIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearLogEntries clears all "log_entries" edges to the JobLogEntry entity.
func (_u *JobUpdateOne) ClearLogEntries() *JobUpdateOne {
	_u.mutation.ClearLogEntries()
	return _u
}

// RemoveLogEntryIDs removes the "log_entries" edge to JobLogEntry entities by IDs.
func (_u *JobUpdateOne) RemoveLogEntryIDs(ids ...string) *JobUpdateOne {
	_u.mutation.RemoveLogEntryIDs(ids...)
	return _u
}

// RemoveLogEntries removes "log_entries" edges to JobLogEntry entities.
func (_u *JobUpdateOne) RemoveLogEntries(v ...*JobLogEntry) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogEntryIDs(ids...)
}

// ClearSegments clears all "segments" edges to the TranscriptionSegment entity.
func (_u *JobUpdateOne) ClearSegments() *JobUpdateOne {
	_u.mutation.ClearSegments()
	return _u
}

// RemoveSegmentIDs removes the "segments" edge to TranscriptionSegment entities by IDs.
func (_u *JobUpdateOne) RemoveSegmentIDs(ids ...string) *JobUpdateOne {
	_u.mutation.RemoveSegmentIDs(ids...)
	return _u
}

// RemoveSegments removes "segments" edges to TranscriptionSegment entities.
func (_u *JobUpdateOne) RemoveSegments(v ...*TranscriptionSegment) *JobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSegmentIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EffectiveClearance(); ok {
		if err := job.EffectiveClearanceValidator(v); err != nil {
			return &ValidationError{Name: "effective_clearance", err: fmt.Errorf(`ent: validator failed for field "Job.effective_clearance": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ShellKind(); ok {
		if err := job.ShellKindValidator(v); err != nil {
			return &ValidationError{Name: "shell_kind", err: fmt.Errorf(`ent: validator failed for field "Job.shell_kind": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.agent"`)
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
	if _u.mutation.CallerUserIDCleared() {
		_spec.ClearField(job.FieldCallerUserID, field.TypeString)
	}
	if _u.mutation.CallerAgentIDCleared() {
		_spec.ClearField(job.FieldCallerAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ResourceID(); ok {
		_spec.SetField(job.FieldResourceID, field.TypeString, value)
	}
	if _u.mutation.ResourceIDCleared() {
		_spec.ClearField(job.FieldResourceID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EffectiveClearance(); ok {
		_spec.SetField(job.FieldEffectiveClearance, field.TypeEnum, value)
	}
	if _u.mutation.EffectiveClearanceCleared() {
		_spec.ClearField(job.FieldEffectiveClearance, field.TypeEnum)
	}
	if value, ok := _u.mutation.ApprovedByUserID(); ok {
		_spec.SetField(job.FieldApprovedByUserID, field.TypeString, value)
	}
	if _u.mutation.ApprovedByUserIDCleared() {
		_spec.ClearField(job.FieldApprovedByUserID, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedByAgentID(); ok {
		_spec.SetField(job.FieldApprovedByAgentID, field.TypeString, value)
	}
	if _u.mutation.ApprovedByAgentIDCleared() {
		_spec.ClearField(job.FieldApprovedByAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ResultData(); ok {
		_spec.SetField(job.FieldResultData, field.TypeString, value)
	}
	if _u.mutation.ResultDataCleared() {
		_spec.ClearField(job.FieldResultData, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorLog(); ok {
		_spec.SetField(job.FieldErrorLog, field.TypeString, value)
	}
	if _u.mutation.ErrorLogCleared() {
		_spec.ClearField(job.FieldErrorLog, field.TypeString)
	}
	if value, ok := _u.mutation.ShellKind(); ok {
		_spec.SetField(job.FieldShellKind, field.TypeEnum, value)
	}
	if _u.mutation.ShellKindCleared() {
		_spec.ClearField(job.FieldShellKind, field.TypeEnum)
	}
	if value, ok := _u.mutation.Script(); ok {
		_spec.SetField(job.FieldScript, field.TypeString, value)
	}
	if _u.mutation.ScriptCleared() {
		_spec.ClearField(job.FieldScript, field.TypeString)
	}
	if value, ok := _u.mutation.WorkingDirectory(); ok {
		_spec.SetField(job.FieldWorkingDirectory, field.TypeString, value)
	}
	if _u.mutation.WorkingDirectoryCleared() {
		_spec.ClearField(job.FieldWorkingDirectory, field.TypeString)
	}
	if value, ok := _u.mutation.TranscriptionModelID(); ok {
		_spec.SetField(job.FieldTranscriptionModelID, field.TypeString, value)
	}
	if _u.mutation.TranscriptionModelIDCleared() {
		_spec.ClearField(job.FieldTranscriptionModelID, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(job.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(job.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(job.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(job.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.LogEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogEntriesIDs(); len(nodes) > 0 && !_u.mutation.LogEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSegmentsIDs(); len(nodes) > 0 && !_u.mutation.SegmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SegmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
