// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/agent"
	"github.com/codeready-toolchain/warden/ent/channel"
	"github.com/codeready-toolchain/warden/ent/job"
)

// Job is the model entity for the Job schema.
type Job struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Acting agent on whose permissions the job is evaluated
	AgentID string `json:"agent_id,omitempty"`
	// ChannelID holds the value of the "channel_id" field.
	ChannelID *string `json:"channel_id,omitempty"`
	// Session user on whose behalf the agent acted
	CallerUserID *string `json:"caller_user_id,omitempty"`
	// CallerAgentID holds the value of the "caller_agent_id" field.
	CallerAgentID *string `json:"caller_agent_id,omitempty"`
	// Action holds the value of the "action" field.
	Action job.Action `json:"action,omitempty"`
	// Set at submission or filled in by default-resource resolution
	ResourceID *string `json:"resource_id,omitempty"`
	// Status holds the value of the "status" field.
	Status job.Status `json:"status,omitempty"`
	// Recorded at evaluation; approvers are checked against it
	EffectiveClearance job.EffectiveClearance `json:"effective_clearance,omitempty"`
	// ApprovedByUserID holds the value of the "approved_by_user_id" field.
	ApprovedByUserID *string `json:"approved_by_user_id,omitempty"`
	// ApprovedByAgentID holds the value of the "approved_by_agent_id" field.
	ApprovedByAgentID *string `json:"approved_by_agent_id,omitempty"`
	// ResultData holds the value of the "result_data" field.
	ResultData *string `json:"result_data,omitempty"`
	// ErrorLog holds the value of the "error_log" field.
	ErrorLog *string `json:"error_log,omitempty"`
	// Dangerous-shell jobs only
	ShellKind job.ShellKind `json:"shell_kind,omitempty"`
	// Script holds the value of the "script" field.
	Script *string `json:"script,omitempty"`
	// Per-job override; falls back to the system user's directories
	WorkingDirectory *string `json:"working_directory,omitempty"`
	// TranscriptionModelID holds the value of the "transcription_model_id" field.
	TranscriptionModelID *string `json:"transcription_model_id,omitempty"`
	// Language holds the value of the "language" field.
	Language *string `json:"language,omitempty"`
	// Action-specific arguments for administrative executors
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobQuery when eager-loading is set.
	Edges        JobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobEdges holds the relations/edges for other nodes in the graph.
type JobEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// Channel holds the value of the channel edge.
	Channel *Channel `json:"channel,omitempty"`
	// LogEntries holds the value of the log_entries edge.
	LogEntries []*JobLogEntry `json:"log_entries,omitempty"`
	// Segments holds the value of the segments edge.
	Segments []*TranscriptionSegment `json:"segments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// ChannelOrErr returns the Channel value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobEdges) ChannelOrErr() (*Channel, error) {
	if e.Channel != nil {
		return e.Channel, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: channel.Label}
	}
	return nil, &NotLoadedError{edge: "channel"}
}

// LogEntriesOrErr returns the LogEntries value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) LogEntriesOrErr() ([]*JobLogEntry, error) {
	if e.loadedTypes[2] {
		return e.LogEntries, nil
	}
	return nil, &NotLoadedError{edge: "log_entries"}
}

// SegmentsOrErr returns the Segments value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) SegmentsOrErr() ([]*TranscriptionSegment, error) {
	if e.loadedTypes[3] {
		return e.Segments, nil
	}
	return nil, &NotLoadedError{edge: "segments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Job) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case job.FieldPayload:
			values[i] = new([]byte)
		case job.FieldID, job.FieldAgentID, job.FieldChannelID, job.FieldCallerUserID, job.FieldCallerAgentID, job.FieldAction, job.FieldResourceID, job.FieldStatus, job.FieldEffectiveClearance, job.FieldApprovedByUserID, job.FieldApprovedByAgentID, job.FieldResultData, job.FieldErrorLog, job.FieldShellKind, job.FieldScript, job.FieldWorkingDirectory, job.FieldTranscriptionModelID, job.FieldLanguage:
			values[i] = new(sql.NullString)
		case job.FieldCreatedAt, job.FieldStartedAt, job.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Job fields.
func (_m *Job) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case job.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case job.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case job.FieldChannelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel_id", values[i])
			} else if value.Valid {
				_m.ChannelID = new(string)
				*_m.ChannelID = value.String
			}
		case job.FieldCallerUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field caller_user_id", values[i])
			} else if value.Valid {
				_m.CallerUserID = new(string)
				*_m.CallerUserID = value.String
			}
		case job.FieldCallerAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field caller_agent_id", values[i])
			} else if value.Valid {
				_m.CallerAgentID = new(string)
				*_m.CallerAgentID = value.String
			}
		case job.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = job.Action(value.String)
			}
		case job.FieldResourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resource_id", values[i])
			} else if value.Valid {
				_m.ResourceID = new(string)
				*_m.ResourceID = value.String
			}
		case job.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = job.Status(value.String)
			}
		case job.FieldEffectiveClearance:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field effective_clearance", values[i])
			} else if value.Valid {
				_m.EffectiveClearance = job.EffectiveClearance(value.String)
			}
		case job.FieldApprovedByUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approved_by_user_id", values[i])
			} else if value.Valid {
				_m.ApprovedByUserID = new(string)
				*_m.ApprovedByUserID = value.String
			}
		case job.FieldApprovedByAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approved_by_agent_id", values[i])
			} else if value.Valid {
				_m.ApprovedByAgentID = new(string)
				*_m.ApprovedByAgentID = value.String
			}
		case job.FieldResultData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_data", values[i])
			} else if value.Valid {
				_m.ResultData = new(string)
				*_m.ResultData = value.String
			}
		case job.FieldErrorLog:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_log", values[i])
			} else if value.Valid {
				_m.ErrorLog = new(string)
				*_m.ErrorLog = value.String
			}
		case job.FieldShellKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field shell_kind", values[i])
			} else if value.Valid {
				_m.ShellKind = job.ShellKind(value.String)
			}
		case job.FieldScript:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field script", values[i])
			} else if value.Valid {
				_m.Script = new(string)
				*_m.Script = value.String
			}
		case job.FieldWorkingDirectory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field working_directory", values[i])
			} else if value.Valid {
				_m.WorkingDirectory = new(string)
				*_m.WorkingDirectory = value.String
			}
		case job.FieldTranscriptionModelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcription_model_id", values[i])
			} else if value.Valid {
				_m.TranscriptionModelID = new(string)
				*_m.TranscriptionModelID = value.String
			}
		case job.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = new(string)
				*_m.Language = value.String
			}
		case job.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case job.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case job.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case job.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Job.
// This includes values selected through modifiers, order, etc.
func (_m *Job) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the Job entity.
func (_m *Job) QueryAgent() *AgentQuery {
	return NewJobClient(_m.config).QueryAgent(_m)
}

// QueryChannel queries the "channel" edge of the Job entity.
func (_m *Job) QueryChannel() *ChannelQuery {
	return NewJobClient(_m.config).QueryChannel(_m)
}

// QueryLogEntries queries the "log_entries" edge of the Job entity.
func (_m *Job) QueryLogEntries() *JobLogEntryQuery {
	return NewJobClient(_m.config).QueryLogEntries(_m)
}

// QuerySegments queries the "segments" edge of the Job entity.
func (_m *Job) QuerySegments() *TranscriptionSegmentQuery {
	return NewJobClient(_m.config).QuerySegments(_m)
}

// Update returns a builder for updating this Job.
// Note that you need to call Job.Unwrap() before calling this method if this Job
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Job) Update() *JobUpdateOne {
	return NewJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Job entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Job) Unwrap() *Job {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Job is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Job) String() string {
	var builder strings.Builder
	builder.WriteString("Job(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	if v := _m.ChannelID; v != nil {
		builder.WriteString("channel_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CallerUserID; v != nil {
		builder.WriteString("caller_user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CallerAgentID; v != nil {
		builder.WriteString("caller_agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", _m.Action))
	builder.WriteString(", ")
	if v := _m.ResourceID; v != nil {
		builder.WriteString("resource_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("effective_clearance=")
	builder.WriteString(fmt.Sprintf("%v", _m.EffectiveClearance))
	builder.WriteString(", ")
	if v := _m.ApprovedByUserID; v != nil {
		builder.WriteString("approved_by_user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ApprovedByAgentID; v != nil {
		builder.WriteString("approved_by_agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ResultData; v != nil {
		builder.WriteString("result_data=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorLog; v != nil {
		builder.WriteString("error_log=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("shell_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShellKind))
	builder.WriteString(", ")
	if v := _m.Script; v != nil {
		builder.WriteString("script=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WorkingDirectory; v != nil {
		builder.WriteString("working_directory=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TranscriptionModelID; v != nil {
		builder.WriteString("transcription_model_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Language; v != nil {
		builder.WriteString("language=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Jobs is a parsable slice of Job.
type Jobs []*Job
