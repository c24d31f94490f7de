// Code generated by ent, DO NOT EDIT.

package job

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the job type in the database.
	Label = "job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldChannelID holds the string denoting the channel_id field in the database.
	FieldChannelID = "channel_id"
	// FieldCallerUserID holds the string denoting the caller_user_id field in the database.
	FieldCallerUserID = "caller_user_id"
	// FieldCallerAgentID holds the string denoting the caller_agent_id field in the database.
	FieldCallerAgentID = "caller_agent_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldResourceID holds the string denoting the resource_id field in the database.
	FieldResourceID = "resource_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldEffectiveClearance holds the string denoting the effective_clearance field in the database.
	FieldEffectiveClearance = "effective_clearance"
	// FieldApprovedByUserID holds the string denoting the approved_by_user_id field in the database.
	FieldApprovedByUserID = "approved_by_user_id"
	// FieldApprovedByAgentID holds the string denoting the approved_by_agent_id field in the database.
	FieldApprovedByAgentID = "approved_by_agent_id"
	// FieldResultData holds the string denoting the result_data field in the database.
	FieldResultData = "result_data"
	// FieldErrorLog holds the string denoting the error_log field in the database.
	FieldErrorLog = "error_log"
	// FieldShellKind holds the string denoting the shell_kind field in the database.
	FieldShellKind = "shell_kind"
	// FieldScript holds the string denoting the script field in the database.
	FieldScript = "script"
	// FieldWorkingDirectory holds the string denoting the working_directory field in the database.
	FieldWorkingDirectory = "working_directory"
	// FieldTranscriptionModelID holds the string denoting the transcription_model_id field in the database.
	FieldTranscriptionModelID = "transcription_model_id"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// EdgeChannel holds the string denoting the channel edge name in mutations.
	EdgeChannel = "channel"
	// EdgeLogEntries holds the string denoting the log_entries edge name in mutations.
	EdgeLogEntries = "log_entries"
	// EdgeSegments holds the string denoting the segments edge name in mutations.
	EdgeSegments = "segments"
	// AgentFieldID holds the string denoting the ID field of the Agent.
	AgentFieldID = "agent_id"
	// ChannelFieldID holds the string denoting the ID field of the Channel.
	ChannelFieldID = "channel_id"
	// JobLogEntryFieldID holds the string denoting the ID field of the JobLogEntry.
	JobLogEntryFieldID = "log_id"
	// TranscriptionSegmentFieldID holds the string denoting the ID field of the TranscriptionSegment.
	TranscriptionSegmentFieldID = "segment_id"
	// Table holds the table name of the job in the database.
	Table = "jobs"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "jobs"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
	// ChannelTable is the table that holds the channel relation/edge.
	ChannelTable = "jobs"
	// ChannelInverseTable is the table name for the Channel entity.
	// It exists in this package in order to avoid circular dependency with the "channel" package.
	ChannelInverseTable = "channels"
	// ChannelColumn is the table column denoting the channel relation/edge.
	ChannelColumn = "channel_id"
	// LogEntriesTable is the table that holds the log_entries relation/edge.
	LogEntriesTable = "job_log_entries"
	// LogEntriesInverseTable is the table name for the JobLogEntry entity.
	// It exists in this package in order to avoid circular dependency with the "joblogentry" package.
	LogEntriesInverseTable = "job_log_entries"
	// LogEntriesColumn is the table column denoting the log_entries relation/edge.
	LogEntriesColumn = "job_id"
	// SegmentsTable is the table that holds the segments relation/edge.
	SegmentsTable = "transcription_segments"
	// SegmentsInverseTable is the table name for the TranscriptionSegment entity.
	// It exists in this package in order to avoid circular dependency with the "transcriptionsegment" package.
	SegmentsInverseTable = "transcription_segments"
	// SegmentsColumn is the table column denoting the segments relation/edge.
	SegmentsColumn = "job_id"
)

// Columns holds all SQL columns for job fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldChannelID,
	FieldCallerUserID,
	FieldCallerAgentID,
	FieldAction,
	FieldResourceID,
	FieldStatus,
	FieldEffectiveClearance,
	FieldApprovedByUserID,
	FieldApprovedByAgentID,
	FieldResultData,
	FieldErrorLog,
	FieldShellKind,
	FieldScript,
	FieldWorkingDirectory,
	FieldTranscriptionModelID,
	FieldLanguage,
	FieldPayload,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Action defines the type for the "action" enum field.
type Action string

// Action values.
const (
	ActionCreateSubAgent                Action = "create_sub_agent"
	ActionCreateContainer               Action = "create_container"
	ActionRegisterInfoStore             Action = "register_info_store"
	ActionEditAnyTask                   Action = "edit_any_task"
	ActionExecuteAsSafeShell            Action = "execute_as_safe_shell"
	ActionUnsafeExecuteAsDangerousShell Action = "unsafe_execute_as_dangerous_shell"
	ActionAccessLocalInfoStore          Action = "access_local_info_store"
	ActionAccessExternalInfoStore       Action = "access_external_info_store"
	ActionAccessWebsite                 Action = "access_website"
	ActionQuerySearchEngine             Action = "query_search_engine"
	ActionAccessContainer               Action = "access_container"
	ActionManageAgent                   Action = "manage_agent"
	ActionEditTask                      Action = "edit_task"
	ActionAccessSkill                   Action = "access_skill"
	ActionTranscribeFromAudioDevice     Action = "transcribe_from_audio_device"
	ActionTranscribeFromAudioStream     Action = "transcribe_from_audio_stream"
	ActionTranscribeFromAudioFile       Action = "transcribe_from_audio_file"
)

func (a Action) String() string {
	return string(a)
}

// ActionValidator is a validator for the "action" field enum values. It is called by the builders before save.
func ActionValidator(a Action) error {
	switch a {
	case ActionCreateSubAgent, ActionCreateContainer, ActionRegisterInfoStore, ActionEditAnyTask, ActionExecuteAsSafeShell, ActionUnsafeExecuteAsDangerousShell, ActionAccessLocalInfoStore, ActionAccessExternalInfoStore, ActionAccessWebsite, ActionQuerySearchEngine, ActionAccessContainer, ActionManageAgent, ActionEditTask, ActionAccessSkill, ActionTranscribeFromAudioDevice, ActionTranscribeFromAudioStream, ActionTranscribeFromAudioFile:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for action field: %q", a)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued           Status = "queued"
	StatusAwaitingApproval Status = "awaiting_approval"
	StatusExecuting        Status = "executing"
	StatusCompleted        Status = "completed"
	StatusFailed           Status = "failed"
	StatusDenied           Status = "denied"
	StatusCancelled        Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusAwaitingApproval, StatusExecuting, StatusCompleted, StatusFailed, StatusDenied, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for status field: %q", s)
	}
}

// EffectiveClearance defines the type for the "effective_clearance" enum field.
type EffectiveClearance string

// EffectiveClearance values.
const (
	EffectiveClearanceUnset            EffectiveClearance = "unset"
	EffectiveClearanceSameLevelUser    EffectiveClearance = "same_level_user"
	EffectiveClearanceWhitelistedUser  EffectiveClearance = "whitelisted_user"
	EffectiveClearancePermittedAgent   EffectiveClearance = "permitted_agent"
	EffectiveClearanceWhitelistedAgent EffectiveClearance = "whitelisted_agent"
	EffectiveClearanceIndependent      EffectiveClearance = "independent"
)

func (ec EffectiveClearance) String() string {
	return string(ec)
}

// EffectiveClearanceValidator is a validator for the "effective_clearance" field enum values. It is called by the builders before save.
func EffectiveClearanceValidator(ec EffectiveClearance) error {
	switch ec {
	case EffectiveClearanceUnset, EffectiveClearanceSameLevelUser, EffectiveClearanceWhitelistedUser, EffectiveClearancePermittedAgent, EffectiveClearanceWhitelistedAgent, EffectiveClearanceIndependent:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for effective_clearance field: %q", ec)
	}
}

// ShellKind defines the type for the "shell_kind" enum field.
type ShellKind string

// ShellKind values.
const (
	ShellKindBash                    ShellKind = "bash"
	ShellKindPowershellCrossPlatform ShellKind = "powershell_cross_platform"
	ShellKindCommandPromptWindows    ShellKind = "command_prompt_windows"
	ShellKindGitSubcommand           ShellKind = "git_subcommand"
)

func (sk ShellKind) String() string {
	return string(sk)
}

// ShellKindValidator is a validator for the "shell_kind" field enum values. It is called by the builders before save.
func ShellKindValidator(sk ShellKind) error {
	switch sk {
	case ShellKindBash, ShellKindPowershellCrossPlatform, ShellKindCommandPromptWindows, ShellKindGitSubcommand:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for shell_kind field: %q", sk)
	}
}

// OrderOption defines the ordering options for the Job queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByChannelID orders the results by the channel_id field.
func ByChannelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelID, opts...).ToFunc()
}

// ByCallerUserID orders the results by the caller_user_id field.
func ByCallerUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallerUserID, opts...).ToFunc()
}

// ByCallerAgentID orders the results by the caller_agent_id field.
func ByCallerAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCallerAgentID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByResourceID orders the results by the resource_id field.
func ByResourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByEffectiveClearance orders the results by the effective_clearance field.
func ByEffectiveClearance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectiveClearance, opts...).ToFunc()
}

// ByApprovedByUserID orders the results by the approved_by_user_id field.
func ByApprovedByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedByUserID, opts...).ToFunc()
}

// ByApprovedByAgentID orders the results by the approved_by_agent_id field.
func ByApprovedByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedByAgentID, opts...).ToFunc()
}

// ByResultData orders the results by the result_data field.
func ByResultData(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultData, opts...).ToFunc()
}

// ByErrorLog orders the results by the error_log field.
func ByErrorLog(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorLog, opts...).ToFunc()
}

// ByShellKind orders the results by the shell_kind field.
func ByShellKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShellKind, opts...).ToFunc()
}

// ByScript orders the results by the script field.
func ByScript(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScript, opts...).ToFunc()
}

// ByWorkingDirectory orders the results by the working_directory field.
func ByWorkingDirectory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkingDirectory, opts...).ToFunc()
}

// ByTranscriptionModelID orders the results by the transcription_model_id field.
func ByTranscriptionModelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptionModelID, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByAgentField orders the results by agent field.
func ByAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentStep(), sql.OrderByField(field, opts...))
	}
}

// ByChannelField orders the results by channel field.
func ByChannelField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChannelStep(), sql.OrderByField(field, opts...))
	}
}

// ByLogEntriesCount orders the results by log_entries count.
func ByLogEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLogEntriesStep(), opts...)
	}
}

// ByLogEntries orders the results by log_entries terms.
func ByLogEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLogEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySegmentsCount orders the results by segments count.
func BySegmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSegmentsStep(), opts...)
	}
}

// BySegments orders the results by segments terms.
func BySegments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSegmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentInverseTable, AgentFieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, AgentTable, AgentColumn),
	)
}
func newChannelStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChannelInverseTable, ChannelFieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ChannelTable, ChannelColumn),
	)
}
func newLogEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LogEntriesInverseTable, JobLogEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LogEntriesTable, LogEntriesColumn),
	)
}
func newSegmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SegmentsInverseTable, TranscriptionSegmentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SegmentsTable, SegmentsColumn),
	)
}
