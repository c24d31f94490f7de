package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity: one privileged action
// requested by an agent, carried through the clearance evaluation and the
// execution state machine.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable().
			Comment("Acting agent on whose permissions the job is evaluated"),
		field.String("channel_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("caller_user_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Session user on whose behalf the agent acted"),
		field.String("caller_agent_id").
			Optional().
			Nillable().
			Immutable(),
		field.Enum("action").
			Values(
				"create_sub_agent",
				"create_container",
				"register_info_store",
				"edit_any_task",
				"execute_as_safe_shell",
				"unsafe_execute_as_dangerous_shell",
				"access_local_info_store",
				"access_external_info_store",
				"access_website",
				"query_search_engine",
				"access_container",
				"manage_agent",
				"edit_task",
				"access_skill",
				"transcribe_from_audio_device",
				"transcribe_from_audio_stream",
				"transcribe_from_audio_file",
			).
			Immutable(),
		field.String("resource_id").
			Optional().
			Nillable().
			Comment("Set at submission or filled in by default-resource resolution"),
		field.Enum("status").
			Values("queued", "awaiting_approval", "executing", "completed", "failed", "denied", "cancelled").
			Default("queued"),
		field.Enum("effective_clearance").
			Values("unset", "same_level_user", "whitelisted_user", "permitted_agent", "whitelisted_agent", "independent").
			Optional().
			Comment("Recorded at evaluation; approvers are checked against it"),
		field.String("approved_by_user_id").
			Optional().
			Nillable(),
		field.String("approved_by_agent_id").
			Optional().
			Nillable(),
		field.Text("result_data").
			Optional().
			Nillable(),
		field.Text("error_log").
			Optional().
			Nillable(),
		field.Enum("shell_kind").
			Values("bash", "powershell_cross_platform", "command_prompt_windows", "git_subcommand").
			Optional().
			Comment("Dangerous-shell jobs only"),
		field.Text("script").
			Optional().
			Nillable(),
		field.String("working_directory").
			Optional().
			Nillable().
			Comment("Per-job override; falls back to the system user's directories"),
		field.String("transcription_model_id").
			Optional().
			Nillable(),
		field.String("language").
			Optional().
			Nillable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Action-specific arguments for administrative executors"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("agent", Agent.Type).
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
		edge.To("channel", Channel.Type).
			Field("channel_id").
			Unique().
			Immutable(),
		edge.To("log_entries", JobLogEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("segments", TranscriptionSegment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("action", "status"),
		index.Fields("agent_id", "created_at"),
		index.Fields("channel_id", "created_at"),
		index.Fields("created_at"),
	}
}
