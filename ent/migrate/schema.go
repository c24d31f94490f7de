// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "system_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "role_id", Type: field.TypeString, Nullable: true},
		{Name: "model_id", Type: field.TypeString, Nullable: true},
		{Name: "channel_allowed_agents", Type: field.TypeString, Nullable: true},
		{Name: "permission_set_whitelisted_agents", Type: field.TypeString, Nullable: true},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agents_roles_role",
				Columns:    []*schema.Column{AgentsColumns[5]},
				RefColumns: []*schema.Column{RolesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "agents_provider_models_model",
				Columns:    []*schema.Column{AgentsColumns[6]},
				RefColumns: []*schema.Column{ProviderModelsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "agents_channels_allowed_agents",
				Columns:    []*schema.Column{AgentsColumns[7]},
				RefColumns: []*schema.Column{ChannelsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "agents_permission_sets_whitelisted_agents",
				Columns:    []*schema.Column{AgentsColumns[8]},
				RefColumns: []*schema.Column{PermissionSetsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// ChannelsColumns holds the columns for the "channels" table.
	ChannelsColumns = []*schema.Column{
		{Name: "channel_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "default_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "context_id", Type: field.TypeString, Nullable: true},
		{Name: "permission_set_id", Type: field.TypeString, Nullable: true},
	}
	// ChannelsTable holds the schema information for the "channels" table.
	ChannelsTable = &schema.Table{
		Name:       "channels",
		Columns:    ChannelsColumns,
		PrimaryKey: []*schema.Column{ChannelsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "channels_agents_default_agent",
				Columns:    []*schema.Column{ChannelsColumns[3]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "channels_channel_contexts_context",
				Columns:    []*schema.Column{ChannelsColumns[4]},
				RefColumns: []*schema.Column{ChannelContextsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "channels_permission_sets_permission_set",
				Columns:    []*schema.Column{ChannelsColumns[5]},
				RefColumns: []*schema.Column{PermissionSetsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// ChannelContextsColumns holds the columns for the "channel_contexts" table.
	ChannelContextsColumns = []*schema.Column{
		{Name: "context_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "permission_set_id", Type: field.TypeString, Nullable: true},
	}
	// ChannelContextsTable holds the schema information for the "channel_contexts" table.
	ChannelContextsTable = &schema.Table{
		Name:       "channel_contexts",
		Columns:    ChannelContextsColumns,
		PrimaryKey: []*schema.Column{ChannelContextsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "channel_contexts_permission_sets_permission_set",
				Columns:    []*schema.Column{ChannelContextsColumns[3]},
				RefColumns: []*schema.Column{PermissionSetsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "channel_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_channels_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[4]},
				RefColumns: []*schema.Column{ChannelsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_channel_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[4], ChatMessagesColumns[3]},
			},
		},
	}
	// ContainersColumns holds the columns for the "containers" table.
	ContainersColumns = []*schema.Column{
		{Name: "container_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "path", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"sandboxed_dsl", "generic"}, Default: "sandboxed_dsl"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ContainersTable holds the schema information for the "containers" table.
	ContainersTable = &schema.Table{
		Name:       "containers",
		Columns:    ContainersColumns,
		PrimaryKey: []*schema.Column{ContainersColumns[0]},
	}
	// GrantsColumns holds the columns for the "grants" table.
	GrantsColumns = []*schema.Column{
		{Name: "grant_id", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"dangerous_shell", "safe_shell", "local_info_store", "external_info_store", "website", "search_engine", "container", "audio_device", "agent", "task", "skill"}},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "clearance", Type: field.TypeEnum, Enums: []string{"unset", "same_level_user", "whitelisted_user", "permitted_agent", "whitelisted_agent", "independent"}, Default: "unset"},
		{Name: "is_default", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "permission_set_id", Type: field.TypeString},
	}
	// GrantsTable holds the schema information for the "grants" table.
	GrantsTable = &schema.Table{
		Name:       "grants",
		Columns:    GrantsColumns,
		PrimaryKey: []*schema.Column{GrantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "grants_permission_sets_grants",
				Columns:    []*schema.Column{GrantsColumns[6]},
				RefColumns: []*schema.Column{PermissionSetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "grant_permission_set_id_category_resource_id",
				Unique:  true,
				Columns: []*schema.Column{GrantsColumns[6], GrantsColumns[1], GrantsColumns[2]},
			},
			{
				Name:    "grant_permission_set_id_category",
				Unique:  true,
				Columns: []*schema.Column{GrantsColumns[6], GrantsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "is_default",
				},
			},
		},
	}
	// InfoStoresColumns holds the columns for the "info_stores" table.
	InfoStoresColumns = []*schema.Column{
		{Name: "store_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"local", "external"}},
		{Name: "location", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// InfoStoresTable holds the schema information for the "info_stores" table.
	InfoStoresTable = &schema.Table{
		Name:       "info_stores",
		Columns:    InfoStoresColumns,
		PrimaryKey: []*schema.Column{InfoStoresColumns[0]},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "caller_user_id", Type: field.TypeString, Nullable: true},
		{Name: "caller_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"create_sub_agent", "create_container", "register_info_store", "edit_any_task", "execute_as_safe_shell", "unsafe_execute_as_dangerous_shell", "access_local_info_store", "access_external_info_store", "access_website", "query_search_engine", "access_container", "manage_agent", "edit_task", "access_skill", "transcribe_from_audio_device", "transcribe_from_audio_stream", "transcribe_from_audio_file"}},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "awaiting_approval", "executing", "completed", "failed", "denied", "cancelled"}, Default: "queued"},
		{Name: "effective_clearance", Type: field.TypeEnum, Nullable: true, Enums: []string{"unset", "same_level_user", "whitelisted_user", "permitted_agent", "whitelisted_agent", "independent"}},
		{Name: "approved_by_user_id", Type: field.TypeString, Nullable: true},
		{Name: "approved_by_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "result_data", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_log", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "shell_kind", Type: field.TypeEnum, Nullable: true, Enums: []string{"bash", "powershell_cross_platform", "command_prompt_windows", "git_subcommand"}},
		{Name: "script", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "working_directory", Type: field.TypeString, Nullable: true},
		{Name: "transcription_model_id", Type: field.TypeString, Nullable: true},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "channel_id", Type: field.TypeString, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_agents_agent",
				Columns:    []*schema.Column{JobsColumns[20]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "jobs_channels_channel",
				Columns:    []*schema.Column{JobsColumns[21]},
				RefColumns: []*schema.Column{ChannelsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5]},
			},
			{
				Name:    "job_action_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[5]},
			},
			{
				Name:    "job_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[20], JobsColumns[17]},
			},
			{
				Name:    "job_channel_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[21], JobsColumns[17]},
			},
			{
				Name:    "job_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[17]},
			},
		},
	}
	// JobLogEntriesColumns holds the columns for the "job_log_entries" table.
	JobLogEntriesColumns = []*schema.Column{
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "error"}, Default: "info"},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// JobLogEntriesTable holds the schema information for the "job_log_entries" table.
	JobLogEntriesTable = &schema.Table{
		Name:       "job_log_entries",
		Columns:    JobLogEntriesColumns,
		PrimaryKey: []*schema.Column{JobLogEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_log_entries_jobs_log_entries",
				Columns:    []*schema.Column{JobLogEntriesColumns[5]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "joblogentry_job_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobLogEntriesColumns[5], JobLogEntriesColumns[4]},
			},
			{
				Name:    "joblogentry_job_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{JobLogEntriesColumns[5], JobLogEntriesColumns[3]},
			},
		},
	}
	// PermissionSetsColumns holds the columns for the "permission_sets" table.
	PermissionSetsColumns = []*schema.Column{
		{Name: "permission_set_id", Type: field.TypeString, Unique: true},
		{Name: "default_clearance", Type: field.TypeEnum, Enums: []string{"unset", "same_level_user", "whitelisted_user", "permitted_agent", "whitelisted_agent", "independent"}, Default: "unset"},
		{Name: "allow_create_sub_agent", Type: field.TypeBool, Default: false},
		{Name: "allow_create_container", Type: field.TypeBool, Default: false},
		{Name: "allow_register_info_store", Type: field.TypeBool, Default: false},
		{Name: "allow_edit_any_task", Type: field.TypeBool, Default: false},
		{Name: "allow_localhost_browser", Type: field.TypeBool, Default: false},
		{Name: "allow_localhost_cli", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PermissionSetsTable holds the schema information for the "permission_sets" table.
	PermissionSetsTable = &schema.Table{
		Name:       "permission_sets",
		Columns:    PermissionSetsColumns,
		PrimaryKey: []*schema.Column{PermissionSetsColumns[0]},
	}
	// ProviderModelsColumns holds the columns for the "provider_models" table.
	ProviderModelsColumns = []*schema.Column{
		{Name: "model_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"openai", "anthropic", "google"}},
		{Name: "model_name", Type: field.TypeString},
		{Name: "encrypted_api_key", Type: field.TypeString, Nullable: true},
		{Name: "base_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProviderModelsTable holds the schema information for the "provider_models" table.
	ProviderModelsTable = &schema.Table{
		Name:       "provider_models",
		Columns:    ProviderModelsColumns,
		PrimaryKey: []*schema.Column{ProviderModelsColumns[0]},
	}
	// RolesColumns holds the columns for the "roles" table.
	RolesColumns = []*schema.Column{
		{Name: "role_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "permission_set_id", Type: field.TypeString},
	}
	// RolesTable holds the schema information for the "roles" table.
	RolesTable = &schema.Table{
		Name:       "roles",
		Columns:    RolesColumns,
		PrimaryKey: []*schema.Column{RolesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "roles_permission_sets_permission_set",
				Columns:    []*schema.Column{RolesColumns[4]},
				RefColumns: []*schema.Column{PermissionSetsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SkillsColumns holds the columns for the "skills" table.
	SkillsColumns = []*schema.Column{
		{Name: "skill_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SkillsTable holds the schema information for the "skills" table.
	SkillsTable = &schema.Table{
		Name:       "skills",
		Columns:    SkillsColumns,
		PrimaryKey: []*schema.Column{SkillsColumns[0]},
	}
	// SystemUsersColumns holds the columns for the "system_users" table.
	SystemUsersColumns = []*schema.Column{
		{Name: "system_user_id", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "working_directory", Type: field.TypeString, Nullable: true},
		{Name: "sandbox_root", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SystemUsersTable holds the schema information for the "system_users" table.
	SystemUsersTable = &schema.Table{
		Name:       "system_users",
		Columns:    SystemUsersColumns,
		PrimaryKey: []*schema.Column{SystemUsersColumns[0]},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "repeat_interval_seconds", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
	}
	// TranscriptionSegmentsColumns holds the columns for the "transcription_segments" table.
	TranscriptionSegmentsColumns = []*schema.Column{
		{Name: "segment_id", Type: field.TypeString, Unique: true},
		{Name: "chunk_index", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "start_seconds", Type: field.TypeFloat64},
		{Name: "end_seconds", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "captured_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// TranscriptionSegmentsTable holds the schema information for the "transcription_segments" table.
	TranscriptionSegmentsTable = &schema.Table{
		Name:       "transcription_segments",
		Columns:    TranscriptionSegmentsColumns,
		PrimaryKey: []*schema.Column{TranscriptionSegmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transcription_segments_jobs_segments",
				Columns:    []*schema.Column{TranscriptionSegmentsColumns[7]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transcriptionsegment_job_id_start_seconds",
				Unique:  false,
				Columns: []*schema.Column{TranscriptionSegmentsColumns[7], TranscriptionSegmentsColumns[3]},
			},
			{
				Name:    "transcriptionsegment_job_id_captured_at",
				Unique:  false,
				Columns: []*schema.Column{TranscriptionSegmentsColumns[7], TranscriptionSegmentsColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "permission_set_whitelisted_users", Type: field.TypeString, Nullable: true},
		{Name: "role_id", Type: field.TypeString, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_permission_sets_whitelisted_users",
				Columns:    []*schema.Column{UsersColumns[4]},
				RefColumns: []*schema.Column{PermissionSetsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "users_roles_role",
				Columns:    []*schema.Column{UsersColumns[5]},
				RefColumns: []*schema.Column{RolesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		ChannelsTable,
		ChannelContextsTable,
		ChatMessagesTable,
		ContainersTable,
		GrantsTable,
		InfoStoresTable,
		JobsTable,
		JobLogEntriesTable,
		PermissionSetsTable,
		ProviderModelsTable,
		RolesTable,
		SkillsTable,
		SystemUsersTable,
		TasksTable,
		TranscriptionSegmentsTable,
		UsersTable,
	}
)

func init() {
	AgentsTable.ForeignKeys[0].RefTable = RolesTable
	AgentsTable.ForeignKeys[1].RefTable = ProviderModelsTable
	AgentsTable.ForeignKeys[2].RefTable = ChannelsTable
	AgentsTable.ForeignKeys[3].RefTable = PermissionSetsTable
	ChannelsTable.ForeignKeys[0].RefTable = AgentsTable
	ChannelsTable.ForeignKeys[1].RefTable = ChannelContextsTable
	ChannelsTable.ForeignKeys[2].RefTable = PermissionSetsTable
	ChannelContextsTable.ForeignKeys[0].RefTable = PermissionSetsTable
	ChatMessagesTable.ForeignKeys[0].RefTable = ChannelsTable
	GrantsTable.ForeignKeys[0].RefTable = PermissionSetsTable
	JobsTable.ForeignKeys[0].RefTable = AgentsTable
	JobsTable.ForeignKeys[1].RefTable = ChannelsTable
	JobLogEntriesTable.ForeignKeys[0].RefTable = JobsTable
	RolesTable.ForeignKeys[0].RefTable = PermissionSetsTable
	TranscriptionSegmentsTable.ForeignKeys[0].RefTable = JobsTable
	UsersTable.ForeignKeys[0].RefTable = PermissionSetsTable
	UsersTable.ForeignKeys[1].RefTable = RolesTable
}
