package models

import (
	"time"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/job"
)

// SubmitJobRequest contains the fields for submitting a new job.
type SubmitJobRequest struct {
	AgentID   string     `json:"agent_id"`
	ChannelID string     `json:"channel_id,omitempty"`
	Caller    Caller     `json:"caller"`
	Action    job.Action `json:"action"`

	// SessionUserID is the user on whose behalf the channel acts. It feeds
	// pre-authorization; it defaults to Caller.UserID for user submissions.
	SessionUserID string `json:"session_user_id,omitempty"`

	// ResourceID may be empty for per-resource actions; default-resource
	// resolution fills it in from the channel, context, or role set.
	ResourceID string `json:"resource_id,omitempty"`

	// Shell payload
	ShellKind        job.ShellKind `json:"shell_kind,omitempty"`
	Script           string        `json:"script,omitempty"`
	WorkingDirectory string        `json:"working_directory,omitempty"`

	// Transcription payload
	TranscriptionModelID string `json:"transcription_model_id,omitempty"`
	Language             string `json:"language,omitempty"`

	// Administrative payload (create sub-agent, create container, ...)
	Payload map[string]any `json:"payload,omitempty"`
}

// JobFilters contains filtering options for listing jobs
type JobFilters struct {
	Status    string `json:"status,omitempty"`
	Action    string `json:"action,omitempty"`
	AgentID   string `json:"agent_id,omitempty"`
	ChannelID string `json:"channel_id,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// JobListResponse contains a paginated job list
type JobListResponse struct {
	Jobs       []*ent.Job `json:"jobs"`
	TotalCount int        `json:"total_count"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}

// SegmentsSinceRequest is the polling read for live transcription output.
type SegmentsSinceRequest struct {
	JobID string    `json:"job_id"`
	Since time.Time `json:"since"`
}
