package events

import (
	"github.com/codeready-toolchain/warden/ent/job"
)

// JobStatusPayload is the payload for job.status events.
// Published on every job state transition.
type JobStatusPayload struct {
	Type               string                 `json:"type"`   // always EventTypeJobStatus
	JobID              string                 `json:"job_id"` // job UUID
	Status             job.Status             `json:"status"` // queued, awaiting_approval, executing, ...
	Action             job.Action             `json:"action"` // action kind
	AgentID            string                 `json:"agent_id"`
	EffectiveClearance job.EffectiveClearance `json:"effective_clearance,omitempty"`
	Timestamp          string                 `json:"timestamp"` // RFC3339Nano
}

// JobLogPayload is the payload for job.log events.
type JobLogPayload struct {
	Type      string `json:"type"`     // always EventTypeJobLog
	JobID     string `json:"job_id"`   // job UUID
	Severity  string `json:"severity"` // info, warning, error
	Message   string `json:"message"`
	Sequence  int    `json:"sequence"`  // order within the job's log
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// SegmentPayload is the payload for transcription.segment events.
// Published for each transcribed chunk of a live transcription job.
type SegmentPayload struct {
	Type      string  `json:"type"`       // always EventTypeSegment
	JobID     string  `json:"job_id"`     // owning transcription job UUID
	Index     int     `json:"index"`      // segment order within the job
	StartTime float64 `json:"start_time"` // seconds from transcription start
	EndTime   float64 `json:"end_time"`   // seconds from transcription start
	Text      string  `json:"text"`
	Timestamp string  `json:"timestamp"` // RFC3339Nano
}

// ChatDeltaPayload is the payload for chat.delta events.
// High frequency and ephemeral; the final text arrives in chat.complete.
type ChatDeltaPayload struct {
	Type      string `json:"type"`       // always EventTypeChatDelta
	ChannelID string `json:"channel_id"` // owning channel UUID
	Delta     string `json:"delta"`      // incremental assistant text
	Timestamp string `json:"timestamp"`  // RFC3339Nano
}

// ApprovalRequiredPayload is the payload for chat.approval_required events.
// Published when a tool call produced a job that needs a human decision.
type ApprovalRequiredPayload struct {
	Type               string                 `json:"type"`       // always EventTypeApprovalRequired
	ChannelID          string                 `json:"channel_id"` // owning channel UUID
	JobID              string                 `json:"job_id"`     // pending job UUID
	Action             job.Action             `json:"action"`
	ResourceID         string                 `json:"resource_id,omitempty"`
	EffectiveClearance job.EffectiveClearance `json:"effective_clearance"`
	Timestamp          string                 `json:"timestamp"` // RFC3339Nano
}

// ApprovalDecisionPayload is the payload for chat.approval_decision events.
type ApprovalDecisionPayload struct {
	Type      string `json:"type"`       // always EventTypeApprovalDecision
	ChannelID string `json:"channel_id"` // owning channel UUID
	JobID     string `json:"job_id"`     // decided job UUID
	Approved  bool   `json:"approved"`
	DecidedBy string `json:"decided_by,omitempty"` // approver user ID, empty when auto-denied
	Timestamp string `json:"timestamp"`            // RFC3339Nano
}

// ToolStartPayload is the payload for chat.tool_start events.
// Published when an approved tool call begins executing.
type ToolStartPayload struct {
	Type      string     `json:"type"`       // always EventTypeToolStart
	ChannelID string     `json:"channel_id"` // owning channel UUID
	JobID     string     `json:"job_id"`     // executing job UUID
	Action    job.Action `json:"action"`
	Timestamp string     `json:"timestamp"` // RFC3339Nano
}

// ChatCompletePayload is the payload for chat.complete events.
// Published once per assistant turn, after the tool-call loop finishes.
type ChatCompletePayload struct {
	Type      string `json:"type"`       // always EventTypeChatComplete
	ChannelID string `json:"channel_id"` // owning channel UUID
	MessageID string `json:"message_id"` // persisted assistant message UUID
	Content   string `json:"content"`    // final assistant text
	Rounds    int    `json:"rounds"`     // tool-call rounds consumed
	Timestamp string `json:"timestamp"`  // RFC3339Nano
}
