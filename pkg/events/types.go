// Package events provides real-time event delivery via WebSocket.
//
// Publishing is in-process: producers (the job engine, transcription
// orchestrator, and chat loop) hand typed payloads to the EventPublisher,
// which marshals them once and fans them out to every registered sink.
// The ConnectionManager is the WebSocket sink; it routes each event to the
// connections subscribed to the event's channel.
//
// Delivery is at-most-once. Clients that disconnect recover state through
// the REST API (job status, logs, and the segments-since endpoint), not
// through event replay.
package events

// Job event types.
const (
	EventTypeJobStatus = "job.status"
	EventTypeJobLog    = "job.log"
)

// Transcription event types.
const (
	EventTypeSegment = "transcription.segment"
)

// Chat event types, published to the owning channel's subscribers while the
// assistant loop runs.
const (
	EventTypeChatDelta        = "chat.delta"
	EventTypeApprovalRequired = "chat.approval_required"
	EventTypeApprovalDecision = "chat.approval_decision"
	EventTypeToolStart        = "chat.tool_start"
	EventTypeChatComplete     = "chat.complete"
)

// GlobalJobsChannel carries status events for every job. Dashboards
// subscribe here instead of one channel per job.
const GlobalJobsChannel = "jobs"

// JobChannel returns the channel name for a specific job's events.
// Format: "job:{job_id}"
func JobChannel(jobID string) string {
	return "job:" + jobID
}

// ChatChannel returns the channel name for a chat channel's events.
// Format: "channel:{channel_id}"
func ChatChannel(channelID string) string {
	return "channel:" + channelID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action  string `json:"action"`            // "subscribe", "unsubscribe", "ping"
	Channel string `json:"channel,omitempty"` // Channel name (e.g., "job:abc-123")
}
