package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Broadcaster delivers a marshaled event to every subscriber of a channel.
// Implemented by ConnectionManager.
type Broadcaster interface {
	Broadcast(channel string, event []byte)
}

// EventPublisher fans typed event payloads out to registered sinks.
// Publishing is best-effort: a sink that drops an event does not affect
// the producer, and there is no persistence or replay.
//
// Each public method accepts a specific typed payload struct — see payloads.go.
type EventPublisher struct {
	mu    sync.RWMutex
	sinks []Broadcaster
}

// NewEventPublisher creates an EventPublisher with no sinks.
func NewEventPublisher() *EventPublisher {
	return &EventPublisher{}
}

// AddSink registers a sink. Called during startup wiring.
func (p *EventPublisher) AddSink(s Broadcaster) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sinks = append(p.sinks, s)
}

// --- Typed public methods ---

// PublishJobStatus broadcasts a job.status event to the job's own channel
// and to the global jobs channel.
func (p *EventPublisher) PublishJobStatus(payload JobStatusPayload) error {
	payload.Type = EventTypeJobStatus
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal JobStatusPayload: %w", err)
	}
	p.broadcast(JobChannel(payload.JobID), data)
	p.broadcast(GlobalJobsChannel, data)
	return nil
}

// PublishJobLog broadcasts a job.log event to the job's channel.
func (p *EventPublisher) PublishJobLog(payload JobLogPayload) error {
	payload.Type = EventTypeJobLog
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal JobLogPayload: %w", err)
	}
	p.broadcast(JobChannel(payload.JobID), data)
	return nil
}

// PublishSegment broadcasts a transcription.segment event to the job's channel.
func (p *EventPublisher) PublishSegment(payload SegmentPayload) error {
	payload.Type = EventTypeSegment
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SegmentPayload: %w", err)
	}
	p.broadcast(JobChannel(payload.JobID), data)
	return nil
}

// PublishChatDelta broadcasts a chat.delta event to the channel's subscribers.
func (p *EventPublisher) PublishChatDelta(payload ChatDeltaPayload) error {
	payload.Type = EventTypeChatDelta
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ChatDeltaPayload: %w", err)
	}
	p.broadcast(ChatChannel(payload.ChannelID), data)
	return nil
}

// PublishApprovalRequired broadcasts a chat.approval_required event.
func (p *EventPublisher) PublishApprovalRequired(payload ApprovalRequiredPayload) error {
	payload.Type = EventTypeApprovalRequired
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ApprovalRequiredPayload: %w", err)
	}
	p.broadcast(ChatChannel(payload.ChannelID), data)
	return nil
}

// PublishApprovalDecision broadcasts a chat.approval_decision event.
func (p *EventPublisher) PublishApprovalDecision(payload ApprovalDecisionPayload) error {
	payload.Type = EventTypeApprovalDecision
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ApprovalDecisionPayload: %w", err)
	}
	p.broadcast(ChatChannel(payload.ChannelID), data)
	return nil
}

// PublishToolStart broadcasts a chat.tool_start event.
func (p *EventPublisher) PublishToolStart(payload ToolStartPayload) error {
	payload.Type = EventTypeToolStart
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ToolStartPayload: %w", err)
	}
	p.broadcast(ChatChannel(payload.ChannelID), data)
	return nil
}

// PublishChatComplete broadcasts a chat.complete event.
func (p *EventPublisher) PublishChatComplete(payload ChatCompletePayload) error {
	payload.Type = EventTypeChatComplete
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ChatCompletePayload: %w", err)
	}
	p.broadcast(ChatChannel(payload.ChannelID), data)
	return nil
}

func (p *EventPublisher) broadcast(channel string, event []byte) {
	p.mu.RLock()
	sinks := make([]Broadcaster, len(p.sinks))
	copy(sinks, p.sinks)
	p.mu.RUnlock()

	if len(sinks) == 0 {
		slog.Debug("Event published with no sinks registered", "channel", channel)
		return
	}
	for _, s := range sinks {
		s.Broadcast(channel, event)
	}
}
