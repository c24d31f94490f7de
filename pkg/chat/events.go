// Package chat drives the per-message tool-call loop: model rounds, tool
// calls materialized as jobs, inline approval, and the persisted exchange.
package chat

import (
	"context"

	"github.com/codeready-toolchain/warden/ent"
)

// Event is the tagged union of chat loop events. The streaming path emits a
// single ordered sequence ending with Complete.
type Event interface {
	eventType() string
}

// TextDelta is one incremental piece of assistant text.
type TextDelta struct{ Text string }

// ApprovalRequired signals a tool-call job suspended for a human decision.
type ApprovalRequired struct{ Job *ent.Job }

// ApprovalDecision reports the decision on a suspended job.
type ApprovalDecision struct {
	Job      *ent.Job
	Approved bool
}

// ToolStart signals a tool call submitted as a job.
type ToolStart struct{ Job *ent.Job }

// Complete carries the final assistant response, after persistence.
type Complete struct{ FinalResponse string }

func (TextDelta) eventType() string        { return "text_delta" }
func (ApprovalRequired) eventType() string { return "approval_required" }
func (ApprovalDecision) eventType() string { return "approval_decision" }
func (ToolStart) eventType() string        { return "tool_start" }
func (Complete) eventType() string         { return "complete" }

// EmitFunc receives loop events in order. A nil EmitFunc drops them.
type EmitFunc func(Event)

// ApprovalCallback decides a suspended tool-call job. A nil callback
// declines every approval.
type ApprovalCallback func(ctx context.Context, j *ent.Job) (bool, error)
