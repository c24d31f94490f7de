package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	entjob "github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/pkg/events"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/permissions"
	"github.com/codeready-toolchain/warden/pkg/provider"
	"github.com/codeready-toolchain/warden/pkg/secrets"
)

// MaxRounds caps the model rounds per user message. Reaching it forces a
// closing response without tools.
const MaxRounds = 10

// DefaultHistoryLimit is how many persisted messages seed the conversation.
const DefaultHistoryLimit = 50

// ChannelStore is the channel surface the loop reads and writes.
// Implemented by services.ChannelService.
type ChannelStore interface {
	ResolveAgent(ctx context.Context, channelID, overrideAgentID string) (*ent.Agent, error)
	ChatHistory(ctx context.Context, channelID string, limit int) ([]*ent.ChatMessage, error)
	AppendExchange(ctx context.Context, channelID, userContent, assistantContent string) (string, error)
}

// JobRunner submits and decides tool-call jobs. Implemented by jobs.Manager.
type JobRunner interface {
	Submit(ctx context.Context, req models.SubmitJobRequest) (*ent.Job, error)
	Approve(ctx context.Context, jobID string, approver models.Caller) (*ent.Job, error)
	Cancel(ctx context.Context, jobID string, caller models.Caller) (*ent.Job, error)
}

// ModelSource resolves the agent's chat model. Implemented by
// services.DirectoryService.
type ModelSource interface {
	GetModel(ctx context.Context, modelID string) (*ent.ProviderModel, error)
}

// Request is one user message on a channel.
type Request struct {
	ChannelID string
	// AgentID optionally overrides the channel's default agent; it must be
	// on the channel's allowed list.
	AgentID string
	// UserID is the session user the loop approves and cancels as.
	UserID  string
	Content string
	// OnApproval decides suspended tool-call jobs the session user
	// qualifies for. Nil declines.
	OnApproval ApprovalCallback
}

// Result is the finished turn.
type Result struct {
	Response  string
	MessageID string
	Jobs      []*ent.Job
	Rounds    int
}

// Engine runs the tool-call loop against the provider bridge.
type Engine struct {
	channels  ChannelStore
	jobs      JobRunner
	modelSrc  ModelSource
	perms     permissions.Store
	evaluator *permissions.Evaluator
	llm       provider.ChatClient
	cipher    *secrets.Cipher
	publisher *events.EventPublisher
	history   int
	logger    *slog.Logger
}

func NewEngine(channels ChannelStore, jobs JobRunner, modelSrc ModelSource, perms permissions.Store, llm provider.ChatClient, cipher *secrets.Cipher, publisher *events.EventPublisher) *Engine {
	return &Engine{
		channels:  channels,
		jobs:      jobs,
		modelSrc:  modelSrc,
		perms:     perms,
		evaluator: permissions.NewEvaluator(perms),
		llm:       llm,
		cipher:    cipher,
		publisher: publisher,
		history:   DefaultHistoryLimit,
		logger:    slog.Default().With("component", "chat"),
	}
}

// SetHistoryLimit overrides how much channel history seeds each turn.
func (e *Engine) SetHistoryLimit(n int) {
	if n > 0 {
		e.history = n
	}
}

// Respond runs the non-streaming loop: each round takes the provider's
// complete response.
func (e *Engine) Respond(ctx context.Context, req Request) (*Result, error) {
	return e.run(ctx, req, nil, false)
}

// Stream runs the streaming loop: text deltas are forwarded through emit and
// the websocket publisher as they arrive.
func (e *Engine) Stream(ctx context.Context, req Request, emit EmitFunc) (*Result, error) {
	return e.run(ctx, req, emit, true)
}

func (e *Engine) run(ctx context.Context, req Request, emit EmitFunc, streaming bool) (*Result, error) {
	if emit == nil {
		emit = func(Event) {}
	}
	logger := e.logger.With("channel_id", req.ChannelID)

	agent, err := e.channels.ResolveAgent(ctx, req.ChannelID, req.AgentID)
	if err != nil {
		return nil, fmt.Errorf("resolving agent: %w", err)
	}
	spec, err := e.modelSpec(ctx, agent)
	if err != nil {
		return nil, err
	}

	history, err := e.channels.ChatHistory(ctx, req.ChannelID, e.history)
	if err != nil {
		return nil, err
	}
	messages := make([]provider.Message, 0, len(history)+1)
	for _, msg := range history {
		messages = append(messages, provider.Message{Role: string(msg.Role), Content: msg.Content})
	}
	messages = append(messages, provider.Message{Role: "user", Content: req.Content})

	var (
		text      strings.Builder
		jobsOut   []*ent.Job
		rounds    int
		unsettled bool // a round left an AwaitingApproval tool result behind
	)

	for rounds = 1; rounds <= MaxRounds; rounds++ {
		res, err := e.round(ctx, spec, agent.SystemPrompt, messages, toolDefinitions, emit, streaming, req.ChannelID)
		if err != nil {
			// The turn happened even though the model failed; history
			// records the user message with the failure noted.
			noted := fmt.Sprintf("(provider error: %v)", err)
			if _, perr := e.channels.AppendExchange(ctx, req.ChannelID, req.Content, noted); perr != nil {
				logger.Error("Failed to persist failed turn", "error", perr)
			}
			return nil, fmt.Errorf("model round %d: %w", rounds, err)
		}

		if res.Content != "" {
			if text.Len() > 0 {
				text.WriteString("\n\n")
			}
			text.WriteString(res.Content)
		}

		calls := dedupeToolCalls(res.ToolCalls)
		if len(calls) == 0 {
			unsettled = false
			break
		}

		messages = append(messages, provider.Message{
			Role:      "assistant",
			Content:   res.Content,
			ToolCalls: calls,
		})

		unsettled = false
		for _, call := range calls {
			j, resultMsg := e.runToolCall(ctx, logger, req, agent.ID, call, emit)
			if j != nil {
				jobsOut = append(jobsOut, j)
				if j.Status == entjob.StatusAwaitingApproval {
					unsettled = true
				}
			}
			messages = append(messages, provider.Message{
				Role:       "tool",
				Content:    resultMsg,
				ToolCallID: call.ID,
				ToolName:   call.Name,
			})
		}
	}

	if rounds > MaxRounds || unsettled {
		// Cap reached (or an approval never resolved): one last call without
		// tools so the model can close the conversation.
		closing, err := e.llm.ChatCompletion(ctx, spec, agent.SystemPrompt, messages)
		if err != nil {
			logger.Warn("Closing completion failed", "error", err)
		} else if closing != "" {
			if streaming {
				emit(TextDelta{Text: closing})
				e.publishDelta(req.ChannelID, closing)
			}
			if text.Len() > 0 {
				text.WriteString("\n\n")
			}
			text.WriteString(closing)
		}
		if rounds > MaxRounds {
			rounds = MaxRounds
		}
	}

	final := text.String()
	messageID, err := e.channels.AppendExchange(ctx, req.ChannelID, req.Content, final)
	if err != nil {
		return nil, fmt.Errorf("persisting exchange: %w", err)
	}

	emit(Complete{FinalResponse: final})
	if e.publisher != nil {
		if perr := e.publisher.PublishChatComplete(events.ChatCompletePayload{
			ChannelID: req.ChannelID,
			MessageID: messageID,
			Content:   final,
			Rounds:    rounds,
			Timestamp: now(),
		}); perr != nil {
			logger.Warn("Failed to publish chat completion", "error", perr)
		}
	}

	return &Result{Response: final, MessageID: messageID, Jobs: jobsOut, Rounds: rounds}, nil
}

// round performs one model call. Streaming forwards deltas as they arrive
// and collects tool calls; non-streaming takes the complete response.
func (e *Engine) round(ctx context.Context, spec provider.ModelSpec, systemPrompt string, messages []provider.Message, tools []provider.ToolDefinition, emit EmitFunc, streaming bool, channelID string) (*provider.ChatResult, error) {
	if !streaming {
		return e.llm.ChatCompletionWithTools(ctx, spec, systemPrompt, messages, tools)
	}

	chunks, err := e.llm.StreamChatCompletionWithTools(ctx, spec, systemPrompt, messages, tools)
	if err != nil {
		return nil, err
	}

	res := &provider.ChatResult{}
	for chunk := range chunks {
		switch c := chunk.(type) {
		case provider.TextChunk:
			emit(TextDelta{Text: c.Content})
			e.publishDelta(channelID, c.Content)
		case provider.ToolCallChunk:
			res.ToolCalls = append(res.ToolCalls, c.Call)
		case provider.DoneChunk:
			res.Content = c.Content
		case provider.ErrorChunk:
			return nil, c.Err
		}
	}
	return res, nil
}

// runToolCall submits one tool call as a job and resolves it to a
// tool-result message. The returned job is nil for unknown tools.
func (e *Engine) runToolCall(ctx context.Context, logger *slog.Logger, req Request, agentID string, call provider.ToolCall, emit EmitFunc) (*ent.Job, string) {
	submission, err := submissionFromToolCall(call, agentID, req.ChannelID, req.UserID)
	if err != nil {
		return nil, fmt.Sprintf("validation error: %v", err)
	}

	j, err := e.jobs.Submit(ctx, submission)
	if err != nil {
		return nil, fmt.Sprintf("submission failed: %v", err)
	}
	logger.Info("Tool call submitted", "job_id", j.ID, "tool", call.Name, "status", j.Status)

	emit(ToolStart{Job: j})
	if e.publisher != nil {
		if perr := e.publisher.PublishToolStart(events.ToolStartPayload{
			ChannelID: req.ChannelID,
			JobID:     j.ID,
			Action:    j.Action,
			Timestamp: now(),
		}); perr != nil {
			logger.Warn("Failed to publish tool start", "error", perr)
		}
	}

	if j.Status == entjob.StatusAwaitingApproval {
		j = e.resolveApproval(ctx, logger, req, agentID, j, emit)
	}
	return j, toolResult(j)
}

// resolveApproval handles an AwaitingApproval tool call inline: if the
// session user could satisfy the recorded clearance, the approval callback
// decides; an unqualified user auto-cancels.
func (e *Engine) resolveApproval(ctx context.Context, logger *slog.Logger, req Request, agentID string, j *ent.Job, emit EmitFunc) *ent.Job {
	sessionUser := models.UserCaller(req.UserID)

	qualified := false
	if req.UserID != "" {
		agentSet, err := e.perms.GetAgentPermissionSet(ctx, agentID)
		if err != nil {
			logger.Warn("Failed to load agent permission set for approval check", "error", err)
		} else {
			resourceID := ""
			if j.ResourceID != nil {
				resourceID = *j.ResourceID
			}
			ok, rule, serr := e.evaluator.Satisfies(ctx, sessionUser, agentSet, j.Action, resourceID, j.EffectiveClearance)
			if serr != nil {
				logger.Warn("Approval qualification check failed", "error", serr)
			} else if ok {
				qualified = true
				logger.Info("Session user qualifies as approver", "job_id", j.ID, "rule", rule)
			}
		}
	}

	approved := false
	if qualified && req.OnApproval != nil {
		emit(ApprovalRequired{Job: j})
		if e.publisher != nil {
			resourceID := ""
			if j.ResourceID != nil {
				resourceID = *j.ResourceID
			}
			if perr := e.publisher.PublishApprovalRequired(events.ApprovalRequiredPayload{
				ChannelID:          req.ChannelID,
				JobID:              j.ID,
				Action:             j.Action,
				ResourceID:         resourceID,
				EffectiveClearance: j.EffectiveClearance,
				Timestamp:          now(),
			}); perr != nil {
				logger.Warn("Failed to publish approval request", "error", perr)
			}
		}

		decision, err := req.OnApproval(ctx, j)
		if err != nil {
			logger.Warn("Approval callback failed, declining", "job_id", j.ID, "error", err)
		} else {
			approved = decision
		}
	}

	var (
		updated *ent.Job
		err     error
	)
	if approved {
		updated, err = e.jobs.Approve(ctx, j.ID, sessionUser)
	} else {
		updated, err = e.jobs.Cancel(ctx, j.ID, sessionUser)
	}
	if err != nil {
		logger.Warn("Approval decision did not apply", "job_id", j.ID, "approved", approved, "error", err)
	}
	if updated != nil {
		j = updated
	}

	emit(ApprovalDecision{Job: j, Approved: approved})
	if e.publisher != nil {
		decidedBy := ""
		if approved {
			decidedBy = req.UserID
		}
		if perr := e.publisher.PublishApprovalDecision(events.ApprovalDecisionPayload{
			ChannelID: req.ChannelID,
			JobID:     j.ID,
			Approved:  approved,
			DecidedBy: decidedBy,
			Timestamp: now(),
		}); perr != nil {
			logger.Warn("Failed to publish approval decision", "error", perr)
		}
	}
	return j
}

func (e *Engine) modelSpec(ctx context.Context, agent *ent.Agent) (provider.ModelSpec, error) {
	if agent.ModelID == nil {
		return provider.ModelSpec{}, fmt.Errorf("agent %s has no chat model", agent.ID)
	}
	model, err := e.modelSrc.GetModel(ctx, *agent.ModelID)
	if err != nil {
		return provider.ModelSpec{}, fmt.Errorf("resolving chat model: %w", err)
	}
	apiKey, err := e.cipher.Decrypt(model.EncryptedAPIKey)
	if err != nil {
		return provider.ModelSpec{}, fmt.Errorf("decrypting provider API key: %w", err)
	}
	spec := provider.ModelSpec{
		Provider: string(model.Provider),
		Model:    model.ModelName,
		APIKey:   apiKey,
	}
	if model.BaseURL != nil {
		spec.BaseURL = *model.BaseURL
	}
	return spec, nil
}

func (e *Engine) publishDelta(channelID, delta string) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.PublishChatDelta(events.ChatDeltaPayload{
		ChannelID: channelID,
		Delta:     delta,
		Timestamp: now(),
	}); err != nil {
		e.logger.Warn("Failed to publish chat delta", "error", err)
	}
}

// dedupeToolCalls keeps one call per id, later entries winning, in the order
// of each id's last occurrence.
func dedupeToolCalls(calls []provider.ToolCall) []provider.ToolCall {
	if len(calls) <= 1 {
		return calls
	}
	lastIdx := make(map[string]int, len(calls))
	for i, c := range calls {
		lastIdx[c.ID] = i
	}
	out := make([]provider.ToolCall, 0, len(lastIdx))
	for i, c := range calls {
		if lastIdx[c.ID] == i {
			out = append(out, c)
		}
	}
	return out
}

// toolResult renders a job outcome as the tool-result message content.
func toolResult(j *ent.Job) string {
	switch j.Status {
	case entjob.StatusCompleted:
		result := ""
		if j.ResultData != nil {
			result = *j.ResultData
		}
		return fmt.Sprintf("status=completed result=%s", result)
	case entjob.StatusExecuting:
		return "status=executing (long-running job started)"
	case entjob.StatusAwaitingApproval:
		return "status=awaiting_approval (no qualified approver responded)"
	case entjob.StatusDenied:
		return fmt.Sprintf("status=denied error=%s", errText(j))
	case entjob.StatusFailed:
		return fmt.Sprintf("status=failed error=%s", errText(j))
	case entjob.StatusCancelled:
		return fmt.Sprintf("status=cancelled error=%s", errText(j))
	default:
		return fmt.Sprintf("status=%s", j.Status)
	}
}

func errText(j *ent.Job) string {
	if j.ErrorLog != nil {
		return *j.ErrorLog
	}
	return ""
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
