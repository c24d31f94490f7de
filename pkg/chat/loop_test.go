package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/chatmessage"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/ent/permissionset"
	"github.com/codeready-toolchain/warden/ent/providermodel"
	"github.com/codeready-toolchain/warden/pkg/events"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/provider"
	"github.com/codeready-toolchain/warden/pkg/secrets"
	"github.com/codeready-toolchain/warden/pkg/services"
)

func ptr(s string) *string { return &s }

// --- fakes ---

type exchange struct {
	userContent      string
	assistantContent string
}

type fakeChannels struct {
	agent     *ent.Agent
	history   []*ent.ChatMessage
	exchanges []exchange
}

func (f *fakeChannels) ResolveAgent(_ context.Context, _ string, _ string) (*ent.Agent, error) {
	if f.agent == nil {
		return nil, services.ErrNotFound
	}
	return f.agent, nil
}

func (f *fakeChannels) ChatHistory(_ context.Context, _ string, _ int) ([]*ent.ChatMessage, error) {
	return f.history, nil
}

func (f *fakeChannels) AppendExchange(_ context.Context, _ string, userContent, assistantContent string) (string, error) {
	f.exchanges = append(f.exchanges, exchange{userContent: userContent, assistantContent: assistantContent})
	return fmt.Sprintf("msg-%d", len(f.exchanges)), nil
}

// fakeJobs resolves each submission to a scripted job status. Approve and
// Cancel replay the transition on the stored job.
type fakeJobs struct {
	mu        sync.Mutex
	seq       int
	statusFor map[job.Action]job.Status
	resultFor map[job.Action]string
	jobs      map[string]*ent.Job
	submitted []models.SubmitJobRequest
	approved  []string
	cancelled []string
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{
		statusFor: make(map[job.Action]job.Status),
		resultFor: make(map[job.Action]string),
		jobs:      make(map[string]*ent.Job),
	}
}

func (f *fakeJobs) Submit(_ context.Context, req models.SubmitJobRequest) (*ent.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, req)
	f.seq++
	status, ok := f.statusFor[req.Action]
	if !ok {
		status = job.StatusCompleted
	}
	j := &ent.Job{
		ID:                 fmt.Sprintf("job-%d", f.seq),
		AgentID:            req.AgentID,
		Action:             req.Action,
		Status:             status,
		EffectiveClearance: job.EffectiveClearanceWhitelistedUser,
	}
	if req.ResourceID != "" {
		j.ResourceID = ptr(req.ResourceID)
	}
	if result, ok := f.resultFor[req.Action]; ok && status == job.StatusCompleted {
		j.ResultData = ptr(result)
	}
	f.jobs[j.ID] = j
	return j, nil
}

func (f *fakeJobs) Approve(_ context.Context, jobID string, _ models.Caller) (*ent.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.approved = append(f.approved, jobID)
	j := f.jobs[jobID]
	j.Status = job.StatusCompleted
	j.ResultData = ptr("approved result")
	return j, nil
}

func (f *fakeJobs) Cancel(_ context.Context, jobID string, _ models.Caller) (*ent.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, jobID)
	j := f.jobs[jobID]
	j.Status = job.StatusCancelled
	j.ErrorLog = ptr("cancelled by session user")
	return j, nil
}

// fakeLLM pops one scripted round per call.
type llmRound struct {
	content   string
	toolCalls []provider.ToolCall
	err       error
}

type fakeLLM struct {
	mu       sync.Mutex
	rounds   []llmRound
	closing  string
	requests [][]provider.Message
}

func (f *fakeLLM) next() (llmRound, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.rounds) == 0 {
		return llmRound{}, false
	}
	r := f.rounds[0]
	f.rounds = f.rounds[1:]
	return r, true
}

func (f *fakeLLM) record(messages []provider.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, messages)
}

func (f *fakeLLM) ChatCompletion(_ context.Context, _ provider.ModelSpec, _ string, messages []provider.Message) (string, error) {
	f.record(messages)
	return f.closing, nil
}

func (f *fakeLLM) ChatCompletionWithTools(_ context.Context, _ provider.ModelSpec, _ string, messages []provider.Message, _ []provider.ToolDefinition) (*provider.ChatResult, error) {
	f.record(messages)
	r, ok := f.next()
	if !ok {
		return &provider.ChatResult{Content: "out of script"}, nil
	}
	if r.err != nil {
		return nil, r.err
	}
	return &provider.ChatResult{Content: r.content, ToolCalls: r.toolCalls}, nil
}

func (f *fakeLLM) StreamChatCompletionWithTools(_ context.Context, _ provider.ModelSpec, _ string, messages []provider.Message, _ []provider.ToolDefinition) (<-chan provider.Chunk, error) {
	f.record(messages)
	r, ok := f.next()
	if !ok {
		r = llmRound{content: "out of script"}
	}
	ch := make(chan provider.Chunk)
	go func() {
		defer close(ch)
		if r.err != nil {
			ch <- provider.ErrorChunk{Err: r.err}
			return
		}
		for _, call := range r.toolCalls {
			ch <- provider.ToolCallChunk{Call: call}
		}
		if r.content != "" {
			half := len(r.content) / 2
			ch <- provider.TextChunk{Content: r.content[:half]}
			ch <- provider.TextChunk{Content: r.content[half:]}
		}
		ch <- provider.DoneChunk{Content: r.content}
	}()
	return ch, nil
}

type fakeModels struct{ model *ent.ProviderModel }

func (f *fakeModels) GetModel(_ context.Context, modelID string) (*ent.ProviderModel, error) {
	if f.model == nil || f.model.ID != modelID {
		return nil, services.ErrNotFound
	}
	return f.model, nil
}

type fakePermStore struct {
	agents map[string]*ent.PermissionSet
	users  map[string]*ent.PermissionSet
}

func (s *fakePermStore) GetAgentPermissionSet(_ context.Context, agentID string) (*ent.PermissionSet, error) {
	set, ok := s.agents[agentID]
	if !ok {
		return nil, services.ErrNoRole
	}
	return set, nil
}

func (s *fakePermStore) GetUserPermissionSet(_ context.Context, userID string) (*ent.PermissionSet, error) {
	set, ok := s.users[userID]
	if !ok {
		return nil, services.ErrNoRole
	}
	return set, nil
}

func (s *fakePermStore) GetChannelPermissionSet(_ context.Context, _ string) (*ent.PermissionSet, error) {
	return nil, nil
}

func (s *fakePermStore) GetChannelContextPermissionSet(_ context.Context, _ string) (*ent.PermissionSet, error) {
	return nil, nil
}

// --- harness ---

type chatFixture struct {
	engine   *Engine
	channels *fakeChannels
	jobs     *fakeJobs
	llm      *fakeLLM
	perms    *fakePermStore
}

func setupEngine(t *testing.T) *chatFixture {
	t.Helper()
	cipher := secrets.NewCipher("unit-test-master-key")
	encrypted, err := cipher.Encrypt("sk-test")
	require.NoError(t, err)

	channels := &fakeChannels{agent: &ent.Agent{
		ID:           "agent-1",
		Name:         "helper",
		SystemPrompt: "You are a helper.",
		ModelID:      ptr("model-1"),
	}}
	jobs := newFakeJobs()
	llm := &fakeLLM{}
	perms := &fakePermStore{
		agents: map[string]*ent.PermissionSet{},
		users:  map[string]*ent.PermissionSet{},
	}
	modelSrc := &fakeModels{model: &ent.ProviderModel{
		ID:              "model-1",
		Provider:        providermodel.ProviderAnthropic,
		ModelName:       "claude-sonnet",
		EncryptedAPIKey: encrypted,
	}}
	engine := NewEngine(channels, jobs, modelSrc, perms, llm, cipher, events.NewEventPublisher())
	return &chatFixture{engine: engine, channels: channels, jobs: jobs, llm: llm, perms: perms}
}

// whitelistUser makes userID a qualified approver for agent-1 at the
// whitelisted-user clearance.
func (fx *chatFixture) whitelistUser(userID string) {
	set := &ent.PermissionSet{ID: "set-1", DefaultClearance: permissionset.DefaultClearanceWhitelistedUser}
	set.Edges.WhitelistedUsers = []*ent.User{{ID: userID}}
	fx.perms.agents["agent-1"] = set
}

func baseRequest() Request {
	return Request{ChannelID: "chan-1", UserID: "user-7", Content: "do the thing"}
}

func collectEvents(events *[]Event) EmitFunc {
	return func(e Event) { *events = append(*events, e) }
}

// --- tests ---

func TestRespondPlainText(t *testing.T) {
	fx := setupEngine(t)
	fx.llm.rounds = []llmRound{{content: "nothing to do"}}

	res, err := fx.engine.Respond(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, "nothing to do", res.Response)
	assert.Equal(t, 1, res.Rounds)
	assert.Empty(t, res.Jobs)
	require.Len(t, fx.channels.exchanges, 1)
	assert.Equal(t, "do the thing", fx.channels.exchanges[0].userContent)
	assert.Equal(t, "nothing to do", fx.channels.exchanges[0].assistantContent)
	assert.Equal(t, "msg-1", res.MessageID)
}

func TestRespondIncludesHistory(t *testing.T) {
	fx := setupEngine(t)
	fx.channels.history = []*ent.ChatMessage{
		{Role: chatmessage.RoleUser, Content: "earlier question"},
		{Role: chatmessage.RoleAssistant, Content: "earlier answer"},
	}
	fx.llm.rounds = []llmRound{{content: "ok"}}

	_, err := fx.engine.Respond(context.Background(), baseRequest())
	require.NoError(t, err)

	require.Len(t, fx.llm.requests, 1)
	msgs := fx.llm.requests[0]
	require.Len(t, msgs, 3)
	assert.Equal(t, "earlier question", msgs[0].Content)
	assert.Equal(t, "assistant", msgs[1].Role)
	assert.Equal(t, "do the thing", msgs[2].Content)
}

func TestRespondToolCallCompletes(t *testing.T) {
	fx := setupEngine(t)
	fx.jobs.resultFor[job.ActionAccessSkill] = "skill content here"
	fx.llm.rounds = []llmRound{
		{toolCalls: []provider.ToolCall{{ID: "c1", Name: "access_skill", Arguments: `{"resource_id":"skill-3"}`}}},
		{content: "used the skill"},
	}

	res, err := fx.engine.Respond(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, "used the skill", res.Response)
	assert.Equal(t, 2, res.Rounds)
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, job.StatusCompleted, res.Jobs[0].Status)

	require.Len(t, fx.jobs.submitted, 1)
	sub := fx.jobs.submitted[0]
	assert.Equal(t, job.ActionAccessSkill, sub.Action)
	assert.Equal(t, "skill-3", sub.ResourceID)
	assert.Equal(t, "agent-1", sub.Caller.AgentID)
	assert.Equal(t, "user-7", sub.SessionUserID)

	// The tool result went back into the second round's conversation.
	second := fx.llm.requests[1]
	last := second[len(second)-1]
	assert.Equal(t, "tool", last.Role)
	assert.Equal(t, "c1", last.ToolCallID)
	assert.Contains(t, last.Content, "status=completed")
	assert.Contains(t, last.Content, "skill content here")
}

func TestRespondShellArgumentsMapped(t *testing.T) {
	fx := setupEngine(t)
	fx.llm.rounds = []llmRound{
		{toolCalls: []provider.ToolCall{{
			ID:   "c1",
			Name: "unsafe_execute_as_dangerous_shell",
			Arguments: `{"resource_id":"su-1","script":"uname -a","shell_kind":"bash",` +
				`"working_directory":"/tmp","note":"extra"}`,
		}}},
		{content: "done"},
	}

	_, err := fx.engine.Respond(context.Background(), baseRequest())
	require.NoError(t, err)

	sub := fx.jobs.submitted[0]
	assert.Equal(t, job.ActionUnsafeExecuteAsDangerousShell, sub.Action)
	assert.Equal(t, "uname -a", sub.Script)
	assert.Equal(t, job.ShellKindBash, sub.ShellKind)
	assert.Equal(t, "/tmp", sub.WorkingDirectory)
	assert.Equal(t, map[string]any{"note": "extra"}, sub.Payload)
}

func TestRespondUnknownToolNoJob(t *testing.T) {
	fx := setupEngine(t)
	fx.llm.rounds = []llmRound{
		{toolCalls: []provider.ToolCall{{ID: "c1", Name: "launch_missiles", Arguments: `{}`}}},
		{content: "cannot do that"},
	}

	res, err := fx.engine.Respond(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Empty(t, fx.jobs.submitted)
	assert.Empty(t, res.Jobs)
	second := fx.llm.requests[1]
	last := second[len(second)-1]
	assert.Contains(t, last.Content, "validation error")
	assert.Contains(t, last.Content, "launch_missiles")
}

func TestRespondDuplicateToolCallIDsLaterWins(t *testing.T) {
	fx := setupEngine(t)
	fx.llm.rounds = []llmRound{
		{toolCalls: []provider.ToolCall{
			{ID: "c1", Name: "access_skill", Arguments: `{"resource_id":"skill-old"}`},
			{ID: "c1", Name: "access_skill", Arguments: `{"resource_id":"skill-new"}`},
		}},
		{content: "done"},
	}

	_, err := fx.engine.Respond(context.Background(), baseRequest())
	require.NoError(t, err)

	require.Len(t, fx.jobs.submitted, 1)
	assert.Equal(t, "skill-new", fx.jobs.submitted[0].ResourceID)
}

func TestApprovalCallbackApproves(t *testing.T) {
	fx := setupEngine(t)
	fx.whitelistUser("user-7")
	fx.jobs.statusFor[job.ActionAccessWebsite] = job.StatusAwaitingApproval
	fx.llm.rounds = []llmRound{
		{toolCalls: []provider.ToolCall{{ID: "c1", Name: "access_website", Arguments: `{"resource_id":"site-1"}`}}},
		{content: "visited the site"},
	}

	var got []Event
	req := baseRequest()
	var callbackJob *ent.Job
	req.OnApproval = func(_ context.Context, j *ent.Job) (bool, error) {
		callbackJob = j
		return true, nil
	}

	res, err := fx.engine.Stream(context.Background(), req, collectEvents(&got))
	require.NoError(t, err)

	require.NotNil(t, callbackJob)
	assert.Equal(t, []string{"job-1"}, fx.jobs.approved)
	assert.Empty(t, fx.jobs.cancelled)
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, job.StatusCompleted, res.Jobs[0].Status)

	var kinds []string
	for _, e := range got {
		switch e.(type) {
		case ToolStart:
			kinds = append(kinds, "tool_start")
		case ApprovalRequired:
			kinds = append(kinds, "approval_required")
		case ApprovalDecision:
			kinds = append(kinds, "approval_decision")
		case Complete:
			kinds = append(kinds, "complete")
		}
	}
	assert.Equal(t, []string{"tool_start", "approval_required", "approval_decision", "complete"}, kinds)
}

func TestApprovalCallbackDeclines(t *testing.T) {
	fx := setupEngine(t)
	fx.whitelistUser("user-7")
	fx.jobs.statusFor[job.ActionAccessWebsite] = job.StatusAwaitingApproval
	fx.llm.rounds = []llmRound{
		{toolCalls: []provider.ToolCall{{ID: "c1", Name: "access_website", Arguments: `{"resource_id":"site-1"}`}}},
		{content: "understood, not visiting"},
	}

	req := baseRequest()
	req.OnApproval = func(_ context.Context, _ *ent.Job) (bool, error) { return false, nil }

	res, err := fx.engine.Respond(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, fx.jobs.approved)
	assert.Equal(t, []string{"job-1"}, fx.jobs.cancelled)
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, job.StatusCancelled, res.Jobs[0].Status)
}

func TestApprovalUnqualifiedUserAutoCancels(t *testing.T) {
	fx := setupEngine(t)
	// agent-1 has a set, but user-7 is not whitelisted on it.
	fx.perms.agents["agent-1"] = &ent.PermissionSet{ID: "set-1", DefaultClearance: permissionset.DefaultClearanceWhitelistedUser}
	fx.jobs.statusFor[job.ActionAccessWebsite] = job.StatusAwaitingApproval
	fx.llm.rounds = []llmRound{
		{toolCalls: []provider.ToolCall{{ID: "c1", Name: "access_website", Arguments: `{"resource_id":"site-1"}`}}},
		{content: "not allowed"},
	}

	callbackInvoked := false
	req := baseRequest()
	req.OnApproval = func(_ context.Context, _ *ent.Job) (bool, error) {
		callbackInvoked = true
		return true, nil
	}

	var got []Event
	_, err := fx.engine.Stream(context.Background(), req, collectEvents(&got))
	require.NoError(t, err)

	assert.False(t, callbackInvoked, "unqualified user must not be asked")
	assert.Equal(t, []string{"job-1"}, fx.jobs.cancelled)

	for _, e := range got {
		_, isRequired := e.(ApprovalRequired)
		assert.False(t, isRequired, "no approval_required for unqualified user")
	}
}

func TestApprovalNilCallbackDeclines(t *testing.T) {
	fx := setupEngine(t)
	fx.whitelistUser("user-7")
	fx.jobs.statusFor[job.ActionAccessWebsite] = job.StatusAwaitingApproval
	fx.llm.rounds = []llmRound{
		{toolCalls: []provider.ToolCall{{ID: "c1", Name: "access_website", Arguments: `{"resource_id":"site-1"}`}}},
		{content: "declined"},
	}

	_, err := fx.engine.Respond(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.Empty(t, fx.jobs.approved)
	assert.Equal(t, []string{"job-1"}, fx.jobs.cancelled)
}

func TestStreamEmitsDeltasInOrder(t *testing.T) {
	fx := setupEngine(t)
	fx.llm.rounds = []llmRound{{content: "streamed answer"}}

	var got []Event
	res, err := fx.engine.Stream(context.Background(), baseRequest(), collectEvents(&got))
	require.NoError(t, err)
	assert.Equal(t, "streamed answer", res.Response)

	var streamed string
	for _, e := range got {
		if d, ok := e.(TextDelta); ok {
			streamed += d.Text
		}
	}
	assert.Equal(t, "streamed answer", streamed)

	last := got[len(got)-1]
	complete, ok := last.(Complete)
	require.True(t, ok, "Complete must be the final event")
	assert.Equal(t, "streamed answer", complete.FinalResponse)
}

func TestRoundCapForcesClosingResponse(t *testing.T) {
	fx := setupEngine(t)
	fx.llm.closing = "ran out of rounds"
	// Every scripted round keeps issuing tool calls.
	for i := 0; i < MaxRounds; i++ {
		fx.llm.rounds = append(fx.llm.rounds, llmRound{
			toolCalls: []provider.ToolCall{{ID: fmt.Sprintf("c%d", i), Name: "access_skill", Arguments: `{"resource_id":"skill-1"}`}},
		})
	}

	res, err := fx.engine.Respond(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, MaxRounds, res.Rounds)
	assert.Len(t, res.Jobs, MaxRounds)
	assert.Contains(t, res.Response, "ran out of rounds")
	// Tool rounds plus the final call without tools.
	assert.Len(t, fx.llm.requests, MaxRounds+1)
}

func TestProviderErrorPersistsUserMessage(t *testing.T) {
	fx := setupEngine(t)
	fx.llm.rounds = []llmRound{{err: errors.New("upstream 500")}}

	_, err := fx.engine.Respond(context.Background(), baseRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream 500")

	require.Len(t, fx.channels.exchanges, 1)
	assert.Equal(t, "do the thing", fx.channels.exchanges[0].userContent)
	assert.Contains(t, fx.channels.exchanges[0].assistantContent, "upstream 500")
}

func TestStreamErrorChunkFailsRound(t *testing.T) {
	fx := setupEngine(t)
	fx.llm.rounds = []llmRound{{err: errors.New("stream reset")}}

	_, err := fx.engine.Stream(context.Background(), baseRequest(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stream reset")
}

func TestRespondAgentWithoutModel(t *testing.T) {
	fx := setupEngine(t)
	fx.channels.agent.ModelID = nil

	_, err := fx.engine.Respond(context.Background(), baseRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no chat model")
}
