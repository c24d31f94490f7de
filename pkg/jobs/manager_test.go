package jobs

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/grant"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/ent/joblogentry"
	"github.com/codeready-toolchain/warden/ent/permissionset"
	"github.com/codeready-toolchain/warden/pkg/events"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/services"
)

// --- permission store fake ---

type fakePermStore struct {
	agents   map[string]*ent.PermissionSet
	users    map[string]*ent.PermissionSet
	channels map[string]*ent.PermissionSet
	contexts map[string]*ent.PermissionSet
}

func newFakePermStore() *fakePermStore {
	return &fakePermStore{
		agents:   make(map[string]*ent.PermissionSet),
		users:    make(map[string]*ent.PermissionSet),
		channels: make(map[string]*ent.PermissionSet),
		contexts: make(map[string]*ent.PermissionSet),
	}
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

func (s *fakePermStore) GetChannelPermissionSet(_ context.Context, channelID string) (*ent.PermissionSet, error) {
	return s.channels[channelID], nil
}

func (s *fakePermStore) GetChannelContextPermissionSet(_ context.Context, channelID string) (*ent.PermissionSet, error) {
	return s.contexts[channelID], nil
}

func newSet(defaultClearance permissionset.DefaultClearance, grants ...*ent.Grant) *ent.PermissionSet {
	set := &ent.PermissionSet{ID: "set-1", DefaultClearance: defaultClearance}
	set.Edges.Grants = grants
	return set
}

func newGrant(category grant.Category, resourceID string, clearance grant.Clearance) *ent.Grant {
	return &ent.Grant{ID: "g-" + resourceID, Category: category, ResourceID: resourceID, Clearance: clearance}
}

func defaultGrant(category grant.Category, resourceID string, clearance grant.Clearance) *ent.Grant {
	g := newGrant(category, resourceID, clearance)
	g.IsDefault = true
	return g
}

func withWhitelistedUser(set *ent.PermissionSet, userIDs ...string) *ent.PermissionSet {
	for _, id := range userIDs {
		set.Edges.WhitelistedUsers = append(set.Edges.WhitelistedUsers, &ent.User{ID: id})
	}
	return set
}

// --- job store fake ---

type logRec struct {
	severity joblogentry.Severity
	message  string
}

type fakeJobStore struct {
	mu   sync.Mutex
	seq  int
	jobs map[string]*ent.Job
	logs map[string][]logRec
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: make(map[string]*ent.Job), logs: make(map[string][]logRec)}
}

var fakeTransitions = map[job.Status][]job.Status{
	job.StatusQueued:           {job.StatusAwaitingApproval, job.StatusDenied, job.StatusExecuting},
	job.StatusAwaitingApproval: {job.StatusExecuting, job.StatusDenied, job.StatusCancelled},
	job.StatusExecuting:        {job.StatusCompleted, job.StatusFailed, job.StatusCancelled},
}

func (s *fakeJobStore) CreateJob(_ context.Context, req models.SubmitJobRequest) (*ent.Job, error) {
	if err := job.ActionValidator(req.Action); err != nil {
		return nil, services.NewValidationError("action", "unknown action kind")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	j := &ent.Job{
		ID:      fmt.Sprintf("job-%d", s.seq),
		AgentID: req.AgentID,
		Action:  req.Action,
		Status:  job.StatusQueued,
	}
	if req.ChannelID != "" {
		j.ChannelID = &req.ChannelID
	}
	if req.Caller.IsUser() {
		j.CallerUserID = &req.Caller.UserID
	}
	if req.Caller.IsAgent() {
		j.CallerAgentID = &req.Caller.AgentID
	}
	if req.ResourceID != "" {
		j.ResourceID = ptr(req.ResourceID)
	}
	if req.ShellKind != "" {
		j.ShellKind = req.ShellKind
	}
	if req.Script != "" {
		j.Script = ptr(req.Script)
	}
	if req.TranscriptionModelID != "" {
		j.TranscriptionModelID = ptr(req.TranscriptionModelID)
	}
	if req.Payload != nil {
		j.Payload = req.Payload
	}
	s.jobs[j.ID] = j
	s.logs[j.ID] = append(s.logs[j.ID], logRec{joblogentry.SeverityInfo, "job submitted"})
	return copyJob(j), nil
}

func copyJob(j *ent.Job) *ent.Job {
	cp := *j
	return &cp
}

func (s *fakeJobStore) GetJob(_ context.Context, jobID string, _ bool) (*ent.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return copyJob(j), nil
}

func (s *fakeJobStore) MarkEvaluated(_ context.Context, jobID string, clearance job.EffectiveClearance, resourceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return services.ErrNotFound
	}
	if err := job.EffectiveClearanceValidator(clearance); err != nil {
		return fmt.Errorf("invalid clearance %q", clearance)
	}
	j.EffectiveClearance = clearance
	if resourceID != "" {
		j.ResourceID = ptr(resourceID)
	}
	return nil
}

func (s *fakeJobStore) transition(jobID string, to job.Status, severity joblogentry.Severity, note string, mutate func(*ent.Job)) (*ent.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return nil, services.ErrNotFound
	}
	if services.IsTerminalStatus(j.Status) {
		return nil, fmt.Errorf("job %s is already %s: %w", jobID, j.Status, services.ErrInvariantViolation)
	}
	allowed := false
	for _, next := range fakeTransitions[j.Status] {
		if next == to {
			allowed = true
		}
	}
	if !allowed {
		return nil, fmt.Errorf("transition %s -> %s not allowed: %w", j.Status, to, services.ErrInvariantViolation)
	}
	j.Status = to
	now := time.Now()
	if to == job.StatusExecuting {
		j.StartedAt = &now
	}
	if services.IsTerminalStatus(to) {
		j.CompletedAt = &now
	}
	if mutate != nil {
		mutate(j)
	}
	s.logs[jobID] = append(s.logs[jobID], logRec{severity, note})
	return copyJob(j), nil
}

func (s *fakeJobStore) MarkAwaitingApproval(_ context.Context, jobID string) (*ent.Job, error) {
	return s.transition(jobID, job.StatusAwaitingApproval, joblogentry.SeverityInfo, "awaiting approval", nil)
}

func (s *fakeJobStore) StartExecution(_ context.Context, jobID string, approver *models.Caller, note string) (*ent.Job, error) {
	return s.transition(jobID, job.StatusExecuting, joblogentry.SeverityInfo, note, func(j *ent.Job) {
		if approver != nil {
			if approver.IsUser() {
				j.ApprovedByUserID = &approver.UserID
			}
			if approver.IsAgent() {
				j.ApprovedByAgentID = &approver.AgentID
			}
		}
	})
}

func (s *fakeJobStore) CompleteJob(_ context.Context, jobID, resultData string) (*ent.Job, error) {
	return s.transition(jobID, job.StatusCompleted, joblogentry.SeverityInfo, "completed", func(j *ent.Job) {
		if resultData != "" {
			j.ResultData = ptr(resultData)
		}
	})
}

func (s *fakeJobStore) FailJob(_ context.Context, jobID, errorLog string) (*ent.Job, error) {
	return s.transition(jobID, job.StatusFailed, joblogentry.SeverityError, errorLog, func(j *ent.Job) {
		j.ErrorLog = ptr(errorLog)
	})
}

func (s *fakeJobStore) DenyJob(_ context.Context, jobID, reason string) (*ent.Job, error) {
	return s.transition(jobID, job.StatusDenied, joblogentry.SeverityWarning, reason, func(j *ent.Job) {
		j.ErrorLog = ptr(reason)
	})
}

func (s *fakeJobStore) CancelJob(_ context.Context, jobID, note string) (*ent.Job, error) {
	return s.transition(jobID, job.StatusCancelled, joblogentry.SeverityInfo, note, nil)
}

func (s *fakeJobStore) AppendLog(_ context.Context, jobID string, severity joblogentry.Severity, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[jobID] = append(s.logs[jobID], logRec{severity, message})
	return nil
}

func (s *fakeJobStore) logMessages(jobID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.logs[jobID]))
	for _, l := range s.logs[jobID] {
		out = append(out, l.message)
	}
	return out
}

// --- executor and transcriber stubs ---

type stubExecutor struct {
	result      string
	err         error
	validateErr error
	started     chan struct{}
	block       chan struct{}
}

func (s *stubExecutor) Validate(*ent.Job) error { return s.validateErr }

func (s *stubExecutor) Execute(ctx context.Context, _ *ent.Job) (string, error) {
	if s.started != nil {
		close(s.started)
	}
	if s.block != nil {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-s.block:
		}
	}
	return s.result, s.err
}

type fakeTranscriber struct {
	store     *fakeJobStore
	mu        sync.Mutex
	started   []string
	stopped   []string
	cancelled []string
	startErr  error
}

func (f *fakeTranscriber) Start(_ context.Context, j *ent.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return f.startErr
	}
	f.started = append(f.started, j.ID)
	return nil
}

func (f *fakeTranscriber) Stop(ctx context.Context, jobID string) error {
	f.mu.Lock()
	f.stopped = append(f.stopped, jobID)
	f.mu.Unlock()
	_, err := f.store.CompleteJob(ctx, jobID, "")
	return err
}

func (f *fakeTranscriber) Cancel(ctx context.Context, jobID string) error {
	f.mu.Lock()
	f.cancelled = append(f.cancelled, jobID)
	f.mu.Unlock()
	_, err := f.store.CancelJob(ctx, jobID, "transcription cancelled")
	return err
}

// --- harness ---

type harness struct {
	store    *fakeJobStore
	perms    *fakePermStore
	registry *Registry
	manager  *Manager
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := newFakeJobStore()
	perms := newFakePermStore()
	registry := NewRegistry(newFakeDirectory(), newFakeResources(), &fakeCompiler{}, &fakeRegistrar{}, &fakeRunner{})
	return &harness{
		store:    store,
		perms:    perms,
		registry: registry,
		manager:  NewManager(store, perms, registry, events.NewEventPublisher()),
	}
}

// --- tests ---

func TestManager_SubmitIndependentExecutesToCompletion(t *testing.T) {
	h := newHarness(t)
	h.perms.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, "site-1", grant.ClearanceIndependent))
	h.registry.Register(job.ActionAccessWebsite, &stubExecutor{result: "fetched"})

	j, err := h.manager.Submit(context.Background(), models.SubmitJobRequest{
		AgentID:    "agent-1",
		Action:     job.ActionAccessWebsite,
		ResourceID: "site-1",
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, j.Status)
	assert.Equal(t, job.EffectiveClearanceIndependent, j.EffectiveClearance)
	assert.Equal(t, "fetched", strv(j.ResultData))
	// Independent clearance records the acting agent as its own approver.
	require.NotNil(t, j.ApprovedByAgentID)
	assert.Equal(t, "agent-1", *j.ApprovedByAgentID)
	assert.NotNil(t, j.StartedAt)
	assert.NotNil(t, j.CompletedAt)
}

func TestManager_SubmitNoRoleDenied(t *testing.T) {
	h := newHarness(t)

	j, err := h.manager.Submit(context.Background(), models.SubmitJobRequest{
		AgentID:    "ghost",
		Action:     job.ActionAccessWebsite,
		ResourceID: "site-1",
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusDenied, j.Status)
	assert.Contains(t, strv(j.ErrorLog), "no role")
}

func TestManager_SubmitMissingGrantDenied(t *testing.T) {
	h := newHarness(t)
	h.perms.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset)

	j, err := h.manager.Submit(context.Background(), models.SubmitJobRequest{
		AgentID:    "agent-1",
		Action:     job.ActionAccessContainer,
		ResourceID: "c1",
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusDenied, j.Status)
	assert.Contains(t, strv(j.ErrorLog), "does not have container access")
}

func TestManager_SubmitNoResourceAndNoDefaultDenied(t *testing.T) {
	h := newHarness(t)
	h.perms.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, "site-1", grant.ClearanceIndependent))

	j, err := h.manager.Submit(context.Background(), models.SubmitJobRequest{
		AgentID: "agent-1",
		Action:  job.ActionAccessWebsite,
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusDenied, j.Status)
	assert.Contains(t, strv(j.ErrorLog), "ResourceId required")
}

func TestManager_SubmitResolvesDefaultResource(t *testing.T) {
	h := newHarness(t)
	h.perms.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, "site-9", grant.ClearanceIndependent))
	h.perms.channels["chan-1"] = newSet(permissionset.DefaultClearanceUnset,
		defaultGrant(grant.CategoryWebsite, "site-9", grant.ClearanceUnset))
	h.registry.Register(job.ActionAccessWebsite, &stubExecutor{result: "ok"})

	j, err := h.manager.Submit(context.Background(), models.SubmitJobRequest{
		AgentID:   "agent-1",
		ChannelID: "chan-1",
		Action:    job.ActionAccessWebsite,
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, j.Status)
	assert.Equal(t, "site-9", strv(j.ResourceID))
}

func TestManager_SubmitValidationFailureDenied(t *testing.T) {
	h := newHarness(t)
	h.perms.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryDangerousShell, "su-1", grant.ClearanceIndependent))

	// Dangerous shell without a script: denied before evaluation.
	j, err := h.manager.Submit(context.Background(), models.SubmitJobRequest{
		AgentID:    "agent-1",
		Action:     job.ActionUnsafeExecuteAsDangerousShell,
		ShellKind:  job.ShellKindBash,
		ResourceID: "su-1",
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusDenied, j.Status)
	assert.Contains(t, strv(j.ErrorLog), "script")
}

func TestManager_SubmitPendingAwaitsApproval(t *testing.T) {
	h := newHarness(t)
	h.perms.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, "site-1", grant.ClearanceWhitelistedUser))

	j, err := h.manager.Submit(context.Background(), models.SubmitJobRequest{
		AgentID:    "agent-1",
		Action:     job.ActionAccessWebsite,
		ResourceID: "site-1",
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusAwaitingApproval, j.Status)
	assert.Equal(t, job.EffectiveClearanceWhitelistedUser, j.EffectiveClearance)
}

func TestManager_SubmitPreAuthorizedExecutes(t *testing.T) {
	h := newHarness(t)
	h.perms.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, "site-1", grant.ClearanceWhitelistedUser))
	// The channel's own set carries a matching grant: prior consent.
	h.perms.channels["chan-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, "site-1", grant.ClearanceUnset))
	h.registry.Register(job.ActionAccessWebsite, &stubExecutor{result: "ok"})

	j, err := h.manager.Submit(context.Background(), models.SubmitJobRequest{
		AgentID:       "agent-1",
		ChannelID:     "chan-1",
		Action:        job.ActionAccessWebsite,
		ResourceID:    "site-1",
		SessionUserID: "user-7",
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, j.Status)
	require.NotNil(t, j.ApprovedByUserID)
	assert.Equal(t, "user-7", *j.ApprovedByUserID)
}

func TestManager_ApproveWhitelistedUser(t *testing.T) {
	h := newHarness(t)
	h.perms.agents["agent-1"] = withWhitelistedUser(
		newSet(permissionset.DefaultClearanceUnset,
			newGrant(grant.CategoryWebsite, "site-1", grant.ClearanceWhitelistedUser)),
		"user-2")
	h.registry.Register(job.ActionAccessWebsite, &stubExecutor{result: "done"})

	submitted, err := h.manager.Submit(context.Background(), models.SubmitJobRequest{
		AgentID: "agent-1", Action: job.ActionAccessWebsite, ResourceID: "site-1",
	})
	require.NoError(t, err)
	require.Equal(t, job.StatusAwaitingApproval, submitted.Status)

	approved, err := h.manager.Approve(context.Background(), submitted.ID, models.UserCaller("user-2"))
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, approved.Status)
	require.NotNil(t, approved.ApprovedByUserID)
	assert.Equal(t, "user-2", *approved.ApprovedByUserID)
}

func TestManager_ApproveUnqualifiedLeavesJobUntouched(t *testing.T) {
	h := newHarness(t)
	h.perms.agents["agent-1"] = withWhitelistedUser(
		newSet(permissionset.DefaultClearanceUnset,
			newGrant(grant.CategoryWebsite, "site-1", grant.ClearanceWhitelistedUser)),
		"user-2")

	submitted, err := h.manager.Submit(context.Background(), models.SubmitJobRequest{
		AgentID: "agent-1", Action: job.ActionAccessWebsite, ResourceID: "site-1",
	})
	require.NoError(t, err)

	_, err = h.manager.Approve(context.Background(), submitted.ID, models.UserCaller("stranger"))
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotQualified)

	after, err := h.store.GetJob(context.Background(), submitted.ID, false)
	require.NoError(t, err)
	assert.Equal(t, job.StatusAwaitingApproval, after.Status)
	logs := h.store.logMessages(submitted.ID)
	assert.Contains(t, logs[len(logs)-1], "approver not qualified")

	// A second, whitelisted approver succeeds.
	h.registry.Register(job.ActionAccessWebsite, &stubExecutor{result: "done"})
	approved, err := h.manager.Approve(context.Background(), submitted.ID, models.UserCaller("user-2"))
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, approved.Status)
}

func TestManager_ApprovePermittedAgentRejectsUsers(t *testing.T) {
	h := newHarness(t)
	h.perms.agents["agent-1"] = withWhitelistedUser(
		newSet(permissionset.DefaultClearanceUnset,
			newGrant(grant.CategoryContainer, "c1", grant.ClearancePermittedAgent)),
		"user-2")
	// The approving agent's own set allows the action.
	h.perms.agents["agent-9"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryContainer, "c1", grant.ClearanceIndependent))
	h.registry.Register(job.ActionAccessContainer, &stubExecutor{result: "ok"})

	submitted, err := h.manager.Submit(context.Background(), models.SubmitJobRequest{
		AgentID: "agent-1", Action: job.ActionAccessContainer, ResourceID: "c1",
	})
	require.NoError(t, err)
	require.Equal(t, job.StatusAwaitingApproval, submitted.Status)

	// Even a whitelisted user can never satisfy PermittedAgent.
	_, err = h.manager.Approve(context.Background(), submitted.ID, models.UserCaller("user-2"))
	assert.ErrorIs(t, err, services.ErrNotQualified)

	approved, err := h.manager.Approve(context.Background(), submitted.ID, models.AgentCaller("agent-9"))
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, approved.Status)
	require.NotNil(t, approved.ApprovedByAgentID)
	assert.Equal(t, "agent-9", *approved.ApprovedByAgentID)
}

func TestManager_ApproveTerminalIsIdempotentRejection(t *testing.T) {
	h := newHarness(t)
	h.perms.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, "site-1", grant.ClearanceIndependent))
	h.registry.Register(job.ActionAccessWebsite, &stubExecutor{result: "ok"})

	j, err := h.manager.Submit(context.Background(), models.SubmitJobRequest{
		AgentID: "agent-1", Action: job.ActionAccessWebsite, ResourceID: "site-1",
	})
	require.NoError(t, err)
	require.Equal(t, job.StatusCompleted, j.Status)

	again, err := h.manager.Approve(context.Background(), j.ID, models.UserCaller("user-2"))
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, again.Status)
	logs := h.store.logMessages(j.ID)
	assert.Contains(t, logs[len(logs)-1], "rejected: already completed")
}

func TestManager_CancelAwaitingApproval(t *testing.T) {
	h := newHarness(t)
	h.perms.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, "site-1", grant.ClearanceWhitelistedUser))

	submitted, err := h.manager.Submit(context.Background(), models.SubmitJobRequest{
		AgentID: "agent-1", Action: job.ActionAccessWebsite, ResourceID: "site-1",
	})
	require.NoError(t, err)

	cancelled, err := h.manager.Cancel(context.Background(), submitted.ID, models.UserCaller("user-5"))
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CompletedAt)

	// Second cancel: one warning log, no transition.
	again, err := h.manager.Cancel(context.Background(), submitted.ID, models.UserCaller("user-5"))
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, again.Status)
	logs := h.store.logMessages(submitted.ID)
	assert.Contains(t, logs[len(logs)-1], "rejected: already cancelled")
}

func TestManager_CancelExecutingStopsExecutor(t *testing.T) {
	h := newHarness(t)
	h.perms.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, "site-1", grant.ClearanceIndependent))

	ex := &stubExecutor{started: make(chan struct{}), block: make(chan struct{})}
	h.registry.Register(job.ActionAccessWebsite, ex)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = h.manager.Submit(context.Background(), models.SubmitJobRequest{
			AgentID: "agent-1", Action: job.ActionAccessWebsite, ResourceID: "site-1",
		})
	}()

	select {
	case <-ex.started:
	case <-time.After(2 * time.Second):
		t.Fatal("executor never started")
	}

	// The job id is deterministic in the fake store.
	cancelled, err := h.manager.Cancel(context.Background(), "job-1", models.UserCaller("user-5"))
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, cancelled.Status)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("submit never returned after cancellation")
	}

	final, err := h.store.GetJob(context.Background(), "job-1", false)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, final.Status)
	assert.Nil(t, final.ErrorLog) // no Failed overwrite
}

func TestManager_TranscriptionHandoff(t *testing.T) {
	h := newHarness(t)
	tr := &fakeTranscriber{store: h.store}
	h.manager.SetTranscriber(tr)
	h.perms.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryAudioDevice, "mic-0", grant.ClearanceIndependent))

	j, err := h.manager.Submit(context.Background(), models.SubmitJobRequest{
		AgentID:              "agent-1",
		Action:               job.ActionTranscribeFromAudioDevice,
		ResourceID:           "mic-0",
		TranscriptionModelID: "model-1",
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusExecuting, j.Status)
	assert.Equal(t, []string{"job-1"}, tr.started)

	// Cancel routes through the orchestrator.
	cancelled, err := h.manager.Cancel(context.Background(), j.ID, models.UserCaller("user-1"))
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, cancelled.Status)
	assert.Equal(t, []string{"job-1"}, tr.cancelled)
}

func TestManager_TranscriptionMissingModelDenied(t *testing.T) {
	h := newHarness(t)
	h.manager.SetTranscriber(&fakeTranscriber{store: h.store})
	h.perms.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryAudioDevice, "mic-0", grant.ClearanceIndependent))

	j, err := h.manager.Submit(context.Background(), models.SubmitJobRequest{
		AgentID:    "agent-1",
		Action:     job.ActionTranscribeFromAudioDevice,
		ResourceID: "mic-0",
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusDenied, j.Status)
	assert.Contains(t, strv(j.ErrorLog), "transcription_model_id")
}

func TestManager_StopTranscriptionCompletes(t *testing.T) {
	h := newHarness(t)
	tr := &fakeTranscriber{store: h.store}
	h.manager.SetTranscriber(tr)
	h.perms.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryAudioDevice, "mic-0", grant.ClearanceIndependent))

	j, err := h.manager.Submit(context.Background(), models.SubmitJobRequest{
		AgentID:              "agent-1",
		Action:               job.ActionTranscribeFromAudioDevice,
		ResourceID:           "mic-0",
		TranscriptionModelID: "model-1",
	})
	require.NoError(t, err)
	require.Equal(t, job.StatusExecuting, j.Status)

	stopped, err := h.manager.StopTranscription(context.Background(), j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, stopped.Status)
	assert.Equal(t, []string{"job-1"}, tr.stopped)
}

func TestManager_ExecutorFailureFailsJob(t *testing.T) {
	h := newHarness(t)
	h.perms.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, "site-1", grant.ClearanceIndependent))
	h.registry.Register(job.ActionAccessWebsite, &stubExecutor{err: fmt.Errorf("upstream 503")})

	j, err := h.manager.Submit(context.Background(), models.SubmitJobRequest{
		AgentID: "agent-1", Action: job.ActionAccessWebsite, ResourceID: "site-1",
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, j.Status)
	assert.Contains(t, strv(j.ErrorLog), "upstream 503")
}
