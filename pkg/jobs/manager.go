// Package jobs drives the job lifecycle: submission, clearance evaluation,
// approval, execution dispatch, and cancellation.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/ent/joblogentry"
	"github.com/codeready-toolchain/warden/pkg/events"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/permissions"
	"github.com/codeready-toolchain/warden/pkg/services"
)

// JobStore is the persistence surface the manager drives. Implemented by
// services.JobService.
type JobStore interface {
	CreateJob(ctx context.Context, req models.SubmitJobRequest) (*ent.Job, error)
	GetJob(ctx context.Context, jobID string, withEdges bool) (*ent.Job, error)
	MarkEvaluated(ctx context.Context, jobID string, clearance job.EffectiveClearance, resourceID string) error
	MarkAwaitingApproval(ctx context.Context, jobID string) (*ent.Job, error)
	StartExecution(ctx context.Context, jobID string, approver *models.Caller, note string) (*ent.Job, error)
	CompleteJob(ctx context.Context, jobID, resultData string) (*ent.Job, error)
	FailJob(ctx context.Context, jobID, errorLog string) (*ent.Job, error)
	DenyJob(ctx context.Context, jobID, reason string) (*ent.Job, error)
	CancelJob(ctx context.Context, jobID, note string) (*ent.Job, error)
	AppendLog(ctx context.Context, jobID string, severity joblogentry.Severity, message string) error
}

// Transcriber is the transcription orchestrator surface the manager hands
// transcription-kind jobs to. The orchestrator owns those jobs' terminal
// transitions. Implemented by transcribe.Orchestrator.
type Transcriber interface {
	Start(ctx context.Context, j *ent.Job) error
	// Stop ends a live stream that ran its course: the job completes.
	Stop(ctx context.Context, jobID string) error
	// Cancel aborts a live stream: the job is cancelled.
	Cancel(ctx context.Context, jobID string) error
}

// Manager drives jobs through the state machine. Execution is synchronous:
// Submit and Approve return after the executor finishes (transcription kinds
// excepted, which stay Executing while their stream runs).
type Manager struct {
	store     JobStore
	perms     permissions.Store
	evaluator *permissions.Evaluator
	resolver  *permissions.DefaultResolver
	preauth   *permissions.PreAuthorizer
	registry  *Registry
	publisher *events.EventPublisher
	logger    *slog.Logger

	// transcriber is set after construction: the orchestrator needs the
	// JobStore that the manager wraps.
	transcriber   Transcriber
	transcriberMu sync.RWMutex

	// Cancel functions of in-flight executors, by job id.
	running   map[string]context.CancelFunc
	runningMu sync.Mutex
}

// NewManager creates a Manager.
func NewManager(store JobStore, perms permissions.Store, registry *Registry, publisher *events.EventPublisher) *Manager {
	evaluator := permissions.NewEvaluator(perms)
	return &Manager{
		store:     store,
		perms:     perms,
		evaluator: evaluator,
		resolver:  permissions.NewDefaultResolver(perms),
		preauth:   permissions.NewPreAuthorizer(perms, evaluator),
		registry:  registry,
		publisher: publisher,
		logger:    slog.Default().With("component", "jobs.manager"),
		running:   make(map[string]context.CancelFunc),
	}
}

// SetTranscriber wires the transcription orchestrator. Called once during
// startup, after the orchestrator is constructed.
func (m *Manager) SetTranscriber(t Transcriber) {
	m.transcriberMu.Lock()
	defer m.transcriberMu.Unlock()
	m.transcriber = t
}

func (m *Manager) getTranscriber() Transcriber {
	m.transcriberMu.RLock()
	defer m.transcriberMu.RUnlock()
	return m.transcriber
}

func isTranscriptionAction(action job.Action) bool {
	switch action {
	case job.ActionTranscribeFromAudioDevice,
		job.ActionTranscribeFromAudioStream,
		job.ActionTranscribeFromAudioFile:
		return true
	}
	return false
}

// Submit validates the submission, resolves a missing resource, creates the
// job, evaluates clearance, and routes by verdict: Approved jobs execute,
// Pending jobs await approval unless the channel pre-authorizes them, Denied
// jobs finish denied. The returned job reflects the final state.
func (m *Manager) Submit(ctx context.Context, req models.SubmitJobRequest) (*ent.Job, error) {
	if req.SessionUserID == "" && req.Caller.IsUser() {
		req.SessionUserID = req.Caller.UserID
	}

	// Default-resource resolution before the job is persisted, so the
	// resolved resource is recorded on the row from the start.
	if req.ResourceID == "" {
		if _, perResource := permissions.CategoryFor(req.Action); perResource {
			resolved, err := m.resolver.Resolve(ctx, req.ChannelID, req.AgentID, req.Action)
			if err != nil {
				return nil, fmt.Errorf("resolving default resource: %w", err)
			}
			req.ResourceID = resolved
		}
	}

	j, err := m.store.CreateJob(ctx, req)
	if err != nil {
		return nil, err
	}
	logger := m.logger.With("job_id", j.ID, "action", j.Action, "agent_id", j.AgentID)
	logger.Info("Job submitted")

	// Payload validation denies the job instead of surfacing a transport
	// error: the submission was accepted, the action cannot run.
	if ex, ok := m.registry.Get(req.Action); ok {
		if verr := ex.Validate(j); verr != nil {
			return m.deny(ctx, logger, j, verr.Error())
		}
	} else if !isTranscriptionAction(req.Action) {
		return m.deny(ctx, logger, j, fmt.Sprintf("no executor for action %s", req.Action))
	}
	if isTranscriptionAction(req.Action) {
		if verr := validateTranscription(j); verr != nil {
			return m.deny(ctx, logger, j, verr.Error())
		}
	}

	verdict, err := m.evaluator.Evaluate(ctx, req.AgentID, req.Action, req.ResourceID, req.Caller)
	if err != nil {
		return nil, fmt.Errorf("evaluating clearance: %w", err)
	}

	// Denials carry no effective clearance, so the evaluation record is
	// written only for verdicts that keep the job alive.
	if verdict.Decision == permissions.DecisionDenied {
		return m.deny(ctx, logger, j, verdict.Reason)
	}
	if err := m.store.MarkEvaluated(ctx, j.ID, verdict.EffectiveClearance, req.ResourceID); err != nil {
		return nil, err
	}

	switch verdict.Decision {
	case permissions.DecisionApproved:
		approver := approverFor(req, verdict)
		logger.Info("Job approved at evaluation",
			"clearance", verdict.EffectiveClearance, "rule", verdict.Reason)
		return m.startAndExecute(ctx, logger, j.ID, approver, verdict.Reason)

	case permissions.DecisionPending:
		ok, err := m.preauth.PreAuthorize(ctx, req.ChannelID, req.SessionUserID, req.Action, req.ResourceID, verdict.EffectiveClearance)
		if err != nil {
			return nil, fmt.Errorf("checking pre-authorization: %w", err)
		}
		if ok {
			approver := models.UserCaller(req.SessionUserID)
			logger.Info("Job pre-authorized by channel", "session_user_id", req.SessionUserID)
			return m.startAndExecute(ctx, logger, j.ID, &approver, "pre-authorized by channel")
		}

		updated, err := m.store.MarkAwaitingApproval(ctx, j.ID)
		if err != nil {
			return nil, err
		}
		logger.Info("Job awaiting approval", "clearance", verdict.EffectiveClearance)
		m.publishStatus(updated)
		return updated, nil
	}

	return nil, fmt.Errorf("unknown verdict %q: %w", verdict.Decision, services.ErrInvariantViolation)
}

// approverFor picks the recorded approver for an evaluation-time approval:
// the caller when the caller qualified, the acting agent itself for
// independent clearance.
func approverFor(req models.SubmitJobRequest, verdict *permissions.Verdict) *models.Caller {
	if verdict.EffectiveClearance == job.EffectiveClearanceIndependent {
		c := models.AgentCaller(req.AgentID)
		return &c
	}
	c := req.Caller
	return &c
}

// Approve decides an AwaitingApproval job. The approver is re-checked
// against the effective clearance recorded at evaluation; a qualified
// approver moves the job to Executing and the executor runs. Terminal jobs
// get the idempotent rejection; an unqualified approver leaves the job
// untouched and returns ErrNotQualified.
func (m *Manager) Approve(ctx context.Context, jobID string, approver models.Caller) (*ent.Job, error) {
	j, err := m.store.GetJob(ctx, jobID, false)
	if err != nil {
		return nil, err
	}
	logger := m.logger.With("job_id", j.ID, "action", j.Action)

	if services.IsTerminalStatus(j.Status) || j.Status == job.StatusExecuting {
		if err := m.store.AppendLog(ctx, j.ID, joblogentry.SeverityWarning,
			fmt.Sprintf("rejected: already %s", j.Status)); err != nil {
			return nil, err
		}
		logger.Warn("Approval rejected", "status", j.Status)
		return j, nil
	}
	if j.Status != job.StatusAwaitingApproval {
		return nil, fmt.Errorf("job %s is %s, not awaiting approval: %w", j.ID, j.Status, services.ErrInvariantViolation)
	}

	agentSet, err := m.perms.GetAgentPermissionSet(ctx, j.AgentID)
	if err != nil {
		if errors.Is(err, services.ErrNoRole) || errors.Is(err, services.ErrNotFound) {
			return nil, fmt.Errorf("agent %s lost its role since evaluation: %w", j.AgentID, services.ErrInvariantViolation)
		}
		return nil, fmt.Errorf("loading agent permission set: %w", err)
	}

	ok, rule, err := m.evaluator.Satisfies(ctx, approver, agentSet, j.Action, strv(j.ResourceID), j.EffectiveClearance)
	if err != nil {
		return nil, err
	}
	if !ok {
		if err := m.store.AppendLog(ctx, j.ID, joblogentry.SeverityWarning,
			fmt.Sprintf("approver not qualified: %s", rule)); err != nil {
			return nil, err
		}
		logger.Warn("Approver not qualified", "rule", rule)
		return j, fmt.Errorf("%s: %w", rule, services.ErrNotQualified)
	}

	logger.Info("Job approved", "rule", rule)
	return m.startAndExecute(ctx, logger, j.ID, &approver, rule)
}

// Cancel aborts a job awaiting approval or executing. For executing jobs the
// executor's context is cancelled before the transition; transcription jobs
// are cancelled through the orchestrator, which owns their lifecycle.
// Terminal jobs get the idempotent rejection.
func (m *Manager) Cancel(ctx context.Context, jobID string, caller models.Caller) (*ent.Job, error) {
	j, err := m.store.GetJob(ctx, jobID, false)
	if err != nil {
		return nil, err
	}
	logger := m.logger.With("job_id", j.ID, "action", j.Action)

	if services.IsTerminalStatus(j.Status) {
		if err := m.store.AppendLog(ctx, j.ID, joblogentry.SeverityWarning,
			fmt.Sprintf("rejected: already %s", j.Status)); err != nil {
			return nil, err
		}
		logger.Warn("Cancellation rejected", "status", j.Status)
		return j, nil
	}

	note := cancelNote(caller)

	if j.Status == job.StatusExecuting {
		if isTranscriptionAction(j.Action) {
			if t := m.getTranscriber(); t != nil {
				if err := t.Cancel(ctx, j.ID); err != nil && !errors.Is(err, services.ErrNotFound) {
					return nil, fmt.Errorf("stopping transcription: %w", err)
				}
				return m.store.GetJob(ctx, j.ID, false)
			}
		}
		m.cancelRunning(j.ID)
	}

	cancelled, err := m.store.CancelJob(ctx, j.ID, note)
	if err != nil {
		if errors.Is(err, services.ErrInvariantViolation) || errors.Is(err, services.ErrConcurrentModification) {
			// The executor finished between our read and the transition.
			return m.store.GetJob(ctx, j.ID, false)
		}
		return nil, err
	}
	logger.Info("Job cancelled")
	m.publishStatus(cancelled)
	return cancelled, nil
}

// StopTranscription ends a live transcription stream that ran its course.
func (m *Manager) StopTranscription(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := m.store.GetJob(ctx, jobID, false)
	if err != nil {
		return nil, err
	}
	if !isTranscriptionAction(j.Action) {
		return nil, services.NewValidationError("job_id", "not a transcription job")
	}
	if services.IsTerminalStatus(j.Status) {
		if err := m.store.AppendLog(ctx, j.ID, joblogentry.SeverityWarning,
			fmt.Sprintf("rejected: already %s", j.Status)); err != nil {
			return nil, err
		}
		return j, nil
	}

	t := m.getTranscriber()
	if t == nil {
		return nil, fmt.Errorf("no transcription orchestrator wired: %w", services.ErrInvariantViolation)
	}
	if err := t.Stop(ctx, jobID); err != nil {
		return nil, err
	}
	return m.store.GetJob(ctx, jobID, false)
}

// deny finishes a job as denied and reports the final row.
func (m *Manager) deny(ctx context.Context, logger *slog.Logger, j *ent.Job, reason string) (*ent.Job, error) {
	denied, err := m.store.DenyJob(ctx, j.ID, reason)
	if err != nil {
		return nil, err
	}
	logger.Warn("Job denied", "reason", reason)
	m.publishStatus(denied)
	return denied, nil
}

// startAndExecute transitions to Executing and dispatches. Transcription
// kinds start their stream and stay Executing; everything else runs inline
// to a terminal state.
func (m *Manager) startAndExecute(ctx context.Context, logger *slog.Logger, jobID string, approver *models.Caller, note string) (*ent.Job, error) {
	started, err := m.store.StartExecution(ctx, jobID, approver, note)
	if err != nil {
		return nil, err
	}
	m.publishStatus(started)

	if isTranscriptionAction(started.Action) {
		t := m.getTranscriber()
		if t == nil {
			return m.fail(logger, started.ID, "no transcription orchestrator wired")
		}
		if err := t.Start(context.WithoutCancel(ctx), started); err != nil {
			return m.fail(logger, started.ID, fmt.Sprintf("starting transcription: %v", err))
		}
		logger.Info("Transcription stream started")
		return m.store.GetJob(ctx, started.ID, false)
	}

	ex, ok := m.registry.Get(started.Action)
	if !ok {
		return m.fail(logger, started.ID, fmt.Sprintf("no executor for action %s", started.Action))
	}
	return m.execute(logger, started, ex)
}

// execute runs the executor under a cancellable background context.
// Detached from the request context so an approved job is not killed by the
// submitter disconnecting; Cancel is the only external stop signal.
func (m *Manager) execute(logger *slog.Logger, j *ent.Job, ex Executor) (*ent.Job, error) {
	execCtx, cancel := context.WithCancel(context.Background())
	m.runningMu.Lock()
	m.running[j.ID] = cancel
	m.runningMu.Unlock()
	defer func() {
		m.runningMu.Lock()
		delete(m.running, j.ID)
		m.runningMu.Unlock()
		cancel()
	}()

	start := time.Now()
	result, err := ex.Execute(execCtx, j)
	ctx := context.Background()

	if execCtx.Err() != nil {
		// Cancel transitioned the job; the executor's outcome is moot.
		logger.Info("Executor stopped by cancellation", "duration", time.Since(start))
		return m.store.GetJob(ctx, j.ID, false)
	}
	if err != nil {
		return m.fail(logger, j.ID, err.Error())
	}

	completed, cerr := m.store.CompleteJob(ctx, j.ID, result)
	if cerr != nil {
		if errors.Is(cerr, services.ErrInvariantViolation) || errors.Is(cerr, services.ErrConcurrentModification) {
			return m.store.GetJob(ctx, j.ID, false)
		}
		return nil, cerr
	}
	logger.Info("Job completed", "duration", time.Since(start))
	m.publishStatus(completed)
	return completed, nil
}

func (m *Manager) fail(logger *slog.Logger, jobID, errorLog string) (*ent.Job, error) {
	failed, err := m.store.FailJob(context.Background(), jobID, errorLog)
	if err != nil {
		if errors.Is(err, services.ErrInvariantViolation) || errors.Is(err, services.ErrConcurrentModification) {
			return m.store.GetJob(context.Background(), jobID, false)
		}
		return nil, err
	}
	logger.Error("Job failed", "error", errorLog)
	m.publishStatus(failed)
	return failed, nil
}

func (m *Manager) cancelRunning(jobID string) {
	m.runningMu.Lock()
	cancel, ok := m.running[jobID]
	if ok {
		delete(m.running, jobID)
	}
	m.runningMu.Unlock()
	if ok {
		cancel()
	}
}

func (m *Manager) publishStatus(j *ent.Job) {
	if m.publisher == nil {
		return
	}
	if err := m.publisher.PublishJobStatus(events.JobStatusPayload{
		JobID:              j.ID,
		Status:             j.Status,
		Action:             j.Action,
		AgentID:            j.AgentID,
		EffectiveClearance: j.EffectiveClearance,
		Timestamp:          time.Now().UTC().Format(time.RFC3339Nano),
	}); err != nil {
		m.logger.Warn("Failed to publish job status", "job_id", j.ID, "error", err)
	}
}

func cancelNote(caller models.Caller) string {
	switch {
	case caller.IsUser():
		return fmt.Sprintf("cancelled by user %s", caller.UserID)
	case caller.IsAgent():
		return fmt.Sprintf("cancelled by agent %s", caller.AgentID)
	}
	return "cancelled"
}

// validateTranscription checks the transcription payload: the model is
// required; device/stream/file identity rides in resource_id and is checked
// by evaluation.
func validateTranscription(j *ent.Job) error {
	if strv(j.TranscriptionModelID) == "" {
		return services.NewValidationError("transcription_model_id", "required")
	}
	return nil
}
