package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/ent/joblogentry"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/google/uuid"
)

// allowedTransitions is the job state machine. Statuses absent from the map
// are terminal: nothing leaves them.
var allowedTransitions = map[job.Status][]job.Status{
	job.StatusQueued:           {job.StatusAwaitingApproval, job.StatusDenied, job.StatusExecuting},
	job.StatusAwaitingApproval: {job.StatusExecuting, job.StatusDenied, job.StatusCancelled},
	job.StatusExecuting:        {job.StatusCompleted, job.StatusFailed, job.StatusCancelled},
}

// IsTerminalStatus reports whether a job status is final.
func IsTerminalStatus(status job.Status) bool {
	switch status {
	case job.StatusCompleted, job.StatusFailed, job.StatusDenied, job.StatusCancelled:
		return true
	}
	return false
}

func transitionAllowed(from, to job.Status) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// JobService manages job rows, their state machine, and their append-only
// log and segment trails.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// CreateJob validates the submission and persists the job in Queued state
// with its first log entry.
func (s *JobService) CreateJob(httpCtx context.Context, req models.SubmitJobRequest) (*ent.Job, error) {
	if req.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	if err := job.ActionValidator(req.Action); err != nil {
		return nil, NewValidationError("action", fmt.Sprintf("unknown action kind %q", req.Action))
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.Job.Create().
		SetID(uuid.New().String()).
		SetAgentID(req.AgentID).
		SetAction(req.Action).
		SetStatus(job.StatusQueued)

	if req.ChannelID != "" {
		builder.SetChannelID(req.ChannelID)
	}
	if req.Caller.IsUser() {
		builder.SetCallerUserID(req.Caller.UserID)
	}
	if req.Caller.IsAgent() {
		builder.SetCallerAgentID(req.Caller.AgentID)
	}
	if req.ResourceID != "" {
		builder.SetResourceID(req.ResourceID)
	}
	if req.ShellKind != "" {
		builder.SetShellKind(req.ShellKind)
	}
	if req.Script != "" {
		builder.SetScript(req.Script)
	}
	if req.WorkingDirectory != "" {
		builder.SetWorkingDirectory(req.WorkingDirectory)
	}
	if req.TranscriptionModelID != "" {
		builder.SetTranscriptionModelID(req.TranscriptionModelID)
	}
	if req.Language != "" {
		builder.SetLanguage(req.Language)
	}
	if req.Payload != nil {
		builder.SetPayload(req.Payload)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("job references a missing entity: %w", ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	if err := appendLogTx(ctx, tx, created.ID, joblogentry.SeverityInfo,
		fmt.Sprintf("job submitted: action=%s", req.Action)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

// GetJob retrieves a job by ID with optional edge loading
func (s *JobService) GetJob(ctx context.Context, jobID string, withEdges bool) (*ent.Job, error) {
	query := s.client.Job.Query().Where(job.IDEQ(jobID))

	if withEdges {
		query = query.
			WithLogEntries(func(q *ent.JobLogEntryQuery) {
				q.Order(ent.Asc(joblogentry.FieldCreatedAt), ent.Asc(joblogentry.FieldSequence))
			}).
			WithAgent()
	}

	j, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return j, nil
}

// ListJobs lists jobs with filtering and pagination
func (s *JobService) ListJobs(ctx context.Context, filters models.JobFilters) (*models.JobListResponse, error) {
	query := s.client.Job.Query()

	if filters.Status != "" {
		query = query.Where(job.StatusEQ(job.Status(filters.Status)))
	}
	if filters.Action != "" {
		query = query.Where(job.ActionEQ(job.Action(filters.Action)))
	}
	if filters.AgentID != "" {
		query = query.Where(job.AgentIDEQ(filters.AgentID))
	}
	if filters.ChannelID != "" {
		query = query.Where(job.ChannelIDEQ(filters.ChannelID))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	jobs, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return &models.JobListResponse{
		Jobs:       jobs,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// MarkEvaluated records the evaluation outcome on the job: the effective
// clearance and the (possibly default-resolved) resource.
func (s *JobService) MarkEvaluated(ctx context.Context, jobID string, clearance job.EffectiveClearance, resourceID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Job.UpdateOneID(jobID).
		SetEffectiveClearance(clearance)
	if resourceID != "" {
		update = update.SetResourceID(resourceID)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record evaluation: %w", err)
	}
	return nil
}

// MarkAwaitingApproval moves a queued job into the approval queue.
func (s *JobService) MarkAwaitingApproval(ctx context.Context, jobID string) (*ent.Job, error) {
	return s.transition(ctx, jobID, job.StatusAwaitingApproval, joblogentry.SeverityInfo, "awaiting approval", nil)
}

// StartExecution moves a job into Executing. The approver, when present, is
// recorded on the job; pre-authorized and independent approvals pass the
// acting principal here.
func (s *JobService) StartExecution(ctx context.Context, jobID string, approver *models.Caller, note string) (*ent.Job, error) {
	return s.transition(ctx, jobID, job.StatusExecuting, joblogentry.SeverityInfo, note, func(u *ent.JobUpdate) {
		u.SetStartedAt(time.Now())
		if approver != nil {
			if approver.IsUser() {
				u.SetApprovedByUserID(approver.UserID)
			}
			if approver.IsAgent() {
				u.SetApprovedByAgentID(approver.AgentID)
			}
		}
	})
}

// CompleteJob finishes a job successfully with its result data.
func (s *JobService) CompleteJob(ctx context.Context, jobID, resultData string) (*ent.Job, error) {
	return s.transition(ctx, jobID, job.StatusCompleted, joblogentry.SeverityInfo, "completed", func(u *ent.JobUpdate) {
		if resultData != "" {
			u.SetResultData(resultData)
		}
	})
}

// FailJob finishes a job with an execution failure.
func (s *JobService) FailJob(ctx context.Context, jobID, errorLog string) (*ent.Job, error) {
	return s.transition(ctx, jobID, job.StatusFailed, joblogentry.SeverityError, errorLog, func(u *ent.JobUpdate) {
		if errorLog != "" {
			u.SetErrorLog(errorLog)
		}
	})
}

// DenyJob finishes a job as denied with the denial reason.
func (s *JobService) DenyJob(ctx context.Context, jobID, reason string) (*ent.Job, error) {
	return s.transition(ctx, jobID, job.StatusDenied, joblogentry.SeverityWarning, reason, func(u *ent.JobUpdate) {
		if reason != "" {
			u.SetErrorLog(reason)
		}
	})
}

// CancelJob finishes a job as cancelled.
func (s *JobService) CancelJob(ctx context.Context, jobID, note string) (*ent.Job, error) {
	return s.transition(ctx, jobID, job.StatusCancelled, joblogentry.SeverityInfo, note, nil)
}

// transition performs a guarded status change: the row only moves if it is
// still in the status read inside the transaction, the state machine allows
// the edge, and the source is not terminal. Every successful transition
// appends one log entry in the same transaction.
func (s *JobService) transition(ctx context.Context, jobID string, to job.Status, severity joblogentry.Severity, note string, mutate func(*ent.JobUpdate)) (*ent.Job, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := tx.Job.Get(writeCtx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}

	if IsTerminalStatus(current.Status) {
		return nil, fmt.Errorf("job %s is already %s: %w", jobID, current.Status, ErrInvariantViolation)
	}
	if !transitionAllowed(current.Status, to) {
		return nil, fmt.Errorf("transition %s -> %s not allowed: %w", current.Status, to, ErrInvariantViolation)
	}

	update := tx.Job.Update().
		Where(job.IDEQ(jobID), job.StatusEQ(current.Status)).
		SetStatus(to)
	if IsTerminalStatus(to) {
		update.SetCompletedAt(time.Now())
	}
	if mutate != nil {
		mutate(update)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}
	if count == 0 {
		// Another caller moved the job between our read and write.
		return nil, ErrConcurrentModification
	}

	message := fmt.Sprintf("status: %s -> %s", current.Status, to)
	if note != "" {
		message = fmt.Sprintf("%s (%s)", message, note)
	}
	if err := appendLogTx(writeCtx, tx, jobID, severity, message); err != nil {
		return nil, err
	}

	updated, err := tx.Job.Get(writeCtx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return updated, nil
}

// AppendLog appends a standalone log entry outside a transition (denial
// reasons, idempotent-rejection warnings, executor diagnostics).
func (s *JobService) AppendLog(ctx context.Context, jobID string, severity joblogentry.Severity, message string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := appendLogTx(writeCtx, tx, jobID, severity, message); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// appendLogTx writes the next log entry for a job inside tx. Sequence is a
// per-job counter; appends for one job are serialized by its lifecycle
// owner, so count+1 is stable here.
func appendLogTx(ctx context.Context, tx *ent.Tx, jobID string, severity joblogentry.Severity, message string) error {
	n, err := tx.JobLogEntry.Query().
		Where(joblogentry.JobIDEQ(jobID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count log entries: %w", err)
	}

	_, err = tx.JobLogEntry.Create().
		SetID(uuid.New().String()).
		SetJobID(jobID).
		SetSeverity(severity).
		SetMessage(message).
		SetSequence(n + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append log entry: %w", err)
	}
	return nil
}

// GetLogs returns a job's log entries in append order.
func (s *JobService) GetLogs(ctx context.Context, jobID string) ([]*ent.JobLogEntry, error) {
	logs, err := s.client.JobLogEntry.Query().
		Where(joblogentry.JobIDEQ(jobID)).
		Order(ent.Asc(joblogentry.FieldCreatedAt), ent.Asc(joblogentry.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list log entries: %w", err)
	}
	return logs, nil
}

// ReconcileOrphanedTranscriptions cancels transcription jobs persisted as
// live. Runs at startup before any work is accepted; it bypasses the runtime
// state machine because a queued orphan has no legal edge to Cancelled.
func (s *JobService) ReconcileOrphanedTranscriptions(ctx context.Context) (int, error) {
	orphans, err := s.FindActiveTranscriptionJobs(ctx)
	if err != nil {
		return 0, err
	}
	if len(orphans) == 0 {
		return 0, nil
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for _, orphan := range orphans {
		err := tx.Job.UpdateOneID(orphan.ID).
			SetStatus(job.StatusCancelled).
			SetCompletedAt(time.Now()).
			Exec(writeCtx)
		if err != nil {
			return 0, fmt.Errorf("failed to reconcile job %s: %w", orphan.ID, err)
		}
		if err := appendLogTx(writeCtx, tx, orphan.ID, joblogentry.SeverityWarning,
			fmt.Sprintf("reconciled at startup: live stream did not survive restart (was %s)", orphan.Status)); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return len(orphans), nil
}

// PurgeTerminalJobsBefore deletes terminal jobs completed before the cutoff.
// Log entries and segments cascade with the job rows.
func (s *JobService) PurgeTerminalJobsBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Job.Delete().
		Where(
			job.StatusIn(job.StatusCompleted, job.StatusFailed, job.StatusDenied, job.StatusCancelled),
			job.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge terminal jobs: %w", err)
	}
	return n, nil
}

// FindActiveTranscriptionJobs returns transcription jobs persisted as live
// (queued or executing). Used by startup reconciliation: streams do not
// survive a restart.
func (s *JobService) FindActiveTranscriptionJobs(ctx context.Context) ([]*ent.Job, error) {
	jobs, err := s.client.Job.Query().
		Where(
			job.ActionIn(
				job.ActionTranscribeFromAudioDevice,
				job.ActionTranscribeFromAudioStream,
				job.ActionTranscribeFromAudioFile,
			),
			job.StatusIn(job.StatusQueued, job.StatusExecuting),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find active transcription jobs: %w", err)
	}
	return jobs, nil
}
