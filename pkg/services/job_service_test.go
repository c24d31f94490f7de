package services

import (
	"context"
	"testing"
	"time"

	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/ent/joblogentry"
	"github.com/codeready-toolchain/warden/pkg/models"
	testdb "github.com/codeready-toolchain/warden/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobService_CreateJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "")

	t.Run("creates queued job with submission log entry", func(t *testing.T) {
		created, err := service.CreateJob(ctx, models.SubmitJobRequest{
			AgentID:    agent.ID,
			Caller:     models.UserCaller("user-1"),
			Action:     job.ActionAccessSkill,
			ResourceID: "skill-calc",
		})
		require.NoError(t, err)
		assert.Equal(t, job.StatusQueued, created.Status)
		assert.Equal(t, agent.ID, created.AgentID)
		require.NotNil(t, created.CallerUserID)
		assert.Equal(t, "user-1", *created.CallerUserID)
		require.NotNil(t, created.ResourceID)
		assert.Equal(t, "skill-calc", *created.ResourceID)

		logs, err := service.GetLogs(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, joblogentry.SeverityInfo, logs[0].Severity)
		assert.Contains(t, logs[0].Message, "job submitted")
		assert.Equal(t, 1, logs[0].Sequence)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateJob(ctx, models.SubmitJobRequest{
			Action: job.ActionAccessSkill,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = service.CreateJob(ctx, models.SubmitJobRequest{
			AgentID: agent.ID,
			Action:  "open_pod_bay_doors",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown agent", func(t *testing.T) {
		_, err := service.CreateJob(ctx, models.SubmitJobRequest{
			AgentID: uuid.New().String(),
			Caller:  models.UserCaller("user-1"),
			Action:  job.ActionAccessSkill,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestJobService_Transitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "")

	submit := func(t *testing.T) string {
		t.Helper()
		created, err := service.CreateJob(ctx, models.SubmitJobRequest{
			AgentID: agent.ID,
			Caller:  models.UserCaller("user-1"),
			Action:  job.ActionExecuteAsSafeShell,
			Script:  "uptime",
		})
		require.NoError(t, err)
		return created.ID
	}

	t.Run("queued to executing to completed", func(t *testing.T) {
		jobID := submit(t)

		running, err := service.StartExecution(ctx, jobID, nil, "pre-authorized")
		require.NoError(t, err)
		assert.Equal(t, job.StatusExecuting, running.Status)
		require.NotNil(t, running.StartedAt)

		done, err := service.CompleteJob(ctx, jobID, `{"exit_code":0}`)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCompleted, done.Status)
		require.NotNil(t, done.CompletedAt)
		require.NotNil(t, done.ResultData)
		assert.Equal(t, `{"exit_code":0}`, *done.ResultData)

		// One log entry per step, in sequence order
		logs, err := service.GetLogs(ctx, jobID)
		require.NoError(t, err)
		require.Len(t, logs, 3)
		for i, entry := range logs {
			assert.Equal(t, i+1, entry.Sequence)
		}
	})

	t.Run("approval path records the approver", func(t *testing.T) {
		jobID := submit(t)

		waiting, err := service.MarkAwaitingApproval(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusAwaitingApproval, waiting.Status)

		approver := models.UserCaller("approver-1")
		running, err := service.StartExecution(ctx, jobID, &approver, "approved")
		require.NoError(t, err)
		assert.Equal(t, job.StatusExecuting, running.Status)
		require.NotNil(t, running.ApprovedByUserID)
		assert.Equal(t, "approver-1", *running.ApprovedByUserID)
	})

	t.Run("denial records the reason", func(t *testing.T) {
		jobID := submit(t)

		denied, err := service.DenyJob(ctx, jobID, "no grant for resource")
		require.NoError(t, err)
		assert.Equal(t, job.StatusDenied, denied.Status)
		require.NotNil(t, denied.ErrorLog)
		assert.Equal(t, "no grant for resource", *denied.ErrorLog)
		require.NotNil(t, denied.CompletedAt)
	})

	t.Run("terminal jobs reject further transitions", func(t *testing.T) {
		jobID := submit(t)

		_, err := service.StartExecution(ctx, jobID, nil, "")
		require.NoError(t, err)
		_, err = service.CompleteJob(ctx, jobID, "")
		require.NoError(t, err)

		_, err = service.CancelJob(ctx, jobID, "too late")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvariantViolation)
	})

	t.Run("rejects edges outside the state machine", func(t *testing.T) {
		jobID := submit(t)

		// Queued jobs cannot complete without executing first
		_, err := service.CompleteJob(ctx, jobID, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvariantViolation)

		// A queued job cannot be cancelled either; it must pass through
		// evaluation first
		_, err = service.CancelJob(ctx, jobID, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvariantViolation)
	})

	t.Run("unknown job", func(t *testing.T) {
		_, err := service.StartExecution(ctx, uuid.New().String(), nil, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestJobService_MarkEvaluated(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "")
	created, err := service.CreateJob(ctx, models.SubmitJobRequest{
		AgentID: agent.ID,
		Caller:  models.UserCaller("user-1"),
		Action:  job.ActionAccessWebsite,
	})
	require.NoError(t, err)

	// Default-resource resolution fills in the resource alongside the clearance
	err = service.MarkEvaluated(ctx, created.ID, job.EffectiveClearanceWhitelistedUser, "site-intranet")
	require.NoError(t, err)

	reloaded, err := service.GetJob(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, job.EffectiveClearanceWhitelistedUser, reloaded.EffectiveClearance)
	require.NotNil(t, reloaded.ResourceID)
	assert.Equal(t, "site-intranet", *reloaded.ResourceID)
}

func TestJobService_ListJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "")
	other := createTestAgent(t, client.Client, "")

	for i := 0; i < 3; i++ {
		_, err := service.CreateJob(ctx, models.SubmitJobRequest{
			AgentID: agent.ID,
			Caller:  models.UserCaller("user-1"),
			Action:  job.ActionAccessSkill,
		})
		require.NoError(t, err)
	}
	_, err := service.CreateJob(ctx, models.SubmitJobRequest{
		AgentID: other.ID,
		Caller:  models.UserCaller("user-1"),
		Action:  job.ActionQuerySearchEngine,
	})
	require.NoError(t, err)

	t.Run("filters by agent", func(t *testing.T) {
		resp, err := service.ListJobs(ctx, models.JobFilters{AgentID: agent.ID})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Jobs, 3)
	})

	t.Run("filters by action", func(t *testing.T) {
		resp, err := service.ListJobs(ctx, models.JobFilters{Action: string(job.ActionQuerySearchEngine)})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
	})

	t.Run("paginates with total count", func(t *testing.T) {
		resp, err := service.ListJobs(ctx, models.JobFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)
		assert.Len(t, resp.Jobs, 2)
		assert.Equal(t, 2, resp.Limit)

		rest, err := service.ListJobs(ctx, models.JobFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, rest.Jobs, 2)
		assert.Equal(t, 2, rest.Offset)
	})
}

func TestJobService_PurgeTerminalJobsBefore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "")

	finish := func(t *testing.T) string {
		t.Helper()
		created, err := service.CreateJob(ctx, models.SubmitJobRequest{
			AgentID: agent.ID,
			Caller:  models.UserCaller("user-1"),
			Action:  job.ActionAccessSkill,
		})
		require.NoError(t, err)
		_, err = service.StartExecution(ctx, created.ID, nil, "")
		require.NoError(t, err)
		_, err = service.CompleteJob(ctx, created.ID, "ok")
		require.NoError(t, err)
		return created.ID
	}

	oldJob := finish(t)
	freshJob := finish(t)

	// Backdate one job past the retention window
	err := client.Job.UpdateOneID(oldJob).
		SetCompletedAt(time.Now().Add(-48 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	n, err := service.PurgeTerminalJobsBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = service.GetJob(ctx, oldJob, false)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = service.GetJob(ctx, freshJob, false)
	require.NoError(t, err)

	// Log entries cascade with the purged job
	logs, err := service.GetLogs(ctx, oldJob)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestJobService_ReconcileOrphanedTranscriptions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewJobService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "")

	orphan, err := service.CreateJob(ctx, models.SubmitJobRequest{
		AgentID: agent.ID,
		Caller:  models.UserCaller("user-1"),
		Action:  job.ActionTranscribeFromAudioDevice,
	})
	require.NoError(t, err)

	bystander, err := service.CreateJob(ctx, models.SubmitJobRequest{
		AgentID: agent.ID,
		Caller:  models.UserCaller("user-1"),
		Action:  job.ActionAccessSkill,
	})
	require.NoError(t, err)

	n, err := service.ReconcileOrphanedTranscriptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	reconciled, err := service.GetJob(ctx, orphan.ID, false)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, reconciled.Status)
	require.NotNil(t, reconciled.CompletedAt)

	logs, err := service.GetLogs(ctx, orphan.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, joblogentry.SeverityWarning, logs[1].Severity)
	assert.Contains(t, logs[1].Message, "reconciled at startup")

	untouched, err := service.GetJob(ctx, bystander.ID, false)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, untouched.Status)

	// Second run finds nothing
	n, err = service.ReconcileOrphanedTranscriptions(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
