package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/pkg/chat"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeOrchestrator struct {
	submitted []models.SubmitJobRequest
	approved  map[string]models.Caller
	cancelled map[string]models.Caller
	stopErr   error
	submitErr error
	job       *ent.Job
}

func newFakeOrchestrator() *fakeOrchestrator {
	return &fakeOrchestrator{
		approved:  make(map[string]models.Caller),
		cancelled: make(map[string]models.Caller),
		job:       &ent.Job{ID: "job-1", Status: job.StatusCompleted, Action: job.ActionAccessSkill},
	}
}

func (f *fakeOrchestrator) Submit(_ context.Context, req models.SubmitJobRequest) (*ent.Job, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = append(f.submitted, req)
	return f.job, nil
}

func (f *fakeOrchestrator) Approve(_ context.Context, jobID string, approver models.Caller) (*ent.Job, error) {
	f.approved[jobID] = approver
	return f.job, nil
}

func (f *fakeOrchestrator) Cancel(_ context.Context, jobID string, caller models.Caller) (*ent.Job, error) {
	f.cancelled[jobID] = caller
	return f.job, nil
}

func (f *fakeOrchestrator) StopTranscription(_ context.Context, jobID string) (*ent.Job, error) {
	if f.stopErr != nil {
		return nil, f.stopErr
	}
	return f.job, nil
}

type fakeJobReader struct {
	jobs map[string]*ent.Job
	logs map[string][]*ent.JobLogEntry
}

func (f *fakeJobReader) GetJob(_ context.Context, jobID string, _ bool) (*ent.Job, error) {
	j, ok := f.jobs[jobID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobReader) ListJobs(_ context.Context, filters models.JobFilters) (*models.JobListResponse, error) {
	out := make([]*ent.Job, 0, len(f.jobs))
	for _, j := range f.jobs {
		out = append(out, j)
	}
	return &models.JobListResponse{Jobs: out, TotalCount: len(out), Limit: filters.Limit, Offset: filters.Offset}, nil
}

func (f *fakeJobReader) GetLogs(_ context.Context, jobID string) ([]*ent.JobLogEntry, error) {
	if _, ok := f.jobs[jobID]; !ok {
		return nil, services.ErrNotFound
	}
	return f.logs[jobID], nil
}

type fakeSegmentReader struct {
	segments []*ent.TranscriptionSegment
	since    *time.Time
}

func (f *fakeSegmentReader) ListSegments(_ context.Context, _ string) ([]*ent.TranscriptionSegment, error) {
	return f.segments, nil
}

func (f *fakeSegmentReader) SegmentsSince(_ context.Context, _ string, since time.Time) ([]*ent.TranscriptionSegment, error) {
	f.since = &since
	return f.segments, nil
}

type fakeChat struct {
	req    chat.Request
	result *chat.Result
	err    error
}

func (f *fakeChat) Respond(_ context.Context, req chat.Request) (*chat.Result, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type apiFixture struct {
	router   *gin.Engine
	orch     *fakeOrchestrator
	jobs     *fakeJobReader
	segments *fakeSegmentReader
	chat     *fakeChat
}

func setupAPI(t *testing.T) *apiFixture {
	t.Helper()
	orch := newFakeOrchestrator()
	jobs := &fakeJobReader{jobs: make(map[string]*ent.Job), logs: make(map[string][]*ent.JobLogEntry)}
	segments := &fakeSegmentReader{}
	chatEngine := &fakeChat{result: &chat.Result{Response: "hello", Rounds: 1}}

	srv := NewServer(Deps{
		Manager:  orch,
		Jobs:     jobs,
		Segments: segments,
		Chat:     chatEngine,
	})
	router := gin.New()
	srv.RegisterRoutes(router)
	return &apiFixture{router: router, orch: orch, jobs: jobs, segments: segments, chat: chatEngine}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitJob(t *testing.T) {
	fx := setupAPI(t)

	rec := doJSON(t, fx.router, http.MethodPost, "/api/v1/jobs", map[string]any{
		"agent_id":    "agent-1",
		"action":      "access_skill",
		"caller":      map[string]string{"agent_id": "agent-1"},
		"resource_id": "skill-1",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, fx.orch.submitted, 1)
	assert.Equal(t, job.ActionAccessSkill, fx.orch.submitted[0].Action)
	assert.Equal(t, "skill-1", fx.orch.submitted[0].ResourceID)
}

func TestSubmitJobAnonymousCaller(t *testing.T) {
	fx := setupAPI(t)

	rec := doJSON(t, fx.router, http.MethodPost, "/api/v1/jobs", map[string]any{
		"agent_id": "agent-1",
		"action":   "access_skill",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, fx.orch.submitted, 1)
	assert.True(t, fx.orch.submitted[0].Caller.IsZero())
}

func TestApproveJob(t *testing.T) {
	fx := setupAPI(t)

	rec := doJSON(t, fx.router, http.MethodPost, "/api/v1/jobs/job-1/approve", map[string]string{"user_id": "user-7"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.UserCaller("user-7"), fx.orch.approved["job-1"])
}

func TestApproveJobRequiresApprover(t *testing.T) {
	fx := setupAPI(t)

	rec := doJSON(t, fx.router, http.MethodPost, "/api/v1/jobs/job-1/approve", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, fx.orch.approved)
}

func TestCancelJobBodyOptional(t *testing.T) {
	fx := setupAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/job-1/cancel", nil)
	rec := httptest.NewRecorder()
	fx.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	caller, ok := fx.orch.cancelled["job-1"]
	require.True(t, ok)
	assert.True(t, caller.IsZero())
}

func TestStopTranscriptionNotFound(t *testing.T) {
	fx := setupAPI(t)
	fx.orch.stopErr = fmt.Errorf("no live transcription: %w", services.ErrNotFound)

	rec := doJSON(t, fx.router, http.MethodPost, "/api/v1/jobs/job-9/stop", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetJob(t *testing.T) {
	fx := setupAPI(t)
	fx.jobs.jobs["job-1"] = &ent.Job{ID: "job-1", Status: job.StatusExecuting}

	rec := doJSON(t, fx.router, http.MethodGet, "/api/v1/jobs/job-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got ent.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "job-1", got.ID)

	rec = doJSON(t, fx.router, http.MethodGet, "/api/v1/jobs/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobSegmentsSince(t *testing.T) {
	fx := setupAPI(t)
	fx.segments.segments = []*ent.TranscriptionSegment{{ID: "seg-1", Text: "hello"}}

	since := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	rec := doJSON(t, fx.router, http.MethodGet, "/api/v1/jobs/job-1/segments?since="+since.Format(time.RFC3339), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, fx.segments.since)
	assert.True(t, fx.segments.since.Equal(since))
}

func TestJobSegmentsBadSince(t *testing.T) {
	fx := setupAPI(t)

	rec := doJSON(t, fx.router, http.MethodGet, "/api/v1/jobs/job-1/segments?since=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessage(t *testing.T) {
	fx := setupAPI(t)
	fx.chat.result = &chat.Result{
		Response: "all done",
		Jobs:     []*ent.Job{{ID: "job-1"}, {ID: "job-2"}},
		Rounds:   3,
	}

	rec := doJSON(t, fx.router, http.MethodPost, "/api/v1/channels/chan-1/messages", map[string]string{
		"user_id": "user-7",
		"content": "run the report",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "chan-1", fx.chat.req.ChannelID)
	assert.Equal(t, "user-7", fx.chat.req.UserID)

	var resp models.SendMessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "all done", resp.FinalResponse)
	assert.Equal(t, []string{"job-1", "job-2"}, resp.JobIDs)
	assert.Equal(t, 3, resp.Rounds)
}

func TestSendMessageRequiresUserAndContent(t *testing.T) {
	fx := setupAPI(t)

	rec := doJSON(t, fx.router, http.MethodPost, "/api/v1/channels/chan-1/messages", map[string]string{"user_id": "user-7"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
