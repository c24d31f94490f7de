package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/warden/pkg/models"
)

// callerBody identifies the approving or cancelling principal.
type callerBody struct {
	UserID  string `json:"user_id"`
	AgentID string `json:"agent_id"`
}

func (b callerBody) caller() models.Caller {
	return models.Caller{UserID: b.UserID, AgentID: b.AgentID}
}

// submitJobHandler handles POST /api/v1/jobs. The caller is optional: an
// anonymous submission parks at awaiting_approval when the clearance needs
// one, since nobody qualified as the approver at submit time.
func (s *Server) submitJobHandler(c *gin.Context) {
	var req models.SubmitJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	j, err := s.deps.Manager.Submit(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	// Denials are a recorded outcome, not a transport error.
	c.JSON(http.StatusCreated, j)
}

// approveJobHandler handles POST /api/v1/jobs/:id/approve.
func (s *Server) approveJobHandler(c *gin.Context) {
	var body callerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.caller().IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "approver is required"})
		return
	}

	j, err := s.deps.Manager.Approve(c.Request.Context(), c.Param("id"), body.caller())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

// cancelJobHandler handles POST /api/v1/jobs/:id/cancel. The body is
// optional; an empty caller records a system cancellation.
func (s *Server) cancelJobHandler(c *gin.Context) {
	var body callerBody
	_ = c.ShouldBindJSON(&body)

	j, err := s.deps.Manager.Cancel(c.Request.Context(), c.Param("id"), body.caller())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

// stopTranscriptionHandler handles POST /api/v1/jobs/:id/stop: a clean end
// of a live transcription, distinct from cancel.
func (s *Server) stopTranscriptionHandler(c *gin.Context) {
	j, err := s.deps.Manager.StopTranscription(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

// getJobHandler handles GET /api/v1/jobs/:id.
func (s *Server) getJobHandler(c *gin.Context) {
	withEdges := c.Query("with_edges") == "true"
	j, err := s.deps.Jobs.GetJob(c.Request.Context(), c.Param("id"), withEdges)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

// listJobsHandler handles GET /api/v1/jobs.
func (s *Server) listJobsHandler(c *gin.Context) {
	filters := models.JobFilters{
		Status:    c.Query("status"),
		Action:    c.Query("action"),
		AgentID:   c.Query("agent_id"),
		ChannelID: c.Query("channel_id"),
		Limit:     25,
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	resp, err := s.deps.Jobs.ListJobs(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// jobLogsHandler handles GET /api/v1/jobs/:id/logs.
func (s *Server) jobLogsHandler(c *gin.Context) {
	logs, err := s.deps.Jobs.GetLogs(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job_id": c.Param("id"), "logs": logs})
}

// jobSegmentsHandler handles GET /api/v1/jobs/:id/segments. The since
// parameter (RFC3339) enables catch-up after a missed websocket event.
func (s *Server) jobSegmentsHandler(c *gin.Context) {
	jobID := c.Param("id")

	if sinceParam := c.Query("since"); sinceParam != "" {
		since, err := time.Parse(time.RFC3339Nano, sinceParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be RFC3339"})
			return
		}
		segs, err := s.deps.Segments.SegmentsSince(c.Request.Context(), jobID, since)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"job_id": jobID, "segments": segs})
		return
	}

	segs, err := s.deps.Segments.ListSegments(c.Request.Context(), jobID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job_id": jobID, "segments": segs})
}
