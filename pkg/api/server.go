// Package api is the gin HTTP surface: job submission and approval, chat,
// websocket subscriptions, and the admin CRUD for the permission directory.
package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/pkg/chat"
	"github.com/codeready-toolchain/warden/pkg/events"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/secrets"
	"github.com/codeready-toolchain/warden/pkg/services"
)

// JobOrchestrator drives the job state machine. Implemented by jobs.Manager.
type JobOrchestrator interface {
	Submit(ctx context.Context, req models.SubmitJobRequest) (*ent.Job, error)
	Approve(ctx context.Context, jobID string, approver models.Caller) (*ent.Job, error)
	Cancel(ctx context.Context, jobID string, caller models.Caller) (*ent.Job, error)
	StopTranscription(ctx context.Context, jobID string) (*ent.Job, error)
}

// JobReader serves job reads. Implemented by services.JobService.
type JobReader interface {
	GetJob(ctx context.Context, jobID string, withEdges bool) (*ent.Job, error)
	ListJobs(ctx context.Context, filters models.JobFilters) (*models.JobListResponse, error)
	GetLogs(ctx context.Context, jobID string) ([]*ent.JobLogEntry, error)
}

// SegmentReader serves transcription segment reads. Implemented by
// services.SegmentService.
type SegmentReader interface {
	ListSegments(ctx context.Context, jobID string) ([]*ent.TranscriptionSegment, error)
	SegmentsSince(ctx context.Context, jobID string, since time.Time) ([]*ent.TranscriptionSegment, error)
}

// ChatResponder runs the non-streaming chat loop. Implemented by chat.Engine.
type ChatResponder interface {
	Respond(ctx context.Context, req chat.Request) (*chat.Result, error)
}

// StreamCounter reports live transcription streams for the health endpoint.
type StreamCounter interface {
	ActiveStreams() int
}

// Deps wires the server; admin handlers use the concrete services, the job
// and chat paths go through interfaces.
type Deps struct {
	Manager   JobOrchestrator
	Jobs      JobReader
	Segments  SegmentReader
	Chat      ChatResponder
	Channels  *services.ChannelService
	Directory *services.DirectoryService
	Resources *services.ResourceService
	Perms     *services.PermissionService
	Cipher    *secrets.Cipher
	WS        *events.ConnectionManager
	Streams   StreamCounter

	// AllowedWSOrigins are extra origin patterns accepted on the websocket
	// endpoint.
	AllowedWSOrigins []string

	// HealthCheck pings the database.
	HealthCheck func(ctx context.Context) error
}

// Server is the API server.
type Server struct {
	deps   Deps
	logger *slog.Logger
}

func NewServer(deps Deps) *Server {
	return &Server{
		deps:   deps,
		logger: slog.Default().With("component", "api"),
	}
}

// RegisterRoutes mounts all endpoints on the engine.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	v1.GET("/health", s.healthHandler)
	v1.GET("/ws", s.websocketHandler)

	v1.POST("/jobs", s.submitJobHandler)
	v1.GET("/jobs", s.listJobsHandler)
	v1.GET("/jobs/:id", s.getJobHandler)
	v1.POST("/jobs/:id/approve", s.approveJobHandler)
	v1.POST("/jobs/:id/cancel", s.cancelJobHandler)
	v1.POST("/jobs/:id/stop", s.stopTranscriptionHandler)
	v1.GET("/jobs/:id/logs", s.jobLogsHandler)
	v1.GET("/jobs/:id/segments", s.jobSegmentsHandler)

	v1.POST("/channels", s.createChannelHandler)
	v1.GET("/channels/:id", s.getChannelHandler)
	v1.POST("/channels/:id/messages", s.sendMessageHandler)
	v1.GET("/channels/:id/messages", s.chatHistoryHandler)
	v1.POST("/contexts", s.createContextHandler)

	admin := v1.Group("/admin")
	admin.POST("/agents", s.createAgentHandler)
	admin.GET("/agents/:id", s.getAgentHandler)
	admin.PATCH("/agents/:id", s.updateAgentHandler)
	admin.POST("/users", s.createUserHandler)
	admin.GET("/users/:id", s.getUserHandler)
	admin.POST("/roles", s.createRoleHandler)
	admin.POST("/permission-sets", s.createPermissionSetHandler)
	admin.GET("/permission-sets/:id", s.getPermissionSetHandler)
	admin.POST("/permission-sets/:id/grants", s.addGrantHandler)
	admin.PATCH("/grants/:id", s.updateGrantHandler)
	admin.DELETE("/grants/:id", s.deleteGrantHandler)
	admin.POST("/permission-sets/:id/whitelist/users/:userId", s.whitelistUserHandler)
	admin.POST("/permission-sets/:id/whitelist/agents/:agentId", s.whitelistAgentHandler)
	admin.POST("/models", s.createModelHandler)
	admin.GET("/models/:id", s.getModelHandler)
	admin.POST("/containers", s.createContainerHandler)
	admin.GET("/containers/:id", s.getContainerHandler)
	admin.POST("/system-users", s.createSystemUserHandler)
	admin.POST("/skills", s.createSkillHandler)
	admin.POST("/tasks", s.createTaskHandler)
	admin.PATCH("/tasks/:id", s.updateTaskHandler)
	admin.POST("/info-stores", s.createInfoStoreHandler)
}
