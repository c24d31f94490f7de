package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/warden/pkg/chat"
	"github.com/codeready-toolchain/warden/pkg/models"
)

// sendMessageHandler handles POST /api/v1/channels/:id/messages: the
// non-streaming chat turn. Approvals cannot be answered inline here, so
// suspended tool calls resolve by the auto-decline path; streaming clients
// use the websocket instead.
func (s *Server) sendMessageHandler(c *gin.Context) {
	var body models.SendMessageRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.UserID == "" || body.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and content are required"})
		return
	}

	result, err := s.deps.Chat.Respond(c.Request.Context(), chat.Request{
		ChannelID: c.Param("id"),
		AgentID:   body.AgentID,
		UserID:    body.UserID,
		Content:   body.Content,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	jobIDs := make([]string, 0, len(result.Jobs))
	for _, j := range result.Jobs {
		jobIDs = append(jobIDs, j.ID)
	}
	c.JSON(http.StatusOK, models.SendMessageResponse{
		ChannelID:     c.Param("id"),
		AgentID:       body.AgentID,
		FinalResponse: result.Response,
		JobIDs:        jobIDs,
		Rounds:        result.Rounds,
	})
}

// chatHistoryHandler handles GET /api/v1/channels/:id/messages.
func (s *Server) chatHistoryHandler(c *gin.Context) {
	msgs, err := s.deps.Channels.ChatHistory(c.Request.Context(), c.Param("id"), 0)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"channel_id": c.Param("id"), "messages": msgs})
}

// createChannelHandler handles POST /api/v1/channels.
func (s *Server) createChannelHandler(c *gin.Context) {
	var req models.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ch, err := s.deps.Channels.CreateChannel(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ch)
}

// getChannelHandler handles GET /api/v1/channels/:id.
func (s *Server) getChannelHandler(c *gin.Context) {
	ch, err := s.deps.Channels.GetChannel(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

// createContextHandler handles POST /api/v1/contexts.
func (s *Server) createContextHandler(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	cc, err := s.deps.Channels.CreateContext(c.Request.Context(), body.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cc)
}
