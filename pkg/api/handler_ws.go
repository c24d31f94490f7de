package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// websocketHandler handles GET /api/v1/ws: upgrades and hands the connection
// to the event hub. Blocks for the connection's lifetime.
func (s *Server) websocketHandler(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: s.originPatterns(),
	})
	if err != nil {
		s.logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	s.deps.WS.HandleConnection(c.Request.Context(), conn)
}

func (s *Server) originPatterns() []string {
	return s.deps.AllowedWSOrigins
}

// healthHandler handles GET /api/v1/health.
func (s *Server) healthHandler(c *gin.Context) {
	status := http.StatusOK
	body := gin.H{
		"status":      "healthy",
		"connections": s.deps.WS.ActiveConnections(),
	}
	if s.deps.Streams != nil {
		body["active_transcriptions"] = s.deps.Streams.ActiveStreams()
	}
	if s.deps.HealthCheck != nil {
		if err := s.deps.HealthCheck(c.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "unhealthy"
			body["database"] = err.Error()
		} else {
			body["database"] = "ok"
		}
	}
	c.JSON(status, body)
}
