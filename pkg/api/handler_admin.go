package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/warden/ent/container"
	"github.com/codeready-toolchain/warden/pkg/models"
)

// createAgentHandler handles POST /api/v1/admin/agents.
func (s *Server) createAgentHandler(c *gin.Context) {
	var req models.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := s.deps.Directory.CreateAgent(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// getAgentHandler handles GET /api/v1/admin/agents/:id.
func (s *Server) getAgentHandler(c *gin.Context) {
	a, err := s.deps.Directory.GetAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// updateAgentHandler handles PATCH /api/v1/admin/agents/:id.
func (s *Server) updateAgentHandler(c *gin.Context) {
	var req models.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := s.deps.Directory.UpdateAgent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// createUserHandler handles POST /api/v1/admin/users.
func (s *Server) createUserHandler(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := s.deps.Directory.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// getUserHandler handles GET /api/v1/admin/users/:id.
func (s *Server) getUserHandler(c *gin.Context) {
	u, err := s.deps.Directory.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// createRoleHandler handles POST /api/v1/admin/roles: a role and its owned
// permission set in one call.
func (s *Server) createRoleHandler(c *gin.Context) {
	var req models.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r, err := s.deps.Perms.CreateRole(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// createPermissionSetHandler handles POST /api/v1/admin/permission-sets.
func (s *Server) createPermissionSetHandler(c *gin.Context) {
	var req models.CreatePermissionSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	set, err := s.deps.Perms.CreatePermissionSet(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, set)
}

// getPermissionSetHandler handles GET /api/v1/admin/permission-sets/:id.
func (s *Server) getPermissionSetHandler(c *gin.Context) {
	set, err := s.deps.Perms.GetPermissionSet(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, set)
}

// addGrantHandler handles POST /api/v1/admin/permission-sets/:id/grants.
func (s *Server) addGrantHandler(c *gin.Context) {
	var in models.GrantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := s.deps.Perms.AddGrant(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// updateGrantHandler handles PATCH /api/v1/admin/grants/:id. Wildcard grants
// answer 409.
func (s *Server) updateGrantHandler(c *gin.Context) {
	var req models.UpdateGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := s.deps.Perms.UpdateGrant(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// deleteGrantHandler handles DELETE /api/v1/admin/grants/:id.
func (s *Server) deleteGrantHandler(c *gin.Context) {
	if err := s.deps.Perms.DeleteGrant(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// whitelistUserHandler handles POST /api/v1/admin/permission-sets/:id/whitelist/users/:userId.
func (s *Server) whitelistUserHandler(c *gin.Context) {
	if err := s.deps.Perms.AddWhitelistedUser(c.Request.Context(), c.Param("id"), c.Param("userId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// whitelistAgentHandler handles POST /api/v1/admin/permission-sets/:id/whitelist/agents/:agentId.
func (s *Server) whitelistAgentHandler(c *gin.Context) {
	if err := s.deps.Perms.AddWhitelistedAgent(c.Request.Context(), c.Param("id"), c.Param("agentId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// createModelHandler handles POST /api/v1/admin/models. The API key arrives
// in clear text and is encrypted before it touches the database.
func (s *Server) createModelHandler(c *gin.Context) {
	var req models.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	encrypted := ""
	if req.APIKey != "" {
		var err error
		encrypted, err = s.deps.Cipher.Encrypt(req.APIKey)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		req.APIKey = ""
	}
	m, err := s.deps.Directory.CreateModel(c.Request.Context(), req, encrypted)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// getModelHandler handles GET /api/v1/admin/models/:id. The encrypted key
// never leaves the server.
func (s *Server) getModelHandler(c *gin.Context) {
	m, err := s.deps.Directory.GetModel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	m.EncryptedAPIKey = ""
	c.JSON(http.StatusOK, m)
}

// createContainerHandler handles POST /api/v1/admin/containers.
func (s *Server) createContainerHandler(c *gin.Context) {
	var body struct {
		Name        string         `json:"name"`
		Path        string         `json:"path"`
		Description string         `json:"description"`
		Kind        container.Kind `json:"kind"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ct, err := s.deps.Resources.CreateContainer(c.Request.Context(), body.Name, body.Path, body.Description, body.Kind)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ct)
}

// getContainerHandler handles GET /api/v1/admin/containers/:id.
func (s *Server) getContainerHandler(c *gin.Context) {
	ct, err := s.deps.Resources.GetContainer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

// createSystemUserHandler handles POST /api/v1/admin/system-users.
func (s *Server) createSystemUserHandler(c *gin.Context) {
	var req models.CreateSystemUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	su, err := s.deps.Resources.CreateSystemUser(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, su)
}

// createSkillHandler handles POST /api/v1/admin/skills.
func (s *Server) createSkillHandler(c *gin.Context) {
	var body struct {
		Name    string `json:"name"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sk, err := s.deps.Resources.CreateSkill(c.Request.Context(), body.Name, body.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sk)
}

// createTaskHandler handles POST /api/v1/admin/tasks.
func (s *Server) createTaskHandler(c *gin.Context) {
	var body struct {
		Name                  string `json:"name"`
		RepeatIntervalSeconds int    `json:"repeat_interval_seconds"`
		MaxRetries            int    `json:"max_retries"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task, err := s.deps.Resources.CreateTask(c.Request.Context(), body.Name, body.RepeatIntervalSeconds, body.MaxRetries)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// updateTaskHandler handles PATCH /api/v1/admin/tasks/:id.
func (s *Server) updateTaskHandler(c *gin.Context) {
	var body struct {
		Name                  *string `json:"name,omitempty"`
		RepeatIntervalSeconds *int    `json:"repeat_interval_seconds,omitempty"`
		MaxRetries            *int    `json:"max_retries,omitempty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task, err := s.deps.Resources.UpdateTask(c.Request.Context(), c.Param("id"), body.Name, body.RepeatIntervalSeconds, body.MaxRetries)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// createInfoStoreHandler handles POST /api/v1/admin/info-stores.
func (s *Server) createInfoStoreHandler(c *gin.Context) {
	var req models.CreateInfoStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	store, err := s.deps.Resources.CreateInfoStore(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, store)
}
