package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/providermodel"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/google/uuid"
)

// DirectoryService manages the principal directory: agents, users, and the
// provider models they run on.
type DirectoryService struct {
	client *ent.Client
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(client *ent.Client) *DirectoryService {
	return &DirectoryService{client: client}
}

// CreateAgent registers an agent.
func (s *DirectoryService) CreateAgent(httpCtx context.Context, req models.CreateAgentRequest) (*ent.Agent, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Agent.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetSystemPrompt(req.SystemPrompt)
	if req.RoleID != "" {
		builder.SetRoleID(req.RoleID)
	}
	if req.ModelID != "" {
		builder.SetModelID(req.ModelID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("agent references a missing role or model: %w", ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return created, nil
}

// GetAgent retrieves an agent by ID.
func (s *DirectoryService) GetAgent(ctx context.Context, agentID string) (*ent.Agent, error) {
	a, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

// UpdateAgent applies the mutable agent fields; nil fields stay unchanged.
func (s *DirectoryService) UpdateAgent(httpCtx context.Context, agentID string, req models.UpdateAgentRequest) (*ent.Agent, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Agent.UpdateOneID(agentID)
	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "cannot be empty")
		}
		update.SetName(*req.Name)
	}
	if req.SystemPrompt != nil {
		update.SetSystemPrompt(*req.SystemPrompt)
	}
	if req.ModelID != nil {
		update.SetModelID(*req.ModelID)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("agent references a missing model: %w", ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}
	return updated, nil
}

// AssignAgentRole points an agent at a role.
func (s *DirectoryService) AssignAgentRole(ctx context.Context, agentID, roleID string) error {
	err := s.client.Agent.UpdateOneID(agentID).SetRoleID(roleID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to assign role: %w", err)
	}
	return nil
}

// CreateUser registers a user.
func (s *DirectoryService) CreateUser(httpCtx context.Context, req models.CreateUserRequest) (*ent.User, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.User.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetEmail(req.Email)
	if req.RoleID != "" {
		builder.SetRoleID(req.RoleID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("user references a missing role: %w", ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// GetUser retrieves a user by ID.
func (s *DirectoryService) GetUser(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// AssignUserRole points a user at a role.
func (s *DirectoryService) AssignUserRole(ctx context.Context, userID, roleID string) error {
	err := s.client.User.UpdateOneID(userID).SetRoleID(roleID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to assign role: %w", err)
	}
	return nil
}

// CreateModel registers a provider model. The caller encrypts the API key
// before it reaches the service; nothing here sees clear-text secrets.
func (s *DirectoryService) CreateModel(httpCtx context.Context, req models.CreateModelRequest, encryptedAPIKey string) (*ent.ProviderModel, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.ModelName == "" {
		return nil, NewValidationError("model_name", "required")
	}
	if err := providermodel.ProviderValidator(req.Provider); err != nil {
		return nil, NewValidationError("provider", fmt.Sprintf("unknown provider %q", req.Provider))
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.ProviderModel.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetProvider(req.Provider).
		SetModelName(req.ModelName).
		SetEncryptedAPIKey(encryptedAPIKey)
	if req.BaseURL != "" {
		builder.SetBaseURL(req.BaseURL)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("model %q: %w", req.Name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create model: %w", err)
	}
	return created, nil
}

// GetModel retrieves a provider model by ID.
func (s *DirectoryService) GetModel(ctx context.Context, modelID string) (*ent.ProviderModel, error) {
	m, err := s.client.ProviderModel.Get(ctx, modelID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get model: %w", err)
	}
	return m, nil
}
