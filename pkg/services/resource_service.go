package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/container"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/google/uuid"
)

// ResourceService manages the locally persisted resources jobs target:
// containers, system users, skills, tasks, and info stores.
type ResourceService struct {
	client *ent.Client
}

// NewResourceService creates a new ResourceService
func NewResourceService(client *ent.Client) *ResourceService {
	return &ResourceService{client: client}
}

// CreateContainer registers a sandbox workspace.
func (s *ResourceService) CreateContainer(httpCtx context.Context, name, path, description string, kind container.Kind) (*ent.Container, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	if path == "" {
		return nil, NewValidationError("path", "required")
	}
	if kind == "" {
		kind = container.KindSandboxedDsl
	}
	if err := container.KindValidator(kind); err != nil {
		return nil, NewValidationError("kind", fmt.Sprintf("unknown container kind %q", kind))
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := s.client.Container.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetPath(path).
		SetDescription(description).
		SetKind(kind).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}
	return created, nil
}

// GetContainer retrieves a container by ID.
func (s *ResourceService) GetContainer(ctx context.Context, containerID string) (*ent.Container, error) {
	c, err := s.client.Container.Get(ctx, containerID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get container: %w", err)
	}
	return c, nil
}

// CreateSystemUser registers an OS account for dangerous-shell execution.
func (s *ResourceService) CreateSystemUser(httpCtx context.Context, req models.CreateSystemUserRequest) (*ent.SystemUser, error) {
	if req.Username == "" {
		return nil, NewValidationError("username", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.SystemUser.Create().
		SetID(uuid.New().String()).
		SetUsername(req.Username)
	if req.WorkingDirectory != "" {
		builder.SetWorkingDirectory(req.WorkingDirectory)
	}
	if req.SandboxRoot != "" {
		builder.SetSandboxRoot(req.SandboxRoot)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("system user %q: %w", req.Username, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create system user: %w", err)
	}
	return created, nil
}

// GetSystemUser retrieves a system user by ID.
func (s *ResourceService) GetSystemUser(ctx context.Context, systemUserID string) (*ent.SystemUser, error) {
	su, err := s.client.SystemUser.Get(ctx, systemUserID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get system user: %w", err)
	}
	return su, nil
}

// CreateSkill registers a skill document.
func (s *ResourceService) CreateSkill(httpCtx context.Context, name, content string) (*ent.Skill, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := s.client.Skill.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return created, nil
}

// GetSkill retrieves a skill by ID.
func (s *ResourceService) GetSkill(ctx context.Context, skillID string) (*ent.Skill, error) {
	sk, err := s.client.Skill.Get(ctx, skillID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return sk, nil
}

// CreateTask registers a task.
func (s *ResourceService) CreateTask(httpCtx context.Context, name string, repeatIntervalSeconds, maxRetries int) (*ent.Task, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetRepeatIntervalSeconds(repeatIntervalSeconds).
		SetMaxRetries(maxRetries).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// GetTask retrieves a task by ID.
func (s *ResourceService) GetTask(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// UpdateTask applies the mutable task fields; nil fields stay unchanged.
func (s *ResourceService) UpdateTask(httpCtx context.Context, taskID string, name *string, repeatIntervalSeconds, maxRetries *int) (*ent.Task, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Task.UpdateOneID(taskID)
	if name != nil {
		if *name == "" {
			return nil, NewValidationError("name", "cannot be empty")
		}
		update.SetName(*name)
	}
	if repeatIntervalSeconds != nil {
		if *repeatIntervalSeconds < 0 {
			return nil, NewValidationError("repeat_interval_seconds", "must be non-negative")
		}
		update.SetRepeatIntervalSeconds(*repeatIntervalSeconds)
	}
	if maxRetries != nil {
		if *maxRetries < 0 {
			return nil, NewValidationError("max_retries", "must be non-negative")
		}
		update.SetMaxRetries(*maxRetries)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

// CreateInfoStore registers an info store.
func (s *ResourceService) CreateInfoStore(httpCtx context.Context, req models.CreateInfoStoreRequest) (*ent.InfoStore, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Location == "" {
		return nil, NewValidationError("location", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := s.client.InfoStore.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetKind(req.Kind).
		SetLocation(req.Location).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create info store: %w", err)
	}
	return created, nil
}

// GetInfoStore retrieves an info store by ID.
func (s *ResourceService) GetInfoStore(ctx context.Context, storeID string) (*ent.InfoStore, error) {
	st, err := s.client.InfoStore.Get(ctx, storeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get info store: %w", err)
	}
	return st, nil
}
