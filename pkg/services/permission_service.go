package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codeready-toolchain/warden/ent"
	entagent "github.com/codeready-toolchain/warden/ent/agent"
	"github.com/codeready-toolchain/warden/ent/channel"
	"github.com/codeready-toolchain/warden/ent/grant"
	"github.com/codeready-toolchain/warden/ent/permissionset"
	entuser "github.com/codeready-toolchain/warden/ent/user"
	"github.com/codeready-toolchain/warden/pkg/database"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/google/uuid"
)

// PermissionService manages permission sets, their grants, and the
// role/channel/context lookups the clearance evaluator reads.
type PermissionService struct {
	client *ent.Client
}

// NewPermissionService creates a new PermissionService
func NewPermissionService(client *ent.Client) *PermissionService {
	return &PermissionService{client: client}
}

// CreatePermissionSet creates a permission set with its initial grants.
func (s *PermissionService) CreatePermissionSet(httpCtx context.Context, req models.CreatePermissionSetRequest) (*ent.PermissionSet, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	created, err := createPermissionSetTx(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

// createPermissionSetTx creates a set and its grants inside an open
// transaction, shared by CreatePermissionSet and CreateRole.
func createPermissionSetTx(ctx context.Context, tx *ent.Tx, req models.CreatePermissionSetRequest) (*ent.PermissionSet, error) {
	builder := tx.PermissionSet.Create().
		SetID(uuid.New().String()).
		SetAllowCreateSubAgent(req.AllowCreateSubAgent).
		SetAllowCreateContainer(req.AllowCreateContainer).
		SetAllowRegisterInfoStore(req.AllowRegisterInfoStore).
		SetAllowEditAnyTask(req.AllowEditAnyTask).
		SetAllowLocalhostBrowser(req.AllowLocalhostBrowser).
		SetAllowLocalhostCli(req.AllowLocalhostCli)

	if req.DefaultClearance != "" {
		if err := permissionset.DefaultClearanceValidator(req.DefaultClearance); err != nil {
			return nil, NewValidationError("default_clearance", fmt.Sprintf("unknown clearance %q", req.DefaultClearance))
		}
		builder.SetDefaultClearance(req.DefaultClearance)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create permission set: %w", err)
	}

	for _, in := range req.Grants {
		if _, err := createGrantTx(ctx, tx, created.ID, in); err != nil {
			return nil, err
		}
	}

	return created, nil
}

func createGrantTx(ctx context.Context, tx *ent.Tx, setID string, in models.GrantInput) (*ent.Grant, error) {
	if err := grant.CategoryValidator(in.Category); err != nil {
		return nil, NewValidationError("category", fmt.Sprintf("unknown category %q", in.Category))
	}
	if in.ResourceID == "" {
		return nil, NewValidationError("resource_id", "required")
	}

	builder := tx.Grant.Create().
		SetID(uuid.New().String()).
		SetPermissionSetID(setID).
		SetCategory(in.Category).
		SetResourceID(in.ResourceID).
		SetIsDefault(in.IsDefault)

	if in.Clearance != "" {
		if err := grant.ClearanceValidator(in.Clearance); err != nil {
			return nil, NewValidationError("clearance", fmt.Sprintf("unknown clearance %q", in.Clearance))
		}
		builder.SetClearance(in.Clearance)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("grant for (%s, %s): %w", in.Category, in.ResourceID, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create grant: %w", err)
	}
	return created, nil
}

// CreateRole creates a role owning a freshly created permission set.
func (s *PermissionService) CreateRole(httpCtx context.Context, req models.CreateRoleRequest) (*ent.Role, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	set, err := createPermissionSetTx(ctx, tx, req.PermissionSet)
	if err != nil {
		return nil, err
	}

	role, err := tx.Role.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetDescription(req.Description).
		SetPermissionSetID(set.ID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("role %q: %w", req.Name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return role, nil
}

// AddGrant adds a grant to an existing set. When the grant is marked as the
// category default, any previous default for that category is cleared first.
func (s *PermissionService) AddGrant(httpCtx context.Context, setID string, in models.GrantInput) (*ent.Grant, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if in.IsDefault {
		if err := clearDefaultGrantTx(ctx, tx, setID, in.Category); err != nil {
			return nil, err
		}
	}

	created, err := createGrantTx(ctx, tx, setID, in)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

// clearDefaultGrantTx demotes the current default grant of a category, if
// any. Wildcard defaults cannot be demoted in place (the row is immutable);
// designating a new default next to one is rejected by the partial unique
// index, surfacing the conflict instead of silently mutating.
func clearDefaultGrantTx(ctx context.Context, tx *ent.Tx, setID string, category grant.Category) error {
	existing, err := tx.Grant.Query().
		Where(
			grant.PermissionSetIDEQ(setID),
			grant.CategoryEQ(category),
			grant.IsDefault(true),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query default grant: %w", err)
	}

	for _, g := range existing {
		if g.ResourceID == models.AllResources {
			continue
		}
		if err := tx.Grant.UpdateOneID(g.ID).SetIsDefault(false).Exec(ctx); err != nil {
			return fmt.Errorf("failed to clear default grant: %w", err)
		}
	}
	return nil
}

// UpdateGrant updates a grant's clearance or default designation. Wildcard
// grants reject every update with ErrInvariantViolation.
func (s *PermissionService) UpdateGrant(httpCtx context.Context, grantID string, req models.UpdateGrantRequest) (*ent.Grant, error) {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Grant.UpdateOneID(grantID)
	if req.Clearance != nil {
		if err := grant.ClearanceValidator(*req.Clearance); err != nil {
			return nil, NewValidationError("clearance", fmt.Sprintf("unknown clearance %q", *req.Clearance))
		}
		update.SetClearance(*req.Clearance)
	}
	if req.IsDefault != nil {
		update.SetIsDefault(*req.IsDefault)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if errors.Is(err, database.ErrWildcardGrantImmutable) {
			return nil, fmt.Errorf("%v: %w", err, ErrInvariantViolation)
		}
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update grant: %w", err)
	}

	return updated, nil
}

// DeleteGrant removes a grant. Wildcard grants reject deletion with
// ErrInvariantViolation.
func (s *PermissionService) DeleteGrant(httpCtx context.Context, grantID string) error {
	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Grant.DeleteOneID(grantID).Exec(ctx)
	if err != nil {
		if errors.Is(err, database.ErrWildcardGrantImmutable) {
			return fmt.Errorf("%v: %w", err, ErrInvariantViolation)
		}
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete grant: %w", err)
	}
	return nil
}

// AddWhitelistedUser adds a user to a set's approver whitelist.
func (s *PermissionService) AddWhitelistedUser(ctx context.Context, setID, userID string) error {
	err := s.client.PermissionSet.UpdateOneID(setID).
		AddWhitelistedUserIDs(userID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to whitelist user: %w", err)
	}
	return nil
}

// AddWhitelistedAgent adds an agent to a set's approver whitelist.
func (s *PermissionService) AddWhitelistedAgent(ctx context.Context, setID, agentID string) error {
	err := s.client.PermissionSet.UpdateOneID(setID).
		AddWhitelistedAgentIDs(agentID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to whitelist agent: %w", err)
	}
	return nil
}

// GetPermissionSet loads a set with grants and whitelists.
func (s *PermissionService) GetPermissionSet(ctx context.Context, setID string) (*ent.PermissionSet, error) {
	set, err := s.client.PermissionSet.Query().
		Where(permissionset.IDEQ(setID)).
		WithGrants().
		WithWhitelistedUsers().
		WithWhitelistedAgents().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get permission set: %w", err)
	}
	return set, nil
}

// GetAgentPermissionSet walks agent -> role -> permission set and loads the
// evaluator's working data. ErrNotFound when the agent is unknown, ErrNoRole
// when the agent has no role.
func (s *PermissionService) GetAgentPermissionSet(ctx context.Context, agentID string) (*ent.PermissionSet, error) {
	exists, err := s.client.Agent.Query().Where(entagent.IDEQ(agentID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check agent: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	set, err := s.client.Agent.Query().
		Where(entagent.IDEQ(agentID)).
		QueryRole().
		QueryPermissionSet().
		WithGrants().
		WithWhitelistedUsers().
		WithWhitelistedAgents().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoRole
		}
		return nil, fmt.Errorf("failed to load agent permission set: %w", err)
	}
	return set, nil
}

// GetUserPermissionSet walks user -> role -> permission set. ErrNotFound when
// the user is unknown, ErrNoRole when the user has no role.
func (s *PermissionService) GetUserPermissionSet(ctx context.Context, userID string) (*ent.PermissionSet, error) {
	exists, err := s.client.User.Query().Where(entuser.IDEQ(userID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	set, err := s.client.User.Query().
		Where(entuser.IDEQ(userID)).
		QueryRole().
		QueryPermissionSet().
		WithGrants().
		WithWhitelistedUsers().
		WithWhitelistedAgents().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoRole
		}
		return nil, fmt.Errorf("failed to load user permission set: %w", err)
	}
	return set, nil
}

// GetChannelPermissionSet returns the channel's own set with grants loaded,
// or (nil, nil) when the channel carries none.
func (s *PermissionService) GetChannelPermissionSet(ctx context.Context, channelID string) (*ent.PermissionSet, error) {
	exists, err := s.client.Channel.Query().Where(channel.IDEQ(channelID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check channel: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	set, err := s.client.Channel.Query().
		Where(channel.IDEQ(channelID)).
		QueryPermissionSet().
		WithGrants().
		WithWhitelistedUsers().
		WithWhitelistedAgents().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // Channel has no permission set
		}
		return nil, fmt.Errorf("failed to load channel permission set: %w", err)
	}
	return set, nil
}

// GetChannelContextPermissionSet returns the set of the channel's context,
// or (nil, nil) when the channel has no context or the context carries no set.
func (s *PermissionService) GetChannelContextPermissionSet(ctx context.Context, channelID string) (*ent.PermissionSet, error) {
	set, err := s.client.Channel.Query().
		Where(channel.IDEQ(channelID)).
		QueryContext().
		QueryPermissionSet().
		WithGrants().
		WithWhitelistedUsers().
		WithWhitelistedAgents().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // No context, or context has no permission set
		}
		return nil, fmt.Errorf("failed to load context permission set: %w", err)
	}
	return set, nil
}

// AttachPermissionSetToChannel gives a channel its own permission set.
func (s *PermissionService) AttachPermissionSetToChannel(ctx context.Context, channelID, setID string) error {
	err := s.client.Channel.UpdateOneID(channelID).
		SetPermissionSetID(setID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to attach permission set: %w", err)
	}
	return nil
}

// AttachPermissionSetToContext gives a channel context its own permission set.
func (s *PermissionService) AttachPermissionSetToContext(ctx context.Context, contextID, setID string) error {
	err := s.client.ChannelContext.UpdateOneID(contextID).
		SetPermissionSetID(setID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to attach permission set: %w", err)
	}
	return nil
}
