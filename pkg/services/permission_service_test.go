package services

import (
	"context"
	"testing"

	"github.com/codeready-toolchain/warden/ent/grant"
	"github.com/codeready-toolchain/warden/pkg/models"
	testdb "github.com/codeready-toolchain/warden/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionService_CreateRole(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPermissionService(client.Client)
	ctx := context.Background()

	t.Run("creates role with permission set and grants", func(t *testing.T) {
		role, err := service.CreateRole(ctx, models.CreateRoleRequest{
			Name:        "operator",
			Description: "day-to-day operations",
			PermissionSet: models.CreatePermissionSetRequest{
				Grants: []models.GrantInput{
					{Category: grant.CategorySafeShell, ResourceID: models.AllResources, Clearance: grant.ClearanceIndependent},
					{Category: grant.CategoryWebsite, ResourceID: "site-intranet", Clearance: grant.ClearanceSameLevelUser, IsDefault: true},
				},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "operator", role.Name)

		set, err := service.GetPermissionSet(ctx, role.PermissionSetID)
		require.NoError(t, err)
		assert.Len(t, set.Edges.Grants, 2)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := service.CreateRole(ctx, models.CreateRoleRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate role names", func(t *testing.T) {
		req := models.CreateRoleRequest{Name: "auditor"}
		_, err := service.CreateRole(ctx, req)
		require.NoError(t, err)

		_, err = service.CreateRole(ctx, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects unknown clearance and category values", func(t *testing.T) {
		_, err := service.CreateRole(ctx, models.CreateRoleRequest{
			Name: "broken",
			PermissionSet: models.CreatePermissionSetRequest{
				Grants: []models.GrantInput{
					{Category: "teleporter", ResourceID: "r-1"},
				},
			},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestPermissionService_Grants(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPermissionService(client.Client)
	ctx := context.Background()

	t.Run("duplicate category and resource pair is rejected", func(t *testing.T) {
		role := createTestRole(t, service)
		in := models.GrantInput{Category: grant.CategoryContainer, ResourceID: "ctr-1"}

		_, err := service.AddGrant(ctx, role.PermissionSetID, in)
		require.NoError(t, err)

		_, err = service.AddGrant(ctx, role.PermissionSetID, in)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("new default demotes the previous one", func(t *testing.T) {
		role := createTestRole(t, service,
			models.GrantInput{Category: grant.CategoryWebsite, ResourceID: "site-a", IsDefault: true},
		)

		created, err := service.AddGrant(ctx, role.PermissionSetID, models.GrantInput{
			Category:   grant.CategoryWebsite,
			ResourceID: "site-b",
			IsDefault:  true,
		})
		require.NoError(t, err)
		assert.True(t, created.IsDefault)

		set, err := service.GetPermissionSet(ctx, role.PermissionSetID)
		require.NoError(t, err)
		for _, g := range set.Edges.Grants {
			if g.ResourceID == "site-a" {
				assert.False(t, g.IsDefault, "previous default should be demoted")
			}
		}
	})

	t.Run("updates clearance on an ordinary grant", func(t *testing.T) {
		role := createTestRole(t, service,
			models.GrantInput{Category: grant.CategorySkill, ResourceID: "skill-calc"},
		)
		set, err := service.GetPermissionSet(ctx, role.PermissionSetID)
		require.NoError(t, err)
		require.Len(t, set.Edges.Grants, 1)

		clearance := grant.ClearanceWhitelistedUser
		updated, err := service.UpdateGrant(ctx, set.Edges.Grants[0].ID, models.UpdateGrantRequest{
			Clearance: &clearance,
		})
		require.NoError(t, err)
		assert.Equal(t, grant.ClearanceWhitelistedUser, updated.Clearance)
	})

	t.Run("wildcard grants are immutable", func(t *testing.T) {
		role := createTestRole(t, service,
			models.GrantInput{Category: grant.CategorySafeShell, ResourceID: models.AllResources},
		)
		set, err := service.GetPermissionSet(ctx, role.PermissionSetID)
		require.NoError(t, err)
		require.Len(t, set.Edges.Grants, 1)
		wildcard := set.Edges.Grants[0]

		clearance := grant.ClearanceIndependent
		_, err = service.UpdateGrant(ctx, wildcard.ID, models.UpdateGrantRequest{Clearance: &clearance})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvariantViolation)

		err = service.DeleteGrant(ctx, wildcard.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvariantViolation)

		// Still there, untouched
		reloaded, err := service.GetPermissionSet(ctx, role.PermissionSetID)
		require.NoError(t, err)
		require.Len(t, reloaded.Edges.Grants, 1)
		assert.Equal(t, grant.ClearanceUnset, reloaded.Edges.Grants[0].Clearance)
	})

	t.Run("ordinary grants can be repointed but not at the wildcard", func(t *testing.T) {
		role := createTestRole(t, service,
			models.GrantInput{Category: grant.CategoryTask, ResourceID: "task-1"},
		)
		set, err := service.GetPermissionSet(ctx, role.PermissionSetID)
		require.NoError(t, err)
		require.Len(t, set.Edges.Grants, 1)

		err = client.Grant.UpdateOneID(set.Edges.Grants[0].ID).
			SetResourceID(models.AllResources).
			Exec(ctx)
		require.Error(t, err)
	})

	t.Run("deletes an ordinary grant", func(t *testing.T) {
		role := createTestRole(t, service,
			models.GrantInput{Category: grant.CategoryAudioDevice, ResourceID: "mic-1"},
		)
		set, err := service.GetPermissionSet(ctx, role.PermissionSetID)
		require.NoError(t, err)
		require.Len(t, set.Edges.Grants, 1)

		err = service.DeleteGrant(ctx, set.Edges.Grants[0].ID)
		require.NoError(t, err)

		reloaded, err := service.GetPermissionSet(ctx, role.PermissionSetID)
		require.NoError(t, err)
		assert.Empty(t, reloaded.Edges.Grants)
	})
}

func TestPermissionService_PrincipalLookups(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPermissionService(client.Client)
	ctx := context.Background()

	role := createTestRole(t, service,
		models.GrantInput{Category: grant.CategorySkill, ResourceID: "skill-calc"},
	)

	t.Run("agent with role resolves its permission set", func(t *testing.T) {
		agent := createTestAgent(t, client.Client, role.ID)

		set, err := service.GetAgentPermissionSet(ctx, agent.ID)
		require.NoError(t, err)
		assert.Equal(t, role.PermissionSetID, set.ID)
		assert.Len(t, set.Edges.Grants, 1)
	})

	t.Run("agent without role", func(t *testing.T) {
		agent := createTestAgent(t, client.Client, "")

		_, err := service.GetAgentPermissionSet(ctx, agent.ID)
		assert.ErrorIs(t, err, ErrNoRole)
	})

	t.Run("unknown agent", func(t *testing.T) {
		_, err := service.GetAgentPermissionSet(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("user with role resolves its permission set", func(t *testing.T) {
		user := createTestUser(t, client.Client, role.ID)

		set, err := service.GetUserPermissionSet(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, role.PermissionSetID, set.ID)
	})

	t.Run("user without role", func(t *testing.T) {
		user := createTestUser(t, client.Client, "")

		_, err := service.GetUserPermissionSet(ctx, user.ID)
		assert.ErrorIs(t, err, ErrNoRole)
	})
}

func TestPermissionService_ChannelLookups(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPermissionService(client.Client)
	channels := NewChannelService(client.Client)
	ctx := context.Background()

	t.Run("channel without a set yields nil without error", func(t *testing.T) {
		ch, err := channels.CreateChannel(ctx, models.CreateChannelRequest{Name: "general"})
		require.NoError(t, err)

		set, err := service.GetChannelPermissionSet(ctx, ch.ID)
		require.NoError(t, err)
		assert.Nil(t, set)

		set, err = service.GetChannelContextPermissionSet(ctx, ch.ID)
		require.NoError(t, err)
		assert.Nil(t, set)
	})

	t.Run("attached sets resolve through channel and context", func(t *testing.T) {
		set, err := service.CreatePermissionSet(ctx, models.CreatePermissionSetRequest{
			Grants: []models.GrantInput{
				{Category: grant.CategoryWebsite, ResourceID: "site-ops"},
			},
		})
		require.NoError(t, err)

		channelCtx, err := channels.CreateContext(ctx, "ops-room")
		require.NoError(t, err)
		ch, err := channels.CreateChannel(ctx, models.CreateChannelRequest{
			Name:      "ops",
			ContextID: channelCtx.ID,
		})
		require.NoError(t, err)

		require.NoError(t, service.AttachPermissionSetToChannel(ctx, ch.ID, set.ID))
		require.NoError(t, service.AttachPermissionSetToContext(ctx, channelCtx.ID, set.ID))

		got, err := service.GetChannelPermissionSet(ctx, ch.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, set.ID, got.ID)

		got, err = service.GetChannelContextPermissionSet(ctx, ch.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, set.ID, got.ID)
	})

	t.Run("unknown channel", func(t *testing.T) {
		_, err := service.GetChannelPermissionSet(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPermissionService_Whitelists(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPermissionService(client.Client)
	ctx := context.Background()

	role := createTestRole(t, service)
	user := createTestUser(t, client.Client, "")
	agent := createTestAgent(t, client.Client, "")

	require.NoError(t, service.AddWhitelistedUser(ctx, role.PermissionSetID, user.ID))
	require.NoError(t, service.AddWhitelistedAgent(ctx, role.PermissionSetID, agent.ID))

	set, err := service.GetPermissionSet(ctx, role.PermissionSetID)
	require.NoError(t, err)
	require.Len(t, set.Edges.WhitelistedUsers, 1)
	assert.Equal(t, user.ID, set.Edges.WhitelistedUsers[0].ID)
	require.Len(t, set.Edges.WhitelistedAgents, 1)
	assert.Equal(t, agent.ID, set.Edges.WhitelistedAgents[0].ID)

	err = service.AddWhitelistedUser(ctx, uuid.New().String(), user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
