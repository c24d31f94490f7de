package services

import (
	"context"
	"testing"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// createTestAgent persists an agent, optionally bound to a role.
func createTestAgent(t *testing.T, client *ent.Client, roleID string) *ent.Agent {
	t.Helper()

	builder := client.Agent.Create().
		SetID(uuid.New().String()).
		SetName("test-agent")
	if roleID != "" {
		builder.SetRoleID(roleID)
	}

	agent, err := builder.Save(context.Background())
	require.NoError(t, err)
	return agent
}

// createTestUser persists a user, optionally bound to a role.
func createTestUser(t *testing.T, client *ent.Client, roleID string) *ent.User {
	t.Helper()

	builder := client.User.Create().
		SetID(uuid.New().String()).
		SetName("test-user")
	if roleID != "" {
		builder.SetRoleID(roleID)
	}

	user, err := builder.Save(context.Background())
	require.NoError(t, err)
	return user
}

// createTestRole creates a role whose permission set carries the given grants.
func createTestRole(t *testing.T, svc *PermissionService, grants ...models.GrantInput) *ent.Role {
	t.Helper()

	role, err := svc.CreateRole(context.Background(), models.CreateRoleRequest{
		Name: "role-" + uuid.New().String(),
		PermissionSet: models.CreatePermissionSetRequest{
			Grants: grants,
		},
	})
	require.NoError(t, err)
	return role
}
