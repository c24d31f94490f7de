package database_test

import (
	"context"
	"testing"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/pkg/database"
	"github.com/codeready-toolchain/warden/pkg/models"
	testdb "github.com/codeready-toolchain/warden/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createGrant(t *testing.T, client *database.Client, resourceID string) *ent.Grant {
	t.Helper()
	ctx := context.Background()

	set, err := client.PermissionSet.Create().
		SetID(uuid.New().String()).
		Save(ctx)
	require.NoError(t, err)

	g, err := client.Grant.Create().
		SetID(uuid.New().String()).
		SetPermissionSetID(set.ID).
		SetCategory("website").
		SetResourceID(resourceID).
		Save(ctx)
	require.NoError(t, err)
	return g
}

func TestWildcardGrantGuard(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("deletes an ordinary grant", func(t *testing.T) {
		g := createGrant(t, client, "site-a")

		err := client.Grant.DeleteOneID(g.ID).Exec(ctx)
		require.NoError(t, err)

		_, err = client.Grant.Get(ctx, g.ID)
		assert.True(t, ent.IsNotFound(err))
	})

	t.Run("rejects deleting a wildcard grant", func(t *testing.T) {
		g := createGrant(t, client, models.AllResources)

		err := client.Grant.DeleteOneID(g.ID).Exec(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, database.ErrWildcardGrantImmutable)

		// Row survives
		_, err = client.Grant.Get(ctx, g.ID)
		require.NoError(t, err)
	})

	t.Run("rejects updating a wildcard grant", func(t *testing.T) {
		g := createGrant(t, client, models.AllResources)

		err := client.Grant.UpdateOneID(g.ID).SetIsDefault(true).Exec(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, database.ErrWildcardGrantImmutable)
	})

	t.Run("rejects repointing at the sentinel", func(t *testing.T) {
		g := createGrant(t, client, "site-b")

		err := client.Grant.UpdateOneID(g.ID).SetResourceID(models.AllResources).Exec(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, database.ErrWildcardGrantImmutable)
	})

	t.Run("deleting a missing grant surfaces not found", func(t *testing.T) {
		err := client.Grant.DeleteOneID(uuid.New().String()).Exec(ctx)
		require.Error(t, err)
		assert.True(t, ent.IsNotFound(err))
	})

	t.Run("rejects bulk grant mutations", func(t *testing.T) {
		g := createGrant(t, client, "site-c")

		_, err := client.Grant.Delete().Exec(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, database.ErrWildcardGrantImmutable)

		// Untouched by the rejected bulk delete
		_, err = client.Grant.Get(ctx, g.ID)
		require.NoError(t, err)
	})
}
