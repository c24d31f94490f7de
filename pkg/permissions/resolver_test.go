package permissions

import (
	"context"
	"testing"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/grant"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/ent/permissionset"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultGrant(category grant.Category, resourceID string) *ent.Grant {
	g := newGrant(category, resourceID, grant.ClearanceUnset)
	g.IsDefault = true
	return g
}

func TestResolveWalksChannelContextRole(t *testing.T) {
	ctx := context.Background()

	t.Run("channel set wins", func(t *testing.T) {
		store := newFakeStore()
		store.channels["ch"] = newSet(permissionset.DefaultClearanceUnset,
			defaultGrant(grant.CategoryWebsite, "from-channel"))
		store.contexts["ch"] = newSet(permissionset.DefaultClearanceUnset,
			defaultGrant(grant.CategoryWebsite, "from-context"))
		store.agents["ag"] = newSet(permissionset.DefaultClearanceUnset,
			defaultGrant(grant.CategoryWebsite, "from-role"))

		id, err := NewDefaultResolver(store).Resolve(ctx, "ch", "ag", job.ActionAccessWebsite)
		require.NoError(t, err)
		assert.Equal(t, "from-channel", id)
	})

	t.Run("context set when channel has none", func(t *testing.T) {
		store := newFakeStore()
		store.contexts["ch"] = newSet(permissionset.DefaultClearanceUnset,
			defaultGrant(grant.CategoryWebsite, "from-context"))
		store.agents["ag"] = newSet(permissionset.DefaultClearanceUnset,
			defaultGrant(grant.CategoryWebsite, "from-role"))

		id, err := NewDefaultResolver(store).Resolve(ctx, "ch", "ag", job.ActionAccessWebsite)
		require.NoError(t, err)
		assert.Equal(t, "from-context", id)
	})

	t.Run("role set as last layer", func(t *testing.T) {
		store := newFakeStore()
		store.agents["ag"] = newSet(permissionset.DefaultClearanceUnset,
			defaultGrant(grant.CategoryWebsite, "from-role"))

		id, err := NewDefaultResolver(store).Resolve(ctx, "ch", "ag", job.ActionAccessWebsite)
		require.NoError(t, err)
		assert.Equal(t, "from-role", id)
	})

	t.Run("nothing found yields empty", func(t *testing.T) {
		store := newFakeStore()
		store.agents["ag"] = newSet(permissionset.DefaultClearanceUnset)

		id, err := NewDefaultResolver(store).Resolve(ctx, "ch", "ag", job.ActionAccessWebsite)
		require.NoError(t, err)
		assert.Empty(t, id)
	})
}

func TestResolveSkipsWildcardDefault(t *testing.T) {
	// A wildcard default cannot be executed against; resolution continues
	// down the chain.
	store := newFakeStore()
	store.channels["ch"] = newSet(permissionset.DefaultClearanceUnset,
		defaultGrant(grant.CategoryWebsite, models.AllResources))
	store.agents["ag"] = newSet(permissionset.DefaultClearanceUnset,
		defaultGrant(grant.CategoryWebsite, "from-role"))

	id, err := NewDefaultResolver(store).Resolve(context.Background(), "ch", "ag", job.ActionAccessWebsite)
	require.NoError(t, err)
	assert.Equal(t, "from-role", id)
}

func TestResolveIgnoresOtherCategoriesAndNonDefaults(t *testing.T) {
	store := newFakeStore()
	store.channels["ch"] = newSet(permissionset.DefaultClearanceUnset,
		defaultGrant(grant.CategorySkill, "wrong-category"),
		newGrant(grant.CategoryWebsite, "not-default", grant.ClearanceUnset))

	id, err := NewDefaultResolver(store).Resolve(context.Background(), "ch", "ag", job.ActionAccessWebsite)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestResolveGlobalFlagActionHasNoResource(t *testing.T) {
	store := newFakeStore()
	id, err := NewDefaultResolver(store).Resolve(context.Background(), "ch", "ag", job.ActionCreateSubAgent)
	require.NoError(t, err)
	assert.Empty(t, id)
}
