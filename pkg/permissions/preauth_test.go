package permissions

import (
	"context"
	"testing"

	"github.com/codeready-toolchain/warden/ent/grant"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/ent/permissionset"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPreAuthorizer(store *fakeStore) *PreAuthorizer {
	return NewPreAuthorizer(store, NewEvaluator(store))
}

func TestPreAuthorizeLevel2FromContext(t *testing.T) {
	// Channel has no set; the attached context carries a matching grant.
	store := newFakeStore()
	store.contexts["ch"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, "r4", grant.ClearanceUnset))

	ok, err := newPreAuthorizer(store).PreAuthorize(context.Background(), "ch", "any-user",
		job.ActionAccessWebsite, "r4", job.EffectiveClearanceWhitelistedUser)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPreAuthorizeChannelBeforeContext(t *testing.T) {
	store := newFakeStore()
	store.channels["ch"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, models.AllResources, grant.ClearanceUnset))

	ok, err := newPreAuthorizer(store).PreAuthorize(context.Background(), "ch", "u1",
		job.ActionAccessWebsite, "r4", job.EffectiveClearanceWhitelistedUser)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPreAuthorizeLevel4(t *testing.T) {
	store := newFakeStore()
	store.channels["ch"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryContainer, "r6", grant.ClearanceUnset))

	ok, err := newPreAuthorizer(store).PreAuthorize(context.Background(), "ch", "u1",
		job.ActionAccessContainer, "r6", job.EffectiveClearanceWhitelistedAgent)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPreAuthorizeNeverLevel3(t *testing.T) {
	store := newFakeStore()
	store.channels["ch"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategorySafeShell, "r5", grant.ClearanceUnset))

	ok, err := newPreAuthorizer(store).PreAuthorize(context.Background(), "ch", "u1",
		job.ActionExecuteAsSafeShell, "r5", job.EffectiveClearancePermittedAgent)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPreAuthorizeLevel1NeedsPersonalPermission(t *testing.T) {
	store := newFakeStore()
	store.channels["ch"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, "r2", grant.ClearanceUnset))

	t.Run("session user without permission is refused", func(t *testing.T) {
		store.users["u-plain"] = newSet(permissionset.DefaultClearanceUnset)

		ok, err := newPreAuthorizer(store).PreAuthorize(context.Background(), "ch", "u-plain",
			job.ActionAccessWebsite, "r2", job.EffectiveClearanceSameLevelUser)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("session user holding the permission passes", func(t *testing.T) {
		store.users["u-holder"] = newSet(permissionset.DefaultClearanceUnset,
			newGrant(grant.CategoryWebsite, "r2", grant.ClearanceUnset))

		ok, err := newPreAuthorizer(store).PreAuthorize(context.Background(), "ch", "u-holder",
			job.ActionAccessWebsite, "r2", job.EffectiveClearanceSameLevelUser)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("anonymous session is refused", func(t *testing.T) {
		ok, err := newPreAuthorizer(store).PreAuthorize(context.Background(), "ch", "",
			job.ActionAccessWebsite, "r2", job.EffectiveClearanceSameLevelUser)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestPreAuthorizeNoMatchingGrant(t *testing.T) {
	store := newFakeStore()
	store.channels["ch"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategorySkill, "other", grant.ClearanceUnset))

	ok, err := newPreAuthorizer(store).PreAuthorize(context.Background(), "ch", "u1",
		job.ActionAccessWebsite, "r4", job.EffectiveClearanceWhitelistedUser)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPreAuthorizeGlobalFlag(t *testing.T) {
	store := newFakeStore()
	set := newSet(permissionset.DefaultClearanceUnset)
	set.AllowCreateSubAgent = true
	store.channels["ch"] = set

	ok, err := newPreAuthorizer(store).PreAuthorize(context.Background(), "ch", "u1",
		job.ActionCreateSubAgent, "", job.EffectiveClearanceWhitelistedUser)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPreAuthorizeNoChannel(t *testing.T) {
	ok, err := newPreAuthorizer(newFakeStore()).PreAuthorize(context.Background(), "", "u1",
		job.ActionAccessWebsite, "r4", job.EffectiveClearanceWhitelistedUser)
	require.NoError(t, err)
	assert.False(t, ok)
}
