package permissions

import (
	"context"
	"testing"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/grant"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/ent/permissionset"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore serves permission sets from memory. Missing principals report
// ErrNoRole, matching the service layer's contract.
type fakeStore struct {
	agents   map[string]*ent.PermissionSet
	users    map[string]*ent.PermissionSet
	channels map[string]*ent.PermissionSet
	contexts map[string]*ent.PermissionSet
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		agents:   make(map[string]*ent.PermissionSet),
		users:    make(map[string]*ent.PermissionSet),
		channels: make(map[string]*ent.PermissionSet),
		contexts: make(map[string]*ent.PermissionSet),
	}
}

func (f *fakeStore) GetAgentPermissionSet(_ context.Context, agentID string) (*ent.PermissionSet, error) {
	if s, ok := f.agents[agentID]; ok {
		return s, nil
	}
	return nil, services.ErrNoRole
}

func (f *fakeStore) GetUserPermissionSet(_ context.Context, userID string) (*ent.PermissionSet, error) {
	if s, ok := f.users[userID]; ok {
		return s, nil
	}
	return nil, services.ErrNoRole
}

func (f *fakeStore) GetChannelPermissionSet(_ context.Context, channelID string) (*ent.PermissionSet, error) {
	return f.channels[channelID], nil
}

func (f *fakeStore) GetChannelContextPermissionSet(_ context.Context, channelID string) (*ent.PermissionSet, error) {
	return f.contexts[channelID], nil
}

func newSet(defaultClearance permissionset.DefaultClearance, grants ...*ent.Grant) *ent.PermissionSet {
	set := &ent.PermissionSet{DefaultClearance: defaultClearance}
	set.Edges.Grants = grants
	return set
}

func newGrant(category grant.Category, resourceID string, clearance grant.Clearance) *ent.Grant {
	return &ent.Grant{Category: category, ResourceID: resourceID, Clearance: clearance}
}

func withWhitelistedUser(set *ent.PermissionSet, userIDs ...string) *ent.PermissionSet {
	for _, id := range userIDs {
		set.Edges.WhitelistedUsers = append(set.Edges.WhitelistedUsers, &ent.User{ID: id})
	}
	return set
}

func withWhitelistedAgent(set *ent.PermissionSet, agentIDs ...string) *ent.PermissionSet {
	for _, id := range agentIDs {
		set.Edges.WhitelistedAgents = append(set.Edges.WhitelistedAgents, &ent.Agent{ID: id})
	}
	return set
}

func TestEvaluateNoRole(t *testing.T) {
	e := NewEvaluator(newFakeStore())

	verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessWebsite, "r1", models.UserCaller("u1"))
	require.NoError(t, err)
	assert.Equal(t, DecisionDenied, verdict.Decision)
	assert.Contains(t, verdict.Reason, "no role")
}

func TestEvaluateMissingGrant(t *testing.T) {
	store := newFakeStore()
	store.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset)
	e := NewEvaluator(store)

	verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessContainer, "r3", models.UserCaller("u1"))
	require.NoError(t, err)
	assert.Equal(t, DecisionDenied, verdict.Decision)
	assert.Contains(t, verdict.Reason, "does not have container access")
}

func TestEvaluateMissingResourceID(t *testing.T) {
	store := newFakeStore()
	store.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, "r1", grant.ClearanceIndependent))
	e := NewEvaluator(store)

	verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessWebsite, "", models.UserCaller("u1"))
	require.NoError(t, err)
	assert.Equal(t, DecisionDenied, verdict.Decision)
	assert.Contains(t, verdict.Reason, "ResourceId required")
}

func TestEvaluateIndependent(t *testing.T) {
	store := newFakeStore()
	store.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategorySkill, "r1", grant.ClearanceIndependent))
	e := NewEvaluator(store)

	verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessSkill, "r1", models.UserCaller("u1"))
	require.NoError(t, err)
	assert.Equal(t, DecisionApproved, verdict.Decision)
	assert.Equal(t, job.EffectiveClearanceIndependent, verdict.EffectiveClearance)
}

func TestEvaluateWildcardGrant(t *testing.T) {
	store := newFakeStore()
	store.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, models.AllResources, grant.ClearanceIndependent))
	e := NewEvaluator(store)

	verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessWebsite, "any-site", models.Caller{})
	require.NoError(t, err)
	assert.Equal(t, DecisionApproved, verdict.Decision)
}

func TestEvaluateExactGrantPreferredOverWildcard(t *testing.T) {
	store := newFakeStore()
	store.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, models.AllResources, grant.ClearanceIndependent),
		newGrant(grant.CategoryWebsite, "r1", grant.ClearanceSameLevelUser))
	e := NewEvaluator(store)

	verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessWebsite, "r1", models.Caller{})
	require.NoError(t, err)
	assert.Equal(t, DecisionPending, verdict.Decision)
	assert.Equal(t, job.EffectiveClearanceSameLevelUser, verdict.EffectiveClearance)
}

func TestEffectiveClearanceFallbackChain(t *testing.T) {
	tests := []struct {
		name             string
		grantClearance   grant.Clearance
		defaultClearance permissionset.DefaultClearance
		want             job.EffectiveClearance
	}{
		{
			name:             "grant value wins",
			grantClearance:   grant.ClearanceWhitelistedAgent,
			defaultClearance: permissionset.DefaultClearanceIndependent,
			want:             job.EffectiveClearanceWhitelistedAgent,
		},
		{
			name:             "unset grant falls back to set default",
			grantClearance:   grant.ClearanceUnset,
			defaultClearance: permissionset.DefaultClearanceWhitelistedUser,
			want:             job.EffectiveClearanceWhitelistedUser,
		},
		{
			name:             "both unset falls back to level 1",
			grantClearance:   grant.ClearanceUnset,
			defaultClearance: permissionset.DefaultClearanceUnset,
			want:             job.EffectiveClearanceSameLevelUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.agents["agent-1"] = newSet(tt.defaultClearance,
				newGrant(grant.CategoryWebsite, "r1", tt.grantClearance))
			e := NewEvaluator(store)

			verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessWebsite, "r1", models.Caller{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, verdict.EffectiveClearance)
		})
	}
}

func TestEvaluateAnonymousCallerPending(t *testing.T) {
	store := newFakeStore()
	store.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, "r2", grant.ClearanceSameLevelUser))
	e := NewEvaluator(store)

	verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessWebsite, "r2", models.Caller{})
	require.NoError(t, err)
	assert.Equal(t, DecisionPending, verdict.Decision)
	assert.Equal(t, job.EffectiveClearanceSameLevelUser, verdict.EffectiveClearance)
}

func TestSameLevelUserApproval(t *testing.T) {
	store := newFakeStore()
	store.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, "r2", grant.ClearanceSameLevelUser))
	e := NewEvaluator(store)

	t.Run("user with own grant approves", func(t *testing.T) {
		store.users["u1"] = newSet(permissionset.DefaultClearanceUnset,
			newGrant(grant.CategoryWebsite, "r2", grant.ClearanceUnset))

		verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessWebsite, "r2", models.UserCaller("u1"))
		require.NoError(t, err)
		assert.Equal(t, DecisionApproved, verdict.Decision)
	})

	t.Run("user with wildcard grant approves", func(t *testing.T) {
		store.users["u2"] = newSet(permissionset.DefaultClearanceUnset,
			newGrant(grant.CategoryWebsite, models.AllResources, grant.ClearanceUnset))

		verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessWebsite, "r2", models.UserCaller("u2"))
		require.NoError(t, err)
		assert.Equal(t, DecisionApproved, verdict.Decision)
	})

	t.Run("user without grant stays pending", func(t *testing.T) {
		store.users["u3"] = newSet(permissionset.DefaultClearanceUnset)

		verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessWebsite, "r2", models.UserCaller("u3"))
		require.NoError(t, err)
		assert.Equal(t, DecisionPending, verdict.Decision)
	})

	t.Run("agent caller cannot satisfy level 1", func(t *testing.T) {
		store.agents["agent-2"] = newSet(permissionset.DefaultClearanceUnset,
			newGrant(grant.CategoryWebsite, "r2", grant.ClearanceIndependent))

		verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessWebsite, "r2", models.AgentCaller("agent-2"))
		require.NoError(t, err)
		assert.Equal(t, DecisionPending, verdict.Decision)
	})
}

func TestWhitelistedUserApproval(t *testing.T) {
	store := newFakeStore()
	store.agents["agent-1"] = withWhitelistedUser(
		newSet(permissionset.DefaultClearanceUnset,
			newGrant(grant.CategoryWebsite, "r4", grant.ClearanceWhitelistedUser)),
		"trusted-user")
	e := NewEvaluator(store)

	t.Run("whitelisted user approves", func(t *testing.T) {
		verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessWebsite, "r4", models.UserCaller("trusted-user"))
		require.NoError(t, err)
		assert.Equal(t, DecisionApproved, verdict.Decision)
	})

	t.Run("unlisted user with personal permission approves via level 1", func(t *testing.T) {
		store.users["holder"] = newSet(permissionset.DefaultClearanceUnset,
			newGrant(grant.CategoryWebsite, "r4", grant.ClearanceUnset))

		verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessWebsite, "r4", models.UserCaller("holder"))
		require.NoError(t, err)
		assert.Equal(t, DecisionApproved, verdict.Decision)
	})

	t.Run("unlisted user without permission stays pending", func(t *testing.T) {
		store.users["stranger"] = newSet(permissionset.DefaultClearanceUnset)

		verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessWebsite, "r4", models.UserCaller("stranger"))
		require.NoError(t, err)
		assert.Equal(t, DecisionPending, verdict.Decision)
	})
}

func TestPermittedAgentIsAgentOnly(t *testing.T) {
	store := newFakeStore()
	store.agents["agent-1"] = withWhitelistedUser(
		newSet(permissionset.DefaultClearanceUnset,
			newGrant(grant.CategorySafeShell, "r5", grant.ClearancePermittedAgent)),
		"u-whitelisted")
	e := NewEvaluator(store)

	t.Run("user with independent personal grant still pending", func(t *testing.T) {
		store.users["u-strong"] = newSet(permissionset.DefaultClearanceUnset,
			newGrant(grant.CategorySafeShell, "r5", grant.ClearanceIndependent))

		verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionExecuteAsSafeShell, "r5", models.UserCaller("u-strong"))
		require.NoError(t, err)
		assert.Equal(t, DecisionPending, verdict.Decision)
	})

	t.Run("whitelisted user still pending", func(t *testing.T) {
		verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionExecuteAsSafeShell, "r5", models.UserCaller("u-whitelisted"))
		require.NoError(t, err)
		assert.Equal(t, DecisionPending, verdict.Decision)
	})

	t.Run("agent with own permission approves", func(t *testing.T) {
		store.agents["agent-2"] = newSet(permissionset.DefaultClearanceUnset,
			newGrant(grant.CategorySafeShell, "r5", grant.ClearanceUnset))

		verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionExecuteAsSafeShell, "r5", models.AgentCaller("agent-2"))
		require.NoError(t, err)
		assert.Equal(t, DecisionApproved, verdict.Decision)
	})
}

func TestWhitelistedAgentApproval(t *testing.T) {
	store := newFakeStore()
	store.agents["agent-1"] = withWhitelistedAgent(
		withWhitelistedUser(
			newSet(permissionset.DefaultClearanceUnset,
				newGrant(grant.CategoryContainer, "r6", grant.ClearanceWhitelistedAgent)),
			"u-listed"),
		"a-listed")
	e := NewEvaluator(store)

	t.Run("whitelisted agent approves", func(t *testing.T) {
		verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessContainer, "r6", models.AgentCaller("a-listed"))
		require.NoError(t, err)
		assert.Equal(t, DecisionApproved, verdict.Decision)
	})

	t.Run("unlisted agent with own permission approves via level 3", func(t *testing.T) {
		store.agents["a-holder"] = newSet(permissionset.DefaultClearanceUnset,
			newGrant(grant.CategoryContainer, "r6", grant.ClearanceUnset))

		verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessContainer, "r6", models.AgentCaller("a-holder"))
		require.NoError(t, err)
		assert.Equal(t, DecisionApproved, verdict.Decision)
	})

	t.Run("whitelisted user approves via level 2", func(t *testing.T) {
		verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessContainer, "r6", models.UserCaller("u-listed"))
		require.NoError(t, err)
		assert.Equal(t, DecisionApproved, verdict.Decision)
	})

	t.Run("unlisted user without permission stays pending", func(t *testing.T) {
		store.users["nobody"] = newSet(permissionset.DefaultClearanceUnset)

		verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessContainer, "r6", models.UserCaller("nobody"))
		require.NoError(t, err)
		assert.Equal(t, DecisionPending, verdict.Decision)
	})
}

func TestGlobalFlagActions(t *testing.T) {
	store := newFakeStore()
	e := NewEvaluator(store)

	t.Run("flag missing denies", func(t *testing.T) {
		store.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset)

		verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionCreateSubAgent, "", models.UserCaller("u1"))
		require.NoError(t, err)
		assert.Equal(t, DecisionDenied, verdict.Decision)
	})

	t.Run("flag set with independent default approves", func(t *testing.T) {
		set := newSet(permissionset.DefaultClearanceIndependent)
		set.AllowCreateSubAgent = true
		store.agents["agent-2"] = set

		verdict, err := e.Evaluate(context.Background(), "agent-2", job.ActionCreateSubAgent, "", models.Caller{})
		require.NoError(t, err)
		assert.Equal(t, DecisionApproved, verdict.Decision)
	})

	t.Run("flag set with unset default requires level 1 approval", func(t *testing.T) {
		set := newSet(permissionset.DefaultClearanceUnset)
		set.AllowCreateContainer = true
		store.agents["agent-3"] = set

		verdict, err := e.Evaluate(context.Background(), "agent-3", job.ActionCreateContainer, "", models.Caller{})
		require.NoError(t, err)
		assert.Equal(t, DecisionPending, verdict.Decision)
		assert.Equal(t, job.EffectiveClearanceSameLevelUser, verdict.EffectiveClearance)
	})
}

func TestEditAnyTaskOverridesTaskGrant(t *testing.T) {
	store := newFakeStore()
	set := newSet(permissionset.DefaultClearanceIndependent)
	set.AllowEditAnyTask = true
	store.agents["agent-1"] = set
	e := NewEvaluator(store)

	// No task grant at all, but the edit-any-task flag covers the category.
	verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionEditTask, "task-9", models.Caller{})
	require.NoError(t, err)
	assert.Equal(t, DecisionApproved, verdict.Decision)
}

func TestApprovedLevel1HasUserCaller(t *testing.T) {
	// A verdict approved at level 1 always stems from a user caller; an
	// approval at level 3 always stems from an agent caller.
	store := newFakeStore()
	store.agents["agent-1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, "r1", grant.ClearanceSameLevelUser))
	store.users["u1"] = newSet(permissionset.DefaultClearanceUnset,
		newGrant(grant.CategoryWebsite, "r1", grant.ClearanceUnset))
	e := NewEvaluator(store)

	caller := models.UserCaller("u1")
	verdict, err := e.Evaluate(context.Background(), "agent-1", job.ActionAccessWebsite, "r1", caller)
	require.NoError(t, err)
	require.Equal(t, DecisionApproved, verdict.Decision)
	assert.True(t, caller.IsUser())
	assert.False(t, caller.IsAgent())
}
