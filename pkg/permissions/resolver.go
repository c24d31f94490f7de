package permissions

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/grant"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/pkg/models"
)

// DefaultResolver fills in a missing resource id for per-resource actions by
// walking the channel, its context, and the acting agent's role for a
// designated default grant.
type DefaultResolver struct {
	store Store
}

// NewDefaultResolver creates a resolver over the given permission store.
func NewDefaultResolver(store Store) *DefaultResolver {
	return &DefaultResolver{store: store}
}

// Resolve returns the default resource id for the action, or "" when no
// layer designates one. Wildcard default grants are skipped: the sentinel is
// not an executable resource, so resolution continues down the chain.
func (r *DefaultResolver) Resolve(ctx context.Context, channelID, agentID string, action job.Action) (string, error) {
	category, ok := CategoryFor(action)
	if !ok {
		return "", nil
	}

	if channelID != "" {
		set, err := r.store.GetChannelPermissionSet(ctx, channelID)
		if err != nil {
			return "", fmt.Errorf("loading channel permission set: %w", err)
		}
		if id := defaultGrantResource(set, category); id != "" {
			return id, nil
		}

		set, err = r.store.GetChannelContextPermissionSet(ctx, channelID)
		if err != nil {
			return "", fmt.Errorf("loading channel context permission set: %w", err)
		}
		if id := defaultGrantResource(set, category); id != "" {
			return id, nil
		}
	}

	set, err := r.store.GetAgentPermissionSet(ctx, agentID)
	if err != nil {
		// Role/permission problems surface in evaluation, not here.
		return "", nil
	}
	return defaultGrantResource(set, category), nil
}

func defaultGrantResource(set *ent.PermissionSet, category grant.Category) string {
	if set == nil {
		return ""
	}
	for _, g := range set.Edges.Grants {
		if g.Category != category || !g.IsDefault {
			continue
		}
		if g.ResourceID == models.AllResources {
			continue
		}
		return g.ResourceID
	}
	return ""
}
