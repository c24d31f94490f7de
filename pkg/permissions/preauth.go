package permissions

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/pkg/models"
)

// PreAuthorizer decides whether a channel or its context carries enough
// prior consent to auto-approve a Pending verdict. Channel pre-authorization
// counts as WhitelistedUser-level authority: it satisfies levels 2 and 4
// directly, level 1 only when the session user independently holds the
// permission, and never level 3.
type PreAuthorizer struct {
	store     Store
	evaluator *Evaluator
}

// NewPreAuthorizer creates a pre-authorizer over the given store.
func NewPreAuthorizer(store Store, evaluator *Evaluator) *PreAuthorizer {
	return &PreAuthorizer{store: store, evaluator: evaluator}
}

// PreAuthorize reports whether the channel (or its context) pre-authorizes
// the pending action at the given effective clearance, on behalf of the
// session user.
func (p *PreAuthorizer) PreAuthorize(ctx context.Context, channelID, sessionUserID string, action job.Action, resourceID string, required job.EffectiveClearance) (bool, error) {
	if channelID == "" {
		return false, nil
	}

	switch required {
	case job.EffectiveClearanceWhitelistedUser, job.EffectiveClearanceWhitelistedAgent:
		// Channel consent substitutes for whitelist membership.
	case job.EffectiveClearanceSameLevelUser:
		// Channel consent alone is not enough: the session user must
		// independently hold the permission.
		if sessionUserID == "" {
			return false, nil
		}
		holds, _, err := p.evaluator.userHoldsPermission(ctx, sessionUserID, action, resourceID)
		if err != nil {
			return false, err
		}
		if !holds {
			return false, nil
		}
	default:
		// PermittedAgent is never pre-authorized; Independent never reaches
		// here.
		return false, nil
	}

	set, err := p.store.GetChannelPermissionSet(ctx, channelID)
	if err != nil {
		return false, fmt.Errorf("loading channel permission set: %w", err)
	}
	if setMatchesAction(set, action, resourceID) {
		return true, nil
	}

	set, err = p.store.GetChannelContextPermissionSet(ctx, channelID)
	if err != nil {
		return false, fmt.Errorf("loading channel context permission set: %w", err)
	}
	return setMatchesAction(set, action, resourceID), nil
}

// setMatchesAction reports whether the set carries a matching grant for the
// action's category and resource (exact or wildcard; clearance ignored), or
// the boolean flag for global-flag actions.
func setMatchesAction(set *ent.PermissionSet, action job.Action, resourceID string) bool {
	if set == nil {
		return false
	}
	if IsGlobalFlagAction(action) {
		return hasGlobalFlag(set, action)
	}
	category, ok := CategoryFor(action)
	if !ok {
		return false
	}
	for _, g := range set.Edges.Grants {
		if g.Category != category {
			continue
		}
		if g.ResourceID == resourceID || g.ResourceID == models.AllResources {
			return true
		}
	}
	return false
}
