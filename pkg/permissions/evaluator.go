package permissions

import (
	"context"
	"errors"
	"fmt"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/grant"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/services"
)

// Decision is the outcome of a clearance evaluation.
type Decision string

const (
	// DecisionApproved hands the job to execution.
	DecisionApproved Decision = "approved"
	// DecisionPending awaits a qualified approver.
	DecisionPending Decision = "pending"
	// DecisionDenied is final.
	DecisionDenied Decision = "denied"
)

// Verdict is the result of evaluating one (agent, action, resource, caller)
// tuple.
type Verdict struct {
	Decision           Decision
	EffectiveClearance job.EffectiveClearance
	// Reason names the satisfied rule for approvals and the missing
	// permission for denials.
	Reason string
}

// clearanceLevels orders the enum for fallback logic. Approval rules never
// compare levels numerically: the satisfaction table below is explicit
// because level 3 is agent-only even though 2 < 3.
var clearanceLevels = map[job.EffectiveClearance]int{
	job.EffectiveClearanceUnset:            0,
	job.EffectiveClearanceSameLevelUser:    1,
	job.EffectiveClearanceWhitelistedUser:  2,
	job.EffectiveClearancePermittedAgent:   3,
	job.EffectiveClearanceWhitelistedAgent: 4,
	job.EffectiveClearanceIndependent:      5,
}

// Store loads the permission sets the evaluator reads. Implemented by
// services.PermissionService.
type Store interface {
	GetAgentPermissionSet(ctx context.Context, agentID string) (*ent.PermissionSet, error)
	GetUserPermissionSet(ctx context.Context, userID string) (*ent.PermissionSet, error)
	GetChannelPermissionSet(ctx context.Context, channelID string) (*ent.PermissionSet, error)
	GetChannelContextPermissionSet(ctx context.Context, channelID string) (*ent.PermissionSet, error)
}

// Evaluator resolves clearance verdicts.
type Evaluator struct {
	store Store
}

// NewEvaluator creates an evaluator over the given permission store.
func NewEvaluator(store Store) *Evaluator {
	return &Evaluator{store: store}
}

// Evaluate decides whether the acting agent may perform the action on the
// resource, and whether the caller qualifies as the approver. Permission
// problems come back as Denied/Pending verdicts, never as errors; the error
// return is for infrastructure failures only.
func (e *Evaluator) Evaluate(ctx context.Context, agentID string, action job.Action, resourceID string, caller models.Caller) (*Verdict, error) {
	set, err := e.store.GetAgentPermissionSet(ctx, agentID)
	if err != nil {
		if errors.Is(err, services.ErrNoRole) || errors.Is(err, services.ErrNotFound) {
			return &Verdict{Decision: DecisionDenied, Reason: "agent has no role or permission set"}, nil
		}
		return nil, fmt.Errorf("loading agent permission set: %w", err)
	}

	effective, reason, allowed := agentSideCheck(set, action, resourceID)
	if !allowed {
		return &Verdict{Decision: DecisionDenied, Reason: reason}, nil
	}

	if effective == job.EffectiveClearanceIndependent {
		return &Verdict{
			Decision:           DecisionApproved,
			EffectiveClearance: effective,
			Reason:             "independent clearance",
		}, nil
	}

	if caller.IsZero() {
		return &Verdict{Decision: DecisionPending, EffectiveClearance: effective, Reason: "no caller to approve"}, nil
	}

	ok, rule, err := e.Satisfies(ctx, caller, set, action, resourceID, effective)
	if err != nil {
		return nil, err
	}
	if ok {
		return &Verdict{Decision: DecisionApproved, EffectiveClearance: effective, Reason: rule}, nil
	}
	return &Verdict{Decision: DecisionPending, EffectiveClearance: effective, Reason: rule}, nil
}

// agentSideCheck verifies the acting agent's own permission and computes the
// effective clearance. Returns allowed=false with the denial reason when the
// set carries no matching flag or grant.
func agentSideCheck(set *ent.PermissionSet, action job.Action, resourceID string) (job.EffectiveClearance, string, bool) {
	if IsGlobalFlagAction(action) {
		if !hasGlobalFlag(set, action) {
			return "", fmt.Sprintf("agent does not have the %s permission", action), false
		}
		return fallbackClearance(grant.ClearanceUnset, set), "", true
	}

	category, ok := CategoryFor(action)
	if !ok {
		return "", fmt.Sprintf("unknown action kind %q", action), false
	}

	// The edit-any-task flag overrides the per-task grant requirement. The
	// source history is ambiguous on whether this override belongs in the
	// dispatch table; it is honored here and surfaced in the reason string.
	if action == job.ActionEditTask && set.AllowEditAnyTask {
		return fallbackClearance(grant.ClearanceUnset, set), "", true
	}

	if resourceID == "" {
		return "", "ResourceId required: no resource given and no default grant resolved", false
	}

	matched := findGrant(set, category, resourceID)
	if matched == nil {
		return "", fmt.Sprintf("agent does not have %s access to resource %s", category, resourceID), false
	}
	return fallbackClearance(matched.Clearance, set), "", true
}

// findGrant returns the set's grant for the category and resource, preferring
// an exact match over the wildcard. Both yield the same verdict when both
// exist with equal clearance; the exact match wins the tie so its clearance
// is the one recorded.
func findGrant(set *ent.PermissionSet, category grant.Category, resourceID string) *ent.Grant {
	var wildcard *ent.Grant
	for _, g := range set.Edges.Grants {
		if g.Category != category {
			continue
		}
		if g.ResourceID == resourceID {
			return g
		}
		if g.ResourceID == models.AllResources {
			wildcard = g
		}
	}
	return wildcard
}

// fallbackClearance applies the fallback chain: grant value, then the set's
// default, then the hard default of SameLevelUser.
func fallbackClearance(granted grant.Clearance, set *ent.PermissionSet) job.EffectiveClearance {
	if granted != grant.ClearanceUnset && granted != "" {
		return job.EffectiveClearance(granted)
	}
	if set.DefaultClearance != "" && clearanceLevels[job.EffectiveClearance(set.DefaultClearance)] > 0 {
		return job.EffectiveClearance(set.DefaultClearance)
	}
	return job.EffectiveClearanceSameLevelUser
}

// Satisfies applies the approver-side satisfaction table: whether the caller
// qualifies for the required clearance with respect to the agent's owning
// permission set. The returned string names the satisfied rule, or the
// failure when ok is false.
func (e *Evaluator) Satisfies(ctx context.Context, caller models.Caller, agentSet *ent.PermissionSet, action job.Action, resourceID string, required job.EffectiveClearance) (bool, string, error) {
	switch required {
	case job.EffectiveClearanceIndependent:
		return true, "independent clearance", nil

	case job.EffectiveClearanceSameLevelUser, job.EffectiveClearanceUnset, "":
		if !caller.IsUser() {
			return false, "requires a user who personally holds the permission", nil
		}
		return e.userHoldsPermission(ctx, caller.UserID, action, resourceID)

	case job.EffectiveClearanceWhitelistedUser:
		if !caller.IsUser() {
			return false, "requires a whitelisted or personally permitted user", nil
		}
		if isWhitelistedUser(agentSet, caller.UserID) {
			return true, "user is whitelisted", nil
		}
		return e.userHoldsPermission(ctx, caller.UserID, action, resourceID)

	case job.EffectiveClearancePermittedAgent:
		// Agent-only: no user qualifies, whitelisted or not.
		if !caller.IsAgent() {
			return false, "requires an agent whose own permission set allows the action", nil
		}
		return e.agentHoldsPermission(ctx, caller.AgentID, action, resourceID)

	case job.EffectiveClearanceWhitelistedAgent:
		if caller.IsAgent() {
			if isWhitelistedAgent(agentSet, caller.AgentID) {
				return true, "agent is whitelisted", nil
			}
			return e.agentHoldsPermission(ctx, caller.AgentID, action, resourceID)
		}
		if isWhitelistedUser(agentSet, caller.UserID) {
			return true, "user is whitelisted", nil
		}
		return e.userHoldsPermission(ctx, caller.UserID, action, resourceID)
	}

	return false, fmt.Sprintf("unknown clearance %q", required), nil
}

// userHoldsPermission reports whether the user's own role-held permission set
// allows the same action on the same resource.
func (e *Evaluator) userHoldsPermission(ctx context.Context, userID string, action job.Action, resourceID string) (bool, string, error) {
	set, err := e.store.GetUserPermissionSet(ctx, userID)
	if err != nil {
		if errors.Is(err, services.ErrNoRole) || errors.Is(err, services.ErrNotFound) {
			return false, "user has no role or permission set", nil
		}
		return false, "", fmt.Errorf("loading user permission set: %w", err)
	}
	if _, _, allowed := agentSideCheck(set, action, resourceID); allowed {
		return true, "user personally holds the permission", nil
	}
	return false, "user does not hold the permission", nil
}

// agentHoldsPermission reports whether the approving agent's own permission
// set allows the same action on the same resource.
func (e *Evaluator) agentHoldsPermission(ctx context.Context, agentID string, action job.Action, resourceID string) (bool, string, error) {
	set, err := e.store.GetAgentPermissionSet(ctx, agentID)
	if err != nil {
		if errors.Is(err, services.ErrNoRole) || errors.Is(err, services.ErrNotFound) {
			return false, "approving agent has no role or permission set", nil
		}
		return false, "", fmt.Errorf("loading approving agent permission set: %w", err)
	}
	if _, _, allowed := agentSideCheck(set, action, resourceID); allowed {
		return true, "agent's own permission set allows the action", nil
	}
	return false, "agent's permission set does not allow the action", nil
}

func isWhitelistedUser(set *ent.PermissionSet, userID string) bool {
	for _, u := range set.Edges.WhitelistedUsers {
		if u.ID == userID {
			return true
		}
	}
	return false
}

func isWhitelistedAgent(set *ent.PermissionSet, agentID string) bool {
	for _, a := range set.Edges.WhitelistedAgents {
		if a.ID == agentID {
			return true
		}
	}
	return false
}
