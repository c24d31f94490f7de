// Package models contains the request/response types and shared constants
// exchanged between the API, the services, and the job engine.
package models

// AllResources is the wildcard resource sentinel. A grant carrying it matches
// every resource of its category. Persisted wildcard grants are immutable.
const AllResources = "11111111-1111-1111-1111-111111111111"

// Caller identifies the principal behind an operation: exactly one of
// UserID or AgentID is set. A zero Caller means "system".
type Caller struct {
	UserID  string `json:"user_id,omitempty"`
	AgentID string `json:"agent_id,omitempty"`
}

// IsUser reports whether the caller is a user principal.
func (c Caller) IsUser() bool { return c.UserID != "" }

// IsAgent reports whether the caller is an agent principal.
func (c Caller) IsAgent() bool { return c.AgentID != "" }

// IsZero reports whether no principal is set.
func (c Caller) IsZero() bool { return c.UserID == "" && c.AgentID == "" }

// UserCaller builds a user principal.
func UserCaller(userID string) Caller { return Caller{UserID: userID} }

// AgentCaller builds an agent principal.
func AgentCaller(agentID string) Caller { return Caller{AgentID: agentID} }
