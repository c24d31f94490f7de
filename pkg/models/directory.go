package models

import (
	"github.com/codeready-toolchain/warden/ent/infostore"
	"github.com/codeready-toolchain/warden/ent/providermodel"
)

// CreateAgentRequest contains fields for registering an agent.
type CreateAgentRequest struct {
	Name         string `json:"name"`
	SystemPrompt string `json:"system_prompt,omitempty"`
	RoleID       string `json:"role_id,omitempty"`
	ModelID      string `json:"model_id,omitempty"`
}

// UpdateAgentRequest carries the mutable agent fields; nil means unchanged.
type UpdateAgentRequest struct {
	Name         *string `json:"name,omitempty"`
	SystemPrompt *string `json:"system_prompt,omitempty"`
	ModelID      *string `json:"model_id,omitempty"`
}

// CreateUserRequest contains fields for registering a user.
type CreateUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	RoleID string `json:"role_id,omitempty"`
}

// CreateChannelRequest contains fields for creating a channel.
type CreateChannelRequest struct {
	Name            string   `json:"name"`
	DefaultAgentID  string   `json:"default_agent_id,omitempty"`
	ContextID       string   `json:"context_id,omitempty"`
	AllowedAgentIDs []string `json:"allowed_agent_ids,omitempty"`
}

// CreateModelRequest contains fields for registering a provider model.
// The API key arrives in clear text and is encrypted before persistence.
type CreateModelRequest struct {
	Name      string                 `json:"name"`
	Provider  providermodel.Provider `json:"provider"`
	ModelName string                 `json:"model_name"`
	APIKey    string                 `json:"api_key,omitempty"`
	BaseURL   string                 `json:"base_url,omitempty"`
}

// CreateSystemUserRequest contains fields for registering a system user.
type CreateSystemUserRequest struct {
	Username         string `json:"username"`
	WorkingDirectory string `json:"working_directory,omitempty"`
	SandboxRoot      string `json:"sandbox_root,omitempty"`
}

// CreateInfoStoreRequest contains fields for registering an info store.
type CreateInfoStoreRequest struct {
	Name     string         `json:"name"`
	Kind     infostore.Kind `json:"kind"`
	Location string         `json:"location"`
}
