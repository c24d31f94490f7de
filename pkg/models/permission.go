package models

import (
	"github.com/codeready-toolchain/warden/ent/grant"
	"github.com/codeready-toolchain/warden/ent/permissionset"
)

// CreatePermissionSetRequest contains fields for creating a permission set,
// optionally seeded with grants.
type CreatePermissionSetRequest struct {
	DefaultClearance       permissionset.DefaultClearance `json:"default_clearance,omitempty"`
	AllowCreateSubAgent    bool                           `json:"allow_create_sub_agent,omitempty"`
	AllowCreateContainer   bool                           `json:"allow_create_container,omitempty"`
	AllowRegisterInfoStore bool                           `json:"allow_register_info_store,omitempty"`
	AllowEditAnyTask       bool                           `json:"allow_edit_any_task,omitempty"`
	AllowLocalhostBrowser  bool                           `json:"allow_localhost_browser,omitempty"`
	AllowLocalhostCli      bool                           `json:"allow_localhost_cli,omitempty"`
	Grants                 []GrantInput                   `json:"grants,omitempty"`
}

// GrantInput describes one grant row to create.
type GrantInput struct {
	Category   grant.Category  `json:"category"`
	ResourceID string          `json:"resource_id"`
	Clearance  grant.Clearance `json:"clearance,omitempty"`
	IsDefault  bool            `json:"is_default,omitempty"`
}

// UpdateGrantRequest carries the mutable grant fields. Wildcard grants reject
// every update.
type UpdateGrantRequest struct {
	Clearance *grant.Clearance `json:"clearance,omitempty"`
	IsDefault *bool            `json:"is_default,omitempty"`
}

// CreateRoleRequest contains fields for creating a role with its permission set.
type CreateRoleRequest struct {
	Name          string                     `json:"name"`
	Description   string                     `json:"description,omitempty"`
	PermissionSet CreatePermissionSetRequest `json:"permission_set"`
}
