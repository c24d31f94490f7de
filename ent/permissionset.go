// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/permissionset"
)

// PermissionSet is the model entity for the PermissionSet schema.
type PermissionSet struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Fallback clearance when a grant carries none
	DefaultClearance permissionset.DefaultClearance `json:"default_clearance,omitempty"`
	// AllowCreateSubAgent holds the value of the "allow_create_sub_agent" field.
	AllowCreateSubAgent bool `json:"allow_create_sub_agent,omitempty"`
	// AllowCreateContainer holds the value of the "allow_create_container" field.
	AllowCreateContainer bool `json:"allow_create_container,omitempty"`
	// AllowRegisterInfoStore holds the value of the "allow_register_info_store" field.
	AllowRegisterInfoStore bool `json:"allow_register_info_store,omitempty"`
	// AllowEditAnyTask holds the value of the "allow_edit_any_task" field.
	AllowEditAnyTask bool `json:"allow_edit_any_task,omitempty"`
	// AllowLocalhostBrowser holds the value of the "allow_localhost_browser" field.
	AllowLocalhostBrowser bool `json:"allow_localhost_browser,omitempty"`
	// AllowLocalhostCli holds the value of the "allow_localhost_cli" field.
	AllowLocalhostCli bool `json:"allow_localhost_cli,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PermissionSetQuery when eager-loading is set.
	Edges        PermissionSetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PermissionSetEdges holds the relations/edges for other nodes in the graph.
type PermissionSetEdges struct {
	// Grants holds the value of the grants edge.
	Grants []*Grant `json:"grants,omitempty"`
	// Users qualified as WhitelistedUser approvers
	WhitelistedUsers []*User `json:"whitelisted_users,omitempty"`
	// Agents qualified as WhitelistedAgent approvers
	WhitelistedAgents []*Agent `json:"whitelisted_agents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// GrantsOrErr returns the Grants value or an error if the edge
// was not loaded in eager-loading.
func (e PermissionSetEdges) GrantsOrErr() ([]*Grant, error) {
	if e.loadedTypes[0] {
		return e.Grants, nil
	}
	return nil, &NotLoadedError{edge: "grants"}
}

// WhitelistedUsersOrErr returns the WhitelistedUsers value or an error if the edge
// was not loaded in eager-loading.
func (e PermissionSetEdges) WhitelistedUsersOrErr() ([]*User, error) {
	if e.loadedTypes[1] {
		return e.WhitelistedUsers, nil
	}
	return nil, &NotLoadedError{edge: "whitelisted_users"}
}

// WhitelistedAgentsOrErr returns the WhitelistedAgents value or an error if the edge
// was not loaded in eager-loading.
func (e PermissionSetEdges) WhitelistedAgentsOrErr() ([]*Agent, error) {
	if e.loadedTypes[2] {
		return e.WhitelistedAgents, nil
	}
	return nil, &NotLoadedError{edge: "whitelisted_agents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PermissionSet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case permissionset.FieldAllowCreateSubAgent, permissionset.FieldAllowCreateContainer, permissionset.FieldAllowRegisterInfoStore, permissionset.FieldAllowEditAnyTask, permissionset.FieldAllowLocalhostBrowser, permissionset.FieldAllowLocalhostCli:
			values[i] = new(sql.NullBool)
		case permissionset.FieldID, permissionset.FieldDefaultClearance:
			values[i] = new(sql.NullString)
		case permissionset.FieldCreatedAt, permissionset.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PermissionSet fields.
func (_m *PermissionSet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case permissionset.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case permissionset.FieldDefaultClearance:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_clearance", values[i])
			} else if value.Valid {
				_m.DefaultClearance = permissionset.DefaultClearance(value.String)
			}
		case permissionset.FieldAllowCreateSubAgent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field allow_create_sub_agent", values[i])
			} else if value.Valid {
				_m.AllowCreateSubAgent = value.Bool
			}
		case permissionset.FieldAllowCreateContainer:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field allow_create_container", values[i])
			} else if value.Valid {
				_m.AllowCreateContainer = value.Bool
			}
		case permissionset.FieldAllowRegisterInfoStore:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field allow_register_info_store", values[i])
			} else if value.Valid {
				_m.AllowRegisterInfoStore = value.Bool
			}
		case permissionset.FieldAllowEditAnyTask:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field allow_edit_any_task", values[i])
			} else if value.Valid {
				_m.AllowEditAnyTask = value.Bool
			}
		case permissionset.FieldAllowLocalhostBrowser:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field allow_localhost_browser", values[i])
			} else if value.Valid {
				_m.AllowLocalhostBrowser = value.Bool
			}
		case permissionset.FieldAllowLocalhostCli:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field allow_localhost_cli", values[i])
			} else if value.Valid {
				_m.AllowLocalhostCli = value.Bool
			}
		case permissionset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case permissionset.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PermissionSet.
// This includes values selected through modifiers, order, etc.
func (_m *PermissionSet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGrants queries the "grants" edge of the PermissionSet entity.
func (_m *PermissionSet) QueryGrants() *GrantQuery {
	return NewPermissionSetClient(_m.config).QueryGrants(_m)
}

// QueryWhitelistedUsers queries the "whitelisted_users" edge of the PermissionSet entity.
func (_m *PermissionSet) QueryWhitelistedUsers() *UserQuery {
	return NewPermissionSetClient(_m.config).QueryWhitelistedUsers(_m)
}

// QueryWhitelistedAgents queries the "whitelisted_agents" edge of the PermissionSet entity.
func (_m *PermissionSet) QueryWhitelistedAgents() *AgentQuery {
	return NewPermissionSetClient(_m.config).QueryWhitelistedAgents(_m)
}

// Update returns a builder for updating this PermissionSet.
// Note that you need to call PermissionSet.Unwrap() before calling this method if this PermissionSet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PermissionSet) Update() *PermissionSetUpdateOne {
	return NewPermissionSetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PermissionSet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PermissionSet) Unwrap() *PermissionSet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PermissionSet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PermissionSet) String() string {
	var builder strings.Builder
	builder.WriteString("PermissionSet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("default_clearance=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultClearance))
	builder.WriteString(", ")
	builder.WriteString("allow_create_sub_agent=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowCreateSubAgent))
	builder.WriteString(", ")
	builder.WriteString("allow_create_container=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowCreateContainer))
	builder.WriteString(", ")
	builder.WriteString("allow_register_info_store=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowRegisterInfoStore))
	builder.WriteString(", ")
	builder.WriteString("allow_edit_any_task=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowEditAnyTask))
	builder.WriteString(", ")
	builder.WriteString("allow_localhost_browser=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowLocalhostBrowser))
	builder.WriteString(", ")
	builder.WriteString("allow_localhost_cli=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowLocalhostCli))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PermissionSets is a parsable slice of PermissionSet.
type PermissionSets []*PermissionSet
