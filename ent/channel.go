// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/agent"
	"github.com/codeready-toolchain/warden/ent/channel"
	"github.com/codeready-toolchain/warden/ent/channelcontext"
	"github.com/codeready-toolchain/warden/ent/permissionset"
)

// Channel is the model entity for the Channel schema.
type Channel struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// DefaultAgentID holds the value of the "default_agent_id" field.
	DefaultAgentID *string `json:"default_agent_id,omitempty"`
	// ContextID holds the value of the "context_id" field.
	ContextID *string `json:"context_id,omitempty"`
	// PermissionSetID holds the value of the "permission_set_id" field.
	PermissionSetID *string `json:"permission_set_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChannelQuery when eager-loading is set.
	Edges        ChannelEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChannelEdges holds the relations/edges for other nodes in the graph.
type ChannelEdges struct {
	// DefaultAgent holds the value of the default_agent edge.
	DefaultAgent *Agent `json:"default_agent,omitempty"`
	// AllowedAgents holds the value of the allowed_agents edge.
	AllowedAgents []*Agent `json:"allowed_agents,omitempty"`
	// Context holds the value of the context edge.
	Context *ChannelContext `json:"context,omitempty"`
	// PermissionSet holds the value of the permission_set edge.
	PermissionSet *PermissionSet `json:"permission_set,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*ChatMessage `json:"messages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// DefaultAgentOrErr returns the DefaultAgent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChannelEdges) DefaultAgentOrErr() (*Agent, error) {
	if e.DefaultAgent != nil {
		return e.DefaultAgent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "default_agent"}
}

// AllowedAgentsOrErr returns the AllowedAgents value or an error if the edge
// was not loaded in eager-loading.
func (e ChannelEdges) AllowedAgentsOrErr() ([]*Agent, error) {
	if e.loadedTypes[1] {
		return e.AllowedAgents, nil
	}
	return nil, &NotLoadedError{edge: "allowed_agents"}
}

// ContextOrErr returns the Context value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChannelEdges) ContextOrErr() (*ChannelContext, error) {
	if e.Context != nil {
		return e.Context, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: channelcontext.Label}
	}
	return nil, &NotLoadedError{edge: "context"}
}

// PermissionSetOrErr returns the PermissionSet value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChannelEdges) PermissionSetOrErr() (*PermissionSet, error) {
	if e.PermissionSet != nil {
		return e.PermissionSet, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: permissionset.Label}
	}
	return nil, &NotLoadedError{edge: "permission_set"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e ChannelEdges) MessagesOrErr() ([]*ChatMessage, error) {
	if e.loadedTypes[4] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Channel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case channel.FieldID, channel.FieldName, channel.FieldDefaultAgentID, channel.FieldContextID, channel.FieldPermissionSetID:
			values[i] = new(sql.NullString)
		case channel.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Channel fields.
func (_m *Channel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case channel.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case channel.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case channel.FieldDefaultAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_agent_id", values[i])
			} else if value.Valid {
				_m.DefaultAgentID = new(string)
				*_m.DefaultAgentID = value.String
			}
		case channel.FieldContextID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context_id", values[i])
			} else if value.Valid {
				_m.ContextID = new(string)
				*_m.ContextID = value.String
			}
		case channel.FieldPermissionSetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field permission_set_id", values[i])
			} else if value.Valid {
				_m.PermissionSetID = new(string)
				*_m.PermissionSetID = value.String
			}
		case channel.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Channel.
// This includes values selected through modifiers, order, etc.
func (_m *Channel) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDefaultAgent queries the "default_agent" edge of the Channel entity.
func (_m *Channel) QueryDefaultAgent() *AgentQuery {
	return NewChannelClient(_m.config).QueryDefaultAgent(_m)
}

// QueryAllowedAgents queries the "allowed_agents" edge of the Channel entity.
func (_m *Channel) QueryAllowedAgents() *AgentQuery {
	return NewChannelClient(_m.config).QueryAllowedAgents(_m)
}

// QueryContext queries the "context" edge of the Channel entity.
func (_m *Channel) QueryContext() *ChannelContextQuery {
	return NewChannelClient(_m.config).QueryContext(_m)
}

// QueryPermissionSet queries the "permission_set" edge of the Channel entity.
func (_m *Channel) QueryPermissionSet() *PermissionSetQuery {
	return NewChannelClient(_m.config).QueryPermissionSet(_m)
}

// QueryMessages queries the "messages" edge of the Channel entity.
func (_m *Channel) QueryMessages() *ChatMessageQuery {
	return NewChannelClient(_m.config).QueryMessages(_m)
}

// Update returns a builder for updating this Channel.
// Note that you need to call Channel.Unwrap() before calling this method if this Channel
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Channel) Update() *ChannelUpdateOne {
	return NewChannelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Channel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Channel) Unwrap() *Channel {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Channel is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Channel) String() string {
	var builder strings.Builder
	builder.WriteString("Channel(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.DefaultAgentID; v != nil {
		builder.WriteString("default_agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ContextID; v != nil {
		builder.WriteString("context_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PermissionSetID; v != nil {
		builder.WriteString("permission_set_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Channels is a parsable slice of Channel.
type Channels []*Channel
