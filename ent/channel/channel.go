// Code generated by ent, DO NOT EDIT.

package channel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the channel type in the database.
	Label = "channel"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "channel_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDefaultAgentID holds the string denoting the default_agent_id field in the database.
	FieldDefaultAgentID = "default_agent_id"
	// FieldContextID holds the string denoting the context_id field in the database.
	FieldContextID = "context_id"
	// FieldPermissionSetID holds the string denoting the permission_set_id field in the database.
	FieldPermissionSetID = "permission_set_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDefaultAgent holds the string denoting the default_agent edge name in mutations.
	EdgeDefaultAgent = "default_agent"
	// EdgeAllowedAgents holds the string denoting the allowed_agents edge name in mutations.
	EdgeAllowedAgents = "allowed_agents"
	// EdgeContext holds the string denoting the context edge name in mutations.
	EdgeContext = "context"
	// EdgePermissionSet holds the string denoting the permission_set edge name in mutations.
	EdgePermissionSet = "permission_set"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// AgentFieldID holds the string denoting the ID field of the Agent.
	AgentFieldID = "agent_id"
	// ChannelContextFieldID holds the string denoting the ID field of the ChannelContext.
	ChannelContextFieldID = "context_id"
	// PermissionSetFieldID holds the string denoting the ID field of the PermissionSet.
	PermissionSetFieldID = "permission_set_id"
	// ChatMessageFieldID holds the string denoting the ID field of the ChatMessage.
	ChatMessageFieldID = "message_id"
	// Table holds the table name of the channel in the database.
	Table = "channels"
	// DefaultAgentTable is the table that holds the default_agent relation/edge.
	DefaultAgentTable = "channels"
	// DefaultAgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	DefaultAgentInverseTable = "agents"
	// DefaultAgentColumn is the table column denoting the default_agent relation/edge.
	DefaultAgentColumn = "default_agent_id"
	// AllowedAgentsTable is the table that holds the allowed_agents relation/edge.
	AllowedAgentsTable = "agents"
	// AllowedAgentsInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AllowedAgentsInverseTable = "agents"
	// AllowedAgentsColumn is the table column denoting the allowed_agents relation/edge.
	AllowedAgentsColumn = "channel_allowed_agents"
	// ContextTable is the table that holds the context relation/edge.
	ContextTable = "channels"
	// ContextInverseTable is the table name for the ChannelContext entity.
	// It exists in this package in order to avoid circular dependency with the "channelcontext" package.
	ContextInverseTable = "channel_contexts"
	// ContextColumn is the table column denoting the context relation/edge.
	ContextColumn = "context_id"
	// PermissionSetTable is the table that holds the permission_set relation/edge.
	PermissionSetTable = "channels"
	// PermissionSetInverseTable is the table name for the PermissionSet entity.
	// It exists in this package in order to avoid circular dependency with the "permissionset" package.
	PermissionSetInverseTable = "permission_sets"
	// PermissionSetColumn is the table column denoting the permission_set relation/edge.
	PermissionSetColumn = "permission_set_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "chat_messages"
	// MessagesInverseTable is the table name for the ChatMessage entity.
	// It exists in this package in order to avoid circular dependency with the "chatmessage" package.
	MessagesInverseTable = "chat_messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "channel_id"
)

// Columns holds all SQL columns for channel fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDefaultAgentID,
	FieldContextID,
	FieldPermissionSetID,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Channel queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDefaultAgentID orders the results by the default_agent_id field.
func ByDefaultAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultAgentID, opts...).ToFunc()
}

// ByContextID orders the results by the context_id field.
func ByContextID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextID, opts...).ToFunc()
}

// ByPermissionSetID orders the results by the permission_set_id field.
func ByPermissionSetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPermissionSetID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDefaultAgentField orders the results by default_agent field.
func ByDefaultAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDefaultAgentStep(), sql.OrderByField(field, opts...))
	}
}

// ByAllowedAgentsCount orders the results by allowed_agents count.
func ByAllowedAgentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAllowedAgentsStep(), opts...)
	}
}

// ByAllowedAgents orders the results by allowed_agents terms.
func ByAllowedAgents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAllowedAgentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByContextField orders the results by context field.
func ByContextField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContextStep(), sql.OrderByField(field, opts...))
	}
}

// ByPermissionSetField orders the results by permission_set field.
func ByPermissionSetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPermissionSetStep(), sql.OrderByField(field, opts...))
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDefaultAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DefaultAgentInverseTable, AgentFieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, DefaultAgentTable, DefaultAgentColumn),
	)
}
func newAllowedAgentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AllowedAgentsInverseTable, AgentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AllowedAgentsTable, AllowedAgentsColumn),
	)
}
func newContextStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContextInverseTable, ChannelContextFieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ContextTable, ContextColumn),
	)
}
func newPermissionSetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PermissionSetInverseTable, PermissionSetFieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, PermissionSetTable, PermissionSetColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, ChatMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
