// Code generated by ent, DO NOT EDIT.

package permissionset

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the permissionset type in the database.
	Label = "permission_set"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "permission_set_id"
	// FieldDefaultClearance holds the string denoting the default_clearance field in the database.
	FieldDefaultClearance = "default_clearance"
	// FieldAllowCreateSubAgent holds the string denoting the allow_create_sub_agent field in the database.
	FieldAllowCreateSubAgent = "allow_create_sub_agent"
	// FieldAllowCreateContainer holds the string denoting the allow_create_container field in the database.
	FieldAllowCreateContainer = "allow_create_container"
	// FieldAllowRegisterInfoStore holds the string denoting the allow_register_info_store field in the database.
	FieldAllowRegisterInfoStore = "allow_register_info_store"
	// FieldAllowEditAnyTask holds the string denoting the allow_edit_any_task field in the database.
	FieldAllowEditAnyTask = "allow_edit_any_task"
	// FieldAllowLocalhostBrowser holds the string denoting the allow_localhost_browser field in the database.
	FieldAllowLocalhostBrowser = "allow_localhost_browser"
	// FieldAllowLocalhostCli holds the string denoting the allow_localhost_cli field in the database.
	FieldAllowLocalhostCli = "allow_localhost_cli"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeGrants holds the string denoting the grants edge name in mutations.
	EdgeGrants = "grants"
	// EdgeWhitelistedUsers holds the string denoting the whitelisted_users edge name in mutations.
	EdgeWhitelistedUsers = "whitelisted_users"
	// EdgeWhitelistedAgents holds the string denoting the whitelisted_agents edge name in mutations.
	EdgeWhitelistedAgents = "whitelisted_agents"
	// GrantFieldID holds the string denoting the ID field of the Grant.
	GrantFieldID = "grant_id"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// AgentFieldID holds the string denoting the ID field of the Agent.
	AgentFieldID = "agent_id"
	// Table holds the table name of the permissionset in the database.
	Table = "permission_sets"
	// GrantsTable is the table that holds the grants relation/edge.
	GrantsTable = "grants"
	// GrantsInverseTable is the table name for the Grant entity.
	// It exists in this package in order to avoid circular dependency with the "grant" package.
	GrantsInverseTable = "grants"
	// GrantsColumn is the table column denoting the grants relation/edge.
	GrantsColumn = "permission_set_id"
	// WhitelistedUsersTable is the table that holds the whitelisted_users relation/edge.
	WhitelistedUsersTable = "users"
	// WhitelistedUsersInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	WhitelistedUsersInverseTable = "users"
	// WhitelistedUsersColumn is the table column denoting the whitelisted_users relation/edge.
	WhitelistedUsersColumn = "permission_set_whitelisted_users"
	// WhitelistedAgentsTable is the table that holds the whitelisted_agents relation/edge.
	WhitelistedAgentsTable = "agents"
	// WhitelistedAgentsInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	WhitelistedAgentsInverseTable = "agents"
	// WhitelistedAgentsColumn is the table column denoting the whitelisted_agents relation/edge.
	WhitelistedAgentsColumn = "permission_set_whitelisted_agents"
)

// Columns holds all SQL columns for permissionset fields.
var Columns = []string{
	FieldID,
	FieldDefaultClearance,
	FieldAllowCreateSubAgent,
	FieldAllowCreateContainer,
	FieldAllowRegisterInfoStore,
	FieldAllowEditAnyTask,
	FieldAllowLocalhostBrowser,
	FieldAllowLocalhostCli,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultAllowCreateSubAgent holds the default value on creation for the "allow_create_sub_agent" field.
	DefaultAllowCreateSubAgent bool
	// DefaultAllowCreateContainer holds the default value on creation for the "allow_create_container" field.
	DefaultAllowCreateContainer bool
	// DefaultAllowRegisterInfoStore holds the default value on creation for the "allow_register_info_store" field.
	DefaultAllowRegisterInfoStore bool
	// DefaultAllowEditAnyTask holds the default value on creation for the "allow_edit_any_task" field.
	DefaultAllowEditAnyTask bool
	// DefaultAllowLocalhostBrowser holds the default value on creation for the "allow_localhost_browser" field.
	DefaultAllowLocalhostBrowser bool
	// DefaultAllowLocalhostCli holds the default value on creation for the "allow_localhost_cli" field.
	DefaultAllowLocalhostCli bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// DefaultClearance defines the type for the "default_clearance" enum field.
type DefaultClearance string

// DefaultClearanceUnset is the default value of the DefaultClearance enum.
const DefaultDefaultClearance = DefaultClearanceUnset

// DefaultClearance values.
const (
	DefaultClearanceUnset            DefaultClearance = "unset"
	DefaultClearanceSameLevelUser    DefaultClearance = "same_level_user"
	DefaultClearanceWhitelistedUser  DefaultClearance = "whitelisted_user"
	DefaultClearancePermittedAgent   DefaultClearance = "permitted_agent"
	DefaultClearanceWhitelistedAgent DefaultClearance = "whitelisted_agent"
	DefaultClearanceIndependent      DefaultClearance = "independent"
)

func (dc DefaultClearance) String() string {
	return string(dc)
}

// DefaultClearanceValidator is a validator for the "default_clearance" field enum values. It is called by the builders before save.
func DefaultClearanceValidator(dc DefaultClearance) error {
	switch dc {
	case DefaultClearanceUnset, DefaultClearanceSameLevelUser, DefaultClearanceWhitelistedUser, DefaultClearancePermittedAgent, DefaultClearanceWhitelistedAgent, DefaultClearanceIndependent:
		return nil
	default:
		return fmt.Errorf("permissionset: invalid enum value for default_clearance field: %q", dc)
	}
}

// OrderOption defines the ordering options for the PermissionSet queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDefaultClearance orders the results by the default_clearance field.
func ByDefaultClearance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultClearance, opts...).ToFunc()
}

// ByAllowCreateSubAgent orders the results by the allow_create_sub_agent field.
func ByAllowCreateSubAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllowCreateSubAgent, opts...).ToFunc()
}

// ByAllowCreateContainer orders the results by the allow_create_container field.
func ByAllowCreateContainer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllowCreateContainer, opts...).ToFunc()
}

// ByAllowRegisterInfoStore orders the results by the allow_register_info_store field.
func ByAllowRegisterInfoStore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllowRegisterInfoStore, opts...).ToFunc()
}

// ByAllowEditAnyTask orders the results by the allow_edit_any_task field.
func ByAllowEditAnyTask(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllowEditAnyTask, opts...).ToFunc()
}

// ByAllowLocalhostBrowser orders the results by the allow_localhost_browser field.
func ByAllowLocalhostBrowser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllowLocalhostBrowser, opts...).ToFunc()
}

// ByAllowLocalhostCli orders the results by the allow_localhost_cli field.
func ByAllowLocalhostCli(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllowLocalhostCli, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByGrantsCount orders the results by grants count.
func ByGrantsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGrantsStep(), opts...)
	}
}

// ByGrants orders the results by grants terms.
func ByGrants(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGrantsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWhitelistedUsersCount orders the results by whitelisted_users count.
func ByWhitelistedUsersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWhitelistedUsersStep(), opts...)
	}
}

// ByWhitelistedUsers orders the results by whitelisted_users terms.
func ByWhitelistedUsers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWhitelistedUsersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWhitelistedAgentsCount orders the results by whitelisted_agents count.
func ByWhitelistedAgentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWhitelistedAgentsStep(), opts...)
	}
}

// ByWhitelistedAgents orders the results by whitelisted_agents terms.
func ByWhitelistedAgents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWhitelistedAgentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newGrantsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GrantsInverseTable, GrantFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GrantsTable, GrantsColumn),
	)
}
func newWhitelistedUsersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WhitelistedUsersInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WhitelistedUsersTable, WhitelistedUsersColumn),
	)
}
func newWhitelistedAgentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WhitelistedAgentsInverseTable, AgentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WhitelistedAgentsTable, WhitelistedAgentsColumn),
	)
}
