// Code generated by ent, DO NOT EDIT.

package channelcontext

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the channelcontext type in the database.
	Label = "channel_context"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "context_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPermissionSetID holds the string denoting the permission_set_id field in the database.
	FieldPermissionSetID = "permission_set_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePermissionSet holds the string denoting the permission_set edge name in mutations.
	EdgePermissionSet = "permission_set"
	// PermissionSetFieldID holds the string denoting the ID field of the PermissionSet.
	PermissionSetFieldID = "permission_set_id"
	// Table holds the table name of the channelcontext in the database.
	Table = "channel_contexts"
	// PermissionSetTable is the table that holds the permission_set relation/edge.
	PermissionSetTable = "channel_contexts"
	// PermissionSetInverseTable is the table name for the PermissionSet entity.
	// It exists in this package in order to avoid circular dependency with the "permissionset" package.
	PermissionSetInverseTable = "permission_sets"
	// PermissionSetColumn is the table column denoting the permission_set relation/edge.
	PermissionSetColumn = "permission_set_id"
)

// Columns holds all SQL columns for channelcontext fields.
var Columns = []string{
	FieldID,
	FieldName,
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

// OrderOption defines the ordering options for the ChannelContext queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPermissionSetID orders the results by the permission_set_id field.
func ByPermissionSetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPermissionSetID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPermissionSetField orders the results by permission_set field.
func ByPermissionSetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPermissionSetStep(), sql.OrderByField(field, opts...))
	}
}
func newPermissionSetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PermissionSetInverseTable, PermissionSetFieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, PermissionSetTable, PermissionSetColumn),
	)
}
