// Code generated by ent, DO NOT EDIT.

package systemuser

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the systemuser type in the database.
	Label = "system_user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "system_user_id"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldWorkingDirectory holds the string denoting the working_directory field in the database.
	FieldWorkingDirectory = "working_directory"
	// FieldSandboxRoot holds the string denoting the sandbox_root field in the database.
	FieldSandboxRoot = "sandbox_root"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the systemuser in the database.
	Table = "system_users"
)

// Columns holds all SQL columns for systemuser fields.
var Columns = []string{
	FieldID,
	FieldUsername,
	FieldWorkingDirectory,
	FieldSandboxRoot,
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

// OrderOption defines the ordering options for the SystemUser queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByWorkingDirectory orders the results by the working_directory field.
func ByWorkingDirectory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkingDirectory, opts...).ToFunc()
}

// BySandboxRoot orders the results by the sandbox_root field.
func BySandboxRoot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSandboxRoot, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
