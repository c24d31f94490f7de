// Code generated by ent, DO NOT EDIT.

package grant

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the grant type in the database.
	Label = "grant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "grant_id"
	// FieldPermissionSetID holds the string denoting the permission_set_id field in the database.
	FieldPermissionSetID = "permission_set_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldResourceID holds the string denoting the resource_id field in the database.
	FieldResourceID = "resource_id"
	// FieldClearance holds the string denoting the clearance field in the database.
	FieldClearance = "clearance"
	// FieldIsDefault holds the string denoting the is_default field in the database.
	FieldIsDefault = "is_default"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePermissionSet holds the string denoting the permission_set edge name in mutations.
	EdgePermissionSet = "permission_set"
	// PermissionSetFieldID holds the string denoting the ID field of the PermissionSet.
	PermissionSetFieldID = "permission_set_id"
	// Table holds the table name of the grant in the database.
	Table = "grants"
	// PermissionSetTable is the table that holds the permission_set relation/edge.
	PermissionSetTable = "grants"
	// PermissionSetInverseTable is the table name for the PermissionSet entity.
	// It exists in this package in order to avoid circular dependency with the "permissionset" package.
	PermissionSetInverseTable = "permission_sets"
	// PermissionSetColumn is the table column denoting the permission_set relation/edge.
	PermissionSetColumn = "permission_set_id"
)

// Columns holds all SQL columns for grant fields.
var Columns = []string{
	FieldID,
	FieldPermissionSetID,
	FieldCategory,
	FieldResourceID,
	FieldClearance,
	FieldIsDefault,
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
	// DefaultIsDefault holds the default value on creation for the "is_default" field.
	DefaultIsDefault bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Category defines the type for the "category" enum field.
type Category string

// Category values.
const (
	CategoryDangerousShell    Category = "dangerous_shell"
	CategorySafeShell         Category = "safe_shell"
	CategoryLocalInfoStore    Category = "local_info_store"
	CategoryExternalInfoStore Category = "external_info_store"
	CategoryWebsite           Category = "website"
	CategorySearchEngine      Category = "search_engine"
	CategoryContainer         Category = "container"
	CategoryAudioDevice       Category = "audio_device"
	CategoryAgent             Category = "agent"
	CategoryTask              Category = "task"
	CategorySkill             Category = "skill"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryDangerousShell, CategorySafeShell, CategoryLocalInfoStore, CategoryExternalInfoStore, CategoryWebsite, CategorySearchEngine, CategoryContainer, CategoryAudioDevice, CategoryAgent, CategoryTask, CategorySkill:
		return nil
	default:
		return fmt.Errorf("grant: invalid enum value for category field: %q", c)
	}
}

// Clearance defines the type for the "clearance" enum field.
type Clearance string

// ClearanceUnset is the default value of the Clearance enum.
const DefaultClearance = ClearanceUnset

// Clearance values.
const (
	ClearanceUnset            Clearance = "unset"
	ClearanceSameLevelUser    Clearance = "same_level_user"
	ClearanceWhitelistedUser  Clearance = "whitelisted_user"
	ClearancePermittedAgent   Clearance = "permitted_agent"
	ClearanceWhitelistedAgent Clearance = "whitelisted_agent"
	ClearanceIndependent      Clearance = "independent"
)

func (c Clearance) String() string {
	return string(c)
}

// ClearanceValidator is a validator for the "clearance" field enum values. It is called by the builders before save.
func ClearanceValidator(c Clearance) error {
	switch c {
	case ClearanceUnset, ClearanceSameLevelUser, ClearanceWhitelistedUser, ClearancePermittedAgent, ClearanceWhitelistedAgent, ClearanceIndependent:
		return nil
	default:
		return fmt.Errorf("grant: invalid enum value for clearance field: %q", c)
	}
}

// OrderOption defines the ordering options for the Grant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPermissionSetID orders the results by the permission_set_id field.
func ByPermissionSetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPermissionSetID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByResourceID orders the results by the resource_id field.
func ByResourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceID, opts...).ToFunc()
}

// ByClearance orders the results by the clearance field.
func ByClearance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClearance, opts...).ToFunc()
}

// ByIsDefault orders the results by the is_default field.
func ByIsDefault(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDefault, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.M2O, true, PermissionSetTable, PermissionSetColumn),
	)
}
