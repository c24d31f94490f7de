// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/grant"
	"github.com/codeready-toolchain/warden/ent/permissionset"
)

// Grant is the model entity for the Grant schema.
type Grant struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PermissionSetID holds the value of the "permission_set_id" field.
	PermissionSetID string `json:"permission_set_id,omitempty"`
	// Category holds the value of the "category" field.
	Category grant.Category `json:"category,omitempty"`
	// Opaque resource identifier, or the wildcard sentinel
	ResourceID string `json:"resource_id,omitempty"`
	// Clearance holds the value of the "clearance" field.
	Clearance grant.Clearance `json:"clearance,omitempty"`
	// Designates the category's default grant for resource resolution
	IsDefault bool `json:"is_default,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GrantQuery when eager-loading is set.
	Edges        GrantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GrantEdges holds the relations/edges for other nodes in the graph.
type GrantEdges struct {
	// PermissionSet holds the value of the permission_set edge.
	PermissionSet *PermissionSet `json:"permission_set,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PermissionSetOrErr returns the PermissionSet value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GrantEdges) PermissionSetOrErr() (*PermissionSet, error) {
	if e.PermissionSet != nil {
		return e.PermissionSet, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: permissionset.Label}
	}
	return nil, &NotLoadedError{edge: "permission_set"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Grant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case grant.FieldIsDefault:
			values[i] = new(sql.NullBool)
		case grant.FieldID, grant.FieldPermissionSetID, grant.FieldCategory, grant.FieldResourceID, grant.FieldClearance:
			values[i] = new(sql.NullString)
		case grant.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Grant fields.
func (_m *Grant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case grant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case grant.FieldPermissionSetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field permission_set_id", values[i])
			} else if value.Valid {
				_m.PermissionSetID = value.String
			}
		case grant.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = grant.Category(value.String)
			}
		case grant.FieldResourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resource_id", values[i])
			} else if value.Valid {
				_m.ResourceID = value.String
			}
		case grant.FieldClearance:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clearance", values[i])
			} else if value.Valid {
				_m.Clearance = grant.Clearance(value.String)
			}
		case grant.FieldIsDefault:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_default", values[i])
			} else if value.Valid {
				_m.IsDefault = value.Bool
			}
		case grant.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Grant.
// This includes values selected through modifiers, order, etc.
func (_m *Grant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPermissionSet queries the "permission_set" edge of the Grant entity.
func (_m *Grant) QueryPermissionSet() *PermissionSetQuery {
	return NewGrantClient(_m.config).QueryPermissionSet(_m)
}

// Update returns a builder for updating this Grant.
// Note that you need to call Grant.Unwrap() before calling this method if this Grant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Grant) Update() *GrantUpdateOne {
	return NewGrantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Grant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Grant) Unwrap() *Grant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Grant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Grant) String() string {
	var builder strings.Builder
	builder.WriteString("Grant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("permission_set_id=")
	builder.WriteString(_m.PermissionSetID)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", _m.Category))
	builder.WriteString(", ")
	builder.WriteString("resource_id=")
	builder.WriteString(_m.ResourceID)
	builder.WriteString(", ")
	builder.WriteString("clearance=")
	builder.WriteString(fmt.Sprintf("%v", _m.Clearance))
	builder.WriteString(", ")
	builder.WriteString("is_default=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDefault))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Grants is a parsable slice of Grant.
type Grants []*Grant
