// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/channelcontext"
	"github.com/codeready-toolchain/warden/ent/permissionset"
)

// ChannelContext is the model entity for the ChannelContext schema.
type ChannelContext struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// PermissionSetID holds the value of the "permission_set_id" field.
	PermissionSetID *string `json:"permission_set_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChannelContextQuery when eager-loading is set.
	Edges        ChannelContextEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChannelContextEdges holds the relations/edges for other nodes in the graph.
type ChannelContextEdges struct {
	// PermissionSet holds the value of the permission_set edge.
	PermissionSet *PermissionSet `json:"permission_set,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PermissionSetOrErr returns the PermissionSet value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChannelContextEdges) PermissionSetOrErr() (*PermissionSet, error) {
	if e.PermissionSet != nil {
		return e.PermissionSet, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: permissionset.Label}
	}
	return nil, &NotLoadedError{edge: "permission_set"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChannelContext) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case channelcontext.FieldID, channelcontext.FieldName, channelcontext.FieldPermissionSetID:
			values[i] = new(sql.NullString)
		case channelcontext.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChannelContext fields.
func (_m *ChannelContext) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case channelcontext.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case channelcontext.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case channelcontext.FieldPermissionSetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field permission_set_id", values[i])
			} else if value.Valid {
				_m.PermissionSetID = new(string)
				*_m.PermissionSetID = value.String
			}
		case channelcontext.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ChannelContext.
// This includes values selected through modifiers, order, etc.
func (_m *ChannelContext) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPermissionSet queries the "permission_set" edge of the ChannelContext entity.
func (_m *ChannelContext) QueryPermissionSet() *PermissionSetQuery {
	return NewChannelContextClient(_m.config).QueryPermissionSet(_m)
}

// Update returns a builder for updating this ChannelContext.
// Note that you need to call ChannelContext.Unwrap() before calling this method if this ChannelContext
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChannelContext) Update() *ChannelContextUpdateOne {
	return NewChannelContextClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChannelContext entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChannelContext) Unwrap() *ChannelContext {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChannelContext is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChannelContext) String() string {
	var builder strings.Builder
	builder.WriteString("ChannelContext(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
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

// ChannelContexts is a parsable slice of ChannelContext.
type ChannelContexts []*ChannelContext
