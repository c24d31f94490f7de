// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/systemuser"
)

// SystemUser is the model entity for the SystemUser schema.
type SystemUser struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// WorkingDirectory holds the value of the "working_directory" field.
	WorkingDirectory *string `json:"working_directory,omitempty"`
	// SandboxRoot holds the value of the "sandbox_root" field.
	SandboxRoot *string `json:"sandbox_root,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SystemUser) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case systemuser.FieldID, systemuser.FieldUsername, systemuser.FieldWorkingDirectory, systemuser.FieldSandboxRoot:
			values[i] = new(sql.NullString)
		case systemuser.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SystemUser fields.
func (_m *SystemUser) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case systemuser.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case systemuser.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case systemuser.FieldWorkingDirectory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field working_directory", values[i])
			} else if value.Valid {
				_m.WorkingDirectory = new(string)
				*_m.WorkingDirectory = value.String
			}
		case systemuser.FieldSandboxRoot:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sandbox_root", values[i])
			} else if value.Valid {
				_m.SandboxRoot = new(string)
				*_m.SandboxRoot = value.String
			}
		case systemuser.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SystemUser.
// This includes values selected through modifiers, order, etc.
func (_m *SystemUser) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SystemUser.
// Note that you need to call SystemUser.Unwrap() before calling this method if this SystemUser
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SystemUser) Update() *SystemUserUpdateOne {
	return NewSystemUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SystemUser entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SystemUser) Unwrap() *SystemUser {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SystemUser is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SystemUser) String() string {
	var builder strings.Builder
	builder.WriteString("SystemUser(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	if v := _m.WorkingDirectory; v != nil {
		builder.WriteString("working_directory=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SandboxRoot; v != nil {
		builder.WriteString("sandbox_root=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SystemUsers is a parsable slice of SystemUser.
type SystemUsers []*SystemUser
