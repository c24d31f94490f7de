// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/providermodel"
)

// ProviderModel is the model entity for the ProviderModel schema.
type ProviderModel struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider providermodel.Provider `json:"provider,omitempty"`
	// Provider-side model identifier (e.g. 'whisper-1')
	ModelName string `json:"model_name,omitempty"`
	// Base64 of salt||nonce||ciphertext
	EncryptedAPIKey string `json:"encrypted_api_key,omitempty"`
	// BaseURL holds the value of the "base_url" field.
	BaseURL *string `json:"base_url,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProviderModel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case providermodel.FieldID, providermodel.FieldName, providermodel.FieldProvider, providermodel.FieldModelName, providermodel.FieldEncryptedAPIKey, providermodel.FieldBaseURL:
			values[i] = new(sql.NullString)
		case providermodel.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProviderModel fields.
func (_m *ProviderModel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case providermodel.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case providermodel.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case providermodel.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = providermodel.Provider(value.String)
			}
		case providermodel.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case providermodel.FieldEncryptedAPIKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field encrypted_api_key", values[i])
			} else if value.Valid {
				_m.EncryptedAPIKey = value.String
			}
		case providermodel.FieldBaseURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base_url", values[i])
			} else if value.Valid {
				_m.BaseURL = new(string)
				*_m.BaseURL = value.String
			}
		case providermodel.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ProviderModel.
// This includes values selected through modifiers, order, etc.
func (_m *ProviderModel) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProviderModel.
// Note that you need to call ProviderModel.Unwrap() before calling this method if this ProviderModel
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProviderModel) Update() *ProviderModelUpdateOne {
	return NewProviderModelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProviderModel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProviderModel) Unwrap() *ProviderModel {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProviderModel is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProviderModel) String() string {
	var builder strings.Builder
	builder.WriteString("ProviderModel(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(fmt.Sprintf("%v", _m.Provider))
	builder.WriteString(", ")
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
	builder.WriteString(", ")
	builder.WriteString("encrypted_api_key=")
	builder.WriteString(_m.EncryptedAPIKey)
	builder.WriteString(", ")
	if v := _m.BaseURL; v != nil {
		builder.WriteString("base_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProviderModels is a parsable slice of ProviderModel.
type ProviderModels []*ProviderModel
