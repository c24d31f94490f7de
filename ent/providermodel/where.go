// Code generated by ent, DO NOT EDIT.

package providermodel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEQ(FieldName, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEQ(FieldModelName, v))
}

// EncryptedAPIKey applies equality check predicate on the "encrypted_api_key" field. It's identical to EncryptedAPIKeyEQ.
func EncryptedAPIKey(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEQ(FieldEncryptedAPIKey, v))
}

// BaseURL applies equality check predicate on the "base_url" field. It's identical to BaseURLEQ.
func BaseURL(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEQ(FieldBaseURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldContainsFold(FieldName, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v Provider) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v Provider) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...Provider) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...Provider) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldNotIn(FieldProvider, vs...))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldContainsFold(FieldModelName, v))
}

// EncryptedAPIKeyEQ applies the EQ predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyEQ(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEQ(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyNEQ applies the NEQ predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyNEQ(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldNEQ(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyIn applies the In predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyIn(vs ...string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldIn(FieldEncryptedAPIKey, vs...))
}

// EncryptedAPIKeyNotIn applies the NotIn predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyNotIn(vs ...string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldNotIn(FieldEncryptedAPIKey, vs...))
}

// EncryptedAPIKeyGT applies the GT predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyGT(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldGT(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyGTE applies the GTE predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyGTE(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldGTE(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyLT applies the LT predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyLT(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldLT(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyLTE applies the LTE predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyLTE(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldLTE(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyContains applies the Contains predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyContains(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldContains(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyHasPrefix applies the HasPrefix predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyHasPrefix(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldHasPrefix(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyHasSuffix applies the HasSuffix predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyHasSuffix(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldHasSuffix(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyIsNil applies the IsNil predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyIsNil() predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldIsNull(FieldEncryptedAPIKey))
}

// EncryptedAPIKeyNotNil applies the NotNil predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyNotNil() predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldNotNull(FieldEncryptedAPIKey))
}

// EncryptedAPIKeyEqualFold applies the EqualFold predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyEqualFold(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEqualFold(FieldEncryptedAPIKey, v))
}

// EncryptedAPIKeyContainsFold applies the ContainsFold predicate on the "encrypted_api_key" field.
func EncryptedAPIKeyContainsFold(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldContainsFold(FieldEncryptedAPIKey, v))
}

// BaseURLEQ applies the EQ predicate on the "base_url" field.
func BaseURLEQ(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEQ(FieldBaseURL, v))
}

// BaseURLNEQ applies the NEQ predicate on the "base_url" field.
func BaseURLNEQ(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldNEQ(FieldBaseURL, v))
}

// BaseURLIn applies the In predicate on the "base_url" field.
func BaseURLIn(vs ...string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldIn(FieldBaseURL, vs...))
}

// BaseURLNotIn applies the NotIn predicate on the "base_url" field.
func BaseURLNotIn(vs ...string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldNotIn(FieldBaseURL, vs...))
}

// BaseURLGT applies the GT predicate on the "base_url" field.
func BaseURLGT(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldGT(FieldBaseURL, v))
}

// BaseURLGTE applies the GTE predicate on the "base_url" field.
func BaseURLGTE(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldGTE(FieldBaseURL, v))
}

// BaseURLLT applies the LT predicate on the "base_url" field.
func BaseURLLT(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldLT(FieldBaseURL, v))
}

// BaseURLLTE applies the LTE predicate on the "base_url" field.
func BaseURLLTE(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldLTE(FieldBaseURL, v))
}

// BaseURLContains applies the Contains predicate on the "base_url" field.
func BaseURLContains(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldContains(FieldBaseURL, v))
}

// BaseURLHasPrefix applies the HasPrefix predicate on the "base_url" field.
func BaseURLHasPrefix(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldHasPrefix(FieldBaseURL, v))
}

// BaseURLHasSuffix applies the HasSuffix predicate on the "base_url" field.
func BaseURLHasSuffix(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldHasSuffix(FieldBaseURL, v))
}

// BaseURLIsNil applies the IsNil predicate on the "base_url" field.
func BaseURLIsNil() predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldIsNull(FieldBaseURL))
}

// BaseURLNotNil applies the NotNil predicate on the "base_url" field.
func BaseURLNotNil() predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldNotNull(FieldBaseURL))
}

// BaseURLEqualFold applies the EqualFold predicate on the "base_url" field.
func BaseURLEqualFold(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEqualFold(FieldBaseURL, v))
}

// BaseURLContainsFold applies the ContainsFold predicate on the "base_url" field.
func BaseURLContainsFold(v string) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldContainsFold(FieldBaseURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProviderModel {
	return predicate.ProviderModel(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProviderModel) predicate.ProviderModel {
	return predicate.ProviderModel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProviderModel) predicate.ProviderModel {
	return predicate.ProviderModel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProviderModel) predicate.ProviderModel {
	return predicate.ProviderModel(sql.NotPredicates(p))
}
