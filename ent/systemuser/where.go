// Code generated by ent, DO NOT EDIT.

package systemuser

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/warden/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldContainsFold(FieldID, id))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldEQ(FieldUsername, v))
}

// WorkingDirectory applies equality check predicate on the "working_directory" field. It's identical to WorkingDirectoryEQ.
func WorkingDirectory(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldEQ(FieldWorkingDirectory, v))
}

// SandboxRoot applies equality check predicate on the "sandbox_root" field. It's identical to SandboxRootEQ.
func SandboxRoot(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldEQ(FieldSandboxRoot, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldEQ(FieldCreatedAt, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldContainsFold(FieldUsername, v))
}

// WorkingDirectoryEQ applies the EQ predicate on the "working_directory" field.
func WorkingDirectoryEQ(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldEQ(FieldWorkingDirectory, v))
}

// WorkingDirectoryNEQ applies the NEQ predicate on the "working_directory" field.
func WorkingDirectoryNEQ(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldNEQ(FieldWorkingDirectory, v))
}

// WorkingDirectoryIn applies the In predicate on the "working_directory" field.
func WorkingDirectoryIn(vs ...string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldIn(FieldWorkingDirectory, vs...))
}

// WorkingDirectoryNotIn applies the NotIn predicate on the "working_directory" field.
func WorkingDirectoryNotIn(vs ...string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldNotIn(FieldWorkingDirectory, vs...))
}

// WorkingDirectoryGT applies the GT predicate on the "working_directory" field.
func WorkingDirectoryGT(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldGT(FieldWorkingDirectory, v))
}

// WorkingDirectoryGTE applies the GTE predicate on the "working_directory" field.
func WorkingDirectoryGTE(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldGTE(FieldWorkingDirectory, v))
}

// WorkingDirectoryLT applies the LT predicate on the "working_directory" field.
func WorkingDirectoryLT(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldLT(FieldWorkingDirectory, v))
}

// WorkingDirectoryLTE applies the LTE predicate on the "working_directory" field.
func WorkingDirectoryLTE(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldLTE(FieldWorkingDirectory, v))
}

// WorkingDirectoryContains applies the Contains predicate on the "working_directory" field.
func WorkingDirectoryContains(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldContains(FieldWorkingDirectory, v))
}

// WorkingDirectoryHasPrefix applies the HasPrefix predicate on the "working_directory" field.
func WorkingDirectoryHasPrefix(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldHasPrefix(FieldWorkingDirectory, v))
}

// WorkingDirectoryHasSuffix applies the HasSuffix predicate on the "working_directory" field.
func WorkingDirectoryHasSuffix(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldHasSuffix(FieldWorkingDirectory, v))
}

// WorkingDirectoryIsNil applies the IsNil predicate on the "working_directory" field.
func WorkingDirectoryIsNil() predicate.SystemUser {
	return predicate.SystemUser(sql.FieldIsNull(FieldWorkingDirectory))
}

// WorkingDirectoryNotNil applies the NotNil predicate on the "working_directory" field.
func WorkingDirectoryNotNil() predicate.SystemUser {
	return predicate.SystemUser(sql.FieldNotNull(FieldWorkingDirectory))
}

// WorkingDirectoryEqualFold applies the EqualFold predicate on the "working_directory" field.
func WorkingDirectoryEqualFold(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldEqualFold(FieldWorkingDirectory, v))
}

// WorkingDirectoryContainsFold applies the ContainsFold predicate on the "working_directory" field.
func WorkingDirectoryContainsFold(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldContainsFold(FieldWorkingDirectory, v))
}

// SandboxRootEQ applies the EQ predicate on the "sandbox_root" field.
func SandboxRootEQ(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldEQ(FieldSandboxRoot, v))
}

// SandboxRootNEQ applies the NEQ predicate on the "sandbox_root" field.
func SandboxRootNEQ(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldNEQ(FieldSandboxRoot, v))
}

// SandboxRootIn applies the In predicate on the "sandbox_root" field.
func SandboxRootIn(vs ...string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldIn(FieldSandboxRoot, vs...))
}

// SandboxRootNotIn applies the NotIn predicate on the "sandbox_root" field.
func SandboxRootNotIn(vs ...string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldNotIn(FieldSandboxRoot, vs...))
}

// SandboxRootGT applies the GT predicate on the "sandbox_root" field.
func SandboxRootGT(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldGT(FieldSandboxRoot, v))
}

// SandboxRootGTE applies the GTE predicate on the "sandbox_root" field.
func SandboxRootGTE(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldGTE(FieldSandboxRoot, v))
}

// SandboxRootLT applies the LT predicate on the "sandbox_root" field.
func SandboxRootLT(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldLT(FieldSandboxRoot, v))
}

// SandboxRootLTE applies the LTE predicate on the "sandbox_root" field.
func SandboxRootLTE(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldLTE(FieldSandboxRoot, v))
}

// SandboxRootContains applies the Contains predicate on the "sandbox_root" field.
func SandboxRootContains(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldContains(FieldSandboxRoot, v))
}

// SandboxRootHasPrefix applies the HasPrefix predicate on the "sandbox_root" field.
func SandboxRootHasPrefix(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldHasPrefix(FieldSandboxRoot, v))
}

// SandboxRootHasSuffix applies the HasSuffix predicate on the "sandbox_root" field.
func SandboxRootHasSuffix(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldHasSuffix(FieldSandboxRoot, v))
}

// SandboxRootIsNil applies the IsNil predicate on the "sandbox_root" field.
func SandboxRootIsNil() predicate.SystemUser {
	return predicate.SystemUser(sql.FieldIsNull(FieldSandboxRoot))
}

// SandboxRootNotNil applies the NotNil predicate on the "sandbox_root" field.
func SandboxRootNotNil() predicate.SystemUser {
	return predicate.SystemUser(sql.FieldNotNull(FieldSandboxRoot))
}

// SandboxRootEqualFold applies the EqualFold predicate on the "sandbox_root" field.
func SandboxRootEqualFold(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldEqualFold(FieldSandboxRoot, v))
}

// SandboxRootContainsFold applies the ContainsFold predicate on the "sandbox_root" field.
func SandboxRootContainsFold(v string) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldContainsFold(FieldSandboxRoot, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SystemUser {
	return predicate.SystemUser(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SystemUser) predicate.SystemUser {
	return predicate.SystemUser(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SystemUser) predicate.SystemUser {
	return predicate.SystemUser(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SystemUser) predicate.SystemUser {
	return predicate.SystemUser(sql.NotPredicates(p))
}
