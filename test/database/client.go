// Package database provides helpers for constructing database clients in tests.
package database

import (
	"testing"

	"github.com/codeready-toolchain/warden/pkg/database"
	"github.com/codeready-toolchain/warden/test/util"
)

// NewTestClient creates a fully-functional database.Client backed by an
// isolated test schema. Migrations run via ent's schema tooling, which
// includes the partial unique indexes declared on the schemas.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
