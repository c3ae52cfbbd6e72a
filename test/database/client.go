// Package database provides test database clients backed by per-test schemas.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/oikos-sh/brigade/pkg/database"
	"github.com/oikos-sh/brigade/test/util"
)

// NewTestClient creates a test database client on an isolated schema.
// In CI (when CI_DATABASE_URL is set): connects to the external PostgreSQL
// service container. In local dev: uses a shared testcontainer. Cleanup is
// registered on the test.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	err := database.CreatePartialIndexes(ctx, drv)
	require.NoError(t, err)

	return database.NewClientFromEnt(entClient, db)
}
