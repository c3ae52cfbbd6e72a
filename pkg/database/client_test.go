package database_test

import (
	"context"
	"os"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/pkg/database"
	"github.com/oikos-sh/brigade/test/util"
)

func newTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)
	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreatePartialIndexes(ctx, drv))

	return database.NewClientFromEnt(entClient, db)
}

func TestClientHealth(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := database.Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
}

func TestSingleLiveDeploymentIndex(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Deployment.Create().
		SetID("dep-20260824T100000-aaaaaa").
		SetImage("registry.local/app:1").
		SetStatus("in_progress").
		Save(ctx)
	require.NoError(t, err)

	// A second live deployment violates the partial unique index.
	_, err = client.Deployment.Create().
		SetID("dep-20260824T100001-bbbbbb").
		SetImage("registry.local/app:2").
		SetStatus("pending").
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	// A terminal deployment is fine alongside the live one.
	_, err = client.Deployment.Create().
		SetID("dep-20260824T100002-cccccc").
		SetImage("registry.local/app:0").
		SetStatus("completed").
		Save(ctx)
	require.NoError(t, err)
}

func TestTaskSearchIndex(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	u, err := client.User.Create().SetEmail("search@test.local").Save(ctx)
	require.NoError(t, err)

	_, err = client.CommisJob.Create().
		SetCommisID("c-search-1").
		SetOwnerID(u.ID).
		SetTask("investigate production memory leak in the gateway").
		SetModel("gpt-4o").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.CommisJob.Create().
		SetCommisID("c-search-2").
		SetOwnerID(u.ID).
		SetTask("rotate the staging TLS certificates").
		SetModel("gpt-4o").
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT commis_id FROM commis_jobs
		WHERE to_tsvector('english', task) @@ to_tsquery('english', $1)`,
		"memory & production")
	require.NoError(t, err)
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"c-search-1"}, ids)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clear := func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	}
	clear()
	t.Cleanup(clear)

	t.Run("defaults", func(t *testing.T) {
		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "brigade", cfg.Database)
		assert.Equal(t, 10, cfg.MaxOpenConns)
	})

	t.Run("invalid port", func(t *testing.T) {
		os.Setenv("DB_PORT", "not-a-number")
		t.Cleanup(func() { os.Unsetenv("DB_PORT") })
		_, err := database.LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestConfigDSN(t *testing.T) {
	cfg := database.Config{
		Host: "db.internal", Port: 5433, User: "svc", Password: "pw",
		Database: "brigade", SSLMode: "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=svc password=pw dbname=brigade sslmode=require",
		cfg.DSN())
}
