package ingest_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pajaro5/roadgraph/config"
	"github.com/pajaro5/roadgraph/graphstore"
	"github.com/pajaro5/roadgraph/ingest"
)

func skipIfNoPostgres(t *testing.T) config.DatabaseConfig {
	t.Helper()
	dsn := os.Getenv("ROADGRAPH_POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("ROADGRAPH_POSTGRES_TEST_DSN not set, skipping Postgres-backed tests")
	}
	// Parsed test DSNs are expected in the form used by docker-compose test
	// fixtures: host/port/db/user/pass are supplied via discrete env vars
	// rather than a single URL, matching config.DatabaseConfig's shape.
	return config.DatabaseConfig{
		Host:         os.Getenv("ROADGRAPH_POSTGRES_TEST_HOST"),
		Port:         5432,
		Database:     os.Getenv("ROADGRAPH_POSTGRES_TEST_DB"),
		Username:     os.Getenv("ROADGRAPH_POSTGRES_TEST_USER"),
		Password:     os.Getenv("ROADGRAPH_POSTGRES_TEST_PASSWORD"),
		SSLMode:      "disable",
		MaxOpenConns: 5,
		MaxIdleConns: 1,
	}
}

func TestPostgresSource_Load(t *testing.T) {
	cfg := skipIfNoPostgres(t)

	ctx := context.Background()
	src, err := ingest.NewPostgresSource(ctx, cfg)
	require.NoError(t, err)
	defer src.Close()

	store := graphstore.NewStore(16)
	ids, err := src.Load(ctx, store)
	require.NoError(t, err)
	require.NotEmpty(t, ids, "expected fixture data to be present")
}
