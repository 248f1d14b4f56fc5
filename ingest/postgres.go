package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pajaro5/roadgraph/config"
	"github.com/pajaro5/roadgraph/graphstore"
	"github.com/pajaro5/roadgraph/logging"
	"github.com/pajaro5/roadgraph/payload/roadseg"
)

// PostgresSource loads vertices and edges from a Postgres database into a
// graphstore.Store.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource opens a connection pool per cfg and verifies
// connectivity with a Ping.
func NewPostgresSource(ctx context.Context, cfg config.DatabaseConfig) (*PostgresSource, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.SSLMode,
	)
	return newPostgresSource(ctx, dsn, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
}

// NewPostgresSourceFromDSN opens a connection pool from a raw connection
// string, for callers (such as the CLI's --postgres-dsn flag) that don't
// otherwise build a config.DatabaseConfig.
func NewPostgresSourceFromDSN(ctx context.Context, dsn string) (*PostgresSource, error) {
	return newPostgresSource(ctx, dsn, 10, 2, 0)
}

func newPostgresSource(ctx context.Context, dsn string, maxOpenConns, maxIdleConns int, maxConnLifetime time.Duration) (*PostgresSource, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}
	if maxOpenConns > 0 {
		poolCfg.MaxConns = int32(maxOpenConns)
	}
	if maxIdleConns > 0 {
		poolCfg.MinConns = int32(maxIdleConns)
	}
	poolCfg.MaxConnLifetime = maxConnLifetime
	poolCfg.ConnConfig.ConnectTimeout = 10 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logging.Log.Info("connected to postgres")

	return &PostgresSource{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (s *PostgresSource) Close() {
	s.pool.Close()
}

// Stats returns the underlying connection pool's statistics.
func (s *PostgresSource) Stats() *pgxpool.Stat {
	return s.pool.Stat()
}

// HealthCheck verifies the pool can still serve a trivial query.
func (s *PostgresSource) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result int
	if err := s.pool.QueryRow(ctx, "SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	return nil
}

// Load reads every row of the nodes and edges tables and populates store,
// returning the external-id -> VertexID remapping.
//
// Expected schema:
//
//	nodes(id text primary key, lat real, lon real)
//	edges(from_id text, to_id text, length_m real, speed_limit_kph real,
//	    one_way boolean, class smallint)
func (s *PostgresSource) Load(ctx context.Context, store *graphstore.Store) (map[string]graphstore.VertexID, error) {
	ctx, span := otel.Tracer("ingest").Start(ctx, "ingest.load_postgres")
	defer span.End()
	start := time.Now()

	ids, err := s.loadVertices(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("load vertices: %w", err)
	}

	edgeCount, err := s.loadEdges(ctx, store, ids)
	if err != nil {
		return nil, fmt.Errorf("load edges: %w", err)
	}

	span.SetAttributes(
		attribute.Int("roadgraph.vertex_count", len(ids)),
		attribute.Int("roadgraph.edge_count", edgeCount),
		attribute.Int64("roadgraph.elapsed_ms", time.Since(start).Milliseconds()),
	)

	return ids, nil
}

func (s *PostgresSource) loadVertices(ctx context.Context, store *graphstore.Store) (map[string]graphstore.VertexID, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, lat, lon FROM nodes")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]graphstore.VertexID)
	for rows.Next() {
		var extID string
		var lat, lon float32
		if err := rows.Scan(&extID, &lat, &lon); err != nil {
			return nil, err
		}
		ids[extID] = store.AddVertex(lat, lon)
	}

	return ids, rows.Err()
}

func (s *PostgresSource) loadEdges(ctx context.Context, store *graphstore.Store, ids map[string]graphstore.VertexID) (int, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT from_id, to_id, length_m, speed_limit_kph, one_way, class FROM edges")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var fromExt, toExt string
		var length, speed float32
		var oneWay bool
		var class int16
		if err := rows.Scan(&fromExt, &toExt, &length, &speed, &oneWay, &class); err != nil {
			return count, err
		}

		from, ok := ids[fromExt]
		if !ok {
			return count, fmt.Errorf("edges references unknown vertex id %q", fromExt)
		}
		to, ok := ids[toExt]
		if !ok {
			return count, fmt.Errorf("edges references unknown vertex id %q", toExt)
		}

		seg := roadseg.New(length, speed, oneWay, roadseg.Class(class))
		if err := store.AddEdge(from, to, seg, roadseg.ClassOverlap{}); err != nil {
			return count, fmt.Errorf("add edge %s->%s: %w", fromExt, toExt, err)
		}
		count++
	}

	return count, rows.Err()
}
