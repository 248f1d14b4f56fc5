package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pajaro5/roadgraph/config"
	"github.com/pajaro5/roadgraph/graphstore"
	"github.com/pajaro5/roadgraph/ingest"
)

// sourceFlags holds the ingestion source flags shared by build, query, and
// serve: either a CSV vertex/edge pair or a Postgres DSN.
type sourceFlags struct {
	verticesPath string
	edgesPath    string
	postgresDSN  string
}

// loadStore builds a fresh Store from whichever source flags are set,
// preferring --postgres-dsn when both are given.
func loadStore(ctx context.Context, cfg *config.Config, sf sourceFlags) (*graphstore.Store, map[string]graphstore.VertexID, error) {
	store := graphstore.NewStore(cfg.Graph.SizeEstimate)

	if sf.postgresDSN != "" {
		src, err := ingest.NewPostgresSourceFromDSN(ctx, sf.postgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		defer src.Close()

		ids, err := src.Load(ctx, store)
		if err != nil {
			return nil, nil, fmt.Errorf("load from postgres: %w", err)
		}
		return store, ids, nil
	}

	if sf.verticesPath == "" || sf.edgesPath == "" {
		return nil, nil, fmt.Errorf("either --postgres-dsn or both --vertices and --edges must be set")
	}

	verticesFile, err := os.Open(sf.verticesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open vertices file: %w", err)
	}
	defer verticesFile.Close()

	edgesFile, err := os.Open(sf.edgesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open edges file: %w", err)
	}
	defer edgesFile.Close()

	ids, err := ingest.LoadCSV(ctx, store, verticesFile, edgesFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load from csv: %w", err)
	}
	return store, ids, nil
}
