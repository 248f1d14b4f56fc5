package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/pajaro5/roadgraph/ingest"
	"github.com/pajaro5/roadgraph/logging"
	"github.com/pajaro5/roadgraph/metrics"
)

const serveReloadInterval = 5 * time.Minute

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, _, err := loadStore(ctx, cfg, sourceFlags{
		verticesPath: cfg.Ingest.VerticesPath,
		edgesPath:    cfg.Ingest.EdgesPath,
	})
	if err != nil {
		return err
	}
	inst := metrics.NewInstrumentedStore(store, storeMetrics)

	var cache *ingest.CachedLookup
	if cfg.Cache.Enabled {
		cache, err = ingest.NewCachedLookup(ctx, inst.Store, cfg.Cache)
		if err != nil {
			logging.Log.Warn("cache init failed, serving uncached", "error", err)
		} else {
			defer cache.Close()
		}
	}

	go reloadLoop(ctx, inst, cache)

	logging.Log.Info("serving metrics", "addr", serveMetricsAddr)
	return metrics.Serve(serveMetricsAddr)
}

// reloadLoop periodically rebuilds the graph store from the configured
// source and hot-swaps it into cache, so a long-running process picks up
// upstream data changes without a restart. It returns at once when cache is
// nil, so without the cache no reload takes place.
func reloadLoop(ctx context.Context, inst *metrics.InstrumentedStore, cache *ingest.CachedLookup) {
	if cache == nil {
		return
	}

	ticker := time.NewTicker(serveReloadInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fresh, _, err := loadStore(ctx, cfg, sourceFlags{
				verticesPath: cfg.Ingest.VerticesPath,
				edgesPath:    cfg.Ingest.EdgesPath,
			})
			if err != nil {
				logging.Log.Warn("periodic reload failed", "error", err)
				continue
			}
			cache.Swap(fresh)
			logging.Log.Info("reloaded graph store", "vertices", fresh.VertexCount())
		}
	}
}
