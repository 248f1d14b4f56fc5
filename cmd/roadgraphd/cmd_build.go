package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pajaro5/roadgraph/metrics"
)

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, ids, err := loadStore(ctx, cfg, sourceFlags{
		verticesPath: buildVertices,
		edgesPath:    buildEdges,
		postgresDSN:  buildPostgres,
	})
	if err != nil {
		return err
	}

	inst := metrics.NewInstrumentedStore(store, storeMetrics)

	if buildCompress {
		inst.Compress()
	}
	if buildTrim {
		inst.Trim()
	}

	live, capacity := inst.EdgeArenaUsage()
	fmt.Printf("vertices loaded:   %d\n", len(ids))
	fmt.Printf("store vertices:    %d\n", inst.VertexCount())
	fmt.Printf("edge arena live:   %d / %d\n", live, capacity)
	return nil
}
