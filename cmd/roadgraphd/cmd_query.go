package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pajaro5/roadgraph/graphstore"
	"github.com/pajaro5/roadgraph/payload/roadseg"
)

func parseVertexID(s string) (graphstore.VertexID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid vertex id %q: %w", s, err)
	}
	return graphstore.VertexID(v), nil
}

func querySourceFlags() sourceFlags {
	return sourceFlags{verticesPath: queryVertices, edgesPath: queryEdges, postgresDSN: queryPostgres}
}

func runQueryContains(cmd *cobra.Command, args []string) error {
	from, err := parseVertexID(args[0])
	if err != nil {
		return err
	}
	to, err := parseVertexID(args[1])
	if err != nil {
		return err
	}

	store, _, err := loadStore(context.Background(), cfg, querySourceFlags())
	if err != nil {
		return err
	}

	ok, err := store.ContainsEdge(from, to)
	if err != nil {
		return err
	}
	fmt.Println(ok)
	return nil
}

func runQueryGet(cmd *cobra.Command, args []string) error {
	from, err := parseVertexID(args[0])
	if err != nil {
		return err
	}
	to, err := parseVertexID(args[1])
	if err != nil {
		return err
	}

	store, _, err := loadStore(context.Background(), cfg, querySourceFlags())
	if err != nil {
		return err
	}

	payload, ok, err := store.GetEdge(from, to)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("no edge")
		return nil
	}

	seg, isSeg := payload.(roadseg.Segment)
	if !isSeg {
		fmt.Printf("%+v\n", payload)
		return nil
	}
	fmt.Printf("length_m=%.1f speed_kph=%.1f one_way=%v class=%s travel_time_s=%.1f\n",
		seg.LengthM, seg.SpeedLimitKPH, seg.OneWay, seg.Class, seg.TravelTimeSeconds())
	return nil
}

func runQueryNeighbors(cmd *cobra.Command, args []string) error {
	v, err := parseVertexID(args[0])
	if err != nil {
		return err
	}

	store, _, err := loadStore(context.Background(), cfg, querySourceFlags())
	if err != nil {
		return err
	}

	neighbors, err := store.GetEdges(v)
	if err != nil {
		return err
	}

	for _, n := range neighbors {
		fmt.Printf("%d\n", n.Neighbor)
	}
	return nil
}
