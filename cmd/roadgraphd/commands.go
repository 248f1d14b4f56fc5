package main

import (
	"github.com/spf13/cobra"
)

// --- Shared flag variables ---
var (
	buildVertices string
	buildEdges    string
	buildPostgres string
	buildCompress bool
	buildTrim     bool

	queryVertices string
	queryEdges    string
	queryPostgres string

	serveMetricsAddr string
)

var (
	rootCmd = &cobra.Command{
		Use:   "roadgraphd",
		Short: "Build, query, and serve an in-memory road-network graph",
	}

	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Ingest vertices and edges into a graph store and print summary stats",
		RunE:  runBuild,
	}

	queryCmd = &cobra.Command{
		Use:   "query",
		Short: "Run a single point query against a store rebuilt from the configured source",
	}
	queryContainsCmd = &cobra.Command{
		Use:   "contains <from> <to>",
		Short: "Report whether an edge exists between two vertices",
		Args:  cobra.ExactArgs(2),
		RunE:  runQueryContains,
	}
	queryGetCmd = &cobra.Command{
		Use:   "get <from> <to>",
		Short: "Print the payload of an edge between two vertices",
		Args:  cobra.ExactArgs(2),
		RunE:  runQueryGet,
	}
	queryNeighborsCmd = &cobra.Command{
		Use:   "neighbors <vertex>",
		Short: "List the neighbors of a vertex",
		Args:  cobra.ExactArgs(1),
		RunE:  runQueryNeighbors,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run a long-lived process exposing Prometheus metrics over HTTP",
		RunE:  runServe,
	}
)

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&buildVertices, "vertices", "", "path to the vertex CSV (id,lat,lon)")
	buildCmd.Flags().StringVar(&buildEdges, "edges", "", "path to the edge CSV (from,to,length_m,speed_kph,one_way,class)")
	buildCmd.Flags().StringVar(&buildPostgres, "postgres-dsn", "", "Postgres connection string; overrides --vertices/--edges")
	buildCmd.Flags().BoolVar(&buildCompress, "compress", false, "compact the edge arena and trailing vertex ids after loading")
	buildCmd.Flags().BoolVar(&buildTrim, "trim", false, "shrink the vertex/edge tables to their high-water mark after loading")

	rootCmd.AddCommand(queryCmd)
	queryCmd.PersistentFlags().StringVar(&queryVertices, "vertices", "", "path to the vertex CSV (id,lat,lon)")
	queryCmd.PersistentFlags().StringVar(&queryEdges, "edges", "", "path to the edge CSV (from,to,length_m,speed_kph,one_way,class)")
	queryCmd.PersistentFlags().StringVar(&queryPostgres, "postgres-dsn", "", "Postgres connection string; overrides --vertices/--edges")
	queryCmd.AddCommand(queryContainsCmd)
	queryCmd.AddCommand(queryGetCmd)
	queryCmd.AddCommand(queryNeighborsCmd)

	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveMetricsAddr, "metrics-addr", ":9090", "address the /metrics HTTP listener binds to")
}
