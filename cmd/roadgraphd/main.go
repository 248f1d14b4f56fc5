package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pajaro5/roadgraph/config"
	"github.com/pajaro5/roadgraph/logging"
	"github.com/pajaro5/roadgraph/metrics"
	"github.com/pajaro5/roadgraph/telemetry"
)

// cfg and tel are populated in rootCmd's PersistentPreRunE before any
// subcommand runs, and are read by the subcommand Run funcs in the other
// cmd_*.go files.
var (
	cfg          *config.Config
	tel          *telemetry.Provider
	storeMetrics *metrics.StoreMetrics
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.NewLoader().Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded

		logging.InitWithConfig(cfg.Log)

		ctx := context.Background()
		provider, err := telemetry.Init(ctx, telemetry.Config{
			Enabled:     cfg.Tracing.Enabled,
			Endpoint:    cfg.Tracing.Endpoint,
			ServiceName: cfg.Tracing.ServiceName,
			Environment: cfg.App.Environment,
			SampleRate:  cfg.Tracing.SampleRate,
		})
		if err != nil {
			logging.Log.Warn("telemetry init failed, continuing without tracing", "error", err)
		}
		tel = provider

		storeMetrics = metrics.InitMetrics(cfg.Metrics.Namespace)

		return nil
	}

	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if tel != nil {
			return tel.Shutdown(context.Background())
		}
		return nil
	}
}
