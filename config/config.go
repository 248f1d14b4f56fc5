// Package config defines the roadgraphd configuration schema and the
// layered loader (defaults, then YAML file, then environment variables)
// that populates it.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for roadgraphd.
type Config struct {
	App     AppConfig     `koanf:"app"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
	Tracing TracingConfig `koanf:"tracing"`
	Graph   GraphConfig   `koanf:"graph"`
	Ingest  IngestConfig  `koanf:"ingest"`
	Cache   CacheConfig   `koanf:"cache"`
}

// AppConfig holds general process identity.
type AppConfig struct {
	Name        string `koanf:"name"`
	Environment string `koanf:"environment"`
}

// LogConfig controls the slog handler and, for file output, lumberjack
// rotation.
type LogConfig struct {
	Level      string `koanf:"level"`  // debug, info, warn, error
	Format     string `koanf:"format"` // json, text
	Output     string `koanf:"output"` // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int  `koanf:"max_size"` // MB
	MaxBackups int  `koanf:"max_backups"`
	MaxAge     int  `koanf:"max_age"` // days
	Compress   bool `koanf:"compress"`
}

// MetricsConfig controls the Prometheus metrics endpoint.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Port      int    `koanf:"port"`
	Path      string `koanf:"path"`
	Namespace string `koanf:"namespace"`
}

// TracingConfig controls the OTLP gRPC trace exporter.
type TracingConfig struct {
	Enabled     bool    `koanf:"enabled"`
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	SampleRate  float64 `koanf:"sample_rate"`
}

// GraphConfig sizes the in-memory store.
type GraphConfig struct {
	SizeEstimate int `koanf:"size_estimate"`
}

// IngestConfig controls where vertex/edge data is loaded from.
type IngestConfig struct {
	Source       string         `koanf:"source"` // csv, postgres
	VerticesPath string         `koanf:"vertices_path"`
	EdgesPath    string         `koanf:"edges_path"`
	Database     DatabaseConfig `koanf:"database"`
}

// DatabaseConfig describes a PostgreSQL source for ingest.
type DatabaseConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Database        string        `koanf:"database"`
	Username        string        `koanf:"username"`
	Password        string        `koanf:"password"`
	SSLMode         string        `koanf:"ssl_mode"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

// CacheConfig describes an optional Redis-backed lookup cache in front of
// the store's GetEdge path.
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Address    string        `koanf:"address"`
	Password   string        `koanf:"password"`
	DB         int           `koanf:"db"`
	DefaultTTL time.Duration `koanf:"default_ttl"`
}

// Validate rejects configurations that would fail at construction time
// rather than at first use.
func (c *Config) Validate() error {
	if c.Graph.SizeEstimate < 0 {
		return fmt.Errorf("graph.size_estimate must be >= 0, got %d", c.Graph.SizeEstimate)
	}
	switch c.Ingest.Source {
	case "", "csv", "postgres":
	default:
		return fmt.Errorf("ingest.source must be csv or postgres, got %q", c.Ingest.Source)
	}
	if c.Ingest.Source == "csv" && (c.Ingest.VerticesPath == "" || c.Ingest.EdgesPath == "") {
		return fmt.Errorf("ingest.vertices_path and ingest.edges_path are required when ingest.source is csv")
	}
	return nil
}
