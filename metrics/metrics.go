// Package metrics exposes Prometheus instrumentation for the graph store,
// and an InstrumentedStore decorator that records it around the store's
// AddEdge, RemoveEdge and Compress operations.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pajaro5/roadgraph/graphstore"
)

var (
	once     sync.Once
	instance *StoreMetrics
)

// StoreMetrics holds the Prometheus collectors for graph store operations.
type StoreMetrics struct {
	AddEdgeTotal       *prometheus.CounterVec
	RemoveEdgeTotal    *prometheus.CounterVec
	CompressDuration   prometheus.Histogram
	VertexCount        prometheus.Gauge
	EdgeArenaLiveRatio prometheus.Gauge
}

// InitMetrics registers and returns the process-wide StoreMetrics,
// constructing it on first call and returning the same instance thereafter.
func InitMetrics(namespace string) *StoreMetrics {
	once.Do(func() {
		instance = &StoreMetrics{
			AddEdgeTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "addedge_total",
					Help:      "Total AddEdge calls by outcome.",
				},
				[]string{"outcome"},
			),
			RemoveEdgeTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "removeedge_total",
					Help:      "Total RemoveEdge calls by outcome.",
				},
				[]string{"outcome"},
			),
			CompressDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: namespace,
					Name:      "compress_duration_seconds",
					Help:      "Duration of Compress calls.",
					Buckets:   prometheus.DefBuckets,
				},
			),
			VertexCount: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: namespace,
					Name:      "vertex_count",
					Help:      "Current vertex count in the graph store.",
				},
			),
			EdgeArenaLiveRatio: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: namespace,
					Name:      "edge_arena_live_ratio",
					Help:      "Live edge records divided by allocated edge arena capacity.",
				},
			),
		}
	})
	return instance
}

// InstrumentedStore wraps a *graphstore.Store, recording operation counts
// and latencies without altering the store's semantics.
type InstrumentedStore struct {
	*graphstore.Store
	m *StoreMetrics
}

// NewInstrumentedStore wraps store with the given metrics collectors and
// primes the gauges from store's current state.
func NewInstrumentedStore(store *graphstore.Store, m *StoreMetrics) *InstrumentedStore {
	s := &InstrumentedStore{Store: store, m: m}
	s.refreshGauges()
	return s
}

// AddEdge instruments Store.AddEdge, recording outcome and refreshing the
// vertex/arena gauges.
func (s *InstrumentedStore) AddEdge(u, w graphstore.VertexID, payload graphstore.Payload, cmp graphstore.Comparator) error {
	err := s.Store.AddEdge(u, w, payload, cmp)
	s.m.AddEdgeTotal.WithLabelValues(outcome(err)).Inc()
	s.refreshGauges()
	return err
}

// RemoveEdge instruments Store.RemoveEdge, recording outcome and refreshing
// the vertex/arena gauges.
func (s *InstrumentedStore) RemoveEdge(u, w graphstore.VertexID) error {
	err := s.Store.RemoveEdge(u, w)
	s.m.RemoveEdgeTotal.WithLabelValues(outcome(err)).Inc()
	s.refreshGauges()
	return err
}

// Compress instruments Store.Compress, recording its duration and the
// resulting vertex count and edge arena live ratio.
func (s *InstrumentedStore) Compress() {
	timer := prometheus.NewTimer(s.m.CompressDuration)
	defer timer.ObserveDuration()

	s.Store.Compress()
	s.refreshGauges()
}

// refreshGauges sets VertexCount and EdgeArenaLiveRatio from the
// underlying store's current state.
func (s *InstrumentedStore) refreshGauges() {
	s.m.VertexCount.Set(float64(s.Store.VertexCount()))

	live, capacity := s.Store.EdgeArenaUsage()
	if capacity == 0 {
		s.m.EdgeArenaLiveRatio.Set(0)
		return
	}
	s.m.EdgeArenaLiveRatio.Set(float64(live) / float64(capacity))
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Handler returns the HTTP handler that exposes the registered collectors.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve starts a minimal HTTP server exposing /metrics and /health at
// addr. It blocks until the listener fails or is shut down.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return server.ListenAndServe()
}
