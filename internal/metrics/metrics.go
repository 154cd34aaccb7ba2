// Package metrics exposes Prometheus collectors for remote fetches and
// discarded stale responses.
//
// Collectors live on a private registry so tests and multiple program
// instances never collide on the global default registerer. The endpoint is
// only served when an address is configured.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Fetch outcomes used as the "outcome" label.
const (
	OutcomeOK     = "ok"
	OutcomeStatus = "status"
	OutcomeError  = "error"
)

// Metrics bundles the collectors used by the client and the UI.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	fetches *prometheus.CounterVec
	latency *prometheus.HistogramVec
	stale   *prometheus.CounterVec
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moviefinder_fetch_total",
			Help: "Remote API fetches by resource and outcome.",
		}, []string{"resource", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "moviefinder_fetch_duration_seconds",
			Help:    "Remote API fetch latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"resource"}),
		stale: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moviefinder_stale_discard_total",
			Help: "Responses discarded because their panel was no longer current.",
		}, []string{"panel"}),
	}
	reg.MustRegister(m.fetches, m.latency, m.stale,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveFetch records one completed fetch.
func (m *Metrics) ObserveFetch(resource, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := ResourceLabel(resource)
	m.fetches.WithLabelValues(label, outcome).Inc()
	m.latency.WithLabelValues(label).Observe(elapsed.Seconds())
}

// StaleDiscard records a response dropped by the staleness check.
func (m *Metrics) StaleDiscard(panel string) {
	if m == nil {
		return
	}
	m.stale.WithLabelValues(panel).Inc()
}

// ResourceLabel collapses numeric path segments so movie ids do not explode
// label cardinality: "movie/550/credits" -> "movie/:id/credits".
func ResourceLabel(resource string) string {
	parts := strings.Split(strings.Trim(resource, "/"), "/")
	for i, p := range parts {
		if p != "" && strings.Trim(p, "0123456789") == "" {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}

// Handler returns the router serving /metrics and /healthz.
func (m *Metrics) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	return r
}

// Serve runs the metrics endpoint on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, log logrus.FieldLogger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           m.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.WithField("addr", addr).Info("serving metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
