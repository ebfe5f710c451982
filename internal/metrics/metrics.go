// Package metrics records per-run Prometheus metrics and pushes them to a Pushgateway.
//
// contest-digest is a batch job, so nothing scrapes it. Each run builds a Recorder
// on its own registry and, when a Pushgateway is configured, pushes the registry once
// the run has finished.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const (
	namespace = "contest_digest"

	// JobName is the Pushgateway job label
	JobName = "contest_digest"

	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Recorder owns the collectors for a single run
type Recorder struct {
	registry *prometheus.Registry

	contestsFetched *prometheus.CounterVec
	fetchErrors     *prometheus.CounterVec
	fetchDuration   *prometheus.HistogramVec
	selected        prometheus.Gauge
	deliveries      *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its collectors registered on a fresh registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		contestsFetched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contests_fetched_total",
			Help:      "Contests returned by each source before the time window is applied.",
		}, []string{"host"}),
		fetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_errors_total",
			Help:      "Failed source fetches.",
		}, []string{"host"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time spent fetching and parsing one source.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"host"}),
		selected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "contests_selected",
			Help:      "Contests inside the announcement window in the last run.",
		}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Webhook deliveries by result.",
		}, []string{"result"}),
	}

	r.registry.MustRegister(
		r.contestsFetched,
		r.fetchErrors,
		r.fetchDuration,
		r.selected,
		r.deliveries,
	)
	return r
}

// Registry exposes the underlying registry, mainly for tests
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveFetch records the outcome of one source fetch
func (r *Recorder) ObserveFetch(host string, count int, elapsed time.Duration, err error) {
	r.fetchDuration.WithLabelValues(host).Observe(elapsed.Seconds())
	if err != nil {
		r.fetchErrors.WithLabelValues(host).Inc()
		return
	}
	r.contestsFetched.WithLabelValues(host).Add(float64(count))
}

// SetSelected records how many contests survived the window filter
func (r *Recorder) SetSelected(n int) {
	r.selected.Set(float64(n))
}

// ObserveDelivery records a webhook delivery attempt
func (r *Recorder) ObserveDelivery(err error) {
	if err != nil {
		r.deliveries.WithLabelValues(ResultFailure).Inc()
		return
	}
	r.deliveries.WithLabelValues(ResultSuccess).Inc()
}

// Push sends the registry to the Pushgateway at url, replacing the job's previous metrics
func (r *Recorder) Push(ctx context.Context, url string) error {
	if url == "" {
		return nil
	}
	if err := push.New(url, JobName).Gatherer(r.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrPushFailed, err)
	}
	return nil
}
