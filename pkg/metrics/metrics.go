// Package metrics collects Prometheus metrics for a single run and exports them
// in the node_exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Status label values for database queries.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics holds all collectors on a private registry.
// Every method is safe to call on a nil *Metrics, which disables collection.
type Metrics struct {
	registry *prometheus.Registry

	RecordsRead         prometheus.Counter
	RecordsSkipped      prometheus.Counter
	NormalizedIntervals prometheus.Gauge
	Runs                *prometheus.CounterVec
	RunDuration         prometheus.Histogram
	DBQueryDuration     *prometheus.HistogramVec
}

// New creates and registers all collectors under the serviceName namespace.
func New(serviceName string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		RecordsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "records_read_total",
			Help:      "Total number of busy records read from the source",
		}),
		RecordsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "records_skipped_total",
			Help:      "Total number of malformed busy records skipped",
		}),
		NormalizedIntervals: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "normalized_intervals",
			Help:      "Number of merged busy intervals within the horizon",
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "runs_total",
			Help:      "Total number of searches by outcome",
		}, []string{"outcome"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "run_duration_seconds",
			Help:      "Duration of a successful search",
			Buckets:   prometheus.DefBuckets,
		}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "db_query_duration_seconds",
			Help:      "Duration of database queries",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"operation", "status"}),
	}

	m.registry.MustRegister(
		m.RecordsRead,
		m.RecordsSkipped,
		m.NormalizedIntervals,
		m.Runs,
		m.RunDuration,
		m.DBQueryDuration,
	)

	return m
}

// Registry returns the private registry, nil for a nil receiver.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) AddRecordsRead(n int) {
	if m == nil {
		return
	}
	m.RecordsRead.Add(float64(n))
}

func (m *Metrics) IncRecordsSkipped() {
	if m == nil {
		return
	}
	m.RecordsSkipped.Inc()
}

func (m *Metrics) SetNormalizedIntervals(n int) {
	if m == nil {
		return
	}
	m.NormalizedIntervals.Set(float64(n))
}

func (m *Metrics) IncRun(outcome string) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRunDuration(start time.Time) {
	if m == nil {
		return
	}
	m.RunDuration.Observe(time.Since(start).Seconds())
}

// ObserveDBQuery implements dbmetrics.QueryObserver.
func (m *Metrics) ObserveDBQuery(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	m.DBQueryDuration.WithLabelValues(operation, status).Observe(time.Since(start).Seconds())
}

// WriteToTextfile atomically writes all metrics to path. A nil receiver writes nothing.
func (m *Metrics) WriteToTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
