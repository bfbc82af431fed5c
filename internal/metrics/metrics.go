// Package metrics provides Prometheus metrics for the gv100ad query service
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nainya/gv100ad/pkg/gvdb"
	"github.com/nainya/gv100ad/pkg/keys"
)

// Metrics holds all Prometheus metrics for the query service
type Metrics struct {
	// HTTP request metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Query metrics
	LookupsTotal   *prometheus.CounterVec
	ChildrenTotal  *prometheus.CounterVec

	// Dataset metrics
	DatasetRecords      *prometheus.GaugeVec
	DatasetLoadSeconds  prometheus.Gauge
	ServerStartTime     time.Time
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		ServerStartTime: time.Now(),
	}

	m.HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gv100ad_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "status"},
	)

	m.HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gv100ad_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	m.HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gv100ad_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	m.LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gv100ad_lookups_total",
			Help: "Total number of point lookups",
		},
		[]string{"kind", "result"},
	)

	m.ChildrenTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gv100ad_children_queries_total",
			Help: "Total number of children queries",
		},
		[]string{"kind"},
	)

	m.DatasetRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gv100ad_dataset_records",
			Help: "Number of records loaded, by kind",
		},
		[]string{"kind"},
	)

	m.DatasetLoadSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gv100ad_dataset_load_seconds",
			Help: "Wall-clock time spent constructing the database",
		},
	)

	return m
}

// ObserveDataset records the per-kind record counts of a constructed database
func (m *Metrics) ObserveDataset(db *gvdb.Database, loadDuration time.Duration) {
	kinds := []keys.Kind{
		keys.KindLand,
		keys.KindRegierungsbezirk,
		keys.KindRegion,
		keys.KindKreis,
		keys.KindVerband,
		keys.KindGemeinde,
	}
	for _, kind := range kinds {
		m.DatasetRecords.WithLabelValues(kind.String()).Set(float64(db.Len(kind)))
	}
	m.DatasetLoadSeconds.Set(loadDuration.Seconds())
}

// RecordHTTPRequest records metrics for one handled HTTP request
func (m *Metrics) RecordHTTPRequest(route, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordLookup records the outcome of one point lookup
func (m *Metrics) RecordLookup(kind keys.Kind, result string) {
	m.LookupsTotal.WithLabelValues(kind.String(), result).Inc()
}

// RecordChildren records one children query
func (m *Metrics) RecordChildren(kind keys.Kind) {
	m.ChildrenTotal.WithLabelValues(kind.String()).Inc()
}
