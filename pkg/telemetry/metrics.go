package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus observability primitives for the pricing engine.
type Metrics struct {
	apiRequests    *prometheus.CounterVec
	apiDuration    *prometheus.HistogramVec
	pricingOps     *prometheus.CounterVec
	pricingLocks   *prometheus.CounterVec
	snapshots      *prometheus.CounterVec
	snapshotAmount *prometheus.HistogramVec
}

// NewMetrics registers and returns Prometheus metrics for telemetry.
func NewMetrics() *Metrics {
	apiRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tariff_api_requests_total",
		Help: "Counts API requests by method, route and status.",
	}, []string{"method", "route", "status"})

	apiDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tariff_api_duration_seconds",
		Help:    "API request latency per route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	pricingOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tariff_pricing_operations_total",
		Help: "Pricing sheet mutations by operation and outcome.",
	}, []string{"operation", "status"})

	pricingLocks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tariff_pricing_locks_total",
		Help: "Lock and unlock actions on pricing sheets.",
	}, []string{"action"})

	snapshots := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tariff_pricing_snapshots_total",
		Help: "Snapshots frozen onto quotes by shipment mode.",
	}, []string{"mode"})

	snapshotAmount := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tariff_pricing_snapshot_amount",
		Help:    "Snapshot sell total distribution.",
		Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000},
	}, []string{"mode", "currency"})

	prometheus.MustRegister(
		apiRequests,
		apiDuration,
		pricingOps,
		pricingLocks,
		snapshots,
		snapshotAmount,
	)

	return &Metrics{
		apiRequests:    apiRequests,
		apiDuration:    apiDuration,
		pricingOps:     pricingOps,
		pricingLocks:   pricingLocks,
		snapshots:      snapshots,
		snapshotAmount: snapshotAmount,
	}
}

// ObserveAPIRequest records an API request and latency.
func (m *Metrics) ObserveAPIRequest(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	routeLabel := sanitizeLabel(route)
	m.apiRequests.WithLabelValues(method, routeLabel, status).Inc()
	m.apiDuration.WithLabelValues(method, routeLabel).Observe(duration.Seconds())
}

// ObservePricingOp counts one pricing mutation outcome.
func (m *Metrics) ObservePricingOp(operation string, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.pricingOps.WithLabelValues(sanitizeLabel(operation), status).Inc()
}

// ObservePricingLock counts lock state transitions.
func (m *Metrics) ObservePricingLock(action string) {
	if m == nil {
		return
	}
	m.pricingLocks.WithLabelValues(sanitizeLabel(action)).Inc()
}

// ObserveSnapshot records a frozen pricing snapshot and its sell total.
func (m *Metrics) ObserveSnapshot(mode, currency string, amount float64) {
	if m == nil {
		return
	}
	modeLabel := sanitizeLabel(mode)
	m.snapshots.WithLabelValues(modeLabel).Inc()
	m.snapshotAmount.WithLabelValues(modeLabel, sanitizeLabel(currency)).Observe(amount)
}

func sanitizeLabel(val string) string {
	if val == "" {
		return "unknown"
	}
	return val
}
