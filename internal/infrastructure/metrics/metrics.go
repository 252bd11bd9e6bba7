package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/chching/internal/domain"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Command metrics
	Commands        *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
	Entries         *prometheus.GaugeVec

	// Storage metrics
	StoreOperations *prometheus.CounterVec

	// API metrics
	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	HTTPInFlight  prometheus.Gauge
	RateLimitHits prometheus.Counter
}

// New creates all metrics and registers them on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Commands: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chching_commands_total",
				Help: "Total commands executed by name and outcome",
			},
			[]string{"command", "status"},
		),
		CommandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chching_command_duration_seconds",
				Help:    "Duration of command execution including storage",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"command"},
		),
		Entries: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "chching_entries",
				Help: "Current number of ledger entries",
			},
			[]string{"kind"},
		),

		StoreOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chching_store_operations_total",
				Help: "Total storage operations by outcome",
			},
			[]string{"operation", "status"},
		),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chching_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chching_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "chching_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		}),
		RateLimitHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "chching_rate_limit_hits_total",
			Help: "Total requests rejected by the rate limiter",
		}),
	}
}

// ObserveCommand records one command execution.
func (m *Metrics) ObserveCommand(command string, err error, duration time.Duration) {
	m.Commands.WithLabelValues(command, status(err)).Inc()
	m.CommandDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// SetEntries records the current list sizes.
func (m *Metrics) SetEntries(incomes, expenses int) {
	m.Entries.WithLabelValues(string(domain.KindIncome)).Set(float64(incomes))
	m.Entries.WithLabelValues(string(domain.KindExpense)).Set(float64(expenses))
}

// ObserveStore records one storage operation.
func (m *Metrics) ObserveStore(operation string, err error) {
	m.StoreOperations.WithLabelValues(operation, storeStatus(err)).Inc()
}

func status(err error) string {
	switch {
	case err == nil:
		return "ok"
	case domain.IsValidation(err):
		return "invalid"
	default:
		return "error"
	}
}

func storeStatus(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
