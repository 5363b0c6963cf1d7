package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/forsitet/developer-maker/internal/domain"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	DevelopersCreated *prometheus.CounterVec
	DevelopersEdited  prometheus.Counter
	DevelopersRetired prometheus.Counter
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

// New registers all collectors on reg. Pass prometheus.DefaultRegisterer in
// main and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DevelopersCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dmaker_developers_created_total",
			Help: "Total number of developers created, by level",
		}, []string{"level"}),
		DevelopersEdited: factory.NewCounter(prometheus.CounterOpts{
			Name: "dmaker_developers_edited_total",
			Help: "Total number of developer edits",
		}),
		DevelopersRetired: factory.NewCounter(prometheus.CounterOpts{
			Name: "dmaker_developers_retired_total",
			Help: "Total number of developers retired",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dmaker_http_requests_total",
			Help: "HTTP requests by route pattern, method and status",
		}, []string{"route", "method", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dmaker_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

func (m *Metrics) DeveloperCreated(level domain.Level) {
	m.DevelopersCreated.WithLabelValues(string(level)).Inc()
}

func (m *Metrics) DeveloperEdited() {
	m.DevelopersEdited.Inc()
}

func (m *Metrics) DeveloperRetired() {
	m.DevelopersRetired.Inc()
}
