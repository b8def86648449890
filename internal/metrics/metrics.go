package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "news_press"

// Metrics holds the Prometheus collectors of the service
type Metrics struct {
	registry *prometheus.Registry

	DetachedTasks   *prometheus.CounterVec
	EventsPublished *prometheus.CounterVec
	Engagements     *prometheus.CounterVec
}

// New creates the collectors on a dedicated registry so that several
// instances (one per test) never clash on registration.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		DetachedTasks: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "detached_tasks_total",
				Help:      "Fire-and-forget tasks by name and outcome",
			},
			[]string{"task", "status"},
		),
		EventsPublished: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_published_total",
				Help:      "Domain events handed to the event bus by type and outcome",
			},
			[]string{"type", "status"},
		),
		Engagements: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "engagements_total",
				Help:      "Reader engagement actions by kind",
			},
			[]string{"kind"},
		),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
