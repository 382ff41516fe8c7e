// Package metrics exposes the site counters in Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "careerpath"

// Submission outcomes.
const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation_failed"
	OutcomeFailed     = "submit_failed"
	OutcomeInFlight   = "in_flight"
	OutcomeDuplicate  = "already_submitted"
)

type Metrics struct {
	registry *prometheus.Registry

	PageViews      *prometheus.CounterVec
	Submissions    *prometheus.CounterVec
	SubmitDuration prometheus.Histogram
	Streams        prometheus.Gauge
}

// New builds the collectors on a private registry, along with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		PageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Rendered pages by page and language.",
		}, []string{"page", "lang"}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_submissions_total",
			Help:      "Contact form submits by outcome.",
		}, []string{"outcome"}),
		SubmitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "contact_submit_duration_seconds",
			Help:      "Time spent delivering a contact form.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2, 4, 8, 16},
		}),
		Streams: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "testimonial_streams_active",
			Help:      "Open testimonial event streams.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.PageViews,
		m.Submissions,
		m.SubmitDuration,
		m.Streams,
	)
	return m
}

func (m *Metrics) PageView(page, lang string) {
	m.PageViews.WithLabelValues(page, lang).Inc()
}

// Submit counts one submit. The duration is only observed when the
// submitter actually ran.
func (m *Metrics) Submit(outcome string, d time.Duration) {
	m.Submissions.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess || outcome == OutcomeFailed {
		m.SubmitDuration.Observe(d.Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
