// Package metrics exposes Prometheus collectors for the session service.
//
// All methods are safe to call on a nil *Metrics, which records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/meetnmeal/internal/models"
)

const namespace = "meetnmeal"

// Metrics groups the service's collectors.
type Metrics struct {
	registry *prometheus.Registry

	SessionsCreated  prometheus.Counter
	SessionsActive   prometheus.Gauge
	SessionsExpired  *prometheus.CounterVec
	MembersJoined    prometheus.Counter
	Subscribers      prometheus.Gauge
	EventsPublished  *prometheus.CounterVec
	EventsDropped    *prometheus.CounterVec
	ComputeDuration  prometheus.Histogram
	ComputeFailures  prometheus.Counter
	HTTPRequests     *prometheus.CounterVec
	HTTPRequestTimes *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		SessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Group sessions created.",
		}),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Live group sessions.",
		}),
		SessionsExpired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_expired_total",
			Help:      "Group sessions destroyed, by termination reason.",
		}, []string{"reason"}),
		MembersJoined: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "members_joined_total",
			Help:      "Members that joined a session.",
		}),
		Subscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "push_subscribers",
			Help:      "Open push subscriptions.",
		}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_delivered_total",
			Help:      "Push events handed to member queues, by type.",
		}, []string{"type"}),
		EventsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dropped_total",
			Help:      "Push events dropped because a member queue was full, by type.",
		}, []string{"type"}),
		ComputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compute_duration_seconds",
			Help:      "Recommendation engine call latency.",
			Buckets:   prometheus.DefBuckets,
		}),
		ComputeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compute_failures_total",
			Help:      "Recommendation engine calls that failed.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"route", "code"}),
		HTTPRequestTimes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.SessionsCreated,
		m.SessionsActive,
		m.SessionsExpired,
		m.MembersJoined,
		m.Subscribers,
		m.EventsPublished,
		m.EventsDropped,
		m.ComputeDuration,
		m.ComputeFailures,
		m.HTTPRequests,
		m.HTTPRequestTimes,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SessionCreated counts a new session.
func (m *Metrics) SessionCreated() {
	if m == nil {
		return
	}
	m.SessionsCreated.Inc()
	m.SessionsActive.Inc()
}

// SessionExpired counts a destroyed session.
func (m *Metrics) SessionExpired(reason string) {
	if m == nil {
		return
	}
	m.SessionsActive.Dec()
	m.SessionsExpired.WithLabelValues(reason).Inc()
}

// MemberJoined counts a join.
func (m *Metrics) MemberJoined() {
	if m == nil {
		return
	}
	m.MembersJoined.Inc()
}

// ComputeFinished records one engine call.
func (m *Metrics) ComputeFinished(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.ComputeDuration.Observe(d.Seconds())
	if err != nil {
		m.ComputeFailures.Inc()
	}
}

// HTTPRequest records one served request.
func (m *Metrics) HTTPRequest(route string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.HTTPRequestTimes.WithLabelValues(route).Observe(d.Seconds())
}

// EventPublished implements fanout.Observer.
func (m *Metrics) EventPublished(t models.EventType, delivered int) {
	if m == nil {
		return
	}
	m.EventsPublished.WithLabelValues(string(t)).Add(float64(delivered))
}

// EventDropped implements fanout.Observer.
func (m *Metrics) EventDropped(t models.EventType) {
	if m == nil {
		return
	}
	m.EventsDropped.WithLabelValues(string(t)).Inc()
}

// SubscribersChanged implements fanout.Observer.
func (m *Metrics) SubscribersChanged(delta int) {
	if m == nil {
		return
	}
	m.Subscribers.Add(float64(delta))
}
