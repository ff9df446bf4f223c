// Package metrics exposes Prometheus counters for the verification and
// ticket workflows and for HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "helpdesk"

// Metrics owns its registry so that tests and multiple servers in one
// process do not collide on the global default registry.
type Metrics struct {
	registry *prometheus.Registry

	verificationIssued   prometheus.Counter
	verificationConsumed prometheus.Counter
	verificationExpired  prometheus.Counter
	verificationSwept    prometheus.Counter
	mailFailures         prometheus.Counter

	ticketsCreated    *prometheus.CounterVec
	ticketTransitions *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		verificationIssued: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "verification",
			Name:      "issued_total",
			Help:      "Verification tokens issued.",
		}),
		verificationConsumed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "verification",
			Name:      "consumed_total",
			Help:      "Verification tokens consumed successfully.",
		}),
		verificationExpired: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "verification",
			Name:      "expired_total",
			Help:      "Consume attempts rejected because the token had expired.",
		}),
		verificationSwept: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "verification",
			Name:      "swept_total",
			Help:      "Expired verification rows removed by the sweep.",
		}),
		mailFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "mail",
			Name:      "dispatch_failures_total",
			Help:      "Outbound mails that could not be delivered to the relay.",
		}),
		ticketsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ticket",
			Name:      "created_total",
			Help:      "Tickets created, by priority.",
		}, []string{"priority"}),
		ticketTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ticket",
			Name:      "status_transitions_total",
			Help:      "Ticket status changes, by source and target status.",
		}, []string{"from", "to"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests, by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) VerificationIssued()        { m.verificationIssued.Inc() }
func (m *Metrics) VerificationConsumed()      { m.verificationConsumed.Inc() }
func (m *Metrics) VerificationExpired()       { m.verificationExpired.Inc() }
func (m *Metrics) VerificationsSwept(n int64) { m.verificationSwept.Add(float64(n)) }
func (m *Metrics) MailDispatchFailed()        { m.mailFailures.Inc() }

func (m *Metrics) TicketCreated(priority string) {
	m.ticketsCreated.WithLabelValues(priority).Inc()
}

func (m *Metrics) TicketStatusChanged(from, to string) {
	m.ticketTransitions.WithLabelValues(from, to).Inc()
}

// ObserveHTTP records one finished request. route is the matched pattern,
// never the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
