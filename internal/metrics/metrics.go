// Package metrics exposes the rewarded-ad lifecycle as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mesa-rewards/internal/core/domain"
	"mesa-rewards/internal/core/port"
)

// Collector implements port.Metrics on a private registry.
type Collector struct {
	registry *prometheus.Registry

	slotTransitions  *prometheus.CounterVec
	loadRequests     *prometheus.CounterVec
	displaysInFlight *prometheus.GaugeVec
	outcomes         *prometheus.CounterVec
	granted          *prometheus.CounterVec
}

var _ port.Metrics = (*Collector)(nil)

// NewCollector creates and registers all collectors under namespace.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = "rewards"
	}

	c := &Collector{registry: prometheus.NewRegistry()}

	c.slotTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "slot",
			Name:      "transitions_total",
			Help:      "Ad slot state transitions by reward kind and target state",
		},
		[]string{"reward_kind", "from", "to"},
	)

	c.loadRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "slot",
			Name:      "load_requests_total",
			Help:      "Ad requests sent to the platform",
		},
		[]string{"reward_kind"},
	)

	c.displaysInFlight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "display",
			Name:      "in_flight",
			Help:      "Ads currently being shown",
		},
		[]string{"reward_kind"},
	)

	c.outcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "request",
			Name:      "outcomes_total",
			Help:      "Resolved reward requests (reason is empty when granted)",
		},
		[]string{"reward_kind", "granted", "reason"},
	)

	c.granted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "request",
			Name:      "granted_amount_total",
			Help:      "Sum of granted reward amounts",
		},
		[]string{"reward_kind"},
	)

	c.registry.MustRegister(
		c.slotTransitions,
		c.loadRequests,
		c.displaysInFlight,
		c.outcomes,
		c.granted,
	)
	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) SlotTransition(kind domain.RewardKind, from, to domain.SlotState) {
	c.slotTransitions.WithLabelValues(string(kind), string(from), string(to)).Inc()
}

func (c *Collector) LoadRequested(kind domain.RewardKind) {
	c.loadRequests.WithLabelValues(string(kind)).Inc()
}

func (c *Collector) DisplayStarted(kind domain.RewardKind) {
	c.displaysInFlight.WithLabelValues(string(kind)).Inc()
}

func (c *Collector) DisplayFinished(kind domain.RewardKind) {
	c.displaysInFlight.WithLabelValues(string(kind)).Dec()
}

func (c *Collector) RewardResolved(outcome domain.RewardOutcome) {
	granted := "false"
	if outcome.Granted {
		granted = "true"
		c.granted.WithLabelValues(string(outcome.RewardKind)).Add(float64(outcome.Amount))
	}
	c.outcomes.WithLabelValues(string(outcome.RewardKind), granted, string(outcome.DeclineReason)).Inc()
}
