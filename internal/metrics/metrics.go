package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Login outcomes
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
	LoginInvalid = "invalid"
)

// Metrics holds the domain counters exposed next to the HTTP request metrics
type Metrics struct {
	Logins         *prometheus.CounterVec
	Registrations  prometheus.Counter
	EntriesCreated prometheus.Counter
	Reorders       prometheus.Counter
	ReorderLatency prometheus.Summary
}

// New registers the domain metrics on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Logins: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "routinesdb",
			Name:      "logins_total",
			Help:      "Login attempts by outcome",
		}, []string{"outcome"}),
		Registrations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "routinesdb",
			Name:      "registrations_total",
			Help:      "Accounts created",
		}),
		EntriesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "routinesdb",
			Name:      "routine_exercises_created_total",
			Help:      "Exercises attached to routines",
		}),
		Reorders: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "routinesdb",
			Name:      "routine_reorders_total",
			Help:      "Explicit routine reorders applied",
		}),
		ReorderLatency: factory.NewSummary(prometheus.SummaryOpts{
			Namespace: "routinesdb",
			Name:      "routine_reorder_seconds",
			Help:      "Time spent renumbering routine exercises",
		}),
	}
}

// Login records a login attempt outcome
func (m *Metrics) Login(outcome string) {
	m.Logins.WithLabelValues(outcome).Inc()
}
