// Package metrics defines the custom Prometheus metrics for the student
// administration API. It is the single source of truth for metric names,
// labels, and help strings; everything is registered with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "student_admin"

// RegistrationsTotal counts successfully registered accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered user accounts.",
	},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure" or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// UserTransitionsTotal counts authorization transitions applied to accounts.
// Label:
//   - action: "block", "unblock" or "role_change"
var UserTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_transitions_total",
		Help:      "Total number of block/unblock/role transitions applied.",
	},
	[]string{"action"},
)

// StudentOpsTotal counts student record mutations.
// Label:
//   - op: "add", "edit" or "delete"
var StudentOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "student_operations_total",
		Help:      "Total number of student record mutations, by operation.",
	},
	[]string{"op"},
)
