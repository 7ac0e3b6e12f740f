// Package metrics defines all custom Prometheus metrics for the employee
// system. It is the single source of truth for metric names, labels, and help
// strings. Metrics are registered with the default registry at import time
// via promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "employee"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "not_found", "bad_password", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// UsersRegisteredTotal counts accounts created through the registration path.
// Label:
//   - role: the role assigned to the new account
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts registered, by role.",
	},
	[]string{"role"},
)

// ── Employee metrics ──────────────────────────────────────────────────────────

// EmployeesCreatedTotal counts newly created employee records.
var EmployeesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of employee records created.",
	},
)

// EmployeesDeletedTotal counts deleted employee rows (affected row count,
// expected one per delete given the NIK uniqueness invariant).
var EmployeesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_deleted_total",
		Help:      "Total number of employee rows deleted.",
	},
)
