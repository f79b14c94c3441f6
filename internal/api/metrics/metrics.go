// Package metrics defines all custom Prometheus metrics for the salon lead
// system. It is the single source of truth for metric names, labels, and help
// strings. Metrics are registered with the default registry via promauto at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "salon"

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: the resolved role ("customer", "manager", "administrator")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by resolved role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LeadsCreatedTotal counts submitted leads.
// Label:
//   - source: "public", "customer", or "manager"
var LeadsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_created_total",
		Help:      "Total number of leads submitted, by submission source.",
	},
	[]string{"source"},
)

// LeadStatusUpdatesTotal counts status changes applied by managers.
// Label:
//   - status: the new workflow status
var LeadStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lead_status_updates_total",
		Help:      "Total number of lead status updates, by new status.",
	},
	[]string{"status"},
)

// AuthRedirectsTotal counts role-gate refusals (the silent redirect home).
// Label:
//   - required_role: the role the refused operation demanded
var AuthRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_redirects_total",
		Help:      "Total number of role-gated requests refused with a redirect home.",
	},
	[]string{"required_role"},
)

// NotifyQueueDepth tracks the number of follow-up events waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotifyQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notify_queue_depth",
		Help:      "Current number of follow-up events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
