// Package metrics defines and registers all custom Prometheus metrics for
// the library API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "library"

// SignupsTotal counts signup attempts.
// Label:
//   - result: "created", "duplicate", "invalid", or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// SigninsTotal counts signin attempts.
// Label:
//   - result: "success", "invalid_credentials", "not_active", or "error"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of signin attempts, by result.",
	},
	[]string{"result"},
)

// ActivationsTotal counts account activation attempts.
var ActivationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activations_total",
		Help:      "Total number of account activation attempts, by result.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts rejected authenticated requests at the gate.
// Label:
//   - reason: "missing_header", "invalid_token", "revoked", "user_not_found"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the authentication gate.",
	},
	[]string{"reason"},
)

// AuthzDeniedTotal counts permission denials after successful authentication.
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of permission denials, by module and action.",
	},
	[]string{"module", "action"},
)

// MailsTotal counts account-lifecycle mail deliveries.
// Labels:
//   - kind: "activation" or "reset"
//   - result: "sent" or "failure"
var MailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mails_total",
		Help:      "Total number of mail delivery attempts, by kind and result.",
	},
	[]string{"kind", "result"},
)

// UploadsTotal counts stored uploads.
// Label:
//   - kind: "book" or "avatar"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of files stored, by kind.",
	},
	[]string{"kind"},
)
