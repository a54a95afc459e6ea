// Package metrics defines and registers all custom Prometheus metrics for the
// accounts API. It is the single source of truth for metric names, labels, and
// help strings; the promauto constructors register everything with the default
// registry at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersCreatedTotal counts successfully provisioned accounts.
// Label:
//   - path: "admin" (provisioned via the admin route) or "register" (self-registration)
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by creation path.",
	},
	[]string{"path"},
)

// UsersRemovedTotal counts successfully destroyed accounts.
var UsersRemovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_removed_total",
		Help:      "Total number of user accounts removed.",
	},
)

// ── Rating metrics ────────────────────────────────────────────────────────────

// RatingLookupsTotal counts video-rating lookups.
// Label:
//   - result: the reported rating ("like", "dislike", or "none")
var RatingLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rating_lookups_total",
		Help:      "Total number of video rating lookups, by reported rating.",
	},
	[]string{"result"},
)

// ── Token metrics ─────────────────────────────────────────────────────────────

// TokensIssuedTotal counts successful credential exchanges.
// Label:
//   - grant_type: "password" or "refresh_token"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of token pairs issued, by grant type.",
	},
	[]string{"grant_type"},
)
