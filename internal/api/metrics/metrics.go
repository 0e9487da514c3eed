// Package metrics defines and registers all custom Prometheus metrics
// for the BloodLink coordination API. It is the single source of truth
// for metric names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time
// via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bloodlink"

// ── SOS metrics ───────────────────────────────────────────────────────────────

// SOSRequestsTotal counts emergency requests accepted for processing.
// Label:
//   - blood_group: the requested blood group (e.g. "O+")
var SOSRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sos_requests_total",
		Help:      "Total number of SOS requests accepted.",
	},
	[]string{"blood_group"},
)

// SOSMatchedDonors observes how many donors matched each SOS request.
var SOSMatchedDonors = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sos_matched_donors",
		Help:      "Distribution of donors matched per SOS request.",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
	},
)

// AlertsDispatchedTotal counts donor alerts handed to the notifier.
// Label:
//   - result: "delivered" or "failed"
var AlertsDispatchedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_dispatched_total",
		Help:      "Total number of donor alerts dispatched, by result.",
	},
	[]string{"result"},
)

// ── Donation metrics ──────────────────────────────────────────────────────────

// DonationsRecordedTotal counts donations recorded by admins.
var DonationsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donations_recorded_total",
		Help:      "Total number of donations recorded.",
	},
)

// LeaderboardCacheTotal counts leaderboard cache lookups.
// Label:
//   - result: "hit" or "miss"
var LeaderboardCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leaderboard_cache_total",
		Help:      "Total number of leaderboard cache lookups, by result.",
	},
	[]string{"result"},
)

// ── Chatbot metrics ───────────────────────────────────────────────────────────

// ChatbotMessagesTotal counts chatbot messages by recognised intent.
// Label:
//   - intent: "donor_count", "bank_stock", "campaigns", "eligibility",
//     "sos", or "fallback"
var ChatbotMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chatbot_messages_total",
		Help:      "Total number of chatbot messages handled, by intent.",
	},
	[]string{"intent"},
)
