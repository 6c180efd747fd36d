package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vendo_http_requests_total",
		Help: "Total HTTP requests served, labelled by method, route and status code.",
	}, []string{"method", "path", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vendo_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	Transitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vendo_workflow_transitions_total",
		Help: "Total workflow transitions attempted, labelled by action and outcome.",
	}, []string{"action", "status"})

	VendorUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vendo_vendor_updates_total",
		Help: "Total vendor check-in updates, labelled by outcome (applied, queued, rejected).",
	}, []string{"status"})

	ReviewsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vendo_reviews_submitted_total",
		Help: "Total vendor reviews accepted, labelled by rating.",
	}, []string{"rating"})

	Suspensions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendo_contractor_suspensions_total",
		Help: "Total contractor suspensions triggered by the rating policy.",
	})

	OfflineEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendo_offline_actions_enqueued_total",
		Help: "Total vendor updates queued while offline.",
	})

	ReplayActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vendo_replay_actions_total",
		Help: "Total queued actions processed during replay, labelled by outcome.",
	}, []string{"status"})

	ReplayDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vendo_replay_duration_seconds",
		Help:    "Duration of full offline queue replay passes.",
		Buckets: prometheus.DefBuckets,
	})

	Notices = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vendo_notices_total",
		Help: "Total notices handed to the dispatcher, labelled by kind and outcome.",
	}, []string{"kind", "status"})

	Discrepancies = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vendo_inventory_discrepancies_total",
		Help: "Total inventory discrepancies reported.",
	})
)
