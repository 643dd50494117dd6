package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuizSubmissions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "marg_quiz_submissions_total",
			Help: "Total number of interest quizzes analyzed",
		},
	)

	CareerSelections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marg_career_selections_total",
			Help: "Total number of career selections per career",
		},
		[]string{"career_id"},
	)

	MatchPercentage = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "marg_match_percentage",
			Help:    "Distribution of match percentages returned as recommendations",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marg_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "marg_http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "route"},
	)
)
