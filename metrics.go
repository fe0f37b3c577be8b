package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// calculationsTotal counts subsidy evaluations by size class
	calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subsidy_calculations_total",
		Help: "Total number of subsidy calculations",
	}, []string{"size_class"})

	// reportsTotal counts generated reports by format
	reportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subsidy_reports_total",
		Help: "Total number of generated reports",
	}, []string{"format"})

	// sessionActionsTotal counts applied session transitions
	sessionActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subsidy_session_actions_total",
		Help: "Total number of session actions",
	}, []string{"action"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "subsidy_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
	}, []string{"path"})
)
