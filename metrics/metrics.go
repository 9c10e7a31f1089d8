package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "sql_query_duration_seconds",
	Help: "Duration of sql queries in seconds",
}, []string{"query"})

var VisibilityEvaluationsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "formbuilder_visibility_evaluations_total",
	Help: "The total number of questions evaluated by the visibility resolver",
})

var VisibilityEvaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "formbuilder_visibility_evaluation_duration_seconds",
	Help: "Duration of a visibility render pass over a form",
	Buckets: []float64{
		0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5,
	},
})

var SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "formbuilder_submissions_total",
	Help: "The total number of form submissions by result",
}, []string{"result"})

var ChangeEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "formbuilder_change_events_total",
	Help: "The total number of published change events",
}, []string{"entity", "action"})

var ChangeEventErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "formbuilder_change_event_errors_total",
	Help: "The total number of change events that could not be published",
})

var OrphansRemovedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "formbuilder_orphans_removed_total",
	Help: "The total number of dangling rows removed by the orphan sweep",
}, []string{"entity"})
