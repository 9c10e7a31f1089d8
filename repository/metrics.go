package repository

import (
	"formbuilder/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// timeQuery is used as: defer timeQuery("GetFormById")()
func timeQuery(query string) func() {
	timer := prometheus.NewTimer(metrics.QueryDuration.WithLabelValues(query))
	return func() {
		timer.ObserveDuration()
	}
}
