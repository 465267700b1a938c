package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service implements the Metrics interface using Prometheus.
type Service struct {
	ImportRuns             prometheus.Counter
	ImportRowsInserted     prometheus.Counter
	ImportRowsSkipped      prometheus.Counter
	ImportDuration         prometheus.Histogram
	StandingsFetches       prometheus.Counter
	StandingsFetchFailures prometheus.Counter
	PageRenders            prometheus.Counter
	StartupTimeSeconds     prometheus.Gauge
}
