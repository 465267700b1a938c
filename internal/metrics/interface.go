package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncImportRuns()
	AddImportRowsInserted(n int)
	AddImportRowsSkipped(n int)
	ObserveImportDuration(seconds float64)
	IncStandingsFetches()
	IncStandingsFetchFailures()
	IncPageRenders()
	SetStartupTime(seconds float64)
}
