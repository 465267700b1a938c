package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		ImportRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bsdl_import_runs_total",
			Help: "The total number of CSV import requests processed.",
		}),
		ImportRowsInserted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bsdl_import_rows_inserted_total",
			Help: "The total number of player rows inserted by imports.",
		}),
		ImportRowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bsdl_import_rows_skipped_total",
			Help: "The total number of player rows skipped by imports.",
		}),
		ImportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bsdl_import_duration_seconds",
			Help:    "The duration of individual CSV imports.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StandingsFetches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bsdl_standings_fetches_total",
			Help: "The total number of upstream standings fetches attempted.",
		}),
		StandingsFetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bsdl_standings_fetch_failures_total",
			Help: "The total number of upstream standings fetches that failed.",
		}),
		PageRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bsdl_page_renders_total",
			Help: "The total number of league page renders.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bsdl_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.ImportRuns,
		s.ImportRowsInserted,
		s.ImportRowsSkipped,
		s.ImportDuration,
		s.StandingsFetches,
		s.StandingsFetchFailures,
		s.PageRenders,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncImportRuns() {
	s.ImportRuns.Inc()
}

func (s *Service) AddImportRowsInserted(n int) {
	s.ImportRowsInserted.Add(float64(n))
}

func (s *Service) AddImportRowsSkipped(n int) {
	s.ImportRowsSkipped.Add(float64(n))
}

func (s *Service) ObserveImportDuration(seconds float64) {
	s.ImportDuration.Observe(seconds)
}

func (s *Service) IncStandingsFetches() {
	s.StandingsFetches.Inc()
}

func (s *Service) IncStandingsFetchFailures() {
	s.StandingsFetchFailures.Inc()
}

func (s *Service) IncPageRenders() {
	s.PageRenders.Inc()
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
