package http

import (
	"net/http"
	"time"

	"github.com/shimbeld/bsdl/internal/config"
	"github.com/shimbeld/bsdl/internal/importer"
	"github.com/shimbeld/bsdl/internal/league"
	"github.com/shimbeld/bsdl/internal/metrics"
	"github.com/shimbeld/bsdl/internal/standings"
	"github.com/shimbeld/bsdl/internal/web"
)

func NewServer(store league.LeagueStore, imp *importer.Importer, standingsClient standings.Client, metricsSvc metrics.Metrics, metricsHandler http.Handler, renderer *web.Renderer, cfg config.Config) *Server {
	server := &Server{
		Store:          store,
		Importer:       imp,
		Standings:      standingsClient,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Renderer:       renderer,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
		now:            time.Now,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper, so
	// adding another middleware later is a one-line change per route.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/static/", web.StaticHandler())
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/import", Chain(s.ImportHandler(), paramsMiddleware))
	s.Router.Handle("/stats", Chain(s.StatsHandler(), paramsMiddleware))
	s.Router.Handle("/standings", Chain(s.StandingsHandler(), paramsMiddleware))
	s.Router.Handle("/imports", Chain(s.ListImportsHandler(), paramsMiddleware))
	s.Router.Handle("/", Chain(s.PageHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
