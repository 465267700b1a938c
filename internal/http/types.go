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

type Server struct {
	Store          league.LeagueStore
	Importer       *importer.Importer
	Standings      standings.Client
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Renderer       *web.Renderer
	Cfg            config.Config
	Router         *http.ServeMux

	// now is swappable so handlers can be pinned to a date in tests.
	now func() time.Time
}
