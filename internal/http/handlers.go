package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/shimbeld/bsdl/internal/importer"
	"github.com/shimbeld/bsdl/internal/league"
	"github.com/shimbeld/bsdl/internal/schedule"
	"github.com/shimbeld/bsdl/internal/standings"
	"github.com/shimbeld/bsdl/internal/web"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// ImportHandler receives the CSV the sheet exporter POSTs. Auth is a shared
// token in the query string, matching what the exporter sends.
func (s *Server) ImportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
			return
		}
		if r.URL.Query().Get("token") != s.Cfg.ImportToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized (bad token)"})
			return
		}

		mode, err := importer.ParseMode(r.URL.Query().Get("mode"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": importer.ErrEmptyPayload.Error()})
			return
		}

		result, err := s.Importer.Import(mode, payload)
		if err != nil {
			var mismatch *importer.HeaderMismatchError
			var storage *importer.StorageError
			switch {
			case errors.As(err, &mismatch):
				writeJSON(w, http.StatusBadRequest, map[string]any{
					"error": "header mismatch",
					"got":   mismatch.Got,
					"want":  mismatch.Want,
				})
			case importer.IsRequestFatal(err):
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			case errors.As(err, &storage):
				writeJSON(w, http.StatusInternalServerError, map[string]string{
					"error": storage.Op,
					"msg":   storage.Err.Error(),
				})
			default:
				log.Error("Import failed", "error", err)
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "import failed"})
			}
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// StatsHandler serves player stats as a JSON array. When both schema
// queries fail the body is an error object instead; clients tell the two
// apart by shape, so the status stays 200 either way.
func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := league.Filters{
			Team:   r.URL.Query().Get("team"),
			Player: r.URL.Query().Get("player"),
		}

		rows, err := s.Store.QueryStats(filters)
		if err != nil {
			var failure *league.QueryFailure
			if errors.As(err, &failure) {
				log.Error("Both stats queries failed", "new_schema_error", failure.NewSchemaErr, "old_schema_error", failure.OldSchemaErr)
				writeJSON(w, http.StatusOK, failure)
				return
			}
			log.Error("Stats query failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "stats query failed"})
			return
		}

		if rows == nil {
			rows = []league.StatsRow{}
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// StandingsHandler relays the upstream spreadsheet response verbatim, or a
// 502 with the failure details when the upstream misbehaves.
func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := s.Standings.FetchRaw(r.Context())
		if err != nil {
			var upstream *standings.UpstreamError
			if errors.As(err, &upstream) {
				payload := map[string]any{"error": upstream.Message}
				if upstream.Status != http.StatusOK {
					payload["status"] = upstream.Status
				}
				writeJSON(w, http.StatusBadGateway, payload)
				return
			}
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "Failed to fetch Apps Script"})
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			log.Error("Failed to write standings response", "error", err)
		}
	}
}

// ListImportsHandler serves the import audit trail, newest first.
func (s *Server) ListImportsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runs, err := s.Store.ListImportRuns()
		if err != nil {
			log.Error("Failed to list import runs", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list import runs"})
			return
		}
		if runs == nil {
			runs = []league.ImportRun{}
		}
		writeJSON(w, http.StatusOK, runs)
	}
}

// PageHandler renders the league page. A standings failure shows inline;
// a player stats failure only logs and the table renders empty.
func (s *Server) PageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		params := web.ParseParams(r.URL.Query())
		today := schedule.TodayISO(s.now())

		players, err := s.Store.QueryStats(league.Filters{})
		if err != nil {
			log.Error("Error fetching players", "error", err)
			players = nil
		}

		teamRows, standingsErr := s.Standings.FetchTable(r.Context())
		if standingsErr != nil {
			log.Error("Error fetching standings", "error", standingsErr)
		}

		data := web.BuildPage(players, teamRows, standingsErr, params, today)
		s.Metrics.IncPageRenders()

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.Renderer.Render(w, data); err != nil {
			log.Error("Failed to render page", "error", err)
			http.Error(w, "failed to render page", http.StatusInternalServerError)
		}
	}
}
