package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/pitchrank/ladder/internal/contracts"
	"github.com/pitchrank/ladder/internal/ranking"
	"github.com/pitchrank/ladder/internal/runner"
	"github.com/pitchrank/ladder/pkg/logger"
)

// RankingReader serves the persisted ranked table for a division
type RankingReader interface {
	Rankings(ctx context.Context, div contracts.Division) ([]contracts.RankedTeam, error)
}

// RankRunner triggers a ranking run across divisions
type RankRunner interface {
	RunAll(ctx context.Context, divisions []contracts.Division, asOf time.Time, concurrency int) *runner.Report
}

// RankingHandler handles the ranking API endpoints
type RankingHandler struct {
	reader    RankingReader
	runner    RankRunner
	source    contracts.MatchSource
	resolver  contracts.IdentityResolver
	pipeline  *ranking.Pipeline
	divisions []contracts.Division
	workers   int
	logger    *logger.Logger
}

// NewRankingHandler creates a new ranking handler. resolver may be nil when
// identity resolution is handled upstream.
func NewRankingHandler(reader RankingReader, run RankRunner, source contracts.MatchSource, resolver contracts.IdentityResolver, pipeline *ranking.Pipeline, divisions []contracts.Division, workers int, log *logger.Logger) *RankingHandler {
	return &RankingHandler{
		reader:    reader,
		runner:    run,
		source:    source,
		resolver:  resolver,
		pipeline:  pipeline,
		divisions: divisions,
		workers:   workers,
		logger:    log,
	}
}

// GetRankings returns the current ranked table for one division
// GET /api/rankings/{state}/{gender}/{age}
func (h *RankingHandler) GetRankings(w http.ResponseWriter, r *http.Request) {
	div, ok := divisionFromRequest(w, r)
	if !ok {
		return
	}

	rows, err := h.reader.Rankings(r.Context(), div)
	if err != nil {
		h.logger.WithError(err).Error("Failed to read rankings")
		writeError(w, http.StatusInternalServerError, "failed to read rankings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"division": div,
		"count":    len(rows),
		"rankings": rows,
	})
}

// GetConnectivity returns the opponent-graph view for one division,
// computed on demand over the same windowed match table a ranking run
// would use.
// GET /api/connectivity/{state}/{gender}/{age}?as_of=2024-06-01
func (h *RankingHandler) GetConnectivity(w http.ResponseWriter, r *http.Request) {
	div, ok := divisionFromRequest(w, r)
	if !ok {
		return
	}
	asOf, ok := asOfFromRequest(w, r)
	if !ok {
		return
	}

	raw, err := h.source.Matches(r.Context(), div)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load match table")
		writeError(w, http.StatusInternalServerError, "failed to load match table")
		return
	}

	var aliases map[string]string
	if h.resolver != nil {
		aliases, err = h.resolver.AliasMap(r.Context(), div)
		if err != nil {
			h.logger.WithError(err).Error("Failed to load alias map")
			writeError(w, http.StatusInternalServerError, "failed to load alias map")
			return
		}
	}

	res, err := h.pipeline.Run(r.Context(), div, asOf, raw, aliases)
	if err != nil {
		h.logger.WithError(err).Error("Connectivity computation failed")
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"division":     div,
		"as_of":        asOf.Format("2006-01-02"),
		"connectivity": res.Connectivity,
	})
}

// TriggerRun ranks all configured divisions and returns the run report
// POST /api/rank/run?as_of=2024-06-01
func (h *RankingHandler) TriggerRun(w http.ResponseWriter, r *http.Request) {
	asOf, ok := asOfFromRequest(w, r)
	if !ok {
		return
	}

	report := h.runner.RunAll(r.Context(), h.divisions, asOf, h.workers)

	status := http.StatusOK
	if report.Failed > 0 {
		status = http.StatusMultiStatus
	}
	writeJSON(w, status, report)
}

func divisionFromRequest(w http.ResponseWriter, r *http.Request) (contracts.Division, bool) {
	vars := mux.Vars(r)
	div := contracts.Division{
		State:    vars["state"],
		Gender:   vars["gender"],
		AgeGroup: vars["age"],
	}
	if div.State == "" || div.Gender == "" || div.AgeGroup == "" {
		writeError(w, http.StatusBadRequest, "state, gender and age are required")
		return contracts.Division{}, false
	}
	return div, true
}

// asOfFromRequest reads the optional as_of parameter; absent means now.
// Every downstream computation receives the resolved timestamp explicitly.
func asOfFromRequest(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return time.Now().UTC(), true
	}
	asOf, err := time.Parse("2006-01-02", raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "as_of must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return asOf, true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
