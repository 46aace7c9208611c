// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prachya/golfparty/internal/domain/game"
	"github.com/prachya/golfparty/internal/domain/model"
	"github.com/prachya/golfparty/internal/domain/modifier"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	StartRound(ctx context.Context, cfg model.RoundConfig) error
	SubmitResults(ctx context.Context, rows []model.Result) error
	ShowSetRanking(ctx context.Context) error
	FinishSet(ctx context.Context) error
	PublishLive(ctx context.Context)
	RestrictToPlayers(ctx context.Context, ids []string)
	ShowMessage(ctx context.Context, text string)
	View(ctx context.Context) model.View
	LiveView(ctx context.Context) model.View
}

// Server wires HTTP routes for the organizer commands and the renderer reads.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	roundsHandler  *RoundsHandler
	resultsHandler *ResultsHandler
	controlHandler *ControlHandler
	viewHandler    *ViewHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxResultsBatch int) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		roundsHandler:  NewRoundsHandler(deps),
		resultsHandler: NewResultsHandler(deps, maxResultsBatch),
		controlHandler: NewControlHandler(deps),
		viewHandler:    NewViewHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/rounds", MetricsMiddleware(s.roundsHandler.HandleStartRound, "rounds"))
	mux.HandleFunc("/results", MetricsMiddleware(s.resultsHandler.HandleSubmitResults, "results"))
	mux.HandleFunc("/rankings/set", MetricsMiddleware(s.controlHandler.HandleShowSetRanking, "rankings_set"))
	mux.HandleFunc("/sets/finish", MetricsMiddleware(s.controlHandler.HandleFinishSet, "sets_finish"))
	mux.HandleFunc("/live", MetricsMiddleware(s.controlHandler.HandlePublishLive, "live"))
	mux.HandleFunc("/players", MetricsMiddleware(s.controlHandler.HandleAddPlayers, "players"))
	mux.HandleFunc("/message", MetricsMiddleware(s.controlHandler.HandleShowMessage, "message"))
	mux.HandleFunc("/view", MetricsMiddleware(s.viewHandler.HandleGetView, "view"))
	mux.HandleFunc("/view/live", MetricsMiddleware(s.viewHandler.HandleGetLiveView, "view_live"))
}

// viewResponse is the envelope every view read returns. Type lets the
// renderer pick a layout before looking at the payload.
type viewResponse struct {
	Type model.ViewType `json:"type"`
	View model.View     `json:"view"`
}

type ackResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeEngineError translates an engine rejection to a status code. Lifecycle
// conflicts map to 409, configuration problems to 400.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "invalid_transition", err)
	case errors.Is(err, game.ErrAlreadyFinished):
		writeError(w, http.StatusConflict, "already_finished", err)
	case errors.Is(err, game.ErrRoundNotOpen):
		writeError(w, http.StatusConflict, "round_not_open", err)
	case errors.Is(err, modifier.ErrMissingHistory):
		writeError(w, http.StatusBadRequest, "missing_history", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
