// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/prachya/golfparty/internal/domain/model"
)

// ResultsHandler handles submission batch requests.
type ResultsHandler struct {
	deps     Dependencies
	maxBatch int
}

// NewResultsHandler creates a new results handler.
func NewResultsHandler(deps Dependencies, maxBatch int) *ResultsHandler {
	return &ResultsHandler{deps: deps, maxBatch: maxBatch}
}

func validateResults(rows []model.Result, maxBatch int) error {
	if len(rows) == 0 {
		return fmt.Errorf("empty result batch")
	}
	if maxBatch > 0 && len(rows) > maxBatch {
		return fmt.Errorf("batch of %d rows exceeds limit %d", len(rows), maxBatch)
	}
	for i, row := range rows {
		if strings.TrimSpace(row.UserID) == "" {
			return fmt.Errorf("row %d: missing userId", i)
		}
		if strings.TrimSpace(row.Nickname) == "" {
			return fmt.Errorf("row %d: missing nickname", i)
		}
	}
	return nil
}

// HandleSubmitResults handles POST /results requests. The body is the raw
// judge export: an array of {nickname, userId, score, duration, language,
// criterion} rows for the open round.
func (h *ResultsHandler) HandleSubmitResults(w http.ResponseWriter, r *http.Request) {
	const op = "api.submit_results"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var rows []model.Result
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := validateResults(rows, h.maxBatch); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.deps.SubmitResults(r.Context(), rows); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ackResponse{Status: "round scored"})
}
