// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/prachya/golfparty/internal/domain/model"
)

// ControlHandler handles the remaining organizer commands: rankings,
// finishing a set, publishing the live view, the allow-list and text
// messages.
type ControlHandler struct {
	deps Dependencies
}

// NewControlHandler creates a new control handler.
func NewControlHandler(deps Dependencies) *ControlHandler {
	return &ControlHandler{deps: deps}
}

// HandleShowSetRanking handles POST /rankings/set requests.
func (h *ControlHandler) HandleShowSetRanking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := h.deps.ShowSetRanking(r.Context()); err != nil {
		writeEngineError(w, err)
		return
	}
	writeView(w, h.deps.View(r.Context()))
}

// HandleFinishSet handles POST /sets/finish requests.
func (h *ControlHandler) HandleFinishSet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := h.deps.FinishSet(r.Context()); err != nil {
		writeEngineError(w, err)
		return
	}
	writeView(w, h.deps.View(r.Context()))
}

// HandlePublishLive handles POST /live requests.
func (h *ControlHandler) HandlePublishLive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	h.deps.PublishLive(r.Context())
	writeJSON(w, http.StatusOK, ackResponse{Status: "published"})
}

// playersRequest mirrors the JSON body of POST /players.
type playersRequest struct {
	IDs []string `json:"ids"`
}

// HandleAddPlayers handles POST /players requests. Adding ids is additive;
// the allow-list never shrinks.
func (h *ControlHandler) HandleAddPlayers(w http.ResponseWriter, r *http.Request) {
	const op = "api.add_players"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req playersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, fmt.Errorf("missing ids")))
		return
	}
	h.deps.RestrictToPlayers(r.Context(), req.IDs)
	writeJSON(w, http.StatusOK, ackResponse{Status: "players added"})
}

// messageRequest mirrors the JSON body of POST /message.
type messageRequest struct {
	Text string `json:"text"`
}

// HandleShowMessage handles POST /message requests.
func (h *ControlHandler) HandleShowMessage(w http.ResponseWriter, r *http.Request) {
	const op = "api.show_message"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	h.deps.ShowMessage(r.Context(), req.Text)
	writeJSON(w, http.StatusOK, ackResponse{Status: "message shown"})
}

func writeView(w http.ResponseWriter, v model.View) {
	writeJSON(w, http.StatusOK, viewResponse{Type: v.Type(), View: v})
}
