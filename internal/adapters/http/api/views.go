// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// ViewHandler serves the renderer's two read endpoints. Whether the
// scoreboard shows the current or the live view is the renderer's call, e.g.
// from its own query parameter.
type ViewHandler struct {
	deps Dependencies
}

// NewViewHandler creates a new view handler.
func NewViewHandler(deps Dependencies) *ViewHandler {
	return &ViewHandler{deps: deps}
}

// HandleGetView handles GET /view requests.
func (h *ViewHandler) HandleGetView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeView(w, h.deps.View(r.Context()))
}

// HandleGetLiveView handles GET /view/live requests.
func (h *ViewHandler) HandleGetLiveView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeView(w, h.deps.LiveView(r.Context()))
}
