// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/prachya/golfparty/internal/domain/lang"
	"github.com/prachya/golfparty/internal/domain/model"
	"github.com/prachya/golfparty/internal/domain/preset"
)

// RoundsHandler handles round lifecycle requests.
type RoundsHandler struct {
	deps Dependencies
}

// NewRoundsHandler creates a new rounds handler.
func NewRoundsHandler(deps Dependencies) *RoundsHandler {
	return &RoundsHandler{deps: deps}
}

// roundRequest mirrors the JSON body of POST /rounds.
type roundRequest struct {
	AutoBalance          string             `json:"auto_balance,omitempty"`
	Grace                *float64           `json:"grace,omitempty"`
	Multipliers          map[string]float64 `json:"multipliers,omitempty"`
	Bonuses              map[string]float64 `json:"bonuses,omitempty"`
	FastBonus            float64            `json:"fast_bonus,omitempty"`
	FirstOfLanguageBonus float64            `json:"first_of_language_bonus,omitempty"`
	Preset               string             `json:"preset,omitempty"`
}

// toConfig validates the request and converts it to a round configuration.
func (r roundRequest) toConfig() (model.RoundConfig, error) {
	cfg := model.RoundConfig{
		AutoBalance:          model.AutoBalanceNone,
		Grace:                r.Grace,
		FastBonus:            r.FastBonus,
		FirstOfLanguageBonus: r.FirstOfLanguageBonus,
	}

	switch model.AutoBalance(r.AutoBalance) {
	case "", model.AutoBalanceNone:
	case model.AutoBalanceAllRounds, model.AutoBalanceLastRound, model.AutoBalanceCurrentRound:
		cfg.AutoBalance = model.AutoBalance(r.AutoBalance)
	default:
		return model.RoundConfig{}, fmt.Errorf("unknown auto_balance mode %q", r.AutoBalance)
	}

	if len(r.Multipliers) > 0 {
		cfg.Multipliers = make(map[lang.Lang]float64, len(r.Multipliers))
		for l, m := range r.Multipliers {
			cfg.Multipliers[lang.Lang(l)] = m
		}
	}
	if len(r.Bonuses) > 0 {
		cfg.Bonuses = make(map[lang.Lang]float64, len(r.Bonuses))
		for l, b := range r.Bonuses {
			cfg.Bonuses[lang.Lang(l)] = b
		}
	}
	if r.Preset != "" {
		p, ok := preset.Lookup(r.Preset)
		if !ok {
			return model.RoundConfig{}, fmt.Errorf("unknown preset %q", r.Preset)
		}
		cfg.Preset = &p
	}
	return cfg, nil
}

// HandleStartRound handles POST /rounds requests.
func (h *RoundsHandler) HandleStartRound(w http.ResponseWriter, r *http.Request) {
	const op = "api.start_round"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req roundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	cfg, err := req.toConfig()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.deps.StartRound(r.Context(), cfg); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ackResponse{Status: "round started"})
}
