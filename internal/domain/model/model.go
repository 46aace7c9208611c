// Package model contains domain models passed between layers.
package model

import (
	"github.com/prachya/golfparty/internal/domain/lang"
	"github.com/prachya/golfparty/internal/domain/preset"
)

// Result is one raw submission row as exported by the judge platform.
// Score is a percent string like "100%"; Duration is "HH:MM:SS" or shorter;
// Criterion is an optional lower-is-better numeric string (e.g. code length).
type Result struct {
	Nickname  string `json:"nickname"`
	UserID    string `json:"userId"`
	Score     string `json:"score"`
	Duration  string `json:"duration"`
	Language  string `json:"language"`
	Criterion string `json:"criterion,omitempty"`
}

// ProcessedResult extends a Result with everything the scoring passes derive
// from it. It lives for one round and feeds both player aggregation and the
// round-result view.
type ProcessedResult struct {
	Result

	DisplayLanguage    string  `json:"displayLanguage"`
	LanguageMultiplier float64 `json:"languageMultiplier"`
	// OriginalCriterion is the parsed criterion; +Inf when absent or
	// unparsable, which keeps the row out of the base-score countdown.
	OriginalCriterion float64 `json:"-"`
	AdjustedCriterion float64 `json:"-"`
	// Accuracy is the testcase pass rate as a fraction in [0,1].
	Accuracy      float64 `json:"accuracy"`
	BaseScore     float64 `json:"baseScore"`
	AdjustedScore float64 `json:"adjustedScore"`
}

// AutoBalance selects which usage counts drive the automatic language
// multiplier.
type AutoBalance string

// Auto-balance modes.
const (
	AutoBalanceNone         AutoBalance = "none"
	AutoBalanceAllRounds    AutoBalance = "allRounds"
	AutoBalanceLastRound    AutoBalance = "lastRound"
	AutoBalanceCurrentRound AutoBalance = "currentRound"
)

// RoundConfig is the full, immutable configuration for one round.
type RoundConfig struct {
	// AutoBalance raises the multiplier of overused languages.
	AutoBalance AutoBalance
	// Grace is the usage share below which auto-balance applies no
	// penalty. Nil means the default of 0.15.
	Grace *float64
	// Multipliers are manual per-language score multipliers. Auto-balance
	// overwrites entries for languages it covers.
	Multipliers map[lang.Lang]float64
	// Bonuses are manual per-language flat bonuses. Preset entries win for
	// the same language.
	Bonuses map[lang.Lang]float64
	// FastBonus is the starting pool for the fastest finishers, handed out
	// in finish order and shrinking by two per row.
	FastBonus float64
	// FirstOfLanguageBonus goes to the best-placed row of each language.
	FirstOfLanguageBonus float64
	// Preset attaches a named bonus bundle.
	Preset *preset.Bonus
}

// Round is one scored contest problem. Created open, marked finished exactly
// once, never destroyed.
type Round struct {
	Finished    bool
	SetNumber   int
	RoundNumber int
	Config      RoundConfig
}

// ModifierType classifies a display modifier.
type ModifierType string

// Modifier classifications.
const (
	ModifierNerf    ModifierType = "nerf"
	ModifierBuff    ModifierType = "buff"
	ModifierBonus   ModifierType = "bonus"
	ModifierMystery ModifierType = "mystery"
)

// Modifier is a display-only explanation of one active multiplier or bonus.
type Modifier struct {
	Name string       `json:"name"`
	Type ModifierType `json:"type"`
}

// Player aggregates one identity's scores. ScoreParts is keyed by round
// number for set-scoped players and by set number for game-scoped players;
// Score is always the sum of the parts.
type Player struct {
	Name       string
	ScoreParts map[int]float64
	Score      float64
}

// NewPlayer returns a zero-score player with the given display name.
func NewPlayer(name string) *Player {
	return &Player{Name: name, ScoreParts: make(map[int]float64)}
}
