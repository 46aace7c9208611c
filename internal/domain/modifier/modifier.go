// Package modifier resolves a round's configuration into the effective
// per-language multipliers and bonuses, plus the display modifiers that
// explain them.
package modifier

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/prachya/golfparty/internal/domain/lang"
	"github.com/prachya/golfparty/internal/domain/model"
)

// Auto-balance constants. The computed multiplier stays within
// [minMultiplier, maxMultiplier] for any usage share.
const (
	DefaultGrace  = 0.15
	minMultiplier = 1.0
	maxMultiplier = 1.5
)

// Effective is the resolved output for one round. The maps are fresh values
// on every call; callers may keep or mutate them freely.
type Effective struct {
	Multipliers map[lang.Lang]float64
	Bonuses     map[lang.Lang]float64
	Modifiers   []model.Modifier
}

// Resolve computes the effective modifiers for a round. stats is the usage
// history of all previous rounds; current holds the round's own occurrence
// counts and is nil when resolving at round start, before results exist.
//
// Auto-balanced multipliers overwrite manual entries for the same language.
// Preset bonus entries overwrite manual bonus entries for the same language.
func Resolve(cfg model.RoundConfig, stats *lang.UsageStats, current lang.Occurrences) (Effective, error) {
	eff := Effective{
		Multipliers: make(map[lang.Lang]float64, len(cfg.Multipliers)),
		Bonuses:     make(map[lang.Lang]float64, len(cfg.Bonuses)),
	}
	for l, m := range cfg.Multipliers {
		eff.Multipliers[l] = m
	}

	grace := DefaultGrace
	if cfg.Grace != nil {
		grace = *cfg.Grace
	}

	switch cfg.AutoBalance {
	case model.AutoBalanceAllRounds:
		applyUsagePenalty(eff.Multipliers, stats.Total, grace)
	case model.AutoBalanceLastRound:
		last, ok := stats.Last()
		if !ok {
			return Effective{}, ErrMissingHistory
		}
		applyUsagePenalty(eff.Multipliers, last.Langs, grace)
	case model.AutoBalanceCurrentRound:
		if current == nil {
			// The counts are unknown until results arrive, so the
			// round announcement shows a mystery marker instead.
			eff.Modifiers = append(eff.Modifiers, model.Modifier{
				Name: "Auto-balance x??",
				Type: model.ModifierMystery,
			})
			break
		}
		applyUsagePenalty(eff.Multipliers, current, grace)
	}

	for _, l := range sortedLangs(eff.Multipliers) {
		m := eff.Multipliers[l]
		if m == 1 {
			continue
		}
		typ := model.ModifierBuff
		if m > 1 {
			typ = model.ModifierNerf
		}
		eff.Modifiers = append(eff.Modifiers, model.Modifier{
			Name: fmt.Sprintf("%s x%s", lang.Format(l), formatNumber(m)),
			Type: typ,
		})
	}

	for l, b := range cfg.Bonuses {
		eff.Bonuses[l] = b
	}
	if cfg.Preset != nil {
		for _, l := range cfg.Preset.Langs {
			eff.Bonuses[l] = cfg.Preset.FlatBonus
		}
	}
	for _, l := range sortedLangs(eff.Bonuses) {
		eff.Modifiers = append(eff.Modifiers, model.Modifier{
			Name: fmt.Sprintf("%s +%s", lang.Format(l), formatNumber(eff.Bonuses[l])),
			Type: model.ModifierBonus,
		})
	}

	if cfg.FastBonus != 0 {
		eff.Modifiers = append(eff.Modifiers, model.Modifier{
			Name: "Fast bonus",
			Type: model.ModifierBonus,
		})
	}
	if cfg.FirstOfLanguageBonus != 0 {
		eff.Modifiers = append(eff.Modifiers, model.Modifier{
			Name: fmt.Sprintf("First of language +%s", formatNumber(cfg.FirstOfLanguageBonus)),
			Type: model.ModifierBonus,
		})
	}

	return eff, nil
}

// applyUsagePenalty overwrites multipliers for every language in usage with
// clamp(1 + share - grace, 1, 1.5) rounded to two decimals.
func applyUsagePenalty(multipliers map[lang.Lang]float64, usage lang.Occurrences, grace float64) {
	total := usage.Total()
	if total == 0 {
		return
	}
	for l, times := range usage {
		share := float64(times) / float64(total)
		m := clamp(1+share-grace, minMultiplier, maxMultiplier)
		multipliers[l] = math.Round(m*100) / 100
	}
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatNumber renders a multiplier or bonus without trailing zeros, the way
// the scoreboard shows them: 1.25 -> "1.25", 10 -> "10".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// sortedLangs returns the map's keys ordered by display label so modifier
// lists come out deterministic.
func sortedLangs[V any](m map[lang.Lang]V) []lang.Lang {
	keys := make([]lang.Lang, 0, len(m))
	for l := range m {
		keys = append(keys, l)
	}
	sort.Slice(keys, func(i, j int) bool {
		return lang.Format(keys[i]) < lang.Format(keys[j])
	})
	return keys
}
