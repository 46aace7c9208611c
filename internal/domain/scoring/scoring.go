// Package scoring turns one round's raw submission rows into ranked, scored
// results. The passes mirror how the round plays out on stage: rank by
// accuracy, criterion and time, count the base score down from 100, then
// layer the configured bonuses on top.
package scoring

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/prachya/golfparty/internal/domain/lang"
	"github.com/prachya/golfparty/internal/domain/model"
	"github.com/prachya/golfparty/internal/domain/modifier"
)

const (
	// baseScoreStart is the base score of the best-ranked row; each
	// following row with a finite criterion gets one point less.
	baseScoreStart = 100
	// fastBonusStep is how much the fast-bonus pool shrinks per row.
	fastBonusStep = 2
)

// ScoreRound scores one round's rows under the resolved modifiers and returns
// them in final display order (adjusted score descending). Rows without a
// parsable criterion rank last, score zero and never consume a base score.
func ScoreRound(results []model.Result, cfg model.RoundConfig, eff modifier.Effective) []model.ProcessedResult {
	rows := make([]*model.ProcessedResult, len(results))
	for i, r := range results {
		row := &model.ProcessedResult{Result: r}
		row.DisplayLanguage = lang.Format(lang.Lang(r.Language))
		row.LanguageMultiplier = 1
		if m, ok := eff.Multipliers[lang.Lang(r.Language)]; ok {
			row.LanguageMultiplier = m
		}
		row.OriginalCriterion = parseCriterion(r.Criterion)
		row.AdjustedCriterion = row.OriginalCriterion * row.LanguageMultiplier
		row.Accuracy = parsePercent(r.Score)
		rows[i] = row
	}

	// Ranking: three stable passes, least significant first. Accuracy
	// dominates, then the language-adjusted criterion, then elapsed time.
	sort.SliceStable(rows, func(i, j int) bool {
		return ParseDuration(rows[i].Duration) < ParseDuration(rows[j].Duration)
	})
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AdjustedCriterion < rows[j].AdjustedCriterion
	})
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Accuracy > rows[j].Accuracy
	})

	next := float64(baseScoreStart)
	for _, row := range rows {
		if math.IsInf(row.AdjustedCriterion, 1) {
			row.BaseScore = 0
		} else {
			row.BaseScore = next * row.Accuracy
			next--
		}
		row.AdjustedScore = row.BaseScore
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].BaseScore > rows[j].BaseScore
	})

	// Every bonus is scaled by the row's own accuracy: a 0% row gets
	// nothing no matter what it qualifies for.
	addBonus := func(row *model.ProcessedResult, amount float64) {
		row.AdjustedScore += amount * row.Accuracy
	}

	for _, row := range rows {
		if b, ok := eff.Bonuses[lang.Lang(row.Language)]; ok {
			addBonus(row, b)
		}
	}

	if cfg.FirstOfLanguageBonus != 0 {
		given := make(map[string]bool)
		for _, row := range rows {
			if given[row.Language] {
				continue
			}
			given[row.Language] = true
			addBonus(row, cfg.FirstOfLanguageBonus)
		}
	}

	if cfg.FastBonus != 0 {
		byTime := make([]*model.ProcessedResult, len(rows))
		copy(byTime, rows)
		sort.SliceStable(byTime, func(i, j int) bool {
			return ParseDuration(byTime[i].Duration) < ParseDuration(byTime[j].Duration)
		})
		pool := cfg.FastBonus
		for _, row := range byTime {
			addBonus(row, pool)
			pool -= fastBonusStep
			if pool < 0 {
				break
			}
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AdjustedScore > rows[j].AdjustedScore
	})
	out := make([]model.ProcessedResult, len(rows))
	for i, row := range rows {
		row.BaseScore = math.Round(row.BaseScore)
		row.AdjustedScore = math.Round(row.AdjustedScore)
		out[i] = *row
	}
	return out
}

// parseCriterion reads the optional lower-is-better metric. Absent or
// unparsable values rank as +Inf so the row is unranked by criterion.
func parseCriterion(s string) float64 {
	if s == "" {
		return math.Inf(1)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.Inf(1)
	}
	return v
}
