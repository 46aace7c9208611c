// Package game owns the round/set lifecycle for one live event: it dispatches
// result batches to the scoring passes, accumulates player totals per set and
// across the whole game, and decides which view the scoreboard shows.
package game

import (
	"context"
	"sort"

	"github.com/prachya/golfparty/internal/domain/lang"
	"github.com/prachya/golfparty/internal/domain/model"
	"github.com/prachya/golfparty/internal/domain/modifier"
	"github.com/prachya/golfparty/internal/domain/scoring"
	"github.com/prachya/golfparty/pkg/logger"
)

const defaultWelcome = "Welcome to Code Golf Party #1!"

// Option applies a configuration option to the Game.
type Option func(*Game)

// WithWelcome sets the text shown before the first round starts.
func WithWelcome(text string) Option {
	return func(g *Game) {
		if text != "" {
			g.view = model.TextView{Text: text}
		}
	}
}

// WithLogger sets a custom logger for the game.
func WithLogger(log logger.Logger) Option {
	return func(g *Game) {
		if log != nil {
			g.log = log
		}
	}
}

// Game is the engine for one live event. It is not safe for concurrent use;
// callers must drive it from a single goroutine or serialize access.
type Game struct {
	currentRound *model.Round

	// view is what the organizer currently sees; liveView is what the
	// audience sees. The two diverge until PublishLive copies one to the
	// other.
	view     model.View
	liveView model.View

	setPlayers  *roster
	gamePlayers *roster

	usage *lang.UsageStats

	nextRoundNumber  int
	currentSetNumber int
	setFinished      bool

	allowedPlayerIDs map[string]struct{}

	log logger.Logger
}

// New creates a fresh engine for one event.
func New(opts ...Option) *Game {
	g := &Game{
		view:             model.TextView{Text: defaultWelcome},
		setPlayers:       newRoster(),
		gamePlayers:      newRoster(),
		usage:            lang.NewUsageStats(),
		nextRoundNumber:  1,
		currentSetNumber: 1,
		allowedPlayerIDs: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.liveView = g.view
	return g
}

// StartRound opens the next round under cfg. If the previous set was marked
// finished, the set number advances and per-set state resets first. Fails
// with ErrInvalidTransition while a round is open and unfinished, and with
// modifier.ErrMissingHistory when cfg asks for lastRound auto-balance before
// any round has been played; a failed start changes nothing.
func (g *Game) StartRound(cfg model.RoundConfig) error {
	if g.currentRound != nil && !g.currentRound.Finished {
		return ErrInvalidTransition
	}
	if cfg.AutoBalance == model.AutoBalanceLastRound {
		if _, ok := g.usage.Last(); !ok {
			return modifier.ErrMissingHistory
		}
	}

	if g.setFinished {
		g.currentSetNumber++
		g.setFinished = false
		g.nextRoundNumber = 1
		g.setPlayers = newRoster()
	}

	g.currentRound = &model.Round{
		SetNumber:   g.currentSetNumber,
		RoundNumber: g.nextRoundNumber,
		Config:      cfg,
	}
	g.nextRoundNumber++

	// Announce the round: modifiers only, no results yet. The current
	// round's own counts are unknown, so currentRound auto-balance shows
	// up as a mystery marker.
	eff, err := modifier.Resolve(cfg, g.usage, nil)
	if err != nil {
		return err
	}
	g.view = model.RoundInfoView{
		Modifiers:   eff.Modifiers,
		SetNumber:   g.currentRound.SetNumber,
		RoundNumber: g.currentRound.RoundNumber,
	}

	if g.log != nil {
		g.log.Info(context.Background(), "round started",
			logger.Int("set", g.currentRound.SetNumber),
			logger.Int("round", g.currentRound.RoundNumber),
		)
	}
	return nil
}

// SubmitResults scores one batch of raw rows for the open round, folds the
// scores into the set and game players, records language usage and marks the
// round finished. Fails with ErrRoundNotOpen before the first round and with
// ErrInvalidTransition once the round is finished.
func (g *Game) SubmitResults(results []model.Result) error {
	if g.currentRound == nil {
		return ErrRoundNotOpen
	}
	if g.currentRound.Finished {
		return ErrInvalidTransition
	}

	filtered := g.filterAllowed(results)

	langs := make([]lang.Lang, len(filtered))
	for i, r := range filtered {
		langs[i] = lang.Lang(r.Language)
	}
	occ := lang.Count(langs)

	eff, err := modifier.Resolve(g.currentRound.Config, g.usage, occ)
	if err != nil {
		return err
	}

	processed := scoring.ScoreRound(filtered, g.currentRound.Config, eff)

	for i := range processed {
		row := &processed[i]
		p := g.setPlayers.get(row.UserID, row.Nickname)
		p.Score += row.AdjustedScore
		p.ScoreParts[g.currentRound.RoundNumber] = row.AdjustedScore

		gp := g.gamePlayers.get(row.UserID, row.Nickname)
		// A set's contribution is the best running set score seen at any
		// round boundary, so the game total never decreases when a round
		// with negative bonuses pulls the set score down.
		if prev, ok := gp.ScoreParts[g.currentSetNumber]; !ok || p.Score > prev {
			gp.ScoreParts[g.currentSetNumber] = p.Score
		}
		total := 0.0
		for _, part := range gp.ScoreParts {
			total += part
		}
		gp.Score = total
	}

	g.view = model.RoundResultView{
		Results:     processed,
		Modifiers:   eff.Modifiers,
		SetNumber:   g.currentRound.SetNumber,
		RoundNumber: g.currentRound.RoundNumber,
	}

	g.usage.Append(g.currentRound.RoundNumber, occ)
	g.currentRound.Finished = true

	if g.log != nil {
		g.log.Info(context.Background(), "round scored",
			logger.Int("round", g.currentRound.RoundNumber),
			logger.Int("results", len(processed)),
			logger.Int("filteredOut", len(results)-len(filtered)),
		)
	}
	return nil
}

// ShowSetRanking switches the view to the current set's standings. Ties keep
// first-seen order. Fails with ErrRoundNotOpen before the first round.
func (g *Game) ShowSetRanking() error {
	if g.currentRound == nil {
		return ErrRoundNotOpen
	}
	players := g.setPlayers.inOrder()
	entries := make([]model.RankingEntry, len(players))
	for i, p := range players {
		entries[i] = model.RankingEntry{Name: p.Name, Points: p.Score}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	g.view = model.SetRankingView{
		SetNumber:   g.currentSetNumber,
		RoundNumber: g.currentRound.RoundNumber,
		Entries:     entries,
	}
	return nil
}

// FinishSet switches the view to the whole-game standings and marks the set
// finished so the next StartRound opens a new set. Fails with
// ErrAlreadyFinished if called twice for the same set.
func (g *Game) FinishSet() error {
	if g.setFinished {
		return ErrAlreadyFinished
	}
	sets := make([]int, g.currentSetNumber)
	for i := range sets {
		sets[i] = i + 1
	}
	players := g.gamePlayers.inOrder()
	entries := make([]model.OverallRankingEntry, len(players))
	for i, p := range players {
		parts := make(map[int]float64, len(p.ScoreParts))
		for set, points := range p.ScoreParts {
			parts[set] = points
		}
		entries[i] = model.OverallRankingEntry{
			RankingEntry: model.RankingEntry{Name: p.Name, Points: p.Score},
			PointsBySet:  parts,
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	g.view = model.OverallRankingView{
		SetNumber: g.currentSetNumber,
		Sets:      sets,
		Entries:   entries,
	}
	g.setFinished = true
	return nil
}

// PublishLive copies the current view to the audience-facing live view.
func (g *Game) PublishLive() {
	g.liveView = g.view
}

// RestrictToPlayers adds ids to the allow-list. An empty allow-list accepts
// every submission.
func (g *Game) RestrictToPlayers(ids ...string) {
	for _, id := range ids {
		g.allowedPlayerIDs[id] = struct{}{}
	}
}

// ShowMessage replaces the current view with plain text. The driving layer
// uses it to surface a caught failure instead of the last valid view.
func (g *Game) ShowMessage(text string) {
	g.view = model.TextView{Text: text}
}

// View returns the organizer-facing view.
func (g *Game) View() model.View { return g.view }

// LiveView returns the audience-facing view.
func (g *Game) LiveView() model.View { return g.liveView }

// CurrentRound returns a copy of the current round, or false before the
// first round starts.
func (g *Game) CurrentRound() (model.Round, bool) {
	if g.currentRound == nil {
		return model.Round{}, false
	}
	return *g.currentRound, true
}

// CurrentSetNumber returns the active set number.
func (g *Game) CurrentSetNumber() int { return g.currentSetNumber }

// RoundsPlayed returns how many rounds have been scored so far.
func (g *Game) RoundsPlayed() int { return len(g.usage.History) }

// PlayerCounts returns how many distinct players the current set and the
// whole game have seen.
func (g *Game) PlayerCounts() (inSet, inGame int) {
	return g.setPlayers.len(), g.gamePlayers.len()
}

// UsageTotals returns a copy of the cumulative language usage counts.
func (g *Game) UsageTotals() lang.Occurrences {
	return g.usage.Total.Clone()
}

func (g *Game) filterAllowed(results []model.Result) []model.Result {
	if len(g.allowedPlayerIDs) == 0 {
		return results
	}
	filtered := make([]model.Result, 0, len(results))
	for _, r := range results {
		if _, ok := g.allowedPlayerIDs[r.UserID]; ok {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
