// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/prachya/golfparty/internal/domain/game"
	"github.com/prachya/golfparty/internal/domain/model"
	"github.com/prachya/golfparty/pkg/logger"
	"github.com/prachya/golfparty/pkg/metrics"
)

// Service drives one event's engine. The engine itself is strictly
// sequential, so every operation holds one mutex: the HTTP adapter may be
// hit concurrently but operations execute one at a time.
type Service struct {
	mu   sync.Mutex
	game *game.Game

	welcome        string
	allowedPlayers []string

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithWelcome sets the text shown before the first round.
func WithWelcome(text string) Option {
	return func(s *Service) {
		s.welcome = text
	}
}

// WithAllowedPlayers pre-seeds the submission allow-list.
func WithAllowedPlayers(ids []string) Option {
	return func(s *Service) {
		s.allowedPlayers = ids
	}
}

// New constructs a Service with one fresh engine.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.game = game.New(
		game.WithWelcome(s.welcome),
		game.WithLogger(s.logger),
	)
	if len(s.allowedPlayers) > 0 {
		s.game.RestrictToPlayers(s.allowedPlayers...)
	}
	return s
}

// fail logs an engine rejection, surfaces it on the scoreboard as plain text
// and counts it. Prior engine state stays untouched; only the current view
// changes, and the live view keeps whatever was last published.
func (s *Service) fail(ctx context.Context, op string, err error) error {
	s.logger.Error(ctx, "engine operation rejected",
		logger.String("operation", op),
		logger.Error(err),
	)
	s.game.ShowMessage(err.Error())
	metrics.RecordEngineError(op)
	return err
}

// StartRound opens the next round.
func (s *Service) StartRound(ctx context.Context, cfg model.RoundConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.game.StartRound(cfg); err != nil {
		return s.fail(ctx, "start_round", err)
	}
	round, _ := s.game.CurrentRound()
	metrics.RecordRoundStarted()
	metrics.UpdateRoundState(round.RoundNumber, round.SetNumber)
	return nil
}

// SubmitResults scores a batch of rows for the open round.
func (s *Service) SubmitResults(ctx context.Context, rows []model.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	if err := s.game.SubmitResults(rows); err != nil {
		return s.fail(ctx, "submit_results", err)
	}
	metrics.RecordScoringDuration(float64(time.Since(start).Milliseconds()))
	metrics.RecordRoundScored(len(rows))
	metrics.UpdatePlayerCounts(s.game.PlayerCounts())
	return nil
}

// ShowSetRanking switches the view to the current set's standings.
func (s *Service) ShowSetRanking(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.game.ShowSetRanking(); err != nil {
		return s.fail(ctx, "show_set_ranking", err)
	}
	return nil
}

// FinishSet switches the view to the whole-game standings and closes the set.
func (s *Service) FinishSet(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.game.FinishSet(); err != nil {
		return s.fail(ctx, "finish_set", err)
	}
	metrics.RecordSetFinished()
	return nil
}

// PublishLive copies the current view to the live view.
func (s *Service) PublishLive(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.game.PublishLive()
	s.logger.Info(ctx, "view published live")
}

// RestrictToPlayers adds ids to the allow-list.
func (s *Service) RestrictToPlayers(ctx context.Context, ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.game.RestrictToPlayers(ids...)
	s.logger.Info(ctx, "allow-list extended", logger.Int("added", len(ids)))
}

// ShowMessage replaces the current view with plain text.
func (s *Service) ShowMessage(ctx context.Context, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.game.ShowMessage(text)
}

// View returns the organizer-facing view.
func (s *Service) View(ctx context.Context) model.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.View()
}

// LiveView returns the audience-facing view.
func (s *Service) LiveView(ctx context.Context) model.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.LiveView()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	inSet, inGame := s.game.PlayerCounts()
	stats := map[string]interface{}{
		"setNumber":     s.game.CurrentSetNumber(),
		"roundsPlayed":  s.game.RoundsPlayed(),
		"playersInSet":  inSet,
		"playersInGame": inGame,
		"languageUsage": s.game.UsageTotals(),
	}
	if round, ok := s.game.CurrentRound(); ok {
		stats["roundNumber"] = round.RoundNumber
		stats["roundFinished"] = round.Finished
	}

	metrics.UpdatePlayerCounts(inSet, inGame)
	return stats
}
