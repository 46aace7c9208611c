package replay

import (
	"context"
	"time"

	"github.com/prachya/golfparty/pkg/logger"
)

// Config holds configuration for one replay run.
type Config struct {
	BaseURL     string        // Base URL of the service
	FixturePath string        // Path to the YAML fixture
	Timeout     time.Duration // HTTP request timeout
	PublishAll  bool          // Push every view live even if the fixture doesn't
}

// Run replays the fixture against a running service, in order: allow-list,
// then per set each round's start and results, then the set's finish.
func Run(ctx context.Context, cfg *Config) error {
	log := logger.Named("replay")

	fixture, err := LoadFixture(cfg.FixturePath)
	if err != nil {
		return err
	}

	c := newClient(cfg.BaseURL, cfg.Timeout)

	log.Info(ctx, "replaying fixture",
		logger.String("fixture", cfg.FixturePath),
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("sets", len(fixture.Sets)),
	)

	if len(fixture.Players) > 0 {
		if err := c.post(ctx, "/players", map[string]any{"ids": fixture.Players}); err != nil {
			return err
		}
	}

	for si, set := range fixture.Sets {
		for ri, round := range set.Rounds {
			if err := c.post(ctx, "/rounds", round.Config); err != nil {
				return err
			}
			if err := c.post(ctx, "/results", round.Results); err != nil {
				return err
			}
			log.Info(ctx, "round replayed",
				logger.Int("set", si+1),
				logger.Int("round", ri+1),
				logger.Int("results", len(round.Results)),
			)
			if round.ShowSetRanking {
				if err := c.post(ctx, "/rankings/set", struct{}{}); err != nil {
					return err
				}
			}
			if round.Publish || cfg.PublishAll {
				if err := c.post(ctx, "/live", struct{}{}); err != nil {
					return err
				}
			}
		}
		if err := c.post(ctx, "/sets/finish", struct{}{}); err != nil {
			return err
		}
		log.Info(ctx, "set finished", logger.Int("set", si+1))
	}

	view, err := c.getView(ctx, "/view")
	if err != nil {
		return err
	}
	log.Info(ctx, "replay complete", logger.Any("finalView", view["type"]))
	return nil
}
