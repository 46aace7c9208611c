// Package replay drives a running service through a scripted event: a YAML
// fixture of rounds, their configurations and their raw results, submitted
// over the HTTP API in order. Organizers use it for rehearsals and to replay
// a past event against a fresh engine.
package replay

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Fixture is one scripted event.
type Fixture struct {
	// Players pre-seeds the allow-list; empty accepts everyone.
	Players []string `yaml:"players,omitempty"`
	Sets    []Set    `yaml:"sets"`
}

// Set is a contiguous group of rounds, finished together.
type Set struct {
	Rounds []ScriptedRound `yaml:"rounds"`
}

// ScriptedRound is one round's configuration and raw results.
type ScriptedRound struct {
	Config  RoundConfig `yaml:"config"`
	Results []Row       `yaml:"results"`
	// ShowSetRanking switches to the set standings after the round.
	ShowSetRanking bool `yaml:"show_set_ranking,omitempty"`
	// Publish pushes the view live after the round.
	Publish bool `yaml:"publish,omitempty"`
}

// RoundConfig mirrors the POST /rounds body.
type RoundConfig struct {
	AutoBalance          string             `yaml:"auto_balance,omitempty" json:"auto_balance,omitempty"`
	Grace                *float64           `yaml:"grace,omitempty" json:"grace,omitempty"`
	Multipliers          map[string]float64 `yaml:"multipliers,omitempty" json:"multipliers,omitempty"`
	Bonuses              map[string]float64 `yaml:"bonuses,omitempty" json:"bonuses,omitempty"`
	FastBonus            float64            `yaml:"fast_bonus,omitempty" json:"fast_bonus,omitempty"`
	FirstOfLanguageBonus float64            `yaml:"first_of_language_bonus,omitempty" json:"first_of_language_bonus,omitempty"`
	Preset               string             `yaml:"preset,omitempty" json:"preset,omitempty"`
}

// Row mirrors one submission row of the POST /results body.
type Row struct {
	Nickname  string `yaml:"nickname" json:"nickname"`
	UserID    string `yaml:"userId,omitempty" json:"userId"`
	Score     string `yaml:"score" json:"score"`
	Duration  string `yaml:"duration" json:"duration"`
	Language  string `yaml:"language" json:"language"`
	Criterion string `yaml:"criterion,omitempty" json:"criterion,omitempty"`
}

// LoadFixture reads and validates a fixture file. Rows without a userId get
// a generated one, stable per nickname within the fixture.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if len(f.Sets) == 0 {
		return nil, fmt.Errorf("fixture has no sets")
	}

	generated := make(map[string]string)
	for si := range f.Sets {
		for ri := range f.Sets[si].Rounds {
			round := &f.Sets[si].Rounds[ri]
			if len(round.Results) == 0 {
				return nil, fmt.Errorf("set %d round %d has no results", si+1, ri+1)
			}
			for i := range round.Results {
				row := &round.Results[i]
				if row.Nickname == "" {
					return nil, fmt.Errorf("set %d round %d row %d: missing nickname", si+1, ri+1, i)
				}
				if row.UserID == "" {
					id, ok := generated[row.Nickname]
					if !ok {
						id = uuid.New().String()
						generated[row.Nickname] = id
					}
					row.UserID = id
				}
			}
		}
	}
	return &f, nil
}
