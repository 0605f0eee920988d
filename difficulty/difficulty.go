package difficulty

import (
	"strings"

	"minigame/game"

	"github.com/pkg/errors"
)

// Tier is the difficulty chosen when a session starts.
type Tier int

const (
	Novice Tier = iota
	Apprentice
	Journeyman
	Master
)

// Tiers lists every tier from weakest to strongest.
var Tiers = []Tier{Novice, Apprentice, Journeyman, Master}

var tierNames = []string{"novice", "apprentice", "journeyman", "master"}

func (t Tier) String() string {
	if t < Novice || t > Master {
		return "unknown"
	}
	return tierNames[t]
}

// ParseTier maps a tier name (case-insensitive) to its Tier.
func ParseTier(s string) (Tier, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range tierNames {
		if n == name {
			return Tier(i), nil
		}
	}
	return 0, errors.Errorf("unknown difficulty tier %q", s)
}

// SearchConfig parameterizes one engine for a whole session. It is never
// mutated once the session has started.
type SearchConfig struct {
	Depth                 int     // Alpha-beta plies (Gomoku, Morris)
	Simulations           int     // MCTS budget (Go)
	RandomMoveProbability float64 // Chance of replacing the searched move with a random one
}

// Profile is one row of the difficulty table.
type Profile struct {
	GoSimulations int     `yaml:"go_simulations"`
	GomokuDepth   int     `yaml:"gomoku_depth"`
	MorrisDepth   int     `yaml:"morris_depth"`
	MorrisRandom  float64 `yaml:"morris_random"`
}

// Table maps every tier to its search parameters.
type Table struct {
	Novice     Profile `yaml:"novice"`
	Apprentice Profile `yaml:"apprentice"`
	Journeyman Profile `yaml:"journeyman"`
	Master     Profile `yaml:"master"`
}

// DefaultTable returns the standard tier table.
func DefaultTable() Table {
	return Table{
		Novice:     Profile{GoSimulations: 500, GomokuDepth: 2, MorrisDepth: 2, MorrisRandom: 0.5},
		Apprentice: Profile{GoSimulations: 2000, GomokuDepth: 3, MorrisDepth: 3},
		Journeyman: Profile{GoSimulations: 8000, GomokuDepth: 4, MorrisDepth: 4},
		Master:     Profile{GoSimulations: 20000, GomokuDepth: 5, MorrisDepth: 5},
	}
}

// Profile returns the row for tier.
func (t Table) Profile(tier Tier) (Profile, error) {
	switch tier {
	case Novice:
		return t.Novice, nil
	case Apprentice:
		return t.Apprentice, nil
	case Journeyman:
		return t.Journeyman, nil
	case Master:
		return t.Master, nil
	default:
		return Profile{}, errors.Errorf("unknown difficulty tier %d", int(tier))
	}
}

// SearchConfig resolves the engine parameters of kind at tier.
func (t Table) SearchConfig(kind game.Kind, tier Tier) (SearchConfig, error) {
	p, err := t.Profile(tier)
	if err != nil {
		return SearchConfig{}, err
	}
	switch kind {
	case game.Go:
		return SearchConfig{Simulations: p.GoSimulations}, nil
	case game.Gomoku:
		return SearchConfig{Depth: p.GomokuDepth}, nil
	case game.Morris:
		return SearchConfig{Depth: p.MorrisDepth, RandomMoveProbability: p.MorrisRandom}, nil
	default:
		return SearchConfig{}, errors.Errorf("unknown game kind %d", int(kind))
	}
}

// Validate rejects tables that would stall or break a search.
func (t Table) Validate() error {
	for _, tier := range Tiers {
		p, _ := t.Profile(tier)
		if p.GoSimulations <= 0 {
			return errors.Errorf("%s: go_simulations must be positive", tier)
		}
		if p.GomokuDepth <= 0 || p.MorrisDepth <= 0 {
			return errors.Errorf("%s: search depths must be positive", tier)
		}
		if p.MorrisRandom < 0 || p.MorrisRandom > 1 {
			return errors.Errorf("%s: morris_random must be within [0, 1]", tier)
		}
	}
	return nil
}
