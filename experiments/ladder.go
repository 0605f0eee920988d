package experiments

import (
	"time"

	"minigame/config"
	"minigame/difficulty"
	"minigame/experiments/metrics"
	"minigame/game"
	"minigame/session"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// MaxTurns stops games that do not end on their own, typically Go games where
// neither side passes.
const MaxTurns = 500

// Experiment plays engine against engine.
type Experiment struct {
	Name     string
	Game     game.Kind
	Config   config.Config
	Games    int    // Per match up; colors alternate between games
	Seed     uint64 // Every game draws its own seed from this one
	Parallel int    // Games played at once
	OutDir   string // CSV output root; empty skips writing
}

// Standing summarizes one match up from the first agent's point of view.
type Standing struct {
	Agent1, Agent2 metrics.AgentConfig
	Wins, Losses   int
	Draws          int
}

// Result is everything an experiment produced.
type Result struct {
	Configs     []metrics.AgentConfig
	Standings   []Standing
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
	Dir         string // Where the tables were written, if anywhere
}

// AgentConfigs returns one agent per tier with the engine parameters cfg
// gives kind at that tier.
func AgentConfigs(kind game.Kind, cfg config.Config, tiers []difficulty.Tier) ([]metrics.AgentConfig, error) {
	configs := make([]metrics.AgentConfig, 0, len(tiers))
	for i, tier := range tiers {
		search, err := cfg.Difficulty.SearchConfig(kind, tier)
		if err != nil {
			return nil, err
		}
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Tier: tier, SearchConfig: search})
	}
	return configs, nil
}

// Ladder pairs every agent with the next stronger one.
func Ladder(configs []metrics.AgentConfig) [][2]metrics.AgentConfig {
	matchUps := [][2]metrics.AgentConfig{}
	for i := 0; i+1 < len(configs); i++ {
		matchUps = append(matchUps, [2]metrics.AgentConfig{configs[i], configs[i+1]})
	}
	return matchUps
}

type gameResult struct {
	gameMetric  metrics.GameMetric
	moveMetrics []metrics.MoveMetric
}

// Run plays e.Games games for each match up and writes the tables when
// e.OutDir is set.
func (e Experiment) Run(configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) (Result, error) {
	if e.Games <= 0 {
		return Result{}, errors.New("experiment needs at least one game per match up")
	}
	log.Info().Msgf("starting %s experiment...", e.Name)

	rng := rand.New(rand.NewSource(e.Seed))
	seeds := make([]uint64, len(matchUps)*e.Games)
	for i := range seeds {
		seeds[i] = rng.Uint64()
	}
	results := make([]gameResult, len(seeds))

	var g errgroup.Group
	g.SetLimit(max(e.Parallel, 1))
	for mi, matchUp := range matchUps {
		for i := 0; i < e.Games; i++ {
			mi, i := mi, i
			index := mi*e.Games + i
			black, white := matchUp[0], matchUp[1]
			if i%2 == 1 {
				black, white = white, black
			}
			g.Go(func() error {
				log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, e.Games)
				gameMetric, moveMetrics, err := PlayGame(e.Game, e.Config.Search, black, white, seeds[index])
				if err != nil {
					return errors.Wrapf(err, "matchup %d game %d", mi+1, i+1)
				}
				results[index] = gameResult{gameMetric: gameMetric, moveMetrics: moveMetrics}
				log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, gameMetric.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	log.Info().Msgf("completed %s experiment", e.Name)

	result := Result{Configs: configs}
	for mi, matchUp := range matchUps {
		standing := Standing{Agent1: matchUp[0], Agent2: matchUp[1]}
		for i := 0; i < e.Games; i++ {
			index := mi*e.Games + i
			gr := results[index]
			result.GameRecords = append(result.GameRecords, metrics.GameRecord{
				ID:         index + 1,
				Agent1:     matchUp[0].ID,
				Agent2:     matchUp[1].ID,
				GameMetric: gr.gameMetric,
			})
			for _, mm := range gr.moveMetrics {
				result.MoveRecords = append(result.MoveRecords, metrics.MoveRecord{Game: index + 1, MoveMetric: mm})
			}

			agent1 := game.Black
			if gr.gameMetric.StartingPlayer != matchUp[0].ID {
				agent1 = game.White
			}
			switch gr.gameMetric.Winner {
			case game.Empty:
				standing.Draws++
			case agent1:
				standing.Wins++
			default:
				standing.Losses++
			}
		}
		result.Standings = append(result.Standings, standing)
	}

	if e.OutDir == "" {
		return result, nil
	}
	dir, err := write(e.OutDir, e.Name, result)
	result.Dir = dir
	return result, err
}

func write(root, name string, result Result) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", errors.Wrap(err, "failed to create experiment writer")
	}
	if err := writer.WriteAgentConfigs(result.Configs); err != nil {
		return "", errors.Wrap(err, "failed to store agent configs")
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(result.GameRecords); err != nil {
		return "", errors.Wrap(err, "failed to write game records")
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(result.MoveRecords); err != nil {
		return "", errors.Wrap(err, "failed to write move records")
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// PlayGame runs one engine-versus-engine game until it ends or MaxTurns moves
// have been played. An unfinished game has no winner.
func PlayGame(kind game.Kind, search config.Search, black, white metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	match, err := session.NewMatch(kind, search, nil)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	gameMetric := metrics.GameMetric{
		Game:           kind,
		StartingPlayer: black.ID,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	turn := 1
	over, winner, reason := match.Status()
	for !over && turn <= MaxTurns {
		player := match.ToMove()
		agent := black
		if player == game.White {
			agent = white
		}
		move, searchMetric, err := match.Respond(agent.SearchConfig, rng)
		if err != nil {
			return gameMetric, moveMetrics, err
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})
		turn++
		over, winner, reason = match.Status()
	}

	gameMetric.Winner = winner
	gameMetric.Reason = string(reason)
	if !over {
		gameMetric.Reason = "max-turns"
	}
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = match.Moves()
	return gameMetric, moveMetrics, nil
}
