package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"minigame/config"
	"minigame/difficulty"
	"minigame/experiments"
	"minigame/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

func main() {
	gameName := flag.String("game", "gomoku", "Game to play: go, gomoku or morris")
	tierNames := flag.String("tiers", "novice,apprentice", "Comma separated tiers; each plays the next one")
	games := flag.Int("games", 2, "Games per match up")
	parallel := flag.Int("parallel", 1, "Games played at once")
	seed := flag.Uint64("seed", 0, "Seed for every game (0 draws a random seed)")
	out := flag.String("output", "experiments", "Output directory for CSV tables (empty skips writing)")
	configPath := flag.String("config", "", "YAML configuration file")
	flag.Parse()

	if err := run(*gameName, *tierNames, *games, *parallel, *seed, *out, *configPath); err != nil {
		log.Error().Err(err).Msg("arena failed")
		os.Exit(1)
	}
}

func run(gameName, tierNames string, games, parallel int, seed uint64, out, configPath string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	zerolog.SetGlobalLevel(cfg.Level())

	kind, err := game.ParseKind(gameName)
	if err != nil {
		return err
	}
	var tiers []difficulty.Tier
	for _, name := range strings.Split(tierNames, ",") {
		tier, err := difficulty.ParseTier(name)
		if err != nil {
			return err
		}
		tiers = append(tiers, tier)
	}
	if seed == 0 {
		seed = frand.Uint64n(1<<63) + 1
	}

	configs, err := experiments.AgentConfigs(kind, cfg, tiers)
	if err != nil {
		return err
	}
	e := experiments.Experiment{
		Name:     fmt.Sprintf("%s-ladder", kind),
		Game:     kind,
		Config:   cfg,
		Games:    games,
		Seed:     seed,
		Parallel: parallel,
		OutDir:   out,
	}
	log.Info().Uint64("seed", seed).Msgf("running %s", e.Name)
	result, err := e.Run(configs, experiments.Ladder(configs))
	if err != nil {
		return err
	}

	for _, s := range result.Standings {
		fmt.Printf("%-10s vs %-10s  %d-%d-%d\n", s.Agent1.Tier, s.Agent2.Tier, s.Wins, s.Losses, s.Draws)
	}
	if result.Dir != "" {
		fmt.Printf("tables written to %s\n", result.Dir)
	}
	return nil
}
