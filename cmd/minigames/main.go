package main

import (
	"flag"
	"fmt"
	"os"

	"minigame/config"
	"minigame/difficulty"
	"minigame/game"
	"minigame/session"

	"github.com/nsf/termbox-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

func main() {
	gameName := flag.String("game", "gomoku", "Game to play: go, gomoku or morris")
	tierName := flag.String("tier", "novice", "Difficulty: novice, apprentice, journeyman or master")
	seed := flag.Uint64("seed", 0, "Session seed (0 draws a random seed)")
	configPath := flag.String("config", "", "YAML configuration file")
	logPath := flag.String("log", "", "Write logs to this file")
	flag.Parse()

	outcome, err := run(*gameName, *tierName, *seed, *configPath, *logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if outcome != nil {
		fmt.Printf("%s at %s: %s (%s) after %d moves\n",
			outcome.Game, outcome.Difficulty, outcome.Result, outcome.Reason, outcome.Moves)
	}
}

func run(gameName, tierName string, seed uint64, configPath, logPath string) (*session.Outcome, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}
	// The terminal belongs to the board, so logs only go to a file.
	zerolog.SetGlobalLevel(zerolog.Disabled)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: f, NoColor: true})
		zerolog.SetGlobalLevel(cfg.Level())
	}

	kind, err := game.ParseKind(gameName)
	if err != nil {
		return nil, err
	}
	tier, err := difficulty.ParseTier(tierName)
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = frand.Uint64n(1<<63) + 1
	}

	if err := termbox.Init(); err != nil {
		return nil, err
	}
	defer termbox.Close()

	ui := newUI(kind)
	s, err := session.New(kind, tier, seed,
		session.WithConfig(cfg),
		session.WithObserver(ui.render),
		session.WithCaptureSelector(ui.captureSelector()),
	)
	if err != nil {
		return nil, err
	}
	return ui.loop(s)
}
