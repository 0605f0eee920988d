package config

import (
	"os"

	"minigame/difficulty"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Goroutines is the default number of MCTS workers. One worker keeps seeded
// sessions reproducible.
const Goroutines = 1

// PlayoutCutoff is the default playout length limit (3 * 9 * 9).
const PlayoutCutoff = 243

// GomokuBranching caps the candidates searched at interior Gomoku nodes.
const GomokuBranching = 16

type Search struct {
	Goroutines      int `yaml:"goroutines"`
	PlayoutCutoff   int `yaml:"playout_cutoff"`
	GomokuBranching int `yaml:"gomoku_branching"` // 0 means no cap
}

type Config struct {
	LogLevel   string           `yaml:"log_level"`
	Search     Search           `yaml:"search"`
	Difficulty difficulty.Table `yaml:"difficulty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Search: Search{
			Goroutines:      Goroutines,
			PlayoutCutoff:   PlayoutCutoff,
			GomokuBranching: GomokuBranching,
		},
		Difficulty: difficulty.DefaultTable(),
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	if c.Search.Goroutines <= 0 {
		return errors.New("search.goroutines must be positive")
	}
	if c.Search.PlayoutCutoff <= 0 {
		return errors.New("search.playout_cutoff must be positive")
	}
	if c.Search.GomokuBranching < 0 {
		return errors.New("search.gomoku_branching cannot be negative")
	}
	return c.Difficulty.Validate()
}

// Level returns the configured log level, defaulting to info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
