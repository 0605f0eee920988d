package metrics

import (
	"time"

	"minigame/difficulty"
	"minigame/game"
	"minigame/searcher"
)

// AgentConfig identifies one engine strength in an experiment.
type AgentConfig struct {
	ID   int
	Tier difficulty.Tier
	difficulty.SearchConfig
}

type MoveMetric struct {
	Step   int
	Player game.Color
	Move   string
	searcher.SearchMetric
}

type GameMetric struct {
	Game           game.Kind
	StartingPlayer int        // AgentConfig.ID of the agent playing black
	Winner         game.Color // Empty for a draw or an unfinished game
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
