package session

import (
	"minigame/difficulty"
	"minigame/game"
)

// Result is the end of a session from the human player's point of view.
type Result int

const (
	Win Result = iota
	Loss
	Draw
	Forfeit
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	default:
		return "forfeit"
	}
}

// Reason says how a game ended.
type Reason string

const (
	FiveInRow    Reason = "five-in-row"
	BoardFull    Reason = "board-full"
	AreaScore    Reason = "area-score"
	Resignation  Reason = "resignation"
	ReducedToTwo Reason = "reduced-to-two"
	NoLegalMoves Reason = "no-legal-moves"
	Forfeited    Reason = "forfeit"
)

// Outcome is reported once when a session terminates. Rewards are computed
// from it by the host.
type Outcome struct {
	Game       game.Kind
	Difficulty difficulty.Tier
	Result     Result
	Reason     Reason
	Winner     game.Color // Empty for a draw
	Moves      int
}

// resultFor converts the winning color to a result for human.
func resultFor(winner, human game.Color) Result {
	switch winner {
	case game.Empty:
		return Draw
	case human:
		return Win
	default:
		return Loss
	}
}
