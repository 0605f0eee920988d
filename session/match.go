package session

import (
	"minigame/config"
	"minigame/difficulty"
	"minigame/game"
	"minigame/game/morris"
	"minigame/searcher"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Board is a read-only picture of a game for renderers.
type Board struct {
	Game     game.Kind
	Width    int          // Grid side for Go and Gomoku, 0 for the Morris graph
	Cells    []game.Color // Row-major points, or Morris nodes a7..g1
	ToMove   game.Color
	Phase    string // Morris phase of the side to move
	InHand   [3]int // Morris pieces in hand, by color
	Captured [3]int // Pieces of each color removed from the board
	LastMove string
}

// Match is one game with its rules behind a common interface, so a session or
// an experiment can drive any of the three games.
type Match interface {
	Kind() game.Kind
	ToMove() game.Color
	Moves() int
	// Play applies a human input for the side to move. Rejected inputs leave
	// the game unchanged.
	Play(in Input) error
	// Respond searches and plays a move for the side to move.
	Respond(cfg difficulty.SearchConfig, rng *rand.Rand) (move string, metric searcher.SearchMetric, err error)
	// Status reports whether the game is over, who won and why.
	Status() (over bool, winner game.Color, reason Reason)
	Board() Board
}

// NewMatch starts a fresh game of kind. selector resolves Morris captures a
// human input does not list; it may be nil.
func NewMatch(kind game.Kind, search config.Search, selector morris.CaptureSelector) (Match, error) {
	switch kind {
	case game.Go:
		return newGoMatch(search), nil
	case game.Gomoku:
		return newGomokuMatch(search), nil
	case game.Morris:
		return newMorrisMatch(selector), nil
	}
	return nil, errors.Errorf("unknown game kind %d", int(kind))
}

func unsupported(kind game.Kind, in Input) error {
	return game.Invalid(game.Unsupported, "%s does not accept %s", kind, in)
}
