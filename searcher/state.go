package searcher

import (
	"minigame/game"

	"golang.org/x/exp/rand"
)

// Move is an opaque move of the game being searched.
type Move interface {
	String() string
}

// State is what MCTS needs from a game. State should be immutable - Play always
// returns a new copy.
type State interface {
	Player() game.Color
	// Candidates lists the moves the tree may expand from this state.
	Candidates() []Move
	Play(Move) State
	Terminal() bool
	// Winner is only meaningful on terminal states; Empty means a draw.
	Winner() game.Color
	// Playout plays the game out from this state for at most cutoff moves and
	// reports the winner and whether the game actually ended.
	Playout(rng *rand.Rand, cutoff int) (winner game.Color, complete bool)
}

// Position is what alpha-beta needs from a game: a mutable board with
// make/unmake and scores from the side to move's perspective.
type Position[M any] interface {
	Moves() []M
	Do(M)
	Undo()
	// Terminal reports whether the game is over and, if so, the result for the
	// side to move: 1 win, 0 draw, -1 loss.
	Terminal() (bool, int)
	Evaluate() int
}
