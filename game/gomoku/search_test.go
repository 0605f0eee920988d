package gomoku

import (
	"testing"

	"minigame/difficulty"
	"minigame/game"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("open four for white", func(t *testing.T) {
		b := NewBoard()
		place(b, game.White, At(7, 3), At(7, 4), At(7, 5), At(7, 6))

		require.Equal(t, OpenFour, b.Patterns(game.White))
		require.Equal(t, 18, b.Centrality(game.White))
		require.Equal(t, OpenFour+18, b.Evaluate(game.White))
		require.Equal(t, -(OpenFour + 18), b.Evaluate(game.Black), "Scores are symmetric")
	})

	t.Run("blocked end makes a closed four", func(t *testing.T) {
		b := NewBoard()
		place(b, game.White, At(7, 3), At(7, 4), At(7, 5), At(7, 6))
		place(b, game.Black, At(7, 2))

		require.Equal(t, ClosedFour, b.Patterns(game.White))
	})

	t.Run("the edge closes a line", func(t *testing.T) {
		b := NewBoard()
		place(b, game.Black, At(0, 0), At(0, 1), At(0, 2))

		require.Equal(t, ClosedThree, b.Patterns(game.Black))
	})

	t.Run("split four counts as a four", func(t *testing.T) {
		b := NewBoard()
		place(b, game.White, At(7, 3), At(7, 4), At(7, 6), At(7, 7))

		require.Equal(t, ClosedFour, b.Patterns(game.White))
	})

	t.Run("four with a gap beats an open three", func(t *testing.T) {
		b := NewBoard()
		place(b, game.White, At(7, 3), At(7, 5), At(7, 6), At(7, 7))

		require.Equal(t, ClosedFour, b.Patterns(game.White))

		three := NewBoard()
		place(three, game.White, At(7, 3), At(7, 4), At(7, 5))

		require.Equal(t, OpenThree, three.Patterns(game.White))
		require.Greater(t, b.Patterns(game.White), three.Patterns(game.White))
	})

	t.Run("split open three", func(t *testing.T) {
		b := NewBoard()
		place(b, game.White, At(7, 3), At(7, 5), At(7, 6))

		require.Equal(t, OpenThree, b.Patterns(game.White))
	})

	t.Run("separate shapes on one line both count", func(t *testing.T) {
		b := NewBoard()
		place(b, game.Black, At(3, 2), At(3, 3), At(3, 10), At(3, 11))

		require.Equal(t, 2*OpenTwo, b.Patterns(game.Black))
	})

	t.Run("an opposing stone inside the window breaks it", func(t *testing.T) {
		b := NewBoard()
		place(b, game.White, At(7, 3), At(7, 4), At(7, 6), At(7, 7))
		place(b, game.Black, At(7, 5))

		require.Zero(t, b.Patterns(game.White), "Both halves are closed twos")
	})

	t.Run("five dominates", func(t *testing.T) {
		b := NewBoard()
		place(b, game.Black, At(0, 0), At(0, 1), At(0, 2), At(0, 3), At(0, 4))
		place(b, game.White, At(5, 5), At(5, 6), At(5, 7), At(5, 8))

		require.Greater(t, b.Evaluate(game.Black), 0)
	})

	t.Run("lone stones are worth their position only", func(t *testing.T) {
		b := NewBoard()
		place(b, game.Black, Center)

		require.Zero(t, b.Patterns(game.Black))
		require.Equal(t, 7, b.Evaluate(game.Black))
	})
}

func TestChooseMove(t *testing.T) {
	novice := difficulty.SearchConfig{Depth: 2}

	t.Run("opens in the center", func(t *testing.T) {
		move, _, err := ChooseMove(NewBoard(), novice, 16)

		require.NoError(t, err)
		require.Equal(t, Center, move)
	})

	t.Run("takes an immediate win", func(t *testing.T) {
		b := NewBoard()
		place(b, game.Black, At(0, 0), At(0, 1), At(0, 2), At(0, 3))
		place(b, game.White, At(9, 9), At(9, 10), At(9, 11))

		move, metric, err := ChooseMove(b, novice, 16)

		require.NoError(t, err)
		require.Equal(t, At(0, 4), move)
		require.Zero(t, metric.Nodes, "No search is needed for a five")
	})

	t.Run("blocks the opponent's four", func(t *testing.T) {
		b := NewBoard()
		place(b, game.White, At(5, 3), At(5, 4), At(5, 5), At(5, 6))
		place(b, game.Black, At(5, 2), At(10, 10), At(11, 12))

		move, metric, err := ChooseMove(b, novice, 16)

		require.NoError(t, err)
		require.Equal(t, At(5, 7), move, "Any other move loses to five")
		require.Positive(t, metric.Nodes)
		require.Equal(t, game.Black, b.ToMove(), "Board should be untouched")
		require.Equal(t, 7, b.MoveCount())
	})

	t.Run("deeper search still blocks", func(t *testing.T) {
		b := NewBoard()
		place(b, game.White, At(5, 3), At(5, 4), At(5, 5), At(5, 6))
		place(b, game.Black, At(5, 2), At(10, 10), At(11, 12))

		move, _, err := ChooseMove(b, difficulty.SearchConfig{Depth: 3}, 8)

		require.NoError(t, err)
		require.Equal(t, At(5, 7), move)
	})

	t.Run("finished game", func(t *testing.T) {
		b := playLine(t, []Point{At(0, 0), At(0, 1), At(0, 2), At(0, 3), At(0, 4)})

		_, _, err := ChooseMove(b, novice, 16)

		require.ErrorIs(t, err, game.ErrGameOver)
	})
}
