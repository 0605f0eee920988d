package searcher

import (
	"testing"

	"minigame/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewMCTS(t *testing.T) {
	t.Run("panics without episodes", func(t *testing.T) {
		require.Panics(t, func() {
			NewMCTS()
		}, "Should panic when no budget is given")
	})
}

func TestMCTSSearch(t *testing.T) {
	t.Run("finds the winning nim move", func(t *testing.T) {
		mcts := NewMCTS(WithEpisodes(500), WithMetrics())

		move, metric, err := mcts.Search(newNim(4), rand.New(rand.NewSource(7)))

		require.NoError(t, err)
		require.Equal(t, take(1), move, "Taking one leaves the opponent a lost pile of three")
		require.Equal(t, int64(500), metric.Episodes, "Should run exactly the configured budget")
	})

	t.Run("same seed gives the same move", func(t *testing.T) {
		mcts := NewMCTS(WithEpisodes(50))

		first, _, err1 := mcts.Search(newNim(7), rand.New(rand.NewSource(3)))
		second, _, err2 := mcts.Search(newNim(7), rand.New(rand.NewSource(3)))

		require.NoError(t, err1)
		require.NoError(t, err2)
		require.Equal(t, first, second)
	})

	t.Run("parallel workers share one tree", func(t *testing.T) {
		mcts := NewMCTS(WithEpisodes(800), WithGoroutines(4), WithMetrics())

		move, metric, err := mcts.Search(newNim(5), rand.New(rand.NewSource(11)))

		require.NoError(t, err)
		require.Equal(t, take(2), move, "Taking two leaves the opponent a lost pile of three")
		require.Equal(t, int64(800), metric.Episodes)
		require.Equal(t, 4, metric.Goroutines)
	})

	t.Run("state without candidates reports no legal moves", func(t *testing.T) {
		mcts := NewMCTS(WithEpisodes(10))

		_, _, err := mcts.Search(blank{}, rand.New(rand.NewSource(1)))

		require.ErrorIs(t, err, game.ErrNoLegalMoves)
	})

	t.Run("cut off playouts are not full playouts", func(t *testing.T) {
		mcts := NewMCTS(WithEpisodes(20), WithCutoff(1), WithMetrics())

		_, metric, err := mcts.Search(newNim(30), rand.New(rand.NewSource(5)))

		require.NoError(t, err)
		require.Zero(t, metric.FullPlayouts)
	})
}
