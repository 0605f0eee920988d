package searcher

import (
	"testing"

	"minigame/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestTreeSelectOrExpand(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("expanding node with untried moves", func(t *testing.T) {
		state := newNim(4)
		tr := newTree(state, rng, 8)
		tr.applyLoss(rootIndex)

		child, childState, selected := tr.selectOrExpand(rootIndex, state, rng)

		require.False(t, selected, "Node should perform expansion")
		require.Equal(t, 1, child, "Child should be appended to the arena")
		require.Equal(t, []int{child}, tr.nodes[rootIndex].children, "Root should reference the new child")
		require.Len(t, tr.nodes[rootIndex].untried, 1, "One move should remain untried")
		require.Equal(t, 1, tr.nodes[child].visits, "Child should apply a temporary loss")
		require.Equal(t, game.Black, tr.nodes[child].mover, "Child records the player who moved")
		require.Equal(t, game.White, childState.Player(), "State should advance by the expanded move")
	})

	t.Run("selecting fully expanded node picks max UCT child", func(t *testing.T) {
		state := newNim(4)
		tr := &tree{}
		tr.nodes = []node{
			{parent: -1, children: []int{1, 2}, visits: 2, mover: game.White},
			{parent: 0, move: take(1), mover: game.Black, rewards: 0, visits: 1},
			{parent: 0, move: take(2), mover: game.Black, rewards: 1, visits: 1},
		}

		child, childState, selected := tr.selectOrExpand(rootIndex, state, rng)

		require.True(t, selected, "Node should perform selection")
		require.Equal(t, 2, child, "Node should select child with max policy value")
		require.Equal(t, 2, tr.nodes[2].visits, "Child should apply a temporary loss")
		require.Equal(t, 2, childState.(*nim).pile, "State should update by the selected move")
	})

	t.Run("unvisited children win ties in generation order", func(t *testing.T) {
		tr := &tree{}
		tr.nodes = []node{
			{parent: -1, children: []int{1, 2}, visits: 1},
			{parent: 0, move: take(1)},
			{parent: 0, move: take(2)},
		}

		require.Equal(t, 1, tr.pickChild(rootIndex), "First unvisited child should be chosen")
	})

	t.Run("stagnating on terminal node", func(t *testing.T) {
		state := newNim(0)
		tr := newTree(state, rng, 1)

		child, gotState, selected := tr.selectOrExpand(rootIndex, state, rng)

		require.Equal(t, rootIndex, child, "Should return the same node")
		require.Equal(t, state, gotState, "Should return the same state")
		require.False(t, selected, "Should not select any child or expand")
	})
}

func TestTreeBackup(t *testing.T) {
	t.Run("recording win alternates perspective", func(t *testing.T) {
		tr := &tree{}
		tr.nodes = []node{
			{parent: -1, mover: game.White, visits: 1},
			{parent: 0, mover: game.Black, visits: 1},
			{parent: 1, mover: game.White, visits: 1},
		}

		tr.backup(2, game.Black)

		require.Equal(t, Loss, tr.nodes[2].rewards, "White's move lost")
		require.Equal(t, Win, tr.nodes[1].rewards, "Black's move won")
		require.Equal(t, Loss, tr.nodes[0].rewards, "Root is credited from white's perspective")
		require.Equal(t, 1, tr.nodes[1].visits, "Visits are counted during selection, not backup")
	})

	t.Run("recording draw", func(t *testing.T) {
		tr := &tree{}
		tr.nodes = []node{{parent: -1, mover: game.Black, visits: 1}}

		tr.backup(0, game.Empty)

		require.Equal(t, Draw, tr.nodes[0].rewards, "Draws are worth half a win")
	})
}

func TestTreeBestChild(t *testing.T) {
	t.Run("robust child beats higher win rate", func(t *testing.T) {
		tr := &tree{}
		tr.nodes = []node{
			{parent: -1, children: []int{1, 2}, visits: 12},
			{parent: 0, move: take(1), rewards: 6, visits: 10},
			{parent: 0, move: take(2), rewards: 2, visits: 2},
		}

		move, ok := tr.bestChild()

		require.True(t, ok)
		require.Equal(t, take(1), move, "Most visited child should be chosen")
		require.InDelta(t, 10.0/12.0, tr.policy()["take1"], 1e-9)
	})

	t.Run("no children", func(t *testing.T) {
		tr := &tree{}
		tr.nodes = []node{{parent: -1}}

		_, ok := tr.bestChild()

		require.False(t, ok)
	})
}
