package searcher

import (
	"sync"

	"minigame/game"

	"golang.org/x/exp/rand"
)

const rootIndex = 0

// node lives in the tree arena; parent and children are arena indices.
type node struct {
	parent   int
	move     Move       // Move that led here from the parent
	mover    game.Color // Player who played move
	children []int
	untried  []Move
	terminal bool
	rewards  float64
	visits   int
}

// tree is an arena of nodes owned by a single search call.
type tree struct {
	sync.Mutex
	nodes []node
}

func newTree(state State, rng *rand.Rand, capacity int) *tree {
	t := &tree{nodes: make([]node, 0, capacity)}
	t.add(-1, nil, state.Player().Opponent(), state, rng)
	return t
}

// add creates a node for state and returns its index. Untried moves are
// shuffled so expansion order does not favour the generator's ordering.
func (t *tree) add(parent int, move Move, mover game.Color, state State, rng *rand.Rand) int {
	n := node{
		parent:   parent,
		move:     move,
		mover:    mover,
		terminal: state.Terminal(),
	}
	if !n.terminal {
		n.untried = state.Candidates()
		rng.Shuffle(len(n.untried), func(i, j int) {
			n.untried[i], n.untried[j] = n.untried[j], n.untried[i]
		})
	}
	t.nodes = append(t.nodes, n)
	index := len(t.nodes) - 1
	if parent >= 0 {
		t.nodes[parent].children = append(t.nodes[parent].children, index)
	}
	return index
}

// selectOrExpand descends from index by one step. It expands an untried move
// when there is one, otherwise it selects the child with the highest UCT. The
// chosen child receives a visit before its reward is known (virtual loss), so
// concurrent workers spread over the tree. It returns the same index when the
// node is terminal.
func (t *tree) selectOrExpand(index int, state State, rng *rand.Rand) (child int, childState State, selected bool) {
	n := &t.nodes[index]
	if n.terminal {
		return index, state, false
	}

	if len(n.untried) > 0 { // Expandable node
		last := len(n.untried) - 1
		move := n.untried[last]
		n.untried = n.untried[:last]
		mover := state.Player()
		childState = state.Play(move)
		child = t.add(index, move, mover, childState, rng)
		t.applyLoss(child)
		return child, childState, false
	}

	if len(n.children) == 0 {
		return index, state, false
	}

	// Fully expanded node
	child = t.pickChild(index)
	t.applyLoss(child)
	return child, state.Play(t.nodes[child].move), true
}

// pickChild returns the child maximizing UCT; ties go to the first encountered.
func (t *tree) pickChild(index int) int {
	n := &t.nodes[index]
	if n.visits == 0 {
		panic("node has children but no visits")
	}
	policy := newUCT(CSquared, float64(n.visits))

	best := -1
	bestScore := 0.0
	for _, c := range n.children {
		child := &t.nodes[c]
		score := policy.evaluate(child.rewards, float64(child.visits))
		if best < 0 || score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}

func (t *tree) applyLoss(index int) {
	t.nodes[index].rewards += Loss
	t.nodes[index].visits++
}

// backup credits the result to every node from index up to the root, each from
// the perspective of the player who moved into it. Visits were already counted
// on the way down.
func (t *tree) backup(index int, winner game.Color) {
	for index >= 0 {
		n := &t.nodes[index]
		n.rewards += reward(n.mover, winner)
		index = n.parent
	}
}

// bestChild is the robust child: the root child with the most visits.
func (t *tree) bestChild() (Move, bool) {
	root := &t.nodes[rootIndex]
	best := -1
	for _, c := range root.children {
		if best < 0 || t.nodes[c].visits > t.nodes[best].visits {
			best = c
		}
	}
	if best < 0 {
		return nil, false
	}
	return t.nodes[best].move, true
}

// policy reports the visit share of every root child.
func (t *tree) policy() map[string]float64 {
	root := &t.nodes[rootIndex]
	total := 0
	for _, c := range root.children {
		total += t.nodes[c].visits
	}
	policy := make(map[string]float64, len(root.children))
	if total == 0 {
		return policy
	}
	for _, c := range root.children {
		policy[t.nodes[c].move.String()] = float64(t.nodes[c].visits) / float64(total)
	}
	return policy
}

func reward(player, winner game.Color) float64 {
	switch winner {
	case player:
		return Win
	case game.Empty:
		return Draw
	default:
		return Loss
	}
}
