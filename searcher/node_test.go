package searcher

import (
	"fmt"

	"minigame/game"

	"golang.org/x/exp/rand"
)

// take is a Nim move: remove n stones from the pile.
type take int

func (t take) String() string {
	return fmt.Sprintf("take%d", int(t))
}

// nim is a single-pile Nim game where whoever takes the last stone wins.
// It implements both State (immutable) and Position (make/unmake).
type nim struct {
	pile    int
	player  game.Color
	history []take
}

func newNim(pile int) *nim {
	return &nim{pile: pile, player: game.Black}
}

func (n *nim) moves() []take {
	moves := []take{}
	for t := 1; t <= 2 && t <= n.pile; t++ {
		moves = append(moves, take(t))
	}
	return moves
}

func (n *nim) Player() game.Color {
	return n.player
}

func (n *nim) Candidates() []Move {
	moves := []Move{}
	for _, t := range n.moves() {
		moves = append(moves, t)
	}
	return moves
}

func (n *nim) Play(move Move) State {
	return &nim{pile: n.pile - int(move.(take)), player: n.player.Opponent()}
}

func (n *nim) Terminal() bool {
	return n.pile == 0
}

// Winner is the player who took the last stone, i.e. the one not to move.
func (n *nim) Winner() game.Color {
	return n.player.Opponent()
}

func (n *nim) Playout(rng *rand.Rand, cutoff int) (game.Color, bool) {
	pile, player := n.pile, n.player
	for depth := 0; pile > 0; depth++ {
		if depth >= cutoff {
			return game.Empty, false
		}
		t := 1 + rng.Intn(2)
		if t > pile {
			t = pile
		}
		pile -= t
		player = player.Opponent()
	}
	return player.Opponent(), true
}

func (n *nim) Moves() []take {
	return n.moves()
}

func (n *nim) Do(t take) {
	n.pile -= int(t)
	n.player = n.player.Opponent()
	n.history = append(n.history, t)
}

func (n *nim) Undo() {
	last := n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	n.pile += int(last)
	n.player = n.player.Opponent()
}


// nimPosition adapts nim to Position; Terminal collides with State's signature.
type nimPosition struct {
	*nim
}

func (p nimPosition) Terminal() (bool, int) {
	if p.pile == 0 {
		return true, -1
	}
	return false, 0
}

func (p nimPosition) Evaluate() int {
	return 0
}

// blank is a state with no candidates that is not terminal.
type blank struct{}

func (blank) Player() game.Color                         { return game.Black }
func (blank) Candidates() []Move                         { return nil }
func (blank) Play(Move) State                            { panic("no moves") }
func (blank) Terminal() bool                             { return false }
func (blank) Winner() game.Color                         { return game.Empty }
func (blank) Playout(*rand.Rand, int) (game.Color, bool) { return game.Empty, true }
