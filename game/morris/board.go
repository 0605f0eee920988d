package morris

import (
	"strings"

	"minigame/game"

	"github.com/pkg/errors"
)

// NumNodes is the number of points on the board.
const NumNodes = 24

// Pieces is how many pieces each player starts with in hand.
const Pieces = 9

// Node indexes a board point, numbered row by row from a7 to g1.
type Node int8

// NoNode marks the source of a placement.
const NoNode Node = -1

var nodeNames = [NumNodes]string{
	"a7", "d7", "g7",
	"b6", "d6", "f6",
	"c5", "d5", "e5",
	"a4", "b4", "c4", "e4", "f4", "g4",
	"c3", "d3", "e3",
	"b2", "d2", "f2",
	"a1", "d1", "g1",
}

var adjacency = [NumNodes][]Node{
	0: {1, 9}, 1: {0, 2, 4}, 2: {1, 14},
	3: {4, 10}, 4: {1, 3, 5, 7}, 5: {4, 13},
	6: {7, 11}, 7: {4, 6, 8}, 8: {7, 12},
	9: {0, 10, 21}, 10: {3, 9, 11, 18}, 11: {6, 10, 15},
	12: {8, 13, 17}, 13: {5, 12, 14, 20}, 14: {2, 13, 23},
	15: {11, 16}, 16: {15, 17, 19}, 17: {12, 16},
	18: {10, 19}, 19: {16, 18, 20, 22}, 20: {13, 19},
	21: {9, 22}, 22: {19, 21, 23}, 23: {14, 22},
}

var mills = [16][3]Node{
	// Rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9, 10, 11},
	{12, 13, 14}, {15, 16, 17}, {18, 19, 20}, {21, 22, 23},
	// Columns
	{0, 9, 21}, {3, 10, 18}, {6, 11, 15}, {1, 4, 7},
	{16, 19, 22}, {8, 12, 17}, {5, 13, 20}, {2, 14, 23},
}

// millsAt lists the two mills through every node.
var millsAt [NumNodes][]int

func init() {
	for i, mill := range mills {
		for _, n := range mill {
			if !n.Valid() {
				panic("mill references a node off the board")
			}
			millsAt[n] = append(millsAt[n], i)
		}
	}
	for n, neighbors := range adjacency {
		for _, m := range neighbors {
			if !m.Valid() || !adjacent(m, Node(n)) {
				panic("adjacency table is not symmetric")
			}
		}
	}
}

func (n Node) Valid() bool {
	return n >= 0 && n < NumNodes
}

func (n Node) String() string {
	if !n.Valid() {
		return "-"
	}
	return nodeNames[n]
}

// ParseNode reads a node name such as "d7".
func ParseNode(s string) (Node, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range nodeNames {
		if n == name {
			return Node(i), nil
		}
	}
	return NoNode, game.Invalid(game.OffBoard, "%q is not a board point", s)
}

// Neighbors returns the nodes adjacent to n.
func Neighbors(n Node) []Node { return adjacency[n] }

func adjacent(a, b Node) bool {
	for _, n := range adjacency[a] {
		if n == b {
			return true
		}
	}
	return false
}

// Phase is the kind of move a player makes.
type Phase int8

const (
	Placing Phase = iota
	Moving
	Flying
)

func (p Phase) String() string {
	switch p {
	case Placing:
		return "placing"
	case Moving:
		return "moving"
	default:
		return "flying"
	}
}

// record is what Undo needs to take a move back.
type record struct {
	move     Move
	color    game.Color
	captures []Node
}

// Board is a Nine Men's Morris position.
type Board struct {
	cells    [NumNodes]game.Color
	toMove   game.Color
	inHand   [3]int
	onBoard  [3]int
	captured [3]int // Pieces of each color removed from the board
	history  []record
}

// NewBoard returns an empty board with both players holding nine pieces and
// black to move.
func NewBoard() *Board {
	b := &Board{toMove: game.Black, history: make([]record, 0, 64)}
	b.inHand[game.Black] = Pieces
	b.inHand[game.White] = Pieces
	return b
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	c.history = make([]record, len(b.history), cap(b.history))
	copy(c.history, b.history)
	return &c
}

func (b *Board) ToMove() game.Color        { return b.toMove }
func (b *Board) Cell(n Node) game.Color    { return b.cells[n] }
func (b *Board) InHand(c game.Color) int   { return b.inHand[c] }
func (b *Board) OnBoard(c game.Color) int  { return b.onBoard[c] }
func (b *Board) Captured(c game.Color) int { return b.captured[c] }
func (b *Board) MoveCount() int            { return len(b.history) }

// Cells returns a copy of the board contents indexed by node.
func (b *Board) Cells() []game.Color {
	cells := make([]game.Color, NumNodes)
	copy(cells, b.cells[:])
	return cells
}

// Phase returns the kind of move c makes next.
func (b *Board) Phase(c game.Color) Phase {
	switch {
	case b.inHand[c] > 0:
		return Placing
	case b.onBoard[c] == 3:
		return Flying
	default:
		return Moving
	}
}

// LastMove returns the most recent move.
func (b *Board) LastMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}
	return b.history[len(b.history)-1].move, true
}

// inMill reports whether the piece on n is part of a completed mill.
func (b *Board) inMill(n Node) bool {
	c := b.cells[n]
	if c == game.Empty {
		return false
	}
	for _, i := range millsAt[n] {
		if b.complete(i, c) {
			return true
		}
	}
	return false
}

func (b *Board) complete(mill int, c game.Color) bool {
	m := mills[mill]
	return b.cells[m[0]] == c && b.cells[m[1]] == c && b.cells[m[2]] == c
}

// millsThrough counts the completed c mills through n.
func (b *Board) millsThrough(n Node, c game.Color) int {
	count := 0
	for _, i := range millsAt[n] {
		if b.complete(i, c) {
			count++
		}
	}
	return count
}

// Eligible returns the c pieces that may be captured: those outside every c
// mill, or all of them when each one is in a mill.
func (b *Board) Eligible(c game.Color) []Node {
	var free, all []Node
	for n := Node(0); n < NumNodes; n++ {
		if b.cells[n] != c {
			continue
		}
		all = append(all, n)
		if !b.inMill(n) {
			free = append(free, n)
		}
	}
	if len(free) > 0 {
		return free
	}
	return all
}

// Lost reports whether c can no longer win: fewer than three pieces left, or
// no legal move when it is c's turn.
func (b *Board) Lost(c game.Color) bool {
	if b.onBoard[c]+b.inHand[c] < 3 {
		return true
	}
	return c == b.toMove && !b.hasMove(c)
}

// Blocked reports whether the side to move has pieces left but no legal move.
func (b *Board) Blocked() bool {
	c := b.toMove
	return b.onBoard[c]+b.inHand[c] >= 3 && !b.hasMove(c)
}

// Over reports whether either player has lost.
func (b *Board) Over() bool {
	return b.Lost(game.Black) || b.Lost(game.White)
}

// Winner returns the player whose opponent has lost, or Empty while the game
// is still on. There are no draws.
func (b *Board) Winner() game.Color {
	switch {
	case b.Lost(b.toMove):
		return b.toMove.Opponent()
	case b.Lost(b.toMove.Opponent()):
		return b.toMove
	}
	return game.Empty
}

// checkCounts panics when the piece bookkeeping no longer adds up.
func (b *Board) checkCounts() {
	for _, c := range []game.Color{game.Black, game.White} {
		n := 0
		for _, cell := range b.cells {
			if cell == c {
				n++
			}
		}
		if n != b.onBoard[c] || b.onBoard[c]+b.inHand[c]+b.captured[c] != Pieces {
			panic(errors.Errorf("piece count mismatch for %s: %d on board, %d counted, %d in hand, %d captured",
				c, b.onBoard[c], n, b.inHand[c], b.captured[c]))
		}
	}
}
