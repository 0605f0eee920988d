package morris

import (
	"strings"

	"minigame/game"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Move places a piece from hand (From is NoNode) or moves one, then removes
// the listed opposing pieces, one per mill completed.
type Move struct {
	From     Node
	To       Node
	Captures []Node
}

func Place(to Node, captures ...Node) Move {
	return Move{From: NoNode, To: to, Captures: captures}
}

func Slide(from, to Node, captures ...Node) Move {
	return Move{From: from, To: to, Captures: captures}
}

func (m Move) String() string {
	var sb strings.Builder
	if m.From != NoNode {
		sb.WriteString(m.From.String())
		sb.WriteByte('-')
	}
	sb.WriteString(m.To.String())
	for _, c := range m.Captures {
		sb.WriteByte('x')
		sb.WriteString(c.String())
	}
	return sb.String()
}

// ParseMove reads "d7", "a7-d7" or either followed by captures such as "xg1".
func ParseMove(s string) (Move, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	ends := strings.Split(parts[0], "-")
	if len(ends) > 2 {
		return Move{}, errors.Errorf("malformed move %q", s)
	}
	m := Move{From: NoNode}
	var err error
	if len(ends) == 2 {
		if m.From, err = ParseNode(ends[0]); err != nil {
			return Move{}, err
		}
	}
	if m.To, err = ParseNode(ends[len(ends)-1]); err != nil {
		return Move{}, err
	}
	for _, p := range parts[1:] {
		n, err := ParseNode(p)
		if err != nil {
			return Move{}, err
		}
		m.Captures = append(m.Captures, n)
	}
	return m, nil
}

// CaptureSelector chooses which opposing piece to remove when a move completes
// a mill and the move does not list its captures. eligible is never empty.
type CaptureSelector interface {
	SelectCapture(b *Board, eligible []Node) (Node, error)
}

// CaptureFunc adapts a function to CaptureSelector.
type CaptureFunc func(b *Board, eligible []Node) (Node, error)

func (f CaptureFunc) SelectCapture(b *Board, eligible []Node) (Node, error) {
	return f(b, eligible)
}

// FirstEligible captures the lowest numbered eligible piece.
type FirstEligible struct{}

func (FirstEligible) SelectCapture(_ *Board, eligible []Node) (Node, error) {
	return eligible[0], nil
}

// ListedCaptures hands out Nodes in order, one per capture.
type ListedCaptures struct {
	Nodes []Node
	next  int
}

func (l *ListedCaptures) SelectCapture(_ *Board, _ []Node) (Node, error) {
	if l.next >= len(l.Nodes) {
		return NoNode, game.Invalid(game.CaptureRequired, "no capture left to choose")
	}
	n := l.Nodes[l.next]
	l.next++
	return n, nil
}

// Check validates the piece movement of m for the side to move. Captures are
// validated by Apply.
func (b *Board) Check(m Move) error {
	if b.Over() {
		return game.ErrGameOver
	}
	c := b.toMove
	if !m.To.Valid() {
		return game.Invalid(game.OffBoard, "%d", m.To)
	}
	phase := b.Phase(c)
	if phase == Placing {
		if m.From != NoNode {
			return game.Invalid(game.WrongPhase, "%s still has pieces to place", c)
		}
	} else {
		switch {
		case m.From == NoNode:
			return game.Invalid(game.WrongPhase, "%s has no pieces in hand", c)
		case !m.From.Valid():
			return game.Invalid(game.OffBoard, "%d", m.From)
		case b.cells[m.From] != c:
			return game.Invalid(game.NotOwnPiece, "%s", m.From.String())
		}
	}
	if b.cells[m.To] != game.Empty {
		return game.Invalid(game.Occupied, "%s", m.To.String())
	}
	if phase == Moving && !adjacent(m.From, m.To) {
		return game.Invalid(game.NotAdjacent, "%s-%s", m.From, m.To)
	}
	return nil
}

// Apply plays m for the side to move. Each mill the move completes removes one
// opposing piece, taken from m.Captures or else from selector, and eligibility
// is recomputed after every removal. An illegal move or capture leaves the
// board unchanged.
func (b *Board) Apply(m Move, selector CaptureSelector) error {
	if err := b.Check(m); err != nil {
		return err
	}
	c, opponent := b.toMove, b.toMove.Opponent()
	b.shift(m, c)
	rec := record{move: m, color: c}

	granted := b.millsThrough(m.To, c)
	if len(m.Captures) > granted {
		b.revert(rec)
		return game.Invalid(game.InvalidCapture, "%s completes %d mills but lists %d captures", m.To, granted, len(m.Captures))
	}
	for i := 0; i < granted; i++ {
		eligible := b.Eligible(opponent)
		if len(eligible) == 0 {
			if i < len(m.Captures) {
				b.revert(rec)
				return game.Invalid(game.InvalidCapture, "%s has no piece left for %s", opponent, m.Captures[i])
			}
			break
		}
		var target Node
		switch {
		case i < len(m.Captures):
			target = m.Captures[i]
		case selector != nil:
			var err error
			if target, err = selector.SelectCapture(b, eligible); err != nil {
				b.revert(rec)
				return err
			}
		default:
			b.revert(rec)
			return game.Invalid(game.CaptureRequired, "%s completes a mill", m.To)
		}
		if !slices.Contains(eligible, target) {
			b.revert(rec)
			return game.Invalid(game.InvalidCapture, "%s cannot be captured", target)
		}
		b.remove(target, opponent)
		rec.captures = append(rec.captures, target)
	}

	rec.move.Captures = rec.captures
	b.history = append(b.history, rec)
	b.toMove = opponent
	b.checkCounts()
	return nil
}

// Do plays a move produced by LegalMoves without validation.
func (b *Board) Do(m Move) {
	c := b.toMove
	b.shift(m, c)
	for _, n := range m.Captures {
		b.remove(n, c.Opponent())
	}
	b.history = append(b.history, record{move: m, color: c, captures: m.Captures})
	b.toMove = c.Opponent()
}

// Undo takes back the last move.
func (b *Board) Undo() {
	last := len(b.history) - 1
	rec := b.history[last]
	b.history = b.history[:last]
	b.revert(rec)
	b.toMove = rec.color
}

func (b *Board) shift(m Move, c game.Color) {
	if m.From == NoNode {
		b.inHand[c]--
		b.onBoard[c]++
	} else {
		b.cells[m.From] = game.Empty
	}
	b.cells[m.To] = c
}

func (b *Board) remove(n Node, c game.Color) {
	b.cells[n] = game.Empty
	b.onBoard[c]--
	b.captured[c]++
}

// revert puts back the captured pieces and then the moved one.
func (b *Board) revert(rec record) {
	opponent := rec.color.Opponent()
	for _, n := range rec.captures {
		b.cells[n] = opponent
		b.onBoard[opponent]++
		b.captured[opponent]--
	}
	b.cells[rec.move.To] = game.Empty
	if rec.move.From == NoNode {
		b.inHand[rec.color]++
		b.onBoard[rec.color]--
	} else {
		b.cells[rec.move.From] = rec.color
	}
}

// baseMoves lists the piece movements available to c, captures not included.
func (b *Board) baseMoves(c game.Color) []Move {
	var moves []Move
	switch b.Phase(c) {
	case Placing:
		for to := Node(0); to < NumNodes; to++ {
			if b.cells[to] == game.Empty {
				moves = append(moves, Place(to))
			}
		}
	case Moving:
		for from := Node(0); from < NumNodes; from++ {
			if b.cells[from] != c {
				continue
			}
			for _, to := range adjacency[from] {
				if b.cells[to] == game.Empty {
					moves = append(moves, Slide(from, to))
				}
			}
		}
	case Flying:
		for from := Node(0); from < NumNodes; from++ {
			if b.cells[from] != c {
				continue
			}
			for to := Node(0); to < NumNodes; to++ {
				if b.cells[to] == game.Empty {
					moves = append(moves, Slide(from, to))
				}
			}
		}
	}
	return moves
}

func (b *Board) hasMove(c game.Color) bool {
	switch b.Phase(c) {
	case Moving:
		for from := Node(0); from < NumNodes; from++ {
			if b.cells[from] != c {
				continue
			}
			for _, to := range adjacency[from] {
				if b.cells[to] == game.Empty {
					return true
				}
			}
		}
		return false
	default:
		return b.onBoard[game.Black]+b.onBoard[game.White] < NumNodes
	}
}

// LegalMoves lists every legal move for the side to move, one entry per
// distinct set of captures a mill-completing move allows.
func (b *Board) LegalMoves() []Move {
	if b.Over() {
		return nil
	}
	c, opponent := b.toMove, b.toMove.Opponent()
	var moves []Move
	for _, m := range b.baseMoves(c) {
		b.shift(m, c)
		granted := b.millsThrough(m.To, c)
		if granted == 0 {
			moves = append(moves, m)
		} else {
			seen := make(map[string]bool)
			b.captureSets(opponent, granted, nil, func(captures []Node) {
				key := keyOf(captures)
				if seen[key] {
					return
				}
				seen[key] = true
				moves = append(moves, Move{From: m.From, To: m.To, Captures: captures})
			})
		}
		b.revert(record{move: m, color: c})
	}
	return moves
}

// captureSets calls emit with every sequence of up to n captures of c pieces,
// stopping early when no piece is left to take.
func (b *Board) captureSets(c game.Color, n int, taken []Node, emit func([]Node)) {
	eligible := b.Eligible(c)
	if n == 0 || len(eligible) == 0 {
		emit(append([]Node(nil), taken...))
		return
	}
	for _, target := range eligible {
		b.remove(target, c)
		b.captureSets(c, n-1, append(taken, target), emit)
		b.cells[target] = c
		b.onBoard[c]++
		b.captured[c]--
	}
}

func keyOf(nodes []Node) string {
	sorted := append([]Node(nil), nodes...)
	slices.Sort(sorted)
	var sb strings.Builder
	for _, n := range sorted {
		sb.WriteString(n.String())
	}
	return sb.String()
}
