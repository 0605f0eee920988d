package goban

import (
	"fmt"

	"minigame/game"
)

// Size is the side length of the board.
const Size = 9

// NumPoints is the number of intersections.
const NumPoints = Size * Size

// Point indexes an intersection row-major from the top-left corner.
type Point int

// NoPoint marks an unset ko point.
const NoPoint Point = -1

const columns = "ABCDEFGHJ"

// At returns the point at row and column (both zero-based, row 0 on top).
func At(row, col int) Point {
	return Point(row*Size + col)
}

func (p Point) Row() int { return int(p) / Size }
func (p Point) Col() int { return int(p) % Size }

func (p Point) Valid() bool {
	return p >= 0 && p < NumPoints
}

// String uses the usual Go coordinates: column letter (no I) and row number
// counted from the bottom.
func (p Point) String() string {
	if !p.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", columns[p.Col()], Size-p.Row())
}

var neighbors [NumPoints][]Point

func init() {
	for p := Point(0); p < NumPoints; p++ {
		row, col := p.Row(), p.Col()
		if row > 0 {
			neighbors[p] = append(neighbors[p], At(row-1, col))
		}
		if row < Size-1 {
			neighbors[p] = append(neighbors[p], At(row+1, col))
		}
		if col > 0 {
			neighbors[p] = append(neighbors[p], At(row, col-1))
		}
		if col < Size-1 {
			neighbors[p] = append(neighbors[p], At(row, col+1))
		}
	}
}

// Board is the complete state of a Go game. It is a plain value: copying a
// Board copies the whole game.
type Board struct {
	cells    [NumPoints]game.Color
	toMove   game.Color
	ko       Point // Forbidden recapture point for toMove, or NoPoint
	passes   int   // Consecutive passes
	resigned game.Color
	placed   [3]int // Stones placed per color
	captured [3]int // Stones of each color removed from the board
	moves    int
	last     Point
}

// NewBoard returns an empty board with black to move.
func NewBoard() *Board {
	return &Board{toMove: game.Black, ko: NoPoint, last: NoPoint}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

func (b *Board) ToMove() game.Color { return b.toMove }

// Ko returns the point the side to move may not play on, if any.
func (b *Board) Ko() (Point, bool) {
	return b.ko, b.ko != NoPoint
}

func (b *Board) Cell(p Point) game.Color { return b.cells[p] }

// Cells returns a copy of the board contents, row-major.
func (b *Board) Cells() []game.Color {
	cells := make([]game.Color, NumPoints)
	copy(cells, b.cells[:])
	return cells
}

// Placed returns how many stones c has put on the board.
func (b *Board) Placed(c game.Color) int { return b.placed[c] }

// Captured returns how many stones of c have been removed by the opponent.
func (b *Board) Captured(c game.Color) int { return b.captured[c] }

// Stones counts the stones of c currently on the board.
func (b *Board) Stones(c game.Color) int {
	n := 0
	for _, cell := range b.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// MoveCount returns the number of moves played, passes included.
func (b *Board) MoveCount() int { return b.moves }

// LastMove returns the last stone placed, or NoPoint after a pass.
func (b *Board) LastMove() Point { return b.last }

// Passes returns the number of consecutive passes.
func (b *Board) Passes() int { return b.passes }

// Resigned returns the player who resigned, or Empty.
func (b *Board) Resigned() game.Color { return b.resigned }

// Over reports whether the game ended by two consecutive passes or a resignation.
func (b *Board) Over() bool {
	return b.passes >= 2 || b.resigned != game.Empty
}

// group collects the chain containing p and counts its distinct liberties.
// lastLiberty is one of the liberties, meaningful when there is exactly one.
func group(cells *[NumPoints]game.Color, p Point) (stones []Point, liberties int, lastLiberty Point) {
	color := cells[p]
	var seen [NumPoints]bool
	var libSeen [NumPoints]bool
	lastLiberty = NoPoint

	stack := []Point{p}
	seen[p] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stones = append(stones, cur)
		for _, n := range neighbors[cur] {
			switch cells[n] {
			case game.Empty:
				if !libSeen[n] {
					libSeen[n] = true
					liberties++
					lastLiberty = n
				}
			case color:
				if !seen[n] {
					seen[n] = true
					stack = append(stack, n)
				}
			}
		}
	}
	return stones, liberties, lastLiberty
}

// Liberties returns the number of liberties of the chain at p, or 0 for an
// empty point.
func (b *Board) Liberties(p Point) int {
	if !p.Valid() || b.cells[p] == game.Empty {
		return 0
	}
	_, libs, _ := group(&b.cells, p)
	return libs
}

// placement is the outcome of putting a stone on a scratch copy of the cells.
type placement struct {
	cells       [NumPoints]game.Color
	captured    int
	capturedAt  Point // Last captured point
	ownStones   int
	ownLibs     int
	lastLiberty Point
}

// place puts a c stone on p in a scratch copy and resolves captures. It does
// not check occupancy, ko or suicide.
func (b *Board) place(p Point, c game.Color) placement {
	pl := placement{cells: b.cells, capturedAt: NoPoint}
	pl.cells[p] = c
	opponent := c.Opponent()
	for _, n := range neighbors[p] {
		if pl.cells[n] != opponent {
			continue
		}
		stones, libs, _ := group(&pl.cells, n)
		if libs > 0 {
			continue
		}
		for _, s := range stones {
			pl.cells[s] = game.Empty
			pl.capturedAt = s
		}
		pl.captured += len(stones)
	}
	stones, libs, last := group(&pl.cells, p)
	pl.ownStones = len(stones)
	pl.ownLibs = libs
	pl.lastLiberty = last
	return pl
}

// check validates placing a stone for the side to move at p.
func (b *Board) check(p Point) (placement, error) {
	if !p.Valid() {
		return placement{}, game.Invalid(game.OffBoard, "%d", int(p))
	}
	if b.cells[p] != game.Empty {
		return placement{}, game.Invalid(game.Occupied, "%s", p.String())
	}
	if p == b.ko {
		return placement{}, game.Invalid(game.KoViolation, "%s", p.String())
	}
	pl := b.place(p, b.toMove)
	if pl.ownLibs == 0 {
		return placement{}, game.Invalid(game.Suicide, "%s", p.String())
	}
	return pl, nil
}

// Check reports whether m is legal for the side to move without playing it.
func (b *Board) Check(m Move) error {
	if b.Over() {
		return game.ErrGameOver
	}
	if m.Kind != Place {
		return nil
	}
	_, err := b.check(m.Point)
	return err
}

// Play applies m for the side to move. An illegal move leaves the board
// unchanged.
func (b *Board) Play(m Move) error {
	if b.Over() {
		return game.ErrGameOver
	}
	switch m.Kind {
	case Pass:
		b.passes++
		b.ko = NoPoint
		b.last = NoPoint
	case Resign:
		b.resigned = b.toMove
		b.ko = NoPoint
		return nil
	default:
		pl, err := b.check(m.Point)
		if err != nil {
			return err
		}
		opponent := b.toMove.Opponent()
		b.cells = pl.cells
		b.placed[b.toMove]++
		b.captured[opponent] += pl.captured
		b.passes = 0
		b.last = m.Point
		b.ko = NoPoint
		if pl.captured == 1 && pl.ownStones == 1 && pl.ownLibs == 1 && pl.lastLiberty == pl.capturedAt {
			b.ko = pl.capturedAt
		}
	}
	b.moves++
	b.toMove = b.toMove.Opponent()
	return nil
}

// LegalMoves returns every legal placement for the side to move plus a pass.
func (b *Board) LegalMoves() []Move {
	if b.Over() {
		return nil
	}
	moves := make([]Move, 0, NumPoints+1)
	for p := Point(0); p < NumPoints; p++ {
		if b.cells[p] != game.Empty {
			continue
		}
		if _, err := b.check(p); err == nil {
			moves = append(moves, PlaceAt(p))
		}
	}
	return append(moves, PassMove())
}

// Score counts area (Chinese) scoring: stones on the board plus empty regions
// bordered by a single color. No komi.
func (b *Board) Score() (black, white int) {
	var seen [NumPoints]bool
	for p := Point(0); p < NumPoints; p++ {
		switch b.cells[p] {
		case game.Black:
			black++
			continue
		case game.White:
			white++
			continue
		}
		if seen[p] {
			continue
		}
		size, borders := b.region(p, &seen)
		switch borders {
		case 1 << game.Black:
			black += size
		case 1 << game.White:
			white += size
		}
	}
	return black, white
}

// region flood-fills the empty region at p and returns its size and a bit set
// of the colors bordering it.
func (b *Board) region(p Point, seen *[NumPoints]bool) (size int, borders int) {
	stack := []Point{p}
	seen[p] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		for _, n := range neighbors[cur] {
			if c := b.cells[n]; c != game.Empty {
				borders |= 1 << c
				continue
			}
			if !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return size, borders
}

// Winner returns the winner of a finished (or abandoned) game, Empty for a draw.
func (b *Board) Winner() game.Color {
	if b.resigned != game.Empty {
		return b.resigned.Opponent()
	}
	black, white := b.Score()
	switch {
	case black > white:
		return game.Black
	case white > black:
		return game.White
	default:
		return game.Empty
	}
}
