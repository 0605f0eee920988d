package gomoku

import (
	"fmt"
	"strconv"
	"strings"

	"minigame/game"

	"github.com/pkg/errors"
)

// Size is the side length of the board.
const Size = 15

// NumPoints is the number of cells.
const NumPoints = Size * Size

// WinLength is the number of stones in a row that wins.
const WinLength = 5

// Center is the middle cell, the only candidate on an empty board.
var Center = At(Size/2, Size/2)

// Point indexes a cell row-major from the top-left corner.
type Point int

// NoPoint marks the absence of a move.
const NoPoint Point = -1

func At(row, col int) Point {
	return Point(row*Size + col)
}

func (p Point) Row() int { return int(p) / Size }
func (p Point) Col() int { return int(p) % Size }

func (p Point) Valid() bool {
	return p >= 0 && p < NumPoints
}

// String names the cell by column letter and row number counted from the bottom.
func (p Point) String() string {
	if !p.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'A'+p.Col(), Size-p.Row())
}

// ParsePoint reads a cell name such as "H8".
func ParsePoint(s string) (Point, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if len(s) < 2 {
		return NoPoint, errors.Errorf("malformed point %q", s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil || s[0] < 'A' || s[0] > 'Z' {
		return NoPoint, errors.Errorf("malformed point %q", s)
	}
	col := int(s[0] - 'A')
	if col >= Size || row < 1 || row > Size {
		return NoPoint, game.Invalid(game.OffBoard, "%s", s)
	}
	return At(Size-row, col), nil
}

// directions are the four line directions as (row, col) steps.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

func inside(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Board is a Gomoku position. Stones are never removed during a game; Undo
// exists for the search only.
type Board struct {
	cells   [NumPoints]game.Color
	toMove  game.Color
	winner  game.Color
	history []Point
}

// NewBoard returns an empty board with black to move.
func NewBoard() *Board {
	return &Board{toMove: game.Black, history: make([]Point, 0, NumPoints)}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	c.history = append(make([]Point, 0, NumPoints), b.history...)
	return &c
}

func (b *Board) ToMove() game.Color      { return b.toMove }
func (b *Board) Cell(p Point) game.Color { return b.cells[p] }
func (b *Board) MoveCount() int          { return len(b.history) }

// Cells returns a copy of the board contents, row-major.
func (b *Board) Cells() []game.Color {
	cells := make([]game.Color, NumPoints)
	copy(cells, b.cells[:])
	return cells
}

// LastMove returns the most recent stone, or NoPoint.
func (b *Board) LastMove() Point {
	if len(b.history) == 0 {
		return NoPoint
	}
	return b.history[len(b.history)-1]
}

// Winner returns the color that made five in a row, or Empty.
func (b *Board) Winner() game.Color { return b.winner }

// Full reports whether every cell is occupied.
func (b *Board) Full() bool { return len(b.history) == NumPoints }

// Over reports whether the game has been won or the board is full.
func (b *Board) Over() bool {
	return b.winner != game.Empty || b.Full()
}

// Check reports whether the side to move may play p.
func (b *Board) Check(p Point) error {
	if b.Over() {
		return game.ErrGameOver
	}
	if !p.Valid() {
		return game.Invalid(game.OffBoard, "%d", int(p))
	}
	if b.cells[p] != game.Empty {
		return game.Invalid(game.Occupied, "%s", p.String())
	}
	return nil
}

// Play places a stone for the side to move. An illegal move leaves the board
// unchanged.
func (b *Board) Play(p Point) error {
	if err := b.Check(p); err != nil {
		return err
	}
	b.Do(p)
	return nil
}

// Do places a stone without validation.
func (b *Board) Do(p Point) {
	b.cells[p] = b.toMove
	b.history = append(b.history, p)
	if b.lineLength(p, b.toMove) >= WinLength {
		b.winner = b.toMove
	}
	b.toMove = b.toMove.Opponent()
}

// Undo takes back the last stone.
func (b *Board) Undo() {
	last := len(b.history) - 1
	p := b.history[last]
	b.history = b.history[:last]
	b.cells[p] = game.Empty
	b.winner = game.Empty
	b.toMove = b.toMove.Opponent()
}

// count returns how many consecutive c stones follow p in direction (dr, dc),
// p itself excluded.
func (b *Board) count(p Point, c game.Color, dr, dc int) int {
	n := 0
	row, col := p.Row()+dr, p.Col()+dc
	for inside(row, col) && b.cells[At(row, col)] == c {
		n++
		row, col = row+dr, col+dc
	}
	return n
}

// lineLength returns the longest line of c stones through p, counting p as c.
func (b *Board) lineLength(p Point, c game.Color) int {
	longest := 0
	for _, d := range directions {
		n := 1 + b.count(p, c, d[0], d[1]) + b.count(p, c, -d[0], -d[1])
		if n > longest {
			longest = n
		}
	}
	return longest
}

// Wins reports whether c playing the empty cell p makes five in a row.
func (b *Board) Wins(p Point, c game.Color) bool {
	return b.cells[p] == game.Empty && b.lineLength(p, c) >= WinLength
}
