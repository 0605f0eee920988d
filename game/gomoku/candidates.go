package gomoku

import (
	"minigame/game"

	"golang.org/x/exp/slices"
)

// Reach is the Chebyshev distance from an existing stone within which empty
// cells are considered.
const Reach = 2

// Candidates returns the empty cells within Reach of any stone, row-major, or
// the center on an empty board.
func (b *Board) Candidates() []Point {
	if b.Over() {
		return nil
	}
	if len(b.history) == 0 {
		return []Point{Center}
	}
	var near [NumPoints]bool
	for _, p := range b.history {
		row, col := p.Row(), p.Col()
		for r := row - Reach; r <= row+Reach; r++ {
			for c := col - Reach; c <= col+Reach; c++ {
				if inside(r, c) {
					near[At(r, c)] = true
				}
			}
		}
	}
	candidates := make([]Point, 0, 64)
	for p := Point(0); p < NumPoints; p++ {
		if near[p] && b.cells[p] == game.Empty {
			candidates = append(candidates, p)
		}
	}
	return candidates
}

// threat rates how urgent p is for the side to move: completing five first,
// then blocking five, then the length of the lines it extends for either side.
func (b *Board) threat(p Point) int {
	me, opponent := b.toMove, b.toMove.Opponent()
	if b.lineLength(p, me) >= WinLength {
		return 1 << 20
	}
	if b.lineLength(p, opponent) >= WinLength {
		return 1 << 19
	}
	score := 0
	for _, d := range directions {
		own := 1 + b.count(p, me, d[0], d[1]) + b.count(p, me, -d[0], -d[1])
		theirs := 1 + b.count(p, opponent, d[0], d[1]) + b.count(p, opponent, -d[0], -d[1])
		score += own*own + theirs*theirs
	}
	return score
}

// Ordered returns the candidates sorted by descending threat, keeping board
// order among equals. A positive limit truncates the list.
func (b *Board) Ordered(limit int) []Point {
	candidates := b.Candidates()
	scores := make(map[Point]int, len(candidates))
	for _, p := range candidates {
		scores[p] = b.threat(p)
	}
	slices.SortStableFunc(candidates, func(x, y Point) int {
		return scores[y] - scores[x]
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// WinningMove returns a cell that completes five for the side to move.
func (b *Board) WinningMove() (Point, bool) {
	for _, p := range b.Candidates() {
		if b.Wins(p, b.toMove) {
			return p, true
		}
	}
	return NoPoint, false
}
