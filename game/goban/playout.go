package goban

import (
	"minigame/game"

	"golang.org/x/exp/rand"
)

// eye reports whether every orthogonal neighbor of the empty point p is a c
// stone. Filling such a point only removes a liberty of c's own chain.
func (b *Board) eye(p Point, c game.Color) bool {
	for _, n := range neighbors[p] {
		if b.cells[n] != c {
			return false
		}
	}
	return true
}

// selfAtari reports whether the placement leaves the placed chain with a
// single liberty without capturing anything.
func (pl *placement) selfAtari() bool {
	return pl.captured == 0 && pl.ownLibs == 1
}

// atariResponses returns the liberties of chains left in atari next to the
// last stone played: capturing the stone's chain or saving one of our own.
func (b *Board) atariResponses() []Point {
	if !b.last.Valid() || b.cells[b.last] == game.Empty {
		return nil
	}
	var responses []Point
	add := func(p Point) {
		for _, r := range responses {
			if r == p {
				return
			}
		}
		responses = append(responses, p)
	}
	if _, libs, last := group(&b.cells, b.last); libs == 1 {
		add(last)
	}
	for _, n := range neighbors[b.last] {
		if b.cells[n] != b.toMove {
			continue
		}
		if _, libs, last := group(&b.cells, n); libs == 1 {
			add(last)
		}
	}
	return responses
}

// playoutMove picks the next playout move for the side to move: an atari
// response if one is playable, otherwise a random legal point that neither
// fills an own eye nor puts the mover in self-atari. Self-atari is only
// played when nothing else is left, and failing that the mover passes.
func (b *Board) playoutMove(rng *rand.Rand, empties []Point) Move {
	me := b.toMove
	for _, p := range b.atariResponses() {
		if b.eye(p, me) {
			continue
		}
		if pl, err := b.check(p); err == nil && !pl.selfAtari() {
			return PlaceAt(p)
		}
	}

	fallback := NoPoint
	rng.Shuffle(len(empties), func(i, j int) { empties[i], empties[j] = empties[j], empties[i] })
	for _, p := range empties {
		if b.eye(p, me) {
			continue
		}
		pl, err := b.check(p)
		if err != nil {
			continue
		}
		if !pl.selfAtari() {
			return PlaceAt(p)
		}
		if fallback == NoPoint {
			fallback = p
		}
	}
	if fallback != NoPoint {
		return PlaceAt(fallback)
	}
	return PassMove()
}

// Playout plays heuristic random moves on a copy of the board until two
// consecutive passes or cutoff moves. An unfinished game is scored by area.
func (b *Board) Playout(rng *rand.Rand, cutoff int) (game.Color, bool) {
	if b.Over() {
		return b.Winner(), true
	}
	sim := *b
	empties := make([]Point, 0, NumPoints)
	for i := 0; i < cutoff; i++ {
		empties = empties[:0]
		for p := Point(0); p < NumPoints; p++ {
			if sim.cells[p] == game.Empty {
				empties = append(empties, p)
			}
		}
		_ = sim.Play(sim.playoutMove(rng, empties))
		if sim.Over() {
			return sim.Winner(), true
		}
	}
	return sim.Winner(), false
}
