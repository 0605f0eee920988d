package goban

import (
	"minigame/difficulty"
	"minigame/game"
	"minigame/searcher"

	"golang.org/x/exp/rand"
)

// state adapts a Board to searcher.State. Boards are copied on every Play so
// tree nodes never share memory.
type state struct {
	board Board
}

var _ searcher.State = (*state)(nil)

func (s *state) Player() game.Color { return s.board.toMove }
func (s *state) Terminal() bool     { return s.board.Over() }
func (s *state) Winner() game.Color { return s.board.Winner() }

// Candidates are the legal points that do not fill the mover's own eye, plus
// a pass.
func (s *state) Candidates() []searcher.Move {
	if s.board.Over() {
		return nil
	}
	b := &s.board
	moves := make([]searcher.Move, 0, NumPoints+1)
	for p := Point(0); p < NumPoints; p++ {
		if b.cells[p] != game.Empty || b.eye(p, b.toMove) {
			continue
		}
		if _, err := b.check(p); err == nil {
			moves = append(moves, PlaceAt(p))
		}
	}
	return append(moves, PassMove())
}

func (s *state) Play(m searcher.Move) searcher.State {
	next := &state{board: s.board}
	if err := next.board.Play(m.(Move)); err != nil {
		panic(err)
	}
	return next
}

func (s *state) Playout(rng *rand.Rand, cutoff int) (game.Color, bool) {
	return s.board.Playout(rng, cutoff)
}

// ChooseMove runs MCTS with the configured simulation budget and returns the
// most visited move. The board is not modified.
func ChooseMove(b *Board, cfg difficulty.SearchConfig, rng *rand.Rand, opts ...searcher.Option) (Move, searcher.SearchMetric, error) {
	if b.Over() {
		return Move{}, searcher.SearchMetric{}, game.ErrGameOver
	}
	options := append([]searcher.Option{searcher.WithEpisodes(cfg.Simulations)}, opts...)
	mcts := searcher.NewMCTS(options...)
	move, metric, err := mcts.Search(&state{board: *b}, rng)
	if err != nil {
		return Move{}, metric, err
	}
	return move.(Move), metric, nil
}
