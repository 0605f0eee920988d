package morris

import (
	"minigame/difficulty"
	"minigame/game"
	"minigame/searcher"

	"golang.org/x/exp/rand"
)

// position adapts a Board to searcher.Position.
type position struct {
	board *Board
}

var _ searcher.Position[Move] = position{}

func (p position) Moves() []Move { return p.board.LegalMoves() }
func (p position) Do(m Move)     { p.board.Do(m) }
func (p position) Undo()         { p.board.Undo() }
func (p position) Evaluate() int { return p.board.Evaluate(p.board.toMove) }

// Terminal reports a loss for the side to move; the game has no draws.
func (p position) Terminal() (bool, int) {
	b := p.board
	if b.Lost(b.toMove) {
		return true, -1
	}
	if b.Lost(b.toMove.Opponent()) {
		return true, 1
	}
	return false, 0
}

// ChooseMove returns the move for the side to move, captures included. With
// probability cfg.RandomMoveProbability the move is drawn uniformly from the
// legal moves instead of searched. The board is not modified.
func ChooseMove(b *Board, cfg difficulty.SearchConfig, rng *rand.Rand) (Move, searcher.SearchMetric, error) {
	metrics := searcher.NewMetricsCollector()
	metrics.Start(1)
	if b.Blocked() {
		return Move{}, metrics.Complete(), game.ErrNoLegalMoves
	}
	if b.Over() {
		return Move{}, metrics.Complete(), game.ErrGameOver
	}
	if cfg.RandomMoveProbability > 0 && rng.Float64() < cfg.RandomMoveProbability {
		moves := b.LegalMoves()
		return moves[rng.Intn(len(moves))], metrics.Complete(), nil
	}
	move, _, err := searcher.AlphaBeta[Move](position{board: b.Clone()}, cfg.Depth, metrics)
	return move, metrics.Complete(), err
}
