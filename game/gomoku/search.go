package gomoku

import (
	"minigame/difficulty"
	"minigame/game"
	"minigame/searcher"
)

// position adapts a Board to searcher.Position. Interior nodes only search the
// branching most threatening candidates; the root searches all of them.
type position struct {
	board     *Board
	rootPly   int
	branching int
}

var _ searcher.Position[Point] = (*position)(nil)

func (p *position) Moves() []Point {
	if len(p.board.history) == p.rootPly {
		return p.board.Ordered(0)
	}
	return p.board.Ordered(p.branching)
}

func (p *position) Do(m Point) { p.board.Do(m) }
func (p *position) Undo()      { p.board.Undo() }

func (p *position) Terminal() (bool, int) {
	switch {
	case p.board.winner != game.Empty:
		// Only the player who just moved can have made five.
		return true, -1
	case p.board.Full():
		return true, 0
	}
	return false, 0
}

func (p *position) Evaluate() int {
	return p.board.Evaluate(p.board.toMove)
}

// ChooseMove returns the move for the side to move: an immediate five when one
// exists, otherwise the alpha-beta choice at the configured depth. A positive
// branching limits the candidates searched below the root. The board is not
// modified.
func ChooseMove(b *Board, cfg difficulty.SearchConfig, branching int) (Point, searcher.SearchMetric, error) {
	metrics := searcher.NewMetricsCollector()
	metrics.Start(1)
	if b.Over() {
		return NoPoint, metrics.Complete(), game.ErrGameOver
	}
	if p, ok := b.WinningMove(); ok {
		return p, metrics.Complete(), nil
	}
	pos := &position{board: b.Clone(), rootPly: len(b.history), branching: branching}
	move, _, err := searcher.AlphaBeta[Point](pos, cfg.Depth, metrics)
	if err != nil {
		return NoPoint, metrics.Complete(), err
	}
	return move, metrics.Complete(), nil
}
