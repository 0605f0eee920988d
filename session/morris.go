package session

import (
	"minigame/difficulty"
	"minigame/game"
	"minigame/game/morris"
	"minigame/searcher"

	"golang.org/x/exp/rand"
)

type morrisMatch struct {
	board    *morris.Board
	selector morris.CaptureSelector
}

func newMorrisMatch(selector morris.CaptureSelector) *morrisMatch {
	return &morrisMatch{board: morris.NewBoard(), selector: selector}
}

func (m *morrisMatch) Kind() game.Kind    { return game.Morris }
func (m *morrisMatch) ToMove() game.Color { return m.board.ToMove() }
func (m *morrisMatch) Moves() int         { return m.board.MoveCount() }

func (m *morrisMatch) Play(in Input) error {
	captures := make([]morris.Node, len(in.Captures))
	for i, c := range in.Captures {
		captures[i] = toNode(c)
	}
	switch in.Kind {
	case Place:
		return m.board.Apply(morris.Place(toNode(in.To), captures...), m.selector)
	case Slide:
		return m.board.Apply(morris.Slide(toNode(in.From), toNode(in.To), captures...), m.selector)
	}
	return unsupported(game.Morris, in)
}

// toNode maps out of range indexes to an invalid node the rules reject.
func toNode(i int) morris.Node {
	if i < 0 || i >= morris.NumNodes {
		return morris.NumNodes
	}
	return morris.Node(i)
}

func (m *morrisMatch) Respond(cfg difficulty.SearchConfig, rng *rand.Rand) (string, searcher.SearchMetric, error) {
	move, metric, err := morris.ChooseMove(m.board, cfg, rng)
	if err != nil {
		return "", metric, err
	}
	return move.String(), metric, m.board.Apply(move, nil)
}

func (m *morrisMatch) Status() (bool, game.Color, Reason) {
	if !m.board.Over() {
		return false, game.Empty, ""
	}
	if m.board.Blocked() {
		return true, m.board.Winner(), NoLegalMoves
	}
	return true, m.board.Winner(), ReducedToTwo
}

func (m *morrisMatch) Board() Board {
	to := m.board.ToMove()
	b := Board{
		Game:   game.Morris,
		Cells:  m.board.Cells(),
		ToMove: to,
		Phase:  m.board.Phase(to).String(),
	}
	for _, c := range []game.Color{game.Black, game.White} {
		b.InHand[c] = m.board.InHand(c)
		b.Captured[c] = m.board.Captured(c)
	}
	if last, ok := m.board.LastMove(); ok {
		b.LastMove = last.String()
	}
	return b
}
