package session

import (
	"minigame/config"
	"minigame/difficulty"
	"minigame/game"
	"minigame/game/gomoku"
	"minigame/searcher"

	"golang.org/x/exp/rand"
)

type gomokuMatch struct {
	board     *gomoku.Board
	branching int
}

func newGomokuMatch(search config.Search) *gomokuMatch {
	return &gomokuMatch{board: gomoku.NewBoard(), branching: search.GomokuBranching}
}

func (m *gomokuMatch) Kind() game.Kind    { return game.Gomoku }
func (m *gomokuMatch) ToMove() game.Color { return m.board.ToMove() }
func (m *gomokuMatch) Moves() int         { return m.board.MoveCount() }

func (m *gomokuMatch) Play(in Input) error {
	if in.Kind != Place || len(in.Captures) > 0 {
		return unsupported(game.Gomoku, in)
	}
	return m.board.Play(gomoku.Point(in.To))
}

// Respond ignores rng: the alpha-beta search is deterministic.
func (m *gomokuMatch) Respond(cfg difficulty.SearchConfig, _ *rand.Rand) (string, searcher.SearchMetric, error) {
	p, metric, err := gomoku.ChooseMove(m.board, cfg, m.branching)
	if err != nil {
		return "", metric, err
	}
	return p.String(), metric, m.board.Play(p)
}

func (m *gomokuMatch) Status() (bool, game.Color, Reason) {
	switch {
	case m.board.Winner() != game.Empty:
		return true, m.board.Winner(), FiveInRow
	case m.board.Full():
		return true, game.Empty, BoardFull
	}
	return false, game.Empty, ""
}

func (m *gomokuMatch) Board() Board {
	b := Board{
		Game:   game.Gomoku,
		Width:  gomoku.Size,
		Cells:  m.board.Cells(),
		ToMove: m.board.ToMove(),
	}
	if last := m.board.LastMove(); last != gomoku.NoPoint {
		b.LastMove = last.String()
	}
	return b
}
