package session

import (
	"minigame/config"
	"minigame/difficulty"
	"minigame/game"
	"minigame/game/goban"
	"minigame/searcher"

	"golang.org/x/exp/rand"
)

type goMatch struct {
	board  *goban.Board
	search config.Search
}

func newGoMatch(search config.Search) *goMatch {
	return &goMatch{board: goban.NewBoard(), search: search}
}

func (m *goMatch) Kind() game.Kind    { return game.Go }
func (m *goMatch) ToMove() game.Color { return m.board.ToMove() }
func (m *goMatch) Moves() int         { return m.board.MoveCount() }

func (m *goMatch) Play(in Input) error {
	switch in.Kind {
	case Place:
		if len(in.Captures) > 0 {
			return unsupported(game.Go, in)
		}
		return m.board.Play(goban.PlaceAt(goban.Point(in.To)))
	case Pass:
		return m.board.Play(goban.PassMove())
	case Resign:
		return m.board.Play(goban.ResignMove())
	}
	return unsupported(game.Go, in)
}

func (m *goMatch) Respond(cfg difficulty.SearchConfig, rng *rand.Rand) (string, searcher.SearchMetric, error) {
	move, metric, err := goban.ChooseMove(m.board, cfg, rng,
		searcher.WithGoroutines(m.search.Goroutines),
		searcher.WithCutoff(m.search.PlayoutCutoff),
		searcher.WithMetrics(),
	)
	if err != nil {
		return "", metric, err
	}
	return move.String(), metric, m.board.Play(move)
}

func (m *goMatch) Status() (bool, game.Color, Reason) {
	if !m.board.Over() {
		return false, game.Empty, ""
	}
	if m.board.Resigned() != game.Empty {
		return true, m.board.Winner(), Resignation
	}
	return true, m.board.Winner(), AreaScore
}

func (m *goMatch) Board() Board {
	b := Board{
		Game:   game.Go,
		Width:  goban.Size,
		Cells:  m.board.Cells(),
		ToMove: m.board.ToMove(),
	}
	b.Captured[game.Black] = m.board.Captured(game.Black)
	b.Captured[game.White] = m.board.Captured(game.White)
	if m.board.MoveCount() > 0 {
		b.LastMove = goban.PassMove().String()
		if last := m.board.LastMove(); last != goban.NoPoint {
			b.LastMove = last.String()
		}
	}
	return b
}
