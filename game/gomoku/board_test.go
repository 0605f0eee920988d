package gomoku

import (
	"testing"

	"minigame/game"

	"github.com/stretchr/testify/require"
)

// place puts c stones on the board without changing the side to move.
func place(b *Board, c game.Color, points ...Point) {
	for _, p := range points {
		b.cells[p] = c
		b.history = append(b.history, p)
	}
}

// playLine has black play line while white answers along the bottom row.
func playLine(t *testing.T, line []Point) *Board {
	b := NewBoard()
	for i, p := range line {
		require.NoError(t, b.Play(p))
		if i < len(line)-1 {
			require.NoError(t, b.Play(At(Size-1, 2*i+3)))
		}
	}
	return b
}

func TestFiveInRow(t *testing.T) {
	cases := []struct {
		name string
		line []Point
	}{
		{"horizontal along the top edge", []Point{At(0, 0), At(0, 1), At(0, 2), At(0, 3), At(0, 4)}},
		{"vertical along the right edge", []Point{At(0, 14), At(1, 14), At(2, 14), At(3, 14), At(4, 14)}},
		{"diagonal from the corner", []Point{At(0, 0), At(1, 1), At(2, 2), At(3, 3), At(4, 4)}},
		{"anti-diagonal into the corner", []Point{At(4, 10), At(3, 11), At(2, 12), At(1, 13), At(0, 14)}},
		{"completed from the middle", []Point{At(6, 3), At(6, 4), At(6, 6), At(6, 7), At(6, 5)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := playLine(t, tc.line)

			require.True(t, b.Over(), "Five in a row should end the game")
			require.Equal(t, game.Black, b.Winner())
			require.ErrorIs(t, b.Play(At(7, 7)), game.ErrGameOver)
		})
	}

	t.Run("four is not enough", func(t *testing.T) {
		b := playLine(t, []Point{At(0, 0), At(0, 1), At(0, 2), At(0, 3)})

		require.False(t, b.Over())
		require.Equal(t, game.Empty, b.Winner())
	})

	t.Run("overline wins", func(t *testing.T) {
		b := NewBoard()
		place(b, game.Black, At(3, 0), At(3, 1), At(3, 2), At(3, 4), At(3, 5))

		require.NoError(t, b.Play(At(3, 3)))

		require.Equal(t, game.Black, b.Winner(), "Six in a row counts as five or more")
	})
}

func TestBoardPlay(t *testing.T) {
	t.Run("occupied cell is rejected without side effects", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.Play(Center))

		err := b.Play(Center)

		reason, ok := game.ReasonOf(err)
		require.True(t, ok)
		require.Equal(t, game.Occupied, reason)
		require.Equal(t, game.White, b.ToMove())
		require.Equal(t, 1, b.MoveCount())
	})

	t.Run("undo restores the position", func(t *testing.T) {
		b := NewBoard()
		place(b, game.Black, At(0, 0), At(0, 1), At(0, 2), At(0, 3))

		b.Do(At(0, 4))
		require.Equal(t, game.Black, b.Winner())
		b.Undo()

		require.Equal(t, game.Empty, b.Winner())
		require.Equal(t, game.Empty, b.Cell(At(0, 4)))
		require.Equal(t, game.Black, b.ToMove())
	})
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint("h8")
	require.NoError(t, err)
	require.Equal(t, Center, p)
	require.Equal(t, "H8", p.String())

	_, err = ParsePoint("P1")
	reason, _ := game.ReasonOf(err)
	require.Equal(t, game.OffBoard, reason)

	_, err = ParsePoint("8H")
	require.Error(t, err)
}

func TestCandidates(t *testing.T) {
	t.Run("empty board offers the center", func(t *testing.T) {
		require.Equal(t, []Point{Center}, NewBoard().Candidates())
	})

	t.Run("cells within two of a stone", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.Play(Center))

		candidates := b.Candidates()

		require.Len(t, candidates, 24, "Five by five square minus the stone")
		require.NotContains(t, candidates, Center)
		require.Contains(t, candidates, At(5, 5))
		require.NotContains(t, candidates, At(4, 7), "Three rows away is out of reach")
	})

	t.Run("reach is clipped at the edge", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.Play(At(0, 0)))

		require.Len(t, b.Candidates(), 8)
	})

	t.Run("ordering puts the winning cell first", func(t *testing.T) {
		b := NewBoard()
		place(b, game.Black, At(7, 3), At(7, 4), At(7, 5), At(7, 6))
		place(b, game.White, At(7, 7), At(6, 6))

		ordered := b.Ordered(5)

		require.Len(t, ordered, 5)
		require.Equal(t, At(7, 2), ordered[0])
	})
}
