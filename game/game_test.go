package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestColor(t *testing.T) {
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, Black, White.Opponent())
	require.Equal(t, Empty, Empty.Opponent(), "Empty has no opponent")
	require.Equal(t, "black", Black.String())
}

func TestParseKind(t *testing.T) {
	for _, kind := range []Kind{Go, Gomoku, Morris} {
		parsed, err := ParseKind(" " + kind.String() + " ")
		require.NoError(t, err)
		require.Equal(t, kind, parsed)
	}

	kind, err := ParseKind("GOMOKU")
	require.NoError(t, err)
	require.Equal(t, Gomoku, kind, "Names are case-insensitive")

	_, err = ParseKind("chess")
	require.Error(t, err)
}

func TestInvalidMove(t *testing.T) {
	t.Run("reason survives wrapping", func(t *testing.T) {
		err := errors.Wrap(Invalid(KoViolation, "%s", "E5"), "human move")

		reason, ok := ReasonOf(err)

		require.True(t, ok)
		require.Equal(t, KoViolation, reason)
		require.Contains(t, err.Error(), "invalid move: ko (E5)")
	})

	t.Run("other errors carry no reason", func(t *testing.T) {
		_, ok := ReasonOf(ErrGameOver)

		require.False(t, ok)
	})

	t.Run("detail is optional", func(t *testing.T) {
		require.Equal(t, "invalid move: suicide", Invalid(Suicide, "").Error())
	})
}
