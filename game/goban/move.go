package goban

import (
	"strconv"
	"strings"

	"minigame/game"

	"github.com/pkg/errors"
)

type MoveKind int8

const (
	Place MoveKind = iota
	Pass
	Resign
)

// Move is a Go move: a stone placement, a pass or a resignation.
type Move struct {
	Kind  MoveKind
	Point Point
}

func PlaceAt(p Point) Move { return Move{Kind: Place, Point: p} }
func PassMove() Move       { return Move{Kind: Pass, Point: NoPoint} }
func ResignMove() Move     { return Move{Kind: Resign, Point: NoPoint} }

func (m Move) String() string {
	switch m.Kind {
	case Pass:
		return "pass"
	case Resign:
		return "resign"
	default:
		return m.Point.String()
	}
}

// ParseMove reads "pass", "resign" or a coordinate such as "E5".
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	switch s {
	case "PASS":
		return PassMove(), nil
	case "RESIGN":
		return ResignMove(), nil
	}
	if len(s) < 2 {
		return Move{}, errors.Errorf("malformed point %q", s)
	}
	col := strings.IndexByte(columns, s[0])
	row, err := strconv.Atoi(s[1:])
	if col < 0 || err != nil {
		return Move{}, errors.Errorf("malformed point %q", s)
	}
	if row < 1 || row > Size {
		return Move{}, game.Invalid(game.OffBoard, "%s", s)
	}
	return PlaceAt(At(Size-row, col)), nil
}
