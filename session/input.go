package session

import (
	"fmt"
	"strings"

	"minigame/game"
	"minigame/game/goban"
	"minigame/game/gomoku"
	"minigame/game/morris"

	"github.com/pkg/errors"
)

type InputKind int

const (
	Cancel InputKind = iota
	Place
	Slide
	Pass
	Resign
)

// Input is one action of the human player. From, To and Captures index the
// board of the session's game: a point for Go and Gomoku, a node for Morris.
type Input struct {
	Kind     InputKind
	From     int
	To       int
	Captures []int
}

func CancelInput() Input { return Input{Kind: Cancel} }
func PassInput() Input   { return Input{Kind: Pass} }
func ResignInput() Input { return Input{Kind: Resign} }

func PlaceInput(to int, captures ...int) Input {
	return Input{Kind: Place, To: to, Captures: captures}
}

func SlideInput(from, to int, captures ...int) Input {
	return Input{Kind: Slide, From: from, To: to, Captures: captures}
}

func (in Input) String() string {
	switch in.Kind {
	case Cancel:
		return "cancel"
	case Pass:
		return "pass"
	case Resign:
		return "resign"
	case Slide:
		return fmt.Sprintf("slide %d-%d %v", in.From, in.To, in.Captures)
	default:
		return fmt.Sprintf("place %d %v", in.To, in.Captures)
	}
}

// ParseInput reads a typed command for a game of kind: "cancel", "pass",
// "resign" or a move in the game's notation (E5, H8, a7-d7xg1).
func ParseInput(kind game.Kind, s string) (Input, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	switch text {
	case "cancel", "quit", "q":
		return CancelInput(), nil
	case "":
		return Input{}, errors.New("empty input")
	}
	switch kind {
	case game.Go:
		m, err := goban.ParseMove(text)
		if err != nil {
			return Input{}, err
		}
		switch m.Kind {
		case goban.Pass:
			return PassInput(), nil
		case goban.Resign:
			return ResignInput(), nil
		}
		return PlaceInput(int(m.Point)), nil
	case game.Gomoku:
		p, err := gomoku.ParsePoint(text)
		if err != nil {
			return Input{}, err
		}
		return PlaceInput(int(p)), nil
	case game.Morris:
		m, err := morris.ParseMove(text)
		if err != nil {
			return Input{}, err
		}
		captures := make([]int, len(m.Captures))
		for i, n := range m.Captures {
			captures[i] = int(n)
		}
		if m.From == morris.NoNode {
			return PlaceInput(int(m.To), captures...), nil
		}
		return SlideInput(int(m.From), int(m.To), captures...), nil
	}
	return Input{}, errors.Errorf("unknown game %s", kind)
}
