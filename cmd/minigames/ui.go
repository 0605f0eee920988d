package main

import (
	"fmt"
	"strings"

	"minigame/game"
	"minigame/game/morris"
	"minigame/session"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

const (
	fg = termbox.ColorDefault
	bg = termbox.ColorDefault
)

var stones = map[game.Color]rune{
	game.Empty: '·',
	game.Black: '●',
	game.White: '○',
}

type ui struct {
	kind    game.Kind
	last    session.Snapshot
	line    string // Text being typed
	message string // Feedback for the last input
}

func newUI(kind game.Kind) *ui {
	return &ui{kind: kind}
}

// printAt writes s at (x, y) and returns the column after it.
func printAt(x, y int, s string, attr termbox.Attribute) int {
	for _, r := range s {
		termbox.SetCell(x, y, r, fg|attr, bg)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (u *ui) render(snap session.Snapshot) {
	u.last = snap
	u.draw()
}

func (u *ui) draw() {
	snap := u.last
	_ = termbox.Clear(fg, bg)

	var y int
	if snap.Game == game.Morris {
		y = drawMorris(snap)
	} else {
		y = drawGrid(snap)
	}

	y++
	status := fmt.Sprintf("%s · %s · %s to move", snap.Game, snap.Difficulty, snap.ToMove)
	if snap.Phase != "" {
		status += fmt.Sprintf(" (%s, %d in hand)", snap.Phase, snap.InHand[snap.ToMove])
	}
	printAt(0, y, status, termbox.AttrBold)
	y++
	if snap.LastMove != "" {
		printAt(0, y, "last move: "+snap.LastMove, 0)
	}
	y++
	printAt(0, y, fmt.Sprintf("captured: black %d, white %d", snap.Captured[game.Black], snap.Captured[game.White]), 0)
	y += 2

	switch {
	case snap.State == session.AIComputing:
		printAt(0, y, "thinking...", termbox.AttrBold)
	case snap.Outcome != nil:
		printAt(0, y, fmt.Sprintf("game over: %s (%s) - press any key", snap.Outcome.Result, snap.Outcome.Reason), termbox.AttrBold)
	case snap.ForfeitPending:
		printAt(0, y, "press Esc again to forfeit, anything else to continue", termbox.AttrBold)
	default:
		x := printAt(0, y, "> "+u.line, 0)
		termbox.SetCursor(x, y)
	}
	printAt(0, y+1, u.message, 0)
	_ = termbox.Flush()
}

func drawGrid(snap session.Snapshot) int {
	columns := "ABCDEFGHJKLMNOP"
	if snap.Game == game.Gomoku {
		columns = "ABCDEFGHIJKLMNO"
	}
	for col := 0; col < snap.Width; col++ {
		printAt(4+col*2, 0, string(columns[col]), 0)
	}
	for row := 0; row < snap.Width; row++ {
		printAt(0, row+1, fmt.Sprintf("%2d", snap.Width-row), 0)
		for col := 0; col < snap.Width; col++ {
			c := snap.Cells[row*snap.Width+col]
			printAt(4+col*2, row+1, string(stones[c]), 0)
		}
	}
	return snap.Width + 1
}

// morrisPosition places a node on a 7x7 grid from its name.
func morrisPosition(n morris.Node) (x, y int) {
	name := n.String()
	return 3 + int(name[0]-'a')*4, int('7'-name[1]) * 2
}

func drawMorris(snap session.Snapshot) int {
	for n := morris.Node(0); n < morris.NumNodes; n++ {
		x, y := morrisPosition(n)
		for _, m := range morris.Neighbors(n) {
			mx, my := morrisPosition(m)
			switch {
			case my == y && mx > x:
				printAt(x+1, y, strings.Repeat("─", mx-x-1), 0)
			case mx == x && my > y:
				for i := y + 1; i < my; i++ {
					printAt(x, i, "│", 0)
				}
			}
		}
	}
	for n := morris.Node(0); n < morris.NumNodes; n++ {
		x, y := morrisPosition(n)
		printAt(x, y, string(stones[snap.Cells[n]]), 0)
	}
	for row := 0; row < 7; row++ {
		printAt(0, row*2, fmt.Sprintf("%d", 7-row), 0)
	}
	printAt(3, 13, "a   b   c   d   e   f   g", 0)
	return 14
}

// readLine collects typed text until Enter. Esc returns cancel.
func (u *ui) readLine() (string, bool) {
	u.line = ""
	for {
		u.draw()
		ev := termbox.PollEvent()
		if ev.Type != termbox.EventKey {
			continue
		}
		switch ev.Key {
		case termbox.KeyEsc, termbox.KeyCtrlC:
			return "", false
		case termbox.KeyEnter:
			line := u.line
			u.line = ""
			return line, true
		case termbox.KeyBackspace, termbox.KeyBackspace2:
			if len(u.line) > 0 {
				u.line = u.line[:len(u.line)-1]
			}
		case termbox.KeySpace:
			u.line += " "
		default:
			if ev.Ch != 0 {
				u.line += string(ev.Ch)
			}
		}
	}
}

// captureSelector asks the player which piece to remove when a move forms a
// mill without naming its capture.
func (u *ui) captureSelector() morris.CaptureSelector {
	return morris.CaptureFunc(func(b *morris.Board, eligible []morris.Node) (morris.Node, error) {
		names := make([]string, len(eligible))
		for i, n := range eligible {
			names[i] = n.String()
		}
		for {
			u.message = "mill! capture one of " + strings.Join(names, " ")
			line, ok := u.readLine()
			if !ok {
				return morris.NoNode, game.Invalid(game.CaptureRequired, "capture cancelled")
			}
			n, err := morris.ParseNode(line)
			if err == nil {
				u.message = ""
				return n, nil
			}
			u.message = err.Error()
		}
	})
}

func (u *ui) loop(s *session.Session) (*session.Outcome, error) {
	for {
		line, ok := u.readLine()
		in := session.CancelInput()
		if ok {
			var err error
			if in, err = session.ParseInput(u.kind, line); err != nil {
				u.message = err.Error()
				continue
			}
		}
		u.message = ""
		outcome, err := s.Handle(in)
		if err != nil {
			if _, invalid := game.ReasonOf(err); !invalid {
				return nil, err
			}
			u.message = err.Error()
			u.draw()
			continue
		}
		if outcome != nil {
			termbox.PollEvent()
			return outcome, nil
		}
	}
}
