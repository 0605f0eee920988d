package gomoku

import "minigame/game"

// Pattern values, symmetric for both colors.
const (
	Five        = 100000
	OpenFour    = 10000
	ClosedFour  = 1000
	OpenThree   = 500
	ClosedThree = 100
	OpenTwo     = 50
)

// windowValue classifies a five-cell window of one color by its stone count.
// gaps counts the empty cells between its first and last stone; open counts
// the empty cells just beyond them.
func windowValue(stones, gaps, open int) int {
	switch {
	case stones >= WinLength:
		return Five
	case stones == 4 && gaps == 0 && open == 2:
		return OpenFour
	case stones == 4:
		return ClosedFour
	case stones == 3 && open == 2:
		return OpenThree
	case stones == 3:
		return ClosedThree
	case stones == 2 && open == 2:
		return OpenTwo
	}
	return 0
}

// lines lists every row, column and diagonal long enough to hold a five.
var lines = func() [][]Point {
	var all [][]Point
	for _, d := range directions {
		for p := Point(0); p < NumPoints; p++ {
			row, col := p.Row(), p.Col()
			if inside(row-d[0], col-d[1]) {
				continue
			}
			var line []Point
			for inside(row, col) {
				line = append(line, At(row, col))
				row, col = row+d[0], col+d[1]
			}
			if len(line) >= WinLength {
				all = append(all, line)
			}
		}
	}
	return all
}()

// window scores the five cells of line starting at start for c.
func (b *Board) window(line []Point, start int, c game.Color) int {
	first, last, stones := -1, -1, 0
	for i := start; i < start+WinLength; i++ {
		switch b.cells[line[i]] {
		case c:
			if first < 0 {
				first = i
			}
			last = i
			stones++
		case game.Empty:
		default:
			return 0
		}
	}
	if stones < 2 {
		return 0
	}
	open := 0
	if first > 0 && b.cells[line[first-1]] == game.Empty {
		open++
	}
	if last < len(line)-1 && b.cells[line[last+1]] == game.Empty {
		open++
	}
	return windowValue(stones, last-first+1-stones, open)
}

// linePatterns sums the windows of one line. The best window is taken first
// and every window overlapping it is dropped, so a stone counts once.
func (b *Board) linePatterns(line []Point, c game.Color) int {
	var buf [Size - WinLength + 1]int
	values := buf[:len(line)-WinLength+1]
	for i := range values {
		values[i] = b.window(line, i, c)
	}
	total := 0
	for {
		best := -1
		for i, v := range values {
			if v > 0 && (best < 0 || v > values[best]) {
				best = i
			}
		}
		if best < 0 {
			return total
		}
		total += values[best]
		for i := max(0, best-WinLength+1); i < min(len(values), best+WinLength); i++ {
			values[i] = 0
		}
	}
}

// Patterns sums the value of c's five-cell windows along every line.
func (b *Board) Patterns(c game.Color) int {
	total := 0
	for _, line := range lines {
		total += b.linePatterns(line, c)
	}
	return total
}

// Centrality rewards c stones by their closeness to the center: a stone on
// the center is worth 7 and one on the edge is worth 0.
func (b *Board) Centrality(c game.Color) int {
	total := 0
	for p := Point(0); p < NumPoints; p++ {
		if b.cells[p] != c {
			continue
		}
		dr, dc := abs(p.Row()-Size/2), abs(p.Col()-Size/2)
		total += Size/2 - max(dr, dc)
	}
	return total
}

// Evaluate scores the board from c's point of view.
func (b *Board) Evaluate(c game.Color) int {
	opponent := c.Opponent()
	return b.Patterns(c) + b.Centrality(c) - b.Patterns(opponent) - b.Centrality(opponent)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
