package morris

import "minigame/game"

// Evaluation weights, strongest first.
const (
	PieceWeight     = 100
	MillWeight      = 30
	PotentialWeight = 15
	MobilityWeight  = 1
)

// Mills counts the completed mills of c.
func (b *Board) Mills(c game.Color) int {
	count := 0
	for i := range mills {
		if b.complete(i, c) {
			count++
		}
	}
	return count
}

// PotentialMills counts the lines holding two c pieces and an empty node.
func (b *Board) PotentialMills(c game.Color) int {
	count := 0
	for _, mill := range mills {
		own, empty := 0, 0
		for _, n := range mill {
			switch b.cells[n] {
			case c:
				own++
			case game.Empty:
				empty++
			}
		}
		if own == 2 && empty == 1 {
			count++
		}
	}
	return count
}

// Mobility counts the piece movements available to c.
func (b *Board) Mobility(c game.Color) int {
	empty := NumNodes - b.onBoard[game.Black] - b.onBoard[game.White]
	switch b.Phase(c) {
	case Placing:
		return empty
	case Flying:
		return b.onBoard[c] * empty
	}
	count := 0
	for from := Node(0); from < NumNodes; from++ {
		if b.cells[from] != c {
			continue
		}
		for _, to := range adjacency[from] {
			if b.cells[to] == game.Empty {
				count++
			}
		}
	}
	return count
}

// Evaluate scores the board from c's point of view.
func (b *Board) Evaluate(c game.Color) int {
	o := c.Opponent()
	pieces := (b.onBoard[c] + b.inHand[c]) - (b.onBoard[o] + b.inHand[o])
	return PieceWeight*pieces +
		MillWeight*(b.Mills(c)-b.Mills(o)) +
		PotentialWeight*(b.PotentialMills(c)-b.PotentialMills(o)) +
		MobilityWeight*(b.Mobility(c)-b.Mobility(o))
}
