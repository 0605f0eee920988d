package searcher

import "math"

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant squared (C = sqrt(2))

const Win = 1.0  // Reward for winning outcome
const Draw = 0.5 // Reward for drawn outcome
const Loss = 0.0 // Reward for loss outcome

type uct struct {
	numerator float64
}

func newUCT(cSquared float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(N)}
}

// evaluate returns UCT = q/n + sqrt(c^2*ln(N)/n). Unvisited children get
// infinite priority.
func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		return math.Inf(1)
	}
	return q/n + math.Sqrt(u.numerator/n)
}
