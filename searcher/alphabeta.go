package searcher

import (
	"minigame/game"

	"github.com/rs/zerolog/log"
)

const (
	// Infinity bounds every score the search can produce.
	Infinity = 1 << 30
	// WinScore is the value of a won terminal position, reduced by the ply at
	// which it happens so that faster wins and slower losses are preferred.
	WinScore = 1 << 24
)

// AlphaBeta searches pos to a fixed depth with negamax and alpha-beta pruning
// and returns the best move for the side to move together with its score.
// The position is restored before returning. Ties go to the first move generated.
func AlphaBeta[M any](pos Position[M], depth int, metrics MetricsCollector) (M, int, error) {
	var best M
	if metrics == nil {
		metrics = NewNoMetricsCollector()
	}
	moves := pos.Moves()
	if len(moves) == 0 {
		return best, 0, game.ErrNoLegalMoves
	}
	if depth < 1 {
		depth = 1
	}

	alpha, beta := -Infinity, Infinity
	bestScore := -Infinity
	for i, move := range moves {
		pos.Do(move)
		score := -negamax(pos, depth-1, 1, -beta, -alpha, metrics)
		pos.Undo()
		if i == 0 || score > bestScore {
			best = move
			bestScore = score
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	log.Debug().Int("depth", depth).Int("score", bestScore).Msg("alphabeta-search")
	return best, bestScore, nil
}

func negamax[M any](pos Position[M], depth, ply, alpha, beta int, metrics MetricsCollector) int {
	metrics.AddNode()
	if over, result := pos.Terminal(); over {
		return result * (WinScore - ply)
	}
	if depth == 0 {
		return pos.Evaluate()
	}
	moves := pos.Moves()
	if len(moves) == 0 {
		return pos.Evaluate()
	}

	value := -Infinity
	for _, move := range moves {
		pos.Do(move)
		score := -negamax(pos, depth-1, ply+1, -beta, -alpha, metrics)
		pos.Undo()
		if score > value {
			value = score
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			break // cut-off
		}
	}
	return value
}
