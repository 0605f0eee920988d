package game

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoLegalMoves is reported by a search when the side to move has no move at all.
	ErrNoLegalMoves = errors.New("no legal moves")
	// ErrGameOver is returned when a move is submitted to a finished board.
	ErrGameOver = errors.New("game is over - no moves allowed")
)

// Reason explains why a move was rejected.
type Reason string

const (
	OffBoard        Reason = "off-board"
	Occupied        Reason = "occupied"
	Suicide         Reason = "suicide"
	KoViolation     Reason = "ko"
	WrongPhase      Reason = "wrong-phase"
	NotAdjacent     Reason = "not-adjacent"
	NotOwnPiece     Reason = "not-own-piece"
	CaptureRequired Reason = "capture-required"
	InvalidCapture  Reason = "invalid-capture"
	Unsupported     Reason = "unsupported"
)

// InvalidMove is returned for every rejected move. The board is left untouched.
type InvalidMove struct {
	Reason Reason
	Detail string
}

func (e *InvalidMove) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid move: %s", e.Reason)
	}
	return fmt.Sprintf("invalid move: %s (%s)", e.Reason, e.Detail)
}

// Invalid builds an InvalidMove with an optional formatted detail.
func Invalid(reason Reason, format string, args ...any) *InvalidMove {
	detail := format
	if len(args) > 0 {
		detail = fmt.Sprintf(format, args...)
	}
	return &InvalidMove{Reason: reason, Detail: detail}
}

// ReasonOf extracts the rejection reason from err, if it is an InvalidMove.
func ReasonOf(err error) (Reason, bool) {
	var invalid *InvalidMove
	if errors.As(err, &invalid) {
		return invalid.Reason, true
	}
	return "", false
}
