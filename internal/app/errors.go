package app

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMoveSelected = errors.New("chosen move was not among the offered candidates")
	ErrTooFewPlayers       = errors.New("not enough players to start")
	ErrTooManyPlayers      = errors.New("too many players to start")
	ErrMatchOver           = errors.New("match already ended")
	ErrInvariantViolated   = errors.New("match invariant violated")
	ErrNoLegalMoves        = errors.New("no legal action available")
	ErrTurnLimit           = errors.New("turn limit reached")
)

// AbortError is returned when a fatal condition stops a match. Dump holds the
// full match history for diagnosis.
type AbortError struct {
	Cause error
	Turn  int
	Dump  []byte
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("match aborted on turn %d: %v", e.Turn, e.Cause)
}

func (e *AbortError) Unwrap() error { return e.Cause }
