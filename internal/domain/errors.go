package domain

import "errors"

var (
	// ErrInsufficientFunds is returned when spending more coins than a participant holds.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrCardNotHeld is returned when removing a role absent from the hand.
	ErrCardNotHeld = errors.New("card not held")
	// ErrHistoryUnderflow is returned when a block or challenge is enumerated with no pending claim.
	ErrHistoryUnderflow = errors.New("no pending claim to respond to")
	// ErrUnknownParticipant is returned for a PlayerID outside the match.
	ErrUnknownParticipant = errors.New("unknown participant")
	// ErrDeckExhausted is returned when drawing from an empty court deck.
	ErrDeckExhausted = errors.New("court deck exhausted")
)
