package domain

// Phase represents the stage of the turn currently being resolved.
type Phase string

const (
	// PhaseAction is when the current participant declares an action.
	PhaseAction Phase = "action"
	// PhaseChallenge is when participants may dispute the pending claim.
	PhaseChallenge Phase = "challenge"
	// PhaseBlock is when participants may counter-claim against the pending action.
	PhaseBlock Phase = "block"
	// PhaseExchange is when the actor returns cards after drawing from the court deck.
	PhaseExchange Phase = "exchange"
	// PhaseEnded indicates a single participant remains.
	PhaseEnded Phase = "ended"
)

// PendingKind distinguishes what the pending claim is.
type PendingKind int

const (
	PendingNone PendingKind = iota
	PendingAction
	PendingBlock
)

// Pending is the claim currently open to challenge or block. It is set once
// per phase transition by the engine.
type Pending struct {
	Kind     PendingKind
	Move     Move
	Claimant PlayerID
}

// Entry is one line of the match history.
type Entry struct {
	Move  Move
	Actor PlayerID
}
