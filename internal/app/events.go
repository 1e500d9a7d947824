package app

import "coup/internal/domain"

// EventKind identifies emitted match events.
type EventKind string

const (
	EventMatchStarted      EventKind = "match_started"
	EventHandDealt         EventKind = "hand_dealt"
	EventHandChanged       EventKind = "hand_changed"
	EventActionDeclared    EventKind = "action_declared"
	EventChallengeResolved EventKind = "challenge_resolved"
	EventBlockDeclared     EventKind = "block_declared"
	EventInfluenceLost     EventKind = "influence_lost"
	EventCardReplaced      EventKind = "card_replaced"
	EventCoinsChanged      EventKind = "coins_changed"
	EventExchangeCompleted EventKind = "exchange_completed"
	EventActionResolved    EventKind = "action_resolved"
	EventPlayerEliminated  EventKind = "player_eliminated"
	EventTurnAdvanced      EventKind = "turn_advanced"
	EventMatchEnded        EventKind = "match_ended"
)

// Event is a match event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []domain.PlayerID // empty means broadcast
}

// VisibleTo reports whether id may observe e. NoPlayer only sees broadcasts.
func (e Event) VisibleTo(id domain.PlayerID) bool {
	if len(e.Recipients) == 0 {
		return true
	}
	for _, r := range e.Recipients {
		if r == id {
			return true
		}
	}
	return false
}

// Observer receives events as the engine emits them.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// OnEvent calls f(e).
func (f ObserverFunc) OnEvent(e Event) { f(e) }

type MatchStartedPayload struct {
	Seed      int64
	Order     []domain.PlayerID
	Names     map[domain.PlayerID]string
	FirstTurn domain.PlayerID
}

type HandDealtPayload struct {
	Player domain.PlayerID
	Hand   []domain.Role
}

type HandChangedPayload struct {
	Player domain.PlayerID
	Hand   []domain.Role
}

type ActionDeclaredPayload struct {
	Actor  domain.PlayerID
	Action domain.Move
}

type ChallengeResolvedPayload struct {
	Accuser  domain.PlayerID
	Claimant domain.PlayerID
	Disputed domain.Move
	// ClaimHeld is true when the claimant held a proving role and the
	// challenge failed.
	ClaimHeld  bool
	ProvenRole domain.Role
}

type BlockDeclaredPayload struct {
	Blocker domain.PlayerID
	Block   domain.Move
}

type InfluenceLostPayload struct {
	Player    domain.PlayerID
	Role      domain.Role
	Remaining int
}

type CardReplacedPayload struct {
	Player domain.PlayerID
	Proven domain.Role
}

type CoinsChangedPayload struct {
	Player  domain.PlayerID
	Delta   int
	Balance int
	Reason  domain.MoveKind
}

type ExchangeCompletedPayload struct {
	Player   domain.PlayerID
	Drawn    int
	Returned int
}

type ActionResolvedPayload struct {
	Actor   domain.PlayerID
	Action  domain.Move
	Applied bool
}

type PlayerEliminatedPayload struct {
	Player domain.PlayerID
}

type TurnAdvancedPayload struct {
	Turn    int
	Current domain.PlayerID
}

type MatchEndedPayload struct {
	Winner domain.PlayerID
	Turns  int
}
