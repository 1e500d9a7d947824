package domain

import "fmt"

// Participant is anything that can sit at the table: a console-driven human,
// a bot strategy, or a scripted test double. Decision callbacks only ever see
// a redacted View.
type Participant interface {
	Name() string
	Coins() int
	Hand() []Role

	AddCoins(n int)
	LoseCoins(n int) error
	AddCard(r Role)
	RemoveCard(r Role) error

	// LegalMoves enumerates the moves available in v.Phase.
	LegalMoves(v View) ([]Move, error)
	// ChooseMove must return one element of candidates.
	ChooseMove(candidates []Move, v View) (Move, error)
	// ChooseCardToSurrender must return a role currently in hand. In
	// PhaseExchange the role goes back to the court deck instead of being revealed.
	ChooseCardToSurrender(v View) (Role, error)
}

// Seat implements the bookkeeping half of Participant. Policies embed it and
// add the two decision callbacks.
type Seat struct {
	name  string
	coins int
	hand  []Role
}

// NewSeat returns an empty seat; coins and cards are granted at deal time.
func NewSeat(name string) *Seat {
	return &Seat{name: name}
}

// Name returns the display name.
func (s *Seat) Name() string { return s.name }

// Coins returns the coin balance.
func (s *Seat) Coins() int { return s.coins }

// Hand returns a copy of the concealed roles.
func (s *Seat) Hand() []Role {
	return append([]Role(nil), s.hand...)
}

// AddCoins credits n coins.
func (s *Seat) AddCoins(n int) {
	s.coins += n
}

// LoseCoins debits n coins, refusing to go negative.
func (s *Seat) LoseCoins(n int) error {
	if n > s.coins {
		return fmt.Errorf("%s has %d coins, needs %d: %w", s.name, s.coins, n, ErrInsufficientFunds)
	}
	s.coins -= n
	return nil
}

// AddCard puts r into the hand.
func (s *Seat) AddCard(r Role) {
	s.hand = append(s.hand, r)
}

// RemoveCard takes one copy of r out of the hand.
func (s *Seat) RemoveCard(r Role) error {
	hand, ok := RemoveRole(s.hand, r)
	if !ok {
		return fmt.Errorf("%s does not hold %s: %w", s.name, r, ErrCardNotHeld)
	}
	s.hand = hand
	return nil
}

// LegalMoves delegates to the shared rule set.
func (s *Seat) LegalMoves(v View) ([]Move, error) {
	return LegalMoves(v)
}
