package brain

import (
	"coup/internal/domain"
)

// GameMemory stores the bot's private picture of where the roles are.
type GameMemory struct {
	Self domain.PlayerID
	// Hand is the bot's own concealed hand as of the last sync.
	Hand []domain.Role
	// Revealed counts roles turned face up so far.
	Revealed map[domain.Role]int
	// Opponents tracks behavioural profiles by seat.
	Opponents map[domain.PlayerID]*OpponentProfile
}

// NewMemory initializes a fresh memory state.
func NewMemory() *GameMemory {
	return &GameMemory{
		Revealed:  make(map[domain.Role]int),
		Opponents: make(map[domain.PlayerID]*OpponentProfile),
	}
}

// Reset clears the memory for a new match.
func (m *GameMemory) Reset() {
	m.Self = domain.NoPlayer
	m.Hand = nil
	m.Revealed = make(map[domain.Role]int)
	m.Opponents = make(map[domain.PlayerID]*OpponentProfile)
}

// Sync refreshes hand, revealed roles and opponent influence from a view.
func (m *GameMemory) Sync(v domain.View) {
	m.Self = v.Self
	m.Hand = append(m.Hand[:0], v.Hand...)
	m.Revealed = make(map[domain.Role]int, len(domain.Roles))
	for _, r := range v.Revealed {
		m.Revealed[r]++
	}
	for _, p := range v.Players {
		if p.ID == v.Self {
			continue
		}
		m.Profile(p.ID).Influence = p.Influence
	}
}

// Profile returns the profile for id, creating it on first use.
func (m *GameMemory) Profile(id domain.PlayerID) *OpponentProfile {
	p, ok := m.Opponents[id]
	if !ok {
		p = NewOpponentProfile(id)
		m.Opponents[id] = p
	}
	return p
}

// Seen returns how many copies of r the bot can account for: its own hand
// plus the revealed record.
func (m *GameMemory) Seen(r domain.Role) int {
	return domain.CountRole(m.Hand, r) + m.Revealed[r]
}

// Unaccounted returns how many copies of r could be concealed by opponents
// or sit in the court deck.
func (m *GameMemory) Unaccounted(r domain.Role) int {
	n := domain.CopiesPerRole - m.Seen(r)
	if n < 0 {
		return 0
	}
	return n
}

// Unseen returns the number of cards the bot cannot see.
func (m *GameMemory) Unseen() int {
	n := domain.DeckSize - len(m.Hand)
	for _, c := range m.Revealed {
		n -= c
	}
	return n
}
