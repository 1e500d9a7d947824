package domain

import (
	"fmt"
	"math/rand"
)

// Match is the authoritative state of one game. Participants live in a fixed
// arena indexed by PlayerID; Order lists the live ones in turn order and only
// ever shrinks.
type Match struct {
	Seed int64

	seats []Participant // arena, seats[id-1]

	Order    []PlayerID
	Deck     []Role
	Revealed []Role // capacity HandSize per seat, filled as influence is lost
	History  []Entry

	Current PlayerID
	Phase   Phase
	Pending Pending
	Turn    int
}

// NewMatch seats participants in the given order (seat 1 first) with an
// ordered, undealt deck.
func NewMatch(participants []Participant) *Match {
	m := &Match{
		seats:    append([]Participant(nil), participants...),
		Order:    make([]PlayerID, 0, len(participants)),
		Deck:     NewDeck(),
		Revealed: make([]Role, 0, HandSize*len(participants)),
		Phase:    PhaseAction,
		Turn:     1,
	}
	for i := range participants {
		m.Order = append(m.Order, PlayerID(i+1))
	}
	if len(m.Order) > 0 {
		m.Current = m.Order[0]
	}
	return m
}

// Seats returns every PlayerID ever seated, eliminated ones included.
func (m *Match) Seats() []PlayerID {
	ids := make([]PlayerID, len(m.seats))
	for i := range m.seats {
		ids[i] = PlayerID(i + 1)
	}
	return ids
}

// Participant returns the participant seated at id.
func (m *Match) Participant(id PlayerID) (Participant, error) {
	if id < 1 || int(id) > len(m.seats) {
		return nil, fmt.Errorf("seat %d: %w", id, ErrUnknownParticipant)
	}
	return m.seats[id-1], nil
}

// Alive reports whether id is still in the turn order.
func (m *Match) Alive(id PlayerID) bool {
	for _, live := range m.Order {
		if live == id {
			return true
		}
	}
	return false
}

// After returns the live participants in turn order starting just after id,
// excluding id itself. id need not be live.
func (m *Match) After(id PlayerID) []PlayerID {
	out := make([]PlayerID, 0, len(m.Order))
	start := 0
	for i, live := range m.Order {
		if live > id {
			start = i
			break
		}
	}
	for i := 0; i < len(m.Order); i++ {
		live := m.Order[(start+i)%len(m.Order)]
		if live != id {
			out = append(out, live)
		}
	}
	return out
}

// NextAfter returns the first live participant after id in seat order,
// wrapping around. It works whether or not id itself is still live.
func (m *Match) NextAfter(id PlayerID) PlayerID {
	next := m.After(id)
	if len(next) == 0 {
		return id
	}
	return next[0]
}

// Record appends a move to the history.
func (m *Match) Record(move Move, actor PlayerID) {
	m.History = append(m.History, Entry{Move: move, Actor: actor})
}

// Eliminate removes id from the turn order if its hand is empty. It reports
// whether a removal happened, so each zero-crossing is reported once.
func (m *Match) Eliminate(id PlayerID) bool {
	p, err := m.Participant(id)
	if err != nil || len(p.Hand()) > 0 {
		return false
	}
	for i, live := range m.Order {
		if live == id {
			m.Order = append(m.Order[:i:i], m.Order[i+1:]...)
			return true
		}
	}
	return false
}

// Draw pops the top card of the court deck.
func (m *Match) Draw() (Role, error) {
	if len(m.Deck) == 0 {
		return RoleNone, ErrDeckExhausted
	}
	top := m.Deck[len(m.Deck)-1]
	m.Deck = m.Deck[:len(m.Deck)-1]
	return top, nil
}

// ReturnToDeck puts roles back into the court deck. Callers shuffle afterwards.
func (m *Match) ReturnToDeck(roles ...Role) {
	m.Deck = append(m.Deck, roles...)
}

// ShuffleDeck reshuffles the court deck with rng.
func (m *Match) ShuffleDeck(rng *rand.Rand) {
	ShuffleDeck(rng, m.Deck)
}

// Reveal records a role that has been permanently turned face up.
func (m *Match) Reveal(r Role) {
	m.Revealed = append(m.Revealed, r)
}

// GameOver reports whether exactly one participant remains.
func (m *Match) GameOver() bool {
	return len(m.Order) == 1
}

// Winner returns the last participant standing.
func (m *Match) Winner() (PlayerID, bool) {
	if !m.GameOver() {
		return NoPlayer, false
	}
	return m.Order[0], true
}

// NameOf returns the display name seated at id.
func (m *Match) NameOf(id PlayerID) string {
	p, err := m.Participant(id)
	if err != nil {
		return seatLabel(id)
	}
	return p.Name()
}

// ViewFor builds the redacted view for id. Opponent hands are reduced to a
// count; slices are copied so callbacks cannot mutate match state.
func (m *Match) ViewFor(id PlayerID) View {
	v := View{
		Self:     id,
		Players:  make([]PublicPlayer, 0, len(m.Order)),
		Revealed: append([]Role(nil), m.Revealed...),
		History:  append([]Entry(nil), m.History...),
		Phase:    m.Phase,
		Current:  m.Current,
		Pending:  m.Pending,
		DeckSize: len(m.Deck),
		Names:    make(map[PlayerID]string, len(m.seats)),
	}
	for i, p := range m.seats {
		v.Names[PlayerID(i+1)] = p.Name()
	}
	for _, live := range m.Order {
		p := m.seats[live-1]
		v.Players = append(v.Players, PublicPlayer{
			ID:        live,
			Name:      p.Name(),
			Coins:     p.Coins(),
			Influence: len(p.Hand()),
		})
	}
	if self, err := m.Participant(id); err == nil {
		v.Hand = self.Hand()
		v.Coins = self.Coins()
	}
	return v
}
