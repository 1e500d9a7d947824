package domain

import (
	"fmt"
	"math/rand"
	"strings"
)

// Role is one of the five concealed character cards.
type Role int

const (
	// RoleNone marks the absence of a role, e.g. an unbacked block.
	RoleNone Role = iota
	Duke
	Assassin
	Captain
	Ambassador
	Contessa
)

// Roles lists every playable role in deck order.
var Roles = []Role{Duke, Assassin, Captain, Ambassador, Contessa}

// String returns the role name.
func (r Role) String() string {
	switch r {
	case Duke:
		return "Duke"
	case Assassin:
		return "Assassin"
	case Captain:
		return "Captain"
	case Ambassador:
		return "Ambassador"
	case Contessa:
		return "Contessa"
	case RoleNone:
		return "None"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// ParseRole converts a case-insensitive role name into a Role.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if strings.EqualFold(r.String(), strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return RoleNone, fmt.Errorf("unknown role %q", s)
}

// NewDeck returns the ordered court deck: CopiesPerRole copies of each role.
func NewDeck() []Role {
	deck := make([]Role, 0, DeckSize)
	for i := 0; i < CopiesPerRole; i++ {
		deck = append(deck, Roles...)
	}
	return deck
}

// ShuffleDeck shuffles the roles in place using rng.
func ShuffleDeck(rng *rand.Rand, deck []Role) {
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
}

// CountRole returns how many copies of r appear in cards.
func CountRole(cards []Role, r Role) int {
	n := 0
	for _, c := range cards {
		if c == r {
			n++
		}
	}
	return n
}

// HasRole reports whether cards contains at least one copy of r.
func HasRole(cards []Role, r Role) bool {
	return CountRole(cards, r) > 0
}

// RemoveRole removes a single copy of r and reports whether one was found.
func RemoveRole(cards []Role, r Role) ([]Role, bool) {
	for i, c := range cards {
		if c == r {
			out := make([]Role, 0, len(cards)-1)
			out = append(out, cards[:i]...)
			return append(out, cards[i+1:]...), true
		}
	}
	return cards, false
}
