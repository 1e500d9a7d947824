package domain

import "fmt"

// CountInfluence returns the number of concealed cards across live participants.
func CountInfluence(m *Match) int {
	n := 0
	for _, id := range m.Order {
		p := m.seats[id-1]
		n += len(p.Hand())
	}
	return n
}

// CheckConservation verifies that every role is accounted for exactly
// CopiesPerRole times across the deck, all hands and the revealed record,
// that live hands fit HandSize, that eliminated seats hold nothing and that
// no balance is negative.
func CheckConservation(m *Match) error {
	for _, r := range Roles {
		n := CountRole(m.Deck, r) + CountRole(m.Revealed, r)
		for _, p := range m.seats {
			n += CountRole(p.Hand(), r)
		}
		if n != CopiesPerRole {
			return fmt.Errorf("role %s counted %d times, want %d", r, n, CopiesPerRole)
		}
	}
	if n, limit := CountInfluence(m), HandSize*len(m.Order); n > limit {
		return fmt.Errorf("%d concealed cards across %d live seats, at most %d", n, len(m.Order), limit)
	}
	for i, p := range m.seats {
		if !m.Alive(PlayerID(i+1)) && len(p.Hand()) > 0 {
			return fmt.Errorf("%s (seat %d) is eliminated but holds %d cards", p.Name(), i+1, len(p.Hand()))
		}
		if p.Coins() < 0 {
			return fmt.Errorf("%s (seat %d) has negative balance %d", p.Name(), i+1, p.Coins())
		}
	}
	return nil
}

func seatLabel(id PlayerID) string {
	return fmt.Sprintf("seat %d", id)
}
