package domain

import (
	"errors"
	"testing"
)

func seatedMatch(n int) (*Match, []*Seat) {
	seats := make([]*Seat, n)
	ps := make([]Participant, n)
	for i := range seats {
		seats[i] = NewSeat(string(rune('A' + i)))
		ps[i] = seats[i]
	}
	return NewMatch(ps), seats
}

func TestNewMatch(t *testing.T) {
	m, _ := seatedMatch(3)
	if len(m.Order) != 3 || m.Order[0] != 1 || m.Order[2] != 3 {
		t.Fatalf("Order = %v, want [1 2 3]", m.Order)
	}
	if m.Current != 1 || m.Turn != 1 || m.Phase != PhaseAction {
		t.Fatalf("unexpected initial state: current=%d turn=%d phase=%s", m.Current, m.Turn, m.Phase)
	}
	if len(m.Deck) != DeckSize {
		t.Fatalf("deck size = %d", len(m.Deck))
	}
	if _, err := m.Participant(4); !errors.Is(err, ErrUnknownParticipant) {
		t.Fatalf("Participant(4) err = %v", err)
	}
}

func TestAfterAndNextAfter(t *testing.T) {
	m, seats := seatedMatch(4)

	tests := []struct {
		id   PlayerID
		want []PlayerID
	}{
		{1, []PlayerID{2, 3, 4}},
		{3, []PlayerID{4, 1, 2}},
		{4, []PlayerID{1, 2, 3}},
	}
	for _, tt := range tests {
		got := m.After(tt.id)
		if len(got) != len(tt.want) {
			t.Fatalf("After(%d) = %v, want %v", tt.id, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("After(%d) = %v, want %v", tt.id, got, tt.want)
			}
		}
	}

	// Eliminate seat 3; the player after it must still be found.
	if !m.Eliminate(3) {
		t.Fatalf("Eliminate(3) on an empty hand should remove the seat")
	}
	if m.Eliminate(3) {
		t.Fatalf("second Eliminate(3) must report no change")
	}
	if got := m.NextAfter(3); got != 4 {
		t.Fatalf("NextAfter(eliminated 3) = %d, want 4", got)
	}
	if got := m.NextAfter(4); got != 1 {
		t.Fatalf("NextAfter(4) = %d, want 1", got)
	}
	if got := m.NextAfter(2); got != 4 {
		t.Fatalf("NextAfter(2) = %d, want 4", got)
	}

	seats[0].AddCard(Duke)
	if m.Eliminate(1) {
		t.Fatalf("a seat holding cards must not be eliminated")
	}
}

func TestGameOverAndWinner(t *testing.T) {
	m, seats := seatedMatch(2)
	seats[1].AddCard(Contessa)
	if _, ok := m.Winner(); ok {
		t.Fatalf("no winner with two live seats")
	}
	m.Eliminate(1)
	if !m.GameOver() {
		t.Fatalf("expected game over")
	}
	if w, ok := m.Winner(); !ok || w != 2 {
		t.Fatalf("Winner() = %d, %v; want 2", w, ok)
	}
}

func TestDrawAndReturn(t *testing.T) {
	m, _ := seatedMatch(2)
	m.Deck = []Role{Duke}
	r, err := m.Draw()
	if err != nil || r != Duke {
		t.Fatalf("Draw() = %s, %v", r, err)
	}
	if _, err := m.Draw(); !errors.Is(err, ErrDeckExhausted) {
		t.Fatalf("Draw() on empty deck err = %v", err)
	}
	m.ReturnToDeck(Captain, Contessa)
	if len(m.Deck) != 2 {
		t.Fatalf("deck = %v", m.Deck)
	}
}

func TestViewForRedactsOpponents(t *testing.T) {
	m, seats := seatedMatch(3)
	seats[0].AddCard(Duke)
	seats[0].AddCard(Captain)
	seats[1].AddCard(Assassin)
	seats[1].AddCoins(4)
	m.Record(Income(), 1)

	v := m.ViewFor(1)
	if len(v.Hand) != 2 || v.Hand[0] != Duke {
		t.Fatalf("own hand = %v", v.Hand)
	}
	opp, ok := v.Player(2)
	if !ok || opp.Influence != 1 || opp.Coins != 4 || opp.Name != "B" {
		t.Fatalf("opponent record = %+v", opp)
	}

	v.Hand[0] = Contessa
	v.History[0] = Entry{}
	if seats[0].Hand()[0] != Duke || m.History[0].Move != Income() {
		t.Fatalf("mutating a view leaked into the match")
	}

	m.Eliminate(3)
	v = m.ViewFor(1)
	if _, ok := v.Player(3); ok {
		t.Fatalf("eliminated seat should not be listed")
	}
	if v.NameOf(3) != "C" {
		t.Fatalf("names of eliminated seats stay public, got %q", v.NameOf(3))
	}
	if v.NameOf(9) != "seat 9" {
		t.Fatalf("unknown seat label = %q", v.NameOf(9))
	}
}

func TestCountInfluence(t *testing.T) {
	m, seats := seatedMatch(3)
	seats[0].AddCard(Duke)
	seats[1].AddCard(Duke)
	seats[1].AddCard(Contessa)
	if got := CountInfluence(m); got != 3 {
		t.Fatalf("CountInfluence = %d, want 3", got)
	}
}
