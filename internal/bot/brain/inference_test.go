package brain

import (
	"math"
	"testing"

	"coup/internal/domain"
)

func TestHoldProbability(t *testing.T) {
	m := NewMemory()
	m.Sync(domain.View{Self: 1, Hand: []domain.Role{domain.Contessa, domain.Contessa}})
	e := NewEstimator(m)

	tests := []struct {
		name  string
		roles []domain.Role
		cards int
		want  float64
	}{
		// 13 unseen cards, 3 Dukes among them, 2 cards held.
		{name: "duke in two cards", roles: []domain.Role{domain.Duke}, cards: 2, want: 1 - (10.0/13.0)*(9.0/12.0)},
		{name: "captain or ambassador in one card", roles: []domain.Role{domain.Captain, domain.Ambassador}, cards: 1, want: 6.0 / 13.0},
		{name: "contessa in one card", roles: []domain.Role{domain.Contessa}, cards: 1, want: 1.0 / 13.0},
		{name: "no claim", roles: nil, cards: 2, want: 1.0},
		{name: "no cards", roles: []domain.Role{domain.Duke}, cards: 0, want: 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.HoldProbability(tt.roles, tt.cards)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HoldProbability = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClaimIsImpossible(t *testing.T) {
	m := NewMemory()
	m.Sync(domain.View{
		Self:     1,
		Hand:     []domain.Role{domain.Duke, domain.Duke},
		Revealed: []domain.Role{domain.Duke},
	})
	e := NewEstimator(m)

	if !e.ClaimIsImpossible([]domain.Role{domain.Duke}) {
		t.Errorf("all three Dukes are accounted for")
	}
	if e.HoldProbability([]domain.Role{domain.Duke}, 2) != 0 {
		t.Errorf("hold probability of an exhausted role should be 0")
	}
	if e.ClaimIsImpossible([]domain.Role{domain.Captain, domain.Ambassador}) {
		t.Errorf("Captain is still unaccounted for")
	}
	if e.ClaimIsImpossible(nil) {
		t.Errorf("an empty claim is never impossible")
	}
}

func TestBluffLikelihoodRisesWithCaughtBluffs(t *testing.T) {
	m := NewMemory()
	m.Sync(domain.View{Self: 1, Hand: []domain.Role{domain.Contessa}})
	e := NewEstimator(m)

	before := e.BluffLikelihood(2, []domain.Role{domain.Duke})
	m.Profile(2).RecordChallenge(false)
	after := e.BluffLikelihood(2, []domain.Role{domain.Duke})
	if after <= before {
		t.Errorf("BluffLikelihood did not rise: %v -> %v", before, after)
	}
}

func TestBluffLikelihoodRisesWithConflictingClaims(t *testing.T) {
	m := NewMemory()
	m.Sync(domain.View{Self: 1, Hand: []domain.Role{domain.Contessa}})
	e := NewEstimator(m)

	// Seat 2 has one card left and has already claimed Captain and Duke.
	m.Profile(2).Influence = 1
	m.Profile(2).RecordClaim(domain.Captain)
	m.Profile(2).RecordClaim(domain.Duke)
	// Seat 3 has one card left and has only ever claimed Duke.
	m.Profile(3).Influence = 1
	m.Profile(3).RecordClaim(domain.Duke)

	conflicted := e.BluffLikelihood(2, []domain.Role{domain.Duke})
	consistent := e.BluffLikelihood(3, []domain.Role{domain.Duke})
	if math.Abs(conflicted-consistent-conflictPenalty) > 1e-9 {
		t.Errorf("conflicting claims: %v, consistent: %v, want a %v gap", conflicted, consistent, conflictPenalty)
	}
	if e.BluffLikelihood(2, []domain.Role{domain.Duke}) > 1.0 {
		t.Errorf("likelihood must stay within [0, 1]")
	}
}
