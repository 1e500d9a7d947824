package brain

import (
	"testing"

	"coup/internal/domain"
)

func TestOpponentProfile(t *testing.T) {
	p := NewOpponentProfile(2)
	if p.Suspicion() != 0.5 {
		t.Errorf("fresh suspicion = %v, want 0.5", p.Suspicion())
	}

	p.RecordClaim(domain.Duke)
	p.RecordClaim(domain.RoleNone)
	if p.Claims[domain.Duke] != 1 || len(p.Claims) != 1 {
		t.Errorf("Claims = %v", p.Claims)
	}

	p.RecordChallenge(false)
	p.RecordChallenge(false)
	if p.Suspicion() <= 0.5 {
		t.Errorf("caught bluffs should raise suspicion, got %v", p.Suspicion())
	}
	p.RecordChallenge(true)
	if p.BluffsCaught != 2 || p.ClaimsProven != 1 {
		t.Errorf("challenge tally = %d/%d", p.BluffsCaught, p.ClaimsProven)
	}
}

func TestConflictingClaims(t *testing.T) {
	p := NewOpponentProfile(2)
	if p.ConflictingClaims([]domain.Role{domain.Duke}) {
		t.Errorf("a first claim never conflicts")
	}
	p.RecordClaim(domain.Duke)
	p.RecordClaim(domain.Captain)
	if p.ConflictingClaims([]domain.Role{domain.Duke}) {
		t.Errorf("two roles fit in two cards")
	}
	if !p.ConflictingClaims([]domain.Role{domain.Assassin}) {
		t.Errorf("a third role cannot fit in two cards")
	}
	p.Influence = 1
	if !p.ConflictingClaims([]domain.Role{domain.Duke}) {
		t.Errorf("two claimed roles cannot fit in one card")
	}
}
