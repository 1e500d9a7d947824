package brain

import (
	"coup/internal/domain"
)

// OpponentProfile tracks the claim history of a specific player.
type OpponentProfile struct {
	ID        domain.PlayerID
	Influence int
	// Claims counts how often each role has been claimed by this opponent.
	Claims map[domain.Role]int
	// BluffsCaught counts challenges this opponent lost as claimant.
	BluffsCaught int
	// ClaimsProven counts challenges this opponent survived as claimant.
	ClaimsProven int
}

// NewOpponentProfile initializes a profile for a specific seat.
func NewOpponentProfile(id domain.PlayerID) *OpponentProfile {
	return &OpponentProfile{
		ID:        id,
		Influence: domain.HandSize,
		Claims:    make(map[domain.Role]int),
	}
}

// RecordClaim logs a role claimed by this opponent.
func (p *OpponentProfile) RecordClaim(r domain.Role) {
	if r == domain.RoleNone {
		return
	}
	p.Claims[r]++
}

// ConflictingClaims reports whether holding one of roles would take this
// opponent past its remaining influence, counting every distinct role it has
// claimed so far. Cards change hands through exchanges, so this is a hint,
// not proof.
func (p *OpponentProfile) ConflictingClaims(roles []domain.Role) bool {
	distinct := 0
	for _, n := range p.Claims {
		if n > 0 {
			distinct++
		}
	}
	for _, r := range roles {
		if p.Claims[r] > 0 {
			return distinct > p.Influence
		}
	}
	return distinct+1 > p.Influence
}

// RecordChallenge logs the outcome of a challenge against this opponent.
func (p *OpponentProfile) RecordChallenge(held bool) {
	if held {
		p.ClaimsProven++
		return
	}
	p.BluffsCaught++
}

// Suspicion is a 0.0 to 1.0 prior that a fresh claim from this opponent is a
// bluff, derived from caught and proven claims with one pseudo-count each.
func (p *OpponentProfile) Suspicion() float64 {
	return float64(p.BluffsCaught+1) / float64(p.BluffsCaught+p.ClaimsProven+2)
}
