package brain

import (
	"coup/internal/domain"
)

// Estimator provides probabilistic insights based on memory.
type Estimator struct {
	Memory *GameMemory
}

// NewEstimator creates a new reasoning engine.
func NewEstimator(m *GameMemory) *Estimator {
	return &Estimator{Memory: m}
}

// HoldProbability returns the chance that an opponent concealing cards
// cards holds at least one of roles, treating every unseen card as equally
// likely to be in that hand.
func (e *Estimator) HoldProbability(roles []domain.Role, cards int) float64 {
	if len(roles) == 0 {
		return 1.0
	}
	candidates := 0
	for _, r := range roles {
		candidates += e.Memory.Unaccounted(r)
	}
	unseen := e.Memory.Unseen()
	if candidates == 0 || cards <= 0 || unseen <= 0 {
		return 0.0
	}
	if cards > unseen {
		cards = unseen
	}
	// 1 - C(unseen-candidates, cards) / C(unseen, cards)
	miss := 1.0
	for i := 0; i < cards; i++ {
		miss *= float64(unseen-candidates-i) / float64(unseen-i)
		if miss <= 0 {
			return 1.0
		}
	}
	return 1.0 - miss
}

// ClaimIsImpossible reports whether every copy of every role in roles is
// already accounted for outside the claimant.
func (e *Estimator) ClaimIsImpossible(roles []domain.Role) bool {
	if len(roles) == 0 {
		return false
	}
	for _, r := range roles {
		if e.Memory.Unaccounted(r) > 0 {
			return false
		}
	}
	return true
}

// conflictPenalty is added when a claim contradicts the claimant's earlier claims.
const conflictPenalty = 0.25

// BluffLikelihood blends the card-count estimate with the claimant's
// track record. Higher means the claim is more likely false.
func (e *Estimator) BluffLikelihood(claimant domain.PlayerID, roles []domain.Role) float64 {
	profile := e.Memory.Profile(claimant)
	hold := e.HoldProbability(roles, profile.Influence)
	likelihood := (1.0-hold)*0.7 + profile.Suspicion()*0.3
	if profile.ConflictingClaims(roles) {
		likelihood = min(1.0, likelihood+conflictPenalty)
	}
	return likelihood
}
