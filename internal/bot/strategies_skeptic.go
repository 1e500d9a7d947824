package bot

import (
	"coup/internal/app"
	"coup/internal/bot/brain"
	"coup/internal/domain"
)

// SkepticBot plays like HonestBot but tracks claims and challenges the ones
// its card counting makes unlikely. It will bluff Duke while none has been
// revealed.
type SkepticBot struct {
	HonestBot
	Tuning    Tuning
	Memory    *brain.GameMemory
	Estimator *brain.Estimator
}

// NewSkepticBot builds a SkepticBot with fresh memory.
func NewSkepticBot(t Tuning) *SkepticBot {
	mem := brain.NewMemory()
	return &SkepticBot{Tuning: t, Memory: mem, Estimator: brain.NewEstimator(mem)}
}

func (b *SkepticBot) ChooseMove(candidates []domain.Move, v domain.View) (domain.Move, error) {
	b.Memory.Sync(v)
	switch v.Phase {
	case domain.PhaseChallenge:
		if m, ok := b.challenge(candidates, v); ok {
			return m, nil
		}
	case domain.PhaseBlock:
		if m, ok := b.block(candidates, v); ok {
			return m, nil
		}
	case domain.PhaseAction:
		if m, ok := b.bluffTax(candidates, v); ok {
			return m, nil
		}
	}
	return b.HonestBot.ChooseMove(candidates, v)
}

func (b *SkepticBot) challenge(candidates []domain.Move, v domain.View) (domain.Move, bool) {
	threshold := b.Tuning.ChallengeThreshold
	if len(v.Hand) <= 1 {
		threshold = b.Tuning.LastCardThreshold
	}
	for _, c := range candidates {
		if c.Kind != domain.KindChallenge {
			continue
		}
		roles := domain.RequiredRoles(c.DisputedMove())
		if b.Estimator.ClaimIsImpossible(roles) {
			return c, true
		}
		if b.Estimator.BluffLikelihood(c.Claimant, roles) > threshold {
			return c, true
		}
	}
	return domain.Move{}, false
}

func (b *SkepticBot) block(candidates []domain.Move, v domain.View) (domain.Move, bool) {
	if m, ok := b.honestBlock(candidates, v); ok {
		return m, true
	}
	if !b.Tuning.BluffLastCardBlock || len(v.Hand) != 1 || v.Pending.Move.Kind != domain.KindAssassinate {
		return domain.Move{}, false
	}
	for _, c := range candidates {
		if c.Kind == domain.KindBlock {
			return c, true
		}
	}
	return domain.Move{}, false
}

func (b *SkepticBot) bluffTax(candidates []domain.Move, v domain.View) (domain.Move, bool) {
	if !b.Tuning.BluffTax || domain.HasRole(v.Hand, domain.Duke) || b.Memory.Revealed[domain.Duke] > 0 {
		return domain.Move{}, false
	}
	honest, ok := b.honestAction(candidates, v)
	if ok && actionPriority[honest.Kind] >= actionPriority[domain.KindTax] {
		return domain.Move{}, false
	}
	for _, c := range candidates {
		if c.Kind == domain.KindTax {
			return c, true
		}
	}
	return domain.Move{}, false
}

func (b *SkepticBot) OnEvent(e app.Event) {
	switch p := e.Payload.(type) {
	case app.MatchStartedPayload:
		b.Memory.Reset()
	case app.ActionDeclaredPayload:
		if roles := domain.RequiredRoles(p.Action); len(roles) > 0 {
			b.Memory.Profile(p.Actor).RecordClaim(roles[0])
		}
	case app.BlockDeclaredPayload:
		b.Memory.Profile(p.Blocker).RecordClaim(p.Block.Role)
	case app.ChallengeResolvedPayload:
		b.Memory.Profile(p.Claimant).RecordChallenge(p.ClaimHeld)
	}
}
