package bot

import (
	"coup/internal/app"
	"coup/internal/domain"
)

// HonestBot only claims roles it holds, never challenges and blocks only
// truthfully.
type HonestBot struct{}

func (b *HonestBot) ChooseMove(candidates []domain.Move, v domain.View) (domain.Move, error) {
	switch v.Phase {
	case domain.PhaseAction:
		if m, ok := b.honestAction(candidates, v); ok {
			return m, nil
		}
	case domain.PhaseBlock:
		if m, ok := b.honestBlock(candidates, v); ok {
			return m, nil
		}
	}
	if pass, ok := passIn(candidates); ok {
		return pass, nil
	}
	if len(candidates) == 0 {
		return domain.Move{}, app.ErrNoLegalMoves
	}
	return candidates[0], nil
}

func (b *HonestBot) ChooseCard(v domain.View) (domain.Role, error) {
	return leastUseful(v.Hand)
}

func (b *HonestBot) OnEvent(app.Event) {}

func (b *HonestBot) honestAction(candidates []domain.Move, v domain.View) (domain.Move, bool) {
	return bestAction(candidates, v, func(m domain.Move) bool {
		if m.Kind == domain.KindSteal && m.Amount == 0 {
			return false
		}
		return domain.Satisfies(v.Hand, m)
	})
}

func (b *HonestBot) honestBlock(candidates []domain.Move, v domain.View) (domain.Move, bool) {
	for _, c := range candidates {
		if c.Kind == domain.KindBlock && c.Role != domain.RoleNone && domain.HasRole(v.Hand, c.Role) {
			return c, true
		}
	}
	return domain.Move{}, false
}
