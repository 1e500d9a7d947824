package bot

import (
	"errors"
	"math/rand"
	"time"

	"coup/internal/app"
	"coup/internal/domain"
)

var errEmptyHand = errors.New("no card left to surrender")

// RandomBot picks uniformly among whatever it is offered.
type RandomBot struct {
	rng *rand.Rand
}

// NewRandomBot builds a RandomBot from rng or a time-seeded default.
func NewRandomBot(rng *rand.Rand) *RandomBot {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomBot{rng: rng}
}

func (b *RandomBot) ChooseMove(candidates []domain.Move, _ domain.View) (domain.Move, error) {
	if len(candidates) == 0 {
		return domain.Move{}, app.ErrNoLegalMoves
	}
	return candidates[b.rng.Intn(len(candidates))], nil
}

func (b *RandomBot) ChooseCard(v domain.View) (domain.Role, error) {
	if len(v.Hand) == 0 {
		return domain.RoleNone, errEmptyHand
	}
	return v.Hand[b.rng.Intn(len(v.Hand))], nil
}

func (b *RandomBot) OnEvent(app.Event) {}

// passIn returns the Pass candidate if one is offered.
func passIn(candidates []domain.Move) (domain.Move, bool) {
	for _, c := range candidates {
		if c.Kind == domain.KindPass {
			return c, true
		}
	}
	return domain.Move{}, false
}

// leastUseful picks the card to give up: a duplicate first, otherwise the
// lowest valued role.
func leastUseful(hand []domain.Role) (domain.Role, error) {
	if len(hand) == 0 {
		return domain.RoleNone, errEmptyHand
	}
	for _, r := range hand {
		if domain.CountRole(hand, r) > 1 {
			return r, nil
		}
	}
	worst := hand[0]
	for _, r := range hand[1:] {
		if roleValue[r] < roleValue[worst] {
			worst = r
		}
	}
	return worst, nil
}

// bestAction returns the highest priority candidate accepted by allow,
// breaking ties by targetScore.
func bestAction(candidates []domain.Move, v domain.View, allow func(domain.Move) bool) (domain.Move, bool) {
	var best domain.Move
	found := false
	for _, c := range candidates {
		if !c.IsAction() || !allow(c) {
			continue
		}
		if !found || better(c, best, v) {
			best, found = c, true
		}
	}
	return best, found
}

func better(a, b domain.Move, v domain.View) bool {
	pa, pb := actionPriority[a.Kind], actionPriority[b.Kind]
	if pa != pb {
		return pa > pb
	}
	return targetScore(a, v) > targetScore(b, v)
}

// targetScore prefers stealing more, then the opponent with the most
// influence, then the richest.
func targetScore(m domain.Move, v domain.View) int {
	if !m.IsTargeted() {
		return 0
	}
	p, ok := v.Player(m.Target)
	if !ok {
		return -1
	}
	return m.Amount*10000 + p.Influence*100 + p.Coins
}
