package bot

import "coup/internal/domain"

// Tuning holds the knobs of the claim-tracking strategies.
type Tuning struct {
	// ChallengeThreshold is the bluff likelihood above which a claim is
	// challenged while the bot holds more than one card.
	ChallengeThreshold float64
	// LastCardThreshold applies instead when a lost challenge would eliminate the bot.
	LastCardThreshold float64
	// BluffTax lets the bot claim Duke while no Duke has been revealed.
	BluffTax bool
	// BluffLastCardBlock lets the bot bluff a block when the action would
	// otherwise take its last card.
	BluffLastCardBlock bool
}

// DefaultTuning challenges only fairly likely bluffs and never risks its
// last card on a guess.
var DefaultTuning = Tuning{
	ChallengeThreshold: 0.6,
	LastCardThreshold:  0.95,
	BluffTax:           true,
	BluffLastCardBlock: true,
}

// actionPriority orders actions for the claim-respecting strategies; higher first.
var actionPriority = map[domain.MoveKind]int{
	domain.KindCoup:        100,
	domain.KindAssassinate: 80,
	domain.KindTax:         60,
	domain.KindSteal:       50,
	domain.KindExchange:    30,
	domain.KindForeignAid:  20,
	domain.KindIncome:      10,
}

// roleValue ranks roles by how much the bot wants to keep them.
var roleValue = map[domain.Role]int{
	domain.Duke:       5,
	domain.Captain:    4,
	domain.Assassin:   3,
	domain.Contessa:   2,
	domain.Ambassador: 1,
}
