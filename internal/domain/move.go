package domain

import "fmt"

// PlayerID is a stable 1-based seat number. The zero value means no participant.
type PlayerID int

// NoPlayer is the zero PlayerID.
const NoPlayer PlayerID = 0

// MoveKind tags the variant carried by a Move.
type MoveKind int

const (
	KindPass MoveKind = iota
	KindIncome
	KindForeignAid
	KindTax
	KindExchange
	KindAssassinate
	KindSteal
	KindCoup
	KindBlock
	KindChallenge
)

// String returns the kind name.
func (k MoveKind) String() string {
	switch k {
	case KindPass:
		return "Pass"
	case KindIncome:
		return "Income"
	case KindForeignAid:
		return "Foreign Aid"
	case KindTax:
		return "Tax"
	case KindExchange:
		return "Exchange"
	case KindAssassinate:
		return "Assassinate"
	case KindSteal:
		return "Steal"
	case KindCoup:
		return "Coup"
	case KindBlock:
		return "Block"
	case KindChallenge:
		return "Challenge"
	default:
		return fmt.Sprintf("MoveKind(%d)", int(k))
	}
}

// Move is an immutable record of a declared action, block, challenge or pass.
// Fields that do not apply to Kind are left at their zero value, so moves
// compare with ==.
type Move struct {
	Kind MoveKind
	// Target is the victim of Coup, Assassinate and Steal. For a Block it is
	// the participant whose action is being blocked.
	Target PlayerID
	// Amount is the number of coins a Steal moves.
	Amount int
	// Blocks is the action kind a Block suspends.
	Blocks MoveKind
	// Role is the role publicly claimed by a Block; RoleNone for an unbacked block.
	Role Role
	// Disputed is the kind of the claim a Challenge disputes.
	Disputed MoveKind
	// Claimant is the participant whose claim a Challenge disputes.
	Claimant PlayerID
}

// Income takes one coin from the treasury.
func Income() Move { return Move{Kind: KindIncome} }

// ForeignAid takes two coins; blockable by a Duke.
func ForeignAid() Move { return Move{Kind: KindForeignAid} }

// Tax takes three coins claiming Duke.
func Tax() Move { return Move{Kind: KindTax} }

// Exchange swaps cards with the court deck claiming Ambassador.
func Exchange() Move { return Move{Kind: KindExchange} }

// Assassinate pays AssassinateCost to make target lose influence, claiming Assassin.
func Assassinate(target PlayerID) Move { return Move{Kind: KindAssassinate, Target: target} }

// Steal takes amount coins from target claiming Captain.
func Steal(target PlayerID, amount int) Move {
	return Move{Kind: KindSteal, Target: target, Amount: amount}
}

// Coup pays CoupCost to make target lose influence. It claims nothing.
func Coup(target PlayerID) Move { return Move{Kind: KindCoup, Target: target} }

// Block counter-claims role to suspend an action of kind blocked declared by origin.
func Block(blocked MoveKind, origin PlayerID, role Role) Move {
	return Move{Kind: KindBlock, Blocks: blocked, Target: origin, Role: role}
}

// Challenge disputes the claim carried by disputed, declared by claimant.
func Challenge(disputed Move, claimant PlayerID) Move {
	return Move{
		Kind:     KindChallenge,
		Disputed: disputed.Kind,
		Target:   disputed.Target,
		Amount:   disputed.Amount,
		Blocks:   disputed.Blocks,
		Role:     disputed.Role,
		Claimant: claimant,
	}
}

// Pass abstains from challenging or blocking.
func Pass() Move { return Move{Kind: KindPass} }

// DisputedMove rebuilds the move a Challenge disputes.
func (m Move) DisputedMove() Move {
	if m.Kind != KindChallenge {
		return Move{}
	}
	return Move{Kind: m.Disputed, Target: m.Target, Amount: m.Amount, Blocks: m.Blocks, Role: m.Role}
}

// IsAction reports whether m is a turn action rather than a response.
func (m Move) IsAction() bool {
	switch m.Kind {
	case KindIncome, KindForeignAid, KindTax, KindExchange, KindAssassinate, KindSteal, KindCoup:
		return true
	}
	return false
}

// IsTargeted reports whether m names a victim.
func (m Move) IsTargeted() bool {
	switch m.Kind {
	case KindAssassinate, KindSteal, KindCoup:
		return true
	}
	return false
}

// Cost returns the coins the actor pays when the action resolves.
func (m Move) Cost() int {
	switch m.Kind {
	case KindAssassinate:
		return AssassinateCost
	case KindCoup:
		return CoupCost
	}
	return 0
}

// Blockable reports whether some role can block m.
func (m Move) Blockable() bool {
	return len(BlockingRoles(m.Kind)) > 0
}

// Challengeable reports whether m carries a role claim.
func (m Move) Challengeable() bool {
	return len(RequiredRoles(m)) > 0
}

// String describes the move using seat numbers.
func (m Move) String() string {
	return m.Describe(func(id PlayerID) string { return fmt.Sprintf("player %d", id) })
}

// Describe renders the move, resolving participants through name.
func (m Move) Describe(name func(PlayerID) string) string {
	switch m.Kind {
	case KindAssassinate, KindCoup:
		return fmt.Sprintf("%s %s", m.Kind, name(m.Target))
	case KindSteal:
		return fmt.Sprintf("Steal %d from %s", m.Amount, name(m.Target))
	case KindBlock:
		claim := "without a role"
		if m.Role != RoleNone {
			claim = "as " + m.Role.String()
		}
		return fmt.Sprintf("Block %s from %s %s", m.Blocks, name(m.Target), claim)
	case KindChallenge:
		return fmt.Sprintf("Challenge %s's %s", name(m.Claimant), m.DisputedMove().Describe(name))
	default:
		return m.Kind.String()
	}
}
