package domain

import "fmt"

// actionClaims maps claim-gated actions to the role they claim.
var actionClaims = map[MoveKind][]Role{
	KindTax:         {Duke},
	KindAssassinate: {Assassin},
	KindSteal:       {Captain},
	KindExchange:    {Ambassador},
}

// blockClaims maps blockable actions to the roles that may block them.
var blockClaims = map[MoveKind][]Role{
	KindForeignAid:  {Duke},
	KindAssassinate: {Contessa},
	KindSteal:       {Captain, Ambassador},
}

// BlockingRoles returns the roles able to block an action of kind k.
func BlockingRoles(k MoveKind) []Role {
	return blockClaims[k]
}

// RequiredRoles returns the roles any one of which substantiates the claim
// made by m. Moves that claim nothing return nil.
func RequiredRoles(m Move) []Role {
	if m.Kind == KindBlock {
		return blockClaims[m.Blocks]
	}
	return actionClaims[m.Kind]
}

// Satisfies reports whether hand backs the claim made by m. A move with no
// claim is always satisfied.
func Satisfies(hand []Role, m Move) bool {
	return ProvingRole(hand, m) != RoleNone || len(RequiredRoles(m)) == 0
}

// ProvingRole returns the first held role that backs the claim made by m,
// preferring the role named by a block.
func ProvingRole(hand []Role, m Move) Role {
	if m.Kind == KindBlock && m.Role != RoleNone && HasRole(hand, m.Role) {
		return m.Role
	}
	for _, r := range RequiredRoles(m) {
		if HasRole(hand, r) {
			return r
		}
	}
	return RoleNone
}

// LegalMoves enumerates what the viewer may declare in v.Phase. Pass is not
// included; the engine appends it when abstaining is allowed.
func LegalMoves(v View) ([]Move, error) {
	if _, ok := v.Player(v.Self); !ok {
		return nil, nil
	}
	switch v.Phase {
	case PhaseAction:
		return actionMoves(v), nil
	case PhaseBlock:
		return blockMoves(v)
	case PhaseChallenge:
		return challengeMoves(v)
	default:
		return nil, nil
	}
}

func actionMoves(v View) []Move {
	opponents := v.Opponents()
	if v.Coins >= ForcedCoupCoins {
		moves := make([]Move, 0, len(opponents))
		for _, o := range opponents {
			moves = append(moves, Coup(o.ID))
		}
		return moves
	}

	moves := []Move{Income(), ForeignAid(), Tax(), Exchange()}
	for _, o := range opponents {
		moves = append(moves, Steal(o.ID, min(MaxStealAmount, o.Coins)))
	}
	if v.Coins >= AssassinateCost {
		for _, o := range opponents {
			moves = append(moves, Assassinate(o.ID))
		}
	}
	if v.Coins >= CoupCost {
		for _, o := range opponents {
			moves = append(moves, Coup(o.ID))
		}
	}
	return moves
}

func blockMoves(v View) ([]Move, error) {
	if v.Pending.Kind != PendingAction {
		return nil, fmt.Errorf("block phase: %w", ErrHistoryUnderflow)
	}
	action, actor := v.Pending.Move, v.Pending.Claimant
	if actor == v.Self || !action.Blockable() {
		return nil, nil
	}
	// Only the victim may block a targeted action; anyone may block Foreign Aid.
	if action.IsTargeted() && action.Target != v.Self {
		return nil, nil
	}

	var moves []Move
	for _, r := range BlockingRoles(action.Kind) {
		if HasRole(v.Hand, r) {
			moves = append(moves, blockFor(action, actor, r))
		}
	}
	if len(moves) == 0 {
		moves = append(moves, blockFor(action, actor, RoleNone))
	}
	return moves, nil
}

func blockFor(action Move, actor PlayerID, r Role) Move {
	b := Block(action.Kind, actor, r)
	b.Amount = action.Amount
	return b
}

func challengeMoves(v View) ([]Move, error) {
	if v.Pending.Kind == PendingNone {
		return nil, fmt.Errorf("challenge phase: %w", ErrHistoryUnderflow)
	}
	if v.Pending.Claimant == v.Self || !v.Pending.Move.Challengeable() {
		return nil, nil
	}
	return []Move{Challenge(v.Pending.Move, v.Pending.Claimant)}, nil
}
