package app

import (
	"errors"
	"fmt"

	"coup/internal/domain"
)

// PlayTurn resolves one full turn for m.Current: action, challenge of the
// action, block, challenge of the block, effect, elimination and advance.
// Events are published as they happen and also returned. Any error is fatal
// and comes back as *AbortError.
func (s *Service) PlayTurn(m *domain.Match) ([]Event, error) {
	if m.GameOver() || m.Phase == domain.PhaseEnded {
		return nil, ErrMatchOver
	}
	t := &turn{s: s, m: m, actor: m.Current}
	if err := t.run(); err != nil {
		return t.events, s.abort(m, err)
	}
	if s.opts.CheckInvariants {
		if err := domain.CheckConservation(m); err != nil {
			return t.events, s.abort(m, fmt.Errorf("%w: %v", ErrInvariantViolated, err))
		}
	}
	return t.events, nil
}

// turn carries the state of a single PlayTurn call.
type turn struct {
	s      *Service
	m      *domain.Match
	actor  domain.PlayerID
	action domain.Move
	events []Event
}

func (t *turn) run() error {
	t.m.Phase = domain.PhaseAction
	t.m.Pending = domain.Pending{}

	action, _, err := t.decide(t.actor, false)
	if err != nil {
		return err
	}
	if !action.IsAction() {
		return fmt.Errorf("%s declared %s as an action: %w", t.name(t.actor), t.describe(action), ErrIllegalMoveSelected)
	}
	t.action = action
	t.m.Pending = domain.Pending{Kind: domain.PendingAction, Move: action, Claimant: t.actor}
	t.s.logger.Debug("action declared", "turn", t.m.Turn, "actor", t.name(t.actor), "action", t.describe(action))
	t.emit(Event{Kind: EventActionDeclared, Payload: ActionDeclaredPayload{Actor: t.actor, Action: action}})

	nullified, err := t.challengeRound(t.actor)
	if err != nil {
		return err
	}

	applied := false
	if !nullified {
		blocked, err := t.blockRound()
		if err != nil {
			return err
		}
		if !blocked {
			// Policies asked to surrender during the effect see the action
			// phase with no open claim, whichever rounds came before.
			t.m.Phase = domain.PhaseAction
			t.m.Pending = domain.Pending{}
			if err := t.applyEffect(); err != nil {
				return err
			}
			applied = true
		}
	}

	t.m.Pending = domain.Pending{}
	t.emit(Event{Kind: EventActionResolved, Payload: ActionResolvedPayload{Actor: t.actor, Action: action, Applied: applied}})
	t.advance()
	return nil
}

// decide asks id for a move in the current phase. When optional is set, Pass
// is offered alongside the legal moves and a participant with no legal move
// is skipped without being asked; offered reports whether a choice was made.
// The choice is appended to the history.
func (t *turn) decide(id domain.PlayerID, optional bool) (move domain.Move, offered bool, err error) {
	p, err := t.m.Participant(id)
	if err != nil {
		return domain.Move{}, false, err
	}
	v := t.m.ViewFor(id)
	candidates, err := p.LegalMoves(v)
	if err != nil {
		return domain.Move{}, false, fmt.Errorf("%s legal moves in %s phase: %w", p.Name(), t.m.Phase, err)
	}
	if len(candidates) == 0 {
		if optional {
			return domain.Pass(), false, nil
		}
		return domain.Move{}, false, fmt.Errorf("%s: %w", p.Name(), ErrNoLegalMoves)
	}
	if optional {
		candidates = append(candidates, domain.Pass())
	}

	move, err = p.ChooseMove(candidates, v)
	if err != nil {
		return domain.Move{}, false, fmt.Errorf("%s choosing in %s phase: %w", p.Name(), t.m.Phase, err)
	}
	if !containsMove(candidates, move) {
		return domain.Move{}, false, fmt.Errorf("%s chose %s: %w", p.Name(), t.describe(move), ErrIllegalMoveSelected)
	}
	t.m.Record(move, id)
	return move, true, nil
}

// challengeRound offers every live participant after claimant, in turn
// order, the chance to dispute the pending claim. The first challenge is
// resolved immediately and ends the round. It reports whether the pending
// claim was nullified.
func (t *turn) challengeRound(claimant domain.PlayerID) (bool, error) {
	if !t.m.Pending.Move.Challengeable() {
		return false, nil
	}
	t.m.Phase = domain.PhaseChallenge
	for _, id := range t.m.After(claimant) {
		move, offered, err := t.decide(id, true)
		if err != nil {
			return false, err
		}
		if !offered || move.Kind == domain.KindPass {
			continue
		}
		if move.Kind != domain.KindChallenge {
			return false, fmt.Errorf("%s declared %s in the challenge round: %w", t.name(id), t.describe(move), ErrIllegalMoveSelected)
		}
		return t.resolveChallenge(id)
	}
	return false, nil
}

// resolveChallenge inspects the claimant's hand. A held claim costs the
// accuser an influence; an unheld one costs the claimant and nullifies the
// pending move.
func (t *turn) resolveChallenge(accuser domain.PlayerID) (bool, error) {
	pending := t.m.Pending
	claimant, err := t.m.Participant(pending.Claimant)
	if err != nil {
		return false, err
	}
	hand := claimant.Hand()
	held := domain.Satisfies(hand, pending.Move)
	proven := domain.ProvingRole(hand, pending.Move)

	t.s.logger.Debug("challenge",
		"turn", t.m.Turn,
		"accuser", t.name(accuser),
		"claimant", t.name(pending.Claimant),
		"disputed", t.describe(pending.Move),
		"held", held,
	)
	t.emit(Event{Kind: EventChallengeResolved, Payload: ChallengeResolvedPayload{
		Accuser:    accuser,
		Claimant:   pending.Claimant,
		Disputed:   pending.Move,
		ClaimHeld:  held,
		ProvenRole: proven,
	}})

	if !held {
		return true, t.loseInfluence(pending.Claimant)
	}
	if err := t.loseInfluence(accuser); err != nil {
		return false, err
	}
	if t.s.opts.ReplaceProvenCard && proven != domain.RoleNone {
		if err := t.replaceCard(pending.Claimant, proven); err != nil {
			return false, err
		}
	}
	return false, nil
}

// replaceCard shuffles a proven role back into the court deck and deals the
// claimant a fresh card.
func (t *turn) replaceCard(id domain.PlayerID, proven domain.Role) error {
	p, err := t.m.Participant(id)
	if err != nil {
		return err
	}
	if err := p.RemoveCard(proven); err != nil {
		return fmt.Errorf("replace proven card: %w", err)
	}
	t.m.ReturnToDeck(proven)
	t.m.ShuffleDeck(t.s.rng)
	drawn, err := t.m.Draw()
	if err != nil {
		return fmt.Errorf("replace proven card: %w", err)
	}
	p.AddCard(drawn)

	t.emit(Event{Kind: EventCardReplaced, Payload: CardReplacedPayload{Player: id, Proven: proven}})
	t.emitHand(id, p)
	return nil
}

// blockRound runs the block phase. The first declared block ends the round
// and is itself open to challenge. It reports whether a block stands.
func (t *turn) blockRound() (bool, error) {
	if !t.action.Blockable() {
		return false, nil
	}
	t.m.Phase = domain.PhaseBlock
	for _, id := range t.m.After(t.actor) {
		move, offered, err := t.decide(id, true)
		if err != nil {
			return false, err
		}
		if !offered || move.Kind == domain.KindPass {
			continue
		}
		if move.Kind != domain.KindBlock {
			return false, fmt.Errorf("%s declared %s in the block round: %w", t.name(id), t.describe(move), ErrIllegalMoveSelected)
		}

		t.m.Pending = domain.Pending{Kind: domain.PendingBlock, Move: move, Claimant: id}
		t.s.logger.Debug("block declared", "turn", t.m.Turn, "blocker", t.name(id), "block", t.describe(move))
		t.emit(Event{Kind: EventBlockDeclared, Payload: BlockDeclaredPayload{Blocker: id, Block: move}})

		nullified, err := t.challengeRound(id)
		if err != nil {
			return false, err
		}
		return !nullified, nil
	}
	return false, nil
}

func (t *turn) applyEffect() error {
	actor, err := t.m.Participant(t.actor)
	if err != nil {
		return err
	}
	a := t.action
	switch a.Kind {
	case domain.KindIncome:
		t.credit(t.actor, actor, domain.IncomeAmount, a.Kind)
	case domain.KindForeignAid:
		t.credit(t.actor, actor, domain.ForeignAidAmount, a.Kind)
	case domain.KindTax:
		t.credit(t.actor, actor, domain.TaxAmount, a.Kind)
	case domain.KindCoup, domain.KindAssassinate:
		if err := actor.LoseCoins(a.Cost()); err != nil {
			return fmt.Errorf("%s: %w", a.Kind, err)
		}
		t.emitCoins(t.actor, actor, -a.Cost(), a.Kind)
		if t.m.Alive(a.Target) {
			return t.loseInfluence(a.Target)
		}
	case domain.KindSteal:
		if !t.m.Alive(a.Target) {
			return nil
		}
		target, err := t.m.Participant(a.Target)
		if err != nil {
			return err
		}
		if err := target.LoseCoins(a.Amount); err != nil {
			return fmt.Errorf("steal: %w", err)
		}
		t.emitCoins(a.Target, target, -a.Amount, a.Kind)
		t.credit(t.actor, actor, a.Amount, a.Kind)
	case domain.KindExchange:
		return t.exchange(actor)
	default:
		return fmt.Errorf("no effect for %s: %w", a.Kind, ErrIllegalMoveSelected)
	}
	return nil
}

// exchange draws up to ExchangeDraw cards and asks the actor to return as
// many as it drew, one at a time, through its surrender callback.
func (t *turn) exchange(actor domain.Participant) error {
	keep := len(actor.Hand())
	drawn := 0
	for ; drawn < domain.ExchangeDraw; drawn++ {
		r, err := t.m.Draw()
		if errors.Is(err, domain.ErrDeckExhausted) {
			break
		}
		actor.AddCard(r)
	}

	t.m.Phase = domain.PhaseExchange
	t.emitHand(t.actor, actor)
	returned := 0
	for len(actor.Hand()) > keep {
		r, err := actor.ChooseCardToSurrender(t.m.ViewFor(t.actor))
		if err != nil {
			return fmt.Errorf("%s returning exchange card: %w", actor.Name(), err)
		}
		if err := actor.RemoveCard(r); err != nil {
			return fmt.Errorf("exchange return: %w", err)
		}
		t.m.ReturnToDeck(r)
		returned++
	}
	t.m.ShuffleDeck(t.s.rng)

	t.emit(Event{Kind: EventExchangeCompleted, Payload: ExchangeCompletedPayload{Player: t.actor, Drawn: drawn, Returned: returned}})
	t.emitHand(t.actor, actor)
	return nil
}

// loseInfluence asks id to surrender a card, reveals it and removes id from
// the turn order if that was its last one.
func (t *turn) loseInfluence(id domain.PlayerID) error {
	p, err := t.m.Participant(id)
	if err != nil {
		return err
	}
	if len(p.Hand()) == 0 {
		return nil
	}
	r, err := p.ChooseCardToSurrender(t.m.ViewFor(id))
	if err != nil {
		return fmt.Errorf("%s surrendering a card: %w", p.Name(), err)
	}
	if err := p.RemoveCard(r); err != nil {
		return fmt.Errorf("surrender: %w", err)
	}
	t.m.Reveal(r)
	remaining := len(p.Hand())
	t.emit(Event{Kind: EventInfluenceLost, Payload: InfluenceLostPayload{Player: id, Role: r, Remaining: remaining}})

	if t.m.Eliminate(id) {
		t.s.logger.Info("player eliminated", "turn", t.m.Turn, "player", p.Name(), "live", len(t.m.Order))
		t.emit(Event{Kind: EventPlayerEliminated, Payload: PlayerEliminatedPayload{Player: id}})
	}
	return nil
}

func (t *turn) advance() {
	if winner, ok := t.m.Winner(); ok {
		t.m.Phase = domain.PhaseEnded
		t.s.logger.Info("match ended", "winner", t.name(winner), "turns", t.m.Turn)
		t.emit(Event{Kind: EventMatchEnded, Payload: MatchEndedPayload{Winner: winner, Turns: t.m.Turn}})
		return
	}
	t.m.Current = t.m.NextAfter(t.actor)
	t.m.Turn++
	t.m.Phase = domain.PhaseAction
	t.emit(Event{Kind: EventTurnAdvanced, Payload: TurnAdvancedPayload{Turn: t.m.Turn, Current: t.m.Current}})
}

func (t *turn) credit(id domain.PlayerID, p domain.Participant, n int, reason domain.MoveKind) {
	p.AddCoins(n)
	t.emitCoins(id, p, n, reason)
}

func (t *turn) emitCoins(id domain.PlayerID, p domain.Participant, delta int, reason domain.MoveKind) {
	t.emit(Event{Kind: EventCoinsChanged, Payload: CoinsChangedPayload{Player: id, Delta: delta, Balance: p.Coins(), Reason: reason}})
}

func (t *turn) emitHand(id domain.PlayerID, p domain.Participant) {
	t.emit(Event{
		Kind:       EventHandChanged,
		Payload:    HandChangedPayload{Player: id, Hand: p.Hand()},
		Recipients: []domain.PlayerID{id},
	})
}

func (t *turn) emit(e Event) {
	t.events = append(t.events, e)
	t.s.Publish(e)
}

func (t *turn) name(id domain.PlayerID) string {
	return t.m.NameOf(id)
}

func (t *turn) describe(m domain.Move) string {
	return m.Describe(t.m.NameOf)
}

func containsMove(moves []domain.Move, m domain.Move) bool {
	for _, c := range moves {
		if c == m {
			return true
		}
	}
	return false
}
