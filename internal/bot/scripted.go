package bot

import (
	"coup/internal/app"
	"coup/internal/domain"
)

// ScriptedBot replays queued decisions. Moves are queued per phase so a
// scripted action is never consumed by an earlier challenge offer. With an
// empty queue it passes when it may, otherwise takes the first candidate, and
// surrenders the first card in hand. Scripted moves are returned as-is, legal
// or not.
type ScriptedBot struct {
	moves map[domain.Phase][]domain.Move
	cards []domain.Role
	// Events records every event delivered to the bot.
	Events []app.Event
}

// NewScriptedBot returns a bot with empty queues.
func NewScriptedBot() *ScriptedBot {
	return &ScriptedBot{moves: make(map[domain.Phase][]domain.Move)}
}

// Script queues moves to be played, in order, whenever the bot is asked to
// choose during phase.
func (b *ScriptedBot) Script(phase domain.Phase, moves ...domain.Move) *ScriptedBot {
	b.moves[phase] = append(b.moves[phase], moves...)
	return b
}

// Surrender queues roles for the card-selection callback, covering both
// influence loss and Exchange returns.
func (b *ScriptedBot) Surrender(roles ...domain.Role) *ScriptedBot {
	b.cards = append(b.cards, roles...)
	return b
}

func (b *ScriptedBot) ChooseMove(candidates []domain.Move, v domain.View) (domain.Move, error) {
	if q := b.moves[v.Phase]; len(q) > 0 {
		b.moves[v.Phase] = q[1:]
		return q[0], nil
	}
	if pass, ok := passIn(candidates); ok {
		return pass, nil
	}
	if len(candidates) == 0 {
		return domain.Move{}, app.ErrNoLegalMoves
	}
	return candidates[0], nil
}

func (b *ScriptedBot) ChooseCard(v domain.View) (domain.Role, error) {
	if len(b.cards) > 0 {
		r := b.cards[0]
		b.cards = b.cards[1:]
		return r, nil
	}
	if len(v.Hand) == 0 {
		return domain.RoleNone, errEmptyHand
	}
	return v.Hand[0], nil
}

func (b *ScriptedBot) OnEvent(e app.Event) {
	b.Events = append(b.Events, e)
}

// EventsOf returns the recorded events of kind k.
func (b *ScriptedBot) EventsOf(k app.EventKind) []app.Event {
	var out []app.Event
	for _, e := range b.Events {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}
