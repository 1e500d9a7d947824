package console

import (
	"fmt"
	"io"
	"strings"

	"coup/internal/app"
	"coup/internal/domain"
)

// Renderer prints match events as they happen. It is an app.Observer.
type Renderer struct {
	out   io.Writer
	style styles
	names map[domain.PlayerID]string
}

// NewRenderer writes to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, style: newStyles(out), names: make(map[domain.PlayerID]string)}
}

func (r *Renderer) name(id domain.PlayerID) string {
	n, ok := r.names[id]
	if !ok {
		n = fmt.Sprintf("seat %d", id)
	}
	return r.style.name.Render(n)
}

func (r *Renderer) plainName(id domain.PlayerID) string {
	if n, ok := r.names[id]; ok {
		return n
	}
	return fmt.Sprintf("seat %d", id)
}

func (r *Renderer) roles(rs []domain.Role) string {
	parts := make([]string, len(rs))
	for i, role := range rs {
		parts[i] = r.style.role(role)
	}
	return strings.Join(parts, ", ")
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// OnEvent renders one event.
func (r *Renderer) OnEvent(e app.Event) {
	switch p := e.Payload.(type) {
	case app.MatchStartedPayload:
		for id, n := range p.Names {
			r.names[id] = n
		}
		names := make([]string, len(p.Order))
		for i, id := range p.Order {
			names[i] = r.name(id)
		}
		r.printf("%s %s", r.style.heading.Render("Match started:"), strings.Join(names, ", "))
		if p.Seed != 0 {
			r.printf("%s", r.style.muted.Render(fmt.Sprintf("seed %d", p.Seed)))
		}
	case app.HandDealtPayload:
		r.printf("%s are dealt %s", r.name(p.Player), r.roles(p.Hand))
	case app.HandChangedPayload:
		r.printf("%s now hold %s", r.name(p.Player), r.roles(p.Hand))
	case app.TurnAdvancedPayload:
		r.printf("\n%s %s", r.style.heading.Render(fmt.Sprintf("Turn %d:", p.Turn)), r.name(p.Current))
	case app.ActionDeclaredPayload:
		r.printf("%s declares %s", r.name(p.Actor), p.Action.Describe(r.plainName))
	case app.BlockDeclaredPayload:
		r.printf("%s declares %s", r.name(p.Blocker), p.Block.Describe(r.plainName))
	case app.ChallengeResolvedPayload:
		outcome := r.style.warn.Render("caught bluffing")
		if p.ClaimHeld {
			outcome = "reveals " + r.style.role(p.ProvenRole)
		}
		r.printf("%s challenges %s, who %s", r.name(p.Accuser), r.name(p.Claimant), outcome)
	case app.InfluenceLostPayload:
		r.printf("%s loses %s (%d left)", r.name(p.Player), r.style.role(p.Role), p.Remaining)
	case app.CardReplacedPayload:
		r.printf("%s shuffles %s back and draws a new card", r.name(p.Player), r.style.role(p.Proven))
	case app.CoinsChangedPayload:
		r.printf("%s %s", r.name(p.Player), r.style.coins.Render(fmt.Sprintf("%+d coins (%d)", p.Delta, p.Balance)))
	case app.ExchangeCompletedPayload:
		r.printf("%s exchanges %d cards with the court deck", r.name(p.Player), p.Returned)
	case app.ActionResolvedPayload:
		if !p.Applied {
			r.printf("%s", r.style.muted.Render(p.Action.Describe(r.plainName)+" has no effect"))
		}
	case app.PlayerEliminatedPayload:
		r.printf("%s %s", r.name(p.Player), r.style.warn.Render("is out"))
	case app.MatchEndedPayload:
		r.printf("\n%s %s wins after %d turns", r.style.heading.Render("Match over:"), r.name(p.Winner), p.Turns)
	}
}
