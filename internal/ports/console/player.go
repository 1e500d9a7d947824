package console

import (
	"fmt"
	"strings"

	"coup/internal/app"
	"coup/internal/domain"
	"coup/internal/ports"
)

// HumanPlayer is a participant whose decisions come from a person through a
// PromptPort. It also renders match events for that person.
type HumanPlayer struct {
	*domain.Seat
	prompt   ports.PromptPort
	renderer *Renderer
}

// NewHumanPlayer seats a person called name. renderer may be nil.
func NewHumanPlayer(name string, prompt ports.PromptPort, renderer *Renderer) *HumanPlayer {
	return &HumanPlayer{Seat: domain.NewSeat(name), prompt: prompt, renderer: renderer}
}

func (h *HumanPlayer) ChooseMove(candidates []domain.Move, v domain.View) (domain.Move, error) {
	options := make([]string, len(candidates))
	for i, c := range candidates {
		options[i] = c.Describe(v.NameOf)
	}
	i, err := h.prompt.Choose(h.title(v), options)
	if err != nil {
		return domain.Move{}, err
	}
	return candidates[i], nil
}

func (h *HumanPlayer) ChooseCardToSurrender(v domain.View) (domain.Role, error) {
	if len(v.Hand) == 0 {
		return domain.RoleNone, fmt.Errorf("%s has no card to give up", h.Name())
	}
	options := make([]string, len(v.Hand))
	for i, r := range v.Hand {
		options[i] = r.String()
	}
	title := "Choose a card to lose"
	if v.Phase == domain.PhaseExchange {
		title = "Choose a card to return to the deck"
	}
	i, err := h.prompt.Choose(title, options)
	if err != nil {
		return domain.RoleNone, err
	}
	return v.Hand[i], nil
}

// OnEvent forwards events to the renderer.
func (h *HumanPlayer) OnEvent(e app.Event) {
	if h.renderer != nil {
		h.renderer.OnEvent(e)
	}
}

func (h *HumanPlayer) title(v domain.View) string {
	hand := make([]string, len(v.Hand))
	for i, r := range v.Hand {
		hand[i] = r.String()
	}
	status := fmt.Sprintf("%s, %d coins, holding %s", h.Name(), v.Coins, strings.Join(hand, " and "))
	switch v.Phase {
	case domain.PhaseChallenge:
		return fmt.Sprintf("%s. Challenge %s?", status, v.Pending.Move.Describe(v.NameOf))
	case domain.PhaseBlock:
		return fmt.Sprintf("%s. Block %s's %s?", status, v.NameOf(v.Pending.Claimant), v.Pending.Move.Describe(v.NameOf))
	default:
		return fmt.Sprintf("%s. Your action:", status)
	}
}
