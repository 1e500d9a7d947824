package bot

import (
	"coup/internal/app"
	"coup/internal/domain"
)

// Agent represents an autonomous bot player. It satisfies domain.Participant
// through the embedded Seat and delegates decisions to its Strategy.
type Agent struct {
	*domain.Seat
	Level    Level
	Strategy Brain
}

// NewAgent seats a bot called name driven by brain.
func NewAgent(name string, brain Brain) *Agent {
	return &Agent{Seat: domain.NewSeat(name), Strategy: brain}
}

// ChooseMove asks the strategy to pick one of candidates.
func (a *Agent) ChooseMove(candidates []domain.Move, v domain.View) (domain.Move, error) {
	return a.Strategy.ChooseMove(candidates, v)
}

// ChooseCardToSurrender asks the strategy which role to give up.
func (a *Agent) ChooseCardToSurrender(v domain.View) (domain.Role, error) {
	return a.Strategy.ChooseCard(v)
}

// OnEvent notifies the agent of a match event.
func (a *Agent) OnEvent(event app.Event) {
	a.Strategy.OnEvent(event)
}
