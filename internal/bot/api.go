package bot

import (
	"coup/internal/app"
	"coup/internal/domain"
)

// Brain is the interface that all bot strategies must implement. Brains only
// ever see the redacted view handed to their Agent.
type Brain interface {
	ChooseMove(candidates []domain.Move, v domain.View) (domain.Move, error)
	ChooseCard(v domain.View) (domain.Role, error)
	OnEvent(event app.Event)
}
