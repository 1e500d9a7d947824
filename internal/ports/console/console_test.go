package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coup/internal/app"
	"coup/internal/domain"
	"coup/internal/ports"
)

func TestPrompterRepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("zero\n9\n 2 \n"), &out)

	i, err := p.Choose("Pick one", []string{"Income", "Tax"})
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, 2, strings.Count(out.String(), "enter a number between 1 and 2"))
	assert.Contains(t, out.String(), "Pick one")
}

func TestPrompterInputClosed(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})
	_, err := p.Choose("Pick one", []string{"Income"})
	assert.True(t, errors.Is(err, ports.ErrInputClosed))

	_, err = p.Choose("Nothing", nil)
	assert.Error(t, err)
}

// fixedPrompt answers every prompt with the same index and records titles.
type fixedPrompt struct {
	index   int
	titles  []string
	options [][]string
}

func (f *fixedPrompt) Choose(title string, options []string) (int, error) {
	f.titles = append(f.titles, title)
	f.options = append(f.options, options)
	return f.index, nil
}

func humanView(phase domain.Phase, hand ...domain.Role) domain.View {
	return domain.View{
		Self:  1,
		Hand:  hand,
		Coins: 3,
		Phase: phase,
		Players: []domain.PublicPlayer{
			{ID: 1, Name: "You", Coins: 3, Influence: len(hand)},
			{ID: 2, Name: "Bo", Coins: 2, Influence: 2},
		},
		Names: map[domain.PlayerID]string{1: "You", 2: "Bo"},
	}
}

func TestHumanPlayerChoosesMove(t *testing.T) {
	prompt := &fixedPrompt{index: 1}
	h := NewHumanPlayer("You", prompt, nil)
	candidates := []domain.Move{domain.Income(), domain.Steal(2, 2)}

	m, err := h.ChooseMove(candidates, humanView(domain.PhaseAction, domain.Duke, domain.Captain))
	require.NoError(t, err)
	assert.Equal(t, candidates[1], m)
	require.Len(t, prompt.options, 1)
	assert.Equal(t, []string{"Income", "Steal 2 from Bo"}, prompt.options[0])
	assert.Contains(t, prompt.titles[0], "holding Duke and Captain")
}

func TestHumanPlayerSurrenderTitles(t *testing.T) {
	prompt := &fixedPrompt{index: 1}
	h := NewHumanPlayer("You", prompt, nil)

	r, err := h.ChooseCardToSurrender(humanView(domain.PhaseChallenge, domain.Duke, domain.Contessa))
	require.NoError(t, err)
	assert.Equal(t, domain.Contessa, r)

	_, err = h.ChooseCardToSurrender(humanView(domain.PhaseExchange, domain.Duke, domain.Contessa, domain.Captain))
	require.NoError(t, err)
	assert.Equal(t, "Choose a card to lose", prompt.titles[0])
	assert.Equal(t, "Choose a card to return to the deck", prompt.titles[1])

	_, err = h.ChooseCardToSurrender(humanView(domain.PhaseAction))
	assert.Error(t, err)
}

func TestRendererPrintsEvents(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	r.OnEvent(app.Event{Kind: app.EventMatchStarted, Payload: app.MatchStartedPayload{
		Seed:      9,
		Order:     []domain.PlayerID{1, 2},
		Names:     map[domain.PlayerID]string{1: "You", 2: "Bo"},
		FirstTurn: 1,
	}})
	r.OnEvent(app.Event{Kind: app.EventActionDeclared, Payload: app.ActionDeclaredPayload{
		Actor:  2,
		Action: domain.Steal(1, 2),
	}})
	r.OnEvent(app.Event{Kind: app.EventChallengeResolved, Payload: app.ChallengeResolvedPayload{
		Accuser:    1,
		Claimant:   2,
		Disputed:   domain.Steal(1, 2),
		ClaimHeld:  true,
		ProvenRole: domain.Captain,
	}})
	r.OnEvent(app.Event{Kind: app.EventMatchEnded, Payload: app.MatchEndedPayload{Winner: 2, Turns: 7}})

	text := out.String()
	assert.Contains(t, text, "Match started:")
	assert.Contains(t, text, "seed 9")
	assert.Contains(t, text, "Bo declares Steal 2 from You")
	assert.Contains(t, text, "You challenges Bo, who reveals Captain")
	assert.Contains(t, text, "Bo wins after 7 turns")
}

func TestRendererFallsBackToSeatNumbers(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)
	r.OnEvent(app.Event{Kind: app.EventPlayerEliminated, Payload: app.PlayerEliminatedPayload{Player: 4}})
	assert.Contains(t, out.String(), "seat 4 is out")
}
