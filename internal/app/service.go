package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"coup/internal/domain"
)

// Options toggles rule variants and safety checks.
type Options struct {
	// ReplaceProvenCard makes a claimant who survives a challenge shuffle the
	// proven role back into the court deck and draw a replacement.
	ReplaceProvenCard bool
	// CheckInvariants verifies role and coin conservation after every turn.
	CheckInvariants bool
	// MaxTurns stops Run with ErrTurnLimit; 0 means unlimited.
	MaxTurns int
}

// DefaultOptions returns the standard rule set with invariant checks on.
func DefaultOptions() Options {
	return Options{ReplaceProvenCard: true, CheckInvariants: true}
}

type subscription struct {
	id  domain.PlayerID
	obs Observer
}

// Service contains Coup use-cases operating on domain state.
type Service struct {
	rng    *rand.Rand
	seed   int64
	logger *slog.Logger
	opts   Options
	subs   []subscription
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand, logger *slog.Logger, opts Options) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Service{rng: rng, logger: logger, opts: opts}
}

// NewSeededService constructs a Service whose matches replay exactly for a
// given seed and decision sequence. A zero seed is replaced by the clock.
func NewSeededService(seed int64, logger *slog.Logger, opts Options) *Service {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := NewService(rand.New(rand.NewSource(seed)), logger, opts)
	s.seed = seed
	return s
}

// Seed returns the seed the service was built from, or 0 if an rng was injected.
func (s *Service) Seed() int64 { return s.seed }

// Subscribe registers obs for every event visible to id. Use domain.NoPlayer
// for a spectator that only sees broadcasts.
func (s *Service) Subscribe(id domain.PlayerID, obs Observer) {
	s.subs = append(s.subs, subscription{id: id, obs: obs})
}

// SubscribeParticipants registers every seated participant that implements
// Observer under its own seat.
func (s *Service) SubscribeParticipants(m *domain.Match) {
	for _, id := range m.Seats() {
		p, err := m.Participant(id)
		if err != nil {
			continue
		}
		if obs, ok := p.(Observer); ok {
			s.Subscribe(id, obs)
		}
	}
}

// Publish delivers events to subscribed observers, honouring recipients.
func (s *Service) Publish(events ...Event) {
	for _, e := range events {
		for _, sub := range s.subs {
			if e.VisibleTo(sub.id) {
				sub.obs.OnEvent(e)
			}
		}
	}
}

// StartMatch seats participants in the given order, shuffles the court deck
// and deals each participant two cards and two coins. The returned events
// have not been published; callers subscribe observers first and then
// Publish them.
func (s *Service) StartMatch(participants []domain.Participant) (*domain.Match, []Event, error) {
	if len(participants) < domain.MinPlayers {
		return nil, nil, ErrTooFewPlayers
	}
	if len(participants) > domain.MaxPlayers {
		return nil, nil, ErrTooManyPlayers
	}

	m := domain.NewMatch(participants)
	m.Seed = s.seed
	m.ShuffleDeck(s.rng)

	// Deal round-robin, one card at a time.
	for i := 0; i < domain.HandSize; i++ {
		for _, id := range m.Order {
			r, err := m.Draw()
			if err != nil {
				return nil, nil, fmt.Errorf("deal: %w", err)
			}
			p, _ := m.Participant(id)
			p.AddCard(r)
		}
	}

	events := make([]Event, 0, len(m.Order)+1)
	names := make(map[domain.PlayerID]string, len(m.Order))
	for _, id := range m.Order {
		p, _ := m.Participant(id)
		p.AddCoins(domain.StartingCoins)
		names[id] = p.Name()
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Player: id, Hand: p.Hand()},
			Recipients: []domain.PlayerID{id},
		})
	}

	events = append(events, Event{
		Kind: EventMatchStarted,
		Payload: MatchStartedPayload{
			Seed:      m.Seed,
			Order:     append([]domain.PlayerID(nil), m.Order...),
			Names:     names,
			FirstTurn: m.Current,
		},
	})

	s.logger.Info("match started", "players", len(m.Order), "seed", m.Seed)
	return m, events, nil
}

// Run plays turns until one participant remains and returns the winner.
// ctx is checked between turns; decisions already in flight are not interrupted.
func (s *Service) Run(ctx context.Context, m *domain.Match) (domain.PlayerID, error) {
	for !m.GameOver() {
		if err := ctx.Err(); err != nil {
			return domain.NoPlayer, err
		}
		if s.opts.MaxTurns > 0 && m.Turn > s.opts.MaxTurns {
			s.logger.Warn("turn limit reached", "max_turns", s.opts.MaxTurns, "live", len(m.Order))
			return domain.NoPlayer, fmt.Errorf("%w after %d turns", ErrTurnLimit, s.opts.MaxTurns)
		}
		if _, err := s.PlayTurn(m); err != nil {
			return domain.NoPlayer, err
		}
	}
	winner, _ := m.Winner()
	return winner, nil
}

// abort wraps a fatal error with the match dump and logs it.
func (s *Service) abort(m *domain.Match, cause error) error {
	dump, err := DumpHistory(m)
	if err != nil {
		s.logger.Error("history dump failed", "error", err)
	}
	s.logger.Error("match aborted", "turn", m.Turn, "error", cause, "history", string(dump))
	return &AbortError{Cause: cause, Turn: m.Turn, Dump: dump}
}
