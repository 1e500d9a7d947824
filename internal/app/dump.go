package app

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"coup/internal/domain"
)

// DumpHistory renders the complete match, concealed hands included, as
// indented JSON for post-mortem diagnosis.
func DumpHistory(m *domain.Match) ([]byte, error) {
	st, err := structpb.NewStruct(historyFields(m))
	if err != nil {
		return nil, fmt.Errorf("encode match: %w", err)
	}
	return protojson.MarshalOptions{Multiline: true, EmitUnpopulated: true}.Marshal(st)
}

func historyFields(m *domain.Match) map[string]any {
	players := make([]any, 0, len(m.Seats()))
	for _, id := range m.Seats() {
		p, err := m.Participant(id)
		if err != nil {
			continue
		}
		players = append(players, map[string]any{
			"id":    int(id),
			"name":  p.Name(),
			"coins": p.Coins(),
			"hand":  roleList(p.Hand()),
			"alive": m.Alive(id),
		})
	}

	order := make([]any, len(m.Order))
	for i, id := range m.Order {
		order[i] = int(id)
	}

	history := make([]any, len(m.History))
	for i, e := range m.History {
		history[i] = map[string]any{
			"actor": int(e.Actor),
			"kind":  e.Move.Kind.String(),
			"move":  e.Move.Describe(m.NameOf),
		}
	}

	pending := map[string]any{
		"kind":     pendingKindName(m.Pending.Kind),
		"claimant": int(m.Pending.Claimant),
		"move":     "",
	}
	if m.Pending.Kind != domain.PendingNone {
		pending["move"] = m.Pending.Move.Describe(m.NameOf)
	}

	return map[string]any{
		"seed":      m.Seed,
		"turn":      m.Turn,
		"phase":     string(m.Phase),
		"current":   int(m.Current),
		"order":     order,
		"deck_size": len(m.Deck),
		"revealed":  roleList(m.Revealed),
		"pending":   pending,
		"players":   players,
		"history":   history,
	}
}

func roleList(roles []domain.Role) []any {
	out := make([]any, len(roles))
	for i, r := range roles {
		out[i] = r.String()
	}
	return out
}

func pendingKindName(k domain.PendingKind) string {
	switch k {
	case domain.PendingAction:
		return "action"
	case domain.PendingBlock:
		return "block"
	default:
		return "none"
	}
}
