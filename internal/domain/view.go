package domain

// PublicPlayer is what every participant may know about a live opponent.
type PublicPlayer struct {
	ID        PlayerID
	Name      string
	Coins     int
	Influence int // concealed cards remaining
}

// View is the redacted match state handed to decision callbacks. Only the
// viewer's own hand is included; opponents are reduced to PublicPlayer.
type View struct {
	Self     PlayerID
	Hand     []Role
	Coins    int
	Players  []PublicPlayer // live participants in turn order
	Revealed []Role
	History  []Entry
	Phase    Phase
	Current  PlayerID
	Pending  Pending
	DeckSize int
	// Names covers every seat, eliminated or not; names are public.
	Names map[PlayerID]string
}

// Player returns the public record for id if it is still live.
func (v View) Player(id PlayerID) (PublicPlayer, bool) {
	for _, p := range v.Players {
		if p.ID == id {
			return p, true
		}
	}
	return PublicPlayer{}, false
}

// Opponents returns the live participants other than the viewer, in turn order.
func (v View) Opponents() []PublicPlayer {
	out := make([]PublicPlayer, 0, len(v.Players))
	for _, p := range v.Players {
		if p.ID != v.Self {
			out = append(out, p)
		}
	}
	return out
}

// NameOf resolves a participant name, falling back to the seat number.
func (v View) NameOf(id PlayerID) string {
	if name, ok := v.Names[id]; ok {
		return name
	}
	return seatLabel(id)
}
