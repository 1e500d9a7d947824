package domain

// Fixed rule constants for the court deck and the economy.
const (
	CopiesPerRole = 3
	DeckSize      = CopiesPerRole * 5

	HandSize      = 2
	StartingCoins = 2

	MinPlayers = 2
	MaxPlayers = 6

	IncomeAmount     = 1
	ForeignAidAmount = 2
	TaxAmount        = 3
	MaxStealAmount   = 2
	ExchangeDraw     = 2

	AssassinateCost = 3
	CoupCost        = 7
	// ForcedCoupCoins is the balance at which Coup becomes the only legal action.
	ForcedCoupCoins = 10
)
