package bot

import "fmt"

// BotIdentity is a display profile for an automated seat.
type BotIdentity struct {
	Name  string
	Level Level
}

var botIdentities = []BotIdentity{
	{Name: "Ada", Level: LevelSkeptic},
	{Name: "Bram", Level: LevelHonest},
	{Name: "Cleo", Level: LevelRandom},
	{Name: "Dario", Level: LevelSkeptic},
	{Name: "Esme", Level: LevelHonest},
	{Name: "Felix", Level: LevelRandom},
}

// GetBotIdentity returns the index-th identity among those of level,
// cycling through that level's names. Indices past the pool get a numeric
// suffix so names stay unique.
func GetBotIdentity(level Level, index int) BotIdentity {
	var pool []BotIdentity
	for _, id := range botIdentities {
		if id.Level == level {
			pool = append(pool, id)
		}
	}
	if len(pool) == 0 {
		pool = botIdentities
	}
	id := pool[index%len(pool)]
	id.Level = level
	if round := index / len(pool); round > 0 {
		id.Name = fmt.Sprintf("%s %d", id.Name, round+1)
	}
	return id
}
