package bot

import (
	"fmt"
	"math/rand"
	"strings"
)

// Level selects a bot strategy.
type Level string

const (
	LevelRandom  Level = "random"
	LevelHonest  Level = "honest"
	LevelSkeptic Level = "skeptic"
)

// Levels lists every selectable level.
var Levels = []Level{LevelRandom, LevelHonest, LevelSkeptic}

// ParseLevel converts a case-insensitive level name.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Levels {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown bot level: %q", s)
}

// NewBrain creates a new AI brain based on the specified level. rng drives
// any randomised choice the strategy makes.
func NewBrain(level Level, rng *rand.Rand) (Brain, error) {
	switch level {
	case LevelRandom:
		return NewRandomBot(rng), nil
	case LevelHonest:
		return &HonestBot{}, nil
	case LevelSkeptic:
		return NewSkepticBot(DefaultTuning), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %q", level)
	}
}

// NewLeveledAgent builds an Agent with the brain for level.
func NewLeveledAgent(name string, level Level, rng *rand.Rand) (*Agent, error) {
	brain, err := NewBrain(level, rng)
	if err != nil {
		return nil, err
	}
	a := NewAgent(name, brain)
	a.Level = level
	return a, nil
}
