package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Player kinds accepted in match.players.
const (
	KindHuman = "human"
	KindBot   = "bot"
)

// Config holds every setting the coup binary reads.
type Config struct {
	Match    MatchConfig    `mapstructure:"match"`
	Rules    RulesConfig    `mapstructure:"rules"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Simulate SimulateConfig `mapstructure:"simulate"`
}

// PlayerConfig describes one seat of a configured match.
type PlayerConfig struct {
	Name  string `mapstructure:"name"`
	Kind  string `mapstructure:"kind"`
	Level string `mapstructure:"level"` // bots only
}

type MatchConfig struct {
	// Seed makes a match replayable; 0 picks a time-based seed.
	Seed    int64          `mapstructure:"seed"`
	Players []PlayerConfig `mapstructure:"players"`
	// MaxTurns stops a runaway match; 0 means unlimited.
	MaxTurns int `mapstructure:"max_turns"`
}

type RulesConfig struct {
	ReplaceProvenCard bool `mapstructure:"replace_proven_card"`
	CheckInvariants   bool `mapstructure:"check_invariants"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SimulateConfig struct {
	Matches int      `mapstructure:"matches"`
	Players int      `mapstructure:"players"`
	Levels  []string `mapstructure:"levels"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Match: MatchConfig{
			Players: []PlayerConfig{
				{Name: "You", Kind: KindHuman},
				{Name: "Ada", Kind: KindBot, Level: "skeptic"},
				{Name: "Bram", Kind: KindBot, Level: "honest"},
				{Name: "Cleo", Kind: KindBot, Level: "random"},
			},
		},
		Rules: RulesConfig{
			ReplaceProvenCard: true,
			CheckInvariants:   true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Simulate: SimulateConfig{
			Matches: 100,
			Players: 4,
			Levels:  []string{"random", "honest", "skeptic"},
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	players := make([]map[string]any, len(defaults.Match.Players))
	for i, p := range defaults.Match.Players {
		players[i] = map[string]any{"name": p.Name, "kind": p.Kind, "level": p.Level}
	}
	viper.SetDefault("match.seed", defaults.Match.Seed)
	viper.SetDefault("match.players", players)
	viper.SetDefault("match.max_turns", defaults.Match.MaxTurns)

	viper.SetDefault("rules.replace_proven_card", defaults.Rules.ReplaceProvenCard)
	viper.SetDefault("rules.check_invariants", defaults.Rules.CheckInvariants)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.format", defaults.Logging.Format)

	viper.SetDefault("simulate.matches", defaults.Simulate.Matches)
	viper.SetDefault("simulate.players", defaults.Simulate.Players)
	viper.SetDefault("simulate.levels", defaults.Simulate.Levels)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "coup")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".coup"
	}
	return filepath.Join(home, ".config", "coup")
}
