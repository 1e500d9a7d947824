package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Match.Players) != 4 {
		t.Errorf("Match.Players = %d, want 4", len(cfg.Match.Players))
	}
	if cfg.Match.Players[0].Kind != KindHuman {
		t.Errorf("first seat kind = %q, want human", cfg.Match.Players[0].Kind)
	}
	if !cfg.Rules.ReplaceProvenCard {
		t.Error("Rules.ReplaceProvenCard should be true by default")
	}
	if !cfg.Rules.CheckInvariants {
		t.Error("Rules.CheckInvariants should be true by default")
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("default config is invalid: %v", ValidationErrors(errs))
	}
}

func TestLoadFromViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("match.seed", 99)
	viper.Set("rules.replace_proven_card", false)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Match.Seed != 99 {
		t.Errorf("Match.Seed = %d, want 99", cfg.Match.Seed)
	}
	if cfg.Rules.ReplaceProvenCard {
		t.Error("Rules.ReplaceProvenCard override was ignored")
	}
	if len(cfg.Match.Players) != 4 || cfg.Match.Players[1].Level != "skeptic" {
		t.Errorf("Match.Players = %+v", cfg.Match.Players)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("match.players", []map[string]any{
		{"name": "solo", "kind": "bot", "level": "genius"},
	})
	viper.Set("logging.format", "xml")

	_, err := Load()
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Load() error = %v, want ValidationErrors", err)
	}

	fields := make(map[string]bool)
	for _, e := range verrs {
		fields[e.Field] = true
	}
	for _, want := range []string{"match.players", "match.players[0].level", "logging.format"} {
		if !fields[want] {
			t.Errorf("missing validation error for %s in %v", want, verrs)
		}
	}
}

func TestValidateMatchPlayers(t *testing.T) {
	tests := []struct {
		name    string
		players []PlayerConfig
		field   string
	}{
		{
			name:    "duplicate names",
			players: []PlayerConfig{{Name: "Ann", Kind: KindBot, Level: "random"}, {Name: "ann", Kind: KindBot, Level: "honest"}},
			field:   "match.players[1].name",
		},
		{
			name:    "unknown kind",
			players: []PlayerConfig{{Name: "A", Kind: "alien"}, {Name: "B", Kind: KindBot, Level: "random"}},
			field:   "match.players[0].kind",
		},
		{
			name:    "two humans",
			players: []PlayerConfig{{Name: "A", Kind: KindHuman}, {Name: "B", Kind: KindHuman}},
			field:   "match.players",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Match.Players = tt.players
			errs := cfg.Validate()
			found := false
			for _, e := range errs {
				found = found || e.Field == tt.field
			}
			if !found {
				t.Errorf("expected error on %s, got %v", tt.field, errs)
			}
		})
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "a", Value: 1, Message: "bad"},
		{Field: "b", Value: 2, Message: "worse"},
	}
	if !strings.HasPrefix(errs.Error(), "2 validation errors") {
		t.Errorf("Error() = %q", errs.Error())
	}
	if errs[:1].Error() != "a: bad (got: 1)" {
		t.Errorf("single Error() = %q", errs[:1].Error())
	}
}
