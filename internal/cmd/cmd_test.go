package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"coup/internal/app"
	"coup/internal/bot"
	"coup/internal/config"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

const botsOnly = `
match:
  seed: 7
  max_turns: 500
  players:
    - {name: Ada, kind: bot, level: skeptic}
    - {name: Bram, kind: bot, level: honest}
    - {name: Cleo, kind: bot, level: random}
logging:
  level: error
simulate:
  matches: 4
  players: 3
  levels: [random, honest, skeptic]
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "coup" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "coup")
	}
	cmdMap := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		cmdMap[c.Name()] = true
	}
	for _, name := range []string{"play", "simulate", "version"} {
		if !cmdMap[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(rootCmd, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.Contains(out, "coup "+Version) {
		t.Errorf("output = %q", out)
	}
}

func TestSimulateCommand(t *testing.T) {
	cfg := writeConfig(t, botsOnly)
	out, err := executeCommand(rootCmd, "simulate", "--config", cfg, "--matches", "6", "--seed", "42")
	if err != nil {
		t.Fatalf("simulate error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Simulated 6 matches (base seed 42)") {
		t.Errorf("missing summary in %q", out)
	}
	for _, level := range []string{"random", "honest", "skeptic"} {
		if !strings.Contains(out, level) {
			t.Errorf("tally missing level %s:\n%s", level, out)
		}
	}
}

func TestPlayBotsOnlyWithDump(t *testing.T) {
	cfg := writeConfig(t, botsOnly)
	out, err := executeCommand(rootCmd, "play", "--config", cfg, "--seed", "11", "--dump-history")
	if err != nil {
		t.Fatalf("play error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Match started:") {
		t.Errorf("spectator output missing start:\n%s", out)
	}
	if !strings.Contains(out, "Match over:") && !strings.Contains(out, "No winner") {
		t.Errorf("match did not finish:\n%s", out)
	}
	if !strings.Contains(out, `"history"`) || !strings.Contains(out, `"seed"`) {
		t.Errorf("history dump missing:\n%s", out)
	}
}

func TestPlayHumanInputClosed(t *testing.T) {
	cfg := writeConfig(t, `
match:
  seed: 3
  players:
    - {name: You, kind: human}
    - {name: Ada, kind: bot, level: honest}
logging:
  level: error
`)
	_, err := executeCommand(rootCmd, "play", "--config", cfg, "--seed", "3")
	if err == nil || !strings.Contains(err.Error(), "input closed") {
		t.Fatalf("err = %v, want input closed", err)
	}
}

func TestPlayRejectsInvalidConfig(t *testing.T) {
	cfg := writeConfig(t, `
match:
  players:
    - {name: Solo, kind: bot, level: honest}
`)
	_, err := executeCommand(rootCmd, "play", "--config", cfg)
	if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Fatalf("err = %v", err)
	}
}

func TestSimulateMatchTalliesByAgentLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Match.MaxTurns = 500
	cfg.Simulate.Players = 3
	levels := []bot.Level{bot.LevelSkeptic, bot.LevelHonest, bot.LevelRandom}

	c := &cobra.Command{}
	c.SetContext(context.Background())
	logger := app.NewLogger(io.Discard, "error", "text")

	tally := newTally()
	for i := 0; i < 9; i++ {
		if err := simulateMatch(c, cfg, logger, int64(100+i), i, levels, tally); err != nil {
			t.Fatalf("match %d: %v", i, err)
		}
	}

	wins := 0
	for _, l := range levels {
		// Three levels rotate over three seats, so each level sits once per match.
		if tally.SeatsBy[l] != 9 {
			t.Errorf("%s seated %d times, want 9", l, tally.SeatsBy[l])
		}
		wins += tally.WinsBy[l]
	}
	if tally.Matches != 9 || wins+tally.Unplayed != 9 {
		t.Errorf("matches %d, wins %d, unplayed %d", tally.Matches, wins, tally.Unplayed)
	}
}

func TestExplicitConfigMustBeReadable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")
	malformed := writeConfig(t, "match: [unclosed\n")

	for _, path := range []string{missing, malformed} {
		for _, sub := range []string{"play", "simulate"} {
			_, err := executeCommand(rootCmd, sub, "--config", path)
			if err == nil || !strings.Contains(err.Error(), "failed to read config") {
				t.Errorf("%s --config %s: err = %v", sub, filepath.Base(path), err)
			}
		}
	}
}
