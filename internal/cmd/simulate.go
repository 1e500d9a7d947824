package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"coup/internal/app"
	"coup/internal/bot"
	"coup/internal/config"
	"coup/internal/domain"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run bot-only matches and print win tallies",
	Long: `Run bot-only matches one after another. Seats rotate through
simulate.levels so every level plays from every position.

Match i uses seed S+i, so a tally can be reproduced with --seed.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Int("matches", 0, "number of matches (default from simulate.matches)")
	simulateCmd.Flags().Int("players", 0, "seats per match (default from simulate.players)")
	simulateCmd.Flags().Int64("seed", 0, "base seed (default from match.seed, 0 uses the clock)")
	simulateCmd.Flags().StringSlice("levels", nil, "bot levels to rotate through (default from simulate.levels)")
	_ = viper.BindPFlag("simulate.matches", simulateCmd.Flags().Lookup("matches"))
	_ = viper.BindPFlag("simulate.players", simulateCmd.Flags().Lookup("players"))
	_ = viper.BindPFlag("simulate.levels", simulateCmd.Flags().Lookup("levels"))
	_ = viper.BindPFlag("match.seed", simulateCmd.Flags().Lookup("seed"))
	rootCmd.AddCommand(simulateCmd)
}

// Tally aggregates simulation outcomes.
type Tally struct {
	Matches   int
	Unplayed  int // stopped by the turn limit
	Turns     int
	WinsBy    map[bot.Level]int
	SeatsBy   map[bot.Level]int
	levelSeen []bot.Level
}

func newTally() *Tally {
	return &Tally{WinsBy: make(map[bot.Level]int), SeatsBy: make(map[bot.Level]int)}
}

func (t *Tally) seat(l bot.Level) {
	if _, ok := t.SeatsBy[l]; !ok {
		t.levelSeen = append(t.levelSeen, l)
	}
	t.SeatsBy[l]++
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

	levels := make([]bot.Level, len(cfg.Simulate.Levels))
	for i, s := range cfg.Simulate.Levels {
		if levels[i], err = bot.ParseLevel(s); err != nil {
			return err
		}
	}

	base := cfg.Match.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	tally := newTally()
	for i := 0; i < cfg.Simulate.Matches; i++ {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		if err := simulateMatch(cmd, cfg, logger, base+int64(i), i, levels, tally); err != nil {
			return fmt.Errorf("match %d (seed %d): %w", i+1, base+int64(i), err)
		}
	}
	printTally(cmd.OutOrStdout(), tally, base)
	return nil
}

func simulateMatch(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, seed int64, round int, levels []bot.Level, tally *Tally) error {
	svc := app.NewSeededService(seed, logger, options(cfg))
	rng := rand.New(rand.NewSource(seed))

	participants := make([]domain.Participant, cfg.Simulate.Players)
	for j := range participants {
		level := levels[(round+j)%len(levels)]
		agent, err := bot.NewLeveledAgent(bot.GetBotIdentity(level, j).Name, level, rng)
		if err != nil {
			return err
		}
		participants[j] = agent
		tally.seat(agent.Level)
	}

	m, _, err := svc.StartMatch(participants)
	if err != nil {
		return err
	}
	svc.SubscribeParticipants(m)

	winner, err := svc.Run(cmd.Context(), m)
	tally.Matches++
	tally.Turns += m.Turn
	if errors.Is(err, app.ErrTurnLimit) {
		tally.Unplayed++
		return nil
	}
	if err != nil {
		return err
	}
	p, err := m.Participant(winner)
	if err != nil {
		return err
	}
	agent, ok := p.(*bot.Agent)
	if !ok {
		return fmt.Errorf("winner %s is not a bot", p.Name())
	}
	tally.WinsBy[agent.Level]++
	return nil
}

func printTally(w io.Writer, t *Tally, seed int64) {
	fmt.Fprintf(w, "Simulated %d matches (base seed %d)\n", t.Matches, seed)
	fmt.Fprintln(w, strings.Repeat("─", 40))
	fmt.Fprintf(w, "%-10s %8s %8s %8s\n", "LEVEL", "SEATS", "WINS", "RATE")
	for _, l := range t.levelSeen {
		seats, wins := t.SeatsBy[l], t.WinsBy[l]
		fmt.Fprintf(w, "%-10s %8d %8d %7.1f%%\n", l, seats, wins, 100*float64(wins)/float64(seats))
	}
	fmt.Fprintln(w, strings.Repeat("─", 40))
	if t.Matches > 0 {
		fmt.Fprintf(w, "Average turns: %.1f\n", float64(t.Turns)/float64(t.Matches))
	}
	if t.Unplayed > 0 {
		fmt.Fprintf(w, "Stopped at turn limit: %d\n", t.Unplayed)
	}
}
