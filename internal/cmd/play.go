package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"

	"coup/internal/app"
	"coup/internal/bot"
	"coup/internal/config"
	"coup/internal/domain"
	"coup/internal/ports"
	"coup/internal/ports/console"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one match with the configured seats",
	Long: `Play one match. Seats come from match.players in the config file;
a human seat is driven from the terminal, bot seats by their level.

Without a human seat the match plays itself and every public event is printed.`,
	RunE: runPlay,
}

var (
	playSeed        int64
	playDumpHistory bool
)

func init() {
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "seed for a replayable match (overrides match.seed)")
	playCmd.Flags().BoolVar(&playDumpHistory, "dump-history", false, "print the full match history as JSON when the match ends")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if playSeed != 0 {
		cfg.Match.Seed = playSeed
	}

	out := cmd.OutOrStdout()
	logger := app.NewLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	svc := app.NewSeededService(cfg.Match.Seed, logger, options(cfg))

	renderer := console.NewRenderer(out)
	prompter := console.NewPrompter(cmd.InOrStdin(), out)
	participants, human, err := seatPlayers(cfg.Match.Players, prompter, renderer, rand.New(rand.NewSource(svc.Seed())))
	if err != nil {
		return err
	}

	m, events, err := svc.StartMatch(participants)
	if err != nil {
		return err
	}
	svc.SubscribeParticipants(m)
	if !human {
		svc.Subscribe(domain.NoPlayer, renderer)
	}
	svc.Publish(events...)

	_, err = svc.Run(cmd.Context(), m)
	if playDumpHistory {
		if derr := writeDump(out, m); derr != nil {
			return derr
		}
	}
	if errors.Is(err, app.ErrTurnLimit) {
		fmt.Fprintf(out, "No winner: %v\n", err)
		return nil
	}
	return err
}

// seatPlayers builds participants in configured order and reports whether a
// human seat is among them.
func seatPlayers(players []config.PlayerConfig, prompt ports.PromptPort, renderer *console.Renderer, rng *rand.Rand) ([]domain.Participant, bool, error) {
	var human bool
	out := make([]domain.Participant, 0, len(players))
	for _, p := range players {
		if p.Kind == config.KindHuman {
			out = append(out, console.NewHumanPlayer(p.Name, prompt, renderer))
			human = true
			continue
		}
		level, err := bot.ParseLevel(p.Level)
		if err != nil {
			return nil, false, fmt.Errorf("seat %q: %w", p.Name, err)
		}
		agent, err := bot.NewLeveledAgent(p.Name, level, rng)
		if err != nil {
			return nil, false, err
		}
		out = append(out, agent)
	}
	return out, human, nil
}

func writeDump(w io.Writer, m *domain.Match) error {
	dump, err := app.DumpHistory(m)
	if err != nil {
		return fmt.Errorf("failed to dump history: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", dump)
	return err
}
