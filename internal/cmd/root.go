package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"coup/internal/app"
	"coup/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "coup",
	Short: "Play or simulate matches of the Coup bluffing card game",
	Long: `Coup is a 2-6 player game of hidden roles. Each player holds two
concealed cards and may claim any role to take its action; opponents can
challenge the claim or block the action with a counter-claim.

Play an interactive match against bots, or simulate bot-only matches.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/coup/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

// configErr holds a failure to read a config file named with --config.
var configErr error

func initConfig() {
	config.SetDefaults()
	configErr = nil

	cfgFile := viper.GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("COUP")
	// e.g. COUP_LOGGING_LEVEL for logging.level
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		configErr = fmt.Errorf("failed to read config %s: %w", cfgFile, err)
	}
}

// loadConfig returns the validated configuration, or the error from reading
// an explicit --config file.
func loadConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, configErr
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// options maps the rules section onto engine options.
func options(cfg *config.Config) app.Options {
	return app.Options{
		ReplaceProvenCard: cfg.Rules.ReplaceProvenCard,
		CheckInvariants:   cfg.Rules.CheckInvariants,
		MaxTurns:          cfg.Match.MaxTurns,
	}
}
