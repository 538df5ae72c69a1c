package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mevdschee/pgescape/internal/config"
)

type rootOptions struct {
	configs  []string
	logLevel string
	dsn      string
	cfg      *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "pgquote",
		Short:         "Quotes PostgreSQL identifiers and literals",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(opts.configs...)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if cmd.Flags().Changed("dsn") {
				cfg.DSN = opts.dsn
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(cfg.Level()).
				With().Timestamp().
				Logger()
			opts.cfg = cfg
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringSliceVarP(&opts.configs, "config", "c", nil, "config file (YAML), may be repeated")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.dsn, "dsn", "", "PostgreSQL connection string, used by exec")

	rootCmd.AddCommand(
		newIdentCmd(),
		newLiteralCmd(),
		newFormatCmd(),
		newExecCmd(opts),
	)
	return rootCmd
}

// Execute runs the pgquote command line.
func Execute() error {
	return newRootCmd().Execute()
}
